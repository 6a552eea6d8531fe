package assistant

import (
	"context"
	"log/slog"
	"strings"
	"sync"

	"github.com/panjf2000/ants/v2"
)

// defaultPoolSize bounds concurrent backend calls for one dispatcher.
const defaultPoolSize = 2

// Dispatcher runs one-shot queries asynchronously with supersede
// semantics: when a newer query is dispatched before an older one
// delivers, the older result is silently dropped. The backend call
// itself is never cancelled, only its delivery.
type Dispatcher struct {
	orch   *Orchestrator
	pool   *ants.Pool
	logger *slog.Logger

	mu  sync.Mutex
	gen uint64
}

// DispatcherOption configures a Dispatcher.
type DispatcherOption func(*dispatcherConfig)

type dispatcherConfig struct {
	poolSize int
	logger   *slog.Logger
}

// WithPoolSize sets the worker pool size.
// Default is 2.
func WithPoolSize(size int) DispatcherOption {
	return func(c *dispatcherConfig) {
		if size > 0 {
			c.poolSize = size
		}
	}
}

// WithDispatcherLogger sets a custom logger.
// Default is slog.Default().
func WithDispatcherLogger(logger *slog.Logger) DispatcherOption {
	return func(c *dispatcherConfig) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// NewDispatcher creates a dispatcher over the given orchestrator.
func NewDispatcher(orch *Orchestrator, opts ...DispatcherOption) (*Dispatcher, error) {
	if orch == nil {
		return nil, ErrOrchestratorRequired
	}

	cfg := &dispatcherConfig{
		poolSize: defaultPoolSize,
		logger:   slog.Default().With("component", "dispatcher"),
	}
	for _, opt := range opts {
		opt(cfg)
	}

	pool, err := ants.NewPool(cfg.poolSize)
	if err != nil {
		return nil, err
	}

	return &Dispatcher{
		orch:   orch,
		pool:   pool,
		logger: cfg.logger,
	}, nil
}

// Ask dispatches a one-shot query. Blank queries are a no-op. The
// deliver callback runs on a pool worker and is skipped entirely when
// a newer Ask has superseded this one by the time its result is ready.
func (d *Dispatcher) Ask(ctx context.Context, query string, deliver func(*Result)) error {
	if strings.TrimSpace(query) == "" {
		return nil
	}

	d.mu.Lock()
	d.gen++
	gen := d.gen
	d.mu.Unlock()

	return d.pool.Submit(func() {
		result := d.orch.AskOnce(ctx, query)

		d.mu.Lock()
		superseded := gen != d.gen
		d.mu.Unlock()
		if superseded {
			d.logger.Debug("dropping superseded result", "generation", gen)
			return
		}
		deliver(result)
	})
}

// Release shuts down the worker pool. Pending tasks are discarded.
func (d *Dispatcher) Release() {
	d.pool.Release()
}
