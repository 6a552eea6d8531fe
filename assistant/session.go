package assistant

import (
	"context"
	"log/slog"
	"slices"
	"strings"
	"sync"

	"github.com/fosagri/assist/ai"
)

// SessionState is the lifecycle state of a chat session.
type SessionState int

const (
	// StateIdle means the session is ready to accept a submission.
	StateIdle SessionState = iota
	// StateAwaitingResponse means a submission is in flight.
	StateAwaitingResponse
)

// Session is a stateful chat conversation over an Orchestrator. It
// enforces single-flight submission: while one turn awaits its
// response, further submissions are rejected with ErrRequestInFlight.
// The transcript always grows by exactly two turns per accepted
// submission, the user turn and the assistant turn, even on failures.
type Session struct {
	orch   *Orchestrator
	logger *slog.Logger

	mu    sync.Mutex
	state SessionState
	turns []ai.Turn
}

// SessionOption configures a Session.
type SessionOption func(*Session) error

// WithSessionLogger sets a custom logger.
// Default is slog.Default().
func WithSessionLogger(logger *slog.Logger) SessionOption {
	return func(s *Session) error {
		if logger == nil {
			logger = slog.Default()
		}
		s.logger = logger
		return nil
	}
}

// NewSession creates an empty chat session.
func NewSession(orch *Orchestrator, opts ...SessionOption) (*Session, error) {
	if orch == nil {
		return nil, ErrOrchestratorRequired
	}

	s := &Session{
		orch:   orch,
		logger: slog.Default().With("component", "session"),
	}
	for _, opt := range opts {
		if err := opt(s); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// Submit sends one user message and waits for the assistant's reply.
// Blank input is a no-op returning (nil, nil). The user turn joins the
// transcript before the backend call; the assistant turn (answer or
// fallback text) joins after, and the session returns to idle.
func (s *Session) Submit(ctx context.Context, text string) (*Result, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, nil
	}

	s.mu.Lock()
	if s.state == StateAwaitingResponse {
		s.mu.Unlock()
		return nil, ErrRequestInFlight
	}
	s.state = StateAwaitingResponse
	s.turns = append(s.turns, ai.Turn{Role: ai.RoleUser, Content: text})
	history := slices.Clone(s.turns)
	s.mu.Unlock()

	result := s.orch.Converse(ctx, history)
	if result.Failed {
		s.logger.Warn("assistant turn failed, recording fallback text")
	}

	s.mu.Lock()
	s.turns = append(s.turns, ai.Turn{Role: ai.RoleAssistant, Content: result.Response})
	s.state = StateIdle
	s.mu.Unlock()

	return result, nil
}

// State returns the current session state.
func (s *Session) State() SessionState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Turns returns a copy of the transcript, oldest first.
func (s *Session) Turns() []ai.Turn {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.turns)
}

// Len returns the number of turns in the transcript.
func (s *Session) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.turns)
}
