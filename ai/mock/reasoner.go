package mock

import (
	"context"
	"fmt"
	"sync"

	"github.com/fosagri/assist/ai"
)

// MockReasoner is a test double for ai.Reasoner.
// It allows custom behavior injection via function fields.
type MockReasoner struct {
	// GenerateFunc is called by Generate if set.
	// If nil, uses a canned reply echoing the last turn.
	GenerateFunc func(ctx context.Context, req *ai.Request) (*ai.Result, error)

	mu        sync.Mutex
	callCount int
	requests  []*ai.Request
}

// NewMockReasoner creates a mock reasoner with default behavior.
// Note: Returns concrete type to allow test assertions.
func NewMockReasoner() *MockReasoner {
	return &MockReasoner{}
}

// Generate records the request and returns either the injected
// behavior's result or a canned French reply.
func (m *MockReasoner) Generate(ctx context.Context, req *ai.Request) (*ai.Result, error) {
	m.mu.Lock()
	m.callCount++
	m.requests = append(m.requests, req)
	fn := m.GenerateFunc
	m.mu.Unlock()

	if fn != nil {
		return fn(ctx, req)
	}

	last := ""
	if len(req.Turns) > 0 {
		last = req.Turns[len(req.Turns)-1].Content
	}
	result := &ai.Result{
		Text: fmt.Sprintf("Réponse simulée à: %s", last),
	}
	if req.WebSearch {
		result.WebEvidence = "mock-web-search"
	}
	return result, nil
}

// CallCount returns the number of times Generate was called.
func (m *MockReasoner) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.callCount
}

// LastRequest returns the most recent request, or nil if none.
func (m *MockReasoner) LastRequest() *ai.Request {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.requests) == 0 {
		return nil
	}
	return m.requests[len(m.requests)-1]
}

// Requests returns a copy of all recorded requests.
func (m *MockReasoner) Requests() []*ai.Request {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]*ai.Request, len(m.requests))
	copy(out, m.requests)
	return out
}

// Reset clears the call count, recorded requests and custom functions.
func (m *MockReasoner) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.callCount = 0
	m.requests = nil
	m.GenerateFunc = nil
}
