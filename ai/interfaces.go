package ai

import "context"

// Reasoner produces grounded completions for user queries.
// Implementations must be thread-safe for concurrent use.
type Reasoner interface {
	// Generate produces a completion for the request. The returned
	// result text is never empty on success; a backend that yields an
	// empty completion reports ErrNoCompletion instead.
	Generate(ctx context.Context, req *Request) (*Result, error)
}
