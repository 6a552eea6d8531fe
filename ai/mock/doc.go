// Package mock provides a test double implementation of ai.Reasoner.
//
// The mock allows tests to run without a live reasoning backend and
// enables controlled, deterministic behavior.
//
// # Usage in Tests
//
//	// Basic usage with default behavior
//	reasoner := mock.NewMockReasoner()
//	result, err := reasoner.Generate(ctx, req)
//
//	// Custom behavior injection
//	reasoner.GenerateFunc = func(ctx context.Context, req *ai.Request) (*ai.Result, error) {
//	    return nil, errors.New("backend down")
//	}
//
//	// Check call counts
//	count := reasoner.CallCount()
//
// The default behavior echoes the last conversation turn in a canned
// French reply and marks web evidence when the request allowed a web
// search.
package mock
