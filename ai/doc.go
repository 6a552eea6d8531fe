// Copyright 2025 FOS-Agri
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package ai provides abstractions for the AI reasoning backend.
//
// The package defines the Reasoner interface along with the request
// and result types exchanged with it, keeping the assistant layer
// independent of any concrete provider.
//
// Two implementation sub-packages are included:
//
//   - ai/openai: production implementation for OpenAI-compatible APIs
//   - ai/mock: test double for unit testing without a live backend
//
// Production constructors (openai.NewReasoner) return the INTERFACE
// type to enforce abstraction; the mock constructor returns the
// CONCRETE *mock.MockReasoner so tests can inject behavior and assert
// on call counts.
//
// Usage:
//
//	cfg := ai.NewConfig(ai.WithHost("https://api.openai.com"), ai.WithModel("gpt-4o-mini"))
//	reasoner, err := openai.NewReasoner(cfg)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	result, err := reasoner.Generate(ctx, &ai.Request{
//	    System: grounding,
//	    Turns:  []ai.Turn{{Role: ai.RoleUser, Content: "Comment adhérer?"}},
//	})
package ai
