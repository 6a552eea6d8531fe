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

// Package openai implements the ai.Reasoner interface using the
// langchaingo library against OpenAI or OpenAI-compatible services
// (such as Ollama, LocalAI, or vLLM).
//
// # Usage
//
//	config := ai.DefaultConfig()
//	// Or customize:
//	config := ai.NewConfig(
//	    ai.WithHost("http://localhost:11434"), // /v1 added automatically
//	    ai.WithModel("qwen2.5:3b"),
//	)
//
//	reasoner, err := openai.NewReasoner(config)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	result, err := reasoner.Generate(ctx, &ai.Request{
//	    System: grounding,
//	    Turns:  []ai.Turn{{Role: ai.RoleUser, Content: "Comment adhérer?"}},
//	})
package openai
