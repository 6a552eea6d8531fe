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

package openai

import (
	"context"
	"log/slog"
	"strings"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"

	"github.com/fosagri/assist/ai"
)

const webSearchToolName = "web_search"

// webSearchTool is declared on requests that allow the backend to
// consult the live web. Backends without the tool simply ignore it.
var webSearchTool = llms.Tool{
	Type: "function",
	Function: &llms.FunctionDefinition{
		Name:        webSearchToolName,
		Description: "Recherche sur le web des informations actualisées sur FOS-Agri.",
		Parameters: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"query": map[string]any{
					"type":        "string",
					"description": "Requête de recherche web",
				},
			},
			"required": []string{"query"},
		},
	},
}

// Reasoner implements ai.Reasoner using OpenAI-compatible chat APIs.
type Reasoner struct {
	client llms.Model
	logger *slog.Logger
}

// newReasoner is an internal constructor that returns the concrete type.
func newReasoner(config *ai.Config) (*Reasoner, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	client, err := openai.New(
		openai.WithBaseURL(config.Host),
		openai.WithToken(config.Token),
		openai.WithModel(config.Model),
	)
	if err != nil {
		return nil, err
	}

	return &Reasoner{
		client: client,
		logger: slog.Default().With("component", "openai-reasoner"),
	}, nil
}

// NewReasoner creates a reasoner using the provided configuration.
//
// Returns ai.Reasoner interface to enforce abstraction.
func NewReasoner(config *ai.Config) (ai.Reasoner, error) {
	return newReasoner(config)
}

// Generate produces a completion for the request. The system prompt
// becomes the first message, conversation turns follow in order, and
// when req.WebSearch is set the web search tool is declared so the
// backend may ground its answer in live results.
func (r *Reasoner) Generate(ctx context.Context, req *ai.Request) (*ai.Result, error) {
	content := make([]llms.MessageContent, 0, len(req.Turns)+1)
	if req.System != "" {
		content = append(content, llms.MessageContent{
			Role: llms.ChatMessageTypeSystem,
			Parts: []llms.ContentPart{
				llms.TextPart(req.System),
			},
		})
	}
	for _, turn := range req.Turns {
		role := llms.ChatMessageTypeHuman
		if turn.Role == ai.RoleAssistant {
			role = llms.ChatMessageTypeAI
		}
		content = append(content, llms.MessageContent{
			Role: role,
			Parts: []llms.ContentPart{
				llms.TextPart(turn.Content),
			},
		})
	}

	opts := []llms.CallOption{llms.WithTemperature(0.2)}
	if req.MaxTokens > 0 {
		opts = append(opts, llms.WithMaxTokens(req.MaxTokens))
	}
	if req.WebSearch {
		opts = append(opts, llms.WithTools([]llms.Tool{webSearchTool}))
	}

	response, err := r.client.GenerateContent(ctx, content, opts...)
	if err != nil {
		r.logger.Error("failed to generate content", "err", err)
		return nil, err
	}
	if len(response.Choices) < 1 {
		r.logger.Debug("no choices returned from model")
		return nil, ai.ErrNoCompletion
	}

	choice := response.Choices[0]
	result := &ai.Result{
		Text: strings.TrimSpace(choice.Content),
	}
	for _, call := range choice.ToolCalls {
		if call.FunctionCall == nil || call.FunctionCall.Name != webSearchToolName {
			continue
		}
		if call.ID != "" {
			result.WebEvidence = call.ID
		} else {
			result.WebEvidence = call.FunctionCall.Arguments
		}
		break
	}

	r.logger.Debug("generated completion",
		"chars", len(result.Text),
		"web_evidence", result.WebEvidence != "")
	return result, nil
}
