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

package assistant

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/fosagri/assist/ai"
)

// Token ceilings per mode. One-shot answers may cite web results and
// get more room than chat replies.
const (
	searchMaxTokens = 1500
	chatMaxTokens   = 1000
)

// User-facing fallback texts. The orchestrator never surfaces raw
// backend errors; callers always receive displayable French text.
const (
	// SearchFailureText replaces the answer when a one-shot query fails.
	SearchFailureText = "Erreur de connexion. Veuillez réessayer."

	// ChatFailureText replaces the answer when a chat turn fails.
	ChatFailureText = "Erreur de connexion à l'assistant IA. Veuillez réessayer."

	// EmptyCompletionText stands in for an empty chat completion.
	EmptyCompletionText = "Désolé, je n'ai pas pu traiter votre demande."

	// EmptyWebCompletionText stands in for an empty one-shot completion.
	EmptyWebCompletionText = "Pas de réponse disponible."
)

// webSearchInstruction is appended to the grounding document for
// one-shot queries, which are allowed to consult the live web.
const webSearchInstruction = "Utilise la recherche web pour trouver des informations actualisées sur FOS-Agri si nécessaire."

// searchPromptFormat wraps a raw query into the one-shot prompt.
const searchPromptFormat = `Recherche FOS-Agri: %q. Donne une réponse complète avec les liens pertinents et les informations pratiques.`

// Result is a displayable assistant answer. Failed marks fallback
// text produced from a backend error; WebEvidence is the backend's
// opaque marker when a web search contributed.
type Result struct {
	Response    string
	WebEvidence string
	Failed      bool
}

// Orchestrator turns user queries into grounded assistant answers.
// It is safe for concurrent use.
type Orchestrator struct {
	reasoner ai.Reasoner
	builder  *ContextBuilder
	logger   *slog.Logger
}

// Option configures an Orchestrator.
type Option func(*Orchestrator) error

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(o *Orchestrator) error {
		if logger == nil {
			logger = slog.Default()
		}
		o.logger = logger
		return nil
	}
}

// NewOrchestrator creates an orchestrator over the given reasoner and
// context builder.
func NewOrchestrator(reasoner ai.Reasoner, builder *ContextBuilder, opts ...Option) (*Orchestrator, error) {
	if reasoner == nil {
		return nil, ErrReasonerRequired
	}
	if builder == nil {
		return nil, ErrContextBuilderRequired
	}

	o := &Orchestrator{
		reasoner: reasoner,
		builder:  builder,
		logger:   slog.Default().With("component", "orchestrator"),
	}
	for _, opt := range opts {
		if err := opt(o); err != nil {
			return nil, err
		}
	}
	return o, nil
}

// AskOnce answers a single standalone query with web search allowed.
// A blank query is a no-op returning nil. Backend errors surface as a
// Result carrying SearchFailureText with Failed set; AskOnce never
// returns an error to display directly.
func (o *Orchestrator) AskOnce(ctx context.Context, query string) *Result {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil
	}

	req := &ai.Request{
		System:    o.builder.Build() + "\n\n" + webSearchInstruction,
		MaxTokens: searchMaxTokens,
		WebSearch: true,
		Turns: []ai.Turn{
			{Role: ai.RoleUser, Content: fmt.Sprintf(searchPromptFormat, query)},
		},
	}

	result, err := o.reasoner.Generate(ctx, req)
	if err != nil {
		o.logger.Error("one-shot query failed", "err", err)
		return &Result{Response: SearchFailureText, Failed: true}
	}
	if result.Text == "" {
		return &Result{Response: EmptyWebCompletionText, WebEvidence: result.WebEvidence}
	}
	return &Result{Response: result.Text, WebEvidence: result.WebEvidence}
}

// Converse answers the latest user turn of a conversation. The turns
// must end with a user turn; web search is never allowed in chat.
// Backend errors surface as a Result carrying ChatFailureText with
// Failed set.
func (o *Orchestrator) Converse(ctx context.Context, turns []ai.Turn) *Result {
	req := &ai.Request{
		System:    o.builder.Build(),
		MaxTokens: chatMaxTokens,
		Turns:     turns,
	}

	result, err := o.reasoner.Generate(ctx, req)
	if err != nil {
		o.logger.Error("chat turn failed", "err", err)
		return &Result{Response: ChatFailureText, Failed: true}
	}
	if result.Text == "" {
		return &Result{Response: EmptyCompletionText}
	}
	// Chat answers never cite web evidence.
	return &Result{Response: result.Text}
}
