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

// Package assist wires the FOS-Agri knowledge catalog, the ranking
// engine, and the AI assistant into one entry point for host
// applications.
package assist

import (
	"log/slog"

	"github.com/fosagri/assist/ai"
	"github.com/fosagri/assist/ai/openai"
	"github.com/fosagri/assist/assistant"
	"github.com/fosagri/assist/catalog"
	"github.com/fosagri/assist/search"
)

// Engine bundles the catalog with an orchestrator ready to answer
// queries. It is safe for concurrent use; per-user state lives in the
// State, Session and Dispatcher values it creates.
type Engine struct {
	cat    *catalog.Catalog
	orch   *assistant.Orchestrator
	logger *slog.Logger
}

// EngineOption configures an Engine.
type EngineOption func(*engineOptions)

type engineOptions struct {
	cat      *catalog.Catalog
	reasoner ai.Reasoner
	aiConfig *ai.Config
	logger   *slog.Logger
}

// WithCatalog replaces the embedded default catalog.
func WithCatalog(cat *catalog.Catalog) EngineOption {
	return func(o *engineOptions) {
		o.cat = cat
	}
}

// WithReasoner injects a reasoner, bypassing the OpenAI-compatible
// default. Useful for tests.
func WithReasoner(reasoner ai.Reasoner) EngineOption {
	return func(o *engineOptions) {
		o.reasoner = reasoner
	}
}

// WithAIConfig sets the configuration for the default reasoner.
// Ignored when WithReasoner is also given.
func WithAIConfig(cfg *ai.Config) EngineOption {
	return func(o *engineOptions) {
		o.aiConfig = cfg
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) EngineOption {
	return func(o *engineOptions) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// New creates an engine. Without options it loads the embedded catalog
// and connects to a local OpenAI-compatible backend per
// ai.DefaultConfig.
func New(opts ...EngineOption) (*Engine, error) {
	options := &engineOptions{
		aiConfig: ai.DefaultConfig(),
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(options)
	}

	cat := options.cat
	if cat == nil {
		loaded, err := catalog.Default()
		if err != nil {
			return nil, err
		}
		cat = loaded
	}

	reasoner := options.reasoner
	if reasoner == nil {
		r, err := openai.NewReasoner(options.aiConfig)
		if err != nil {
			return nil, err
		}
		reasoner = r
	}

	builder, err := assistant.NewContextBuilder(cat)
	if err != nil {
		return nil, err
	}
	orch, err := assistant.NewOrchestrator(reasoner, builder,
		assistant.WithLogger(options.logger))
	if err != nil {
		return nil, err
	}

	return &Engine{
		cat:    cat,
		orch:   orch,
		logger: options.logger,
	}, nil
}

// Catalog returns the engine's catalog.
func (e *Engine) Catalog() *catalog.Catalog {
	return e.cat
}

// Orchestrator returns the engine's orchestrator.
func (e *Engine) Orchestrator() *assistant.Orchestrator {
	return e.orch
}

// NewState creates a browsing state over the engine's catalog.
func (e *Engine) NewState() (*search.State, error) {
	return search.NewState(e.cat)
}

// NewSession creates a chat session over the engine's orchestrator.
func (e *Engine) NewSession(opts ...assistant.SessionOption) (*assistant.Session, error) {
	return assistant.NewSession(e.orch, opts...)
}

// NewDispatcher creates an async query dispatcher over the engine's
// orchestrator. Callers own the dispatcher and must Release it.
func (e *Engine) NewDispatcher(opts ...assistant.DispatcherOption) (*assistant.Dispatcher, error) {
	return assistant.NewDispatcher(e.orch, opts...)
}
