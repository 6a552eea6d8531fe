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

// Package assistant orchestrates grounded AI answers over the catalog.
//
// ContextBuilder renders the catalog into the French grounding
// document used as the backend's system prompt. Orchestrator wraps the
// ai.Reasoner with the two query modes: AskOnce for standalone queries
// with web search allowed, and Converse for chat turns without it.
// Both modes degrade to fixed French fallback texts instead of
// surfacing backend errors.
//
// Session adds a single-flight chat transcript on top of Converse,
// and Dispatcher runs AskOnce queries on a worker pool with
// newest-wins delivery.
package assistant
