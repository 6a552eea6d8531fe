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

// Package search ranks catalog entries against free-text queries.
//
// The pipeline is deterministic and accent-insensitive: queries and
// entry fields are normalized (lowercased, diacritics stripped,
// punctuation folded to spaces), split into terms, and scored field by
// field with title and keyword matches dominating. Facet filters for
// category and entry type run before scoring, and a blank query lists
// the filtered entries unranked.
//
// State wraps the pipeline with the per-session browsing concerns a
// host UI needs: current query, active facets, and expanded detail
// blocks.
package search
