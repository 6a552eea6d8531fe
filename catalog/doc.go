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

// Package catalog defines the static FOS-Agri knowledge base: the
// organization identity, category descriptors, catalog entries, FAQ
// and suggested queries, along with loading and validation.
//
// The catalog is immutable once loaded. Default returns the dataset
// embedded in the module; Load and LoadFile accept external JSON for
// dataset updates without a rebuild. Every loader validates before
// returning, so a *Catalog in hand always satisfies the structural
// invariants the search and assistant layers assume.
package catalog
