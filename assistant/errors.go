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

import "errors"

var (
	// ErrCatalogRequired is returned when a catalog is not provided.
	ErrCatalogRequired = errors.New("catalog required")

	// ErrReasonerRequired is returned when a reasoner is not provided.
	ErrReasonerRequired = errors.New("reasoner required")

	// ErrOrchestratorRequired is returned when an orchestrator is not provided.
	ErrOrchestratorRequired = errors.New("orchestrator required")

	// ErrContextBuilderRequired is returned when a context builder is not provided.
	ErrContextBuilderRequired = errors.New("context builder required")

	// ErrRequestInFlight is returned by Session.Submit while a previous
	// submission is still awaiting its response.
	ErrRequestInFlight = errors.New("request already in flight")
)
