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

package catalog

import "errors"

var (
	// ErrInvalidCatalog is the root of every validation failure.
	ErrInvalidCatalog = errors.New("invalid catalog")

	// ErrDuplicateEntryID indicates two entries share an id.
	ErrDuplicateEntryID = errors.New("duplicate entry id")

	// ErrInvalidEntryID indicates a non-positive entry id.
	ErrInvalidEntryID = errors.New("entry id must be positive")

	// ErrEmptyTitle indicates an entry with a blank title.
	ErrEmptyTitle = errors.New("entry title is empty")

	// ErrEmptyDescription indicates an entry with a blank description.
	ErrEmptyDescription = errors.New("entry description is empty")

	// ErrEmptyURL indicates an entry with a blank url.
	ErrEmptyURL = errors.New("entry url is empty")

	// ErrInvalidEntryType indicates a type outside page, pdf, partner.
	ErrInvalidEntryType = errors.New("invalid entry type")

	// ErrUnknownCategory indicates an entry referencing a category
	// with no descriptor.
	ErrUnknownCategory = errors.New("unknown category")

	// ErrReservedCategoryID indicates a category descriptor using the
	// sentinel "all" id.
	ErrReservedCategoryID = errors.New("reserved category id")

	// ErrNoEntries indicates a catalog with no entries at all.
	ErrNoEntries = errors.New("catalog has no entries")

	// ErrNoFAQ indicates a catalog with an empty FAQ section.
	ErrNoFAQ = errors.New("catalog has no faq")

	// ErrEmptyFAQ indicates a faq item with a blank question or answer.
	ErrEmptyFAQ = errors.New("faq question and answer must be set")
)
