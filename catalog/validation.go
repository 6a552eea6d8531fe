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

import (
	"fmt"
	"strings"
)

// Validate checks the structural invariants the rest of the system
// relies on: positive unique entry ids, non-empty title, description
// and url, a known entry type, every entry category backed by a
// descriptor, and non-empty entry and FAQ sections. It returns the
// first violation found, wrapped in ErrInvalidCatalog.
func (c *Catalog) Validate() error {
	if len(c.Entries) == 0 {
		return fmt.Errorf("%w: %w", ErrInvalidCatalog, ErrNoEntries)
	}
	if len(c.FAQ) == 0 {
		return fmt.Errorf("%w: %w", ErrInvalidCatalog, ErrNoFAQ)
	}
	for i := range c.FAQ {
		f := &c.FAQ[i]
		if strings.TrimSpace(f.Question) == "" || strings.TrimSpace(f.Answer) == "" {
			return fmt.Errorf("%w: %w: faq %d", ErrInvalidCatalog, ErrEmptyFAQ, i)
		}
	}

	known := make(map[string]struct{}, len(c.Categories))
	for i := range c.Categories {
		cat := &c.Categories[i]
		if cat.ID == CategoryAll {
			return fmt.Errorf("%w: %w: %q", ErrInvalidCatalog, ErrReservedCategoryID, cat.ID)
		}
		known[cat.ID] = struct{}{}
	}

	seen := make(map[int]struct{}, len(c.Entries))
	for i := range c.Entries {
		e := &c.Entries[i]
		if e.ID <= 0 {
			return fmt.Errorf("%w: %w: entry %d", ErrInvalidCatalog, ErrInvalidEntryID, e.ID)
		}
		if _, dup := seen[e.ID]; dup {
			return fmt.Errorf("%w: %w: %d", ErrInvalidCatalog, ErrDuplicateEntryID, e.ID)
		}
		seen[e.ID] = struct{}{}

		if strings.TrimSpace(e.Title) == "" {
			return fmt.Errorf("%w: %w: entry %d", ErrInvalidCatalog, ErrEmptyTitle, e.ID)
		}
		if strings.TrimSpace(e.Description) == "" {
			return fmt.Errorf("%w: %w: entry %d", ErrInvalidCatalog, ErrEmptyDescription, e.ID)
		}
		if strings.TrimSpace(e.URL) == "" {
			return fmt.Errorf("%w: %w: entry %d", ErrInvalidCatalog, ErrEmptyURL, e.ID)
		}
		switch e.Type {
		case EntryTypePage, EntryTypePDF, EntryTypePartner:
		default:
			return fmt.Errorf("%w: %w: %q (entry %d)", ErrInvalidCatalog, ErrInvalidEntryType, e.Type, e.ID)
		}
		if _, ok := known[e.Category]; !ok {
			return fmt.Errorf("%w: %w: %q (entry %d)", ErrInvalidCatalog, ErrUnknownCategory, e.Category, e.ID)
		}
	}
	return nil
}
