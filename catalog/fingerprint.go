package catalog

import (
	"encoding/binary"
	"fmt"

	"github.com/go-crypt/x/blake2b"
)

// ID is a deterministic fingerprint of catalog content.
type ID uint64

// IDFromContent generates a deterministic ID from text content using
// BLAKE2b hashing, so identical content produces identical IDs.
func IDFromContent(text string) ID {
	h, _ := blake2b.New(8, nil) // 8 bytes = 64 bits
	h.Write([]byte(text))
	sum := h.Sum(nil)
	return ID(binary.LittleEndian.Uint64(sum))
}

// Fingerprint returns a stable fingerprint of the catalog's entries and
// organization identity. Hosts can use it to detect dataset changes
// across releases without diffing the full payload.
func (c *Catalog) Fingerprint() ID {
	h, _ := blake2b.New(8, nil)
	fmt.Fprintf(h, "%s|%s\n", c.Organization.Name, c.Organization.Website)
	for i := range c.Entries {
		e := &c.Entries[i]
		fmt.Fprintf(h, "%d|%s|%s|%s\n", e.ID, e.Title, e.Category, e.URL)
	}
	sum := h.Sum(nil)
	return ID(binary.LittleEndian.Uint64(sum))
}
