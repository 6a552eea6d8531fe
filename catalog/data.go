package catalog

import (
	"bytes"
	_ "embed"
)

//go:embed catalog.json
var embeddedCatalog []byte

// Default loads the catalog shipped with this module. Each call
// decodes a fresh copy, so callers may not alias each other's entries.
func Default() (*Catalog, error) {
	return Load(bytes.NewReader(embeddedCatalog))
}
