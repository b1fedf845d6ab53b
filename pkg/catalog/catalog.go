package catalog

import (
	"encoding/json"
	"fmt"
	"os"

	"nzbmock/pkg/models"
)

// Catalog is the immutable, in-memory set of NZB descriptors loaded at
// startup. Items keep their file order; lookups go through the derived
// identifier.
type Catalog struct {
	items []*models.Item
	byID  map[string]*models.Item
}

// Load reads and validates the catalog JSON file. It fails when the file
// is missing or unparseable, when an entry lacks a required field, or when
// two entries derive the same identifier. Backing files under the NZB
// directory are not checked here; that happens lazily at download time.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading catalog file: %w", err)
	}

	var items []*models.Item
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("parsing catalog file %q: %w", path, err)
	}

	byID := make(map[string]*models.Item, len(items))
	for n, item := range items {
		if item == nil {
			return nil, fmt.Errorf("catalog entry %d: expected an object", n)
		}
		if err := item.Validate(); err != nil {
			return nil, fmt.Errorf("catalog entry %d: %w", n, err)
		}
		item.Normalize()

		id := item.ID()
		if existing, ok := byID[id]; ok {
			return nil, fmt.Errorf("catalog entries %q and %q derive the same identifier %q", existing.Filename, item.Filename, id)
		}
		byID[id] = item
	}

	return &Catalog{items: items, byID: byID}, nil
}

// Items returns all items in catalog order. Callers must not mutate the
// returned slice.
func (c *Catalog) Items() []*models.Item {
	return c.items
}

// Get looks up an item by its derived identifier.
func (c *Catalog) Get(id string) (*models.Item, bool) {
	item, ok := c.byID[id]
	return item, ok
}

// Len returns the number of items in the catalog.
func (c *Catalog) Len() int {
	return len(c.items)
}
