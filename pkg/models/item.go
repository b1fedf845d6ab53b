package models

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"
)

// Defaults applied while loading the catalog.
const (
	// DefaultGroup is used when a catalog entry carries no newsgroup.
	DefaultGroup = "alt.binaries"

	// DefaultCategory (Newznab "Other") is used when a catalog entry
	// carries no categories.
	DefaultCategory = "7000"
)

// StringList decodes a JSON value that may be either a single string or a
// list of strings, normalizing both shapes to a list.
type StringList []string

func (s *StringList) UnmarshalJSON(data []byte) error {
	var single string
	if err := json.Unmarshal(data, &single); err == nil {
		*s = StringList{single}
		return nil
	}
	var list []string
	if err := json.Unmarshal(data, &list); err != nil {
		return fmt.Errorf("expected string or list of strings: %w", err)
	}
	*s = StringList(list)
	return nil
}

// Item represents one NZB catalog entry.
type Item struct {
	Filename   string     `json:"filename"`
	Title      string     `json:"title"`
	Size       uint64     `json:"size"`
	Group      string     `json:"group"`
	Categories StringList `json:"categories"`
}

// ID returns the catalog-unique identifier used to address the item in
// get requests: the filename without its extension.
func (i *Item) ID() string {
	return strings.TrimSuffix(i.Filename, filepath.Ext(i.Filename))
}

// Normalize fills defaulted fields and drops empty category ids. Called
// once by the catalog loader.
func (i *Item) Normalize() {
	if i.Group == "" {
		i.Group = DefaultGroup
	}
	categories := i.Categories[:0]
	for _, id := range i.Categories {
		if strings.TrimSpace(id) != "" {
			categories = append(categories, id)
		}
	}
	if len(categories) == 0 {
		categories = StringList{DefaultCategory}
	}
	i.Categories = categories
}

// Validate checks the structurally required fields.
func (i *Item) Validate() error {
	if i.Filename == "" {
		return fmt.Errorf("filename is required")
	}
	if i.Title == "" {
		return fmt.Errorf("title is required")
	}
	return nil
}
