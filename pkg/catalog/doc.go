// Package catalog loads the NZB descriptor catalog from its JSON file and
// serves identifier lookups against the resulting read-only set.
package catalog
