// Package search implements free-text matching of catalog items by title
// token containment.
package search

import (
	"strings"

	"nzbmock/pkg/models"
)

// Query punctuation is treated as whitespace so that "Example: NZB!"
// tokenizes the same as "Example NZB".
var punctuation = strings.NewReplacer(
	",", " ", ".", " ", "!", " ", "?", " ",
	";", " ", ":", " ", `"`, " ", "'", " ", "-", " ",
)

// Tokenize splits a query into lowercase tokens, stripping common
// punctuation. An empty or all-punctuation query yields no tokens.
func Tokenize(query string) []string {
	return strings.Fields(strings.ToLower(punctuation.Replace(query)))
}

// Match returns the items whose titles contain every query token as a
// case-insensitive substring, preserving catalog order. An empty query
// matches every item. There is no word-boundary matching, ranking or
// fuzziness: "exam" matches "Example".
func Match(items []*models.Item, query string) []*models.Item {
	tokens := Tokenize(query)
	if len(tokens) == 0 {
		return items
	}

	matched := make([]*models.Item, 0, len(items))
	for _, item := range items {
		title := strings.ToLower(item.Title)
		all := true
		for _, token := range tokens {
			if !strings.Contains(title, token) {
				all = false
				break
			}
		}
		if all {
			matched = append(matched, item)
		}
	}
	return matched
}

// FilterByCategory keeps the items carrying at least one of the requested
// category ids. The cat parameter is the comma-separated list from the
// request; an empty parameter keeps everything.
func FilterByCategory(items []*models.Item, cat string) []*models.Item {
	if cat == "" {
		return items
	}

	wanted := make(map[string]bool)
	for _, id := range strings.Split(cat, ",") {
		if id = strings.TrimSpace(id); id != "" {
			wanted[id] = true
		}
	}
	if len(wanted) == 0 {
		return items
	}

	matched := make([]*models.Item, 0, len(items))
	for _, item := range items {
		for _, id := range item.Categories {
			if wanted[id] {
				matched = append(matched, item)
				break
			}
		}
	}
	return matched
}
