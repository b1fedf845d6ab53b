// Package categories holds the static Newznab category reference table
// used to resolve category ids to display names.
package categories

import (
	"bytes"
	_ "embed"
	"encoding/csv"
	"fmt"
	"strconv"
)

//go:embed newznab_categories.csv
var tableCSV []byte

// Table maps category ids to display names. It is loaded once at startup
// and immutable afterwards.
type Table map[string]string

// Load parses the bundled reference table.
func Load() (Table, error) {
	reader := csv.NewReader(bytes.NewReader(tableCSV))
	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parsing category table: %w", err)
	}

	table := make(Table, len(records))
	for n, record := range records {
		if n == 0 {
			// header row
			continue
		}
		if len(record) < 2 {
			continue
		}
		table[record[0]] = record[1]
	}
	return table, nil
}

// Name resolves a category id to its display name. Unknown ids are
// returned unchanged; lookup never fails.
func (t Table) Name(id string) string {
	if name, ok := t[id]; ok {
		return name
	}
	return id
}

// DisplayNames resolves a list of category ids to display names,
// suppressing a parent category when one of its children is also present.
// Newznab ids encode the hierarchy numerically: 5040 (TV/HD) is a child of
// 5000 (TV), so ["5000", "5040"] renders as just ["TV/HD"].
func (t Table) DisplayNames(ids []string) []string {
	parents := make(map[string]bool, len(ids))
	for _, id := range ids {
		if n, err := strconv.Atoi(id); err == nil && n%1000 != 0 {
			parents[strconv.Itoa(n/1000*1000)] = true
		}
	}

	names := make([]string, 0, len(ids))
	for _, id := range ids {
		if parents[id] {
			continue
		}
		names = append(names, t.Name(id))
	}
	return names
}
