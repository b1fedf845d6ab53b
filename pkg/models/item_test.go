package models

import (
	"encoding/json"
	"reflect"
	"testing"
)

func TestStringListUnmarshal(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    StringList
		wantErr bool
	}{
		{"scalar", `"5040"`, StringList{"5040"}, false},
		{"list", `["5040"]`, StringList{"5040"}, false},
		{"multiple", `["5000","5030"]`, StringList{"5000", "5030"}, false},
		{"empty list", `[]`, StringList{}, false},
		{"number", `5040`, nil, true},
		{"object", `{"id":"5040"}`, nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got StringList
			err := json.Unmarshal([]byte(tt.input), &got)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Unmarshal(%s) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err == nil && !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Unmarshal(%s) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestScalarAndListNormalizeIdentically(t *testing.T) {
	var scalar, list Item
	if err := json.Unmarshal([]byte(`{"filename":"a.nzb","title":"A","categories":"5040"}`), &scalar); err != nil {
		t.Fatalf("unmarshal scalar form: %v", err)
	}
	if err := json.Unmarshal([]byte(`{"filename":"a.nzb","title":"A","categories":["5040"]}`), &list); err != nil {
		t.Fatalf("unmarshal list form: %v", err)
	}
	scalar.Normalize()
	list.Normalize()
	if !reflect.DeepEqual(scalar.Categories, list.Categories) {
		t.Errorf("scalar form = %v, list form = %v", scalar.Categories, list.Categories)
	}
}

func TestItemID(t *testing.T) {
	tests := []struct {
		filename string
		want     string
	}{
		{"example1.nzb", "example1"},
		{"no-extension", "no-extension"},
		{"two.dots.nzb", "two.dots"},
		{"sub/dir/file.nzb", "sub/dir/file"},
	}
	for _, tt := range tests {
		item := &Item{Filename: tt.filename}
		if got := item.ID(); got != tt.want {
			t.Errorf("ID(%q) = %q, want %q", tt.filename, got, tt.want)
		}
	}
}

func TestItemNormalize(t *testing.T) {
	tests := []struct {
		name           string
		item           Item
		wantGroup      string
		wantCategories StringList
	}{
		{
			name:           "defaults applied",
			item:           Item{Filename: "a.nzb", Title: "A"},
			wantGroup:      DefaultGroup,
			wantCategories: StringList{DefaultCategory},
		},
		{
			name:           "empty category ids dropped",
			item:           Item{Filename: "a.nzb", Title: "A", Categories: StringList{"", " ", "5040"}},
			wantGroup:      DefaultGroup,
			wantCategories: StringList{"5040"},
		},
		{
			name:           "only empty ids falls back to default",
			item:           Item{Filename: "a.nzb", Title: "A", Categories: StringList{""}},
			wantGroup:      DefaultGroup,
			wantCategories: StringList{DefaultCategory},
		},
		{
			name:           "existing values kept",
			item:           Item{Filename: "a.nzb", Title: "A", Group: "alt.binaries.teevee", Categories: StringList{"5000", "5030"}},
			wantGroup:      "alt.binaries.teevee",
			wantCategories: StringList{"5000", "5030"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.item.Normalize()
			if tt.item.Group != tt.wantGroup {
				t.Errorf("Group = %q, want %q", tt.item.Group, tt.wantGroup)
			}
			if !reflect.DeepEqual(tt.item.Categories, tt.wantCategories) {
				t.Errorf("Categories = %v, want %v", tt.item.Categories, tt.wantCategories)
			}
		})
	}
}

func TestItemValidate(t *testing.T) {
	tests := []struct {
		name    string
		item    Item
		wantErr bool
	}{
		{"valid", Item{Filename: "a.nzb", Title: "A"}, false},
		{"missing filename", Item{Title: "A"}, true},
		{"missing title", Item{Filename: "a.nzb"}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.item.Validate(); (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
