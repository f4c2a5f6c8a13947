package engine

import (
	"reflect"
	"testing"
)

func TestSearch(t *testing.T) {
	tbl := peopleTable()

	tests := []struct {
		name string
		spec SearchSpec
		want []string
	}{
		{
			name: "case insensitive substring",
			spec: SearchSpec{Query: "ali"},
			want: []string{"Alice"},
		},
		{
			name: "uppercase query",
			spec: SearchSpec{Query: "BOB"},
			want: []string{"Bob"},
		},
		{
			name: "matches any column",
			spec: SearchSpec{Query: "25"},
			want: []string{"Bob"},
		},
		{
			name: "empty query is a no-op",
			spec: SearchSpec{Query: ""},
			want: []string{"Alice", "Bob", "Carl"},
		},
		{
			name: "whitespace query is a no-op",
			spec: SearchSpec{Query: "   "},
			want: []string{"Alice", "Bob", "Carl"},
		},
		{
			name: "restricted to one field",
			spec: SearchSpec{Query: "30", Fields: []string{"name"}},
			want: []string{},
		},
		{
			name: "restricted field matches",
			spec: SearchSpec{Query: "car", Fields: []string{"name"}},
			want: []string{"Carl"},
		},
		{
			name: "unknown field ignored alongside known",
			spec: SearchSpec{Query: "car", Fields: []string{"nonexistent", "name"}},
			want: []string{"Carl"},
		},
		{
			name: "all fields unknown matches nothing",
			spec: SearchSpec{Query: "car", Fields: []string{"nonexistent"}},
			want: []string{},
		},
		{
			name: "no match",
			spec: SearchSpec{Query: "zzz"},
			want: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := names(Search(tbl, tbl.Rows, tt.spec))
			if len(got) == 0 && len(tt.want) == 0 {
				return
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Search(%+v) = %v, want %v", tt.spec, got, tt.want)
			}
		})
	}
}

func TestSearch_AfterFilter(t *testing.T) {
	// Search composes over an already filtered row set.
	tbl := peopleTable()
	filtered := Filter(tbl, tbl.Rows, map[string]string{"age": "30"})
	got := names(Search(tbl, filtered, SearchSpec{Query: "carl"}))
	want := []string{"Carl"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Search over filtered rows = %v, want %v", got, want)
	}
}
