package engine

import (
	"encoding/json"
	"errors"
	"net/url"
	"reflect"
	"testing"
)

// ----------------------------------------------------------------------------
// ParseQuery
// ----------------------------------------------------------------------------

func TestParseQuery_Pagination(t *testing.T) {
	desc, err := ParseQuery(url.Values{"limit": {"10"}, "offset": {"5"}})
	if err != nil {
		t.Fatalf("ParseQuery() error = %v", err)
	}
	if desc.Limit != 10 || desc.Offset != 5 {
		t.Errorf("limit=%d offset=%d, want 10 and 5", desc.Limit, desc.Offset)
	}
}

func TestParseQuery_ValidationErrors(t *testing.T) {
	tests := []struct {
		name      string
		values    url.Values
		wantParam string
	}{
		{name: "non-numeric limit", values: url.Values{"limit": {"abc"}}, wantParam: "limit"},
		{name: "zero limit", values: url.Values{"limit": {"0"}}, wantParam: "limit"},
		{name: "negative limit", values: url.Values{"limit": {"-3"}}, wantParam: "limit"},
		{name: "non-numeric offset", values: url.Values{"offset": {"x"}}, wantParam: "offset"},
		{name: "negative offset", values: url.Values{"offset": {"-1"}}, wantParam: "offset"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseQuery(tt.values)
			var verr *ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("ParseQuery() error = %v, want *ValidationError", err)
			}
			if verr.Param != tt.wantParam {
				t.Errorf("ValidationError.Param = %q, want %q", verr.Param, tt.wantParam)
			}
		})
	}
}

func TestParseQuery_Sort(t *testing.T) {
	tests := []struct {
		name string
		sort string
		want *SortSpec
	}{
		{name: "asc", sort: "name:asc", want: &SortSpec{Column: "name"}},
		{name: "desc", sort: "name:desc", want: &SortSpec{Column: "name", Descending: true}},
		{name: "bare field defaults asc", sort: "name", want: &SortSpec{Column: "name"}},
		{name: "malformed direction defaults asc", sort: "name:down", want: &SortSpec{Column: "name"}},
		{name: "uppercase direction", sort: "name:DESC", want: &SortSpec{Column: "name", Descending: true}},
		{name: "empty", sort: "", want: nil},
		{name: "colon only", sort: ":desc", want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			desc, err := ParseQuery(url.Values{"sort": {tt.sort}})
			if err != nil {
				t.Fatalf("ParseQuery() error = %v", err)
			}
			if !reflect.DeepEqual(desc.Sort, tt.want) {
				t.Errorf("Sort = %+v, want %+v", desc.Sort, tt.want)
			}
		})
	}
}

func TestParseQuery_FiltersAndReservedParams(t *testing.T) {
	desc, err := ParseQuery(url.Values{
		"limit":     {"5"},
		"offset":    {"0"},
		"sort":      {"name:asc"},
		"worksheet": {"Sheet2"},
		"q":         {"bob"},
		"fields":    {"name,age"},
		"age":       {"30"},
		"name":      {"Alice", "Bob"},
	})
	if err != nil {
		t.Fatalf("ParseQuery() error = %v", err)
	}

	want := map[string]string{"age": "30", "name": "Alice"}
	if !reflect.DeepEqual(desc.Filters, want) {
		t.Errorf("Filters = %v, want %v (reserved params must not become filters)", desc.Filters, want)
	}
	if desc.Search == nil || desc.Search.Query != "bob" {
		t.Fatalf("Search = %+v, want query %q", desc.Search, "bob")
	}
	if !reflect.DeepEqual(desc.Search.Fields, []string{"name", "age"}) {
		t.Errorf("Search.Fields = %v, want [name age]", desc.Search.Fields)
	}
}

// ----------------------------------------------------------------------------
// Run
// ----------------------------------------------------------------------------

func TestRun_FilterSortPaginate(t *testing.T) {
	// Filter age=30 keeps Alice and Carl in order; sort name:desc gives
	// Carl, Alice; limit=1 returns Carl with total still 2.
	tbl := peopleTable()

	env := Run(tbl, QueryDescription{
		Filters: map[string]string{"age": "30"},
		Sort:    &SortSpec{Column: "name", Descending: true},
		Limit:   1,
	})

	if got := names(env.Rows); !reflect.DeepEqual(got, []string{"Carl"}) {
		t.Errorf("rows = %v, want [Carl]", got)
	}
	if env.Total != 2 {
		t.Errorf("Total = %d, want 2", env.Total)
	}
}

func TestRun_SearchStage(t *testing.T) {
	tbl := peopleTable()

	env := Run(tbl, QueryDescription{
		Search: &SearchSpec{Query: "ali"},
	})

	if got := names(env.Rows); !reflect.DeepEqual(got, []string{"Alice"}) {
		t.Errorf("rows = %v, want [Alice]", got)
	}
	if env.Total != 1 {
		t.Errorf("Total = %d, want 1", env.Total)
	}
}

func TestRun_UnknownSortColumnKeepsOrder(t *testing.T) {
	tbl := peopleTable()

	env := Run(tbl, QueryDescription{
		Sort: &SortSpec{Column: "nonexistent"},
	})

	if got := names(env.Rows); !reflect.DeepEqual(got, []string{"Alice", "Bob", "Carl"}) {
		t.Errorf("rows = %v, want original order", got)
	}
}

func TestRun_OffsetPastMatchesKeepsTotal(t *testing.T) {
	tbl := peopleTable()

	env := Run(tbl, QueryDescription{
		Filters: map[string]string{"age": "30"},
		Offset:  10,
	})

	if len(env.Rows) != 0 {
		t.Errorf("rows = %v, want empty", names(env.Rows))
	}
	if env.Total != 2 {
		t.Errorf("Total = %d, want 2 (total reflects matches, not the empty page)", env.Total)
	}
}

func TestRun_RoundTrip(t *testing.T) {
	// Paginating with offset 0 and a limit of the full table returns
	// every filtered+sorted row, with total equal to the filtered count.
	tbl := peopleTable()

	env := Run(tbl, QueryDescription{
		Filters: map[string]string{"active": "true"},
		Sort:    &SortSpec{Column: "name"},
		Limit:   len(tbl.Rows),
	})

	if got := names(env.Rows); !reflect.DeepEqual(got, []string{"Alice", "Carl"}) {
		t.Errorf("rows = %v, want [Alice Carl]", got)
	}
	if env.Total != len(env.Rows) {
		t.Errorf("Total = %d, want %d", env.Total, len(env.Rows))
	}
}

func TestRun_EmptyQueryReturnsAll(t *testing.T) {
	tbl := peopleTable()
	env := Run(tbl, QueryDescription{})

	if got := names(env.Rows); !reflect.DeepEqual(got, []string{"Alice", "Bob", "Carl"}) {
		t.Errorf("rows = %v, want all rows in order", got)
	}
	if env.Total != 3 {
		t.Errorf("Total = %d, want 3", env.Total)
	}
}

// ----------------------------------------------------------------------------
// Envelope JSON
// ----------------------------------------------------------------------------

func TestResultEnvelope_ObjectsPreserveColumnOrder(t *testing.T) {
	tbl := NewTable(
		[]string{"zeta", "alpha", "mid"},
		[][]string{{"1", "2", "3"}},
	)
	env := Run(tbl, QueryDescription{})

	data, err := json.Marshal(env.Objects())
	if err != nil {
		t.Fatalf("marshal error = %v", err)
	}

	want := `[{"zeta":"1","alpha":"2","mid":"3"}]`
	if string(data) != want {
		t.Errorf("marshaled = %s, want %s", data, want)
	}
}

func TestResultEnvelope_ObjectsRoundTripValues(t *testing.T) {
	tbl := peopleTable()
	env := Run(tbl, QueryDescription{Filters: map[string]string{"name": "Bob"}})

	data, err := json.Marshal(env.Objects())
	if err != nil {
		t.Fatalf("marshal error = %v", err)
	}

	var decoded []map[string]string
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("unmarshal error = %v", err)
	}
	if len(decoded) != 1 || decoded[0]["name"] != "Bob" || decoded[0]["age"] != "25" {
		t.Errorf("decoded = %v, want Bob aged 25", decoded)
	}
}
