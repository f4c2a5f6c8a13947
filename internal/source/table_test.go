package source

import (
	"errors"
	"reflect"
	"testing"
)

func TestTableFromValues(t *testing.T) {
	values := [][]any{
		{"name", "age", "active"},
		{"Alice", "30", "true"},
		{"Bob", "25"},
		{"Carl", "30", "true", "extra cell"},
	}

	tbl, err := TableFromValues(values)
	if err != nil {
		t.Fatalf("TableFromValues() error = %v", err)
	}

	if !reflect.DeepEqual(tbl.Columns, []string{"name", "age", "active"}) {
		t.Errorf("Columns = %v", tbl.Columns)
	}
	if len(tbl.Rows) != 3 {
		t.Fatalf("rows = %d, want 3", len(tbl.Rows))
	}

	// Short rows pad with empty strings, long rows truncate.
	if got := []string(tbl.Rows[1]); !reflect.DeepEqual(got, []string{"Bob", "25", ""}) {
		t.Errorf("short row = %v, want padded", got)
	}
	if got := []string(tbl.Rows[2]); !reflect.DeepEqual(got, []string{"Carl", "30", "true"}) {
		t.Errorf("long row = %v, want truncated", got)
	}
}

func TestTableFromValues_HeaderCleaning(t *testing.T) {
	values := [][]any{
		{"  name  ", "", "   ", "age"},
		{"Alice", "ignored", "ignored", "30"},
	}

	tbl, err := TableFromValues(values)
	if err != nil {
		t.Fatalf("TableFromValues() error = %v", err)
	}

	// Empty and whitespace-only headers are dropped; the row is mapped
	// against the surviving header names positionally.
	if !reflect.DeepEqual(tbl.Columns, []string{"name", "age"}) {
		t.Errorf("Columns = %v, want [name age]", tbl.Columns)
	}
	if got := []string(tbl.Rows[0]); !reflect.DeepEqual(got, []string{"Alice", "ignored"}) {
		t.Errorf("row = %v", got)
	}
}

func TestTableFromValues_Empty(t *testing.T) {
	tbl, err := TableFromValues(nil)
	if err != nil {
		t.Fatalf("TableFromValues(nil) error = %v", err)
	}
	if len(tbl.Columns) != 0 || len(tbl.Rows) != 0 {
		t.Errorf("empty grid produced columns=%v rows=%d", tbl.Columns, len(tbl.Rows))
	}
}

func TestTableFromValues_MalformedHeader(t *testing.T) {
	_, err := TableFromValues([][]any{
		{"", "  ", ""},
		{"a", "b", "c"},
	})

	var serr *Error
	if !errors.As(err, &serr) || serr.Kind != KindMalformed {
		t.Fatalf("error = %v, want KindMalformed", err)
	}
}

func TestTableFromValues_NativeCellTypes(t *testing.T) {
	values := [][]any{
		{"name", "count", "flag"},
		{"x", float64(1000000), true},
	}

	tbl, err := TableFromValues(values)
	if err != nil {
		t.Fatalf("TableFromValues() error = %v", err)
	}

	got := []string(tbl.Rows[0])
	want := []string{"x", "1000000", "true"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("row = %v, want %v", got, want)
	}
}
