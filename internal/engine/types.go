package engine

import (
	"bytes"
	"encoding/json"
)

// Row is one record: cell values aligned with the owning Table's Columns.
// A row is always exactly as wide as the header; missing cells are empty
// strings.
type Row []string

// Table is an immutable in-memory snapshot of one worksheet.
// The query pipeline never mutates a Table; every stage produces a new
// row slice backed by the same cells.
type Table struct {
	Columns []string
	Rows    []Row

	index map[string]int
}

// NewTable builds a Table from a header and raw rows.
// Rows are trimmed or padded with empty strings to the header width, and
// the column index is built once here rather than per access.
func NewTable(columns []string, rows [][]string) *Table {
	t := &Table{
		Columns: columns,
		Rows:    make([]Row, len(rows)),
		index:   make(map[string]int, len(columns)),
	}
	for i, col := range columns {
		// First occurrence wins for duplicate column names.
		if _, exists := t.index[col]; !exists {
			t.index[col] = i
		}
	}
	for i, raw := range rows {
		row := make(Row, len(columns))
		copy(row, raw)
		t.Rows[i] = row
	}
	return t
}

// ColumnIndex returns the position of a named column in the header.
func (t *Table) ColumnIndex(name string) (int, bool) {
	i, ok := t.index[name]
	return i, ok
}

// Cell returns the value of the named column in a row.
// The second return is false if the column is not in the header.
func (t *Table) Cell(row Row, column string) (string, bool) {
	i, ok := t.index[column]
	if !ok || i >= len(row) {
		return "", ok
	}
	return row[i], true
}

// SortSpec names a sort column and direction.
type SortSpec struct {
	Column     string
	Descending bool
}

// SearchSpec is a full-text search request: a query string and an optional
// list of columns to restrict the search to.
type SearchSpec struct {
	Query  string
	Fields []string
}

// QueryDescription is the parsed, validated intent extracted from request
// parameters. Zero values mean "stage not requested": an empty filter map
// passes everything through, a nil sort leaves order untouched, a zero
// limit returns all remaining rows.
type QueryDescription struct {
	Filters map[string]string
	Sort    *SortSpec
	Search  *SearchSpec
	Offset  int
	Limit   int
}

// ResultEnvelope is the final query result: the post-pagination rows, the
// total match count before pagination, and the applied window.
type ResultEnvelope struct {
	Columns []string
	Rows    []Row
	Total   int
	Offset  int
	Limit   int
}

// Objects returns the envelope rows as JSON-marshalable objects that
// preserve header column order. Plain maps would serialize with sorted
// keys, losing the worksheet's column order.
func (e *ResultEnvelope) Objects() []json.Marshaler {
	out := make([]json.Marshaler, len(e.Rows))
	for i, row := range e.Rows {
		out[i] = rowObject{columns: e.Columns, row: row}
	}
	return out
}

// rowObject marshals a Row as a JSON object keyed by column name, in
// header order.
type rowObject struct {
	columns []string
	row     Row
}

func (o rowObject) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, col := range o.columns {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(col)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		var cell string
		if i < len(o.row) {
			cell = o.row[i]
		}
		val, err := json.Marshal(cell)
		if err != nil {
			return nil, err
		}
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
