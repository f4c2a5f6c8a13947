package engine

import "sort"

// Sort returns the rows ordered by the coerced value of the named column.
// Ties keep their original relative order for both directions. A sort
// column that is not in the header is a no-op, consistent with the
// permissive filter policy.
func Sort(t *Table, rows []Row, spec SortSpec) []Row {
	col, ok := t.ColumnIndex(spec.Column)
	if !ok {
		return rows
	}

	type keyed struct {
		key any
		row Row
	}
	keys := make([]keyed, len(rows))
	for i, row := range rows {
		var cell string
		if col < len(row) {
			cell = row[col]
		}
		keys[i] = keyed{key: Coerce(cell), row: row}
	}

	sort.SliceStable(keys, func(i, j int) bool {
		c := compareValues(keys[i].key, keys[j].key)
		if spec.Descending {
			return c > 0
		}
		return c < 0
	})

	out := make([]Row, len(keys))
	for i, k := range keys {
		out[i] = k.row
	}
	return out
}
