package engine

// Filter returns the subsequence of rows where, for every filter, the
// coerced cell value equals the coerced expected value. Filters combine
// with AND; original row order is preserved. Filters naming columns that
// are not in the header are ignored, and an empty (or fully ignored)
// filter set returns the input unchanged.
func Filter(t *Table, rows []Row, filters map[string]string) []Row {
	if len(filters) == 0 {
		return rows
	}

	type predicate struct {
		col  int
		want any
	}
	preds := make([]predicate, 0, len(filters))
	for col, raw := range filters {
		i, ok := t.ColumnIndex(col)
		if !ok {
			continue
		}
		preds = append(preds, predicate{col: i, want: Coerce(raw)})
	}
	if len(preds) == 0 {
		return rows
	}

	out := make([]Row, 0, len(rows))
	for _, row := range rows {
		matched := true
		for _, p := range preds {
			if p.col >= len(row) || !equalValues(Coerce(row[p.col]), p.want) {
				matched = false
				break
			}
		}
		if matched {
			out = append(out, row)
		}
	}
	return out
}
