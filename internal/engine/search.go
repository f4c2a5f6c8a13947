package engine

import "strings"

// Search returns the rows where the query occurs as a case-insensitive
// substring of at least one searched cell. With no field list every column
// is searched; with a field list only the named columns are, and unknown
// names are dropped from the list rather than rejected. An empty query is
// a no-op.
func Search(t *Table, rows []Row, spec SearchSpec) []Row {
	query := strings.ToLower(strings.TrimSpace(spec.Query))
	if query == "" {
		return rows
	}

	var cols []int
	if len(spec.Fields) > 0 {
		for _, f := range spec.Fields {
			if i, ok := t.ColumnIndex(f); ok {
				cols = append(cols, i)
			}
		}
		// Every requested field was unknown: nothing to search, so
		// nothing matches.
		if len(cols) == 0 {
			return []Row{}
		}
	} else {
		cols = make([]int, len(t.Columns))
		for i := range t.Columns {
			cols[i] = i
		}
	}

	out := make([]Row, 0, len(rows))
	for _, row := range rows {
		for _, c := range cols {
			if c < len(row) && strings.Contains(strings.ToLower(row[c]), query) {
				out = append(out, row)
				break
			}
		}
	}
	return out
}
