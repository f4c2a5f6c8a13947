package source

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/scogonw/sheetstack/internal/engine"
)

// TableFromValues converts a raw worksheet value grid into an engine.Table.
//
// The first row is the header: cells are trimmed and empty or
// whitespace-only headers are dropped. Each data row is truncated to the
// header width and padded with empty strings where short, so every row in
// the resulting table has the full column set.
//
// An empty grid yields an empty table; a grid whose header row contains no
// usable names is a KindMalformed error.
func TableFromValues(values [][]any) (*engine.Table, error) {
	if len(values) == 0 {
		return engine.NewTable(nil, nil), nil
	}

	var columns []string
	for _, cell := range values[0] {
		if h := strings.TrimSpace(cellString(cell)); h != "" {
			columns = append(columns, h)
		}
	}
	if len(columns) == 0 {
		return nil, malformedf("header row has no usable column names")
	}

	rows := make([][]string, 0, len(values)-1)
	for _, raw := range values[1:] {
		row := make([]string, len(columns))
		for i := range row {
			if i < len(raw) {
				row[i] = cellString(raw[i])
			}
		}
		rows = append(rows, row)
	}

	return engine.NewTable(columns, rows), nil
}

// cellString renders one API cell value as a string. The Sheets API
// returns formatted values as strings, but numbers and booleans can come
// through as native types depending on render options.
func cellString(v any) string {
	switch c := v.(type) {
	case nil:
		return ""
	case string:
		return c
	case bool:
		if c {
			return "true"
		}
		return "false"
	case float64:
		// Avoid "1e+06" style output for large plain numbers.
		return strconv.FormatFloat(c, 'f', -1, 64)
	default:
		return fmt.Sprint(c)
	}
}
