package engine

// coerce.go reinterprets raw cell strings as typed values for comparison.
//
// Filters and sorts both go through Coerce so that, e.g., sorting a column
// of numeric-looking strings orders numerically, and the filter value "10"
// matches the cell "10.0". Coerced values are transient; result rows always
// carry the original strings.

import (
	"math"
	"strconv"
	"strings"
	"time"
)

// cellParser attempts one typed interpretation of a raw cell value.
type cellParser func(string) (any, bool)

// parsers is the coercion chain, tried in order. The first success wins and
// anything unparseable falls through to string. New interpretations (custom
// date formats, durations) slot in here without touching call sites.
var parsers = []cellParser{
	parseBoolCell,
	parseIntCell,
	parseFloatCell,
	parseDateCell,
}

// dateLayouts are the accepted ISO-8601 shapes, tried in order.
var dateLayouts = []string{
	"2006-01-02",
	"2006-01-02T15:04:05",
	time.RFC3339,
}

// Coerce returns the best typed value for a raw cell string: bool, int64,
// float64, time.Time, or the original string. It never fails.
func Coerce(s string) any {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return s
	}
	for _, parse := range parsers {
		if v, ok := parse(trimmed); ok {
			return v
		}
	}
	return s
}

func parseBoolCell(s string) (any, bool) {
	switch strings.ToLower(s) {
	case "true":
		return true, true
	case "false":
		return false, true
	}
	return nil, false
}

func parseIntCell(s string) (any, bool) {
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return nil, false
	}
	return n, true
}

func parseFloatCell(s string) (any, bool) {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsInf(f, 0) || math.IsNaN(f) {
		return nil, false
	}
	return f, true
}

func parseDateCell(s string) (any, bool) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return nil, false
}

// typeRank orders coerced values of different types so that mixed-type
// columns still sort deterministically: booleans, then numbers, then
// dates, then strings.
func typeRank(v any) int {
	switch v.(type) {
	case bool:
		return 0
	case int64, float64:
		return 1
	case time.Time:
		return 2
	default:
		return 3
	}
}

// asFloat widens a numeric coerced value to float64.
func asFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case int64:
		return float64(n), true
	case float64:
		return n, true
	}
	return 0, false
}

// compareValues orders two coerced values, returning a negative, zero, or
// positive result. Values of different types order by typeRank; integers
// and floats compare as numbers.
func compareValues(a, b any) int {
	if ra, rb := typeRank(a), typeRank(b); ra != rb {
		return ra - rb
	}

	switch av := a.(type) {
	case bool:
		bv := b.(bool)
		switch {
		case av == bv:
			return 0
		case !av:
			return -1
		default:
			return 1
		}
	case int64:
		if bv, ok := b.(int64); ok {
			switch {
			case av < bv:
				return -1
			case av > bv:
				return 1
			default:
				return 0
			}
		}
	case time.Time:
		return av.Compare(b.(time.Time))
	case string:
		return strings.Compare(av, b.(string))
	}

	// Mixed int64/float64 (or float64/float64) fall through to here.
	af, _ := asFloat(a)
	bf, _ := asFloat(b)
	switch {
	case af < bf:
		return -1
	case af > bf:
		return 1
	default:
		return 0
	}
}

// equalValues reports type-aware equality of two coerced values.
// Numbers compare across int/float; strings compare case-sensitively.
func equalValues(a, b any) bool {
	if typeRank(a) != typeRank(b) {
		return false
	}
	return compareValues(a, b) == 0
}
