package engine

import (
	"net/url"
	"strconv"
	"strings"
)

// reservedParams are recognized query parameter names. They are never
// treated as column filters, even when the worksheet has a column of the
// same name; rename such a column to filter on it.
var reservedParams = map[string]bool{
	"worksheet": true,
	"limit":     true,
	"offset":    true,
	"sort":      true,
	"q":         true,
	"fields":    true,
}

// ParseQuery maps raw request parameters into a QueryDescription.
//
// Recognized parameters: limit (>= 1), offset (>= 0), sort ("field" or
// "field:asc"/"field:desc"), q (search string), fields (comma-separated
// search columns), worksheet (consumed upstream). Every other parameter
// becomes an equality filter against the column of the same name; for
// repeated parameters the first value wins.
//
// Only malformed limit/offset values produce a ValidationError.
func ParseQuery(values url.Values) (QueryDescription, error) {
	desc := QueryDescription{Filters: make(map[string]string)}

	if raw := values.Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			return desc, &ValidationError{Param: "limit", Reason: "must be an integer"}
		}
		if n < 1 {
			return desc, &ValidationError{Param: "limit", Reason: "must be at least 1"}
		}
		desc.Limit = n
	}

	if raw := values.Get("offset"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			return desc, &ValidationError{Param: "offset", Reason: "must be an integer"}
		}
		if n < 0 {
			return desc, &ValidationError{Param: "offset", Reason: "must be non-negative"}
		}
		desc.Offset = n
	}

	desc.Sort = parseSort(values.Get("sort"))

	if q := values.Get("q"); q != "" {
		desc.Search = &SearchSpec{
			Query:  q,
			Fields: splitFields(values.Get("fields")),
		}
	}

	for key, vals := range values {
		if reservedParams[key] || len(vals) == 0 || vals[0] == "" {
			continue
		}
		desc.Filters[key] = vals[0]
	}

	return desc, nil
}

// parseSort interprets "field", "field:asc", or "field:desc". A malformed
// or unknown direction defaults to ascending rather than failing.
func parseSort(raw string) *SortSpec {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	field, dir := raw, ""
	if i := strings.Index(raw, ":"); i >= 0 {
		field, dir = raw[:i], raw[i+1:]
	}
	field = strings.TrimSpace(field)
	if field == "" {
		return nil
	}
	return &SortSpec{
		Column:     field,
		Descending: strings.EqualFold(strings.TrimSpace(dir), "desc"),
	}
}

// splitFields splits a comma-separated field list, dropping empties.
func splitFields(raw string) []string {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	fields := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			fields = append(fields, p)
		}
	}
	return fields
}

// Run executes the query pipeline over a table snapshot: filter, then
// search, then sort, then paginate. The envelope's Total counts all
// filter/search matches before the pagination window is applied.
// Run never mutates the table and never fails; bad parameters have
// already been rejected by ParseQuery.
func Run(t *Table, desc QueryDescription) *ResultEnvelope {
	rows := Filter(t, t.Rows, desc.Filters)
	if desc.Search != nil {
		rows = Search(t, rows, *desc.Search)
	}
	if desc.Sort != nil {
		rows = Sort(t, rows, *desc.Sort)
	}

	total := len(rows)
	page := Paginate(rows, desc.Offset, desc.Limit)

	return &ResultEnvelope{
		Columns: t.Columns,
		Rows:    page,
		Total:   total,
		Offset:  desc.Offset,
		Limit:   desc.Limit,
	}
}
