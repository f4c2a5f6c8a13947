// Package engine implements the in-memory query pipeline for sheet data.
//
// This package is the heart of the service, containing all query logic
// independent of any transport or spreadsheet provider. It can be used by
// web handlers, CLI tools, or tests without modification.
//
// # Pipeline
//
// [Run] executes a fixed pipeline over an immutable [Table] snapshot:
//
//	filter -> search -> sort -> paginate
//
// Filtering and search narrow the candidate set before sorting is paid for,
// and pagination is always last so the envelope's total reflects all
// filter/search matches, not just the returned page.
//
// # Coercion
//
// Cell values arrive as strings. [Coerce] reinterprets them through an
// ordered parser chain (boolean, integer, float, ISO-8601 date, string) so
// that filters and sorts compare "10" and "9" numerically rather than
// lexicographically. The chain never fails; anything unparseable stays a
// string.
//
// # Permissive querying
//
// Unknown filter columns, unknown sort columns, and unknown search fields
// are silently ignored rather than rejected. Callers discover mismatches by
// inspecting an empty or unfiltered result. This is deliberate API behavior,
// not missing validation; only malformed limit/offset values produce a
// [ValidationError].
package engine
