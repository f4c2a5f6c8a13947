package engine

import "fmt"

// ValidationError reports a query parameter the engine could not interpret.
// It is the only error the query surface produces; everything else degrades
// permissively.
type ValidationError struct {
	Param  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid query parameter %q: %s", e.Param, e.Reason)
}
