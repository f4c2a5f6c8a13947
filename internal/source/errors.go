package source

import (
	"errors"
	"fmt"
)

// Kind classifies fetch failures so the web layer can pick a status code
// without string matching.
type Kind int

const (
	// KindUnavailable covers network failures, credential problems, and
	// sheets the service account cannot read.
	KindUnavailable Kind = iota

	// KindMalformed means the sheet was readable but its shape is
	// unusable, e.g. a header row with no usable column names.
	KindMalformed

	// KindNotFound means the spreadsheet or worksheet does not exist.
	KindNotFound
)

// Error is a classified fetch failure.
type Error struct {
	Kind Kind
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Msg, e.Err)
	}
	return e.Msg
}

func (e *Error) Unwrap() error { return e.Err }

// IsNotFound reports whether err is a KindNotFound fetch error.
func IsNotFound(err error) bool {
	var se *Error
	return errors.As(err, &se) && se.Kind == KindNotFound
}

func unavailablef(err error, format string, args ...any) *Error {
	return &Error{Kind: KindUnavailable, Msg: fmt.Sprintf(format, args...), Err: err}
}

func notFoundf(err error, format string, args ...any) *Error {
	return &Error{Kind: KindNotFound, Msg: fmt.Sprintf(format, args...), Err: err}
}

func malformedf(format string, args ...any) *Error {
	return &Error{Kind: KindMalformed, Msg: fmt.Sprintf(format, args...)}
}
