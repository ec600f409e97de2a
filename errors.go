package snapimport

import (
	"fmt"
	"strings"
)

// FormatError reports a required column that is missing from the header row,
// or from every known fallback format.
type FormatError struct {
	Field string // a field name, or UnitsOrPrice
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("Missing required field from header row: '%s'", e.Field)
}

// ContentError reports a row that lacks a required value after gap filling.
type ContentError struct {
	Reason string
}

func (e *ContentError) Error() string { return e.Reason }

var (
	errMissingFields = &ContentError{Reason: "missing fields"}
	errUnitsOrPrice  = &ContentError{Reason: "Must provide either price or units"}
)

// TypeError reports a value that does not parse.
type TypeError struct {
	Field Field
	Raw   string
}

func (e *TypeError) Error() string {
	if e.Field == FieldTransactionAttribution {
		return fmt.Sprintf("Invalid value for column '%s': '%s'", e.Field, e.Raw)
	}
	return fmt.Sprintf("Invalid numeric value for column '%s': '%s'", e.Field, e.Raw)
}

// EmptyResultError reports a file that produced no usable row.
type EmptyResultError struct{}

func (*EmptyResultError) Error() string {
	return "No entries found. For an empty snapshot, use the button below."
}

// ImportError is the failure side of an import: every problem found, in the
// order it was found.
type ImportError struct {
	Errs []error
}

func (e *ImportError) Error() string { return strings.Join(e.Messages(), "; ") }

// Unwrap gives errors.Is and errors.As access to every problem.
func (e *ImportError) Unwrap() []error { return e.Errs }

// Messages returns the user facing message of every problem.
func (e *ImportError) Messages() []string {
	msgs := make([]string, len(e.Errs))
	for i, err := range e.Errs {
		msgs[i] = err.Error()
	}
	return msgs
}
