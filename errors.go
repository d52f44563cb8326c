package roitrack

import (
	"errors"
	"fmt"
)

// Errors returned by the statement parser and the trade constructor.
//
// A required field that is present but unparseable is a hard failure: it
// suggests a layout mismatch that must not be silently dropped. A missing
// field ("" or "--") is normal report noise and never an error in a
// statement row.
var (
	// ErrEmptyTicker reports a ticker field that is empty after trimming.
	ErrEmptyTicker = errors.New("ticker cannot be empty")

	// ErrDateOrder reports a sale date earlier than the purchase date.
	ErrDateOrder = errors.New("sale date cannot be before purchase date")

	// ErrNoTrades reports a statement in which no data row was recognized.
	ErrNoTrades = errors.New("no rows found to import")
)

// reasons carried inside a FieldError.
var (
	errNotANumber = errors.New("not a number")
	errBadDate    = errors.New("expected YYYY-MM-DD or MM/DD/YYYY")
	errMissing    = errors.New("value is missing")
)

// FieldError reports a field that failed to parse, carrying the field's
// semantic label (e.g. "cost/share") so statement-level errors can point at
// the exact column meaning.
type FieldError struct {
	Field string // semantic label
	Value string // raw cell content
	Err   error  // underlying reason
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("invalid %s %q: %v", e.Field, e.Value, e.Err)
}

func (e *FieldError) Unwrap() error { return e.Err }

// lineError prefixes an error with the 1-based row number it occurred on.
func lineError(line int, err error) error {
	return fmt.Errorf("line %d: %w", line, err)
}
