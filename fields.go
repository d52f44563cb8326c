package roitrack

import (
	"strings"

	"github.com/shopspring/decimal"
)

// this file contains the primitive parsers for single statement fields.

// missingSentinel is what brokers print for a blank numeric cell.
const missingSentinel = "--"

// isMissing reports whether a statement cell holds no value. An empty cell
// and the "--" sentinel both mean absent, not zero.
func isMissing(raw string) bool {
	v := strings.TrimSpace(raw)
	return v == "" || v == missingSentinel
}

// amountCleaner strips the noise brokers put in numbers: dollar signs,
// thousands separators and internal spaces.
var amountCleaner = strings.NewReplacer(",", "", "$", "", " ", "")

// ParseAmount parses a numeric statement field into a Quantity.
// A missing value is an error here: callers that tolerate missing fields
// must check with isMissing first.
func ParseAmount(raw, label string) (Quantity, error) {
	trimmed := strings.TrimSpace(raw)
	if isMissing(trimmed) {
		return Quantity{}, &FieldError{Field: label, Value: raw, Err: errMissing}
	}
	value, err := decimal.NewFromString(amountCleaner.Replace(trimmed))
	if err != nil {
		return Quantity{}, &FieldError{Field: label, Value: raw, Err: errNotANumber}
	}
	return Quantity{value: value}, nil
}

// ParseTradeDate parses a date statement field, accepting the ISO and US
// forms in that order.
func ParseTradeDate(raw, label string) (Date, error) {
	d, err := ParseDate(raw)
	if err != nil {
		return Date{}, &FieldError{Field: label, Value: strings.TrimSpace(raw), Err: errBadDate}
	}
	return d, nil
}

// ParseTicker normalizes a ticker symbol: trimmed and upper-cased.
func ParseTicker(raw string) (string, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return "", ErrEmptyTicker
	}
	return strings.ToUpper(trimmed), nil
}
