package roitrack

import (
	"errors"
	"testing"
)

func TestIsMissing(t *testing.T) {
	tests := []struct {
		input   string
		missing bool
	}{
		{"", true},
		{"--", true},
		{"  --  ", true},
		{"   ", true},
		{"0", false},
		{"-", false},
		{"---", false},
		{"AAPL", false},
	}
	for _, tt := range tests {
		if got := isMissing(tt.input); got != tt.missing {
			t.Errorf("isMissing(%q) = %v, want %v", tt.input, got, tt.missing)
		}
	}
}

func TestParseAmount(t *testing.T) {
	tests := []struct {
		input    string
		expected Quantity
		err      error
	}{
		{"150.00", Q(150.0), nil},
		{"$1,234.56", Q(1234.56), nil},
		{" 1 234,56 ", Q(123456), nil}, // spaces and commas are separators, not decimals
		{"-42.5", Q(-42.5), nil},
		{"$0.001", Q(0.001), nil},
		{"--", Quantity{}, errMissing},
		{"", Quantity{}, errMissing},
		{"abc", Quantity{}, errNotANumber},
		{"12..5", Quantity{}, errNotANumber},
	}
	for _, tt := range tests {
		got, err := ParseAmount(tt.input, "quantity")
		if tt.err != nil {
			if !errors.Is(err, tt.err) {
				t.Errorf("ParseAmount(%q) error = %v, want %v", tt.input, err, tt.err)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseAmount(%q) unexpected error: %v", tt.input, err)
			continue
		}
		if !got.Equal(tt.expected) {
			t.Errorf("ParseAmount(%q) = %v, want %v", tt.input, got, tt.expected)
		}
	}
}

func TestParseAmountFieldError(t *testing.T) {
	_, err := ParseAmount("abc", labelCost)
	var fe *FieldError
	if !errors.As(err, &fe) {
		t.Fatalf("ParseAmount error is %T, want *FieldError", err)
	}
	if fe.Field != labelCost || fe.Value != "abc" {
		t.Errorf("FieldError = %+v, want field %q value %q", fe, labelCost, "abc")
	}
}

func TestParseTicker(t *testing.T) {
	tests := []struct {
		input    string
		expected string
		err      bool
	}{
		{"aapl", "AAPL", false},
		{"  Brk.b  ", "BRK.B", false},
		{"MSFT", "MSFT", false},
		{"", "", true},
		{"   ", "", true},
	}
	for _, tt := range tests {
		got, err := ParseTicker(tt.input)
		if tt.err {
			if !errors.Is(err, ErrEmptyTicker) {
				t.Errorf("ParseTicker(%q) error = %v, want ErrEmptyTicker", tt.input, err)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseTicker(%q) unexpected error: %v", tt.input, err)
			continue
		}
		if got != tt.expected {
			t.Errorf("ParseTicker(%q) = %q, want %q", tt.input, got, tt.expected)
		}
	}
}

func TestParseTradeDate(t *testing.T) {
	if _, err := ParseTradeDate("2024-06-03", labelSaleDate); err != nil {
		t.Errorf("ParseTradeDate(ISO) unexpected error: %v", err)
	}
	if _, err := ParseTradeDate("6/3/2024", labelSaleDate); err != nil {
		t.Errorf("ParseTradeDate(US) unexpected error: %v", err)
	}
	_, err := ParseTradeDate("June 3rd", labelSaleDate)
	var fe *FieldError
	if !errors.As(err, &fe) {
		t.Fatalf("ParseTradeDate error is %T, want *FieldError", err)
	}
	if !errors.Is(err, errBadDate) {
		t.Errorf("ParseTradeDate error = %v, want errBadDate", err)
	}
}
