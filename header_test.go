package roitrack

import "testing"

func TestSanitizeHeader(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"Cost/Share", "costshare"},
		{"Cost per Share", "costpershare"},
		{"QTY (#)", "qty"},
		{"Date Added", "dateadded"},
		{"  Sale   Price  ", "saleprice"},
		{"Symbol", "symbol"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := sanitizeHeader(tt.input); got != tt.expected {
			t.Errorf("sanitizeHeader(%q) = %q, want %q", tt.input, got, tt.expected)
		}
	}
}

func TestDetectHeader(t *testing.T) {
	tests := []struct {
		name     string
		cells    []string
		expected columns
		ok       bool
	}{
		{
			name:     "canonical",
			cells:    []string{"Symbol", "Qty", "Cost/Share", "Price/Share", "Date Added", "Date"},
			expected: columns{ticker: 0, cost: 2, quantity: 1, salePrice: 3, buyDate: 4, saleDate: 5},
			ok:       true,
		},
		{
			name:     "alternate spellings",
			cells:    []string{"Ticker", "Quantity", "Cost per Share", "Sell Price", "Purchase Date", "Sale Date"},
			expected: columns{ticker: 0, cost: 2, quantity: 1, salePrice: 3, buyDate: 4, saleDate: 5},
			ok:       true,
		},
		{
			name:     "two generic date columns",
			cells:    []string{"Symbol", "Qty", "Cost/Share", "Price/Share", "Date", "Date"},
			expected: columns{ticker: 0, cost: 2, quantity: 1, salePrice: 3, buyDate: 4, saleDate: 5},
			ok:       true,
		},
		{
			name:     "single date column serves both roles",
			cells:    []string{"Symbol", "Qty", "Cost/Share", "Price/Share", "Date"},
			expected: columns{ticker: 0, cost: 2, quantity: 1, salePrice: 3, buyDate: 4, saleDate: 4},
			ok:       true,
		},
		{
			name:     "shuffled order with noise columns",
			cells:    []string{"Gain/Loss", "Date Added", "Symbol", "Sale Price", "Qty Shares", "Cost/Share", "Sell Date"},
			expected: columns{ticker: 2, cost: 5, quantity: 4, salePrice: 3, buyDate: 1, saleDate: 6},
			ok:       true,
		},
		{
			name:  "data row is not a header",
			cells: []string{"AAPL", "10", "150.00", "175.50", "2024-01-02", "2024-06-03"},
			ok:    false,
		},
		{
			name:  "incomplete header",
			cells: []string{"Symbol", "Qty", "Cost/Share", "Date"},
			ok:    false,
		},
		{
			name:  "empty row",
			cells: []string{},
			ok:    false,
		},
	}
	for _, tt := range tests {
		got, ok := detectHeader(tt.cells)
		if ok != tt.ok {
			t.Errorf("%s: detectHeader() ok = %v, want %v", tt.name, ok, tt.ok)
			continue
		}
		if ok && got != tt.expected {
			t.Errorf("%s: detectHeader() = %+v, want %+v", tt.name, got, tt.expected)
		}
	}
}
