package roitrack

import (
	"strings"
	"testing"
)

// TestTradesRoundTrip checks that the JSONL form is stable: decoding a book
// and encoding it back reproduces the input byte for byte.
func TestTradesRoundTrip(t *testing.T) {
	sample := `
{"ticker":"AAPL","costPerShare":150,"quantity":10,"salePrice":175.5,"purchaseDate":"2024-01-02","saleDate":"2024-06-03"}
{"ticker":"MSFT","costPerShare":300,"quantity":5,"salePrice":320.1,"purchaseDate":"2024-01-15","saleDate":"2024-03-01"}
`
	sample = strings.Trim(sample, "\n\t")

	book, err := DecodeTrades(strings.NewReader(sample))
	if err != nil {
		t.Fatalf("cannot decode sample: %v", err)
	}
	if book.Len() != 2 {
		t.Fatalf("decoded %d trades, want 2", book.Len())
	}

	sb := strings.Builder{}
	if err := book.EncodeTrades(&sb); err != nil {
		t.Fatalf("EncodeTrades() has error %v", err)
	}
	got := strings.Trim(sb.String(), "\n\t")

	if got != sample {
		t.Errorf("encode/decode sequence is not stable got \n%s\n want \n%s\n", got, sample)
	}
}

func TestDecodeTradesSkipsEmptyLines(t *testing.T) {
	sample := `
{"ticker":"AAPL","costPerShare":150,"quantity":10,"salePrice":175.5,"purchaseDate":"2024-01-02","saleDate":"2024-06-03"}

`
	book, err := DecodeTrades(strings.NewReader(sample))
	if err != nil {
		t.Fatalf("DecodeTrades() has error %v", err)
	}
	if book.Len() != 1 {
		t.Errorf("decoded %d trades, want 1", book.Len())
	}
}

func TestDecodeTradesRejectsBadRecords(t *testing.T) {
	tests := []struct {
		name   string
		sample string
	}{
		{"not json", "not json at all"},
		{"empty ticker", `{"ticker":"","costPerShare":1,"quantity":1,"salePrice":1,"purchaseDate":"2024-01-02","saleDate":"2024-06-03"}`},
		{"inverted dates", `{"ticker":"AAPL","costPerShare":1,"quantity":1,"salePrice":1,"purchaseDate":"2024-06-03","saleDate":"2024-01-02"}`},
		{"us date in data file", `{"ticker":"AAPL","costPerShare":1,"quantity":1,"salePrice":1,"purchaseDate":"1/2/2024","saleDate":"2024-06-03"}`},
	}
	for _, tt := range tests {
		if _, err := DecodeTrades(strings.NewReader(tt.sample)); err == nil {
			t.Errorf("%s: DecodeTrades() should fail", tt.name)
		}
	}
}
