package cmd

import (
	"context"
	"flag"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/subcommands"
	"github.com/roitrk/roitrack"
)

// Helper function to point the app at a temporary trade book file.
func tempTradesFile(t *testing.T, content string) string {
	t.Helper()
	name := filepath.Join(t.TempDir(), "trades.jsonl")
	if content != "" {
		if err := os.WriteFile(name, []byte(content), 0644); err != nil {
			t.Fatalf("Failed to write temp trade book: %v", err)
		}
	}

	old := tradesFile
	tradesFile = &name
	t.Cleanup(func() { tradesFile = old })
	return name
}

func writeStatement(t *testing.T, content string) string {
	t.Helper()
	name := filepath.Join(t.TempDir(), "statement.csv")
	if err := os.WriteFile(name, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write temp statement: %v", err)
	}
	return name
}

func TestImportAppendsToBook(t *testing.T) {
	bookFile := tempTradesFile(t, "")
	statement := writeStatement(t, `Symbol,Qty,Cost/Share,Price/Share,Date Added,Date
AAPL,10,150.00,175.50,2024-01-02,2024-06-03
MSFT,5,300.00,320.10,2024-01-15,2024-03-01
`)

	cmd := &importCmd{}
	f := flag.NewFlagSet("test", flag.ContinueOnError)
	cmd.SetFlags(f)
	if err := f.Parse([]string{statement}); err != nil {
		t.Fatalf("Parse() has error %v", err)
	}

	if status := cmd.Execute(context.Background(), f); status != subcommands.ExitSuccess {
		t.Fatalf("Execute() = %v, want ExitSuccess", status)
	}

	book, err := DecodeBook()
	if err != nil {
		t.Fatalf("DecodeBook() has error %v", err)
	}
	if book.Len() != 2 {
		t.Errorf("book has %d trades, want 2", book.Len())
	}

	// imports append, a second run doubles the book
	if status := cmd.Execute(context.Background(), f); status != subcommands.ExitSuccess {
		t.Fatalf("second Execute() = %v, want ExitSuccess", status)
	}
	book, err = DecodeBook()
	if err != nil {
		t.Fatalf("DecodeBook() has error %v", err)
	}
	if book.Len() != 4 {
		t.Errorf("book has %d trades after re-import, want 4", book.Len())
	}

	data, err := os.ReadFile(bookFile)
	if err != nil {
		t.Fatalf("cannot read book file: %v", err)
	}
	if !strings.Contains(string(data), `"ticker":"MSFT"`) {
		t.Errorf("book file misses the MSFT trade:\n%s", data)
	}
}

func TestImportDryRunTouchesNothing(t *testing.T) {
	bookFile := tempTradesFile(t, "")
	statement := writeStatement(t, `Symbol,Qty,Cost/Share,Price/Share,Date Added,Date
AAPL,10,150.00,175.50,2024-01-02,2024-06-03
`)

	cmd := &importCmd{}
	f := flag.NewFlagSet("test", flag.ContinueOnError)
	cmd.SetFlags(f)
	if err := f.Parse([]string{"-n", statement}); err != nil {
		t.Fatalf("Parse() has error %v", err)
	}

	if status := cmd.Execute(context.Background(), f); status != subcommands.ExitSuccess {
		t.Fatalf("Execute() = %v, want ExitSuccess", status)
	}
	if _, err := os.Stat(bookFile); !os.IsNotExist(err) {
		t.Errorf("dry run created the book file")
	}
}

func TestImportBadStatementFails(t *testing.T) {
	tempTradesFile(t, "")
	statement := writeStatement(t, `Symbol,Qty,Cost/Share,Price/Share,Date Added,Date
AAPL,ten,150.00,175.50,2024-01-02,2024-06-03
`)

	cmd := &importCmd{}
	f := flag.NewFlagSet("test", flag.ContinueOnError)
	cmd.SetFlags(f)
	if err := f.Parse([]string{statement}); err != nil {
		t.Fatalf("Parse() has error %v", err)
	}

	if status := cmd.Execute(context.Background(), f); status != subcommands.ExitFailure {
		t.Errorf("Execute() = %v, want ExitFailure", status)
	}
}

func TestDecodeBookMissingFileIsEmpty(t *testing.T) {
	tempTradesFile(t, "")

	book, err := DecodeBook()
	if err != nil {
		t.Fatalf("DecodeBook() has error %v", err)
	}
	if book.Len() != 0 {
		t.Errorf("missing file decoded %d trades, want 0", book.Len())
	}
}

func TestEncodeBookRoundTrip(t *testing.T) {
	tempTradesFile(t, "")

	trade, err := roitrack.NewTrade("AAPL", roitrack.Q(150.0), roitrack.Q(10), roitrack.Q(175.5),
		roitrack.MustParseDate("2024-01-02"), roitrack.MustParseDate("2024-06-03"))
	if err != nil {
		t.Fatalf("NewTrade() has error %v", err)
	}

	book := roitrack.NewPortfolio()
	book.Append(trade)
	if err := EncodeBook(book); err != nil {
		t.Fatalf("EncodeBook() has error %v", err)
	}

	back, err := DecodeBook()
	if err != nil {
		t.Fatalf("DecodeBook() has error %v", err)
	}
	if back.Len() != 1 {
		t.Fatalf("round trip decoded %d trades, want 1", back.Len())
	}
	got, _ := back.At(0)
	if got.Ticker != "AAPL" || !got.Quantity.Equal(roitrack.Q(10)) {
		t.Errorf("round trip trade = %+v", got)
	}
}
