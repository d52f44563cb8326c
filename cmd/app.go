// Package cmd implements the CLI application to track trade performance.
package cmd

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"log"
	"os"

	"github.com/google/subcommands"
	"github.com/roitrk/roitrack"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&importCmd{}, "trades")
	c.Register(&addCmd{}, "trades")
	c.Register(&editCmd{}, "trades")
	c.Register(&deleteCmd{}, "trades")

	c.Register(&listCmd{}, "reports")
	c.Register(&showCmd{}, "reports")
	c.Register(&summaryCmd{}, "reports")

	c.Register(&fmtCmd{}, "maintenance")
	c.Register(&topicCmd{}, "maintenance")
	c.Register(&AssistCmd{}, "maintenance")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var tradesFile = flag.String("trades-file", "trades.jsonl", "Path to the trade book file (JSONL format)")

// DecodeBook loads the trade book from the app trades file.
// A missing file is an empty book, not an error.
func DecodeBook() (*roitrack.Portfolio, error) {
	f, err := os.Open(*tradesFile)
	if errors.Is(err, fs.ErrNotExist) {
		log.Println("warning, trade book does not exist, starting with an empty book instead")
		return roitrack.NewPortfolio(), nil
	}
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return roitrack.DecodeTrades(f)
}

// EncodeBook writes the whole trade book back to the app trades file.
func EncodeBook(book *roitrack.Portfolio) error {
	f, err := os.Create(*tradesFile)
	if err != nil {
		return err
	}
	defer f.Close()
	return book.EncodeTrades(f)
}

// AppendTrades appends trades to the app trades file without rewriting it.
func AppendTrades(trades ...roitrack.Trade) subcommands.ExitStatus {
	filename := *tradesFile
	// Open the file in append mode, creating it if it doesn't exist.
	f, err := os.OpenFile(filename, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening trade book %q: %v\n", filename, err)
		return subcommands.ExitFailure
	}
	defer f.Close()

	for _, t := range trades {
		if err := roitrack.EncodeTrade(f, t); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing to trade book %q: %v\n", filename, err)
			return subcommands.ExitFailure
		}
	}

	fmt.Printf("Successfully appended %d trade(s) to %s\n", len(trades), filename)
	return subcommands.ExitSuccess
}
