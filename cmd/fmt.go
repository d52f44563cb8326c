package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

// fmtCmd holds the flags for the 'fmt' subcommand.
type fmtCmd struct{}

func (*fmtCmd) Name() string { return "fmt" }
func (*fmtCmd) Synopsis() string {
	return "validates and formats the trade book into a canonical form"
}
func (*fmtCmd) Usage() string {
	return `roi fmt

  Validates and formats the trade book file. This command reads all trades,
  re-validates them, and writes them back in a canonical JSONL format. Use
  it after editing the file by hand.

Usage Examples:
# Rewrites the default trade book file.
$ roi fmt
`
}

func (*fmtCmd) SetFlags(f *flag.FlagSet) {}

func (c *fmtCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	book, err := DecodeBook()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: could not load trade book: %v\n", err)
		return subcommands.ExitFailure
	}

	if err := EncodeBook(book); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving trade book: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Formatted %d trade(s) in %s\n", book.Len(), *tradesFile)
	return subcommands.ExitSuccess
}
