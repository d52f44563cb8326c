package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/roitrk/roitrack/renderer"
)

// showCmd holds the flags for the 'show' subcommand.
type showCmd struct {
	index int
}

func (*showCmd) Name() string     { return "show" }
func (*showCmd) Synopsis() string { return "show one trade in full detail" }
func (*showCmd) Usage() string {
	return `roi show -i <index>

  Shows every recorded and derived field of the trade at the given book
  index: invested and recovered capital, profit, simple, per-day and
  annualized returns.

Usage Examples:
$ roi show -i 3
`
}

func (c *showCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.index, "i", -1, "Book index of the trade to show (see 'roi list')")
}

func (c *showCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	book, err := DecodeBook()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading trade book: %v\n", err)
		return subcommands.ExitFailure
	}

	trade, err := book.At(c.index)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	printMarkdown(renderer.TradeMarkdown(c.index, trade))
	return subcommands.ExitSuccess
}
