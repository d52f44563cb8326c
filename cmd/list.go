package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/roitrk/roitrack/renderer"
)

// listCmd holds the flags for the 'list' subcommand.
type listCmd struct {
	ticker string
}

func (*listCmd) Name() string     { return "list" }
func (*listCmd) Synopsis() string { return "list recorded trades with their performance" }
func (*listCmd) Usage() string {
	return `roi list [-t <ticker>]

  Lists the recorded trades with per-trade profit, return, annualized return
  and holding period, plus average and total rows.

Usage Examples:
# All trades.
$ roi list

# Only Apple trades (case-insensitive substring match).
$ roi list -t aapl
`
}

func (c *listCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.ticker, "t", "", "Only list trades whose ticker contains this fragment")
}

func (c *listCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	book, err := DecodeBook()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading trade book: %v\n", err)
		return subcommands.ExitFailure
	}

	title := "Trades"
	if c.ticker != "" {
		title = fmt.Sprintf("Trades matching %q", c.ticker)
	}
	printMarkdown(renderer.TradesMarkdown(title, book.Filter(c.ticker)))
	return subcommands.ExitSuccess
}
