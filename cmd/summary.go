package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/roitrk/roitrack"
	"github.com/roitrk/roitrack/renderer"
)

// summaryCmd holds the flags for the 'summary' subcommand.
type summaryCmd struct {
	ticker string
}

func (*summaryCmd) Name() string     { return "summary" }
func (*summaryCmd) Synopsis() string { return "aggregate performance of the trade book" }
func (*summaryCmd) Usage() string {
	return `roi summary [-t <ticker>]

  Shows the aggregate performance of the trade book: totals, averages and
  the capital-weighted return.

Usage Examples:
# Whole book.
$ roi summary

# One symbol only.
$ roi summary -t MSFT
`
}

func (c *summaryCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.ticker, "t", "", "Only aggregate trades whose ticker contains this fragment")
}

func (c *summaryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	book, err := DecodeBook()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading trade book: %v\n", err)
		return subcommands.ExitFailure
	}

	title := "Performance Summary"
	if c.ticker != "" {
		title = fmt.Sprintf("Performance Summary for %q", c.ticker)
	}
	s := roitrack.Summarize(book.Filter(c.ticker))
	printMarkdown(renderer.SummaryMarkdown(title, s))
	return subcommands.ExitSuccess
}
