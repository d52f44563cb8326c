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

// importCmd holds the flags for the 'import' subcommand.
type importCmd struct {
	dryRun bool
}

func (*importCmd) Name() string     { return "import" }
func (*importCmd) Synopsis() string { return "import trades from a brokerage CSV statement" }
func (*importCmd) Usage() string {
	return `roi import [-n] <statement.csv> [<statement.csv>...]

  Parses brokerage CSV statements and appends the trades they contain to the
  trade book. The parser finds the trade detail table inside a full account
  statement, recognizes common header spellings, and tolerates summary rows
  and partial lines.

Usage Examples:
# Import a statement into the default trade book.
$ roi import statement.csv

# Inspect what a statement contains without touching the book.
$ roi import -n statement.csv
`
}

func (c *importCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.dryRun, "n", false, "Parse and display the trades without recording them")
}

func (c *importCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "Error: at least one statement file is required")
		return subcommands.ExitUsageError
	}

	var all []roitrack.Trade
	for _, path := range f.Args() {
		trades, err := roitrack.ParseStatement(path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing statement %q: %v\n", path, err)
			return subcommands.ExitFailure
		}
		fmt.Printf("Parsed %d trade(s) from %s\n", len(trades), path)
		all = append(all, trades...)
	}

	if c.dryRun {
		printMarkdown(renderer.TradesMarkdown("Trades to import", all))
		return subcommands.ExitSuccess
	}
	return AppendTrades(all...)
}
