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

// addCmd holds the flags for the 'add' subcommand.
type addCmd struct {
	ticker    string
	cost      string
	quantity  string
	salePrice string
	bought    string
	sold      string
}

func (*addCmd) Name() string     { return "add" }
func (*addCmd) Synopsis() string { return "record a single trade by hand" }
func (*addCmd) Usage() string {
	return `roi add -s <ticker> -c <cost/share> -q <quantity> -p <sale price> -b <date> -d <date>

  Records one closed trade in the trade book. Amounts accept the same lenient
  forms as statements ("$1,234.56"), dates accept YYYY-MM-DD and MM/DD/YYYY.

Usage Examples:
$ roi add -s AAPL -c 150.00 -q 10 -p 175.50 -b 2024-01-02 -d 2024-06-03
`
}

func (c *addCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.ticker, "s", "", "Ticker symbol of the security")
	f.StringVar(&c.cost, "c", "", "Cost per share at purchase")
	f.StringVar(&c.quantity, "q", "", "Number of shares")
	f.StringVar(&c.salePrice, "p", "", "Price per share at sale")
	f.StringVar(&c.bought, "b", "", "Purchase date")
	f.StringVar(&c.sold, "d", "", "Sale date")
}

func (c *addCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	trade, err := c.trade()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	// the new trade's index is the current book length
	book, err := DecodeBook()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading trade book: %v\n", err)
		return subcommands.ExitFailure
	}

	status := AppendTrades(trade)
	if status != subcommands.ExitSuccess {
		return status
	}
	printMarkdown(renderer.TradeMarkdown(book.Len(), trade))
	return subcommands.ExitSuccess
}

// trade parses the flag values into a validated trade.
func (c *addCmd) trade() (roitrack.Trade, error) {
	cost, err := roitrack.ParseAmount(c.cost, "cost/share")
	if err != nil {
		return roitrack.Trade{}, err
	}
	quantity, err := roitrack.ParseAmount(c.quantity, "quantity")
	if err != nil {
		return roitrack.Trade{}, err
	}
	salePrice, err := roitrack.ParseAmount(c.salePrice, "sale price")
	if err != nil {
		return roitrack.Trade{}, err
	}
	bought, err := roitrack.ParseTradeDate(c.bought, "purchase date")
	if err != nil {
		return roitrack.Trade{}, err
	}
	sold, err := roitrack.ParseTradeDate(c.sold, "sale date")
	if err != nil {
		return roitrack.Trade{}, err
	}
	return roitrack.NewTrade(c.ticker, cost, quantity, salePrice, bought, sold)
}
