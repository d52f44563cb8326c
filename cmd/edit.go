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

// editCmd holds the flags for the 'edit' subcommand.
type editCmd struct {
	index     int
	ticker    string
	cost      string
	quantity  string
	salePrice string
	bought    string
	sold      string
}

func (*editCmd) Name() string     { return "edit" }
func (*editCmd) Synopsis() string { return "amend a recorded trade" }
func (*editCmd) Usage() string {
	return `roi edit -i <index> [-s <ticker>] [-c <cost/share>] [-q <quantity>] [-p <sale price>] [-b <date>] [-d <date>]

  Amends the trade at the given book index. Only the fields passed as flags
  change, the rest keep their recorded value. The amended trade goes through
  the same validation as a new one.

Usage Examples:
# Fix the sale price of trade 3.
$ roi edit -i 3 -p 180.25
`
}

func (c *editCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.index, "i", -1, "Book index of the trade to amend (see 'roi list')")
	f.StringVar(&c.ticker, "s", "", "Ticker symbol of the security")
	f.StringVar(&c.cost, "c", "", "Cost per share at purchase")
	f.StringVar(&c.quantity, "q", "", "Number of shares")
	f.StringVar(&c.salePrice, "p", "", "Price per share at sale")
	f.StringVar(&c.bought, "b", "", "Purchase date")
	f.StringVar(&c.sold, "d", "", "Sale date")
}

func (c *editCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	amended, err := c.amend(trade)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	if err := book.Replace(c.index, amended); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	if err := EncodeBook(book); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving trade book: %v\n", err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.TradeMarkdown(c.index, amended))
	return subcommands.ExitSuccess
}

// amend overlays the set flags on the recorded trade and re-validates.
func (c *editCmd) amend(t roitrack.Trade) (roitrack.Trade, error) {
	ticker := t.Ticker
	if c.ticker != "" {
		ticker = c.ticker
	}

	cost := t.CostPerShare.Amount()
	if c.cost != "" {
		q, err := roitrack.ParseAmount(c.cost, "cost/share")
		if err != nil {
			return roitrack.Trade{}, err
		}
		cost = q
	}

	quantity := t.Quantity
	if c.quantity != "" {
		q, err := roitrack.ParseAmount(c.quantity, "quantity")
		if err != nil {
			return roitrack.Trade{}, err
		}
		quantity = q
	}

	salePrice := t.SalePrice.Amount()
	if c.salePrice != "" {
		q, err := roitrack.ParseAmount(c.salePrice, "sale price")
		if err != nil {
			return roitrack.Trade{}, err
		}
		salePrice = q
	}

	bought := t.PurchaseDate
	if c.bought != "" {
		d, err := roitrack.ParseTradeDate(c.bought, "purchase date")
		if err != nil {
			return roitrack.Trade{}, err
		}
		bought = d
	}

	sold := t.SaleDate
	if c.sold != "" {
		d, err := roitrack.ParseTradeDate(c.sold, "sale date")
		if err != nil {
			return roitrack.Trade{}, err
		}
		sold = d
	}

	return roitrack.NewTrade(ticker, cost, quantity, salePrice, bought, sold)
}
