package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

// deleteCmd holds the flags for the 'delete' subcommand.
type deleteCmd struct {
	index int
}

func (*deleteCmd) Name() string     { return "delete" }
func (*deleteCmd) Synopsis() string { return "remove a trade from the book" }
func (*deleteCmd) Usage() string {
	return `roi delete -i <index>

  Removes the trade at the given book index. Later trades shift down one
  position.

Usage Examples:
$ roi delete -i 3
`
}

func (c *deleteCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.index, "i", -1, "Book index of the trade to remove (see 'roi list')")
}

func (c *deleteCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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
	if err := book.Remove(c.index); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	if err := EncodeBook(book); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving trade book: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Removed trade %d (%s), %d trade(s) remain\n", c.index, trade.Ticker, book.Len())
	return subcommands.ExitSuccess
}
