// Package renderer formats trade books and summaries as markdown reports.
//
// Renderers are pure functions from data to a markdown string: printing and
// terminal styling belong to the caller.
package renderer

import (
	"fmt"
	"strings"

	"github.com/roitrk/roitrack"
)

// TradesMarkdown renders a trade table with aggregate Avg and Total rows.
// The index column carries the book position so the edit and delete
// commands can address a row.
func TradesMarkdown(title string, trades []roitrack.Trade) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# %s\n\n", title)
	if len(trades) == 0 {
		fmt.Fprintln(&b, "No trades recorded.")
		return b.String()
	}

	fmt.Fprintln(&b, "| # | Ticker | Cost/Share | Qty | Sale Price | Profit | Return | Annualized | Days | Bought | Sold |")
	fmt.Fprintln(&b, "|---:|:---|---:|---:|---:|---:|---:|---:|---:|:---|:---|")

	for i, t := range trades {
		fmt.Fprintf(&b, "| %d | %s | %s | %s | %s | %s | %s | %s | %d | %s | %s |\n",
			i,
			t.Ticker,
			t.CostPerShare.String(),
			t.Quantity.String(),
			t.SalePrice.String(),
			t.Profit().SignedString(),
			t.Return().SignedString(),
			t.AnnualizedReturn().SignedString(),
			t.DaysHeld(),
			t.PurchaseDate.String(),
			t.SaleDate.String(),
		)
	}

	s := roitrack.Summarize(trades)
	fmt.Fprintf(&b, "| | *Avg* | | | | *%s* | *%s* | | *%.1f* | | |\n",
		s.AvgProfit.SignedString(),
		s.AvgReturn.SignedString(),
		s.AvgDays,
	)
	fmt.Fprintf(&b, "| | **Total** | | | | **%s** | **%s** | | **%d** | | |\n",
		s.TotalProfit.SignedString(),
		s.WeightedReturn.SignedString(),
		s.TotalDays,
	)

	return b.String()
}

// TradeMarkdown renders a single trade in full detail.
func TradeMarkdown(index int, t roitrack.Trade) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# Trade %d: %s\n\n", index, t.Ticker)
	fmt.Fprintln(&b, "| Field | Value |")
	fmt.Fprintln(&b, "|:---|---:|")
	fmt.Fprintf(&b, "| Cost/Share | %s |\n", t.CostPerShare.String())
	fmt.Fprintf(&b, "| Quantity | %s |\n", t.Quantity.String())
	fmt.Fprintf(&b, "| Sale Price | %s |\n", t.SalePrice.String())
	fmt.Fprintf(&b, "| Purchase Date | %s |\n", t.PurchaseDate.String())
	fmt.Fprintf(&b, "| Sale Date | %s |\n", t.SaleDate.String())
	fmt.Fprintf(&b, "| Days Held | %d |\n", t.DaysHeld())
	fmt.Fprintf(&b, "| Invested | %s |\n", t.Invested().String())
	fmt.Fprintf(&b, "| Proceeds | %s |\n", t.Proceeds().String())
	fmt.Fprintf(&b, "| Profit | %s |\n", t.Profit().SignedString())
	fmt.Fprintf(&b, "| Return | %s |\n", t.Return().SignedString())
	fmt.Fprintf(&b, "| Return/Day | %s |\n", t.ReturnPerDay().SignedString())
	fmt.Fprintf(&b, "| Annualized | %s |\n", t.AnnualizedReturn().SignedString())

	return b.String()
}

// SummaryMarkdown renders the aggregate performance of a set of trades.
func SummaryMarkdown(title string, s roitrack.Summary) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# %s\n\n", title)
	if s.Count == 0 {
		fmt.Fprintln(&b, "No trades recorded.")
		return b.String()
	}

	fmt.Fprintln(&b, "| Metric | Value |")
	fmt.Fprintln(&b, "|:---|---:|")
	fmt.Fprintf(&b, "| Trades | %d |\n", s.Count)
	fmt.Fprintf(&b, "| Total Invested | %s |\n", s.TotalInvested.String())
	fmt.Fprintf(&b, "| Total Proceeds | %s |\n", s.TotalProceeds.String())
	fmt.Fprintf(&b, "| Total Profit | %s |\n", s.TotalProfit.SignedString())
	fmt.Fprintf(&b, "| Avg Profit per Trade | %s |\n", s.AvgProfit.SignedString())
	fmt.Fprintf(&b, "| Avg Return | %s |\n", s.AvgReturn.SignedString())
	fmt.Fprintf(&b, "| Weighted Return | %s |\n", s.WeightedReturn.SignedString())
	fmt.Fprintf(&b, "| Total Days Held | %d |\n", s.TotalDays)
	fmt.Fprintf(&b, "| Avg Days Held | %.1f |\n", s.AvgDays)

	return b.String()
}
