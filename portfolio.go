package roitrack

import (
	"fmt"
	"strings"
)

// Portfolio is the book of recorded trades.
//
// Trades keep their insertion order: the book mirrors the statements it was
// imported from and the order the user added records in, it never re-sorts.
type Portfolio struct {
	trades []Trade
}

// NewPortfolio creates an empty book.
func NewPortfolio() *Portfolio {
	return &Portfolio{trades: make([]Trade, 0)}
}

// Len returns the number of recorded trades.
func (p *Portfolio) Len() int { return len(p.trades) }

// At returns the trade at index i (zero-based).
func (p *Portfolio) At(i int) (Trade, error) {
	if i < 0 || i >= len(p.trades) {
		return Trade{}, fmt.Errorf("no trade at index %d, book has %d", i, len(p.trades))
	}
	return p.trades[i], nil
}

// Trades returns the recorded trades in book order. The slice is shared,
// callers must not mutate it.
func (p *Portfolio) Trades() []Trade { return p.trades }

// Append records trades at the end of the book.
func (p *Portfolio) Append(trades ...Trade) { p.trades = append(p.trades, trades...) }

// Replace substitutes the trade at index i.
func (p *Portfolio) Replace(i int, t Trade) error {
	if i < 0 || i >= len(p.trades) {
		return fmt.Errorf("no trade at index %d, book has %d", i, len(p.trades))
	}
	p.trades[i] = t
	return nil
}

// Remove deletes the trade at index i, shifting later trades down.
func (p *Portfolio) Remove(i int) error {
	if i < 0 || i >= len(p.trades) {
		return fmt.Errorf("no trade at index %d, book has %d", i, len(p.trades))
	}
	p.trades = append(p.trades[:i], p.trades[i+1:]...)
	return nil
}

// Filter returns the trades whose ticker contains the given fragment,
// case-insensitively. An empty fragment matches everything.
func (p *Portfolio) Filter(ticker string) []Trade {
	fragment := strings.ToUpper(strings.TrimSpace(ticker))
	if fragment == "" {
		return p.trades
	}
	var matches []Trade
	for _, t := range p.trades {
		if strings.Contains(t.Ticker, fragment) {
			matches = append(matches, t)
		}
	}
	return matches
}

// Summary aggregates the performance of a set of trades.
type Summary struct {
	Count          int
	TotalInvested  Money
	TotalProceeds  Money
	TotalProfit    Money
	AvgProfit      Money
	AvgReturn      Percent // simple average of per-trade returns
	WeightedReturn Percent // total profit over total invested
	TotalDays      int
	AvgDays        float64
}

// Summarize computes the aggregate performance of the given trades.
// The zero Summary is returned for an empty set.
func Summarize(trades []Trade) Summary {
	var s Summary
	s.Count = len(trades)
	if s.Count == 0 {
		return s
	}

	s.TotalInvested = M(0)
	s.TotalProceeds = M(0)
	var returns float64
	for _, t := range trades {
		s.TotalInvested = s.TotalInvested.Add(t.Invested())
		s.TotalProceeds = s.TotalProceeds.Add(t.Proceeds())
		s.TotalDays += t.DaysHeld()
		returns += float64(t.Return())
	}
	s.TotalProfit = s.TotalProceeds.Sub(s.TotalInvested)
	s.AvgProfit = s.TotalProfit.Div(Q(s.Count))
	s.AvgReturn = Percent(returns / float64(s.Count))
	if s.TotalInvested.IsPositive() {
		s.WeightedReturn = Percent(100 * s.TotalProfit.AsFloat() / s.TotalInvested.AsFloat())
	}
	s.AvgDays = float64(s.TotalDays) / float64(s.Count)
	return s
}
