package roitrack

import "testing"

// tr is a test helper building a valid trade, failing the test on error.
func tr(t *testing.T, ticker string, cost, qty, salePrice float64, purchase, sale string) Trade {
	t.Helper()
	trade, err := NewTrade(ticker, Q(cost), Q(qty), Q(salePrice), MustParseDate(purchase), MustParseDate(sale))
	if err != nil {
		t.Fatalf("cannot build trade %s: %v", ticker, err)
	}
	return trade
}

func TestPortfolioBook(t *testing.T) {
	book := NewPortfolio()
	if book.Len() != 0 {
		t.Fatalf("new book Len() = %d, want 0", book.Len())
	}

	book.Append(
		tr(t, "AAPL", 150, 10, 175.5, "2024-01-02", "2024-06-03"),
		tr(t, "MSFT", 300, 5, 320.1, "2024-01-15", "2024-03-01"),
	)
	if book.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", book.Len())
	}

	got, err := book.At(1)
	if err != nil {
		t.Fatalf("At(1) has error %v", err)
	}
	if got.Ticker != "MSFT" {
		t.Errorf("At(1).Ticker = %q, want MSFT", got.Ticker)
	}
	if _, err := book.At(2); err == nil {
		t.Errorf("At(2) on a 2-trade book should fail")
	}

	if err := book.Replace(0, tr(t, "GOOG", 140, 7, 160, "2024-02-01", "2024-05-01")); err != nil {
		t.Fatalf("Replace(0) has error %v", err)
	}
	if got, _ := book.At(0); got.Ticker != "GOOG" {
		t.Errorf("after Replace, At(0).Ticker = %q, want GOOG", got.Ticker)
	}

	if err := book.Remove(0); err != nil {
		t.Fatalf("Remove(0) has error %v", err)
	}
	if book.Len() != 1 {
		t.Errorf("after Remove, Len() = %d, want 1", book.Len())
	}
	if got, _ := book.At(0); got.Ticker != "MSFT" {
		t.Errorf("after Remove, At(0).Ticker = %q, want MSFT", got.Ticker)
	}
	if err := book.Remove(5); err == nil {
		t.Errorf("Remove(5) on a 1-trade book should fail")
	}
}

func TestPortfolioFilter(t *testing.T) {
	book := NewPortfolio()
	book.Append(
		tr(t, "AAPL", 150, 10, 175.5, "2024-01-02", "2024-06-03"),
		tr(t, "MSFT", 300, 5, 320.1, "2024-01-15", "2024-03-01"),
		tr(t, "BRK.B", 400, 2, 410, "2024-02-01", "2024-04-01"),
	)

	if got := book.Filter(""); len(got) != 3 {
		t.Errorf("Filter(%q) matched %d, want 3", "", len(got))
	}
	if got := book.Filter("aapl"); len(got) != 1 || got[0].Ticker != "AAPL" {
		t.Errorf("Filter(%q) = %v, want the AAPL trade", "aapl", got)
	}
	if got := book.Filter("b"); len(got) != 1 || got[0].Ticker != "BRK.B" {
		t.Errorf("Filter(%q) = %v, want the BRK.B trade", "b", got)
	}
	if got := book.Filter("ZZZ"); len(got) != 0 {
		t.Errorf("Filter(%q) = %v, want none", "ZZZ", got)
	}
}

func TestSummarize(t *testing.T) {
	trades := []Trade{
		// +10% over 31 days on 1000 invested
		tr(t, "AAPL", 10, 100, 11, "2024-01-01", "2024-02-01"),
		// -10% over 62 days on 3000 invested
		tr(t, "MSFT", 30, 100, 27, "2024-01-01", "2024-03-03"),
	}

	s := Summarize(trades)
	if s.Count != 2 {
		t.Errorf("Count = %d, want 2", s.Count)
	}
	if want := M(4000); !s.TotalInvested.Equal(want) {
		t.Errorf("TotalInvested = %v, want %v", s.TotalInvested, want)
	}
	if want := M(3800); !s.TotalProceeds.Equal(want) {
		t.Errorf("TotalProceeds = %v, want %v", s.TotalProceeds, want)
	}
	if want := M(-200); !s.TotalProfit.Equal(want) {
		t.Errorf("TotalProfit = %v, want %v", s.TotalProfit, want)
	}
	if want := M(-100); !s.AvgProfit.Equal(want) {
		t.Errorf("AvgProfit = %v, want %v", s.AvgProfit, want)
	}
	// simple average of +10% and -10%
	if !s.AvgReturn.Equal(Percent(0)) {
		t.Errorf("AvgReturn = %v, want 0.00%%", s.AvgReturn)
	}
	// -200 on 4000 invested
	if !s.WeightedReturn.Equal(Percent(-5)) {
		t.Errorf("WeightedReturn = %v, want -5.00%%", s.WeightedReturn)
	}
	if s.TotalDays != 93 {
		t.Errorf("TotalDays = %d, want 93", s.TotalDays)
	}
	if s.AvgDays != 46.5 {
		t.Errorf("AvgDays = %v, want 46.5", s.AvgDays)
	}
}

func TestSummarizeEmpty(t *testing.T) {
	s := Summarize(nil)
	if s.Count != 0 {
		t.Errorf("Count = %d, want 0", s.Count)
	}
	if s.AvgDays != 0 {
		t.Errorf("AvgDays = %v, want 0", s.AvgDays)
	}
}
