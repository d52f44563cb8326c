package roitrack

import "math"

// Trade is one closed round-trip: a quantity of a ticker bought on
// PurchaseDate and sold on SaleDate.
//
// A Trade is immutable once constructed: edits replace the record
// wholesale. All analytics are derived on demand and never stored.
type Trade struct {
	Ticker       string
	CostPerShare Money
	Quantity     Quantity
	SalePrice    Money
	PurchaseDate Date
	SaleDate     Date
}

// NewTrade builds a validated Trade. The ticker is trimmed and
// upper-cased; an empty ticker or a sale date before the purchase date is
// rejected.
func NewTrade(ticker string, cost, quantity, salePrice Quantity, purchase, sale Date) (Trade, error) {
	symbol, err := ParseTicker(ticker)
	if err != nil {
		return Trade{}, err
	}
	if sale.Before(purchase) {
		return Trade{}, ErrDateOrder
	}
	return Trade{
		Ticker:       symbol,
		CostPerShare: M(cost.value),
		Quantity:     quantity,
		SalePrice:    M(salePrice.value),
		PurchaseDate: purchase,
		SaleDate:     sale,
	}, nil
}

// Invested returns the capital put into the trade.
func (t Trade) Invested() Money { return t.CostPerShare.Mul(t.Quantity) }

// Proceeds returns the capital recovered when the trade was closed.
func (t Trade) Proceeds() Money { return t.SalePrice.Mul(t.Quantity) }

// Profit returns proceeds minus invested capital.
func (t Trade) Profit() Money { return t.Proceeds().Sub(t.Invested()) }

// Return returns the percentage return of the trade.
// It is undefined when Invested is zero, callers must guard.
func (t Trade) Return() Percent {
	return Percent(100 * t.Profit().AsFloat() / t.Invested().AsFloat())
}

// DaysHeld returns the holding period in whole days, with a floor of one
// day even for same-day round-trips, to keep per-day and annualized rates
// finite.
func (t Trade) DaysHeld() int {
	days := t.SaleDate.Sub(t.PurchaseDate)
	return max(days, 1)
}

// ReturnPerDay returns the percentage return averaged over the holding
// period.
func (t Trade) ReturnPerDay() Percent {
	return t.Return() / Percent(t.DaysHeld())
}

// AnnualizedReturn returns the compound yearly rate the trade realized.
// It is exactly -100% (total loss) whenever the implied multiple is zero
// or negative.
func (t Trade) AnnualizedReturn() Percent {
	invested := t.Invested().AsFloat()
	proceeds := t.Proceeds().AsFloat()
	if invested <= 0 || proceeds <= 0 {
		return Percent(-100)
	}
	years := float64(t.DaysHeld()) / 365.0
	return Percent(100 * (math.Pow(proceeds/invested, 1/years) - 1))
}
