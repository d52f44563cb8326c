package roitrack

import "strings"

// this file locates the header row of a statement table and maps the
// recognized column-name spellings onto the six semantic roles a trade
// needs.

// columns maps each semantic role to a zero-based column index within a row.
type columns struct {
	ticker    int
	cost      int
	quantity  int
	salePrice int
	buyDate   int
	saleDate  int
}

// semantic labels used in error messages, shared with the form-entry path.
const (
	labelCost         = "cost/share"
	labelQuantity     = "quantity"
	labelSalePrice    = "sale price"
	labelPurchaseDate = "purchase date"
	labelSaleDate     = "sale date"
)

// sanitizeHeader keeps only ASCII alphanumerics, lower-cased, so that
// "Cost/Share", "cost share" and "COST_SHARE" all compare equal.
func sanitizeHeader(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, c := range s {
		switch {
		case c >= 'a' && c <= 'z', c >= '0' && c <= '9':
			b.WriteRune(c)
		case c >= 'A' && c <= 'Z':
			b.WriteRune(c - 'A' + 'a')
		}
	}
	return b.String()
}

// detectHeader matches a row against the recognized column-name synonyms
// of real broker exports. It reports ok only when all six roles resolve to
// a column index; anything else is not a header and the caller keeps
// scanning.
//
// Generic date columns ("Date", "Sale Date", "Sell Date") are collected
// separately: some exports label both dates "Date", and some record only
// one date per row. When no explicit purchase-date column exists, the
// first generic date column is the purchase date; when no explicit
// sale-date column exists, the second generic date column is the sale
// date, or the first one doubles for both roles.
func detectHeader(cells []string) (columns, bool) {
	ticker, cost, quantity, salePrice, buyDate, saleDate := -1, -1, -1, -1, -1, -1
	var dateCols []int

	for i, raw := range cells {
		switch sanitizeHeader(raw) {
		case "symbol", "ticker":
			ticker = i
		case "qty", "qtynumber", "qtyshare", "qtyshares", "quantity":
			quantity = i
		case "costshare", "costpershare":
			cost = i
		case "priceshare", "pricepershare", "saleprice", "sellprice":
			salePrice = i
		case "dateadded", "purchasedate", "buydate":
			buyDate = i
		case "date", "saledate", "selldate":
			dateCols = append(dateCols, i)
		}
	}

	if buyDate < 0 && len(dateCols) > 0 {
		buyDate = dateCols[0]
	}
	if saleDate < 0 {
		if len(dateCols) > 1 {
			saleDate = dateCols[1]
		} else if len(dateCols) > 0 {
			saleDate = dateCols[0]
		}
	}

	if ticker < 0 || cost < 0 || quantity < 0 || salePrice < 0 || buyDate < 0 || saleDate < 0 {
		return columns{}, false
	}
	return columns{
		ticker:    ticker,
		cost:      cost,
		quantity:  quantity,
		salePrice: salePrice,
		buyDate:   buyDate,
		saleDate:  saleDate,
	}, true
}
