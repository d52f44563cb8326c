package roitrack

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"

	"github.com/shopspring/decimal"
)

// This file contains code to persist the trade book as JSONL, in a way
// that is human-readable and git-friendly: one trade per line, amounts as
// bare decimals in the reporting currency, dates in ISO form.

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// jtrade is the wire form of a Trade.
type jtrade struct {
	Ticker       string   `json:"ticker"`
	CostPerShare Money    `json:"costPerShare"`
	Quantity     Quantity `json:"quantity"`
	SalePrice    Money    `json:"salePrice"`
	PurchaseDate Date     `json:"purchaseDate"`
	SaleDate     Date     `json:"saleDate"`
}

// DecodeTrades decodes a trade book from a stream of JSONL data: one trade
// object per line, empty lines skipped. Decoded records go back through
// NewTrade so a hand-edited file cannot smuggle in an inconsistent trade.
func DecodeTrades(r io.Reader) (*Portfolio, error) {
	book := NewPortfolio()
	scanner := bufio.NewScanner(r)

	line := 0
	for scanner.Scan() {
		line++
		lineBytes := scanner.Bytes()
		if len(lineBytes) == 0 {
			continue
		}

		var jt jtrade
		if err := json.Unmarshal(lineBytes, &jt); err != nil {
			return nil, lineError(line, fmt.Errorf("could not decode trade: %w", err))
		}
		trade, err := NewTrade(jt.Ticker,
			Quantity{value: jt.CostPerShare.value},
			jt.Quantity,
			Quantity{value: jt.SalePrice.value},
			jt.PurchaseDate, jt.SaleDate)
		if err != nil {
			return nil, lineError(line, err)
		}
		book.Append(trade)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("could not read trades: %w", err)
	}
	return book, nil
}

// EncodeTrade writes a single trade as one JSON line.
func EncodeTrade(w io.Writer, t Trade) error {
	jt := jtrade{
		Ticker:       t.Ticker,
		CostPerShare: t.CostPerShare,
		Quantity:     t.Quantity,
		SalePrice:    t.SalePrice,
		PurchaseDate: t.PurchaseDate,
		SaleDate:     t.SaleDate,
	}
	data, err := json.Marshal(jt)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "%s\n", data)
	return err
}

// EncodeTrades writes the whole book in JSONL, in book order.
func (p *Portfolio) EncodeTrades(w io.Writer) error {
	for _, t := range p.trades {
		if err := EncodeTrade(w, t); err != nil {
			return err
		}
	}
	return nil
}
