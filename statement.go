package roitrack

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// this file contains the statement ingestion parser: it converts an
// arbitrary, loosely-structured brokerage CSV export into a sequence of
// validated trades.
//
// Real exports have no reliable schema: the trade-detail table sits among
// unrelated sections, headers are spelled inconsistently, summary rows mix
// with data rows, and a ticker stated once applies to several following
// detail rows. The parser is a sequential fold over the rows: each row
// either advances the parser state (section boundary, header, ticker
// context) or emits a trade.

// detailSectionMarker identifies the trade-detail table within a full
// statement export (case-insensitive substring of the joined row).
const detailSectionMarker = "taxable g&l details"

// positionalColumns is the fixed layout assumed when no recognizable
// header row exists anywhere in the file: ticker, cost, quantity, sale
// price, purchase date, sale date.
var positionalColumns = columns{
	ticker:    0,
	cost:      1,
	quantity:  2,
	salePrice: 3,
	buyDate:   4,
	saleDate:  5,
}

// statementRow is one raw CSV record with its 1-based position.
type statementRow struct {
	line  int
	cells []string
}

// parserState carries the fold state of a single parse call. It is owned
// exclusively by that call and discarded when it returns.
type parserState struct {
	header *columns // column mapping of the active section, nil while seeking
	ticker string   // carried-forward ticker context, "" while unset
	trades []Trade
}

// ParseStatement reads a brokerage CSV export and returns the trades it
// contains, in file order. It fails with a descriptive error on the first
// malformed required field ("line <n>: <reason>"), and with ErrNoTrades
// when no data row was recognized anywhere in the file.
func ParseStatement(path string) ([]Trade, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("cannot read %s: %w", path, err)
	}
	return DecodeStatement(bytes.NewReader(data))
}

// DecodeStatement parses a brokerage CSV export from r. See ParseStatement.
func DecodeStatement(r io.Reader) ([]Trade, error) {
	rows, err := readRows(r)
	if err != nil {
		return nil, err
	}

	// When no row anywhere matches the header detector, the file is a bare
	// export and the fixed positional layout applies instead.
	headered := false
	for _, row := range rows {
		if _, ok := detectHeader(row.cells); ok {
			headered = true
			break
		}
	}

	state := &parserState{}
	for _, row := range rows {
		var err error
		if headered {
			err = state.nextHeadered(row)
		} else {
			err = state.nextPositional(row)
		}
		if err != nil {
			return nil, err
		}
	}

	if len(state.trades) == 0 {
		return nil, ErrNoTrades
	}
	return state.trades, nil
}

// readRows reads the whole input with a lenient CSV reader: rows may have
// differing column counts and every cell is trimmed of surrounding
// whitespace.
func readRows(r io.Reader) ([]statementRow, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	var rows []statementRow
	for line := 1; ; line++ {
		record, err := reader.Read()
		if err == io.EOF {
			return rows, nil
		}
		if err != nil {
			return nil, lineError(line, err)
		}
		for i, cell := range record {
			record[i] = strings.TrimSpace(cell)
		}
		rows = append(rows, statementRow{line: line, cells: record})
	}
}

// nextHeadered advances the state by one row in header-detection mode.
func (s *parserState) nextHeadered(row statementRow) error {
	cells := row.cells
	if len(cells) == 0 {
		return nil
	}

	// A section boundary restarts the header search: the next table may
	// have a different layout.
	joined := strings.ToLower(strings.Join(cells, " "))
	if strings.Contains(joined, detailSectionMarker) {
		s.header = nil
		return nil
	}

	if isSummaryRow(cells) {
		return nil
	}

	// Until a header is active every row is either the header itself or
	// front-matter noise.
	if s.header == nil {
		if header, ok := detectHeader(cells); ok {
			s.header = &header
		}
		return nil
	}

	return s.consume(*s.header, row)
}

// nextPositional advances the state by one row in positional-fallback mode.
func (s *parserState) nextPositional(row statementRow) error {
	cells := row.cells
	if len(cells) == 0 {
		return nil
	}
	if isSummaryRow(cells) {
		return nil
	}
	// Pre/post table fluff never has the full six columns.
	if len(cells) <= positionalColumns.saleDate {
		return nil
	}
	return s.consume(positionalColumns, row)
}

// isSummaryRow reports statement summary lines such as "Total" and
// "Subtotal", which are not data.
func isSummaryRow(cells []string) bool {
	first := strings.ToLower(cells[0])
	return first == "total" || first == "subtotal"
}

// consume evaluates one row under the given column mapping. The row may
// update the ticker context, emit a trade, both, or neither.
func (s *parserState) consume(cols columns, row statementRow) error {
	get := func(i int) string {
		if i < len(row.cells) {
			return row.cells[i]
		}
		return ""
	}

	// A non-sell row naming a ticker updates the context even when its
	// numeric cells are blank: exports often state the symbol once on a
	// summary row and let the following detail rows inherit it.
	rawTicker := get(cols.ticker)
	if !isMissing(rawTicker) && !strings.HasPrefix(strings.ToLower(rawTicker), "sell") {
		ticker, err := ParseTicker(rawTicker)
		if err != nil {
			return lineError(row.line, err)
		}
		s.ticker = ticker
	}

	// The same row is still evaluated as a detail line: it qualifies only
	// when all five required fields are present. Partial rows are context,
	// not errors.
	for _, i := range []int{cols.cost, cols.quantity, cols.salePrice, cols.buyDate, cols.saleDate} {
		if isMissing(get(i)) {
			return nil
		}
	}

	// A detail line without ticker context cannot be attributed to a
	// symbol.
	if s.ticker == "" {
		return nil
	}

	cost, err := ParseAmount(get(cols.cost), labelCost)
	if err != nil {
		return lineError(row.line, err)
	}
	quantity, err := ParseAmount(get(cols.quantity), labelQuantity)
	if err != nil {
		return lineError(row.line, err)
	}
	salePrice, err := ParseAmount(get(cols.salePrice), labelSalePrice)
	if err != nil {
		return lineError(row.line, err)
	}
	purchase, err := ParseTradeDate(get(cols.buyDate), labelPurchaseDate)
	if err != nil {
		return lineError(row.line, err)
	}
	sale, err := ParseTradeDate(get(cols.saleDate), labelSaleDate)
	if err != nil {
		return lineError(row.line, err)
	}

	trade, err := NewTrade(s.ticker, cost, quantity, salePrice, purchase, sale)
	if err != nil {
		return lineError(row.line, err)
	}
	s.trades = append(s.trades, trade)
	return nil
}

// IsNoTrades reports whether err is the all-noise-statement error.
func IsNoTrades(err error) bool { return errors.Is(err, ErrNoTrades) }
