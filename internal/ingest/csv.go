// Package ingest parses tabular portfolio files into validated in-memory
// snapshots. It owns all column validation, type coercion, and
// default-value substitution so the analytics engine never has to
// re-validate its inputs.
package ingest

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/bobmcallan/lever/internal/models"
)

// Column names recognised in the header row, matched case-insensitively
// after trimming. market_value is the only required column.
const (
	colTicker         = "ticker"
	colMarketValue    = "market_value"
	colCostBasis      = "cost_basis"
	colAnnualDividend = "annual_dividend"
	colSector         = "sector"
	colCash           = "cash"
	colMarginUsed     = "margin_used"
)

// ParseCSV reads a portfolio CSV: one header row, one row per holding.
// Account-level cash and margin_used may appear as columns — the first
// data row's values are used. Missing or unparsable numeric cells
// substitute 0; a missing sector substitutes "Uncategorized"; a missing
// ticker substitutes "N/A".
//
// On success the returned portfolio satisfies models.Portfolio.WellFormed,
// with a non-nil (possibly empty) holdings slice.
func ParseCSV(r io.Reader) (*models.Portfolio, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("empty file: missing header row")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read header row: %w", err)
	}

	cols := make(map[string]int, len(header))
	for i, name := range header {
		cols[strings.ToLower(strings.TrimSpace(name))] = i
	}
	if _, ok := cols[colMarketValue]; !ok {
		return nil, fmt.Errorf("missing required column %q", colMarketValue)
	}

	portfolio := &models.Portfolio{Holdings: []models.Holding{}}
	accountSeen := false

	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read row: %w", err)
		}

		h := models.Holding{
			Ticker:         cell(record, cols, colTicker, models.NotApplicable),
			MarketValue:    amount(record, cols, colMarketValue),
			CostBasis:      amount(record, cols, colCostBasis),
			AnnualDividend: amount(record, cols, colAnnualDividend),
			Sector:         cell(record, cols, colSector, models.DefaultSector),
		}
		portfolio.Holdings = append(portfolio.Holdings, h)

		// Account columns are row-invariant; take the first row's values.
		if !accountSeen {
			portfolio.Cash = amount(record, cols, colCash)
			portfolio.MarginUsed = amount(record, cols, colMarginUsed)
			accountSeen = true
		}
	}

	return portfolio, nil
}

// ParseCSVWithAccount parses holdings from the CSV and applies the given
// account-level figures, overriding any cash/margin_used columns in the
// file. Used when the account balances arrive out of band.
func ParseCSVWithAccount(r io.Reader, cash, marginUsed float64) (*models.Portfolio, error) {
	portfolio, err := ParseCSV(r)
	if err != nil {
		return nil, err
	}
	portfolio.Cash = cash
	portfolio.MarginUsed = marginUsed
	return portfolio, nil
}

// cell returns the trimmed value of a named column, or fallback when the
// column is absent or the cell is empty.
func cell(record []string, cols map[string]int, name, fallback string) string {
	i, ok := cols[name]
	if !ok || i >= len(record) {
		return fallback
	}
	v := strings.TrimSpace(record[i])
	if v == "" {
		return fallback
	}
	return v
}

// amount coerces a named column to a float64, substituting 0 for absent
// columns, empty cells, and unparsable values. Currency symbols, commas,
// and surrounding whitespace are tolerated.
func amount(record []string, cols map[string]int, name string) float64 {
	i, ok := cols[name]
	if !ok || i >= len(record) {
		return 0
	}
	raw := strings.TrimSpace(record[i])
	raw = strings.ReplaceAll(raw, "$", "")
	raw = strings.ReplaceAll(raw, ",", "")
	if raw == "" || strings.EqualFold(raw, models.NotApplicable) {
		return 0
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0
	}
	return v
}
