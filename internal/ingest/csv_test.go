package ingest

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bobmcallan/lever/internal/models"
)

func TestParseCSV(t *testing.T) {
	input := strings.Join([]string{
		"ticker,market_value,cost_basis,annual_dividend,sector,cash,margin_used",
		"AAPL,50000,40000,500,Technology,10000,40000",
		"JNJ,30000,25000,900,Healthcare,10000,40000",
	}, "\n")

	p, err := ParseCSV(strings.NewReader(input))
	require.NoError(t, err)

	assert.True(t, p.WellFormed())
	assert.Equal(t, 10000.0, p.Cash)
	assert.Equal(t, 40000.0, p.MarginUsed)
	require.Len(t, p.Holdings, 2)

	assert.Equal(t, models.Holding{
		Ticker:         "AAPL",
		MarketValue:    50000,
		CostBasis:      40000,
		AnnualDividend: 500,
		Sector:         "Technology",
	}, p.Holdings[0])
	assert.Equal(t, "JNJ", p.Holdings[1].Ticker)
}

func TestParseCSV_CurrencyFormattingTolerated(t *testing.T) {
	input := strings.Join([]string{
		"ticker,market_value,cash",
		`AAPL,"$50,000.25","$1,000"`,
	}, "\n")

	p, err := ParseCSV(strings.NewReader(input))
	require.NoError(t, err)

	assert.Equal(t, 50000.25, p.Holdings[0].MarketValue)
	assert.Equal(t, 1000.0, p.Cash)
}

func TestParseCSV_DefaultsSubstituted(t *testing.T) {
	input := strings.Join([]string{
		"market_value",
		"50000",
	}, "\n")

	p, err := ParseCSV(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, p.Holdings, 1)

	h := p.Holdings[0]
	assert.Equal(t, models.NotApplicable, h.Ticker)
	assert.Equal(t, models.DefaultSector, h.Sector)
	assert.Zero(t, h.CostBasis)
	assert.Zero(t, h.AnnualDividend)
	assert.Zero(t, p.Cash)
	assert.Zero(t, p.MarginUsed)
}

func TestParseCSV_UnparsableAmountsSubstituteZero(t *testing.T) {
	input := strings.Join([]string{
		"ticker,market_value,cost_basis",
		"AAPL,not-a-number,N/A",
	}, "\n")

	p, err := ParseCSV(strings.NewReader(input))
	require.NoError(t, err)

	assert.Zero(t, p.Holdings[0].MarketValue)
	assert.Zero(t, p.Holdings[0].CostBasis)
}

func TestParseCSV_HeaderCaseInsensitive(t *testing.T) {
	input := strings.Join([]string{
		"Ticker, Market_Value ,SECTOR",
		"AAPL,50000,Technology",
	}, "\n")

	p, err := ParseCSV(strings.NewReader(input))
	require.NoError(t, err)
	assert.Equal(t, 50000.0, p.Holdings[0].MarketValue)
	assert.Equal(t, "Technology", p.Holdings[0].Sector)
}

func TestParseCSV_AccountColumnsFromFirstRow(t *testing.T) {
	input := strings.Join([]string{
		"ticker,market_value,cash,margin_used",
		"AAPL,50000,10000,40000",
		"JNJ,30000,99999,99999",
	}, "\n")

	p, err := ParseCSV(strings.NewReader(input))
	require.NoError(t, err)
	assert.Equal(t, 10000.0, p.Cash)
	assert.Equal(t, 40000.0, p.MarginUsed)
}

func TestParseCSV_Errors(t *testing.T) {
	_, err := ParseCSV(strings.NewReader(""))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "empty file")

	_, err = ParseCSV(strings.NewReader("ticker,cost_basis\nAAPL,100"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "market_value")
}

func TestParseCSVWithAccount_OverridesFileColumns(t *testing.T) {
	input := strings.Join([]string{
		"ticker,market_value,cash,margin_used",
		"AAPL,50000,99999,99999",
	}, "\n")

	p, err := ParseCSVWithAccount(strings.NewReader(input), 10000, 40000)
	require.NoError(t, err)

	assert.Equal(t, 10000.0, p.Cash)
	assert.Equal(t, 40000.0, p.MarginUsed)
	assert.Equal(t, 50000.0, p.Holdings[0].MarketValue)
}

func TestParseCSV_HeaderOnlyYieldsEmptyWellFormedPortfolio(t *testing.T) {
	p, err := ParseCSV(strings.NewReader("ticker,market_value\n"))
	require.NoError(t, err)

	assert.True(t, p.WellFormed())
	assert.NotNil(t, p.Holdings)
	assert.Empty(t, p.Holdings)
}
