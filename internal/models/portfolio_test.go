package models

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPortfolio_WellFormed(t *testing.T) {
	var nilPortfolio *Portfolio
	assert.False(t, nilPortfolio.WellFormed())

	// Nil holdings is malformed; an empty slice is not.
	assert.False(t, (&Portfolio{Cash: 1000}).WellFormed())
	assert.True(t, (&Portfolio{Cash: 1000, Holdings: []Holding{}}).WellFormed())

	assert.False(t, (&Portfolio{Cash: math.NaN(), Holdings: []Holding{}}).WellFormed())
	assert.False(t, (&Portfolio{MarginUsed: math.Inf(-1), Holdings: []Holding{}}).WellFormed())

	// Negative balances are legal, just leveraged or overdrawn.
	assert.True(t, (&Portfolio{Cash: -5000, MarginUsed: 40000, Holdings: []Holding{}}).WellFormed())
}

func TestPortfolio_Totals(t *testing.T) {
	p := &Portfolio{
		Holdings: []Holding{
			{MarketValue: 50000, CostBasis: 40000, AnnualDividend: 500},
			{MarketValue: 30000, CostBasis: 25000, AnnualDividend: 900},
			{MarketValue: math.NaN(), CostBasis: math.Inf(1), AnnualDividend: math.NaN()},
		},
	}

	assert.Equal(t, 80000.0, p.TotalMarketValue())
	assert.Equal(t, 1400.0, p.TotalAnnualDividend())
	assert.Equal(t, 65000.0, TotalCostBasis(p.Holdings))
}

func TestPortfolio_TotalsOnNil(t *testing.T) {
	var p *Portfolio
	assert.Zero(t, p.TotalMarketValue())
	assert.Zero(t, p.TotalAnnualDividend())
}

func TestHolding_SectorOrDefault(t *testing.T) {
	assert.Equal(t, "Technology", Holding{Sector: "Technology"}.SectorOrDefault())
	assert.Equal(t, DefaultSector, Holding{}.SectorOrDefault())
}
