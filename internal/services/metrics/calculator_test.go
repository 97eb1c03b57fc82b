package metrics

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bobmcallan/lever/internal/models"
)

func samplePortfolio() *models.Portfolio {
	return &models.Portfolio{
		Cash:       10000,
		MarginUsed: 40000,
		Holdings: []models.Holding{
			{Ticker: "AAPL", MarketValue: 50000, CostBasis: 40000, AnnualDividend: 500, Sector: "Technology"},
			{Ticker: "JNJ", MarketValue: 30000, CostBasis: 25000, AnnualDividend: 900, Sector: "Healthcare"},
		},
	}
}

func TestCalculateAllDefault_LeveragedAccount(t *testing.T) {
	result := CalculateAllDefault(samplePortfolio())

	assert.Equal(t, "80000.00", result.MarketValue)
	assert.Equal(t, "50000.00", result.NetLiquidationValue)
	assert.Equal(t, "50000.00", result.TotalEquity)
	assert.Equal(t, "1.60", result.Leverage)
	assert.Equal(t, "20000.00", result.MaintenanceMargin)
	assert.Equal(t, "30000.00", result.ExcessLiquidity)
	assert.Equal(t, "60000.00", result.BuyingPower)
	assert.Equal(t, "60.00", result.MarginHealth)
}

func TestCalculateAllDefault_NegativeEquity(t *testing.T) {
	p := samplePortfolio()
	p.MarginUsed = 100000

	result := CalculateAllDefault(p)

	assert.Equal(t, "-10000.00", result.NetLiquidationValue)
	assert.Equal(t, "-10000.00", result.TotalEquity)
	assert.Equal(t, "-30000.00", result.ExcessLiquidity)
	// Ratios floor at zero instead of going negative
	assert.Equal(t, "0.00", result.Leverage)
	assert.Equal(t, "0.00", result.MarginHealth)
	assert.Equal(t, "0.00", result.BuyingPower)
}

func TestCalculateAllDefault_EquityAliasesNeverDiverge(t *testing.T) {
	portfolios := []*models.Portfolio{
		samplePortfolio(),
		{Cash: 0, MarginUsed: 0, Holdings: []models.Holding{}},
		{Cash: -500, MarginUsed: 250000, Holdings: samplePortfolio().Holdings},
	}
	for _, p := range portfolios {
		result := CalculateAllDefault(p)
		assert.Equal(t, result.NetLiquidationValue, result.TotalEquity)
	}
}

func TestCalculateAllDefault_MalformedSnapshots(t *testing.T) {
	tests := []struct {
		name string
		p    *models.Portfolio
	}{
		{"nil portfolio", nil},
		{"nil holdings", &models.Portfolio{Cash: 1000}},
		{"NaN cash", &models.Portfolio{Cash: math.NaN(), Holdings: []models.Holding{}}},
		{"infinite margin", &models.Portfolio{MarginUsed: math.Inf(1), Holdings: []models.Holding{}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, models.ZeroMetricsResult(), CalculateAllDefault(tt.p))
		})
	}
}

func TestCalculateAllDefault_EmptyHoldings(t *testing.T) {
	// Empty holdings slice is legal, unlike a nil one.
	p := &models.Portfolio{Cash: 5000, Holdings: []models.Holding{}}
	result := CalculateAllDefault(p)

	assert.Equal(t, "5000.00", result.NetLiquidationValue)
	assert.Equal(t, "0.00", result.MarketValue)
	assert.Equal(t, "0.00", result.Leverage)
	assert.Equal(t, "10000.00", result.BuyingPower)
}

func TestCalculateAll_ZeroInitialMarginReq(t *testing.T) {
	result := CalculateAll(samplePortfolio(), 0, DefaultMaintMarginReq)
	assert.Equal(t, "0.00", result.BuyingPower)
	assert.Equal(t, "30000.00", result.ExcessLiquidity)
}

func TestCalculateAll_NonFinitePositionTreatedAsZero(t *testing.T) {
	p := samplePortfolio()
	p.Holdings = append(p.Holdings, models.Holding{Ticker: "BAD", MarketValue: math.NaN()})

	result := CalculateAllDefault(p)
	assert.Equal(t, "80000.00", result.MarketValue)
}

func TestMetricsResult_ZeroValueMarshalsEmpty(t *testing.T) {
	data, err := json.Marshal(models.MetricsResult{})
	require.NoError(t, err)
	assert.Equal(t, "{}", string(data))
}
