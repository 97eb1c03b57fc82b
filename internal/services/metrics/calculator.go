// Package metrics computes margin metrics from a portfolio snapshot.
package metrics

import (
	"math"

	"github.com/bobmcallan/lever/internal/models"
)

// Flat margin requirements applied when a caller does not supply its own.
// These are simplified account-wide percentages, not instrument-specific
// requirements.
const (
	DefaultInitialMarginReq = 0.50
	DefaultMaintMarginReq   = 0.25
)

// CalculateAll derives the full metrics set for one snapshot.
//
// A malformed snapshot (nil portfolio, nil holdings, non-finite cash or
// margin) returns the all-"0.00" zero-result — defined behaviour for
// absent/placeholder data, never an error.
//
// Negative equity is fully supported: leverage and margin health floor at
// 0 rather than going negative or infinite when net liquidation value is
// not positive.
func CalculateAll(p *models.Portfolio, initialMarginReq, maintMarginReq float64) models.MetricsResult {
	if !p.WellFormed() {
		return models.ZeroMetricsResult()
	}

	marketValue := p.TotalMarketValue()

	// One derived value, exposed under two keys (net_liquidation_value and
	// total_equity) — computed once so they cannot drift.
	netLiq := marketValue + p.Cash - p.MarginUsed

	maintenanceMargin := marketValue * maintMarginReq
	excessLiquidity := netLiq - maintenanceMargin

	buyingPower := 0.0
	if initialMarginReq != 0 {
		buyingPower = math.Max(0, excessLiquidity/initialMarginReq)
	}

	leverage := 0.0
	marginHealth := 0.0
	if netLiq > 0 {
		leverage = marketValue / netLiq
		if math.IsNaN(leverage) || math.IsInf(leverage, 0) {
			leverage = 0
		}
		marginHealth = excessLiquidity / netLiq * 100
	}

	nlv := models.FormatAmount(netLiq)
	return models.MetricsResult{
		NetLiquidationValue: nlv,
		TotalEquity:         nlv,
		MarketValue:         models.FormatAmount(marketValue),
		Leverage:            models.FormatAmount(leverage),
		MaintenanceMargin:   models.FormatAmount(maintenanceMargin),
		ExcessLiquidity:     models.FormatAmount(excessLiquidity),
		BuyingPower:         models.FormatAmount(buyingPower),
		MarginHealth:        models.FormatAmount(marginHealth),
	}
}

// CalculateAllDefault applies the default margin requirements.
func CalculateAllDefault(p *models.Portfolio) models.MetricsResult {
	return CalculateAll(p, DefaultInitialMarginReq, DefaultMaintMarginReq)
}
