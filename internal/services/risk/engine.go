// Package risk applies shock scenarios to a portfolio snapshot, estimates
// Monte-Carlo Value-at-Risk, solves for the margin-call threshold, and
// assesses sector concentration.
package risk

import (
	"fmt"
	"sort"

	"github.com/bobmcallan/lever/internal/models"
	"github.com/bobmcallan/lever/internal/services/metrics"
)

// DefaultScenarios are the preset market-drop shocks applied when a caller
// does not supply its own.
var DefaultScenarios = []float64{0.05, 0.10, 0.20, 0.30, 0.50}

// RunSingleScenario recomputes the full metrics set for a shocked copy of
// the snapshot: every holding's market value multiplied by (1 − dropPercent),
// cash and margin unchanged. The input snapshot is never mutated.
//
// An absent portfolio or holdings slice returns the zero-value result
// (marshals to {}) — a distinct sentinel from the metrics calculator's
// all-"0.00" zero-result.
func RunSingleScenario(p *models.Portfolio, dropPercent float64) models.MetricsResult {
	if p == nil || p.Holdings == nil {
		return models.MetricsResult{}
	}

	shocked := models.Portfolio{
		Cash:       p.Cash,
		MarginUsed: p.MarginUsed,
		Holdings:   make([]models.Holding, len(p.Holdings)),
	}
	for i, h := range p.Holdings {
		h.MarketValue *= 1 - dropPercent
		shocked.Holdings[i] = h
	}

	return metrics.CalculateAllDefault(&shocked)
}

// RunScenarios applies each drop in sequence and collects the results.
func RunScenarios(p *models.Portfolio, drops []float64) []models.ScenarioResult {
	results := make([]models.ScenarioResult, 0, len(drops))
	for _, drop := range drops {
		results = append(results, models.ScenarioResult{
			DropPercent: drop,
			Metrics:     RunSingleScenario(p, drop),
		})
	}
	return results
}

// MarginCallThreshold solves for the market-value drop that would bring
// excess liquidity to exactly zero under the maintenance requirement.
//
// The margin loan is derived independently of the metrics calculator as
// marketValue + cash − netLiquidationValue (which reduces to marginUsed
// under the metrics identity). The break-even market value is
// loan / (1 − maintMarginReq).
//
// Returns "N/A" for both fields when no drop can trigger a call (no loan,
// or no market value to drop), and "0.00" for both when the snapshot is
// already at or below the threshold.
func MarginCallThreshold(p *models.Portfolio, maintMarginReq float64) models.MarginCallInfo {
	notApplicable := models.MarginCallInfo{
		DropPercentage:  models.NotApplicable,
		MarketValueDrop: models.NotApplicable,
	}
	if p == nil || p.Holdings == nil {
		return notApplicable
	}

	marketValue := p.TotalMarketValue()
	netLiq := marketValue + p.Cash - p.MarginUsed
	marginLoan := marketValue + p.Cash - netLiq

	if marginLoan <= 0 || marketValue == 0 {
		return notApplicable
	}

	thresholdMarketValue := marginLoan / (1 - maintMarginReq)
	if marketValue <= thresholdMarketValue {
		// Already in call territory, or exactly at the boundary.
		return models.MarginCallInfo{
			DropPercentage:  "0.00",
			MarketValueDrop: "0.00",
		}
	}

	marketValueDrop := marketValue - thresholdMarketValue
	dropPercentage := marketValueDrop / marketValue * 100

	return models.MarginCallInfo{
		DropPercentage:  models.FormatAmount(dropPercentage),
		MarketValueDrop: models.FormatAmount(marketValueDrop),
	}
}

// Concentration classification messages. Fixed — consumers and tests
// match on them.
const (
	MsgNoAssets      = "No assets to analyze."
	MsgNoMarketValue = "No market value to analyze."
	MsgSingleAsset   = "Portfolio is 100% concentrated in a single asset."
	MsgDiversified   = "Portfolio is reasonably diversified across sectors."
)

// AnalyzeConcentration groups holdings by sector, finds the heaviest
// sector's share of total market value, and returns a descriptive
// assessment. Portfolios with fewer than two holdings short-circuit to the
// single-asset message before any percentage classification.
func AnalyzeConcentration(holdings []models.Holding) string {
	if len(holdings) == 0 {
		return MsgNoAssets
	}

	total := 0.0
	bySector := make(map[string]float64)
	for _, h := range holdings {
		total += h.MarketValue
		bySector[h.SectorOrDefault()] += h.MarketValue
	}

	if total == 0 {
		return MsgNoMarketValue
	}
	if len(holdings) < 2 {
		return MsgSingleAsset
	}

	topSector := ""
	topValue := 0.0
	// Deterministic pick on ties.
	sectors := make([]string, 0, len(bySector))
	for sector := range bySector {
		sectors = append(sectors, sector)
	}
	sort.Strings(sectors)
	for _, sector := range sectors {
		if bySector[sector] > topValue {
			topSector = sector
			topValue = bySector[sector]
		}
	}

	topPct := topValue / total * 100
	switch {
	case topPct > 50:
		return fmt.Sprintf("High concentration risk: %.1f%% of portfolio in %s.", topPct, topSector)
	case topPct > 30:
		return fmt.Sprintf("Moderate concentration risk: %.1f%% of portfolio in %s.", topPct, topSector)
	default:
		return MsgDiversified
	}
}
