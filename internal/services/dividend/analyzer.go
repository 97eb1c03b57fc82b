// Package dividend computes dividend income analytics for a holdings set:
// yield on cost, forward projections, and margin-interest coverage.
package dividend

import (
	"math"
	"time"

	"github.com/bobmcallan/lever/internal/models"
)

// Defaults applied when a caller does not supply its own parameters.
const (
	DefaultProjectionYears = 5
	DefaultGrowthRate      = 0.05
	DefaultMarginRate      = 0.06
)

// YieldOnCost returns total annual dividend as a percentage of total cost
// basis. Returns 0 for an empty holdings set or when total cost basis is
// not positive — one guard covers both the divide-by-zero and
// negative-cost edge cases.
func YieldOnCost(holdings []models.Holding) float64 {
	if len(holdings) == 0 {
		return 0
	}
	totalCost := models.TotalCostBasis(holdings)
	if totalCost <= 0 {
		return 0
	}
	return models.TotalAnnualDividend(holdings) / totalCost * 100
}

// Project builds a forward dividend projection. Income for year i
// (1-indexed) is base·(1+growthRate)^i where base is the current total
// annual dividend — growth restates from the same base each year rather
// than chaining off the previous projected year. Years are anchored to
// the supplied clock: year i is now's calendar year + i.
//
// A nil holdings slice returns an empty projection.
func Project(holdings []models.Holding, years int, growthRate float64, now time.Time) []models.ProjectionPoint {
	if holdings == nil || years <= 0 {
		return []models.ProjectionPoint{}
	}

	base := models.TotalAnnualDividend(holdings)
	currentYear := now.Year()

	points := make([]models.ProjectionPoint, 0, years)
	for i := 1; i <= years; i++ {
		income := base * math.Pow(1+growthRate, float64(i))
		points = append(points, models.ProjectionPoint{
			Year:   currentYear + i,
			Income: models.Round2(income),
		})
	}
	return points
}

// MarginCoverage returns the ratio of annual dividend income to annual
// margin interest (marginUsed × marginRate). Returns 0 when holdings are
// absent — this short-circuits before the interest check — and +Inf when
// annual interest is not positive (income covers a nonexistent expense).
func MarginCoverage(holdings []models.Holding, marginUsed, marginRate float64) float64 {
	if len(holdings) == 0 {
		return 0
	}
	annualInterest := marginUsed * marginRate
	if annualInterest <= 0 {
		return math.Inf(1)
	}
	return models.TotalAnnualDividend(holdings) / annualInterest
}

// MarginPayoffYears returns how many years of dividend income it would
// take to repay the margin loan. ok is false — the "N/A" sentinel — when
// annual dividends or margin used are not positive, or the ratio is
// non-finite.
func MarginPayoffYears(holdings []models.Holding, marginUsed float64) (float64, bool) {
	totalDividend := models.TotalAnnualDividend(holdings)
	if totalDividend <= 0 || marginUsed <= 0 {
		return 0, false
	}
	years := marginUsed / totalDividend
	if math.IsNaN(years) || math.IsInf(years, 0) {
		return 0, false
	}
	return years, true
}
