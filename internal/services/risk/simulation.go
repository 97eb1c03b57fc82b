package risk

import (
	"fmt"
	"math"
	"math/rand"
	"sort"
	"strconv"

	"github.com/bobmcallan/lever/internal/models"
)

// Simulation defaults applied when a caller does not supply its own.
const (
	DefaultDailyVolatility = 0.02
	DefaultSimulations     = 1000
)

// Uniform is the injectable uniform(0,1) source consumed by the
// Monte-Carlo simulation. *rand.Rand satisfies it; tests substitute a
// deterministic sequence to assert exact output. Per-call sources also
// keep concurrent invocations free of shared-state races.
type Uniform interface {
	Float64() float64
}

// NewSource returns a seeded uniform source for one simulation run.
func NewSource(seed int64) Uniform {
	return rand.New(rand.NewSource(seed))
}

// CalculateVaR estimates Value-at-Risk by Monte-Carlo simulation. Each of
// simulations paths starts at the snapshot's total market value and
// applies timeHorizonDays independent multiplicative daily shocks
// (1 + z·dailyVolatility) with z a standard-normal variate from the
// Box–Muller transform, drawn fresh per day per path. Losses are sorted
// ascending and the VaR is the empirical quantile at
// floor(simulations·confidenceLevel).
//
// The result is clamped at "0.00" — VaR is reported only as a loss, never
// a negative "gain". A degenerate snapshot (absent or zero market value)
// or non-positive simulation parameters return "0.00" without simulating.
func CalculateVaR(p *models.Portfolio, confidenceLevel float64, timeHorizonDays int, dailyVolatility float64, simulations int, src Uniform) models.VaRResult {
	result := models.VaRResult{
		VaR:             "0.00",
		ConfidenceLevel: formatConfidence(confidenceLevel),
		TimeHorizon:     fmt.Sprintf("%d day(s)", timeHorizonDays),
	}

	marketValue := p.TotalMarketValue()
	if marketValue <= 0 || simulations < 1 || timeHorizonDays < 1 {
		return result
	}
	if src == nil {
		src = rand.New(rand.NewSource(rand.Int63()))
	}

	losses := make([]float64, simulations)
	for i := 0; i < simulations; i++ {
		simValue := marketValue
		for d := 0; d < timeHorizonDays; d++ {
			simValue *= 1 + boxMuller(src)*dailyVolatility
		}
		losses[i] = marketValue - simValue
	}
	sort.Float64s(losses)

	idx := int(math.Floor(float64(simulations) * confidenceLevel))
	if idx >= len(losses) {
		idx = len(losses) - 1
	}
	if idx < 0 {
		idx = 0
	}

	if v := losses[idx]; v > 0 {
		result.VaR = models.FormatAmount(v)
	}
	return result
}

// boxMuller draws one standard-normal variate from two uniform(0,1) draws.
func boxMuller(src Uniform) float64 {
	u1 := src.Float64()
	if u1 == 0 {
		u1 = math.SmallestNonzeroFloat64 // ln(0) guard
	}
	u2 := src.Float64()
	return math.Sqrt(-2*math.Log(u1)) * math.Cos(2*math.Pi*u2)
}

// formatConfidence renders a confidence level as a percentage string,
// e.g. 0.95 → "95%", 0.975 → "97.5%".
func formatConfidence(confidence float64) string {
	return strconv.FormatFloat(confidence*100, 'f', -1, 64) + "%"
}
