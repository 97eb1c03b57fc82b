package models

import (
	"math"

	"github.com/shopspring/decimal"
)

// FormatAmount renders a monetary or ratio value as a fixed 2-decimal
// string, rounding half away from zero. All engine math stays float64
// internally; this is the single formatting boundary for results.
// Non-finite values collapse to "0.00" — the engine never emits NaN/Inf.
func FormatAmount(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return "0.00"
	}
	return decimal.NewFromFloat(v).StringFixed(2)
}

// Round2 rounds a value to 2 decimal places, half away from zero,
// returning a number for results that stay numeric (dividend projections).
func Round2(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return decimal.NewFromFloat(v).Round(2).InexactFloat64()
}
