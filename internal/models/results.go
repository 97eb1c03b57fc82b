package models

// NotApplicable is the sentinel value for results that cannot be computed
// from the given snapshot (e.g. a margin call that no drop can trigger).
const NotApplicable = "N/A"

// MetricsResult carries the derived margin metrics for one snapshot.
// All fields are fixed 2-decimal strings formatted at the interface
// boundary; the zero value marshals to {} so it doubles as the
// absent-input sentinel for stress scenarios.
//
// net_liquidation_value and total_equity are one computed value exposed
// under two keys — they never diverge.
type MetricsResult struct {
	NetLiquidationValue string `json:"net_liquidation_value,omitempty"`
	TotalEquity         string `json:"total_equity,omitempty"`
	MarketValue         string `json:"market_value,omitempty"`
	Leverage            string `json:"leverage,omitempty"`
	MaintenanceMargin   string `json:"maintenance_margin,omitempty"`
	ExcessLiquidity     string `json:"excess_liquidity,omitempty"`
	BuyingPower         string `json:"buying_power,omitempty"`
	MarginHealth        string `json:"margin_health,omitempty"`
}

// ZeroMetricsResult returns the all-"0.00" result used for malformed or
// placeholder snapshots. This is defined behaviour, not an error path.
func ZeroMetricsResult() MetricsResult {
	const zero = "0.00"
	return MetricsResult{
		NetLiquidationValue: zero,
		TotalEquity:         zero,
		MarketValue:         zero,
		Leverage:            zero,
		MaintenanceMargin:   zero,
		ExcessLiquidity:     zero,
		BuyingPower:         zero,
		MarginHealth:        zero,
	}
}

// ScenarioResult pairs a shock scenario with the metrics of the shocked
// snapshot.
type ScenarioResult struct {
	DropPercent float64       `json:"drop_percent"`
	Metrics     MetricsResult `json:"metrics"`
}

// VaRResult carries a Monte-Carlo Value-at-Risk estimate.
type VaRResult struct {
	VaR             string `json:"var"`
	ConfidenceLevel string `json:"confidence_level"`
	TimeHorizon     string `json:"time_horizon"`
}

// MarginCallInfo describes the market-value drop that would bring excess
// liquidity to zero. Both fields are decimal strings, or both are "N/A"
// when no drop can trigger a call.
type MarginCallInfo struct {
	DropPercentage  string `json:"drop_percentage"`
	MarketValueDrop string `json:"market_value_drop"`
}

// Hedge strategy names. Fixed — consumers match on them.
const (
	StrategyLongPut        = "Long Put"
	StrategyBearPutSpread  = "Bear Put Spread"
	StrategyCashSecuredPut = "Cash-Secured Put"
	StrategyCoveredCall    = "Covered Call"
)

// Hedge strategy descriptions. Fixed text per strategy.
const (
	DescriptionLongPut        = "Buy a put option for downside protection below the strike."
	DescriptionBearPutSpread  = "Buy a higher-strike put and sell a lower-strike put for cheaper, range-bound protection."
	DescriptionCashSecuredPut = "Sell a put while holding enough cash to take assignment at the strike."
	DescriptionCoveredCall    = "Sell a call against shares you own to collect premium at the cost of capped upside."
)

// HedgePayoff is the closed-form payoff profile for one options strategy.
// Breakeven may be negative for degenerate inputs — the formulas are not
// bounded by real-world constraints.
type HedgePayoff struct {
	Strategy    string `json:"strategy"`
	MaxLoss     string `json:"max_loss"`
	MaxProfit   string `json:"max_profit"`
	Breakeven   string `json:"breakeven"`
	Description string `json:"description"`
}

// ProjectionPoint is one year of a forward dividend projection.
// Income is rounded to 2 decimal places as a number, not a string.
type ProjectionPoint struct {
	Year   int     `json:"year"`
	Income float64 `json:"income"`
}
