// Package models defines data structures for Lever
package models

import "math"

// DefaultSector is the sector label applied to holdings without one.
const DefaultSector = "Uncategorized"

// Holding represents a single margin-account position.
type Holding struct {
	Ticker         string  `json:"ticker,omitempty"`
	MarketValue    float64 `json:"market_value"`
	CostBasis      float64 `json:"cost_basis"`
	AnnualDividend float64 `json:"annual_dividend"`
	Sector         string  `json:"sector,omitempty"`
}

// SectorOrDefault returns the holding's sector, or DefaultSector when unset.
func (h Holding) SectorOrDefault() string {
	if h.Sector == "" {
		return DefaultSector
	}
	return h.Sector
}

// Portfolio is a snapshot of a leveraged brokerage account: available cash,
// margin drawn, and the open positions. Snapshots are immutable per
// calculation call — the analytics never mutate or alias into them.
type Portfolio struct {
	Cash       float64   `json:"cash"`
	MarginUsed float64   `json:"margin_used"`
	Holdings   []Holding `json:"holdings"`
}

// WellFormed reports whether the snapshot can be computed on.
// A nil portfolio, a nil holdings slice (as distinct from an empty one),
// or a non-finite cash/margin figure is malformed; malformed snapshots
// produce sentinel results rather than errors.
func (p *Portfolio) WellFormed() bool {
	if p == nil || p.Holdings == nil {
		return false
	}
	return isFinite(p.Cash) && isFinite(p.MarginUsed)
}

// TotalMarketValue sums the market value of all holdings.
// Non-finite position values are treated as 0.
func (p *Portfolio) TotalMarketValue() float64 {
	if p == nil {
		return 0
	}
	total := 0.0
	for _, h := range p.Holdings {
		if isFinite(h.MarketValue) {
			total += h.MarketValue
		}
	}
	return total
}

// TotalAnnualDividend sums the annual dividend cash amount of all holdings.
func (p *Portfolio) TotalAnnualDividend() float64 {
	if p == nil {
		return 0
	}
	return TotalAnnualDividend(p.Holdings)
}

// TotalAnnualDividend sums the annual dividend across a holdings slice.
func TotalAnnualDividend(holdings []Holding) float64 {
	total := 0.0
	for _, h := range holdings {
		if isFinite(h.AnnualDividend) {
			total += h.AnnualDividend
		}
	}
	return total
}

// TotalCostBasis sums the original cost across a holdings slice.
func TotalCostBasis(holdings []Holding) float64 {
	total := 0.0
	for _, h := range holdings {
		if isFinite(h.CostBasis) {
			total += h.CostBasis
		}
	}
	return total
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
