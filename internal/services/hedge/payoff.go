// Package hedge computes closed-form payoff profiles for four standard
// options hedging/income strategies. The functions are pure numeric
// transforms: no input validation, any numeric input yields a
// formula-consistent result, including degenerate strikes or negative
// premiums.
package hedge

import "github.com/bobmcallan/lever/internal/models"

// ContractMultiplier is the standard option contract size.
const ContractMultiplier = 100

// LongPut profiles buying a put: loss capped at the premium paid, profit
// bounded only by the underlying falling to zero.
func LongPut(strike, premium float64, contracts int) models.HedgePayoff {
	n := float64(contracts)
	maxLoss := premium * ContractMultiplier * n
	maxProfit := (strike*ContractMultiplier - premium*ContractMultiplier) * n
	return models.HedgePayoff{
		Strategy:    models.StrategyLongPut,
		MaxLoss:     models.FormatAmount(maxLoss),
		MaxProfit:   models.FormatAmount(maxProfit),
		Breakeven:   models.FormatAmount(strike - premium),
		Description: models.DescriptionLongPut,
	}
}

// BearPutSpread profiles buying a put at longStrike and selling one at
// shortStrike for a net premium paid.
func BearPutSpread(longStrike, shortStrike, netPremium float64, contracts int) models.HedgePayoff {
	n := float64(contracts)
	maxLoss := netPremium * ContractMultiplier * n
	maxProfit := (longStrike - shortStrike - netPremium) * ContractMultiplier * n
	return models.HedgePayoff{
		Strategy:    models.StrategyBearPutSpread,
		MaxLoss:     models.FormatAmount(maxLoss),
		MaxProfit:   models.FormatAmount(maxProfit),
		Breakeven:   models.FormatAmount(longStrike - netPremium),
		Description: models.DescriptionBearPutSpread,
	}
}

// CashSecuredPut profiles selling a put backed by cash: profit capped at
// the premium received, loss bounded by assignment at the strike with the
// underlying at zero.
func CashSecuredPut(strike, premium float64, contracts int) models.HedgePayoff {
	n := float64(contracts)
	maxProfit := premium * ContractMultiplier * n
	maxLoss := strike*ContractMultiplier*n - maxProfit
	return models.HedgePayoff{
		Strategy:    models.StrategyCashSecuredPut,
		MaxLoss:     models.FormatAmount(maxLoss),
		MaxProfit:   models.FormatAmount(maxProfit),
		Breakeven:   models.FormatAmount(strike - premium),
		Description: models.DescriptionCashSecuredPut,
	}
}

// CoveredCall profiles selling a call against shares held at costBasis.
func CoveredCall(strike, premium, costBasis float64, contracts int) models.HedgePayoff {
	n := float64(contracts)
	premiumReceived := premium * ContractMultiplier * n
	sharesCost := costBasis * ContractMultiplier * n
	maxProfit := (strike*ContractMultiplier*n - sharesCost) + premiumReceived
	maxLoss := sharesCost - premiumReceived
	return models.HedgePayoff{
		Strategy:    models.StrategyCoveredCall,
		MaxLoss:     models.FormatAmount(maxLoss),
		MaxProfit:   models.FormatAmount(maxProfit),
		Breakeven:   models.FormatAmount(costBasis - premium),
		Description: models.DescriptionCoveredCall,
	}
}
