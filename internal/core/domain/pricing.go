package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Pricing is the system-wide fallback price list. CostPerImpression is
// per 1000 impressions.
type Pricing struct {
	CostPerClick       decimal.Decimal
	CostPerImpression  decimal.Decimal
	CostPerView        decimal.Decimal
	CostPerAcquisition decimal.Decimal
}

// DefaultPricing returns the prices used when no pricing row exists yet.
func DefaultPricing() Pricing {
	return Pricing{
		CostPerClick:       decimal.RequireFromString("0.05"),
		CostPerImpression:  decimal.RequireFromString("2.00"),
		CostPerView:        decimal.RequireFromString("0.10"),
		CostPerAcquisition: decimal.RequireFromString("10.00"),
	}
}

// Validate rejects negative prices and prices finer than AmountScale.
func (p Pricing) Validate() error {
	for field, v := range map[string]decimal.Decimal{
		"cost_per_click":       p.CostPerClick,
		"cost_per_impression":  p.CostPerImpression,
		"cost_per_view":        p.CostPerView,
		"cost_per_acquisition": p.CostPerAcquisition,
	} {
		if v.IsNegative() {
			return NewValidationError(field, "must not be negative")
		}
		if !fitsScale(v, AmountScale) {
			return NewValidationError(field, fmt.Sprintf("at most %d decimal places", AmountScale))
		}
	}
	return nil
}
