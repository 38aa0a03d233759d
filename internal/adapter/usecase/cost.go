package usecase

import (
	"fmt"

	"github.com/shopspring/decimal"

	"adspend/internal/core/domain"
)

var impressionsPerUnit = decimal.NewFromInt(1000)

// CostResolver prices ad events. Ad overrides win field by field; unset
// fields fall back to the global pricing loaded at bootstrap.
type CostResolver struct {
	pricing domain.Pricing
}

// NewCostResolver returns a resolver with the given fallback pricing.
func NewCostResolver(p domain.Pricing) CostResolver {
	return CostResolver{pricing: p}
}

// Resolve returns the charge for one event of kind on ad. Impressions are
// priced per 1000 and charged one at a time. The charge is rounded to the
// ledger scale, so what the caller is told always equals what is stored;
// an impression priced below half a unit of that scale comes out as zero.
func (r CostResolver) Resolve(ad domain.Ad, kind domain.CostType) (decimal.Decimal, error) {
	var amount decimal.Decimal
	switch kind {
	case domain.CostTypeClick:
		amount = pick(ad.CostPerClick, r.pricing.CostPerClick)
	case domain.CostTypeImpression:
		amount = pick(ad.CostPerImpression, r.pricing.CostPerImpression).Div(impressionsPerUnit)
	case domain.CostTypeView:
		amount = pick(ad.CostPerView, r.pricing.CostPerView)
	case domain.CostTypeAcquisition:
		amount = pick(ad.CostPerAcquisition, r.pricing.CostPerAcquisition)
	default:
		return decimal.Zero, domain.NewValidationError("cost_type", fmt.Sprintf("unknown cost type %q", kind))
	}
	return amount.Round(domain.AmountScale), nil
}

func pick(override decimal.NullDecimal, fallback decimal.Decimal) decimal.Decimal {
	if override.Valid {
		return override.Decimal
	}
	return fallback
}
