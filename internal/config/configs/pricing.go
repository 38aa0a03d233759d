package configs

import (
	"github.com/shopspring/decimal"

	"adspend/internal/core/domain"
)

// Pricing holds the defaults written to the global pricing row when the
// store has none yet. An existing row always wins. CostPerImpression is
// per 1000 impressions.
type Pricing struct {
	CostPerClick       decimal.Decimal `env:"COST_PER_CLICK" envDefault:"0.05"`
	CostPerImpression  decimal.Decimal `env:"COST_PER_IMPRESSION" envDefault:"2.00"`
	CostPerView        decimal.Decimal `env:"COST_PER_VIEW" envDefault:"0.10"`
	CostPerAcquisition decimal.Decimal `env:"COST_PER_ACQUISITION" envDefault:"10.00"`
}

// Domain converts the section into domain.Pricing.
func (c Pricing) Domain() domain.Pricing {
	return domain.Pricing{
		CostPerClick:       c.CostPerClick,
		CostPerImpression:  c.CostPerImpression,
		CostPerView:        c.CostPerView,
		CostPerAcquisition: c.CostPerAcquisition,
	}
}
