package postgres

import (
	"context"

	"adspend/internal/core/domain"
)

// EnsureDefaultPricing inserts defaults into the single pricing row if it
// is missing and returns whatever row is stored.
func (s *Store) EnsureDefaultPricing(ctx context.Context, defaults domain.Pricing) (domain.Pricing, error) {
	_, err := s.pool.Exec(ctx, `INSERT INTO global_ad_pricing
    (id, cost_per_click, cost_per_impression, cost_per_view, cost_per_acquisition)
VALUES (1, $1, $2, $3, $4)
ON CONFLICT (id) DO NOTHING`,
		numeric(defaults.CostPerClick), numeric(defaults.CostPerImpression),
		numeric(defaults.CostPerView), numeric(defaults.CostPerAcquisition))
	if err != nil {
		return domain.Pricing{}, wrapErr("ensure pricing", err)
	}
	var p domain.Pricing
	err = s.pool.QueryRow(ctx, `SELECT cost_per_click, cost_per_impression, cost_per_view, cost_per_acquisition
FROM global_ad_pricing WHERE id = 1`).
		Scan(&p.CostPerClick, &p.CostPerImpression, &p.CostPerView, &p.CostPerAcquisition)
	if err != nil {
		return domain.Pricing{}, wrapErr("load pricing", err)
	}
	return p, nil
}
