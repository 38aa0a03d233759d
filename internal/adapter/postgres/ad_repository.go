package postgres

import (
	"context"
	"time"

	"github.com/google/uuid"

	"adspend/internal/core/domain"
)

// GetAdSet returns an ad set by id, active or not.
func (s *Store) GetAdSet(ctx context.Context, id uuid.UUID) (*domain.AdSet, error) {
	as, err := scanAdSet(s.pool.QueryRow(ctx, selectAdSet+` WHERE id = $1`, id))
	if err != nil {
		return nil, wrapErr("get ad set", err)
	}
	return &as, nil
}

// CreateAdSet inserts as. A missing campaign yields domain.ErrNotFound.
func (s *Store) CreateAdSet(ctx context.Context, as *domain.AdSet) error {
	if as.ID == uuid.Nil {
		as.ID = uuid.New()
	}
	if as.CreatedAt.IsZero() {
		as.CreatedAt = time.Now().UTC()
		as.UpdatedAt = as.CreatedAt
	}
	_, err := s.pool.Exec(ctx, `INSERT INTO ad_sets (id, campaign_id, name, active, created_at, updated_at)
VALUES ($1,$2,$3,$4,$5,$6)`,
		as.ID, as.CampaignID, as.Name, as.Active, as.CreatedAt, as.UpdatedAt)
	return wrapErr("create ad set", err)
}

func (s *Store) UpdateAdSet(ctx context.Context, as *domain.AdSet) error {
	as.UpdatedAt = time.Now().UTC()
	tag, err := s.pool.Exec(ctx, `UPDATE ad_sets SET name = $2, active = $3, updated_at = $4 WHERE id = $1`,
		as.ID, as.Name, as.Active, as.UpdatedAt)
	if err != nil {
		return wrapErr("update ad set", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// GetAd returns an ad by id, active or not.
func (s *Store) GetAd(ctx context.Context, id uuid.UUID) (*domain.Ad, error) {
	a, err := scanAd(s.pool.QueryRow(ctx, selectAd+` WHERE id = $1`, id))
	if err != nil {
		return nil, wrapErr("get ad", err)
	}
	return &a, nil
}

// CreateAd inserts a. A missing ad set yields domain.ErrNotFound.
func (s *Store) CreateAd(ctx context.Context, a *domain.Ad) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	if a.CreatedAt.IsZero() {
		a.CreatedAt = time.Now().UTC()
		a.UpdatedAt = a.CreatedAt
	}
	_, err := s.pool.Exec(ctx, `INSERT INTO ads
    (id, ad_set_id, name, active, content, cost_per_click, cost_per_impression, cost_per_view, cost_per_acquisition, created_at, updated_at)
VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11)`,
		a.ID, a.AdSetID, a.Name, a.Active, a.Content,
		nullNumeric(a.CostPerClick), nullNumeric(a.CostPerImpression), nullNumeric(a.CostPerView), nullNumeric(a.CostPerAcquisition),
		a.CreatedAt, a.UpdatedAt)
	return wrapErr("create ad", err)
}

func (s *Store) UpdateAd(ctx context.Context, a *domain.Ad) error {
	a.UpdatedAt = time.Now().UTC()
	tag, err := s.pool.Exec(ctx, `UPDATE ads
SET name = $2, active = $3, content = $4, cost_per_click = $5, cost_per_impression = $6,
    cost_per_view = $7, cost_per_acquisition = $8, updated_at = $9
WHERE id = $1`,
		a.ID, a.Name, a.Active, a.Content,
		nullNumeric(a.CostPerClick), nullNumeric(a.CostPerImpression), nullNumeric(a.CostPerView), nullNumeric(a.CostPerAcquisition),
		a.UpdatedAt)
	if err != nil {
		return wrapErr("update ad", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
