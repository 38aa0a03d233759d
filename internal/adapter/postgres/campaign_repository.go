package postgres

import (
	"context"
	"time"

	"github.com/google/uuid"

	"adspend/internal/core/domain"
)

// GetCampaign returns a campaign by id, active or not.
func (s *Store) GetCampaign(ctx context.Context, id uuid.UUID) (*domain.Campaign, error) {
	c, err := scanCampaign(s.pool.QueryRow(ctx, selectCampaign+` WHERE id = $1`, id))
	if err != nil {
		return nil, wrapErr("get campaign", err)
	}
	return &c, nil
}

// CreateCampaign inserts c. A missing brand yields domain.ErrNotFound.
func (s *Store) CreateCampaign(ctx context.Context, c *domain.Campaign) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	if c.CreatedAt.IsZero() {
		c.CreatedAt = time.Now().UTC()
		c.UpdatedAt = c.CreatedAt
	}
	start, end := daypartArgs(c.Daypart)
	_, err := s.pool.Exec(ctx, `INSERT INTO campaigns
    (id, brand_id, name, status, allowed_start, allowed_end, active, created_at, updated_at)
VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)`,
		c.ID, c.BrandID, c.Name, string(c.Status), start, end, c.Active, c.CreatedAt, c.UpdatedAt)
	return wrapErr("create campaign", err)
}

// UpdateCampaign writes name, daypart and active flag. Status is left to
// the brand-locked transitions.
func (s *Store) UpdateCampaign(ctx context.Context, c *domain.Campaign) error {
	c.UpdatedAt = time.Now().UTC()
	start, end := daypartArgs(c.Daypart)
	var status string
	err := s.pool.QueryRow(ctx, `UPDATE campaigns
SET name = $2, allowed_start = $3, allowed_end = $4, active = $5, updated_at = $6
WHERE id = $1
RETURNING status`,
		c.ID, c.Name, start, end, c.Active, c.UpdatedAt).Scan(&status)
	if err != nil {
		return wrapErr("update campaign", err)
	}
	c.Status = domain.CampaignStatus(status)
	return nil
}
