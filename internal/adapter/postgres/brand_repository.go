package postgres

import (
	"context"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"adspend/internal/core/domain"
)

// GetBrand returns a brand by id, active or not.
func (s *Store) GetBrand(ctx context.Context, id uuid.UUID) (*domain.Brand, error) {
	b, err := scanBrand(s.pool.QueryRow(ctx, selectBrand+` WHERE id = $1`, id))
	if err != nil {
		return nil, wrapErr("get brand", err)
	}
	return &b, nil
}

// CreateBrand inserts b, assigning an id and timestamps when unset.
func (s *Store) CreateBrand(ctx context.Context, b *domain.Brand) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	if b.CreatedAt.IsZero() {
		b.CreatedAt = time.Now().UTC()
		b.UpdatedAt = b.CreatedAt
	}
	_, err := s.pool.Exec(ctx, `INSERT INTO brands
    (id, name, daily_budget, monthly_budget, timezone, owner_id, active, created_at, updated_at)
VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)`,
		b.ID, b.Name, numeric(b.DailyBudget), numeric(b.MonthlyBudget), b.Timezone, nullUUID(b.OwnerID), b.Active, b.CreatedAt, b.UpdatedAt)
	return wrapErr("create brand", err)
}

// UpdateBrand writes every mutable brand field.
func (s *Store) UpdateBrand(ctx context.Context, b *domain.Brand) error {
	b.UpdatedAt = time.Now().UTC()
	tag, err := s.pool.Exec(ctx, `UPDATE brands
SET name = $2, daily_budget = $3, monthly_budget = $4, timezone = $5, owner_id = $6, active = $7, updated_at = $8
WHERE id = $1`,
		b.ID, b.Name, numeric(b.DailyBudget), numeric(b.MonthlyBudget), b.Timezone, nullUUID(b.OwnerID), b.Active, b.UpdatedAt)
	if err != nil {
		return wrapErr("update brand", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// ListBrandIDsWithCampaignStatus returns active brands owning an active
// campaign in one of statuses.
func (s *Store) ListBrandIDsWithCampaignStatus(ctx context.Context, statuses []domain.CampaignStatus) ([]uuid.UUID, error) {
	query, args, err := s.sb.
		Select("DISTINCT b.id").
		From("brands b").
		Join("campaigns c ON c.brand_id = b.id").
		Where(sq.Eq{"b.active": true, "c.active": true, "c.status": statusStrings(statuses)}).
		OrderBy("b.id").
		ToSql()
	if err != nil {
		return nil, domain.NewPersistenceError("build brand query", err)
	}
	rows, err := s.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, wrapErr("list brands", err)
	}
	ids, err := pgx.CollectRows(rows, pgx.RowTo[uuid.UUID])
	if err != nil {
		return nil, wrapErr("list brands", err)
	}
	return ids, nil
}

func statusStrings(statuses []domain.CampaignStatus) []string {
	out := make([]string, len(statuses))
	for i, st := range statuses {
		out[i] = string(st)
	}
	return out
}
