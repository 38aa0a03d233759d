package postgres

import (
	"context"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"adspend/internal/core/domain"
)

// brandTx runs queries on the transaction holding the brand row lock.
type brandTx struct {
	q     querier
	sb    sq.StatementBuilderType
	brand domain.ActiveBrand
}

func (t *brandTx) Brand() domain.ActiveBrand {
	return t.brand
}

func (t *brandTx) SumCost(ctx context.Context, brandID uuid.UUID, from, to time.Time) (decimal.Decimal, error) {
	return sumCost(ctx, t.q, brandID, from, to)
}

func (t *brandTx) RecordTransaction(ctx context.Context, tx *domain.Transaction) error {
	if tx.BrandID != t.brand.ID() {
		return domain.NewValidationError("brand_id", "does not match the locked brand")
	}
	return insertTransaction(ctx, t.q, tx)
}

func (t *brandTx) GetCampaign(ctx context.Context, id uuid.UUID) (*domain.Campaign, error) {
	c, err := scanCampaign(t.q.QueryRow(ctx, selectCampaign+` WHERE id = $1 AND brand_id = $2 AND active`, id, t.brand.ID()))
	if err != nil {
		return nil, wrapErr("get campaign", err)
	}
	return &c, nil
}

func (t *brandTx) ListCampaigns(ctx context.Context, statuses ...domain.CampaignStatus) ([]domain.Campaign, error) {
	// squirrel expands arrays into IN lists, so the uuid goes in as text
	qb := t.sb.
		Select(campaignColumns...).
		From("campaigns").
		Where(sq.Eq{"brand_id": t.brand.ID().String(), "active": true}).
		OrderBy("created_at", "id")
	if len(statuses) > 0 {
		qb = qb.Where(sq.Eq{"status": statusStrings(statuses)})
	}
	query, args, err := qb.ToSql()
	if err != nil {
		return nil, domain.NewPersistenceError("build campaign query", err)
	}
	rows, err := t.q.Query(ctx, query, args...)
	if err != nil {
		return nil, wrapErr("list campaigns", err)
	}
	cs, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Campaign, error) {
		return scanCampaign(row)
	})
	if err != nil {
		return nil, wrapErr("list campaigns", err)
	}
	return cs, nil
}

func (t *brandTx) TransitionCampaigns(ctx context.Context, from, to domain.CampaignStatus) (int64, error) {
	tag, err := t.q.Exec(ctx, `UPDATE campaigns SET status = $1, updated_at = now()
WHERE brand_id = $2 AND status = $3 AND active`, string(to), t.brand.ID(), string(from))
	if err != nil {
		return 0, wrapErr("transition campaigns", err)
	}
	return tag.RowsAffected(), nil
}

func (t *brandTx) TransitionCampaign(ctx context.Context, id uuid.UUID, from, to domain.CampaignStatus) (bool, error) {
	tag, err := t.q.Exec(ctx, `UPDATE campaigns SET status = $1, updated_at = now()
WHERE id = $2 AND brand_id = $3 AND status = $4 AND active`, string(to), id, t.brand.ID(), string(from))
	if err != nil {
		return false, wrapErr("transition campaign", err)
	}
	return tag.RowsAffected() == 1, nil
}
