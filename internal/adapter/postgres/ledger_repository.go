package postgres

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"adspend/internal/core/domain"
)

// SumCost sums cost entries of a brand created in [from, to).
func (s *Store) SumCost(ctx context.Context, brandID uuid.UUID, from, to time.Time) (decimal.Decimal, error) {
	return sumCost(ctx, s.pool, brandID, from, to)
}

// RecordTransaction appends tx outside any brand lock.
func (s *Store) RecordTransaction(ctx context.Context, tx *domain.Transaction) error {
	return insertTransaction(ctx, s.pool, tx)
}

// ListTransactions returns a brand's entries in [from, to), oldest first.
func (s *Store) ListTransactions(ctx context.Context, brandID uuid.UUID, from, to time.Time) ([]domain.Transaction, error) {
	rows, err := s.pool.Query(ctx, selectTransaction+`
WHERE brand_id = $1 AND created_at >= $2 AND created_at < $3
ORDER BY created_at, id`, brandID, from, to)
	if err != nil {
		return nil, wrapErr("list transactions", err)
	}
	txs, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Transaction, error) {
		return scanTransaction(row)
	})
	if err != nil {
		return nil, wrapErr("list transactions", err)
	}
	return txs, nil
}

func sumCost(ctx context.Context, q querier, brandID uuid.UUID, from, to time.Time) (decimal.Decimal, error) {
	var sum decimal.Decimal
	err := q.QueryRow(ctx, `SELECT COALESCE(SUM(amount), 0) FROM transactions
WHERE brand_id = $1 AND transaction_type = 'cost' AND created_at >= $2 AND created_at < $3`,
		brandID, from, to).Scan(&sum)
	if err != nil {
		return decimal.Zero, wrapErr("sum cost", err)
	}
	return sum, nil
}

// insertTransaction writes one ledger entry in a single statement, so an
// entry is either stored whole or not at all.
func insertTransaction(ctx context.Context, q querier, tx *domain.Transaction) error {
	if err := tx.Validate(); err != nil {
		return err
	}
	if tx.ID == uuid.Nil {
		tx.ID = uuid.New()
	}
	if tx.CreatedAt.IsZero() {
		tx.CreatedAt = time.Now().UTC()
	}
	var costType *string
	if tx.CostType != nil {
		s := string(*tx.CostType)
		costType = &s
	}
	_, err := q.Exec(ctx, `INSERT INTO transactions
    (id, brand_id, campaign_id, ad_id, amount, transaction_type, cost_type, created_at)
VALUES ($1,$2,$3,$4,$5,$6,$7,$8)`,
		tx.ID, tx.BrandID, tx.CampaignID, tx.AdID, numeric(tx.Amount), string(tx.Type), costType, tx.CreatedAt)
	return wrapErr("record transaction", err)
}
