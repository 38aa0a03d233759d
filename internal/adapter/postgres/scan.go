package postgres

import (
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"

	"adspend/internal/core/domain"
)

const selectBrand = `SELECT id, name, daily_budget, monthly_budget, timezone, owner_id, active, created_at, updated_at FROM brands`

var campaignColumns = []string{"id", "brand_id", "name", "status", "allowed_start", "allowed_end", "active", "created_at", "updated_at"}

const selectCampaign = `SELECT id, brand_id, name, status, allowed_start, allowed_end, active, created_at, updated_at FROM campaigns`

const selectAdSet = `SELECT id, campaign_id, name, active, created_at, updated_at FROM ad_sets`

const selectAd = `SELECT id, ad_set_id, name, active, content, cost_per_click, cost_per_impression, cost_per_view, cost_per_acquisition, created_at, updated_at FROM ads`

const selectTransaction = `SELECT id, brand_id, campaign_id, ad_id, amount, transaction_type, cost_type, created_at FROM transactions`

func scanBrand(row pgx.Row) (domain.Brand, error) {
	var (
		b     domain.Brand
		owner pgtype.UUID
	)
	err := row.Scan(&b.ID, &b.Name, &b.DailyBudget, &b.MonthlyBudget, &b.Timezone, &owner, &b.Active, &b.CreatedAt, &b.UpdatedAt)
	if err != nil {
		return domain.Brand{}, err
	}
	if owner.Valid {
		b.OwnerID = owner.Bytes
	}
	b.CreatedAt, b.UpdatedAt = b.CreatedAt.UTC(), b.UpdatedAt.UTC()
	return b, nil
}

func scanCampaign(row pgx.Row) (domain.Campaign, error) {
	var (
		c          domain.Campaign
		status     string
		start, end pgtype.Time
	)
	err := row.Scan(&c.ID, &c.BrandID, &c.Name, &status, &start, &end, &c.Active, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return domain.Campaign{}, err
	}
	c.Status = domain.CampaignStatus(status)
	if start.Valid && end.Valid {
		c.Daypart = &domain.Daypart{Start: fromPgTime(start), End: fromPgTime(end)}
	}
	c.CreatedAt, c.UpdatedAt = c.CreatedAt.UTC(), c.UpdatedAt.UTC()
	return c, nil
}

func scanAdSet(row pgx.Row) (domain.AdSet, error) {
	var s domain.AdSet
	err := row.Scan(&s.ID, &s.CampaignID, &s.Name, &s.Active, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		return domain.AdSet{}, err
	}
	s.CreatedAt, s.UpdatedAt = s.CreatedAt.UTC(), s.UpdatedAt.UTC()
	return s, nil
}

func scanAd(row pgx.Row) (domain.Ad, error) {
	var a domain.Ad
	err := row.Scan(&a.ID, &a.AdSetID, &a.Name, &a.Active, &a.Content,
		&a.CostPerClick, &a.CostPerImpression, &a.CostPerView, &a.CostPerAcquisition,
		&a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		return domain.Ad{}, err
	}
	a.CreatedAt, a.UpdatedAt = a.CreatedAt.UTC(), a.UpdatedAt.UTC()
	return a, nil
}

func scanTransaction(row pgx.Row) (domain.Transaction, error) {
	var (
		t        domain.Transaction
		txType   string
		costType *string
	)
	err := row.Scan(&t.ID, &t.BrandID, &t.CampaignID, &t.AdID, &t.Amount, &txType, &costType, &t.CreatedAt)
	if err != nil {
		return domain.Transaction{}, err
	}
	t.Type = domain.TransactionType(txType)
	if costType != nil {
		ct := domain.CostType(*costType)
		t.CostType = &ct
	}
	t.CreatedAt = t.CreatedAt.UTC()
	return t, nil
}

func toPgTime(t domain.TimeOfDay) pgtype.Time {
	return pgtype.Time{Microseconds: time.Duration(t).Microseconds(), Valid: true}
}

func fromPgTime(t pgtype.Time) domain.TimeOfDay {
	return domain.TimeOfDay(time.Duration(t.Microseconds) * time.Microsecond)
}

// daypartArgs returns the allowed_start and allowed_end parameters.
func daypartArgs(d *domain.Daypart) (pgtype.Time, pgtype.Time) {
	if d == nil {
		return pgtype.Time{}, pgtype.Time{}
	}
	return toPgTime(d.Start), toPgTime(d.End)
}

// numeric renders a decimal as a text parameter. pgx sends string
// arguments in text format, which numeric columns parse losslessly.
func numeric(d decimal.Decimal) string {
	return d.String()
}

func nullNumeric(d decimal.NullDecimal) *string {
	if !d.Valid {
		return nil
	}
	s := d.Decimal.String()
	return &s
}

func nullUUID(id [16]byte) pgtype.UUID {
	var zero [16]byte
	return pgtype.UUID{Bytes: id, Valid: id != zero}
}
