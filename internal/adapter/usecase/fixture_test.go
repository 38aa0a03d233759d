package usecase

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"adspend/internal/adapter/memory"
	"adspend/internal/core/domain"
)

var discard = slog.New(slog.NewTextHandler(io.Discard, nil))

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

// fixture is a memory store with helpers that bypass the catalog so tests
// can place campaigns directly in any status.
type fixture struct {
	t     *testing.T
	ctx   context.Context
	store *memory.Store
}

func newFixture(t *testing.T) *fixture {
	return &fixture{t: t, ctx: context.Background(), store: memory.NewStore(0)}
}

func (f *fixture) brand(daily, monthly, tz string) domain.Brand {
	f.t.Helper()
	b := domain.Brand{
		Name:          "brand",
		DailyBudget:   dec(daily),
		MonthlyBudget: dec(monthly),
		Timezone:      tz,
		Active:        true,
	}
	require.NoError(f.t, f.store.CreateBrand(f.ctx, &b))
	return b
}

func (f *fixture) campaign(brandID uuid.UUID, status domain.CampaignStatus, daypart *domain.Daypart) domain.Campaign {
	f.t.Helper()
	c := domain.Campaign{BrandID: brandID, Name: "campaign", Status: status, Daypart: daypart, Active: true}
	require.NoError(f.t, f.store.CreateCampaign(f.ctx, &c))
	return c
}

func (f *fixture) ad(campaignID uuid.UUID, costPerClick *decimal.Decimal) domain.Ad {
	f.t.Helper()
	as := domain.AdSet{CampaignID: campaignID, Name: "set", Active: true}
	require.NoError(f.t, f.store.CreateAdSet(f.ctx, &as))
	a := domain.Ad{AdSetID: as.ID, Name: "ad", Active: true}
	if costPerClick != nil {
		a.CostPerClick = decimal.NewNullDecimal(*costPerClick)
	}
	require.NoError(f.t, f.store.CreateAd(f.ctx, &a))
	return a
}

func (f *fixture) status(campaignID uuid.UUID) domain.CampaignStatus {
	f.t.Helper()
	c, err := f.store.GetCampaign(f.ctx, campaignID)
	require.NoError(f.t, err)
	return c.Status
}

func (f *fixture) ledger(brandID uuid.UUID) []domain.Transaction {
	f.t.Helper()
	txs, err := f.store.ListTransactions(f.ctx, brandID, time.Time{}, time.Date(3000, 1, 1, 0, 0, 0, 0, time.UTC))
	require.NoError(f.t, err)
	return txs
}

func (f *fixture) cost(brandID uuid.UUID, amount string, at time.Time) {
	f.t.Helper()
	ct := domain.CostTypeClick
	require.NoError(f.t, f.store.RecordTransaction(f.ctx, &domain.Transaction{
		BrandID:   brandID,
		Amount:    dec(amount),
		Type:      domain.TransactionTypeCost,
		CostType:  &ct,
		CreatedAt: at,
	}))
}

func daypart(startH, startM, endH, endM int) *domain.Daypart {
	return &domain.Daypart{Start: domain.MustTimeOfDay(startH, startM), End: domain.MustTimeOfDay(endH, endM)}
}

func mustLoad(t *testing.T, name string) *time.Location {
	t.Helper()
	loc, err := time.LoadLocation(name)
	require.NoError(t, err)
	return loc
}
