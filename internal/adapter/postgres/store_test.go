package postgres

import (
	"context"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"adspend/internal/core/domain"
	"adspend/internal/core/port"
	"adspend/internal/db"
)

// newTestStore connects to PSQL_TEST_ADDRESS, migrates it and returns a
// store. Tests are skipped when the variable is unset.
func newTestStore(t *testing.T, lockTimeout time.Duration) *Store {
	t.Helper()
	addr := os.Getenv("PSQL_TEST_ADDRESS")
	if addr == "" {
		t.Skip("PSQL_TEST_ADDRESS not set")
	}
	require.NoError(t, db.Migrate(addr))
	pool, err := pgxpool.New(context.Background(), addr)
	require.NoError(t, err)
	t.Cleanup(pool.Close)
	return NewStore(pool, lockTimeout)
}

func createChain(t *testing.T, s *Store, daily string) (domain.Brand, domain.Campaign, domain.Ad) {
	t.Helper()
	ctx := context.Background()
	b := domain.Brand{Name: "pg", DailyBudget: decimal.RequireFromString(daily), MonthlyBudget: decimal.NewFromInt(1000), Timezone: "America/Edmonton", Active: true}
	require.NoError(t, s.CreateBrand(ctx, &b))
	dp := &domain.Daypart{Start: domain.MustTimeOfDay(22, 0), End: domain.MustTimeOfDay(2, 30)}
	c := domain.Campaign{BrandID: b.ID, Name: "c", Status: domain.CampaignStatusRunning, Daypart: dp, Active: true}
	require.NoError(t, s.CreateCampaign(ctx, &c))
	as := domain.AdSet{CampaignID: c.ID, Name: "s", Active: true}
	require.NoError(t, s.CreateAdSet(ctx, &as))
	a := domain.Ad{AdSetID: as.ID, Name: "a", Active: true, CostPerClick: decimal.NewNullDecimal(decimal.RequireFromString("0.1234"))}
	require.NoError(t, s.CreateAd(ctx, &a))
	return b, c, a
}

func TestStoreRoundTrip(t *testing.T) {
	s := newTestStore(t, time.Second)
	ctx := context.Background()
	b, c, a := createChain(t, s, "10")

	gotBrand, err := s.GetBrand(ctx, b.ID)
	require.NoError(t, err)
	assert.True(t, b.DailyBudget.Equal(gotBrand.DailyBudget))
	assert.Equal(t, "America/Edmonton", gotBrand.Timezone)

	gotCampaign, err := s.GetCampaign(ctx, c.ID)
	require.NoError(t, err)
	require.NotNil(t, gotCampaign.Daypart)
	assert.Equal(t, domain.MustTimeOfDay(2, 30), gotCampaign.Daypart.End)
	assert.Equal(t, domain.CampaignStatusRunning, gotCampaign.Status)

	gotAd, err := s.GetAd(ctx, a.ID)
	require.NoError(t, err)
	assert.True(t, gotAd.CostPerClick.Valid)
	assert.True(t, decimal.RequireFromString("0.1234").Equal(gotAd.CostPerClick.Decimal))
	assert.False(t, gotAd.CostPerView.Valid)

	_, err = s.GetBrand(ctx, uuid.New())
	assert.ErrorIs(t, err, domain.ErrNotFound)

	err = s.CreateCampaign(ctx, &domain.Campaign{BrandID: uuid.New(), Name: "orphan", Status: domain.CampaignStatusDraft, Active: true})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestStoreLedgerAndLock(t *testing.T) {
	s := newTestStore(t, time.Second)
	ctx := context.Background()
	b, c, _ := createChain(t, s, "10")
	now := time.Now().UTC()
	ct := domain.CostTypeView

	err := s.WithBrandLock(ctx, b.ID, func(ctx context.Context, tx port.BrandTx) error {
		require.NoError(t, tx.RecordTransaction(ctx, &domain.Transaction{
			BrandID: b.ID, CampaignID: &c.ID, Amount: decimal.RequireFromString("2.50"),
			Type: domain.TransactionTypeCost, CostType: &ct, CreatedAt: now,
		}))
		sum, err := tx.SumCost(ctx, b.ID, now.Add(-time.Minute), now.Add(time.Minute))
		require.NoError(t, err)
		assert.True(t, decimal.RequireFromString("2.50").Equal(sum))

		running, err := tx.ListCampaigns(ctx, domain.CampaignStatusRunning)
		require.NoError(t, err)
		require.Len(t, running, 1)

		n, err := tx.TransitionCampaigns(ctx, domain.CampaignStatusRunning, domain.CampaignStatusBudgetReached)
		require.NoError(t, err)
		assert.Equal(t, int64(1), n)
		return nil
	})
	require.NoError(t, err)

	got, err := s.GetCampaign(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.CampaignStatusBudgetReached, got.Status)

	ids, err := s.ListBrandIDsWithCampaignStatus(ctx, []domain.CampaignStatus{domain.CampaignStatusBudgetReached})
	require.NoError(t, err)
	assert.Contains(t, ids, b.ID)

	txs, err := s.ListTransactions(ctx, b.ID, now.Add(-time.Minute), now.Add(time.Minute))
	require.NoError(t, err)
	require.Len(t, txs, 1)
	assert.Equal(t, domain.CostTypeView, *txs[0].CostType)
}

func TestStoreLockTimeout(t *testing.T) {
	s := newTestStore(t, 50*time.Millisecond)
	ctx := context.Background()
	b, _, _ := createChain(t, s, "10")

	held := make(chan struct{})
	release := make(chan struct{})
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		_ = s.WithBrandLock(ctx, b.ID, func(ctx context.Context, tx port.BrandTx) error {
			close(held)
			<-release
			return nil
		})
	}()
	<-held

	err := s.WithBrandLock(ctx, b.ID, func(ctx context.Context, tx port.BrandTx) error { return nil })
	close(release)
	wg.Wait()
	require.Error(t, err)
	assert.True(t, domain.IsPersistence(err), "got %v", err)
}

func TestEnsureDefaultPricing(t *testing.T) {
	s := newTestStore(t, 0)
	ctx := context.Background()

	first, err := s.EnsureDefaultPricing(ctx, domain.DefaultPricing())
	require.NoError(t, err)
	other := domain.DefaultPricing()
	other.CostPerClick = decimal.NewFromInt(7)
	second, err := s.EnsureDefaultPricing(ctx, other)
	require.NoError(t, err)
	assert.True(t, first.CostPerClick.Equal(second.CostPerClick))
}
