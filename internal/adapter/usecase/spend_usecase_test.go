package usecase

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"adspend/internal/adapter/memory"
	"adspend/internal/core/domain"
	"adspend/internal/core/port"
)

var noon = time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC)

func newSpend(store port.Store) *SpendService {
	return NewSpendService(store, domain.DefaultPricing(), WithClock(fixedClock(noon)), WithLogger(discard))
}

// TestAuthorizeSpendPausesOnBudget: a 0.10 click on a 0.05 daily budget is
// charged and pauses the campaign.
func TestAuthorizeSpendPausesOnBudget(t *testing.T) {
	f := newFixture(t)
	b := f.brand("0.05", "100", "UTC")
	c := f.campaign(b.ID, domain.CampaignStatusRunning, nil)
	price := dec("0.10")
	ad := f.ad(c.ID, &price)

	auth, err := newSpend(f.store).AuthorizeSpend(f.ctx, ad.ID, domain.CostTypeClick)
	require.NoError(t, err)
	assert.True(t, auth.Accepted)
	assert.Equal(t, port.MsgChargedAndPaused, auth.Message)
	require.NotNil(t, auth.TransactionID)

	assert.Equal(t, domain.CampaignStatusBudgetReached, f.status(c.ID))
	txs := f.ledger(b.ID)
	require.Len(t, txs, 1)
	assert.True(t, dec("0.10").Equal(txs[0].Amount))
	assert.Equal(t, *auth.TransactionID, txs[0].ID)
	assert.Equal(t, c.ID, *txs[0].CampaignID)
	assert.Equal(t, ad.ID, *txs[0].AdID)
	assert.Equal(t, domain.CostTypeClick, *txs[0].CostType)
}

func TestAuthorizeSpendEqualToBudgetPauses(t *testing.T) {
	f := newFixture(t)
	b := f.brand("1.00", "100", "UTC")
	c := f.campaign(b.ID, domain.CampaignStatusRunning, nil)
	ad := f.ad(c.ID, nil)
	f.cost(b.ID, "0.95", noon.Add(-time.Hour))

	auth, err := newSpend(f.store).AuthorizeSpend(f.ctx, ad.ID, domain.CostTypeClick)
	require.NoError(t, err)
	assert.Equal(t, port.MsgChargedAndPaused, auth.Message)
	assert.Equal(t, domain.CampaignStatusBudgetReached, f.status(c.ID))
}

func TestAuthorizeSpendUnderBudget(t *testing.T) {
	f := newFixture(t)
	b := f.brand("10", "100", "UTC")
	c := f.campaign(b.ID, domain.CampaignStatusRunning, nil)
	ad := f.ad(c.ID, nil)

	auth, err := newSpend(f.store).AuthorizeSpend(f.ctx, ad.ID, domain.CostTypeImpression)
	require.NoError(t, err)
	assert.True(t, auth.Accepted)
	assert.Equal(t, port.MsgCharged, auth.Message)
	assert.True(t, dec("0.002").Equal(auth.Amount))
	assert.Equal(t, domain.CampaignStatusRunning, f.status(c.ID))
}

func TestAuthorizeSpendPausesEveryRunningCampaignOfBrand(t *testing.T) {
	f := newFixture(t)
	b := f.brand("0.05", "100", "UTC")
	charged := f.campaign(b.ID, domain.CampaignStatusRunning, nil)
	sibling := f.campaign(b.ID, domain.CampaignStatusRunning, nil)
	scheduled := f.campaign(b.ID, domain.CampaignStatusScheduled, nil)
	other := f.brand("0.05", "100", "UTC")
	unrelated := f.campaign(other.ID, domain.CampaignStatusRunning, nil)
	ad := f.ad(charged.ID, nil)

	auth, err := newSpend(f.store).AuthorizeSpend(f.ctx, ad.ID, domain.CostTypeClick)
	require.NoError(t, err)
	assert.Equal(t, port.MsgChargedAndPaused, auth.Message)

	assert.Equal(t, domain.CampaignStatusBudgetReached, f.status(charged.ID))
	assert.Equal(t, domain.CampaignStatusBudgetReached, f.status(sibling.ID))
	assert.Equal(t, domain.CampaignStatusScheduled, f.status(scheduled.ID))
	assert.Equal(t, domain.CampaignStatusRunning, f.status(unrelated.ID))
}

// TestAuthorizeSpendSubCentImpression: the charged amount equals the
// stored ledger amount, and an impression too cheap for the ledger scale is
// served free instead of failing the insert.
func TestAuthorizeSpendSubCentImpression(t *testing.T) {
	tests := []struct {
		name    string
		cpm     string
		want    string
		entries int
	}{
		{name: "rounded to ledger scale", cpm: "1.23", want: "0.0012", entries: 1},
		{name: "rounds to zero", cpm: "0.04", want: "0", entries: 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			b := f.brand("10", "100", "UTC")
			c := f.campaign(b.ID, domain.CampaignStatusRunning, nil)
			as := domain.AdSet{CampaignID: c.ID, Name: "set", Active: true}
			require.NoError(t, f.store.CreateAdSet(f.ctx, &as))
			ad := domain.Ad{AdSetID: as.ID, Name: "cheap", Active: true, CostPerImpression: decimal.NewNullDecimal(dec(tt.cpm))}
			require.NoError(t, f.store.CreateAd(f.ctx, &ad))

			auth, err := newSpend(f.store).AuthorizeSpend(f.ctx, ad.ID, domain.CostTypeImpression)
			require.NoError(t, err)
			assert.True(t, auth.Accepted)
			assert.Equal(t, port.MsgCharged, auth.Message)
			assert.True(t, dec(tt.want).Equal(auth.Amount), "got %s", auth.Amount)

			txs := f.ledger(b.ID)
			require.Len(t, txs, tt.entries)
			if tt.entries == 1 {
				assert.True(t, auth.Amount.Equal(txs[0].Amount))
				assert.Equal(t, *auth.TransactionID, txs[0].ID)
			} else {
				assert.Nil(t, auth.TransactionID)
			}
		})
	}
}

func TestAuthorizeSpendRejectsWhenNotRunning(t *testing.T) {
	for _, st := range []domain.CampaignStatus{
		domain.CampaignStatusDraft,
		domain.CampaignStatusScheduled,
		domain.CampaignStatusBudgetReached,
		domain.CampaignStatusPaused,
		domain.CampaignStatusCompleted,
	} {
		t.Run(string(st), func(t *testing.T) {
			f := newFixture(t)
			b := f.brand("10", "100", "UTC")
			c := f.campaign(b.ID, st, nil)
			ad := f.ad(c.ID, nil)

			auth, err := newSpend(f.store).AuthorizeSpend(f.ctx, ad.ID, domain.CostTypeClick)
			require.NoError(t, err)
			assert.False(t, auth.Accepted)
			assert.Equal(t, port.MsgCampaignNotRunning, auth.Message)
			assert.Nil(t, auth.TransactionID)
			assert.Empty(t, f.ledger(b.ID))
			assert.Equal(t, st, f.status(c.ID))
		})
	}
}

func TestAuthorizeSpendInactiveChain(t *testing.T) {
	f := newFixture(t)
	b := f.brand("10", "100", "UTC")
	c := f.campaign(b.ID, domain.CampaignStatusRunning, nil)
	ad := f.ad(c.ID, nil)
	svc := newSpend(f.store)

	_, err := svc.AuthorizeSpend(f.ctx, uuid.New(), domain.CostTypeClick)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = svc.AuthorizeSpend(f.ctx, ad.ID, domain.CostType("hover"))
	assert.True(t, domain.IsValidation(err))

	b.Active = false
	require.NoError(t, f.store.UpdateBrand(f.ctx, &b))
	_, err = svc.AuthorizeSpend(f.ctx, ad.ID, domain.CostTypeClick)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Empty(t, f.ledger(b.ID))
}

func TestAuthorizeSpendLockTimeout(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore(10 * time.Millisecond)
	f := &fixture{t: t, ctx: ctx, store: store}
	b := f.brand("10", "100", "UTC")
	c := f.campaign(b.ID, domain.CampaignStatusRunning, nil)
	ad := f.ad(c.ID, nil)

	held := make(chan struct{})
	release := make(chan struct{})
	go func() {
		_ = store.WithBrandLock(ctx, b.ID, func(ctx context.Context, tx port.BrandTx) error {
			close(held)
			<-release
			return nil
		})
	}()
	<-held
	defer close(release)

	_, err := newSpend(store).AuthorizeSpend(ctx, ad.ID, domain.CostTypeClick)
	require.Error(t, err)
	assert.True(t, domain.IsPersistence(err))
	assert.True(t, errors.Is(err, context.DeadlineExceeded))
	assert.Empty(t, f.ledger(b.ID))
}

// TestAuthorizeSpendConcurrentNeverOverruns fires many clicks at once. The
// brand lock admits exactly enough charges to reach the budget and no more.
func TestAuthorizeSpendConcurrentNeverOverruns(t *testing.T) {
	f := newFixture(t)
	b := f.brand("1.00", "100", "UTC")
	c := f.campaign(b.ID, domain.CampaignStatusRunning, nil)
	price := dec("0.10")
	ad := f.ad(c.ID, &price)
	svc := newSpend(f.store)

	const workers = 40
	var (
		mu       sync.Mutex
		accepted int
		paused   int
		wg       sync.WaitGroup
	)
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			auth, err := svc.AuthorizeSpend(context.Background(), ad.ID, domain.CostTypeClick)
			if err != nil {
				t.Errorf("authorize: %v", err)
				return
			}
			mu.Lock()
			defer mu.Unlock()
			if auth.Accepted {
				accepted++
			}
			if auth.Message == port.MsgChargedAndPaused {
				paused++
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 10, accepted)
	assert.Equal(t, 1, paused)
	assert.Len(t, f.ledger(b.ID), 10)
	daily, err := svc.GetDailySpend(f.ctx, b.ID)
	require.NoError(t, err)
	assert.True(t, dec("1.00").Equal(daily), "daily spend %s", daily)
	assert.Equal(t, domain.CampaignStatusBudgetReached, f.status(c.ID))
}

func TestGetBudgetStatus(t *testing.T) {
	f := newFixture(t)
	b := f.brand("10", "100", "Asia/Tokyo")
	f.cost(b.ID, "4", noon)
	f.cost(b.ID, "6", noon.Add(-72*time.Hour))

	st, err := newSpend(f.store).GetBudgetStatus(f.ctx, b.ID)
	require.NoError(t, err)
	assert.Equal(t, b.ID, st.BrandID)
	assert.True(t, dec("4").Equal(st.DailySpend))
	assert.True(t, dec("10").Equal(st.MonthlySpend))
	assert.True(t, dec("10").Equal(st.DailyBudget))
	assert.False(t, st.OverBudget)
}

func TestListTransactionsUsesBrandMonth(t *testing.T) {
	f := newFixture(t)
	b := f.brand("10", "100", "America/Edmonton")
	monthStart := time.Date(2025, 6, 1, 6, 0, 0, 0, time.UTC) // June 1 00:00 MDT
	f.cost(b.ID, "1.00", monthStart.Add(-time.Second))
	f.cost(b.ID, "2.00", monthStart)
	require.NoError(t, f.store.RecordTransaction(f.ctx, &domain.Transaction{
		BrandID:   b.ID,
		Amount:    dec("50"),
		Type:      domain.TransactionTypePayment,
		CreatedAt: monthStart.Add(48 * time.Hour),
	}))
	svc := newSpend(f.store)

	txs, err := svc.ListTransactions(f.ctx, b.ID, time.Time{}, time.Time{})
	require.NoError(t, err)
	require.Len(t, txs, 2)
	assert.True(t, dec("2.00").Equal(txs[0].Amount))
	assert.Equal(t, domain.TransactionTypePayment, txs[1].Type)

	txs, err = svc.ListTransactions(f.ctx, b.ID, monthStart.Add(-time.Hour), monthStart)
	require.NoError(t, err)
	require.Len(t, txs, 1)
	assert.True(t, dec("1.00").Equal(txs[0].Amount))

	_, err = svc.ListTransactions(f.ctx, b.ID, monthStart, monthStart)
	assert.True(t, domain.IsValidation(err))
	_, err = svc.ListTransactions(f.ctx, b.ID, monthStart, time.Time{})
	assert.True(t, domain.IsValidation(err))
	_, err = svc.ListTransactions(f.ctx, uuid.New(), time.Time{}, time.Time{})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
