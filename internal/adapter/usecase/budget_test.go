package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"adspend/internal/core/domain"
	"adspend/internal/core/port/mocks"
)

func activeBrand(t *testing.T, daily, monthly, tz string) domain.ActiveBrand {
	t.Helper()
	b, err := domain.NewActiveBrand(domain.Brand{
		Name:          "b",
		DailyBudget:   dec(daily),
		MonthlyBudget: dec(monthly),
		Timezone:      tz,
		Active:        true,
	})
	require.NoError(t, err)
	return b
}

// TestDailySpendUsesBrandLocalDay checks that the window handed to the
// ledger is the local Edmonton day, not the UTC day.
func TestDailySpendUsesBrandLocalDay(t *testing.T) {
	reader := mocks.NewMockSpendReader(t)
	b := activeBrand(t, "10", "100", "America/Edmonton")
	edmonton := mustLoad(t, "America/Edmonton")

	// 03:00 UTC on June 11 is still June 10 in Edmonton.
	asOf := time.Date(2025, 6, 11, 3, 0, 0, 0, time.UTC)
	wantFrom := time.Date(2025, 6, 10, 0, 0, 0, 0, edmonton)
	wantTo := time.Date(2025, 6, 11, 0, 0, 0, 0, edmonton)

	reader.EXPECT().
		SumCost(mock.Anything, b.ID(), mock.MatchedBy(wantFrom.Equal), mock.MatchedBy(wantTo.Equal)).
		Return(dec("4.20"), nil).
		Once()

	got, err := NewBudgetEvaluator(reader).DailySpend(context.Background(), b, asOf)
	require.NoError(t, err)
	assert.True(t, dec("4.20").Equal(got))
}

func TestIsOverBudgetThreshold(t *testing.T) {
	tests := []struct {
		name    string
		daily   string
		monthly string
		want    bool
	}{
		{name: "below both", daily: "9.99", monthly: "50", want: false},
		{name: "daily equal is reached", daily: "10", monthly: "50", want: true},
		{name: "monthly equal is reached", daily: "1", monthly: "100", want: true},
		{name: "daily above", daily: "10.01", monthly: "50", want: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reader := mocks.NewMockSpendReader(t)
			b := activeBrand(t, "10", "100", "UTC")
			asOf := time.Date(2025, 6, 11, 12, 0, 0, 0, time.UTC)
			dayFrom, _ := b.Calendar().DayWindow(asOf)
			monthFrom, _ := b.Calendar().MonthWindow(asOf)

			reader.EXPECT().
				SumCost(mock.Anything, b.ID(), mock.MatchedBy(dayFrom.Equal), mock.Anything).
				Return(dec(tt.daily), nil).
				Once()
			reader.EXPECT().
				SumCost(mock.Anything, b.ID(), mock.MatchedBy(monthFrom.Equal), mock.Anything).
				Return(dec(tt.monthly), nil).
				Once()

			over, err := NewBudgetEvaluator(reader).IsOverBudget(context.Background(), b, asOf)
			require.NoError(t, err)
			assert.Equal(t, tt.want, over)
		})
	}
}

func TestIsOverBudgetPropagatesReaderErrors(t *testing.T) {
	reader := mocks.NewMockSpendReader(t)
	b := activeBrand(t, "10", "100", "UTC")
	down := domain.NewPersistenceError("sum cost", errors.New("connection refused"))

	reader.EXPECT().
		SumCost(mock.Anything, b.ID(), mock.Anything, mock.Anything).
		Return(decimal.Zero, down).
		Once()

	_, err := NewBudgetEvaluator(reader).IsOverBudget(context.Background(), b, time.Now())
	require.Error(t, err)
	assert.True(t, domain.IsPersistence(err))
}

// TestDailySpendSumsToday covers two charges on the same local day plus
// entries on neighbouring days and payments that must not count.
func TestDailySpendSumsToday(t *testing.T) {
	f := newFixture(t)
	b := f.brand("100", "1000", "America/Edmonton")
	edmonton := mustLoad(t, "America/Edmonton")
	now := time.Date(2025, 6, 10, 15, 0, 0, 0, edmonton)

	f.cost(b.ID, "5.00", time.Date(2025, 6, 10, 0, 0, 0, 0, edmonton))
	f.cost(b.ID, "7.00", time.Date(2025, 6, 10, 23, 59, 0, 0, edmonton))
	f.cost(b.ID, "3.00", time.Date(2025, 6, 9, 23, 59, 0, 0, edmonton))
	f.cost(b.ID, "2.00", time.Date(2025, 6, 11, 0, 0, 0, 0, edmonton))
	_, err := NewCatalogService(f.store, WithLogger(discard)).RecordPayment(f.ctx, b.ID, dec("40"))
	require.NoError(t, err)

	svc := NewSpendService(f.store, domain.DefaultPricing(), WithClock(fixedClock(now)), WithLogger(discard))
	daily, err := svc.GetDailySpend(f.ctx, b.ID)
	require.NoError(t, err)
	assert.True(t, dec("12.00").Equal(daily), "daily spend %s", daily)

	monthly, err := svc.GetMonthlySpend(f.ctx, b.ID)
	require.NoError(t, err)
	assert.True(t, dec("17.00").Equal(monthly), "monthly spend %s", monthly)
}
