package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"adspend/internal/core/domain"
	"adspend/internal/core/port"
)

// BudgetEvaluator compares a brand's local-day and local-month spend with
// its budgets. It reads through any SpendReader, so the same code runs on
// the plain store and inside a brand lock.
type BudgetEvaluator struct {
	reader port.SpendReader
}

// NewBudgetEvaluator returns an evaluator reading from r.
func NewBudgetEvaluator(r port.SpendReader) BudgetEvaluator {
	return BudgetEvaluator{reader: r}
}

// Evaluation is a spend snapshot of one brand.
type Evaluation struct {
	DailySpend   decimal.Decimal
	MonthlySpend decimal.Decimal
	OverBudget   bool
}

// DailySpend sums cost entries of the brand's local calendar date of asOf.
func (e BudgetEvaluator) DailySpend(ctx context.Context, b domain.ActiveBrand, asOf time.Time) (decimal.Decimal, error) {
	from, to := b.Calendar().DayWindow(asOf)
	sum, err := e.reader.SumCost(ctx, b.ID(), from, to)
	if err != nil {
		return decimal.Zero, fmt.Errorf("daily spend: %w", err)
	}
	return sum, nil
}

// MonthlySpend sums cost entries of the brand's local calendar month of
// asOf.
func (e BudgetEvaluator) MonthlySpend(ctx context.Context, b domain.ActiveBrand, asOf time.Time) (decimal.Decimal, error) {
	from, to := b.Calendar().MonthWindow(asOf)
	sum, err := e.reader.SumCost(ctx, b.ID(), from, to)
	if err != nil {
		return decimal.Zero, fmt.Errorf("monthly spend: %w", err)
	}
	return sum, nil
}

// IsOverBudget reports whether either budget is reached. Spend equal to a
// budget counts as reached.
func (e BudgetEvaluator) IsOverBudget(ctx context.Context, b domain.ActiveBrand, asOf time.Time) (bool, error) {
	ev, err := e.Evaluate(ctx, b, asOf)
	if err != nil {
		return false, err
	}
	return ev.OverBudget, nil
}

// Evaluate returns both sums and the budget decision.
func (e BudgetEvaluator) Evaluate(ctx context.Context, b domain.ActiveBrand, asOf time.Time) (Evaluation, error) {
	daily, err := e.DailySpend(ctx, b, asOf)
	if err != nil {
		return Evaluation{}, err
	}
	monthly, err := e.MonthlySpend(ctx, b, asOf)
	if err != nil {
		return Evaluation{}, err
	}
	return Evaluation{
		DailySpend:   daily,
		MonthlySpend: monthly,
		OverBudget:   daily.GreaterThanOrEqual(b.DailyBudget()) || monthly.GreaterThanOrEqual(b.MonthlyBudget()),
	}, nil
}
