package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Brand owns campaigns and carries the spend budgets. Budgets are in
// currency units. Brands are never hard-deleted; deactivation keeps the
// ledger intact.
type Brand struct {
	ID            uuid.UUID
	Name          string
	DailyBudget   decimal.Decimal
	MonthlyBudget decimal.Decimal
	Timezone      string
	OwnerID       uuid.UUID
	Active        bool
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// Validate checks the brand invariants.
func (b Brand) Validate() error {
	if strings.TrimSpace(b.Name) == "" {
		return NewValidationError("name", "must not be empty")
	}
	if b.DailyBudget.IsNegative() {
		return NewValidationError("daily_budget", "must not be negative")
	}
	if b.MonthlyBudget.IsNegative() {
		return NewValidationError("monthly_budget", "must not be negative")
	}
	if !fitsScale(b.DailyBudget, BudgetScale) {
		return NewValidationError("daily_budget", fmt.Sprintf("at most %d decimal places", BudgetScale))
	}
	if !fitsScale(b.MonthlyBudget, BudgetScale) {
		return NewValidationError("monthly_budget", fmt.Sprintf("at most %d decimal places", BudgetScale))
	}
	if _, err := NewCalendar(b.Timezone); err != nil {
		return err
	}
	return nil
}

// ActiveBrand is a brand known to be active with a loadable time zone. It
// is the only brand type accepted by budget evaluation.
type ActiveBrand struct {
	brand    Brand
	calendar Calendar
}

// NewActiveBrand returns ErrNotFound for an inactive brand and a
// validation error for a brand whose time zone cannot be loaded.
func NewActiveBrand(b Brand) (ActiveBrand, error) {
	if !b.Active {
		return ActiveBrand{}, ErrNotFound
	}
	cal, err := NewCalendar(b.Timezone)
	if err != nil {
		return ActiveBrand{}, err
	}
	return ActiveBrand{brand: b, calendar: cal}, nil
}

func (a ActiveBrand) ID() uuid.UUID                  { return a.brand.ID }
func (a ActiveBrand) Brand() Brand                   { return a.brand }
func (a ActiveBrand) Calendar() Calendar             { return a.calendar }
func (a ActiveBrand) DailyBudget() decimal.Decimal   { return a.brand.DailyBudget }
func (a ActiveBrand) MonthlyBudget() decimal.Decimal { return a.brand.MonthlyBudget }
