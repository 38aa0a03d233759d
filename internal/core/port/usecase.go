package port

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"adspend/internal/core/domain"
)

// Messages returned with an Authorization.
const (
	MsgCampaignNotRunning = "campaign not running"
	MsgCharged            = "charged"
	MsgChargedAndPaused   = "charged; brand paused on budget"
)

// Authorization is the outcome of a spend request. A rejected request is
// a normal result, not an error, and leaves the ledger untouched.
type Authorization struct {
	Accepted      bool
	Message       string
	Amount        decimal.Decimal
	TransactionID *uuid.UUID
}

// BudgetStatus is a snapshot of a brand's spend against its budgets.
type BudgetStatus struct {
	BrandID       uuid.UUID
	AsOf          time.Time
	DailySpend    decimal.Decimal
	MonthlySpend  decimal.Decimal
	DailyBudget   decimal.Decimal
	MonthlyBudget decimal.Decimal
	OverBudget    bool
}

// SpendUseCase is the request-path entry into the budget core.
type SpendUseCase interface {
	// AuthorizeSpend charges the resolved cost of an ad event when the
	// ad's campaign is running, then re-evaluates the brand budget.
	AuthorizeSpend(ctx context.Context, adID uuid.UUID, kind domain.CostType) (Authorization, error)
	GetDailySpend(ctx context.Context, brandID uuid.UUID) (decimal.Decimal, error)
	GetMonthlySpend(ctx context.Context, brandID uuid.UUID) (decimal.Decimal, error)
	GetBudgetStatus(ctx context.Context, brandID uuid.UUID) (BudgetStatus, error)
	// ListTransactions returns the brand's ledger entries in [from, to),
	// oldest first. A zero range means the brand's current local month.
	ListTransactions(ctx context.Context, brandID uuid.UUID, from, to time.Time) ([]domain.Transaction, error)
}

// ScheduleUseCase holds the periodic passes. Each returns a human-readable
// summary for operational logging.
type ScheduleUseCase interface {
	RunBudgetRecovery(ctx context.Context) (string, error)
	RunDayparting(ctx context.Context) (string, error)
}

var (
	ErrUnknownJob = errors.New("unknown job")
	ErrJobRunning = errors.New("job already running")
)

// JobStatus describes the last run of a periodic job.
type JobStatus struct {
	Name            string
	Running         bool
	LastStartedAt   time.Time
	LastCompletedAt time.Time
	LastSummary     string
	LastError       string
}

// JobRunner triggers periodic jobs on demand.
type JobRunner interface {
	Trigger(ctx context.Context, job string) (string, error)
	Status() []JobStatus
}
