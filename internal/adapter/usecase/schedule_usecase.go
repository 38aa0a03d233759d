package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"adspend/internal/core/domain"
	"adspend/internal/core/port"
)

// ScheduleService runs the periodic budget recovery and dayparting
// passes. Every brand is handled in its own unit of work under the brand
// lock; a failing brand is logged and skipped.
type ScheduleService struct {
	store port.Store
	now   func() time.Time
	log   *slog.Logger
}

var _ port.ScheduleUseCase = (*ScheduleService)(nil)

// NewScheduleService wires the service.
func NewScheduleService(store port.Store, opts ...Option) *ScheduleService {
	o := newOptions(opts)
	return &ScheduleService{store: store, now: o.now, log: o.log}
}

// forEachBrand runs fn for every active brand owning a campaign in one of
// statuses and calls committed after each brand whose work was committed.
// It returns how many brands were visited and how many failed.
func (s *ScheduleService) forEachBrand(ctx context.Context, job string, statuses []domain.CampaignStatus, fn func(ctx context.Context, tx port.BrandTx) error, committed func()) (int, int, error) {
	ids, err := s.store.ListBrandIDsWithCampaignStatus(ctx, statuses)
	if err != nil {
		return 0, 0, fmt.Errorf("%s: list brands: %w", job, err)
	}
	failed := 0
	for _, id := range ids {
		if err := ctx.Err(); err != nil {
			return len(ids), failed, fmt.Errorf("%s: %w", job, err)
		}
		if err := s.store.WithBrandLock(ctx, id, fn); err != nil {
			failed++
			s.log.Error("scheduler brand failed",
				slog.String("job", job),
				slog.String("brand_id", id.String()),
				slog.Any("error", err),
			)
			continue
		}
		committed()
	}
	return len(ids), failed, nil
}

// RunBudgetRecovery re-evaluates every brand with live campaigns. Brands
// still over budget get their running campaigns paused; brands back under
// budget get their budget_reached campaigns rescheduled. Rescheduled
// campaigns wait for the dayparting pass before running again.
func (s *ScheduleService) RunBudgetRecovery(ctx context.Context) (string, error) {
	now := s.now()
	var paused, rescheduled, brandPaused, brandRescheduled int64
	brands, failed, err := s.forEachBrand(ctx, "budget recovery",
		[]domain.CampaignStatus{domain.CampaignStatusRunning, domain.CampaignStatusScheduled, domain.CampaignStatusBudgetReached},
		func(ctx context.Context, tx port.BrandTx) error {
			brandPaused, brandRescheduled = 0, 0
			over, err := NewBudgetEvaluator(tx).IsOverBudget(ctx, tx.Brand(), now)
			if err != nil {
				return err
			}
			if over {
				n, err := tx.TransitionCampaigns(ctx, domain.CampaignStatusRunning, domain.CampaignStatusBudgetReached)
				if err != nil {
					return fmt.Errorf("pause running campaigns: %w", err)
				}
				brandPaused = n
				return nil
			}
			n, err := tx.TransitionCampaigns(ctx, domain.CampaignStatusBudgetReached, domain.CampaignStatusScheduled)
			if err != nil {
				return fmt.Errorf("reschedule campaigns: %w", err)
			}
			brandRescheduled = n
			return nil
		},
		func() {
			paused += brandPaused
			rescheduled += brandRescheduled
		})
	summary := fmt.Sprintf("budget recovery: %d brands checked, %d failed, %d campaigns paused, %d campaigns rescheduled",
		brands, failed, paused, rescheduled)
	return summary, err
}

// RunDayparting starts scheduled campaigns whose window is open (or that
// have none) and stops running campaigns whose window is closed. Each
// pass only touches campaigns in the status it expects, so repeated runs
// converge.
func (s *ScheduleService) RunDayparting(ctx context.Context) (string, error) {
	now := s.now()
	var started, stopped, up, down int64
	brands, failed, err := s.forEachBrand(ctx, "dayparting",
		[]domain.CampaignStatus{domain.CampaignStatusScheduled, domain.CampaignStatusRunning},
		func(ctx context.Context, tx port.BrandTx) error {
			cal := tx.Brand().Calendar()

			var toStart, toStop []uuid.UUID
			scheduled, err := tx.ListCampaigns(ctx, domain.CampaignStatusScheduled)
			if err != nil {
				return fmt.Errorf("list scheduled campaigns: %w", err)
			}
			for _, c := range scheduled {
				if c.Daypart == nil || cal.InDaypart(now, *c.Daypart) {
					toStart = append(toStart, c.ID)
				}
			}
			running, err := tx.ListCampaigns(ctx, domain.CampaignStatusRunning)
			if err != nil {
				return fmt.Errorf("list running campaigns: %w", err)
			}
			for _, c := range running {
				if c.Daypart != nil && !cal.InDaypart(now, *c.Daypart) {
					toStop = append(toStop, c.ID)
				}
			}

			up, down = 0, 0
			for _, id := range toStart {
				ok, err := tx.TransitionCampaign(ctx, id, domain.CampaignStatusScheduled, domain.CampaignStatusRunning)
				if err != nil {
					return fmt.Errorf("start campaign %s: %w", id, err)
				}
				if ok {
					up++
				}
			}
			for _, id := range toStop {
				ok, err := tx.TransitionCampaign(ctx, id, domain.CampaignStatusRunning, domain.CampaignStatusScheduled)
				if err != nil {
					return fmt.Errorf("stop campaign %s: %w", id, err)
				}
				if ok {
					down++
				}
			}
			return nil
		},
		func() {
			started += up
			stopped += down
		})
	summary := fmt.Sprintf("dayparting: %d brands checked, %d failed, %d campaigns started, %d campaigns stopped",
		brands, failed, started, stopped)
	return summary, err
}
