package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"adspend/internal/core/domain"
	"adspend/internal/core/port"
)

// SpendService charges ad events against brand budgets. At most one
// authorization per brand is in flight at any time; the brand lock is
// held across record, re-check and transition.
type SpendService struct {
	store port.Store
	costs CostResolver
	now   func() time.Time
	log   *slog.Logger
}

var _ port.SpendUseCase = (*SpendService)(nil)

// NewSpendService wires the service. pricing is the global fallback price
// list loaded once at bootstrap.
func NewSpendService(store port.Store, pricing domain.Pricing, opts ...Option) *SpendService {
	o := newOptions(opts)
	return &SpendService{
		store: store,
		costs: NewCostResolver(pricing),
		now:   o.now,
		log:   o.log,
	}
}

// target is the resolved ownership chain of an ad.
type target struct {
	ad       *domain.Ad
	campaign *domain.Campaign
	brand    domain.ActiveBrand
}

func (s *SpendService) resolve(ctx context.Context, adID uuid.UUID) (target, error) {
	ad, err := s.store.GetAd(ctx, adID)
	if err != nil {
		return target{}, fmt.Errorf("get ad: %w", err)
	}
	if !ad.Active {
		return target{}, fmt.Errorf("ad %s: %w", adID, domain.ErrNotFound)
	}
	set, err := s.store.GetAdSet(ctx, ad.AdSetID)
	if err != nil {
		return target{}, fmt.Errorf("get ad set: %w", err)
	}
	if !set.Active {
		return target{}, fmt.Errorf("ad set %s: %w", set.ID, domain.ErrNotFound)
	}
	c, err := s.store.GetCampaign(ctx, set.CampaignID)
	if err != nil {
		return target{}, fmt.Errorf("get campaign: %w", err)
	}
	if !c.Active {
		return target{}, fmt.Errorf("campaign %s: %w", c.ID, domain.ErrNotFound)
	}
	b, err := s.activeBrand(ctx, c.BrandID)
	if err != nil {
		return target{}, err
	}
	return target{ad: ad, campaign: c, brand: b}, nil
}

func (s *SpendService) activeBrand(ctx context.Context, brandID uuid.UUID) (domain.ActiveBrand, error) {
	b, err := s.store.GetBrand(ctx, brandID)
	if err != nil {
		return domain.ActiveBrand{}, fmt.Errorf("get brand: %w", err)
	}
	active, err := domain.NewActiveBrand(*b)
	if err != nil {
		return domain.ActiveBrand{}, fmt.Errorf("brand %s: %w", brandID, err)
	}
	return active, nil
}

// AuthorizeSpend charges one event of kind on the ad. A campaign that is
// not running yields a rejected Authorization and no ledger entry. When
// the charge reaches either budget every running campaign of the brand
// moves to budget_reached in the same unit of work.
func (s *SpendService) AuthorizeSpend(ctx context.Context, adID uuid.UUID, kind domain.CostType) (port.Authorization, error) {
	kind, err := domain.ParseCostType(string(kind))
	if err != nil {
		return port.Authorization{}, err
	}
	t, err := s.resolve(ctx, adID)
	if err != nil {
		return port.Authorization{}, err
	}
	amount, err := s.costs.Resolve(*t.ad, kind)
	if err != nil {
		return port.Authorization{}, err
	}
	rejected := port.Authorization{Accepted: false, Message: port.MsgCampaignNotRunning, Amount: amount}
	if t.campaign.Status != domain.CampaignStatusRunning {
		return rejected, nil
	}
	// free events are served without a ledger entry
	if amount.IsZero() {
		return port.Authorization{Accepted: true, Message: port.MsgCharged, Amount: amount}, nil
	}

	var auth port.Authorization
	err = s.store.WithBrandLock(ctx, t.brand.ID(), func(ctx context.Context, tx port.BrandTx) error {
		c, err := tx.GetCampaign(ctx, t.campaign.ID)
		if err != nil {
			return fmt.Errorf("reload campaign: %w", err)
		}
		if c.Status != domain.CampaignStatusRunning {
			auth = rejected
			return nil
		}

		now := s.now()
		entry := &domain.Transaction{
			ID:         uuid.New(),
			BrandID:    t.brand.ID(),
			CampaignID: &c.ID,
			AdID:       &t.ad.ID,
			Amount:     amount,
			Type:       domain.TransactionTypeCost,
			CostType:   &kind,
			CreatedAt:  now,
		}
		if err := tx.RecordTransaction(ctx, entry); err != nil {
			return fmt.Errorf("record transaction: %w", err)
		}

		over, err := NewBudgetEvaluator(tx).IsOverBudget(ctx, tx.Brand(), now)
		if err != nil {
			return err
		}
		auth = port.Authorization{Accepted: true, Message: port.MsgCharged, Amount: amount, TransactionID: &entry.ID}
		if !over {
			return nil
		}
		n, err := tx.TransitionCampaigns(ctx, domain.CampaignStatusRunning, domain.CampaignStatusBudgetReached)
		if err != nil {
			return fmt.Errorf("pause running campaigns: %w", err)
		}
		auth.Message = port.MsgChargedAndPaused
		s.log.Info("brand reached budget",
			slog.String("brand_id", t.brand.ID().String()),
			slog.Int64("campaigns_paused", n),
		)
		return nil
	})
	if err != nil {
		return port.Authorization{}, fmt.Errorf("authorize spend: %w", err)
	}
	return auth, nil
}

// GetDailySpend returns the brand's spend for its current local day.
func (s *SpendService) GetDailySpend(ctx context.Context, brandID uuid.UUID) (decimal.Decimal, error) {
	b, err := s.activeBrand(ctx, brandID)
	if err != nil {
		return decimal.Zero, err
	}
	return NewBudgetEvaluator(s.store).DailySpend(ctx, b, s.now())
}

// GetMonthlySpend returns the brand's spend for its current local month.
func (s *SpendService) GetMonthlySpend(ctx context.Context, brandID uuid.UUID) (decimal.Decimal, error) {
	b, err := s.activeBrand(ctx, brandID)
	if err != nil {
		return decimal.Zero, err
	}
	return NewBudgetEvaluator(s.store).MonthlySpend(ctx, b, s.now())
}

// GetBudgetStatus returns both spends next to the budgets.
func (s *SpendService) GetBudgetStatus(ctx context.Context, brandID uuid.UUID) (port.BudgetStatus, error) {
	b, err := s.activeBrand(ctx, brandID)
	if err != nil {
		return port.BudgetStatus{}, err
	}
	now := s.now()
	ev, err := NewBudgetEvaluator(s.store).Evaluate(ctx, b, now)
	if err != nil {
		return port.BudgetStatus{}, err
	}
	return port.BudgetStatus{
		BrandID:       b.ID(),
		AsOf:          now,
		DailySpend:    ev.DailySpend,
		MonthlySpend:  ev.MonthlySpend,
		DailyBudget:   b.DailyBudget(),
		MonthlyBudget: b.MonthlyBudget(),
		OverBudget:    ev.OverBudget,
	}, nil
}

// ListTransactions returns the brand's ledger entries, payments included,
// in [from, to). Without a range the brand's current local month is used.
func (s *SpendService) ListTransactions(ctx context.Context, brandID uuid.UUID, from, to time.Time) ([]domain.Transaction, error) {
	b, err := s.activeBrand(ctx, brandID)
	if err != nil {
		return nil, err
	}
	switch {
	case from.IsZero() && to.IsZero():
		from, to = b.Calendar().MonthWindow(s.now())
	case from.IsZero() || to.IsZero():
		return nil, domain.NewValidationError("from", "from and to must be set together")
	case !from.Before(to):
		return nil, domain.NewValidationError("to", "must be after from")
	}
	txs, err := s.store.ListTransactions(ctx, b.ID(), from, to)
	if err != nil {
		return nil, fmt.Errorf("list transactions: %w", err)
	}
	return txs, nil
}
