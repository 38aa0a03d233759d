package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"adspend/internal/core/domain"
	"adspend/internal/core/port"
)

// CatalogService provisions brands, campaigns, ad sets and ads. Removal is
// always a soft deactivation so ledger history stays intact.
type CatalogService struct {
	store port.Store
	now   func() time.Time
	log   *slog.Logger
}

var _ port.CatalogUseCase = (*CatalogService)(nil)

// NewCatalogService wires the service.
func NewCatalogService(store port.Store, opts ...Option) *CatalogService {
	o := newOptions(opts)
	return &CatalogService{store: store, now: o.now, log: o.log}
}

func (s *CatalogService) activeBrand(ctx context.Context, id uuid.UUID) (*domain.Brand, error) {
	b, err := s.store.GetBrand(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get brand: %w", err)
	}
	if !b.Active {
		return nil, fmt.Errorf("brand %s: %w", id, domain.ErrNotFound)
	}
	return b, nil
}

func (s *CatalogService) activeCampaign(ctx context.Context, id uuid.UUID) (*domain.Campaign, error) {
	c, err := s.store.GetCampaign(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get campaign: %w", err)
	}
	if !c.Active {
		return nil, fmt.Errorf("campaign %s: %w", id, domain.ErrNotFound)
	}
	return c, nil
}

// CreateBrand validates and stores a new active brand.
func (s *CatalogService) CreateBrand(ctx context.Context, req port.CreateBrandReq) (*domain.Brand, error) {
	now := s.now()
	b := &domain.Brand{
		ID:            uuid.New(),
		Name:          strings.TrimSpace(req.Name),
		DailyBudget:   req.DailyBudget,
		MonthlyBudget: req.MonthlyBudget,
		Timezone:      req.Timezone,
		OwnerID:       req.OwnerID,
		Active:        true,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := b.Validate(); err != nil {
		return nil, err
	}
	if err := s.store.CreateBrand(ctx, b); err != nil {
		return nil, fmt.Errorf("create brand: %w", err)
	}
	s.log.Info("brand created", slog.String("brand_id", b.ID.String()), slog.String("timezone", b.Timezone))
	return b, nil
}

// UpdateBrandBudget replaces both budgets of an active brand. The new
// budgets apply from the next authorization or recovery pass.
func (s *CatalogService) UpdateBrandBudget(ctx context.Context, brandID uuid.UUID, daily, monthly decimal.Decimal) (*domain.Brand, error) {
	b, err := s.activeBrand(ctx, brandID)
	if err != nil {
		return nil, err
	}
	b.DailyBudget = daily
	b.MonthlyBudget = monthly
	if err = b.Validate(); err != nil {
		return nil, err
	}
	if err = s.store.UpdateBrand(ctx, b); err != nil {
		return nil, fmt.Errorf("update brand: %w", err)
	}
	return b, nil
}

// DeactivateBrand is idempotent. The brand's campaigns keep their status
// but are never evaluated again.
func (s *CatalogService) DeactivateBrand(ctx context.Context, brandID uuid.UUID) error {
	b, err := s.store.GetBrand(ctx, brandID)
	if err != nil {
		return fmt.Errorf("get brand: %w", err)
	}
	if !b.Active {
		return nil
	}
	b.Active = false
	if err = s.store.UpdateBrand(ctx, b); err != nil {
		return fmt.Errorf("deactivate brand: %w", err)
	}
	s.log.Info("brand deactivated", slog.String("brand_id", brandID.String()))
	return nil
}

// CreateCampaign stores a campaign under an active brand. It starts as
// draft unless an explicit status is requested.
func (s *CatalogService) CreateCampaign(ctx context.Context, req port.CreateCampaignReq) (*domain.Campaign, error) {
	status := req.Status
	if status == "" {
		status = domain.CampaignStatusDraft
	}
	if !status.IsExplicitTarget() {
		return nil, domain.NewValidationError("status", fmt.Sprintf("campaigns cannot be created as %s", status))
	}
	daypart, err := domain.NewDaypart(req.AllowedStart, req.AllowedEnd)
	if err != nil {
		return nil, err
	}
	now := s.now()
	c := &domain.Campaign{
		ID:        uuid.New(),
		BrandID:   req.BrandID,
		Name:      strings.TrimSpace(req.Name),
		Status:    status,
		Daypart:   daypart,
		Active:    true,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err = c.Validate(); err != nil {
		return nil, err
	}
	if _, err = s.activeBrand(ctx, req.BrandID); err != nil {
		return nil, err
	}
	if err = s.store.CreateCampaign(ctx, c); err != nil {
		return nil, fmt.Errorf("create campaign: %w", err)
	}
	return c, nil
}

// SetCampaignDaypart replaces the allowed window; nil bounds clear it.
func (s *CatalogService) SetCampaignDaypart(ctx context.Context, campaignID uuid.UUID, start, end *domain.TimeOfDay) (*domain.Campaign, error) {
	daypart, err := domain.NewDaypart(start, end)
	if err != nil {
		return nil, err
	}
	c, err := s.activeCampaign(ctx, campaignID)
	if err != nil {
		return nil, err
	}
	c.Daypart = daypart
	if err = s.store.UpdateCampaign(ctx, c); err != nil {
		return nil, fmt.Errorf("update campaign: %w", err)
	}
	return c, nil
}

// ChangeCampaignStatus applies the transition under the brand lock so it
// cannot interleave with a spend authorization or a scheduler pass.
// Requesting the current status is a no-op.
func (s *CatalogService) ChangeCampaignStatus(ctx context.Context, campaignID uuid.UUID, status domain.CampaignStatus) (*domain.Campaign, error) {
	if _, err := domain.ParseCampaignStatus(string(status)); err != nil {
		return nil, err
	}
	if !status.IsExplicitTarget() {
		return nil, domain.NewValidationError("status", fmt.Sprintf("%s is set by the budget core only", status))
	}
	c, err := s.activeCampaign(ctx, campaignID)
	if err != nil {
		return nil, err
	}

	var out *domain.Campaign
	err = s.store.WithBrandLock(ctx, c.BrandID, func(ctx context.Context, tx port.BrandTx) error {
		cur, err := tx.GetCampaign(ctx, campaignID)
		if err != nil {
			return err
		}
		if cur.Status != status {
			if !cur.Status.CanTransition(status) {
				return fmt.Errorf("%w: %s -> %s", domain.ErrInvalidTransition, cur.Status, status)
			}
			ok, err := tx.TransitionCampaign(ctx, campaignID, cur.Status, status)
			if err != nil {
				return err
			}
			if !ok {
				return fmt.Errorf("%w: campaign changed concurrently", domain.ErrInvalidTransition)
			}
		}
		cur.Status = status
		out = cur
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("change campaign status: %w", err)
	}
	s.log.Info("campaign status changed",
		slog.String("campaign_id", campaignID.String()),
		slog.String("status", string(status)),
	)
	return out, nil
}

// DeactivateCampaign soft-deletes a campaign. It is idempotent.
func (s *CatalogService) DeactivateCampaign(ctx context.Context, campaignID uuid.UUID) error {
	c, err := s.store.GetCampaign(ctx, campaignID)
	if err != nil {
		return fmt.Errorf("get campaign: %w", err)
	}
	if !c.Active {
		return nil
	}
	c.Active = false
	if err = s.store.UpdateCampaign(ctx, c); err != nil {
		return fmt.Errorf("deactivate campaign: %w", err)
	}
	return nil
}

// CreateAdSet stores an ad set under an active campaign.
func (s *CatalogService) CreateAdSet(ctx context.Context, campaignID uuid.UUID, name string) (*domain.AdSet, error) {
	now := s.now()
	as := &domain.AdSet{
		ID:         uuid.New(),
		CampaignID: campaignID,
		Name:       strings.TrimSpace(name),
		Active:     true,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := as.Validate(); err != nil {
		return nil, err
	}
	if _, err := s.activeCampaign(ctx, campaignID); err != nil {
		return nil, err
	}
	if err := s.store.CreateAdSet(ctx, as); err != nil {
		return nil, fmt.Errorf("create ad set: %w", err)
	}
	return as, nil
}

// DeactivateAdSet soft-deletes an ad set. It is idempotent.
func (s *CatalogService) DeactivateAdSet(ctx context.Context, adSetID uuid.UUID) error {
	as, err := s.store.GetAdSet(ctx, adSetID)
	if err != nil {
		return fmt.Errorf("get ad set: %w", err)
	}
	if !as.Active {
		return nil
	}
	as.Active = false
	if err = s.store.UpdateAdSet(ctx, as); err != nil {
		return fmt.Errorf("deactivate ad set: %w", err)
	}
	return nil
}

// CreateAd stores an ad under an active ad set. Unset cost fields fall
// back to the global pricing when charged.
func (s *CatalogService) CreateAd(ctx context.Context, req port.CreateAdReq) (*domain.Ad, error) {
	now := s.now()
	a := &domain.Ad{
		ID:                 uuid.New(),
		AdSetID:            req.AdSetID,
		Name:               strings.TrimSpace(req.Name),
		Active:             true,
		Content:            req.Content,
		CostPerClick:       nullDecimal(req.CostPerClick),
		CostPerImpression:  nullDecimal(req.CostPerImpression),
		CostPerView:        nullDecimal(req.CostPerView),
		CostPerAcquisition: nullDecimal(req.CostPerAcquisition),
		CreatedAt:          now,
		UpdatedAt:          now,
	}
	if err := a.Validate(); err != nil {
		return nil, err
	}
	as, err := s.store.GetAdSet(ctx, req.AdSetID)
	if err != nil {
		return nil, fmt.Errorf("get ad set: %w", err)
	}
	if !as.Active {
		return nil, fmt.Errorf("ad set %s: %w", as.ID, domain.ErrNotFound)
	}
	if err = s.store.CreateAd(ctx, a); err != nil {
		return nil, fmt.Errorf("create ad: %w", err)
	}
	return a, nil
}

// DeactivateAd soft-deletes an ad so it is never charged again.
func (s *CatalogService) DeactivateAd(ctx context.Context, adID uuid.UUID) error {
	a, err := s.store.GetAd(ctx, adID)
	if err != nil {
		return fmt.Errorf("get ad: %w", err)
	}
	if !a.Active {
		return nil
	}
	a.Active = false
	if err = s.store.UpdateAd(ctx, a); err != nil {
		return fmt.Errorf("deactivate ad: %w", err)
	}
	return nil
}

// RecordPayment appends a payment entry for an active brand. Payments
// are not counted as spend.
func (s *CatalogService) RecordPayment(ctx context.Context, brandID uuid.UUID, amount decimal.Decimal) (*domain.Transaction, error) {
	t := &domain.Transaction{
		ID:        uuid.New(),
		BrandID:   brandID,
		Amount:    amount,
		Type:      domain.TransactionTypePayment,
		CreatedAt: s.now(),
	}
	if err := t.Validate(); err != nil {
		return nil, err
	}
	if _, err := s.activeBrand(ctx, brandID); err != nil {
		return nil, err
	}
	if err := s.store.RecordTransaction(ctx, t); err != nil {
		return nil, fmt.Errorf("record payment: %w", err)
	}
	return t, nil
}

func nullDecimal(d *decimal.Decimal) decimal.NullDecimal {
	if d == nil {
		return decimal.NullDecimal{}
	}
	return decimal.NewNullDecimal(*d)
}
