package port

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"adspend/internal/core/domain"
)

// CreateBrandReq carries the fields of a new brand.
type CreateBrandReq struct {
	Name          string
	DailyBudget   decimal.Decimal
	MonthlyBudget decimal.Decimal
	Timezone      string
	OwnerID       uuid.UUID
}

// CreateCampaignReq carries the fields of a new campaign. New campaigns
// start in draft unless Status says otherwise.
type CreateCampaignReq struct {
	BrandID      uuid.UUID
	Name         string
	Status       domain.CampaignStatus
	AllowedStart *domain.TimeOfDay
	AllowedEnd   *domain.TimeOfDay
}

// CreateAdReq carries the fields of a new ad. Nil costs fall back to the
// global pricing.
type CreateAdReq struct {
	AdSetID            uuid.UUID
	Name               string
	Content            *string
	CostPerClick       *decimal.Decimal
	CostPerImpression  *decimal.Decimal
	CostPerView        *decimal.Decimal
	CostPerAcquisition *decimal.Decimal
}

// CatalogUseCase provisions the entities the budget core works on. It
// enforces validation; removal is always a soft deactivation.
type CatalogUseCase interface {
	CreateBrand(ctx context.Context, req CreateBrandReq) (*domain.Brand, error)
	UpdateBrandBudget(ctx context.Context, brandID uuid.UUID, daily, monthly decimal.Decimal) (*domain.Brand, error)
	DeactivateBrand(ctx context.Context, brandID uuid.UUID) error

	CreateCampaign(ctx context.Context, req CreateCampaignReq) (*domain.Campaign, error)
	SetCampaignDaypart(ctx context.Context, campaignID uuid.UUID, start, end *domain.TimeOfDay) (*domain.Campaign, error)
	// ChangeCampaignStatus applies an explicit action (draft, scheduled,
	// paused, completed). Running and budget_reached are refused.
	ChangeCampaignStatus(ctx context.Context, campaignID uuid.UUID, status domain.CampaignStatus) (*domain.Campaign, error)
	DeactivateCampaign(ctx context.Context, campaignID uuid.UUID) error

	CreateAdSet(ctx context.Context, campaignID uuid.UUID, name string) (*domain.AdSet, error)
	DeactivateAdSet(ctx context.Context, adSetID uuid.UUID) error
	CreateAd(ctx context.Context, req CreateAdReq) (*domain.Ad, error)
	DeactivateAd(ctx context.Context, adID uuid.UUID) error

	// RecordPayment appends a payment entry. Payments never count as
	// spend.
	RecordPayment(ctx context.Context, brandID uuid.UUID, amount decimal.Decimal) (*domain.Transaction, error)
}
