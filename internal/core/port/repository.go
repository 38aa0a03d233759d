package port

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"adspend/internal/core/domain"
)

// SpendReader aggregates ledger costs. It is satisfied both by the plain
// store and by a BrandTx, so budget evaluation reads the same way inside
// and outside the brand lock.
type SpendReader interface {
	// SumCost returns the sum of cost entries of a brand created in
	// [from, to). It returns zero when nothing matches.
	SumCost(ctx context.Context, brandID uuid.UUID, from, to time.Time) (decimal.Decimal, error)
}

// LedgerRepository is the append-only transaction log. There is no
// update or delete.
type LedgerRepository interface {
	SpendReader
	// RecordTransaction appends tx. A zero CreatedAt is set to the current
	// UTC time. The entry is either fully written or not at all.
	RecordTransaction(ctx context.Context, tx *domain.Transaction) error
	// ListTransactions returns entries of a brand created in [from, to),
	// oldest first.
	ListTransactions(ctx context.Context, brandID uuid.UUID, from, to time.Time) ([]domain.Transaction, error)
}

// BrandRepository persists brands. Get returns inactive brands too; callers
// decide through domain.NewActiveBrand.
type BrandRepository interface {
	GetBrand(ctx context.Context, id uuid.UUID) (*domain.Brand, error)
	CreateBrand(ctx context.Context, b *domain.Brand) error
	UpdateBrand(ctx context.Context, b *domain.Brand) error
	// ListBrandIDsWithCampaignStatus returns active brands owning at least
	// one active campaign in one of statuses.
	ListBrandIDsWithCampaignStatus(ctx context.Context, statuses []domain.CampaignStatus) ([]uuid.UUID, error)
}

// CampaignRepository persists campaigns.
type CampaignRepository interface {
	GetCampaign(ctx context.Context, id uuid.UUID) (*domain.Campaign, error)
	CreateCampaign(ctx context.Context, c *domain.Campaign) error
	// UpdateCampaign writes every field except Status. Status only changes
	// through a BrandTx so it never races the brand lock.
	UpdateCampaign(ctx context.Context, c *domain.Campaign) error
}

// AdRepository persists ad sets and ads.
type AdRepository interface {
	GetAdSet(ctx context.Context, id uuid.UUID) (*domain.AdSet, error)
	CreateAdSet(ctx context.Context, s *domain.AdSet) error
	UpdateAdSet(ctx context.Context, s *domain.AdSet) error
	GetAd(ctx context.Context, id uuid.UUID) (*domain.Ad, error)
	CreateAd(ctx context.Context, a *domain.Ad) error
	UpdateAd(ctx context.Context, a *domain.Ad) error
}

// PricingRepository stores the single global pricing row.
type PricingRepository interface {
	// EnsureDefaultPricing returns the stored pricing, inserting defaults
	// first when none exists. It is called once during bootstrap.
	EnsureDefaultPricing(ctx context.Context, defaults domain.Pricing) (domain.Pricing, error)
}

// BrandTx is the storage view available while a brand's exclusive lock is
// held. All campaign queries are scoped to the locked brand and to active
// campaigns.
type BrandTx interface {
	SpendReader
	// Brand returns the locked brand as read under the lock.
	Brand() domain.ActiveBrand
	GetCampaign(ctx context.Context, id uuid.UUID) (*domain.Campaign, error)
	ListCampaigns(ctx context.Context, statuses ...domain.CampaignStatus) ([]domain.Campaign, error)
	RecordTransaction(ctx context.Context, tx *domain.Transaction) error
	// TransitionCampaigns moves every campaign of the brand in status from
	// to status to and returns how many changed.
	TransitionCampaigns(ctx context.Context, from, to domain.CampaignStatus) (int64, error)
	// TransitionCampaign moves one campaign if it is still in status from.
	TransitionCampaign(ctx context.Context, id uuid.UUID, from, to domain.CampaignStatus) (bool, error)
}

// UnitOfWork runs fn while holding an exclusive lock on one brand. Work
// done through the BrandTx commits when fn returns nil and is discarded
// otherwise. Failing to acquire the lock yields a *domain.PersistenceError.
type UnitOfWork interface {
	WithBrandLock(ctx context.Context, brandID uuid.UUID, fn func(ctx context.Context, tx BrandTx) error) error
}

// Store is the full persistence layer of the budget core. It is an
// outbound port; implementations must be safe for concurrent use.
type Store interface {
	BrandRepository
	CampaignRepository
	AdRepository
	LedgerRepository
	PricingRepository
	UnitOfWork
}
