package memory

import (
	"bytes"
	"context"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"adspend/internal/core/domain"
	"adspend/internal/core/port"
)

// Store implements port.Store in process memory. It backs local runs and
// tests; state is lost on exit. Brand locks are per-brand semaphores so
// unrelated brands never contend.
type Store struct {
	mu        sync.RWMutex
	brands    map[uuid.UUID]domain.Brand
	campaigns map[uuid.UUID]domain.Campaign
	adSets    map[uuid.UUID]domain.AdSet
	ads       map[uuid.UUID]domain.Ad
	ledger    []domain.Transaction
	pricing   *domain.Pricing

	locksMu     sync.Mutex
	locks       map[uuid.UUID]chan struct{}
	lockTimeout time.Duration
}

var _ port.Store = (*Store)(nil)

// NewStore returns an empty store. A positive lockTimeout bounds how long
// WithBrandLock waits for a busy brand.
func NewStore(lockTimeout time.Duration) *Store {
	return &Store{
		brands:      make(map[uuid.UUID]domain.Brand),
		campaigns:   make(map[uuid.UUID]domain.Campaign),
		adSets:      make(map[uuid.UUID]domain.AdSet),
		ads:         make(map[uuid.UUID]domain.Ad),
		locks:       make(map[uuid.UUID]chan struct{}),
		lockTimeout: lockTimeout,
	}
}

func now() time.Time {
	return time.Now().UTC()
}

func stamp(id *uuid.UUID, createdAt, updatedAt *time.Time) {
	if *id == uuid.Nil {
		*id = uuid.New()
	}
	if createdAt.IsZero() {
		*createdAt = now()
	}
	*updatedAt = *createdAt
}

// GetBrand returns a brand by id, active or not.
func (s *Store) GetBrand(_ context.Context, id uuid.UUID) (*domain.Brand, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	b, ok := s.brands[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &b, nil
}

// CreateBrand stores b, assigning an id and timestamps when unset.
func (s *Store) CreateBrand(_ context.Context, b *domain.Brand) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	stamp(&b.ID, &b.CreatedAt, &b.UpdatedAt)
	s.brands[b.ID] = *b
	return nil
}

// UpdateBrand replaces a stored brand.
func (s *Store) UpdateBrand(_ context.Context, b *domain.Brand) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.brands[b.ID]; !ok {
		return domain.ErrNotFound
	}
	b.UpdatedAt = now()
	s.brands[b.ID] = *b
	return nil
}

// ListBrandIDsWithCampaignStatus returns active brands owning an active
// campaign in one of statuses, sorted by id.
func (s *Store) ListBrandIDsWithCampaignStatus(_ context.Context, statuses []domain.CampaignStatus) ([]uuid.UUID, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	seen := make(map[uuid.UUID]struct{})
	var ids []uuid.UUID
	for _, c := range s.campaigns {
		if !c.Active || !slices.Contains(statuses, c.Status) {
			continue
		}
		b, ok := s.brands[c.BrandID]
		if !ok || !b.Active {
			continue
		}
		if _, dup := seen[b.ID]; dup {
			continue
		}
		seen[b.ID] = struct{}{}
		ids = append(ids, b.ID)
	}
	slices.SortFunc(ids, func(a, b uuid.UUID) int { return bytes.Compare(a[:], b[:]) })
	return ids, nil
}

// GetCampaign returns a campaign by id, active or not.
func (s *Store) GetCampaign(_ context.Context, id uuid.UUID) (*domain.Campaign, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	c, ok := s.campaigns[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return copyCampaign(c), nil
}

// CreateCampaign stores c. The owning brand must exist.
func (s *Store) CreateCampaign(_ context.Context, c *domain.Campaign) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.brands[c.BrandID]; !ok {
		return domain.ErrNotFound
	}
	stamp(&c.ID, &c.CreatedAt, &c.UpdatedAt)
	s.campaigns[c.ID] = *copyCampaign(*c)
	return nil
}

// UpdateCampaign replaces a stored campaign, keeping its stored status.
func (s *Store) UpdateCampaign(_ context.Context, c *domain.Campaign) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	old, ok := s.campaigns[c.ID]
	if !ok {
		return domain.ErrNotFound
	}
	c.Status = old.Status
	c.UpdatedAt = now()
	s.campaigns[c.ID] = *copyCampaign(*c)
	return nil
}

// GetAdSet returns an ad set by id, active or not.
func (s *Store) GetAdSet(_ context.Context, id uuid.UUID) (*domain.AdSet, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	as, ok := s.adSets[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &as, nil
}

// CreateAdSet stores as. The owning campaign must exist.
func (s *Store) CreateAdSet(_ context.Context, as *domain.AdSet) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.campaigns[as.CampaignID]; !ok {
		return domain.ErrNotFound
	}
	stamp(&as.ID, &as.CreatedAt, &as.UpdatedAt)
	s.adSets[as.ID] = *as
	return nil
}

// UpdateAdSet replaces a stored ad set.
func (s *Store) UpdateAdSet(_ context.Context, as *domain.AdSet) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.adSets[as.ID]; !ok {
		return domain.ErrNotFound
	}
	as.UpdatedAt = now()
	s.adSets[as.ID] = *as
	return nil
}

// GetAd returns an ad by id, active or not.
func (s *Store) GetAd(_ context.Context, id uuid.UUID) (*domain.Ad, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	a, ok := s.ads[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &a, nil
}

// CreateAd stores a. The owning ad set must exist.
func (s *Store) CreateAd(_ context.Context, a *domain.Ad) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.adSets[a.AdSetID]; !ok {
		return domain.ErrNotFound
	}
	stamp(&a.ID, &a.CreatedAt, &a.UpdatedAt)
	s.ads[a.ID] = *a
	return nil
}

// UpdateAd replaces a stored ad.
func (s *Store) UpdateAd(_ context.Context, a *domain.Ad) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.ads[a.ID]; !ok {
		return domain.ErrNotFound
	}
	a.UpdatedAt = now()
	s.ads[a.ID] = *a
	return nil
}

// SumCost sums committed cost entries of a brand in [from, to).
func (s *Store) SumCost(_ context.Context, brandID uuid.UUID, from, to time.Time) (decimal.Decimal, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return sumCost(s.ledger, brandID, from, to), nil
}

// RecordTransaction appends tx to the ledger outside any brand lock.
func (s *Store) RecordTransaction(_ context.Context, tx *domain.Transaction) error {
	if err := tx.Validate(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	prepareTransaction(tx)
	s.ledger = append(s.ledger, *tx)
	return nil
}

// ListTransactions returns a brand's entries in [from, to), oldest first.
func (s *Store) ListTransactions(_ context.Context, brandID uuid.UUID, from, to time.Time) ([]domain.Transaction, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []domain.Transaction
	for _, t := range s.ledger {
		if t.BrandID == brandID && inWindow(t.CreatedAt, from, to) {
			out = append(out, t)
		}
	}
	slices.SortStableFunc(out, func(a, b domain.Transaction) int { return a.CreatedAt.Compare(b.CreatedAt) })
	return out, nil
}

// EnsureDefaultPricing stores defaults on first use and returns the stored
// pricing afterwards.
func (s *Store) EnsureDefaultPricing(_ context.Context, defaults domain.Pricing) (domain.Pricing, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.pricing == nil {
		p := defaults
		s.pricing = &p
	}
	return *s.pricing, nil
}

// WithBrandLock runs fn holding the brand's semaphore. Writes made through
// the BrandTx are buffered and applied atomically only when fn succeeds.
func (s *Store) WithBrandLock(ctx context.Context, brandID uuid.UUID, fn func(ctx context.Context, tx port.BrandTx) error) error {
	release, err := s.acquire(ctx, brandID)
	if err != nil {
		return err
	}
	defer release()

	b, err := s.GetBrand(ctx, brandID)
	if err != nil {
		return err
	}
	active, err := domain.NewActiveBrand(*b)
	if err != nil {
		return err
	}

	tx := &brandTx{store: s, brand: active, statuses: make(map[uuid.UUID]domain.CampaignStatus)}
	if err = fn(ctx, tx); err != nil {
		return err
	}
	s.commit(tx)
	return nil
}

func (s *Store) semaphore(brandID uuid.UUID) chan struct{} {
	s.locksMu.Lock()
	defer s.locksMu.Unlock()
	sem, ok := s.locks[brandID]
	if !ok {
		sem = make(chan struct{}, 1)
		s.locks[brandID] = sem
	}
	return sem
}

func (s *Store) acquire(ctx context.Context, brandID uuid.UUID) (func(), error) {
	sem := s.semaphore(brandID)
	if s.lockTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.lockTimeout)
		defer cancel()
	}
	select {
	case sem <- struct{}{}:
		return func() { <-sem }, nil
	case <-ctx.Done():
		return nil, domain.NewPersistenceError("acquire brand lock", ctx.Err())
	}
}

func (s *Store) commit(tx *brandTx) {
	s.mu.Lock()
	defer s.mu.Unlock()
	ts := now()
	for id, st := range tx.statuses {
		c := s.campaigns[id]
		c.Status = st
		c.UpdatedAt = ts
		s.campaigns[id] = c
	}
	s.ledger = append(s.ledger, tx.pending...)
}

// brandTx is the buffered view of one locked brand. Its reads observe its
// own pending writes.
type brandTx struct {
	store    *Store
	brand    domain.ActiveBrand
	pending  []domain.Transaction
	statuses map[uuid.UUID]domain.CampaignStatus
}

func (t *brandTx) Brand() domain.ActiveBrand {
	return t.brand
}

func (t *brandTx) SumCost(_ context.Context, brandID uuid.UUID, from, to time.Time) (decimal.Decimal, error) {
	t.store.mu.RLock()
	committed := sumCost(t.store.ledger, brandID, from, to)
	t.store.mu.RUnlock()
	return committed.Add(sumCost(t.pending, brandID, from, to)), nil
}

func (t *brandTx) GetCampaign(_ context.Context, id uuid.UUID) (*domain.Campaign, error) {
	t.store.mu.RLock()
	c, ok := t.store.campaigns[id]
	t.store.mu.RUnlock()
	if !ok || !c.Active || c.BrandID != t.brand.ID() {
		return nil, domain.ErrNotFound
	}
	out := copyCampaign(c)
	if st, ok := t.statuses[id]; ok {
		out.Status = st
	}
	return out, nil
}

func (t *brandTx) ListCampaigns(_ context.Context, statuses ...domain.CampaignStatus) ([]domain.Campaign, error) {
	t.store.mu.RLock()
	defer t.store.mu.RUnlock()
	var out []domain.Campaign
	for _, c := range t.store.campaigns {
		if !c.Active || c.BrandID != t.brand.ID() {
			continue
		}
		cc := copyCampaign(c)
		if st, ok := t.statuses[c.ID]; ok {
			cc.Status = st
		}
		if len(statuses) > 0 && !slices.Contains(statuses, cc.Status) {
			continue
		}
		out = append(out, *cc)
	}
	slices.SortFunc(out, func(a, b domain.Campaign) int {
		if c := a.CreatedAt.Compare(b.CreatedAt); c != 0 {
			return c
		}
		return bytes.Compare(a.ID[:], b.ID[:])
	})
	return out, nil
}

func (t *brandTx) RecordTransaction(_ context.Context, tx *domain.Transaction) error {
	if tx.BrandID != t.brand.ID() {
		return domain.NewValidationError("brand_id", "does not match the locked brand")
	}
	if err := tx.Validate(); err != nil {
		return err
	}
	prepareTransaction(tx)
	t.pending = append(t.pending, *tx)
	return nil
}

func (t *brandTx) TransitionCampaigns(ctx context.Context, from, to domain.CampaignStatus) (int64, error) {
	cs, err := t.ListCampaigns(ctx, from)
	if err != nil {
		return 0, err
	}
	for _, c := range cs {
		t.statuses[c.ID] = to
	}
	return int64(len(cs)), nil
}

func (t *brandTx) TransitionCampaign(ctx context.Context, id uuid.UUID, from, to domain.CampaignStatus) (bool, error) {
	c, err := t.GetCampaign(ctx, id)
	if err != nil {
		return false, err
	}
	if c.Status != from {
		return false, nil
	}
	t.statuses[id] = to
	return true, nil
}

func prepareTransaction(tx *domain.Transaction) {
	if tx.ID == uuid.Nil {
		tx.ID = uuid.New()
	}
	if tx.CreatedAt.IsZero() {
		tx.CreatedAt = now()
	}
}

func inWindow(t, from, to time.Time) bool {
	return !t.Before(from) && t.Before(to)
}

func sumCost(ledger []domain.Transaction, brandID uuid.UUID, from, to time.Time) decimal.Decimal {
	total := decimal.Zero
	for _, t := range ledger {
		if t.BrandID == brandID && t.Type == domain.TransactionTypeCost && inWindow(t.CreatedAt, from, to) {
			total = total.Add(t.Amount)
		}
	}
	return total
}

func copyCampaign(c domain.Campaign) *domain.Campaign {
	if c.Daypart != nil {
		d := *c.Daypart
		c.Daypart = &d
	}
	return &c
}
