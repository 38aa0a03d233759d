package db

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"adspend/internal/core/domain"
	"adspend/internal/core/port"
)

// SeedResult lists what Seed created.
type SeedResult struct {
	BrandIDs []uuid.UUID
	AdIDs    []uuid.UUID
}

type seedBrand struct {
	name     string
	timezone string
	daily    string
	monthly  string
	dayparts [][2]int
}

var demoBrands = []seedBrand{
	{name: "Northern Outfitters", timezone: "America/Edmonton", daily: "50.00", monthly: "1200.00", dayparts: [][2]int{{8, 20}, {22, 2}}},
	{name: "Kissa Coffee", timezone: "Asia/Tokyo", daily: "5.00", monthly: "100.00", dayparts: [][2]int{{6, 11}}},
	{name: "Atlas Freight", timezone: "Europe/Berlin", daily: "200.00", monthly: "4000.00", dayparts: nil},
}

// Seed provisions demo brands through the catalog so it works on every
// storage driver. Campaigns are left scheduled; the dayparting job starts
// them.
func Seed(ctx context.Context, catalog port.CatalogUseCase, log *slog.Logger) (SeedResult, error) {
	var res SeedResult
	owner := uuid.New()
	for _, sb := range demoBrands {
		b, err := catalog.CreateBrand(ctx, port.CreateBrandReq{
			Name:          sb.name,
			DailyBudget:   decimal.RequireFromString(sb.daily),
			MonthlyBudget: decimal.RequireFromString(sb.monthly),
			Timezone:      sb.timezone,
			OwnerID:       owner,
		})
		if err != nil {
			return res, fmt.Errorf("seed brand %q: %w", sb.name, err)
		}
		res.BrandIDs = append(res.BrandIDs, b.ID)

		windows := sb.dayparts
		if len(windows) == 0 {
			windows = [][2]int{{-1, -1}}
		}
		for i, w := range windows {
			req := port.CreateCampaignReq{
				BrandID: b.ID,
				Name:    fmt.Sprintf("%s campaign %d", sb.name, i+1),
				Status:  domain.CampaignStatusScheduled,
			}
			if w[0] >= 0 {
				start, end := domain.MustTimeOfDay(w[0], 0), domain.MustTimeOfDay(w[1], 0)
				req.AllowedStart, req.AllowedEnd = &start, &end
			}
			c, err := catalog.CreateCampaign(ctx, req)
			if err != nil {
				return res, fmt.Errorf("seed campaign: %w", err)
			}
			as, err := catalog.CreateAdSet(ctx, c.ID, "default")
			if err != nil {
				return res, fmt.Errorf("seed ad set: %w", err)
			}
			ids, err := seedAds(ctx, catalog, as.ID)
			if err != nil {
				return res, err
			}
			res.AdIDs = append(res.AdIDs, ids...)
		}
	}
	log.Info("seed complete",
		slog.Int("brands", len(res.BrandIDs)),
		slog.Int("ads", len(res.AdIDs)),
	)
	return res, nil
}

func seedAds(ctx context.Context, catalog port.CatalogUseCase, adSetID uuid.UUID) ([]uuid.UUID, error) {
	click := decimal.RequireFromString("0.25")
	content := "Spring sale"
	reqs := []port.CreateAdReq{
		{AdSetID: adSetID, Name: "default pricing"},
		{AdSetID: adSetID, Name: "premium click", Content: &content, CostPerClick: &click},
	}
	ids := make([]uuid.UUID, 0, len(reqs))
	for _, req := range reqs {
		a, err := catalog.CreateAd(ctx, req)
		if err != nil {
			return nil, fmt.Errorf("seed ad %q: %w", req.Name, err)
		}
		ids = append(ids, a.ID)
	}
	return ids, nil
}
