package main

import (
	"context"
	"fmt"
	"log/slog"

	"adspend/internal/adapter/memory"
	"adspend/internal/adapter/postgres"
	"adspend/internal/adapter/usecase"
	"adspend/internal/config"
	"adspend/internal/config/configs"
	"adspend/internal/core/port"
	"adspend/internal/db"
	"adspend/internal/scheduler"
)

// app holds the wired services shared by every subcommand.
type app struct {
	cfg      config.Config
	logger   *slog.Logger
	store    port.Store
	catalog  *usecase.CatalogService
	spend    *usecase.SpendService
	schedule *usecase.ScheduleService
	runner   *scheduler.Runner
	close    func()
}

// newApp opens the configured store, ensures the global pricing row and
// builds the services on top of it.
func newApp(ctx context.Context, cfg config.Config, logger *slog.Logger, migrate bool) (*app, error) {
	a := &app{cfg: cfg, logger: logger, close: func() {}}

	switch cfg.Storage.Name() {
	case configs.StorageDriverMemory:
		logger.Warn("using in-memory storage; state is lost on exit")
		a.store = memory.NewStore(cfg.Psql.LockTimeout)
	default:
		if migrate {
			if err := db.Migrate(cfg.Psql.Addr.String()); err != nil {
				return nil, fmt.Errorf("migrate: %w", err)
			}
			logger.Info("migrations applied successfully")
		}
		pool, err := db.NewPostgresPool(ctx, cfg.Psql)
		if err != nil {
			return nil, fmt.Errorf("database connection: %w", err)
		}
		a.store = postgres.NewStore(pool, cfg.Psql.LockTimeout)
		a.close = pool.Close
	}

	pricing, err := a.store.EnsureDefaultPricing(ctx, cfg.Pricing.Domain())
	if err != nil {
		a.close()
		return nil, fmt.Errorf("ensure default pricing: %w", err)
	}
	logger.Info("global pricing loaded",
		slog.String("cost_per_click", pricing.CostPerClick.String()),
		slog.String("cost_per_impression", pricing.CostPerImpression.String()),
		slog.String("cost_per_view", pricing.CostPerView.String()),
		slog.String("cost_per_acquisition", pricing.CostPerAcquisition.String()),
	)

	opts := []usecase.Option{usecase.WithLogger(logger)}
	a.catalog = usecase.NewCatalogService(a.store, opts...)
	a.spend = usecase.NewSpendService(a.store, pricing, opts...)
	a.schedule = usecase.NewScheduleService(a.store, opts...)
	a.runner = scheduler.NewRunner(a.schedule, cfg.Scheduler.Interval, logger)
	return a, nil
}
