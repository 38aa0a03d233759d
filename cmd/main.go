package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	httpadapter "adspend/internal/adapter/http"
	"adspend/internal/config"
	"adspend/internal/config/configs"
	"adspend/internal/db"
)

func main() {
	var (
		cfg    config.Config
		logger *slog.Logger
	)

	rootCmd := &cobra.Command{
		Use:           "adspend",
		Short:         "budget enforcement and dayparting for ad campaigns",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			var err error
			if cfg, err = config.Load(); err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			logger = cfg.Log.New(os.Stdout, cfg.Env)
			slog.SetDefault(logger)
			return nil
		},
	}
	rootCmd.AddCommand(
		serveCommand(&cfg, &logger),
		migrateCommand(&cfg, &logger),
		seedCommand(&cfg, &logger),
		runJobCommand(&cfg, &logger),
	)

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	err := rootCmd.ExecuteContext(ctx)
	cancel()
	if err != nil {
		if logger != nil {
			logger.Error("command failed", slog.Any("error", err))
		} else {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}

func serveCommand(cfg *config.Config, logger **slog.Logger) *cobra.Command {
	var seed bool
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "start the HTTP API and the periodic jobs",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			log := *logger

			a, err := newApp(ctx, *cfg, log, cfg.Psql.RunMigrations)
			if err != nil {
				return err
			}
			defer a.close()

			if seed {
				if _, err = db.Seed(ctx, a.catalog, log); err != nil {
					return fmt.Errorf("seed: %w", err)
				}
			}

			handler := httpadapter.NewHandler(a.spend, a.catalog, a.runner, log)
			srv := &http.Server{
				Addr:              fmt.Sprintf(":%d", cfg.HTTP.Port),
				Handler:           handler.Router(),
				ReadHeaderTimeout: cfg.HTTP.ReadHeaderTimeout,
			}

			g, ctx := errgroup.WithContext(ctx)
			g.Go(func() error {
				log.Info("server listening", slog.Int("port", int(cfg.HTTP.Port)))
				if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					return fmt.Errorf("http server: %w", err)
				}
				return nil
			})
			g.Go(func() error {
				<-ctx.Done()
				shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
				defer cancel()
				if err := srv.Shutdown(shutdownCtx); err != nil {
					return fmt.Errorf("server shutdown: %w", err)
				}
				log.Info("server gracefully stopped")
				return nil
			})
			if cfg.Scheduler.Enabled {
				g.Go(func() error {
					return a.runner.Run(ctx)
				})
			} else {
				log.Info("periodic jobs disabled; use the jobs endpoint or run-job")
			}
			return g.Wait()
		},
	}
	cmd.Flags().BoolVar(&seed, "seed", false, "provision demo brands before serving")
	return cmd
}

func migrateCommand(cfg *config.Config, logger **slog.Logger) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "apply database migrations",
		RunE: func(_ *cobra.Command, _ []string) error {
			if cfg.Storage.Name() != configs.StorageDriverPostgres {
				return errors.New("migrate requires the postgres storage driver")
			}
			if err := db.Migrate(cfg.Psql.Addr.String()); err != nil {
				return err
			}
			(*logger).Info("migrations applied successfully")
			return nil
		},
	}
}

func seedCommand(cfg *config.Config, logger **slog.Logger) *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "provision demo brands, campaigns and ads",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if cfg.Storage.Name() == configs.StorageDriverMemory {
				return errors.New("seed on the memory driver is lost on exit; use serve --seed")
			}
			a, err := newApp(cmd.Context(), *cfg, *logger, false)
			if err != nil {
				return err
			}
			defer a.close()

			res, err := db.Seed(cmd.Context(), a.catalog, *logger)
			if err != nil {
				return err
			}
			for _, id := range res.AdIDs {
				fmt.Fprintln(cmd.OutOrStdout(), id)
			}
			return nil
		},
	}
}

func runJobCommand(cfg *config.Config, logger **slog.Logger) *cobra.Command {
	return &cobra.Command{
		Use:       "run-job <budget-recovery|dayparting>",
		Short:     "run one scheduler pass and print its summary",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{"budget-recovery", "dayparting"},
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd.Context(), *cfg, *logger, false)
			if err != nil {
				return err
			}
			defer a.close()

			summary, err := a.runner.Trigger(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), summary)
			return nil
		},
	}
}
