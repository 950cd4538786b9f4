package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"time"

	"parcellocker/cmd"
	"parcellocker/internal/adapters/out/postgres"
	"parcellocker/internal/core/application/usecases/queries"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gorm.io/gorm"
)

const shutdownTimeout = 10 * time.Second

func newRootCommand() *cobra.Command {
	v := viper.New()
	root := &cobra.Command{
		Use:           "lockerd",
		Short:         "Parcel locker allocation service",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(*cobra.Command, []string) error {
			return cmd.LoadDotEnv()
		},
	}
	if err := cmd.BindFlags(root.PersistentFlags(), v); err != nil {
		panic(err)
	}

	root.AddCommand(
		newServeCommand(v),
		newMigrateCommand(v),
		newNearestCommand(v),
		newAuditCommand(v),
	)
	return root
}

func newServeCommand(v *viper.Viper) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API and the background jobs",
		RunE: func(c *cobra.Command, _ []string) error {
			return withApp(c.Context(), v, serve)
		},
	}
}

func newMigrateCommand(v *viper.Viper) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the database tables",
		RunE: func(c *cobra.Command, _ []string) error {
			cfg, logger, err := loadConfig(v)
			if err != nil {
				return err
			}
			db, err := postgres.Open(cfg.DSN(), cfg.Pool(), logger)
			if err != nil {
				return err
			}
			defer closeDB(db)

			if err = postgres.Migrate(c.Context(), db); err != nil {
				return err
			}
			logger.InfoContext(c.Context(), "Schema migrated", "tables", strings.Join(postgres.Tables, ","))
			return nil
		},
	}
}

func newNearestCommand(v *viper.Viper) *cobra.Command {
	var (
		clientID    int64
		maxDistance float64
	)
	command := &cobra.Command{
		Use:   "nearest",
		Short: "List parcel-locker sites within a radius of a client",
		RunE: func(c *cobra.Command, _ []string) error {
			query, err := queries.NewNearestSitesQuery(clientID, maxDistance)
			if err != nil {
				return err
			}
			return withApp(c.Context(), v, func(ctx context.Context, app cmd.CompositionRoot, _ cmd.Config, _ *slog.Logger) error {
				sites, err := app.CreateNearestSitesQueryHandler().Handle(ctx, query)
				if err != nil {
					return err
				}
				printSites(c.OutOrStdout(), sites, maxDistance)
				return nil
			})
		},
	}
	command.Flags().Int64Var(&clientID, "client", 0, "client id")
	command.Flags().Float64Var(&maxDistance, "max-distance", 5, "search radius in kilometres")
	_ = command.MarkFlagRequired("client")
	return command
}

func newAuditCommand(v *viper.Viper) *cobra.Command {
	return &cobra.Command{
		Use:   "audit",
		Short: "Run the integrity audit once and log every finding",
		RunE: func(c *cobra.Command, _ []string) error {
			return withApp(c.Context(), v, func(ctx context.Context, app cmd.CompositionRoot, _ cmd.Config, _ *slog.Logger) error {
				return runAudit(ctx, app.CreateIntegrityAuditJob())
			})
		},
	}
}

type auditRunner interface {
	Run(ctx context.Context) (int, error)
}

// runAudit fails when the audit could not run or reported findings, so the
// exit status tells a clean database apart from everything else.
func runAudit(ctx context.Context, audit auditRunner) error {
	found, err := audit.Run(ctx)
	if err != nil {
		return err
	}
	if found > 0 {
		return fmt.Errorf("integrity audit: %s findings", humanize.Comma(int64(found)))
	}
	return nil
}

func printSites(w io.Writer, sites []queries.NearestSite, maxDistance float64) {
	fmt.Fprintf(w, "%s sites within %s km\n", humanize.Comma(int64(len(sites))), humanize.Ftoa(maxDistance))
	for _, s := range sites {
		fmt.Fprintf(w, "%8s  %-24s %-8s %10s km\n",
			s.SiteID, s.City, s.PostalCode, humanize.FtoaWithDigits(s.DistanceKm, 3))
	}
}

func serve(ctx context.Context, app cmd.CompositionRoot, cfg cmd.Config, logger *slog.Logger) error {
	router, err := app.CreateRouter()
	if err != nil {
		return err
	}

	jobManager := app.CreateJobManager()
	if err = jobManager.StartAll(); err != nil {
		return err
	}
	defer jobManager.StopAll()

	errCh := make(chan error, 1)
	go func() {
		errCh <- router.Start(fmt.Sprintf("0.0.0.0:%s", cfg.HTTPPort))
	}()
	logger.InfoContext(ctx, "HTTP server started", "port", cfg.HTTPPort)

	select {
	case err = <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	logger.InfoContext(shutdownCtx, "Shutting down")
	return router.Shutdown(shutdownCtx)
}

type appFunc func(ctx context.Context, app cmd.CompositionRoot, cfg cmd.Config, logger *slog.Logger) error

// withApp opens the database, builds the composition root and runs fn.
func withApp(ctx context.Context, v *viper.Viper, fn appFunc) error {
	cfg, logger, err := loadConfig(v)
	if err != nil {
		return err
	}

	db, err := postgres.Open(cfg.DSN(), cfg.Pool(), logger)
	if err != nil {
		return err
	}
	defer closeDB(db)

	return fn(ctx, cmd.NewCompositionRoot(cfg, db, logger), cfg, logger)
}

func loadConfig(v *viper.Viper) (cmd.Config, *slog.Logger, error) {
	cfg, err := cmd.LoadConfig(v)
	if err != nil {
		return cmd.Config{}, nil, err
	}
	level, _ := cfg.SlogLevel()
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: level})).
		With("app", "lockerd")
	return cfg, logger, nil
}

func closeDB(db *gorm.DB) {
	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}
}
