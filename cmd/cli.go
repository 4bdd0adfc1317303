package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	nethttp "net/http"
	"os"
	"os/signal"
	"syscall"

	"truckrental/internal/adapters/out/postgres/migrations"
	"truckrental/internal/pkg/logging"

	"github.com/spf13/cobra"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// version is overridden at build time with -ldflags "-X truckrental/cmd.version=...".
var version = "dev"

var envFile string

var rootCmd = &cobra.Command{
	Use:           "truckrental",
	Short:         "Truck rental management back end",
	SilenceUsage:  true,
	SilenceErrors: true,
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API and the scheduled jobs",
	Args:  cobra.NoArgs,
	RunE:  runServe,
}

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Manage the database schema",
}

var migrateUpCmd = &cobra.Command{
	Use:   "up",
	Short: "Apply all pending migrations",
	Args:  cobra.NoArgs,
	RunE: func(_ *cobra.Command, _ []string) error {
		m, err := newMigrator()
		if err != nil {
			return err
		}
		return m.Up()
	},
}

var migrateDownCmd = &cobra.Command{
	Use:   "down",
	Short: "Revert every migration",
	Args:  cobra.NoArgs,
	RunE: func(_ *cobra.Command, _ []string) error {
		m, err := newMigrator()
		if err != nil {
			return err
		}
		return m.Down()
	},
}

var migrateVersionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the applied schema version",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		m, err := newMigrator()
		if err != nil {
			return err
		}
		v, dirty, err := m.Version()
		if err != nil {
			return err
		}
		cmd.Printf("schema version %d (dirty: %t)\n", v, dirty)
		return nil
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Run: func(cmd *cobra.Command, _ []string) {
		cmd.Printf("truckrental version %s\n", version)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", ".env", "dotenv file loaded before reading the environment")

	migrateCmd.AddCommand(migrateUpCmd, migrateDownCmd, migrateVersionCmd)
	rootCmd.AddCommand(serveCmd, migrateCmd, versionCmd)
}

// Execute runs the command line against os.Args.
func Execute() error {
	return rootCmd.Execute()
}

func setup() (Config, *slog.Logger, error) {
	cfg, err := LoadConfig(envFile)
	if err != nil {
		return Config{}, nil, err
	}
	return cfg, logging.New(cfg.LogLevel, cfg.LogFormat), nil
}

func newMigrator() (*migrations.Migrator, error) {
	cfg, logger, err := setup()
	if err != nil {
		return nil, err
	}
	return migrations.NewMigrator(cfg.DSN(), logger), nil
}

func openDB(cfg Config) (*gorm.DB, error) {
	gormDB, err := gorm.Open(gormpostgres.Open(cfg.DSN()), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	return gormDB, nil
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, logger, err := setup()
	if err != nil {
		return err
	}

	gormDB, err := openDB(cfg)
	if err != nil {
		return err
	}

	app := NewCompositionRoot(cfg, gormDB, logger)

	e, err := app.CreateEcho()
	if err != nil {
		return err
	}

	jobManager := app.CreateJobManager()
	if err = jobManager.StartAll(); err != nil {
		return err
	}
	defer jobManager.StopAll()

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		addr := fmt.Sprintf("0.0.0.0:%s", cfg.HTTPPort)
		logger.Info("Starting HTTP server", "addr", addr, "version", version)
		if err := e.Start(addr); err != nil && !errors.Is(err, nethttp.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err = <-errCh:
		return err
	case <-ctx.Done():
		logger.Info("Shutting down")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	return e.Shutdown(shutdownCtx)
}
