// Package migrations applies the embedded SQL schema with golang-migrate.
package migrations

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"log/slog"

	"github.com/golang-migrate/migrate/v4"
	migratepg "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	_ "github.com/lib/pq"
)

//go:embed sql/*.sql
var migrationsFS embed.FS

// Migrator runs schema migrations against one PostgreSQL database.
type Migrator struct {
	dsn    string
	logger *slog.Logger
}

func NewMigrator(dsn string, logger *slog.Logger) *Migrator {
	return &Migrator{
		dsn:    dsn,
		logger: logger.With("component", "migrations"),
	}
}

// Up applies every pending migration. An up-to-date schema is not an error.
func (m *Migrator) Up() error {
	return m.apply("up", func(mg *migrate.Migrate) error {
		return mg.Up()
	})
}

// Down reverts every applied migration.
func (m *Migrator) Down() error {
	return m.apply("down", func(mg *migrate.Migrate) error {
		return mg.Down()
	})
}

// Version reports the applied schema version; 0 means nothing has been applied.
func (m *Migrator) Version() (uint, bool, error) {
	mg, closeFn, err := m.open()
	if err != nil {
		return 0, false, err
	}
	defer closeFn()

	version, dirty, err := mg.Version()
	if errors.Is(err, migrate.ErrNilVersion) {
		return 0, false, nil
	}
	return version, dirty, err
}

func (m *Migrator) apply(direction string, step func(*migrate.Migrate) error) error {
	mg, closeFn, err := m.open()
	if err != nil {
		return err
	}
	defer closeFn()

	if err := step(mg); err != nil {
		if !errors.Is(err, migrate.ErrNoChange) {
			return fmt.Errorf("migrate %s: %w", direction, err)
		}
		m.logger.Info("Schema already current", "direction", direction)
		return nil
	}

	m.logger.Info("Schema migrated", "direction", direction)
	return nil
}

func (m *Migrator) open() (*migrate.Migrate, func(), error) {
	db, err := sql.Open("postgres", m.dsn)
	if err != nil {
		return nil, nil, fmt.Errorf("open database: %w", err)
	}

	driver, err := migratepg.WithInstance(db, &migratepg.Config{})
	if err != nil {
		_ = db.Close()
		return nil, nil, fmt.Errorf("create migration driver: %w", err)
	}

	source, err := iofs.New(migrationsFS, "sql")
	if err != nil {
		_ = db.Close()
		return nil, nil, fmt.Errorf("create migration source: %w", err)
	}

	mg, err := migrate.NewWithInstance("iofs", source, "postgres", driver)
	if err != nil {
		_ = db.Close()
		return nil, nil, fmt.Errorf("create migrator: %w", err)
	}

	closeFn := func() {
		_, _ = mg.Close()
		_ = db.Close()
	}
	return mg, closeFn, nil
}
