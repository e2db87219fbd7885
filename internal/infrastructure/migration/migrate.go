package migration

import (
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	_ "github.com/lib/pq"
)

// Runner applies SQL migrations from a directory against a PostgreSQL
// database.
type Runner struct {
	sourceURL   string
	databaseURL string
}

// NewRunner creates a runner. dir is the migrations directory on disk,
// databaseURL a postgres:// connection string.
func NewRunner(dir, databaseURL string) *Runner {
	return &Runner{
		sourceURL:   "file://" + dir,
		databaseURL: databaseURL,
	}
}

func (r *Runner) open() (*migrate.Migrate, error) {
	m, err := migrate.New(r.sourceURL, r.databaseURL)
	if err != nil {
		return nil, fmt.Errorf("open migrations: %w", err)
	}
	return m, nil
}

// Up applies all pending migrations. Nothing to apply is not an error.
func (r *Runner) Up() error {
	m, err := r.open()
	if err != nil {
		return err
	}
	defer m.Close()
	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("apply migrations: %w", err)
	}
	return nil
}

// Down rolls back the most recent migration.
func (r *Runner) Down() error {
	m, err := r.open()
	if err != nil {
		return err
	}
	defer m.Close()
	if err := m.Steps(-1); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("roll back migration: %w", err)
	}
	return nil
}

// Version reports the current schema version and whether it is dirty.
func (r *Runner) Version() (uint, bool, error) {
	m, err := r.open()
	if err != nil {
		return 0, false, err
	}
	defer m.Close()
	version, dirty, err := m.Version()
	if errors.Is(err, migrate.ErrNilVersion) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, fmt.Errorf("read version: %w", err)
	}
	return version, dirty, nil
}
