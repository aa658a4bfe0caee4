package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
)

const (
	migrationsPath = "db/migrations"
	seedsPath      = "db/seeds"
)

var (
	maxRetries    = 30
	retryInterval = 2 * time.Second
)

// MigrationRunner applies the SQL migrations under db/migrations and, in
// development, the sample data under db/seeds.
type MigrationRunner struct {
	db             *sql.DB
	migrationsPath string
	seedsPath      string
	logger         *slog.Logger
}

// NewMigrationRunner creates a new migration runner
func NewMigrationRunner(db *sql.DB) *MigrationRunner {
	return &MigrationRunner{
		db:             db,
		migrationsPath: migrationsPath,
		seedsPath:      seedsPath,
		logger:         slog.Default().With("component", "migrations"),
	}
}

// WaitForDatabase pings until the database answers, the retries run out or
// ctx is done.
func (mr *MigrationRunner) WaitForDatabase(ctx context.Context) error {
	for i := 0; i < maxRetries; i++ {
		err := mr.db.PingContext(ctx)
		if err == nil {
			return nil
		}

		mr.logger.Info("database not ready", "attempt", i+1, "max_attempts", maxRetries, "error", err)

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(retryInterval):
		}
	}

	return fmt.Errorf("database not ready after %d attempts", maxRetries)
}

func (mr *MigrationRunner) newMigrate() (*migrate.Migrate, error) {
	absPath, err := filepath.Abs(mr.migrationsPath)
	if err != nil {
		return nil, fmt.Errorf("failed to get absolute path for migrations: %w", err)
	}

	driver, err := postgres.WithInstance(mr.db, &postgres.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to create postgres driver: %w", err)
	}

	m, err := migrate.NewWithDatabaseInstance(fmt.Sprintf("file://%s", absPath), "postgres", driver)
	if err != nil {
		return nil, fmt.Errorf("failed to create migration instance: %w", err)
	}
	return m, nil
}

// RunMigrations executes all pending migrations
func (mr *MigrationRunner) RunMigrations() error {
	if _, err := os.Stat(mr.migrationsPath); os.IsNotExist(err) {
		mr.logger.Warn("migrations directory not found, skipping", "path", mr.migrationsPath)
		return nil
	}

	m, err := mr.newMigrate()
	if err != nil {
		return err
	}

	version, dirty, err := m.Version()
	if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
		return fmt.Errorf("failed to get migration version: %w", err)
	}

	if dirty {
		mr.logger.Warn("database is in dirty state, forcing version", "version", version)
		if err := m.Force(int(version)); err != nil {
			return fmt.Errorf("failed to force version: %w", err)
		}
	}

	err = m.Up()
	if errors.Is(err, migrate.ErrNoChange) {
		mr.logger.Info("no new migrations to apply", "version", version)
		return nil
	}
	if err != nil {
		return fmt.Errorf("migration failed: %w", err)
	}

	newVersion, _, err := m.Version()
	if err != nil {
		return fmt.Errorf("failed to get new migration version: %w", err)
	}
	mr.logger.Info("applied migrations", "from_version", version, "to_version", newVersion)

	return nil
}

// LoadSeeds executes db/seeds/*.sql when SEED_DATABASE=true. A failing file
// is logged and skipped.
func (mr *MigrationRunner) LoadSeeds() error {
	if os.Getenv("SEED_DATABASE") != "true" {
		return nil
	}

	if _, err := os.Stat(mr.seedsPath); os.IsNotExist(err) {
		mr.logger.Warn("seeds directory not found, skipping", "path", mr.seedsPath)
		return nil
	}

	files, err := filepath.Glob(filepath.Join(mr.seedsPath, "*.sql"))
	if err != nil {
		return fmt.Errorf("failed to find seed files: %w", err)
	}

	for _, file := range files {
		content, err := os.ReadFile(file)
		if err != nil {
			return fmt.Errorf("failed to read seed file %s: %w", file, err)
		}

		if _, err := mr.db.Exec(string(content)); err != nil {
			mr.logger.Warn("failed to execute seed file", "file", filepath.Base(file), "error", err)
			continue
		}

		mr.logger.Info("executed seed file", "file", filepath.Base(file))
	}

	return nil
}

// GetMigrationStatus returns the current migration status
func (mr *MigrationRunner) GetMigrationStatus() (version uint, dirty bool, err error) {
	if _, err := os.Stat(mr.migrationsPath); os.IsNotExist(err) {
		return 0, false, fmt.Errorf("migrations directory not found")
	}

	m, err := mr.newMigrate()
	if err != nil {
		return 0, false, err
	}

	return m.Version()
}

// RunMigrationsIfEnabled runs migrations if AUTO_MIGRATE is set to true
func RunMigrationsIfEnabled(db *sql.DB) error {
	if os.Getenv("AUTO_MIGRATE") != "true" {
		slog.Info("auto-migration disabled (AUTO_MIGRATE != true)")
		return nil
	}

	runner := NewMigrationRunner(db)

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(maxRetries)*retryInterval)
	defer cancel()

	if err := runner.WaitForDatabase(ctx); err != nil {
		return fmt.Errorf("database readiness check failed: %w", err)
	}

	if err := runner.RunMigrations(); err != nil {
		return fmt.Errorf("migration execution failed: %w", err)
	}

	if err := runner.LoadSeeds(); err != nil {
		slog.Warn("seed data loading failed", "error", err)
	}

	return nil
}
