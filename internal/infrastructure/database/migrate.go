package database

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/golang-migrate/migrate/v4"
	migratedb "github.com/golang-migrate/migrate/v4/database"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/Conte777/tweetfeed/config"
)

// SourceURL turns a migrations directory into a golang-migrate source URL
func SourceURL(dir string) (string, error) {
	if dir == "" {
		dir = "migrations"
	}
	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("invalid migrations path %q: %w", dir, err)
	}
	return "file://" + filepath.ToSlash(abs), nil
}

// RunMigrations applies pending migrations and returns the resulting schema version
func RunMigrations(db *gorm.DB, cfg *config.DatabaseConfig) (uint, error) {
	sqlDB, err := db.DB()
	if err != nil {
		return 0, fmt.Errorf("failed to get sql.DB: %w", err)
	}

	driver, err := postgres.WithInstance(sqlDB, &postgres.Config{})
	if err != nil {
		return 0, fmt.Errorf("failed to create migrate driver: %w", err)
	}

	source, err := SourceURL(cfg.MigrationsPath)
	if err != nil {
		return 0, err
	}

	m, err := migrate.NewWithDatabaseInstance(source, cfg.DBName, driver)
	if err != nil {
		return 0, fmt.Errorf("failed to init migrate: %w", err)
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return 0, fmt.Errorf("migration failed: %w", err)
	}

	version, dirty, err := m.Version()
	if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
		return 0, fmt.Errorf("failed to read schema version: %w", err)
	}
	if dirty {
		return version, fmt.Errorf("schema version %d is dirty", version)
	}

	return version, nil
}

// IsLockContention reports whether a migration failed only because another
// instance holds the migration lock
func IsLockContention(err error) bool {
	return errors.Is(err, migrate.ErrLockTimeout) || errors.Is(err, migratedb.ErrLocked)
}

// checkMigrations decides whether a migration outcome may continue startup.
// Lock contention is logged and tolerated; any other failure is returned.
func checkMigrations(version uint, err error, logger zerolog.Logger) error {
	switch {
	case err == nil:
		logger.Info().Uint("version", version).Msg("Database migrations completed successfully")
		return nil
	case IsLockContention(err):
		logger.Warn().Err(err).Msg("Migration lock held by another instance, skipping migrations")
		return nil
	default:
		return err
	}
}
