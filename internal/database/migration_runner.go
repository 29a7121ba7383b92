package database

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/ksred/contact-registry/internal/models"
)

// MigrationFunc is a function that performs a migration
type MigrationFunc func(ctx context.Context, db *gorm.DB, logger zerolog.Logger) error

// Migration represents a migration to be run
type Migration struct {
	Version string
	Name    string
	Run     MigrationFunc
}

// MigrationRunner handles running database migrations. Migrations run
// sequentially in version order, each inside its own transaction, and are
// recorded in the schema_migrations table so a rerun skips them.
type MigrationRunner struct {
	db         *gorm.DB
	logger     zerolog.Logger
	migrations []Migration
}

// NewMigrationRunner creates a new migration runner
func NewMigrationRunner(db *gorm.DB, logger zerolog.Logger) *MigrationRunner {
	return &MigrationRunner{
		db:         db,
		logger:     logger,
		migrations: []Migration{},
	}
}

// Register adds a migration to the runner
func (r *MigrationRunner) Register(migration Migration) {
	r.migrations = append(r.migrations, migration)
}

// appliedVersions returns the set of already-applied migration versions
func (r *MigrationRunner) appliedVersions(ctx context.Context) (map[string]bool, error) {
	var applied []string
	if err := r.db.WithContext(ctx).Model(&models.Migration{}).Pluck("version", &applied).Error; err != nil {
		return nil, fmt.Errorf("failed to get applied migrations: %w", err)
	}

	appliedMap := make(map[string]bool, len(applied))
	for _, v := range applied {
		appliedMap[v] = true
	}
	return appliedMap, nil
}

// Run executes all pending migrations
func (r *MigrationRunner) Run(ctx context.Context) error {
	// Ensure migrations table exists
	if err := r.db.AutoMigrate(&models.Migration{}); err != nil {
		return fmt.Errorf("failed to create migrations table: %w", err)
	}

	// Sort migrations by version
	sort.Slice(r.migrations, func(i, j int) bool {
		return r.migrations[i].Version < r.migrations[j].Version
	})

	applied, err := r.appliedVersions(ctx)
	if err != nil {
		return err
	}

	for _, migration := range r.migrations {
		if applied[migration.Version] {
			r.logger.Debug().
				Str("version", migration.Version).
				Str("name", migration.Name).
				Msg("Migration already applied, skipping")
			continue
		}

		r.logger.Info().
			Str("version", migration.Version).
			Str("name", migration.Name).
			Msg("Running migration")

		tx := r.db.WithContext(ctx).Begin()
		if tx.Error != nil {
			return fmt.Errorf("failed to start transaction: %w", tx.Error)
		}

		if err := migration.Run(ctx, tx, r.logger); err != nil {
			tx.Rollback()
			return fmt.Errorf("migration %s failed: %w", migration.Version, err)
		}

		record := &models.Migration{
			Version:   migration.Version,
			Name:      migration.Name,
			AppliedAt: time.Now(),
		}

		if err := tx.Create(record).Error; err != nil {
			tx.Rollback()
			return fmt.Errorf("failed to record migration %s: %w", migration.Version, err)
		}

		if err := tx.Commit().Error; err != nil {
			return fmt.Errorf("failed to commit migration %s: %w", migration.Version, err)
		}

		r.logger.Info().
			Str("version", migration.Version).
			Str("name", migration.Name).
			Msg("Migration completed successfully")
	}

	return nil
}

// GetPendingMigrations returns a list of migrations that haven't been applied yet
func (r *MigrationRunner) GetPendingMigrations(ctx context.Context) ([]Migration, error) {
	if err := r.db.AutoMigrate(&models.Migration{}); err != nil {
		return nil, fmt.Errorf("failed to create migrations table: %w", err)
	}

	applied, err := r.appliedVersions(ctx)
	if err != nil {
		return nil, err
	}

	sort.Slice(r.migrations, func(i, j int) bool {
		return r.migrations[i].Version < r.migrations[j].Version
	})

	var pending []Migration
	for _, migration := range r.migrations {
		if !applied[migration.Version] {
			pending = append(pending, migration)
		}
	}

	return pending, nil
}
