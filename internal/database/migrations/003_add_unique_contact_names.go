package migrations

import (
	"context"

	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

// AddUniqueContactNames promotes the name index to a unique one. If any
// duplicates survived the previous migration this fails with a constraint
// violation, which is the signal we want instead of silently keeping bad
// data.
func AddUniqueContactNames(ctx context.Context, db *gorm.DB, logger zerolog.Logger) error {
	logger.Info().Msg("Adding unique index on contact names")

	if db.Migrator().HasIndex("contacts", "idx_contacts_name_unique") {
		logger.Debug().Msg("Unique index already exists, skipping")
		return nil
	}

	if err := db.WithContext(ctx).Exec(`
		CREATE UNIQUE INDEX idx_contacts_name_unique
		ON contacts(name)
	`).Error; err != nil {
		return err
	}

	return nil
}
