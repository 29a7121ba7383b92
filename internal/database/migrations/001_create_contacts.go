package migrations

import (
	"context"

	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/ksred/contact-registry/internal/models"
)

// CreateContacts creates the contacts table with a plain (non-unique) index
// on name. Uniqueness is only enforced once existing duplicates have been
// repaired by the following migrations.
func CreateContacts(ctx context.Context, db *gorm.DB, logger zerolog.Logger) error {
	logger.Info().Msg("Creating contacts table")

	if err := db.WithContext(ctx).AutoMigrate(&models.Contact{}); err != nil {
		return err
	}

	return nil
}
