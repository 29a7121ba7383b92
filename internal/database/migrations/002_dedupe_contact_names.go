package migrations

import (
	"context"

	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/ksred/contact-registry/internal/dedupe"
)

// DedupeContactNames repairs duplicated contact names ahead of the unique
// index: within each group of contacts sharing a name, the oldest keeps it
// and the rest are renamed with a numeric suffix. The runner wraps this in a
// transaction, so a failed run leaves no partial renames behind.
func DedupeContactNames(ctx context.Context, db *gorm.DB, logger zerolog.Logger) error {
	logger.Info().Msg("Deduplicating contact names")

	store := dedupe.NewGormStore(db)
	renamed, err := dedupe.Deduplicate(ctx, store, logger)
	if err != nil {
		return err
	}

	logger.Info().
		Int("renamed", renamed).
		Msg("Contact name deduplication finished")

	return nil
}
