// Package seed populates the registry with sample contacts. The name pool is
// deliberately small so that seeded data contains duplicate names, which is
// the pre-state the deduplication migration exists to repair.
package seed

import (
	"context"
	"fmt"
	"math/rand"

	"github.com/lib/pq"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/ksred/contact-registry/internal/models"
	"github.com/ksred/contact-registry/internal/utils"
)

var firstNames = []string{
	"Joe", "Jane", "Alex", "Sam", "Maria", "Chen", "Priya", "Omar",
}

var lastNames = []string{
	"Smith", "Doe", "Nkosi", "Okafor", "Meyer", "Botha",
}

var tagPool = []string{
	"lead", "customer", "supplier", "vip", "inactive",
}

// Seeder inserts deterministic sample contacts
type Seeder struct {
	db     *gorm.DB
	logger zerolog.Logger
	rng    *rand.Rand
}

// NewSeeder creates a seeder with a fixed random source so repeated runs
// against a fresh database produce identical data
func NewSeeder(db *gorm.DB, logger zerolog.Logger) *Seeder {
	return &Seeder{
		db:     db,
		logger: logger,
		rng:    rand.New(rand.NewSource(42)),
	}
}

// Seed inserts count sample contacts and returns how many were created
func (s *Seeder) Seed(ctx context.Context, count int) (int, error) {
	if count <= 0 {
		return 0, utils.WrapValidationError("count", "must be greater than 0")
	}

	contacts := make([]models.Contact, 0, count)
	for i := 0; i < count; i++ {
		first := firstNames[s.rng.Intn(len(firstNames))]
		last := lastNames[s.rng.Intn(len(lastNames))]

		contact := models.Contact{
			Name:  fmt.Sprintf("%s %s", first, last),
			Email: fmt.Sprintf("%s.%s.%d@example.com", first, last, i),
			Tags:  pq.StringArray{tagPool[s.rng.Intn(len(tagPool))]},
		}
		contacts = append(contacts, contact)
	}

	if err := s.db.WithContext(ctx).CreateInBatches(contacts, 100).Error; err != nil {
		return 0, utils.WrapDatabaseError("seed contacts", err)
	}

	s.logger.Info().
		Int("count", len(contacts)).
		Msg("Seeded sample contacts")

	return len(contacts), nil
}

// Reset removes all contacts so a seed run starts from a clean table
func (s *Seeder) Reset(ctx context.Context) error {
	if err := s.db.WithContext(ctx).Exec("DELETE FROM contacts").Error; err != nil {
		return utils.WrapDatabaseError("reset contacts", err)
	}

	s.logger.Info().Msg("Removed all contacts")
	return nil
}
