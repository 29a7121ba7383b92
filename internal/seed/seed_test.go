package seed

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/ksred/contact-registry/internal/utils"
)

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	err = db.Exec(`
		CREATE TABLE contacts (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			name TEXT NOT NULL,
			email TEXT,
			tags TEXT,
			metadata TEXT,
			created_at DATETIME,
			updated_at DATETIME
		)
	`).Error
	require.NoError(t, err)

	return db
}

func seededNames(t *testing.T, db *gorm.DB) []string {
	t.Helper()
	var names []string
	require.NoError(t, db.Raw("SELECT name FROM contacts ORDER BY id").Scan(&names).Error)
	return names
}

func TestSeeder_Seed(t *testing.T) {
	ctx := context.Background()
	log := zerolog.New(nil).Level(zerolog.Disabled)

	t.Run("Creates the requested number of contacts", func(t *testing.T) {
		db := setupTestDB(t)
		seeder := NewSeeder(db, log)

		created, err := seeder.Seed(ctx, 50)
		require.NoError(t, err)
		assert.Equal(t, 50, created)

		var count int64
		require.NoError(t, db.Table("contacts").Count(&count).Error)
		assert.EqualValues(t, 50, count)
	})

	t.Run("Produces duplicate names", func(t *testing.T) {
		// The whole point of the seeder is to create the colliding
		// pre-state the dedupe migration repairs
		db := setupTestDB(t)
		seeder := NewSeeder(db, log)

		_, err := seeder.Seed(ctx, 50)
		require.NoError(t, err)

		names := seededNames(t, db)
		distinct := make(map[string]bool)
		for _, n := range names {
			distinct[n] = true
		}
		assert.Less(t, len(distinct), len(names))
	})

	t.Run("Deterministic across fresh seeders", func(t *testing.T) {
		db1 := setupTestDB(t)
		db2 := setupTestDB(t)

		_, err := NewSeeder(db1, log).Seed(ctx, 30)
		require.NoError(t, err)
		_, err = NewSeeder(db2, log).Seed(ctx, 30)
		require.NoError(t, err)

		assert.Equal(t, seededNames(t, db1), seededNames(t, db2))
	})

	t.Run("Rejects non-positive count", func(t *testing.T) {
		db := setupTestDB(t)
		seeder := NewSeeder(db, log)

		_, err := seeder.Seed(ctx, 0)
		require.Error(t, err)
		assert.True(t, utils.IsValidationError(err))
	})
}

func TestSeeder_Reset(t *testing.T) {
	ctx := context.Background()
	log := zerolog.New(nil).Level(zerolog.Disabled)
	db := setupTestDB(t)
	seeder := NewSeeder(db, log)

	_, err := seeder.Seed(ctx, 10)
	require.NoError(t, err)

	require.NoError(t, seeder.Reset(ctx))

	var count int64
	require.NoError(t, db.Table("contacts").Count(&count).Error)
	assert.Zero(t, count)
}
