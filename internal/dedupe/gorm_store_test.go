package dedupe

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupTestDB creates an in-memory SQLite database for testing
func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	// Create table manually without postgres-specific column types
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

	err = db.Exec(`CREATE INDEX idx_contacts_name ON contacts(name)`).Error
	require.NoError(t, err)

	return db
}

func insertContact(t *testing.T, db *gorm.DB, name, email string) {
	t.Helper()
	err := db.Exec(
		"INSERT INTO contacts (name, email, created_at, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP, CURRENT_TIMESTAMP)",
		name, email,
	).Error
	require.NoError(t, err)
}

func TestGormStore_DistinctNames(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	store := NewGormStore(db)

	insertContact(t, db, "Joe", "joe@example.com")
	insertContact(t, db, "Joe", "joe2@example.com")
	insertContact(t, db, "Jane", "jane@example.com")

	names, err := store.DistinctNames(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"Jane", "Joe"}, names)
}

func TestGormStore_FindByName(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	store := NewGormStore(db)

	insertContact(t, db, "Joe", "joe@example.com")
	insertContact(t, db, "Jane", "jane@example.com")
	insertContact(t, db, "Joe", "joe2@example.com")

	records, err := store.FindByName(ctx, "Joe")
	require.NoError(t, err)

	require.Len(t, records, 2)
	assert.Equal(t, uint(1), records[0].ID)
	assert.Equal(t, uint(3), records[1].ID)
	for _, r := range records {
		assert.Equal(t, "Joe", r.Name)
	}
}

func TestGormStore_UpdateName(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	store := NewGormStore(db)

	insertContact(t, db, "Joe", "joe@example.com")

	err := store.UpdateName(ctx, 1, "Joe (1)")
	require.NoError(t, err)

	var name, email string
	err = db.Raw("SELECT name, email FROM contacts WHERE id = 1").Row().Scan(&name, &email)
	require.NoError(t, err)
	assert.Equal(t, "Joe (1)", name)
	// Only the name column may change
	assert.Equal(t, "joe@example.com", email)
}

func TestDeduplicate_GormStore(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	store := NewGormStore(db)
	log := zerolog.New(nil).Level(zerolog.Disabled)

	insertContact(t, db, "Joe", "joe1@example.com")
	insertContact(t, db, "Joe", "joe2@example.com")
	insertContact(t, db, "Joe", "joe3@example.com")
	insertContact(t, db, "Jane", "jane1@example.com")
	insertContact(t, db, "Jane", "jane2@example.com")

	applied, err := Deduplicate(ctx, store, log)
	require.NoError(t, err)
	assert.Equal(t, 3, applied)

	var names []string
	err = db.Raw("SELECT name FROM contacts ORDER BY id").Scan(&names).Error
	require.NoError(t, err)
	assert.Equal(t, []string{"Joe", "Joe (1)", "Joe (2)", "Jane", "Jane (1)"}, names)

	// A second run has nothing left to do
	applied, err = Deduplicate(ctx, store, log)
	require.NoError(t, err)
	assert.Zero(t, applied)
}
