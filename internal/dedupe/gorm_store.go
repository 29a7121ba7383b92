package dedupe

import (
	"context"

	"gorm.io/gorm"

	"github.com/ksred/contact-registry/internal/models"
)

// GormStore adapts a gorm connection (or transaction) to the Store interface.
type GormStore struct {
	db *gorm.DB
}

// NewGormStore creates a store backed by the given gorm handle
func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

// DistinctNames returns every distinct contact name
func (s *GormStore) DistinctNames(ctx context.Context) ([]string, error) {
	var names []string
	err := s.db.WithContext(ctx).
		Model(&models.Contact{}).
		Distinct("name").
		Order("name").
		Pluck("name", &names).Error
	if err != nil {
		return nil, err
	}
	return names, nil
}

// FindByName returns all contacts with the given name, oldest ID first
func (s *GormStore) FindByName(ctx context.Context, name string) ([]Record, error) {
	var records []Record
	err := s.db.WithContext(ctx).
		Model(&models.Contact{}).
		Select("id", "name").
		Where("name = ?", name).
		Order("id ASC").
		Find(&records).Error
	if err != nil {
		return nil, err
	}
	return records, nil
}

// UpdateName persists a new name for the contact with the given ID.
// The update is issued directly so no other column is touched.
func (s *GormStore) UpdateName(ctx context.Context, id uint, name string) error {
	return s.db.WithContext(ctx).
		Exec("UPDATE contacts SET name = ? WHERE id = ?", name, id).Error
}
