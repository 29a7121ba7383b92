package models

import (
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/lib/pq"
)

// Contact represents a single entry in the contact registry.
//
// Name carries a plain index today; the migration chain promotes it to a
// unique index once existing duplicates have been repaired.
type Contact struct {
	ID        uint            `gorm:"primaryKey" json:"id"`
	Name      string          `gorm:"index;not null" json:"name"`
	Email     string          `gorm:"index" json:"email,omitempty"`
	Tags      pq.StringArray  `gorm:"type:text[]" json:"tags,omitempty"`
	Metadata  json.RawMessage `gorm:"type:jsonb" json:"metadata,omitempty"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// TableName ensures consistent table naming
func (Contact) TableName() string {
	return "contacts"
}

// Validate checks that the contact is storable
func (c *Contact) Validate() error {
	if strings.TrimSpace(c.Name) == "" {
		return errors.New("contact name cannot be empty")
	}
	if c.Email != "" && !strings.Contains(c.Email, "@") {
		return errors.New("contact email must contain '@'")
	}
	return nil
}
