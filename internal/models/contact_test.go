package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestContact_TableName(t *testing.T) {
	assert.Equal(t, "contacts", Contact{}.TableName())
}

func TestMigration_TableName(t *testing.T) {
	assert.Equal(t, "schema_migrations", Migration{}.TableName())
}

func TestContact_Validate(t *testing.T) {
	tests := []struct {
		name    string
		contact Contact
		wantErr string
	}{
		{
			name:    "Valid contact",
			contact: Contact{Name: "Joe Smith", Email: "joe@example.com"},
		},
		{
			name:    "Valid contact without email",
			contact: Contact{Name: "Jane Doe"},
		},
		{
			name:    "Empty name",
			contact: Contact{Name: ""},
			wantErr: "contact name cannot be empty",
		},
		{
			name:    "Whitespace-only name",
			contact: Contact{Name: "   "},
			wantErr: "contact name cannot be empty",
		},
		{
			name:    "Malformed email",
			contact: Contact{Name: "Joe", Email: "not-an-email"},
			wantErr: "contact email must contain '@'",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.contact.Validate()
			if tt.wantErr != "" {
				assert.EqualError(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
