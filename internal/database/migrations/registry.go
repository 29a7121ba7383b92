package migrations

import (
	"github.com/ksred/contact-registry/internal/database"
)

// GetMigrations returns all registered migrations
func GetMigrations() []database.Migration {
	return []database.Migration{
		{
			Version: "20240301_001",
			Name:    "create_contacts",
			Run:     CreateContacts,
		},
		{
			Version: "20240301_002",
			Name:    "dedupe_contact_names",
			Run:     DedupeContactNames,
		},
		{
			Version: "20240301_003",
			Name:    "add_unique_contact_names",
			Run:     AddUniqueContactNames,
		},
	}
}
