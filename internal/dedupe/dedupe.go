// Package dedupe rewrites colliding contact names so that the name column can
// carry a unique index. It operates through the narrow Store interface rather
// than the full contact model, so a later reshaping of the contacts table
// cannot break the repair logic baked into an old migration.
package dedupe

import (
	"context"
	"fmt"
	"sort"

	"github.com/rs/zerolog"
)

// Record is the minimal projection of a stored row the deduplicator needs.
type Record struct {
	ID   uint
	Name string
}

// Store is the data access surface the deduplicator runs against.
// Implementations must return records from FindByName in ascending ID order
// so that repeated runs over the same data produce the same renames.
type Store interface {
	// DistinctNames returns every distinct name currently present
	DistinctNames(ctx context.Context) ([]string, error)

	// FindByName returns all records whose name equals the given value,
	// ordered by ascending ID
	FindByName(ctx context.Context, name string) ([]Record, error)

	// UpdateName persists a new name for the record with the given ID
	UpdateName(ctx context.Context, id uint, name string) error
}

// Rename describes a single pending name change produced by Plan.
type Rename struct {
	ID      uint
	OldName string
	NewName string
}

// Plan computes the renames required to make every name unique, without
// writing anything. For each group of records sharing a name, the record
// with the lowest ID keeps the original value and every other member is
// assigned "name (k)" with k counting up from 1. Candidate suffixes that
// would collide with a name already present (for example a pre-existing
// "Joe (1)" alongside a colliding "Joe" group) are skipped, so the plan
// is always collision free as a whole.
func Plan(ctx context.Context, store Store) ([]Rename, error) {
	names, err := store.DistinctNames(ctx)
	if err != nil {
		return nil, WrapStoreReadError("distinct name read", err)
	}

	// Process groups in sorted order so the plan does not depend on the
	// store's iteration order.
	sort.Strings(names)

	taken := make(map[string]struct{}, len(names))
	for _, name := range names {
		taken[name] = struct{}{}
	}

	var renames []Rename
	for _, name := range names {
		records, err := store.FindByName(ctx, name)
		if err != nil {
			return nil, WrapStoreReadError(fmt.Sprintf("record read for name '%s'", name), err)
		}

		if len(records) < 2 {
			continue
		}

		// First record keeps the original name
		suffix := 1
		for _, record := range records[1:] {
			candidate := fmt.Sprintf("%s (%d)", name, suffix)
			for {
				if _, exists := taken[candidate]; !exists {
					break
				}
				suffix++
				candidate = fmt.Sprintf("%s (%d)", name, suffix)
			}

			renames = append(renames, Rename{
				ID:      record.ID,
				OldName: record.Name,
				NewName: candidate,
			})
			taken[candidate] = struct{}{}
			suffix++
		}
	}

	return renames, nil
}

// Deduplicate plans and applies the renames, returning the number applied.
// Renames are persisted one at a time in plan order; the first write failure
// aborts the run and is surfaced as a StoreWriteError. Renames persisted
// before the failure are not undone here, the caller decides whether the
// whole operation runs inside a transaction.
func Deduplicate(ctx context.Context, store Store, logger zerolog.Logger) (int, error) {
	renames, err := Plan(ctx, store)
	if err != nil {
		return 0, err
	}

	if len(renames) == 0 {
		logger.Info().Msg("No duplicate names found, nothing to do")
		return 0, nil
	}

	applied := 0
	for _, rename := range renames {
		if err := store.UpdateName(ctx, rename.ID, rename.NewName); err != nil {
			return applied, WrapStoreWriteError(rename.ID, rename.NewName, err)
		}

		logger.Debug().
			Uint("id", rename.ID).
			Str("old_name", rename.OldName).
			Str("new_name", rename.NewName).
			Msg("Renamed duplicate")

		applied++
	}

	logger.Info().
		Int("renamed", applied).
		Msg("Deduplication completed")

	return applied, nil
}
