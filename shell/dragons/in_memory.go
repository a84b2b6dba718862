package dragons

import (
	"context"
	"slices"

	"github.com/AntonStoeckl/recently-seen-dragons/core"
)

// InMemoryRepository serves dragons from a fixed set of records.
// The records are copied at construction, so the repository never changes afterward.
type InMemoryRepository struct {
	records []Record
}

// NewInMemoryRepository creates a new InMemoryRepository from the given records.
func NewInMemoryRepository(records ...Record) (InMemoryRepository, error) {
	for _, record := range records {
		if record.Name == "" {
			return InMemoryRepository{}, ErrEmptyDragonName
		}
	}

	return InMemoryRepository{records: slices.Clone(records)}, nil
}

// FindDragonsByRealm returns the dragons of the realm in record order, each name once.
func (r InMemoryRepository) FindDragonsByRealm(ctx context.Context, realmID core.RealmID) (core.Dragons, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	found := make(core.Dragons, 0)
	for _, record := range r.records {
		if record.RealmID != realmID {
			continue
		}

		if slices.ContainsFunc(found, func(d core.Dragon) bool { return d.Name == record.Name }) {
			continue
		}

		found = append(found, core.BuildDragon(record.Name))
	}

	return found, nil
}
