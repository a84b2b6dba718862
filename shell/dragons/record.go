package dragons

import (
	"github.com/AntonStoeckl/recently-seen-dragons/core"
)

// Record is the stored form of a dragon: its name and the realm it lives in.
type Record struct {
	Name    core.DragonNameString `db:"name"`
	RealmID core.RealmID          `db:"realm_id"`
}

// BuildRecord creates a new Record.
func BuildRecord(name core.DragonNameString, realmID core.RealmID) (Record, error) {
	if name == "" {
		return Record{}, ErrEmptyDragonName
	}

	return Record{Name: name, RealmID: realmID}, nil
}
