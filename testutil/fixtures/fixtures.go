// Package fixtures holds the seed data of the recently-seen-dragons test scenarios.
//
// Every function returns a fresh slice, so no test can change what another test sees.
package fixtures

import (
	"time"

	"github.com/google/uuid"

	"github.com/AntonStoeckl/recently-seen-dragons/core"
	"github.com/AntonStoeckl/recently-seen-dragons/shell/dragons"
)

const (
	Balthazar = "Balthazar"
	NivMizzet = "Niv-Mizzet"
	Ben       = "Ben"
	Bahamut   = "Bahamut"

	// FarAwayRealmID is the realm Ben lives in.
	FarAwayRealmID core.RealmID = 9999

	// UnknownRealmID is a realm without any dragons or sightings.
	UnknownRealmID core.RealmID = 42
)

// ThirtyDays is the default recency threshold.
const ThirtyDays = 30 * 24 * time.Hour

// DragonRecords returns the dragons known to the relational source.
func DragonRecords() []dragons.Record {
	return []dragons.Record{
		{Name: Balthazar, RealmID: core.MainRealmID},
		{Name: NivMizzet, RealmID: core.MainRealmID},
		{Name: Ben, RealmID: FarAwayRealmID},
	}
}

// EvergreenDragons returns the dragons that are known in every realm.
func EvergreenDragons() []core.DragonNameString {
	return []core.DragonNameString{Bahamut}
}

// Sightings returns one sighting of Niv-Mizzet in the main realm, one hour before now.
func Sightings(now time.Time) []core.DragonSighting {
	return []core.DragonSighting{
		core.BuildDragonSighting(uuid.New(), NivMizzet, core.MainRealmID, now.Add(-time.Hour)),
	}
}
