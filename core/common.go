package core

import (
	"time"
)

// Instead of implementing full value objects, I'm using some alias types and helper methods here ...

// RealmID identifies the realm (partition) a dragon lives in or was sighted in.
type RealmID = int

// MainRealmID is the realm that is queried when nothing else is specified.
const MainRealmID RealmID = 1

// DragonNameString is the natural key of a dragon within a realm.
type DragonNameString = string

// SeenOn represents when a dragon was sighted
type SeenOn = time.Time

// ToSeenOn converts a time to SeenOn with UTC normalization and microsecond precision
func ToSeenOn(t time.Time) SeenOn {
	return t.UTC().Truncate(time.Microsecond)
}
