package recentlyseen

import (
	"time"

	"github.com/AntonStoeckl/recently-seen-dragons/core"
)

// FilterByLastSeen returns the dragons that were sighted within threshold before now.
// It reads the clock exactly once and delegates to FilterByLastSeenAt.
func FilterByLastSeen(allDragons core.Dragons, sightings []core.DragonSighting, threshold time.Duration) core.Dragons {
	return FilterByLastSeenAt(allDragons, sightings, threshold, time.Now())
}

// FilterByLastSeenAt implements the recency logic as a pure function with no side effects.
//
// Query Logic:
//
//	GIVEN: All dragons of a realm and all sightings of that realm
//	WHEN: the cutoff is now minus threshold
//	THEN: the dragons with at least one sighting strictly after the cutoff are returned
//	INCLUDES: each qualifying dragon exactly once, in the order of allDragons
//	EXCLUDES: sightings at or before the cutoff, sightings of dragons not contained in allDragons
func FilterByLastSeenAt(
	allDragons core.Dragons,
	sightings []core.DragonSighting,
	threshold time.Duration,
	now time.Time,
) core.Dragons {

	cutoff := now.Add(-threshold)

	seenRecently := make(map[core.DragonNameString]struct{})
	for _, sighting := range sightings {
		if sighting.SeenOn.After(cutoff) {
			seenRecently[sighting.DragonName] = struct{}{}
		}
	}

	result := make(core.Dragons, 0, len(seenRecently))
	if len(seenRecently) == 0 {
		return result
	}

	for _, dragon := range allDragons {
		if _, ok := seenRecently[dragon.Name]; ok {
			result = append(result, dragon)
			delete(seenRecently, dragon.Name) // a dragon listed twice must not show up twice
		}
	}

	return result
}
