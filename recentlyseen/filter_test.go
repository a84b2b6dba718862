package recentlyseen_test

import (
	"math/rand/v2"
	"slices"
	"strconv"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/AntonStoeckl/recently-seen-dragons/core"
	"github.com/AntonStoeckl/recently-seen-dragons/recentlyseen"
)

var fakeNow = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func dragonsNamed(names ...string) core.Dragons {
	dragons := make(core.Dragons, 0, len(names))
	for _, name := range names {
		dragons = append(dragons, core.BuildDragon(name))
	}

	return dragons
}

func seen(name string, at time.Time) core.DragonSighting {
	return core.BuildDragonSighting(uuid.New(), name, core.MainRealmID, at)
}

func Test_FilterByLastSeenAt(t *testing.T) {
	threshold := 24 * time.Hour
	cutoff := fakeNow.Add(-threshold)

	testCases := []struct {
		description string
		dragons     core.Dragons
		sightings   []core.DragonSighting
		want        []string
	}{
		{
			description: "no sightings",
			dragons:     dragonsNamed("Balthazar", "Niv-Mizzet"),
			sightings:   nil,
			want:        []string{},
		},
		{
			description: "no dragons",
			dragons:     nil,
			sightings:   []core.DragonSighting{seen("Niv-Mizzet", fakeNow)},
			want:        []string{},
		},
		{
			description: "sighting within threshold",
			dragons:     dragonsNamed("Balthazar", "Niv-Mizzet"),
			sightings:   []core.DragonSighting{seen("Niv-Mizzet", fakeNow.Add(-time.Hour))},
			want:        []string{"Niv-Mizzet"},
		},
		{
			description: "sighting exactly at the cutoff",
			dragons:     dragonsNamed("Niv-Mizzet"),
			sightings:   []core.DragonSighting{seen("Niv-Mizzet", cutoff)},
			want:        []string{},
		},
		{
			description: "sighting one microsecond after the cutoff",
			dragons:     dragonsNamed("Niv-Mizzet"),
			sightings:   []core.DragonSighting{seen("Niv-Mizzet", cutoff.Add(time.Microsecond))},
			want:        []string{"Niv-Mizzet"},
		},
		{
			description: "sighting before the cutoff",
			dragons:     dragonsNamed("Balthazar"),
			sightings:   []core.DragonSighting{seen("Balthazar", cutoff.Add(-time.Hour))},
			want:        []string{},
		},
		{
			description: "sighting of an unknown dragon",
			dragons:     dragonsNamed("Balthazar"),
			sightings:   []core.DragonSighting{seen("Smaug", fakeNow)},
			want:        []string{},
		},
		{
			description: "several sightings of the same dragon",
			dragons:     dragonsNamed("Balthazar", "Niv-Mizzet"),
			sightings: []core.DragonSighting{
				seen("Niv-Mizzet", fakeNow.Add(-time.Hour)),
				seen("Niv-Mizzet", fakeNow.Add(-2*time.Hour)),
				seen("Niv-Mizzet", cutoff.Add(-time.Hour)),
			},
			want: []string{"Niv-Mizzet"},
		},
		{
			description: "dragon listed twice",
			dragons:     dragonsNamed("Niv-Mizzet", "Niv-Mizzet"),
			sightings:   []core.DragonSighting{seen("Niv-Mizzet", fakeNow)},
			want:        []string{"Niv-Mizzet"},
		},
		{
			description: "result keeps the order of the dragons",
			dragons:     dragonsNamed("Bahamut", "Balthazar", "Niv-Mizzet"),
			sightings: []core.DragonSighting{
				seen("Niv-Mizzet", fakeNow),
				seen("Bahamut", fakeNow),
			},
			want: []string{"Bahamut", "Niv-Mizzet"},
		},
		{
			description: "sighting in the future",
			dragons:     dragonsNamed("Niv-Mizzet"),
			sightings:   []core.DragonSighting{seen("Niv-Mizzet", fakeNow.Add(time.Hour))},
			want:        []string{"Niv-Mizzet"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.description, func(t *testing.T) {
			// act
			result := recentlyseen.FilterByLastSeenAt(tc.dragons, tc.sightings, threshold, fakeNow)

			// assert
			assert.NotNil(t, result)
			assert.Equal(t, tc.want, core.DragonNames(result))
		})
	}
}

func Test_FilterByLastSeenAt_ZeroThreshold_ExcludesSightingsAtNow(t *testing.T) {
	// arrange
	dragons := dragonsNamed("Niv-Mizzet")
	sightings := []core.DragonSighting{seen("Niv-Mizzet", fakeNow), seen("Niv-Mizzet", fakeNow.Add(-time.Hour))}

	// act
	result := recentlyseen.FilterByLastSeenAt(dragons, sightings, 0, fakeNow)

	// assert
	assert.Empty(t, result)
}

func Test_FilterByLastSeen_UsesTheCurrentTime(t *testing.T) {
	// arrange
	now := time.Now()
	dragons := dragonsNamed("Balthazar", "Niv-Mizzet")
	sightings := []core.DragonSighting{
		seen("Niv-Mizzet", now.Add(-time.Hour)),
		seen("Balthazar", now.Add(-48*time.Hour)),
	}

	// act
	result := recentlyseen.FilterByLastSeen(dragons, sightings, 24*time.Hour)

	// assert
	assert.Equal(t, []string{"Niv-Mizzet"}, core.DragonNames(result))
}

func Test_FilterByLastSeenAt_Properties(t *testing.T) {
	rnd := rand.New(rand.NewPCG(42, 1024)) //nolint:gosec
	threshold := 7 * 24 * time.Hour

	for i := range 200 {
		// arrange
		var dragons core.Dragons
		for j := range rnd.IntN(8) {
			dragons = append(dragons, core.BuildDragon("dragon-"+strconv.Itoa(j)))
		}

		var sightings []core.DragonSighting
		for range rnd.IntN(12) {
			name := "dragon-" + strconv.Itoa(rnd.IntN(10)) // some names are unknown
			offset := time.Duration(rnd.IntN(14*24)) * time.Hour
			sightings = append(sightings, seen(name, fakeNow.Add(-offset)))
		}

		// act
		result := recentlyseen.FilterByLastSeenAt(dragons, sightings, threshold, fakeNow)

		// assert
		for _, dragon := range result {
			assert.Contains(t, dragons, dragon, "run %d: result must be a subset of the dragons", i)
		}

		names := core.DragonNames(result)
		assert.Len(t, slices.Compact(slices.Sorted(slices.Values(names))), len(names), "run %d: every dragon at most once", i)

		again := recentlyseen.FilterByLastSeenAt(result, sightings, threshold, fakeNow)
		assert.Equal(t, result, again, "run %d: filtering must be idempotent", i)

		assert.Empty(t, recentlyseen.FilterByLastSeenAt(dragons, nil, threshold, fakeNow), "run %d", i)
	}
}
