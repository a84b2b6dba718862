package sightings_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AntonStoeckl/recently-seen-dragons/core"
	"github.com/AntonStoeckl/recently-seen-dragons/shell/sightings"
	"github.com/AntonStoeckl/recently-seen-dragons/testutil/fixtures"
)

func Test_InMemoryRepository_FindSightingsByRealm(t *testing.T) {
	// arrange
	now := time.Now()
	all := append(
		fixtures.Sightings(now),
		core.BuildDragonSighting(uuid.New(), fixtures.Ben, fixtures.FarAwayRealmID, now),
	)
	repo, err := sightings.NewInMemoryRepository(all...)
	require.NoError(t, err)

	// act
	mainRealm, mainErr := repo.FindSightingsByRealm(t.Context(), core.MainRealmID)
	unknownRealm, unknownErr := repo.FindSightingsByRealm(t.Context(), fixtures.UnknownRealmID)

	// assert
	require.NoError(t, mainErr)
	require.NoError(t, unknownErr)
	require.Len(t, mainRealm, 1)
	assert.Equal(t, fixtures.NivMizzet, mainRealm[0].DragonName)
	assert.NotNil(t, unknownRealm)
	assert.Empty(t, unknownRealm)
}

func Test_NewInMemoryRepository_WithEmptyDragonName_Fails(t *testing.T) {
	_, err := sightings.NewInMemoryRepository(core.BuildDragonSighting(uuid.New(), "", core.MainRealmID, time.Now()))

	assert.ErrorIs(t, err, sightings.ErrEmptyDragonName)
}
