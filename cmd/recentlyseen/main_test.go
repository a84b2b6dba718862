package main

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AntonStoeckl/recently-seen-dragons/shell/config"
	"github.com/AntonStoeckl/recently-seen-dragons/testutil/pgtest"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var stdout, stderr bytes.Buffer
	cmd := newRootCommand()
	cmd.SetArgs(args)
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)

	err := cmd.ExecuteContext(t.Context())

	return stdout.String(), err
}

func lines(output string) []string {
	return strings.Fields(output)
}

func Test_Commands_EndToEnd(t *testing.T) {
	// setup
	dsn := pgtest.DSN(t)
	t.Chdir(t.TempDir())
	t.Setenv("RECENTLYSEEN_EVENTSTORE_TABLE", pgtest.UniqueTableName("events"))
	t.Setenv("RECENTLYSEEN_DRAGONS_TABLE", pgtest.UniqueTableName("dragons"))

	for _, driver := range []string{config.DriverPGX, config.DriverSQLX, config.DriverSQL} {
		t.Run(driver, func(t *testing.T) {
			common := []string{"--dsn", dsn, "--driver", driver}
			realm := "--realm=" + realmFor(driver)

			// arrange
			_, err := run(t, append([]string{"init-schema"}, common...)...)
			require.NoError(t, err)

			_, err = run(t, append([]string{"add-dragon", realm, "Balthazar", "Niv-Mizzet"}, common...)...)
			require.NoError(t, err)

			_, err = run(t, append([]string{"sight", realm, "Niv-Mizzet", "--at", time.Now().Add(-time.Hour).Format(time.RFC3339)}, common...)...)
			require.NoError(t, err)

			_, err = run(t, append([]string{"sight", realm, "Balthazar", "--at", time.Now().Add(-60 * 24 * time.Hour).Format(time.RFC3339)}, common...)...)
			require.NoError(t, err)

			// act
			recent, recentErr := run(t, append([]string{"find", realm}, common...)...)
			zero, zeroErr := run(t, append([]string{"find", realm, "--threshold", "0s"}, common...)...)
			wide, wideErr := run(t, append([]string{"find", realm, "--threshold", "2160h", "--json"}, common...)...)

			// assert
			require.NoError(t, recentErr)
			require.NoError(t, zeroErr)
			require.NoError(t, wideErr)
			assert.Equal(t, []string{"Niv-Mizzet"}, lines(recent))
			assert.Empty(t, lines(zero))
			assert.JSONEq(t, `["Balthazar","Niv-Mizzet"]`, wide)
		})
	}
}

func realmFor(driver string) string {
	switch driver {
	case config.DriverSQLX:
		return "2"
	case config.DriverSQL:
		return "3"
	default:
		return "1"
	}
}

func Test_Commands_WithoutDSN_Fail(t *testing.T) {
	// arrange
	t.Chdir(t.TempDir())

	// act
	_, err := run(t, "find")

	// assert
	assert.ErrorIs(t, err, config.ErrMissingDSN)
}

func Test_Commands_WithUnknownDriver_Fail(t *testing.T) {
	// arrange
	t.Chdir(t.TempDir())

	// act
	_, err := run(t, "find", "--driver", "mongo")

	// assert
	assert.ErrorIs(t, err, config.ErrUnknownDriver)
}

func Test_SightCommand_WithInvalidTimestamp_Fails(t *testing.T) {
	// arrange
	t.Chdir(t.TempDir())

	// act
	_, err := run(t, "sight", "Niv-Mizzet", "--at", "yesterday")

	// assert
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--at")
}

func Test_AddDragonCommand_RequiresAName(t *testing.T) {
	// arrange
	t.Chdir(t.TempDir())

	// act
	_, err := run(t, "add-dragon")

	// assert
	assert.Error(t, err)
}

func Test_SeedCommand_RecordsTheRequestedNumberOfSightings(t *testing.T) {
	// setup
	dsn := pgtest.DSN(t)
	t.Chdir(t.TempDir())
	t.Setenv("RECENTLYSEEN_EVENTSTORE_TABLE", pgtest.UniqueTableName("events"))
	t.Setenv("RECENTLYSEEN_DRAGONS_TABLE", pgtest.UniqueTableName("dragons"))
	common := []string{"--dsn", dsn}

	_, err := run(t, append([]string{"init-schema"}, common...)...)
	require.NoError(t, err)

	// act
	output, err := run(t, append([]string{"seed", "--realms", "2", "--dragons", "3", "--sightings", "25", "--batch-size", "10", "--seed", "7"}, common...)...)

	// assert
	require.NoError(t, err)
	assert.Equal(t, "recorded 25 sightings\n", output)

	found, err := run(t, append([]string{"find", "--realm", "2", "--threshold", "2400h", "--json"}, common...)...)
	require.NoError(t, err)
	assert.Contains(t, found, "dragon-2-")
	assert.NotContains(t, found, "dragon-1-")
}

func Test_SeedCommand_WithInvalidOptions_Fails(t *testing.T) {
	_, err := seed(t.Context(), stores{}, seedOptions{realms: 0, dragonsPerRealm: 1, batchSize: 1, span: time.Hour}, time.Now())

	assert.Error(t, err)
}
