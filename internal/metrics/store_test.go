package metrics

import (
	"os"
	"testing"

	"github.com/Createman8/HogBalls-Upgrade-2.0/internal/database"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupTestDB creates a temporary file backed SQLite database for testing.
func setupTestDB(t *testing.T) (MetricsStore, func()) {
	t.Helper()

	tmpfile, err := os.CreateTemp("", "testdb_metrics_*.db")
	require.NoError(t, err)
	tmpfile.Close()

	db, dbTeardown, err := database.InitDB(tmpfile.Name(), "", "")
	require.NoError(t, err)

	store := New(db)

	teardown := func() {
		dbTeardown()
		os.Remove(tmpfile.Name())
	}

	return store, teardown
}

func TestIncrementAndGetAll(t *testing.T) {
	store, teardown := setupTestDB(t)
	defer teardown()

	metrics, err := store.GetAll()
	require.NoError(t, err)
	assert.Empty(t, metrics)

	store.Increment(KeyRoundsStarted)
	metrics, err = store.GetAll()
	require.NoError(t, err)
	assert.Equal(t, map[string]int{KeyRoundsStarted: 1}, metrics)

	store.Increment(KeyRoundsStarted)
	store.Increment(KeyHolesSubmitted)
	metrics, err = store.GetAll()
	require.NoError(t, err)
	assert.Equal(t, map[string]int{
		KeyRoundsStarted:  2,
		KeyHolesSubmitted: 1,
	}, metrics)
}
