package roster_test

import (
	"context"
	"testing"

	"github.com/mauv0809/swiss-ladder/internal/database"
	"github.com/mauv0809/swiss-ladder/internal/metrics"
	"github.com/mauv0809/swiss-ladder/internal/roster"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupTestDB creates a temporary in-memory SQLite database for testing.
func setupTestDB(t *testing.T) (roster.Service, *database.Gateway, *metrics.Mock) {
	t.Helper()

	gw, teardown, err := database.InitDB(context.Background(), database.Options{Path: ":memory:"})
	require.NoError(t, err)
	t.Cleanup(teardown)

	m := metrics.NewMock()
	return roster.New(gw, m), gw, m
}

func TestRegisterIncreasesCountByOne(t *testing.T) {
	store, _, m := setupTestDB(t)
	ctx := context.Background()

	names := []string{"Alice", "Bob", "Alice", "Zoë Ørsted", "  padded  ", "Robert'); DROP TABLE players;--"}
	for i, name := range names {
		before, err := store.Count(ctx)
		require.NoError(t, err)

		p, err := store.Register(ctx, name)
		require.NoError(t, err)
		assert.Equal(t, name, p.Name)
		assert.Zero(t, p.Wins)
		assert.Zero(t, p.Matches)
		assert.NotZero(t, p.ID)

		after, err := store.Count(ctx)
		require.NoError(t, err)
		assert.Equal(t, before+1, after, "registration %d should add exactly one player", i)
	}
	assert.Equal(t, len(names), m.PlayersRegistered())
}

func TestRegisterAssignsDistinctIDs(t *testing.T) {
	store, _, _ := setupTestDB(t)
	ctx := context.Background()

	first, err := store.Register(ctx, "Alice")
	require.NoError(t, err)
	second, err := store.Register(ctx, "Alice")
	require.NoError(t, err)

	assert.NotEqual(t, first.ID, second.ID, "duplicate names should still get their own ids")
}

func TestRegisterAcceptsAnyName(t *testing.T) {
	store, _, m := setupTestDB(t)
	ctx := context.Background()

	for i, name := range []string{"", "   ", "\t\n"} {
		p, err := store.Register(ctx, name)
		require.NoError(t, err)
		assert.Equal(t, name, p.Name)
		assert.Zero(t, p.Wins)
		assert.Zero(t, p.Matches)

		count, err := store.Count(ctx)
		require.NoError(t, err)
		assert.Equal(t, i+1, count, "every registration adds exactly one player")
	}
	assert.Equal(t, 3, m.PlayersRegistered())
}

func TestGetPlayer(t *testing.T) {
	store, _, _ := setupTestDB(t)
	ctx := context.Background()

	alice, err := store.Register(ctx, "Alice")
	require.NoError(t, err)

	t.Run("finds a registered player", func(t *testing.T) {
		p, err := store.Get(ctx, alice.ID)
		require.NoError(t, err)
		assert.Equal(t, alice, p)
	})

	t.Run("returns ErrPlayerNotFound for unknown ids", func(t *testing.T) {
		_, err := store.Get(ctx, alice.ID+100)
		assert.ErrorIs(t, err, roster.ErrPlayerNotFound)
	})
}

func TestListPlayers(t *testing.T) {
	store, _, _ := setupTestDB(t)
	ctx := context.Background()

	players, err := store.List(ctx)
	require.NoError(t, err)
	assert.NotNil(t, players, "an empty roster should be an empty slice")
	assert.Len(t, players, 0)

	for _, name := range []string{"Carol", "Alice", "Bob"} {
		_, err := store.Register(ctx, name)
		require.NoError(t, err)
	}

	players, err = store.List(ctx)
	require.NoError(t, err)
	require.Len(t, players, 3)
	assert.Equal(t, "Carol", players[0].Name, "players are listed in registration order")
	assert.Equal(t, "Bob", players[2].Name)
}

func TestClearRemovesPlayersAndMatches(t *testing.T) {
	store, gw, _ := setupTestDB(t)
	ctx := context.Background()

	alice, err := store.Register(ctx, "Alice")
	require.NoError(t, err)
	bob, err := store.Register(ctx, "Bob")
	require.NoError(t, err)
	_, err = gw.Exec(ctx, "INSERT INTO matches (winner_id, loser_id, recorded_at) VALUES (?, ?, 0)", alice.ID, bob.ID)
	require.NoError(t, err)

	require.NoError(t, store.Clear(ctx))

	count, err := store.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, count)

	var matches int
	require.NoError(t, gw.QueryRow(ctx, "SELECT COUNT(*) FROM matches").Scan(&matches))
	assert.Equal(t, 0, matches)

	// Clearing an empty roster is not an error.
	require.NoError(t, store.Clear(ctx))
}

func TestCountReportsStorageFailures(t *testing.T) {
	store, gw, _ := setupTestDB(t)
	require.NoError(t, gw.Close())

	count, err := store.Count(context.Background())
	assert.Error(t, err, "a failed count must not look like an empty roster")
	assert.Equal(t, 0, count)
}
