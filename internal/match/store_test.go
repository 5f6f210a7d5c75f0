package match_test

import (
	"context"
	"sync"
	"testing"

	"github.com/mauv0809/swiss-ladder/internal/database"
	"github.com/mauv0809/swiss-ladder/internal/match"
	"github.com/mauv0809/swiss-ladder/internal/metrics"
	"github.com/mauv0809/swiss-ladder/internal/roster"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	matches match.Service
	players roster.Service
	metrics *metrics.Mock
	gw      *database.Gateway
}

func setupTestDB(t *testing.T) fixture {
	t.Helper()

	gw, teardown, err := database.InitDB(context.Background(), database.Options{Path: ":memory:"})
	require.NoError(t, err)
	t.Cleanup(teardown)

	m := metrics.NewMock()
	return fixture{
		matches: match.New(gw, m),
		players: roster.New(gw, m),
		metrics: m,
		gw:      gw,
	}
}

func register(t *testing.T, players roster.Service, names ...string) []int64 {
	t.Helper()
	ids := make([]int64, 0, len(names))
	for _, name := range names {
		p, err := players.Register(context.Background(), name)
		require.NoError(t, err)
		ids = append(ids, p.ID)
	}
	return ids
}

func TestRecordUpdatesBothPlayers(t *testing.T) {
	f := setupTestDB(t)
	ctx := context.Background()
	ids := register(t, f.players, "Alice", "Bob")

	res, err := f.matches.Record(ctx, ids[0], ids[1])
	require.NoError(t, err)

	assert.NotZero(t, res.Match.ID)
	assert.Equal(t, ids[0], res.Match.WinnerID)
	assert.Equal(t, ids[1], res.Match.LoserID)
	assert.False(t, res.Match.RecordedAt.IsZero())
	assert.Equal(t, match.Record{PlayerID: ids[0], Name: "Alice", Wins: 1, Matches: 1}, res.Winner)
	assert.Equal(t, match.Record{PlayerID: ids[1], Name: "Bob", Wins: 0, Matches: 1}, res.Loser)

	alice, err := f.players.Get(ctx, ids[0])
	require.NoError(t, err)
	assert.Equal(t, 1, alice.Wins)
	assert.Equal(t, 1, alice.Matches)

	bob, err := f.players.Get(ctx, ids[1])
	require.NoError(t, err)
	assert.Equal(t, 0, bob.Wins)
	assert.Equal(t, 1, bob.Matches)

	assert.Equal(t, 1, f.metrics.MatchesRecorded())
}

func TestRecordKeepsCountersConsistent(t *testing.T) {
	f := setupTestDB(t)
	ctx := context.Background()
	ids := register(t, f.players, "A", "B", "C", "D")

	results := [][2]int{{0, 1}, {2, 3}, {0, 2}, {1, 3}, {0, 3}, {2, 1}}
	for _, r := range results {
		_, err := f.matches.Record(ctx, ids[r[0]], ids[r[1]])
		require.NoError(t, err)
	}

	players, err := f.players.List(ctx)
	require.NoError(t, err)

	totalWins, totalMatches := 0, 0
	for _, p := range players {
		assert.LessOrEqual(t, p.Wins, p.Matches, "player %s has more wins than matches", p.Name)
		totalWins += p.Wins
		totalMatches += p.Matches
	}
	assert.Equal(t, len(results), totalWins, "every match produces exactly one win")
	assert.Equal(t, 2*len(results), totalMatches, "every match is played by two players")

	log, err := f.matches.List(ctx)
	require.NoError(t, err)
	assert.Len(t, log, len(results))
}

func TestRecordRejectsSamePlayer(t *testing.T) {
	f := setupTestDB(t)
	ctx := context.Background()
	ids := register(t, f.players, "Alice")

	_, err := f.matches.Record(ctx, ids[0], ids[0])
	assert.ErrorIs(t, err, match.ErrSamePlayer)

	alice, err := f.players.Get(ctx, ids[0])
	require.NoError(t, err)
	assert.Zero(t, alice.Matches)
	assert.Zero(t, f.metrics.MatchesRecorded())
}

func TestRecordUnknownPlayerChangesNothing(t *testing.T) {
	f := setupTestDB(t)
	ctx := context.Background()
	ids := register(t, f.players, "Alice")

	t.Run("unknown loser", func(t *testing.T) {
		_, err := f.matches.Record(ctx, ids[0], 999)
		assert.ErrorIs(t, err, match.ErrPlayerNotFound)
	})

	t.Run("unknown winner", func(t *testing.T) {
		_, err := f.matches.Record(ctx, 999, ids[0])
		assert.ErrorIs(t, err, match.ErrPlayerNotFound)
	})

	alice, err := f.players.Get(ctx, ids[0])
	require.NoError(t, err)
	assert.Zero(t, alice.Wins, "the winner's increment must be rolled back")
	assert.Zero(t, alice.Matches)

	log, err := f.matches.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, log)
}

func TestRecordConcurrentWritesAreNotLost(t *testing.T) {
	f := setupTestDB(t)
	ctx := context.Background()
	ids := register(t, f.players, "Alice", "Bob")

	const n = 25
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := f.matches.Record(ctx, ids[0], ids[1])
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	alice, err := f.players.Get(ctx, ids[0])
	require.NoError(t, err)
	assert.Equal(t, n, alice.Wins)
	assert.Equal(t, n, alice.Matches)
}

func TestClearResetsCounters(t *testing.T) {
	f := setupTestDB(t)
	ctx := context.Background()
	ids := register(t, f.players, "Alice", "Bob")

	_, err := f.matches.Record(ctx, ids[0], ids[1])
	require.NoError(t, err)

	require.NoError(t, f.matches.Clear(ctx))

	log, err := f.matches.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, log)

	count, err := f.players.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, count, "clearing matches keeps the roster")

	players, err := f.players.List(ctx)
	require.NoError(t, err)
	for _, p := range players {
		assert.Zero(t, p.Wins)
		assert.Zero(t, p.Matches)
	}
}

func TestClearOnEmptyStore(t *testing.T) {
	f := setupTestDB(t)
	assert.NoError(t, f.matches.Clear(context.Background()))
}

func TestListReportsStorageFailures(t *testing.T) {
	f := setupTestDB(t)
	require.NoError(t, f.gw.Close())

	_, err := f.matches.List(context.Background())
	assert.Error(t, err)
}
