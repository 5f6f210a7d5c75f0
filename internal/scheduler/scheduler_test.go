package scheduler

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/mauv0809/swiss-ladder/internal/notifier"
	"github.com/mauv0809/swiss-ladder/internal/standings"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func twoPlayers(ctx context.Context) ([]standings.Standing, error) {
	return []standings.Standing{
		{ID: 1, Name: "Alice", Wins: 1, Matches: 1},
		{ID: 2, Name: "Bob", Wins: 0, Matches: 1},
	}, nil
}

func TestNewRejectsInvalidInterval(t *testing.T) {
	_, err := New(0, standings.NewMock(), notifier.NewMock())
	assert.Error(t, err)
}

func TestPostStandings(t *testing.T) {
	t.Run("sends current standings", func(t *testing.T) {
		st := standings.NewMock()
		st.StandingsFunc = twoPlayers
		n := notifier.NewMock()

		s, err := New(time.Hour, st, n)
		require.NoError(t, err)
		defer s.Shutdown()

		require.NoError(t, s.PostStandings(context.Background()))
		require.Len(t, n.SendStandingsCalls, 1)
		assert.Len(t, n.SendStandingsCalls[0], 2)
	})

	t.Run("skips an empty roster", func(t *testing.T) {
		n := notifier.NewMock()
		s, err := New(time.Hour, standings.NewMock(), n)
		require.NoError(t, err)
		defer s.Shutdown()

		require.NoError(t, s.PostStandings(context.Background()))
		assert.Empty(t, n.SendStandingsCalls)
	})

	t.Run("reports storage failures", func(t *testing.T) {
		st := standings.NewMock()
		boom := errors.New("boom")
		st.StandingsFunc = func(ctx context.Context) ([]standings.Standing, error) { return nil, boom }

		s, err := New(time.Hour, st, notifier.NewMock())
		require.NoError(t, err)
		defer s.Shutdown()

		assert.ErrorIs(t, s.PostStandings(context.Background()), boom)
	})
}

func TestSchedulerRunsJob(t *testing.T) {
	st := standings.NewMock()
	st.StandingsFunc = twoPlayers
	n := notifier.NewMock()

	s, err := New(20*time.Millisecond, st, n)
	require.NoError(t, err)
	s.Start()
	defer s.Shutdown()

	assert.Eventually(t, func() bool {
		return st.Calls() > 0
	}, 2*time.Second, 10*time.Millisecond)
}
