package pairing

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func players(n int) []Player {
	out := make([]Player, n)
	for i := range out {
		out[i] = Player{ID: int64(i + 1), Name: fmt.Sprintf("P%d", i+1), Wins: n - i}
	}
	return out
}

func TestPair(t *testing.T) {
	tests := []struct {
		name       string
		players    int
		wantTables int
		wantBye    bool
	}{
		{"empty roster", 0, 0, false},
		{"single player", 1, 0, true},
		{"two players", 2, 1, false},
		{"odd roster", 5, 2, true},
		{"even roster", 8, 4, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := players(tt.players)
			round, err := Pair(in)

			assert.Len(t, round.Pairings, tt.wantTables)
			if tt.wantBye {
				assert.ErrorIs(t, err, ErrUnevenRoster)
				require.NotNil(t, round.Bye)
				assert.Equal(t, in[len(in)-1], *round.Bye, "the last ranked player sits out")
			} else {
				assert.NoError(t, err)
				assert.Nil(t, round.Bye)
			}

			seen := make(map[int64]bool)
			for i, p := range round.Pairings {
				assert.Equal(t, i+1, p.Table)
				assert.Equal(t, in[2*i].ID, p.Player1ID, "table %d should seat rank %d first", p.Table, 2*i+1)
				assert.Equal(t, in[2*i+1].ID, p.Player2ID)
				assert.Equal(t, in[2*i].Name, p.Player1Name)
				assert.Equal(t, in[2*i+1].Name, p.Player2Name)
				assert.False(t, seen[p.Player1ID] || seen[p.Player2ID], "a player appears twice")
				seen[p.Player1ID] = true
				seen[p.Player2ID] = true
			}
		})
	}
}

func TestPairDoesNotModifyInput(t *testing.T) {
	in := players(3)
	_, _ = Pair(in)
	assert.Equal(t, players(3), in)
}
