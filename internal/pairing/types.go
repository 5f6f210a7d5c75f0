package pairing

import (
	"errors"

	"github.com/mauv0809/swiss-ladder/internal/database"
	"github.com/mauv0809/swiss-ladder/internal/metrics"
)

// ErrUnevenRoster is reported when one player is left without an opponent.
var ErrUnevenRoster = errors.New("players number is uneven")

type store struct {
	db      *database.Gateway
	metrics metrics.Metrics
}

// Player is the subset of a standing needed to pair.
type Player struct {
	ID   int64  `json:"id" msgpack:"id"`
	Name string `json:"name" msgpack:"name"`
	Wins int    `json:"wins" msgpack:"wins"`
}

// Pairing is one table of a round.
type Pairing struct {
	Table       int    `json:"table" msgpack:"table"`
	Player1ID   int64  `json:"player1_id" msgpack:"player1_id"`
	Player1Name string `json:"player1_name" msgpack:"player1_name"`
	Player2ID   int64  `json:"player2_id" msgpack:"player2_id"`
	Player2Name string `json:"player2_name" msgpack:"player2_name"`
}

// Round is the full set of pairings for the next round.
type Round struct {
	Pairings []Pairing `json:"pairings" msgpack:"pairings"`
	// Bye is the last ranked player when nobody is left to play against.
	Bye *Player `json:"bye,omitempty" msgpack:"bye,omitempty"`
}
