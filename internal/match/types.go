package match

import (
	"errors"
	"sync"
	"time"

	"github.com/mauv0809/swiss-ladder/internal/database"
	"github.com/mauv0809/swiss-ladder/internal/metrics"
)

var (
	ErrSamePlayer     = errors.New("winner and loser must be different players")
	ErrPlayerNotFound = errors.New("player not found")
)

// store handles all database operations for match results.
type store struct {
	db      *database.Gateway
	metrics metrics.Metrics
	now     func() time.Time
	mu      sync.Mutex
}

// Match is one entry of the append-only match log.
type Match struct {
	ID         int64     `json:"id" msgpack:"id"`
	WinnerID   int64     `json:"winner_id" msgpack:"winner_id"`
	LoserID    int64     `json:"loser_id" msgpack:"loser_id"`
	RecordedAt time.Time `json:"recorded_at" msgpack:"recorded_at"`
}

// Record is a player's tally right after a match was recorded.
type Record struct {
	PlayerID int64  `json:"id" msgpack:"id"`
	Name     string `json:"name" msgpack:"name"`
	Wins     int    `json:"wins" msgpack:"wins"`
	Matches  int    `json:"matches" msgpack:"matches"`
}

// Result is what Record returns: the stored match and both updated tallies.
type Result struct {
	Match  Match  `json:"match" msgpack:"match"`
	Winner Record `json:"winner" msgpack:"winner"`
	Loser  Record `json:"loser" msgpack:"loser"`
}
