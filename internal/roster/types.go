package roster

import (
	"errors"
	"sync"

	"github.com/mauv0809/swiss-ladder/internal/database"
	"github.com/mauv0809/swiss-ladder/internal/metrics"
)

var ErrPlayerNotFound = errors.New("player not found")

// store handles all database operations for the roster.
type store struct {
	db      *database.Gateway
	metrics metrics.Metrics
	mu      sync.RWMutex
}

// Player is a registered participant with cumulative results.
type Player struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	Wins    int    `json:"wins"`
	Matches int    `json:"matches"`
}
