package standings

import "github.com/mauv0809/swiss-ladder/internal/database"

type store struct {
	db *database.Gateway
}

// Standing is one row of the ranking.
type Standing struct {
	ID      int64  `json:"id" msgpack:"id"`
	Name    string `json:"name" msgpack:"name"`
	Wins    int    `json:"wins" msgpack:"wins"`
	Matches int    `json:"matches" msgpack:"matches"`
}
