package pairing

import (
	"context"
	"errors"
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/mauv0809/swiss-ladder/internal/database"
	"github.com/mauv0809/swiss-ladder/internal/metrics"
)

// New creates a pairing Service over the standings view.
func New(db *database.Gateway, metrics metrics.Metrics) Service {
	return &store{
		db:      db,
		metrics: metrics,
	}
}

func (s *store) Pairings(ctx context.Context) (Round, error) {
	players, err := s.ranked(ctx)
	if err != nil {
		return Round{}, err
	}

	round, err := Pair(players)
	if errors.Is(err, ErrUnevenRoster) {
		log.Warn("Players number is uneven", "players", len(players), "bye", round.Bye.ID)
		s.metrics.IncUnevenRosters()
	}
	s.metrics.IncPairingsGenerated()
	log.Debug("Pairings generated", "tables", len(round.Pairings))
	return round, err
}

func (s *store) ranked(ctx context.Context) ([]Player, error) {
	rows, err := s.db.Query(ctx, "SELECT id, name, wins FROM standings ORDER BY wins DESC, id ASC")
	if err != nil {
		return nil, fmt.Errorf("failed to query standings: %w", err)
	}
	defer rows.Close()

	var players []Player
	for rows.Next() {
		var p Player
		if err := rows.Scan(&p.ID, &p.Name, &p.Wins); err != nil {
			return nil, fmt.Errorf("failed to scan player: %w", err)
		}
		players = append(players, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate standings: %w", err)
	}
	return players, nil
}
