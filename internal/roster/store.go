package roster

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/mauv0809/swiss-ladder/internal/database"
	"github.com/mauv0809/swiss-ladder/internal/metrics"
)

// New creates a new roster Service.
func New(db *database.Gateway, metrics metrics.Metrics) Service {
	return &store{
		db:      db,
		metrics: metrics,
	}
}

func (s *store) Register(ctx context.Context, name string) (Player, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var p Player
	err := s.db.QueryRow(ctx, `
		INSERT INTO players (name) VALUES (?)
		RETURNING id, name, wins, matches
	`, name).Scan(&p.ID, &p.Name, &p.Wins, &p.Matches)
	if err != nil {
		return Player{}, fmt.Errorf("failed to register player %q: %w", name, err)
	}

	s.metrics.IncPlayersRegistered()
	log.Info("Player registered successfully", "id", p.ID, "name", p.Name)
	return p, nil
}

func (s *store) Get(ctx context.Context, id int64) (Player, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var p Player
	err := s.db.QueryRow(ctx, "SELECT id, name, wins, matches FROM players WHERE id = ?", id).
		Scan(&p.ID, &p.Name, &p.Wins, &p.Matches)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Player{}, fmt.Errorf("%w: %d", ErrPlayerNotFound, id)
		}
		return Player{}, fmt.Errorf("failed to get player %d: %w", id, err)
	}
	return p, nil
}

func (s *store) List(ctx context.Context) ([]Player, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.Query(ctx, "SELECT id, name, wins, matches FROM players ORDER BY id")
	if err != nil {
		return nil, fmt.Errorf("failed to list players: %w", err)
	}
	defer rows.Close()

	players := make([]Player, 0)
	for rows.Next() {
		var p Player
		if err := rows.Scan(&p.ID, &p.Name, &p.Wins, &p.Matches); err != nil {
			return nil, fmt.Errorf("failed to scan player row: %w", err)
		}
		players = append(players, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate players: %w", err)
	}
	return players, nil
}

func (s *store) Count(ctx context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var count int
	if err := s.db.QueryRow(ctx, "SELECT COUNT(*) FROM players").Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count players: %w", err)
	}
	return count, nil
}

func (s *store) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	err := s.db.WithTx(ctx, func(tx *database.Tx) error {
		if _, err := tx.Exec(ctx, "DELETE FROM matches"); err != nil {
			return fmt.Errorf("failed to clear matches table: %w", err)
		}
		if _, err := tx.Exec(ctx, "DELETE FROM players"); err != nil {
			return fmt.Errorf("failed to clear players table: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	log.Info("All players have been deleted")
	return nil
}
