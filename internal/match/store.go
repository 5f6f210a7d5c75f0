package match

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/mauv0809/swiss-ladder/internal/database"
	"github.com/mauv0809/swiss-ladder/internal/metrics"
)

// New creates a new match Service.
func New(db *database.Gateway, metrics metrics.Metrics) Service {
	return &store{
		db:      db,
		metrics: metrics,
		now:     time.Now,
	}
}

func (s *store) Record(ctx context.Context, winnerID, loserID int64) (Result, error) {
	if winnerID == loserID {
		return Result{}, fmt.Errorf("%w: %d", ErrSamePlayer, winnerID)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	result := Result{Match: Match{WinnerID: winnerID, LoserID: loserID}}
	err := s.db.WithTx(ctx, func(tx *database.Tx) error {
		var err error
		// Counters are incremented in SQL, never read back and rewritten.
		if result.Winner, err = bump(ctx, tx, winnerID, 1); err != nil {
			return err
		}
		if result.Loser, err = bump(ctx, tx, loserID, 0); err != nil {
			return err
		}

		var recordedAt int64
		err = tx.QueryRow(ctx, `
			INSERT INTO matches (winner_id, loser_id, recorded_at) VALUES (?, ?, ?)
			RETURNING id, recorded_at
		`, winnerID, loserID, s.now().Unix()).Scan(&result.Match.ID, &recordedAt)
		if err != nil {
			return fmt.Errorf("failed to append match: %w", err)
		}
		result.Match.RecordedAt = time.Unix(recordedAt, 0).UTC()
		return nil
	})
	if err != nil {
		log.Error("Failed to record match", "winner", winnerID, "loser", loserID, "error", err)
		return Result{}, err
	}

	s.metrics.IncMatchesRecorded()
	log.Info("Match recorded", "match_id", result.Match.ID, "winner", winnerID, "loser", loserID)
	return result, nil
}

// bump adds a played match, and wins extra wins, to a player and returns the new tally.
func bump(ctx context.Context, tx *database.Tx, playerID int64, wins int) (Record, error) {
	var r Record
	err := tx.QueryRow(ctx, `
		UPDATE players SET wins = wins + ?, matches = matches + 1
		WHERE id = ?
		RETURNING id, name, wins, matches
	`, wins, playerID).Scan(&r.PlayerID, &r.Name, &r.Wins, &r.Matches)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Record{}, fmt.Errorf("%w: %d", ErrPlayerNotFound, playerID)
		}
		return Record{}, fmt.Errorf("failed to update player %d: %w", playerID, err)
	}
	return r, nil
}

func (s *store) List(ctx context.Context) ([]Match, error) {
	rows, err := s.db.Query(ctx, "SELECT id, winner_id, loser_id, recorded_at FROM matches ORDER BY id")
	if err != nil {
		return nil, fmt.Errorf("failed to list matches: %w", err)
	}
	defer rows.Close()

	matches := make([]Match, 0)
	for rows.Next() {
		var m Match
		var recordedAt int64
		if err := rows.Scan(&m.ID, &m.WinnerID, &m.LoserID, &recordedAt); err != nil {
			return nil, fmt.Errorf("failed to scan match row: %w", err)
		}
		m.RecordedAt = time.Unix(recordedAt, 0).UTC()
		matches = append(matches, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate matches: %w", err)
	}
	return matches, nil
}

func (s *store) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	err := s.db.WithTx(ctx, func(tx *database.Tx) error {
		if _, err := tx.Exec(ctx, "DELETE FROM matches"); err != nil {
			return fmt.Errorf("failed to clear matches table: %w", err)
		}
		if _, err := tx.Exec(ctx, "UPDATE players SET wins = 0, matches = 0 WHERE matches > 0"); err != nil {
			return fmt.Errorf("failed to reset player counters: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	log.Info("All matches information is nullified")
	return nil
}
