package standings

import (
	"context"
	"fmt"

	"github.com/mauv0809/swiss-ladder/internal/database"
)

// New creates a Service reading from the standings view.
func New(db *database.Gateway) Service {
	return &store{db: db}
}

func (s *store) Standings(ctx context.Context) ([]Standing, error) {
	rows, err := s.db.Query(ctx, "SELECT id, name, wins, matches FROM standings ORDER BY wins DESC, id ASC")
	if err != nil {
		return nil, fmt.Errorf("failed to query standings: %w", err)
	}
	defer rows.Close()

	result := make([]Standing, 0)
	for rows.Next() {
		var st Standing
		if err := rows.Scan(&st.ID, &st.Name, &st.Wins, &st.Matches); err != nil {
			return nil, fmt.Errorf("failed to scan standing: %w", err)
		}
		result = append(result, st)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate standings: %w", err)
	}
	return result, nil
}
