package match

import "context"

// Service records match outcomes and maintains the per-player counters they drive.
type Service interface {
	// Record stores a result: the winner gains a win and a match, the loser a match.
	// Both counters and the log entry change together or not at all.
	Record(ctx context.Context, winnerID, loserID int64) (Result, error)
	List(ctx context.Context) ([]Match, error)
	// Clear empties the match log and resets every player's wins and matches to zero.
	Clear(ctx context.Context) error
}
