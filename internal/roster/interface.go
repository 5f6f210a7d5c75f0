package roster

import "context"

// Service manages the set of registered players.
type Service interface {
	// Register adds a player with no wins and no matches. Names need not be unique.
	Register(ctx context.Context, name string) (Player, error)
	Get(ctx context.Context, id int64) (Player, error)
	List(ctx context.Context) ([]Player, error)
	Count(ctx context.Context) (int, error)
	// Clear removes every player together with the match history.
	Clear(ctx context.Context) error
}
