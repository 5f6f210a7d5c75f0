package standings

import "context"

// Service reads the ranking of all registered players.
type Service interface {
	// Standings returns every player ordered by wins descending; players with
	// equal wins keep registration order.
	Standings(ctx context.Context) ([]Standing, error)
}
