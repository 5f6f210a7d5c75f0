package pairing

import "context"

// Service produces the next round of the tournament.
type Service interface {
	// Pairings groups the current standings into adjacent pairs: first with
	// second, third with fourth and so on. With an odd roster the partial
	// round is returned together with an error wrapping ErrUnevenRoster.
	Pairings(ctx context.Context) (Round, error)
}
