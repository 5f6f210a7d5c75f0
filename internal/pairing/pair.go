package pairing

import "fmt"

// Pair groups players, already in ranking order, two by two.
func Pair(players []Player) (Round, error) {
	round := Round{Pairings: make([]Pairing, 0, len(players)/2)}
	for i := 0; i+1 < len(players); i += 2 {
		round.Pairings = append(round.Pairings, Pairing{
			Table:       len(round.Pairings) + 1,
			Player1ID:   players[i].ID,
			Player1Name: players[i].Name,
			Player2ID:   players[i+1].ID,
			Player2Name: players[i+1].Name,
		})
	}

	if len(players)%2 == 1 {
		last := players[len(players)-1]
		round.Bye = &last
		return round, fmt.Errorf("%w: %d players, %s (%d) has no opponent", ErrUnevenRoster, len(players), last.Name, last.ID)
	}
	return round, nil
}
