// Package player provides placers for the placement phase: a random
// baseline and an interactive one reading from a terminal.
package player

import (
	"errors"

	"conquest/game"

	"golang.org/x/exp/rand"
)

// Random places units uniformly over the territories the player may
// legally use: open ones and its own. Not safe for concurrent use.
type Random struct {
	rng *rand.Rand
}

// NewRandom returns a random placer from the given seed.
func NewRandom(seed uint64) *Random {
	return &Random{rng: rand.New(rand.NewSource(seed))}
}

// NextPlacement picks one of the current player's legal targets.
func (r *Random) NextPlacement(s game.State) (game.TerritoryID, error) {
	choices := legalTargets(s)
	if len(choices) == 0 {
		return 0, errors.New("no legal territory to place in")
	}
	return choices[r.rng.Intn(len(choices))], nil
}

// legalTargets lists the territories the current player may place in.
func legalTargets(s game.State) []game.TerritoryID {
	me := s.CurrentPlayer().ID()
	var ids []game.TerritoryID
	for _, territory := range s.Board().Territories() {
		if !territory.Claimed() || territory.Owner() == me {
			ids = append(ids, territory.ID())
		}
	}
	return ids
}
