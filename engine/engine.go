// Package engine drives games through their placement phase by asking
// each player's placer for a move and feeding it to the rules.
package engine

import "conquest/game"

// Placer chooses where the acting player puts their next unit. The
// engine calls it only when it is that player's turn.
type Placer interface {
	NextPlacement(s game.State) (game.TerritoryID, error)
}

// PlacerFunc adapts a function to the Placer interface.
type PlacerFunc func(s game.State) (game.TerritoryID, error)

func (f PlacerFunc) NextPlacement(s game.State) (game.TerritoryID, error) {
	return f(s)
}

// Update records one accepted placement and the snapshot it produced.
type Update struct {
	Player    game.PlayerID
	Territory game.TerritoryID
	State     game.State
}
