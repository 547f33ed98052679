// Package game implements the rules of the initial placement phase of a
// territorial conquest game: seating order, unit placement, territory
// ownership and the transition into regular play.
package game

import "fmt"

// PlayerID identifies a player within a single game.
type PlayerID int

// TerritoryID identifies a territory on the board.
type TerritoryID int

// NoOwner marks a territory nobody has claimed yet.
const NoOwner PlayerID = -1

// InitialUnits is the placement quota every player receives at game start.
const InitialUnits = 35

// Phase is the stage a game is in. Games start in Placing and move to
// Playing once every player has placed their full quota. The transition
// is one way.
type Phase int

const (
	Placing Phase = iota
	Playing
)

func (p Phase) String() string {
	switch p {
	case Placing:
		return "placing"
	case Playing:
		return "playing"
	default:
		return fmt.Sprintf("phase(%d)", int(p))
	}
}
