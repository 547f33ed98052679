package game

import (
	"fmt"

	"conquest/utils"
)

// Territory is a single claimable region on the board. Territories are
// immutable values; claiming one produces a new value.
type Territory struct {
	id    TerritoryID
	name  string
	owner PlayerID
}

// NewTerritory returns an unclaimed territory.
func NewTerritory(id TerritoryID, name string) Territory {
	return Territory{id: id, name: name, owner: NoOwner}
}

func (t Territory) ID() TerritoryID { return t.id }

func (t Territory) Name() string { return t.name }

// Owner returns the claiming player, or NoOwner.
func (t Territory) Owner() PlayerID { return t.owner }

// Claimed reports whether any player owns the territory.
func (t Territory) Claimed() bool { return t.owner != NoOwner }

// claimedBy returns a copy of the territory with the owner set. It sets
// unconditionally; the ownership rules live in Game.
func (t Territory) claimedBy(id PlayerID) Territory {
	t.owner = id
	return t
}

// Board is an ordered collection of territories. Its identity, the set
// of territory ids, never changes after construction; ownership within
// it changes only through placements, each producing a new Board value.
type Board struct {
	territories []Territory
}

// NewBoard copies the given territories into a board, preserving order.
// It does not check ids for uniqueness; NewGame does.
func NewBoard(territories []Territory) Board {
	ts := make([]Territory, len(territories))
	copy(ts, territories)
	return Board{territories: ts}
}

// Len returns the number of territories on the board.
func (b Board) Len() int { return len(b.territories) }

// Territories returns the territories in board order. The returned
// slice is a copy and may be modified freely.
func (b Board) Territories() []Territory {
	ts := make([]Territory, len(b.territories))
	copy(ts, b.territories)
	return ts
}

// Territory looks up a territory by id.
func (b Board) Territory(id TerritoryID) (Territory, bool) {
	i := b.index(id)
	if i < 0 {
		return Territory{}, false
	}
	return b.territories[i], true
}

func (b Board) index(id TerritoryID) int {
	return utils.FindIndexFunc(b.territories, func(t Territory) bool {
		return t.id == id
	})
}

// claim returns a new board with the territory owned by the given
// player. The territory must exist; callers check before claiming.
func (b Board) claim(id TerritoryID, owner PlayerID) Board {
	i := b.index(id)
	if i < 0 {
		panic(fmt.Sprintf("game: claim of unknown territory %d", id))
	}
	ts := make([]Territory, len(b.territories))
	copy(ts, b.territories)
	ts[i] = ts[i].claimedBy(owner)
	return Board{territories: ts}
}
