package game

// Player is a participant in a game. Players are immutable values;
// quota changes produce a new value.
type Player struct {
	id    PlayerID
	units int
}

// NewPlayer returns a player with no units to place yet. NewGame hands
// out the placement quota.
func NewPlayer(id PlayerID) Player {
	return Player{id: id}
}

func (p Player) ID() PlayerID { return p.id }

// UnitsToPlace returns how many units the player still must place
// before the game can leave the placing phase.
func (p Player) UnitsToPlace() int { return p.units }

// giveUnitsToPlace returns a copy with the placement quota set. Called
// once per player, at game start.
func (p Player) giveUnitsToPlace(n int) Player {
	p.units = n
	return p
}

// placedUnit returns a copy with one unit taken off the quota. A zero
// quota here means the caller broke the placing-phase invariant, so
// there is nothing sensible to return.
func (p Player) placedUnit() Player {
	if p.units == 0 {
		panic("game: player has no units left to place")
	}
	p.units--
	return p
}
