package game

import "errors"

// Command errors returned by Game.PlaceUnit. Each precondition failure
// maps to exactly one of these, wrapped with the offending ids; dispatch
// with errors.Is.
var (
	// ErrUnknownPlayer means the acting player id is not in the roster.
	ErrUnknownPlayer = errors.New("unknown player")
	// ErrUnknownTerritory means the territory id is not on the board.
	ErrUnknownTerritory = errors.New("unknown territory")
	// ErrNotPlayersTurn means a player moved out of turn.
	ErrNotPlayersTurn = errors.New("not player's turn")
	// ErrIllegalMove means the territory belongs to another player.
	ErrIllegalMove = errors.New("illegal move")
)

// ErrDiceOutOfRange is returned by NewGame when the seating roll does
// not land on a roster position. Out-of-range rolls are rejected rather
// than wrapped around.
var ErrDiceOutOfRange = errors.New("dice roll out of range")
