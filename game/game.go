package game

import (
	"errors"
	"fmt"

	"conquest/dice"
)

// Game owns the evolving state of one match and the dice used to seat
// players. Every successful command replaces the state wholesale with a
// new snapshot; failed commands leave it untouched.
//
// A Game is not safe for concurrent use. Commands are expected to
// arrive strictly one after another; callers sharing a Game across
// goroutines must serialize access themselves.
type Game struct {
	state State
	dice  dice.Dice
}

// Option adjusts game construction.
type Option func(*settings)

type settings struct {
	initialUnits int
}

// WithInitialUnits overrides the placement quota handed to every player
// at game start.
func WithInitialUnits(n int) Option {
	return func(s *settings) {
		if n > 0 {
			s.initialUnits = n
		}
	}
}

// NewGame seats the given players around the board and decides who
// starts. Every player receives the placement quota, then the dice are
// rolled exactly once: a roll of d seats the player at roster position
// d-1 first. Rolls outside [1, len(players)] are rejected with
// ErrDiceOutOfRange.
//
// The board must hold at least one territory and the roster at least
// one player, with unique ids on both sides.
func NewGame(board Board, players []Player, d dice.Dice, opts ...Option) (*Game, error) {
	cfg := settings{initialUnits: InitialUnits}
	for _, opt := range opts {
		opt(&cfg)
	}

	if board.Len() == 0 {
		return nil, errors.New("cannot create game: board has no territories")
	}
	if len(players) == 0 {
		return nil, errors.New("cannot create game: no players")
	}
	territoryIDs := make(map[TerritoryID]bool, board.Len())
	for _, t := range board.Territories() {
		if territoryIDs[t.ID()] {
			return nil, fmt.Errorf("cannot create game: duplicate territory id %d", t.ID())
		}
		territoryIDs[t.ID()] = true
	}
	playerIDs := make(map[PlayerID]bool, len(players))
	for _, p := range players {
		if playerIDs[p.ID()] {
			return nil, fmt.Errorf("cannot create game: duplicate player id %d", p.ID())
		}
		playerIDs[p.ID()] = true
	}

	seated := make([]Player, len(players))
	for i, p := range players {
		seated[i] = p.giveUnitsToPlace(cfg.initialUnits)
	}

	roll := d.Roll()
	if roll < 1 || roll > len(seated) {
		return nil, fmt.Errorf("cannot create game: %w: rolled %d with %d players",
			ErrDiceOutOfRange, roll, len(seated))
	}

	return &Game{
		state: NewState(board, Placing, seated, roll-1, StandardDeck(board)),
		dice:  d,
	}, nil
}

// State returns the current snapshot.
func (g *Game) State() State { return g.state }

// RollDice rolls the injected dice and returns the result. The core
// itself rolls only once, during seating; the passthrough is for
// collaborators that need the same capability.
func (g *Game) RollDice() int { return g.dice.Roll() }

// IsPlayerTurn reports whether the given player acts next.
func (g *Game) IsPlayerTurn(id PlayerID) bool {
	return g.state.CurrentPlayer().ID() == id
}

// PlayerExists reports whether the roster holds the given id.
func (g *Game) PlayerExists(id PlayerID) bool {
	_, ok := g.state.Player(id)
	return ok
}

// TerritoryExists reports whether the board holds the given id.
func (g *Game) TerritoryExists(id TerritoryID) bool {
	_, ok := g.state.Board().Territory(id)
	return ok
}

// PlaceUnit places one unit for the player onto the territory. The
// preconditions are checked in a fixed order and the first violation
// decides the error: the player must exist (ErrUnknownPlayer), the
// territory must exist (ErrUnknownTerritory), the player must be the
// current one (ErrNotPlayersTurn), and the territory must be unclaimed
// or already the player's own (ErrIllegalMove).
//
// On success the player's quota drops by one, the turn passes to the
// next player in seating order (also after the final placement), and
// the phase flips to Playing once no quota is left anywhere. On failure
// nothing changes.
func (g *Game) PlaceUnit(player PlayerID, territory TerritoryID) error {
	s := g.state

	idx := s.playerIndex(player)
	if idx < 0 {
		return fmt.Errorf("cannot place unit: %w: player %d", ErrUnknownPlayer, player)
	}
	target, ok := s.board.Territory(territory)
	if !ok {
		return fmt.Errorf("cannot place unit: %w: territory %d", ErrUnknownTerritory, territory)
	}
	if idx != s.turn {
		return fmt.Errorf("cannot place unit: %w: player %d acted, player %d is up",
			ErrNotPlayersTurn, player, s.CurrentPlayer().ID())
	}
	if target.Claimed() && target.Owner() != player {
		return fmt.Errorf("cannot place unit: %w: territory %d belongs to player %d",
			ErrIllegalMove, territory, target.Owner())
	}

	board := s.board
	if !target.Claimed() {
		board = board.claim(territory, player)
	}

	players := s.Players()
	players[idx] = players[idx].placedUnit()

	g.state = NewState(board, phaseFor(players), players, (s.turn+1)%len(players), s.cards)
	return nil
}
