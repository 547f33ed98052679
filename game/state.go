package game

import "conquest/utils"

// State is one immutable snapshot of a game between commands. Every
// successful command builds a whole new State; nothing reachable from a
// snapshot is ever mutated in place, so snapshots are safe to hold on
// to and compare.
type State struct {
	board   Board
	phase   Phase
	players []Player // fixed seating order
	turn    int      // cursor into players; players[turn] acts next
	cards   []Card
}

// NewState assembles a snapshot as-is, copying the slices it is given.
// No invariants are checked here; Game is the only producer of valid
// successive states.
func NewState(board Board, phase Phase, players []Player, turn int, cards []Card) State {
	ps := make([]Player, len(players))
	copy(ps, players)
	cs := make([]Card, len(cards))
	copy(cs, cards)
	return State{
		board:   board,
		phase:   phase,
		players: ps,
		turn:    turn,
		cards:   cs,
	}
}

func (s State) Board() Board { return s.board }

func (s State) Phase() Phase { return s.phase }

// Players returns the players in seating order, the order the roster
// was handed to NewGame. The returned slice is a copy.
func (s State) Players() []Player {
	ps := make([]Player, len(s.players))
	copy(ps, s.players)
	return ps
}

// TurnOrder returns the players rotated so that the current player is
// first and the rest follow in the order they will act.
func (s State) TurnOrder() []Player {
	n := len(s.players)
	ps := make([]Player, 0, n)
	for i := 0; i < n; i++ {
		ps = append(ps, s.players[(s.turn+i)%n])
	}
	return ps
}

// CurrentPlayer returns the player entitled to act on this turn.
func (s State) CurrentPlayer() Player {
	return s.players[s.turn]
}

// Player looks up a player by id.
func (s State) Player(id PlayerID) (Player, bool) {
	i := s.playerIndex(id)
	if i < 0 {
		return Player{}, false
	}
	return s.players[i], true
}

func (s State) playerIndex(id PlayerID) int {
	return utils.FindIndexFunc(s.players, func(p Player) bool {
		return p.id == id
	})
}

// Cards returns the card pool. The returned slice is a copy.
func (s State) Cards() []Card {
	cs := make([]Card, len(s.cards))
	copy(cs, s.cards)
	return cs
}

// phaseFor derives the phase from the remaining quotas alone: the game
// is still placing while any player has units left.
func phaseFor(players []Player) Phase {
	for _, p := range players {
		if p.units > 0 {
			return Placing
		}
	}
	return Playing
}
