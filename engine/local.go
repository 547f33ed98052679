package engine

import (
	"fmt"

	"conquest/game"

	"github.com/rs/zerolog/log"
)

// Local drives one game's placement phase on a single machine: it asks
// the current player's placer for a territory, submits the placement,
// and repeats until the game leaves the placing phase.
type Local struct {
	game    *game.Game
	placers map[game.PlayerID]Placer
	updates []Update
}

// NewLocal wires every seated player to a placer. A roster without a
// placer for each player is a programming error.
func NewLocal(g *game.Game, placers map[game.PlayerID]Placer) *Local {
	players := g.State().Players()
	if len(placers) != len(players) {
		panic("number of placers does not match number of players")
	}
	for _, p := range players {
		if _, ok := placers[p.ID()]; !ok {
			panic(fmt.Sprintf("no placer for player %d", p.ID()))
		}
	}
	return &Local{game: g, placers: placers}
}

// Run executes the placement loop until the phase flips to playing and
// returns the final state. Placers are trusted to pick legal targets;
// an error from a placer or a rejected placement aborts the run.
func (l *Local) Run() (game.State, error) {
	state := l.game.State()
	log.Info().Msgf("player %d is starting", state.CurrentPlayer().ID())

	for state.Phase() == game.Placing {
		current := state.CurrentPlayer().ID()

		territory, err := l.placers[current].NextPlacement(state)
		if err != nil {
			return state, fmt.Errorf("player %d: %w", current, err)
		}
		if err := l.game.PlaceUnit(current, territory); err != nil {
			return state, err
		}

		state = l.game.State()
		l.updates = append(l.updates, Update{
			Player:    current,
			Territory: territory,
			State:     state,
		})
		log.Debug().Msgf("player %d placed in territory %d", current, territory)
	}

	log.Info().Msgf("placement done after %d moves", len(l.updates))
	return state, nil
}

// Updates returns the accepted placements in order.
func (l *Local) Updates() []Update {
	out := make([]Update, len(l.updates))
	copy(out, l.updates)
	return out
}
