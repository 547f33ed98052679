package engine

import (
	"conquest/dice"
	"conquest/game"
	"errors"
	"testing"
)

func newTestGame(t *testing.T, units int) *game.Game {
	board := game.NewBoard([]game.Territory{
		game.NewTerritory(1, "Alaska"),
		game.NewTerritory(2, "Peru"),
		game.NewTerritory(3, "Ukraine"),
	})
	players := []game.Player{game.NewPlayer(1), game.NewPlayer(2)}

	g, err := game.NewGame(board, players, dice.NewScripted(1), game.WithInitialUnits(units))
	if err != nil {
		t.Fatalf("expected game setup to succeed, got %v", err)
	}
	return g
}

// firstLegal places on the first territory that is open or already the
// placer's own.
func firstLegal(s game.State) (game.TerritoryID, error) {
	me := s.CurrentPlayer().ID()
	for _, territory := range s.Board().Territories() {
		if !territory.Claimed() || territory.Owner() == me {
			return territory.ID(), nil
		}
	}
	return 0, errors.New("no open territory")
}

func TestLocalRun(t *testing.T) {
	g := newTestGame(t, 2)
	eng := NewLocal(g, map[game.PlayerID]Placer{
		1: PlacerFunc(firstLegal),
		2: PlacerFunc(firstLegal),
	})

	final, err := eng.Run()
	if err != nil {
		t.Fatalf("expected the run to finish, got %v", err)
	}

	if final.Phase() != game.Playing {
		t.Errorf("expected phase = playing after the run, got %v", final.Phase())
	}
	for _, p := range final.Players() {
		if p.UnitsToPlace() != 0 {
			t.Errorf("expected player %d to have placed everything, got %d left",
				p.ID(), p.UnitsToPlace())
		}
	}

	updates := eng.Updates()
	if len(updates) != 4 {
		t.Fatalf("expected 4 updates for 2 players with 2 units each, got %d", len(updates))
	}
	wantPlayers := []game.PlayerID{1, 2, 1, 2}
	for i, u := range updates {
		if u.Player != wantPlayers[i] {
			t.Errorf("expected update %d by player %d, got %d", i, wantPlayers[i], u.Player)
		}
	}
	if updates[len(updates)-1].State.Phase() != game.Playing {
		t.Error("expected the last update to carry the playing phase")
	}
}

func TestLocalRunPlacerError(t *testing.T) {
	g := newTestGame(t, 2)
	boom := errors.New("no idea where to place")
	eng := NewLocal(g, map[game.PlayerID]Placer{
		1: PlacerFunc(func(game.State) (game.TerritoryID, error) { return 0, boom }),
		2: PlacerFunc(firstLegal),
	})

	_, err := eng.Run()
	if !errors.Is(err, boom) {
		t.Errorf("expected the placer error to surface, got %v", err)
	}
}

func TestLocalRunRejectedPlacement(t *testing.T) {
	g := newTestGame(t, 2)
	eng := NewLocal(g, map[game.PlayerID]Placer{
		// Always aims off the board.
		1: PlacerFunc(func(game.State) (game.TerritoryID, error) { return 9, nil }),
		2: PlacerFunc(firstLegal),
	})

	_, err := eng.Run()
	if !errors.Is(err, game.ErrUnknownTerritory) {
		t.Errorf("expected the rule error to surface, got %v", err)
	}
}

func TestNewLocalMissingPlacer(t *testing.T) {
	g := newTestGame(t, 2)

	defer func() {
		if recover() == nil {
			t.Error("expected a panic for a roster without placers, got none")
		}
	}()
	NewLocal(g, map[game.PlayerID]Placer{1: PlacerFunc(firstLegal)})
}
