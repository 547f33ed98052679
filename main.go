package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"conquest/config"
	"conquest/dice"
	"conquest/engine"
	"conquest/experiments"
	"conquest/game"
	"conquest/player"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	var (
		configPath string
		mode       string
		players    int
		units      int
		seed       uint64
		games      int
	)

	flag.StringVar(&configPath, "config", "", "Path to a YAML config file")
	flag.StringVar(&mode, "mode", "demo", "What to run: demo, play or sim")
	flag.IntVar(&players, "players", 0, "Number of players (overrides the config)")
	flag.IntVar(&units, "units", 0, "Units to place per player (overrides the config)")
	flag.Uint64Var(&seed, "seed", 0, "Random seed (overrides the config)")
	flag.IntVar(&games, "games", 0, "Games per roster size in sim mode (overrides the config)")
	flag.Parse()

	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}
	if players > 0 {
		cfg.Players = players
	}
	if units > 0 {
		cfg.Units = units
	}
	if seed > 0 {
		cfg.Seed = seed
	}
	if games > 0 {
		cfg.Games = games
	}

	setupLogging(cfg.LogLevel)

	switch mode {
	case "demo":
		err = runDemo(cfg)
	case "play":
		err = runInteractive(cfg)
	case "sim":
		err = experiments.RunSetupBalance(cfg.Games, cfg.Units, cfg.Seed)
	default:
		err = fmt.Errorf("unknown mode %q", mode)
	}
	if err != nil {
		log.Fatal().Err(err).Msgf("%s failed", mode)
	}
}

func setupLogging(level string) {
	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		lvl = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(lvl)
}

func newGame(cfg config.Config) (*game.Game, error) {
	roster := make([]game.Player, cfg.Players)
	for i := range roster {
		roster[i] = game.NewPlayer(game.PlayerID(i + 1))
	}
	return game.NewGame(cfg.GameBoard(), roster, dice.Uniform(cfg.Players, cfg.Seed),
		game.WithInitialUnits(cfg.Units))
}

// runDemo plays one fully automated setup and prints the result.
func runDemo(cfg config.Config) error {
	g, err := newGame(cfg)
	if err != nil {
		return err
	}

	placers := make(map[game.PlayerID]engine.Placer, cfg.Players)
	for _, p := range g.State().Players() {
		placers[p.ID()] = player.NewRandom(cfg.Seed + uint64(p.ID()))
	}

	final, err := engine.NewLocal(g, placers).Run()
	if err != nil {
		return err
	}

	fmt.Println("the board after placement:")
	printBoard(final)
	return nil
}

// runInteractive runs a hot-seat setup: one terminal, every placement
// typed in by whoever is up. Rule violations are printed and the same
// player is asked again.
func runInteractive(cfg config.Config) error {
	g, err := newGame(cfg)
	if err != nil {
		return err
	}

	fmt.Println("territories:")
	printBoard(g.State())
	fmt.Println("type the territory id to place a unit in")

	human := player.NewInteractive(os.Stdin, os.Stdout)
	for g.State().Phase() == game.Placing {
		state := g.State()
		territory, err := human.NextPlacement(state)
		if errors.Is(err, io.EOF) {
			fmt.Println("session closed before placement finished")
			return nil
		}
		if err != nil {
			return err
		}
		if err := g.PlaceUnit(state.CurrentPlayer().ID(), territory); err != nil {
			fmt.Println(rejection(err))
		}
	}

	fmt.Println("placement finished, the board:")
	printBoard(g.State())
	return nil
}

// rejection turns a rule error into a line for the person at the
// terminal.
func rejection(err error) string {
	switch {
	case errors.Is(err, game.ErrUnknownTerritory):
		return "no such territory, try again"
	case errors.Is(err, game.ErrIllegalMove):
		return "that territory belongs to someone else, try again"
	default:
		return err.Error()
	}
}

func printBoard(s game.State) {
	for _, t := range s.Board().Territories() {
		owner := "unclaimed"
		if t.Claimed() {
			owner = fmt.Sprintf("player %d", t.Owner())
		}
		fmt.Printf("  %2d  %-22s %s\n", t.ID(), t.Name(), owner)
	}
}
