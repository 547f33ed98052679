// Package experiments runs batches of automated setups and stores the
// results as CSV for offline analysis.
package experiments

import (
	"fmt"
	"time"

	"conquest/dice"
	"conquest/engine"
	"conquest/experiments/metrics"
	"conquest/game"
	"conquest/player"

	"github.com/rs/zerolog/log"
)

// Roster sizes the setup balance experiment sweeps over.
var rosterSizes = []int{2, 3, 4, 5, 6}

// RunSetupBalance plays the given number of random-placement games per
// roster size on the classic board, every player placing the given unit
// quota, and records how even the opening territory split comes out:
// who started, who claimed how much, and every accepted placement.
func RunSetupBalance(games, units int, seed uint64) error {
	configs := make([]metrics.MatchConfig, len(rosterSizes))
	for i, n := range rosterSizes {
		configs[i] = metrics.MatchConfig{
			ID:      i + 1,
			Players: n,
			Units:   units,
			Seed:    seed,
		}
	}

	count := 0
	gameRecords := []metrics.GameRecord{}
	claimRecords := []metrics.ClaimRecord{}
	moveRecords := []metrics.MoveRecord{}

	log.Info().Msg("starting setup balance experiment...")

	for _, config := range configs {
		log.Info().Msgf("starting %d games with %d players...", games, config.Players)

		for i := 0; i < games; i++ {
			count++
			record, claims, moves, err := runGame(count, config, seed+uint64(count))
			if err != nil {
				return fmt.Errorf("game %d with %d players: %w", count, config.Players, err)
			}
			gameRecords = append(gameRecords, record)
			claimRecords = append(claimRecords, claims...)
			moveRecords = append(moveRecords, moves...)

			log.Info().Msgf("completed game %d of %d: player %d started, %d placements",
				i+1, games, record.StartingPlayer, record.Placements)
		}
	}

	log.Info().Msg("completed setup balance experiment")

	writer, err := metrics.NewWriter("setup_balance")
	if err != nil {
		return fmt.Errorf("failed to create experiment writer: %w", err)
	}

	if err := writer.WriteMatchConfigs(configs); err != nil {
		return fmt.Errorf("failed to store match configs: %w", err)
	}
	log.Info().Msg("stored match configs")

	if err := writer.WriteGameRecords(gameRecords); err != nil {
		return fmt.Errorf("failed to store game records: %w", err)
	}
	log.Info().Msg("stored game records")

	if err := writer.WriteClaimRecords(claimRecords); err != nil {
		return fmt.Errorf("failed to store claim records: %w", err)
	}
	log.Info().Msg("stored claim records")

	if err := writer.WriteMoveRecords(moveRecords); err != nil {
		return fmt.Errorf("failed to store move records: %w", err)
	}
	log.Info().Msg("stored move records")

	return nil
}

// runGame plays one random-placement setup to the playing phase and
// folds the engine updates into records.
func runGame(gameID int, config metrics.MatchConfig, seed uint64) (metrics.GameRecord, []metrics.ClaimRecord, []metrics.MoveRecord, error) {
	board := game.ClassicBoard()
	players := make([]game.Player, config.Players)
	placers := make(map[game.PlayerID]engine.Placer, config.Players)
	for i := range players {
		id := game.PlayerID(i + 1)
		players[i] = game.NewPlayer(id)
		placers[id] = player.NewRandom(seed + uint64(i))
	}

	g, err := game.NewGame(board, players, dice.Uniform(config.Players, seed),
		game.WithInitialUnits(config.Units))
	if err != nil {
		return metrics.GameRecord{}, nil, nil, err
	}
	starting := g.State().CurrentPlayer().ID()

	eng := engine.NewLocal(g, placers)
	start := time.Now()
	final, err := eng.Run()
	if err != nil {
		return metrics.GameRecord{}, nil, nil, err
	}
	end := time.Now()

	updates := eng.Updates()
	record := metrics.GameRecord{
		ID:             gameID,
		Match:          config.ID,
		StartingPlayer: int(starting),
		Placements:     len(updates),
		StartTime:      start,
		EndTime:        end,
		Duration:       end.Sub(start),
	}

	moves := make([]metrics.MoveRecord, 0, len(updates))
	reinforcements := map[game.PlayerID]int{}
	placed := map[game.TerritoryID]bool{}
	for step, u := range updates {
		claim := !placed[u.Territory]
		placed[u.Territory] = true
		if !claim {
			reinforcements[u.Player]++
		}
		moves = append(moves, metrics.MoveRecord{
			Game:      gameID,
			Step:      step + 1,
			Player:    int(u.Player),
			Territory: int(u.Territory),
			Claim:     claim,
		})
	}

	territories := map[game.PlayerID]int{}
	for _, t := range final.Board().Territories() {
		if t.Claimed() {
			territories[t.Owner()]++
		}
	}
	claims := make([]metrics.ClaimRecord, 0, len(players))
	for _, p := range final.Players() {
		claims = append(claims, metrics.ClaimRecord{
			Game:           gameID,
			Player:         int(p.ID()),
			Territories:    territories[p.ID()],
			Reinforcements: reinforcements[p.ID()],
		})
	}

	return record, claims, moves, nil
}
