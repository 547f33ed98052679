package experiments

import (
	"conquest/experiments/metrics"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRunGame(t *testing.T) {
	config := metrics.MatchConfig{ID: 1, Players: 3, Units: 4, Seed: 7}

	record, claims, moves, err := runGame(1, config, 7)

	require.NoError(t, err, "A random setup on the classic board should finish")
	require.Equal(t, config.Players*config.Units, record.Placements,
		"Every player should place exactly the configured quota")
	require.Len(t, moves, record.Placements, "Every placement should leave a move record")
	require.GreaterOrEqual(t, record.StartingPlayer, 1, "The starter should be seated")
	require.LessOrEqual(t, record.StartingPlayer, 3, "The starter should be seated")
	require.Len(t, claims, 3, "Every player should get a claim record")

	totalTerritories := 0
	totalReinforcements := 0
	for _, c := range claims {
		totalTerritories += c.Territories
		totalReinforcements += c.Reinforcements
	}
	require.Equal(t, record.Placements, totalTerritories+totalReinforcements,
		"Every placement either claims or reinforces")

	claimMoves := 0
	for _, m := range moves {
		if m.Claim {
			claimMoves++
		}
	}
	require.Equal(t, totalTerritories, claimMoves,
		"Claim moves should match the territories held at the end")
	require.True(t, moves[0].Claim, "The very first placement always claims")
}
