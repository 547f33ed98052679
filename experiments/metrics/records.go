package metrics

import "time"

// MatchConfig describes one simulated table: how many players sit down
// and with what placement quota.
type MatchConfig struct {
	ID      int
	Players int
	Units   int
	Seed    uint64
}

// GameRecord summarizes one finished setup.
type GameRecord struct {
	ID             int
	Match          int // MatchConfig.ID
	StartingPlayer int
	Placements     int
	StartTime      time.Time
	EndTime        time.Time
	Duration       time.Duration
}

// ClaimRecord is the territory split one player ended the setup with.
type ClaimRecord struct {
	Game           int // GameRecord.ID
	Player         int
	Territories    int
	Reinforcements int
}

// MoveRecord is a single accepted placement. Claim marks the first
// placement on a territory as opposed to a reinforcement.
type MoveRecord struct {
	Game      int // GameRecord.ID
	Step      int
	Player    int
	Territory int
	Claim     bool
}
