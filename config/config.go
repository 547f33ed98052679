// Package config loads runtime settings from an optional YAML file with
// CONQUEST_* environment variables on top.
package config

import (
	"fmt"

	"conquest/game"

	"github.com/spf13/viper"
)

// TerritoryDef is one board entry in the config file.
type TerritoryDef struct {
	ID   int    `mapstructure:"id"`
	Name string `mapstructure:"name"`
}

// Config carries everything the binary needs to set up a game.
type Config struct {
	Players  int            `mapstructure:"players"`
	Units    int            `mapstructure:"units"`
	Seed     uint64         `mapstructure:"seed"`
	Games    int            `mapstructure:"games"`
	LogLevel string         `mapstructure:"log_level"`
	Board    []TerritoryDef `mapstructure:"board"`
}

// Load reads the given config file, if any, applies environment
// variables and falls back to defaults for the rest.
func Load(path string) (Config, error) {
	v := viper.New()
	v.SetDefault("players", 3)
	v.SetDefault("units", game.InitialUnits)
	v.SetDefault("seed", 1)
	v.SetDefault("games", 30)
	v.SetDefault("log_level", "info")

	v.SetEnvPrefix("CONQUEST")
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if cfg.Players < 1 {
		return Config{}, fmt.Errorf("players must be at least 1, got %d", cfg.Players)
	}
	if cfg.Units < 1 {
		return Config{}, fmt.Errorf("units must be at least 1, got %d", cfg.Units)
	}
	return cfg, nil
}

// GameBoard builds the configured board, or the classic one when the
// config defines none.
func (c Config) GameBoard() game.Board {
	if len(c.Board) == 0 {
		return game.ClassicBoard()
	}
	ts := make([]game.Territory, len(c.Board))
	for i, def := range c.Board {
		ts[i] = game.NewTerritory(game.TerritoryID(def.ID), def.Name)
	}
	return game.NewBoard(ts)
}
