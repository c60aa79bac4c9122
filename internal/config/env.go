// Package config loads the duelsim harness configuration: environment
// variables (with optional .env support) and an optional YAML file of
// difficulty-profile overrides for balance tuning.
package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/emberfall-games/duelgrove/ai"
)

// Sim holds the match-simulator settings.
type Sim struct {
	Matches          int
	Seed             uint64
	PlayerDifficulty ai.Difficulty
	EnemyDifficulty  ai.Difficulty
	WildBiome        bool
	LogLevel         string
	ProfilesPath     string
}

// Default returns the baseline simulator settings.
func Default() Sim {
	return Sim{
		Matches:          100,
		Seed:             1,
		PlayerDifficulty: ai.DifficultyNormal,
		EnemyDifficulty:  ai.DifficultyNormal,
		LogLevel:         "info",
	}
}

// FromEnv loads simulator settings from the environment, falling back
// to defaults for anything unset. A .env file in the working directory
// is honored when present.
func FromEnv() Sim {
	_ = godotenv.Load()

	cfg := Default()
	if val := getEnvInt("DUELSIM_MATCHES"); val > 0 {
		cfg.Matches = val
	}
	if val := getEnvInt("DUELSIM_SEED"); val > 0 {
		cfg.Seed = uint64(val)
	}
	if val := os.Getenv("DUELSIM_PLAYER_DIFFICULTY"); val != "" {
		cfg.PlayerDifficulty = ai.Difficulty(val)
	}
	if val := os.Getenv("DUELSIM_ENEMY_DIFFICULTY"); val != "" {
		cfg.EnemyDifficulty = ai.Difficulty(val)
	}
	if val := os.Getenv("DUELSIM_WILD_BIOME"); val == "1" || val == "true" {
		cfg.WildBiome = true
	}
	if val := os.Getenv("DUELSIM_LOG_LEVEL"); val != "" {
		cfg.LogLevel = val
	}
	if val := os.Getenv("DUELSIM_PROFILES"); val != "" {
		cfg.ProfilesPath = val
	}
	return cfg
}

func getEnvInt(key string) int {
	val := os.Getenv(key)
	if val == "" {
		return 0
	}
	num, err := strconv.Atoi(val)
	if err != nil {
		return 0
	}
	return num
}
