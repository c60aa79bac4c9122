package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/emberfall-games/duelgrove/ai"
)

// profileEntry is the YAML shape of one difficulty override.
type profileEntry struct {
	OptimalChance   float64 `yaml:"optimal_chance"`
	EarlyStopChance float64 `yaml:"early_stop_chance"`
	MinDelayMs      int     `yaml:"min_delay_ms"`
	MaxDelayMs      int     `yaml:"max_delay_ms"`
}

// LoadProfiles reads a YAML file mapping difficulty names to profile
// tunables and returns the validated overrides. A malformed profile is
// a configuration bug, so loading fails rather than clamping.
func LoadProfiles(path string) (map[ai.Difficulty]ai.Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read profiles: %w", err)
	}

	var raw map[string]profileEntry
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse profiles: %w", err)
	}

	overrides := make(map[ai.Difficulty]ai.Profile, len(raw))
	for name, entry := range raw {
		p := ai.Profile{
			OptimalChance:   entry.OptimalChance,
			EarlyStopChance: entry.EarlyStopChance,
			MinDelayMs:      entry.MinDelayMs,
			MaxDelayMs:      entry.MaxDelayMs,
		}
		if err := ValidateProfile(p); err != nil {
			return nil, fmt.Errorf("profile %q: %w", name, err)
		}
		overrides[ai.Difficulty(name)] = p
	}
	return overrides, nil
}

// ValidateProfile checks the profile bounds: chances in [0, 1], delays
// non-negative, min not above max.
func ValidateProfile(p ai.Profile) error {
	if p.OptimalChance < 0 || p.OptimalChance > 1 {
		return fmt.Errorf("optimal_chance %v out of [0,1]", p.OptimalChance)
	}
	if p.EarlyStopChance < 0 || p.EarlyStopChance > 1 {
		return fmt.Errorf("early_stop_chance %v out of [0,1]", p.EarlyStopChance)
	}
	if p.MinDelayMs < 0 || p.MaxDelayMs < 0 {
		return fmt.Errorf("negative delay bounds %d..%d", p.MinDelayMs, p.MaxDelayMs)
	}
	if p.MinDelayMs > p.MaxDelayMs {
		return fmt.Errorf("min_delay_ms %d exceeds max_delay_ms %d", p.MinDelayMs, p.MaxDelayMs)
	}
	return nil
}

// ApplyProfiles installs the overrides into the difficulty table.
// Call once at startup, before any duel begins.
func ApplyProfiles(overrides map[ai.Difficulty]ai.Profile) {
	for d, p := range overrides {
		ai.OverrideProfile(d, p)
	}
}
