package ai

// Difficulty names one of the fixed opponent behavior profiles.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyNormal Difficulty = "normal"
	DifficultyHard   Difficulty = "hard"
	DifficultyDivine Difficulty = "divine"
)

// Profile holds the tunables governing one difficulty: how often the
// opponent plays the analyzer's optimal move, how often it stops a turn
// early after at least one move, and the pacing range between moves.
type Profile struct {
	OptimalChance   float64
	EarlyStopChance float64
	MinDelayMs      int
	MaxDelayMs      int
}

// profiles is the static difficulty table. Divine is fully
// deterministic: always the optimal move, never an early stop.
// Bounds (chances in [0,1], MinDelayMs <= MaxDelayMs) are validated by
// the table's tests, not at call time.
var profiles = map[Difficulty]Profile{
	DifficultyEasy:   {OptimalChance: 0.25, EarlyStopChance: 0.35, MinDelayMs: 900, MaxDelayMs: 2200},
	DifficultyNormal: {OptimalChance: 0.55, EarlyStopChance: 0.20, MinDelayMs: 700, MaxDelayMs: 1700},
	DifficultyHard:   {OptimalChance: 0.85, EarlyStopChance: 0.08, MinDelayMs: 450, MaxDelayMs: 1200},
	DifficultyDivine: {OptimalChance: 1.0, EarlyStopChance: 0.0, MinDelayMs: 300, MaxDelayMs: 800},
}

// OverrideProfile replaces the table entry for d. Startup-only tuning
// hook (the duelsim harness applies YAML overrides before any duel
// starts); the table is read concurrently once play begins.
func OverrideProfile(d Difficulty, p Profile) {
	profiles[d] = p
}

// ProfileFor returns the behavior profile for a difficulty. Unknown
// names fall back to normal so a stale settings value can't strand the
// opponent without a profile.
func ProfileFor(d Difficulty) Profile {
	if p, ok := profiles[d]; ok {
		return p
	}
	return profiles[DifficultyNormal]
}

// Difficulties returns the named levels in ascending strength order.
func Difficulties() []Difficulty {
	return []Difficulty{DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyDivine}
}

// MoveDelayMs samples a pacing delay for the next opponent move:
// uniform over [MinDelayMs, MaxDelayMs] inclusive, resampled on every
// call. The caller owns the actual waiting; the core never sleeps.
func MoveDelayMs(p Profile, rng Rand) int {
	span := p.MaxDelayMs - p.MinDelayMs
	if span <= 0 {
		return p.MinDelayMs
	}
	return p.MinDelayMs + rng.Intn(span+1)
}
