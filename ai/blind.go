package ai

import "github.com/emberfall-games/duelgrove/engine"

// BlindFullLevel is the blind level at which the opponent has no
// information at all: the analyzer must not be consulted and the
// selector falls back to a uniform pick over legal moves.
const BlindFullLevel = 4

// blindHidden maps levels 1-3 to the tableau indexes they hide. The
// sets grow monotonically so escalating blindness never reveals a
// tableau that a lower level hid.
var blindHidden = [4][]int{
	1: {1},
	2: {1, 3},
	3: {1, 3, 5},
}

// ActiveBlindLevel reads the strongest Blind effect targeting side from
// the snapshot's effect bag. Zero means full visibility.
func ActiveBlindLevel(pos engine.Position, side engine.Side) int {
	return pos.Effects.MaxMagnitude(engine.EffectBlind, side)
}

// HiddenTableaus returns the tableau indexes hidden at the given blind
// level. Level 0 hides nothing; levels at or above BlindFullLevel
// return nil because masking is moot — the caller must not analyze at
// all.
func HiddenTableaus(level int) []int {
	if level <= 0 || level >= BlindFullLevel {
		return nil
	}
	return blindHidden[level]
}

// MaskTableaus builds the analysis-input view of the tableaus for the
// given blind level: a copy with every hidden index replaced by an
// empty stack. The input slice is never mutated; hidden tableaus
// contribute no moves regardless of their real contents.
func MaskTableaus(tableaus []engine.Tableau, level int) []engine.Tableau {
	hidden := HiddenTableaus(level)
	if len(hidden) == 0 {
		return tableaus
	}
	masked := make([]engine.Tableau, len(tableaus))
	copy(masked, tableaus)
	for _, idx := range hidden {
		if idx < len(masked) {
			masked[idx] = nil
		}
	}
	return masked
}
