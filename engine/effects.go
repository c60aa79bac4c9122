package engine

// EffectKind enumerates the status-effect kinds the legality rules
// recognize. Kinds outside this set are carried but ignored, so the
// world layer can attach effects the duel core has no opinion on.
type EffectKind uint8

const (
	EffectUnknown     EffectKind = iota
	EffectElementFlux            // any element may stack, rank rule unchanged
	EffectSealed                 // no card may be played at all
	EffectBlind                  // Magnitude = blind level for the target side
)

// Effect is one active status modifier. Magnitude is kind-specific and
// zero for kinds that don't use it.
type Effect struct {
	Kind      EffectKind
	Side      Side
	Magnitude int
}

// Effects is the opaque bag of active modifiers passed through a
// Position. The engine forwards it; only the kinds above are read.
type Effects []Effect

// Has reports whether any effect of the given kind is active,
// regardless of side or magnitude.
func (e Effects) Has(kind EffectKind) bool {
	for _, fx := range e {
		if fx.Kind == kind {
			return true
		}
	}
	return false
}

// MaxMagnitude returns the largest magnitude among effects of the given
// kind that target side (or both sides). Zero when none match.
func (e Effects) MaxMagnitude(kind EffectKind, side Side) int {
	max := 0
	for _, fx := range e {
		if fx.Kind != kind {
			continue
		}
		if fx.Side != SideBoth && fx.Side != side {
			continue
		}
		if fx.Magnitude > max {
			max = fx.Magnitude
		}
	}
	return max
}
