package engine

// CanPlay reports whether card may be placed on top under the standard
// adjacency relation: ranks differ by exactly one and the elements
// match (or either is Aether, or an ElementFlux effect is active).
// A Sealed effect suppresses every play. O(1), no allocation.
func CanPlay(card, top Card, effects Effects) bool {
	if effects.Has(EffectSealed) {
		return false
	}
	if !rankAdjacent(card.Rank, top.Rank) {
		return false
	}
	return elementMatches(card.Element, top.Element) || effects.Has(EffectElementFlux)
}

// CanPlayWild reports legality under wild mode: the standard relation,
// or the wrap-around exception joining the extreme ranks. Every play
// legal under CanPlay is legal here.
func CanPlayWild(card, top Card, effects Effects) bool {
	if CanPlay(card, top, effects) {
		return true
	}
	if effects.Has(EffectSealed) {
		return false
	}
	if !rankWraps(card.Rank, top.Rank) {
		return false
	}
	return elementMatches(card.Element, top.Element) || effects.Has(EffectElementFlux)
}

// Playable dispatches to the legality predicate selected by mode.
func Playable(card, top Card, effects Effects, mode Mode) bool {
	if mode == ModeWild {
		return CanPlayWild(card, top, effects)
	}
	return CanPlay(card, top, effects)
}
