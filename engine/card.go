// Package engine implements the Duelgrove duel rules.
//
// This package provides the deterministic core of the card duel: the
// card/tableau/foundation model, play legality in standard and wild
// modes, legal-move enumeration, and the optimal-sequence analyzer.
// Everything here is pure computation over value snapshots; rendering,
// input, and turn scheduling live outside and only feed positions in.
package engine

// Element constants — the adjacency-matching suit of a card.
const (
	ElementFire   uint8 = 0
	ElementWater  uint8 = 1
	ElementEarth  uint8 = 2
	ElementAir    uint8 = 3
	ElementAether uint8 = 4 // matches any element
)

// Rank bounds. Ranks are 1-based; 0 is not a valid rank.
const (
	MinRank uint8 = 1
	MaxRank uint8 = 13
)

// Card is an immutable card value. Glyph is cosmetic only and never
// consulted by legality or analysis.
type Card struct {
	Rank    uint8
	Element uint8
	Glyph   rune
}

// NewCard constructs a Card with no glyph.
func NewCard(rank, element uint8) Card {
	return Card{Rank: rank, Element: element}
}

// elementMatches reports whether two elements may stack on each other.
// Aether is wild-exempt on either side.
func elementMatches(a, b uint8) bool {
	return a == b || a == ElementAether || b == ElementAether
}

// rankAdjacent reports whether two ranks differ by exactly one.
func rankAdjacent(a, b uint8) bool {
	return a+1 == b || b+1 == a
}

// rankWraps reports whether two ranks are the extreme pair (wild-mode
// wrap-around adjacency).
func rankWraps(a, b uint8) bool {
	return (a == MinRank && b == MaxRank) || (a == MaxRank && b == MinRank)
}
