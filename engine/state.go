package engine

// Tableau is an ordered face-up stack. Only the top (last element) is
// ever playable. The zero value is a valid empty tableau.
type Tableau []Card

// Empty reports whether the tableau holds no cards.
func (t Tableau) Empty() bool { return len(t) == 0 }

// Top returns the exposed card and true, or a zero Card and false when
// the tableau is empty.
func (t Tableau) Top() (Card, bool) {
	if len(t) == 0 {
		return Card{}, false
	}
	return t[len(t)-1], true
}

// WithoutTop returns a copy of the tableau with the top card removed.
// The receiver is never mutated.
func (t Tableau) WithoutTop() Tableau {
	if len(t) == 0 {
		return nil
	}
	cp := make(Tableau, len(t)-1)
	copy(cp, t[:len(t)-1])
	return cp
}

// FoundationActor carries the liveness stats of the actor guarding a
// foundation. Owned by the world-state layer; the engine only reads it.
type FoundationActor struct {
	HP      int
	Stamina int
}

// Foundation is an ordered stack receiving played cards. Its top card
// constrains the next legal play. Actor may be nil (always enabled).
type Foundation struct {
	Cards []Card
	Actor *FoundationActor
}

// Top returns the foundation's top card and true, or false when the
// foundation is empty.
func (f Foundation) Top() (Card, bool) {
	if len(f.Cards) == 0 {
		return Card{}, false
	}
	return f.Cards[len(f.Cards)-1], true
}

// Disabled reports whether the foundation must be skipped as a move
// destination. A missing actor means enabled; the check suppresses only
// on an explicit non-positive HP or stamina.
func (f Foundation) Disabled() bool {
	return f.Actor != nil && (f.Actor.HP <= 0 || f.Actor.Stamina <= 0)
}

// WithCard returns a copy of the foundation with card placed on top.
func (f Foundation) WithCard(card Card) Foundation {
	cp := make([]Card, len(f.Cards)+1)
	copy(cp, f.Cards)
	cp[len(f.Cards)] = card
	return Foundation{Cards: cp, Actor: f.Actor}
}

// Mode selects which legality predicate applies to a position.
type Mode uint8

const (
	ModeStandard Mode = iota
	ModeWild
)

// ModeFor maps the biome's randomly-generated flag to a legality mode.
// The flag itself is computed by the world layer, once per snapshot.
func ModeFor(randomlyGenerated bool) Mode {
	if randomlyGenerated {
		return ModeWild
	}
	return ModeStandard
}

// Side identifies whose half of the board an effect or query targets.
type Side uint8

const (
	SideBoth Side = iota
	SidePlayer
	SideEnemy
)

// Position is a read-only snapshot of one decision point: the acting
// side's tableaus, the opposing foundations, the active effect bag, and
// the legality mode. The engine never mutates a Position; every
// transformation copies.
type Position struct {
	Tableaus    []Tableau
	Foundations []Foundation
	Effects     Effects
	Mode        Mode
}

// Move transfers the exposed top card of a tableau onto a foundation.
// Equality is structural; a Move is only valid against the snapshot
// that produced it and must be regenerated every decision.
type Move struct {
	Tableau    int
	Foundation int
	Card       Card
}
