package engine

import "testing"

// ---------------------------------------------------------------------------
// Standard-mode legality
// ---------------------------------------------------------------------------

func TestCanPlayAdjacency(t *testing.T) {
	cases := []struct {
		name string
		card Card
		top  Card
		want bool
	}{
		{"one above", NewCard(5, ElementFire), NewCard(4, ElementFire), true},
		{"one below", NewCard(4, ElementFire), NewCard(5, ElementFire), true},
		{"equal rank", NewCard(5, ElementFire), NewCard(5, ElementFire), false},
		{"gap of two", NewCard(7, ElementFire), NewCard(5, ElementFire), false},
		{"element mismatch", NewCard(5, ElementWater), NewCard(4, ElementFire), false},
		{"aether card", NewCard(5, ElementAether), NewCard(4, ElementFire), true},
		{"aether top", NewCard(5, ElementEarth), NewCard(4, ElementAether), true},
		{"extremes not adjacent", NewCard(MinRank, ElementAir), NewCard(MaxRank, ElementAir), false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := CanPlay(tc.card, tc.top, nil); got != tc.want {
				t.Errorf("CanPlay(%v, %v) = %v, want %v", tc.card, tc.top, got, tc.want)
			}
		})
	}
}

func TestCanPlayElementFlux(t *testing.T) {
	fx := Effects{{Kind: EffectElementFlux}}
	card := NewCard(5, ElementWater)
	top := NewCard(4, ElementFire)

	if CanPlay(card, top, nil) {
		t.Fatal("mismatched elements should not stack without flux")
	}
	if !CanPlay(card, top, fx) {
		t.Error("ElementFlux should relax the element constraint")
	}
	// Rank rule is unchanged under flux.
	if CanPlay(NewCard(7, ElementWater), top, fx) {
		t.Error("ElementFlux must not relax the rank constraint")
	}
}

func TestCanPlaySealed(t *testing.T) {
	fx := Effects{{Kind: EffectSealed}}
	card := NewCard(5, ElementFire)
	top := NewCard(4, ElementFire)

	if CanPlay(card, top, fx) {
		t.Error("Sealed should suppress a standard play")
	}
	if CanPlayWild(NewCard(MinRank, ElementFire), NewCard(MaxRank, ElementFire), fx) {
		t.Error("Sealed should suppress a wrap play")
	}
}

func TestUnknownEffectIgnored(t *testing.T) {
	fx := Effects{{Kind: EffectUnknown}, {Kind: EffectKind(42)}}
	card := NewCard(5, ElementFire)
	top := NewCard(4, ElementFire)

	if !CanPlay(card, top, fx) {
		t.Error("unrecognized effects must not change a legal play")
	}
	if CanPlay(NewCard(9, ElementFire), top, fx) {
		t.Error("unrecognized effects must not change an illegal play")
	}
}

// ---------------------------------------------------------------------------
// Wild mode
// ---------------------------------------------------------------------------

func TestCanPlayWildWrap(t *testing.T) {
	cases := []struct {
		name string
		card Card
		top  Card
		want bool
	}{
		{"min on max", NewCard(MinRank, ElementFire), NewCard(MaxRank, ElementFire), true},
		{"max on min", NewCard(MaxRank, ElementFire), NewCard(MinRank, ElementFire), true},
		{"wrap needs element match", NewCard(MinRank, ElementWater), NewCard(MaxRank, ElementFire), false},
		{"wrap with aether", NewCard(MinRank, ElementAether), NewCard(MaxRank, ElementFire), true},
		{"no wrap off-extreme", NewCard(2, ElementFire), NewCard(MaxRank, ElementFire), false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := CanPlayWild(tc.card, tc.top, nil); got != tc.want {
				t.Errorf("CanPlayWild(%v, %v) = %v, want %v", tc.card, tc.top, got, tc.want)
			}
		})
	}
}

// TestWildSupersetOfStandard checks that every standard-legal pair stays
// legal in wild mode, across the full rank and element space.
func TestWildSupersetOfStandard(t *testing.T) {
	elements := []uint8{ElementFire, ElementWater, ElementEarth, ElementAir, ElementAether}
	for r1 := MinRank; r1 <= MaxRank; r1++ {
		for r2 := MinRank; r2 <= MaxRank; r2++ {
			for _, e1 := range elements {
				for _, e2 := range elements {
					card := NewCard(r1, e1)
					top := NewCard(r2, e2)
					if CanPlay(card, top, nil) && !CanPlayWild(card, top, nil) {
						t.Fatalf("pair %v on %v legal in standard but not wild", card, top)
					}
				}
			}
		}
	}
}

func TestPlayableModeDispatch(t *testing.T) {
	card := NewCard(MinRank, ElementFire)
	top := NewCard(MaxRank, ElementFire)

	if Playable(card, top, nil, ModeStandard) {
		t.Error("wrap pair should be illegal in standard mode")
	}
	if !Playable(card, top, nil, ModeWild) {
		t.Error("wrap pair should be legal in wild mode")
	}
	if ModeFor(true) != ModeWild || ModeFor(false) != ModeStandard {
		t.Error("ModeFor should map the randomly-generated flag to wild")
	}
}
