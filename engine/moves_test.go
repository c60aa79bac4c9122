package engine

import "testing"

func foundationOn(top Card) Foundation {
	return Foundation{Cards: []Card{top}}
}

func TestLegalMovesOrdering(t *testing.T) {
	// Both tableaus can play onto both foundations.
	tableaus := []Tableau{
		{NewCard(5, ElementAether)},
		{NewCard(3, ElementAether)},
	}
	foundations := []Foundation{
		foundationOn(NewCard(4, ElementFire)),
		foundationOn(NewCard(4, ElementWater)),
	}

	moves := LegalMoves(tableaus, foundations, nil, ModeStandard)
	want := []Move{
		{Tableau: 0, Foundation: 0, Card: tableaus[0][0]},
		{Tableau: 1, Foundation: 0, Card: tableaus[1][0]},
		{Tableau: 0, Foundation: 1, Card: tableaus[0][0]},
		{Tableau: 1, Foundation: 1, Card: tableaus[1][0]},
	}
	if len(moves) != len(want) {
		t.Fatalf("got %d moves, want %d", len(moves), len(want))
	}
	for i := range want {
		if moves[i] != want[i] {
			t.Errorf("move %d = %+v, want %+v", i, moves[i], want[i])
		}
	}
}

func TestLegalMovesSkipsEmptyTableaus(t *testing.T) {
	tableaus := []Tableau{nil, {NewCard(5, ElementFire)}, {}}
	foundations := []Foundation{foundationOn(NewCard(4, ElementFire))}

	moves := LegalMoves(tableaus, foundations, nil, ModeStandard)
	if len(moves) != 1 || moves[0].Tableau != 1 {
		t.Errorf("expected the single move from tableau 1, got %+v", moves)
	}
}

func TestLegalMovesDisabledFoundation(t *testing.T) {
	tableaus := []Tableau{{NewCard(5, ElementFire)}}
	cases := []struct {
		name    string
		actor   *FoundationActor
		enabled bool
	}{
		{"no actor", nil, true},
		{"alive", &FoundationActor{HP: 10, Stamina: 5}, true},
		{"dead", &FoundationActor{HP: 0, Stamina: 5}, false},
		{"exhausted", &FoundationActor{HP: 10, Stamina: 0}, false},
		{"negative hp", &FoundationActor{HP: -3, Stamina: 5}, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			foundations := []Foundation{{
				Cards: []Card{NewCard(4, ElementFire)},
				Actor: tc.actor,
			}}
			moves := LegalMoves(tableaus, foundations, nil, ModeStandard)
			if tc.enabled && len(moves) != 1 {
				t.Errorf("expected one move, got %d", len(moves))
			}
			if !tc.enabled && len(moves) != 0 {
				t.Errorf("disabled foundation produced moves: %+v", moves)
			}
		})
	}
}

func TestLegalMovesDegenerateInputs(t *testing.T) {
	if moves := LegalMoves(nil, nil, nil, ModeStandard); len(moves) != 0 {
		t.Errorf("nil inputs should yield no moves, got %+v", moves)
	}
	// Foundations with no tableaus, and vice versa.
	if moves := LegalMoves(nil, []Foundation{foundationOn(NewCard(4, ElementFire))}, nil, ModeStandard); len(moves) != 0 {
		t.Errorf("no tableaus should yield no moves, got %+v", moves)
	}
	if moves := LegalMoves([]Tableau{{NewCard(5, ElementFire)}}, nil, nil, ModeStandard); len(moves) != 0 {
		t.Errorf("no foundations should yield no moves, got %+v", moves)
	}
}

func TestLegalMovesCardMatchesTop(t *testing.T) {
	tab := Tableau{NewCard(9, ElementWater), NewCard(5, ElementFire)}
	foundations := []Foundation{foundationOn(NewCard(4, ElementFire))}

	moves := LegalMoves([]Tableau{tab}, foundations, nil, ModeStandard)
	if len(moves) != 1 {
		t.Fatalf("expected one move, got %d", len(moves))
	}
	top, _ := tab.Top()
	if moves[0].Card != top {
		t.Errorf("move card %+v does not equal tableau top %+v", moves[0].Card, top)
	}
}
