package engine

// LegalMoves enumerates every legal (tableau top → foundation) transfer
// in the given position, in ascending (foundation, tableau) order.
// Disabled foundations are skipped entirely and empty tableaus
// contribute nothing. The result is freshly allocated; moves must be
// regenerated whenever the position changes.
func LegalMoves(tableaus []Tableau, foundations []Foundation, effects Effects, mode Mode) []Move {
	var moves []Move
	for fi, f := range foundations {
		if f.Disabled() {
			continue
		}
		top, ok := f.Top()
		if !ok {
			continue
		}
		for ti, t := range tableaus {
			card, ok := t.Top()
			if !ok {
				continue
			}
			if Playable(card, top, effects, mode) {
				moves = append(moves, Move{Tableau: ti, Foundation: fi, Card: card})
			}
		}
	}
	return moves
}

// PositionMoves is a convenience wrapper over LegalMoves for a full
// snapshot.
func PositionMoves(pos Position) []Move {
	return LegalMoves(pos.Tableaus, pos.Foundations, pos.Effects, pos.Mode)
}
