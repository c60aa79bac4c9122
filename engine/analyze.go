package engine

// maxChainDepth is a hard guard on chain search depth. Recursion is
// naturally bounded by the total visible card count (every step removes
// one card), so this only matters for absurdly large hand-built inputs.
const maxChainDepth = 64

// Analysis is the result of one optimal-sequence search. Key uniquely
// identifies the analyzed input so callers can skip re-render or
// re-animation when the position hasn't changed. Sequence is the chosen
// play-out and MaxCount its length; both are empty when no legal move
// exists. Analyses are transient: recomputed per request, never stored.
type Analysis struct {
	Key      string
	Sequence []Move
	MaxCount int
}

// AnalyzeOptimalSequence searches every legally reachable ordering of
// tableau-to-foundation transfers and returns the longest continuous
// chain. Ties break toward the lowest starting foundation index, then
// the lowest starting tableau index, applied at every step of the
// chain. Identical input always yields the identical sequence.
func AnalyzeOptimalSequence(tableaus []Tableau, foundations []Foundation, effects Effects, mode Mode) Analysis {
	a := chainSearch{
		effects: effects,
		mode:    mode,
		memo:    make(map[uint64][]Move),
	}
	seq := a.bestChain(tableaus, foundations, 0)
	return Analysis{
		Key:      PositionKey(tableaus, foundations, effects, mode),
		Sequence: seq,
		MaxCount: len(seq),
	}
}

// AnalyzePosition runs the analyzer over a full snapshot. This is the
// entry point the hint and auto-play features call for the player's own
// board.
func AnalyzePosition(pos Position) Analysis {
	return AnalyzeOptimalSequence(pos.Tableaus, pos.Foundations, pos.Effects, pos.Mode)
}

// chainSearch holds the per-call state of one analysis: the fixed
// effect bag and mode, plus a memo of best continuations keyed by
// position hash. A fresh chainSearch is built per call, so nothing is
// shared across analyses.
type chainSearch struct {
	effects Effects
	mode    Mode
	memo    map[uint64][]Move
}

// bestChain returns the longest move chain playable from the given
// stacks. Exploration is ascending (foundation, tableau) with
// strict-greater replacement, which realizes the tie-break order.
func (a *chainSearch) bestChain(tableaus []Tableau, foundations []Foundation, depth int) []Move {
	if depth >= maxChainDepth {
		return nil
	}
	h := stackHash(tableaus, foundations, a.effects, a.mode)
	if seq, ok := a.memo[h]; ok {
		return seq
	}

	var best []Move
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
			if !Playable(card, top, a.effects, a.mode) {
				continue
			}

			nextTableaus := make([]Tableau, len(tableaus))
			copy(nextTableaus, tableaus)
			nextTableaus[ti] = t.WithoutTop()

			nextFoundations := make([]Foundation, len(foundations))
			copy(nextFoundations, foundations)
			nextFoundations[fi] = f.WithCard(card)

			rest := a.bestChain(nextTableaus, nextFoundations, depth+1)
			if 1+len(rest) > len(best) {
				chain := make([]Move, 0, 1+len(rest))
				chain = append(chain, Move{Tableau: ti, Foundation: fi, Card: card})
				chain = append(chain, rest...)
				best = chain
			}
		}
	}

	a.memo[h] = best
	return best
}
