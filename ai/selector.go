package ai

import "github.com/emberfall-games/duelgrove/engine"

// Selector picks the opponent's moves. It holds only the random
// source; all game state arrives per call, so one Selector can serve
// any number of concurrent duels as long as each has its own Rand.
type Selector struct {
	rng Rand
}

// NewSelector returns a Selector drawing from rng.
func NewSelector(rng Rand) *Selector {
	return &Selector{rng: rng}
}

// SelectEnemyMove chooses zero or one move for the opponent at the
// current decision point. movesMadeThisTurn is maintained by the turn
// controller: it starts at 0 and increments after each accepted move,
// and the controller calls again until nil comes back (or its own turn
// cap trips).
//
// A nil result means the turn ends: no legal move remained, or the
// early-stop roll fired. Early stop never fires on the first move of a
// turn, so the opponent always attempts at least one play.
func (s *Selector) SelectEnemyMove(pos engine.Position, difficulty Difficulty, movesMadeThisTurn int) *engine.Move {
	profile := ProfileFor(difficulty)
	blind := ActiveBlindLevel(pos, engine.SideEnemy)

	visible := MaskTableaus(pos.Tableaus, blind)
	legal := engine.LegalMoves(visible, pos.Foundations, pos.Effects, pos.Mode)
	if len(legal) == 0 {
		return nil
	}

	if movesMadeThisTurn > 0 && s.rng.Float64() < profile.EarlyStopChance {
		return nil
	}

	// Full blindness: no analyzer consultation, no difficulty
	// weighting. Uniform over whatever is legal.
	if blind >= BlindFullLevel {
		return &legal[s.rng.Intn(len(legal))]
	}

	analysis := engine.AnalyzeOptimalSequence(visible, pos.Foundations, pos.Effects, pos.Mode)
	var optimal *engine.Move
	if len(analysis.Sequence) > 0 {
		optimal = &analysis.Sequence[0]
	}

	if difficulty == DifficultyDivine && optimal != nil {
		return optimal
	}

	if optimal != nil && s.rng.Float64() < profile.OptimalChance {
		return optimal
	}

	return s.pickAlternative(legal, optimal)
}

// pickAlternative draws uniformly among the legal moves that are not
// the optimal one. When excluding the optimal move leaves nothing, it
// falls back to a uniform pick over all legal moves.
func (s *Selector) pickAlternative(legal []engine.Move, optimal *engine.Move) *engine.Move {
	if optimal == nil {
		return &legal[s.rng.Intn(len(legal))]
	}
	alternatives := make([]engine.Move, 0, len(legal))
	for _, m := range legal {
		if m != *optimal {
			alternatives = append(alternatives, m)
		}
	}
	if len(alternatives) == 0 {
		return &legal[s.rng.Intn(len(legal))]
	}
	return &alternatives[s.rng.Intn(len(alternatives))]
}
