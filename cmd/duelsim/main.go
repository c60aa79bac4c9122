// duelsim runs AI-vs-AI duels to sanity-check difficulty balance.
// It deals random positions, drives both sides through the selector
// loop (enumerate → delay → apply → repeat), and reports win/stall
// rates per difficulty pairing.
package main

import (
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/emberfall-games/duelgrove/ai"
	"github.com/emberfall-games/duelgrove/engine"
	"github.com/emberfall-games/duelgrove/internal/config"
)

const (
	tableausPerSide    = 4
	cardsPerTableau    = 5
	foundationsPerSide = 2
	maxTurnsPerMatch   = 60
	maxMovesPerTurn    = 12
)

func main() {
	cfg := config.FromEnv()

	log := logrus.New()
	if level, err := logrus.ParseLevel(cfg.LogLevel); err == nil {
		log.SetLevel(level)
	}

	if cfg.ProfilesPath != "" {
		overrides, err := config.LoadProfiles(cfg.ProfilesPath)
		if err != nil {
			log.WithError(err).Fatal("load difficulty profiles")
		}
		config.ApplyProfiles(overrides)
		log.WithField("path", cfg.ProfilesPath).Info("applied profile overrides")
	}

	rng := ai.NewXorshift(cfg.Seed)
	selector := ai.NewSelector(rng)
	mode := engine.ModeFor(cfg.WildBiome)

	difficulties := [2]ai.Difficulty{cfg.PlayerDifficulty, cfg.EnemyDifficulty}
	var wins [2]int
	var draws int

	for i := 0; i < cfg.Matches; i++ {
		matchID := uuid.New()
		winner := runMatch(log.WithField("match", matchID), selector, rng, difficulties, mode)
		if winner < 0 {
			draws++
		} else {
			wins[winner]++
		}
	}

	log.WithFields(logrus.Fields{
		"matches": cfg.Matches,
		"side0":   string(difficulties[0]),
		"side1":   string(difficulties[1]),
		"wins0":   wins[0],
		"wins1":   wins[1],
		"draws":   draws,
	}).Info("simulation complete")
}

// duel holds the mutable match state the simulator owns. Each side
// plays from its own tableaus onto the other side's foundations; the
// engine only ever sees immutable snapshots of this.
type duel struct {
	tableaus    [2][]engine.Tableau
	foundations [2][]engine.Foundation
	mode        engine.Mode
	played      [2]int
}

// positionFor builds the side's decision snapshot: own tableaus,
// opposing foundations.
func (d *duel) positionFor(side int) engine.Position {
	return engine.Position{
		Tableaus:    d.tableaus[side],
		Foundations: d.foundations[1-side],
		Mode:        d.mode,
	}
}

// apply commits a selected move to the match state.
func (d *duel) apply(side int, m engine.Move) {
	d.tableaus[side][m.Tableau] = d.tableaus[side][m.Tableau].WithoutTop()
	d.foundations[1-side][m.Foundation] = d.foundations[1-side][m.Foundation].WithCard(m.Card)
	d.played[side]++
}

// runMatch plays one dealt duel to completion and returns the winning
// side, or -1 on a draw. "Winning" here is simply most cards played —
// the simulator cares about behavior spread, not the full RPG scoring.
func runMatch(log *logrus.Entry, selector *ai.Selector, rng ai.Rand, difficulties [2]ai.Difficulty, mode engine.Mode) int {
	d := deal(rng, mode)

	stalled := 0
	for turn := 0; turn < maxTurnsPerMatch && stalled < 2; turn++ {
		side := turn % 2
		moved := playTurn(log, selector, rng, d, side, difficulties[side])
		if moved == 0 {
			stalled++
		} else {
			stalled = 0
		}
	}

	log.WithFields(logrus.Fields{
		"played0": d.played[0],
		"played1": d.played[1],
	}).Debug("match finished")

	switch {
	case d.played[0] > d.played[1]:
		return 0
	case d.played[1] > d.played[0]:
		return 1
	default:
		return -1
	}
}

// playTurn drives one side's selector loop and returns the number of
// moves committed. Delays are sampled (to exercise the pacing model)
// but not slept on.
func playTurn(log *logrus.Entry, selector *ai.Selector, rng ai.Rand, d *duel, side int, difficulty ai.Difficulty) int {
	profile := ai.ProfileFor(difficulty)
	moves := 0
	for moves < maxMovesPerTurn {
		m := selector.SelectEnemyMove(d.positionFor(side), difficulty, moves)
		if m == nil {
			break
		}
		delay := ai.MoveDelayMs(profile, rng)
		log.WithFields(logrus.Fields{
			"side":       side,
			"tableau":    m.Tableau,
			"foundation": m.Foundation,
			"rank":       m.Card.Rank,
			"delay_ms":   delay,
		}).Debug("move")
		d.apply(side, *m)
		moves++
	}
	return moves
}

// deal shuffles a full elemental deck and lays out both sides'
// tableaus and foundations.
func deal(rng ai.Rand, mode engine.Mode) *duel {
	deck := make([]engine.Card, 0, 4*int(engine.MaxRank))
	for element := engine.ElementFire; element <= engine.ElementAir; element++ {
		for rank := engine.MinRank; rank <= engine.MaxRank; rank++ {
			deck = append(deck, engine.NewCard(rank, element))
		}
	}
	for i := len(deck) - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		deck[i], deck[j] = deck[j], deck[i]
	}

	d := &duel{mode: mode}
	next := 0
	for side := 0; side < 2; side++ {
		for t := 0; t < tableausPerSide; t++ {
			tab := make(engine.Tableau, cardsPerTableau)
			copy(tab, deck[next:next+cardsPerTableau])
			next += cardsPerTableau
			d.tableaus[side] = append(d.tableaus[side], tab)
		}
		for f := 0; f < foundationsPerSide; f++ {
			d.foundations[side] = append(d.foundations[side], engine.Foundation{
				Cards: []engine.Card{deck[next]},
				Actor: &engine.FoundationActor{HP: 20, Stamina: 10},
			})
			next++
		}
	}
	return d
}
