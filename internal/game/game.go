package game

import (
	"github.com/soli0222/wordle-cli/internal/engine"
)

// Status is the lifecycle of a game.
type Status int

const (
	Playing Status = iota
	Solved
	Stuck
)

func (s Status) String() string {
	switch s {
	case Playing:
		return "playing"
	case Solved:
		return "solved"
	case Stuck:
		return "stuck"
	}
	return "unknown"
}

// scoreMargin is how many bits the full-vocabulary leader must beat the
// possible-answer leader by before the driver prefers the pure
// information guess over a guess that could actually be the answer.
const scoreMargin = 0.005

// Game drives repeated rank/reduce rounds. It owns the possible-answer
// set exclusively and replaces it wholesale after each reduction; the
// vocabulary is read-only for the lifetime of the game.
type Game struct {
	vocab    []string
	possible []string
	strategy engine.Strategy
	round    int
}

func New(vocab, possible []string, strategy engine.Strategy) *Game {
	p := make([]string, len(possible))
	copy(p, possible)
	return &Game{vocab: vocab, possible: p, strategy: strategy}
}

// Possible returns the words still consistent with all feedback so far.
func (g *Game) Possible() []string {
	return g.possible
}

func (g *Game) Round() int {
	return g.round
}

func (g *Game) Status() Status {
	switch {
	case len(g.possible) == 0:
		return Stuck
	case len(g.possible) == 1:
		return Solved
	}
	return Playing
}

// Suggest ranks every vocabulary word against the current possible set.
func (g *Game) Suggest() (all, remaining []engine.Suggestion) {
	return engine.Rank(g.vocab, g.possible, g.strategy)
}

// Pick chooses the word to guess next: the best still-possible answer,
// unless the best pure-information guess beats it by at least the score
// margin.
func Pick(all, remaining []engine.Suggestion) string {
	if len(remaining) == 0 {
		return ""
	}
	if len(all) > 0 && all[0].Score >= remaining[0].Score+scoreMargin {
		return all[0].Word
	}
	return remaining[0].Word
}

// Apply records the observed feedback for guess, replaces the possible
// set with the consistent subset and returns the resulting status. An
// all-exact pattern is an immediate solve; an empty result means the
// feedback contradicts every remaining candidate.
func (g *Game) Apply(guess string, observed engine.Pattern) Status {
	g.round++
	if observed.AllExact() {
		g.possible = []string{guess}
		return Solved
	}
	g.possible = engine.Reduce(guess, observed, g.possible)
	return g.Status()
}
