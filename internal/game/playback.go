package game

import (
	"github.com/soli0222/wordle-cli/internal/engine"
)

// RoundReport is invoked once per round of a replayed game, before the
// chosen guess is scored against the target.
type RoundReport func(round int, all, remaining []engine.Suggestion, guess string)

// PlayTarget replays a full game against a known target: each round the
// chosen guess is classified against the target directly instead of
// waiting for external feedback. It returns the terminal status and the
// number of guesses used, counting the final guess that names the
// answer. report may be nil.
func PlayTarget(target string, vocab, answers []string, strategy engine.Strategy, report RoundReport) (Status, int) {
	g := New(vocab, answers, strategy)
	for {
		switch g.Status() {
		case Stuck:
			return Stuck, g.Round()
		case Solved:
			// one more guess to type the remaining answer
			return Solved, g.Round() + 1
		}

		all, remaining := g.Suggest()
		guess := Pick(all, remaining)
		if report != nil {
			report(g.Round()+1, all, remaining, guess)
		}

		observed := engine.Classify(guess, target)
		if g.Apply(guess, observed) == Solved && observed.AllExact() {
			return Solved, g.Round()
		}
	}
}
