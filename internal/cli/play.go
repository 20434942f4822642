package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/soli0222/wordle-cli/internal/engine"
	"github.com/soli0222/wordle-cli/internal/game"
)

func newPlayCmd() *cobra.Command {
	var (
		pessimistic bool
		gambling    float64
	)
	cmd := &cobra.Command{
		Use:   "play <word>",
		Short: "Replay a game against a known target word",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPlay(cmd, args[0], pessimistic, gambling)
		},
	}
	addStrategyFlags(cmd, &pessimistic, &gambling)
	return cmd
}

func runPlay(cmd *cobra.Command, target string, pessimistic bool, gambling float64) error {
	s, err := buildSetup(cmd, pessimistic, gambling)
	if err != nil {
		return err
	}
	if len(target) != s.cfg.Length {
		return fmt.Errorf("target %q must be %d letters", target, s.cfg.Length)
	}

	report := func(round int, all, remaining []engine.Suggestion, guess string) {
		fmt.Printf("Suggestions (%d): %s\n", len(all), formatTop(all, s.cfg.Shown))
		fmt.Printf("Guesses (%d): %s\n", len(remaining), formatTop(remaining, s.cfg.Shown))
		fmt.Printf("Try %d, word %q\n", round, guess)
	}

	status, rounds := game.PlayTarget(target, s.vocab, s.answers, s.strategy, report)
	switch status {
	case game.Solved:
		fmt.Printf("✅ Got it in %d tries\n", rounds)
	case game.Stuck:
		fmt.Printf("⚠️  Stumped after %d tries, cannot figure it out\n", rounds)
	}
	return nil
}

func formatTop(sugg []engine.Suggestion, n int) string {
	out := ""
	for i, s := range engine.Top(sugg, n) {
		if i > 0 {
			out += " "
		}
		out += fmt.Sprintf("%s(%.3f)", s.Word, s.Score)
	}
	return out
}
