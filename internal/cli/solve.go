package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/soli0222/wordle-cli/internal/game"
)

func newSolveCmd() *cobra.Command {
	var (
		pessimistic bool
		gambling    float64
	)
	cmd := &cobra.Command{
		Use:   "solve",
		Short: "Solve interactively: enter feedback lines like \"crane -+=--\"",
		Long: `Solve interactively. After each of your guesses, enter a line of the form
"<word> <pattern>" where the pattern has one mark per letter:
'-' the letter is absent, '+' present elsewhere, anything else exact.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSolve(cmd, pessimistic, gambling)
		},
	}
	addStrategyFlags(cmd, &pessimistic, &gambling)
	return cmd
}

func runSolve(cmd *cobra.Command, pessimistic bool, gambling float64) error {
	s, err := buildSetup(cmd, pessimistic, gambling)
	if err != nil {
		return err
	}

	fmt.Printf("📖 %d words loaded, %d possible answers, strategy %s\n",
		len(s.vocab), len(s.answers), s.strategy)

	g := game.New(s.vocab, s.answers, s.strategy)
	session := game.NewSession(g, s.cfg.Length, s.cfg.Shown, os.Stdin, os.Stdout)

	status, err := session.Run()
	if err != nil {
		return err
	}
	if status == game.Playing {
		fmt.Printf("👋 Ended with %d possible answers left\n", len(g.Possible()))
	}
	return nil
}
