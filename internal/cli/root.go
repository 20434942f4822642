package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/soli0222/wordle-cli/internal/config"
	"github.com/soli0222/wordle-cli/internal/engine"
	"github.com/soli0222/wordle-cli/internal/words"
)

var (
	flagDict    string
	flagGuesses string
	flagLength  int
)

func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "wordle-cli",
		Short: "Wordle assistant: suggests the guess that narrows the answer fastest",
	}

	cmd.PersistentFlags().StringVar(&flagDict, "dict", "", "path to the word dictionary")
	cmd.PersistentFlags().StringVar(&flagGuesses, "guesses", "", "path to a restricted answer dictionary")
	cmd.PersistentFlags().IntVar(&flagLength, "length", 0, "word length")

	cmd.AddCommand(newSolveCmd())
	cmd.AddCommand(newPlayCmd())
	cmd.AddCommand(newBenchCmd())
	cmd.AddCommand(newStatsCmd())
	cmd.AddCommand(newVersionCmd())

	return cmd
}

func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// setup is everything a game needs: the loaded dictionaries and the
// resolved strategy.
type setup struct {
	cfg      *config.Config
	vocab    []string
	answers  []string
	strategy engine.Strategy
}

// buildSetup merges config and flags, then loads the dictionaries. A
// conflicting strategy selection is rejected here, before any game
// state exists.
func buildSetup(cmd *cobra.Command, pessimistic bool, gambling float64) (*setup, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	if flagDict != "" {
		cfg.Dict = flagDict
	}
	if flagGuesses != "" {
		cfg.Guesses = flagGuesses
	}
	if flagLength != 0 {
		cfg.Length = flagLength
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	strategy, err := resolveStrategy(cfg, pessimistic, cmd.Flags().Changed("gambling"), gambling)
	if err != nil {
		return nil, err
	}

	vocab, err := words.Load(cfg.Dict, cfg.Length)
	if err != nil {
		return nil, err
	}
	if len(vocab) == 0 {
		return nil, fmt.Errorf("dictionary %s contains no %d-letter words", cfg.Dict, cfg.Length)
	}

	answers := vocab
	if cfg.Guesses != "" {
		answers, err = words.Load(cfg.Guesses, cfg.Length)
		if err != nil {
			return nil, err
		}
	}

	return &setup{cfg: cfg, vocab: vocab, answers: answers, strategy: strategy}, nil
}

func resolveStrategy(cfg *config.Config, pessimistic, gamblingSet bool, gambling float64) (engine.Strategy, error) {
	if pessimistic && gamblingSet {
		return nil, fmt.Errorf("--pessimistic and --gambling are mutually exclusive")
	}

	name := cfg.Strategy
	factor := cfg.GamblingFactor
	switch {
	case pessimistic:
		name = "worst-case"
	case gamblingSet:
		name = "gambling"
		factor = gambling
	}
	return engine.ParseStrategy(name, factor)
}

// addStrategyFlags registers the per-command strategy selection flags.
func addStrategyFlags(cmd *cobra.Command, pessimistic *bool, gambling *float64) {
	cmd.Flags().BoolVarP(pessimistic, "pessimistic", "p", false, "use the worst-case strategy (good against Absurdle)")
	cmd.Flags().Float64VarP(gambling, "gambling", "g", 0.5, "use the gambling strategy with the given factor")
}
