package cli

import (
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
	"golang.org/x/exp/constraints"
	"golang.org/x/sync/errgroup"

	"github.com/soli0222/wordle-cli/internal/game"
	"github.com/soli0222/wordle-cli/internal/metrics"
)

func newBenchCmd() *cobra.Command {
	var (
		pessimistic bool
		gambling    float64
		limit       int
		workers     int
	)
	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Replay every answer word and report how the strategy performs",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBench(cmd, pessimistic, gambling, limit, workers)
		},
	}
	addStrategyFlags(cmd, &pessimistic, &gambling)
	cmd.Flags().IntVar(&limit, "limit", 0, "replay only the first N answer words")
	cmd.Flags().IntVar(&workers, "workers", 4, "number of games played concurrently")
	return cmd
}

func runBench(cmd *cobra.Command, pessimistic bool, gambling float64, limit, workers int) error {
	s, err := buildSetup(cmd, pessimistic, gambling)
	if err != nil {
		return err
	}

	targets := s.answers
	if limit > 0 && limit < len(targets) {
		targets = targets[:limit]
	}
	if workers <= 0 {
		workers = 1
	}

	fmt.Printf("🎯 Replaying %d words with strategy %s\n", len(targets), s.strategy)
	bar := progressbar.Default(int64(len(targets)))

	results := make(map[string]playOutcome, len(targets))
	var mu sync.Mutex

	start := time.Now()
	var g errgroup.Group
	g.SetLimit(workers)
	for _, target := range targets {
		target := target
		g.Go(func() error {
			status, rounds := game.PlayTarget(target, s.vocab, s.answers, s.strategy, nil)
			mu.Lock()
			results[target] = playOutcome{status: status, rounds: rounds}
			mu.Unlock()
			_ = bar.Add(1)
			return nil
		})
	}
	_ = g.Wait()
	elapsed := time.Since(start)

	printBenchReport(results)

	record := summarize(results, s.strategy.String(), elapsed)
	if err := metrics.Append("", record); err != nil {
		fmt.Printf("⚠️  Could not record metrics: %v\n", err)
	}
	return nil
}

type playOutcome struct {
	status game.Status
	rounds int
}

func printBenchReport(results map[string]playOutcome) {
	hist := map[int]int{}
	maxRounds := 0
	for _, r := range results {
		hist[r.rounds]++
		if r.rounds > maxRounds {
			maxRounds = r.rounds
		}
	}

	total := len(results)
	cum := 0
	for i := 1; i <= maxRounds; i++ {
		if hist[i] == 0 {
			continue
		}
		cum += hist[i]
		fmt.Printf("%2d tries: %5d/%d (cum. %5d/%d)\n", i, hist[i], total, cum, total)
	}

	worstRounds, worstWords := worstBy(results, func(o playOutcome) int { return o.rounds })
	fmt.Printf("hardest (%d tries): %s\n", worstRounds, strings.Join(capWords(worstWords, 10), " "))

	var stuck []string
	for w, r := range results {
		if r.status == game.Stuck {
			stuck = append(stuck, w)
		}
	}
	if len(stuck) > 0 {
		sort.Strings(stuck)
		fmt.Printf("⚠️  unsolved: %s\n", strings.Join(capWords(stuck, 10), " "))
	}
}

// worstBy returns the highest badness over all outcomes and the words
// that reached it, sorted.
func worstBy[T constraints.Ordered](results map[string]playOutcome, badness func(playOutcome) T) (T, []string) {
	var worst T
	var worstWords []string
	for w, o := range results {
		b := badness(o)
		switch {
		case len(worstWords) == 0 || worst < b:
			worst = b
			worstWords = []string{w}
		case worst == b:
			worstWords = append(worstWords, w)
		}
	}
	sort.Strings(worstWords)
	return worst, worstWords
}

func capWords(words []string, n int) []string {
	if len(words) <= n {
		return words
	}
	return append(words[:n:n], fmt.Sprintf("… +%d more", len(words)-n))
}

func summarize(results map[string]playOutcome, strategy string, elapsed time.Duration) metrics.BenchRecord {
	rec := metrics.BenchRecord{
		Date:          time.Now().Format("2006-01-02"),
		Strategy:      strategy,
		Words:         len(results),
		ElapsedMillis: elapsed.Milliseconds(),
	}
	totalRounds := 0
	for _, r := range results {
		switch r.status {
		case game.Solved:
			rec.Solved++
			if r.rounds <= 6 {
				rec.SolvedInSix++
			}
		case game.Stuck:
			rec.Stuck++
		}
		totalRounds += r.rounds
		if r.rounds > rec.MaxRounds {
			rec.MaxRounds = r.rounds
		}
	}
	if len(results) > 0 {
		rec.AvgRounds = float64(totalRounds) / float64(len(results))
	}
	return rec
}
