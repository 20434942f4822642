package cli

import (
	"fmt"
	"sort"
	"time"

	"github.com/spf13/cobra"

	"github.com/soli0222/wordle-cli/internal/metrics"
)

func newStatsCmd() *cobra.Command {
	var days int
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show recorded benchmark results",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStats(days)
		},
	}
	cmd.Flags().IntVar(&days, "days", 30, "number of days to include")
	return cmd
}

func runStats(days int) error {
	if days <= 0 {
		days = 30
	}

	now := time.Now()
	since := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location()).AddDate(0, 0, -days+1)
	items, err := metrics.LoadSince("", since)
	if err != nil {
		return err
	}
	if len(items) == 0 {
		fmt.Printf("📊 No benchmark runs in the last %d days\n", days)
		return nil
	}

	sort.Slice(items, func(i, j int) bool {
		if items[i].Date == items[j].Date {
			return items[i].RecordedAt < items[j].RecordedAt
		}
		return items[i].Date < items[j].Date
	})

	fmt.Printf("📊 Last %d days (%s〜%s), %d runs\n",
		days, since.Format("2006-01-02"), now.Format("2006-01-02"), len(items))

	byStrategy := groupByStrategy(items)
	names := make([]string, 0, len(byStrategy))
	for name := range byStrategy {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		agg := byStrategy[name]
		fmt.Printf("- %s: runs=%d, words=%d, solved=%.1f%%, in-six=%.1f%%, avg-rounds=%.2f, max=%d\n",
			name,
			agg.runs,
			agg.words,
			safeRate(agg.solved, agg.words)*100,
			safeRate(agg.inSix, agg.words)*100,
			agg.avgRounds/float64(agg.runs),
			agg.maxRounds,
		)
	}
	return nil
}

type strategyAgg struct {
	runs      int
	words     int
	solved    int
	inSix     int
	avgRounds float64
	maxRounds int
}

func groupByStrategy(items []metrics.BenchRecord) map[string]strategyAgg {
	m := make(map[string]strategyAgg)
	for _, item := range items {
		agg := m[item.Strategy]
		agg.runs++
		agg.words += item.Words
		agg.solved += item.Solved
		agg.inSix += item.SolvedInSix
		agg.avgRounds += item.AvgRounds
		if item.MaxRounds > agg.maxRounds {
			agg.maxRounds = item.MaxRounds
		}
		m[item.Strategy] = agg
	}
	return m
}

func safeRate(num, den int) float64 {
	if den <= 0 {
		return 0
	}
	return float64(num) / float64(den)
}
