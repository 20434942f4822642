package cli

import (
	"strings"
	"testing"
	"time"

	"github.com/soli0222/wordle-cli/internal/game"
)

func TestWorstBy(t *testing.T) {
	results := map[string]playOutcome{
		"crane": {status: game.Solved, rounds: 3},
		"slate": {status: game.Solved, rounds: 5},
		"place": {status: game.Solved, rounds: 5},
		"grape": {status: game.Solved, rounds: 2},
	}

	worst, words := worstBy(results, func(o playOutcome) int { return o.rounds })
	if worst != 5 {
		t.Errorf("worst = %d, want 5", worst)
	}
	if len(words) != 2 || words[0] != "place" || words[1] != "slate" {
		t.Errorf("words = %v, want [place slate]", words)
	}
}

func TestWorstBy_Empty(t *testing.T) {
	worst, words := worstBy(map[string]playOutcome{}, func(o playOutcome) int { return o.rounds })
	if worst != 0 || len(words) != 0 {
		t.Errorf("worstBy over no results = %d, %v", worst, words)
	}
}

func TestCapWords(t *testing.T) {
	words := []string{"a", "b", "c", "d"}
	got := capWords(words, 2)
	if len(got) != 3 {
		t.Fatalf("capWords() = %v", got)
	}
	if !strings.Contains(got[2], "+2 more") {
		t.Errorf("tail = %q, want a +2 more marker", got[2])
	}
	if len(capWords(words, 10)) != 4 {
		t.Error("capWords should leave short lists alone")
	}
}

func TestSummarize(t *testing.T) {
	results := map[string]playOutcome{
		"crane": {status: game.Solved, rounds: 3},
		"slate": {status: game.Solved, rounds: 8},
		"xxxxx": {status: game.Stuck, rounds: 1},
	}

	rec := summarize(results, "average", 1500*time.Millisecond)

	if rec.Words != 3 || rec.Solved != 2 || rec.Stuck != 1 {
		t.Errorf("counts = %d/%d/%d, want 3/2/1", rec.Words, rec.Solved, rec.Stuck)
	}
	if rec.SolvedInSix != 1 {
		t.Errorf("SolvedInSix = %d, want 1", rec.SolvedInSix)
	}
	if rec.MaxRounds != 8 {
		t.Errorf("MaxRounds = %d, want 8", rec.MaxRounds)
	}
	if rec.AvgRounds != 4 {
		t.Errorf("AvgRounds = %v, want 4", rec.AvgRounds)
	}
	if rec.Strategy != "average" {
		t.Errorf("Strategy = %q, want average", rec.Strategy)
	}
	if rec.ElapsedMillis != 1500 {
		t.Errorf("ElapsedMillis = %d, want 1500", rec.ElapsedMillis)
	}
}
