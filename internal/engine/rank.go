package engine

import (
	"runtime"
	"sort"

	"golang.org/x/sync/errgroup"
)

// Suggestion is a scored guess candidate.
type Suggestion struct {
	Word  string
	Score float64
}

// Rank scores every vocabulary word against the current possible-answer
// set and returns two views sorted by descending score: the full
// vocabulary (best information guesses, not necessarily still-valid
// answers) and the possible answers only (guaranteed-valid final
// guesses). Ties preserve input order so output is deterministic.
//
// Scoring one word is independent of every other, so the vocabulary is
// fanned out across one worker per CPU; the possible set is read-only
// for the whole pass.
func Rank(vocab, possible []string, strategy Strategy) (all, remaining []Suggestion) {
	scores := make([]float64, len(vocab))
	total := len(possible)

	workers := runtime.GOMAXPROCS(0)
	if workers > len(vocab) {
		workers = 1
	}
	var g errgroup.Group
	chunk := (len(vocab) + workers - 1) / workers
	for start := 0; start < len(vocab); start += chunk {
		start := start
		end := start + chunk
		if end > len(vocab) {
			end = len(vocab)
		}
		g.Go(func() error {
			for i := start; i < end; i++ {
				scores[i] = strategy.Score(BucketSizes(vocab[i], possible), total)
			}
			return nil
		})
	}
	g.Wait()

	byWord := make(map[string]float64, len(vocab))
	all = make([]Suggestion, len(vocab))
	for i, w := range vocab {
		all[i] = Suggestion{Word: w, Score: scores[i]}
		byWord[w] = scores[i]
	}

	remaining = make([]Suggestion, len(possible))
	for i, w := range possible {
		s, ok := byWord[w]
		if !ok {
			// possible word outside the scoring vocabulary
			s = strategy.Score(BucketSizes(w, possible), total)
		}
		remaining[i] = Suggestion{Word: w, Score: s}
	}

	sortByScore(all)
	sortByScore(remaining)
	return all, remaining
}

func sortByScore(s []Suggestion) {
	sort.SliceStable(s, func(i, j int) bool {
		return s[i].Score > s[j].Score
	})
}

// Top returns the first n suggestions, or all of them if fewer exist.
func Top(s []Suggestion, n int) []Suggestion {
	if n > len(s) {
		n = len(s)
	}
	return s[:n]
}
