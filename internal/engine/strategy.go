package engine

import (
	"fmt"
	"math"
	"sort"
)

// Strategy reduces a guess's bucket-size distribution to a single
// comparable score, in bits; higher is better. total is the size of the
// candidate set the distribution was computed over. Every strategy
// returns 0 for an empty distribution instead of propagating NaN/Inf.
type Strategy interface {
	Score(sizes []int, total int) float64
	String() string
}

// WorstCase scores a guess by the information guaranteed in its worst
// outcome: log2(total / largest bucket).
type WorstCase struct{}

func (WorstCase) Score(sizes []int, total int) float64 {
	worst := 0
	for _, n := range sizes {
		if n > worst {
			worst = n
		}
	}
	if worst == 0 {
		return 0
	}
	return math.Log2(float64(total) / float64(worst))
}

func (WorstCase) String() string { return "worst-case" }

// Average scores a guess by the Shannon entropy of the induced
// partition: the expected information gain for a uniformly distributed
// target.
type Average struct{}

func (Average) Score(sizes []int, total int) float64 {
	if total == 0 {
		return 0
	}
	var bits float64
	for _, n := range sizes {
		p := float64(n) / float64(total)
		bits += p * math.Log2(1/p)
	}
	return bits
}

func (Average) String() string { return "average" }

// Gambling scores a guess by the bucket at a percentile of the
// descending size distribution. Factor 0 degenerates to WorstCase;
// factors near 1 score the optimistic outcome.
type Gambling struct {
	Factor float64
}

func (g Gambling) Score(sizes []int, total int) float64 {
	sorted := make([]int, len(sizes))
	copy(sorted, sizes)
	sort.Sort(sort.Reverse(sort.IntSlice(sorted)))

	running := 0
	for _, n := range sorted {
		running += n
		if float64(running)/float64(total) > g.Factor {
			return math.Log2(float64(total) / float64(n))
		}
	}
	return 0
}

func (g Gambling) String() string { return fmt.Sprintf("gambling(%.2f)", g.Factor) }

// ParseStrategy resolves a configured strategy name. The gambling
// factor applies only to the gambling strategy.
func ParseStrategy(name string, factor float64) (Strategy, error) {
	switch name {
	case "", "average":
		return Average{}, nil
	case "worst-case":
		return WorstCase{}, nil
	case "gambling":
		if factor < 0 || factor > 1 {
			return nil, fmt.Errorf("gambling factor must be in [0,1], got %v", factor)
		}
		return Gambling{Factor: factor}, nil
	default:
		return nil, fmt.Errorf("unknown strategy %q (want average, worst-case or gambling)", name)
	}
}
