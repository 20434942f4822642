package engine

import "fmt"

// Mark is the per-letter feedback for one position of a guess.
type Mark uint8

const (
	Absent Mark = iota
	Present
	Exact
)

// MaxWordLength bounds the word length so a full pattern fits in a
// packed base-3 uint32.
const MaxWordLength = 16

// Pattern is the ordered per-position feedback for one guess. Two
// candidate words producing the same Pattern for the same guess are
// indistinguishable after that guess, so Pattern is the partition key.
// The base-3 packing is an internal detail; use At to read marks.
type Pattern struct {
	code   uint32
	length uint8
}

var pow3 = [MaxWordLength + 1]uint32{
	1, 3, 9, 27, 81, 243, 729, 2187, 6561, 19683,
	59049, 177147, 531441, 1594323, 4782969, 14348907, 43046721,
}

// PatternOf packs a sequence of marks.
func PatternOf(marks []Mark) Pattern {
	if len(marks) > MaxWordLength {
		panic(fmt.Sprintf("pattern too long: %d", len(marks)))
	}
	var code uint32
	for i, m := range marks {
		code += uint32(m) * pow3[i]
	}
	return Pattern{code: code, length: uint8(len(marks))}
}

// ParsePattern reads a textual pattern: '-' is Absent, '+' is Present,
// any other character is Exact.
func ParsePattern(s string) Pattern {
	marks := make([]Mark, len(s))
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '-':
			marks[i] = Absent
		case '+':
			marks[i] = Present
		default:
			marks[i] = Exact
		}
	}
	return PatternOf(marks)
}

func (p Pattern) Len() int {
	return int(p.length)
}

// At returns the mark at position i.
func (p Pattern) At(i int) Mark {
	return Mark(p.code / pow3[i] % 3)
}

// AllExact reports whether every position is an exact match.
func (p Pattern) AllExact() bool {
	return p.code == pow3[p.length]-1
}

func (p Pattern) String() string {
	b := make([]byte, p.length)
	for i := range b {
		switch p.At(i) {
		case Absent:
			b[i] = '-'
		case Present:
			b[i] = '+'
		case Exact:
			b[i] = '='
		}
	}
	return string(b)
}

// Classify scores guess against target using the official rule: exact
// matches consume their target letter first, then each remaining guess
// letter consumes the leftmost unconsumed occurrence of itself in the
// target. A letter appearing more often in the guess than in the target
// gets non-Absent marks only up to the target's count.
//
// Both words must share the same length; anything else is a caller bug.
func Classify(guess, target string) Pattern {
	if len(guess) != len(target) {
		panic(fmt.Sprintf("classify: length mismatch: %q vs %q", guess, target))
	}
	if len(guess) > MaxWordLength {
		panic(fmt.Sprintf("classify: word too long: %q", guess))
	}

	n := len(guess)
	var marks [MaxWordLength]Mark
	var used [MaxWordLength]bool

	for i := 0; i < n; i++ {
		if guess[i] == target[i] {
			marks[i] = Exact
			used[i] = true
		}
	}

	for i := 0; i < n; i++ {
		if marks[i] == Exact {
			continue
		}
		for j := 0; j < n; j++ {
			if used[j] || target[j] != guess[i] {
				continue
			}
			used[j] = true
			marks[i] = Present
			break
		}
	}

	return PatternOf(marks[:n])
}
