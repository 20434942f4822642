package engine

import (
	"strings"
	"testing"
)

func TestClassify_SelfIsAllExact(t *testing.T) {
	for _, w := range []string{"crane", "speed", "aaaaa", "ox", "abcdefgh"} {
		p := Classify(w, w)
		if !p.AllExact() {
			t.Errorf("Classify(%q, %q) = %s, want all exact", w, w, p)
		}
	}
}

func TestClassify_KnownPatterns(t *testing.T) {
	tests := []struct {
		guess, target string
		want          string
	}{
		{"crane", "place", "+-=-="},
		{"sheer", "crepe", "--=++"},
		{"speed", "erase", "+-++-"},
		{"speed", "abide", "--+-+"},
		{"aabbb", "bbaaa", "++++-"},
		{"slate", "slate", "====="},
		{"crane", "mount", "---=-"},
	}
	for _, tt := range tests {
		got := Classify(tt.guess, tt.target).String()
		if got != tt.want {
			t.Errorf("Classify(%q, %q) = %s, want %s", tt.guess, tt.target, got, tt.want)
		}
	}
}

func TestClassify_RepeatedLetterConsumption(t *testing.T) {
	// "abide" holds a single e, so only the first excess e of the guess
	// may be marked present; the second must be absent.
	p := Classify("speed", "abide")
	if p.At(2) != Present {
		t.Errorf("first e should be Present, got %v", p.At(2))
	}
	if p.At(3) != Absent {
		t.Errorf("second e should be Absent, got %v", p.At(3))
	}
}

func TestClassify_ExactCountMatchesSharedPositions(t *testing.T) {
	words := []string{"crane", "trace", "grape", "place", "slate"}
	for _, g := range words {
		for _, w := range words {
			p := Classify(g, w)
			shared := 0
			for i := 0; i < len(g); i++ {
				if g[i] == w[i] {
					shared++
				}
			}
			exact := 0
			for i := 0; i < p.Len(); i++ {
				if p.At(i) == Exact {
					exact++
				}
			}
			if exact != shared {
				t.Errorf("Classify(%q, %q) has %d Exact marks, want %d", g, w, exact, shared)
			}
		}
	}
}

func TestClassify_LengthMismatchPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic on length mismatch")
		}
	}()
	Classify("crane", "mouse!")
}

func TestParsePattern(t *testing.T) {
	p := ParsePattern("-+g+-")
	want := []Mark{Absent, Present, Exact, Present, Absent}
	if p.Len() != len(want) {
		t.Fatalf("Len() = %d, want %d", p.Len(), len(want))
	}
	for i, m := range want {
		if p.At(i) != m {
			t.Errorf("At(%d) = %v, want %v", i, p.At(i), m)
		}
	}
	if got := p.String(); got != "-+=+-" {
		t.Errorf("String() = %q, want %q", got, "-+=+-")
	}
}

func TestPattern_AllExact(t *testing.T) {
	if !ParsePattern("=====").AllExact() {
		t.Error("all-exact pattern should report AllExact")
	}
	if ParsePattern("====-").AllExact() {
		t.Error("pattern with an Absent mark should not report AllExact")
	}
	if ParsePattern("++++2").AllExact() {
		t.Error("pattern with Present marks should not report AllExact")
	}
}

func TestPattern_EqualityAsMapKey(t *testing.T) {
	a := Classify("crane", "place")
	b := ParsePattern("+-=-=")
	if a != b {
		t.Fatalf("equal patterns compare unequal: %s vs %s", a, b)
	}
	m := map[Pattern]int{a: 1}
	if m[b] != 1 {
		t.Error("pattern should be usable as a map key")
	}
}

func TestPatternOf_Roundtrip(t *testing.T) {
	marks := []Mark{Exact, Absent, Present, Present, Exact, Absent, Absent}
	p := PatternOf(marks)
	for i, m := range marks {
		if p.At(i) != m {
			t.Errorf("At(%d) = %v, want %v", i, p.At(i), m)
		}
	}
	if p.Len() != len(marks) {
		t.Errorf("Len() = %d, want %d", p.Len(), len(marks))
	}
}

func TestParsePattern_AnyOtherCharIsExact(t *testing.T) {
	for _, s := range []string{"=", "g", "G", "2", "x"} {
		p := ParsePattern(strings.Repeat(s, 3))
		if !p.AllExact() {
			t.Errorf("ParsePattern(%q repeated) should be all Exact", s)
		}
	}
}
