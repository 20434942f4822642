package game

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/soli0222/wordle-cli/internal/engine"
)

// Session manages an interactive solving session: it prints ranked
// suggestions, reads feedback lines of the form "<word> <pattern>" and
// narrows the possible-answer set until the answer is identified.
type Session struct {
	game   *Game
	length int
	shown  int
	in     io.Reader
	out    io.Writer
}

// NewSession creates a session over the given game. shown bounds the
// preview length of each ranked list.
func NewSession(g *Game, length, shown int, in io.Reader, out io.Writer) *Session {
	return &Session{game: g, length: length, shown: shown, in: in, out: out}
}

// Run executes the session until the answer is identified, the feedback
// becomes contradictory, or the input ends. Malformed lines are
// reported and skipped.
func (s *Session) Run() (Status, error) {
	s.printSuggestions()

	scanner := bufio.NewScanner(s.in)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		guess, observed, err := ParseFeedback(line, s.length)
		if err != nil {
			fmt.Fprintf(s.out, "⚠️  %v\n", err)
			continue
		}
		fmt.Fprintf(s.out, "Got word %s and marks %s\n", guess, observed)

		switch s.game.Apply(guess, observed) {
		case Solved:
			fmt.Fprintf(s.out, "✅ The answer is %q\n", s.game.Possible()[0])
			return Solved, nil
		case Stuck:
			fmt.Fprintln(s.out, "⚠️  No word matches that feedback; check the marks you entered")
			return Stuck, nil
		}

		s.printSuggestions()
	}
	if err := scanner.Err(); err != nil {
		return s.game.Status(), fmt.Errorf("failed to read feedback: %w", err)
	}
	return s.game.Status(), nil
}

func (s *Session) printSuggestions() {
	all, remaining := s.game.Suggest()

	fmt.Fprintf(s.out, "Suggestions (%d): %s\n", len(all), formatSuggestions(engine.Top(all, s.shown)))
	fmt.Fprintf(s.out, "Guesses (%d): %s\n", len(remaining), formatSuggestions(engine.Top(remaining, s.shown)))
	if pick := Pick(all, remaining); pick != "" {
		fmt.Fprintf(s.out, "🔎 Suggest you try %q\n", pick)
	}
}

func formatSuggestions(sugg []engine.Suggestion) string {
	var sb strings.Builder
	for i, s := range sugg {
		if i > 0 {
			sb.WriteString(" ")
		}
		sb.WriteString(fmt.Sprintf("%s(%.3f)", s.Word, s.Score))
	}
	return sb.String()
}

// ParseFeedback parses a "<word> <pattern>" feedback line. The pattern
// uses '-' for Absent, '+' for Present and any other character for
// Exact; both fields must match the configured word length.
func ParseFeedback(line string, length int) (string, engine.Pattern, error) {
	fields := strings.Fields(line)
	if len(fields) != 2 {
		return "", engine.Pattern{}, fmt.Errorf("expected \"<word> <pattern>\", got %q", line)
	}
	word, marks := fields[0], fields[1]
	if len(word) != length {
		return "", engine.Pattern{}, fmt.Errorf("word %q must be %d letters", word, length)
	}
	if len(marks) != length {
		return "", engine.Pattern{}, fmt.Errorf("pattern %q must be %d marks", marks, length)
	}
	return word, engine.ParsePattern(marks), nil
}
