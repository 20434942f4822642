package words

import (
	"bufio"
	"fmt"
	"os"

	"github.com/soli0222/wordle-cli/internal/engine"
)

// Load reads a word list, one word per line, keeping only all-lowercase
// words of exactly the requested length. Any other line is silently
// dropped.
func Load(path string, length int) ([]string, error) {
	if length < 2 || length > engine.MaxWordLength {
		return nil, fmt.Errorf("word length must be between 2 and %d, got %d", engine.MaxWordLength, length)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open dictionary: %w", err)
	}
	defer func() { _ = f.Close() }()

	var out []string
	s := bufio.NewScanner(f)
	for s.Scan() {
		line := s.Text()
		if isWord(line, length) {
			out = append(out, line)
		}
	}
	if err := s.Err(); err != nil {
		return nil, fmt.Errorf("failed to read dictionary: %w", err)
	}
	return out, nil
}

func isWord(s string, length int) bool {
	if len(s) != length {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < 'a' || s[i] > 'z' {
			return false
		}
	}
	return true
}
