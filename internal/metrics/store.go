package metrics

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// BenchRecord is one benchmark run: a full replay of the answer list
// with a fixed strategy.
type BenchRecord struct {
	Date          string  `json:"date"`
	RecordedAt    string  `json:"recorded_at"`
	Strategy      string  `json:"strategy"`
	Words         int     `json:"words"`
	Solved        int     `json:"solved"`
	Stuck         int     `json:"stuck"`
	AvgRounds     float64 `json:"avg_rounds"`
	MaxRounds     int     `json:"max_rounds"`
	SolvedInSix   int     `json:"solved_in_six"`
	ElapsedMillis int64   `json:"elapsed_millis"`
}

func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, ".config", "wordle-cli", "metrics.jsonl"), nil
}

func Append(path string, item BenchRecord) error {
	if path == "" {
		var err error
		path, err = DefaultPath()
		if err != nil {
			return err
		}
	}
	if item.RecordedAt == "" {
		item.RecordedAt = time.Now().Format(time.RFC3339)
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create metrics dir: %w", err)
	}

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0600)
	if err != nil {
		return fmt.Errorf("failed to open metrics file: %w", err)
	}
	defer func() { _ = f.Close() }()

	b, err := json.Marshal(item)
	if err != nil {
		return fmt.Errorf("failed to marshal metrics: %w", err)
	}
	if _, err := f.Write(append(b, '\n')); err != nil {
		return fmt.Errorf("failed to append metrics: %w", err)
	}
	return nil
}

func LoadSince(path string, since time.Time) ([]BenchRecord, error) {
	if path == "" {
		var err error
		path, err = DefaultPath()
		if err != nil {
			return nil, err
		}
	}

	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to open metrics file: %w", err)
	}
	defer func() { _ = f.Close() }()

	var out []BenchRecord
	s := bufio.NewScanner(f)
	for s.Scan() {
		line := s.Bytes()
		if len(line) == 0 {
			continue
		}
		var item BenchRecord
		if err := json.Unmarshal(line, &item); err != nil {
			continue
		}
		if item.Date != "" {
			d, err := time.ParseInLocation("2006-01-02", item.Date, since.Location())
			if err == nil && d.Before(since) {
				continue
			}
		}
		out = append(out, item)
	}
	if err := s.Err(); err != nil {
		return nil, fmt.Errorf("failed to read metrics: %w", err)
	}
	return out, nil
}
