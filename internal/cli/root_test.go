package cli

import (
	"testing"

	"github.com/soli0222/wordle-cli/internal/config"
	"github.com/soli0222/wordle-cli/internal/engine"
)

func testConfig() *config.Config {
	return &config.Config{
		Dict:           "words.txt",
		Strategy:       "average",
		GamblingFactor: 0.5,
		Shown:          10,
		Length:         5,
	}
}

func TestResolveStrategy(t *testing.T) {
	t.Parallel()

	t.Run("default follows config", func(t *testing.T) {
		s, err := resolveStrategy(testConfig(), false, false, 0)
		if err != nil {
			t.Fatalf("resolveStrategy() error = %v", err)
		}
		if _, ok := s.(engine.Average); !ok {
			t.Errorf("got %T, want Average", s)
		}
	})

	t.Run("pessimistic flag selects worst-case", func(t *testing.T) {
		s, err := resolveStrategy(testConfig(), true, false, 0)
		if err != nil {
			t.Fatalf("resolveStrategy() error = %v", err)
		}
		if _, ok := s.(engine.WorstCase); !ok {
			t.Errorf("got %T, want WorstCase", s)
		}
	})

	t.Run("gambling flag carries its factor", func(t *testing.T) {
		s, err := resolveStrategy(testConfig(), false, true, 0.8)
		if err != nil {
			t.Fatalf("resolveStrategy() error = %v", err)
		}
		g, ok := s.(engine.Gambling)
		if !ok {
			t.Fatalf("got %T, want Gambling", s)
		}
		if g.Factor != 0.8 {
			t.Errorf("Factor = %v, want 0.8", g.Factor)
		}
	})

	t.Run("conflicting flags are rejected", func(t *testing.T) {
		if _, err := resolveStrategy(testConfig(), true, true, 0.5); err == nil {
			t.Fatal("expected error, got nil")
		}
	})

	t.Run("configured gambling strategy", func(t *testing.T) {
		cfg := testConfig()
		cfg.Strategy = "gambling"
		cfg.GamblingFactor = 0.3
		s, err := resolveStrategy(cfg, false, false, 0)
		if err != nil {
			t.Fatalf("resolveStrategy() error = %v", err)
		}
		g, ok := s.(engine.Gambling)
		if !ok {
			t.Fatalf("got %T, want Gambling", s)
		}
		if g.Factor != 0.3 {
			t.Errorf("Factor = %v, want 0.3", g.Factor)
		}
	})
}

func TestConfigValidate(t *testing.T) {
	t.Parallel()

	t.Run("valid defaults", func(t *testing.T) {
		if err := testConfig().Validate(); err != nil {
			t.Fatalf("Validate() error = %v", err)
		}
	})

	t.Run("missing dict", func(t *testing.T) {
		cfg := testConfig()
		cfg.Dict = ""
		if err := cfg.Validate(); err == nil {
			t.Fatal("expected error, got nil")
		}
	})

	t.Run("length out of range", func(t *testing.T) {
		cfg := testConfig()
		cfg.Length = 40
		if err := cfg.Validate(); err == nil {
			t.Fatal("expected error, got nil")
		}
	})

	t.Run("bad strategy name", func(t *testing.T) {
		cfg := testConfig()
		cfg.Strategy = "psychic"
		if err := cfg.Validate(); err == nil {
			t.Fatal("expected error, got nil")
		}
	})
}
