package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/soli0222/wordle-cli/internal/engine"
)

type Config struct {
	Dict           string  `mapstructure:"dict"`
	Guesses        string  `mapstructure:"guesses"`
	Strategy       string  `mapstructure:"strategy"`
	GamblingFactor float64 `mapstructure:"gambling_factor"`
	Shown          int     `mapstructure:"shown"`
	Length         int     `mapstructure:"length"`
}

// Load reads the optional config file and applies defaults. A missing
// file is not an error; command-line flags override whatever is loaded.
func Load() (*Config, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("failed to get home directory: %w", err)
	}

	configDir := filepath.Join(home, ".config", "wordle-cli")
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(configDir)

	// Defaults
	viper.SetDefault("dict", "words.txt")
	viper.SetDefault("guesses", "")
	viper.SetDefault("strategy", "average")
	viper.SetDefault("gambling_factor", 0.5)
	viper.SetDefault("shown", 10)
	viper.SetDefault("length", 5)

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate rejects configurations that would only fail deep inside a
// game: unknown strategy names, out-of-range factors and unsupported
// word lengths.
func (c *Config) Validate() error {
	if c.Dict == "" {
		return fmt.Errorf("dict is required")
	}
	if c.Length < 2 || c.Length > engine.MaxWordLength {
		return fmt.Errorf("length must be between 2 and %d, got %d", engine.MaxWordLength, c.Length)
	}
	if _, err := engine.ParseStrategy(c.Strategy, c.GamblingFactor); err != nil {
		return err
	}
	if c.Shown <= 0 {
		return fmt.Errorf("shown must be positive, got %d", c.Shown)
	}
	return nil
}
