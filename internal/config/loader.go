package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-concentration/internal/core"
)

// LoadConcentration loads concentration configuration.
// Search order: customPath -> ~/.arcade/configs/concentration.yaml -> ./configs/concentration.yaml -> embedded default
//
// Values absent from a file keep their defaults. A custom path that
// cannot be read, parsed or validated is an error; the other locations
// are skipped when broken.
func LoadConcentration(customPath string) (ConcentrationConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return DefaultConcentrationConfig(), fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		cfg, err := parseConcentration(data)
		if err != nil {
			return DefaultConcentrationConfig(), fmt.Errorf("config: %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("concentration.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := parseConcentration(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", "concentration.yaml")); err == nil {
		if cfg, err := parseConcentration(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := parseConcentration(GetDefaultYAML("concentration"))
	if err != nil {
		return DefaultConcentrationConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// parseConcentration decodes data over the hardcoded defaults and validates the result.
func parseConcentration(data []byte) (ConcentrationConfig, error) {
	cfg := DefaultConcentrationConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validation errors.
var (
	ErrNegativeScoring = errors.New("config: scoring values must not be negative")
	ErrBadColumns      = errors.New("config: board.columns must be positive")
	ErrBadRevealTime   = errors.New("config: reveal times must be positive")
	ErrBadTheme        = errors.New("config: invalid theme")
)

// Validate checks the configuration for values the game cannot use.
func (c ConcentrationConfig) Validate() error {
	if c.Scoring.MatchBonus < 0 || c.Scoring.MismatchPenalty < 0 {
		return ErrNegativeScoring
	}
	if c.Board.Columns <= 0 {
		return ErrBadColumns
	}
	if c.Hint.Enabled && c.Hint.RevealMS <= 0 {
		return fmt.Errorf("%w: hint.reveal_ms=%d", ErrBadRevealTime, c.Hint.RevealMS)
	}
	if c.Board.MismatchRevealMS < 0 {
		return fmt.Errorf("%w: board.mismatch_reveal_ms=%d", ErrBadRevealTime, c.Board.MismatchRevealMS)
	}
	if c.Board.DefaultDifficulty != "" {
		if _, ok := ParseDifficulty(c.Board.DefaultDifficulty); !ok {
			return fmt.Errorf("config: unknown board.default_difficulty %q", c.Board.DefaultDifficulty)
		}
	}

	names := make(map[string]bool, len(c.Themes))
	for i, t := range c.Themes {
		if t.Name == "" {
			return fmt.Errorf("%w: themes[%d] has no name", ErrBadTheme, i)
		}
		if names[t.Name] {
			return fmt.Errorf("%w: duplicate theme %q", ErrBadTheme, t.Name)
		}
		names[t.Name] = true
		if t.Accent != "" {
			if _, ok := core.ParseColor(t.Accent); !ok {
				return fmt.Errorf("%w: theme %q has unknown accent %q", ErrBadTheme, t.Name, t.Accent)
			}
		}
	}
	return nil
}

// Difficulty returns the configured default difficulty.
func (c ConcentrationConfig) Difficulty() Difficulty {
	d, _ := ParseDifficulty(c.Board.DefaultDifficulty)
	return d
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arcade", "configs", filename)
}
