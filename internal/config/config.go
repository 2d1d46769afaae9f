// Package config provides YAML-based game configuration loading and
// difficulty selection for the concentration game.
package config

// ConcentrationConfig contains all configuration for the concentration game.
type ConcentrationConfig struct {
	Scoring ScoringConfig `yaml:"scoring"`
	Hint    HintConfig    `yaml:"hint"`
	Board   BoardConfig   `yaml:"board"`
	Themes  []ThemeConfig `yaml:"themes"`
}

// ScoringConfig defines the points won and lost per turn.
type ScoringConfig struct {
	MatchBonus      int `yaml:"match_bonus"`
	MismatchPenalty int `yaml:"mismatch_penalty"` // Per previously seen card in a mismatch
}

// HintConfig defines the one-shot peek.
type HintConfig struct {
	Enabled  bool `yaml:"enabled"`
	RevealMS int  `yaml:"reveal_ms"`
}

// BoardConfig defines the card grid.
type BoardConfig struct {
	Columns           int    `yaml:"columns"`
	DefaultDifficulty string `yaml:"default_difficulty"`
	MismatchRevealMS  int    `yaml:"mismatch_reveal_ms"` // How long a mismatched pair stays visible; 0 disables
}

// ThemeConfig defines one glyph pool.
type ThemeConfig struct {
	Name   string `yaml:"name"`
	Glyphs string `yaml:"glyphs"`
	Accent string `yaml:"accent"` // Color name, see core.ParseColor
}
