package config

import (
	_ "embed"
)

//go:embed defaults/concentration.yaml
var defaultConcentrationYAML []byte

// DefaultConcentrationConfig returns the hardcoded concentration configuration.
// Themes are left empty; callers fall back to the built-in theme set.
func DefaultConcentrationConfig() ConcentrationConfig {
	return ConcentrationConfig{
		Scoring: ScoringConfig{
			MatchBonus:      2,
			MismatchPenalty: 1,
		},
		Hint: HintConfig{
			Enabled:  true,
			RevealMS: 1000,
		},
		Board: BoardConfig{
			Columns:           4,
			DefaultDifficulty: string(DifficultyMedium),
			MismatchRevealMS:  700,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "concentration":
		return defaultConcentrationYAML
	default:
		return nil
	}
}
