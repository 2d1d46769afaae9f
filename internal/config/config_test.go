package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, dir, body string) string {
	t.Helper()
	path := filepath.Join(dir, "concentration.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

// isolate points the user and local search locations at empty directories.
func isolate(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Chdir(t.TempDir())
	return home
}

func TestParseDifficulty(t *testing.T) {
	tests := []struct {
		in    string
		want  Difficulty
		known bool
		cards int
	}{
		{"beginner", DifficultyBeginner, true, 8},
		{"Medium", DifficultyMedium, true, 12},
		{" MASTER ", DifficultyMaster, true, 24},
		{"", DifficultyMedium, false, 12},
		{"impossible", DifficultyMedium, false, 12},
	}

	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			d, ok := ParseDifficulty(tc.in)
			assert.Equal(t, tc.want, d)
			assert.Equal(t, tc.known, ok)
			assert.Equal(t, tc.cards, d.Cards())
			assert.Equal(t, tc.cards/2, d.Pairs())
		})
	}
}

func TestDifficulties_Ordered(t *testing.T) {
	prev := 0
	for _, d := range Difficulties() {
		assert.Greater(t, d.Cards(), prev)
		assert.NotEmpty(t, d.Title())
		prev = d.Cards()
	}
}

func TestEmbeddedDefault_MatchesHardcoded(t *testing.T) {
	cfg, err := parseConcentration(GetDefaultYAML("concentration"))
	require.NoError(t, err)

	want := DefaultConcentrationConfig()
	assert.Equal(t, want.Scoring, cfg.Scoring)
	assert.Equal(t, want.Hint, cfg.Hint)
	assert.Equal(t, want.Board, cfg.Board)

	require.Len(t, cfg.Themes, 3)
	assert.Equal(t, "Fruits", cfg.Themes[0].Name)
	assert.Equal(t, "green", cfg.Themes[0].Accent)
	assert.Nil(t, GetDefaultYAML("pong"))
}

func TestLoadConcentration_CustomPath(t *testing.T) {
	path := writeConfig(t, t.TempDir(), `
scoring:
  match_bonus: 5
hint:
  reveal_ms: 1500
themes:
  - name: Letters
    glyphs: "ABCDEF"
    accent: cyan
`)

	cfg, err := LoadConcentration(path)
	require.NoError(t, err)

	assert.Equal(t, 5, cfg.Scoring.MatchBonus)
	assert.Equal(t, 1, cfg.Scoring.MismatchPenalty, "unset values keep defaults")
	assert.Equal(t, 1500, cfg.Hint.RevealMS)
	assert.True(t, cfg.Hint.Enabled)
	assert.Equal(t, 4, cfg.Board.Columns)
	require.Len(t, cfg.Themes, 1)
	assert.Equal(t, "Letters", cfg.Themes[0].Name)
}

func TestLoadConcentration_CustomPathErrors(t *testing.T) {
	dir := t.TempDir()

	_, err := LoadConcentration(filepath.Join(dir, "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, err = LoadConcentration(writeConfig(t, dir, "scoring: [oops"))
	assert.Error(t, err)

	_, err = LoadConcentration(writeConfig(t, dir, "scoring:\n  mismatch_penalty: -1\n"))
	assert.ErrorIs(t, err, ErrNegativeScoring)
}

func TestLoadConcentration_SearchOrder(t *testing.T) {
	home := isolate(t)

	cfg, err := LoadConcentration("")
	require.NoError(t, err)
	assert.Len(t, cfg.Themes, 3, "embedded default")

	require.NoError(t, os.MkdirAll("configs", 0o755))
	writeConfig(t, "configs", "scoring:\n  match_bonus: 3\n")
	cfg, err = LoadConcentration("")
	require.NoError(t, err)
	assert.Equal(t, 3, cfg.Scoring.MatchBonus, "local configs directory")

	userDir := filepath.Join(home, ".arcade", "configs")
	require.NoError(t, os.MkdirAll(userDir, 0o755))
	writeConfig(t, userDir, "scoring:\n  match_bonus: 4\n")
	cfg, err = LoadConcentration("")
	require.NoError(t, err)
	assert.Equal(t, 4, cfg.Scoring.MatchBonus, "user directory wins over local")
}

func TestLoadConcentration_BrokenUserFileIsSkipped(t *testing.T) {
	home := isolate(t)
	userDir := filepath.Join(home, ".arcade", "configs")
	require.NoError(t, os.MkdirAll(userDir, 0o755))
	writeConfig(t, userDir, "board:\n  columns: 0\n")

	cfg, err := LoadConcentration("")
	require.NoError(t, err)
	assert.Equal(t, 4, cfg.Board.Columns)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*ConcentrationConfig)
		err    error
	}{
		{"defaults", func(*ConcentrationConfig) {}, nil},
		{"negative bonus", func(c *ConcentrationConfig) { c.Scoring.MatchBonus = -2 }, ErrNegativeScoring},
		{"zero columns", func(c *ConcentrationConfig) { c.Board.Columns = 0 }, ErrBadColumns},
		{"zero reveal", func(c *ConcentrationConfig) { c.Hint.RevealMS = 0 }, ErrBadRevealTime},
		{"zero reveal with hint off", func(c *ConcentrationConfig) {
			c.Hint.Enabled = false
			c.Hint.RevealMS = 0
		}, nil},
		{"negative mismatch reveal", func(c *ConcentrationConfig) { c.Board.MismatchRevealMS = -1 }, ErrBadRevealTime},
		{"unnamed theme", func(c *ConcentrationConfig) {
			c.Themes = []ThemeConfig{{Glyphs: "ab"}}
		}, ErrBadTheme},
		{"duplicate theme", func(c *ConcentrationConfig) {
			c.Themes = []ThemeConfig{{Name: "x"}, {Name: "x"}}
		}, ErrBadTheme},
		{"unknown accent", func(c *ConcentrationConfig) {
			c.Themes = []ThemeConfig{{Name: "x", Accent: "plaid"}}
		}, ErrBadTheme},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultConcentrationConfig()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if tc.err == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tc.err)
		})
	}

	cfg := DefaultConcentrationConfig()
	cfg.Board.DefaultDifficulty = "nightmare"
	assert.Error(t, cfg.Validate())
}

func TestConcentrationConfig_Difficulty(t *testing.T) {
	cfg := DefaultConcentrationConfig()
	assert.Equal(t, DifficultyMedium, cfg.Difficulty())

	cfg.Board.DefaultDifficulty = "master"
	assert.Equal(t, DifficultyMaster, cfg.Difficulty())
}

func TestGetDefaultYAML(t *testing.T) {
	data := GetDefaultYAML("concentration")
	require.NotEmpty(t, data)

	cfg, err := parseConcentration(data)
	require.NoError(t, err)
	assert.NotEmpty(t, cfg.Themes, "the shipped file lists the themes")
	assert.Equal(t, DefaultConcentrationConfig().Scoring, cfg.Scoring)

	assert.Nil(t, GetDefaultYAML("snake"))
}
