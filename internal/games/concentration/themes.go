package concentration

import (
	"math/rand"

	"github.com/vovakirdan/tui-concentration/internal/config"
	"github.com/vovakirdan/tui-concentration/internal/core"
	"github.com/vovakirdan/tui-concentration/internal/theme"
)

// catalogFrom converts configured themes, keeping their order.
// An empty list yields the built-in themes.
func catalogFrom(cfg config.ConcentrationConfig) *theme.Catalog {
	if len(cfg.Themes) == 0 {
		return theme.BuiltinCatalog()
	}
	themes := make([]theme.Theme, 0, len(cfg.Themes))
	for _, tc := range cfg.Themes {
		accent, _ := core.ParseColor(tc.Accent)
		themes = append(themes, theme.New(tc.Name, tc.Glyphs, accent))
	}
	return theme.NewCatalog(themes...)
}

// pickTheme resolves a theme selection against the configured themes.
// An empty name picks the first configured theme. An unknown name keeps
// the name with an empty pool, so every card shows the placeholder.
func pickTheme(cfg config.ConcentrationConfig, name string, rng *rand.Rand) theme.Theme {
	catalog := catalogFrom(cfg)

	switch name {
	case "":
		t, _ := catalog.First()
		return t
	case ThemeRandom:
		t, _ := catalog.Random(rng)
		return t
	}
	t, _ := catalog.Get(name)
	return t
}

// LoadConfig loads the game config from the path set by SetConfigPath.
// On error it still returns the defaults alongside the error.
func LoadConfig() (config.ConcentrationConfig, error) {
	cfg, err := config.LoadConcentration(configPath)
	if err != nil {
		return config.DefaultConcentrationConfig(), err
	}
	return cfg, nil
}

// loadConfig loads the game config, falling back to the defaults.
// Callers that can report the error use LoadConfig.
func loadConfig() config.ConcentrationConfig {
	cfg, _ := LoadConfig()
	return cfg
}

// DefaultDifficulty returns the configured default difficulty.
func DefaultDifficulty() config.Difficulty {
	return loadConfig().Difficulty()
}

// Themes returns the configured themes in config order.
func Themes() *theme.Catalog {
	return catalogFrom(loadConfig())
}

// ThemeNames returns the configured theme names in config order.
// Used by selectors to offer the same list the game will resolve against.
func ThemeNames() []string {
	return Themes().Names()
}
