package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-concentration/internal/config"
	"github.com/vovakirdan/tui-concentration/internal/core"
	"github.com/vovakirdan/tui-concentration/internal/games/concentration"
	"github.com/vovakirdan/tui-concentration/internal/platform/tui"
	"github.com/vovakirdan/tui-concentration/internal/registry"
)

var (
	flagDifficulty string
	flagTheme      string
)

var playCmd = &cobra.Command{
	Use:   "play [game]",
	Short: "Play a game",
	Long: `Start playing. Without arguments the Concentration game starts.

Controls:
  Arrows/hjkl   - Move the cursor
  Space/Enter   - Flip the card under the cursor
  Mouse click   - Flip the clicked card
  S             - Shuffle the remaining cards
  T/?           - Use the one-time hint
  P             - Pause
  R             - Restart with a new deal
  B/Esc         - Back (when paused or finished)
  Q/Ctrl+C      - Quit

Difficulty options:
  beginner  -  8 cards
  medium    - 12 cards
  master    - 24 cards

Examples:
  concentration play
  concentration play --difficulty beginner
  concentration play --theme Flags --difficulty master
  concentration play --theme random
  concentration play --config ./my-concentration.yaml`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty: beginner, medium, master")
	playCmd.Flags().StringVar(&flagTheme, "theme", "", "Theme name, or 'random'")
}

// terminalConfig builds the runtime config from the terminal size.
func terminalConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	if flagFPS > 0 {
		cfg.TickRate = flagFPS
	}
	cfg.Seed = flagSeed
	return cfg
}

func runPlay(_ *cobra.Command, args []string) {
	gameID := concentration.ID
	if len(args) == 1 {
		gameID = args[0]
	}

	if !registry.Exists(gameID) {
		fail("unknown game %q\nRun 'concentration list' to see available games.", gameID)
	}

	if flagDifficulty != "" {
		if _, ok := config.ParseDifficulty(flagDifficulty); !ok {
			logger.Warn("unknown difficulty, using medium", "difficulty", flagDifficulty)
		}
	}
	concentration.SetDifficulty(flagDifficulty)
	concentration.SetTheme(flagTheme)

	game, err := registry.Create(gameID)
	if err != nil {
		fail("creating game: %v", err)
	}

	store := openStore()
	runErr := tui.Run(game, store, terminalConfig())

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fail("running game: %v", runErr)
	}
}
