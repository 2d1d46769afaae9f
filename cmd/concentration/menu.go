package main

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-concentration/internal/games/concentration"
	"github.com/vovakirdan/tui-concentration/internal/platform/tui"
	"github.com/vovakirdan/tui-concentration/internal/registry"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start with the game menu",
	Long: `Start in interactive menu mode.

Choose Play, then a difficulty and a theme. After a game you return
to the menu to play again. Tab opens the high score table.

Controls:
  Up/Down/j/k  - Navigate
  Enter/Space  - Select
  Tab          - High scores
  Esc/B        - Back
  Q            - Quit

Examples:
  concentration menu
  concentration menu --fps 30
  concentration menu --db ./scores.db`,
	Run: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) {
	store := openStore()
	if store != nil {
		defer store.Close()
	}
	cfg := terminalConfig()

	// Menu loop
	for {
		menuResult, err := tui.RunMenu(store, cfg)
		if err != nil {
			logger.Error("menu failed", "error", err)
			break
		}

		// Update config with any size changes
		cfg = menuResult.Config

		switch menuResult.Choice {
		case tui.MenuHighScores:
			goBack, sbErr := tui.RunScoreboard(store, concentration.ID, cfg.ScreenW, cfg.ScreenH)
			if sbErr != nil {
				logger.Error("scoreboard failed", "error", sbErr)
			}
			if goBack {
				continue // Back to menu
			}
			return // User quit from scoreboard
		case tui.MenuPlay:
		default:
			return
		}

		sel, selErr := tui.RunSelector(cfg, concentration.DefaultDifficulty(), concentration.ThemeNames())
		if selErr != nil {
			logger.Error("selector failed", "error", selErr)
			continue
		}
		// User pressed back or quit
		if sel == nil {
			continue
		}
		concentration.SetDifficulty(string(sel.Difficulty))
		concentration.SetTheme(sel.Theme)
		logger.Debug("game selected", "difficulty", sel.Difficulty, "theme", sel.Theme)

		game, err := registry.Create(concentration.ID)
		if err != nil {
			logger.Error("creating game", "error", err)
			continue
		}

		// Fresh seed for each game unless one was fixed
		if flagSeed == 0 {
			cfg.Seed = time.Now().UnixNano()
		}

		if err := tui.Run(game, store, cfg); err != nil {
			logger.Error("running game", "error", err)
		}
	}
}
