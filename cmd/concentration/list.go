package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-concentration/internal/config"
	"github.com/vovakirdan/tui-concentration/internal/games/concentration"
	"github.com/vovakirdan/tui-concentration/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List available games, difficulties and themes",
	Long:  `Shows every registered game with the difficulties and themes it offers.`,
	Run:   runList,
}

func runList(_ *cobra.Command, _ []string) {
	games := registry.List()

	if len(games) == 0 {
		fmt.Println("No games available.")
		return
	}

	fmt.Println("Available games:")
	fmt.Println()

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	for _, g := range games {
		if len(g.ID) > maxIDLen {
			maxIDLen = len(g.ID)
		}
	}

	fmt.Printf("  %-*s  %s\n", maxIDLen, "ID", "Title")
	fmt.Printf("  %-*s  %s\n", maxIDLen, "--", "-----")
	for _, g := range games {
		fmt.Printf("  %-*s  %s\n", maxIDLen, g.ID, g.Title)
	}

	fmt.Println()
	fmt.Println("Difficulties:")
	def := concentration.DefaultDifficulty()
	for _, d := range config.Difficulties() {
		marker := ""
		if d == def {
			marker = "  (default)"
		}
		fmt.Printf("  %-9s %2d cards%s\n", d, d.Cards(), marker)
	}

	fmt.Println()
	fmt.Println("Themes:")
	themes := concentration.Themes()
	for _, name := range themes.Names() {
		t, _ := themes.Get(name)
		fmt.Printf("  %-16s %2d pairs max\n", name, t.Size())
	}
	fmt.Printf("  %s\n", concentration.ThemeRandom)

	fmt.Println()
	fmt.Println("Run 'concentration play' to start a game.")
}
