package main

import (
	"fmt"
	"sort"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-concentration/internal/config"
	"github.com/vovakirdan/tui-concentration/internal/games/concentration"
	"github.com/vovakirdan/tui-concentration/internal/registry"
	"github.com/vovakirdan/tui-concentration/internal/storage"
)

var (
	flagScoresDifficulty string
	flagHistory          bool
	flagClear            bool
	flagAll              bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [game]",
	Short: "Show high scores for a game",
	Long: `Display the top 10 scores, best first. Ties rank fewer flips first.

Examples:
  concentration scores
  concentration scores --difficulty master
  concentration scores --history
  concentration scores --all
  concentration scores --clear`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().StringVar(&flagScoresDifficulty, "difficulty", "", "Only show scores of one difficulty")
	scoresCmd.Flags().BoolVar(&flagHistory, "history", false, "Show the most recent finished games instead")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete all scores and results of the game")
	scoresCmd.Flags().BoolVar(&flagAll, "all", false, "Show a summary of every game in the database")
}

func runScores(_ *cobra.Command, args []string) {
	gameID := concentration.ID
	if len(args) == 1 {
		gameID = args[0]
	}

	if !registry.Exists(gameID) {
		fail("unknown game %q\nRun 'concentration list' to see available games.", gameID)
	}

	game, err := registry.Create(gameID)
	if err != nil {
		fail("creating game: %v", err)
	}
	title := game.Title()

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fail("opening scores database: %v", err)
	}
	defer store.Close()

	switch {
	case flagClear:
		if err := store.ClearScores(gameID); err != nil {
			store.Close()
			fail("clearing scores: %v", err)
		}
		fmt.Printf("Cleared all scores for %s.\n", title)
		return
	case flagAll:
		printAllStats(store)
		return
	}

	if flagHistory {
		printHistory(store, gameID, title)
		return
	}

	var (
		scores  []storage.ScoreEntry
		heading = title
	)
	if flagScoresDifficulty != "" {
		d, ok := config.ParseDifficulty(flagScoresDifficulty)
		if !ok {
			store.Close()
			fail("unknown difficulty %q", flagScoresDifficulty)
		}
		heading = fmt.Sprintf("%s (%s)", title, d.Title())
		scores, err = store.TopScoresByVariant(gameID, string(d), 10)
	} else {
		scores, err = store.TopScores(gameID, 10)
	}
	if err != nil {
		store.Close()
		fail("retrieving scores: %v", err)
	}

	fmt.Printf("High Scores - %s\n", heading)
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'concentration play %s' to set the first high score!\n", gameID)
		return
	}

	fmt.Printf("  %-4s  %-6s  %-6s  %-9s  %s\n", "Rank", "Score", "Flips", "Level", "Date")
	fmt.Printf("  %-4s  %-6s  %-6s  %-9s  %s\n", "----", "-----", "-----", "-----", "----")

	for i, entry := range scores {
		fmt.Printf("  %-4d  %-6d  %-6d  %-9s  %s\n",
			i+1, entry.Score, entry.Moves, levelTitle(entry.Variant),
			entry.CreatedAt.Format("2006-01-02 15:04"))
	}

	fmt.Println()
	if best, ok, err := store.HighScore(gameID); err == nil && ok {
		fmt.Printf("Best: %d\n", best)
	}
	if stats, err := store.GetGameStats(gameID); err == nil && stats.GamesCount > 0 {
		fmt.Printf("Games: %d  Average: %.1f  Fewest flips: %d\n",
			stats.GamesCount, stats.AvgScore, stats.BestMoves)
	}
}

func printHistory(store *storage.Store, gameID, title string) {
	results, err := store.RecentResults(gameID, 10)
	if err != nil {
		store.Close()
		fail("retrieving results: %v", err)
	}

	fmt.Printf("Recent Games - %s\n", title)
	fmt.Println()

	if len(results) == 0 {
		fmt.Println("No finished games yet.")
		return
	}

	fmt.Printf("  %-16s  %-9s  %-16s  %-6s  %-6s  %-6s  %s\n",
		"Date", "Level", "Theme", "Score", "Flips", "Time", "Hint")
	for _, r := range results {
		hint := "no"
		if r.HintUsed {
			hint = "yes"
		}
		fmt.Printf("  %-16s  %-9s  %-16s  %-6d  %-6d  %-6s  %s\n",
			r.CreatedAt.Format("2006-01-02 15:04"), levelTitle(r.Variant), r.Theme,
			r.Score, r.Flips, (time.Duration(r.Duration) * time.Second).String(), hint)
	}
}

func printAllStats(store *storage.Store) {
	all, err := store.GetAllGamesStats()
	if err != nil {
		store.Close()
		fail("retrieving stats: %v", err)
	}
	if len(all) == 0 {
		fmt.Println("No scores recorded yet.")
		return
	}

	ids := make([]string, 0, len(all))
	for id := range all {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	fmt.Printf("  %-16s  %-6s  %-6s  %-8s  %s\n", "Game", "Games", "Best", "Average", "Last played")
	for _, id := range ids {
		s := all[id]
		fmt.Printf("  %-16s  %-6d  %-6d  %-8.1f  %s\n",
			id, s.GamesCount, s.HighScore, s.AvgScore, s.LastPlayed.Format("2006-01-02 15:04"))
	}
}

// levelTitle formats a stored variant for display.
func levelTitle(variant string) string {
	if d, ok := config.ParseDifficulty(variant); ok {
		return d.Title()
	}
	return "-"
}
