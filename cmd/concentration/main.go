// concentration is a terminal memory game: flip cards two at a time and
// find every matching pair.
//
// Usage:
//
//	concentration list              - List available games
//	concentration play [game]       - Play a game (default: concentration)
//	concentration menu              - Start the main menu
//	concentration serve             - Start SSH server for remote play
//	concentration scores [game]     - Show high scores for a game
//	concentration config            - Show the effective game config
//
// Global flags:
//
//	--fps <rate>         - Set tick rate (default: 60)
//	--seed <value>       - Set RNG seed for reproducible deals
//	--db <path>          - Set database path (default: ~/.arcade/concentration.db)
//	--config <path>      - Use a custom concentration.yaml
//	--log-level <level>  - Set log level (debug, info, warn, error)
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-concentration/internal/games/concentration"
	"github.com/vovakirdan/tui-concentration/internal/storage"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagConfig   string
	flagLogLevel string

	logger = log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "concentration",
	})
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "concentration",
	Short: "Concentration - the memory card game in your terminal",
	Long: `Concentration is a terminal memory game. Cards are dealt face down;
flip two at a time and keep the ones that match. Every match scores,
every mismatch on a card you have already seen costs a point.

Available commands:
  list     - Show all available games
  play     - Play a game directly
  menu     - Interactive menu with difficulty and theme pickers
  serve    - Start SSH server for remote play
  scores   - View high scores and recent games

Examples:
  concentration play
  concentration play --difficulty master --theme Flags
  concentration menu
  concentration serve --ssh :2222
  concentration scores --difficulty beginner`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.arcade/concentration.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom concentration.yaml")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "warn", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(configCmd)
}

// setup applies the global flags before any command runs.
func setup(_ *cobra.Command, _ []string) error {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}
	logger.SetLevel(level)

	concentration.SetConfigPath(flagConfig)
	if _, err := concentration.LoadConfig(); err != nil {
		logger.Warn("invalid game config, using defaults", "error", err)
	}
	return nil
}

// openStore opens the score database, or returns nil with a warning.
// Games still run without storage.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "path", flagDBPath, "error", err)
		return nil
	}
	return store
}

// fail prints an error and exits.
func fail(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}
