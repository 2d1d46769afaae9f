package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-concentration/internal/config"
	"github.com/vovakirdan/tui-concentration/internal/games/concentration"
)

var flagPrintDefault bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show the game configuration",
	Long: `Prints the configuration the game will use, after the search order
(--config, ~/.arcade/configs, ./configs, built-in defaults) is applied.

Use --print-default to get the built-in concentration.yaml as a starting
point for your own file:

  concentration config --print-default > ~/.arcade/configs/concentration.yaml`,
	RunE: runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagPrintDefault, "print-default", false, "Print the built-in default config")
}

func runConfig(cmd *cobra.Command, _ []string) error {
	out := cmd.OutOrStdout()

	if flagPrintDefault {
		data := config.GetDefaultYAML(concentration.ID)
		if data == nil {
			return fmt.Errorf("no default config for %s", concentration.ID)
		}
		_, err := out.Write(data)
		return err
	}

	cfg, err := concentration.LoadConfig()
	if err != nil {
		return err
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	_, err = out.Write(data)
	return err
}
