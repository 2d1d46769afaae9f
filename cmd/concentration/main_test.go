package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-concentration/internal/config"
	"github.com/vovakirdan/tui-concentration/internal/games/concentration"
)

func TestPort(t *testing.T) {
	tests := map[string]string{
		":23234":         "23234",
		"0.0.0.0:2222":   "2222",
		"[::1]:22":       "22",
		"no-port-at-all": "no-port-at-all",
	}
	for addr, want := range tests {
		if got := port(addr); got != want {
			t.Errorf("port(%q) = %q, want %q", addr, got, want)
		}
	}
}

func TestLevelTitle(t *testing.T) {
	if got := levelTitle("master"); got != "Master" {
		t.Errorf("levelTitle(master) = %q", got)
	}
	if got := levelTitle(""); got != "-" {
		t.Errorf("levelTitle(\"\") = %q, want -", got)
	}
}

func TestSetupRejectsBadLogLevel(t *testing.T) {
	old := flagLogLevel
	t.Cleanup(func() { flagLogLevel = old })

	flagLogLevel = "loud"
	if err := setup(nil, nil); err == nil {
		t.Error("setup should reject an unknown log level")
	}

	flagLogLevel = "debug"
	if err := setup(nil, nil); err != nil {
		t.Errorf("setup(debug) error = %v", err)
	}
}

// runConfigTo runs the config command with the given config file and
// returns what it printed.
func runConfigTo(t *testing.T, path string, printDefault bool) (string, error) {
	t.Helper()
	concentration.SetConfigPath(path)
	flagPrintDefault = printDefault
	t.Cleanup(func() {
		concentration.SetConfigPath("")
		flagPrintDefault = false
	})

	var out bytes.Buffer
	cmd := &cobra.Command{}
	cmd.SetOut(&out)
	err := runConfig(cmd, nil)
	return out.String(), err
}

func TestConfigPrintDefault(t *testing.T) {
	out, err := runConfigTo(t, "", true)
	if err != nil {
		t.Fatal(err)
	}
	if out != string(config.GetDefaultYAML(concentration.ID)) {
		t.Error("--print-default should print the built-in file unchanged")
	}
}

func TestConfigShowsEffectiveConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "concentration.yaml")
	if err := os.WriteFile(path, []byte("board:\n  columns: 6\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	out, err := runConfigTo(t, path, false)
	if err != nil {
		t.Fatal(err)
	}
	var got config.ConcentrationConfig
	if err := yaml.Unmarshal([]byte(out), &got); err != nil {
		t.Fatalf("output is not YAML: %v", err)
	}
	if got.Board.Columns != 6 || got.Scoring.MatchBonus != 2 {
		t.Errorf("effective config = %+v", got)
	}

	broken := filepath.Join(dir, "broken.yaml")
	if err := os.WriteFile(broken, []byte("board: [oops"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := runConfigTo(t, broken, false); err == nil {
		t.Error("a broken config file should fail the command")
	}
}
