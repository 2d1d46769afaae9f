package tui

import (
	"path/filepath"
	"testing"

	"github.com/vovakirdan/tui-concentration/internal/core"
	"github.com/vovakirdan/tui-concentration/internal/games/concentration"
	"github.com/vovakirdan/tui-concentration/internal/registry"
	"github.com/vovakirdan/tui-concentration/internal/storage"
)

// isolate points HOME and the working directory at a temp dir so the
// game loads its embedded defaults.
func isolate(t *testing.T) {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("HOME", dir)
	t.Chdir(dir)
	concentration.SetConfigPath("")
	concentration.SetDifficulty("")
	concentration.SetTheme("")
}

func openStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func testRuntime() core.RuntimeConfig {
	return core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 7}
}

// stubGame is a minimal game whose state the test controls.
type stubGame struct {
	state   core.GameState
	resets  int
	steps   int
	resized bool
}

func (g *stubGame) ID() string               { return "stub" }
func (g *stubGame) Title() string            { return "Stub" }
func (g *stubGame) Reset(core.RuntimeConfig) { g.resets++; g.state = core.GameState{} }
func (g *stubGame) Render(*core.Screen)      {}
func (g *stubGame) State() core.GameState    { return g.state }
func (g *stubGame) Step(core.InputFrame) core.StepResult {
	g.steps++
	return core.StepResult{State: g.state}
}

// summaryGame adds a Summary to stubGame.
type summaryGame struct {
	stubGame
	summary registry.Summary
}

func (g *summaryGame) Summary() registry.Summary { return g.summary }

// resizeGame adds in-place resizing to stubGame.
type resizeGame struct {
	stubGame
	width, height int
}

func (g *resizeGame) Resize(width, height int) { g.width, g.height = width, height }
