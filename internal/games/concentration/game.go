// Package concentration implements the tile-matching memory game on top
// of the matching engine. It owns everything the engine leaves to the
// presentation layer: difficulty, themes, cursor, flip count, the hint
// countdown and drawing.
package concentration

import (
	"math/rand"
	"slices"
	"time"

	"github.com/vovakirdan/tui-concentration/internal/config"
	"github.com/vovakirdan/tui-concentration/internal/core"
	"github.com/vovakirdan/tui-concentration/internal/games/concentration/engine"
	"github.com/vovakirdan/tui-concentration/internal/registry"
	"github.com/vovakirdan/tui-concentration/internal/theme"
)

// ID is the registry identifier of the game.
const ID = "concentration"

// ThemeRandom selects a theme at random on every new game.
const ThemeRandom = "random"

// configPath stores the custom config path set via CLI
var configPath string

// selectedDifficulty and selectedTheme are set by CLI flags or the selector.
// Empty values use the config defaults.
var (
	selectedDifficulty config.Difficulty
	selectedTheme      string
)

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficulty sets the difficulty for the next game. Unknown names
// select medium; an empty name restores the config default.
func SetDifficulty(name string) {
	if name == "" {
		selectedDifficulty = ""
		return
	}
	selectedDifficulty, _ = config.ParseDifficulty(name)
}

// SetTheme sets the theme for the next game by name, or ThemeRandom.
// An empty name restores the default, the first configured theme.
func SetTheme(name string) {
	selectedTheme = name
}

// Game adapts the matching engine to the arcade platform.
type Game struct {
	eng     *engine.Engine
	cfg     config.ConcentrationConfig
	runtime core.RuntimeConfig
	rng     *rand.Rand
	tick    uint64

	difficulty config.Difficulty
	theme      theme.Theme
	glyphs     *theme.Assigner

	// Per-instance choice set by Configure, overriding the package selection
	configured   bool
	difficultyID string
	themeName    string

	columns  int
	cursor   int
	flips    int
	played   uint64 // Unpaused ticks, for the result duration
	gameOver bool
	paused   bool
	tooSmall bool

	hintTicks int // Remaining ticks of the hint peek

	// Last mismatched pair, shown face up until the countdown ends
	mismatch      [2]int
	mismatchTicks int
}

// New creates a new concentration game.
func New() *Game {
	return &Game{}
}

func init() {
	registry.Register(ID, func() registry.Game {
		return New()
	})
}

// Configure sets the difficulty and theme of this instance. It takes
// precedence over SetDifficulty and SetTheme, so concurrent sessions can
// each play their own choice. Applies from the next Reset.
func (g *Game) Configure(difficulty, themeName string) {
	g.configured = true
	g.difficultyID = difficulty
	g.themeName = themeName
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return ID
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Concentration"
}

// Reset deals a new game with the selected difficulty and theme.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.rng = rand.New(rand.NewSource(runtime.Seed))

	cfg := loadConfig()
	g.cfg = cfg
	g.columns = cfg.Board.Columns

	difficulty, themeName := selectedDifficulty, selectedTheme
	if g.configured {
		difficulty, themeName = "", g.themeName
		if g.difficultyID != "" {
			difficulty, _ = config.ParseDifficulty(g.difficultyID)
		}
	}
	g.difficulty = difficulty
	if g.difficulty == "" {
		g.difficulty = cfg.Difficulty()
	}

	picked := pickTheme(cfg, themeName, g.rng)
	if g.glyphs != nil && sameTheme(g.theme, picked) {
		g.glyphs.Reset()
	} else {
		g.glyphs = theme.NewAssigner(picked)
	}
	g.theme = picked

	g.eng = g.newEngine(g.difficulty.Pairs())

	g.tick = 0
	g.played = 0
	g.cursor = 0
	g.flips = 0
	g.gameOver = false
	g.paused = false
	g.hintTicks = 0
	g.mismatchTicks = 0

	g.checkScreenSize()
}

// newEngine deals a board of the given pair count. A count the engine
// rejects falls back to medium.
func (g *Game) newEngine(pairs int) *engine.Engine {
	opts := []engine.Option{
		engine.WithRand(g.rng),
		engine.WithScoring(engine.Scoring{
			MatchBonus:      g.cfg.Scoring.MatchBonus,
			MismatchPenalty: g.cfg.Scoring.MismatchPenalty,
		}),
	}
	eng, err := engine.New(pairs, opts...)
	if err != nil {
		g.difficulty = config.DifficultyMedium
		eng, _ = engine.New(g.difficulty.Pairs(), opts...)
	}
	return eng
}

// sameTheme reports whether two themes draw the same faces.
func sameTheme(a, b theme.Theme) bool {
	return a.Name == b.Name && slices.Equal(a.Glyphs, b.Glyphs)
}

// Resize adapts the layout to a new screen size, keeping the deal.
func (g *Game) Resize(width, height int) {
	g.runtime.ScreenW = width
	g.runtime.ScreenH = height
	g.checkScreenSize()
}

// checkScreenSize checks if the screen can hold the whole board.
func (g *Game) checkScreenSize() {
	l := g.layout()
	g.tooSmall = g.runtime.ScreenW < l.minW || g.runtime.ScreenH < l.minH
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++

	if g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) && !g.gameOver {
		g.paused = !g.paused
	}
	if g.paused || g.gameOver {
		return core.StepResult{State: g.State()}
	}
	g.played++

	g.advanceTimers()

	switch {
	case in.Has(core.ActionUp):
		g.moveCursor(0, -1)
	case in.Has(core.ActionDown):
		g.moveCursor(0, 1)
	case in.Has(core.ActionLeft):
		g.moveCursor(-1, 0)
	case in.Has(core.ActionRight):
		g.moveCursor(1, 0)
	}

	if in.Click != nil {
		if idx, ok := g.CardAt(in.Click.X, in.Click.Y); ok {
			g.cursor = idx
			g.choose(idx)
		}
	} else if in.Has(core.ActionSelect) {
		g.choose(g.cursor)
	}

	if in.Has(core.ActionShuffle) {
		g.eng.ShuffleCards()
		g.mismatchTicks = 0
	}

	if in.Has(core.ActionHint) {
		g.useHint()
	}

	if g.eng.IsComplete() {
		if g.eng.Peeking() {
			g.eng.FlipAllCardsFaceDown()
		}
		g.hintTicks = 0
		g.mismatchTicks = 0
		g.gameOver = true
	}

	return core.StepResult{State: g.State()}
}

// advanceTimers counts down the hint peek and the mismatch reveal.
func (g *Game) advanceTimers() {
	if g.hintTicks > 0 {
		g.hintTicks--
		if g.hintTicks == 0 {
			g.eng.FlipAllCardsFaceDown()
		}
	}
	if g.mismatchTicks > 0 {
		g.mismatchTicks--
	}
}

// moveCursor moves the cursor one card, wrapping around the grid edges.
func (g *Game) moveCursor(dx, dy int) {
	n := g.eng.Len()
	if dx != 0 {
		g.cursor = core.Wrap(g.cursor+dx, n)
		return
	}

	cols := g.columns
	rows := (n + cols - 1) / cols
	row, col := g.cursor/cols, g.cursor%cols
	for {
		row = core.Wrap(row+dy, rows)
		if idx := row*cols + col; idx < n {
			g.cursor = idx
			return
		}
	}
}

// choose flips the card at idx. Every pick counts as a flip, including
// picks the engine ignores.
func (g *Game) choose(idx int) {
	g.flips++

	pending, hadPending := g.eng.PendingIndex()
	before, err := g.eng.Card(idx)
	if err != nil || before.IsMatched {
		return
	}
	if err := g.eng.ChooseCard(idx); err != nil {
		return
	}

	g.mismatchTicks = 0
	if !hadPending || pending == idx {
		return
	}
	if after, _ := g.eng.Card(idx); !after.IsMatched {
		g.mismatch = [2]int{pending, idx}
		g.mismatchTicks = g.runtime.TicksFor(g.cfg.Board.MismatchRevealMS)
	}
}

// useHint starts the one-shot peek if the hint is enabled and unused.
func (g *Game) useHint() {
	if !g.cfg.Hint.Enabled || !g.eng.UseHint() {
		return
	}
	g.eng.FlipAllCardsFaceUp()
	g.mismatchTicks = 0
	g.hintTicks = g.runtime.TicksFor(g.cfg.Hint.RevealMS)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.eng.Score(),
		Moves:    g.flips,
		Variant:  string(g.difficulty),
		GameOver: g.gameOver,
		Paused:   g.paused || g.tooSmall,
	}
}

// Summary reports the result of the current game.
func (g *Game) Summary() registry.Summary {
	return registry.Summary{
		Variant:   string(g.difficulty),
		Theme:     g.theme.Name,
		Score:     g.eng.Score(),
		Moves:     g.flips,
		Pairs:     g.eng.Pairs(),
		HintUsed:  g.eng.IsHintUsed(),
		Duration:  g.elapsed(),
		Completed: g.gameOver,
	}
}

// elapsed converts unpaused ticks to wall time at the configured rate.
func (g *Game) elapsed() time.Duration {
	rate := g.runtime.TickRate
	if rate <= 0 {
		rate = 60
	}
	return time.Duration(g.played) * time.Second / time.Duration(rate)
}

// Controls returns the control hints for the game.
func (g *Game) Controls() string {
	return "Arrows: Move  Space/Click: Flip  S: Shuffle  T: Hint  P: Pause  R: New  Q: Quit"
}
