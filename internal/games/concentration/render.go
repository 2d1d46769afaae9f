package concentration

import (
	"fmt"

	"github.com/rivo/uniseg"

	"github.com/vovakirdan/tui-concentration/internal/core"
	"github.com/vovakirdan/tui-concentration/internal/games/concentration/engine"
)

const cardBack = '░'

// Render draws the game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}

	l := g.layout()
	g.renderHUD(dst)
	for i, c := range g.eng.Cards() {
		g.renderCard(dst, l.cardRect(i), i, c)
	}
	if g.runtime.ScreenH > l.y+l.h {
		dst.DrawTextCenteredColored(g.runtime.ScreenH-1, g.Controls(), core.ColorGray)
	}
	g.renderOverlays(dst, l)
}

// renderTooSmall shows a "window too small" message.
func (g *Game) renderTooSmall(dst *core.Screen) {
	l := g.layout()
	y := g.runtime.ScreenH / 2
	dst.DrawTextCentered(y-1, "Window too small")
	dst.DrawTextCentered(y, fmt.Sprintf("Need %dx%d", l.minW, l.minH))
	dst.DrawTextCentered(y+1, "Please resize terminal")
}

// renderHUD draws title, theme, difficulty, score, flips and hint state.
func (g *Game) renderHUD(dst *core.Screen) {
	dst.DrawTextCenteredColored(0, "CONCENTRATION", g.theme.Accent)

	info := fmt.Sprintf("%s  ·  %s", g.theme.Name, g.difficulty.Title())
	dst.DrawTextCentered(1, info)

	stats := fmt.Sprintf("Score: %d   Flips: %d   Pairs: %d/%d   Hint: %s",
		g.eng.Score(), g.flips, g.eng.MatchedPairs(), g.eng.Pairs(), g.hintLabel())
	dst.DrawTextCentered(2, stats)
}

func (g *Game) hintLabel() string {
	switch {
	case !g.cfg.Hint.Enabled:
		return "off"
	case g.hintTicks > 0:
		return "showing"
	case g.eng.IsHintUsed():
		return "used"
	default:
		return "ready"
	}
}

// faceShown reports whether card i is drawn face up. A mismatched pair
// stays visible for a moment after the engine turns it back down.
func (g *Game) faceShown(i int, c engine.Card) bool {
	if c.IsFaceUp {
		return true
	}
	return g.mismatchTicks > 0 && (i == g.mismatch[0] || i == g.mismatch[1])
}

// renderCard draws one card into r.
func (g *Game) renderCard(dst *core.Screen, r core.Rect, i int, c engine.Card) {
	face := core.NewRect(r.X+1, r.Y+1, r.W-2, r.H-2)

	if !g.faceShown(i, c) {
		dst.DrawBox(r, g.theme.Accent)
		dst.FillRect(face, cardBack, g.theme.Accent)
	} else {
		border := core.ColorWhite
		switch {
		case c.IsMatched:
			border = core.ColorGray
		case !c.IsFaceUp:
			border = core.ColorRed
		}
		dst.DrawBox(r, border)

		glyph := g.glyphs.Glyph(c.PairID)
		w := uniseg.StringWidth(glyph)
		dst.DrawGlyph(face.X+(face.W-w)/2, face.Y, glyph, border)
	}

	if i == g.cursor && !g.gameOver {
		dst.Invert(r)
	}
}

// renderOverlays draws game state overlays.
func (g *Game) renderOverlays(dst *core.Screen, l boardLayout) {
	centerX := l.x + l.w/2
	centerY := l.y + l.h/2

	if g.paused {
		g.drawOverlay(dst, centerX, centerY, "PAUSED", "Press P to resume")
		return
	}

	if g.gameOver {
		g.drawOverlay(dst, centerX, centerY,
			"ALL PAIRS FOUND!",
			fmt.Sprintf("Score: %d  Flips: %d", g.eng.Score(), g.flips),
			"Press R to play again")
	}
}

// drawOverlay draws a centered text box.
func (g *Game) drawOverlay(dst *core.Screen, centerX, centerY int, lines ...string) {
	maxLen := 0
	for _, line := range lines {
		maxLen = max(maxLen, uniseg.StringWidth(line))
	}

	box := core.NewRect(centerX-(maxLen+4)/2, centerY-(len(lines)+2)/2, maxLen+4, len(lines)+2)
	dst.FillRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box, g.theme.Accent)

	for i, line := range lines {
		x := centerX - uniseg.StringWidth(line)/2
		dst.DrawText(x, box.Y+1+i, line)
	}
}
