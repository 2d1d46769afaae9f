package concentration

import "github.com/vovakirdan/tui-concentration/internal/core"

const (
	cardWidth  = 6 // Box with a 4-column face, wide enough for one emoji
	cardHeight = 3
	cardGap    = 1 // Columns between neighbouring cards
	hudHeight  = 3
	footHeight = 1
	minWidth   = 56 // Room for the HUD lines
)

// boardLayout is the screen geometry of the card grid.
type boardLayout struct {
	x, y       int // Top-left of the first card
	cols, rows int
	w, h       int
	minW, minH int
}

// layout computes the grid geometry for the current deck and screen.
func (g *Game) layout() boardLayout {
	n := 0
	if g.eng != nil {
		n = g.eng.Len()
	}
	cols := g.columns
	if cols <= 0 {
		cols = 1
	}
	rows := (n + cols - 1) / cols

	l := boardLayout{
		cols: cols,
		rows: rows,
		w:    cols*cardWidth + (cols-1)*cardGap,
		h:    rows * cardHeight,
	}
	l.minW = max(l.w, minWidth)
	l.minH = hudHeight + l.h + footHeight
	l.x = (g.runtime.ScreenW - l.w) / 2
	l.y = hudHeight
	return l
}

// cardRect returns the screen area of card i.
func (l boardLayout) cardRect(i int) core.Rect {
	col, row := i%l.cols, i/l.cols
	return core.NewRect(l.x+col*(cardWidth+cardGap), l.y+row*cardHeight, cardWidth, cardHeight)
}

// CardAt returns the index of the card drawn at screen cell (x, y).
// Cells between cards and outside the board hit nothing.
func (g *Game) CardAt(x, y int) (int, bool) {
	if g.eng == nil || g.tooSmall {
		return 0, false
	}
	l := g.layout()
	for i := range g.eng.Len() {
		if l.cardRect(i).Contains(x, y) {
			return i, true
		}
	}
	return 0, false
}
