package core

import (
	"strings"

	"github.com/rivo/uniseg"
)

// Cell is one character position of the screen.
// Text holds a whole grapheme cluster so emoji and flags survive intact.
// A wide cluster occupies its own cell plus a continuation cell whose
// Text is empty.
type Cell struct {
	Text    string
	Color   Color
	Inverse bool
}

var blankCell = Cell{Text: " "}

// Screen is a 2D cell buffer for rendering game graphics.
// It decouples game rendering from the terminal, allowing games to draw
// text and glyphs while the platform handles actual display.
type Screen struct {
	width  int
	height int
	cells  [][]Cell
}

// NewScreen creates a new screen buffer with the given dimensions.
func NewScreen(width, height int) *Screen {
	s := &Screen{
		width:  width,
		height: height,
	}
	s.allocate()
	s.Clear()
	return s
}

func (s *Screen) allocate() {
	s.cells = make([][]Cell, s.height)
	for y := range s.cells {
		s.cells[y] = make([]Cell, s.width)
	}
}

// Width returns the screen width in characters.
func (s *Screen) Width() int {
	return s.width
}

// Height returns the screen height in characters.
func (s *Screen) Height() int {
	return s.height
}

// Resize changes the screen dimensions. Content is discarded; games
// redraw every frame.
func (s *Screen) Resize(width, height int) {
	if width == s.width && height == s.height {
		return
	}
	s.width = width
	s.height = height
	s.allocate()
	s.Clear()
}

// Clear fills the entire screen with blank cells.
func (s *Screen) Clear() {
	for y := range s.cells {
		for x := range s.cells[y] {
			s.cells[y][x] = blankCell
		}
	}
}

func (s *Screen) inBounds(x, y int) bool {
	return x >= 0 && x < s.width && y >= 0 && y < s.height
}

// put writes a cell, repairing any wide glyph it cuts in half.
func (s *Screen) put(x, y int, c Cell) {
	row := s.cells[y]
	if row[x].Text == "" && x > 0 {
		row[x-1] = blankCell
	}
	if x+1 < s.width && row[x+1].Text == "" {
		row[x+1] = blankCell
	}
	row[x] = c
}

// Set places a rune at the given position with the default color.
// Out-of-bounds coordinates are silently ignored.
func (s *Screen) Set(x, y int, r rune) {
	s.SetColored(x, y, r, ColorDefault)
}

// SetColored places a rune with a color.
func (s *Screen) SetColored(x, y int, r rune, c Color) {
	if !s.inBounds(x, y) {
		return
	}
	s.put(x, y, Cell{Text: string(r), Color: c})
}

// Get returns the first rune at the given position.
// Returns space for out-of-bounds coordinates and continuation cells.
func (s *Screen) Get(x, y int) rune {
	if !s.inBounds(x, y) {
		return ' '
	}
	text := s.cells[y][x].Text
	for _, r := range text {
		return r
	}
	return ' '
}

// GetCell returns the cell at the given position.
func (s *Screen) GetCell(x, y int) Cell {
	if !s.inBounds(x, y) {
		return blankCell
	}
	return s.cells[y][x]
}

// DrawGlyph writes one grapheme cluster at (x, y) and returns the number
// of columns it occupies. Wide glyphs that would cross the right edge are
// not drawn.
func (s *Screen) DrawGlyph(x, y int, glyph string, c Color) int {
	width := uniseg.StringWidth(glyph)
	if width <= 0 {
		return 0
	}
	if !s.inBounds(x, y) || !s.inBounds(x+width-1, y) {
		return width
	}
	s.put(x, y, Cell{Text: glyph, Color: c})
	for i := 1; i < width; i++ {
		if x+i+1 < s.width && s.cells[y][x+i+1].Text == "" {
			s.cells[y][x+i+1] = blankCell
		}
		s.cells[y][x+i] = Cell{Color: c}
	}
	return width
}

// DrawText writes a string horizontally starting at (x, y).
// Characters that extend beyond screen bounds are clipped.
func (s *Screen) DrawText(x, y int, text string) {
	s.DrawTextColored(x, y, text, ColorDefault)
}

// DrawTextColored writes a string in the given color.
func (s *Screen) DrawTextColored(x, y int, text string, c Color) {
	state := -1
	var cluster string
	for len(text) > 0 {
		cluster, text, _, state = uniseg.FirstGraphemeClusterInString(text, state)
		x += s.DrawGlyph(x, y, cluster, c)
	}
}

// DrawTextCentered draws text centered horizontally at the given y position.
func (s *Screen) DrawTextCentered(y int, text string) {
	s.DrawTextCenteredColored(y, text, ColorDefault)
}

// DrawTextCenteredColored draws colored text centered horizontally.
func (s *Screen) DrawTextCenteredColored(y int, text string, c Color) {
	x := (s.width - uniseg.StringWidth(text)) / 2
	s.DrawTextColored(x, y, text, c)
}

// DrawBox draws a box outline using box-drawing characters.
func (s *Screen) DrawBox(r Rect, c Color) {
	s.SetColored(r.X, r.Y, '┌', c)
	s.SetColored(r.Right()-1, r.Y, '┐', c)
	s.SetColored(r.X, r.Bottom()-1, '└', c)
	s.SetColored(r.Right()-1, r.Bottom()-1, '┘', c)

	for x := r.X + 1; x < r.Right()-1; x++ {
		s.SetColored(x, r.Y, '─', c)
		s.SetColored(x, r.Bottom()-1, '─', c)
	}

	for y := r.Y + 1; y < r.Bottom()-1; y++ {
		s.SetColored(r.X, y, '│', c)
		s.SetColored(r.Right()-1, y, '│', c)
	}
}

// FillRect fills a rectangular area with the given rune.
func (s *Screen) FillRect(r Rect, fill rune, c Color) {
	for y := r.Y; y < r.Bottom(); y++ {
		for x := r.X; x < r.Right(); x++ {
			s.SetColored(x, y, fill, c)
		}
	}
}

// Invert toggles reverse video for every cell inside r.
// Used to highlight the card under the cursor.
func (s *Screen) Invert(r Rect) {
	for y := r.Y; y < r.Bottom(); y++ {
		for x := r.X; x < r.Right(); x++ {
			if s.inBounds(x, y) {
				s.cells[y][x].Inverse = !s.cells[y][x].Inverse
			}
		}
	}
}

// String converts the screen buffer to plain text without styling.
// Each row is joined with newlines.
func (s *Screen) String() string {
	var sb strings.Builder
	sb.Grow(s.width*s.height + s.height)

	for y := 0; y < s.height; y++ {
		if y > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(s.Row(y))
	}
	return sb.String()
}

// Row returns the specified row as plain text.
func (s *Screen) Row(y int) string {
	if y < 0 || y >= s.height {
		return strings.Repeat(" ", s.width)
	}
	var sb strings.Builder
	for _, c := range s.cells[y] {
		sb.WriteString(c.Text)
	}
	return sb.String()
}
