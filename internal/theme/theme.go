// Package theme holds the glyph pools used to draw card faces and the
// lazy mapping from pair identities to glyphs.
package theme

import (
	"math/rand"

	"github.com/rivo/uniseg"

	"github.com/vovakirdan/tui-concentration/internal/core"
)

// Theme is a named pool of card glyphs with an accent color for the UI.
type Theme struct {
	Name   string
	Glyphs []string
	Accent core.Color
}

// New builds a theme from a glyph string. The string is split into
// grapheme clusters, so multi-rune emoji such as flags stay whole.
// Whitespace clusters are skipped.
func New(name, glyphs string, accent core.Color) Theme {
	return Theme{
		Name:   name,
		Glyphs: SplitGlyphs(glyphs),
		Accent: accent,
	}
}

// SplitGlyphs returns the grapheme clusters of s, skipping whitespace.
func SplitGlyphs(s string) []string {
	var out []string
	state := -1
	for len(s) > 0 {
		var cluster string
		cluster, s, _, state = uniseg.FirstGraphemeClusterInString(s, state)
		if isSpace(cluster) {
			continue
		}
		out = append(out, cluster)
	}
	return out
}

func isSpace(cluster string) bool {
	switch cluster {
	case " ", "\t", "\n", "\r", "\r\n":
		return true
	}
	return false
}

// Size returns the number of distinct pairs the theme can draw.
func (t Theme) Size() int {
	return len(t.Glyphs)
}

// Catalog is an immutable set of themes keyed by name. Names keep the
// order the themes were given in.
type Catalog struct {
	themes map[string]Theme
	names  []string
}

// NewCatalog builds a catalog. A later theme with the same name
// replaces an earlier one but keeps its position.
func NewCatalog(themes ...Theme) *Catalog {
	c := &Catalog{themes: make(map[string]Theme, len(themes))}
	for _, t := range themes {
		if _, dup := c.themes[t.Name]; !dup {
			c.names = append(c.names, t.Name)
		}
		c.themes[t.Name] = Theme{
			Name:   t.Name,
			Glyphs: append([]string(nil), t.Glyphs...),
			Accent: t.Accent,
		}
	}
	return c
}

// Names returns the theme names in catalog order.
func (c *Catalog) Names() []string {
	return append([]string(nil), c.names...)
}

// First returns the first theme. It returns false for an empty catalog.
func (c *Catalog) First() (Theme, bool) {
	if len(c.names) == 0 {
		return Theme{}, false
	}
	return c.themes[c.names[0]], true
}

// Get returns the named theme. An unknown name yields a theme with an
// empty pool, which draws every card with the placeholder.
func (c *Catalog) Get(name string) (Theme, bool) {
	t, ok := c.themes[name]
	if !ok {
		return Theme{Name: name}, false
	}
	return t, true
}

// Random picks a theme uniformly. It returns false for an empty catalog.
func (c *Catalog) Random(rng *rand.Rand) (Theme, bool) {
	if len(c.names) == 0 {
		return Theme{}, false
	}
	return c.themes[c.names[rng.Intn(len(c.names))]], true
}
