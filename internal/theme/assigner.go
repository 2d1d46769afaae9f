package theme

// Placeholder is drawn for pairs that get no glyph because the pool ran out.
const Placeholder = "?"

// Assigner maps pair identities to glyphs on first use. Each new pair
// takes the next unused glyph of the pool, so a given order of first
// lookups always produces the same faces.
type Assigner struct {
	pool     []string
	next     int
	assigned map[int]string
}

// NewAssigner creates an assigner drawing from the theme's pool.
func NewAssigner(t Theme) *Assigner {
	return &Assigner{
		pool:     append([]string(nil), t.Glyphs...),
		assigned: make(map[int]string),
	}
}

// Glyph returns the glyph for a pair, assigning one if needed.
func (a *Assigner) Glyph(pairID int) string {
	if g, ok := a.assigned[pairID]; ok {
		return g
	}
	g := Placeholder
	if a.next < len(a.pool) {
		g = a.pool[a.next]
		a.next++
	}
	a.assigned[pairID] = g
	return g
}

// Reset forgets every assignment. Use it on restart or theme change.
func (a *Assigner) Reset() {
	a.next = 0
	a.assigned = make(map[int]string)
}
