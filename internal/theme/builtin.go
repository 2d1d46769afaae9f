package theme

import "github.com/vovakirdan/tui-concentration/internal/core"

// Names of the built-in themes.
const (
	Fruits         = "Fruits"
	ShapesAndColor = "Shapes & Colors"
	Flags          = "Flags"
)

var builtin = []struct {
	name   string
	glyphs string
	accent core.Color
}{
	{Fruits, "🍓🍇🍑🍎🍉🍋🫐🍒🍏🥭🍌🥥🍍🥝🍐🍊🍈🥑🫑🥒🌶🌽🥕🥬", core.ColorGreen},
	{ShapesAndColor, "🔴🟡🟢🔵🟣⚫️🔶🔷🟥🟧🟩🟦🟪⬛️🟫🔺🔲🔘🟠🟤🟨♥️🔻🛑", core.ColorBlue},
	{Flags, "🇺🇳🇦🇺🇦🇹🇦🇿🇦🇽🇦🇱🇩🇿🇦🇸🇦🇷🇧🇾🇧🇪🇧🇬🇧🇷🇧🇯🇧🇭🇧🇼🇬🇧🏴󠁧󠁢󠁥󠁮󠁧󠁿🇭🇺🇻🇳🇬🇪🇬🇭🇬🇱🇬🇹", core.ColorRed},
}

// Builtin returns the themes shipped with the game.
func Builtin() []Theme {
	out := make([]Theme, 0, len(builtin))
	for _, b := range builtin {
		out = append(out, New(b.name, b.glyphs, b.accent))
	}
	return out
}

// BuiltinCatalog returns a catalog of the built-in themes.
func BuiltinCatalog() *Catalog {
	return NewCatalog(Builtin()...)
}
