package card

// Icon is the face of a card. Game logic only compares icons, so any two
// icons with the same fields are the same icon.
type Icon struct {
	Name  string // Canonical name (e.g., heart, star)
	Glyph string // Single-cell symbol for terminals
	Path  string // SVG path data in a 24x24 view box
}

// Icons is the fixed icon set decks are built from, in selection order.
var Icons = []Icon{
	{Name: "heart", Glyph: "♥", Path: "M12 21l-1.45-1.32C5.4 15.36 2 12.28 2 8.5 2 5.42 4.42 3 7.5 3c1.74 0 3.41.81 4.5 2.09C13.09 3.81 14.76 3 16.5 3 19.58 3 22 5.42 22 8.5c0 3.78-3.4 6.86-8.55 11.54L12 21z"},
	{Name: "star", Glyph: "★", Path: "M12 17.27L18.18 21l-1.64-7.03L22 9.24l-7.19-.61L12 2 9.19 8.63 2 9.24l5.46 4.73L5.82 21z"},
	{Name: "moon", Glyph: "☾", Path: "M12 3a9 9 0 1 0 9 9 7 7 0 0 1-9-9z"},
	{Name: "sun", Glyph: "☀", Path: "M12 7a5 5 0 1 0 0 10 5 5 0 0 0 0-10zM11 1h2v3h-2zM11 20h2v3h-2zM1 11h3v2H1zM20 11h3v2h-3z"},
	{Name: "diamond", Glyph: "◆", Path: "M12 2l8 10-8 10-8-10z"},
	{Name: "lightning", Glyph: "⚡", Path: "M13 2L4 14h7l-1 8 9-12h-7z"},
	{Name: "cloud", Glyph: "☁", Path: "M6 19a5 5 0 0 1-.5-9.97A7 7 0 0 1 19 9a5 5 0 0 1 0 10z"},
	{Name: "triangle", Glyph: "▲", Path: "M12 3l10 18H2z"},
	{Name: "circle", Glyph: "●", Path: "M12 2a10 10 0 1 0 0 20 10 10 0 0 0 0-20z"},
	{Name: "square", Glyph: "■", Path: "M4 4h16v16H4z"},
}

// LookupIcon finds an icon in the icon set by name
func LookupIcon(name string) (Icon, bool) {
	for _, icon := range Icons {
		if icon.Name == name {
			return icon, true
		}
	}
	return Icon{}, false
}
