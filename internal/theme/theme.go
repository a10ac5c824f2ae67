// Package theme owns the light/dark preference: a single persisted key,
// read once at startup, flipped only by explicit toggle, and applied as
// the active lipgloss palette.
package theme

import "github.com/charmbracelet/lipgloss"

// Theme is the enumerated appearance preference.
type Theme string

const (
	Light Theme = "light"
	Dark  Theme = "dark"
)

// DefaultTheme is applied when no preference has been persisted.
const DefaultTheme = Light

// Parse returns the theme for s, falling back to DefaultTheme for any
// value outside the binary domain.
func Parse(s string) Theme {
	switch Theme(s) {
	case Light, Dark:
		return Theme(s)
	default:
		return DefaultTheme
	}
}

// Valid reports whether s names a known theme.
func Valid(s string) bool {
	return Theme(s) == Light || Theme(s) == Dark
}

// Flipped returns the other theme.
func (t Theme) Flipped() Theme {
	if t == Dark {
		return Light
	}
	return Dark
}

// String returns the persisted form of the theme.
func (t Theme) String() string {
	return string(t)
}

// Palette holds the colors every styled element keys off.
// Swapping the palette is the analogue of flipping a document-level
// attribute: everything re-renders from it on the next frame.
type Palette struct {
	Primary   lipgloss.Color // body text
	Secondary lipgloss.Color // supporting text
	Muted     lipgloss.Color // de-emphasized text, dividers
	Accent    lipgloss.Color // headings, active nav link
	AccentAlt lipgloss.Color // hero particles, highlights
	Surface   lipgloss.Color // panel backgrounds
	Success   lipgloss.Color
	Error     lipgloss.Color
}

var lightPalette = Palette{
	Primary:   lipgloss.Color("0"),  // black
	Secondary: lipgloss.Color("4"),  // blue
	Muted:     lipgloss.Color("8"),  // gray
	Accent:    lipgloss.Color("5"),  // magenta
	AccentAlt: lipgloss.Color("6"),  // cyan
	Surface:   lipgloss.Color("15"), // bright white
	Success:   lipgloss.Color("2"),
	Error:     lipgloss.Color("1"),
}

var darkPalette = Palette{
	Primary:   lipgloss.Color("7"), // white/default
	Secondary: lipgloss.Color("12"),
	Muted:     lipgloss.Color("8"),
	Accent:    lipgloss.Color("13"),
	AccentAlt: lipgloss.Color("14"),
	Surface:   lipgloss.Color("#1a1a2e"),
	Success:   lipgloss.Color("2"),
	Error:     lipgloss.Color("1"),
}

// PaletteFor returns the palette for the given theme.
func PaletteFor(t Theme) Palette {
	if t == Dark {
		return darkPalette
	}
	return lightPalette
}
