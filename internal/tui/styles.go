package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/foliodev/folio/internal/theme"
)

// Layout constants.
const (
	// headerHeight is the fixed header: name line + nav line.
	headerHeight = 2

	// footerHeight is the progress bar line + key help line.
	footerHeight = 2

	// headerOffset is subtracted from a section's top when scrolling to
	// it, so the section title lands below the fixed header.
	headerOffset = 2

	// lookahead biases active-section detection toward the section the
	// reader is about to reach.
	lookahead = 3

	// revealBias extends the viewport bottom for entrance reveals.
	revealBias = 3

	// revealThreshold is the visible fraction that triggers a reveal.
	revealThreshold = 0.10

	// navBreakpoint is the width at which the full nav fits in the
	// header. Narrower terminals get the toggled overlay instead.
	navBreakpoint = 80

	// heroHeight is the animated canvas height inside the hero section.
	heroHeight = 10
)

// styles holds the theme-dependent lipgloss styles. Rebuilt whenever the
// palette flips, which is what makes a theme toggle repaint everything.
type styles struct {
	name         lipgloss.Style
	title        lipgloss.Style
	navActive    lipgloss.Style
	navInactive  lipgloss.Style
	sectionTitle lipgloss.Style
	body         lipgloss.Style
	muted        lipgloss.Style
	hidden       lipgloss.Style
	overlay      lipgloss.Style
	footer       lipgloss.Style
}

func newStyles(p theme.Palette) styles {
	return styles{
		name: lipgloss.NewStyle().
			Foreground(p.Accent).
			Bold(true),
		title: lipgloss.NewStyle().
			Foreground(p.Secondary),
		navActive: lipgloss.NewStyle().
			Foreground(p.Accent).
			Bold(true).
			Underline(true),
		navInactive: lipgloss.NewStyle().
			Foreground(p.Muted),
		sectionTitle: lipgloss.NewStyle().
			Foreground(p.Accent).
			Bold(true),
		body: lipgloss.NewStyle().
			Foreground(p.Primary),
		muted: lipgloss.NewStyle().
			Foreground(p.Muted),
		hidden: lipgloss.NewStyle().
			Foreground(p.Muted).
			Faint(true),
		overlay: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(p.Accent).
			Padding(0, 2),
		footer: lipgloss.NewStyle().
			Foreground(p.Muted),
	}
}
