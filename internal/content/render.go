package content

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/foliodev/folio/internal/theme"
	"github.com/foliodev/folio/internal/ui"
)

// Renderer turns timeline entries into styled blocks. The whole timeline
// is produced as one string so the caller can swap section content in a
// single assignment rather than incrementally.
type Renderer struct {
	palette theme.Palette
	width   int
}

// NewRenderer creates a renderer for the given palette and wrap width.
func NewRenderer(palette theme.Palette, width int) *Renderer {
	if width < 20 {
		width = 20
	}
	return &Renderer{palette: palette, width: width}
}

// Timeline renders every entry in input order through one fixed template
// and joins them. An empty document renders a muted placeholder rather
// than nothing.
func (r *Renderer) Timeline(entries []Entry) string {
	if len(entries) == 0 {
		return lipgloss.NewStyle().
			Foreground(r.palette.Muted).
			Render("No experience entries yet.")
	}

	blocks := make([]string, 0, len(entries))
	for _, e := range entries {
		blocks = append(blocks, r.entry(e))
	}
	return strings.Join(blocks, "\n\n")
}

// entry renders one timeline item. Missing description and empty
// highlights omit those fragments entirely instead of rendering
// empty lines.
func (r *Renderer) entry(e Entry) string {
	titleStyle := lipgloss.NewStyle().Foreground(r.palette.Accent).Bold(true)
	orgStyle := lipgloss.NewStyle().Foreground(r.palette.Secondary)
	metaStyle := lipgloss.NewStyle().Foreground(r.palette.Muted)
	bodyStyle := lipgloss.NewStyle().Foreground(r.palette.Primary).Width(r.width - 2)

	var b strings.Builder

	b.WriteString(titleStyle.Render(ui.SymbolMarker + " " + e.Title))
	b.WriteString("\n")

	org := e.Organization
	if e.Location != "" {
		org += "  " + metaStyle.Render(e.Location)
	}
	b.WriteString("  " + orgStyle.Render(org))
	b.WriteString("\n")

	if period := e.Period(); period != "" {
		b.WriteString("  " + metaStyle.Render(period))
		b.WriteString("\n")
	}

	if e.Description != "" {
		b.WriteString("  " + bodyStyle.Render(e.Description))
		b.WriteString("\n")
	}

	for _, h := range e.Highlights {
		b.WriteString("  " + bodyStyle.Render(ui.SymbolBullet+" "+h))
		b.WriteString("\n")
	}

	return strings.TrimRight(b.String(), "\n")
}

// Loading renders the placeholder shown while the document loads.
func (r *Renderer) Loading() string {
	return lipgloss.NewStyle().
		Foreground(r.palette.Muted).
		Render("Loading experience…")
}

// Error renders exactly one error block carrying the failure reason.
// A failed load never produces a partial timeline.
func (r *Renderer) Error(err error) string {
	style := lipgloss.NewStyle().Foreground(r.palette.Error)
	reason := "unknown error"
	if err != nil {
		reason = strings.TrimSpace(err.Error())
	}
	return style.Render(ui.SymbolFail+" Could not load experience") + "\n" +
		lipgloss.NewStyle().Foreground(r.palette.Muted).Width(r.width-2).Render(reason)
}
