package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/foliodev/folio/internal/config"
	"github.com/foliodev/folio/internal/theme"
	"github.com/foliodev/folio/internal/ui"
)

// Section is one page section: an identifier for nav association and a
// rendered body. Nav links match sections by ID at scroll time; nothing
// else ties them together.
type Section struct {
	ID    string
	Title string
	Body  string
}

// layoutSection is a section placed in the assembled page.
type layoutSection struct {
	Section
	Top    int // first content row of the section
	Height int // rows including title and trailing gap
}

// Section identifiers, in document order.
const (
	sectionHero       = "hero"
	sectionAbout      = "about"
	sectionExpertise  = "expertise"
	sectionPress      = "press"
	sectionGames      = "games"
	sectionExperience = "experience"
	sectionContact    = "contact"
)

// navSections lists the sections that get nav links, in order.
var navSections = []string{
	sectionAbout, sectionExpertise, sectionPress,
	sectionGames, sectionExperience, sectionContact,
}

// buildSections assembles the page sections from profile config and the
// already-rendered hero frame and timeline body.
func buildSections(cfg *config.Config, st styles, palette theme.Palette, width int, hero, timeline string) []Section {
	bodyWidth := width - 2
	if bodyWidth < 20 {
		bodyWidth = 20
	}
	wrap := st.body.Width(bodyWidth)

	sections := []Section{
		{ID: sectionHero, Body: hero},
	}

	var aboutParts []string
	if cfg.Profile.Tagline != "" {
		aboutParts = append(aboutParts, wrap.Render(cfg.Profile.Tagline))
	}
	if cfg.Profile.Location != "" {
		aboutParts = append(aboutParts, st.muted.Render("Based in "+cfg.Profile.Location))
	}
	about := strings.Join(aboutParts, "\n")
	if about == "" {
		about = st.muted.Render("This space intentionally left blank.")
	}
	sections = append(sections, Section{ID: sectionAbout, Title: "About", Body: about})

	sections = append(sections,
		Section{ID: sectionExpertise, Title: "Expertise", Body: renderCards(cfg.Profile.Expertise, st, bodyWidth)},
		Section{ID: sectionPress, Title: "Press", Body: renderCards(cfg.Profile.Press, st, bodyWidth)},
		Section{ID: sectionGames, Title: "Games", Body: renderCards(cfg.Profile.Games, st, bodyWidth)},
		Section{ID: sectionExperience, Title: "Experience", Body: timeline},
		Section{ID: sectionContact, Title: "Contact", Body: renderContact(cfg, st)},
	)

	return sections
}

// renderCards renders a card-style section body. Empty card lists get a
// muted placeholder so the section still exists for nav purposes.
func renderCards(cards []config.Card, st styles, width int) string {
	if len(cards) == 0 {
		return st.muted.Render("Nothing here yet.")
	}

	blocks := make([]string, 0, len(cards))
	for _, c := range cards {
		var b strings.Builder
		b.WriteString(st.body.Bold(true).Render(c.Title))
		if c.Blurb != "" {
			b.WriteString("\n" + st.body.Width(width-2).Render("  "+c.Blurb))
		}
		if c.URL != "" {
			b.WriteString("\n  " + st.muted.Render(c.URL))
		}
		blocks = append(blocks, b.String())
	}
	return strings.Join(blocks, "\n\n")
}

// renderContact renders the contact section body.
func renderContact(cfg *config.Config, st styles) string {
	var b strings.Builder
	b.WriteString(st.body.Render("Run 'folio contact' to send a message."))
	if cfg.Contact.Endpoint == "" {
		b.WriteString("\n" + st.muted.Render("No form endpoint configured; messages print locally."))
	}
	for _, link := range cfg.Profile.Links {
		b.WriteString("\n" + st.muted.Render(link.Label+": "+link.URL))
	}
	return b.String()
}

// renderHero renders the hero section: the animated canvas with the
// name and title overlaid beneath it.
func renderHero(canvas string, cfg *config.Config, st styles) string {
	var b strings.Builder
	b.WriteString(canvas)
	b.WriteString("\n")
	b.WriteString(st.name.Render(cfg.Profile.Name))
	if cfg.Profile.Title != "" {
		b.WriteString("\n" + st.title.Render(cfg.Profile.Title))
	}
	return b.String()
}

// assemble lays the sections out into one content string, recording each
// section's top row and height. The revealed check applies the entrance
// state: unrevealed sections render faint and indented.
func assemble(sections []Section, st styles, revealed func(id string) bool) (string, []layoutSection) {
	var b strings.Builder
	layout := make([]layoutSection, 0, len(sections))
	row := 0

	for i, s := range sections {
		block := s.Body
		if s.Title != "" {
			block = st.sectionTitle.Render(ui.SymbolNavDot+" "+s.Title) + "\n\n" + block
		}

		if !revealed(s.ID) {
			// Entrance state: faint and nudged right until first seen.
			block = st.hidden.Render(stripANSI(block))
			block = indent(block, 2)
		}

		height := lipgloss.Height(block) + 1 // block lines plus the gap row
		layout = append(layout, layoutSection{Section: s, Top: row, Height: height})

		b.WriteString(block)
		b.WriteString("\n")
		if i < len(sections)-1 {
			b.WriteString("\n")
		}
		row += height
	}

	return b.String(), layout
}

// indent prefixes every line with n spaces.
func indent(s string, n int) string {
	pad := strings.Repeat(" ", n)
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		if line != "" {
			lines[i] = pad + line
		}
	}
	return strings.Join(lines, "\n")
}

// stripANSI removes escape sequences so the faint entrance style is not
// overridden by inner styling.
func stripANSI(s string) string {
	var b strings.Builder
	inEscape := false
	for _, r := range s {
		switch {
		case inEscape:
			if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') {
				inEscape = false
			}
		case r == '\x1b':
			inEscape = true
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}
