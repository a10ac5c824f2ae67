package tui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/foliodev/folio/internal/config"
	"github.com/foliodev/folio/internal/theme"
)

func testStyles() styles {
	return newStyles(theme.PaletteFor(theme.Light))
}

func TestBuildSectionsDocumentOrder(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Profile.Name = "Ada Example"

	sections := buildSections(cfg, testStyles(), theme.PaletteFor(theme.Light), 80, "hero frame", "timeline body")

	ids := make([]string, 0, len(sections))
	for _, s := range sections {
		ids = append(ids, s.ID)
	}
	assert.Equal(t, append([]string{sectionHero}, navSections...), ids)
}

func TestBuildSectionsEmptyCardsGetPlaceholder(t *testing.T) {
	cfg := config.DefaultConfig()
	sections := buildSections(cfg, testStyles(), theme.PaletteFor(theme.Light), 80, "", "")

	for _, s := range sections {
		if s.ID == sectionExpertise || s.ID == sectionPress || s.ID == sectionGames {
			assert.Contains(t, s.Body, "Nothing here yet", "section %s", s.ID)
		}
	}
}

func TestBuildSectionsCards(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Profile.Games = []config.Card{
		{Title: "Orbital Drift", Blurb: "A physics puzzler.", URL: "https://example.com/orbital"},
		{Title: "Night Market"},
	}

	sections := buildSections(cfg, testStyles(), theme.PaletteFor(theme.Light), 80, "", "")

	var games string
	for _, s := range sections {
		if s.ID == sectionGames {
			games = s.Body
		}
	}
	require.NotEmpty(t, games)
	assert.Contains(t, games, "Orbital Drift")
	assert.Contains(t, games, "A physics puzzler.")
	assert.Contains(t, games, "https://example.com/orbital")
	assert.Contains(t, games, "Night Market")
}

func TestRenderContactMentionsLinks(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Profile.Links = []config.Link{{Label: "Mastodon", URL: "https://example.social/@ada"}}

	body := renderContact(cfg, testStyles())
	assert.Contains(t, body, "folio contact")
	assert.Contains(t, body, "Mastodon: https://example.social/@ada")
	assert.Contains(t, body, "print locally", "missing endpoint is surfaced, not an error")
}

func TestAssembleLayoutAccounting(t *testing.T) {
	sections := []Section{
		{ID: "a", Title: "Alpha", Body: "one\ntwo"},
		{ID: "b", Title: "Beta", Body: "three"},
		{ID: "c", Body: "four\nfive\nsix"},
	}

	_, layout := assemble(sections, testStyles(), func(string) bool { return true })
	require.Len(t, layout, 3)

	assert.Equal(t, 0, layout[0].Top)
	for i := 1; i < len(layout); i++ {
		assert.Equal(t, layout[i-1].Top+layout[i-1].Height, layout[i].Top,
			"section %s must start where %s ends", layout[i].ID, layout[i-1].ID)
	}

	// Title adds its own row plus a blank line; the gap row is counted in
	// the section's height.
	assert.Equal(t, lipgloss.Height("x\n\none\ntwo")+1, layout[0].Height)
}

func TestAssembleUnrevealedIsFaintAndIndented(t *testing.T) {
	sections := []Section{{ID: "a", Title: "Alpha", Body: "plain text"}}

	hidden, _ := assemble(sections, testStyles(), func(string) bool { return false })
	shown, _ := assemble(sections, testStyles(), func(string) bool { return true })

	assert.NotEqual(t, shown, hidden)
	assert.Contains(t, stripANSI(hidden), "  plain text", "unrevealed content is nudged right")
	assert.NotContains(t, stripANSI(shown), "  plain text")
}

func TestAssembleRevealDoesNotMoveLayout(t *testing.T) {
	sections := []Section{
		{ID: "a", Title: "Alpha", Body: "one"},
		{ID: "b", Title: "Beta", Body: "two"},
	}

	_, before := assemble(sections, testStyles(), func(string) bool { return false })
	_, after := assemble(sections, testStyles(), func(string) bool { return true })

	require.Len(t, after, len(before))
	for i := range before {
		assert.Equal(t, before[i].Top, after[i].Top, "reveal must not reflow section %s", before[i].ID)
		assert.Equal(t, before[i].Height, after[i].Height)
	}
}

func TestStripANSI(t *testing.T) {
	styled := lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Render("hello")
	assert.Equal(t, "hello", stripANSI(styled))
	assert.Equal(t, "plain", stripANSI("plain"))
}

func TestIndent(t *testing.T) {
	assert.Equal(t, "  a\n\n  b", indent("a\n\nb", 2))
}

func TestRenderHero(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Profile.Name = "Ada Example"
	cfg.Profile.Title = "Game Designer"

	hero := renderHero("canvas", cfg, testStyles())
	assert.True(t, strings.HasPrefix(hero, "canvas\n"))
	assert.Contains(t, hero, "Ada Example")
	assert.Contains(t, hero, "Game Designer")
}
