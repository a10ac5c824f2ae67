package content

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/foliodev/folio/internal/theme"
	"github.com/foliodev/folio/internal/ui"
)

func testEntries() []Entry {
	doc, err := Parse([]byte(twoEntryFixture))
	if err != nil {
		panic(err)
	}
	return doc.Experience
}

func TestTimelineRendersAllEntriesInOrder(t *testing.T) {
	r := NewRenderer(theme.PaletteFor(theme.Dark), 72)
	out := r.Timeline(testEntries())

	// Exactly two item blocks, in input order.
	assert.Equal(t, 2, strings.Count(out, ui.SymbolMarker))
	first := strings.Index(out, "Lead Designer")
	second := strings.Index(out, "Indie Collective")
	require.GreaterOrEqual(t, first, 0)
	require.Greater(t, second, first)
}

func TestTimelineOmitsMissingFragments(t *testing.T) {
	r := NewRenderer(theme.PaletteFor(theme.Light), 72)
	entries := []Entry{{
		Title:        "Designer",
		Organization: "Indie Collective",
		StartDate:    "2018",
		EndDate:      "2021",
	}}

	out := r.Timeline(entries)

	// No description and no highlights: neither fragment appears.
	assert.NotContains(t, out, ui.SymbolBullet)
	for _, line := range strings.Split(out, "\n") {
		assert.NotEqual(t, "", strings.TrimSpace(line), "no empty fragment lines expected")
	}
}

func TestTimelineRendersHighlights(t *testing.T) {
	r := NewRenderer(theme.PaletteFor(theme.Dark), 72)
	out := r.Timeline(testEntries())

	assert.Equal(t, 2, strings.Count(out, ui.SymbolBullet))
	assert.Contains(t, out, "Shipped three titles")
}

func TestTimelineEmpty(t *testing.T) {
	r := NewRenderer(theme.PaletteFor(theme.Dark), 72)
	out := r.Timeline(nil)

	assert.Contains(t, out, "No experience entries")
}

func TestErrorBlock(t *testing.T) {
	r := NewRenderer(theme.PaletteFor(theme.Dark), 72)
	out := r.Error(errors.New("HTTP 500"))

	// Exactly one error block, carrying the reason, and no timeline items.
	assert.Equal(t, 1, strings.Count(out, ui.SymbolFail))
	assert.Contains(t, out, "HTTP 500")
	assert.NotContains(t, out, ui.SymbolMarker)
}

func TestErrorBlockNilError(t *testing.T) {
	r := NewRenderer(theme.PaletteFor(theme.Dark), 72)
	out := r.Error(nil)

	assert.Contains(t, out, "Could not load experience")
}

func TestLoadingPlaceholder(t *testing.T) {
	r := NewRenderer(theme.PaletteFor(theme.Light), 72)
	assert.Contains(t, r.Loading(), "Loading")
}
