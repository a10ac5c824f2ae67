package particles

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/foliodev/folio/internal/theme"
)

func TestRenderFrameDimensions(t *testing.T) {
	f := NewField(testConfig(), 39, 9, 1)
	out := RenderFrame(f, theme.PaletteFor(theme.Dark))

	lines := strings.Split(out, "\n")
	assert.Len(t, lines, 10, "one line per row")
}

func TestRenderFrameShowsPoints(t *testing.T) {
	cfg := Config{NodeCount: 5, MaxDistance: 10, MouseInfluence: 15}
	f := NewField(cfg, 39, 9, 2)

	out := RenderFrame(f, theme.PaletteFor(theme.Light))
	assert.Contains(t, out, string(pointGlyph))
}

func TestRenderFrameEmptyField(t *testing.T) {
	cfg := Config{NodeCount: 0, MaxDistance: 10, MouseInfluence: 15}
	f := NewField(cfg, 39, 9, 2)

	out := RenderFrame(f, theme.PaletteFor(theme.Dark))
	assert.NotContains(t, out, string(pointGlyph))
	require.Len(t, strings.Split(out, "\n"), 10)
}

func TestRenderFrameStaticIsRepeatable(t *testing.T) {
	// The reduced-motion path renders one frame and never steps; the
	// same field must render identically every time.
	f := NewField(testConfig(), 39, 9, 8)

	first := RenderFrame(f, theme.PaletteFor(theme.Dark))
	second := RenderFrame(f, theme.PaletteFor(theme.Dark))
	assert.Equal(t, first, second)
}

func TestGlyphForBuckets(t *testing.T) {
	assert.Equal(t, connGlyphs[0], glyphFor(0.01))
	assert.Equal(t, connGlyphs[len(connGlyphs)-1], glyphFor(0.99))
	assert.Equal(t, connGlyphs[len(connGlyphs)-1], glyphFor(1.0))
}
