package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/foliodev/folio/internal/theme"
)

func TestNavToggle(t *testing.T) {
	n := newNav(40) // narrow: toggle present

	assert.False(t, n.isOpen())
	n.toggle()
	assert.True(t, n.isOpen())
	n.toggle()
	assert.False(t, n.isOpen())
}

func TestNavInertWhenWide(t *testing.T) {
	n := newNav(120)

	// The toggle control is absent on wide layouts: the overlay is inert.
	n.toggle()
	assert.False(t, n.isOpen())
}

func TestNavResizeClosesOverlay(t *testing.T) {
	n := newNav(40)
	n.toggle()
	assert.True(t, n.isOpen())

	n.setWidth(120)
	assert.False(t, n.isOpen())
	assert.True(t, n.inert)
}

func TestNavSelectionCloses(t *testing.T) {
	n := newNav(40)
	n.toggle()
	n.moveCursor(2)

	id := n.selected()
	assert.Equal(t, navSections[2], id)
	assert.False(t, n.isOpen(), "choosing a link while open always closes")
}

func TestNavCursorClamped(t *testing.T) {
	n := newNav(40)

	n.moveCursor(-5)
	assert.Equal(t, 0, n.cursor)

	n.moveCursor(100)
	assert.Equal(t, len(n.links)-1, n.cursor)
}

func TestActiveSectionSelection(t *testing.T) {
	layout := []layoutSection{
		{Section: Section{ID: sectionHero}, Top: 0, Height: 12},
		{Section: Section{ID: sectionAbout}, Top: 12, Height: 6},
		{Section: Section{ID: sectionExperience}, Top: 18, Height: 20},
		{Section: Section{ID: sectionContact}, Top: 38, Height: 5},
	}

	tests := []struct {
		name   string
		offset int
		want   string
	}{
		{name: "top of page before any section", offset: 0, want: ""},
		{name: "lookahead pulls about in early", offset: 9, want: sectionAbout},
		{name: "inside about", offset: 14, want: sectionAbout},
		{name: "lookahead pulls experience in", offset: 15, want: sectionExperience},
		{name: "deep in experience", offset: 30, want: sectionExperience},
		{name: "last section wins at the bottom", offset: 40, want: sectionContact},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, activeSection(layout, tt.offset))
		})
	}
}

func TestActiveSectionSkipsHero(t *testing.T) {
	layout := []layoutSection{
		{Section: Section{ID: sectionHero}, Top: 0, Height: 12},
	}
	assert.Equal(t, "", activeSection(layout, 5))
}

func TestRenderBarHighlightsExactlyOneLink(t *testing.T) {
	n := newNav(120)
	n.setActive(sectionPress)
	st := newStyles(theme.PaletteFor(theme.Dark))
	titles := map[string]string{sectionPress: "Press"}

	out := n.renderBar(st, titles)
	assert.Contains(t, out, "Press")
}
