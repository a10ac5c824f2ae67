package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScrollPercent(t *testing.T) {
	tests := []struct {
		name          string
		offset        int
		contentHeight int
		viewHeight    int
		want          float64
	}{
		{name: "top", offset: 0, contentHeight: 100, viewHeight: 20, want: 0},
		{name: "middle", offset: 40, contentHeight: 100, viewHeight: 20, want: 50},
		{name: "exact bottom is 100", offset: 80, contentHeight: 100, viewHeight: 20, want: 100},
		{name: "overshoot clamps", offset: 200, contentHeight: 100, viewHeight: 20, want: 100},
		{name: "content shorter than viewport", offset: 0, contentHeight: 10, viewHeight: 20, want: 100},
		{name: "content equals viewport", offset: 0, contentHeight: 20, viewHeight: 20, want: 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := scrollPercent(tt.offset, tt.contentHeight, tt.viewHeight)
			assert.InDelta(t, tt.want, got, 0.001)
		})
	}
}

func TestScrollTargetFor(t *testing.T) {
	layout := []layoutSection{
		{Section: Section{ID: sectionHero}, Top: 0, Height: 12},
		{Section: Section{ID: sectionAbout}, Top: 12, Height: 6},
		{Section: Section{ID: sectionContact}, Top: 90, Height: 10},
	}

	target, ok := scrollTargetFor(layout, sectionAbout, 100, 20)
	assert.True(t, ok)
	assert.Equal(t, 12-headerOffset, target)

	// Top section floors at zero.
	target, ok = scrollTargetFor(layout, sectionHero, 100, 20)
	assert.True(t, ok)
	assert.Equal(t, 0, target)

	// Bottom section clamps to the max offset.
	target, ok = scrollTargetFor(layout, sectionContact, 100, 20)
	assert.True(t, ok)
	assert.Equal(t, 80, target)
}

func TestScrollTargetForDanglingID(t *testing.T) {
	layout := []layoutSection{
		{Section: Section{ID: sectionAbout}, Top: 12, Height: 6},
	}

	// Unknown fragment: navigation is consumed but nothing moves.
	_, ok := scrollTargetFor(layout, "missing", 100, 20)
	assert.False(t, ok)
}

func TestScrollStepConverges(t *testing.T) {
	offset, target := 0, 100
	steps := 0
	done := false
	for !done {
		offset, done = scrollStep(offset, target)
		steps++
		assert.Less(t, steps, 200, "easing must terminate")
	}
	assert.Equal(t, target, offset)
}

func TestScrollStepConvergesDownward(t *testing.T) {
	offset, target := 55, 3
	done := false
	for !done {
		next, d := scrollStep(offset, target)
		assert.Less(t, next, offset, "must move toward target")
		offset, done = next, d
	}
	assert.Equal(t, target, offset)
}

func TestScrollStepAtTarget(t *testing.T) {
	offset, done := scrollStep(42, 42)
	assert.True(t, done)
	assert.Equal(t, 42, offset)
}

func TestRevealedFraction(t *testing.T) {
	s := layoutSection{Section: Section{ID: sectionAbout}, Top: 50, Height: 10}

	// Far below the viewport: nothing visible.
	assert.Equal(t, 0.0, revealedFraction(s, 0, 20))

	// Fully inside.
	assert.Equal(t, 1.0, revealedFraction(s, 45, 30))

	// Bottom bias extends the window: top rows peek in early.
	frac := revealedFraction(s, 28, 20)
	assert.Greater(t, frac, 0.0)
	assert.Less(t, frac, 1.0)
}
