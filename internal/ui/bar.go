package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Progress bar block characters.
const (
	BarFilled = '█'
	BarEmpty  = '░'
)

// BarConfig configures progress bar rendering.
type BarConfig struct {
	Width    int            // Width of the bar in characters
	Brackets bool           // Whether to wrap bar in [ ]
	Color    lipgloss.Color // Bar color; empty means unstyled
}

// ScrollBarConfig returns the config used for the scroll progress bar.
func ScrollBarConfig(width int) BarConfig {
	return BarConfig{
		Width:    width,
		Brackets: false,
		Color:    ColorAccentAlt,
	}
}

// ClampPercent clamps a percentage to the 0-100 range.
func ClampPercent(percent float64) float64 {
	if percent < 0 {
		return 0
	}
	if percent > 100 {
		return 100
	}
	return percent
}

// BuildBarString builds the raw bar string (without styling) from filled/empty counts.
// If brackets is true, wraps in [ ].
func BuildBarString(filledCount, emptyCount int, brackets bool) string {
	var sb strings.Builder
	capacity := filledCount + emptyCount
	if brackets {
		capacity += 2
	}
	sb.Grow(capacity)

	if brackets {
		sb.WriteRune('[')
	}

	for i := 0; i < filledCount; i++ {
		sb.WriteRune(BarFilled)
	}
	for i := 0; i < emptyCount; i++ {
		sb.WriteRune(BarEmpty)
	}

	if brackets {
		sb.WriteRune(']')
	}

	return sb.String()
}

// CalculateBarCounts returns the number of filled and empty characters for a bar.
// Percent should be 0-100, width is the total bar width.
func CalculateBarCounts(percent float64, width int) (filled, empty int) {
	filled = int((percent / 100.0) * float64(width))
	empty = width - filled
	return
}

// RenderBar renders a progress bar with the given configuration.
// Percent should be 0-100.
func RenderBar(percent float64, config BarConfig) string {
	if config.Width <= 0 {
		return ""
	}

	percent = ClampPercent(percent)
	filled, empty := CalculateBarCounts(percent, config.Width)
	bar := BuildBarString(filled, empty, config.Brackets)

	if config.Color != "" {
		style := lipgloss.NewStyle().Foreground(config.Color)
		bar = style.Render(bar)
	}

	return bar
}
