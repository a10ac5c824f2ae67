package particles

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/foliodev/folio/internal/theme"
)

// Connection glyphs by strength bucket, faintest first.
var connGlyphs = []rune{'·', '∙', '•'}

// pointGlyph marks a particle. Points draw over connections.
const pointGlyph = '●'

// RenderFrame draws one frame of the field into a rows x cols cell grid.
// Connections are drawn first (line segments sampled into cells, glyph
// chosen by strength), then points on top.
func RenderFrame(f *Field, palette theme.Palette) string {
	width, height := f.Size()
	cols, rows := int(width)+1, int(height)+1
	if cols < 1 || rows < 1 {
		return ""
	}

	grid := make([][]rune, rows)
	for i := range grid {
		grid[i] = make([]rune, cols)
		for j := range grid[i] {
			grid[i][j] = ' '
		}
	}

	// Track which cells hold points so connection styling skips them.
	isPoint := make([][]bool, rows)
	for i := range isPoint {
		isPoint[i] = make([]bool, cols)
	}

	for _, c := range f.Connections() {
		a, b := f.points[c.I], f.points[c.J]
		drawSegment(grid, a.X, a.Y, b.X, b.Y, glyphFor(c.Strength))
	}

	for _, p := range f.Points() {
		col, row := int(p.X), int(p.Y)
		if row >= 0 && row < rows && col >= 0 && col < cols {
			grid[row][col] = pointGlyph
			isPoint[row][col] = true
		}
	}

	pointStyle := lipgloss.NewStyle().Foreground(palette.AccentAlt)
	connStyle := lipgloss.NewStyle().Foreground(palette.Muted)

	var sb strings.Builder
	for row := 0; row < rows; row++ {
		var plain, styled strings.Builder
		flush := func(style lipgloss.Style) {
			if plain.Len() > 0 {
				styled.WriteString(style.Render(plain.String()))
				plain.Reset()
			}
		}

		// Runs of same-styled cells render together to keep the escape
		// sequence count down.
		inPointRun := false
		for col := 0; col < cols; col++ {
			want := isPoint[row][col]
			if want != inPointRun {
				if inPointRun {
					flush(pointStyle)
				} else {
					flush(connStyle)
				}
				inPointRun = want
			}
			plain.WriteRune(grid[row][col])
		}
		if inPointRun {
			flush(pointStyle)
		} else {
			flush(connStyle)
		}

		sb.WriteString(styled.String())
		if row < rows-1 {
			sb.WriteString("\n")
		}
	}
	return sb.String()
}

// glyphFor buckets a connection strength into a glyph: faint lines for
// distant pairs, denser marks as pairs get closer.
func glyphFor(strength float64) rune {
	idx := int(strength * float64(len(connGlyphs)))
	if idx >= len(connGlyphs) {
		idx = len(connGlyphs) - 1
	}
	if idx < 0 {
		idx = 0
	}
	return connGlyphs[idx]
}

// drawSegment samples the line from (x0,y0) to (x1,y1) into grid cells.
func drawSegment(grid [][]rune, x0, y0, x1, y1 float64, glyph rune) {
	rows := len(grid)
	if rows == 0 {
		return
	}
	cols := len(grid[0])

	dx := x1 - x0
	dy := y1 - y0
	steps := int(maxAbs(dx, dy)) + 1

	for s := 0; s <= steps; s++ {
		t := float64(s) / float64(steps)
		col := int(x0 + dx*t)
		row := int(y0 + dy*t)
		if row >= 0 && row < rows && col >= 0 && col < cols && grid[row][col] == ' ' {
			grid[row][col] = glyph
		}
	}
}

func maxAbs(a, b float64) float64 {
	if a < 0 {
		a = -a
	}
	if b < 0 {
		b = -b
	}
	if a > b {
		return a
	}
	return b
}
