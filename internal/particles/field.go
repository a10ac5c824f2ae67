// Package particles implements the animated hero background: a field of
// moving points connected by proximity lines, attracted toward the
// pointer, reflected at the edges.
package particles

import (
	"math"
	"math/rand"
)

// Physics constants. Damping keeps repeated pointer attraction from
// growing velocities without bound; parallax scales the attraction force.
const (
	damping      = 0.99
	parallax     = 0.02
	maxInitSpeed = 0.5
	pointRadius  = 2
)

// Config controls field construction and per-frame behavior.
type Config struct {
	// NodeCount is the exact number of points in the field.
	NodeCount int

	// MaxDistance is the connection threshold: pairs closer than this
	// are linked, with strength fading linearly to zero at the limit.
	MaxDistance float64

	// MouseInfluence is the pointer attraction radius.
	MouseInfluence float64
}

// Point is one animated particle. Positions are bounded to the field
// dimensions; velocities are unbounded but damped each frame.
type Point struct {
	X, Y   float64
	VX, VY float64
	Radius float64
}

// Pointer is the current pointer position influencing the field.
type Pointer struct {
	X, Y float64
}

// Connection links points i and j (i < j) with a strength in (0, 1].
type Connection struct {
	I, J     int
	Strength float64
}

// Field owns the point set and the nullable pointer state.
// It has no hidden globals: construct with NewField, drive with Step,
// and drop the value to tear down.
type Field struct {
	cfg     Config
	width   float64
	height  float64
	points  []Point
	pointer *Pointer
	rng     *rand.Rand
}

// NewField creates a field of exactly cfg.NodeCount points scattered
// across the given dimensions.
func NewField(cfg Config, width, height float64, seed int64) *Field {
	f := &Field{
		cfg:    cfg,
		width:  width,
		height: height,
		rng:    rand.New(rand.NewSource(seed)),
	}
	f.regenerate()
	return f
}

// regenerate builds the full point set in one pass. The field is never
// observable partially constructed: the new slice replaces the old one
// in a single assignment.
func (f *Field) regenerate() {
	points := make([]Point, f.cfg.NodeCount)
	for i := range points {
		points[i] = Point{
			X:      f.rng.Float64() * f.width,
			Y:      f.rng.Float64() * f.height,
			VX:     (f.rng.Float64() - 0.5) * maxInitSpeed,
			VY:     (f.rng.Float64() - 0.5) * maxInitSpeed,
			Radius: pointRadius,
		}
	}
	f.points = points
}

// Resize sets new dimensions and regenerates the entire point set.
// No point identity survives a resize: positions and velocities are
// re-randomized at the new size.
func (f *Field) Resize(width, height float64) {
	f.width = width
	f.height = height
	f.regenerate()
}

// SetPointer records the pointer position.
func (f *Field) SetPointer(x, y float64) {
	f.pointer = &Pointer{X: x, Y: y}
}

// ClearPointer removes pointer influence immediately. Velocities keep
// whatever the attraction already gave them.
func (f *Field) ClearPointer() {
	f.pointer = nil
}

// Pointer returns the current pointer, or nil when none is active.
func (f *Field) Pointer() *Pointer {
	return f.pointer
}

// Points returns the current point set.
func (f *Field) Points() []Point {
	return f.points
}

// Size returns the field dimensions.
func (f *Field) Size() (width, height float64) {
	return f.width, f.height
}

// Step advances the simulation one frame: pointer attraction,
// integration, edge reflection, clamping, damping.
func (f *Field) Step() {
	for i := range f.points {
		p := &f.points[i]

		// Pull toward the pointer, stronger when closer.
		if f.pointer != nil {
			dx := f.pointer.X - p.X
			dy := f.pointer.Y - p.Y
			dist := math.Hypot(dx, dy)
			if dist > 0 && dist < f.cfg.MouseInfluence {
				force := (f.cfg.MouseInfluence - dist) / f.cfg.MouseInfluence
				p.VX += (dx / dist) * force * parallax
				p.VY += (dy / dist) * force * parallax
			}
		}

		p.X += p.VX
		p.Y += p.VY

		// Elastic boundary reflection, then clamp back into bounds so
		// a point cannot escape on the same frame it reflects.
		if p.X < 0 || p.X > f.width {
			p.VX = -p.VX
			p.X = clamp(p.X, 0, f.width)
		}
		if p.Y < 0 || p.Y > f.height {
			p.VY = -p.VY
			p.Y = clamp(p.Y, 0, f.height)
		}

		p.VX *= damping
		p.VY *= damping
	}
}

// Connections returns every unordered pair within MaxDistance, each
// exactly once (i < j), with strength 1 - distance/MaxDistance.
func (f *Field) Connections() []Connection {
	var conns []Connection
	for i := 0; i < len(f.points); i++ {
		for j := i + 1; j < len(f.points); j++ {
			dx := f.points[i].X - f.points[j].X
			dy := f.points[i].Y - f.points[j].Y
			dist := math.Hypot(dx, dy)
			if dist < f.cfg.MaxDistance {
				conns = append(conns, Connection{
					I:        i,
					J:        j,
					Strength: 1 - dist/f.cfg.MaxDistance,
				})
			}
		}
	}
	return conns
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
