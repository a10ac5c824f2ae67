package particles

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() Config {
	return Config{
		NodeCount:      50,
		MaxDistance:    20,
		MouseInfluence: 15,
	}
}

func TestNewFieldNodeCount(t *testing.T) {
	f := NewField(testConfig(), 80, 24, 1)
	assert.Len(t, f.Points(), 50)
}

func TestNewFieldZeroNodes(t *testing.T) {
	cfg := testConfig()
	cfg.NodeCount = 0

	f := NewField(cfg, 80, 24, 1)
	assert.Empty(t, f.Points())
	assert.Empty(t, f.Connections())
}

// TestPositionsStayBounded drives the field hard, with the pointer
// pinned to a corner to keep pumping energy in, and checks every
// point stays inside [0,width] x [0,height] on every frame.
func TestPositionsStayBounded(t *testing.T) {
	const width, height = 80.0, 24.0
	f := NewField(testConfig(), width, height, 42)
	f.SetPointer(0, 0)

	for frame := 0; frame < 2000; frame++ {
		f.Step()
		for i, p := range f.Points() {
			require.GreaterOrEqual(t, p.X, 0.0, "frame %d point %d X", frame, i)
			require.LessOrEqual(t, p.X, width, "frame %d point %d X", frame, i)
			require.GreaterOrEqual(t, p.Y, 0.0, "frame %d point %d Y", frame, i)
			require.LessOrEqual(t, p.Y, height, "frame %d point %d Y", frame, i)
		}
	}
}

// TestResizeRegeneratesExactCount checks the count invariant across a
// burst of resizes: the set is always exactly NodeCount, never partial.
func TestResizeRegeneratesExactCount(t *testing.T) {
	f := NewField(testConfig(), 80, 24, 7)

	sizes := [][2]float64{{120, 40}, {20, 5}, {200, 60}, {80, 24}}
	for _, s := range sizes {
		f.Resize(s[0], s[1])
		assert.Len(t, f.Points(), 50, "after resize to %vx%v", s[0], s[1])

		// Regenerated points land inside the new bounds.
		for _, p := range f.Points() {
			assert.LessOrEqual(t, p.X, s[0])
			assert.LessOrEqual(t, p.Y, s[1])
		}
	}
}

// TestResizeReplacesIdentity checks no point state survives a resize.
func TestResizeReplacesIdentity(t *testing.T) {
	f := NewField(testConfig(), 80, 24, 3)
	before := append([]Point(nil), f.Points()...)

	f.Resize(80, 24)

	same := 0
	for i, p := range f.Points() {
		if p == before[i] {
			same++
		}
	}
	assert.Less(t, same, len(before), "resize should re-randomize the set")
}

func TestConnectionsPairwiseOnce(t *testing.T) {
	f := NewField(testConfig(), 40, 12, 11)

	seen := make(map[string]bool)
	for _, c := range f.Connections() {
		// Never a self-connection, always i < j, so each unordered
		// pair appears at most once regardless of iteration order.
		require.NotEqual(t, c.I, c.J)
		require.Less(t, c.I, c.J)

		key := fmt.Sprintf("%d-%d", c.I, c.J)
		require.False(t, seen[key], "pair %s drawn twice", key)
		seen[key] = true
	}
}

func TestConnectionStrengthRange(t *testing.T) {
	f := NewField(testConfig(), 40, 12, 13)

	for _, c := range f.Connections() {
		assert.Greater(t, c.Strength, 0.0)
		assert.LessOrEqual(t, c.Strength, 1.0)
	}
}

func TestPointerAttraction(t *testing.T) {
	cfg := Config{NodeCount: 1, MaxDistance: 20, MouseInfluence: 50}
	f := NewField(cfg, 100, 100, 5)

	// Park the point and aim the pointer at a known offset.
	f.points[0] = Point{X: 50, Y: 50}
	f.SetPointer(60, 50)

	f.Step()

	assert.Greater(t, f.Points()[0].VX, 0.0, "point should accelerate toward the pointer")
}

func TestClearPointerKeepsVelocity(t *testing.T) {
	cfg := Config{NodeCount: 1, MaxDistance: 20, MouseInfluence: 50}
	f := NewField(cfg, 100, 100, 5)
	f.points[0] = Point{X: 50, Y: 50}
	f.SetPointer(60, 50)
	f.Step()

	vx := f.Points()[0].VX
	require.NotZero(t, vx)

	f.ClearPointer()
	assert.Nil(t, f.Pointer())

	// Next frame: no attraction, but momentum (damped) carries on.
	f.Step()
	assert.InDelta(t, vx*damping, f.Points()[0].VX, 1e-9)
}

func TestDampingShedsEnergy(t *testing.T) {
	cfg := Config{NodeCount: 1, MaxDistance: 20, MouseInfluence: 15}
	f := NewField(cfg, 1000, 1000, 5)
	f.points[0] = Point{X: 500, Y: 500, VX: 2, VY: -2}

	for i := 0; i < 200; i++ {
		f.Step()
	}

	p := f.Points()[0]
	assert.Less(t, p.VX*p.VX+p.VY*p.VY, 0.5, "velocity should decay without pointer input")
}

func TestDeterministicForSeed(t *testing.T) {
	a := NewField(testConfig(), 80, 24, 99)
	b := NewField(testConfig(), 80, 24, 99)

	for i := 0; i < 50; i++ {
		a.Step()
		b.Step()
	}

	assert.Equal(t, a.Points(), b.Points())
}
