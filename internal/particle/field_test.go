package particle

import (
	"math/rand"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type line struct {
	x0, y0, x1, y1 float64
	width          float64
	color          colorful.Color
	alpha          float64
}

type disc struct {
	cx, cy, radius, fade float64
	color                colorful.Color
	alpha                float64
}

// recorder is a Surface that keeps every call for inspection.
type recorder struct {
	ops    []string
	clears int
	lines  []line
	discs  []disc
}

func (r *recorder) Clear() {
	r.ops = append(r.ops, "clear")
	r.clears++
}

func (r *recorder) StrokeLine(x0, y0, x1, y1, width float64, c colorful.Color, alpha float64) {
	r.ops = append(r.ops, "line")
	r.lines = append(r.lines, line{x0, y0, x1, y1, width, c, alpha})
}

func (r *recorder) FillRadialDisc(cx, cy, radius, fadeRadius float64, c colorful.Color, alpha float64) {
	r.ops = append(r.ops, "disc")
	r.discs = append(r.discs, disc{cx, cy, radius, fadeRadius, c, alpha})
}

func newTestField(params Params, b Bounds) *Field {
	return NewField(params, b, rand.New(rand.NewSource(42)))
}

// place replaces the field contents with motionless particles at pts.
func place(f *Field, pts ...mgl64.Vec2) {
	f.particles = f.particles[:0]
	for _, pt := range pts {
		f.particles = append(f.particles, still(pt.X(), pt.Y()))
	}
	f.count = len(pts)
}

func TestInitializeCount(t *testing.T) {
	f := newTestField(DefaultParams(), Bounds{Width: 800, Height: 600})
	assert.Equal(t, 150, f.Len())

	for _, n := range []int{0, 1, 2, 37, 150, 500} {
		f.Initialize(n, Bounds{Width: 800, Height: 600})
		assert.Equal(t, n, f.Len())
	}

	f.Initialize(-3, Bounds{Width: 800, Height: 600})
	assert.Equal(t, 0, f.Len())
}

func TestInitializeSpawnsInsideBounds(t *testing.T) {
	b := Bounds{Width: 320, Height: 200}
	f := newTestField(DefaultParams(), b)

	for _, p := range f.Particles() {
		x, y := p.Position()
		assert.True(t, b.Contains(x, y), "spawn (%g, %g) outside %v", x, y, b)
	}
}

func TestStepFrameOrder(t *testing.T) {
	params := DefaultParams()
	f := newTestField(params, Bounds{Width: 1000, Height: 1000})
	place(f, mgl64.Vec2{0, 0}, mgl64.Vec2{100, 0}, mgl64.Vec2{500, 500})
	s := &recorder{}

	f.StepFrame(s)

	require.NotEmpty(t, s.ops)
	assert.Equal(t, "clear", s.ops[0])
	assert.Equal(t, 1, s.clears)
	assert.Equal(t, []string{"clear", "disc", "disc", "disc", "line"}, s.ops)
}

func TestStepFrameTwoParticlesOneEdge(t *testing.T) {
	params := DefaultParams()
	f := newTestField(params, Bounds{Width: 1000, Height: 1000})
	place(f, mgl64.Vec2{0, 0}, mgl64.Vec2{100, 0})
	s := &recorder{}

	edges := f.StepFrame(s)

	assert.Equal(t, 1, edges)
	require.Len(t, s.lines, 1)
	l := s.lines[0]
	assert.Equal(t, 0.0, l.x0)
	assert.Equal(t, 100.0, l.x1)
	assert.InDelta(t, (1-100.0/120)*0.5, l.alpha, 1e-9)
	assert.Equal(t, 0.5, l.width)
	r, g, b := l.color.RGB255()
	assert.Equal(t, [3]uint8{142, 111, 255}, [3]uint8{r, g, b})
}

func TestConnectThreshold(t *testing.T) {
	params := DefaultParams()
	f := newTestField(params, Bounds{Width: 1000, Height: 1000})

	place(f, mgl64.Vec2{10, 10}, mgl64.Vec2{129.9, 10})
	s := &recorder{}
	assert.Equal(t, 1, f.connect(s))
	require.Len(t, s.lines, 1)
	assert.InDelta(t, (1-119.9/120)*0.5, s.lines[0].alpha, 1e-9)

	place(f, mgl64.Vec2{10, 10}, mgl64.Vec2{130.1, 10})
	s = &recorder{}
	assert.Equal(t, 0, f.connect(s))
	assert.Empty(t, s.lines)

	place(f, mgl64.Vec2{10, 10}, mgl64.Vec2{130, 10})
	s = &recorder{}
	assert.Equal(t, 0, f.connect(s), "threshold is exclusive")
}

func TestConnectCountsEveryPairOnce(t *testing.T) {
	f := newTestField(DefaultParams(), Bounds{Width: 1000, Height: 1000})
	place(f,
		mgl64.Vec2{0, 0}, mgl64.Vec2{10, 0}, mgl64.Vec2{0, 10}, mgl64.Vec2{10, 10},
		mgl64.Vec2{900, 900},
	)
	s := &recorder{}

	assert.Equal(t, 6, f.connect(s))
}

func TestStepFrameEmptyField(t *testing.T) {
	f := newTestField(DefaultParams(), Bounds{Width: 100, Height: 100})
	f.Initialize(0, f.Bounds())
	s := &recorder{}

	assert.Equal(t, 0, f.StepFrame(s))
	assert.Equal(t, []string{"clear"}, s.ops)
}

func TestStepFrameUsesMouse(t *testing.T) {
	f := newTestField(DefaultParams(), Bounds{Width: 1000, Height: 1000})
	place(f, mgl64.Vec2{500, 500})

	f.SetMouse(550, 500)
	assert.Equal(t, Mouse{X: 550, Y: 500, Present: true}, f.Mouse())
	f.StepFrame(&recorder{})
	x, _ := f.particles[0].Position()
	assert.Less(t, x, 500.0)

	f.ClearMouse()
	assert.False(t, f.Mouse().Present)
	f.StepFrame(&recorder{})
	x2, _ := f.particles[0].Position()
	assert.Greater(t, x2, x)
}

func TestResizeRepopulates(t *testing.T) {
	f := newTestField(DefaultParams(), Bounds{Width: 1920, Height: 1080})
	before := f.Particles()

	nb := Bounds{Width: 400, Height: 300}
	f.Resize(nb)

	assert.Equal(t, nb, f.Bounds())
	require.Equal(t, len(before), f.Len())
	same := 0
	for i, p := range f.Particles() {
		x, y := p.Position()
		assert.True(t, nb.Contains(x, y))
		bx, by := before[i].Position()
		if x == bx && y == by {
			same++
		}
	}
	assert.Less(t, same, f.Len())
}

func TestResizeKeepsInitializedCount(t *testing.T) {
	f := newTestField(DefaultParams(), Bounds{Width: 100, Height: 100})
	f.Initialize(12, f.Bounds())

	for i := 0; i < 5; i++ {
		f.Resize(Bounds{Width: 100 + i*10, Height: 100})
	}
	assert.Equal(t, 12, f.Len())
}

func TestParticlesReturnsCopy(t *testing.T) {
	f := newTestField(DefaultParams(), Bounds{Width: 100, Height: 100})
	ps := f.Particles()
	ps[0].pos = mgl64.Vec2{-1, -1}

	x, _ := f.particles[0].Position()
	assert.NotEqual(t, -1.0, x)
}
