package particle

import (
	"math/rand"
	"time"
)

// Field owns a generation of particles together with the surface bounds and
// the pointer signal they react to. It is not safe for concurrent use; the
// host drives it from a single frame callback.
type Field struct {
	params    Params
	particles []Particle
	count     int
	bounds    Bounds
	mouse     Mouse
	rng       *rand.Rand
}

// NewField creates a field populated with params.Count particles spread over b.
// A nil rng is replaced by a time-seeded source.
func NewField(params Params, b Bounds, rng *rand.Rand) *Field {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	f := &Field{
		params: params,
		rng:    rng,
	}
	f.Initialize(params.Count, b)
	return f
}

// Initialize discards every particle and creates count new ones over b.
// Negative counts are treated as zero.
func (f *Field) Initialize(count int, b Bounds) {
	if count < 0 {
		count = 0
	}
	f.count = count
	f.bounds = b

	particles := make([]Particle, count)
	for i := range particles {
		particles[i] = newParticle(f.rng, b)
	}
	f.particles = particles
}

// Resize replaces the bounds and repopulates the field with the same count.
// Existing positions are not rescaled.
func (f *Field) Resize(b Bounds) {
	f.Initialize(f.count, b)
}

// SetMouse records the pointer at (x, y) for the following frames.
func (f *Field) SetMouse(x, y float64) {
	f.mouse = Mouse{X: x, Y: y, Present: true}
}

// ClearMouse marks the pointer as outside the surface.
func (f *Field) ClearMouse() {
	f.mouse = Mouse{}
}

func (f *Field) Mouse() Mouse   { return f.mouse }
func (f *Field) Bounds() Bounds { return f.bounds }
func (f *Field) Params() Params { return f.params }
func (f *Field) Len() int       { return len(f.particles) }

// Particles returns a copy of the current generation in draw order.
func (f *Field) Particles() []Particle {
	out := make([]Particle, len(f.particles))
	copy(out, f.particles)
	return out
}

// StepFrame clears s, updates and draws every particle in order, then joins
// close pairs with lines. It returns the number of lines drawn.
func (f *Field) StepFrame(s Surface) int {
	s.Clear()

	for i := range f.particles {
		f.particles[i].Update(f.mouse, f.bounds, f.params)
		f.particles[i].Draw(s, f.params)
	}

	return f.connect(s)
}

// connect is a plain O(n²) pass over unordered pairs.
func (f *Field) connect(s Surface) int {
	limit := f.params.LinkDistance
	edges := 0
	for i := 0; i < len(f.particles); i++ {
		a := f.particles[i].pos
		for j := i + 1; j < len(f.particles); j++ {
			b := f.particles[j].pos
			dist := a.Sub(b).Len()
			if dist >= limit {
				continue
			}
			alpha := (1 - dist/limit) * f.params.LinkOpacity
			s.StrokeLine(a.X(), a.Y(), b.X(), b.Y(), f.params.LinkWidth, f.params.LinkTint, alpha)
			edges++
		}
	}
	return edges
}
