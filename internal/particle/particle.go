package particle

import (
	"math"
	"math/rand"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/lucasb-eyer/go-colorful"
)

// Spawn ranges
const (
	minSize     = 1.0
	sizeSpan    = 3.0
	minDensity  = 5.0
	densitySpan = 30.0
	maxDrift    = 0.25
	minHue      = 240.0
	hueSpan     = 60.0
)

// Bounds is the extent of the drawing surface in pixels.
type Bounds struct {
	Width, Height int
}

// Contains reports whether (x, y) lies within [0, Width) x [0, Height).
func (b Bounds) Contains(x, y float64) bool {
	return x >= 0 && y >= 0 && x < float64(b.Width) && y < float64(b.Height)
}

// Mouse is the pointer signal shared by every particle of a field.
// Present is false while the pointer is outside the surface.
type Mouse struct {
	X, Y    float64
	Present bool
}

func (m Mouse) pos() mgl64.Vec2 { return mgl64.Vec2{m.X, m.Y} }

// Particle is a single drifting point. Size, density, hue and origin are fixed
// at construction; only the position and the sign of the velocity change.
type Particle struct {
	pos    mgl64.Vec2
	origin mgl64.Vec2
	vel    mgl64.Vec2

	size    float64
	density float64
	hue     float64
}

func newParticle(rng *rand.Rand, b Bounds) Particle {
	pos := mgl64.Vec2{
		rng.Float64() * float64(b.Width),
		rng.Float64() * float64(b.Height),
	}
	return Particle{
		pos:     pos,
		origin:  pos,
		size:    minSize + rng.Float64()*sizeSpan,
		density: minDensity + rng.Float64()*densitySpan,
		vel: mgl64.Vec2{
			rng.Float64()*2*maxDrift - maxDrift,
			rng.Float64()*2*maxDrift - maxDrift,
		},
		hue: minHue + rng.Float64()*hueSpan,
	}
}

// Position is where the particle currently is.
func (p *Particle) Position() (x, y float64) { return p.pos.X(), p.pos.Y() }

// Origin is the rest position the particle relaxes toward.
func (p *Particle) Origin() (x, y float64) { return p.origin.X(), p.origin.Y() }

// Velocity is the per-frame drift.
func (p *Particle) Velocity() (x, y float64) { return p.vel.X(), p.vel.Y() }

// Size is the render radius in pixels.
func (p *Particle) Size() float64 { return p.size }

// Density scales how far the pointer pushes the particle.
func (p *Particle) Density() float64 { return p.density }

// Hue is the color angle in degrees.
func (p *Particle) Hue() float64 { return p.hue }

// Update moves the particle one frame: pointer repulsion or relaxation toward
// the origin, wall reflection of the velocity, then drift.
func (p *Particle) Update(mouse Mouse, b Bounds, params Params) {
	if mouse.Present {
		d := mouse.pos().Sub(p.pos)
		dist := math.Hypot(d[0], d[1])
		switch {
		case dist == 0:
			// no direction to push along
		case dist < params.MouseRadius:
			// Normalize first: dividing force*density by a subnormal
			// distance would overflow before reaching d.
			unit := mgl64.Vec2{d[0] / dist, d[1] / dist}
			force := (params.MouseRadius - dist) / params.MouseRadius
			p.pos = p.pos.Sub(unit.Mul(force * p.density))
		default:
			p.relax(params.RelaxDivisor)
		}
	} else {
		p.relax(params.RelaxDivisor)
	}

	// Reflection flips the drift only; the position is never clamped.
	if x := p.pos.X(); x < 0 || x > float64(b.Width) {
		p.vel[0] = -p.vel[0]
	}
	if y := p.pos.Y(); y < 0 || y > float64(b.Height) {
		p.vel[1] = -p.vel[1]
	}

	p.pos = p.pos.Add(p.vel)
}

// relax removes 1/divisor of the current offset from the origin on each axis.
func (p *Particle) relax(divisor float64) {
	offset := p.pos.Sub(p.origin)
	p.pos = p.pos.Sub(offset.Mul(1 / divisor))
}

// Draw renders the particle as a disc of radius size whose gradient would
// reach full transparency at twice the size.
func (p *Particle) Draw(s Surface, params Params) {
	s.FillRadialDisc(p.pos.X(), p.pos.Y(), p.size, 2*p.size, p.color(params), params.Alpha)
}

func (p *Particle) color(params Params) colorful.Color {
	return colorful.Hsl(p.hue, params.Saturation, params.Lightness).Clamped()
}
