package particle

import "github.com/lucasb-eyer/go-colorful"

// Params holds the tunables of a field. The zero value is not usable; start
// from DefaultParams.
type Params struct {
	// Count is the number of particles created on every (re)initialization.
	Count int

	// MouseRadius is the distance within which the pointer repels particles.
	MouseRadius float64
	// RelaxDivisor sets the fraction (1/RelaxDivisor) of the offset from the
	// origin removed per frame.
	RelaxDivisor float64

	// LinkDistance is the exclusive distance under which two particles are
	// joined by a line.
	LinkDistance float64
	// LinkOpacity is the line alpha for two coincident particles.
	LinkOpacity float64
	LinkWidth   float64
	LinkTint    colorful.Color

	Saturation float64
	Lightness  float64
	Alpha      float64
}

// DefaultParams returns the look of the portfolio background.
func DefaultParams() Params {
	return Params{
		Count:        150,
		MouseRadius:  100,
		RelaxDivisor: 10,
		LinkDistance: 120,
		LinkOpacity:  0.5,
		LinkWidth:    0.5,
		LinkTint:     colorful.Color{R: 142.0 / 255, G: 111.0 / 255, B: 1},
		Saturation:   0.7,
		Lightness:    0.6,
		Alpha:        0.8,
	}
}
