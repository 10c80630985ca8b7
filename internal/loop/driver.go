// Package loop drives a particle field one frame at a time on behalf of a
// host scheduler (the ebiten game loop in production, a test in tests).
package loop

import (
	"errors"
	"time"

	"github.com/iburimskiy/particle-field/internal/particle"
)

// ErrNoSurface is returned by Step when the host has no drawing surface to
// hand over. It is reported once; the driver stops itself.
var ErrNoSurface = errors.New("loop: drawing surface unavailable")

// Stepper renders one frame onto a surface and reports how many links it drew.
type Stepper interface {
	StepFrame(s particle.Surface) int
}

// Driver runs a Stepper while armed. The host calls Step once per redraw; a
// stopped driver leaves the surface untouched.
type Driver struct {
	field   Stepper
	history *History
	now     func() time.Time

	running bool
	frames  uint64
	edges   int
	err     error
}

// NewDriver returns an armed driver for field that keeps the durations of
// the last historySize frames.
func NewDriver(field Stepper, historySize int) *Driver {
	return &Driver{
		field:   field,
		history: NewHistory(historySize),
		now:     time.Now,
		running: true,
	}
}

// Start re-arms a stopped driver. It reports the failure that halted the
// driver, if any, and stays stopped in that case.
func (d *Driver) Start() error {
	if d.err != nil {
		return d.err
	}
	d.running = true
	return nil
}

// Stop disarms the driver; Step does nothing until Start.
func (d *Driver) Stop() {
	d.running = false
}

// Running reports whether Step would run a frame.
func (d *Driver) Running() bool { return d.running }

// Step runs exactly one frame when the driver is armed.
func (d *Driver) Step(s particle.Surface) error {
	if !d.running {
		return nil
	}
	if s == nil {
		d.err = ErrNoSurface
		d.running = false
		return d.err
	}

	start := d.now()
	d.edges = d.field.StepFrame(s)
	d.history.Record(d.now().Sub(start))
	d.frames++
	return nil
}

// Frames is the number of frames stepped so far.
func (d *Driver) Frames() uint64 { return d.frames }

// Edges is the number of links drawn by the last frame.
func (d *Driver) Edges() int { return d.edges }

// History holds the durations of recent frames.
func (d *Driver) History() *History { return d.history }

// Err returns the error that halted the driver, or nil.
func (d *Driver) Err() error { return d.err }
