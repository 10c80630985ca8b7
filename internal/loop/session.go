package loop

import "github.com/iburimskiy/particle-field/internal/particle"

// Session connects a field and its driver to a host window: the host reports
// window sizes and pointer positions, and ticks once per update.
type Session struct {
	field  *particle.Field
	driver *Driver

	// size reported by the last Layout, applied on the next Tick
	pending particle.Bounds
}

// NewSession wraps field in an armed driver.
func NewSession(field *particle.Field, historySize int) *Session {
	return &Session{
		field:   field,
		driver:  NewDriver(field, historySize),
		pending: field.Bounds(),
	}
}

// Field is the simulated field.
func (s *Session) Field() *particle.Field { return s.field }

// Driver steps the field once per redraw.
func (s *Session) Driver() *Driver { return s.driver }

// Layout records the window size and returns the logical surface size.
// Non-positive sizes, reported while minimized, keep the current bounds.
func (s *Session) Layout(width, height int) (int, int) {
	if width <= 0 || height <= 0 {
		b := s.field.Bounds()
		return max(b.Width, 1), max(b.Height, 1)
	}
	s.pending = particle.Bounds{Width: width, Height: height}
	return width, height
}

// Tick applies a size recorded by Layout, repopulating the field, and reports
// whether it did. A driver halted by a failure makes Tick return that failure
// so the host can shut down.
func (s *Session) Tick() (resized bool, err error) {
	if err := s.driver.Err(); err != nil {
		return false, err
	}
	if s.pending == s.field.Bounds() {
		return false, nil
	}
	s.field.Resize(s.pending)
	return true, nil
}

// PointAt moves the pointer signal to (x, y); points off the surface clear it.
func (s *Session) PointAt(x, y int) {
	fx, fy := float64(x), float64(y)
	if !s.field.Bounds().Contains(fx, fy) {
		s.field.ClearMouse()
		return
	}
	s.field.SetMouse(fx, fy)
}

// ReleasePointer clears the pointer signal, e.g. when the window loses focus.
func (s *Session) ReleasePointer() {
	s.field.ClearMouse()
}
