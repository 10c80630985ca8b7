package particle

import "github.com/lucasb-eyer/go-colorful"

// Surface is the set of drawing primitives a field renders with. Coordinates
// share the space of the pointer signal. Alpha is straight (not premultiplied)
// and in [0, 1].
type Surface interface {
	// Clear wipes the whole surface.
	Clear()
	StrokeLine(x0, y0, x1, y1, width float64, c colorful.Color, alpha float64)
	// FillRadialDisc fills a disc of the given radius centered at (cx, cy).
	// The color has the given alpha at the center and fades linearly to
	// transparent at fadeRadius.
	FillRadialDisc(cx, cy, radius, fadeRadius float64, c colorful.Color, alpha float64)
}
