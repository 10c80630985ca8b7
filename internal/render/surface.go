// Package render draws a particle field onto an ebiten image.
package render

import (
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/lucasb-eyer/go-colorful"
)

// discSegments is the number of rim vertices of a gradient disc.
const discSegments = 16

var (
	whiteImage    = ebiten.NewImage(3, 3)
	whiteSubImage = whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
)

func init() {
	whiteImage.Fill(color.White)
}

// Surface implements particle.Surface over an ebiten image. The vertex
// buffers are reused between frames.
type Surface struct {
	dst        *ebiten.Image
	background color.Color

	vertices []ebiten.Vertex
	indices  []uint16
}

// NewSurface returns a surface that clears to background. It draws nothing
// until SetTarget is called.
func NewSurface(background colorful.Color) *Surface {
	return &Surface{
		background: toNRGBA(background, 1),
		vertices:   make([]ebiten.Vertex, 0, discSegments+1),
		indices:    make([]uint16, 0, discSegments*3),
	}
}

// SetTarget points the surface at the image of the current frame.
func (s *Surface) SetTarget(dst *ebiten.Image) {
	s.dst = dst
}

func (s *Surface) Clear() {
	s.dst.Fill(s.background)
}

func (s *Surface) StrokeLine(x0, y0, x1, y1, width float64, c colorful.Color, alpha float64) {
	vector.StrokeLine(s.dst, float32(x0), float32(y0), float32(x1), float32(y1), float32(width), toNRGBA(c, alpha), true)
}

// FillRadialDisc draws a triangle fan whose center vertex carries the full
// alpha and whose rim carries the alpha the gradient has reached at radius.
// Vertex colors are interpolated linearly, which gives the linear fade.
func (s *Surface) FillRadialDisc(cx, cy, radius, fadeRadius float64, c colorful.Color, alpha float64) {
	if radius <= 0 || alpha <= 0 {
		return
	}
	rim := 0.0
	if fadeRadius > radius {
		rim = alpha * (1 - radius/fadeRadius)
	}

	r, g, b := float32(clamp01(c.R)), float32(clamp01(c.G)), float32(clamp01(c.B))
	s.vertices = append(s.vertices[:0], ebiten.Vertex{
		DstX: float32(cx), DstY: float32(cy),
		SrcX: 1, SrcY: 1,
		ColorR: r, ColorG: g, ColorB: b, ColorA: float32(clamp01(alpha)),
	})
	s.indices = s.indices[:0]
	for i := 0; i < discSegments; i++ {
		theta := 2 * math.Pi * float64(i) / discSegments
		s.vertices = append(s.vertices, ebiten.Vertex{
			DstX: float32(cx + radius*math.Cos(theta)),
			DstY: float32(cy + radius*math.Sin(theta)),
			SrcX: 1, SrcY: 1,
			ColorR: r, ColorG: g, ColorB: b, ColorA: float32(clamp01(rim)),
		})
		next := 1 + (i+1)%discSegments
		s.indices = append(s.indices, 0, uint16(1+i), uint16(next))
	}

	op := &ebiten.DrawTrianglesOptions{
		ColorScaleMode: ebiten.ColorScaleModeStraightAlpha,
		AntiAlias:      true,
	}
	s.dst.DrawTriangles(s.vertices, s.indices, whiteSubImage, op)
}

func toNRGBA(c colorful.Color, alpha float64) color.NRGBA {
	r, g, b := c.Clamped().RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: uint8(clamp01(alpha)*255 + 0.5)}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
