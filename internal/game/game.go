package game

import (
	"fmt"
	"log"
	"math/rand"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/iburimskiy/particle-field/internal/loop"
	"github.com/iburimskiy/particle-field/internal/particle"
	"github.com/iburimskiy/particle-field/internal/render"
)

// Options configures a Game.
type Options struct {
	Params      particle.Params
	Bounds      particle.Bounds
	Background  colorful.Color
	HistorySize int
	Debug       bool
	// Rand seeds particle placement; nil means time based.
	Rand *rand.Rand
}

// Game hosts a particle field inside the ebiten loop: input and window size
// flow into the field, and every Draw advances it by one frame.
type Game struct {
	session *loop.Session
	field   *particle.Field
	driver  *loop.Driver
	surface *render.Surface
	// canvas keeps the last frame while the driver is paused
	canvas *ebiten.Image

	// input edge detection
	prevKey  map[ebiten.Key]bool
	touchIDs []ebiten.TouchID

	// state
	debug   bool
	paused  bool
	lastErr error
}

func New(opts Options) *Game {
	session := loop.NewSession(particle.NewField(opts.Params, opts.Bounds, opts.Rand), opts.HistorySize)

	return &Game{
		session: session,
		field:   session.Field(),
		driver:  session.Driver(),
		surface: render.NewSurface(opts.Background),
		prevKey: map[ebiten.Key]bool{},
		debug:   opts.Debug,
	}
}

func (g *Game) Update() error {

	justPressed := func(k ebiten.Key) bool {
		pressed := ebiten.IsKeyPressed(k)
		jp := pressed && !g.prevKey[k]
		g.prevKey[k] = pressed
		return jp
	}

	// A halted frame loop ends RunGame; main reports it.
	resized, err := g.session.Tick()
	if err != nil {
		return err
	}
	if resized {
		b := g.field.Bounds()
		log.Printf("resized to %dx%d, reinitialized %d particles", b.Width, b.Height, g.field.Len())
	}

	g.trackPointer()

	if justPressed(ebiten.KeyF3) || justPressed(ebiten.KeyD) {
		g.debug = !g.debug
	}
	if justPressed(ebiten.KeySpace) {
		g.togglePause()
	}
	if justPressed(ebiten.KeyEscape) || justPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}

	return nil
}

// trackPointer feeds the first touch, or else the cursor, into the field.
func (g *Game) trackPointer() {
	g.touchIDs = ebiten.AppendTouchIDs(g.touchIDs[:0])
	if len(g.touchIDs) > 0 {
		g.session.PointAt(ebiten.TouchPosition(g.touchIDs[0]))
		return
	}
	if !ebiten.IsFocused() {
		g.session.ReleasePointer()
		return
	}
	g.session.PointAt(ebiten.CursorPosition())
}

func (g *Game) togglePause() {
	if g.driver.Err() != nil {
		return
	}
	g.paused = !g.paused
	if g.paused {
		g.driver.Stop()
		return
	}
	if err := g.driver.Start(); err != nil {
		g.lastErr = err
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	var surface particle.Surface
	if screen != nil {
		g.ensureCanvas(screen.Bounds().Dx(), screen.Bounds().Dy())
		g.surface.SetTarget(g.canvas)
		surface = g.surface
	}
	if err := g.driver.Step(surface); err != nil {
		g.lastErr = err
		log.Printf("frame loop halted: %v", err)
	}
	if screen == nil {
		return
	}

	screen.DrawImage(g.canvas, nil)
	if g.debug || g.lastErr != nil {
		g.drawOverlay(screen)
	}
}

func (g *Game) ensureCanvas(w, h int) {
	if g.canvas != nil {
		if s := g.canvas.Bounds().Size(); s.X == w && s.Y == h {
			return
		}
		g.canvas.Deallocate()
	}
	g.canvas = ebiten.NewImage(w, h)
}

func (g *Game) drawOverlay(screen *ebiten.Image) {
	b := g.field.Bounds()
	mouse := "none"
	if m := g.field.Mouse(); m.Present {
		mouse = fmt.Sprintf("%.0f,%.0f", m.X, m.Y)
	}
	lines := fmt.Sprintf(
		"TPS %0.1f  FPS %0.1f\nparticles %d  links %d\nsurface %dx%d  pointer %s\nframe %s avg over %d",
		ebiten.ActualTPS(), ebiten.ActualFPS(),
		g.field.Len(), g.driver.Edges(),
		b.Width, b.Height, mouse,
		formatFrameTime(g.driver.History().Average()), g.driver.History().Len(),
	)
	ebitenutil.DebugPrintAt(screen, lines, 12, 12)
	ebitenutil.DebugPrintAt(screen, g.status(), 12, b.Height-24)
}

func (g *Game) status() string {
	status := "Running - Space to pause, F3 to hide stats"
	if g.paused {
		status = "Paused - Space to resume"
	}
	if g.lastErr != nil {
		status += " | Error: " + g.lastErr.Error()
	}
	return status
}

// Layout makes the logical screen follow the window.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.session.Layout(outsideWidth, outsideHeight)
}
