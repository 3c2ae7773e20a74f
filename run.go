package autocanvas

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// wheelUnit converts one ebiten wheel notch into zoom delta units, matching
// the ~100 units per notch browsers report.
const wheelUnit = 100.0

// keyZoomDelta is the zoom delta applied per +/- key press.
const keyZoomDelta = -250.0

// game adapts a Surface to ebiten.Game. ebiten calls Update at the tick
// rate and Draw right after, on one goroutine.
type game struct {
	surface *Surface
	host    *ebitenHost
	showFPS bool
	pressed bool
	lastX   int
	lastY   int
}

func newGame(s *Surface, cfg RunConfig) *game {
	g := &game{
		surface: s,
		host:    newEbitenHost(cfg.Width, cfg.Height),
		showFPS: cfg.ShowFPS,
		lastX:   -1,
		lastY:   -1,
	}
	s.onTickRate = ebiten.SetTPS
	return g
}

// Run opens a window and drives s until the window is closed. The tick
// rate becomes ebiten's TPS; later SetTickRate calls update it.
func Run(s *Surface, cfg RunConfig) error {
	if cfg.Width <= 0 || cfg.Height <= 0 {
		w, h := s.Size()
		cfg.Width, cfg.Height = max(w, 1), max(h, 1)
	}
	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(s.TickRate())

	g := newGame(s, cfg)
	defer func() { s.onTickRate = nil }()
	if err := ebiten.RunGame(g); err != nil {
		return fmt.Errorf("run: %w", err)
	}
	return nil
}

// Update turns this frame's input into surface callbacks and ticks it.
func (g *game) Update() error {
	s := g.surface
	cx, cy := ebiten.CursorPosition()
	x, y := float64(cx), float64(cy)

	if cx != g.lastX || cy != g.lastY {
		g.lastX, g.lastY = cx, cy
		s.OnMove(x, y)
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		g.pressed = true
		s.OnPress(x, y)
	}
	if g.pressed && inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		g.pressed = false
		s.OnRelease(x, y)
	}
	if _, wy := ebiten.Wheel(); wy != 0 {
		s.OnWheel(-wy*wheelUnit, x, y)
	}
	g.handleKeys()

	start := s.clock()
	s.Tick()
	s.renderTime = s.clock().Sub(start)
	return nil
}

// handleKeys zooms about the screen centre with +/- and resets the camera
// with 0.
func (g *game) handleKeys() {
	s := g.surface
	w, h := s.Size()
	cx, cy := float64(w)/2, float64(h)/2
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyEqual), inpututil.IsKeyJustPressed(ebiten.KeyNumpadAdd):
		s.OnWheel(keyZoomDelta, cx, cy)
	case inpututil.IsKeyJustPressed(ebiten.KeyMinus), inpututil.IsKeyJustPressed(ebiten.KeyNumpadSubtract):
		s.OnWheel(-keyZoomDelta, cx, cy)
	case inpututil.IsKeyJustPressed(ebiten.Key0), inpututil.IsKeyJustPressed(ebiten.KeyNumpad0):
		s.camera.Reset()
	}
}

// Draw renders the surface into the screen image.
func (g *game) Draw(screen *ebiten.Image) {
	s := g.surface
	g.host.screen = screen
	start := s.clock()
	s.drawElements(g.host)
	s.renderTime += s.clock().Sub(start)
	if s.debug {
		s.drawDebugOverlay(g.host)
	}
	if g.showFPS {
		w, _ := g.host.Size()
		ebitenutil.DebugPrintAt(screen,
			fmt.Sprintf("FPS: %.1f\nTPS: %.1f", ebiten.ActualFPS(), ebiten.ActualTPS()), w-100, 0)
	}
	g.host.screen = nil
}

// Layout keeps the surface at the window's size and reports changes
// through OnResize before the next Draw.
func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if w, h := g.surface.Size(); w != outsideWidth || h != outsideHeight {
		g.host.Resize(outsideWidth, outsideHeight)
		g.surface.OnResize(outsideWidth, outsideHeight)
	}
	return outsideWidth, outsideHeight
}
