package autocanvas

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// Host is the paintable surface a Surface draws into. All coordinates are
// in the host's own pixels.
type Host interface {
	// Size returns the surface size in pixels.
	Size() (w, h int)
	// Resize changes the surface size.
	Resize(w, h int)
	// Clear fills the whole surface with c.
	Clear(c Color)
	// DrawRect fills an axis-aligned rectangle.
	DrawRect(x, y, w, h float64, c Color)
	// DrawImage draws img stretched to the given rectangle.
	DrawImage(img *ebiten.Image, x, y, w, h float64)
	// DrawText draws a line of debug text with its top-left at (x, y).
	DrawText(s string, x, y float64)
}

// ebitenHost draws into the screen image ebiten hands to Game.Draw.
type ebitenHost struct {
	screen *ebiten.Image
	w, h   int
	pixel  *ebiten.Image
}

func newEbitenHost(w, h int) *ebitenHost {
	pixel := ebiten.NewImage(1, 1)
	pixel.Fill(ColorWhite.toRGBA())
	return &ebitenHost{w: w, h: h, pixel: pixel}
}

func (e *ebitenHost) Size() (int, int) {
	if e.screen != nil {
		b := e.screen.Bounds()
		return b.Dx(), b.Dy()
	}
	return e.w, e.h
}

// Resize records the logical size. The screen image itself is sized by
// ebiten from Layout.
func (e *ebitenHost) Resize(w, h int) {
	e.w, e.h = w, h
}

func (e *ebitenHost) Clear(c Color) {
	if e.screen == nil {
		return
	}
	e.screen.Fill(c.toRGBA())
}

func (e *ebitenHost) DrawRect(x, y, w, h float64, c Color) {
	if e.screen == nil || w <= 0 || h <= 0 {
		return
	}
	var op ebiten.DrawImageOptions
	op.GeoM.Scale(w, h)
	op.GeoM.Translate(x, y)
	op.ColorScale.Scale(float32(c.R*c.A), float32(c.G*c.A), float32(c.B*c.A), float32(c.A))
	e.screen.DrawImage(e.pixel, &op)
}

func (e *ebitenHost) DrawImage(img *ebiten.Image, x, y, w, h float64) {
	if e.screen == nil || img == nil {
		return
	}
	b := img.Bounds()
	iw, ih := float64(b.Dx()), float64(b.Dy())
	if iw == 0 || ih == 0 {
		return
	}
	var op ebiten.DrawImageOptions
	op.GeoM.Scale(w/iw, h/ih)
	op.GeoM.Translate(x, y)
	op.Filter = ebiten.FilterNearest
	e.screen.DrawImage(img, &op)
}

func (e *ebitenHost) DrawText(s string, x, y float64) {
	if e.screen == nil {
		return
	}
	ebitenutil.DebugPrintAt(e.screen, s, int(x), int(y))
}
