package autocanvas

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
)

// Box is a rectangle or image element. Its hit area is the strict interior
// of its render box.
type Box struct {
	*Component

	// Width and Height are the intrinsic size of a rect box.
	Width, Height float64
	// Color fills a rect box.
	Color Color

	image   *ebiten.Image
	isImage bool
}

// NewRect creates a solid rectangle of w×h world units at (x, y).
// Panics if opts.Centered is set and the size is not positive.
func NewRect(name string, x, y, w, h float64, color Color, opts RenderOptions) *Box {
	if opts.Centered && (!(w > 0) || !(h > 0)) {
		panic(fmt.Sprintf("autocanvas: centered element %q needs a positive size, got %vx%v", name, w, h))
	}
	return &Box{
		Component: NewComponent(name, x, y, opts),
		Width:     w,
		Height:    h,
		Color:     color,
	}
}

// NewImage creates an image element sized by img. img may be nil while the
// asset is loading; the box is skipped at draw time and never hit until
// SetImage provides it.
func NewImage(name string, x, y float64, img *ebiten.Image, opts RenderOptions) *Box {
	b := &Box{Component: NewComponent(name, x, y, opts), isImage: true}
	b.SetImage(img)
	return b
}

// SetImage replaces the image of an image box.
func (b *Box) SetImage(img *ebiten.Image) {
	b.image = img
	if img != nil {
		bounds := img.Bounds()
		b.Width, b.Height = float64(bounds.Dx()), float64(bounds.Dy())
	}
}

// Image returns the box's image, or nil.
func (b *Box) Image() *ebiten.Image { return b.image }

// ready reports whether the box has something to draw.
func (b *Box) ready() bool {
	return !b.isImage || b.image != nil
}

// RenderWidth returns the on-screen width.
func (b *Box) RenderWidth(cam *Camera) float64 {
	w := b.Width * b.BaseScale.Get()
	if !b.Options.IgnoreScale {
		w *= cam.Scale()
	}
	return w
}

// RenderHeight returns the on-screen height.
func (b *Box) RenderHeight(cam *Camera) float64 {
	h := b.Height * b.BaseScale.Get()
	if !b.Options.IgnoreScale {
		h *= cam.Scale()
	}
	return h
}

// RenderX returns the on-screen left edge. IgnorePan boxes sit at their raw
// X, uncentered.
func (b *Box) RenderX(cam *Camera) float64 {
	if b.Options.IgnorePan {
		return b.X.Get()
	}
	x := b.X.Get()*cam.Scale() + cam.PanX
	if b.Options.Centered {
		x -= b.RenderWidth(cam) / 2
	}
	return x
}

// RenderY returns the on-screen top edge.
func (b *Box) RenderY(cam *Camera) float64 {
	if b.Options.IgnorePan {
		return b.Y.Get()
	}
	y := b.Y.Get()*cam.Scale() + cam.PanY
	if b.Options.Centered {
		y -= b.RenderHeight(cam) / 2
	}
	return y
}

// Bounds returns the on-screen render box.
func (b *Box) Bounds(cam *Camera) Rect {
	return Rect{
		X:      b.RenderX(cam),
		Y:      b.RenderY(cam),
		Width:  b.RenderWidth(cam),
		Height: b.RenderHeight(cam),
	}
}

// Draw paints the box. Image boxes without an image are skipped.
func (b *Box) Draw(h Host, cam *Camera) {
	if !b.ready() {
		return
	}
	r := b.Bounds(cam)
	if b.isImage {
		h.DrawImage(b.image, r.X, r.Y, r.Width, r.Height)
		return
	}
	h.DrawRect(r.X, r.Y, r.Width, r.Height, b.Color)
}

// HitTest reports whether (x, y) is strictly inside the render box.
func (b *Box) HitTest(cam *Camera, x, y float64) bool {
	if !b.ready() {
		return false
	}
	return b.Bounds(cam).ContainsStrict(x, y)
}
