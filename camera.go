package autocanvas

import (
	"fmt"
	"math"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

const (
	DefaultScaleMin     = 0.1
	DefaultScaleMax     = 15.0
	DefaultZoomStrength = 1.0005
)

// panAnim moves the pan from (fromX, fromY) to (toX, toY). The tween runs
// over normalized progress so the endpoints stay in float64.
type panAnim struct {
	fromX, fromY float64
	toX, toY     float64
	progress     *gween.Tween
}

// Camera is the surface's pan/zoom transform. Screen = world*scale + pan.
//
// The scale is kept within the camera's bounds by every method that
// changes it; it is unexported so it cannot be written around them.
type Camera struct {
	// PanX and PanY are the screen-space offset of the world origin.
	PanX, PanY float64

	scale    float64
	min      float64
	max      float64
	strength float64

	// Pan at press time; drag is relative to it.
	bufferedX float64
	bufferedY float64

	pan *panAnim
}

// NewCamera returns a camera at scale 1 with no pan and the default bounds.
func NewCamera() *Camera {
	c := &Camera{}
	c.Reset()
	return c
}

func newCameraWithBounds(min, max, strength float64) *Camera {
	c := &Camera{min: min, max: max, strength: strength}
	c.scale = clamp(1, min, max)
	return c
}

// Reset restores scale 1 and zero pan. Configured zoom bounds are kept;
// a camera without bounds gets the defaults.
func (c *Camera) Reset() {
	if c.min == 0 && c.max == 0 {
		c.min, c.max = DefaultScaleMin, DefaultScaleMax
	}
	if c.strength == 0 {
		c.strength = DefaultZoomStrength
	}
	c.PanX, c.PanY = 0, 0
	c.bufferedX, c.bufferedY = 0, 0
	c.scale = clamp(1, c.min, c.max)
	c.pan = nil
}

// Scale returns the current zoom factor.
func (c *Camera) Scale() float64 {
	return c.scale
}

// SetScale sets the zoom factor directly, clamped to the camera's bounds.
// The pan is left unchanged.
func (c *Camera) SetScale(s float64) {
	if math.IsNaN(s) {
		return
	}
	c.scale = clamp(s, c.min, c.max)
}

// ScaleBounds returns the minimum and maximum zoom factor.
func (c *Camera) ScaleBounds() (min, max float64) {
	return c.min, c.max
}

// SetScaleBounds changes the zoom bounds and re-clamps the current scale.
// Panics unless 0 < min <= max.
func (c *Camera) SetScaleBounds(min, max float64) {
	if !(min > 0) || !(max >= min) {
		panic(fmt.Sprintf("autocanvas: invalid scale bounds [%v, %v]", min, max))
	}
	c.min, c.max = min, max
	c.scale = clamp(c.scale, min, max)
}

// WorldToScreen converts world coordinates to screen coordinates.
func (c *Camera) WorldToScreen(wx, wy float64) (sx, sy float64) {
	return wx*c.scale + c.PanX, wy*c.scale + c.PanY
}

// ScreenToWorld converts screen coordinates to world coordinates.
func (c *Camera) ScreenToWorld(sx, sy float64) (wx, wy float64) {
	return (sx - c.PanX) / c.scale, (sy - c.PanY) / c.scale
}

// Zoom turns an input delta (wheel units, positive = zoom out) into a
// factor of strength^(-delta) and zooms about the screen point
// (aboutX, aboutY). The factor is clamped against the current scale first
// so the result lands on a bound instead of overshooting it.
func (c *Camera) Zoom(delta, aboutX, aboutY float64) {
	factor := math.Pow(c.strength, -delta)
	factor = clamp(factor, c.min/c.scale, c.max/c.scale)
	c.RawZoom(factor, aboutX, aboutY)
}

// RawZoom multiplies the scale by factor while keeping (aboutX, aboutY)
// fixed. The pivot must be in the same space as PanX/PanY. Factors that are
// not positive are ignored.
func (c *Camera) RawZoom(factor, aboutX, aboutY float64) {
	if !(factor > 0) || math.IsInf(factor, 0) {
		return
	}
	c.scale = clamp(c.scale*factor, c.min, c.max)
	c.PanX = c.PanX*factor - aboutX*(factor-1)
	c.PanY = c.PanY*factor - aboutY*(factor-1)
}

// BeginDrag records the current pan as the drag origin and cancels any
// running pan animation.
func (c *Camera) BeginDrag() {
	c.pan = nil
	c.bufferedX = c.PanX
	c.bufferedY = c.PanY
}

// DragTo sets the pan to the drag origin plus the total pointer
// displacement (dx, dy) since BeginDrag.
func (c *Camera) DragTo(dx, dy float64) {
	c.PanX = c.bufferedX + dx
	c.PanY = c.bufferedY + dy
}

// PanTo animates the pan to (x, y) over durationMS milliseconds.
func (c *Camera) PanTo(x, y, durationMS float64, easeFn ease.TweenFunc) {
	if easeFn == nil {
		easeFn = ease.Linear
	}
	c.pan = &panAnim{
		fromX:    c.PanX,
		fromY:    c.PanY,
		toX:      x,
		toY:      y,
		progress: gween.New(0, 1, float32(durationMS), easeFn),
	}
}

// CenterOn animates the pan so world point (wx, wy) ends up at screen
// point (sx, sy).
func (c *Camera) CenterOn(wx, wy, sx, sy, durationMS float64, easeFn ease.TweenFunc) {
	c.PanTo(sx-wx*c.scale, sy-wy*c.scale, durationMS, easeFn)
}

// CancelPan stops a running pan animation where it is.
func (c *Camera) CancelPan() {
	c.pan = nil
}

// Animating reports whether a pan animation is running.
func (c *Camera) Animating() bool {
	return c.pan != nil
}

// update advances the pan animation by dt milliseconds.
func (c *Camera) update(dt float64) {
	if c.pan == nil {
		return
	}
	a := c.pan
	p, done := a.progress.Update(float32(dt))
	if done {
		c.PanX, c.PanY = a.toX, a.toY
		c.pan = nil
		return
	}
	c.PanX = a.fromX + (a.toX-a.fromX)*float64(p)
	c.PanY = a.fromY + (a.toY-a.fromY)*float64(p)
}
