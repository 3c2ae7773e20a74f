package autocanvas

import (
	"fmt"
	"math"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
// Premultiplication occurs when the color is handed to the host.
type Color struct {
	R, G, B, A float64
}

// ColorWhite is the default rectangle fill.
var ColorWhite = Color{1, 1, 1, 1}

// DefaultBackground is the surface clear color (#292929).
var DefaultBackground = Color{R: 0x29 / 255.0, G: 0x29 / 255.0, B: 0x29 / 255.0, A: 1}

// ParseHexColor parses "#rrggbb" or "#rgb" into an opaque Color.
func ParseHexColor(s string) (Color, error) {
	c, err := colorful.Hex(s)
	if err != nil {
		return Color{}, fmt.Errorf("parse color %q: %w", s, err)
	}
	return Color{R: c.R, G: c.G, B: c.B, A: 1}, nil
}

// Hex returns the color as "#rrggbb", ignoring alpha.
func (c Color) Hex() string {
	return colorful.Color{R: clamp01(c.R), G: clamp01(c.G), B: clamp01(c.B)}.Hex()
}

// toRGBA converts a Color to a premultiplied colorRGBA.
func (c Color) toRGBA() colorRGBA {
	return colorRGBA{
		R: uint8(clamp01(c.R*c.A) * 255),
		G: uint8(clamp01(c.G*c.A) * 255),
		B: uint8(clamp01(c.B*c.A) * 255),
		A: uint8(clamp01(c.A) * 255),
	}
}

// colorRGBA implements the color.Color interface for image.Fill.
type colorRGBA struct {
	R, G, B, A uint8
}

func (c colorRGBA) RGBA() (r, g, b, a uint32) {
	r = uint32(c.R) * 0x101
	g = uint32(c.G) * 0x101
	b = uint32(c.B) * 0x101
	a = uint32(c.A) * 0x101
	return
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

func clamp(v, lo, hi float64) float64 {
	return math.Max(math.Min(v, hi), lo)
}

// Rect is an axis-aligned rectangle in screen pixels. The origin is the
// top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// ContainsStrict reports whether (x, y) lies strictly inside the rectangle.
// Points on an edge are outside.
func (r Rect) ContainsStrict(x, y float64) bool {
	return x > r.X && x < r.X+r.Width &&
		y > r.Y && y < r.Y+r.Height
}

// EventType identifies a kind of interaction event.
type EventType uint8

const (
	EventHover     EventType = iota // pointer moved; resolves to enter/leave transitions
	EventPress                      // pointer button pressed
	EventClick                      // released close to the press point
	EventRelease                    // released after moving past the click threshold
	EventHoverStop                  // reported to an EntityStore only; never routed
	EventResize                     // reported to an EntityStore only; never routed
)

var eventNames = [...]string{"hover", "press", "click", "release", "hover_stop", "resize"}

func (e EventType) String() string {
	if int(e) < len(eventNames) {
		return eventNames[e]
	}
	return fmt.Sprintf("EventType(%d)", uint8(e))
}

// Verdict tells Dispatch whether to hit-test or accept a decision already
// made by the router.
type Verdict uint8

const (
	Undecided Verdict = iota // run the element's own hit test
	ForceMiss                // treat as a miss
	ForceHit                 // treat as a hit
)
