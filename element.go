package autocanvas

// Element is anything a Surface can tick, draw and hit-test. Concrete
// elements embed *Component and override Draw and HitTest.
type Element interface {
	// Base returns the element's shared state and handlers.
	Base() *Component
	// Tick advances the element's animations by dt milliseconds.
	Tick(dt float64)
	// Draw renders the element through h.
	Draw(h Host, cam *Camera)
	// HitTest reports whether screen point (x, y) is inside the element.
	HitTest(cam *Camera, x, y float64) bool
}

// RenderOptions control how an element maps into screen space. They are
// fixed at construction.
type RenderOptions struct {
	// IgnorePan places the element at its raw position in screen pixels.
	IgnorePan bool
	// IgnoreScale keeps the element's size independent of the camera zoom.
	IgnoreScale bool
	// Hoisted draws and hit-tests the element above every non-hoisted one.
	Hoisted bool
	// Centered anchors the element at its center instead of its top-left.
	Centered bool
}

// elementIDCounter is a plain counter (no atomic: surfaces are single-threaded).
var elementIDCounter uint32

func nextElementID() uint32 {
	elementIDCounter++
	return elementIDCounter
}

// Component is the base every element embeds: a world position, a base
// scale, render options, interaction state and event handlers.
//
// A bare *Component is a valid Element that never draws and is never hit.
type Component struct {
	ID       uint32
	Name     string
	UserData any

	// X and Y are the world position.
	X, Y *Value
	// BaseScale multiplies the intrinsic size. Defaults to 1.
	BaseScale *Value

	Options RenderOptions

	// Handlers. Nil handlers are skipped. OnResize defaults to re-fixing X
	// and Y from their bound formulas.
	OnResize    func(Element)
	OnHover     func(Element)
	OnHoverStop func(Element)
	OnPress     func(Element)
	OnClick     func(Element)
	OnRelease   func(Element)

	surface  *Surface
	hovering bool
	pressed  bool
}

// NewComponent creates a base component at world position (x, y).
func NewComponent(name string, x, y float64, opts RenderOptions) *Component {
	c := &Component{}
	c.init(name, x, y, opts)
	return c
}

func (c *Component) init(name string, x, y float64, opts RenderOptions) {
	c.ID = nextElementID()
	c.Name = name
	c.X = NewValue(x)
	c.Y = NewValue(y)
	c.BaseScale = NewValue(1)
	c.Options = opts
	c.OnResize = func(Element) {
		c.X.Fix()
		c.Y.Fix()
	}
}

// Base returns c.
func (c *Component) Base() *Component { return c }

// Tick advances X, Y and BaseScale.
func (c *Component) Tick(dt float64) {
	c.X.Tick(dt)
	c.Y.Tick(dt)
	c.BaseScale.Tick(dt)
}

// Draw does nothing for a bare component.
func (c *Component) Draw(Host, *Camera) {}

// HitTest always misses for a bare component.
func (c *Component) HitTest(*Camera, float64, float64) bool { return false }

// Hovering reports whether the pointer is currently over the element.
func (c *Component) Hovering() bool { return c.hovering }

// Pressed reports whether the element received a press that has not been
// released yet.
func (c *Component) Pressed() bool { return c.pressed }

// Surface returns the surface the element was added to, or nil.
func (c *Component) Surface() *Surface { return c.surface }

// MoveBy queues tasks that shift the element by (dx, dy) world units over
// durationMS milliseconds.
func (c *Component) MoveBy(dx, dy, durationMS float64, easing Easing) {
	if dx != 0 {
		c.X.AddTask(NewTask(dx, durationMS, easing))
	}
	if dy != 0 {
		c.Y.AddTask(NewTask(dy, durationMS, easing))
	}
}

// MoveTo queues tasks that move the element to (x, y), counting movement
// already queued.
func (c *Component) MoveTo(x, y, durationMS float64, easing Easing) {
	c.MoveBy(x-c.X.Target(), y-c.Y.Target(), durationMS, easing)
}

// ScaleTo queues a task that animates BaseScale to s.
func (c *Component) ScaleTo(s, durationMS float64, easing Easing) {
	c.BaseScale.Tween(s, durationMS, easing)
}

// fire calls fn with e and mirrors the event to the surface's EntityStore.
func (c *Component) fire(fn func(Element), e Element, ev EventType, x, y float64) {
	if fn != nil {
		fn(e)
	}
	if c.surface != nil {
		c.surface.emit(ev, c, x, y)
	}
}
