package autocanvas

import (
	"fmt"
	"log/slog"
	"time"
)

// EntityStore is the interface for optional ECS integration.
// When set on a Surface, every fired element handler is forwarded to it.
type EntityStore interface {
	EmitEvent(event InteractionEvent)
}

// InteractionEvent carries interaction data for the ECS bridge.
type InteractionEvent struct {
	Type      EventType
	ElementID uint32
	Name      string
	// Screen position of the pointer.
	X, Y float64
	// The same position in world space.
	WorldX, WorldY float64
}

// PointerState is the last known pointer position and press state.
type PointerState struct {
	X, Y     float64
	Pressed  bool
	PressedX float64
	PressedY float64
}

// Surface owns the elements, the camera and the pointer state, and drives
// ticking and drawing at a fixed rate.
//
// A Surface is not safe for concurrent use. Input methods, Tick, Draw and
// SetTickRate must run on one goroutine; RunHeadless and Run arrange that.
type Surface struct {
	civilian []Element
	priority []Element

	camera  *Camera
	pointer PointerState

	tickRate       int
	clickThreshold float64
	width, height  int

	// Background is the color the surface is cleared to each frame.
	Background Color

	store  EntityStore
	logger *slog.Logger
	debug  bool
	clock  func() time.Time

	renderTime time.Duration
	frames     uint64

	timer      *frameTimer
	queue      chan func()
	onTickRate func(fps int)
	script     *ScriptRunner
	updateFunc func()
}

// NewSurface creates a surface with DefaultConfig.
func NewSurface() *Surface {
	s, err := NewSurfaceWithConfig(DefaultConfig())
	if err != nil {
		panic(err)
	}
	return s
}

// NewSurfaceWithConfig creates a surface from cfg after validating it.
func NewSurfaceWithConfig(cfg Config) (*Surface, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("new surface: %w", err)
	}
	return &Surface{
		camera:         newCameraWithBounds(cfg.Zoom.Min, cfg.Zoom.Max, cfg.Zoom.Strength),
		tickRate:       cfg.TickRate,
		clickThreshold: cfg.ClickThreshold,
		width:          cfg.Window.Width,
		height:         cfg.Window.Height,
		Background:     cfg.background(),
		logger:         slog.Default(),
		debug:          cfg.Debug,
		clock:          time.Now,
		queue:          make(chan func(), postQueueSize),
	}, nil
}

// AddElement adds e on top of its group. Hoisted elements form a group
// above all others. Panics if e is nil.
func (s *Surface) AddElement(e Element) {
	if e == nil {
		panic("autocanvas: cannot add nil element")
	}
	c := e.Base()
	c.surface = s
	if c.Options.Hoisted {
		s.priority = append(s.priority, e)
	} else {
		s.civilian = append(s.civilian, e)
	}
	s.logger.Debug("element added", "id", c.ID, "name", c.Name, "hoisted", c.Options.Hoisted)
}

// RemoveElement removes e and reports whether it was present.
func (s *Surface) RemoveElement(e Element) bool {
	var ok bool
	if s.civilian, ok = removeElement(s.civilian, e); !ok {
		s.priority, ok = removeElement(s.priority, e)
	}
	if ok {
		c := e.Base()
		c.surface = nil
		s.logger.Debug("element removed", "id", c.ID, "name", c.Name)
	}
	return ok
}

func removeElement(s []Element, e Element) ([]Element, bool) {
	for i, x := range s {
		if x == e {
			copy(s[i:], s[i+1:])
			s[len(s)-1] = nil
			return s[:len(s)-1], true
		}
	}
	return s, false
}

// Elements returns every element in draw order: non-hoisted first, then
// hoisted, each in insertion order. The slice is freshly allocated.
func (s *Surface) Elements() []Element {
	out := make([]Element, 0, len(s.civilian)+len(s.priority))
	out = append(out, s.civilian...)
	return append(out, s.priority...)
}

// Len returns the number of elements.
func (s *Surface) Len() int {
	return len(s.civilian) + len(s.priority)
}

// Camera returns the surface camera.
func (s *Surface) Camera() *Camera {
	return s.camera
}

// Pointer returns the current pointer state.
func (s *Surface) Pointer() PointerState {
	return s.pointer
}

// Size returns the surface size last reported through OnResize.
func (s *Surface) Size() (w, h int) {
	return s.width, s.height
}

// TickRate returns the target frames per second.
func (s *Surface) TickRate() int {
	return s.tickRate
}

// FrameMS returns the frame period in milliseconds. This is the dt every
// element is ticked with.
func (s *Surface) FrameMS() float64 {
	return 1000 / float64(s.tickRate)
}

// FrameInterval returns the frame period.
func (s *Surface) FrameInterval() time.Duration {
	return time.Second / time.Duration(s.tickRate)
}

// SetTickRate changes the target frames per second. A running frame timer
// is reset to the new period in place. Panics unless 0 < fps <= MaxTickRate.
func (s *Surface) SetTickRate(fps int) {
	if fps <= 0 || fps > MaxTickRate {
		panic(fmt.Sprintf("autocanvas: tick rate must be in (0, %d], got %d", MaxTickRate, fps))
	}
	s.tickRate = fps
	if s.timer != nil {
		s.timer.reset(s.FrameInterval())
	}
	if s.onTickRate != nil {
		s.onTickRate(fps)
	}
	s.logger.Info("tick rate changed", "fps", fps, "frame_ms", s.FrameMS())
}

// SetClickThreshold sets the press-to-release distance in pixels below
// which a release counts as a click.
func (s *Surface) SetClickThreshold(px float64) {
	s.clickThreshold = px
}

// SetEntityStore sets the optional ECS bridge.
func (s *Surface) SetEntityStore(store EntityStore) {
	s.store = store
}

// SetLogger replaces the surface logger. nil restores slog.Default().
func (s *Surface) SetLogger(l *slog.Logger) {
	if l == nil {
		l = slog.Default()
	}
	s.logger = l
}

// SetDebugMode enables or disables the debug overlay and per-frame timing
// logs.
func (s *Surface) SetDebugMode(enabled bool) {
	s.debug = enabled
}

// SetClock replaces the wall clock used for frame timing.
func (s *Surface) SetClock(now func() time.Time) {
	if now == nil {
		now = time.Now
	}
	s.clock = now
}

// SetUpdateFunc sets a callback run at the start of every Tick.
func (s *Surface) SetUpdateFunc(fn func()) {
	s.updateFunc = fn
}

// RenderTime returns how long the last Refresh took.
func (s *Surface) RenderTime() time.Duration {
	return s.renderTime
}

// Frames returns the number of frames drawn.
func (s *Surface) Frames() uint64 {
	return s.frames
}

// Tick advances the script, the camera animation and every element by one
// frame period.
func (s *Surface) Tick() {
	if s.script != nil {
		s.script.step(s)
	}
	if s.updateFunc != nil {
		s.updateFunc()
	}
	dt := s.FrameMS()
	s.camera.update(dt)
	for _, e := range s.civilian {
		e.Tick(dt)
	}
	for _, e := range s.priority {
		e.Tick(dt)
	}
}

// Draw clears h and draws every element in order, then the debug overlay
// when debug mode is on.
func (s *Surface) Draw(h Host) {
	s.drawElements(h)
	if s.debug {
		s.drawDebugOverlay(h)
	}
}

func (s *Surface) drawElements(h Host) {
	h.Clear(s.Background)
	for _, e := range s.civilian {
		e.Draw(h, s.camera)
	}
	for _, e := range s.priority {
		e.Draw(h, s.camera)
	}
	s.frames++
}

// Refresh runs one frame: Tick then Draw, timed with the surface clock.
// The frame time is recorded before the debug overlay is drawn, so the
// overlay reports the frame it is drawn on.
func (s *Surface) Refresh(h Host) {
	start := s.clock()
	s.Tick()
	tickDone := s.clock()
	s.drawElements(h)
	end := s.clock()
	s.renderTime = end.Sub(start)
	if s.debug {
		s.drawDebugOverlay(h)
		s.debugLog(frameStats{
			tickTime:     tickDone.Sub(start),
			drawTime:     end.Sub(tickDone),
			elementCount: s.Len(),
		})
	}
}

// emit forwards a fired handler to the EntityStore.
func (s *Surface) emit(ev EventType, c *Component, x, y float64) {
	if s.store == nil {
		return
	}
	wx, wy := s.camera.ScreenToWorld(x, y)
	s.store.EmitEvent(InteractionEvent{
		Type:      ev,
		ElementID: c.ID,
		Name:      c.Name,
		X:         x,
		Y:         y,
		WorldX:    wx,
		WorldY:    wy,
	})
}
