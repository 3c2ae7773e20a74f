package autocanvas

import "math"

// OnPress handles a pointer press at screen point (x, y): it starts a
// camera drag and routes EventPress.
func (s *Surface) OnPress(x, y float64) {
	s.pointer.Pressed = true
	s.pointer.PressedX = x
	s.pointer.PressedY = y
	s.camera.BeginDrag()

	Route(s.Elements(), s.camera, x, y, EventPress)
}

// OnMove handles pointer movement. While pressed the camera pans by the
// total displacement since the press. EventHover is routed either way.
func (s *Surface) OnMove(x, y float64) {
	s.pointer.X = x
	s.pointer.Y = y
	if s.pointer.Pressed {
		s.camera.DragTo(x-s.pointer.PressedX, y-s.pointer.PressedY)
	}

	Route(s.Elements(), s.camera, x, y, EventHover)
}

// OnRelease handles a pointer release. A release closer to the press point
// than the click threshold is routed as EventClick, otherwise as
// EventRelease.
func (s *Surface) OnRelease(x, y float64) {
	s.pointer.Pressed = false

	ev := EventRelease
	if s.isClick(x, y) {
		ev = EventClick
	}
	Route(s.Elements(), s.camera, x, y, ev)
}

func (s *Surface) isClick(x, y float64) bool {
	dist := math.Hypot(s.pointer.PressedX-x, s.pointer.PressedY-y)
	return dist < s.clickThreshold
}

// OnWheel zooms the camera about screen point (x, y). Positive delta zooms
// out.
func (s *Surface) OnWheel(delta, x, y float64) {
	s.camera.Zoom(delta, x, y)
}

// OnResize records the new surface size and runs every element's OnResize
// handler so formula-bound positions are fixed before the next draw.
func (s *Surface) OnResize(w, h int) {
	s.width, s.height = w, h
	for _, e := range s.Elements() {
		c := e.Base()
		if c.OnResize != nil {
			c.OnResize(e)
		}
		if s.store != nil {
			s.emit(EventResize, c, 0, 0)
		}
	}
}
