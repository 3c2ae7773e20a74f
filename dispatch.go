package autocanvas

// Dispatch delivers one pointer event at screen point (x, y) to e and
// returns whether e counts as hit. With Undecided the element's own HitTest
// decides; ForceMiss and ForceHit override it.
//
//   - EventHover fires OnHover when the pointer enters and OnHoverStop when
//     it leaves. Repeated events in the same state fire nothing.
//   - EventPress fires OnPress once until the press is released.
//   - EventClick fires OnClick on a hit and then handles the release.
//   - EventRelease fires OnRelease if the element was pressed, wherever the
//     pointer is now.
func Dispatch(e Element, cam *Camera, x, y float64, ev EventType, v Verdict) bool {
	c := e.Base()

	var hit bool
	switch v {
	case ForceMiss:
		hit = false
	case ForceHit:
		hit = true
	default:
		hit = e.HitTest(cam, x, y)
	}

	switch ev {
	case EventHover:
		if hit && !c.hovering {
			c.hovering = true
			c.fire(c.OnHover, e, EventHover, x, y)
		} else if !hit && c.hovering {
			c.hovering = false
			c.fire(c.OnHoverStop, e, EventHoverStop, x, y)
		}
	case EventPress:
		if hit && !c.pressed {
			c.pressed = true
			c.fire(c.OnPress, e, EventPress, x, y)
		}
	case EventClick:
		if hit {
			c.fire(c.OnClick, e, EventClick, x, y)
		}
		release(c, e, x, y)
	case EventRelease:
		release(c, e, x, y)
	}
	return hit
}

func release(c *Component, e Element, x, y float64) {
	if c.pressed {
		c.pressed = false
		c.fire(c.OnRelease, e, EventRelease, x, y)
	}
}

// Route dispatches ev to every element, topmost (last) first, and returns
// the element that claimed the event, or nil.
//
// Until something is hit each element runs its own hit test. After the
// first hit every lower element is dispatched with ForceMiss, so it still
// sees hover-stop and release transitions but cannot claim the event.
func Route(elems []Element, cam *Camera, x, y float64, ev EventType) Element {
	var claimant Element
	for i := len(elems) - 1; i >= 0; i-- {
		v := Undecided
		if claimant != nil {
			v = ForceMiss
		}
		if Dispatch(elems[i], cam, x, y, ev, v) && claimant == nil {
			claimant = elems[i]
		}
	}
	return claimant
}
