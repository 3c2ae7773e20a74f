package autocanvas

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
)

const epsilon = 1e-9

func approxEqual(a, b, eps float64) bool {
	return math.Abs(a-b) < eps
}

type drawCall struct {
	kind       string
	x, y, w, h float64
	text       string
}

// recordingHost is a Host that records every call.
type recordingHost struct {
	w, h    int
	clears  int
	calls   []drawCall
	resizes int
}

func newRecordingHost(w, h int) *recordingHost {
	return &recordingHost{w: w, h: h}
}

func (r *recordingHost) Size() (int, int) { return r.w, r.h }

func (r *recordingHost) Resize(w, h int) {
	r.w, r.h = w, h
	r.resizes++
}

func (r *recordingHost) Clear(Color) { r.clears++ }

func (r *recordingHost) DrawRect(x, y, w, h float64, _ Color) {
	r.calls = append(r.calls, drawCall{kind: "rect", x: x, y: y, w: w, h: h})
}

func (r *recordingHost) DrawImage(_ *ebiten.Image, x, y, w, h float64) {
	r.calls = append(r.calls, drawCall{kind: "image", x: x, y: y, w: w, h: h})
}

func (r *recordingHost) DrawText(s string, x, y float64) {
	r.calls = append(r.calls, drawCall{kind: "text", x: x, y: y, text: s})
}

func (r *recordingHost) count(kind string) int {
	n := 0
	for _, c := range r.calls {
		if c.kind == kind {
			n++
		}
	}
	return n
}

// eventLog collects handler invocations as "name:event" strings.
type eventLog []string

func (l *eventLog) hook(c *Component) {
	rec := func(ev string) func(Element) {
		return func(e Element) { *l = append(*l, e.Base().Name+":"+ev) }
	}
	c.OnHover = rec("hover")
	c.OnHoverStop = rec("hover_stop")
	c.OnPress = rec("press")
	c.OnClick = rec("click")
	c.OnRelease = rec("release")
}

func (l *eventLog) reset() { *l = (*l)[:0] }

func (l eventLog) equal(want ...string) bool {
	if len(l) != len(want) {
		return false
	}
	for i := range want {
		if l[i] != want[i] {
			return false
		}
	}
	return true
}
