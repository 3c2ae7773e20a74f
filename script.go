package autocanvas

import (
	"encoding/json"
	"fmt"
)

// scriptStep is a single action in an input script.
type scriptStep struct {
	Action string  `json:"action"`
	X      float64 `json:"x,omitempty"`
	Y      float64 `json:"y,omitempty"`
	FromX  float64 `json:"fromX,omitempty"`
	FromY  float64 `json:"fromY,omitempty"`
	ToX    float64 `json:"toX,omitempty"`
	ToY    float64 `json:"toY,omitempty"`
	Delta  float64 `json:"delta,omitempty"`
	Width  int     `json:"width,omitempty"`
	Height int     `json:"height,omitempty"`
	Frames int     `json:"frames,omitempty"`
}

// script is the top-level JSON structure of an input script.
type script struct {
	Steps []scriptStep `json:"steps"`
}

var scriptActions = map[string]bool{
	"press": true, "move": true, "release": true, "click": true,
	"drag": true, "wheel": true, "resize": true, "wait": true,
}

// ScriptRunner replays scripted input, one event per frame. Attach it to a
// Surface with SetScript.
type ScriptRunner struct {
	steps     []scriptStep
	cursor    int
	waitCount int
	queue     []InputEvent
	done      bool
}

// LoadScript parses a JSON input script:
//
//	{"steps": [
//	  {"action": "click", "x": 100, "y": 100},
//	  {"action": "drag", "fromX": 10, "fromY": 10, "toX": 60, "toY": 10, "frames": 5},
//	  {"action": "wheel", "delta": -100, "x": 320, "y": 240},
//	  {"action": "wait", "frames": 30}
//	]}
func LoadScript(jsonData []byte) (*ScriptRunner, error) {
	var sc script
	if err := json.Unmarshal(jsonData, &sc); err != nil {
		return nil, fmt.Errorf("parse script: %w", err)
	}
	if len(sc.Steps) == 0 {
		return nil, fmt.Errorf("parse script: no steps")
	}
	for i, st := range sc.Steps {
		if !scriptActions[st.Action] {
			return nil, fmt.Errorf("parse script: step %d: unknown action %q", i, st.Action)
		}
	}
	return &ScriptRunner{steps: sc.Steps}, nil
}

// SetScript attaches a ScriptRunner. Its next event is applied at the start
// of every Tick.
func (s *Surface) SetScript(r *ScriptRunner) {
	s.script = r
}

// Done reports whether every step has been executed.
func (r *ScriptRunner) Done() bool {
	return r.done
}

// expand turns a step into the pointer events it injects.
func expand(st scriptStep) []InputEvent {
	switch st.Action {
	case "press":
		return []InputEvent{{Kind: InputPress, X: st.X, Y: st.Y}}
	case "move":
		return []InputEvent{{Kind: InputMove, X: st.X, Y: st.Y}}
	case "release":
		return []InputEvent{{Kind: InputRelease, X: st.X, Y: st.Y}}
	case "click":
		return []InputEvent{
			{Kind: InputPress, X: st.X, Y: st.Y},
			{Kind: InputRelease, X: st.X, Y: st.Y},
		}
	case "drag":
		// Press, frames-2 interpolated moves, a move onto the target, release.
		frames := max(st.Frames, 2)
		evs := []InputEvent{{Kind: InputPress, X: st.FromX, Y: st.FromY}}
		steps := frames - 2
		for i := 1; i <= steps; i++ {
			t := float64(i) / float64(steps+1)
			evs = append(evs, InputEvent{
				Kind: InputMove,
				X:    st.FromX + (st.ToX-st.FromX)*t,
				Y:    st.FromY + (st.ToY-st.FromY)*t,
			})
		}
		evs = append(evs, InputEvent{Kind: InputMove, X: st.ToX, Y: st.ToY})
		return append(evs, InputEvent{Kind: InputRelease, X: st.ToX, Y: st.ToY})
	case "wheel":
		return []InputEvent{{Kind: InputWheel, Delta: st.Delta, X: st.X, Y: st.Y}}
	case "resize":
		return []InputEvent{{Kind: InputResize, Width: st.Width, Height: st.Height}}
	}
	return nil
}

// apply feeds one scripted event to the surface. Resizes skip the host
// since scripts run inside Tick.
func (r *ScriptRunner) apply(s *Surface, ev InputEvent) {
	switch ev.Kind {
	case InputPress:
		s.OnPress(ev.X, ev.Y)
	case InputMove:
		s.OnMove(ev.X, ev.Y)
	case InputRelease:
		s.OnRelease(ev.X, ev.Y)
	case InputWheel:
		s.OnWheel(ev.Delta, ev.X, ev.Y)
	case InputResize:
		s.OnResize(ev.Width, ev.Height)
	}
}

// step advances the runner by one frame. Called from Surface.Tick.
func (r *ScriptRunner) step(s *Surface) {
	if r.done {
		return
	}
	if len(r.queue) > 0 {
		r.apply(s, r.queue[0])
		r.queue = r.queue[1:]
		r.checkDone()
		return
	}
	if r.waitCount > 0 {
		r.waitCount--
		r.checkDone()
		return
	}
	if r.cursor >= len(r.steps) {
		r.done = true
		return
	}

	st := r.steps[r.cursor]
	r.cursor++

	if st.Action == "wait" {
		if st.Frames > 0 {
			r.waitCount = st.Frames - 1 // this frame counts as one
		}
		r.checkDone()
		return
	}
	evs := expand(st)
	r.apply(s, evs[0])
	r.queue = evs[1:]
	r.checkDone()
}

func (r *ScriptRunner) checkDone() {
	if r.cursor >= len(r.steps) && r.waitCount == 0 && len(r.queue) == 0 {
		r.done = true
	}
}
