package autocanvas

import (
	"fmt"
	"math"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Easing selects how a Task distributes its delta over its duration.
type Easing uint8

const (
	EaseLinear Easing = iota // constant rate; delta*(dt/duration) per tick
	EaseInQuad
	EaseOutQuad
	EaseInOutQuad
	EaseInCubic
	EaseOutCubic
	EaseInOutCubic
	EaseInSine
	EaseOutSine
	EaseInOutSine
	EaseOutBounce
)

var easeFuncs = [...]ease.TweenFunc{
	EaseLinear:     ease.Linear,
	EaseInQuad:     ease.InQuad,
	EaseOutQuad:    ease.OutQuad,
	EaseInOutQuad:  ease.InOutQuad,
	EaseInCubic:    ease.InCubic,
	EaseOutCubic:   ease.OutCubic,
	EaseInOutCubic: ease.InOutCubic,
	EaseInSine:     ease.InSine,
	EaseOutSine:    ease.OutSine,
	EaseInOutSine:  ease.InOutSine,
	EaseOutBounce:  ease.OutBounce,
}

// TweenFunc returns the gween easing function backing e.
func (e Easing) TweenFunc() ease.TweenFunc {
	if int(e) < len(easeFuncs) {
		return easeFuncs[e]
	}
	return ease.Linear
}

// Task is a single timed mutation of a Value. Durations and tick deltas are
// in milliseconds.
type Task struct {
	delta      float64
	durationMS float64
	easing     Easing
	elapsedMS  float64

	// Non-linear easings track normalized progress through a gween tween.
	progress *gween.Tween
	last     float64
}

// NewTask creates a task that changes its target by delta over durationMS.
// Panics if durationMS is not a positive finite number.
func NewTask(delta, durationMS float64, easing Easing) *Task {
	if !(durationMS > 0) || math.IsInf(durationMS, 1) {
		panic(fmt.Sprintf("autocanvas: task duration must be positive and finite, got %v", durationMS))
	}
	t := &Task{delta: delta, durationMS: durationMS, easing: easing}
	if easing != EaseLinear {
		t.progress = gween.New(0, 1, float32(durationMS), easing.TweenFunc())
	}
	return t
}

// Delta returns the total change the task was created with.
func (t *Task) Delta() float64 { return t.delta }

// Duration returns the task's duration in milliseconds.
func (t *Task) Duration() float64 { return t.durationMS }

// Elapsed returns the time the task has run, in milliseconds.
func (t *Task) Elapsed() float64 { return t.elapsedMS }

// Remaining returns the part of delta the task has not applied yet.
func (t *Task) Remaining() float64 {
	if t.Dead() {
		return 0
	}
	if t.progress == nil {
		return t.delta * (1 - t.elapsedMS/t.durationMS)
	}
	return t.delta * (1 - t.last)
}

// Easing returns the task's easing.
func (t *Task) Easing() Easing { return t.easing }

// Tick advances the task by dt milliseconds and applies this tick's share of
// delta to target.
//
// Linear tasks add delta*(dt/duration) every tick, so the applied total only
// equals delta exactly when dt divides the duration. Eased tasks apply the
// change in eased progress since the previous tick and land on delta.
func (t *Task) Tick(target *Value, dt float64) {
	t.elapsedMS += dt
	if t.progress == nil {
		target.Set(target.Get() + t.delta*(dt/t.durationMS))
		return
	}
	p, done := t.progress.Update(float32(dt))
	cur := float64(p)
	if done || t.Dead() {
		cur = 1
	}
	target.Set(target.Get() + t.delta*(cur-t.last))
	t.last = cur
}

// Dead reports whether the task has run for its full duration.
func (t *Task) Dead() bool {
	return t.elapsedMS >= t.durationMS
}
