package autocanvas

import (
	"context"
	"time"
)

// frameTimer is the surface's restartable redraw timer.
type frameTimer struct {
	ticker *time.Ticker
}

func startFrameTimer(d time.Duration) *frameTimer {
	return &frameTimer{ticker: time.NewTicker(d)}
}

// C returns the tick channel.
func (t *frameTimer) C() <-chan time.Time {
	return t.ticker.C
}

// reset switches to period d. Ticks of the old period are not delivered
// after reset returns.
func (t *frameTimer) reset(d time.Duration) {
	t.ticker.Reset(d)
}

func (t *frameTimer) stop() {
	t.ticker.Stop()
}

// InputKind identifies the kind of an InputEvent.
type InputKind uint8

const (
	InputPress    InputKind = iota // pointer pressed at (X, Y)
	InputMove                      // pointer moved to (X, Y)
	InputRelease                   // pointer released at (X, Y)
	InputWheel                     // wheel Delta at (X, Y)
	InputResize                    // surface resized to Width x Height
	InputTickRate                  // tick rate changed to FPS
)

// InputEvent is a raw input event fed to RunHeadless.
type InputEvent struct {
	Kind          InputKind
	X, Y          float64
	Delta         float64
	Width, Height int
	FPS           int
}

// Handle applies one input event. Resize events also resize h and redraw
// immediately so hit tests see the new layout.
func (s *Surface) Handle(h Host, ev InputEvent) {
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
		h.Resize(ev.Width, ev.Height)
		s.OnResize(ev.Width, ev.Height)
		s.Refresh(h)
	case InputTickRate:
		s.SetTickRate(ev.FPS)
	}
}

// Post queues fn to run on the loop goroutine between frames and reports
// whether it was queued. Safe to call from any goroutine. Functions posted
// before RunHeadless starts run once it does; fn is dropped when the queue
// is full.
func (s *Surface) Post(fn func()) bool {
	select {
	case s.queue <- fn:
		return true
	default:
		return false
	}
}

const postQueueSize = 256

// RunHeadless drives the surface until ctx is cancelled: it refreshes into h
// once per frame period and applies input events and posted functions in
// between, one at a time on the calling goroutine. A nil input channel is
// allowed. Returns ctx.Err().
func (s *Surface) RunHeadless(ctx context.Context, h Host, input <-chan InputEvent) error {
	s.timer = startFrameTimer(s.FrameInterval())
	defer func() {
		s.timer.stop()
		s.timer = nil
	}()

	if w, hh := h.Size(); w != s.width || hh != s.height {
		s.OnResize(w, hh)
	}
	s.logger.Info("surface loop started", "fps", s.tickRate)

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("surface loop stopped", "frames", s.frames)
			return ctx.Err()
		case <-s.timer.C():
			s.Refresh(h)
		case ev, ok := <-input:
			if !ok {
				input = nil
				continue
			}
			s.Handle(h, ev)
		case fn := <-s.queue:
			fn()
		}
	}
}
