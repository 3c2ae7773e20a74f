package autocanvas

import (
	"fmt"
	"math"
	"time"
)

// frameStats holds per-frame timing. Only populated in debug mode.
type frameStats struct {
	tickTime     time.Duration
	drawTime     time.Duration
	elementCount int
}

// debugLog logs frame timing at debug level.
func (s *Surface) debugLog(stats frameStats) {
	s.logger.Debug("frame",
		"frame", s.frames,
		"tick", stats.tickTime,
		"draw", stats.drawTime,
		"total", stats.tickTime+stats.drawTime,
		"target_ms", s.FrameMS(),
		"elements", stats.elementCount,
	)
}

// debugLines returns the overlay text: target and measured frame time and
// the world point under the pointer.
func (s *Surface) debugLines() []string {
	wx, wy := s.camera.ScreenToWorld(s.pointer.X, s.pointer.Y)
	return []string{
		fmt.Sprintf("Target MS: %.0f", s.FrameMS()),
		fmt.Sprintf("Current MS: %.3f", float64(s.renderTime)/float64(time.Millisecond)),
		fmt.Sprintf("Looking at: (%d, %d)", int(math.Round(wx)), int(math.Round(wy))),
	}
}

const debugLineHeight = 20

// drawDebugOverlay prints the overlay in the top-left corner with a 2px
// drop shadow.
func (s *Surface) drawDebugOverlay(h Host) {
	for i, line := range s.debugLines() {
		y := float64(i * debugLineHeight)
		h.DrawText(line, 2, y+2)
		h.DrawText(line, 0, y)
	}
}
