package telemetry

import "github.com/phanxgames/collide"

// WindowStats aggregates a fixed number of consecutive frames.
type WindowStats struct {
	StartFrame    uint64  `csv:"start_frame"`
	EndFrame      uint64  `csv:"end_frame"`
	Frames        int     `csv:"frames"`
	AvgColliders  float64 `csv:"avg_colliders"`
	AvgPairs      float64 `csv:"avg_pairs"`
	AvgOverlaps   float64 `csv:"avg_overlaps"`
	Started       int     `csv:"started"`
	Ended         int     `csv:"ended"`
	Notifications int     `csv:"notifications"`
	AvgUpdateUS   float64 `csv:"avg_update_us"`
	AvgDetectUS   float64 `csv:"avg_detect_us"`
	MaxDetectUS   float64 `csv:"max_detect_us"`
}

// Window accumulates frames and emits a WindowStats every size frames.
type Window struct {
	size int
	acc  WindowStats

	colliders, pairs, overlaps int
	updateUS, detectUS         float64
}

// NewWindow creates a window of size frames (minimum 1).
func NewWindow(size int) *Window {
	if size < 1 {
		size = 1
	}
	return &Window{size: size}
}

// Add folds stats into the window. When the window fills it returns the
// aggregate and true, and starts a new window.
func (w *Window) Add(stats collide.FrameStats) (WindowStats, bool) {
	rec := NewFrameRecord(stats)
	if w.acc.Frames == 0 {
		w.acc.StartFrame = rec.Frame
	}
	w.acc.EndFrame = rec.Frame
	w.acc.Frames++
	w.acc.Started += rec.Started
	w.acc.Ended += rec.Ended
	w.acc.Notifications += rec.Notifications
	w.acc.MaxDetectUS = max(w.acc.MaxDetectUS, rec.DetectUS)
	w.colliders += rec.Colliders
	w.pairs += rec.PairsTested
	w.overlaps += rec.Overlaps
	w.updateUS += rec.UpdateUS
	w.detectUS += rec.DetectUS

	if w.acc.Frames < w.size {
		return WindowStats{}, false
	}
	return w.Flush(), true
}

// Flush returns the current partial window and resets. A window with no
// frames yields the zero value.
func (w *Window) Flush() WindowStats {
	out := w.acc
	if n := float64(out.Frames); n > 0 {
		out.AvgColliders = float64(w.colliders) / n
		out.AvgPairs = float64(w.pairs) / n
		out.AvgOverlaps = float64(w.overlaps) / n
		out.AvgUpdateUS = w.updateUS / n
		out.AvgDetectUS = w.detectUS / n
	}
	*w = Window{size: w.size}
	return out
}
