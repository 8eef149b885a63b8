package collide

import (
	"time"

	"go.uber.org/zap"
)

// logger receives structural-misuse and debug diagnostics. Silent by default.
var logger = zap.NewNop()

// SetLogger routes diagnostics to l. A nil logger silences them again.
func SetLogger(l *zap.Logger) {
	if l == nil {
		l = zap.NewNop()
	}
	logger = l
}

// Logger returns the logger currently receiving diagnostics.
func Logger() *zap.Logger {
	return logger
}

// globalDebug mirrors the most recently applied debug flag so that tree
// operations (which lack a World pointer) can check it cheaply.
var globalDebug bool

// Debug thresholds; overwritten by Config.Apply.
var (
	debugMaxTreeDepth  = 32
	debugMaxChildCount = 1000
)

// SetDebugMode toggles the extra tree checks and per-frame stats logging.
func SetDebugMode(enabled bool) {
	globalDebug = enabled
}

// FrameStats holds per-frame counters from World.Update.
type FrameStats struct {
	Frame         uint64        `csv:"frame"`
	Colliders     int           `csv:"colliders"`
	PairsTested   int           `csv:"pairs_tested"`
	Overlaps      int           `csv:"overlaps"`
	Started       int           `csv:"started"`
	Ended         int           `csv:"ended"`
	Notifications int           `csv:"notifications"`
	UpdateTime    time.Duration `csv:"-"`
	DetectTime    time.Duration `csv:"-"`
}

// debugLog writes frame stats at debug level.
func debugLog(stats FrameStats) {
	if !globalDebug {
		return
	}
	logger.Debug("frame",
		zap.Uint64("frame", stats.Frame),
		zap.Duration("update", stats.UpdateTime),
		zap.Duration("detect", stats.DetectTime),
		zap.Int("colliders", stats.Colliders),
		zap.Int("pairs", stats.PairsTested),
		zap.Int("overlaps", stats.Overlaps),
		zap.Int("notifications", stats.Notifications),
	)
}

// debugCheckTreeDepth warns if a container sits deeper than the threshold.
func debugCheckTreeDepth(c *ShapeContainer) {
	depth := 0
	for p := c; p != nil; p = p.parent {
		depth++
	}
	if depth > debugMaxTreeDepth {
		logger.Warn("tree depth exceeds threshold",
			zap.String("container", c.Name),
			zap.Int("depth", depth),
			zap.Int("threshold", debugMaxTreeDepth))
	}
}

// debugCheckChildCount warns if a container holds more children than the threshold.
func debugCheckChildCount(c *ShapeContainer) {
	if len(c.children) > debugMaxChildCount {
		logger.Warn("child count exceeds threshold",
			zap.String("container", c.Name),
			zap.Int("children", len(c.children)),
			zap.Int("threshold", debugMaxChildCount))
	}
}
