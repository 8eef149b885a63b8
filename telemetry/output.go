// Package telemetry writes per-frame collision stats as CSV.
package telemetry

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/gocarina/gocsv"
	"go.uber.org/zap"

	"github.com/phanxgames/collide"
)

// FrameRecord is one CSV row built from collide.FrameStats.
type FrameRecord struct {
	Frame         uint64  `csv:"frame"`
	Colliders     int     `csv:"colliders"`
	PairsTested   int     `csv:"pairs_tested"`
	Overlaps      int     `csv:"overlaps"`
	Started       int     `csv:"started"`
	Ended         int     `csv:"ended"`
	Notifications int     `csv:"notifications"`
	UpdateUS      float64 `csv:"update_us"`
	DetectUS      float64 `csv:"detect_us"`
}

// NewFrameRecord converts stats to a row. Durations become microseconds.
func NewFrameRecord(stats collide.FrameStats) FrameRecord {
	return FrameRecord{
		Frame:         stats.Frame,
		Colliders:     stats.Colliders,
		PairsTested:   stats.PairsTested,
		Overlaps:      stats.Overlaps,
		Started:       stats.Started,
		Ended:         stats.Ended,
		Notifications: stats.Notifications,
		UpdateUS:      float64(stats.UpdateTime.Nanoseconds()) / 1e3,
		DetectUS:      float64(stats.DetectTime.Nanoseconds()) / 1e3,
	}
}

// Writer appends CSV rows to an io.Writer. The header is written with the
// first row only.
type Writer struct {
	out           io.Writer
	headerWritten bool
}

// NewWriter creates a Writer over out.
func NewWriter(out io.Writer) *Writer {
	return &Writer{out: out}
}

// WriteFrame appends one frame's row.
func (w *Writer) WriteFrame(stats collide.FrameStats) error {
	return w.write([]FrameRecord{NewFrameRecord(stats)})
}

// WriteWindow appends one aggregated window row.
func (w *Writer) WriteWindow(stats WindowStats) error {
	return w.write([]WindowStats{stats})
}

func (w *Writer) write(records any) error {
	if w == nil {
		return nil
	}
	if !w.headerWritten {
		// First write includes headers
		if err := gocsv.Marshal(records, w.out); err != nil {
			return fmt.Errorf("writing stats: %w", err)
		}
		w.headerWritten = true
		return nil
	}
	if err := gocsv.MarshalWithoutHeaders(records, w.out); err != nil {
		return fmt.Errorf("writing stats: %w", err)
	}
	return nil
}

// OutputManager owns the CSV files of one recording directory.
type OutputManager struct {
	dir        string
	framesFile *os.File
	windowFile *os.File
	frames     *Writer
	windows    *Writer
	logger     *zap.Logger
}

// NewOutputManager creates dir and opens frames.csv and windows.csv in it.
// Returns nil if dir is empty (output disabled).
func NewOutputManager(dir string, logger *zap.Logger) (*OutputManager, error) {
	if dir == "" {
		return nil, nil
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}

	om := &OutputManager{dir: dir, logger: logger}

	f, err := os.Create(filepath.Join(dir, "frames.csv"))
	if err != nil {
		return nil, fmt.Errorf("creating frames.csv: %w", err)
	}
	om.framesFile = f
	om.frames = NewWriter(f)

	f, err = os.Create(filepath.Join(dir, "windows.csv"))
	if err != nil {
		om.framesFile.Close()
		return nil, fmt.Errorf("creating windows.csv: %w", err)
	}
	om.windowFile = f
	om.windows = NewWriter(f)

	return om, nil
}

// WriteConfig saves cfg as config.yaml next to the CSV files.
func (om *OutputManager) WriteConfig(cfg *collide.Config) error {
	if om == nil {
		return nil
	}
	return cfg.WriteYAML(filepath.Join(om.dir, "config.yaml"))
}

// WriteFrame appends a row to frames.csv.
func (om *OutputManager) WriteFrame(stats collide.FrameStats) error {
	if om == nil {
		return nil
	}
	return om.frames.WriteFrame(stats)
}

// WriteWindow appends a row to windows.csv.
func (om *OutputManager) WriteWindow(stats WindowStats) error {
	if om == nil {
		return nil
	}
	return om.windows.WriteWindow(stats)
}

// Hook returns a function for World.OnFrameStats. Every frame is written to
// frames.csv and every window of size frames to windows.csv. Write errors
// are logged, not returned.
func (om *OutputManager) Hook(size int) func(collide.FrameStats) {
	win := NewWindow(size)
	return func(stats collide.FrameStats) {
		if err := om.WriteFrame(stats); err != nil {
			om.logger.Warn("telemetry frame write failed", zap.Error(err))
		}
		if ws, ok := win.Add(stats); ok {
			if err := om.WriteWindow(ws); err != nil {
				om.logger.Warn("telemetry window write failed", zap.Error(err))
			}
		}
	}
}

// Close closes all output files.
func (om *OutputManager) Close() error {
	if om == nil {
		return nil
	}
	var firstErr error
	if err := om.framesFile.Close(); err != nil {
		firstErr = fmt.Errorf("closing frames.csv: %w", err)
	}
	if err := om.windowFile.Close(); err != nil && firstErr == nil {
		firstErr = fmt.Errorf("closing windows.csv: %w", err)
	}
	return firstErr
}
