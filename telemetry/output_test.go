package telemetry

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phanxgames/collide"
)

func TestNewFrameRecordConvertsDurations(t *testing.T) {
	rec := NewFrameRecord(collide.FrameStats{
		Frame:      7,
		Overlaps:   3,
		UpdateTime: 1500 * time.Nanosecond,
		DetectTime: 2 * time.Millisecond,
	})
	assert.Equal(t, uint64(7), rec.Frame)
	assert.Equal(t, 3, rec.Overlaps)
	assert.InDelta(t, 1.5, rec.UpdateUS, 1e-9)
	assert.InDelta(t, 2000, rec.DetectUS, 1e-9)
}

func TestWriterHeaderOnce(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)

	require.NoError(t, w.WriteFrame(collide.FrameStats{Frame: 0, Colliders: 2}))
	require.NoError(t, w.WriteFrame(collide.FrameStats{Frame: 1, Colliders: 3}))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)
	assert.True(t, strings.HasPrefix(lines[0], "frame,colliders,pairs_tested"), lines[0])
	assert.True(t, strings.HasPrefix(lines[1], "0,2,"), lines[1])
	assert.True(t, strings.HasPrefix(lines[2], "1,3,"), lines[2])
}

func TestNilWriterIsNoop(t *testing.T) {
	var w *Writer
	assert.NoError(t, w.WriteFrame(collide.FrameStats{}))
}

func TestWindowAggregates(t *testing.T) {
	win := NewWindow(2)

	_, ok := win.Add(collide.FrameStats{Frame: 0, PairsTested: 4, Started: 1})
	assert.False(t, ok)

	ws, ok := win.Add(collide.FrameStats{Frame: 1, PairsTested: 6, Ended: 1})
	require.True(t, ok)
	assert.Equal(t, uint64(0), ws.StartFrame)
	assert.Equal(t, uint64(1), ws.EndFrame)
	assert.Equal(t, 2, ws.Frames)
	assert.InDelta(t, 5, ws.AvgPairs, 1e-9)
	assert.Equal(t, 1, ws.Started)
	assert.Equal(t, 1, ws.Ended)

	// Next window starts fresh.
	assert.Zero(t, win.Flush().Frames)
}

func TestOutputManagerDisabled(t *testing.T) {
	om, err := NewOutputManager("", nil)
	require.NoError(t, err)
	assert.Nil(t, om)
	assert.NoError(t, om.WriteFrame(collide.FrameStats{}))
	assert.NoError(t, om.Close())
}

func TestOutputManagerWritesFiles(t *testing.T) {
	dir := t.TempDir()
	om, err := NewOutputManager(dir, nil)
	require.NoError(t, err)

	require.NoError(t, om.WriteConfig(collide.DefaultConfig()))

	hook := om.Hook(2)
	world := collide.NewWorld()
	world.OnFrameStats = hook
	world.AddCollider(collide.NewCollider("a", collide.Circle{Radius: 1}))
	world.AddCollider(collide.NewCollider("b", collide.Circle{Center: collide.Vec2{X: 1}, Radius: 1}))
	for i := 0; i < 4; i++ {
		world.Update(1.0 / 60)
	}
	require.NoError(t, om.Close())

	frames, err := os.ReadFile(filepath.Join(dir, "frames.csv"))
	require.NoError(t, err)
	assert.Len(t, strings.Split(strings.TrimSpace(string(frames)), "\n"), 5)

	windows, err := os.ReadFile(filepath.Join(dir, "windows.csv"))
	require.NoError(t, err)
	assert.Len(t, strings.Split(strings.TrimSpace(string(windows)), "\n"), 3)

	_, err = os.Stat(filepath.Join(dir, "config.yaml"))
	assert.NoError(t, err)
}
