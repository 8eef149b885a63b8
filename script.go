package collide

import (
	"encoding/json"
	"fmt"

	"go.uber.org/zap"
)

// scriptStep is a single action in a scenario script.
type scriptStep struct {
	Action string  `json:"action"`
	Label  string  `json:"label,omitempty"`
	X      float64 `json:"x,omitempty"`
	Y      float64 `json:"y,omitempty"`
	Frames int     `json:"frames,omitempty"`
}

// script is the top-level JSON structure of a scenario.
type script struct {
	Steps []scriptStep `json:"steps"`
}

// ScriptRunner replays a scripted scenario against a World, one step per
// frame. Attach it with World.SetScript; Update runs the next step before
// moving anything.
//
// Actions address bodies, standalone colliders and root trees by Name:
//
//	move      set the position (Offset for colliders and trees, Transform for bodies)
//	velocity  set a body's LinearVelocity
//	enable    enable a body or collider
//	disable   disable a body or collider
//	wait      let Frames frames pass
//	snapshot  record the last frame's stats under Label
type ScriptRunner struct {
	steps     []scriptStep
	cursor    int
	waitCount int
	done      bool
	snapshots map[string]FrameStats
}

// LoadScript parses a JSON scenario and returns a runner ready to be
// attached to a World.
func LoadScript(jsonData []byte) (*ScriptRunner, error) {
	var s script
	if err := json.Unmarshal(jsonData, &s); err != nil {
		return nil, fmt.Errorf("parse script: %w", err)
	}
	if len(s.Steps) == 0 {
		return nil, fmt.Errorf("parse script: no steps")
	}
	for i, st := range s.Steps {
		switch st.Action {
		case "move", "velocity", "enable", "disable", "wait", "snapshot":
		default:
			return nil, fmt.Errorf("parse script: step %d: unknown action %q", i, st.Action)
		}
	}
	return &ScriptRunner{steps: s.Steps, snapshots: make(map[string]FrameStats)}, nil
}

// SetScript attaches a runner. A nil runner detaches the current one.
func (w *World) SetScript(runner *ScriptRunner) {
	w.script = runner
}

// Done reports whether every step has run and the last wait has elapsed.
func (r *ScriptRunner) Done() bool {
	return r.done
}

// Snapshot returns the stats recorded under label.
func (r *ScriptRunner) Snapshot(label string) (FrameStats, bool) {
	s, ok := r.snapshots[label]
	return s, ok
}

// Run updates w with a fixed dt until the runner is done or maxFrames have
// passed. Returns the number of frames run.
func (r *ScriptRunner) Run(w *World, dt float64, maxFrames int) int {
	w.SetScript(r)
	n := 0
	for !r.done && n < maxFrames {
		w.Update(dt)
		n++
	}
	return n
}

// step advances the runner by one frame. Called from World.Update.
func (r *ScriptRunner) step(w *World) {
	if r.done {
		return
	}
	if r.waitCount > 0 {
		r.waitCount--
		return
	}
	if r.cursor >= len(r.steps) {
		r.done = true
		return
	}

	st := r.steps[r.cursor]
	r.cursor++

	switch st.Action {
	case "move":
		pos := Vec2{X: st.X, Y: st.Y}
		switch target := w.find(st.Label).(type) {
		case *Body:
			target.Transform.Position = pos
		case *Collider:
			target.Offset.Position = pos
		case *ShapeContainer:
			target.Offset.Position = pos
		default:
			r.missing(st)
		}
	case "velocity":
		if b, ok := w.find(st.Label).(*Body); ok {
			b.LinearVelocity = Vec2{X: st.X, Y: st.Y}
		} else {
			r.missing(st)
		}
	case "enable", "disable":
		on := st.Action == "enable"
		switch target := w.find(st.Label).(type) {
		case *Body:
			target.SetEnabled(on)
		case *Collider:
			target.SetEnabled(on)
		default:
			r.missing(st)
		}
	case "wait":
		if st.Frames > 0 {
			r.waitCount = st.Frames - 1 // this frame counts as one
		}
	case "snapshot":
		r.snapshots[st.Label] = w.stats
	}

	if r.cursor >= len(r.steps) && r.waitCount == 0 {
		r.done = true
	}
}

func (r *ScriptRunner) missing(st scriptStep) {
	logger.Debug("script target not found",
		zap.String("action", st.Action), zap.String("label", st.Label))
}

// find returns the first body, body collider, standalone collider or root
// tree named name.
func (w *World) find(name string) any {
	for _, b := range w.bodies {
		if b.Name == name {
			return b
		}
	}
	for _, b := range w.bodies {
		for _, c := range b.colliders {
			if c.Name == name {
				return c
			}
		}
	}
	for _, c := range w.colliders {
		if c.Name == name {
			return c
		}
	}
	for _, t := range w.trees {
		if t.Name == name {
			return t
		}
	}
	return nil
}
