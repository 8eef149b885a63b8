package collide

import (
	"time"

	"go.uber.org/zap"
)

// pairKey identifies a directed collider pair.
type pairKey struct {
	self, other *Collider
}

// objectKey identifies a collider's contact with another object.
type objectKey struct {
	self  *Collider
	other CollisionObject
}

const defaultContactCap = 64

// World is the frame driver. It owns root shape trees, bodies and standalone
// colliders, runs a brute-force pairwise pass over them each Update, and
// routes the resulting notifications through an Outbox into an optional sink.
//
// World is single-threaded; every method must be called from one goroutine.
type World struct {
	// Root is the parent transform handed to trees and standalone colliders.
	Root Transform2D

	trees     []*ShapeContainer
	bodies    []*Body
	colliders []*Collider

	outbox Outbox
	sink   NotificationSink
	script *ScriptRunner

	// Contact tracking across frames.
	pairs      map[pairKey]struct{}
	objects    map[objectKey]struct{}
	objectList []objectKey

	// Scratch
	candidates []*Collider
	infos      []*CollisionInformation

	frame uint64
	stats FrameStats

	// OnFrameStats receives each frame's stats after the outbox is drained.
	OnFrameStats func(stats FrameStats)
}

// NewWorld creates an empty world rooted at UnitTransform.
func NewWorld() *World {
	return &World{
		Root:    UnitTransform,
		pairs:   make(map[pairKey]struct{}, defaultContactCap),
		objects: make(map[objectKey]struct{}, defaultContactCap),
	}
}

// --- Membership ---

// AddTree adds a root container and initializes it from Root. Containers
// that already have a parent are rejected.
func (w *World) AddTree(c *ShapeContainer) bool {
	if c == nil || c.parent != nil {
		return false
	}
	for _, t := range w.trees {
		if t == c {
			return false
		}
	}
	w.trees = append(w.trees, c)
	c.InitializeShape(w.Root)
	return true
}

// RemoveTree removes a root container.
func (w *World) RemoveTree(c *ShapeContainer) bool {
	for i, t := range w.trees {
		if t == c {
			w.trees = append(w.trees[:i], w.trees[i+1:]...)
			return true
		}
	}
	return false
}

// AddBody adds a body whose colliders take part in detection.
func (w *World) AddBody(b *Body) bool {
	if b == nil {
		return false
	}
	for _, x := range w.bodies {
		if x == b {
			return false
		}
	}
	w.bodies = append(w.bodies, b)
	for _, c := range b.colliders {
		c.InitializeShape(b.Transform)
	}
	return true
}

// RemoveBody removes a body. Its active contacts end on the next Update.
func (w *World) RemoveBody(b *Body) bool {
	for i, x := range w.bodies {
		if x == b {
			w.bodies = append(w.bodies[:i], w.bodies[i+1:]...)
			return true
		}
	}
	return false
}

// AddCollider adds an unowned collider driven directly by Root. Owned
// colliders belong to their body and are rejected.
func (w *World) AddCollider(c *Collider) bool {
	if c == nil || c.owner != nil {
		return false
	}
	for _, x := range w.colliders {
		if x == c {
			return false
		}
	}
	w.colliders = append(w.colliders, c)
	c.InitializeShape(w.Root)
	return true
}

// RemoveCollider removes a standalone collider.
func (w *World) RemoveCollider(c *Collider) bool {
	for i, x := range w.colliders {
		if x == c {
			w.colliders = append(w.colliders[:i], w.colliders[i+1:]...)
			return true
		}
	}
	return false
}

// Trees returns the root containers. The returned slice MUST NOT be mutated by the caller.
func (w *World) Trees() []*ShapeContainer { return w.trees }

// Bodies returns the bodies. The returned slice MUST NOT be mutated by the caller.
func (w *World) Bodies() []*Body { return w.bodies }

// SetSink routes drained notifications to sink. A nil sink discards them.
func (w *World) SetSink(sink NotificationSink) { w.sink = sink }

// Outbox exposes the pending notifications. Update drains it on every frame.
func (w *World) Outbox() *Outbox { return &w.outbox }

// Stats returns the most recent frame's stats.
func (w *World) Stats() FrameStats { return w.stats }

// Frame returns the number of completed Updates.
func (w *World) Frame() uint64 { return w.frame }

// --- Frame ---

// Initialize re-initializes every tree, body collider and standalone collider
// from the current transforms. Previous transforms become equal to current.
func (w *World) Initialize() {
	for _, t := range w.trees {
		t.InitializeShape(w.Root)
	}
	for _, b := range w.bodies {
		for _, c := range b.colliders {
			c.InitializeShape(b.Transform)
		}
	}
	for _, c := range w.colliders {
		c.InitializeShape(w.Root)
	}
}

// Update advances one frame: an attached script runs its next step, then
// trees, bodies and standalone colliders are updated, then every eligible collider pair is tested. New and continuing
// contacts are resolved into the outbox, vanished ones produce ended
// records, and the outbox is drained into the sink.
func (w *World) Update(dt float64) {
	var t0 time.Time
	if globalDebug {
		t0 = time.Now()
	}

	if w.script != nil {
		w.script.step(w)
	}

	for _, t := range w.trees {
		t.UpdateShape(dt, w.Root)
	}
	for _, b := range w.bodies {
		b.Update(dt)
	}
	for _, c := range w.colliders {
		c.UpdateShape(dt, w.Root)
	}

	stats := FrameStats{Frame: w.frame}
	if globalDebug {
		stats.UpdateTime = time.Since(t0)
		t0 = time.Now()
	}

	w.detect(&stats)

	if globalDebug {
		stats.DetectTime = time.Since(t0)
	}

	stats.Notifications = w.outbox.Drain(w.sink)
	w.stats = stats
	w.frame++
	debugLog(stats)
	if w.OnFrameStats != nil {
		w.OnFrameStats(stats)
	}
}

// Draw calls DrawShape on every tree, then Draw on every body, then
// DrawShape on every standalone collider.
func (w *World) Draw() {
	for _, t := range w.trees {
		t.DrawShape()
	}
	for _, b := range w.bodies {
		b.Draw()
	}
	for _, c := range w.colliders {
		c.DrawShape()
	}
}

// detect runs the pairwise pass and fills the outbox.
func (w *World) detect(stats *FrameStats) {
	w.gatherCandidates()
	stats.Colliders = len(w.candidates)

	curPairs := make(map[pairKey]struct{}, len(w.pairs))
	curObjects := make(map[objectKey]struct{}, len(w.objects))
	var curList []objectKey

	for _, self := range w.candidates {
		selfObj := self.Object()
		w.infos = w.infos[:0]
		for _, other := range w.candidates {
			if other == self || !self.CanCollideWith(other) {
				continue
			}
			otherObj := other.Object()
			if otherObj == selfObj {
				continue
			}
			stats.PairsTested++
			if !self.BoundingBox().Intersects(other.BoundingBox()) || !self.OverlapCollider(other) {
				continue
			}
			stats.Overlaps++

			key := pairKey{self, other}
			_, seen := w.pairs[key]
			curPairs[key] = struct{}{}
			col := Collision{Self: self, Other: other, FirstContact: !seen}
			if !seen {
				stats.Started++
			}
			if self.ComputeIntersections {
				col.Points = self.IntersectCollider(other)
			}
			info := w.infoFor(self, otherObj)
			info.Collisions = append(info.Collisions, col)
		}
		for _, info := range w.infos {
			ok := objectKey{self, info.Other}
			if _, dup := curObjects[ok]; !dup {
				curObjects[ok] = struct{}{}
				curList = append(curList, ok)
			}
			w.outbox.Push(self.ResolveCollision(info)...)
		}
	}

	for _, ok := range w.objectList {
		if _, still := curObjects[ok]; still {
			continue
		}
		stats.Ended++
		w.outbox.Push(ok.self.ResolveCollisionEnded(ok.other)...)
	}

	w.pairs = curPairs
	w.objects = curObjects
	w.objectList = curList
}

// infoFor returns the CollisionInformation for self against obj, creating it
// on first use within the current self pass.
func (w *World) infoFor(self *Collider, obj CollisionObject) *CollisionInformation {
	for _, info := range w.infos {
		if info.Other == obj {
			return info
		}
	}
	info := &CollisionInformation{
		Self:          self,
		Other:         obj,
		SelfVelocity:  self.Velocity(),
		OtherVelocity: obj.Velocity(),
	}
	w.infos = append(w.infos, info)
	return info
}

// gatherCandidates collects enabled colliders that opted into detection, in
// body order followed by standalone order.
func (w *World) gatherCandidates() {
	w.candidates = w.candidates[:0]
	for _, b := range w.bodies {
		if !b.Enabled() {
			continue
		}
		for _, c := range b.colliders {
			if c.ComputeCollision && c.Enabled() {
				w.candidates = append(w.candidates, c)
			}
		}
	}
	for _, c := range w.colliders {
		if c.owner != nil {
			logger.Debug("standalone collider gained an owner; skipping",
				zap.String("collider", c.Name))
			continue
		}
		if c.ComputeCollision && c.Enabled() {
			w.candidates = append(w.candidates, c)
		}
	}
}
