package collide

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recorder collects every drained notification.
type recorder struct {
	got []Notification
}

func (r *recorder) Emit(n Notification) { r.got = append(r.got, n) }

func (r *recorder) reset() { r.got = r.got[:0] }

func (r *recorder) ofKind(k NotificationKind) []Notification {
	var out []Notification
	for _, n := range r.got {
		if n.Kind == k {
			out = append(out, n)
		}
	}
	return out
}

func newRecordedWorld() (*World, *recorder) {
	w := NewWorld()
	rec := &recorder{}
	w.SetSink(rec)
	return w, rec
}

func TestWorldFirstContactThenContinuing(t *testing.T) {
	w, rec := newRecordedWorld()
	a := NewCollider("a", Circle{Radius: 1})
	b := NewCollider("b", Circle{Radius: 1})
	b.Offset.Position = Vec2{X: 1.5}
	require.True(t, w.AddCollider(a))
	require.True(t, w.AddCollider(b))

	w.Update(1.0 / 60)
	cols := rec.ofKind(NotifyCollision)
	require.Len(t, cols, 2)
	assert.Same(t, a, cols[0].Collider)
	assert.Equal(t, CollisionObject(b), cols[0].Other)
	assert.Same(t, b, cols[1].Collider)
	for _, n := range cols {
		assert.True(t, n.Info.FirstContact())
	}

	rec.reset()
	w.Update(1.0 / 60)
	cols = rec.ofKind(NotifyCollision)
	require.Len(t, cols, 2)
	for _, n := range cols {
		assert.False(t, n.Info.FirstContact())
	}
	assert.Empty(t, rec.ofKind(NotifyCollisionEnded))
}

func TestWorldCollisionEnded(t *testing.T) {
	w, rec := newRecordedWorld()
	a := NewCollider("a", Circle{Radius: 1})
	b := NewCollider("b", Circle{Radius: 1})
	b.Offset.Position = Vec2{X: 1.5}
	w.AddCollider(a)
	w.AddCollider(b)
	w.Update(1.0 / 60)

	rec.reset()
	b.Offset.Position = Vec2{X: 10}
	w.Update(1.0 / 60)
	ended := rec.ofKind(NotifyCollisionEnded)
	require.Len(t, ended, 2)
	assert.Same(t, a, ended[0].Collider)
	assert.Equal(t, CollisionObject(b), ended[0].Other)
	assert.Same(t, b, ended[1].Collider)
	assert.Empty(t, rec.ofKind(NotifyCollision))

	rec.reset()
	w.Update(1.0 / 60)
	assert.Empty(t, rec.got, "ended fires only once")
}

func TestWorldDisablingEndsContact(t *testing.T) {
	w, rec := newRecordedWorld()
	body := NewBody("body")
	c := NewCollider("c", Circle{Radius: 1})
	body.AddCollider(c)
	w.AddBody(body)
	query := NewCollider("query", Circle{Radius: 1})
	w.AddCollider(query)
	w.Update(1.0 / 60)
	require.Len(t, rec.ofKind(NotifyCollision), 2)

	rec.reset()
	body.SetEnabled(false)
	w.Update(1.0 / 60)
	ended := rec.ofKind(NotifyCollisionEnded)
	require.Len(t, ended, 2)
	assert.Same(t, c, ended[0].Collider)
	assert.Same(t, query, ended[1].Collider)
	assert.Equal(t, CollisionObject(body), ended[1].Other)
}

func TestWorldSkipsSameObject(t *testing.T) {
	w, rec := newRecordedWorld()
	body := NewBody("body")
	body.AddCollider(NewCollider("a", Circle{Radius: 1}))
	body.AddCollider(NewCollider("b", Circle{Radius: 1}))
	w.AddBody(body)

	w.Update(1.0 / 60)
	assert.Empty(t, rec.got)
	assert.Equal(t, 0, w.Stats().PairsTested)
}

func TestWorldLayerMaskFiltering(t *testing.T) {
	w, rec := newRecordedWorld()
	a := NewCollider("a", Circle{Radius: 1})
	b := NewCollider("b", Circle{Radius: 1})
	b.CollisionLayer = Layer(2)
	// b reacts to a; a does not react to b.
	b.CollisionMask = Layer(0)
	w.AddCollider(a)
	w.AddCollider(b)

	w.Update(1.0 / 60)
	cols := rec.ofKind(NotifyCollision)
	require.Len(t, cols, 1)
	assert.Same(t, b, cols[0].Collider)
}

func TestWorldSkipsPassiveColliders(t *testing.T) {
	w, rec := newRecordedWorld()
	a := NewCollider("a", Circle{Radius: 1})
	b := NewCollider("b", Circle{Radius: 1})
	b.ComputeCollision = false
	w.AddCollider(a)
	w.AddCollider(b)

	w.Update(1.0 / 60)
	assert.Empty(t, rec.got)
	assert.Equal(t, 1, w.Stats().Colliders)
}

func TestWorldGroupsCollisionsPerObject(t *testing.T) {
	w, rec := newRecordedWorld()
	body := NewBody("body")
	left := NewCollider("left", Circle{Center: Vec2{X: -1}, Radius: 0.75})
	right := NewCollider("right", Circle{Center: Vec2{X: 1}, Radius: 0.75})
	body.AddCollider(left)
	body.AddCollider(right)
	w.AddBody(body)
	query := NewCollider("query", Rect{X: -1, Y: -1, Width: 2, Height: 2})
	w.AddCollider(query)

	w.Update(1.0 / 60)

	var queryRecords []Notification
	for _, n := range rec.ofKind(NotifyCollision) {
		if n.Collider == query {
			queryRecords = append(queryRecords, n)
		}
	}
	require.Len(t, queryRecords, 1, "one record per other object")
	info := queryRecords[0].Info
	assert.Equal(t, CollisionObject(body), info.Other)
	require.Len(t, info.Collisions, 2)
	assert.Same(t, left, info.Collisions[0].Other)
	assert.Same(t, right, info.Collisions[1].Other)
	assert.Len(t, rec.ofKind(NotifyCollision), 3)
}

func TestWorldComputesIntersections(t *testing.T) {
	w, rec := newRecordedWorld()
	a := NewCollider("a", Circle{Radius: 1})
	a.ComputeIntersections = true
	a.AdvancedCollisionNotifications = true
	b := NewCollider("b", Circle{Radius: 1})
	b.Offset.Position = Vec2{X: 1}
	b.AdvancedCollisionNotifications = true
	w.AddCollider(a)
	w.AddCollider(b)

	w.Update(1.0 / 60)

	inter := rec.ofKind(NotifyIntersection)
	require.Len(t, inter, 1)
	assert.Same(t, a, inter[0].Collider)
	assert.Len(t, inter[0].Collision.Points, 2)
	assert.True(t, inter[0].Collision.FirstContact)

	over := rec.ofKind(NotifyOverlap)
	require.Len(t, over, 1)
	assert.Same(t, b, over[0].Collider)
	assert.Nil(t, over[0].Collision.Points)

	// Advanced records precede the aggregate record of the same collider.
	require.Len(t, rec.got, 4)
	assert.Equal(t, []NotificationKind{NotifyIntersection, NotifyCollision, NotifyOverlap, NotifyCollision}, kinds(rec.got))
}

func TestWorldVelocityInInformation(t *testing.T) {
	w, rec := newRecordedWorld()
	mover := NewBody("mover")
	mover.LinearVelocity = Vec2{X: 6}
	mover.AddCollider(NewCollider("m", Circle{Radius: 1}))
	w.AddBody(mover)
	wall := NewCollider("wall", Rect{X: 0.5, Y: -5, Width: 1, Height: 10})
	w.AddCollider(wall)

	w.Update(0.1)
	require.NotEmpty(t, rec.got)
	for _, n := range rec.got {
		if n.Collider == wall {
			assert.Equal(t, Vec2{X: 6}, n.Info.OtherVelocity)
			assert.Equal(t, Vec2{}, n.Info.SelfVelocity)
		}
	}
	assertVec(t, "mover moved", mover.Transform.Position, Vec2{X: 0.6})
}

func TestWorldStatsAndFrameHook(t *testing.T) {
	w, _ := newRecordedWorld()
	a := NewCollider("a", Circle{Radius: 1})
	b := NewCollider("b", Circle{Radius: 1})
	w.AddCollider(a)
	w.AddCollider(b)

	var seen []FrameStats
	w.OnFrameStats = func(s FrameStats) { seen = append(seen, s) }

	w.Update(1.0 / 60)
	s := w.Stats()
	assert.Equal(t, uint64(0), s.Frame)
	assert.Equal(t, 2, s.Colliders)
	assert.Equal(t, 2, s.PairsTested)
	assert.Equal(t, 2, s.Overlaps)
	assert.Equal(t, 2, s.Started)
	assert.Equal(t, 0, s.Ended)
	assert.Equal(t, 2, s.Notifications)
	assert.Equal(t, uint64(1), w.Frame())

	b.Offset.Position = Vec2{X: 10}
	w.Update(1.0 / 60)
	assert.Equal(t, 2, w.Stats().Ended)
	require.Len(t, seen, 2)
	assert.Equal(t, uint64(1), seen[1].Frame)
}

func TestWorldNilSinkStillDrains(t *testing.T) {
	w := NewWorld()
	w.AddCollider(NewCollider("a", Circle{Radius: 1}))
	w.AddCollider(NewCollider("b", Circle{Radius: 1}))
	w.Update(1.0 / 60)
	assert.Equal(t, 0, w.Outbox().Len())
	assert.Equal(t, 2, w.Stats().Notifications)
}

func TestWorldMembership(t *testing.T) {
	w := NewWorld()

	root := NewShapeContainer("root", nil)
	child := NewShapeContainer("child", nil)
	root.AddChild(child)
	assert.True(t, w.AddTree(root))
	assert.False(t, w.AddTree(root), "duplicate")
	assert.False(t, w.AddTree(child), "has a parent")
	assert.True(t, root.Initialized())

	body := NewBody("b")
	owned := NewCollider("owned", nil)
	body.AddCollider(owned)
	assert.True(t, w.AddBody(body))
	assert.False(t, w.AddBody(body))
	assert.False(t, w.AddCollider(owned), "owned colliders belong to their body")

	assert.True(t, w.RemoveTree(root))
	assert.False(t, w.RemoveTree(root))
	assert.True(t, w.RemoveBody(body))
	assert.Empty(t, w.Bodies())
	assert.Empty(t, w.Trees())
}

func TestWorldDrawOrder(t *testing.T) {
	w := NewWorld()
	var order []string

	tree := NewShapeContainer("tree", nil)
	tree.OnDraw = func() { order = append(order, "tree") }
	w.AddTree(tree)

	body := NewBody("body")
	bc := NewCollider("bc", nil)
	bc.OnDraw = func() { order = append(order, "body") }
	body.AddCollider(bc)
	w.AddBody(body)

	lone := NewCollider("lone", nil)
	lone.OnDraw = func() { order = append(order, "lone") }
	w.AddCollider(lone)

	w.Draw()
	assert.Equal(t, []string{"tree", "body", "lone"}, order)
}

func BenchmarkWorldUpdate100(b *testing.B) {
	w := NewWorld()
	for i := 0; i < 100; i++ {
		c := NewCollider("c", Circle{Radius: 1})
		c.Offset.Position = Vec2{X: float64(i%10) * 1.5, Y: float64(i/10) * 1.5}
		w.AddCollider(c)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		w.Update(1.0 / 60)
	}
}
