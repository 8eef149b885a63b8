package collide

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOutboxDrainInOrder(t *testing.T) {
	var o Outbox
	o.Push(Notification{Kind: NotifyOverlap}, Notification{Kind: NotifyCollision})
	o.Push(Notification{Kind: NotifyCollisionEnded})
	assert.Equal(t, 3, o.Len())
	assert.Len(t, o.Pending(), 3)

	var got []NotificationKind
	n := o.Drain(SinkFunc(func(n Notification) { got = append(got, n.Kind) }))
	assert.Equal(t, 3, n)
	assert.Equal(t, []NotificationKind{NotifyOverlap, NotifyCollision, NotifyCollisionEnded}, got)
	assert.Equal(t, 0, o.Len())
}

func TestOutboxDrainNilSinkDiscards(t *testing.T) {
	var o Outbox
	o.Push(Notification{}, Notification{})
	assert.Equal(t, 2, o.Drain(nil))
	assert.Equal(t, 0, o.Len())
}

func TestOutboxDrainDeliversReentrantPushes(t *testing.T) {
	var o Outbox
	o.Push(Notification{Kind: NotifyCollision})

	var got []NotificationKind
	sink := SinkFunc(func(n Notification) {
		got = append(got, n.Kind)
		if n.Kind == NotifyCollision {
			o.Push(Notification{Kind: NotifyCollisionEnded})
		}
	})
	assert.Equal(t, 2, o.Drain(sink))
	assert.Equal(t, []NotificationKind{NotifyCollision, NotifyCollisionEnded}, got)
	assert.Equal(t, 0, o.Len())
}

func TestOutboxFlush(t *testing.T) {
	var o Outbox
	o.Push(Notification{}, Notification{})
	o.Flush()
	assert.Equal(t, 0, o.Len())
	assert.Equal(t, 0, o.Drain(SinkFunc(func(Notification) { t.Fatal("flushed record delivered") })))
}

func TestNotificationKindString(t *testing.T) {
	assert.Equal(t, "Collision", NotifyCollision.String())
	assert.Equal(t, "CollisionEnded", NotifyCollisionEnded.String())
	assert.Equal(t, "Overlap", NotifyOverlap.String())
	assert.Equal(t, "Intersection", NotifyIntersection.String())
	assert.Equal(t, "Unknown", NotificationKind(99).String())
}

func TestCollisionInformationFirstContact(t *testing.T) {
	info := &CollisionInformation{Collisions: []Collision{{}, {}}}
	assert.False(t, info.FirstContact())
	info.Collisions[1].FirstContact = true
	assert.True(t, info.FirstContact())
}
