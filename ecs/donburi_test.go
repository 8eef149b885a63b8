package ecs

import (
	"testing"

	"github.com/phanxgames/collide"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

func TestNewDonburiSink(t *testing.T) {
	world := donburi.NewWorld()
	sink := NewDonburiSink(world)
	if sink == nil {
		t.Fatal("NewDonburiSink returned nil")
	}
}

func TestDonburiSink_Emit(t *testing.T) {
	world := donburi.NewWorld()
	sink := NewDonburiSink(world)

	var received []collide.Notification
	NotificationEventType.Subscribe(world, func(w donburi.World, n collide.Notification) {
		received = append(received, n)
	})

	a := collide.NewCollider("a", collide.Circle{Radius: 1})
	b := collide.NewCollider("b", collide.Circle{Radius: 1})
	sink.Emit(collide.Notification{Kind: collide.NotifyCollision, Collider: a, Other: b})
	sink.Emit(collide.Notification{Kind: collide.NotifyCollisionEnded, Collider: a, Other: b})

	// Events are queued; process them.
	NotificationEventType.ProcessEvents(world)

	if len(received) != 2 {
		t.Fatalf("expected 2 events, got %d", len(received))
	}
	if received[0].Kind != collide.NotifyCollision || received[0].Collider != a {
		t.Errorf("event 0: %+v", received[0])
	}
	if received[1].Kind != collide.NotifyCollisionEnded {
		t.Errorf("event 1 kind = %v, want CollisionEnded", received[1].Kind)
	}
}

func TestDonburiSink_KindFilter(t *testing.T) {
	world := donburi.NewWorld()
	sink := NewDonburiSink(world, collide.NotifyCollisionEnded)

	var count int
	NotificationEventType.Subscribe(world, func(w donburi.World, n collide.Notification) {
		count++
	})

	sink.Emit(collide.Notification{Kind: collide.NotifyCollision})
	sink.Emit(collide.Notification{Kind: collide.NotifyCollisionEnded})
	NotificationEventType.ProcessEvents(world)

	if count != 1 {
		t.Errorf("expected 1 filtered event, got %d", count)
	}
}

func TestDonburiSink_DrivenByWorld(t *testing.T) {
	world := donburi.NewWorld()

	cw := collide.NewWorld()
	cw.SetSink(NewDonburiSink(world))

	a := collide.NewCollider("a", collide.Circle{Radius: 1})
	b := collide.NewCollider("b", collide.Circle{Center: collide.Vec2{X: 1}, Radius: 1})
	cw.AddCollider(a)
	cw.AddCollider(b)

	var kinds []collide.NotificationKind
	NotificationEventType.Subscribe(world, func(w donburi.World, n collide.Notification) {
		kinds = append(kinds, n.Kind)
	})

	cw.Update(1.0 / 60)
	events.ProcessAllEvents(world)

	// Each collider resolves its own side of the contact.
	if len(kinds) != 2 {
		t.Fatalf("expected 2 events, got %d (%v)", len(kinds), kinds)
	}
	for _, k := range kinds {
		if k != collide.NotifyCollision {
			t.Errorf("kind = %v, want Collision", k)
		}
	}
}

func TestDonburiSink_MultipleSubscribers(t *testing.T) {
	world := donburi.NewWorld()
	sink := NewDonburiSink(world)

	var count1, count2 int
	NotificationEventType.Subscribe(world, func(w donburi.World, n collide.Notification) {
		count1++
	})
	NotificationEventType.Subscribe(world, func(w donburi.World, n collide.Notification) {
		count2++
	})

	sink.Emit(collide.Notification{Kind: collide.NotifyOverlap})
	events.ProcessAllEvents(world)

	if count1 != 1 || count2 != 1 {
		t.Errorf("expected both subscribers called once, got %d and %d", count1, count2)
	}
}
