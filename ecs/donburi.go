package ecs

import (
	"github.com/phanxgames/collide"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// NotificationEventType is the Donburi event type for collide notifications.
// Subscribe to this in your ECS systems to receive collision, collision
// ended, overlap and intersection records.
var NotificationEventType = events.NewEventType[collide.Notification]()

type donburiSink struct {
	world donburi.World
	kinds map[collide.NotificationKind]bool
}

// NewDonburiSink creates a NotificationSink backed by a Donburi world.
// Notifications are published to NotificationEventType and can be consumed
// with events.Subscribe and ProcessEvents. When kinds is non-empty only
// those kinds are published.
func NewDonburiSink(world donburi.World, kinds ...collide.NotificationKind) collide.NotificationSink {
	s := &donburiSink{world: world}
	if len(kinds) > 0 {
		s.kinds = make(map[collide.NotificationKind]bool, len(kinds))
		for _, k := range kinds {
			s.kinds[k] = true
		}
	}
	return s
}

func (s *donburiSink) Emit(n collide.Notification) {
	if s.kinds != nil && !s.kinds[n.Kind] {
		return
	}
	NotificationEventType.Publish(s.world, n)
}
