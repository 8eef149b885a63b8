// Package ecs provides ECS adapters for collide's notification outbox.
//
// The primary adapter is [NewDonburiSink], which forwards drained collision
// notifications into a [Donburi] world as typed events. Subscribe to
// [NotificationEventType] in your ECS systems to receive them.
//
// Usage:
//
//	sink := ecs.NewDonburiSink(world)
//	collisionWorld.SetSink(sink)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
