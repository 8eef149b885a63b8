// Package collide provides transformable 2D shapes, shape trees and the
// collision queries between them.
//
// Collide covers seven shape kinds (circle, segment, triangle, quad, rect,
// polygon, polyline), a parent-to-child transform hierarchy, a pairwise
// query engine (overlap, intersection points, containment, closest distance,
// projection, bounds) and a collider layer that turns frame results into
// notification records.
//
// # Quick start
//
// The simplest way to get started is a [World], which updates your shapes
// and runs the pairwise pass for you:
//
//	world := collide.NewWorld()
//	world.SetSink(collide.SinkFunc(func(n collide.Notification) {
//		fmt.Println(n.Kind, n.Collider.Name)
//	}))
//
//	player := collide.NewBody("player")
//	player.AddCollider(collide.NewCollider("hitbox", collide.Circle{Radius: 8}))
//	world.AddBody(player)
//
//	// each frame
//	world.Update(dt)
//
// For full control, skip the World and call the query functions directly:
//
//	a := collide.Circle{Center: collide.Vec2{X: 0, Y: 0}, Radius: 5}
//	b := collide.Rect{X: 3, Y: -1, Width: 4, Height: 2}
//	if collide.Overlap(a, b) {
//		pts := collide.Intersect(a, b)
//		_ = pts
//	}
//
// # Shapes and transforms
//
// Every queryable value implements [Shape]: it reports one [ShapeType] tag
// and converts itself with the matching accessor. Dispatch on the tag before
// trusting an accessor; the others return zero values.
//
// A [ShapeNode] holds a shape in relative units plus an Offset
// [Transform2D]. Each frame its world transform is composed from the parent
// transform and the offset, gated per component by Moves, Rotates and
// Scales, and the world shape is rebuilt only when the transform changed.
//
// [ShapeContainer] nodes form a tree. Initialize, update and draw are all
// pre-order: a container settles itself before its children, and the
// finished hooks fire once after every child.
//
//	root := collide.NewShapeContainer("ship", collide.Rect{Width: 1, Height: 1})
//	turret := collide.NewShapeContainer("turret", collide.Circle{Radius: 0.25})
//	turret.Offset.Position = collide.Vec2{X: 0.5}
//	root.AddChild(turret)
//	world.AddTree(root)
//
// # Colliders and notifications
//
// A [Collider] is a ShapeNode referenced by at most one [CollisionObject]
// such as a [Body]. Layer and mask filter which pairs are tested. Resolution
// does not call subscribers; it produces [Notification] records that the
// [World] collects in an [Outbox] and drains into a [NotificationSink].
// The ecs subpackage provides a sink that republishes them as [Donburi]
// events, debugdraw renders shapes with [Ebitengine], and telemetry
// records frame stats as CSV.
//
// Offset tweens (via [gween]) animate a node's Offset over time, and a
// [ScriptRunner] replays a JSON scenario against a World frame by frame.
//
// [Ebitengine]: https://ebitengine.org
// [gween]: https://github.com/tanema/gween
// [Donburi]: https://github.com/yohamta/donburi
package collide
