package collide

import "go.uber.org/zap"

// Collider is a ShapeNode that takes part in collision detection. It is
// referenced by at most one CollisionObject at a time; the owner holds the
// authoritative collider list and drives attach and detach through SetOwner.
//
// A disabled collider answers every query as if it were absent: no overlap,
// no intersection points, no containment, zero distance and bounds.
type Collider struct {
	ShapeNode

	owner   CollisionObject
	enabled bool

	// CollisionLayer is the single layer bit this collider lives on.
	CollisionLayer BitFlag
	// CollisionMask is the set of layers this collider reacts to.
	CollisionMask BitFlag

	// ComputeCollision opts the collider into World's pairwise pass.
	ComputeCollision bool
	// ComputeIntersections makes World gather contact points and selects
	// intersection records over overlap records in advanced mode.
	ComputeIntersections bool
	// AdvancedCollisionNotifications adds one overlap or intersection record
	// per collision ahead of the aggregate collision record.
	AdvancedCollisionNotifications bool

	// Ownership hooks. Each fires exactly once per owner transition.
	OnAddedToCollisionBody     func(owner CollisionObject)
	OnRemovedFromCollisionBody func(owner CollisionObject)
}

// NewCollider creates an enabled, unowned collider around a relative local
// shape, on layer 0 and reacting to layer 0.
func NewCollider(name string, local Shape) *Collider {
	c := &Collider{
		enabled:          true,
		CollisionLayer:   defaultCollisionLayer,
		CollisionMask:    defaultCollisionMask,
		ComputeCollision: true,
	}
	nodeDefaults(&c.ShapeNode, name, local)
	return c
}

// --- State ---

// Enabled reports the effective flag: the collider's own flag and, if it is
// owned, the owner's.
func (c *Collider) Enabled() bool {
	if !c.enabled {
		return false
	}
	return c.owner == nil || c.owner.Enabled()
}

// SetEnabled sets the collider's own flag.
func (c *Collider) SetEnabled(enabled bool) {
	c.enabled = enabled
}

// Owner returns the CollisionObject referencing this collider, or nil.
func (c *Collider) Owner() CollisionObject {
	return c.owner
}

// Velocity returns the owner's velocity, or zero when unowned.
func (c *Collider) Velocity() Vec2 {
	if c.owner == nil {
		return Vec2{}
	}
	return c.owner.Velocity()
}

// SetOwner records owner as this collider's CollisionObject and reports
// whether that was a change. On a change OnRemovedFromCollisionBody fires for
// the old owner (if any), then OnAddedToCollisionBody for the new one (if
// any). Reassigning the current owner does nothing. Owners are compared
// with ==, so implementations should be pointer types.
//
// SetOwner does not touch the owner's collider list. Use Body.AddCollider and
// Body.RemoveCollider, which call it as part of attach and detach.
func (c *Collider) SetOwner(owner CollisionObject) bool {
	if c.owner == owner {
		return false
	}
	old := c.owner
	c.owner = owner
	if old != nil && c.OnRemovedFromCollisionBody != nil {
		c.OnRemovedFromCollisionBody(old)
	}
	if owner != nil && c.OnAddedToCollisionBody != nil {
		c.OnAddedToCollisionBody(owner)
	}
	logger.Debug("collider owner changed", zap.String("collider", c.Name))
	return true
}

// HasColliders is always true: a collider stands in as its own
// CollisionObject when it has no owner.
func (c *Collider) HasColliders() bool { return true }

// Colliders returns a one-element list holding c.
func (c *Collider) Colliders() []*Collider { return []*Collider{c} }

// Object returns the owner, or c itself when unowned.
func (c *Collider) Object() CollisionObject {
	if c.owner == nil {
		return c
	}
	return c.owner
}

// CanCollideWith reports whether other's layer is in this collider's mask.
func (c *Collider) CanCollideWith(other *Collider) bool {
	if other == nil {
		return false
	}
	return c.CollisionMask.Has(other.CollisionLayer)
}

// --- Queries ---

// Overlap reports whether this collider's world shape shares any point with s.
func (c *Collider) Overlap(s Shape) bool { return Overlap(c, s) }

// Intersect returns the boundary crossings with s, or nil.
func (c *Collider) Intersect(s Shape) CollisionPoints { return Intersect(c, s) }

// ContainsShape reports whether s lies entirely inside this collider.
func (c *Collider) ContainsShape(s Shape) bool { return ContainsShape(c, s) }

// ContainsPoint reports whether p lies inside this collider.
func (c *Collider) ContainsPoint(p Vec2) bool { return ContainsPoint(c, p) }

// ClosestDistanceTo returns the nearest boundary points to s.
func (c *Collider) ClosestDistanceTo(s Shape) ClosestDistance { return ClosestDistanceTo(c, s) }

// ClosestPoint returns the boundary point nearest p.
func (c *Collider) ClosestPoint(p Vec2) ClosestPoint { return ClosestPointTo(c, p) }

// ClosestCollisionPoint returns ClosestPoint(p).Point.
func (c *Collider) ClosestCollisionPoint(p Vec2) CollisionPoint { return ClosestPointTo(c, p).Point }

// Project sweeps the world shape along v.
func (c *Collider) Project(v Vec2) Polygon { return Project(c, v) }

// ProjectN sweeps the world shape along v with an explicit circle resolution.
func (c *Collider) ProjectN(v Vec2, circleSegments int) Polygon {
	return ProjectN(c, v, circleSegments)
}

// BoundingBox returns the world bounds, or the zero Rect when disabled.
func (c *Collider) BoundingBox() Rect { return BoundingBox(c) }

// OverlapCollider is Overlap against another collider.
func (c *Collider) OverlapCollider(other *Collider) bool {
	if other == nil {
		return false
	}
	return Overlap(c, other)
}

// IntersectCollider is Intersect against another collider.
func (c *Collider) IntersectCollider(other *Collider) CollisionPoints {
	if other == nil {
		return nil
	}
	return Intersect(c, other)
}

// OverlapObject reports whether any of obj's colliders overlaps this one.
// It stops at the first hit.
func (c *Collider) OverlapObject(obj CollisionObject) bool {
	if obj == nil || !obj.HasColliders() {
		return false
	}
	for _, other := range obj.Colliders() {
		if c.OverlapCollider(other) {
			return true
		}
	}
	return false
}

// IntersectObject collects the intersection points with all of obj's
// colliders. Returns nil when none intersects.
func (c *Collider) IntersectObject(obj CollisionObject) CollisionPoints {
	if obj == nil || !obj.HasColliders() {
		return nil
	}
	var result CollisionPoints
	for _, other := range obj.Colliders() {
		pts := c.IntersectCollider(other)
		if len(pts) == 0 {
			continue
		}
		result = append(result, pts...)
	}
	return result
}

// --- Resolution ---

// ResolveCollision turns one frame's collisions against a single other
// object into notification records. In advanced mode each collision first
// yields an intersection record when ComputeIntersections is set, or an
// overlap record otherwise. One aggregate NotifyCollision record always
// follows.
func (c *Collider) ResolveCollision(info *CollisionInformation) []Notification {
	if info == nil {
		return nil
	}
	var out []Notification
	if c.AdvancedCollisionNotifications {
		kind := NotifyOverlap
		if c.ComputeIntersections {
			kind = NotifyIntersection
		}
		out = make([]Notification, 0, len(info.Collisions)+1)
		for i := range info.Collisions {
			out = append(out, Notification{
				Kind:      kind,
				Collider:  c,
				Other:     info.Other,
				Collision: &info.Collisions[i],
				Info:      info,
			})
		}
	}
	out = append(out, Notification{
		Kind:     NotifyCollision,
		Collider: c,
		Other:    info.Other,
		Info:     info,
	})
	return out
}

// ResolveCollisionEnded yields the record for a contact with other that
// existed last frame and no longer does.
func (c *Collider) ResolveCollisionEnded(other CollisionObject) []Notification {
	return []Notification{{
		Kind:     NotifyCollisionEnded,
		Collider: c,
		Other:    other,
	}}
}
