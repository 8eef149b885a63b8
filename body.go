package collide

import "go.uber.org/zap"

// CollisionObject is anything that owns colliders and moves them as a unit.
type CollisionObject interface {
	Enabled() bool
	Velocity() Vec2
	HasColliders() bool
	Colliders() []*Collider
}

// colliderRemover is implemented by owners that can detach a collider.
type colliderRemover interface {
	RemoveCollider(c *Collider) bool
}

// Body is the in-module CollisionObject. It carries a world transform and a
// velocity and drives its colliders' transforms from that transform.
type Body struct {
	ID   uint32
	Name string

	// Transform is the body's world transform, handed to every collider as
	// its parent transform.
	Transform Transform2D
	// LinearVelocity is reported to colliders and resolution records. Update
	// integrates it into Transform.Position.
	LinearVelocity Vec2

	enabled   bool
	colliders []*Collider

	// OnUpdate is called after the body has moved and its colliders have
	// been updated.
	OnUpdate func(dt float64)
}

// NewBody creates an enabled body at UnitTransform.
func NewBody(name string) *Body {
	return &Body{
		ID:        nextNodeID(),
		Name:      name,
		Transform: UnitTransform,
		enabled:   true,
	}
}

// Enabled reports whether the body and thus its colliders take part in queries.
func (b *Body) Enabled() bool { return b.enabled }

// SetEnabled toggles the body.
func (b *Body) SetEnabled(enabled bool) { b.enabled = enabled }

// Velocity returns LinearVelocity.
func (b *Body) Velocity() Vec2 { return b.LinearVelocity }

// HasColliders reports whether at least one collider is attached.
func (b *Body) HasColliders() bool { return len(b.colliders) > 0 }

// Colliders returns the attached colliders. The returned slice MUST NOT be mutated by the caller.
func (b *Body) Colliders() []*Collider { return b.colliders }

// AddCollider attaches c. If another owner holds c and can release it, c is
// detached from there first. The ownership hooks fire through SetOwner, and c
// is initialized from the body's transform. Returns false if c is nil or
// already attached here.
func (b *Body) AddCollider(c *Collider) bool {
	if c == nil {
		return false
	}
	if c.owner == CollisionObject(b) {
		logger.Debug("AddCollider: already attached",
			zap.String("body", b.Name), zap.String("collider", c.Name))
		return false
	}
	if prev, ok := c.owner.(colliderRemover); ok {
		prev.RemoveCollider(c)
	}
	b.colliders = append(b.colliders, c)
	c.SetOwner(b)
	c.InitializeShape(b.Transform)
	return true
}

// RemoveCollider detaches c and clears its owner. Returns false if c is not
// attached to this body.
func (b *Body) RemoveCollider(c *Collider) bool {
	if c == nil || c.owner != CollisionObject(b) {
		return false
	}
	for i, ch := range b.colliders {
		if ch == c {
			copy(b.colliders[i:], b.colliders[i+1:])
			b.colliders[len(b.colliders)-1] = nil
			b.colliders = b.colliders[:len(b.colliders)-1]
			break
		}
	}
	c.SetOwner(nil)
	return true
}

// Update moves the body by LinearVelocity*dt, then updates every collider
// against the new transform.
func (b *Body) Update(dt float64) {
	if b.LinearVelocity != (Vec2{}) {
		b.Transform.Position.X += b.LinearVelocity.X * dt
		b.Transform.Position.Y += b.LinearVelocity.Y * dt
	}
	for _, c := range b.colliders {
		c.UpdateShape(dt, b.Transform)
	}
	if b.OnUpdate != nil {
		b.OnUpdate(dt)
	}
}

// Draw calls DrawShape on every collider.
func (b *Body) Draw() {
	for _, c := range b.colliders {
		c.DrawShape()
	}
}

// BoundingBox returns the union of the enabled colliders' bounds.
func (b *Body) BoundingBox() Rect {
	var r Rect
	for _, c := range b.colliders {
		r = r.Union(c.BoundingBox())
	}
	return r
}
