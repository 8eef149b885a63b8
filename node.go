package collide

// nodeIDCounter is a plain counter; collide is single-threaded.
var nodeIDCounter uint32

func nextNodeID() uint32 {
	nodeIDCounter++
	return nodeIDCounter
}

// ShapeNode is the transformable base shared by ShapeContainer and Collider.
// It owns a local Offset relative to whatever parent transform it is driven
// with, the current and previous world transforms, and a cached world-space
// copy of its local shape definition.
//
// The local shape is given in relative units: its points are scaled by the
// world transform's ScaledSize, rotated and translated to produce the world
// shape the query functions see.
type ShapeNode struct {
	// Identity
	ID   uint32
	Name string

	// Offset is this node's transform relative to its parent.
	Offset Transform2D

	// Moves, Rotates and Scales gate which Offset components apply.
	Moves   bool
	Rotates bool
	Scales  bool

	// Computed (unexported, written only by UpdateTransform / InitializeShape)
	cur         Transform2D
	prev        Transform2D
	initialized bool

	local      Shape
	world      Shape
	shapeDirty bool

	// Per-node hooks (nil by default; zero cost when unused)
	OnTransformChanged func(changed bool)
	OnUpdate           func(dt float64)
	OnDraw             func()
}

// nodeDefaults sets the common default field values shared by all constructors.
func nodeDefaults(n *ShapeNode, name string, local Shape) {
	n.ID = nextNodeID()
	n.Name = name
	n.Offset = IdentityTransform
	n.Moves = true
	n.Rotates = true
	n.Scales = true
	n.cur = IdentityTransform
	n.prev = IdentityTransform
	if local == nil {
		local = noShape{}
	}
	n.local = local
	n.world = noShape{}
	n.shapeDirty = true
}

// NewShapeNode creates a detached node around a relative local shape.
// A nil shape gives a node of kind None.
func NewShapeNode(name string, local Shape) *ShapeNode {
	n := &ShapeNode{}
	nodeDefaults(n, name, local)
	return n
}

// --- Lifecycle ---

// InitializeShape sets both the current and previous transform from parent
// and builds the world shape.
func (n *ShapeNode) InitializeShape(parent Transform2D) {
	n.cur = Compose(parent, n.Offset, n.Moves, n.Rotates, n.Scales)
	n.prev = n.cur
	n.initialized = true
	n.RecalculateShape()
}

// UpdateShape advances one frame: it recomputes the transform from parent
// and then calls OnUpdate.
func (n *ShapeNode) UpdateShape(dt float64, parent Transform2D) {
	n.UpdateTransform(parent)
	if n.OnUpdate != nil {
		n.OnUpdate(dt)
	}
}

// DrawShape calls OnDraw. It has no geometric side effect.
func (n *ShapeNode) DrawShape() {
	if n.OnDraw != nil {
		n.OnDraw()
	}
}

// RecalculateShape rebuilds the cached world shape from the current transform.
func (n *ShapeNode) RecalculateShape() {
	n.world = TransformShape(n.local, n.cur)
	n.shapeDirty = false
}

// UpdateTransform is the only writer of the current and previous transforms.
// It saves the current transform as previous, recombines parent with Offset
// and reports whether the result differs from the old value. The world shape
// is only rebuilt when something changed.
func (n *ShapeNode) UpdateTransform(parent Transform2D) bool {
	n.prev = n.cur
	n.cur = Compose(parent, n.Offset, n.Moves, n.Rotates, n.Scales)
	changed := n.cur != n.prev
	if changed || n.shapeDirty {
		n.RecalculateShape()
	}
	if n.OnTransformChanged != nil {
		n.OnTransformChanged(changed)
	}
	return changed
}

// --- Accessors ---

// CurTransform returns this frame's world transform.
func (n *ShapeNode) CurTransform() Transform2D { return n.cur }

// PrevTransform returns the previous frame's world transform.
func (n *ShapeNode) PrevTransform() Transform2D { return n.prev }

// Initialized reports whether InitializeShape has run.
func (n *ShapeNode) Initialized() bool { return n.initialized }

// LocalShape returns the relative shape definition.
func (n *ShapeNode) LocalShape() Shape { return n.local }

// SetLocalShape replaces the relative shape definition. The world shape is
// rebuilt on the next transform update, or immediately by RecalculateShape.
func (n *ShapeNode) SetLocalShape(s Shape) {
	if s == nil {
		s = noShape{}
	}
	n.local = s
	n.shapeDirty = true
}

// WorldShape returns the cached world-space shape.
func (n *ShapeNode) WorldShape() Shape { return n.world }

// LocalToWorld converts a relative local point to world space.
func (n *ShapeNode) LocalToWorld(p Vec2) Vec2 { return n.cur.Apply(p) }

// WorldToLocal converts a world-space point to relative local coordinates.
func (n *ShapeNode) WorldToLocal(p Vec2) Vec2 { return n.cur.Unapply(p) }

// BoundingBox returns the box enclosing the world shape.
func (n *ShapeNode) BoundingBox() Rect { return BoundingBox(n.world) }

// --- Shape ---

func (n *ShapeNode) ShapeType() ShapeType    { return n.world.ShapeType() }
func (n *ShapeNode) CircleShape() Circle     { return n.world.CircleShape() }
func (n *ShapeNode) SegmentShape() Segment   { return n.world.SegmentShape() }
func (n *ShapeNode) TriangleShape() Triangle { return n.world.TriangleShape() }
func (n *ShapeNode) QuadShape() Quad         { return n.world.QuadShape() }
func (n *ShapeNode) RectShape() Rect         { return n.world.RectShape() }
func (n *ShapeNode) PolygonShape() Polygon   { return n.world.PolygonShape() }
func (n *ShapeNode) PolylineShape() Polyline { return n.world.PolylineShape() }
