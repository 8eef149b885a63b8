package collide

import "go.uber.org/zap"

// ShapeContainer is a ShapeNode that owns an ordered list of child
// containers and propagates its world transform to them every frame.
//
// Traversal is pre-order in every phase: the container settles itself, then
// visits children in insertion order, firing the per-child hook after each,
// and finally fires the phase's finished hook exactly once.
type ShapeContainer struct {
	ShapeNode

	// Hierarchy
	parent   *ShapeContainer
	children []*ShapeContainer

	// Structural hooks
	OnChildAdded   func(child *ShapeContainer)
	OnChildRemoved func(child *ShapeContainer)

	// Traversal hooks
	OnChildInitialized func(child *ShapeContainer)
	OnInitialized      func()
	OnChildUpdated     func(child *ShapeContainer)
	OnUpdateFinished   func(dt float64)
	OnChildDrawn       func(child *ShapeContainer)
	OnDrawFinished     func()
}

// NewShapeContainer creates a detached container around a relative local
// shape. A nil shape gives a pure grouping node of kind None.
func NewShapeContainer(name string, local Shape) *ShapeContainer {
	c := &ShapeContainer{}
	nodeDefaults(&c.ShapeNode, name, local)
	return c
}

// --- Lifecycle ---

// InitializeShape initializes this container from parent, then every child
// from this container's transform, then fires OnInitialized.
func (c *ShapeContainer) InitializeShape(parent Transform2D) {
	c.ShapeNode.InitializeShape(parent)
	for _, child := range c.children {
		child.InitializeShape(c.cur)
		if c.OnChildInitialized != nil {
			c.OnChildInitialized(child)
		}
	}
	if c.OnInitialized != nil {
		c.OnInitialized()
	}
}

// UpdateShape updates this container's transform and OnUpdate hook, then each
// child subtree in order, then fires OnUpdateFinished.
func (c *ShapeContainer) UpdateShape(dt float64, parent Transform2D) {
	c.ShapeNode.UpdateShape(dt, parent)
	for _, child := range c.children {
		child.UpdateShape(dt, c.cur)
		if c.OnChildUpdated != nil {
			c.OnChildUpdated(child)
		}
	}
	if c.OnUpdateFinished != nil {
		c.OnUpdateFinished(dt)
	}
}

// DrawShape fires this container's OnDraw, then draws each child subtree in
// order, then fires OnDrawFinished.
func (c *ShapeContainer) DrawShape() {
	c.ShapeNode.DrawShape()
	for _, child := range c.children {
		child.DrawShape()
		if c.OnChildDrawn != nil {
			c.OnChildDrawn(child)
		}
	}
	if c.OnDrawFinished != nil {
		c.OnDrawFinished()
	}
}

// --- Tree manipulation ---

// AddChild appends child to this container's children and initializes it
// with this container's current transform. If child has another parent it is
// removed from there first, firing that parent's OnChildRemoved.
//
// Returns false, leaving everything unchanged, when child is nil, already a
// child of this container, or an ancestor of it (cycle).
func (c *ShapeContainer) AddChild(child *ShapeContainer) bool {
	if child == nil {
		return false
	}
	if child.parent == c {
		logger.Debug("AddChild: already a child",
			zap.String("parent", c.Name), zap.String("child", child.Name))
		return false
	}
	if isAncestor(child, c) {
		logger.Debug("AddChild: would create a cycle",
			zap.String("parent", c.Name), zap.String("child", child.Name))
		return false
	}
	if child.parent != nil {
		child.parent.RemoveChild(child)
	}
	child.parent = c
	c.children = append(c.children, child)
	if c.OnChildAdded != nil {
		c.OnChildAdded(child)
	}
	child.InitializeShape(c.cur)
	if c.OnChildInitialized != nil {
		c.OnChildInitialized(child)
	}
	if globalDebug {
		debugCheckTreeDepth(child)
		debugCheckChildCount(c)
	}
	return true
}

// RemoveChild detaches child from this container and fires OnChildRemoved.
// Returns false when child's parent is not this container.
func (c *ShapeContainer) RemoveChild(child *ShapeContainer) bool {
	if child == nil || child.parent != c {
		if child != nil {
			logger.Debug("RemoveChild: not a child",
				zap.String("parent", c.Name), zap.String("child", child.Name))
		}
		return false
	}
	c.removeChildByPtr(child)
	child.parent = nil
	if c.OnChildRemoved != nil {
		c.OnChildRemoved(child)
	}
	return true
}

// RemoveChildren detaches every child, firing OnChildRemoved for each.
func (c *ShapeContainer) RemoveChildren() {
	children := c.children
	c.children = nil
	for _, child := range children {
		child.parent = nil
		if c.OnChildRemoved != nil {
			c.OnChildRemoved(child)
		}
	}
}

// ChangeParent asks newParent to adopt this container. A nil newParent
// detaches it from its current parent.
func (c *ShapeContainer) ChangeParent(newParent *ShapeContainer) bool {
	if newParent == nil {
		if c.parent == nil {
			return false
		}
		return c.parent.RemoveChild(c)
	}
	return newParent.AddChild(c)
}

// RemoveFromParent detaches this container from its parent.
// No-op if this container has no parent.
func (c *ShapeContainer) RemoveFromParent() {
	if c.parent == nil {
		return
	}
	c.parent.RemoveChild(c)
}

// Parent returns the container this one is attached to, or nil.
func (c *ShapeContainer) Parent() *ShapeContainer {
	return c.parent
}

// Children returns the child list. The returned slice MUST NOT be mutated by the caller.
func (c *ShapeContainer) Children() []*ShapeContainer {
	return c.children
}

// NumChildren returns the number of children.
func (c *ShapeContainer) NumChildren() int {
	return len(c.children)
}

// ChildAt returns the child at the given index.
func (c *ShapeContainer) ChildAt(index int) *ShapeContainer {
	return c.children[index]
}

// SubtreeBounds returns the union of the bounding boxes of this container
// and all its descendants. Kinds of None contribute nothing.
func (c *ShapeContainer) SubtreeBounds() Rect {
	var bounds Rect
	if c.ShapeType() != ShapeTypeNone {
		bounds = c.BoundingBox()
	}
	for _, child := range c.children {
		bounds = bounds.Union(child.SubtreeBounds())
	}
	return bounds
}

// --- Helpers ---

// isAncestor reports whether candidate is node or one of its ancestors.
func isAncestor(candidate, node *ShapeContainer) bool {
	for p := node; p != nil; p = p.parent {
		if p == candidate {
			return true
		}
	}
	return false
}

// removeChildByPtr removes child from c.children without clearing child.parent.
// Uses copy+nil to avoid retaining a dangling pointer in the backing array.
func (c *ShapeContainer) removeChildByPtr(child *ShapeContainer) {
	for i, ch := range c.children {
		if ch == child {
			copy(c.children[i:], c.children[i+1:])
			c.children[len(c.children)-1] = nil
			c.children = c.children[:len(c.children)-1]
			return
		}
	}
}
