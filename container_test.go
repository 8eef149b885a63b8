package collide

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddChildSetsParentAndInitializes(t *testing.T) {
	root := NewShapeContainer("root", nil)
	root.Offset.Position = Vec2{X: 10}
	root.InitializeShape(UnitTransform)

	child := NewShapeContainer("child", Circle{Radius: 1})
	require.True(t, root.AddChild(child))

	assert.Same(t, root, child.Parent())
	assert.Equal(t, 1, root.NumChildren())
	assert.Same(t, child, root.ChildAt(0))
	assert.True(t, child.Initialized())
	assert.Equal(t, child.CurTransform(), child.PrevTransform())
	assertVec(t, "child center", child.CircleShape().Center, Vec2{X: 10})
}

func TestAddChildTwiceFails(t *testing.T) {
	root := NewShapeContainer("root", nil)
	child := NewShapeContainer("child", nil)
	require.True(t, root.AddChild(child))
	assert.False(t, root.AddChild(child))
	assert.Equal(t, 1, root.NumChildren())
	assert.False(t, root.AddChild(nil))
}

func TestAddChildRejectsCycle(t *testing.T) {
	a := NewShapeContainer("a", nil)
	b := NewShapeContainer("b", nil)
	c := NewShapeContainer("c", nil)
	require.True(t, a.AddChild(b))
	require.True(t, b.AddChild(c))

	assert.False(t, c.AddChild(a), "grandparent under grandchild")
	assert.False(t, a.AddChild(a), "self")
	assert.Nil(t, a.Parent())
	assert.Same(t, b, c.Parent())
}

func TestAddChildMovesFromOldParent(t *testing.T) {
	oldParent := NewShapeContainer("old", nil)
	newParent := NewShapeContainer("new", nil)
	child := NewShapeContainer("child", nil)
	require.True(t, oldParent.AddChild(child))

	var removed []*ShapeContainer
	oldParent.OnChildRemoved = func(c *ShapeContainer) { removed = append(removed, c) }

	require.True(t, newParent.AddChild(child))
	assert.Equal(t, []*ShapeContainer{child}, removed)
	assert.Equal(t, 0, oldParent.NumChildren())
	assert.Same(t, newParent, child.Parent())
}

func TestAddChildHookOrder(t *testing.T) {
	root := NewShapeContainer("root", nil)
	child := NewShapeContainer("child", nil)

	var order []string
	root.OnChildAdded = func(c *ShapeContainer) {
		assert.False(t, c.Initialized(), "added fires before initialization")
		order = append(order, "added")
	}
	root.OnChildInitialized = func(c *ShapeContainer) {
		assert.True(t, c.Initialized())
		order = append(order, "initialized")
	}

	root.AddChild(child)
	assert.Equal(t, []string{"added", "initialized"}, order)
}

func TestRemoveChild(t *testing.T) {
	root := NewShapeContainer("root", nil)
	a := NewShapeContainer("a", nil)
	b := NewShapeContainer("b", nil)
	root.AddChild(a)
	root.AddChild(b)

	assert.True(t, root.RemoveChild(a))
	assert.Nil(t, a.Parent())
	assert.Equal(t, []*ShapeContainer{b}, root.Children())
	assert.False(t, root.RemoveChild(a), "not a child anymore")
	assert.False(t, root.RemoveChild(nil))
}

func TestRemoveChildren(t *testing.T) {
	root := NewShapeContainer("root", nil)
	kids := []*ShapeContainer{
		NewShapeContainer("a", nil),
		NewShapeContainer("b", nil),
		NewShapeContainer("c", nil),
	}
	for _, k := range kids {
		root.AddChild(k)
	}
	count := 0
	root.OnChildRemoved = func(*ShapeContainer) { count++ }

	root.RemoveChildren()
	assert.Equal(t, 3, count)
	assert.Equal(t, 0, root.NumChildren())
	for _, k := range kids {
		assert.Nil(t, k.Parent())
	}
}

func TestChangeParent(t *testing.T) {
	a := NewShapeContainer("a", nil)
	b := NewShapeContainer("b", nil)
	child := NewShapeContainer("child", nil)

	assert.False(t, child.ChangeParent(nil), "detached already")
	assert.True(t, child.ChangeParent(a))
	assert.Same(t, a, child.Parent())
	assert.True(t, child.ChangeParent(b))
	assert.Same(t, b, child.Parent())
	assert.Equal(t, 0, a.NumChildren())
	assert.True(t, child.ChangeParent(nil))
	assert.Nil(t, child.Parent())

	b.AddChild(child)
	child.RemoveFromParent()
	assert.Nil(t, child.Parent())
	child.RemoveFromParent()
}

func TestUpdateIsPreOrder(t *testing.T) {
	root := NewShapeContainer("root", nil)
	a := NewShapeContainer("a", nil)
	b := NewShapeContainer("b", nil)
	a1 := NewShapeContainer("a1", nil)
	root.AddChild(a)
	root.AddChild(b)
	a.AddChild(a1)
	root.InitializeShape(UnitTransform)

	var order []string
	for _, c := range []*ShapeContainer{root, a, b, a1} {
		c := c
		c.OnUpdate = func(float64) { order = append(order, c.Name) }
		c.OnUpdateFinished = func(float64) { order = append(order, c.Name+".done") }
	}
	root.OnChildUpdated = func(c *ShapeContainer) { order = append(order, "root<-"+c.Name) }

	root.UpdateShape(1.0/60, UnitTransform)
	assert.Equal(t, []string{
		"root",
		"a", "a1", "a1.done", "a.done", "root<-a",
		"b", "b.done", "root<-b",
		"root.done",
	}, order)
}

func TestDrawIsPreOrder(t *testing.T) {
	root := NewShapeContainer("root", nil)
	a := NewShapeContainer("a", nil)
	root.AddChild(a)

	var order []string
	root.OnDraw = func() { order = append(order, "root") }
	a.OnDraw = func() { order = append(order, "a") }
	root.OnChildDrawn = func(c *ShapeContainer) { order = append(order, "drawn:"+c.Name) }
	root.OnDrawFinished = func() { order = append(order, "finished") }

	root.DrawShape()
	assert.Equal(t, []string{"root", "a", "drawn:a", "finished"}, order)
}

func TestInitializeFiresFinishedOnce(t *testing.T) {
	root := NewShapeContainer("root", nil)
	root.AddChild(NewShapeContainer("a", nil))
	root.AddChild(NewShapeContainer("b", nil))

	initialized, perChild := 0, 0
	root.OnInitialized = func() { initialized++ }
	root.OnChildInitialized = func(*ShapeContainer) { perChild++ }

	root.InitializeShape(UnitTransform)
	assert.Equal(t, 1, initialized)
	assert.Equal(t, 2, perChild)
}

func TestChildFollowsParentTransform(t *testing.T) {
	root := NewShapeContainer("root", Rect{Width: 1, Height: 1})
	root.Offset = NewTransform(Vec2{}, 0, Vec2{}, 10)
	root.InitializeShape(UnitTransform)

	turret := NewShapeContainer("turret", Circle{Radius: 0.5})
	turret.Offset.Position = Vec2{X: 0.5}
	root.AddChild(turret)

	// Offset position and shape both follow the inherited scale of 10.
	assertVec(t, "turret center", turret.CircleShape().Center, Vec2{X: 5})
	assertNear(t, "turret radius", turret.CircleShape().Radius, 5)

	root.Offset.Position = Vec2{X: 100}
	root.UpdateShape(0, UnitTransform)
	assertVec(t, "moved turret", turret.CircleShape().Center, Vec2{X: 105})
}

func TestChildIgnoresParentMovementWhenGated(t *testing.T) {
	root := NewShapeContainer("root", nil)
	root.InitializeShape(UnitTransform)
	pinned := NewShapeContainer("pinned", Circle{Radius: 1})
	pinned.Moves = false
	pinned.Offset.Position = Vec2{X: 3}
	root.AddChild(pinned)

	root.Offset.Position = Vec2{X: 50}
	root.UpdateShape(0, UnitTransform)
	// The parent moved; the child's own offset is ignored but the parent
	// position still flows through.
	assertVec(t, "pinned", pinned.CircleShape().Center, Vec2{X: 50})
}

func TestSubtreeBounds(t *testing.T) {
	root := NewShapeContainer("root", nil)
	root.InitializeShape(UnitTransform)
	a := NewShapeContainer("a", Rect{X: 0, Y: 0, Width: 2, Height: 2})
	b := NewShapeContainer("b", Circle{Center: Vec2{X: 10, Y: 10}, Radius: 1})
	root.AddChild(a)
	a.AddChild(b)

	assert.Equal(t, Rect{X: 0, Y: 0, Width: 11, Height: 11}, root.SubtreeBounds())
}
