package collide

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// TweenGroup animates up to 4 float64 fields of a node's Offset
// simultaneously. Create one via the convenience constructors
// (TweenOffsetPosition, TweenOffsetRotation, TweenOffsetScale,
// TweenOffsetSize) and call Update(dt) each frame before the world update.
// The node picks the new Offset up on its next transform update.
//
// There is no global animation manager; users call Update themselves.
type TweenGroup struct {
	tweens [4]*gween.Tween
	count  int
	fields [4]*float64
	target *ShapeNode
	Done   bool
}

// Update advances all tweens by dt seconds and writes values to the target
// Offset fields.
func (g *TweenGroup) Update(dt float32) {
	if g.Done || g.target == nil {
		return
	}
	allDone := true
	for i := 0; i < g.count; i++ {
		val, finished := g.tweens[i].Update(dt)
		*g.fields[i] = float64(val)
		if !finished {
			allDone = false
		}
	}
	g.Done = allDone
}

// Reset rewinds every tween to its start and clears Done. The target fields
// are written on the next Update.
func (g *TweenGroup) Reset() {
	for i := 0; i < g.count; i++ {
		g.tweens[i].Reset()
	}
	g.Done = false
}

// TweenOffsetPosition animates node.Offset.Position to to.
func TweenOffsetPosition(node *ShapeNode, to Vec2, duration float32, fn ease.TweenFunc) *TweenGroup {
	g := &TweenGroup{count: 2, target: node}
	g.tweens[0] = gween.New(float32(node.Offset.Position.X), float32(to.X), duration, fn)
	g.tweens[1] = gween.New(float32(node.Offset.Position.Y), float32(to.Y), duration, fn)
	g.fields[0] = &node.Offset.Position.X
	g.fields[1] = &node.Offset.Position.Y
	return g
}

// TweenOffsetRotation animates node.Offset.Rotation (radians) to to.
func TweenOffsetRotation(node *ShapeNode, to float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	g := &TweenGroup{count: 1, target: node}
	g.tweens[0] = gween.New(float32(node.Offset.Rotation), float32(to), duration, fn)
	g.fields[0] = &node.Offset.Rotation
	return g
}

// TweenOffsetScale animates node.Offset.Scale to to.
func TweenOffsetScale(node *ShapeNode, to float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	g := &TweenGroup{count: 1, target: node}
	g.tweens[0] = gween.New(float32(node.Offset.Scale), float32(to), duration, fn)
	g.fields[0] = &node.Offset.Scale
	return g
}

// TweenOffsetSize animates node.Offset.Size to to.
func TweenOffsetSize(node *ShapeNode, to Vec2, duration float32, fn ease.TweenFunc) *TweenGroup {
	g := &TweenGroup{count: 2, target: node}
	g.tweens[0] = gween.New(float32(node.Offset.Size.X), float32(to.X), duration, fn)
	g.tweens[1] = gween.New(float32(node.Offset.Size.Y), float32(to.Y), duration, fn)
	g.fields[0] = &node.Offset.Size.X
	g.fields[1] = &node.Offset.Size.Y
	return g
}
