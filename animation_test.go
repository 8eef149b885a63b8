package collide

import (
	"math"
	"testing"

	"github.com/tanema/gween/ease"
)

func TestTweenOffsetPositionReachesTarget(t *testing.T) {
	node := NewShapeNode("pos", Circle{Radius: 1})
	node.Offset.Position = Vec2{X: 10, Y: 20}

	g := TweenOffsetPosition(node, Vec2{X: 100, Y: 200}, 1.0, ease.Linear)

	// Run for full duration using exact halves to avoid float32 accumulation drift.
	g.Update(0.5)
	g.Update(0.5)

	if !g.Done {
		t.Fatal("expected Done after full duration")
	}
	if math.Abs(node.Offset.Position.X-100) > 0.5 {
		t.Errorf("X = %f, want ~100", node.Offset.Position.X)
	}
	if math.Abs(node.Offset.Position.Y-200) > 0.5 {
		t.Errorf("Y = %f, want ~200", node.Offset.Position.Y)
	}
}

func TestTweenOffsetScaleReachesTarget(t *testing.T) {
	node := NewShapeNode("scale", nil)

	g := TweenOffsetScale(node, 2.0, 0.5, ease.Linear)

	g.Update(0.25)
	g.Update(0.25)

	if !g.Done {
		t.Fatal("expected Done after full duration")
	}
	if math.Abs(node.Offset.Scale-2.0) > 0.01 {
		t.Errorf("Scale = %f, want ~2.0", node.Offset.Scale)
	}
}

func TestTweenOffsetSizeReachesTarget(t *testing.T) {
	node := NewShapeNode("size", nil)

	g := TweenOffsetSize(node, Vec2{X: 4, Y: 8}, 1.0, ease.Linear)
	g.Update(0.5)
	g.Update(0.5)

	if !g.Done {
		t.Fatal("expected Done after full duration")
	}
	if math.Abs(node.Offset.Size.X-4) > 0.01 || math.Abs(node.Offset.Size.Y-8) > 0.01 {
		t.Errorf("Size = %v, want ~(4, 8)", node.Offset.Size)
	}
}

func TestTweenOffsetRotationInterpolates(t *testing.T) {
	node := NewShapeNode("rot", nil)

	g := TweenOffsetRotation(node, math.Pi, 1.0, ease.Linear)
	g.Update(0.5)

	if g.Done {
		t.Fatal("should not be done at midpoint")
	}
	if math.Abs(node.Offset.Rotation-math.Pi/2) > 0.01 {
		t.Errorf("Rotation at midpoint = %f, want ~%f", node.Offset.Rotation, math.Pi/2)
	}
}

func TestTweenUpdateAfterDoneIsNoop(t *testing.T) {
	node := NewShapeNode("noop", nil)
	g := TweenOffsetRotation(node, 1, 0.5, ease.Linear)
	g.Update(0.5)
	if !g.Done {
		t.Fatal("expected Done")
	}

	node.Offset.Rotation = 42
	g.Update(0.5)
	if node.Offset.Rotation != 42 {
		t.Errorf("Rotation = %f, want 42 (no write after Done)", node.Offset.Rotation)
	}
}

func TestTweenResetRestarts(t *testing.T) {
	node := NewShapeNode("reset", nil)
	g := TweenOffsetScale(node, 3, 1.0, ease.Linear)
	g.Update(0.5)
	g.Update(0.5)
	if !g.Done {
		t.Fatal("expected Done")
	}

	g.Reset()
	if g.Done {
		t.Fatal("Reset should clear Done")
	}
	g.Update(0.5)
	if math.Abs(node.Offset.Scale-2) > 0.01 {
		t.Errorf("Scale after reset+half = %f, want ~2", node.Offset.Scale)
	}
}

func TestTweenDrivesWorldTransform(t *testing.T) {
	node := NewShapeNode("driven", Circle{Radius: 1})
	node.InitializeShape(UnitTransform)

	g := TweenOffsetPosition(node, Vec2{X: 10}, 1.0, ease.Linear)
	g.Update(0.5)
	g.Update(0.5)

	if !node.UpdateTransform(UnitTransform) {
		t.Fatal("expected transform to change after tween")
	}
	c := node.CircleShape()
	if math.Abs(c.Center.X-10) > 0.01 {
		t.Errorf("world center X = %f, want ~10", c.Center.X)
	}
}
