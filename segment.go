package collide

import "gonum.org/v1/gonum/spatial/r2"

// Segment is a straight line between two points. It has no area.
type Segment struct {
	Start, End Vec2
}

// Length returns the distance between Start and End.
func (s Segment) Length() float64 {
	return r2.Norm(r2.Sub(s.End, s.Start))
}

// Center returns the midpoint.
func (s Segment) Center() Vec2 {
	return r2.Scale(0.5, r2.Add(s.Start, s.End))
}

// Direction returns the unit vector from Start to End, or zero when degenerate.
func (s Segment) Direction() Vec2 {
	return unitOrZero(r2.Sub(s.End, s.Start))
}

// Normal returns the unit normal on the left side of Start->End.
func (s Segment) Normal() Vec2 {
	d := s.Direction()
	return Vec2{X: -d.Y, Y: d.X}
}

// ContainsPoint reports whether p lies on the segment.
func (s Segment) ContainsPoint(p Vec2) bool {
	return orientation(s.Start, s.End, p) == 0 && onSegment(s.Start, s.End, p)
}

// ClosestPoint returns the point on the segment nearest p.
func (s Segment) ClosestPoint(p Vec2) ClosestPoint {
	return outlineOf(s).closest(p)
}

// ClosestCollisionPoint returns ClosestPoint(p).Point.
func (s Segment) ClosestCollisionPoint(p Vec2) CollisionPoint {
	return s.ClosestPoint(p).Point
}

// Overlap reports whether s and other share any point.
func (s Segment) Overlap(other Shape) bool { return Overlap(s, other) }

// Intersect returns the shared points of s and other, or nil.
func (s Segment) Intersect(other Shape) CollisionPoints { return Intersect(s, other) }

// ContainsShape is always false: a segment encloses nothing.
func (s Segment) ContainsShape(other Shape) bool { return ContainsShape(s, other) }

// ClosestDistanceTo returns the nearest points between s and other.
func (s Segment) ClosestDistanceTo(other Shape) ClosestDistance {
	return ClosestDistanceTo(s, other)
}

// Project sweeps the segment along v.
func (s Segment) Project(v Vec2) Polygon {
	return sweep([]Vec2{s.Start, s.End}, v)
}

// BoundingBox returns the box spanned by both endpoints.
func (s Segment) BoundingBox() Rect {
	return RectFromPoints(s.Start, s.End)
}

// Transform maps a segment given in relative units into world space.
func (s Segment) Transform(t Transform2D) Segment {
	return Segment{Start: t.Apply(s.Start), End: t.Apply(s.End)}
}
