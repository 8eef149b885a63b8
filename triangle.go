package collide

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// Triangle is given by three vertices in either winding order.
type Triangle struct {
	A, B, C Vec2
}

// Vertices returns A, B, C.
func (t Triangle) Vertices() []Vec2 {
	return []Vec2{t.A, t.B, t.C}
}

// Centroid returns the average of the vertices.
func (t Triangle) Centroid() Vec2 {
	return r2.Scale(1.0/3, r2.Add(r2.Add(t.A, t.B), t.C))
}

// Area returns the unsigned area.
func (t Triangle) Area() float64 {
	return math.Abs(r2.Cross(r2.Sub(t.B, t.A), r2.Sub(t.C, t.A))) / 2
}

// ContainsPoint reports whether p lies inside or on the triangle.
func (t Triangle) ContainsPoint(p Vec2) bool {
	return outlineOf(t).containsPoint(p)
}

// ClosestPoint returns the boundary point nearest p.
func (t Triangle) ClosestPoint(p Vec2) ClosestPoint {
	return outlineOf(t).closest(p)
}

// ClosestCollisionPoint returns ClosestPoint(p).Point.
func (t Triangle) ClosestCollisionPoint(p Vec2) CollisionPoint {
	return t.ClosestPoint(p).Point
}

// Overlap reports whether t and s share any point.
func (t Triangle) Overlap(s Shape) bool { return Overlap(t, s) }

// Intersect returns where the boundaries of t and s cross, or nil.
func (t Triangle) Intersect(s Shape) CollisionPoints { return Intersect(t, s) }

// ContainsShape reports whether s lies entirely inside t.
func (t Triangle) ContainsShape(s Shape) bool { return ContainsShape(t, s) }

// ClosestDistanceTo returns the nearest boundary points between t and s.
func (t Triangle) ClosestDistanceTo(s Shape) ClosestDistance { return ClosestDistanceTo(t, s) }

// Project sweeps the triangle along v.
func (t Triangle) Project(v Vec2) Polygon {
	return sweep(t.Vertices(), v)
}

// BoundingBox returns the box enclosing all vertices.
func (t Triangle) BoundingBox() Rect {
	return RectFromPoints(t.A, t.B, t.C)
}

// Transform maps a triangle given in relative units into world space.
func (t Triangle) Transform(tf Transform2D) Triangle {
	return Triangle{A: tf.Apply(t.A), B: tf.Apply(t.B), C: tf.Apply(t.C)}
}
