package collide

import "gonum.org/v1/gonum/spatial/r2"

// Quad is a four-sided outline A->B->C->D. Unlike Rect it follows rotation,
// so a rotated rectangle is a Quad.
type Quad struct {
	A, B, C, D Vec2
}

// QuadFromRect returns the corners of r as a Quad, clockwise from top-left.
func QuadFromRect(r Rect) Quad {
	c := r.Corners()
	return Quad{A: c[0], B: c[1], C: c[2], D: c[3]}
}

// Vertices returns A, B, C, D.
func (q Quad) Vertices() []Vec2 {
	return []Vec2{q.A, q.B, q.C, q.D}
}

// Center returns the average of the corners.
func (q Quad) Center() Vec2 {
	return r2.Scale(0.25, r2.Add(r2.Add(q.A, q.B), r2.Add(q.C, q.D)))
}

// ContainsPoint reports whether p lies inside or on the quad.
func (q Quad) ContainsPoint(p Vec2) bool {
	return outlineOf(q).containsPoint(p)
}

// ClosestPoint returns the boundary point nearest p.
func (q Quad) ClosestPoint(p Vec2) ClosestPoint {
	return outlineOf(q).closest(p)
}

// ClosestCollisionPoint returns ClosestPoint(p).Point.
func (q Quad) ClosestCollisionPoint(p Vec2) CollisionPoint {
	return q.ClosestPoint(p).Point
}

// Overlap reports whether q and s share any point.
func (q Quad) Overlap(s Shape) bool { return Overlap(q, s) }

// Intersect returns where the boundaries of q and s cross, or nil.
func (q Quad) Intersect(s Shape) CollisionPoints { return Intersect(q, s) }

// ContainsShape reports whether s lies entirely inside q.
func (q Quad) ContainsShape(s Shape) bool { return ContainsShape(q, s) }

// ClosestDistanceTo returns the nearest boundary points between q and s.
func (q Quad) ClosestDistanceTo(s Shape) ClosestDistance { return ClosestDistanceTo(q, s) }

// Project sweeps the quad along v.
func (q Quad) Project(v Vec2) Polygon {
	return sweep(q.Vertices(), v)
}

// BoundingBox returns the box enclosing all corners.
func (q Quad) BoundingBox() Rect {
	return RectFromPoints(q.A, q.B, q.C, q.D)
}

// Transform maps a quad given in relative units into world space.
func (q Quad) Transform(t Transform2D) Quad {
	return Quad{A: t.Apply(q.A), B: t.Apply(q.B), C: t.Apply(q.C), D: t.Apply(q.D)}
}
