package collide

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// Polygon is a closed vertex loop in either winding order. It may be concave.
type Polygon []Vec2

// Polyline is an open vertex chain. It has no area.
type Polyline []Vec2

// Centroid returns the average of the vertices.
func (p Polygon) Centroid() Vec2 {
	return outline{points: p}.centroid()
}

// Area returns the unsigned area (shoelace formula).
func (p Polygon) Area() float64 {
	var sum float64
	for i := range p {
		sum += r2.Cross(p[i], p[(i+1)%len(p)])
	}
	return math.Abs(sum) / 2
}

// IsConvex reports whether every turn of the loop goes the same way.
func (p Polygon) IsConvex() bool { return isConvex(p) }

// ContainsPoint reports whether pt lies inside or on the polygon.
func (p Polygon) ContainsPoint(pt Vec2) bool {
	return outlineOf(p).containsPoint(pt)
}

// ClosestPoint returns the boundary point nearest pt.
func (p Polygon) ClosestPoint(pt Vec2) ClosestPoint {
	return outlineOf(p).closest(pt)
}

// ClosestCollisionPoint returns ClosestPoint(pt).Point.
func (p Polygon) ClosestCollisionPoint(pt Vec2) CollisionPoint {
	return p.ClosestPoint(pt).Point
}

// Overlap reports whether p and s share any point.
func (p Polygon) Overlap(s Shape) bool { return Overlap(p, s) }

// Intersect returns where the boundaries of p and s cross, or nil.
func (p Polygon) Intersect(s Shape) CollisionPoints { return Intersect(p, s) }

// ContainsShape reports whether s lies entirely inside p.
func (p Polygon) ContainsShape(s Shape) bool { return ContainsShape(p, s) }

// ClosestDistanceTo returns the nearest boundary points between p and s.
func (p Polygon) ClosestDistanceTo(s Shape) ClosestDistance { return ClosestDistanceTo(p, s) }

// Project sweeps the polygon along v. The result is convex even for a
// concave input.
func (p Polygon) Project(v Vec2) Polygon {
	return sweep(p, v)
}

// BoundingBox returns the box enclosing all vertices.
func (p Polygon) BoundingBox() Rect { return RectFromPoints(p...) }

// Transform maps a polygon given in relative units into world space.
func (p Polygon) Transform(t Transform2D) Polygon {
	return transformPoints(p, t)
}

// Length returns the summed length of all segments.
func (p Polyline) Length() float64 {
	var sum float64
	for i := 1; i < len(p); i++ {
		sum += r2.Norm(r2.Sub(p[i], p[i-1]))
	}
	return sum
}

// Segments returns the consecutive segments of the chain.
func (p Polyline) Segments() []Segment {
	if len(p) < 2 {
		return nil
	}
	segs := make([]Segment, len(p)-1)
	for i := range segs {
		segs[i] = Segment{Start: p[i], End: p[i+1]}
	}
	return segs
}

// ContainsPoint reports whether pt lies on any segment of the chain.
func (p Polyline) ContainsPoint(pt Vec2) bool {
	for _, s := range p.Segments() {
		if s.ContainsPoint(pt) {
			return true
		}
	}
	return false
}

// ClosestPoint returns the point on the chain nearest pt.
func (p Polyline) ClosestPoint(pt Vec2) ClosestPoint {
	return outlineOf(p).closest(pt)
}

// ClosestCollisionPoint returns ClosestPoint(pt).Point.
func (p Polyline) ClosestCollisionPoint(pt Vec2) CollisionPoint {
	return p.ClosestPoint(pt).Point
}

// Overlap reports whether p and s share any point.
func (p Polyline) Overlap(s Shape) bool { return Overlap(p, s) }

// Intersect returns where p crosses the boundary of s, or nil.
func (p Polyline) Intersect(s Shape) CollisionPoints { return Intersect(p, s) }

// ContainsShape is always false: a polyline encloses nothing.
func (p Polyline) ContainsShape(s Shape) bool { return ContainsShape(p, s) }

// ClosestDistanceTo returns the nearest points between p and s.
func (p Polyline) ClosestDistanceTo(s Shape) ClosestDistance { return ClosestDistanceTo(p, s) }

// Project sweeps the chain along v.
func (p Polyline) Project(v Vec2) Polygon {
	return sweep(p, v)
}

// BoundingBox returns the box enclosing all vertices.
func (p Polyline) BoundingBox() Rect { return RectFromPoints(p...) }

// Transform maps a polyline given in relative units into world space.
func (p Polyline) Transform(t Transform2D) Polyline {
	return transformPoints(p, t)
}
