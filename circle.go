package collide

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// DefaultCircleSegments is the fan resolution used when a circle has to be
// approximated by a polygon, e.g. by Project. LoadConfig may change it.
var DefaultCircleSegments = 8

// Circle is a disc given by its center and radius.
type Circle struct {
	Center Vec2
	Radius float64
}

// ContainsPoint reports whether p lies inside or on the circle.
func (c Circle) ContainsPoint(p Vec2) bool {
	return r2.Norm2(r2.Sub(p, c.Center)) <= c.Radius*c.Radius
}

// ClosestPoint returns the point on the circle's boundary nearest p with the
// outward normal there.
func (c Circle) ClosestPoint(p Vec2) ClosestPoint {
	dir := unitOrZero(r2.Sub(p, c.Center))
	if dir == (Vec2{}) {
		dir = Vec2{X: 1}
	}
	q := r2.Add(c.Center, r2.Scale(c.Radius, dir))
	return ClosestPoint{
		Point:    CollisionPoint{Point: q, Normal: dir},
		Distance: r2.Norm(r2.Sub(p, q)),
	}
}

// ClosestCollisionPoint returns ClosestPoint(p).Point.
func (c Circle) ClosestCollisionPoint(p Vec2) CollisionPoint {
	return c.ClosestPoint(p).Point
}

// Overlap reports whether c and s share any point.
func (c Circle) Overlap(s Shape) bool { return Overlap(c, s) }

// Intersect returns where the boundaries of c and s cross, or nil.
func (c Circle) Intersect(s Shape) CollisionPoints { return Intersect(c, s) }

// ContainsShape reports whether s lies entirely inside c.
func (c Circle) ContainsShape(s Shape) bool { return ContainsShape(c, s) }

// ClosestDistanceTo returns the nearest boundary points between c and s.
func (c Circle) ClosestDistanceTo(s Shape) ClosestDistance { return ClosestDistanceTo(c, s) }

// Project sweeps the circle along v using a DefaultCircleSegments fan.
func (c Circle) Project(v Vec2) Polygon {
	return c.ProjectN(v, DefaultCircleSegments)
}

// ProjectN sweeps the circle along v, approximating it with a fan of the
// given number of segments (minimum 3). The result is the convex hull of the
// start and end positions.
func (c Circle) ProjectN(v Vec2, segments int) Polygon {
	return sweep(c.ToPolygon(segments), v)
}

// ToPolygon approximates the circle with a regular polygon.
func (c Circle) ToPolygon(segments int) Polygon {
	if segments < 3 {
		segments = 3
	}
	pts := make(Polygon, segments)
	step := 2 * math.Pi / float64(segments)
	for i := range pts {
		sin, cos := math.Sincos(float64(i) * step)
		pts[i] = Vec2{X: c.Center.X + cos*c.Radius, Y: c.Center.Y + sin*c.Radius}
	}
	return pts
}

// BoundingBox returns the square enclosing the circle.
func (c Circle) BoundingBox() Rect {
	return Rect{c.Center.X - c.Radius, c.Center.Y - c.Radius, 2 * c.Radius, 2 * c.Radius}
}

// Area returns pi*r^2.
func (c Circle) Area() float64 {
	return math.Pi * c.Radius * c.Radius
}

// Transform maps a circle given in relative units into world space. The
// radius scales with the smaller axis of t's scaled size.
func (c Circle) Transform(t Transform2D) Circle {
	s := t.ScaledSize()
	return Circle{
		Center: t.Apply(c.Center),
		Radius: c.Radius * math.Min(math.Abs(s.X), math.Abs(s.Y)),
	}
}
