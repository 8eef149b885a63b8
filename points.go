package collide

import "gonum.org/v1/gonum/spatial/r2"

// CollisionPoint is a contact location with the surface normal of the shape
// that was hit, turned to face the querying shape.
type CollisionPoint struct {
	Point  Vec2
	Normal Vec2
}

// IsValid reports whether the point carries a normal. The zero value is invalid.
func (p CollisionPoint) IsValid() bool {
	return p.Normal != (Vec2{})
}

// CollisionPoints is the result of an intersection query. A nil value means
// the shapes do not intersect.
type CollisionPoints []CollisionPoint

// Points returns just the locations.
func (cp CollisionPoints) Points() []Vec2 {
	if cp == nil {
		return nil
	}
	out := make([]Vec2, len(cp))
	for i, p := range cp {
		out[i] = p.Point
	}
	return out
}

// Closest returns the point nearest ref. Returns the zero value when empty.
func (cp CollisionPoints) Closest(ref Vec2) CollisionPoint {
	var best CollisionPoint
	bestDist := -1.0
	for _, p := range cp {
		d := r2.Norm2(r2.Sub(p.Point, ref))
		if bestDist < 0 || d < bestDist {
			best, bestDist = p, d
		}
	}
	return best
}

// ClosestDistance is the nearest pair of boundary points between two shapes:
// A lies on the first shape, B on the second.
type ClosestDistance struct {
	A, B Vec2
}

// Distance returns the length of the gap between A and B.
func (d ClosestDistance) Distance() float64 {
	return r2.Norm(r2.Sub(d.B, d.A))
}

// DistanceSquared avoids the square root for comparisons.
func (d ClosestDistance) DistanceSquared() float64 {
	return r2.Norm2(r2.Sub(d.B, d.A))
}

// ClosestPoint is the nearest boundary point of a shape to a query point.
type ClosestPoint struct {
	Point    CollisionPoint
	Distance float64
}
