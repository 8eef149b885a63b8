package collide

// ContainsPoint reports whether p lies inside or on the rectangle.
func (r Rect) ContainsPoint(p Vec2) bool {
	return r.Contains(p.X, p.Y)
}

// ContainsRect reports whether other lies entirely inside r.
func (r Rect) ContainsRect(other Rect) bool {
	return other.X >= r.X && other.Y >= r.Y &&
		other.X+other.Width <= r.X+r.Width &&
		other.Y+other.Height <= r.Y+r.Height
}

// ClampPoint returns the point of r nearest p; p itself when inside.
func (r Rect) ClampPoint(p Vec2) Vec2 {
	return Vec2{X: clamp(p.X, r.X, r.X+r.Width), Y: clamp(p.Y, r.Y, r.Y+r.Height)}
}

// ClosestPoint returns the boundary point nearest p.
func (r Rect) ClosestPoint(p Vec2) ClosestPoint {
	return outlineOf(r).closest(p)
}

// ClosestCollisionPoint returns ClosestPoint(p).Point.
func (r Rect) ClosestCollisionPoint(p Vec2) CollisionPoint {
	return r.ClosestPoint(p).Point
}

// Overlap reports whether r and s share any point.
func (r Rect) Overlap(s Shape) bool { return Overlap(r, s) }

// Intersect returns where the boundaries of r and s cross, or nil.
func (r Rect) Intersect(s Shape) CollisionPoints { return Intersect(r, s) }

// ContainsShape reports whether s lies entirely inside r.
func (r Rect) ContainsShape(s Shape) bool { return ContainsShape(r, s) }

// ClosestDistanceTo returns the nearest boundary points between r and s.
func (r Rect) ClosestDistanceTo(s Shape) ClosestDistance { return ClosestDistanceTo(r, s) }

// Project sweeps the rectangle along v.
func (r Rect) Project(v Vec2) Polygon {
	c := r.Corners()
	return sweep(c[:], v)
}

// BoundingBox returns r.
func (r Rect) BoundingBox() Rect { return r }

// Transform maps a rect given in relative units into world space. Rotation
// is ignored so the result stays axis-aligned; use a Quad to follow it.
func (r Rect) Transform(t Transform2D) Rect {
	t.Rotation = 0
	return RectFromPoints(t.Apply(r.Min()), t.Apply(r.Max()))
}

func clamp(value, min, max float64) float64 {
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}
