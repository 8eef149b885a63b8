package collide

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/spatial/r2"
)

// epsilon is the tolerance for parallel, collinear and on-edge decisions.
const epsilon = 1e-9

// outline is the vertex form shared by every straight-edged kind.
// Closed outlines connect the last vertex back to the first.
type outline struct {
	points []Vec2
	closed bool
	convex bool
}

func (o outline) edgeCount() int {
	n := len(o.points)
	switch {
	case n < 2:
		return 0
	case o.closed && n > 2:
		return n
	default:
		return n - 1
	}
}

func (o outline) edge(i int) (Vec2, Vec2) {
	return o.points[i], o.points[(i+1)%len(o.points)]
}

// centroid returns the vertex average, used as a reference point for
// orienting normals.
func (o outline) centroid() Vec2 {
	var sum Vec2
	for _, p := range o.points {
		sum = r2.Add(sum, p)
	}
	if len(o.points) == 0 {
		return sum
	}
	return r2.Scale(1/float64(len(o.points)), sum)
}

func (o outline) containsPoint(p Vec2) bool {
	if !o.closed || len(o.points) < 3 {
		return false
	}
	return pointInPolygon(o.points, p)
}

// closestPoint returns the point on the outline's boundary nearest p and
// the index of the edge it lies on (-1 when the outline is a single point).
func (o outline) closestPoint(p Vec2) (Vec2, int) {
	n := o.edgeCount()
	if n == 0 {
		if len(o.points) == 1 {
			return o.points[0], -1
		}
		return p, -1
	}
	best, bestEdge := Vec2{}, -1
	bestDist := math.Inf(1)
	for i := 0; i < n; i++ {
		a, b := o.edge(i)
		q := closestPointOnSegment(a, b, p)
		if d := r2.Norm2(r2.Sub(q, p)); d < bestDist {
			best, bestEdge, bestDist = q, i, d
		}
	}
	return best, bestEdge
}

// closestPointOnSegment projects p onto segment ab, clamped to the endpoints.
func closestPointOnSegment(a, b, p Vec2) Vec2 {
	ab := r2.Sub(b, a)
	lenSq := r2.Norm2(ab)
	if lenSq < epsilon*epsilon {
		return a
	}
	t := r2.Dot(r2.Sub(p, a), ab) / lenSq
	t = math.Max(0, math.Min(1, t))
	return r2.Add(a, r2.Scale(t, ab))
}

// orientation returns >0 when c is left of ab, <0 when right, 0 when collinear.
func orientation(a, b, c Vec2) float64 {
	v := r2.Cross(r2.Sub(b, a), r2.Sub(c, a))
	if math.Abs(v) < epsilon {
		return 0
	}
	return v
}

// onSegment reports whether p, known collinear with ab, lies within its extent.
func onSegment(a, b, p Vec2) bool {
	return p.X >= math.Min(a.X, b.X)-epsilon && p.X <= math.Max(a.X, b.X)+epsilon &&
		p.Y >= math.Min(a.Y, b.Y)-epsilon && p.Y <= math.Max(a.Y, b.Y)+epsilon
}

// segmentsOverlap reports whether segments a1a2 and b1b2 share any point,
// including touching endpoints and collinear overlap.
func segmentsOverlap(a1, a2, b1, b2 Vec2) bool {
	o1 := orientation(a1, a2, b1)
	o2 := orientation(a1, a2, b2)
	o3 := orientation(b1, b2, a1)
	o4 := orientation(b1, b2, a2)

	if o1*o2 < 0 && o3*o4 < 0 {
		return true
	}
	return (o1 == 0 && onSegment(a1, a2, b1)) ||
		(o2 == 0 && onSegment(a1, a2, b2)) ||
		(o3 == 0 && onSegment(b1, b2, a1)) ||
		(o4 == 0 && onSegment(b1, b2, a2))
}

// segmentsCross reports a proper crossing: each segment strictly straddles
// the other. Touching and collinear contact do not count.
func segmentsCross(a1, a2, b1, b2 Vec2) bool {
	return orientation(a1, a2, b1)*orientation(a1, a2, b2) < 0 &&
		orientation(b1, b2, a1)*orientation(b1, b2, a2) < 0
}

// intersectSegments returns the shared points of two segments: one point
// for a crossing or touch, the two ends of the shared stretch for collinear
// overlap, nil when disjoint.
func intersectSegments(a1, a2, b1, b2 Vec2) []Vec2 {
	r := r2.Sub(a2, a1)
	s := r2.Sub(b2, b1)
	denom := r2.Cross(r, s)
	qp := r2.Sub(b1, a1)

	// A zero-length segment is a point: it touches the other only when it
	// really lies on it.
	aPoint := r2.Norm2(r) < epsilon*epsilon
	bPoint := r2.Norm2(s) < epsilon*epsilon
	switch {
	case aPoint && bPoint:
		if r2.Norm2(qp) < epsilon*epsilon {
			return []Vec2{a1}
		}
		return nil
	case aPoint:
		if orientation(b1, b2, a1) == 0 && onSegment(b1, b2, a1) {
			return []Vec2{a1}
		}
		return nil
	case bPoint:
		if orientation(a1, a2, b1) == 0 && onSegment(a1, a2, b1) {
			return []Vec2{b1}
		}
		return nil
	}

	if math.Abs(denom) < epsilon {
		if math.Abs(r2.Cross(qp, r)) > epsilon {
			return nil // parallel, not collinear
		}
		return collinearOverlap(a1, a2, b1, b2)
	}

	t := r2.Cross(qp, s) / denom
	u := r2.Cross(qp, r) / denom
	if t < -epsilon || t > 1+epsilon || u < -epsilon || u > 1+epsilon {
		return nil
	}
	return []Vec2{r2.Add(a1, r2.Scale(t, r))}
}

func collinearOverlap(a1, a2, b1, b2 Vec2) []Vec2 {
	var pts []Vec2
	add := func(p Vec2) {
		for _, q := range pts {
			if r2.Norm2(r2.Sub(p, q)) < epsilon*epsilon {
				return
			}
		}
		pts = append(pts, p)
	}
	if onSegment(b1, b2, a1) {
		add(a1)
	}
	if onSegment(b1, b2, a2) {
		add(a2)
	}
	if onSegment(a1, a2, b1) {
		add(b1)
	}
	if onSegment(a1, a2, b2) {
		add(b2)
	}
	return pts
}

// intersectSegmentCircle returns where segment ab crosses the circle boundary.
func intersectSegmentCircle(a, b, center Vec2, radius float64) []Vec2 {
	d := r2.Sub(b, a)
	f := r2.Sub(a, center)
	qa := r2.Dot(d, d)
	if qa < epsilon*epsilon {
		if math.Abs(r2.Norm(f)-radius) < epsilon {
			return []Vec2{a}
		}
		return nil
	}
	qb := 2 * r2.Dot(f, d)
	qc := r2.Dot(f, f) - radius*radius
	disc := qb*qb - 4*qa*qc
	if disc < 0 {
		return nil
	}
	sq := math.Sqrt(disc)
	t1 := (-qb - sq) / (2 * qa)
	t2 := (-qb + sq) / (2 * qa)

	var pts []Vec2
	if t1 >= -epsilon && t1 <= 1+epsilon {
		pts = append(pts, r2.Add(a, r2.Scale(t1, d)))
	}
	if disc > epsilon && t2 >= -epsilon && t2 <= 1+epsilon {
		pts = append(pts, r2.Add(a, r2.Scale(t2, d)))
	}
	return pts
}

// closestPointsSegments returns the closest pair of points between two segments.
func closestPointsSegments(a1, a2, b1, b2 Vec2) (Vec2, Vec2) {
	if pts := intersectSegments(a1, a2, b1, b2); len(pts) > 0 {
		return pts[0], pts[0]
	}
	type pair struct{ a, b Vec2 }
	candidates := [4]pair{
		{a1, closestPointOnSegment(b1, b2, a1)},
		{a2, closestPointOnSegment(b1, b2, a2)},
		{closestPointOnSegment(a1, a2, b1), b1},
		{closestPointOnSegment(a1, a2, b2), b2},
	}
	best := candidates[0]
	bestDist := r2.Norm2(r2.Sub(best.a, best.b))
	for _, c := range candidates[1:] {
		if d := r2.Norm2(r2.Sub(c.a, c.b)); d < bestDist {
			best, bestDist = c, d
		}
	}
	return best.a, best.b
}

// pointInPolygon is an even-odd ray cast that counts points on an edge as inside.
func pointInPolygon(points []Vec2, p Vec2) bool {
	n := len(points)
	inside := false
	for i, j := 0, n-1; i < n; j, i = i, i+1 {
		a, b := points[j], points[i]
		if orientation(a, b, p) == 0 && onSegment(a, b, p) {
			return true
		}
		if (b.Y > p.Y) != (a.Y > p.Y) {
			x := (a.X-b.X)*(p.Y-b.Y)/(a.Y-b.Y) + b.X
			if p.X < x {
				inside = !inside
			}
		}
	}
	return inside
}

// isConvex reports whether a closed vertex loop turns consistently one way.
func isConvex(points []Vec2) bool {
	n := len(points)
	if n < 4 {
		return n == 3
	}
	var positive, negative bool
	for i := 0; i < n; i++ {
		cross := orientation(points[i], points[(i+1)%n], points[(i+2)%n])
		if cross > 0 {
			positive = true
		} else if cross < 0 {
			negative = true
		}
		if positive && negative {
			return false
		}
	}
	return true
}

// convexHull returns the hull of points in counter-clockwise order
// (monotone chain). Duplicate and collinear points are dropped.
func convexHull(points []Vec2) Polygon {
	if len(points) < 3 {
		return append(Polygon(nil), points...)
	}
	pts := append([]Vec2(nil), points...)
	sort.Slice(pts, func(i, j int) bool {
		if pts[i].X != pts[j].X {
			return pts[i].X < pts[j].X
		}
		return pts[i].Y < pts[j].Y
	})

	hull := make([]Vec2, 0, 2*len(pts))
	for _, p := range pts {
		for len(hull) >= 2 && orientation(hull[len(hull)-2], hull[len(hull)-1], p) <= 0 {
			hull = hull[:len(hull)-1]
		}
		hull = append(hull, p)
	}
	lower := len(hull) + 1
	for i := len(pts) - 2; i >= 0; i-- {
		p := pts[i]
		for len(hull) >= lower && orientation(hull[len(hull)-2], hull[len(hull)-1], p) <= 0 {
			hull = hull[:len(hull)-1]
		}
		hull = append(hull, p)
	}
	return Polygon(hull[:len(hull)-1])
}

// edgeNormal returns the unit normal of ab turned to face ref.
// A zero-length edge falls back to the direction from the edge toward ref.
func edgeNormal(a, b, ref Vec2) Vec2 {
	d := r2.Sub(b, a)
	n := Vec2{X: -d.Y, Y: d.X}
	if r2.Norm2(n) < epsilon*epsilon {
		return unitOrZero(r2.Sub(ref, a))
	}
	n = r2.Unit(n)
	if r2.Dot(n, r2.Sub(ref, a)) < 0 {
		n = r2.Scale(-1, n)
	}
	return n
}

// unitOrZero normalizes v, returning the zero vector for zero input instead of NaN.
func unitOrZero(v Vec2) Vec2 {
	if r2.Norm2(v) < epsilon*epsilon {
		return Vec2{}
	}
	return r2.Unit(v)
}

// closest returns the nearest boundary point to p with the edge normal turned
// toward p.
func (o outline) closest(p Vec2) ClosestPoint {
	q, i := o.closestPoint(p)
	normal := unitOrZero(r2.Sub(p, q))
	if i >= 0 {
		a, b := o.edge(i)
		normal = edgeNormal(a, b, p)
	}
	return ClosestPoint{
		Point:    CollisionPoint{Point: q, Normal: normal},
		Distance: r2.Norm(r2.Sub(p, q)),
	}
}

// sweep returns the convex hull of points and points translated by v.
func sweep(points []Vec2, v Vec2) Polygon {
	swept := make([]Vec2, 0, 2*len(points))
	for _, p := range points {
		swept = append(swept, p, r2.Add(p, v))
	}
	return convexHull(swept)
}

// transformPoints applies t to every point, returning a new slice.
func transformPoints(points []Vec2, t Transform2D) []Vec2 {
	if points == nil {
		return nil
	}
	out := make([]Vec2, len(points))
	for i, p := range points {
		out[i] = t.Apply(p)
	}
	return out
}
