package collide

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// The dispatch engine answers binary queries between any two Shape values by
// looking up the concrete-vs-concrete primitive in a fixed 7x7 table indexed
// by the two kind tags. None short-circuits before the lookup, as does a
// disabled Collider on either side.

type (
	overlapFunc   func(a, b Shape) bool
	intersectFunc func(a, b Shape) CollisionPoints
	containsFunc  func(a, b Shape) bool
	distanceFunc  func(a, b Shape) ClosestDistance
)

// Row and column order: Circle, Segment, Triangle, Quad, Rect, Polygon, Polyline.

var overlapTable = [shapeTypeCount][shapeTypeCount]overlapFunc{
	{overlapCircleCircle, overlapCircleOutline, overlapCircleOutline, overlapCircleOutline, overlapCircleRect, overlapCircleOutline, overlapCircleOutline},
	{overlapOutlineCircle, overlapSegmentSegment, overlapOutlines, overlapOutlines, overlapOutlines, overlapOutlines, overlapOutlines},
	{overlapOutlineCircle, overlapOutlines, overlapOutlines, overlapOutlines, overlapOutlines, overlapOutlines, overlapOutlines},
	{overlapOutlineCircle, overlapOutlines, overlapOutlines, overlapOutlines, overlapOutlines, overlapOutlines, overlapOutlines},
	{overlapRectCircle, overlapOutlines, overlapOutlines, overlapOutlines, overlapRectRect, overlapOutlines, overlapOutlines},
	{overlapOutlineCircle, overlapOutlines, overlapOutlines, overlapOutlines, overlapOutlines, overlapOutlines, overlapOutlines},
	{overlapOutlineCircle, overlapOutlines, overlapOutlines, overlapOutlines, overlapOutlines, overlapOutlines, overlapOutlines},
}

var intersectTable = [shapeTypeCount][shapeTypeCount]intersectFunc{
	{intersectCircleCircle, intersectCircleOutline, intersectCircleOutline, intersectCircleOutline, intersectCircleOutline, intersectCircleOutline, intersectCircleOutline},
	{intersectOutlineCircle, intersectSegmentSegment, intersectOutlines, intersectOutlines, intersectOutlines, intersectOutlines, intersectOutlines},
	{intersectOutlineCircle, intersectOutlines, intersectOutlines, intersectOutlines, intersectOutlines, intersectOutlines, intersectOutlines},
	{intersectOutlineCircle, intersectOutlines, intersectOutlines, intersectOutlines, intersectOutlines, intersectOutlines, intersectOutlines},
	{intersectOutlineCircle, intersectOutlines, intersectOutlines, intersectOutlines, intersectOutlines, intersectOutlines, intersectOutlines},
	{intersectOutlineCircle, intersectOutlines, intersectOutlines, intersectOutlines, intersectOutlines, intersectOutlines, intersectOutlines},
	{intersectOutlineCircle, intersectOutlines, intersectOutlines, intersectOutlines, intersectOutlines, intersectOutlines, intersectOutlines},
}

// Segments and polylines enclose nothing: their row and column are never.
var containsTable = [shapeTypeCount][shapeTypeCount]containsFunc{
	{containsCircleCircle, containsNever, containsCircleOutline, containsCircleOutline, containsCircleOutline, containsCircleOutline, containsNever},
	{containsNever, containsNever, containsNever, containsNever, containsNever, containsNever, containsNever},
	{containsOutlineCircle, containsNever, containsOutlines, containsOutlines, containsOutlines, containsOutlines, containsNever},
	{containsOutlineCircle, containsNever, containsOutlines, containsOutlines, containsOutlines, containsOutlines, containsNever},
	{containsRectCircle, containsNever, containsOutlines, containsOutlines, containsRectRect, containsOutlines, containsNever},
	{containsOutlineCircle, containsNever, containsOutlines, containsOutlines, containsOutlines, containsOutlines, containsNever},
	{containsNever, containsNever, containsNever, containsNever, containsNever, containsNever, containsNever},
}

var distanceTable = [shapeTypeCount][shapeTypeCount]distanceFunc{
	{distanceCircleCircle, distanceCircleOutline, distanceCircleOutline, distanceCircleOutline, distanceCircleOutline, distanceCircleOutline, distanceCircleOutline},
	{distanceOutlineCircle, distanceSegmentSegment, distanceOutlines, distanceOutlines, distanceOutlines, distanceOutlines, distanceOutlines},
	{distanceOutlineCircle, distanceOutlines, distanceOutlines, distanceOutlines, distanceOutlines, distanceOutlines, distanceOutlines},
	{distanceOutlineCircle, distanceOutlines, distanceOutlines, distanceOutlines, distanceOutlines, distanceOutlines, distanceOutlines},
	{distanceOutlineCircle, distanceOutlines, distanceOutlines, distanceOutlines, distanceOutlines, distanceOutlines, distanceOutlines},
	{distanceOutlineCircle, distanceOutlines, distanceOutlines, distanceOutlines, distanceOutlines, distanceOutlines, distanceOutlines},
	{distanceOutlineCircle, distanceOutlines, distanceOutlines, distanceOutlines, distanceOutlines, distanceOutlines, distanceOutlines},
}

// queryable reports whether s can take part in a query: non-nil, a concrete
// kind, and not a disabled collider.
func queryable(s Shape) bool {
	if s == nil {
		return false
	}
	if c, ok := s.(*Collider); ok {
		if c == nil || !c.Enabled() {
			return false
		}
	}
	t := s.ShapeType()
	return t > ShapeTypeNone && t <= ShapeTypePolyline
}

// cell maps two tags to table indices.
func cell(a, b Shape) (int, int) {
	return int(a.ShapeType()) - 1, int(b.ShapeType()) - 1
}

// Overlap reports whether a and b share any point, interior included.
func Overlap(a, b Shape) bool {
	if !queryable(a) || !queryable(b) {
		return false
	}
	i, j := cell(a, b)
	return overlapTable[i][j](a, b)
}

// Intersect returns the points where the boundaries of a and b meet. Each
// normal is b's surface normal turned toward a. Returns nil when they do not
// meet, including when one shape lies wholly inside the other.
func Intersect(a, b Shape) CollisionPoints {
	if !queryable(a) || !queryable(b) {
		return nil
	}
	i, j := cell(a, b)
	return intersectTable[i][j](a, b)
}

// ContainsShape reports whether b lies entirely inside a. Kinds without
// area never contain and are never contained.
func ContainsShape(a, b Shape) bool {
	if !queryable(a) || !queryable(b) {
		return false
	}
	i, j := cell(a, b)
	return containsTable[i][j](a, b)
}

// ClosestDistanceTo returns the nearest pair of boundary points, A on a and
// B on b. Returns the zero value when either shape cannot be queried.
func ClosestDistanceTo(a, b Shape) ClosestDistance {
	if !queryable(a) || !queryable(b) {
		return ClosestDistance{}
	}
	i, j := cell(a, b)
	return distanceTable[i][j](a, b)
}

// ContainsPoint reports whether p lies inside s (on s for zero-area kinds).
func ContainsPoint(s Shape, p Vec2) bool {
	if !queryable(s) {
		return false
	}
	switch s.ShapeType() {
	case ShapeTypeCircle:
		return s.CircleShape().ContainsPoint(p)
	case ShapeTypeSegment:
		return s.SegmentShape().ContainsPoint(p)
	case ShapeTypeRect:
		return s.RectShape().ContainsPoint(p)
	case ShapeTypePolyline:
		return s.PolylineShape().ContainsPoint(p)
	}
	return outlineOf(s).containsPoint(p)
}

// ClosestPointTo returns the boundary point of s nearest p.
func ClosestPointTo(s Shape, p Vec2) ClosestPoint {
	if !queryable(s) {
		return ClosestPoint{}
	}
	if s.ShapeType() == ShapeTypeCircle {
		return s.CircleShape().ClosestPoint(p)
	}
	return outlineOf(s).closest(p)
}

// Project sweeps s along v and returns the convex hull of the swept area.
// Circles use a DefaultCircleSegments fan.
func Project(s Shape, v Vec2) Polygon {
	return ProjectN(s, v, DefaultCircleSegments)
}

// ProjectN is Project with an explicit circle fan resolution.
func ProjectN(s Shape, v Vec2, circleSegments int) Polygon {
	if !queryable(s) {
		return nil
	}
	if s.ShapeType() == ShapeTypeCircle {
		return s.CircleShape().ProjectN(v, circleSegments)
	}
	return sweep(outlineOf(s).points, v)
}

// BoundingBox returns the axis-aligned box enclosing s, or the zero Rect
// when s cannot be queried.
func BoundingBox(s Shape) Rect {
	if !queryable(s) {
		return Rect{}
	}
	switch s.ShapeType() {
	case ShapeTypeCircle:
		return s.CircleShape().BoundingBox()
	case ShapeTypeRect:
		return s.RectShape()
	}
	return RectFromPoints(outlineOf(s).points...)
}

// --- Overlap primitives ---

func overlapCircleCircle(a, b Shape) bool {
	ca, cb := a.CircleShape(), b.CircleShape()
	r := ca.Radius + cb.Radius
	return r2.Norm2(r2.Sub(cb.Center, ca.Center)) <= r*r
}

func overlapCircleRect(a, b Shape) bool {
	c, r := a.CircleShape(), b.RectShape()
	closest := r.ClampPoint(c.Center)
	return r2.Norm2(r2.Sub(c.Center, closest)) <= c.Radius*c.Radius
}

func overlapRectCircle(a, b Shape) bool { return overlapCircleRect(b, a) }

func overlapRectRect(a, b Shape) bool {
	return a.RectShape().Intersects(b.RectShape())
}

func overlapSegmentSegment(a, b Shape) bool {
	sa, sb := a.SegmentShape(), b.SegmentShape()
	return segmentsOverlap(sa.Start, sa.End, sb.Start, sb.End)
}

func overlapCircleOutline(a, b Shape) bool {
	return circleOverlapsOutline(a.CircleShape(), outlineOf(b))
}

func overlapOutlineCircle(a, b Shape) bool {
	return circleOverlapsOutline(b.CircleShape(), outlineOf(a))
}

func overlapOutlines(a, b Shape) bool {
	return outlinesOverlap(outlineOf(a), outlineOf(b))
}

func circleOverlapsOutline(c Circle, o outline) bool {
	if o.containsPoint(c.Center) {
		return true
	}
	r2max := c.Radius * c.Radius
	for i := 0; i < o.edgeCount(); i++ {
		p, q := o.edge(i)
		closest := closestPointOnSegment(p, q, c.Center)
		if r2.Norm2(r2.Sub(closest, c.Center)) <= r2max {
			return true
		}
	}
	return false
}

func outlinesOverlap(a, b outline) bool {
	if len(a.points) == 0 || len(b.points) == 0 {
		return false
	}
	for i := 0; i < a.edgeCount(); i++ {
		a1, a2 := a.edge(i)
		for j := 0; j < b.edgeCount(); j++ {
			b1, b2 := b.edge(j)
			if segmentsOverlap(a1, a2, b1, b2) {
				return true
			}
		}
	}
	return a.containsPoint(b.points[0]) || b.containsPoint(a.points[0])
}

// --- Intersect primitives ---

func intersectCircleCircle(a, b Shape) CollisionPoints {
	ca, cb := a.CircleShape(), b.CircleShape()
	delta := r2.Sub(cb.Center, ca.Center)
	d := r2.Norm(delta)
	if d < epsilon || d > ca.Radius+cb.Radius+epsilon || d < math.Abs(ca.Radius-cb.Radius)-epsilon {
		return nil
	}
	along := (ca.Radius*ca.Radius - cb.Radius*cb.Radius + d*d) / (2 * d)
	h := math.Sqrt(math.Max(0, ca.Radius*ca.Radius-along*along))
	dir := r2.Scale(1/d, delta)
	mid := r2.Add(ca.Center, r2.Scale(along, dir))
	perp := Vec2{X: -dir.Y, Y: dir.X}

	normalAt := func(p Vec2) Vec2 {
		n := unitOrZero(r2.Sub(p, cb.Center))
		if r2.Dot(n, r2.Sub(ca.Center, p)) < 0 {
			n = r2.Scale(-1, n)
		}
		return n
	}

	p1 := r2.Add(mid, r2.Scale(h, perp))
	if h < epsilon {
		return CollisionPoints{{Point: p1, Normal: normalAt(p1)}}
	}
	p2 := r2.Sub(mid, r2.Scale(h, perp))
	return CollisionPoints{
		{Point: p1, Normal: normalAt(p1)},
		{Point: p2, Normal: normalAt(p2)},
	}
}

func intersectCircleOutline(a, b Shape) CollisionPoints {
	c, o := a.CircleShape(), outlineOf(b)
	var result CollisionPoints
	for i := 0; i < o.edgeCount(); i++ {
		p, q := o.edge(i)
		for _, pt := range intersectSegmentCircle(p, q, c.Center, c.Radius) {
			result = appendUnique(result, CollisionPoint{Point: pt, Normal: edgeNormal(p, q, c.Center)})
		}
	}
	return result
}

func intersectOutlineCircle(a, b Shape) CollisionPoints {
	o, c := outlineOf(a), b.CircleShape()
	ref := o.centroid()
	var result CollisionPoints
	for i := 0; i < o.edgeCount(); i++ {
		p, q := o.edge(i)
		for _, pt := range intersectSegmentCircle(p, q, c.Center, c.Radius) {
			n := unitOrZero(r2.Sub(pt, c.Center))
			if r2.Dot(n, r2.Sub(ref, pt)) < 0 {
				n = r2.Scale(-1, n)
			}
			result = appendUnique(result, CollisionPoint{Point: pt, Normal: n})
		}
	}
	return result
}

func intersectSegmentSegment(a, b Shape) CollisionPoints {
	sa, sb := a.SegmentShape(), b.SegmentShape()
	var result CollisionPoints
	for _, pt := range intersectSegments(sa.Start, sa.End, sb.Start, sb.End) {
		result = append(result, CollisionPoint{Point: pt, Normal: edgeNormal(sb.Start, sb.End, sa.Center())})
	}
	return result
}

func intersectOutlines(a, b Shape) CollisionPoints {
	oa, ob := outlineOf(a), outlineOf(b)
	ref := oa.centroid()
	var result CollisionPoints
	for i := 0; i < oa.edgeCount(); i++ {
		a1, a2 := oa.edge(i)
		for j := 0; j < ob.edgeCount(); j++ {
			b1, b2 := ob.edge(j)
			for _, pt := range intersectSegments(a1, a2, b1, b2) {
				result = appendUnique(result, CollisionPoint{Point: pt, Normal: edgeNormal(b1, b2, ref)})
			}
		}
	}
	return result
}

// appendUnique skips points already present; shared vertices of adjacent
// edges would otherwise report the same contact twice.
func appendUnique(points CollisionPoints, p CollisionPoint) CollisionPoints {
	for _, q := range points {
		if r2.Norm2(r2.Sub(q.Point, p.Point)) < epsilon*epsilon {
			return points
		}
	}
	return append(points, p)
}

// --- Contains primitives ---

func containsNever(_, _ Shape) bool { return false }

func containsCircleCircle(a, b Shape) bool {
	ca, cb := a.CircleShape(), b.CircleShape()
	d := r2.Norm(r2.Sub(cb.Center, ca.Center))
	return d+cb.Radius <= ca.Radius+epsilon
}

func containsCircleOutline(a, b Shape) bool {
	c, o := a.CircleShape(), outlineOf(b)
	if len(o.points) == 0 {
		return false
	}
	for _, p := range o.points {
		if !c.ContainsPoint(p) {
			return false
		}
	}
	return true
}

func containsOutlineCircle(a, b Shape) bool {
	o, c := outlineOf(a), b.CircleShape()
	if !o.containsPoint(c.Center) {
		return false
	}
	for i := 0; i < o.edgeCount(); i++ {
		p, q := o.edge(i)
		if r2.Norm(r2.Sub(closestPointOnSegment(p, q, c.Center), c.Center)) < c.Radius-epsilon {
			return false
		}
	}
	return true
}

func containsRectCircle(a, b Shape) bool {
	return a.RectShape().ContainsRect(b.CircleShape().BoundingBox())
}

func containsRectRect(a, b Shape) bool {
	return a.RectShape().ContainsRect(b.RectShape())
}

func containsOutlines(a, b Shape) bool {
	oa, ob := outlineOf(a), outlineOf(b)
	if len(ob.points) == 0 {
		return false
	}
	for _, p := range ob.points {
		if !oa.containsPoint(p) {
			return false
		}
	}
	if oa.convex {
		return true
	}
	// A concave container can hold every vertex while an edge still leaves it.
	for i := 0; i < oa.edgeCount(); i++ {
		a1, a2 := oa.edge(i)
		for j := 0; j < ob.edgeCount(); j++ {
			b1, b2 := ob.edge(j)
			if segmentsCross(a1, a2, b1, b2) {
				return false
			}
		}
	}
	return true
}

// --- Closest distance primitives ---

func distanceCircleCircle(a, b Shape) ClosestDistance {
	ca, cb := a.CircleShape(), b.CircleShape()
	dir := unitOrZero(r2.Sub(cb.Center, ca.Center))
	if dir == (Vec2{}) {
		dir = Vec2{X: 1}
	}
	return ClosestDistance{
		A: r2.Add(ca.Center, r2.Scale(ca.Radius, dir)),
		B: r2.Sub(cb.Center, r2.Scale(cb.Radius, dir)),
	}
}

func distanceCircleOutline(a, b Shape) ClosestDistance {
	return circleOutlineDistance(a.CircleShape(), outlineOf(b))
}

func distanceOutlineCircle(a, b Shape) ClosestDistance {
	d := circleOutlineDistance(b.CircleShape(), outlineOf(a))
	return ClosestDistance{A: d.B, B: d.A}
}

func circleOutlineDistance(c Circle, o outline) ClosestDistance {
	q, _ := o.closestPoint(c.Center)
	dir := unitOrZero(r2.Sub(q, c.Center))
	if dir == (Vec2{}) {
		dir = Vec2{X: 1}
	}
	return ClosestDistance{A: r2.Add(c.Center, r2.Scale(c.Radius, dir)), B: q}
}

func distanceSegmentSegment(a, b Shape) ClosestDistance {
	sa, sb := a.SegmentShape(), b.SegmentShape()
	pa, pb := closestPointsSegments(sa.Start, sa.End, sb.Start, sb.End)
	return ClosestDistance{A: pa, B: pb}
}

func distanceOutlines(a, b Shape) ClosestDistance {
	oa, ob := outlineOf(a), outlineOf(b)
	var best ClosestDistance
	bestDist := math.Inf(1)
	for i := 0; i < oa.edgeCount(); i++ {
		a1, a2 := oa.edge(i)
		for j := 0; j < ob.edgeCount(); j++ {
			b1, b2 := ob.edge(j)
			pa, pb := closestPointsSegments(a1, a2, b1, b2)
			if d := r2.Norm2(r2.Sub(pb, pa)); d < bestDist {
				best, bestDist = ClosestDistance{A: pa, B: pb}, d
			}
		}
	}
	return best
}
