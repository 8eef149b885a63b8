package collide

// Shape is implemented by everything the dispatch engine can query: the seven
// world-space kinds themselves, ShapeNode, ShapeContainer and Collider.
//
// ShapeType reports the one kind the value currently represents. The accessor
// matching that kind returns a populated value; every other accessor returns
// the zero value, so callers must check the tag before trusting an accessor.
type Shape interface {
	ShapeType() ShapeType
	CircleShape() Circle
	SegmentShape() Segment
	TriangleShape() Triangle
	QuadShape() Quad
	RectShape() Rect
	PolygonShape() Polygon
	PolylineShape() Polyline
}

// outlineOf converts any straight-edged kind to its vertex form.
// Circles and None yield an empty outline.
func outlineOf(s Shape) outline {
	switch s.ShapeType() {
	case ShapeTypeSegment:
		seg := s.SegmentShape()
		return outline{points: []Vec2{seg.Start, seg.End}}
	case ShapeTypeTriangle:
		t := s.TriangleShape()
		return outline{points: []Vec2{t.A, t.B, t.C}, closed: true, convex: true}
	case ShapeTypeQuad:
		q := s.QuadShape()
		pts := []Vec2{q.A, q.B, q.C, q.D}
		return outline{points: pts, closed: true, convex: isConvex(pts)}
	case ShapeTypeRect:
		c := s.RectShape().Corners()
		return outline{points: c[:], closed: true, convex: true}
	case ShapeTypePolygon:
		p := s.PolygonShape()
		return outline{points: p, closed: true, convex: isConvex(p)}
	case ShapeTypePolyline:
		return outline{points: s.PolylineShape()}
	}
	return outline{}
}

// TransformShape maps a shape defined in relative local units into world
// space with t. None passes through unchanged.
func TransformShape(s Shape, t Transform2D) Shape {
	switch s.ShapeType() {
	case ShapeTypeCircle:
		return s.CircleShape().Transform(t)
	case ShapeTypeSegment:
		return s.SegmentShape().Transform(t)
	case ShapeTypeTriangle:
		return s.TriangleShape().Transform(t)
	case ShapeTypeQuad:
		return s.QuadShape().Transform(t)
	case ShapeTypeRect:
		return s.RectShape().Transform(t)
	case ShapeTypePolygon:
		return s.PolygonShape().Transform(t)
	case ShapeTypePolyline:
		return s.PolylineShape().Transform(t)
	}
	return noShape{}
}

// noShape is the None kind. Every accessor returns the zero value.
type noShape struct{}

func (noShape) ShapeType() ShapeType    { return ShapeTypeNone }
func (noShape) CircleShape() Circle     { return Circle{} }
func (noShape) SegmentShape() Segment   { return Segment{} }
func (noShape) TriangleShape() Triangle { return Triangle{} }
func (noShape) QuadShape() Quad         { return Quad{} }
func (noShape) RectShape() Rect         { return Rect{} }
func (noShape) PolygonShape() Polygon   { return nil }
func (noShape) PolylineShape() Polyline { return nil }

// --- Accessors ---

func (Circle) ShapeType() ShapeType    { return ShapeTypeCircle }
func (c Circle) CircleShape() Circle   { return c }
func (Circle) SegmentShape() Segment   { return Segment{} }
func (Circle) TriangleShape() Triangle { return Triangle{} }
func (Circle) QuadShape() Quad         { return Quad{} }
func (Circle) RectShape() Rect         { return Rect{} }
func (Circle) PolygonShape() Polygon   { return nil }
func (Circle) PolylineShape() Polyline { return nil }

func (Segment) ShapeType() ShapeType    { return ShapeTypeSegment }
func (Segment) CircleShape() Circle     { return Circle{} }
func (s Segment) SegmentShape() Segment { return s }
func (Segment) TriangleShape() Triangle { return Triangle{} }
func (Segment) QuadShape() Quad         { return Quad{} }
func (Segment) RectShape() Rect         { return Rect{} }
func (Segment) PolygonShape() Polygon   { return nil }
func (Segment) PolylineShape() Polyline { return nil }

func (Triangle) ShapeType() ShapeType      { return ShapeTypeTriangle }
func (Triangle) CircleShape() Circle       { return Circle{} }
func (Triangle) SegmentShape() Segment     { return Segment{} }
func (t Triangle) TriangleShape() Triangle { return t }
func (Triangle) QuadShape() Quad           { return Quad{} }
func (Triangle) RectShape() Rect           { return Rect{} }
func (Triangle) PolygonShape() Polygon     { return nil }
func (Triangle) PolylineShape() Polyline   { return nil }

func (Quad) ShapeType() ShapeType    { return ShapeTypeQuad }
func (Quad) CircleShape() Circle     { return Circle{} }
func (Quad) SegmentShape() Segment   { return Segment{} }
func (Quad) TriangleShape() Triangle { return Triangle{} }
func (q Quad) QuadShape() Quad       { return q }
func (Quad) RectShape() Rect         { return Rect{} }
func (Quad) PolygonShape() Polygon   { return nil }
func (Quad) PolylineShape() Polyline { return nil }

func (Rect) ShapeType() ShapeType    { return ShapeTypeRect }
func (Rect) CircleShape() Circle     { return Circle{} }
func (Rect) SegmentShape() Segment   { return Segment{} }
func (Rect) TriangleShape() Triangle { return Triangle{} }
func (Rect) QuadShape() Quad         { return Quad{} }
func (r Rect) RectShape() Rect       { return r }
func (Rect) PolygonShape() Polygon   { return nil }
func (Rect) PolylineShape() Polyline { return nil }

func (Polygon) ShapeType() ShapeType    { return ShapeTypePolygon }
func (Polygon) CircleShape() Circle     { return Circle{} }
func (Polygon) SegmentShape() Segment   { return Segment{} }
func (Polygon) TriangleShape() Triangle { return Triangle{} }
func (Polygon) QuadShape() Quad         { return Quad{} }
func (Polygon) RectShape() Rect         { return Rect{} }
func (p Polygon) PolygonShape() Polygon { return p }
func (Polygon) PolylineShape() Polyline { return nil }

func (Polyline) ShapeType() ShapeType      { return ShapeTypePolyline }
func (Polyline) CircleShape() Circle       { return Circle{} }
func (Polyline) SegmentShape() Segment     { return Segment{} }
func (Polyline) TriangleShape() Triangle   { return Triangle{} }
func (Polyline) QuadShape() Quad           { return Quad{} }
func (Polyline) RectShape() Rect           { return Rect{} }
func (Polyline) PolygonShape() Polygon     { return nil }
func (p Polyline) PolylineShape() Polyline { return p }
