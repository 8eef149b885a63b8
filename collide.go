package collide

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// Vec2 is a 2D vector used for positions, offsets, sizes, and directions
// throughout the API. Arithmetic is done with the gonum r2 functions.
type Vec2 = r2.Vec

// Rect is an axis-aligned rectangle. The coordinate system has its origin at
// the top-left, with Y increasing downward. Rect is both the Rect shape kind
// and the bounding-box type returned by every shape.
type Rect struct {
	X, Y, Width, Height float64
}

// RectFromPoints returns the smallest Rect enclosing every point.
// Returns the zero Rect for an empty slice.
func RectFromPoints(points ...Vec2) Rect {
	if len(points) == 0 {
		return Rect{}
	}
	minX, minY := points[0].X, points[0].Y
	maxX, maxY := minX, minY
	for _, p := range points[1:] {
		minX = math.Min(minX, p.X)
		minY = math.Min(minY, p.Y)
		maxX = math.Max(maxX, p.X)
		maxY = math.Max(maxY, p.Y)
	}
	return Rect{minX, minY, maxX - minX, maxY - minY}
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// Intersects reports whether r and other overlap.
// Adjacent rectangles (sharing only an edge) are considered intersecting.
func (r Rect) Intersects(other Rect) bool {
	return r.X <= other.X+other.Width &&
		r.X+r.Width >= other.X &&
		r.Y <= other.Y+other.Height &&
		r.Y+r.Height >= other.Y
}

// Union returns the smallest Rect containing both r and other.
// A zero-size Rect at the origin is treated as empty.
func (r Rect) Union(other Rect) Rect {
	if r == (Rect{}) {
		return other
	}
	if other == (Rect{}) {
		return r
	}
	minX := math.Min(r.X, other.X)
	minY := math.Min(r.Y, other.Y)
	maxX := math.Max(r.X+r.Width, other.X+other.Width)
	maxY := math.Max(r.Y+r.Height, other.Y+other.Height)
	return Rect{minX, minY, maxX - minX, maxY - minY}
}

// Center returns the midpoint of the rectangle.
func (r Rect) Center() Vec2 {
	return Vec2{X: r.X + r.Width/2, Y: r.Y + r.Height/2}
}

// Min returns the top-left corner.
func (r Rect) Min() Vec2 { return Vec2{X: r.X, Y: r.Y} }

// Max returns the bottom-right corner.
func (r Rect) Max() Vec2 { return Vec2{X: r.X + r.Width, Y: r.Y + r.Height} }

// Corners returns the four corners in clockwise order (screen space),
// starting at the top-left.
func (r Rect) Corners() [4]Vec2 {
	return [4]Vec2{
		{X: r.X, Y: r.Y},
		{X: r.X + r.Width, Y: r.Y},
		{X: r.X + r.Width, Y: r.Y + r.Height},
		{X: r.X, Y: r.Y + r.Height},
	}
}

// ShapeType tags the concrete geometric kind a Shape currently represents.
type ShapeType uint8

const (
	ShapeTypeNone     ShapeType = iota // no concrete shape; every query fails
	ShapeTypeCircle                    // center + radius
	ShapeTypeSegment                   // two endpoints, zero area
	ShapeTypeTriangle                  // three vertices
	ShapeTypeQuad                      // four vertices, may be rotated
	ShapeTypeRect                      // axis-aligned rectangle
	ShapeTypePolygon                   // closed vertex loop
	ShapeTypePolyline                  // open vertex chain, zero area
)

// shapeTypeCount is the number of concrete kinds (None excluded).
const shapeTypeCount = 7

func (t ShapeType) String() string {
	switch t {
	case ShapeTypeCircle:
		return "circle"
	case ShapeTypeSegment:
		return "segment"
	case ShapeTypeTriangle:
		return "triangle"
	case ShapeTypeQuad:
		return "quad"
	case ShapeTypeRect:
		return "rect"
	case ShapeTypePolygon:
		return "polygon"
	case ShapeTypePolyline:
		return "polyline"
	default:
		return "none"
	}
}

// BitFlag is a set of up to 32 collision groups. The zero value is the empty set.
type BitFlag uint32

// Layer returns the set holding only group n (0-31).
func Layer(n uint) BitFlag {
	return BitFlag(1) << (n & 31)
}

// Has reports whether any group in other is also in f.
func (f BitFlag) Has(other BitFlag) bool {
	return f&other != 0
}

// Add returns f with the groups of other added.
func (f BitFlag) Add(other BitFlag) BitFlag { return f | other }

// Remove returns f without the groups of other.
func (f BitFlag) Remove(other BitFlag) BitFlag { return f &^ other }

// IsEmpty reports whether f holds no groups.
func (f BitFlag) IsEmpty() bool { return f == 0 }
