package debugdraw

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/phanxgames/collide"
)

// Outline returns the world-space outline of s and whether it is closed.
// Circles are approximated with the given number of segments (minimum 3).
// Kind None yields nil.
func Outline(s collide.Shape, circleSegments int) ([]collide.Vec2, bool) {
	if s == nil {
		return nil, false
	}
	switch s.ShapeType() {
	case collide.ShapeTypeCircle:
		return s.CircleShape().ToPolygon(circleSegments), true
	case collide.ShapeTypeSegment:
		seg := s.SegmentShape()
		return []collide.Vec2{seg.Start, seg.End}, false
	case collide.ShapeTypeTriangle:
		return s.TriangleShape().Vertices(), true
	case collide.ShapeTypeQuad:
		return s.QuadShape().Vertices(), true
	case collide.ShapeTypeRect:
		c := s.RectShape().Corners()
		return c[:], true
	case collide.ShapeTypePolygon:
		return s.PolygonShape(), true
	case collide.ShapeTypePolyline:
		return s.PolylineShape(), false
	default:
		return nil, false
	}
}

// StrokeMesh builds a line mesh along points: one quad of the given width
// per segment, plus the closing segment when closed is set.
// For S segments: 4S vertices, 6S indices.
func StrokeMesh(points []collide.Vec2, closed bool, width float64, c Color) ([]ebiten.Vertex, []uint16) {
	return appendStroke(nil, nil, points, closed, width, c)
}

func appendStroke(verts []ebiten.Vertex, inds []uint16, points []collide.Vec2, closed bool, width float64, c Color) ([]ebiten.Vertex, []uint16) {
	n := len(points)
	if n < 2 {
		return verts, inds
	}
	segs := strokeSegments(n, closed)
	halfW := width / 2
	for i := 0; i < segs; i++ {
		a := points[i]
		b := points[(i+1)%n]
		nx, ny := perpendicular(a, b)
		base := uint16(len(verts))
		verts = append(verts,
			vertex(a.X+nx*halfW, a.Y+ny*halfW, c),
			vertex(a.X-nx*halfW, a.Y-ny*halfW, c),
			vertex(b.X+nx*halfW, b.Y+ny*halfW, c),
			vertex(b.X-nx*halfW, b.Y-ny*halfW, c),
		)
		inds = append(inds, base, base+1, base+2, base+1, base+3, base+2)
	}
	return verts, inds
}

// FillMesh builds a fan-triangulated mesh of a convex outline.
// N vertices, 3*(N-2) indices.
func FillMesh(points []collide.Vec2, c Color) ([]ebiten.Vertex, []uint16) {
	return appendFill(nil, nil, points, c)
}

func appendFill(verts []ebiten.Vertex, inds []uint16, points []collide.Vec2, c Color) ([]ebiten.Vertex, []uint16) {
	n := len(points)
	if n < 3 {
		return verts, inds
	}
	base := uint16(len(verts))
	for _, p := range points {
		verts = append(verts, vertex(p.X, p.Y, c))
	}
	for i := 1; i < n-1; i++ {
		inds = append(inds, base, base+uint16(i), base+uint16(i+1))
	}
	return verts, inds
}

// strokeSegments returns how many quads a stroke through n points needs.
func strokeSegments(n int, closed bool) int {
	switch {
	case n < 2:
		return 0
	case closed && n > 2:
		return n
	default:
		return n - 1
	}
}

// transformVertices applies an affine view transform to verts in place.
//
// Matrix layout: [0]=a, [1]=b, [2]=c, [3]=d, [4]=tx, [5]=ty
// newX = a*x + c*y + tx, newY = b*x + d*y + ty
func transformVertices(verts []ebiten.Vertex, m [6]float64) {
	a, b, c, d, tx, ty := m[0], m[1], m[2], m[3], m[4], m[5]
	for i := range verts {
		x := float64(verts[i].DstX)
		y := float64(verts[i].DstY)
		verts[i].DstX = float32(a*x + c*y + tx)
		verts[i].DstY = float32(b*x + d*y + ty)
	}
}

// vertex builds a premultiplied-alpha vertex sampling the white pixel.
func vertex(x, y float64, c Color) ebiten.Vertex {
	return ebiten.Vertex{
		DstX:   float32(x),
		DstY:   float32(y),
		SrcX:   0.5,
		SrcY:   0.5,
		ColorR: float32(c.R * c.A),
		ColorG: float32(c.G * c.A),
		ColorB: float32(c.B * c.A),
		ColorA: float32(c.A),
	}
}

// perpendicular returns the unit left-perpendicular of the segment from a to b.
func perpendicular(a, b collide.Vec2) (float64, float64) {
	dx := b.X - a.X
	dy := b.Y - a.Y
	ln := math.Sqrt(dx*dx + dy*dy)
	if ln < 1e-10 {
		return 0, -1
	}
	return -dy / ln, dx / ln
}
