// Package debugdraw renders collide shapes, bounds and contact points onto
// an ebiten image for visual debugging.
//
// A Drawer batches everything queued during a frame into one DrawTriangles
// call. Hook it into a shape tree with AttachContainer or AttachCollider and
// call Flush once per frame after World.Draw:
//
//	d := debugdraw.NewDrawer()
//	debugdraw.AttachContainer(root, d, debugdraw.ColorGreen)
//	world.Draw()
//	d.Flush(screen)
package debugdraw

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/phanxgames/collide"
)

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
// Premultiplication occurs when vertices are built.
type Color struct {
	R, G, B, A float64
}

// Common debug colors.
var (
	ColorWhite  = Color{1, 1, 1, 1}
	ColorGreen  = Color{0.2, 0.9, 0.3, 1}
	ColorRed    = Color{0.95, 0.2, 0.2, 1}
	ColorYellow = Color{1, 0.85, 0.1, 1}
	ColorCyan   = Color{0.2, 0.8, 0.95, 1}
)

// toRGBA converts a Color to a premultiplied color.RGBA.
func (c Color) toRGBA() color.RGBA {
	return color.RGBA{
		R: uint8(c.R*c.A*255 + 0.5),
		G: uint8(c.G*c.A*255 + 0.5),
		B: uint8(c.B*c.A*255 + 0.5),
		A: uint8(c.A*255 + 0.5),
	}
}

// --- White pixel singleton (no sync.Once; drawing is single-threaded) ---

var whitePixelImage *ebiten.Image

// ensureWhitePixel returns a lazily-initialized 1x1 white pixel image.
func ensureWhitePixel() *ebiten.Image {
	if whitePixelImage == nil {
		whitePixelImage = ebiten.NewImage(1, 1)
		whitePixelImage.Fill(ColorWhite.toRGBA())
	}
	return whitePixelImage
}

// Drawer accumulates debug geometry and submits it in a single batch.
type Drawer struct {
	// LineWidth is the stroke width in screen pixels.
	LineWidth float64
	// CircleSegments is the fan resolution for circles.
	CircleSegments int
	// PointSize is the side of the square marking a contact point.
	PointSize float64
	// NormalLength is the length of the line drawn along a contact normal.
	NormalLength float64
	// View maps world space to screen space. Identity by default.
	View [6]float64

	verts []ebiten.Vertex
	inds  []uint16
}

// NewDrawer creates a drawer with a 1px stroke and an identity view.
func NewDrawer() *Drawer {
	return &Drawer{
		LineWidth:      1,
		CircleSegments: 24,
		PointSize:      4,
		NormalLength:   12,
		View:           [6]float64{1, 0, 0, 1, 0, 0},
	}
}

// Len returns the number of queued vertices.
func (d *Drawer) Len() int { return len(d.verts) }

// Reset discards queued geometry.
func (d *Drawer) Reset() {
	d.verts = d.verts[:0]
	d.inds = d.inds[:0]
}

// Shape queues the outline of s.
func (d *Drawer) Shape(s collide.Shape, c Color) {
	pts, closed := Outline(s, d.CircleSegments)
	d.Polyline(pts, closed, c)
}

// FillShape queues a filled, fan-triangulated s. Only circles, triangles,
// quads, rects and convex polygons fill correctly.
func (d *Drawer) FillShape(s collide.Shape, c Color) {
	pts, closed := Outline(s, d.CircleSegments)
	if !closed {
		d.Polyline(pts, false, c)
		return
	}
	if !d.fits(len(pts)) {
		return
	}
	d.verts, d.inds = appendFill(d.verts, d.inds, pts, c)
}

// Bounds queues the outline of r.
func (d *Drawer) Bounds(r collide.Rect, c Color) {
	corners := r.Corners()
	d.Polyline(corners[:], true, c)
}

// Polyline queues a stroked path.
func (d *Drawer) Polyline(points []collide.Vec2, closed bool, c Color) {
	if len(points) < 2 || !d.fits(4*strokeSegments(len(points), closed)) {
		return
	}
	d.verts, d.inds = appendStroke(d.verts, d.inds, points, closed, d.LineWidth, c)
}

// Points queues a marker and a normal line for each contact point.
func (d *Drawer) Points(points collide.CollisionPoints, c Color) {
	h := d.PointSize / 2
	for _, p := range points {
		x, y := p.Point.X, p.Point.Y
		box := []collide.Vec2{{X: x - h, Y: y - h}, {X: x + h, Y: y - h}, {X: x + h, Y: y + h}, {X: x - h, Y: y + h}}
		if !d.fits(len(box)) {
			return
		}
		d.verts, d.inds = appendFill(d.verts, d.inds, box, c)
		if p.IsValid() {
			end := collide.Vec2{X: x + p.Normal.X*d.NormalLength, Y: y + p.Normal.Y*d.NormalLength}
			d.Polyline([]collide.Vec2{p.Point, end}, false, c)
		}
	}
}

// Flush transforms the queued geometry by View, draws it onto target and
// clears the queue. Does nothing when the queue is empty.
func (d *Drawer) Flush(target *ebiten.Image) {
	if len(d.verts) == 0 {
		return
	}
	transformVertices(d.verts, d.View)
	var op ebiten.DrawTrianglesOptions
	op.ColorScaleMode = ebiten.ColorScaleModePremultipliedAlpha
	target.DrawTriangles(d.verts, d.inds, ensureWhitePixel(), &op)
	d.Reset()
}

// maxBatchVerts keeps every index within uint16 range.
const maxBatchVerts = 1 << 16

// fits reports whether n more vertices can join the batch. Geometry that
// does not fit is dropped until the next Flush.
func (d *Drawer) fits(n int) bool {
	return len(d.verts)+n <= maxBatchVerts
}

// AttachContainer sets c.OnDraw to queue c's world shape on d. Any previous
// OnDraw is still called first.
func AttachContainer(c *collide.ShapeContainer, d *Drawer, col Color) {
	prev := c.OnDraw
	c.OnDraw = func() {
		if prev != nil {
			prev()
		}
		d.Shape(c, col)
	}
}

// AttachCollider sets c.OnDraw to queue c's world shape on d, drawing it in
// disabled when the collider is disabled.
func AttachCollider(c *collide.Collider, d *Drawer, enabled, disabled Color) {
	prev := c.OnDraw
	c.OnDraw = func() {
		if prev != nil {
			prev()
		}
		col := enabled
		if !c.Enabled() {
			col = disabled
		}
		d.Shape(c.WorldShape(), col)
	}
}
