package collide

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// identityMatrix is the identity affine matrix.
var identityMatrix = [6]float64{1, 0, 0, 1, 0, 0}

// Transform2D is an immutable 2D pose. Size is an extent in world units that
// shape definitions are expressed relative to; Scale multiplies it.
//
// The identity transform (zero position, rotation and size, unit scale) is
// used as an offset sentinel: composing anything with it is a no-op.
type Transform2D struct {
	Position Vec2
	Rotation float64
	Size     Vec2
	Scale    float64
}

// IdentityTransform is the neutral offset.
var IdentityTransform = Transform2D{Scale: 1}

// UnitTransform places relative shapes unchanged: unit size, unit scale, at
// the origin. It is the usual root and body transform.
var UnitTransform = Transform2D{Size: Vec2{X: 1, Y: 1}, Scale: 1}

// NewTransform creates a transform from its components.
func NewTransform(position Vec2, rotation float64, size Vec2, scale float64) Transform2D {
	return Transform2D{Position: position, Rotation: rotation, Size: size, Scale: scale}
}

// IsIdentity reports whether t is the identity sentinel.
func (t Transform2D) IsIdentity() bool {
	return t == IdentityTransform
}

// ScaledSize returns Size multiplied by Scale.
func (t Transform2D) ScaledSize() Vec2 {
	return r2.Scale(t.Scale, t.Size)
}

// Compose derives a child's world transform from parent and a local offset.
// Each flag gates one offset component; a disabled component is inherited
// from parent unchanged. An identity offset, or all flags off, returns parent
// exactly.
func Compose(parent, offset Transform2D, moves, rotates, scales bool) Transform2D {
	if offset.IsIdentity() || (!moves && !rotates && !scales) {
		return parent
	}
	result := parent
	if moves {
		local := r2.Scale(parent.Scale, offset.Position)
		result.Position = r2.Add(parent.Position, rotate(local, parent.Rotation))
	}
	if rotates {
		result.Rotation = parent.Rotation + offset.Rotation
	}
	if scales {
		result.Size = r2.Add(parent.Size, offset.Size)
		result.Scale = parent.Scale * offset.Scale
	}
	return result
}

// Matrix returns the affine matrix [a, b, c, d, tx, ty] mapping relative
// local points to world space.
//
// Composition order:
//
//	Scale(ScaledSize) -> Rotate -> Translate(Position)
func (t Transform2D) Matrix() [6]float64 {
	s := t.ScaledSize()
	sin, cos := math.Sincos(t.Rotation)
	placed := [6]float64{cos, sin, -sin, cos, t.Position.X, t.Position.Y}
	return multiplyAffine(placed, [6]float64{s.X, 0, 0, s.Y, 0, 0})
}

// Apply maps a relative local point into world space.
func (t Transform2D) Apply(p Vec2) Vec2 {
	x, y := transformPoint(t.Matrix(), p.X, p.Y)
	return Vec2{X: x, Y: y}
}

// Unapply maps a world point back to relative local coordinates. A degenerate
// transform (zero scaled size) maps through the identity matrix.
func (t Transform2D) Unapply(p Vec2) Vec2 {
	x, y := transformPoint(invertAffine(t.Matrix()), p.X, p.Y)
	return Vec2{X: x, Y: y}
}

// rotate rotates v by angle radians around the origin.
func rotate(v Vec2, angle float64) Vec2 {
	if angle == 0 {
		return v
	}
	return r2.Rotate(v, angle, Vec2{})
}

// multiplyAffine multiplies two 2D affine matrices: result = parent * child.
//
//	Matrix layout: [a, b, c, d, tx, ty]
//	| a  c  tx |
//	| b  d  ty |
//	| 0  0   1 |
func multiplyAffine(p, c [6]float64) [6]float64 {
	return [6]float64{
		p[0]*c[0] + p[2]*c[1],
		p[1]*c[0] + p[3]*c[1],
		p[0]*c[2] + p[2]*c[3],
		p[1]*c[2] + p[3]*c[3],
		p[0]*c[4] + p[2]*c[5] + p[4],
		p[1]*c[4] + p[3]*c[5] + p[5],
	}
}

// invertAffine computes the inverse of a 2D affine matrix.
// Returns the identity matrix if the matrix is singular (determinant ~ 0).
func invertAffine(m [6]float64) [6]float64 {
	det := m[0]*m[3] - m[2]*m[1]
	if det > -1e-12 && det < 1e-12 {
		return identityMatrix
	}
	invDet := 1.0 / det
	a := m[3] * invDet
	b := -m[1] * invDet
	c := -m[2] * invDet
	d := m[0] * invDet
	return [6]float64{
		a, b, c, d,
		-(a*m[4] + c*m[5]),
		-(b*m[4] + d*m[5]),
	}
}

// transformPoint applies an affine matrix to a point.
func transformPoint(m [6]float64, x, y float64) (float64, float64) {
	return m[0]*x + m[2]*y + m[4], m[1]*x + m[3]*y + m[5]
}
