package geometry

import (
	"math"

	"github.com/jbeda/geom"
)

// Affine is a 2x3 affine transformation matrix.
//
//	[a b tx]
//	[c d ty]
type Affine struct {
	A, B, TX float64
	C, D, TY float64
}

// Identity returns the identity transform
func Identity() Affine {
	return Affine{A: 1, D: 1}
}

// Translation returns a translation transform
func Translation(tx, ty float64) Affine {
	return Affine{A: 1, D: 1, TX: tx, TY: ty}
}

// Rotation returns a counter-clockwise rotation around the origin
func Rotation(radians float64) Affine {
	sin, cos := math.Sincos(radians)
	return Affine{A: cos, B: -sin, C: sin, D: cos}
}

// Apply applies the transform to a position
func (t Affine) Apply(p geom.Coord) geom.Coord {
	return geom.Coord{
		X: t.A*p.X + t.B*p.Y + t.TX,
		Y: t.C*p.X + t.D*p.Y + t.TY,
	}
}

// Compose returns this transform composed with another (this * other)
func (t Affine) Compose(other Affine) Affine {
	return Affine{
		A:  t.A*other.A + t.B*other.C,
		B:  t.A*other.B + t.B*other.D,
		TX: t.A*other.TX + t.B*other.TY + t.TX,
		C:  t.C*other.A + t.D*other.C,
		D:  t.C*other.B + t.D*other.D,
		TY: t.C*other.TX + t.D*other.TY + t.TY,
	}
}

// Det returns the determinant of the linear part. A negative determinant
// reverses orientation.
func (t Affine) Det() float64 {
	return t.A*t.D - t.B*t.C
}

// IsRigid reports whether the linear part is an isometry (a rotation or
// reflection) within the given tolerance.
func (t Affine) IsRigid(tol float64) bool {
	col1 := t.A*t.A + t.C*t.C
	col2 := t.B*t.B + t.D*t.D
	dot := t.A*t.B + t.C*t.D
	return math.Abs(col1-1) <= tol && math.Abs(col2-1) <= tol && math.Abs(dot) <= tol
}
