package geom2d

import (
	"math"

	"github.com/golang/geo/s1"

	"github.com/katalvlaran/lvlgeo/scalar"
)

// Transform is a 2×3 affine matrix in row-major order:
//
//	| A  B  C |
//	| D  E  F |
//
// mapping (x, y) to (A·x + B·y + C, D·x + E·y + F). It is the matrix form
// of the named transforms on the shape types; build one when a pipeline
// applies the same composite transform to many values.
type Transform struct {
	A, B, C float64
	D, E, F float64
}

// Identity returns the transform that maps every value to itself.
func Identity() Transform {
	return Transform{A: 1, E: 1}
}

// Translation returns the transform displacing by v.
func Translation(v Vector) Transform {
	return Transform{A: 1, C: v.X, E: 1, F: v.Y}
}

// Rotation returns the counterclockwise rotation by angle about center.
func Rotation(center Point, angle s1.Angle) Transform {
	sin, cos := math.Sincos(angle.Radians())

	return Transform{
		A: cos, B: -sin, C: center.X - cos*center.X + sin*center.Y,
		D: sin, E: cos, F: center.Y - sin*center.X - cos*center.Y,
	}
}

// Scaling returns the uniform scaling by factor about center.
func Scaling(center Point, factor float64) Transform {
	return Transform{
		A: factor, C: center.X * (1 - factor),
		E: factor, F: center.Y * (1 - factor),
	}
}

// Mirroring returns the reflection across axis.
func Mirroring(axis Axis) Transform {
	d := axis.Direction
	o := axis.Origin
	// Householder reflection in matrix form: M = 2·ddᵀ - I.
	a := 2*d.x*d.x - 1
	b := 2 * d.x * d.y
	e := 2*d.y*d.y - 1

	return Transform{
		A: a, B: b, C: o.X - a*o.X - b*o.Y,
		D: b, E: e, F: o.Y - b*o.X - e*o.Y,
	}
}

// Mul composes transforms: the result applies u first, then t.
func (t Transform) Mul(u Transform) Transform {
	return Transform{
		A: t.A*u.A + t.B*u.D,
		B: t.A*u.B + t.B*u.E,
		C: t.A*u.C + t.B*u.F + t.C,
		D: t.D*u.A + t.E*u.D,
		E: t.D*u.B + t.E*u.E,
		F: t.D*u.C + t.E*u.F + t.F,
	}
}

// Invert returns the inverse transform, reporting false when t is singular.
func (t Transform) Invert() (Transform, bool) {
	det := t.A*t.E - t.B*t.D
	if det == 0 {
		return Transform{}, false
	}
	inv := 1 / det

	return Transform{
		A: t.E * inv,
		B: -t.B * inv,
		C: (t.B*t.F - t.C*t.E) * inv,
		D: -t.D * inv,
		E: t.A * inv,
		F: (t.C*t.D - t.A*t.F) * inv,
	}, true
}

// Point applies t to a position.
func (t Transform) Point(p Point) Point {
	return Point{
		X: t.A*p.X + t.B*p.Y + t.C,
		Y: t.D*p.X + t.E*p.Y + t.F,
	}
}

// Vector applies the linear part of t to a displacement; translation does
// not participate.
func (t Transform) Vector(v Vector) Vector {
	return Vector{
		X: t.A*v.X + t.B*v.Y,
		Y: t.D*v.X + t.E*v.Y,
	}
}

// IsIdentity reports whether t is the identity within tol.
func (t Transform) IsIdentity(tol float64) bool {
	return scalar.EqualWithin(t.A, 1, tol) && scalar.EqualWithin(t.B, 0, tol) &&
		scalar.EqualWithin(t.C, 0, tol) && scalar.EqualWithin(t.D, 0, tol) &&
		scalar.EqualWithin(t.E, 1, tol) && scalar.EqualWithin(t.F, 0, tol)
}
