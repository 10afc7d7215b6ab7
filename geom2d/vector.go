package geom2d

import (
	"math"

	"github.com/golang/geo/s1"

	"github.com/katalvlaran/lvlgeo/scalar"
)

// Vector is a planar displacement: a direction and magnitude with no fixed
// position. Use Point for positions; the distinction keeps transform
// semantics honest (vectors ignore translation and frame origins).
type Vector struct {
	X, Y float64
}

// Vec builds a Vector from its components.
func Vec(x, y float64) Vector {
	return Vector{X: x, Y: y}
}

// Add returns v + w.
func (v Vector) Add(w Vector) Vector {
	return Vector{X: v.X + w.X, Y: v.Y + w.Y}
}

// Sub returns v - w.
func (v Vector) Sub(w Vector) Vector {
	return Vector{X: v.X - w.X, Y: v.Y - w.Y}
}

// Mul returns v scaled by s.
func (v Vector) Mul(s float64) Vector {
	return Vector{X: v.X * s, Y: v.Y * s}
}

// Neg returns the reversed vector.
func (v Vector) Neg() Vector {
	return Vector{X: -v.X, Y: -v.Y}
}

// Dot returns the dot product of v and w.
func (v Vector) Dot(w Vector) float64 {
	return v.X*w.X + v.Y*w.Y
}

// Cross returns the scalar 2D cross product of v and w: the z component of
// the corresponding 3D cross product. Positive when w lies counterclockwise
// from v.
func (v Vector) Cross(w Vector) float64 {
	return v.X*w.Y - v.Y*w.X
}

// Length returns the magnitude of v.
func (v Vector) Length() float64 {
	return math.Hypot(v.X, v.Y)
}

// LengthSquared returns the squared magnitude, cheaper than Length when only
// comparisons are needed.
func (v Vector) LengthSquared() float64 {
	return v.X*v.X + v.Y*v.Y
}

// IsZero reports whether both components are exactly zero.
func (v Vector) IsZero() bool {
	return v.X == 0 && v.Y == 0
}

// Perpendicular returns v rotated 90° counterclockwise.
func (v Vector) Perpendicular() Vector {
	return Vector{X: -v.Y, Y: v.X}
}

// Lerp interpolates linearly from v (t=0) to w (t=1).
func (v Vector) Lerp(w Vector, t float64) Vector {
	return Vector{
		X: scalar.Lerp(v.X, w.X, t),
		Y: scalar.Lerp(v.Y, w.Y, t),
	}
}

// Direction returns the unit direction of v, reporting false for the zero
// vector, which has none.
func (v Vector) Direction() (Direction, bool) {
	length := v.Length()
	if length == 0 {
		return Direction{}, false
	}

	return Direction{x: v.X / length, y: v.Y / length}, true
}

// ComponentIn returns the signed length of v measured along d.
func (v Vector) ComponentIn(d Direction) float64 {
	return v.X*d.x + v.Y*d.y
}

// Rotate returns v rotated counterclockwise by the given angle.
func (v Vector) Rotate(angle s1.Angle) Vector {
	sin, cos := math.Sincos(angle.Radians())

	return Vector{
		X: v.X*cos - v.Y*sin,
		Y: v.X*sin + v.Y*cos,
	}
}

// MirrorAcross reflects v across the direction of axis. The axis origin is
// irrelevant for vectors.
func (v Vector) MirrorAcross(axis Axis) Vector {
	d := axis.Direction
	// Householder reflection: 2(v·d)d - v.
	dot2 := 2 * (v.X*d.x + v.Y*d.y)

	return Vector{X: dot2*d.x - v.X, Y: dot2*d.y - v.Y}
}

// RelativeTo expresses v in the coordinates of frame. Only the basis
// directions participate; translation does not apply to displacements.
func (v Vector) RelativeTo(frame Frame) Vector {
	return Vector{
		X: v.ComponentIn(frame.XDirection),
		Y: v.ComponentIn(frame.YDirection),
	}
}

// PlaceIn reinterprets frame-local components of v as global components.
// Inverse of RelativeTo for orthonormal frames.
func (v Vector) PlaceIn(frame Frame) Vector {
	return Vector{
		X: v.X*frame.XDirection.x + v.Y*frame.YDirection.x,
		Y: v.X*frame.XDirection.y + v.Y*frame.YDirection.y,
	}
}

// EqualWithin reports componentwise equality within tol.
func (v Vector) EqualWithin(w Vector, tol float64) bool {
	return scalar.EqualWithin(v.X, w.X, tol) && scalar.EqualWithin(v.Y, w.Y, tol)
}
