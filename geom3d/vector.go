package geom3d

import (
	"math"

	"github.com/golang/geo/r3"
	"github.com/golang/geo/s1"

	"github.com/katalvlaran/lvlgeo/scalar"
)

// Vector is a spatial displacement: a direction and magnitude with no fixed
// position.
type Vector struct {
	X, Y, Z float64
}

// Vec builds a Vector from its components.
func Vec(x, y, z float64) Vector {
	return Vector{X: x, Y: y, Z: z}
}

// FromR3 converts an r3.Vector from github.com/golang/geo.
func FromR3(v r3.Vector) Vector {
	return Vector{X: v.X, Y: v.Y, Z: v.Z}
}

// R3 converts v to an r3.Vector for interop with github.com/golang/geo.
func (v Vector) R3() r3.Vector {
	return r3.Vector{X: v.X, Y: v.Y, Z: v.Z}
}

// Add returns v + w.
func (v Vector) Add(w Vector) Vector {
	return Vector{X: v.X + w.X, Y: v.Y + w.Y, Z: v.Z + w.Z}
}

// Sub returns v - w.
func (v Vector) Sub(w Vector) Vector {
	return Vector{X: v.X - w.X, Y: v.Y - w.Y, Z: v.Z - w.Z}
}

// Mul returns v scaled by s.
func (v Vector) Mul(s float64) Vector {
	return Vector{X: v.X * s, Y: v.Y * s, Z: v.Z * s}
}

// Neg returns the reversed vector.
func (v Vector) Neg() Vector {
	return Vector{X: -v.X, Y: -v.Y, Z: -v.Z}
}

// Dot returns the dot product of v and w.
func (v Vector) Dot(w Vector) float64 {
	return v.X*w.X + v.Y*w.Y + v.Z*w.Z
}

// Cross returns the cross product v × w.
func (v Vector) Cross(w Vector) Vector {
	return Vector{
		X: v.Y*w.Z - v.Z*w.Y,
		Y: v.Z*w.X - v.X*w.Z,
		Z: v.X*w.Y - v.Y*w.X,
	}
}

// Length returns the magnitude of v.
func (v Vector) Length() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}

// LengthSquared returns the squared magnitude.
func (v Vector) LengthSquared() float64 {
	return v.X*v.X + v.Y*v.Y + v.Z*v.Z
}

// IsZero reports whether all components are exactly zero.
func (v Vector) IsZero() bool {
	return v.X == 0 && v.Y == 0 && v.Z == 0
}

// Lerp interpolates linearly from v (t=0) to w (t=1).
func (v Vector) Lerp(w Vector, t float64) Vector {
	return Vector{
		X: scalar.Lerp(v.X, w.X, t),
		Y: scalar.Lerp(v.Y, w.Y, t),
		Z: scalar.Lerp(v.Z, w.Z, t),
	}
}

// Direction returns the unit direction of v, reporting false for the zero
// vector.
func (v Vector) Direction() (Direction, bool) {
	length := v.Length()
	if length == 0 {
		return Direction{}, false
	}

	return Direction{x: v.X / length, y: v.Y / length, z: v.Z / length}, true
}

// ComponentIn returns the signed length of v measured along d.
func (v Vector) ComponentIn(d Direction) float64 {
	return v.X*d.x + v.Y*d.y + v.Z*d.z
}

// RotateAround rotates v by angle about the direction of axis, following
// the right-hand rule. Axis origin is irrelevant for vectors.
func (v Vector) RotateAround(axis Axis, angle s1.Angle) Vector {
	k := axis.Direction.ToVector()
	sin, cos := math.Sincos(angle.Radians())
	// Rodrigues: v·cosθ + (k×v)·sinθ + k·(k·v)(1-cosθ).
	return v.Mul(cos).
		Add(k.Cross(v).Mul(sin)).
		Add(k.Mul(k.Dot(v) * (1 - cos)))
}

// MirrorAcross reflects v across the plane's orientation; the plane origin
// is irrelevant for vectors.
func (v Vector) MirrorAcross(plane Plane) Vector {
	n := plane.Normal.ToVector()

	return v.Sub(n.Mul(2 * v.Dot(n)))
}

// ProjectionIn returns the component of v along d as a vector.
func (v Vector) ProjectionIn(d Direction) Vector {
	return d.ToVector().Mul(v.ComponentIn(d))
}

// ProjectOnto returns v with its normal component to the plane removed.
func (v Vector) ProjectOnto(plane Plane) Vector {
	return v.Sub(v.ProjectionIn(plane.Normal))
}

// RelativeTo expresses v in the basis of frame.
func (v Vector) RelativeTo(frame Frame) Vector {
	return Vector{
		X: v.ComponentIn(frame.XDirection),
		Y: v.ComponentIn(frame.YDirection),
		Z: v.ComponentIn(frame.ZDirection),
	}
}

// PlaceIn reinterprets frame-local components of v as global components.
// Inverse of RelativeTo for orthonormal frames.
func (v Vector) PlaceIn(frame Frame) Vector {
	x := frame.XDirection
	y := frame.YDirection
	z := frame.ZDirection

	return Vector{
		X: v.X*x.x + v.Y*y.x + v.Z*z.x,
		Y: v.X*x.y + v.Y*y.y + v.Z*z.y,
		Z: v.X*x.z + v.Y*y.z + v.Z*z.z,
	}
}

// EqualWithin reports componentwise equality within tol.
func (v Vector) EqualWithin(w Vector, tol float64) bool {
	return scalar.EqualWithin(v.X, w.X, tol) &&
		scalar.EqualWithin(v.Y, w.Y, tol) &&
		scalar.EqualWithin(v.Z, w.Z, tol)
}
