package geom2d

import (
	"math"

	"github.com/golang/geo/s1"

	"github.com/katalvlaran/lvlgeo/scalar"
)

// Direction is a unit vector: the components are unexported so only
// constructors that guarantee magnitude 1 can produce one. The zero value is
// invalid; obtain directions from NewDirection, DirectionFromAngle,
// Vector.Direction or the package constants.
type Direction struct {
	x, y float64
}

// Canonical axis directions.
var (
	PositiveX = Direction{x: 1}
	PositiveY = Direction{y: 1}
	NegativeX = Direction{x: -1}
	NegativeY = Direction{y: -1}
)

// NewDirection normalizes (x, y) into a unit direction, reporting false for
// the zero vector.
func NewDirection(x, y float64) (Direction, bool) {
	return Vector{X: x, Y: y}.Direction()
}

// DirectionFromAngle returns the direction at the given counterclockwise
// angle from the positive X axis.
func DirectionFromAngle(angle s1.Angle) Direction {
	sin, cos := math.Sincos(angle.Radians())

	return Direction{x: cos, y: sin}
}

// X returns the x component.
func (d Direction) X() float64 { return d.x }

// Y returns the y component.
func (d Direction) Y() float64 { return d.y }

// ToVector returns d as a unit Vector.
func (d Direction) ToVector() Vector {
	return Vector{X: d.x, Y: d.y}
}

// ToAngle returns the counterclockwise angle of d from the positive X axis,
// in (-π, π].
func (d Direction) ToAngle() s1.Angle {
	return s1.Angle(math.Atan2(d.y, d.x))
}

// Reverse returns the opposite direction.
func (d Direction) Reverse() Direction {
	return Direction{x: -d.x, y: -d.y}
}

// Perpendicular returns d rotated 90° counterclockwise.
func (d Direction) Perpendicular() Direction {
	return Direction{x: -d.y, y: d.x}
}

// Rotate returns d rotated counterclockwise by angle.
func (d Direction) Rotate(angle s1.Angle) Direction {
	sin, cos := math.Sincos(angle.Radians())

	return Direction{
		x: d.x*cos - d.y*sin,
		y: d.x*sin + d.y*cos,
	}
}

// AngleTo returns the counterclockwise angle from d to other, in (-π, π].
func (d Direction) AngleTo(other Direction) s1.Angle {
	return s1.Angle(math.Atan2(d.x*other.y-d.y*other.x, d.x*other.x+d.y*other.y))
}

// MirrorAcross reflects d across the direction of axis.
func (d Direction) MirrorAcross(axis Axis) Direction {
	v := d.ToVector().MirrorAcross(axis)

	return Direction{x: v.X, y: v.Y}
}

// RelativeTo expresses d in the basis of frame. For orthonormal frames the
// result stays unit length.
func (d Direction) RelativeTo(frame Frame) Direction {
	v := d.ToVector().RelativeTo(frame)

	return Direction{x: v.X, y: v.Y}
}

// PlaceIn reinterprets frame-local components of d as global components.
func (d Direction) PlaceIn(frame Frame) Direction {
	v := d.ToVector().PlaceIn(frame)

	return Direction{x: v.X, y: v.Y}
}

// EqualWithin reports componentwise equality within tol.
func (d Direction) EqualWithin(other Direction, tol float64) bool {
	return scalar.EqualWithin(d.x, other.x, tol) && scalar.EqualWithin(d.y, other.y, tol)
}
