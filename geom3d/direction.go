package geom3d

import (
	"math"

	"github.com/golang/geo/s1"

	"github.com/katalvlaran/lvlgeo/scalar"
)

// Direction is a unit vector in space. Components are unexported so only
// constructors that guarantee magnitude 1 can produce one; the zero value
// is invalid.
type Direction struct {
	x, y, z float64
}

// Canonical axis directions.
var (
	PositiveX = Direction{x: 1}
	PositiveY = Direction{y: 1}
	PositiveZ = Direction{z: 1}
	NegativeX = Direction{x: -1}
	NegativeY = Direction{y: -1}
	NegativeZ = Direction{z: -1}
)

// NewDirection normalizes (x, y, z) into a unit direction, reporting false
// for the zero vector.
func NewDirection(x, y, z float64) (Direction, bool) {
	return Vector{X: x, Y: y, Z: z}.Direction()
}

// X returns the x component.
func (d Direction) X() float64 { return d.x }

// Y returns the y component.
func (d Direction) Y() float64 { return d.y }

// Z returns the z component.
func (d Direction) Z() float64 { return d.z }

// ToVector returns d as a unit Vector.
func (d Direction) ToVector() Vector {
	return Vector{X: d.x, Y: d.y, Z: d.z}
}

// Reverse returns the opposite direction.
func (d Direction) Reverse() Direction {
	return Direction{x: -d.x, y: -d.y, z: -d.z}
}

// Perpendicular returns an arbitrary direction at right angles to d: the
// cross product with whichever canonical axis d leans on least.
func (d Direction) Perpendicular() Direction {
	seed := PositiveX.ToVector()
	ax, ay, az := scalar.Abs(d.x), scalar.Abs(d.y), scalar.Abs(d.z)
	if ay <= ax && ay <= az {
		seed = PositiveY.ToVector()
	} else if az <= ax && az <= ay {
		seed = PositiveZ.ToVector()
	}
	perp, _ := d.ToVector().Cross(seed).Direction()

	return perp
}

// Cross returns d × other as a vector; the result is not unit length
// unless the directions are perpendicular.
func (d Direction) Cross(other Direction) Vector {
	return d.ToVector().Cross(other.ToVector())
}

// AngleTo returns the unsigned angle between d and other, in [0, π].
func (d Direction) AngleTo(other Direction) s1.Angle {
	dot := scalar.Clamp(d.ToVector().Dot(other.ToVector()), -1, 1)

	return s1.Angle(math.Acos(dot))
}

// RotateAround rotates d about the axis direction by angle.
func (d Direction) RotateAround(axis Axis, angle s1.Angle) Direction {
	v := d.ToVector().RotateAround(axis, angle)

	return Direction{x: v.X, y: v.Y, z: v.Z}
}

// MirrorAcross reflects d across the plane's orientation.
func (d Direction) MirrorAcross(plane Plane) Direction {
	v := d.ToVector().MirrorAcross(plane)

	return Direction{x: v.X, y: v.Y, z: v.Z}
}

// RelativeTo expresses d in the basis of frame.
func (d Direction) RelativeTo(frame Frame) Direction {
	v := d.ToVector().RelativeTo(frame)

	return Direction{x: v.X, y: v.Y, z: v.Z}
}

// PlaceIn reinterprets frame-local components of d as global components.
func (d Direction) PlaceIn(frame Frame) Direction {
	v := d.ToVector().PlaceIn(frame)

	return Direction{x: v.X, y: v.Y, z: v.Z}
}

// EqualWithin reports componentwise equality within tol.
func (d Direction) EqualWithin(other Direction, tol float64) bool {
	return scalar.EqualWithin(d.x, other.x, tol) &&
		scalar.EqualWithin(d.y, other.y, tol) &&
		scalar.EqualWithin(d.z, other.z, tol)
}
