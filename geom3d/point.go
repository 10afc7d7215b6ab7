package geom3d

import (
	"math"

	"github.com/golang/geo/s1"

	"github.com/katalvlaran/lvlgeo/scalar"
)

// Point is a position in space.
type Point struct {
	X, Y, Z float64
}

// Pt builds a Point from its coordinates.
func Pt(x, y, z float64) Point {
	return Point{X: x, Y: y, Z: z}
}

// Origin is the global origin (0, 0, 0).
var Origin = Point{}

// VectorTo returns the displacement from p to q.
func (p Point) VectorTo(q Point) Vector {
	return Vector{X: q.X - p.X, Y: q.Y - p.Y, Z: q.Z - p.Z}
}

// VectorFrom returns the displacement from q to p.
func (p Point) VectorFrom(q Point) Vector {
	return Vector{X: p.X - q.X, Y: p.Y - q.Y, Z: p.Z - q.Z}
}

// DistanceTo returns the Euclidean distance between p and q.
func (p Point) DistanceTo(q Point) float64 {
	return p.VectorTo(q).Length()
}

// Midpoint returns the point halfway between p and q.
func (p Point) Midpoint(q Point) Point {
	return Point{X: (p.X + q.X) / 2, Y: (p.Y + q.Y) / 2, Z: (p.Z + q.Z) / 2}
}

// Interpolate travels from p (t=0) toward q (t=1); t outside [0,1]
// extrapolates along the same line.
func (p Point) Interpolate(q Point, t float64) Point {
	return Point{
		X: scalar.Lerp(p.X, q.X, t),
		Y: scalar.Lerp(p.Y, q.Y, t),
		Z: scalar.Lerp(p.Z, q.Z, t),
	}
}

// TranslateBy returns p displaced by v.
func (p Point) TranslateBy(v Vector) Point {
	return Point{X: p.X + v.X, Y: p.Y + v.Y, Z: p.Z + v.Z}
}

// RotateAround rotates p about the axis by angle, right-hand rule.
func (p Point) RotateAround(axis Axis, angle s1.Angle) Point {
	return axis.Origin.TranslateBy(axis.Origin.VectorTo(p).RotateAround(axis, angle))
}

// MirrorAcross reflects p across the plane.
func (p Point) MirrorAcross(plane Plane) Point {
	n := plane.Normal.ToVector()
	offset := plane.Origin.VectorTo(p).Dot(n)

	return p.TranslateBy(n.Mul(-2 * offset))
}

// ScaleAbout scales the displacement from center to p by factor.
func (p Point) ScaleAbout(center Point, factor float64) Point {
	return center.TranslateBy(center.VectorTo(p).Mul(factor))
}

// ProjectOntoAxis returns the closest point to p on the axis.
func (p Point) ProjectOntoAxis(axis Axis) Point {
	d := axis.Direction

	return axis.Origin.TranslateBy(d.ToVector().Mul(p.SignedDistanceAlong(axis)))
}

// ProjectOnto returns the closest point to p on the plane.
func (p Point) ProjectOnto(plane Plane) Point {
	n := plane.Normal.ToVector()
	offset := plane.Origin.VectorTo(p).Dot(n)

	return p.TranslateBy(n.Mul(-offset))
}

// SignedDistanceAlong measures p along the axis direction from the axis
// origin.
func (p Point) SignedDistanceAlong(axis Axis) float64 {
	return axis.Origin.VectorTo(p).ComponentIn(axis.Direction)
}

// SignedDistanceFrom measures p from the plane, positive on the normal
// side.
func (p Point) SignedDistanceFrom(plane Plane) float64 {
	return plane.Origin.VectorTo(p).ComponentIn(plane.Normal)
}

// DistanceFromAxis returns the perpendicular distance from p to the axis.
func (p Point) DistanceFromAxis(axis Axis) float64 {
	v := axis.Origin.VectorTo(p)
	along := v.ComponentIn(axis.Direction)

	return math.Sqrt(scalar.Max(0, v.LengthSquared()-along*along))
}

// RelativeTo expresses p in the coordinates of frame.
func (p Point) RelativeTo(frame Frame) Point {
	v := frame.Origin.VectorTo(p)

	return Point{
		X: v.ComponentIn(frame.XDirection),
		Y: v.ComponentIn(frame.YDirection),
		Z: v.ComponentIn(frame.ZDirection),
	}
}

// PlaceIn treats p as frame-local coordinates and returns the
// corresponding global point. Inverse of RelativeTo for orthonormal
// frames.
func (p Point) PlaceIn(frame Frame) Point {
	return frame.Origin.TranslateBy(Vector{X: p.X, Y: p.Y, Z: p.Z}.PlaceIn(frame))
}

// EqualWithin reports coordinatewise equality within tol.
func (p Point) EqualWithin(q Point, tol float64) bool {
	return scalar.EqualWithin(p.X, q.X, tol) &&
		scalar.EqualWithin(p.Y, q.Y, tol) &&
		scalar.EqualWithin(p.Z, q.Z, tol)
}
