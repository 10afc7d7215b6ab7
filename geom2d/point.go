package geom2d

import (
	"math"

	"github.com/golang/geo/s1"

	"github.com/katalvlaran/lvlgeo/scalar"
)

// Point is a position in the plane.
type Point struct {
	X, Y float64
}

// Pt builds a Point from its coordinates.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Origin is the global origin (0, 0).
var Origin = Point{}

// VectorTo returns the displacement from p to q.
func (p Point) VectorTo(q Point) Vector {
	return Vector{X: q.X - p.X, Y: q.Y - p.Y}
}

// VectorFrom returns the displacement from q to p.
func (p Point) VectorFrom(q Point) Vector {
	return Vector{X: p.X - q.X, Y: p.Y - q.Y}
}

// DistanceTo returns the Euclidean distance between p and q.
func (p Point) DistanceTo(q Point) float64 {
	return math.Hypot(q.X-p.X, q.Y-p.Y)
}

// Midpoint returns the point halfway between p and q.
func (p Point) Midpoint(q Point) Point {
	return Point{X: (p.X + q.X) / 2, Y: (p.Y + q.Y) / 2}
}

// Interpolate travels from p (t=0) toward q (t=1); t outside [0,1]
// extrapolates along the same line.
func (p Point) Interpolate(q Point, t float64) Point {
	return Point{
		X: scalar.Lerp(p.X, q.X, t),
		Y: scalar.Lerp(p.Y, q.Y, t),
	}
}

// TranslateBy returns p displaced by v.
func (p Point) TranslateBy(v Vector) Point {
	return Point{X: p.X + v.X, Y: p.Y + v.Y}
}

// RotateAround returns p rotated counterclockwise by angle about center.
func (p Point) RotateAround(center Point, angle s1.Angle) Point {
	return center.TranslateBy(center.VectorTo(p).Rotate(angle))
}

// MirrorAcross reflects p across the given axis.
func (p Point) MirrorAcross(axis Axis) Point {
	return axis.Origin.TranslateBy(axis.Origin.VectorTo(p).MirrorAcross(axis))
}

// ScaleAbout scales the displacement from center to p by factor. A negative
// factor lands on the far side of center.
func (p Point) ScaleAbout(center Point, factor float64) Point {
	return center.TranslateBy(center.VectorTo(p).Mul(factor))
}

// ProjectOnto returns the closest point to p on the given axis.
func (p Point) ProjectOnto(axis Axis) Point {
	d := axis.Direction

	return axis.Origin.TranslateBy(d.ToVector().Mul(p.SignedDistanceAlong(axis)))
}

// SignedDistanceAlong measures p along the axis direction from the axis
// origin.
func (p Point) SignedDistanceAlong(axis Axis) float64 {
	return axis.Origin.VectorTo(p).ComponentIn(axis.Direction)
}

// SignedDistanceFrom measures the perpendicular offset of p from the axis:
// positive on the left of the axis direction.
func (p Point) SignedDistanceFrom(axis Axis) float64 {
	v := axis.Origin.VectorTo(p)
	d := axis.Direction

	return d.x*v.Y - d.y*v.X
}

// RelativeTo expresses p in the coordinates of frame.
func (p Point) RelativeTo(frame Frame) Point {
	v := frame.Origin.VectorTo(p)

	return Point{
		X: v.ComponentIn(frame.XDirection),
		Y: v.ComponentIn(frame.YDirection),
	}
}

// PlaceIn treats p as frame-local coordinates and returns the corresponding
// global point. Inverse of RelativeTo for orthonormal frames.
func (p Point) PlaceIn(frame Frame) Point {
	return frame.Origin.TranslateBy(Vector{X: p.X, Y: p.Y}.PlaceIn(frame))
}

// EqualWithin reports coordinatewise equality within tol.
func (p Point) EqualWithin(q Point, tol float64) bool {
	return scalar.EqualWithin(p.X, q.X, tol) && scalar.EqualWithin(p.Y, q.Y, tol)
}
