package geom3d

import (
	"math"

	"github.com/golang/geo/s1"

	"github.com/katalvlaran/lvlgeo/scalar"
)

// Circle is a circle in space: a center point, the unit direction of its
// rotation axis (normal to the circle's plane), and a non-negative radius.
type Circle struct {
	Center Point
	Axis   Direction
	Radius float64
}

// Area returns π·r².
func (c Circle) Area() float64 {
	return math.Pi * c.Radius * c.Radius
}

// Circumference returns 2π·r.
func (c Circle) Circumference() float64 {
	return 2 * math.Pi * c.Radius
}

// Plane returns the plane the circle lies in, normal along the circle
// axis.
func (c Circle) Plane() Plane {
	return Plane{Origin: c.Center, Normal: c.Axis}
}

// BoundingBox returns the smallest box containing the circle. The
// half-extent along each global axis is r·√(1−n²) for that axis's normal
// component, so a circle in the XY plane has zero thickness in Z. The box
// always contains the center point.
func (c Circle) BoundingBox() BoundingBox {
	nx, ny, nz := c.Axis.X(), c.Axis.Y(), c.Axis.Z()
	dx := c.Radius * math.Sqrt(scalar.Max(0, 1-nx*nx))
	dy := c.Radius * math.Sqrt(scalar.Max(0, 1-ny*ny))
	dz := c.Radius * math.Sqrt(scalar.Max(0, 1-nz*nz))

	return BoundingBox{
		MinX: c.Center.X - dx, MaxX: c.Center.X + dx,
		MinY: c.Center.Y - dy, MaxY: c.Center.Y + dy,
		MinZ: c.Center.Z - dz, MaxZ: c.Center.Z + dz,
	}
}

// PointOn returns the point on the circle at the given angle from an
// arbitrary but fixed zero reference in the circle's plane.
func (c Circle) PointOn(angle s1.Angle) Point {
	u := c.Axis.Perpendicular().ToVector()
	v := c.Axis.ToVector().Cross(u)
	sin, cos := math.Sincos(angle.Radians())

	return c.Center.TranslateBy(u.Mul(c.Radius * cos).Add(v.Mul(c.Radius * sin)))
}

// TranslateBy displaces the circle by v.
func (c Circle) TranslateBy(v Vector) Circle {
	return Circle{Center: c.Center.TranslateBy(v), Axis: c.Axis, Radius: c.Radius}
}

// RotateAround rotates the circle about the axis by angle.
func (c Circle) RotateAround(axis Axis, angle s1.Angle) Circle {
	return Circle{
		Center: c.Center.RotateAround(axis, angle),
		Axis:   c.Axis.RotateAround(axis, angle),
		Radius: c.Radius,
	}
}

// MirrorAcross reflects the circle across the plane.
func (c Circle) MirrorAcross(plane Plane) Circle {
	return Circle{
		Center: c.Center.MirrorAcross(plane),
		Axis:   c.Axis.MirrorAcross(plane),
		Radius: c.Radius,
	}
}

// ScaleAbout scales the circle about center by factor; the radius scales
// by |factor|.
func (c Circle) ScaleAbout(center Point, factor float64) Circle {
	return Circle{
		Center: c.Center.ScaleAbout(center, factor),
		Axis:   c.Axis,
		Radius: c.Radius * scalar.Abs(factor),
	}
}

// RelativeTo expresses the circle in the coordinates of frame. Frames are
// orthonormal, so the radius is unchanged.
func (c Circle) RelativeTo(frame Frame) Circle {
	return Circle{
		Center: c.Center.RelativeTo(frame),
		Axis:   c.Axis.RelativeTo(frame),
		Radius: c.Radius,
	}
}

// PlaceIn treats the circle as frame-local and returns its global
// equivalent.
func (c Circle) PlaceIn(frame Frame) Circle {
	return Circle{
		Center: c.Center.PlaceIn(frame),
		Axis:   c.Axis.PlaceIn(frame),
		Radius: c.Radius,
	}
}
