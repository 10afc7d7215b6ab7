package geom2d

import (
	"math"

	"github.com/golang/geo/s1"

	"github.com/katalvlaran/lvlgeo/scalar"
)

// Circle is a center point and a non-negative radius.
type Circle struct {
	Center Point
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

// Contains reports whether p lies inside the circle or on it.
func (c Circle) Contains(p Point) bool {
	return c.Center.VectorTo(p).LengthSquared() <= c.Radius*c.Radius
}

// BoundingBox returns the square box centered on the circle's center. The
// box always contains the center point.
func (c Circle) BoundingBox() BoundingBox {
	return BoundingBox{
		MinX: c.Center.X - c.Radius, MaxX: c.Center.X + c.Radius,
		MinY: c.Center.Y - c.Radius, MaxY: c.Center.Y + c.Radius,
	}
}

// ToArc returns the full counterclockwise arc of the circle, starting at
// the point with the greatest X coordinate.
func (c Circle) ToArc() Arc {
	return Arc{
		Center: c.Center,
		Start:  Point{X: c.Center.X + c.Radius, Y: c.Center.Y},
		Swept:  s1.Angle(2 * math.Pi),
	}
}

// TranslateBy displaces the circle by v.
func (c Circle) TranslateBy(v Vector) Circle {
	return Circle{Center: c.Center.TranslateBy(v), Radius: c.Radius}
}

// RotateAround rotates the circle about center by angle.
func (c Circle) RotateAround(center Point, angle s1.Angle) Circle {
	return Circle{Center: c.Center.RotateAround(center, angle), Radius: c.Radius}
}

// MirrorAcross reflects the circle across axis.
func (c Circle) MirrorAcross(axis Axis) Circle {
	return Circle{Center: c.Center.MirrorAcross(axis), Radius: c.Radius}
}

// ScaleAbout scales the circle about center by factor; the radius scales by
// |factor|.
func (c Circle) ScaleAbout(center Point, factor float64) Circle {
	return Circle{
		Center: c.Center.ScaleAbout(center, factor),
		Radius: c.Radius * scalar.Abs(factor),
	}
}

// RelativeTo expresses the circle in the coordinates of frame. Frames are
// orthonormal, so the radius is unchanged.
func (c Circle) RelativeTo(frame Frame) Circle {
	return Circle{Center: c.Center.RelativeTo(frame), Radius: c.Radius}
}

// PlaceIn treats the circle as frame-local and returns its global
// equivalent.
func (c Circle) PlaceIn(frame Frame) Circle {
	return Circle{Center: c.Center.PlaceIn(frame), Radius: c.Radius}
}
