package geom3d

import "github.com/golang/geo/s1"

// Axis is an infinite directed line in space: an origin point plus a
// direction.
type Axis struct {
	Origin    Point
	Direction Direction
}

// Canonical global axes.
var (
	XAxis = Axis{Direction: PositiveX}
	YAxis = Axis{Direction: PositiveY}
	ZAxis = Axis{Direction: PositiveZ}
)

// Through returns the axis through origin with the given direction.
func Through(origin Point, direction Direction) Axis {
	return Axis{Origin: origin, Direction: direction}
}

// Reverse flips the axis direction, keeping the origin.
func (a Axis) Reverse() Axis {
	return Axis{Origin: a.Origin, Direction: a.Direction.Reverse()}
}

// TranslateBy displaces the axis origin by v.
func (a Axis) TranslateBy(v Vector) Axis {
	return Axis{Origin: a.Origin.TranslateBy(v), Direction: a.Direction}
}

// RotateAround rotates this axis about other by angle.
func (a Axis) RotateAround(other Axis, angle s1.Angle) Axis {
	return Axis{
		Origin:    a.Origin.RotateAround(other, angle),
		Direction: a.Direction.RotateAround(other, angle),
	}
}

// MirrorAcross reflects the axis across the plane.
func (a Axis) MirrorAcross(plane Plane) Axis {
	return Axis{
		Origin:    a.Origin.MirrorAcross(plane),
		Direction: a.Direction.MirrorAcross(plane),
	}
}

// RelativeTo expresses the axis in the coordinates of frame.
func (a Axis) RelativeTo(frame Frame) Axis {
	return Axis{
		Origin:    a.Origin.RelativeTo(frame),
		Direction: a.Direction.RelativeTo(frame),
	}
}

// PlaceIn treats the axis as frame-local and returns its global
// equivalent.
func (a Axis) PlaceIn(frame Frame) Axis {
	return Axis{
		Origin:    a.Origin.PlaceIn(frame),
		Direction: a.Direction.PlaceIn(frame),
	}
}
