package geom2d

import "github.com/golang/geo/s1"

// Axis is an infinite directed line: an origin point plus a direction.
// Axes serve as datums for projection, mirroring and signed distances.
type Axis struct {
	Origin    Point
	Direction Direction
}

// Canonical global axes.
var (
	XAxis = Axis{Direction: PositiveX}
	YAxis = Axis{Direction: PositiveY}
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

// RotateAround rotates the axis about center by angle.
func (a Axis) RotateAround(center Point, angle s1.Angle) Axis {
	return Axis{
		Origin:    a.Origin.RotateAround(center, angle),
		Direction: a.Direction.Rotate(angle),
	}
}

// MirrorAcross reflects the axis across other.
func (a Axis) MirrorAcross(other Axis) Axis {
	return Axis{
		Origin:    a.Origin.MirrorAcross(other),
		Direction: a.Direction.MirrorAcross(other),
	}
}

// RelativeTo expresses the axis in the coordinates of frame.
func (a Axis) RelativeTo(frame Frame) Axis {
	return Axis{
		Origin:    a.Origin.RelativeTo(frame),
		Direction: a.Direction.RelativeTo(frame),
	}
}

// PlaceIn treats the axis as frame-local and returns its global equivalent.
func (a Axis) PlaceIn(frame Frame) Axis {
	return Axis{
		Origin:    a.Origin.PlaceIn(frame),
		Direction: a.Direction.PlaceIn(frame),
	}
}
