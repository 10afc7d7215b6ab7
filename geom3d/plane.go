package geom3d

import "github.com/golang/geo/s1"

// Plane is an infinite oriented plane: an origin point plus a unit normal.
type Plane struct {
	Origin Point
	Normal Direction
}

// Canonical coordinate planes.
var (
	XYPlane = Plane{Normal: PositiveZ}
	YZPlane = Plane{Normal: PositiveX}
	ZXPlane = Plane{Normal: PositiveY}
)

// PlaneThrough returns the plane through origin with the given normal.
func PlaneThrough(origin Point, normal Direction) Plane {
	return Plane{Origin: origin, Normal: normal}
}

// NormalAxis returns the axis through the plane origin along its normal.
func (pl Plane) NormalAxis() Axis {
	return Axis{Origin: pl.Origin, Direction: pl.Normal}
}

// FlipNormal reverses the plane orientation, keeping the origin.
func (pl Plane) FlipNormal() Plane {
	return Plane{Origin: pl.Origin, Normal: pl.Normal.Reverse()}
}

// TranslateBy displaces the plane origin by v.
func (pl Plane) TranslateBy(v Vector) Plane {
	return Plane{Origin: pl.Origin.TranslateBy(v), Normal: pl.Normal}
}

// RotateAround rotates the plane about the axis by angle.
func (pl Plane) RotateAround(axis Axis, angle s1.Angle) Plane {
	return Plane{
		Origin: pl.Origin.RotateAround(axis, angle),
		Normal: pl.Normal.RotateAround(axis, angle),
	}
}

// MirrorAcross reflects this plane across other.
func (pl Plane) MirrorAcross(other Plane) Plane {
	return Plane{
		Origin: pl.Origin.MirrorAcross(other),
		Normal: pl.Normal.MirrorAcross(other),
	}
}

// RelativeTo expresses the plane in the coordinates of frame.
func (pl Plane) RelativeTo(frame Frame) Plane {
	return Plane{
		Origin: pl.Origin.RelativeTo(frame),
		Normal: pl.Normal.RelativeTo(frame),
	}
}

// PlaceIn treats the plane as frame-local and returns its global
// equivalent.
func (pl Plane) PlaceIn(frame Frame) Plane {
	return Plane{
		Origin: pl.Origin.PlaceIn(frame),
		Normal: pl.Normal.PlaceIn(frame),
	}
}
