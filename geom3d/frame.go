package geom3d

import "github.com/golang/geo/s1"

// Frame is a local coordinate system in space: an origin plus three basis
// directions. Constructors in this package produce orthonormal frames;
// RelativeTo and PlaceIn are mutual inverses only under that assumption.
type Frame struct {
	Origin     Point
	XDirection Direction
	YDirection Direction
	ZDirection Direction
}

// GlobalFrame is the identity coordinate system.
var GlobalFrame = Frame{
	XDirection: PositiveX,
	YDirection: PositiveY,
	ZDirection: PositiveZ,
}

// FrameAt returns a global-aligned frame with the given origin.
func FrameAt(origin Point) Frame {
	return Frame{
		Origin:     origin,
		XDirection: PositiveX,
		YDirection: PositiveY,
		ZDirection: PositiveZ,
	}
}

// XAxis returns the frame's X axis.
func (f Frame) XAxis() Axis {
	return Axis{Origin: f.Origin, Direction: f.XDirection}
}

// YAxis returns the frame's Y axis.
func (f Frame) YAxis() Axis {
	return Axis{Origin: f.Origin, Direction: f.YDirection}
}

// ZAxis returns the frame's Z axis.
func (f Frame) ZAxis() Axis {
	return Axis{Origin: f.Origin, Direction: f.ZDirection}
}

// XYPlane returns the frame's XY plane, normal along the Z direction.
func (f Frame) XYPlane() Plane {
	return Plane{Origin: f.Origin, Normal: f.ZDirection}
}

// IsRightHanded reports whether the basis follows the right-hand rule:
// positive triple product of the three directions.
func (f Frame) IsRightHanded() bool {
	x := f.XDirection.ToVector()
	y := f.YDirection.ToVector()
	z := f.ZDirection.ToVector()

	return x.Cross(y).Dot(z) > 0
}

// TranslateBy displaces the frame origin by v.
func (f Frame) TranslateBy(v Vector) Frame {
	return Frame{
		Origin:     f.Origin.TranslateBy(v),
		XDirection: f.XDirection,
		YDirection: f.YDirection,
		ZDirection: f.ZDirection,
	}
}

// RotateAround rotates the whole frame about the axis by angle.
func (f Frame) RotateAround(axis Axis, angle s1.Angle) Frame {
	return Frame{
		Origin:     f.Origin.RotateAround(axis, angle),
		XDirection: f.XDirection.RotateAround(axis, angle),
		YDirection: f.YDirection.RotateAround(axis, angle),
		ZDirection: f.ZDirection.RotateAround(axis, angle),
	}
}

// MirrorAcross reflects the frame across the plane. Mirroring flips
// handedness.
func (f Frame) MirrorAcross(plane Plane) Frame {
	return Frame{
		Origin:     f.Origin.MirrorAcross(plane),
		XDirection: f.XDirection.MirrorAcross(plane),
		YDirection: f.YDirection.MirrorAcross(plane),
		ZDirection: f.ZDirection.MirrorAcross(plane),
	}
}

// RelativeTo expresses this frame in the coordinates of other.
func (f Frame) RelativeTo(other Frame) Frame {
	return Frame{
		Origin:     f.Origin.RelativeTo(other),
		XDirection: f.XDirection.RelativeTo(other),
		YDirection: f.YDirection.RelativeTo(other),
		ZDirection: f.ZDirection.RelativeTo(other),
	}
}

// PlaceIn treats this frame as local to other and returns the composed
// global frame.
func (f Frame) PlaceIn(other Frame) Frame {
	return Frame{
		Origin:     f.Origin.PlaceIn(other),
		XDirection: f.XDirection.PlaceIn(other),
		YDirection: f.YDirection.PlaceIn(other),
		ZDirection: f.ZDirection.PlaceIn(other),
	}
}
