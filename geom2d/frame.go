package geom2d

import "github.com/golang/geo/s1"

// Frame is a local coordinate system: an origin plus two basis directions.
// Constructors in this package produce orthonormal frames; RelativeTo and
// PlaceIn are mutual inverses only under that assumption.
type Frame struct {
	Origin     Point
	XDirection Direction
	YDirection Direction
}

// GlobalFrame is the identity coordinate system.
var GlobalFrame = Frame{XDirection: PositiveX, YDirection: PositiveY}

// FrameAt returns a global-aligned frame with the given origin.
func FrameAt(origin Point) Frame {
	return Frame{Origin: origin, XDirection: PositiveX, YDirection: PositiveY}
}

// FrameWith returns a right-handed frame with the given origin and X
// direction; the Y direction is the X direction rotated 90° counterclockwise.
func FrameWith(origin Point, xDirection Direction) Frame {
	return Frame{
		Origin:     origin,
		XDirection: xDirection,
		YDirection: xDirection.Perpendicular(),
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

// IsRightHanded reports whether the basis is right-handed, i.e. the Y
// direction lies counterclockwise from the X direction.
func (f Frame) IsRightHanded() bool {
	return f.XDirection.ToVector().Cross(f.YDirection.ToVector()) > 0
}

// TranslateBy displaces the frame origin by v.
func (f Frame) TranslateBy(v Vector) Frame {
	return Frame{
		Origin:     f.Origin.TranslateBy(v),
		XDirection: f.XDirection,
		YDirection: f.YDirection,
	}
}

// RotateAround rotates the whole frame about center by angle.
func (f Frame) RotateAround(center Point, angle s1.Angle) Frame {
	return Frame{
		Origin:     f.Origin.RotateAround(center, angle),
		XDirection: f.XDirection.Rotate(angle),
		YDirection: f.YDirection.Rotate(angle),
	}
}

// MirrorAcross reflects the frame across axis. Mirroring flips handedness.
func (f Frame) MirrorAcross(axis Axis) Frame {
	return Frame{
		Origin:     f.Origin.MirrorAcross(axis),
		XDirection: f.XDirection.MirrorAcross(axis),
		YDirection: f.YDirection.MirrorAcross(axis),
	}
}

// RelativeTo expresses this frame in the coordinates of other.
func (f Frame) RelativeTo(other Frame) Frame {
	return Frame{
		Origin:     f.Origin.RelativeTo(other),
		XDirection: f.XDirection.RelativeTo(other),
		YDirection: f.YDirection.RelativeTo(other),
	}
}

// PlaceIn treats this frame as local to other and returns the composed
// global frame.
func (f Frame) PlaceIn(other Frame) Frame {
	return Frame{
		Origin:     f.Origin.PlaceIn(other),
		XDirection: f.XDirection.PlaceIn(other),
		YDirection: f.YDirection.PlaceIn(other),
	}
}

// IntoLocal returns the affine transform equivalent of RelativeTo(f).
func (f Frame) IntoLocal() Transform {
	x, y := f.XDirection, f.YDirection
	o := f.Origin

	return Transform{
		A: x.x, B: x.y, C: -(o.X*x.x + o.Y*x.y),
		D: y.x, E: y.y, F: -(o.X*y.x + o.Y*y.y),
	}
}

// IntoGlobal returns the affine transform equivalent of PlaceIn(f).
func (f Frame) IntoGlobal() Transform {
	x, y := f.XDirection, f.YDirection
	o := f.Origin

	return Transform{
		A: x.x, B: y.x, C: o.X,
		D: x.y, E: y.y, F: o.Y,
	}
}
