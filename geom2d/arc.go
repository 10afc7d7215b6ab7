package geom2d

import (
	"math"

	"github.com/golang/geo/s1"

	"github.com/katalvlaran/lvlgeo/scalar"
)

// Arc is a circular arc: a center, the point where the arc starts, and the
// signed angle it sweeps around the center. Positive sweeps run
// counterclockwise. The radius is derived from center and start, never
// stored.
type Arc struct {
	Center Point
	Start  Point
	Swept  s1.Angle
}

// Radius returns the distance from the center to the start point.
func (a Arc) Radius() float64 {
	return a.Center.DistanceTo(a.Start)
}

// EndPoint returns the far end of the arc: the start point rotated by the
// swept angle about the center.
func (a Arc) EndPoint() Point {
	return a.Start.RotateAround(a.Center, a.Swept)
}

// PointOn returns the point a fraction t of the way along the arc: t=0 is
// the start point, t=1 the end point.
func (a Arc) PointOn(t float64) Point {
	return a.Start.RotateAround(a.Center, s1.Angle(float64(a.Swept)*t))
}

// Length returns |swept| · radius.
func (a Arc) Length() float64 {
	return scalar.Abs(a.Swept.Radians()) * a.Radius()
}

// Reverse returns the same curve walked the other way.
func (a Arc) Reverse() Arc {
	return Arc{Center: a.Center, Start: a.EndPoint(), Swept: -a.Swept}
}

// BoundingBox returns the smallest box containing the whole arc: the hull
// of both endpoints plus the circle extremes at every quarter-turn angle
// the sweep crosses.
func (a Arc) BoundingBox() BoundingBox {
	box := FromCorners(a.Start, a.EndPoint())
	r := a.Radius()
	start := math.Atan2(a.Start.Y-a.Center.Y, a.Start.X-a.Center.X)
	lo, hi := scalar.MinMax(start, start+a.Swept.Radians())

	const quarter = math.Pi / 2
	for k := math.Ceil(lo / quarter); k*quarter <= hi; k++ {
		sin, cos := math.Sincos(k * quarter)
		extreme := Point{X: a.Center.X + r*cos, Y: a.Center.Y + r*sin}
		box = box.Hull(FromCorners(extreme, extreme))
	}

	return box
}

// TranslateBy displaces the arc by v.
func (a Arc) TranslateBy(v Vector) Arc {
	return Arc{Center: a.Center.TranslateBy(v), Start: a.Start.TranslateBy(v), Swept: a.Swept}
}

// RotateAround rotates the arc about center by angle.
func (a Arc) RotateAround(center Point, angle s1.Angle) Arc {
	return Arc{
		Center: a.Center.RotateAround(center, angle),
		Start:  a.Start.RotateAround(center, angle),
		Swept:  a.Swept,
	}
}

// MirrorAcross reflects the arc across axis; the sweep changes hand.
func (a Arc) MirrorAcross(axis Axis) Arc {
	return Arc{
		Center: a.Center.MirrorAcross(axis),
		Start:  a.Start.MirrorAcross(axis),
		Swept:  -a.Swept,
	}
}

// ScaleAbout scales the arc about center by factor. Uniform scaling (even
// by a negative factor, which is a half-turn) preserves the sweep.
func (a Arc) ScaleAbout(center Point, factor float64) Arc {
	return Arc{
		Center: a.Center.ScaleAbout(center, factor),
		Start:  a.Start.ScaleAbout(center, factor),
		Swept:  a.Swept,
	}
}

// RelativeTo expresses the arc in the coordinates of frame; a left-handed
// frame changes the sweep's hand.
func (a Arc) RelativeTo(frame Frame) Arc {
	swept := a.Swept
	if !frame.IsRightHanded() {
		swept = -swept
	}

	return Arc{
		Center: a.Center.RelativeTo(frame),
		Start:  a.Start.RelativeTo(frame),
		Swept:  swept,
	}
}

// PlaceIn treats the arc as frame-local and returns its global equivalent.
func (a Arc) PlaceIn(frame Frame) Arc {
	swept := a.Swept
	if !frame.IsRightHanded() {
		swept = -swept
	}

	return Arc{
		Center: a.Center.PlaceIn(frame),
		Start:  a.Start.PlaceIn(frame),
		Swept:  swept,
	}
}
