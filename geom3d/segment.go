package geom3d

import "github.com/golang/geo/s1"

// LineSegment is the straight path between two endpoints in space.
type LineSegment struct {
	Start, End Point
}

// Segment builds a LineSegment from its endpoints.
func Segment(start, end Point) LineSegment {
	return LineSegment{Start: start, End: end}
}

// Length returns the distance between the endpoints.
func (s LineSegment) Length() float64 {
	return s.Start.DistanceTo(s.End)
}

// Vector returns the displacement from Start to End.
func (s LineSegment) Vector() Vector {
	return s.Start.VectorTo(s.End)
}

// Direction returns the unit direction from Start to End, reporting false
// for a degenerate segment with coincident endpoints.
func (s LineSegment) Direction() (Direction, bool) {
	return s.Vector().Direction()
}

// Midpoint returns the point halfway along the segment.
func (s LineSegment) Midpoint() Point {
	return s.Start.Midpoint(s.End)
}

// Interpolate returns the point a fraction t of the way from Start (t=0)
// to End (t=1).
func (s LineSegment) Interpolate(t float64) Point {
	return s.Start.Interpolate(s.End, t)
}

// Reverse swaps the endpoints.
func (s LineSegment) Reverse() LineSegment {
	return LineSegment{Start: s.End, End: s.Start}
}

// BoundingBox returns the smallest box containing both endpoints.
func (s LineSegment) BoundingBox() BoundingBox {
	return FromCorners(s.Start, s.End)
}

// TranslateBy displaces both endpoints by v.
func (s LineSegment) TranslateBy(v Vector) LineSegment {
	return s.mapEndpoints(func(p Point) Point { return p.TranslateBy(v) })
}

// RotateAround rotates both endpoints about the axis by angle.
func (s LineSegment) RotateAround(axis Axis, angle s1.Angle) LineSegment {
	return s.mapEndpoints(func(p Point) Point { return p.RotateAround(axis, angle) })
}

// MirrorAcross reflects both endpoints across the plane.
func (s LineSegment) MirrorAcross(plane Plane) LineSegment {
	return s.mapEndpoints(func(p Point) Point { return p.MirrorAcross(plane) })
}

// ScaleAbout scales both endpoints about center by factor.
func (s LineSegment) ScaleAbout(center Point, factor float64) LineSegment {
	return s.mapEndpoints(func(p Point) Point { return p.ScaleAbout(center, factor) })
}

// ProjectOnto projects both endpoints onto the plane.
func (s LineSegment) ProjectOnto(plane Plane) LineSegment {
	return s.mapEndpoints(func(p Point) Point { return p.ProjectOnto(plane) })
}

// RelativeTo expresses the segment in the coordinates of frame.
func (s LineSegment) RelativeTo(frame Frame) LineSegment {
	return s.mapEndpoints(func(p Point) Point { return p.RelativeTo(frame) })
}

// PlaceIn treats the segment as frame-local and returns its global
// equivalent.
func (s LineSegment) PlaceIn(frame Frame) LineSegment {
	return s.mapEndpoints(func(p Point) Point { return p.PlaceIn(frame) })
}

func (s LineSegment) mapEndpoints(fn func(Point) Point) LineSegment {
	return LineSegment{Start: fn(s.Start), End: fn(s.End)}
}
