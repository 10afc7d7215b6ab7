package geom2d

import "github.com/golang/geo/s1"

// LineSegment is the straight path between two endpoints.
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

// Interpolate returns the point a fraction t of the way from Start (t=0) to
// End (t=1).
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

// IntersectionWith returns the point where the two segments cross, reporting
// false for parallel, collinear or disjoint segments. Endpoint touches
// count as intersections.
func (s LineSegment) IntersectionWith(other LineSegment) (Point, bool) {
	d1 := s.Vector()
	d2 := other.Vector()
	denom := d1.Cross(d2)
	if denom == 0 {
		return Point{}, false
	}
	w := s.Start.VectorTo(other.Start)
	t := w.Cross(d2) / denom
	u := w.Cross(d1) / denom
	if t < 0 || t > 1 || u < 0 || u > 1 {
		return Point{}, false
	}

	return s.Interpolate(t), true
}

// TranslateBy displaces both endpoints by v.
func (s LineSegment) TranslateBy(v Vector) LineSegment {
	return s.mapEndpoints(func(p Point) Point { return p.TranslateBy(v) })
}

// RotateAround rotates both endpoints about center by angle.
func (s LineSegment) RotateAround(center Point, angle s1.Angle) LineSegment {
	return s.mapEndpoints(func(p Point) Point { return p.RotateAround(center, angle) })
}

// MirrorAcross reflects both endpoints across axis.
func (s LineSegment) MirrorAcross(axis Axis) LineSegment {
	return s.mapEndpoints(func(p Point) Point { return p.MirrorAcross(axis) })
}

// ScaleAbout scales both endpoints about center by factor.
func (s LineSegment) ScaleAbout(center Point, factor float64) LineSegment {
	return s.mapEndpoints(func(p Point) Point { return p.ScaleAbout(center, factor) })
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
