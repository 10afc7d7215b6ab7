package geom2d

import (
	"github.com/golang/geo/s1"

	"github.com/katalvlaran/lvlgeo/scalar"
)

// Triangle is three vertices in order. The winding of the vertices decides
// the sign of CounterclockwiseArea.
type Triangle struct {
	P1, P2, P3 Point
}

// CounterclockwiseArea returns the signed area: positive for
// counterclockwise winding, negative for clockwise.
func (t Triangle) CounterclockwiseArea() float64 {
	return t.P1.VectorTo(t.P2).Cross(t.P1.VectorTo(t.P3)) / 2
}

// ClockwiseArea returns the signed area with the opposite convention.
func (t Triangle) ClockwiseArea() float64 {
	return -t.CounterclockwiseArea()
}

// Area returns the absolute area. Degenerate (collinear) triangles have
// zero area.
func (t Triangle) Area() float64 {
	return scalar.Abs(t.CounterclockwiseArea())
}

// Perimeter returns the summed edge lengths.
func (t Triangle) Perimeter() float64 {
	return t.P1.DistanceTo(t.P2) + t.P2.DistanceTo(t.P3) + t.P3.DistanceTo(t.P1)
}

// Centroid returns the vertex average.
func (t Triangle) Centroid() Point {
	return Point{
		X: (t.P1.X + t.P2.X + t.P3.X) / 3,
		Y: (t.P1.Y + t.P2.Y + t.P3.Y) / 3,
	}
}

// Edges returns the three edges in vertex order.
func (t Triangle) Edges() [3]LineSegment {
	return [3]LineSegment{
		{Start: t.P1, End: t.P2},
		{Start: t.P2, End: t.P3},
		{Start: t.P3, End: t.P1},
	}
}

// Contains reports whether p lies inside the triangle or on its boundary,
// for either winding.
func (t Triangle) Contains(p Point) bool {
	c1 := t.P1.VectorTo(t.P2).Cross(t.P1.VectorTo(p))
	c2 := t.P2.VectorTo(t.P3).Cross(t.P2.VectorTo(p))
	c3 := t.P3.VectorTo(t.P1).Cross(t.P3.VectorTo(p))
	// Inside iff no pair of cross products disagrees in sign.
	hasNeg := c1 < 0 || c2 < 0 || c3 < 0
	hasPos := c1 > 0 || c2 > 0 || c3 > 0

	return !(hasNeg && hasPos)
}

// BoundingBox returns the smallest box containing all three vertices.
func (t Triangle) BoundingBox() BoundingBox {
	return FromCorners(t.P1, t.P2).Hull(FromCorners(t.P3, t.P3))
}

// Circumcircle returns the circle through all three vertices, reporting
// false when the vertices are collinear.
func (t Triangle) Circumcircle() (Circle, bool) {
	ax, ay := t.P1.X, t.P1.Y
	bx, by := t.P2.X, t.P2.Y
	cx, cy := t.P3.X, t.P3.Y
	d := 2 * (ax*(by-cy) + bx*(cy-ay) + cx*(ay-by))
	if d == 0 {
		return Circle{}, false
	}
	a2 := ax*ax + ay*ay
	b2 := bx*bx + by*by
	c2 := cx*cx + cy*cy
	center := Point{
		X: (a2*(by-cy) + b2*(cy-ay) + c2*(ay-by)) / d,
		Y: (a2*(cx-bx) + b2*(ax-cx) + c2*(bx-ax)) / d,
	}

	return Circle{Center: center, Radius: center.DistanceTo(t.P1)}, true
}

// TranslateBy displaces every vertex by v.
func (t Triangle) TranslateBy(v Vector) Triangle {
	return t.mapVertices(func(p Point) Point { return p.TranslateBy(v) })
}

// RotateAround rotates every vertex about center by angle.
func (t Triangle) RotateAround(center Point, angle s1.Angle) Triangle {
	return t.mapVertices(func(p Point) Point { return p.RotateAround(center, angle) })
}

// MirrorAcross reflects every vertex across axis; the winding flips.
func (t Triangle) MirrorAcross(axis Axis) Triangle {
	return t.mapVertices(func(p Point) Point { return p.MirrorAcross(axis) })
}

// ScaleAbout scales every vertex about center by factor.
func (t Triangle) ScaleAbout(center Point, factor float64) Triangle {
	return t.mapVertices(func(p Point) Point { return p.ScaleAbout(center, factor) })
}

// RelativeTo expresses the triangle in the coordinates of frame.
func (t Triangle) RelativeTo(frame Frame) Triangle {
	return t.mapVertices(func(p Point) Point { return p.RelativeTo(frame) })
}

// PlaceIn treats the triangle as frame-local and returns its global
// equivalent.
func (t Triangle) PlaceIn(frame Frame) Triangle {
	return t.mapVertices(func(p Point) Point { return p.PlaceIn(frame) })
}

func (t Triangle) mapVertices(fn func(Point) Point) Triangle {
	return Triangle{P1: fn(t.P1), P2: fn(t.P2), P3: fn(t.P3)}
}
