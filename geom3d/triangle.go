package geom3d

import "github.com/golang/geo/s1"

// Triangle is three vertices in space.
type Triangle struct {
	P1, P2, P3 Point
}

// Area returns the triangle area: half the magnitude of the edge cross
// product. Degenerate (collinear) triangles have zero area.
func (t Triangle) Area() float64 {
	return t.P1.VectorTo(t.P2).Cross(t.P1.VectorTo(t.P3)).Length() / 2
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
		Z: (t.P1.Z + t.P2.Z + t.P3.Z) / 3,
	}
}

// Normal returns the unit normal implied by the vertex order (right-hand
// rule), reporting false for a degenerate triangle.
func (t Triangle) Normal() (Direction, bool) {
	return t.P1.VectorTo(t.P2).Cross(t.P1.VectorTo(t.P3)).Direction()
}

// Edges returns the three edges in vertex order.
func (t Triangle) Edges() [3]LineSegment {
	return [3]LineSegment{
		{Start: t.P1, End: t.P2},
		{Start: t.P2, End: t.P3},
		{Start: t.P3, End: t.P1},
	}
}

// BoundingBox returns the smallest box containing all three vertices.
func (t Triangle) BoundingBox() BoundingBox {
	return FromCorners(t.P1, t.P2).Hull(FromCorners(t.P3, t.P3))
}

// TranslateBy displaces every vertex by v.
func (t Triangle) TranslateBy(v Vector) Triangle {
	return t.mapVertices(func(p Point) Point { return p.TranslateBy(v) })
}

// RotateAround rotates every vertex about the axis by angle.
func (t Triangle) RotateAround(axis Axis, angle s1.Angle) Triangle {
	return t.mapVertices(func(p Point) Point { return p.RotateAround(axis, angle) })
}

// MirrorAcross reflects every vertex across the plane; the normal flips.
func (t Triangle) MirrorAcross(plane Plane) Triangle {
	return t.mapVertices(func(p Point) Point { return p.MirrorAcross(plane) })
}

// ScaleAbout scales every vertex about center by factor.
func (t Triangle) ScaleAbout(center Point, factor float64) Triangle {
	return t.mapVertices(func(p Point) Point { return p.ScaleAbout(center, factor) })
}

// ProjectOnto projects every vertex onto the plane.
func (t Triangle) ProjectOnto(plane Plane) Triangle {
	return t.mapVertices(func(p Point) Point { return p.ProjectOnto(plane) })
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
