package geom2d

import (
	"github.com/golang/geo/s1"

	"github.com/katalvlaran/lvlgeo/scalar"
)

// Polygon is an ordered vertex list; the edge from the last vertex back to
// the first is implicit. Vertices may wind either way: the sign of
// CounterclockwiseArea reveals which. Polygons with fewer than three
// vertices are degenerate and have zero area, not an error.
type Polygon struct {
	Vertices []Point
}

// NewPolygon builds a polygon from vertices in order.
func NewPolygon(vertices ...Point) Polygon {
	return Polygon{Vertices: vertices}
}

// CounterclockwiseArea returns the shoelace signed area: positive for
// counterclockwise winding, negative for clockwise.
func (pg Polygon) CounterclockwiseArea() float64 {
	n := len(pg.Vertices)
	if n < 3 {
		return 0
	}
	var sum float64
	for i, p := range pg.Vertices {
		q := pg.Vertices[(i+1)%n]
		sum += p.X*q.Y - q.X*p.Y
	}

	return sum / 2
}

// ClockwiseArea returns the signed area with the opposite convention.
func (pg Polygon) ClockwiseArea() float64 {
	return -pg.CounterclockwiseArea()
}

// Area returns the absolute enclosed area.
func (pg Polygon) Area() float64 {
	return scalar.Abs(pg.CounterclockwiseArea())
}

// Perimeter returns the total edge length, including the implicit closing
// edge. Degenerate polygons measure the walk they describe: zero for 0 or 1
// vertices, twice the segment length for 2.
func (pg Polygon) Perimeter() float64 {
	n := len(pg.Vertices)
	if n < 2 {
		return 0
	}
	var sum float64
	for i, p := range pg.Vertices {
		sum += p.DistanceTo(pg.Vertices[(i+1)%n])
	}

	return sum
}

// Centroid returns the area centroid, reporting false when the signed area
// is zero (degenerate or self-cancelling polygons).
func (pg Polygon) Centroid() (Point, bool) {
	signed := pg.CounterclockwiseArea()
	if signed == 0 {
		return Point{}, false
	}
	n := len(pg.Vertices)
	var cx, cy float64
	for i, p := range pg.Vertices {
		q := pg.Vertices[(i+1)%n]
		cross := p.X*q.Y - q.X*p.Y
		cx += (p.X + q.X) * cross
		cy += (p.Y + q.Y) * cross
	}

	return Point{X: cx / (6 * signed), Y: cy / (6 * signed)}, true
}

// Edges returns every edge in vertex order, the implicit closing edge last.
// Polygons with fewer than two vertices have no edges.
func (pg Polygon) Edges() []LineSegment {
	n := len(pg.Vertices)
	if n < 2 {
		return nil
	}
	edges := make([]LineSegment, n)
	for i, p := range pg.Vertices {
		edges[i] = LineSegment{Start: p, End: pg.Vertices[(i+1)%n]}
	}

	return edges
}

// Contains reports whether p lies inside the polygon by ray crossing.
// Points on an edge or vertex count as inside.
func (pg Polygon) Contains(p Point) bool {
	n := len(pg.Vertices)
	if n < 3 {
		return false
	}
	inside := false
	for i, a := range pg.Vertices {
		b := pg.Vertices[(i+1)%n]
		if onSegment(p, a, b) {
			return true
		}
		if (a.Y > p.Y) != (b.Y > p.Y) {
			xCross := a.X + (p.Y-a.Y)/(b.Y-a.Y)*(b.X-a.X)
			if p.X < xCross {
				inside = !inside
			}
		}
	}

	return inside
}

// onSegment reports whether p lies exactly on the segment ab.
func onSegment(p, a, b Point) bool {
	if a.VectorTo(b).Cross(a.VectorTo(p)) != 0 {
		return false
	}
	loX, hiX := scalar.MinMax(a.X, b.X)
	loY, hiY := scalar.MinMax(a.Y, b.Y)

	return p.X >= loX && p.X <= hiX && p.Y >= loY && p.Y <= hiY
}

// BoundingBox returns the smallest box containing every vertex, reporting
// false for an empty polygon.
func (pg Polygon) BoundingBox() (BoundingBox, bool) {
	return HullOfPoints(pg.Vertices)
}

// TranslateBy displaces every vertex by v.
func (pg Polygon) TranslateBy(v Vector) Polygon {
	return pg.mapVertices(func(p Point) Point { return p.TranslateBy(v) })
}

// RotateAround rotates every vertex about center by angle.
func (pg Polygon) RotateAround(center Point, angle s1.Angle) Polygon {
	return pg.mapVertices(func(p Point) Point { return p.RotateAround(center, angle) })
}

// MirrorAcross reflects every vertex across axis; the winding flips.
func (pg Polygon) MirrorAcross(axis Axis) Polygon {
	return pg.mapVertices(func(p Point) Point { return p.MirrorAcross(axis) })
}

// ScaleAbout scales every vertex about center by factor.
func (pg Polygon) ScaleAbout(center Point, factor float64) Polygon {
	return pg.mapVertices(func(p Point) Point { return p.ScaleAbout(center, factor) })
}

// RelativeTo expresses the polygon in the coordinates of frame.
func (pg Polygon) RelativeTo(frame Frame) Polygon {
	return pg.mapVertices(func(p Point) Point { return p.RelativeTo(frame) })
}

// PlaceIn treats the polygon as frame-local and returns its global
// equivalent.
func (pg Polygon) PlaceIn(frame Frame) Polygon {
	return pg.mapVertices(func(p Point) Point { return p.PlaceIn(frame) })
}

// mapVertices allocates a fresh vertex slice; polygons are values and
// transforms never alias the receiver's storage.
func (pg Polygon) mapVertices(fn func(Point) Point) Polygon {
	if pg.Vertices == nil {
		return Polygon{}
	}
	out := make([]Point, len(pg.Vertices))
	for i, p := range pg.Vertices {
		out[i] = fn(p)
	}

	return Polygon{Vertices: out}
}
