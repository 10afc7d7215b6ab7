package geoconv

import (
	"fmt"

	geom "github.com/twpayne/go-geom"

	"github.com/katalvlaran/lvlgeo/geom2d"
)

// Coord returns p as a go-geom XY coordinate.
func Coord(p geom2d.Point) geom.Coord {
	return geom.Coord{p.X, p.Y}
}

// FromCoord converts a go-geom coordinate, reporting ErrLayout when it
// carries fewer than two ordinates.
func FromCoord(c geom.Coord) (geom2d.Point, error) {
	if len(c) < 2 {
		return geom2d.Point{}, fmt.Errorf("%w: coord has %d ordinates", ErrLayout, len(c))
	}

	return geom2d.Point{X: c[0], Y: c[1]}, nil
}

// Point returns p as a go-geom XY point.
func Point(p geom2d.Point) *geom.Point {
	return geom.NewPointFlat(geom.XY, []float64{p.X, p.Y})
}

// FromPoint converts a go-geom point, reporting ErrLayout when its layout
// carries fewer than two ordinates. Z and M ordinates are ignored.
func FromPoint(g *geom.Point) (geom2d.Point, error) {
	if g.Layout().Stride() < 2 {
		return geom2d.Point{}, fmt.Errorf("%w: layout %v", ErrLayout, g.Layout())
	}

	return geom2d.Point{X: g.X(), Y: g.Y()}, nil
}

// LineString returns the segment as a two-coordinate go-geom line string.
func LineString(s geom2d.LineSegment) *geom.LineString {
	return geom.NewLineString(geom.XY).MustSetCoords([]geom.Coord{
		{s.Start.X, s.Start.Y},
		{s.End.X, s.End.Y},
	})
}

// Polygon returns pg as a go-geom polygon with a single outer ring. The
// ring is closed: the first vertex is repeated at the end, as go-geom
// expects. An empty polygon exports with no rings.
func Polygon(pg geom2d.Polygon) *geom.Polygon {
	out := geom.NewPolygon(geom.XY)
	if len(pg.Vertices) == 0 {
		return out
	}
	ring := make([]geom.Coord, 0, len(pg.Vertices)+1)
	for _, v := range pg.Vertices {
		ring = append(ring, geom.Coord{v.X, v.Y})
	}
	ring = append(ring, geom.Coord{pg.Vertices[0].X, pg.Vertices[0].Y})

	return out.MustSetCoords([][]geom.Coord{ring})
}

// FromPolygon converts the outer ring of a go-geom polygon, dropping the
// closing coordinate. Interior rings (holes) are ignored; a polygon with
// no rings fails with ErrRings.
func FromPolygon(g *geom.Polygon) (geom2d.Polygon, error) {
	if g.Layout().Stride() < 2 {
		return geom2d.Polygon{}, fmt.Errorf("%w: layout %v", ErrLayout, g.Layout())
	}
	if g.NumLinearRings() == 0 {
		return geom2d.Polygon{}, ErrRings
	}
	coords := g.LinearRing(0).Coords()
	if n := len(coords); n > 1 && coords[0].Equal(geom.XY, coords[n-1]) {
		coords = coords[:n-1]
	}
	vertices := make([]geom2d.Point, len(coords))
	for i, c := range coords {
		vertices[i] = geom2d.Point{X: c[0], Y: c[1]}
	}

	return geom2d.Polygon{Vertices: vertices}, nil
}

// Bounds returns b as a go-geom bounds value.
func Bounds(b geom2d.BoundingBox) *geom.Bounds {
	return geom.NewBounds(geom.XY).Set(b.MinX, b.MinY, b.MaxX, b.MaxY)
}

// FromBounds converts go-geom bounds, reporting ErrLayout when the layout
// carries fewer than two ordinates.
func FromBounds(b *geom.Bounds) (geom2d.BoundingBox, error) {
	if b.Layout().Stride() < 2 {
		return geom2d.BoundingBox{}, fmt.Errorf("%w: layout %v", ErrLayout, b.Layout())
	}

	return geom2d.With(b.Min(0), b.Max(0), b.Min(1), b.Max(1)), nil
}
