package geom3d

import "github.com/katalvlaran/lvlgeo/scalar"

// BoundingBox is an axis-aligned cuboid given by per-axis ranges.
// Constructors normalize swapped bounds, so min ≤ max holds on every axis
// for every box they produce. Zero-thickness boxes are valid.
type BoundingBox struct {
	MinX, MaxX float64
	MinY, MaxY float64
	MinZ, MaxZ float64
}

// With builds a box from per-axis bounds, swapping any pair given out of
// order.
func With(minX, maxX, minY, maxY, minZ, maxZ float64) BoundingBox {
	b := BoundingBox{}
	b.MinX, b.MaxX = scalar.MinMax(minX, maxX)
	b.MinY, b.MaxY = scalar.MinMax(minY, maxY)
	b.MinZ, b.MaxZ = scalar.MinMax(minZ, maxZ)

	return b
}

// FromCorners builds the box spanning two opposite corners.
func FromCorners(p, q Point) BoundingBox {
	return With(p.X, q.X, p.Y, q.Y, p.Z, q.Z)
}

// Hull returns the smallest box containing both b and other. Total: any
// two boxes have a hull.
func (b BoundingBox) Hull(other BoundingBox) BoundingBox {
	return BoundingBox{
		MinX: scalar.Min(b.MinX, other.MinX),
		MaxX: scalar.Max(b.MaxX, other.MaxX),
		MinY: scalar.Min(b.MinY, other.MinY),
		MaxY: scalar.Max(b.MaxY, other.MaxY),
		MinZ: scalar.Min(b.MinZ, other.MinZ),
		MaxZ: scalar.Max(b.MaxZ, other.MaxZ),
	}
}

// Intersection returns the overlap of b and other, reporting false when
// the ranges are disjoint on any axis. Touching boxes intersect in a
// zero-thickness box.
func (b BoundingBox) Intersection(other BoundingBox) (BoundingBox, bool) {
	if !b.Overlaps(other) {
		return BoundingBox{}, false
	}

	return BoundingBox{
		MinX: scalar.Max(b.MinX, other.MinX),
		MaxX: scalar.Min(b.MaxX, other.MaxX),
		MinY: scalar.Max(b.MinY, other.MinY),
		MaxY: scalar.Min(b.MaxY, other.MaxY),
		MinZ: scalar.Max(b.MinZ, other.MinZ),
		MaxZ: scalar.Min(b.MaxZ, other.MaxZ),
	}, true
}

// Overlaps reports whether the ranges of b and other intersect on every
// axis. Shared faces, edges and corners count as overlap.
func (b BoundingBox) Overlaps(other BoundingBox) bool {
	return b.MinX <= other.MaxX && b.MaxX >= other.MinX &&
		b.MinY <= other.MaxY && b.MaxY >= other.MinY &&
		b.MinZ <= other.MaxZ && b.MaxZ >= other.MinZ
}

// Contains reports whether p lies inside b, boundary inclusive.
func (b BoundingBox) Contains(p Point) bool {
	return p.X >= b.MinX && p.X <= b.MaxX &&
		p.Y >= b.MinY && p.Y <= b.MaxY &&
		p.Z >= b.MinZ && p.Z <= b.MaxZ
}

// IsContainedIn reports whether b lies entirely within outer on every
// axis.
func (b BoundingBox) IsContainedIn(outer BoundingBox) bool {
	return b.MinX >= outer.MinX && b.MaxX <= outer.MaxX &&
		b.MinY >= outer.MinY && b.MaxY <= outer.MaxY &&
		b.MinZ >= outer.MinZ && b.MaxZ <= outer.MaxZ
}

// Centroid returns the center of the box.
func (b BoundingBox) Centroid() Point {
	return Point{
		X: (b.MinX + b.MaxX) / 2,
		Y: (b.MinY + b.MaxY) / 2,
		Z: (b.MinZ + b.MaxZ) / 2,
	}
}

// Dimensions returns the box extents (width, depth, height) along X, Y
// and Z.
func (b BoundingBox) Dimensions() (dx, dy, dz float64) {
	return b.MaxX - b.MinX, b.MaxY - b.MinY, b.MaxZ - b.MinZ
}

// TranslateBy displaces the box by v.
func (b BoundingBox) TranslateBy(v Vector) BoundingBox {
	return BoundingBox{
		MinX: b.MinX + v.X, MaxX: b.MaxX + v.X,
		MinY: b.MinY + v.Y, MaxY: b.MaxY + v.Y,
		MinZ: b.MinZ + v.Z, MaxZ: b.MaxZ + v.Z,
	}
}

// HullOf folds Hull over boxes, reporting false for an empty slice.
func HullOf(boxes []BoundingBox) (BoundingBox, bool) {
	if len(boxes) == 0 {
		return BoundingBox{}, false
	}
	hull := boxes[0]
	for _, b := range boxes[1:] {
		hull = hull.Hull(b)
	}

	return hull, true
}

// HullOfPoints returns the smallest box containing every point, reporting
// false for an empty slice.
func HullOfPoints(points []Point) (BoundingBox, bool) {
	if len(points) == 0 {
		return BoundingBox{}, false
	}
	p0 := points[0]
	hull := BoundingBox{
		MinX: p0.X, MaxX: p0.X,
		MinY: p0.Y, MaxY: p0.Y,
		MinZ: p0.Z, MaxZ: p0.Z,
	}
	for _, p := range points[1:] {
		hull.MinX = scalar.Min(hull.MinX, p.X)
		hull.MaxX = scalar.Max(hull.MaxX, p.X)
		hull.MinY = scalar.Min(hull.MinY, p.Y)
		hull.MaxY = scalar.Max(hull.MaxY, p.Y)
		hull.MinZ = scalar.Min(hull.MinZ, p.Z)
		hull.MaxZ = scalar.Max(hull.MaxZ, p.Z)
	}

	return hull, true
}
