// Package geom2d implements planar computational geometry on immutable
// value types: vectors, points, unit directions, axes, frames, affine
// transforms, bounding boxes, line segments, triangles, circles, arcs and
// polygons.
//
// What:
//
//   - Vector / Point / Direction algebra: addition, dot and cross products,
//     distances, interpolation, perpendiculars and angles.
//   - Axis and Frame: datum types for projection, mirroring and
//     coordinate-system changes (RelativeTo / PlaceIn are mutual inverses).
//   - Transform: a 2×3 affine matrix equivalent of the named transforms,
//     composable and invertible.
//   - BoundingBox algebra: Hull, Intersection, Overlaps, Contains,
//     IsContainedIn, Centroid, HullOf — min/max normalized on construction.
//   - Shape measures: perimeter, signed and absolute area (shoelace),
//     centroids, point containment, quadrant-aware arc boxes.
//   - JSON codecs: coordinate tuples as arrays, records as objects, exact
//     round-trips, decode errors wrapping package sentinels.
//
// Why:
//
//   - CAD-style kernels, plotters, game maps and spatial indexes all need the
//     same small algebra; this package is that algebra with no I/O attached.
//   - Every operation is a pure function value → value: no shared state,
//     safe for concurrent use from any number of goroutines.
//
// Conventions:
//
//   - X increases to the right, Y increases up the page; counterclockwise
//     angles and areas are positive.
//   - Angles are s1.Angle (radians) from github.com/golang/geo/s1.
//   - Naturally partial operations return (T, bool); errors are reserved for
//     JSON decoding (ErrBadTuple, ErrNotUnit, ErrBadField).
//
// Complexity: all operations are closed-form O(1) except the polygon and
// hull folds, which are O(n) in the vertex/box count.
package geom2d
