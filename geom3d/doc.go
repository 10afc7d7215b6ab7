// Package geom3d implements spatial computational geometry on immutable
// value types: vectors, points, unit directions, axes, planes, frames,
// bounding boxes, line segments, triangles and circles.
//
// What:
//
//   - Vector / Point / Direction algebra including cross products and
//     Rodrigues rotation about an arbitrary axis.
//   - Axis, Plane and Frame datums; RelativeTo / PlaceIn coordinate-system
//     changes are mutual inverses for orthonormal frames.
//   - BoundingBox algebra over three per-axis ranges: Hull, Intersection,
//     Overlaps, Contains, IsContainedIn, Centroid, HullOf.
//   - Shape measures: triangle area and normal via cross products, circle
//     boxes derived from the axial direction.
//   - JSON codecs matching geom2d: tuples as arrays, records as objects,
//     exact round-trips.
//   - Bridges to r3.Vector from github.com/golang/geo for callers already
//     on that stack.
//
// Conventions:
//
//   - Right-handed global frame; positive rotation about an axis follows
//     the right-hand rule around the axis direction.
//   - Angles are s1.Angle (radians).
//   - Naturally partial operations return (T, bool); errors are reserved
//     for JSON decoding.
//
// Every operation is a pure function value → value, safe for concurrent
// use.
package geom3d
