// Package lvlgeo is your in-memory toolkit for planar and spatial
// geometry — points, vectors, directions, axes, frames, boxes and shapes,
// with the transformations that connect them.
//
// 🚀 What is lvlgeo?
//
//	A small, dependency-light library that brings together:
//		• Core primitives: vectors, points, unit directions in 2D and 3D
//		• Datums: axes, planes and orthonormal frames for mirroring & projection
//		• Transformations: translate, rotate, mirror, scale, relativeTo/placeIn
//		• Bounding-box algebra: hull, intersection, overlap, containment
//		• Shapes: segments, triangles, circles, arcs and polygons with
//		  perimeter, signed area (shoelace) and bounding boxes
//		• JSON codecs with exact round-trips, plus go-geom bridges
//
// ✨ Why choose lvlgeo?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Rock-solid guarantees – immutable values, normalized invariants
//   - Purely functional – every transform is value → value, safe to call
//     from any number of goroutines
//   - Honest partiality – naturally absent results are (T, bool), errors
//     are reserved for malformed JSON
//
// Everything is organized under four subpackages:
//
//	scalar/  — generic numeric helpers and tolerance policy
//	geom2d/  — planar geometry: all primitives, datums and shapes
//	geom3d/  — spatial geometry: primitives, planes, frames, circles
//	geoconv/ — bridges to github.com/twpayne/go-geom for GIS tooling
//
// Quick ASCII example:
//
//	    ┌─────────┐
//	    │   ┌─────┼───┐
//	    │   │█████│   │
//	    └───┼─────┘   │
//	        └─────────┘
//
//	two boxes, their intersection shaded — Overlaps is true exactly when
//	Intersection is defined.
//
// Dive into the per-package docs for worked examples and the full API.
//
//	go get github.com/katalvlaran/lvlgeo
package lvlgeo
