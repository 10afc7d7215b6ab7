// Package geoconv bridges lvlgeo's planar types to the
// github.com/twpayne/go-geom model, so callers can hand geometry to GIS
// tooling (GeoJSON/WKB encoders, boolean operations, spatial predicates)
// without re-plumbing coordinates by hand.
//
// What:
//
//   - Point ↔ geom.Point / geom.Coord.
//   - LineSegment → geom.LineString (two coordinates).
//   - Polygon ↔ geom.Polygon (single outer ring; closed on export, the
//     closing coordinate is dropped on import).
//   - BoundingBox ↔ *geom.Bounds.
//
// Conventions:
//
//   - All conversions use the XY layout. Importing a geometry whose layout
//     carries fewer than two ordinates fails with ErrLayout; extra
//     ordinates (Z, M) are ignored.
//   - Exports allocate fresh go-geom values; nothing aliases lvlgeo
//     storage.
package geoconv
