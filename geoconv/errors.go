package geoconv

import "errors"

var (
	// ErrLayout indicates a go-geom geometry whose layout carries fewer
	// than two ordinates per coordinate.
	ErrLayout = errors.New("geoconv: geometry layout needs at least X and Y")
	// ErrRings indicates a go-geom polygon with no linear rings where one
	// was required.
	ErrRings = errors.New("geoconv: polygon has no outer ring")
)
