package geom3d

import "errors"

var (
	// ErrBadTuple indicates a coordinate tuple with the wrong element count
	// or a non-numeric element.
	ErrBadTuple = errors.New("geom3d: coordinate tuple has wrong shape")
	// ErrNotUnit indicates direction components whose magnitude is not 1
	// within scalar.DirectionTolerance.
	ErrNotUnit = errors.New("geom3d: direction components are not unit length")
	// ErrBadField indicates a missing or malformed required object field.
	ErrBadField = errors.New("geom3d: required field missing or malformed")
)
