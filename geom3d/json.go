package geom3d

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/lvlgeo/scalar"
)

// JSON wire format mirrors geom2d: coordinate tuples are bare [x, y, z]
// arrays, records are objects mirroring their fields, round-trips are
// exact, and malformed input fails with errors wrapping the package
// sentinels.

// MarshalJSON encodes v as [x, y, z].
func (v Vector) MarshalJSON() ([]byte, error) {
	return json.Marshal([3]float64{v.X, v.Y, v.Z})
}

// UnmarshalJSON decodes [x, y, z] into v.
func (v *Vector) UnmarshalJSON(data []byte) error {
	x, y, z, err := decodeTriple(data, "vector")
	if err != nil {
		return err
	}
	v.X, v.Y, v.Z = x, y, z

	return nil
}

// MarshalJSON encodes p as [x, y, z].
func (p Point) MarshalJSON() ([]byte, error) {
	return json.Marshal([3]float64{p.X, p.Y, p.Z})
}

// UnmarshalJSON decodes [x, y, z] into p.
func (p *Point) UnmarshalJSON(data []byte) error {
	x, y, z, err := decodeTriple(data, "point")
	if err != nil {
		return err
	}
	p.X, p.Y, p.Z = x, y, z

	return nil
}

// MarshalJSON encodes d as [x, y, z].
func (d Direction) MarshalJSON() ([]byte, error) {
	return json.Marshal([3]float64{d.x, d.y, d.z})
}

// UnmarshalJSON decodes [x, y, z] into d. The components must already be
// unit length within scalar.DirectionTolerance; they are stored bit-exact,
// never renormalized, so round-trips are exact.
func (d *Direction) UnmarshalJSON(data []byte) error {
	x, y, z, err := decodeTriple(data, "direction")
	if err != nil {
		return err
	}
	if !scalar.EqualWithin(math.Sqrt(x*x+y*y+z*z), 1, scalar.DirectionTolerance) {
		return fmt.Errorf("%w: [%v, %v, %v]", ErrNotUnit, x, y, z)
	}
	d.x, d.y, d.z = x, y, z

	return nil
}

type axisJSON struct {
	Origin    *Point     `json:"originPoint"`
	Direction *Direction `json:"direction"`
}

// MarshalJSON encodes the axis as {"originPoint": …, "direction": …}.
func (a Axis) MarshalJSON() ([]byte, error) {
	return json.Marshal(axisJSON{Origin: &a.Origin, Direction: &a.Direction})
}

// UnmarshalJSON decodes an axis object; both fields are required.
func (a *Axis) UnmarshalJSON(data []byte) error {
	var aux axisJSON
	if err := json.Unmarshal(data, &aux); err != nil {
		return wrapDecode(err, "axis")
	}
	if aux.Origin == nil || aux.Direction == nil {
		return fmt.Errorf("%w: axis needs originPoint and direction", ErrBadField)
	}
	a.Origin, a.Direction = *aux.Origin, *aux.Direction

	return nil
}

type planeJSON struct {
	Origin *Point     `json:"originPoint"`
	Normal *Direction `json:"normalDirection"`
}

// MarshalJSON encodes the plane as {"originPoint": …,
// "normalDirection": …}.
func (pl Plane) MarshalJSON() ([]byte, error) {
	return json.Marshal(planeJSON{Origin: &pl.Origin, Normal: &pl.Normal})
}

// UnmarshalJSON decodes a plane object; both fields are required.
func (pl *Plane) UnmarshalJSON(data []byte) error {
	var aux planeJSON
	if err := json.Unmarshal(data, &aux); err != nil {
		return wrapDecode(err, "plane")
	}
	if aux.Origin == nil || aux.Normal == nil {
		return fmt.Errorf("%w: plane needs originPoint and normalDirection", ErrBadField)
	}
	pl.Origin, pl.Normal = *aux.Origin, *aux.Normal

	return nil
}

type frameJSON struct {
	Origin     *Point     `json:"originPoint"`
	XDirection *Direction `json:"xDirection"`
	YDirection *Direction `json:"yDirection"`
	ZDirection *Direction `json:"zDirection"`
}

// MarshalJSON encodes the frame as {"originPoint": …, "xDirection": …,
// "yDirection": …, "zDirection": …}.
func (f Frame) MarshalJSON() ([]byte, error) {
	return json.Marshal(frameJSON{
		Origin:     &f.Origin,
		XDirection: &f.XDirection,
		YDirection: &f.YDirection,
		ZDirection: &f.ZDirection,
	})
}

// UnmarshalJSON decodes a frame object; all four fields are required.
func (f *Frame) UnmarshalJSON(data []byte) error {
	var aux frameJSON
	if err := json.Unmarshal(data, &aux); err != nil {
		return wrapDecode(err, "frame")
	}
	if aux.Origin == nil || aux.XDirection == nil || aux.YDirection == nil || aux.ZDirection == nil {
		return fmt.Errorf("%w: frame needs originPoint, xDirection, yDirection and zDirection", ErrBadField)
	}
	f.Origin = *aux.Origin
	f.XDirection, f.YDirection, f.ZDirection = *aux.XDirection, *aux.YDirection, *aux.ZDirection

	return nil
}

type boundingBoxJSON struct {
	MinX *float64 `json:"minX"`
	MaxX *float64 `json:"maxX"`
	MinY *float64 `json:"minY"`
	MaxY *float64 `json:"maxY"`
	MinZ *float64 `json:"minZ"`
	MaxZ *float64 `json:"maxZ"`
}

// MarshalJSON encodes the box as an object of its six bounds.
func (b BoundingBox) MarshalJSON() ([]byte, error) {
	return json.Marshal(boundingBoxJSON{
		MinX: &b.MinX, MaxX: &b.MaxX,
		MinY: &b.MinY, MaxY: &b.MaxY,
		MinZ: &b.MinZ, MaxZ: &b.MaxZ,
	})
}

// UnmarshalJSON decodes a box object; all six bounds are required and any
// swapped pair is normalized, same as With.
func (b *BoundingBox) UnmarshalJSON(data []byte) error {
	var aux boundingBoxJSON
	if err := json.Unmarshal(data, &aux); err != nil {
		return wrapDecode(err, "boundingBox")
	}
	if aux.MinX == nil || aux.MaxX == nil ||
		aux.MinY == nil || aux.MaxY == nil ||
		aux.MinZ == nil || aux.MaxZ == nil {
		return fmt.Errorf("%w: boundingBox needs minX, maxX, minY, maxY, minZ and maxZ", ErrBadField)
	}
	*b = With(*aux.MinX, *aux.MaxX, *aux.MinY, *aux.MaxY, *aux.MinZ, *aux.MaxZ)

	return nil
}

type segmentJSON struct {
	Start *Point `json:"startPoint"`
	End   *Point `json:"endPoint"`
}

// MarshalJSON encodes the segment as {"startPoint": …, "endPoint": …}.
func (s LineSegment) MarshalJSON() ([]byte, error) {
	return json.Marshal(segmentJSON{Start: &s.Start, End: &s.End})
}

// UnmarshalJSON decodes a segment object; both endpoints are required.
func (s *LineSegment) UnmarshalJSON(data []byte) error {
	var aux segmentJSON
	if err := json.Unmarshal(data, &aux); err != nil {
		return wrapDecode(err, "lineSegment")
	}
	if aux.Start == nil || aux.End == nil {
		return fmt.Errorf("%w: lineSegment needs startPoint and endPoint", ErrBadField)
	}
	s.Start, s.End = *aux.Start, *aux.End

	return nil
}

// MarshalJSON encodes the triangle as an array of its three vertices.
func (t Triangle) MarshalJSON() ([]byte, error) {
	return json.Marshal([3]Point{t.P1, t.P2, t.P3})
}

// UnmarshalJSON decodes a three-vertex array into t.
func (t *Triangle) UnmarshalJSON(data []byte) error {
	var vertices []Point
	if err := json.Unmarshal(data, &vertices); err != nil {
		return wrapDecode(err, "triangle")
	}
	if len(vertices) != 3 {
		return fmt.Errorf("%w: triangle needs 3 vertices, got %d", ErrBadTuple, len(vertices))
	}
	t.P1, t.P2, t.P3 = vertices[0], vertices[1], vertices[2]

	return nil
}

type circleJSON struct {
	Center *Point     `json:"centerPoint"`
	Axis   *Direction `json:"axialDirection"`
	Radius *float64   `json:"radius"`
}

// MarshalJSON encodes the circle as {"centerPoint": …,
// "axialDirection": …, "radius": …}.
func (c Circle) MarshalJSON() ([]byte, error) {
	return json.Marshal(circleJSON{Center: &c.Center, Axis: &c.Axis, Radius: &c.Radius})
}

// UnmarshalJSON decodes a circle object; all fields are required and the
// radius must be non-negative.
func (c *Circle) UnmarshalJSON(data []byte) error {
	var aux circleJSON
	if err := json.Unmarshal(data, &aux); err != nil {
		return wrapDecode(err, "circle")
	}
	if aux.Center == nil || aux.Axis == nil || aux.Radius == nil {
		return fmt.Errorf("%w: circle needs centerPoint, axialDirection and radius", ErrBadField)
	}
	if *aux.Radius < 0 {
		return fmt.Errorf("%w: circle radius %v is negative", ErrBadField, *aux.Radius)
	}
	c.Center, c.Axis, c.Radius = *aux.Center, *aux.Axis, *aux.Radius

	return nil
}

// decodeTriple unmarshals a three-element numeric array.
func decodeTriple(data []byte, what string) (x, y, z float64, err error) {
	var tuple []float64
	if err = json.Unmarshal(data, &tuple); err != nil {
		return 0, 0, 0, fmt.Errorf("%w: %s wants [x, y, z]: %v", ErrBadTuple, what, err)
	}
	if len(tuple) != 3 {
		return 0, 0, 0, fmt.Errorf("%w: %s wants [x, y, z], got %d elements", ErrBadTuple, what, len(tuple))
	}

	return tuple[0], tuple[1], tuple[2], nil
}

// wrapDecode keeps package sentinels recognizable through nested decodes
// and tags everything else as a malformed field.
func wrapDecode(err error, what string) error {
	if errors.Is(err, ErrBadTuple) || errors.Is(err, ErrNotUnit) || errors.Is(err, ErrBadField) {
		return err
	}

	return fmt.Errorf("%w: %s: %v", ErrBadField, what, err)
}
