package geom2d

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"

	"github.com/golang/geo/s1"

	"github.com/katalvlaran/lvlgeo/scalar"
)

// JSON wire format: coordinate tuples (Vector, Point, Direction) are bare
// [x, y] arrays; record types are objects mirroring their fields. Decoding
// is the exact inverse of encoding, so decode(encode(x)) == x. Malformed
// input fails with an error wrapping ErrBadTuple, ErrNotUnit or
// ErrBadField and describing the mismatch.

// MarshalJSON encodes v as [x, y].
func (v Vector) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]float64{v.X, v.Y})
}

// UnmarshalJSON decodes [x, y] into v.
func (v *Vector) UnmarshalJSON(data []byte) error {
	x, y, err := decodePair(data, "vector")
	if err != nil {
		return err
	}
	v.X, v.Y = x, y

	return nil
}

// MarshalJSON encodes p as [x, y].
func (p Point) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]float64{p.X, p.Y})
}

// UnmarshalJSON decodes [x, y] into p.
func (p *Point) UnmarshalJSON(data []byte) error {
	x, y, err := decodePair(data, "point")
	if err != nil {
		return err
	}
	p.X, p.Y = x, y

	return nil
}

// MarshalJSON encodes d as [x, y].
func (d Direction) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]float64{d.x, d.y})
}

// UnmarshalJSON decodes [x, y] into d. The components must already be unit
// length within scalar.DirectionTolerance; they are stored bit-exact, never
// renormalized, so round-trips are exact.
func (d *Direction) UnmarshalJSON(data []byte) error {
	x, y, err := decodePair(data, "direction")
	if err != nil {
		return err
	}
	if !scalar.EqualWithin(math.Hypot(x, y), 1, scalar.DirectionTolerance) {
		return fmt.Errorf("%w: [%v, %v]", ErrNotUnit, x, y)
	}
	d.x, d.y = x, y

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

type frameJSON struct {
	Origin     *Point     `json:"originPoint"`
	XDirection *Direction `json:"xDirection"`
	YDirection *Direction `json:"yDirection"`
}

// MarshalJSON encodes the frame as
// {"originPoint": …, "xDirection": …, "yDirection": …}.
func (f Frame) MarshalJSON() ([]byte, error) {
	return json.Marshal(frameJSON{
		Origin:     &f.Origin,
		XDirection: &f.XDirection,
		YDirection: &f.YDirection,
	})
}

// UnmarshalJSON decodes a frame object; all three fields are required.
func (f *Frame) UnmarshalJSON(data []byte) error {
	var aux frameJSON
	if err := json.Unmarshal(data, &aux); err != nil {
		return wrapDecode(err, "frame")
	}
	if aux.Origin == nil || aux.XDirection == nil || aux.YDirection == nil {
		return fmt.Errorf("%w: frame needs originPoint, xDirection and yDirection", ErrBadField)
	}
	f.Origin, f.XDirection, f.YDirection = *aux.Origin, *aux.XDirection, *aux.YDirection

	return nil
}

type boundingBoxJSON struct {
	MinX *float64 `json:"minX"`
	MaxX *float64 `json:"maxX"`
	MinY *float64 `json:"minY"`
	MaxY *float64 `json:"maxY"`
}

// MarshalJSON encodes the box as {"minX": …, "maxX": …, "minY": …,
// "maxY": …}.
func (b BoundingBox) MarshalJSON() ([]byte, error) {
	return json.Marshal(boundingBoxJSON{
		MinX: &b.MinX, MaxX: &b.MaxX,
		MinY: &b.MinY, MaxY: &b.MaxY,
	})
}

// UnmarshalJSON decodes a box object; all four bounds are required and any
// swapped pair is normalized, same as With.
func (b *BoundingBox) UnmarshalJSON(data []byte) error {
	var aux boundingBoxJSON
	if err := json.Unmarshal(data, &aux); err != nil {
		return wrapDecode(err, "boundingBox")
	}
	if aux.MinX == nil || aux.MaxX == nil || aux.MinY == nil || aux.MaxY == nil {
		return fmt.Errorf("%w: boundingBox needs minX, maxX, minY and maxY", ErrBadField)
	}
	*b = With(*aux.MinX, *aux.MaxX, *aux.MinY, *aux.MaxY)

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
	Center *Point   `json:"centerPoint"`
	Radius *float64 `json:"radius"`
}

// MarshalJSON encodes the circle as {"centerPoint": …, "radius": …}.
func (c Circle) MarshalJSON() ([]byte, error) {
	return json.Marshal(circleJSON{Center: &c.Center, Radius: &c.Radius})
}

// UnmarshalJSON decodes a circle object; the radius must be present and
// non-negative.
func (c *Circle) UnmarshalJSON(data []byte) error {
	var aux circleJSON
	if err := json.Unmarshal(data, &aux); err != nil {
		return wrapDecode(err, "circle")
	}
	if aux.Center == nil || aux.Radius == nil {
		return fmt.Errorf("%w: circle needs centerPoint and radius", ErrBadField)
	}
	if *aux.Radius < 0 {
		return fmt.Errorf("%w: circle radius %v is negative", ErrBadField, *aux.Radius)
	}
	c.Center, c.Radius = *aux.Center, *aux.Radius

	return nil
}

type arcJSON struct {
	Center *Point   `json:"centerPoint"`
	Start  *Point   `json:"startPoint"`
	Swept  *float64 `json:"sweptAngle"`
}

// MarshalJSON encodes the arc as {"centerPoint": …, "startPoint": …,
// "sweptAngle": radians}.
func (a Arc) MarshalJSON() ([]byte, error) {
	swept := a.Swept.Radians()

	return json.Marshal(arcJSON{Center: &a.Center, Start: &a.Start, Swept: &swept})
}

// UnmarshalJSON decodes an arc object; all three fields are required.
func (a *Arc) UnmarshalJSON(data []byte) error {
	var aux arcJSON
	if err := json.Unmarshal(data, &aux); err != nil {
		return wrapDecode(err, "arc")
	}
	if aux.Center == nil || aux.Start == nil || aux.Swept == nil {
		return fmt.Errorf("%w: arc needs centerPoint, startPoint and sweptAngle", ErrBadField)
	}
	a.Center, a.Start, a.Swept = *aux.Center, *aux.Start, s1.Angle(*aux.Swept)

	return nil
}

type polygonJSON struct {
	Vertices []Point `json:"vertices"`
}

// MarshalJSON encodes the polygon as {"vertices": […]}; an empty polygon
// encodes an empty array.
func (pg Polygon) MarshalJSON() ([]byte, error) {
	vertices := pg.Vertices
	if vertices == nil {
		vertices = []Point{}
	}

	return json.Marshal(polygonJSON{Vertices: vertices})
}

// UnmarshalJSON decodes a polygon object. The vertices field is required;
// an empty array decodes to the empty polygon (nil vertex slice).
func (pg *Polygon) UnmarshalJSON(data []byte) error {
	var aux struct {
		Vertices *[]Point `json:"vertices"`
	}
	if err := json.Unmarshal(data, &aux); err != nil {
		return wrapDecode(err, "polygon")
	}
	if aux.Vertices == nil {
		return fmt.Errorf("%w: polygon needs vertices", ErrBadField)
	}
	if len(*aux.Vertices) == 0 {
		pg.Vertices = nil

		return nil
	}
	pg.Vertices = *aux.Vertices

	return nil
}

// decodePair unmarshals a two-element numeric array.
func decodePair(data []byte, what string) (x, y float64, err error) {
	var tuple []float64
	if err = json.Unmarshal(data, &tuple); err != nil {
		return 0, 0, fmt.Errorf("%w: %s wants [x, y]: %v", ErrBadTuple, what, err)
	}
	if len(tuple) != 2 {
		return 0, 0, fmt.Errorf("%w: %s wants [x, y], got %d elements", ErrBadTuple, what, len(tuple))
	}

	return tuple[0], tuple[1], nil
}

// wrapDecode keeps package sentinels recognizable through nested decodes
// and tags everything else as a malformed field.
func wrapDecode(err error, what string) error {
	if errors.Is(err, ErrBadTuple) || errors.Is(err, ErrNotUnit) || errors.Is(err, ErrBadField) {
		return err
	}

	return fmt.Errorf("%w: %s: %v", ErrBadField, what, err)
}
