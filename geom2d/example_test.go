package geom2d_test

import (
	"encoding/json"
	"fmt"
	"math"

	"github.com/golang/geo/s1"

	"github.com/katalvlaran/lvlgeo/geom2d"
)

////////////////////////////////////////////////////////////////////////////////
// Example: bounding-box algebra
////////////////////////////////////////////////////////////////////////////////

// ExampleBoundingBox_Intersection demonstrates the Overlaps/Intersection
// relationship on two boxes.
// Scenario:
//
//   - Box A spans x∈[0,3], y∈[0,2]; box B spans x∈[1,4], y∈[1,5].
//   - They overlap, so the intersection is defined: x∈[1,3], y∈[1,2].
//   - Box C spans x∈[0,3], y∈[4,5]: no overlap with A on the Y axis.
func ExampleBoundingBox_Intersection() {
	a := geom2d.With(0, 3, 0, 2)
	b := geom2d.With(1, 4, 1, 5)
	c := geom2d.With(0, 3, 4, 5)

	if overlap, ok := a.Intersection(b); ok {
		fmt.Printf("A∩B: x[%g,%g] y[%g,%g]\n", overlap.MinX, overlap.MaxX, overlap.MinY, overlap.MaxY)
	}
	_, ok := a.Intersection(c)
	fmt.Println("A overlaps C:", ok)

	// Output:
	// A∩B: x[1,3] y[1,2]
	// A overlaps C: false
}

////////////////////////////////////////////////////////////////////////////////
// Example: frame changes
////////////////////////////////////////////////////////////////////////////////

// ExamplePoint_RelativeTo demonstrates how RelativeTo and PlaceIn invert
// each other.
// Scenario:
//
//   - A frame sits at (2,1), rotated 90° counterclockwise, so its X axis
//     points along global +Y.
//   - The global point (2,3) is two units along the frame's X axis.
func ExamplePoint_RelativeTo() {
	frame := geom2d.FrameWith(geom2d.Pt(2, 1), geom2d.PositiveY)
	p := geom2d.Pt(2, 3)

	local := p.RelativeTo(frame)
	back := local.PlaceIn(frame)
	fmt.Printf("local: (%g,%g)\n", local.X, local.Y)
	fmt.Printf("back:  (%g,%g)\n", back.X, back.Y)

	// Output:
	// local: (2,0)
	// back:  (2,3)
}

////////////////////////////////////////////////////////////////////////////////
// Example: shoelace areas
////////////////////////////////////////////////////////////////////////////////

// ExamplePolygon_Area demonstrates the signed-area conventions on a unit
// square wound both ways.
func ExamplePolygon_Area() {
	ccw := geom2d.NewPolygon(
		geom2d.Origin, geom2d.Pt(1, 0), geom2d.Pt(1, 1), geom2d.Pt(0, 1),
	)
	cw := geom2d.NewPolygon(
		geom2d.Origin, geom2d.Pt(0, 1), geom2d.Pt(1, 1), geom2d.Pt(1, 0),
	)

	fmt.Println("ccw signed:", ccw.CounterclockwiseArea())
	fmt.Println("cw signed: ", cw.CounterclockwiseArea())
	fmt.Println("area:      ", cw.Area())

	// Output:
	// ccw signed: 1
	// cw signed:  -1
	// area:       1
}

////////////////////////////////////////////////////////////////////////////////
// Example: JSON round-trip
////////////////////////////////////////////////////////////////////////////////

// ExampleArc_MarshalJSON demonstrates the wire format of an arc and its
// exact round-trip.
func ExampleArc_MarshalJSON() {
	arc := geom2d.Arc{
		Center: geom2d.Origin,
		Start:  geom2d.Pt(1, 0),
		Swept:  s1.Angle(math.Pi),
	}

	data, _ := json.Marshal(arc)
	fmt.Println(string(data))

	var decoded geom2d.Arc
	_ = json.Unmarshal(data, &decoded)
	fmt.Println("equal after round-trip:", decoded == arc)

	// Output:
	// {"centerPoint":[0,0],"startPoint":[1,0],"sweptAngle":3.141592653589793}
	// equal after round-trip: true
}
