package geom3d_test

import (
	"encoding/json"
	"math"
	"math/rand"
	"testing"

	"github.com/golang/geo/s1"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlgeo/geom3d"
)

// roundTrip encodes src and decodes it back, requiring an exact match.
func roundTrip[T any](t *testing.T, src T) {
	t.Helper()
	data, err := json.Marshal(src)
	require.NoError(t, err)

	var got T
	require.NoError(t, json.Unmarshal(data, &got))
	require.Equal(t, src, got)
}

func randPoint(rng *rand.Rand) geom3d.Point {
	return geom3d.Pt(rng.Float64()*20-10, rng.Float64()*20-10, rng.Float64()*20-10)
}

func randAngle(rng *rand.Rand) s1.Angle {
	return s1.Angle(rng.Float64() * 2 * math.Pi)
}

func randDirection(rng *rand.Rand) geom3d.Direction {
	for {
		d, ok := geom3d.NewDirection(
			rng.Float64()*2-1, rng.Float64()*2-1, rng.Float64()*2-1,
		)
		if ok {
			return d
		}
	}
}

//----------------------------------------------------------------------------//
// Round-trips
//----------------------------------------------------------------------------//

// TestJSONRoundTrip_AllTypes fuzzes exact encode/decode round-trips for
// every serializable type.
func TestJSONRoundTrip_AllTypes(t *testing.T) {
	rng := rand.New(rand.NewSource(99))
	for i := 0; i < 100; i++ {
		roundTrip(t, geom3d.Vec(rng.Float64()*20-10, rng.Float64()*20-10, rng.Float64()*20-10))
		roundTrip(t, randPoint(rng))
		roundTrip(t, randDirection(rng))
		roundTrip(t, geom3d.Through(randPoint(rng), randDirection(rng)))
		roundTrip(t, geom3d.PlaneThrough(randPoint(rng), randDirection(rng)))
		roundTrip(t, geom3d.FromCorners(randPoint(rng), randPoint(rng)))
		roundTrip(t, geom3d.Segment(randPoint(rng), randPoint(rng)))
		roundTrip(t, geom3d.Triangle{P1: randPoint(rng), P2: randPoint(rng), P3: randPoint(rng)})
		roundTrip(t, geom3d.Circle{
			Center: randPoint(rng),
			Axis:   randDirection(rng),
			Radius: rng.Float64() * 10,
		})

		frame := geom3d.FrameAt(randPoint(rng)).
			RotateAround(geom3d.Through(geom3d.Origin, randDirection(rng)), randAngle(rng))
		roundTrip(t, frame)
	}
}

//----------------------------------------------------------------------------//
// Wire format
//----------------------------------------------------------------------------//

// TestJSONWireFormat pins the exact shape of the encoded documents.
func TestJSONWireFormat(t *testing.T) {
	t.Run("PointIsTuple", func(t *testing.T) {
		data, err := json.Marshal(geom3d.Pt(1, 2, 3))
		require.NoError(t, err)
		require.JSONEq(t, `[1,2,3]`, string(data))
	})
	t.Run("PlaneIsObject", func(t *testing.T) {
		data, err := json.Marshal(geom3d.PlaneThrough(geom3d.Pt(1, 2, 3), geom3d.PositiveZ))
		require.NoError(t, err)
		require.JSONEq(t, `{"originPoint":[1,2,3],"normalDirection":[0,0,1]}`, string(data))
	})
	t.Run("BoxIsObject", func(t *testing.T) {
		data, err := json.Marshal(geom3d.With(0, 3, 0, 2, 0, 1))
		require.NoError(t, err)
		require.JSONEq(t, `{"minX":0,"maxX":3,"minY":0,"maxY":2,"minZ":0,"maxZ":1}`, string(data))
	})
	t.Run("CircleIsObject", func(t *testing.T) {
		c := geom3d.Circle{Center: geom3d.Pt(1, 0, 0), Axis: geom3d.PositiveY, Radius: 2.5}
		data, err := json.Marshal(c)
		require.NoError(t, err)
		require.JSONEq(t, `{"centerPoint":[1,0,0],"axialDirection":[0,1,0],"radius":2.5}`, string(data))
	})
	t.Run("TriangleIsVertexArray", func(t *testing.T) {
		tri := geom3d.Triangle{P1: geom3d.Origin, P2: geom3d.Pt(1, 0, 0), P3: geom3d.Pt(0, 1, 0)}
		data, err := json.Marshal(tri)
		require.NoError(t, err)
		require.JSONEq(t, `[[0,0,0],[1,0,0],[0,1,0]]`, string(data))
	})
}

//----------------------------------------------------------------------------//
// Decode failures
//----------------------------------------------------------------------------//

// TestJSONDecodeErrors maps malformed documents to the package sentinels.
func TestJSONDecodeErrors(t *testing.T) {
	cases := []struct {
		name string
		into func() json.Unmarshaler
		data string
		want error
	}{
		{"PointTooShort", func() json.Unmarshaler { return &geom3d.Point{} }, `[1,2]`, geom3d.ErrBadTuple},
		{"PointNotNumbers", func() json.Unmarshaler { return &geom3d.Point{} }, `["a","b","c"]`, geom3d.ErrBadTuple},
		{"VectorNotArray", func() json.Unmarshaler { return &geom3d.Vector{} }, `{"x":1}`, geom3d.ErrBadTuple},
		{"DirectionNotUnit", func() json.Unmarshaler { return &geom3d.Direction{} }, `[1,1,1]`, geom3d.ErrNotUnit},
		{"DirectionZero", func() json.Unmarshaler { return &geom3d.Direction{} }, `[0,0,0]`, geom3d.ErrNotUnit},
		{"AxisMissingDirection", func() json.Unmarshaler { return &geom3d.Axis{} }, `{"originPoint":[0,0,0]}`, geom3d.ErrBadField},
		{"AxisBadDirection", func() json.Unmarshaler { return &geom3d.Axis{} }, `{"originPoint":[0,0,0],"direction":[2,0,0]}`, geom3d.ErrNotUnit},
		{"PlaneMissingNormal", func() json.Unmarshaler { return &geom3d.Plane{} }, `{"originPoint":[0,0,0]}`, geom3d.ErrBadField},
		{"FrameMissingZ", func() json.Unmarshaler { return &geom3d.Frame{} }, `{"originPoint":[0,0,0],"xDirection":[1,0,0],"yDirection":[0,1,0]}`, geom3d.ErrBadField},
		{"BoxMissingBound", func() json.Unmarshaler { return &geom3d.BoundingBox{} }, `{"minX":0,"maxX":1,"minY":0,"maxY":1,"minZ":0}`, geom3d.ErrBadField},
		{"SegmentMissingEnd", func() json.Unmarshaler { return &geom3d.LineSegment{} }, `{"startPoint":[0,0,0]}`, geom3d.ErrBadField},
		{"TriangleTooFewVertices", func() json.Unmarshaler { return &geom3d.Triangle{} }, `[[0,0,0],[1,0,0]]`, geom3d.ErrBadTuple},
		{"TriangleBadVertex", func() json.Unmarshaler { return &geom3d.Triangle{} }, `[[0,0,0],[1,0,0],[0,1]]`, geom3d.ErrBadTuple},
		{"CircleMissingRadius", func() json.Unmarshaler { return &geom3d.Circle{} }, `{"centerPoint":[0,0,0],"axialDirection":[0,0,1]}`, geom3d.ErrBadField},
		{"CircleNegativeRadius", func() json.Unmarshaler { return &geom3d.Circle{} }, `{"centerPoint":[0,0,0],"axialDirection":[0,0,1],"radius":-1}`, geom3d.ErrBadField},
		{"CircleBadAxis", func() json.Unmarshaler { return &geom3d.Circle{} }, `{"centerPoint":[0,0,0],"axialDirection":[0,0,3],"radius":1}`, geom3d.ErrNotUnit},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.into().UnmarshalJSON([]byte(tc.data))
			require.ErrorIs(t, err, tc.want)
		})
	}
}

// TestJSONBoxDecodeNormalizes reorders swapped bounds on decode, same as
// With.
func TestJSONBoxDecodeNormalizes(t *testing.T) {
	var box geom3d.BoundingBox
	doc := `{"minX":3,"maxX":0,"minY":0,"maxY":2,"minZ":1,"maxZ":0}`
	require.NoError(t, json.Unmarshal([]byte(doc), &box))
	require.Equal(t, geom3d.With(0, 3, 0, 2, 0, 1), box)
}

// TestJSONDirectionExact keeps near-unit input bit-exact instead of
// renormalizing.
func TestJSONDirectionExact(t *testing.T) {
	x := math.Cos(0.3)
	y := math.Sin(0.3)
	data, err := json.Marshal([3]float64{x, y, 0})
	require.NoError(t, err)

	var d geom3d.Direction
	require.NoError(t, json.Unmarshal(data, &d))
	require.Equal(t, x, d.X())
	require.Equal(t, y, d.Y())
	require.Equal(t, 0.0, d.Z())
}
