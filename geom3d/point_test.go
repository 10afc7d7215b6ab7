package geom3d_test

import (
	"math"
	"testing"

	"github.com/golang/geo/s1"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlgeo/geom3d"
)

//----------------------------------------------------------------------------//
// Displacement and measure
//----------------------------------------------------------------------------//

// TestPointVectorsAndDistance covers the displacement pair and distance.
func TestPointVectorsAndDistance(t *testing.T) {
	p := geom3d.Pt(1, 2, 3)
	q := geom3d.Pt(4, 6, 3)

	require.Equal(t, geom3d.Vec(3, 4, 0), p.VectorTo(q))
	require.Equal(t, geom3d.Vec(-3, -4, 0), p.VectorFrom(q))
	require.Equal(t, 5.0, p.DistanceTo(q))
	require.Equal(t, geom3d.Pt(2.5, 4, 3), p.Midpoint(q))
}

// TestPointInterpolate covers interior points and extrapolation.
func TestPointInterpolate(t *testing.T) {
	p := geom3d.Origin
	q := geom3d.Pt(4, 0, 8)

	require.Equal(t, p, p.Interpolate(q, 0))
	require.Equal(t, q, p.Interpolate(q, 1))
	require.Equal(t, geom3d.Pt(1, 0, 2), p.Interpolate(q, 0.25))
	require.Equal(t, geom3d.Pt(8, 0, 16), p.Interpolate(q, 2))
}

//----------------------------------------------------------------------------//
// Transformations
//----------------------------------------------------------------------------//

// TestPointTranslateAndScale covers translation and scaling about a center.
func TestPointTranslateAndScale(t *testing.T) {
	p := geom3d.Pt(1, 1, 1)
	require.Equal(t, geom3d.Pt(3, 0, 2), p.TranslateBy(geom3d.Vec(2, -1, 1)))

	center := geom3d.Pt(1, 0, 0)
	require.Equal(t, geom3d.Pt(1, 2, 2), p.ScaleAbout(center, 2))
	require.Equal(t, center, p.ScaleAbout(center, 0))
	require.Equal(t, geom3d.Pt(1, -1, -1), p.ScaleAbout(center, -1))
}

// TestPointRotateAround rotates about an offset axis: a quarter turn about
// the vertical axis through (1,0,0) sends (2,0,0) to (1,1,0).
func TestPointRotateAround(t *testing.T) {
	axis := geom3d.Through(geom3d.Pt(1, 0, 0), geom3d.PositiveZ)
	got := geom3d.Pt(2, 0, 0).RotateAround(axis, s1.Angle(math.Pi/2))
	require.True(t, got.EqualWithin(geom3d.Pt(1, 1, 0), tol))

	// Points on the axis are fixed.
	on := geom3d.Pt(1, 0, 5)
	require.True(t, on.RotateAround(axis, s1.Angle(1.234)).EqualWithin(on, tol))
}

// TestPointMirrorAcross reflects across an offset plane and is an
// involution.
func TestPointMirrorAcross(t *testing.T) {
	p := geom3d.Pt(1, 2, 3)
	require.Equal(t, geom3d.Pt(1, 2, -3), p.MirrorAcross(geom3d.XYPlane))

	lifted := geom3d.PlaneThrough(geom3d.Pt(0, 0, 1), geom3d.PositiveZ)
	require.Equal(t, geom3d.Pt(1, 2, -1), p.MirrorAcross(lifted))
	require.Equal(t, p, p.MirrorAcross(lifted).MirrorAcross(lifted))
}

//----------------------------------------------------------------------------//
// Projections and distances
//----------------------------------------------------------------------------//

// TestPointProjections covers axis and plane projections.
func TestPointProjections(t *testing.T) {
	p := geom3d.Pt(3, 4, 5)

	require.Equal(t, geom3d.Pt(3, 0, 0), p.ProjectOntoAxis(geom3d.XAxis))
	require.Equal(t, geom3d.Pt(3, 4, 0), p.ProjectOnto(geom3d.XYPlane))
	require.Equal(t, 3.0, p.SignedDistanceAlong(geom3d.XAxis))
	require.Equal(t, 5.0, p.SignedDistanceFrom(geom3d.XYPlane))
	require.Equal(t, -5.0, p.SignedDistanceFrom(geom3d.XYPlane.FlipNormal()))
	require.InDelta(t, math.Sqrt(41), p.DistanceFromAxis(geom3d.XAxis), tol)
}

//----------------------------------------------------------------------------//
// Frames
//----------------------------------------------------------------------------//

// TestPointFrameRoundTrip checks that RelativeTo and PlaceIn invert each
// other, and pins a worked conversion in a rotated frame.
func TestPointFrameRoundTrip(t *testing.T) {
	frame := rotatedFrame(t)
	p := geom3d.Pt(-2, 4, 1)

	local := p.RelativeTo(frame)
	require.True(t, local.PlaceIn(frame).EqualWithin(p, tol))

	// The frame origin maps to local origin and back.
	require.True(t, frame.Origin.RelativeTo(frame).EqualWithin(geom3d.Origin, tol))
	require.True(t, geom3d.Origin.PlaceIn(frame).EqualWithin(frame.Origin, tol))

	// One frame-X unit from the origin lands along the rotated X direction.
	unit := geom3d.Pt(1, 0, 0).PlaceIn(frame)
	want := frame.Origin.TranslateBy(frame.XDirection.ToVector())
	require.True(t, unit.EqualWithin(want, tol))
}
