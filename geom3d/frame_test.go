package geom3d_test

import (
	"math"
	"testing"

	"github.com/golang/geo/s1"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlgeo/geom3d"
)

//----------------------------------------------------------------------------//
// Frames
//----------------------------------------------------------------------------//

// TestFrameConstructors checks the global frame, FrameAt and the derived
// axes and plane.
func TestFrameConstructors(t *testing.T) {
	require.Equal(t, geom3d.Origin, geom3d.GlobalFrame.Origin)
	require.Equal(t, geom3d.PositiveX, geom3d.GlobalFrame.XDirection)

	f := geom3d.FrameAt(geom3d.Pt(1, 2, 3))
	require.Equal(t, geom3d.Through(geom3d.Pt(1, 2, 3), geom3d.PositiveX), f.XAxis())
	require.Equal(t, geom3d.Through(geom3d.Pt(1, 2, 3), geom3d.PositiveZ), f.ZAxis())
	require.Equal(t, geom3d.PlaneThrough(geom3d.Pt(1, 2, 3), geom3d.PositiveZ), f.XYPlane())
}

// TestFrameHandedness checks the triple-product rule and that mirroring
// flips handedness while rotation preserves it.
func TestFrameHandedness(t *testing.T) {
	require.True(t, geom3d.GlobalFrame.IsRightHanded())

	left := geom3d.GlobalFrame
	left.ZDirection = geom3d.NegativeZ
	require.False(t, left.IsRightHanded())

	mirrored := geom3d.GlobalFrame.MirrorAcross(geom3d.XYPlane)
	require.False(t, mirrored.IsRightHanded())

	rotated := geom3d.GlobalFrame.RotateAround(geom3d.YAxis, s1.Angle(1.1))
	require.True(t, rotated.IsRightHanded())
}

// TestFrameIdentity checks that the global frame is the identity for both
// conversions.
func TestFrameIdentity(t *testing.T) {
	p := geom3d.Pt(4, -1, 7)
	require.Equal(t, p, p.RelativeTo(geom3d.GlobalFrame))
	require.Equal(t, p, p.PlaceIn(geom3d.GlobalFrame))
}

// TestFrameRoundTrip composes a frame into another and back.
func TestFrameRoundTrip(t *testing.T) {
	outer := rotatedFrame(t)
	inner := geom3d.FrameAt(geom3d.Pt(5, 0, -2)).
		RotateAround(geom3d.ZAxis, s1.Angle(math.Pi/3))

	local := inner.RelativeTo(outer)
	back := local.PlaceIn(outer)

	require.True(t, back.Origin.EqualWithin(inner.Origin, tol))
	require.True(t, back.XDirection.EqualWithin(inner.XDirection, tol))
	require.True(t, back.YDirection.EqualWithin(inner.YDirection, tol))
	require.True(t, back.ZDirection.EqualWithin(inner.ZDirection, tol))
}

// TestFrameTranslateAndRotate verifies rigid motions keep the basis
// orthonormal.
func TestFrameTranslateAndRotate(t *testing.T) {
	f := geom3d.GlobalFrame.TranslateBy(geom3d.Vec(1, 1, 1))
	require.Equal(t, geom3d.Pt(1, 1, 1), f.Origin)
	require.Equal(t, geom3d.PositiveX, f.XDirection)

	g := f.RotateAround(geom3d.ZAxis, s1.Angle(math.Pi/2))
	require.True(t, g.XDirection.EqualWithin(geom3d.PositiveY, tol))
	require.True(t, g.YDirection.EqualWithin(geom3d.NegativeX, tol))
	require.True(t, g.ZDirection.EqualWithin(geom3d.PositiveZ, tol))
	require.True(t, g.Origin.EqualWithin(geom3d.Pt(-1, 1, 1), tol))
}

//----------------------------------------------------------------------------//
// Axes and planes
//----------------------------------------------------------------------------//

// TestAxisTransformations covers reversal and rigid motions of an axis.
func TestAxisTransformations(t *testing.T) {
	a := geom3d.Through(geom3d.Pt(1, 0, 0), geom3d.PositiveY)

	require.Equal(t, geom3d.NegativeY, a.Reverse().Direction)
	require.Equal(t, geom3d.Pt(1, 0, 0), a.Reverse().Origin)

	moved := a.TranslateBy(geom3d.Vec(0, 0, 2))
	require.Equal(t, geom3d.Pt(1, 0, 2), moved.Origin)

	rotated := a.RotateAround(geom3d.ZAxis, s1.Angle(math.Pi/2))
	require.True(t, rotated.Origin.EqualWithin(geom3d.Pt(0, 1, 0), tol))
	require.True(t, rotated.Direction.EqualWithin(geom3d.NegativeX, tol))
}

// TestPlaneTransformations covers normal flips, mirroring and frame
// conversions of a plane.
func TestPlaneTransformations(t *testing.T) {
	pl := geom3d.PlaneThrough(geom3d.Pt(0, 0, 1), geom3d.PositiveZ)

	require.Equal(t, geom3d.NegativeZ, pl.FlipNormal().Normal)
	require.Equal(t, geom3d.Through(geom3d.Pt(0, 0, 1), geom3d.PositiveZ), pl.NormalAxis())

	mirrored := pl.MirrorAcross(geom3d.XYPlane)
	require.Equal(t, geom3d.Pt(0, 0, -1), mirrored.Origin)
	require.Equal(t, geom3d.NegativeZ, mirrored.Normal)

	frame := rotatedFrame(t)
	back := pl.RelativeTo(frame).PlaceIn(frame)
	require.True(t, back.Origin.EqualWithin(pl.Origin, tol))
	require.True(t, back.Normal.EqualWithin(pl.Normal, tol))
}
