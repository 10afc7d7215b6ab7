package geom2d_test

import (
	"math"
	"testing"

	"github.com/golang/geo/s1"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlgeo/geom2d"
)

// TestFrameConstructors checks axis accessors and handedness.
func TestFrameConstructors(t *testing.T) {
	f := geom2d.FrameAt(geom2d.Pt(1, 2))
	require.Equal(t, geom2d.Pt(1, 2), f.Origin)
	require.Equal(t, geom2d.PositiveX, f.XDirection)
	require.Equal(t, geom2d.PositiveY, f.YDirection)
	require.True(t, f.IsRightHanded())
	require.Equal(t, geom2d.Through(geom2d.Pt(1, 2), geom2d.PositiveX), f.XAxis())
	require.Equal(t, geom2d.Through(geom2d.Pt(1, 2), geom2d.PositiveY), f.YAxis())

	rotated := geom2d.FrameWith(geom2d.Origin, geom2d.DirectionFromAngle(s1.Angle(1)))
	require.True(t, rotated.IsRightHanded())
}

// TestFrameMirrorFlipsHandedness: mirroring produces a left-handed frame.
func TestFrameMirrorFlipsHandedness(t *testing.T) {
	f := geom2d.GlobalFrame.MirrorAcross(geom2d.XAxis)
	require.False(t, f.IsRightHanded())
	require.Equal(t, geom2d.PositiveX, f.XDirection)
	require.Equal(t, geom2d.NegativeY, f.YDirection)
}

// TestFrameComposition: placing a frame in another then taking it back out
// is the identity.
func TestFrameComposition(t *testing.T) {
	outer := geom2d.FrameWith(geom2d.Pt(5, 5), geom2d.DirectionFromAngle(s1.Angle(math.Pi/4)))
	inner := geom2d.FrameWith(geom2d.Pt(1, -1), geom2d.DirectionFromAngle(s1.Angle(-0.3)))

	roundTrip := inner.PlaceIn(outer).RelativeTo(outer)
	require.True(t, roundTrip.Origin.EqualWithin(inner.Origin, tol))
	require.True(t, roundTrip.XDirection.EqualWithin(inner.XDirection, tol))
	require.True(t, roundTrip.YDirection.EqualWithin(inner.YDirection, tol))
}

// TestFrameTransformEquivalence: IntoLocal and IntoGlobal agree with
// RelativeTo and PlaceIn, and they are inverse transforms.
func TestFrameTransformEquivalence(t *testing.T) {
	frame := geom2d.FrameWith(geom2d.Pt(-2, 3), geom2d.DirectionFromAngle(s1.Angle(0.9)))
	p := geom2d.Pt(4, 7)

	require.True(t, frame.IntoLocal().Point(p).EqualWithin(p.RelativeTo(frame), tol))
	require.True(t, frame.IntoGlobal().Point(p).EqualWithin(p.PlaceIn(frame), tol))

	inv, ok := frame.IntoGlobal().Invert()
	require.True(t, ok)
	require.True(t, inv.Point(p).EqualWithin(p.RelativeTo(frame), tol))
	require.True(t, frame.IntoGlobal().Mul(frame.IntoLocal()).IsIdentity(tol))
}

// TestFrameRigidMotions rotates and translates whole frames.
func TestFrameRigidMotions(t *testing.T) {
	f := geom2d.FrameAt(geom2d.Pt(1, 0)).RotateAround(geom2d.Origin, s1.Angle(math.Pi/2))
	require.True(t, f.Origin.EqualWithin(geom2d.Pt(0, 1), tol))
	require.True(t, f.XDirection.EqualWithin(geom2d.PositiveY, tol))

	g := f.TranslateBy(geom2d.Vec(2, 2))
	require.True(t, g.Origin.EqualWithin(geom2d.Pt(2, 3), tol))
	require.Equal(t, f.XDirection, g.XDirection)
}
