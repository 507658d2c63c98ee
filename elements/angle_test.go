package elements_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/balidoc/bali/elements"
)

// TestAngle_Normalization verifies that every radian value reduces into the
// half-open interval (-pi, pi].
func TestAngle_Normalization(t *testing.T) {
	cases := []struct {
		radians float64
		want    float64
	}{
		{0, 0},
		{math.Pi, math.Pi},
		{-math.Pi, math.Pi},
		{2 * math.Pi, 0},
		{3 * math.Pi, math.Pi},
		{-math.Pi / 2, -math.Pi / 2},
		{5 * math.Pi / 2, math.Pi / 2},
	}
	for _, c := range cases {
		angle, err := elements.AngleFromRadians(c.radians)
		require.NoError(t, err)
		assert.InDelta(t, c.want, angle.AsReal(), 1e-12, "radians %v", c.radians)
	}
}

// TestAngle_NegativeZero verifies that -0 normalizes to exact +0.
func TestAngle_NegativeZero(t *testing.T) {
	angle, err := elements.AngleFromRadians(math.Copysign(0, -1))
	require.NoError(t, err)
	assert.False(t, math.Signbit(angle.AsReal()), "-0 must normalize to +0")
}

// TestAngle_NotFinite verifies that NaN and infinite inputs are rejected.
func TestAngle_NotFinite(t *testing.T) {
	_, err := elements.AngleFromRadians(math.NaN())
	assert.ErrorIs(t, err, elements.ErrNotFinite)

	_, err = elements.AngleFromRadians(math.Inf(1))
	assert.ErrorIs(t, err, elements.ErrNotFinite)
}

// TestAngle_Degrees verifies the degree constructor and projection.
func TestAngle_Degrees(t *testing.T) {
	angle, err := elements.AngleFromDegrees(90)
	require.NoError(t, err)
	assert.InDelta(t, math.Pi/2, angle.AsReal(), 1e-12)
	assert.InDelta(t, 90, angle.InDegrees(), 1e-12)
}

// TestAngle_Scalable verifies the additive group operations with
// normalization of the results.
func TestAngle_Scalable(t *testing.T) {
	quarter, err := elements.AngleFromRadians(math.Pi / 2)
	require.NoError(t, err)

	sum := quarter.Sum(quarter).(elements.Angle)
	assert.InDelta(t, math.Pi, sum.AsReal(), 1e-12, "pi/2 + pi/2 = pi")

	wrapped := sum.Sum(sum).(elements.Angle)
	assert.InDelta(t, 0, wrapped.AsReal(), 1e-12, "pi + pi wraps to 0")

	inverse := quarter.Inverse().(elements.Angle)
	assert.InDelta(t, -math.Pi/2, inverse.AsReal(), 1e-12, "inverse points the other way")

	difference := quarter.Difference(quarter).(elements.Angle)
	assert.Zero(t, difference.AsReal())

	scaled := quarter.Scaled(3).(elements.Angle)
	assert.InDelta(t, -math.Pi/2, scaled.AsReal(), 1e-12, "3*(pi/2) normalizes to -pi/2")
	assert.Panics(t, func() { quarter.Scaled(math.NaN()) }, "non-finite factor is misuse")
}

// TestAngle_PoleLocking verifies that the trigonometric projections lock
// rotation-pole residues to exact values.
func TestAngle_PoleLocking(t *testing.T) {
	pi := elements.AngleOfPi()
	assert.Zero(t, pi.Sine(), "sin(pi) locks to exact 0")
	assert.Equal(t, -1.0, pi.Cosine())
	assert.Zero(t, pi.Tangent())

	half, err := elements.AngleFromRadians(math.Pi / 2)
	require.NoError(t, err)
	assert.Equal(t, 1.0, half.Sine())
	assert.Zero(t, half.Cosine(), "cos(pi/2) locks to exact 0")
	assert.True(t, math.IsInf(half.Tangent(), 0), "tan(pi/2) collapses to infinity")
}

// TestAngle_DerivedAngles verifies complement, supplement and conjugate.
func TestAngle_DerivedAngles(t *testing.T) {
	third, err := elements.AngleFromRadians(math.Pi / 3)
	require.NoError(t, err)

	assert.InDelta(t, math.Pi/6, third.Complement().AsReal(), 1e-12)
	assert.InDelta(t, 2*math.Pi/3, third.Supplement().AsReal(), 1e-12)
	assert.InDelta(t, -math.Pi/3, third.Conjugate().AsReal(), 1e-12)
	assert.InDelta(t, math.Pi, elements.AngleOfPi().Conjugate().AsReal(), 1e-12,
		"the conjugate of pi is pi itself")
}

// TestAngle_ArcConstructors verifies the inverse trigonometric
// constructors, including full quadrant coverage for ArcTangent.
func TestAngle_ArcConstructors(t *testing.T) {
	angle, err := elements.ArcSine(1)
	require.NoError(t, err)
	assert.InDelta(t, math.Pi/2, angle.AsReal(), 1e-12)

	angle, err = elements.ArcCosine(-1)
	require.NoError(t, err)
	assert.InDelta(t, math.Pi, angle.AsReal(), 1e-12)

	angle, err = elements.ArcTangent(-1, -1)
	require.NoError(t, err)
	assert.InDelta(t, -3*math.Pi/4, angle.AsReal(), 1e-12, "third quadrant")
}

// TestAngle_AsString verifies the canonical literal, including the named
// constant pi.
func TestAngle_AsString(t *testing.T) {
	assert.Equal(t, "~pi", elements.AngleOfPi().AsString())

	angle, err := elements.AngleFromRadians(0.54)
	require.NoError(t, err)
	assert.Equal(t, "~0.54", angle.AsString())
}
