package elements_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/balidoc/bali/elements"
)

// TestNumber_Normalization verifies that NaN and infinite coordinates
// collapse to the canonical absorbing numbers.
func TestNumber_Normalization(t *testing.T) {
	assert.True(t, elements.NumberFromReal(math.NaN()).IsUndefined())
	assert.True(t, elements.NumberFromReal(math.Inf(1)).IsInfinite())
	assert.True(t, elements.NumberFromReal(math.Inf(-1)).IsInfinite(),
		"a single infinity absorbs both signs")
	assert.True(t, elements.NumberFromRectangular(1, math.Inf(1)).IsInfinite())
	assert.True(t, elements.NumberFromRectangular(math.NaN(), 2).IsUndefined())
}

// TestNumber_PolarRoundTrip verifies that polar construction locks the
// trigonometric pole residues, so axis values reproduce exactly.
func TestNumber_PolarRoundTrip(t *testing.T) {
	up, err := elements.AngleFromRadians(math.Pi / 2)
	require.NoError(t, err)

	n := elements.NumberFromPolar(2, up)
	assert.Zero(t, n.GetReal(), "the real part of 2e^(i*pi/2) is exactly 0")
	assert.Equal(t, 2.0, n.GetImaginary())

	back := elements.NumberFromPolar(3, elements.AngleOfPi())
	assert.Equal(t, -3.0, back.GetReal())
	assert.Zero(t, back.GetImaginary(), "the imaginary part of 3e^(i*pi) is exactly 0")
}

// TestNumber_SphereArithmetic verifies the absorbing-state rules of the
// arithmetic: infinity absorbs sums and products, and the indeterminate
// forms yield Undefined.
func TestNumber_SphereArithmetic(t *testing.T) {
	two := elements.NumberFromReal(2)

	assert.True(t, elements.Infinity.Sum(two).(elements.Number).IsInfinite())
	assert.True(t, elements.Undefined.Sum(two).(elements.Number).IsUndefined())
	assert.True(t, elements.Infinity.Product(elements.Zero).(elements.Number).IsUndefined(),
		"infinity times zero is indeterminate")
	assert.True(t, elements.Infinity.Product(two).(elements.Number).IsInfinite())
	assert.True(t, elements.Zero.Quotient(elements.Zero).(elements.Number).IsUndefined(),
		"0/0 is indeterminate")
	assert.True(t, elements.Infinity.Quotient(elements.Infinity).(elements.Number).IsUndefined(),
		"inf/inf is indeterminate")
	assert.True(t, two.Quotient(elements.Zero).(elements.Number).IsInfinite(),
		"division by zero reaches the pole")
	assert.True(t, two.Quotient(elements.Infinity).(elements.Number).IsZero())
}

// TestNumber_Reciprocal verifies that reciprocation exchanges the zero and
// infinity poles.
func TestNumber_Reciprocal(t *testing.T) {
	assert.True(t, elements.Zero.Reciprocal().(elements.Number).IsInfinite())
	assert.True(t, elements.Infinity.Reciprocal().(elements.Number).IsZero())

	half := elements.NumberFromReal(2).Reciprocal().(elements.Number)
	assert.Equal(t, 0.5, half.GetReal())
}

// TestNumber_ComplexArithmetic verifies ordinary finite complex operations.
func TestNumber_ComplexArithmetic(t *testing.T) {
	n := elements.NumberFromRectangular(3, 4)

	assert.Equal(t, 5.0, n.GetMagnitude())
	conjugate := n.Conjugate().(elements.Number)
	assert.Equal(t, 3.0, conjugate.GetReal())
	assert.Equal(t, -4.0, conjugate.GetImaginary())

	product := n.Product(conjugate).(elements.Number)
	assert.Equal(t, 25.0, product.GetReal(), "z times its conjugate is |z|^2")
	assert.Zero(t, product.GetImaginary())
}

// TestNumber_Factorial verifies the gamma extension for non-negative reals
// and Undefined everywhere else.
func TestNumber_Factorial(t *testing.T) {
	five := elements.NumberFromReal(5).Factorial().(elements.Number)
	assert.InDelta(t, 120, five.GetReal(), 1e-9)

	zero := elements.Zero.Factorial().(elements.Number)
	assert.Equal(t, 1.0, zero.GetReal())

	assert.True(t, elements.NumberFromReal(-2).Factorial().(elements.Number).IsUndefined())
	assert.True(t, elements.Imaginary.Factorial().(elements.Number).IsUndefined())
}

// TestNumber_ExponentialAndLogarithm verifies powers and the natural
// logarithm, including the pole cases.
func TestNumber_ExponentialAndLogarithm(t *testing.T) {
	two := elements.NumberFromReal(2)
	eight := two.Exponential(elements.NumberFromReal(3)).(elements.Number)
	assert.InDelta(t, 8, eight.GetReal(), 1e-9)

	one := two.Exponential(elements.Zero).(elements.Number)
	assert.Equal(t, 1.0, one.GetReal(), "anything to the zeroth power is one")

	assert.True(t, elements.Zero.Logarithm().(elements.Number).IsInfinite())
	assert.True(t, elements.Infinity.Logarithm().(elements.Number).IsInfinite())

	lnE := elements.NumberFromReal(math.E).Logarithm().(elements.Number)
	assert.InDelta(t, 1, lnE.GetReal(), 1e-12)
}

// TestNumber_AsReal verifies the real-line projection: the real part of
// real numbers, the magnitude otherwise.
func TestNumber_AsReal(t *testing.T) {
	assert.Equal(t, -2.5, elements.NumberFromReal(-2.5).AsReal())
	assert.Equal(t, 5.0, elements.NumberFromRectangular(3, 4).AsReal())
}

// TestNumber_AsString verifies the canonical literal forms.
func TestNumber_AsString(t *testing.T) {
	assert.Equal(t, "42", elements.NumberFromReal(42).AsString())
	assert.Equal(t, "undefined", elements.Undefined.AsString())
	assert.Equal(t, "infinity", elements.Infinity.AsString())
	assert.Equal(t, "3i", elements.NumberFromRectangular(0, 3).AsString())
	assert.Equal(t, "(3, 4i)", elements.NumberFromRectangular(3, 4).AsString())
	assert.Equal(t, "e", elements.NumberFromReal(math.E).AsString(),
		"the named constants render by name")
}

// TestNumber_TypeMismatch verifies that mixing element types in arithmetic
// is a programming error.
func TestNumber_TypeMismatch(t *testing.T) {
	assert.Panics(t, func() {
		elements.One.Sum(elements.TextFromString("nope"))
	})
}
