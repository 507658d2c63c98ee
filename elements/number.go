package elements

import (
	"fmt"
	"math"
	"math/cmplx"

	"github.com/balidoc/bali/component"
)

// Number is an immutable complex number element on the Riemann sphere: a
// single Infinity absorbs every infinite magnitude, and Undefined (NaN)
// absorbs every meaningless result. Number is Numerical and Continuous.
//
// Literal forms: 42, -2.5E3, pi, 3i, (3, 4i), (5 e^~1.2i), undefined,
// infinity.
type Number struct {
	element
	value complex128
}

// Compile-time capability checks.
var (
	_ component.Numerical  = Number{}
	_ component.Continuous = Number{}
)

// Canonical numbers. Equality with these is by value, so they are a
// convenience, not a correctness requirement.
var (
	Zero      = Number{value: complex(0, 0)}
	One       = Number{value: complex(1, 0)}
	Imaginary = Number{value: complex(0, 1)}
	Undefined = Number{value: complex(math.NaN(), math.NaN())}
	Infinity  = Number{value: complex(math.Inf(1), 0)}
)

// NumberFromReal constructs a real number.
func NumberFromReal(value float64) Number {
	return normalized(complex(value, 0))
}

// NumberFromRectangular constructs a number from rectangular coordinates.
func NumberFromRectangular(real, imaginary float64) Number {
	return normalized(complex(real, imaginary))
}

// NumberFromPolar constructs a number from a magnitude and a phase angle,
// locking the pole residues of the trigonometric projection so that polar
// round-trips reproduce exact axis values.
func NumberFromPolar(magnitude float64, phase Angle) Number {
	if math.IsNaN(magnitude) {
		return Undefined
	}
	if math.IsInf(magnitude, 0) {
		return Infinity
	}

	return normalized(complex(magnitude*phase.Cosine(), magnitude*phase.Sine()))
}

// normalized collapses the three absorbing states to their canonical forms.
func normalized(value complex128) Number {
	switch {
	case math.IsNaN(real(value)) || math.IsNaN(imag(value)):
		return Undefined
	case math.IsInf(real(value), 0) || math.IsInf(imag(value), 0):
		return Infinity
	default:
		return Number{value: value}
	}
}

// WithParameters returns a copy of the number carrying the given parameters.
func (n Number) WithParameters(parameters *component.Parameters) Number {
	n.parameters = parameters

	return n
}

// GetType returns component.TypeNumber.
func (n Number) GetType() component.Type { return component.TypeNumber }

// IsUndefined reports whether the magnitude is NaN.
func (n Number) IsUndefined() bool { return math.IsNaN(cmplx.Abs(n.value)) }

// IsInfinite reports whether the magnitude is infinite.
func (n Number) IsInfinite() bool { return math.IsInf(cmplx.Abs(n.value), 0) }

// IsZero reports whether the magnitude is exactly zero.
func (n Number) IsZero() bool { return n.value == 0 }

// GetReal returns the real part.
func (n Number) GetReal() float64 { return real(n.value) }

// GetImaginary returns the imaginary part.
func (n Number) GetImaginary() float64 { return imag(n.value) }

// GetMagnitude returns the modulus of the number.
func (n Number) GetMagnitude() float64 { return lockMagnitude(cmplx.Abs(n.value)) }

// GetPhase returns the phase angle of the number.
func (n Number) GetPhase() Angle {
	phase, err := AngleFromRadians(cmplx.Phase(n.value))
	if err != nil {
		return Angle{}
	}

	return phase
}

// AsReal projects the number onto the real line: the real part for real
// numbers, otherwise the magnitude.
func (n Number) AsReal() float64 {
	if imag(n.value) == 0 {
		return real(n.value)
	}

	return n.GetMagnitude()
}

// IsSignificant reports whether the number is neither zero nor undefined.
func (n Number) IsSignificant() bool { return !n.IsZero() && !n.IsUndefined() }

// AsString renders the canonical literal: undefined, infinity, a real
// literal, an imaginary literal with the i suffix, or the rectangular form
// (real, imaginaryi).
func (n Number) AsString() string {
	switch {
	case n.IsUndefined():
		return "undefined"
	case n.IsInfinite():
		return "infinity"
	case imag(n.value) == 0:
		return formatReal(real(n.value))
	case real(n.value) == 0:
		return formatReal(imag(n.value)) + "i"
	default:
		return "(" + formatReal(real(n.value)) + ", " + formatReal(imag(n.value)) + "i)"
	}
}

// Inverse returns the additive inverse -n.
func (n Number) Inverse() component.Component {
	switch {
	case n.IsUndefined():
		return Undefined
	case n.IsInfinite():
		return Infinity
	default:
		return normalized(-n.value)
	}
}

// Sum returns n + other. Infinity absorbs under addition.
// It panics if other is not a Number.
func (n Number) Sum(other component.Component) component.Component {
	o := asNumber("Sum", other)
	switch {
	case n.IsUndefined() || o.IsUndefined():
		return Undefined
	case n.IsInfinite() || o.IsInfinite():
		return Infinity
	default:
		return normalized(n.value + o.value)
	}
}

// Difference returns n - other.
// It panics if other is not a Number.
func (n Number) Difference(other component.Component) component.Component {
	return n.Sum(asNumber("Difference", other).Inverse())
}

// Scaled returns the number scaled by a real factor.
func (n Number) Scaled(factor float64) component.Component {
	return n.Product(NumberFromReal(factor))
}

// Reciprocal returns 1/n on the Riemann sphere: the reciprocal of zero is
// infinity and the reciprocal of infinity is zero.
func (n Number) Reciprocal() component.Component {
	switch {
	case n.IsUndefined():
		return Undefined
	case n.IsInfinite():
		return Zero
	case n.IsZero():
		return Infinity
	default:
		return normalized(1 / n.value)
	}
}

// Conjugate returns the complex conjugate.
func (n Number) Conjugate() component.Component {
	switch {
	case n.IsUndefined():
		return Undefined
	case n.IsInfinite():
		return Infinity
	default:
		return normalized(cmplx.Conj(n.value))
	}
}

// Factorial returns gamma(n + 1) for non-negative real numbers; any other
// argument has no factorial and yields Undefined.
func (n Number) Factorial() component.Component {
	switch {
	case n.IsUndefined() || imag(n.value) != 0 || real(n.value) < 0:
		return Undefined
	case n.IsInfinite():
		return Infinity
	default:
		return normalized(complex(math.Gamma(real(n.value)+1), 0))
	}
}

// Product returns n * other. Infinity times zero is Undefined; otherwise
// infinity and zero each absorb.
// It panics if other is not a Number.
func (n Number) Product(other component.Component) component.Component {
	o := asNumber("Product", other)
	switch {
	case n.IsUndefined() || o.IsUndefined():
		return Undefined
	case (n.IsInfinite() && o.IsZero()) || (n.IsZero() && o.IsInfinite()):
		return Undefined
	case n.IsInfinite() || o.IsInfinite():
		return Infinity
	case n.IsZero() || o.IsZero():
		return Zero
	default:
		return normalized(n.value * o.value)
	}
}

// Quotient returns n / other: division by zero yields infinity, division by
// infinity yields zero, and the indeterminate forms 0/0 and inf/inf yield
// Undefined.
// It panics if other is not a Number.
func (n Number) Quotient(other component.Component) component.Component {
	return n.Product(asNumber("Quotient", other).Reciprocal())
}

// Remainder returns the remainder of the real projections of n and other.
// It panics if other is not a Number.
func (n Number) Remainder(other component.Component) component.Component {
	o := asNumber("Remainder", other)
	switch {
	case n.IsUndefined() || o.IsUndefined() || o.IsZero():
		return Undefined
	case n.IsInfinite():
		return Undefined
	case o.IsInfinite():
		return normalized(complex(n.AsReal(), 0))
	default:
		return normalized(complex(math.Mod(n.AsReal(), o.AsReal()), 0))
	}
}

// Exponential returns n raised to the given power.
// It panics if other is not a Number.
func (n Number) Exponential(other component.Component) component.Component {
	power := asNumber("Exponential", other)
	switch {
	case n.IsUndefined() || power.IsUndefined():
		return Undefined
	case power.IsZero():
		return One
	case n.IsZero():
		return Zero
	case n.IsInfinite() || power.IsInfinite():
		return Infinity
	default:
		return normalized(cmplx.Pow(n.value, power.value))
	}
}

// Logarithm returns the natural logarithm of n: the logarithm of zero and
// of infinity both have infinite magnitude.
func (n Number) Logarithm() component.Component {
	switch {
	case n.IsUndefined():
		return Undefined
	case n.IsZero() || n.IsInfinite():
		return Infinity
	default:
		return normalized(cmplx.Log(n.value))
	}
}

func asNumber(op string, other component.Component) Number {
	o, ok := other.(Number)
	if !ok {
		panic(fmt.Sprintf("elements: Number.%s requires a Number, got %s", op, other.GetType()))
	}

	return o
}
