package elements

import (
	"fmt"
	"math"

	"github.com/balidoc/bali/component"
)

// Angle is an immutable angle element, stored in radians and normalized into
// the half-open interval (-pi, pi]. Angle is Scalable and Continuous.
//
// Literal forms: ~0.54, ~pi, ~-2.5E-1, or ~30($units: $degrees).
type Angle struct {
	element
	value float64
}

// Compile-time capability checks.
var (
	_ component.Scalable   = Angle{}
	_ component.Continuous = Angle{}
)

// AngleFromRadians constructs an Angle from a radian value, locking pole
// residues to exact zero and reducing the result into (-pi, pi].
// Returns ErrNotFinite for NaN or infinite input.
func AngleFromRadians(radians float64) (Angle, error) {
	if math.IsNaN(radians) || math.IsInf(radians, 0) {
		return Angle{}, fmt.Errorf("%w: angle %v", ErrNotFinite, radians)
	}

	return Angle{value: normalizeRadians(radians)}, nil
}

// AngleFromDegrees constructs an Angle from a degree value.
func AngleFromDegrees(degrees float64) (Angle, error) {
	return AngleFromRadians(degrees * math.Pi / 180)
}

// AngleOfPi returns the angle pi — the boundary value of the normalized
// interval.
func AngleOfPi() Angle {
	return Angle{value: math.Pi}
}

// WithParameters returns a copy of the angle carrying the given parameters.
func (a Angle) WithParameters(parameters *component.Parameters) Angle {
	a.parameters = parameters

	return a
}

// GetType returns component.TypeAngle.
func (a Angle) GetType() component.Type { return component.TypeAngle }

// AsReal returns the normalized radian value.
func (a Angle) AsReal() float64 { return a.value }

// InDegrees returns the angle expressed in degrees.
func (a Angle) InDegrees() float64 { return a.value * 180 / math.Pi }

// IsSignificant reports whether the angle is non-zero.
func (a Angle) IsSignificant() bool { return a.value != 0 }

// AsString renders the canonical radian literal, e.g. ~2.5 or ~pi.
func (a Angle) AsString() string { return "~" + formatReal(a.value) }

// Inverse returns the angle pointing in the opposite direction (a + pi).
func (a Angle) Inverse() component.Component {
	return Angle{value: normalizeRadians(a.value + math.Pi)}
}

// Sum returns the normalized sum of the two angles.
// It panics if other is not an Angle.
func (a Angle) Sum(other component.Component) component.Component {
	return Angle{value: normalizeRadians(a.value + asAngle("Sum", other).value)}
}

// Difference returns the normalized difference of the two angles.
// It panics if other is not an Angle.
func (a Angle) Difference(other component.Component) component.Component {
	return Angle{value: normalizeRadians(a.value - asAngle("Difference", other).value)}
}

// Scaled returns the angle scaled by the given factor, normalized.
// A non-finite factor is a programming error and panics.
func (a Angle) Scaled(factor float64) component.Component {
	if math.IsNaN(factor) || math.IsInf(factor, 0) {
		panic("elements: angle scaling factor is not finite")
	}

	return Angle{value: normalizeRadians(a.value * factor)}
}

// Complement returns pi/2 - a, normalized.
func (a Angle) Complement() Angle {
	return Angle{value: normalizeRadians(math.Pi/2 - a.value)}
}

// Supplement returns pi - a, normalized.
func (a Angle) Supplement() Angle {
	return Angle{value: normalizeRadians(math.Pi - a.value)}
}

// Conjugate returns -a, normalized (so the conjugate of pi is pi itself).
func (a Angle) Conjugate() Angle {
	return Angle{value: normalizeRadians(-a.value)}
}

// Sine returns sin(a) with pole residues locked to exact values.
func (a Angle) Sine() float64 { return lockMagnitude(math.Sin(a.value)) }

// Cosine returns cos(a) with pole residues locked to exact values.
func (a Angle) Cosine() float64 { return lockMagnitude(math.Cos(a.value)) }

// Tangent returns tan(a), locking pole residues to exact zero and collapsing
// the asymptotes at ±pi/2 to infinity.
func (a Angle) Tangent() float64 { return lockMagnitude(math.Tan(a.value)) }

// ArcSine constructs the angle whose sine is the given ratio.
func ArcSine(ratio float64) (Angle, error) {
	return AngleFromRadians(math.Asin(ratio))
}

// ArcCosine constructs the angle whose cosine is the given ratio.
func ArcCosine(ratio float64) (Angle, error) {
	return AngleFromRadians(math.Acos(ratio))
}

// ArcTangent constructs the angle of the vector (x, y), covering all four
// quadrants.
func ArcTangent(x, y float64) (Angle, error) {
	return AngleFromRadians(math.Atan2(y, x))
}

func asAngle(op string, other component.Component) Angle {
	a, ok := other.(Angle)
	if !ok {
		panic(fmt.Sprintf("elements: Angle.%s requires an Angle, got %s", op, other.GetType()))
	}

	return a
}
