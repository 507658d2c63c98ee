package elements

import (
	"fmt"
	"math"

	"github.com/balidoc/bali/component"
)

// Percent is an immutable percentage element. The stored value is the
// percentage itself (Percent 25 renders as 25%); its real projection is the
// fraction it denotes (0.25). Percent is Scalable and Continuous.
type Percent struct {
	element
	value float64
}

// Compile-time capability checks.
var (
	_ component.Scalable   = Percent{}
	_ component.Continuous = Percent{}
)

// PercentFromReal constructs a Percent from a percentage value. Values
// outside [0, 100] are legal (discounts and growth rates overflow the unit
// interval); only NaN is rejected.
func PercentFromReal(value float64) (Percent, error) {
	if math.IsNaN(value) {
		return Percent{}, fmt.Errorf("%w: percent %v", ErrNotFinite, value)
	}

	return Percent{value: lockMagnitude(value)}, nil
}

// WithParameters returns a copy of the percent carrying the given
// parameters.
func (p Percent) WithParameters(parameters *component.Parameters) Percent {
	p.parameters = parameters

	return p
}

// GetType returns component.TypePercent.
func (p Percent) GetType() component.Type { return component.TypePercent }

// AsReal returns the fraction the percentage denotes (25% is 0.25).
func (p Percent) AsReal() float64 { return p.value / 100 }

// AsPercentage returns the percentage value itself.
func (p Percent) AsPercentage() float64 { return p.value }

// IsSignificant reports whether the percentage is non-zero.
func (p Percent) IsSignificant() bool { return p.value != 0 }

// AsString renders the canonical literal, e.g. 25% or -3.5%.
func (p Percent) AsString() string { return formatReal(p.value) + "%" }

// Inverse returns the negated percentage.
func (p Percent) Inverse() component.Component {
	return Percent{value: -p.value}
}

// Sum returns the sum of the two percentages.
// It panics if other is not a Percent.
func (p Percent) Sum(other component.Component) component.Component {
	return Percent{value: p.value + asPercent("Sum", other).value}
}

// Difference returns the difference of the two percentages.
// It panics if other is not a Percent.
func (p Percent) Difference(other component.Component) component.Component {
	return Percent{value: p.value - asPercent("Difference", other).value}
}

// Scaled returns the percentage scaled by the given factor.
func (p Percent) Scaled(factor float64) component.Component {
	return Percent{value: lockMagnitude(p.value * factor)}
}

func asPercent(op string, other component.Component) Percent {
	p, ok := other.(Percent)
	if !ok {
		panic(fmt.Sprintf("elements: Percent.%s requires a Percent, got %s", op, other.GetType()))
	}

	return p
}
