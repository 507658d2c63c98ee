package elements

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/balidoc/bali/component"
)

// Probability is an immutable real value constrained to the closed interval
// [0, 1]. The endpoints are the boolean constants: False is 0 and True is 1.
// Probability is Continuous and carries the fuzzy-logic operations Not, And,
// San, Or and Xor.
//
// Probability is deliberately not Scalable: sums and scalings would have to
// clamp into [0, 1], which breaks the additive-group laws the Scalable
// capability promises.
//
// Literal forms: true, false, or a fraction with the leading zero stripped,
// e.g. .75 for 0.75.
type Probability struct {
	element
	value float64
}

// Compile-time capability check.
var _ component.Continuous = Probability{}

// The boolean probabilities.
var (
	True  = Probability{value: 1}
	False = Probability{value: 0}
)

// ProbabilityFromReal constructs a Probability. A value outside [0, 1]
// (or NaN) violates the type invariant and returns ErrProbabilityRange.
func ProbabilityFromReal(value float64) (Probability, error) {
	if math.IsNaN(value) || value < 0 || value > 1 {
		return Probability{}, fmt.Errorf("%w: %v", ErrProbabilityRange, value)
	}

	return Probability{value: value}, nil
}

// ProbabilityFromBoolean constructs the probability 1 for true and 0 for
// false.
func ProbabilityFromBoolean(value bool) Probability {
	if value {
		return True
	}

	return False
}

// WithParameters returns a copy of the probability carrying the given
// parameters.
func (p Probability) WithParameters(parameters *component.Parameters) Probability {
	p.parameters = parameters

	return p
}

// GetType returns component.TypeProbability.
func (p Probability) GetType() component.Type { return component.TypeProbability }

// AsReal returns the probability value in [0, 1].
func (p Probability) AsReal() float64 { return p.value }

// AsBoolean reports whether the probability is more likely than not.
func (p Probability) AsBoolean() bool { return p.value > 0.5 }

// IsSignificant reports whether the probability is non-zero.
func (p Probability) IsSignificant() bool { return p.value != 0 }

// AsString renders true, false, or the fraction with its leading zero
// stripped, e.g. .75.
func (p Probability) AsString() string {
	switch p.value {
	case 0:
		return "false"
	case 1:
		return "true"
	default:
		return strings.TrimPrefix(strconv.FormatFloat(p.value, 'f', -1, 64), "0")
	}
}

// Not returns the complementary probability 1 - p.
func (p Probability) Not() Probability {
	return Probability{value: 1 - p.value}
}

// And returns the probability that both independent events occur.
// It panics if other is not a Probability.
func (p Probability) And(other component.Component) Probability {
	return Probability{value: p.value * asProbability("And", other).value}
}

// San returns the probability that p occurs without other ("sans").
// It panics if other is not a Probability.
func (p Probability) San(other component.Component) Probability {
	return Probability{value: p.value * (1 - asProbability("San", other).value)}
}

// Or returns the probability that either independent event occurs.
// It panics if other is not a Probability.
func (p Probability) Or(other component.Component) Probability {
	o := asProbability("Or", other)

	return Probability{value: p.value + o.value - p.value*o.value}
}

// Xor returns the probability that exactly one of the independent events
// occurs.
// It panics if other is not a Probability.
func (p Probability) Xor(other component.Component) Probability {
	o := asProbability("Xor", other)

	return Probability{value: p.value*(1-o.value) + o.value*(1-p.value)}
}

func asProbability(op string, other component.Component) Probability {
	p, ok := other.(Probability)
	if !ok {
		panic(fmt.Sprintf("elements: Probability.%s requires a Probability, got %s", op, other.GetType()))
	}

	return p
}
