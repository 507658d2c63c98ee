package elements

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/balidoc/bali/component"
)

// Millisecond spans of the calendar units. Months and years use the mean
// Gregorian lengths so that durations stay exact integers of milliseconds.
const (
	msPerSecond = int64(1000)
	msPerMinute = 60 * msPerSecond
	msPerHour   = 60 * msPerMinute
	msPerDay    = 24 * msPerHour
	msPerWeek   = 7 * msPerDay
	msPerMonth  = int64(2629746000)  // mean Gregorian month
	msPerYear   = int64(31556952000) // mean Gregorian year (365.2425 days)
)

// Duration is an immutable signed span of time, stored as an integer number
// of milliseconds. Duration is Scalable and Continuous.
//
// Literal form: a tilde followed by an ISO-8601 style period, e.g.
// ~P1Y2M3DT4H5M6.789S, ~P5W, or ~-P12H for a negative span.
type Duration struct {
	element
	milliseconds int64
}

// Compile-time capability checks.
var (
	_ component.Scalable   = Duration{}
	_ component.Continuous = Duration{}
)

// DurationFromMilliseconds constructs a Duration of the given span.
func DurationFromMilliseconds(milliseconds int64) Duration {
	return Duration{milliseconds: milliseconds}
}

// DurationOfZero is the empty span.
func DurationOfZero() Duration {
	return Duration{}
}

// WithParameters returns a copy of the duration carrying the given
// parameters.
func (d Duration) WithParameters(parameters *component.Parameters) Duration {
	d.parameters = parameters

	return d
}

// GetType returns component.TypeDuration.
func (d Duration) GetType() component.Type { return component.TypeDuration }

// AsReal returns the span in milliseconds.
func (d Duration) AsReal() float64 { return float64(d.milliseconds) }

// AsMilliseconds returns the exact span in milliseconds.
func (d Duration) AsMilliseconds() int64 { return d.milliseconds }

// AsSeconds returns the span expressed in seconds.
func (d Duration) AsSeconds() float64 { return float64(d.milliseconds) / float64(msPerSecond) }

// AsMinutes returns the span expressed in minutes.
func (d Duration) AsMinutes() float64 { return float64(d.milliseconds) / float64(msPerMinute) }

// AsHours returns the span expressed in hours.
func (d Duration) AsHours() float64 { return float64(d.milliseconds) / float64(msPerHour) }

// AsDays returns the span expressed in days.
func (d Duration) AsDays() float64 { return float64(d.milliseconds) / float64(msPerDay) }

// AsWeeks returns the span expressed in weeks.
func (d Duration) AsWeeks() float64 { return float64(d.milliseconds) / float64(msPerWeek) }

// AsMonths returns the span expressed in mean Gregorian months.
func (d Duration) AsMonths() float64 { return float64(d.milliseconds) / float64(msPerMonth) }

// AsYears returns the span expressed in mean Gregorian years.
func (d Duration) AsYears() float64 { return float64(d.milliseconds) / float64(msPerYear) }

// IsSignificant reports whether the span is non-zero.
func (d Duration) IsSignificant() bool { return d.milliseconds != 0 }

// AsString renders the canonical period literal by greedy decomposition
// into calendar units, largest first, e.g. ~P1Y2M3DT4H5M6.789S. The zero
// span renders as ~P0D.
func (d Duration) AsString() string {
	var sb strings.Builder
	sb.WriteByte('~')
	ms := d.milliseconds
	if ms < 0 {
		sb.WriteByte('-')
		ms = -ms
	}
	sb.WriteByte('P')
	if ms == 0 {
		sb.WriteString("0D")

		return sb.String()
	}

	date := [...]struct {
		span int64
		unit byte
	}{
		{msPerYear, 'Y'},
		{msPerMonth, 'M'},
		{msPerDay, 'D'},
	}
	for _, u := range date {
		if n := ms / u.span; n > 0 {
			sb.WriteString(strconv.FormatInt(n, 10))
			sb.WriteByte(u.unit)
			ms %= u.span
		}
	}
	if ms == 0 {
		return sb.String()
	}

	sb.WriteByte('T')
	clock := [...]struct {
		span int64
		unit byte
	}{
		{msPerHour, 'H'},
		{msPerMinute, 'M'},
	}
	for _, u := range clock {
		if n := ms / u.span; n > 0 {
			sb.WriteString(strconv.FormatInt(n, 10))
			sb.WriteByte(u.unit)
			ms %= u.span
		}
	}
	if ms > 0 {
		seconds := float64(ms) / float64(msPerSecond)
		sb.WriteString(strconv.FormatFloat(seconds, 'f', -1, 64))
		sb.WriteByte('S')
	}

	return sb.String()
}

// Inverse returns the span in the opposite direction.
func (d Duration) Inverse() component.Component {
	return Duration{milliseconds: -d.milliseconds}
}

// Sum returns the sum of the two spans.
// It panics if other is not a Duration.
func (d Duration) Sum(other component.Component) component.Component {
	return Duration{milliseconds: d.milliseconds + asDuration("Sum", other).milliseconds}
}

// Difference returns the difference of the two spans.
// It panics if other is not a Duration.
func (d Duration) Difference(other component.Component) component.Component {
	return Duration{milliseconds: d.milliseconds - asDuration("Difference", other).milliseconds}
}

// Scaled returns the span scaled by the given factor, rounded to the
// nearest millisecond. A non-finite factor is a programming error and
// panics.
func (d Duration) Scaled(factor float64) component.Component {
	if math.IsNaN(factor) || math.IsInf(factor, 0) {
		panic("elements: duration scaling factor is not finite")
	}

	return Duration{milliseconds: int64(math.Round(float64(d.milliseconds) * factor))}
}

func asDuration(op string, other component.Component) Duration {
	d, ok := other.(Duration)
	if !ok {
		panic(fmt.Sprintf("elements: Duration.%s requires a Duration, got %s", op, other.GetType()))
	}

	return d
}
