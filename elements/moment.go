package elements

import (
	"time"

	"github.com/balidoc/bali/component"
)

// Moment is an immutable point in time, wrapping the platform clock
// primitive at millisecond precision in UTC. Moment is Continuous (its real
// projection is milliseconds since the Unix epoch).
//
// Literal forms: <2026-08-27>, <2026-08-27T14:30:25>,
// <2026-08-27T14:30:25.123>.
type Moment struct {
	element
	time time.Time
}

// Compile-time capability check.
var _ component.Continuous = Moment{}

// MomentFromTime constructs a Moment from a clock reading, truncated to
// millisecond precision in UTC.
func MomentFromTime(t time.Time) Moment {
	return Moment{time: t.UTC().Truncate(time.Millisecond)}
}

// MomentFromMilliseconds constructs a Moment from milliseconds since the
// Unix epoch.
func MomentFromMilliseconds(milliseconds int64) Moment {
	return Moment{time: time.UnixMilli(milliseconds).UTC()}
}

// MomentNow reads the current moment from the system clock.
func MomentNow() Moment {
	return MomentFromTime(time.Now())
}

// WithParameters returns a copy of the moment carrying the given parameters.
func (m Moment) WithParameters(parameters *component.Parameters) Moment {
	m.parameters = parameters

	return m
}

// GetType returns component.TypeMoment.
func (m Moment) GetType() component.Type { return component.TypeMoment }

// AsTime returns the wrapped clock reading (UTC, millisecond precision).
func (m Moment) AsTime() time.Time { return m.time }

// AsReal returns milliseconds since the Unix epoch.
func (m Moment) AsReal() float64 { return float64(m.time.UnixMilli()) }

// IsSignificant always reports true; every moment is meaningful.
func (m Moment) IsSignificant() bool { return true }

// AsString renders the canonical literal in angle brackets, omitting the
// time when it is exactly midnight and the milliseconds when they are zero.
func (m Moment) AsString() string {
	h, min, s := m.time.Clock()
	ms := m.time.Nanosecond() / int(time.Millisecond)
	switch {
	case h == 0 && min == 0 && s == 0 && ms == 0:
		return "<" + m.time.Format("2006-01-02") + ">"
	case ms == 0:
		return "<" + m.time.Format("2006-01-02T15:04:05") + ">"
	default:
		return "<" + m.time.Format("2006-01-02T15:04:05.000") + ">"
	}
}

// DurationSince returns the span from the other moment to this one; it is
// negative when this moment is earlier.
func (m Moment) DurationSince(other Moment) Duration {
	return DurationFromMilliseconds(m.time.UnixMilli() - other.time.UnixMilli())
}

// Earlier returns the moment one span before this one.
func (m Moment) Earlier(span Duration) Moment {
	return MomentFromMilliseconds(m.time.UnixMilli() - span.AsMilliseconds())
}

// Later returns the moment one span after this one.
func (m Moment) Later(span Duration) Moment {
	return MomentFromMilliseconds(m.time.UnixMilli() + span.AsMilliseconds())
}
