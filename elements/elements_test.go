package elements_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/balidoc/bali/elements"
)

// TestPercent_Projection verifies that the stored value is the percentage
// while the real projection is the fraction it denotes.
func TestPercent_Projection(t *testing.T) {
	p, err := elements.PercentFromReal(25)
	require.NoError(t, err)

	assert.Equal(t, 25.0, p.AsPercentage())
	assert.Equal(t, 0.25, p.AsReal())
	assert.Equal(t, "25%", p.AsString())
}

// TestPercent_OutsideUnitInterval verifies that discounts and growth rates
// beyond [0, 100] are legal.
func TestPercent_OutsideUnitInterval(t *testing.T) {
	p, err := elements.PercentFromReal(-3.5)
	require.NoError(t, err)
	assert.Equal(t, "-3.5%", p.AsString())

	p, err = elements.PercentFromReal(150)
	require.NoError(t, err)
	assert.Equal(t, 1.5, p.AsReal())
}

// TestPercent_Scalable verifies the additive group operations.
func TestPercent_Scalable(t *testing.T) {
	p, err := elements.PercentFromReal(30)
	require.NoError(t, err)
	q, err := elements.PercentFromReal(20)
	require.NoError(t, err)

	assert.Equal(t, 50.0, p.Sum(q).(elements.Percent).AsPercentage())
	assert.Equal(t, 10.0, p.Difference(q).(elements.Percent).AsPercentage())
	assert.Equal(t, -30.0, p.Inverse().(elements.Percent).AsPercentage())
	assert.Equal(t, 60.0, p.Scaled(2).(elements.Percent).AsPercentage())
}

// TestDuration_Decomposition verifies the greedy largest-unit-first literal
// rendering.
func TestDuration_Decomposition(t *testing.T) {
	assert.Equal(t, "~P0D", elements.DurationOfZero().AsString())
	assert.Equal(t, "~PT12H", elements.DurationFromMilliseconds(12*3600*1000).AsString())
	assert.Equal(t, "~-PT1M", elements.DurationFromMilliseconds(-60000).AsString())
	assert.Equal(t, "~PT0.5S", elements.DurationFromMilliseconds(500).AsString())

	year := int64(31556952000)
	month := int64(2629746000)
	day := int64(86400000)
	composite := elements.DurationFromMilliseconds(year + 2*month + 3*day + 4*3600000 + 5*60000 + 6789)
	assert.Equal(t, "~P1Y2M3DT4H5M6.789S", composite.AsString())
}

// TestDuration_Conversions verifies the unit projections.
func TestDuration_Conversions(t *testing.T) {
	d := elements.DurationFromMilliseconds(90 * 60 * 1000)
	assert.Equal(t, 1.5, d.AsHours())
	assert.Equal(t, 90.0, d.AsMinutes())
	assert.Equal(t, 5400.0, d.AsSeconds())
}

// TestDuration_Scalable verifies arithmetic on spans, including rounding
// under scaling.
func TestDuration_Scalable(t *testing.T) {
	hour := elements.DurationFromMilliseconds(3600000)
	two := hour.Sum(hour).(elements.Duration)
	assert.Equal(t, int64(7200000), two.AsMilliseconds())

	zero := hour.Difference(hour).(elements.Duration)
	assert.False(t, zero.IsSignificant())

	half := hour.Scaled(0.5).(elements.Duration)
	assert.Equal(t, int64(1800000), half.AsMilliseconds())

	back := hour.Inverse().(elements.Duration)
	assert.Equal(t, int64(-3600000), back.AsMilliseconds())
}

// TestMoment_Precision verifies millisecond truncation in UTC.
func TestMoment_Precision(t *testing.T) {
	instant := time.Date(2026, 8, 27, 14, 30, 25, 123456789, time.UTC)
	m := elements.MomentFromTime(instant)

	assert.Equal(t, "<2026-08-27T14:30:25.123>", m.AsString())
	assert.Equal(t, instant.Truncate(time.Millisecond), m.AsTime())
}

// TestMoment_AsString verifies the shortened literal forms.
func TestMoment_AsString(t *testing.T) {
	midnight := elements.MomentFromTime(time.Date(2026, 8, 27, 0, 0, 0, 0, time.UTC))
	assert.Equal(t, "<2026-08-27>", midnight.AsString())

	second := elements.MomentFromTime(time.Date(2026, 8, 27, 14, 30, 25, 0, time.UTC))
	assert.Equal(t, "<2026-08-27T14:30:25>", second.AsString())
}

// TestMoment_Arithmetic verifies span arithmetic between moments.
func TestMoment_Arithmetic(t *testing.T) {
	start := elements.MomentFromMilliseconds(1000)
	finish := elements.MomentFromMilliseconds(61000)

	span := finish.DurationSince(start)
	assert.Equal(t, int64(60000), span.AsMilliseconds())
	assert.Equal(t, int64(-60000), start.DurationSince(finish).AsMilliseconds())

	assert.Equal(t, finish, start.Later(span))
	assert.Equal(t, start, finish.Earlier(span))
}

// TestName_Construction verifies part validation.
func TestName_Construction(t *testing.T) {
	name, err := elements.NameFromParts([]string{"bali", "collections", "Set"})
	require.NoError(t, err)
	assert.Equal(t, "/bali/collections/Set", name.AsString())

	versioned, err := elements.NameFromParts([]string{"bali", "collections", "Set", "v1"})
	require.NoError(t, err)
	assert.Equal(t, "/bali/collections/Set/v1", versioned.AsString())

	_, err = elements.NameFromParts(nil)
	assert.ErrorIs(t, err, elements.ErrEmptyName)

	_, err = elements.NameFromParts([]string{"bali", ""})
	assert.ErrorIs(t, err, elements.ErrEmptyName)

	_, err = elements.NameFromParts([]string{"9lives"})
	assert.ErrorIs(t, err, elements.ErrEmptyName, "parts must start with a letter")
}

// TestName_Concatenation verifies chaining of hierarchical names.
func TestName_Concatenation(t *testing.T) {
	left, err := elements.NameFromParts([]string{"bali"})
	require.NoError(t, err)
	right, err := elements.NameFromParts([]string{"elements", "Angle"})
	require.NoError(t, err)

	joined := left.Concatenation(right)
	assert.Equal(t, "/bali/elements/Angle", joined.AsString())
	assert.Equal(t, "/bali", left.AsString(), "operands are untouched")
}

// TestTag_RoundTrip verifies the base-32 encoding round-trip and random
// construction.
func TestTag_RoundTrip(t *testing.T) {
	tag, err := elements.TagFromBytes([]byte{0xDE, 0xAD, 0xBE, 0xEF})
	require.NoError(t, err)

	encoded := tag.AsString()
	assert.Equal(t, byte('#'), encoded[0])

	back, err := elements.TagFromString(encoded[1:])
	require.NoError(t, err)
	assert.Equal(t, tag.GetBytes(), back.GetBytes())

	random, err := elements.TagOfSize(20)
	require.NoError(t, err)
	assert.Len(t, random.GetBytes(), 20)

	_, err = elements.TagOfSize(0)
	assert.ErrorIs(t, err, elements.ErrInvalidSize)

	_, err = elements.TagFromString("not base32 at all!")
	assert.ErrorIs(t, err, elements.ErrInvalidTag)
}

// TestSymbol_Validation verifies the identifier invariant.
func TestSymbol_Validation(t *testing.T) {
	s, err := elements.SymbolFromString("units")
	require.NoError(t, err)
	assert.Equal(t, "$units", s.AsString())
	assert.Equal(t, "units", s.GetIdentifier())

	_, err = elements.SymbolFromString("")
	assert.ErrorIs(t, err, elements.ErrInvalidSymbol)

	_, err = elements.SymbolFromString("3rd")
	assert.ErrorIs(t, err, elements.ErrInvalidSymbol)
}

// TestText_Escapes verifies the quoted literal with backslash escapes.
func TestText_Escapes(t *testing.T) {
	text := elements.TextFromString("line1\n\"quoted\"\tend")
	assert.Equal(t, `"line1\n\"quoted\"\tend"`, text.AsString())
	assert.Equal(t, "line1\n\"quoted\"\tend", text.GetValue())
}

// TestText_Concatenation verifies chaining and significance.
func TestText_Concatenation(t *testing.T) {
	hello := elements.TextFromString("Hello, ")
	world := elements.TextFromString("World!")

	joined := hello.Concatenation(world).(elements.Text)
	assert.Equal(t, "Hello, World!", joined.GetValue())

	assert.False(t, elements.TextFromString("").IsSignificant())
	assert.True(t, hello.IsSignificant())
}

// TestBinary_RoundTrip verifies base-32 round-tripping and chaining of byte
// strings.
func TestBinary_RoundTrip(t *testing.T) {
	b := elements.BinaryFromBytes([]byte{1, 2, 3})
	literal := b.AsString()
	assert.Equal(t, byte('\''), literal[0])

	back, err := elements.BinaryFromString(literal[1 : len(literal)-1])
	require.NoError(t, err)
	assert.Equal(t, []byte{1, 2, 3}, back.GetBytes())

	tail := elements.BinaryFromBytes([]byte{4})
	joined := b.Concatenation(tail).(elements.Binary)
	assert.Equal(t, []byte{1, 2, 3, 4}, joined.GetBytes())

	assert.False(t, elements.BinaryFromBytes(nil).IsSignificant())
}

// TestVersion_Precedence verifies semantic ordering: v1.10.0 follows v1.9.0
// even though it sorts earlier lexically.
func TestVersion_Precedence(t *testing.T) {
	older, err := elements.VersionFromString("1.9.0")
	require.NoError(t, err)
	newer, err := elements.VersionFromString("1.10.0")
	require.NoError(t, err)

	assert.True(t, older.Precedes(newer))
	assert.False(t, newer.Precedes(older))
}

// TestVersion_NextVersion verifies level-wise increments.
func TestVersion_NextVersion(t *testing.T) {
	v, err := elements.VersionFromString("1.2.3")
	require.NoError(t, err)

	assert.Equal(t, "v2.0.0", v.NextVersion(elements.LevelMajor).AsString())
	assert.Equal(t, "v1.3.0", v.NextVersion(elements.LevelMinor).AsString())
	assert.Equal(t, "v1.2.4", v.NextVersion(elements.LevelPatch).AsString())
	assert.Panics(t, func() { v.NextVersion(7) }, "unknown level is misuse")

	assert.Equal(t, "v1.0.0", elements.FirstVersion().AsString())
}

// TestVersion_Validation verifies that malformed version text is rejected
// and that partial versions complete with zeros.
func TestVersion_Validation(t *testing.T) {
	_, err := elements.VersionFromString("not.a.version")
	assert.ErrorIs(t, err, elements.ErrInvalidVersion)

	v, err := elements.VersionFromString("1.2")
	require.NoError(t, err)
	assert.Equal(t, "v1.2.0", v.AsString())
}

// TestReference_Validation verifies that only absolute URIs are accepted.
func TestReference_Validation(t *testing.T) {
	r, err := elements.ReferenceFromString("https://example.com/documents/42")
	require.NoError(t, err)
	assert.Equal(t, "<https://example.com/documents/42>", r.AsString())
	assert.Equal(t, "https", r.GetScheme())

	_, err = elements.ReferenceFromString("/just/a/path")
	assert.ErrorIs(t, err, elements.ErrInvalidReference)
}

// TestRandomIndex_Bounds verifies that random ordinal indices stay within
// [1..size] and that a non-positive size is misuse.
func TestRandomIndex_Bounds(t *testing.T) {
	for i := 0; i < 1000; i++ {
		index := elements.RandomIndex(7)
		require.GreaterOrEqual(t, index, 1)
		require.LessOrEqual(t, index, 7)
	}
	assert.Equal(t, 1, elements.RandomIndex(1), "a single slot has a single index")
	assert.Panics(t, func() { elements.RandomIndex(0) })
}

// TestRandomProbability_Range verifies the [0, 1) range of the uniform
// source.
func TestRandomProbability_Range(t *testing.T) {
	for i := 0; i < 1000; i++ {
		p := elements.RandomProbability()
		require.GreaterOrEqual(t, p.AsReal(), 0.0)
		require.Less(t, p.AsReal(), 1.0)
	}
}

// TestCoinToss_Extremes verifies that the weighted toss honors the certain
// and impossible endpoints.
func TestCoinToss_Extremes(t *testing.T) {
	for i := 0; i < 100; i++ {
		assert.True(t, elements.CoinToss(elements.True))
		assert.False(t, elements.CoinToss(elements.False))
	}
}
