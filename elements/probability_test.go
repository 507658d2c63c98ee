package elements_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/balidoc/bali/elements"
)

// TestProbability_Range verifies the [0, 1] invariant.
func TestProbability_Range(t *testing.T) {
	_, err := elements.ProbabilityFromReal(-0.1)
	assert.ErrorIs(t, err, elements.ErrProbabilityRange)

	_, err = elements.ProbabilityFromReal(1.1)
	assert.ErrorIs(t, err, elements.ErrProbabilityRange)

	_, err = elements.ProbabilityFromReal(math.NaN())
	assert.ErrorIs(t, err, elements.ErrProbabilityRange)

	p, err := elements.ProbabilityFromReal(0.75)
	require.NoError(t, err)
	assert.Equal(t, 0.75, p.AsReal())
}

// TestProbability_Booleans verifies the endpoint constants and the boolean
// projection.
func TestProbability_Booleans(t *testing.T) {
	assert.Equal(t, 1.0, elements.True.AsReal())
	assert.Equal(t, 0.0, elements.False.AsReal())
	assert.Equal(t, elements.True, elements.ProbabilityFromBoolean(true))
	assert.Equal(t, elements.False, elements.ProbabilityFromBoolean(false))

	likely, err := elements.ProbabilityFromReal(0.6)
	require.NoError(t, err)
	assert.True(t, likely.AsBoolean())

	coin, err := elements.ProbabilityFromReal(0.5)
	require.NoError(t, err)
	assert.False(t, coin.AsBoolean(), "exactly half is not more likely than not")
}

// TestProbability_Logic verifies the fuzzy-logic operations on independent
// events.
func TestProbability_Logic(t *testing.T) {
	p, err := elements.ProbabilityFromReal(0.5)
	require.NoError(t, err)
	q, err := elements.ProbabilityFromReal(0.25)
	require.NoError(t, err)

	assert.InDelta(t, 0.5, p.Not().AsReal(), 1e-12)
	assert.InDelta(t, 0.125, p.And(q).AsReal(), 1e-12)
	assert.InDelta(t, 0.375, p.San(q).AsReal(), 1e-12, "p without q")
	assert.InDelta(t, 0.625, p.Or(q).AsReal(), 1e-12)
	assert.InDelta(t, 0.5, p.Xor(q).AsReal(), 1e-12)
}

// TestProbability_DeMorgan verifies not(p and q) == not(p) or not(q) for
// independent events.
func TestProbability_DeMorgan(t *testing.T) {
	p, err := elements.ProbabilityFromReal(0.3)
	require.NoError(t, err)
	q, err := elements.ProbabilityFromReal(0.7)
	require.NoError(t, err)

	left := p.And(q).Not()
	right := p.Not().Or(q.Not())
	assert.InDelta(t, left.AsReal(), right.AsReal(), 1e-12)
}

// TestProbability_AsString verifies the boolean keywords and the
// leading-zero-stripped fraction form.
func TestProbability_AsString(t *testing.T) {
	assert.Equal(t, "true", elements.True.AsString())
	assert.Equal(t, "false", elements.False.AsString())

	p, err := elements.ProbabilityFromReal(0.75)
	require.NoError(t, err)
	assert.Equal(t, ".75", p.AsString())
}
