package structures_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/balidoc/bali/component"
	"github.com/balidoc/bali/elements"
	"github.com/balidoc/bali/structures"
)

// TestAssociation_Construction verifies the key/value invariants.
func TestAssociation_Construction(t *testing.T) {
	key, err := elements.SymbolFromString("answer")
	require.NoError(t, err)

	a, err := structures.NewAssociation(key, elements.NumberFromReal(42))
	require.NoError(t, err)
	assert.Equal(t, "$answer: 42", a.AsString())
	assert.Equal(t, key, a.GetKey())

	_, err = structures.NewAssociation(nil, elements.NumberFromReal(1))
	assert.ErrorIs(t, err, structures.ErrNilKey)

	_, err = structures.NewAssociation(key, nil)
	assert.ErrorIs(t, err, structures.ErrNilValue)
}

// TestAssociation_Sequence verifies the two-item sequence view: key first,
// value second.
func TestAssociation_Sequence(t *testing.T) {
	key := elements.TextFromString("k")
	value := elements.NumberFromReal(7)
	a, err := structures.NewAssociation(key, value)
	require.NoError(t, err)

	assert.Equal(t, 2, a.GetSize())
	it := a.GetIterator()
	assert.Equal(t, `"k"`, it.GetNext().AsString())
	assert.Equal(t, "7", it.GetNext().AsString())
	assert.False(t, it.HasNext())
}

// TestAssociation_WithValue verifies that rebinding produces a copy and
// leaves the original untouched.
func TestAssociation_WithValue(t *testing.T) {
	key := elements.TextFromString("k")
	a, err := structures.NewAssociation(key, elements.NumberFromReal(1))
	require.NoError(t, err)

	b := a.WithValue(elements.NumberFromReal(2))
	assert.Equal(t, `"k": 2`, b.AsString())
	assert.Equal(t, `"k": 1`, a.AsString())
	assert.Panics(t, func() { a.WithValue(nil) })
}

// TestException_Attributes verifies ordered attributes and the skipping of
// empty entries.
func TestException_Attributes(t *testing.T) {
	e := structures.NewException(
		component.Parameter{Name: "module", Value: elements.TextFromString("storage")},
		component.Parameter{Name: "", Value: elements.TextFromString("dropped")},
		component.Parameter{Name: "text", Value: elements.TextFromString("disk full")},
		component.Parameter{Name: "cause", Value: nil},
	)

	assert.Equal(t, 2, e.GetSize(), "empty names and nil values are skipped")
	assert.Equal(t, []string{"module", "text"}, e.GetNames())
	assert.Equal(t, `"disk full"`, e.GetAttribute("text").AsString())
	assert.Nil(t, e.GetAttribute("missing"))
}

// TestException_AsError verifies that an exception is a first-class Go
// error supporting wrapping and errors.Is.
func TestException_AsError(t *testing.T) {
	cause := errors.New("underlying failure")
	e := structures.Report(
		"elements", "ProbabilityFromReal", "value",
		elements.NumberFromReal(1.5),
		"probability outside [0, 1]",
	).Wrap(cause)

	assert.ErrorIs(t, e, cause, "the cause survives wrapping")
	assert.Contains(t, e.Error(), "ProbabilityFromReal")
	assert.Contains(t, e.Error(), "underlying failure")
}

// TestException_AsComponent verifies the catalog-style literal rendering.
func TestException_AsComponent(t *testing.T) {
	e := structures.NewException(
		component.Parameter{Name: "module", Value: elements.TextFromString("parser")},
	)
	assert.Equal(t, `[$module: "parser"]`, e.AsString())
	assert.True(t, e.IsSignificant())

	empty := structures.NewException()
	assert.Equal(t, "[:]", empty.AsString())
	assert.False(t, empty.IsSignificant())
}
