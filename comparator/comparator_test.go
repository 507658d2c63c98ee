package comparator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/balidoc/bali/collections"
	"github.com/balidoc/bali/comparator"
	"github.com/balidoc/bali/component"
	"github.com/balidoc/bali/elements"
)

func number(v float64) component.Component { return elements.NumberFromReal(v) }

func text(s string) component.Component { return elements.TextFromString(s) }

func list(items ...component.Component) *collections.List {
	l := collections.NewList()
	for _, item := range items {
		l.AddItem(item)
	}

	return l
}

// TestCompare_Absence verifies that nil sorts before any present component.
func TestCompare_Absence(t *testing.T) {
	assert.Equal(t, 0, comparator.Compare(nil, nil))
	assert.Equal(t, -1, comparator.Compare(nil, number(0)))
	assert.Equal(t, 1, comparator.Compare(number(0), nil))
}

// TestCompare_Numeric verifies the real-line ordering of continuous
// components, across element types.
func TestCompare_Numeric(t *testing.T) {
	assert.Equal(t, -1, comparator.Compare(number(1), number(2)))
	assert.Equal(t, 1, comparator.Compare(number(2), number(1)))
	assert.Equal(t, 0, comparator.Compare(number(2), number(2)))

	// Continuous components of different element types compare by their
	// real projections.
	half, err := elements.ProbabilityFromReal(0.5)
	require.NoError(t, err)
	assert.Equal(t, 0, comparator.Compare(half, number(0.5)))

	percent, err := elements.PercentFromReal(25)
	require.NoError(t, err)
	assert.Equal(t, -1, comparator.Compare(percent, number(0.5)),
		"25% projects onto 0.25")
}

// TestCompare_NonFinite verifies that the absorbing numeric states order
// deterministically: undefined before defined, and each equal to itself.
func TestCompare_NonFinite(t *testing.T) {
	assert.Equal(t, 0, comparator.Compare(elements.Undefined, elements.Undefined))
	assert.Equal(t, 0, comparator.Compare(elements.Infinity, elements.Infinity))
	assert.Equal(t, -1, comparator.Compare(elements.Undefined, number(0)))
	assert.Equal(t, 1, comparator.Compare(number(0), elements.Undefined))
	assert.Equal(t, 1, comparator.Compare(elements.Infinity, number(1e300)))
}

// TestCompare_Booleans verifies that the boolean probabilities order as
// false before true.
func TestCompare_Booleans(t *testing.T) {
	assert.Equal(t, -1, comparator.Compare(elements.False, elements.True))
	assert.Equal(t, 0, comparator.Compare(elements.True, elements.True))
}

// TestCompare_Textual verifies collation of textual components.
func TestCompare_Textual(t *testing.T) {
	assert.Equal(t, -1, comparator.Compare(text("apple"), text("banana")))
	assert.Equal(t, 0, comparator.Compare(text("same"), text("same")))
	assert.Equal(t, 1, comparator.Compare(text("pear"), text("apple")))

	// Different textual element types still order by canonical form.
	name, err := elements.NameFromParts([]string{"bali"})
	require.NoError(t, err)
	symbol, err := elements.SymbolFromString("bali")
	require.NoError(t, err)
	assert.NotEqual(t, 0, comparator.Compare(name, symbol),
		"the leading marker distinguishes /bali from $bali")
}

// TestCompare_Sequential verifies recursive pairwise comparison of
// collections.
func TestCompare_Sequential(t *testing.T) {
	assert.Equal(t, 0, comparator.Compare(list(number(1), number(2)), list(number(1), number(2))))
	assert.Equal(t, -1, comparator.Compare(list(number(1), number(2)), list(number(1), number(3))))
	assert.Equal(t, 1, comparator.Compare(list(number(2)), list(number(1), number(9))))
}

// TestCompare_PrefixRule verifies that a genuine prefix sorts before its
// extension.
func TestCompare_PrefixRule(t *testing.T) {
	shorter := list(number(1), number(2))
	longer := list(number(1), number(2), number(3))

	assert.Equal(t, -1, comparator.Compare(shorter, longer))
	assert.Equal(t, 1, comparator.Compare(longer, shorter))
}

// TestCompare_Nested verifies that sequence comparison recurses through
// nested collections.
func TestCompare_Nested(t *testing.T) {
	first := list(list(number(1)), list(number(2)))
	second := list(list(number(1)), list(number(3)))

	assert.Equal(t, -1, comparator.Compare(first, second))
}

// TestCompare_TotalOrder verifies reflexivity, antisymmetry and
// transitivity within each comparison domain.
func TestCompare_TotalOrder(t *testing.T) {
	tag, err := elements.TagFromBytes([]byte{1, 2, 3})
	require.NoError(t, err)
	domains := map[string][]component.Component{
		"numeric": {
			elements.Undefined,
			number(-1),
			elements.False,
			elements.True,
			number(7),
			elements.Infinity,
		},
		"textual": {
			text("alpha"),
			text("beta"),
			tag,
		},
		"sequential": {
			list(number(1)),
			list(number(1), number(2)),
			list(number(2)),
		},
	}

	for domain, sample := range domains {
		for _, a := range sample {
			assert.Equal(t, 0, comparator.Compare(a, a),
				"%s: reflexivity for %s", domain, a.AsString())
			for _, b := range sample {
				ab := comparator.Compare(a, b)
				ba := comparator.Compare(b, a)
				assert.Equal(t, -ba, ab,
					"%s: antisymmetry for %s vs %s", domain, a.AsString(), b.AsString())
				for _, c := range sample {
					if ab <= 0 && comparator.Compare(b, c) <= 0 {
						assert.LessOrEqual(t, comparator.Compare(a, c), 0,
							"%s: transitivity for %s, %s, %s",
							domain, a.AsString(), b.AsString(), c.AsString())
					}
				}
			}
		}
	}
}

// TestEqual verifies the equality shorthand.
func TestEqual(t *testing.T) {
	assert.True(t, comparator.Equal(number(3), number(3)))
	assert.False(t, comparator.Equal(number(3), number(4)))
	assert.True(t, comparator.Equal(nil, nil))
}
