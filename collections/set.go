package collections

import (
	"sort"
	"strings"

	"github.com/balidoc/bali/comparator"
	"github.com/balidoc/bali/component"
)

// Set is a deduplicated collection kept in comparator order. Membership is
// decided by comparator equality, never identity: adding a structurally
// equal item a second time is a no-op.
//
// A set has no literal of its own; it parses and formats as a list carrying
// the parameter ($type: /bali/collections/Set).
type Set struct {
	parameters *component.Parameters
	items      []component.Component
}

// Compile-time capability check.
var _ component.Collection = (*Set)(nil)

// NewSet constructs an empty set.
func NewSet() *Set {
	return &Set{}
}

// NewSetWithParameters constructs an empty set carrying a parameter set.
func NewSetWithParameters(parameters *component.Parameters) *Set {
	return &Set{parameters: parameters}
}

// SetFromSequence constructs a set holding the distinct items of the given
// sequence.
func SetFromSequence(sequence component.Sequential) *Set {
	set := NewSet()
	set.AddItems(sequence)

	return set
}

// GetType returns component.TypeSet.
func (s *Set) GetType() component.Type { return component.TypeSet }

// GetParameters returns the parameter set attached at construction, or nil.
func (s *Set) GetParameters() *component.Parameters { return s.parameters }

// GetSize returns the number of distinct items.
func (s *Set) GetSize() int { return len(s.items) }

// GetIterator returns a fresh cursor over a snapshot of the items in
// comparator order.
func (s *Set) GetIterator() component.Iterator {
	return component.NewIterator(append([]component.Component(nil), s.items...))
}

// IsSignificant reports whether the set holds any items.
func (s *Set) IsSignificant() bool { return len(s.items) > 0 }

// AsString renders the canonical inline literal in comparator order.
func (s *Set) AsString() string {
	if len(s.items) == 0 {
		return "[ ]"
	}
	var sb strings.Builder
	sb.WriteByte('[')
	for i, item := range s.items {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(item.AsString())
	}
	sb.WriteByte(']')

	return sb.String()
}

// AddItem inserts the item at its ordered position; an item equal to an
// existing member is ignored.
// It panics on a nil item.
func (s *Set) AddItem(item component.Component) {
	if item == nil {
		panic("collections: cannot add a nil item to a set")
	}
	offset, found := s.search(item)
	if found {
		return
	}
	s.items = append(s.items, nil)
	copy(s.items[offset+1:], s.items[offset:])
	s.items[offset] = item
}

// AddItems inserts every item of the sequence.
func (s *Set) AddItems(items component.Sequential) {
	for it := items.GetIterator(); it.HasNext(); {
		s.AddItem(it.GetNext())
	}
}

// RemoveAll removes every item, leaving an empty set.
func (s *Set) RemoveAll() { s.items = nil }

// EmptyCopy returns a fresh empty set carrying the same parameters.
func (s *Set) EmptyCopy() component.Collection {
	return &Set{parameters: s.parameters}
}

// RemoveItem removes the item equal to the given component; it reports
// whether a member was removed.
func (s *Set) RemoveItem(item component.Component) bool {
	offset, found := s.search(item)
	if !found {
		return false
	}
	s.items = append(s.items[:offset], s.items[offset+1:]...)

	return true
}

// ContainsItem reports whether an equal item is a member.
func (s *Set) ContainsItem(item component.Component) bool {
	_, found := s.search(item)

	return found
}

// And returns the intersection of the two sets.
func (s *Set) And(other *Set) *Set {
	result := s.EmptyCopy().(*Set)
	for _, item := range s.items {
		if other.ContainsItem(item) {
			result.AddItem(item)
		}
	}

	return result
}

// Sans returns the members of this set that are not members of the other.
func (s *Set) Sans(other *Set) *Set {
	result := s.EmptyCopy().(*Set)
	for _, item := range s.items {
		if !other.ContainsItem(item) {
			result.AddItem(item)
		}
	}

	return result
}

// Or returns the union of the two sets.
func (s *Set) Or(other *Set) *Set {
	result := s.EmptyCopy().(*Set)
	result.AddItems(s)
	result.AddItems(other)

	return result
}

// Xor returns the symmetric difference of the two sets.
func (s *Set) Xor(other *Set) *Set {
	result := s.Sans(other)
	result.AddItems(other.Sans(s))

	return result
}

// search locates the ordered offset for item via binary search with the
// comparator, reporting whether an equal member already sits there.
func (s *Set) search(item component.Component) (int, bool) {
	offset := sort.Search(len(s.items), func(i int) bool {
		return comparator.Compare(s.items[i], item) >= 0
	})
	found := offset < len(s.items) && comparator.Equal(s.items[offset], item)

	return offset, found
}
