package collections

import (
	"fmt"
	"strings"

	"github.com/balidoc/bali/comparator"
	"github.com/balidoc/bali/component"
)

// List is an ordinal collection preserving insertion order until it is
// explicitly sorted, shuffled or reversed. Indexing is 1-based; negative
// indices count back from the end (-1 is the last item). List is Chainable.
//
// Literal forms: [ ] for the empty list, [1, 2, 3] inline, or one item per
// line in pretty form.
type List struct {
	parameters *component.Parameters
	items      []component.Component
}

// Compile-time capability checks.
var (
	_ component.Ordinal   = (*List)(nil)
	_ component.Chainable = (*List)(nil)
)

// NewList constructs an empty list.
func NewList() *List {
	return &List{}
}

// NewListWithParameters constructs an empty list carrying a parameter set.
func NewListWithParameters(parameters *component.Parameters) *List {
	return &List{parameters: parameters}
}

// ListFromSequence constructs a list holding the items of the given
// sequence in iteration order.
func ListFromSequence(sequence component.Sequential) *List {
	list := NewList()
	list.AddItems(sequence)

	return list
}

// GetType returns component.TypeList.
func (l *List) GetType() component.Type { return component.TypeList }

// GetParameters returns the parameter set attached at construction, or nil.
func (l *List) GetParameters() *component.Parameters { return l.parameters }

// GetSize returns the number of items.
func (l *List) GetSize() int { return len(l.items) }

// GetIterator returns a fresh cursor over a snapshot of the items, so the
// list may be mutated while earlier iterators are still draining.
func (l *List) GetIterator() component.Iterator {
	return component.NewIterator(append([]component.Component(nil), l.items...))
}

// IsSignificant reports whether the list holds any items.
func (l *List) IsSignificant() bool { return len(l.items) > 0 }

// AsString renders the canonical inline literal, e.g. [1, 2, 3] or [ ].
func (l *List) AsString() string {
	if len(l.items) == 0 {
		return "[ ]"
	}
	var sb strings.Builder
	sb.WriteByte('[')
	for i, item := range l.items {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(item.AsString())
	}
	sb.WriteByte(']')

	return sb.String()
}

// AddItem appends an item to the end of the list.
// It panics on a nil item.
func (l *List) AddItem(item component.Component) {
	if item == nil {
		panic("collections: cannot add a nil item to a list")
	}
	l.items = append(l.items, item)
}

// AddItems appends every item of the sequence in iteration order.
func (l *List) AddItems(items component.Sequential) {
	for it := items.GetIterator(); it.HasNext(); {
		l.AddItem(it.GetNext())
	}
}

// RemoveAll removes every item, leaving an empty list.
func (l *List) RemoveAll() { l.items = nil }

// EmptyCopy returns a fresh empty list carrying the same parameters.
func (l *List) EmptyCopy() component.Collection {
	return &List{parameters: l.parameters}
}

// GetItem returns the item at the 1-based index; negative indices count
// back from the end. It panics on an out-of-range index.
func (l *List) GetItem(index int) component.Component {
	return l.items[component.NormalizeIndex(index, len(l.items))]
}

// SetItem replaces the item at the index and returns the previous item.
func (l *List) SetItem(index int, item component.Component) component.Component {
	if item == nil {
		panic("collections: cannot set a nil item in a list")
	}
	offset := component.NormalizeIndex(index, len(l.items))
	previous := l.items[offset]
	l.items[offset] = item

	return previous
}

// InsertItem inserts the item before the index; an index one past the end
// appends.
func (l *List) InsertItem(index int, item component.Component) {
	if item == nil {
		panic("collections: cannot insert a nil item in a list")
	}
	size := len(l.items)
	var offset int
	if index == size+1 {
		offset = size // insertion one past the end appends
	} else {
		offset = component.NormalizeIndex(index, size)
	}
	l.items = append(l.items, nil)
	copy(l.items[offset+1:], l.items[offset:])
	l.items[offset] = item
}

// RemoveItem removes and returns the item at the index.
func (l *List) RemoveItem(index int) component.Component {
	offset := component.NormalizeIndex(index, len(l.items))
	removed := l.items[offset]
	l.items = append(l.items[:offset], l.items[offset+1:]...)

	return removed
}

// GetIndex returns the 1-based index of the first item equal to the given
// component under the comparator, or 0 when it is absent.
func (l *List) GetIndex(item component.Component) int {
	for i, candidate := range l.items {
		if comparator.Equal(candidate, item) {
			return i + 1
		}
	}

	return 0
}

// ContainsItem reports whether an equal item is present.
func (l *List) ContainsItem(item component.Component) bool {
	return l.GetIndex(item) > 0
}

// Concatenation returns a new list holding this list's items followed by
// the other list's items.
// It panics if other is not a List.
func (l *List) Concatenation(other component.Component) component.Component {
	o, ok := other.(*List)
	if !ok {
		panic(fmt.Sprintf("collections: List.Concatenation requires a List, got %s", other.GetType()))
	}
	joined := &List{parameters: l.parameters}
	joined.items = make([]component.Component, 0, len(l.items)+len(o.items))
	joined.items = append(joined.items, l.items...)
	joined.items = append(joined.items, o.items...)

	return joined
}
