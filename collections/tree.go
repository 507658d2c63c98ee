package collections

import (
	"strings"

	"github.com/balidoc/bali/component"
)

// Tree is a hierarchical aggregate: a node holding an optional value and an
// ordered list of child subtrees. Iteration is depth-first pre-order over
// the values in the subtree, visiting a node's value before its children.
//
// A tree is a runtime aggregate with no literal of its own; AsString
// renders it as nested list literals.
type Tree struct {
	parameters *component.Parameters
	value      component.Component
	children   []*Tree
}

// Compile-time capability check.
var _ component.Collection = (*Tree)(nil)

// NewTree constructs a node holding the given value (which may be nil for
// a pure branch node) and no children.
func NewTree(value component.Component) *Tree {
	return &Tree{value: value}
}

// GetType returns component.TypeTree.
func (t *Tree) GetType() component.Type { return component.TypeTree }

// GetParameters returns the parameter set attached at construction, or nil.
func (t *Tree) GetParameters() *component.Parameters { return t.parameters }

// GetValue returns this node's value, or nil for a pure branch node.
func (t *Tree) GetValue() component.Component { return t.value }

// GetChildren returns the child subtrees in order.
func (t *Tree) GetChildren() []*Tree { return append([]*Tree(nil), t.children...) }

// AddChild appends a subtree to this node's children.
// It panics on a nil child.
func (t *Tree) AddChild(child *Tree) {
	if child == nil {
		panic("collections: cannot add a nil subtree")
	}
	t.children = append(t.children, child)
}

// AddItem appends a leaf child holding the given value.
func (t *Tree) AddItem(item component.Component) {
	if item == nil {
		panic("collections: cannot add a nil item to a tree")
	}
	t.AddChild(NewTree(item))
}

// AddItems appends a leaf child for every item of the sequence in order.
func (t *Tree) AddItems(items component.Sequential) {
	for it := items.GetIterator(); it.HasNext(); {
		t.AddItem(it.GetNext())
	}
}

// RemoveAll removes every child subtree, leaving only this node's value.
func (t *Tree) RemoveAll() { t.children = nil }

// EmptyCopy returns a fresh childless, valueless node carrying the same
// parameters.
func (t *Tree) EmptyCopy() component.Collection {
	return &Tree{parameters: t.parameters}
}

// GetSize returns the number of values in the subtree, counting this node's
// value when present.
func (t *Tree) GetSize() int {
	size := 0
	if t.value != nil {
		size++
	}
	for _, child := range t.children {
		size += child.GetSize()
	}

	return size
}

// GetIterator returns a fresh cursor over the subtree's values in
// depth-first pre-order, snapshotted at call time.
func (t *Tree) GetIterator() component.Iterator {
	return component.NewIterator(t.flatten(nil))
}

// IsSignificant reports whether the subtree holds any values.
func (t *Tree) IsSignificant() bool { return t.GetSize() > 0 }

// AsString renders the subtree as nested list literals, e.g. [1, [2, 3]].
func (t *Tree) AsString() string {
	var sb strings.Builder
	sb.WriteByte('[')
	first := true
	if t.value != nil {
		sb.WriteString(t.value.AsString())
		first = false
	}
	for _, child := range t.children {
		if !first {
			sb.WriteString(", ")
		}
		first = false
		if len(child.children) == 0 && child.value != nil {
			sb.WriteString(child.value.AsString())
		} else {
			sb.WriteString(child.AsString())
		}
	}
	if first {
		return "[ ]"
	}
	sb.WriteByte(']')

	return sb.String()
}

// flatten appends the subtree's values to items in depth-first pre-order.
func (t *Tree) flatten(items []component.Component) []component.Component {
	if t.value != nil {
		items = append(items, t.value)
	}
	for _, child := range t.children {
		items = child.flatten(items)
	}

	return items
}
