package collections

import (
	"errors"
	"strings"

	"github.com/balidoc/bali/component"
)

// Sentinel errors for stack operations.
var (
	// ErrEmptyStack indicates RemoveTop or GetTop on an empty stack.
	ErrEmptyStack = errors.New("collections: stack is empty")

	// ErrStackOverflow indicates AddItem beyond the stack's capacity.
	ErrStackOverflow = errors.New("collections: stack capacity exceeded")
)

// StackOption configures a Stack before creation.
type StackOption func(*Stack)

// WithCapacity bounds the stack to at most capacity items; AddItem beyond
// the bound panics with ErrStackOverflow. A non-positive capacity means
// unbounded.
func WithCapacity(capacity int) StackOption {
	return func(s *Stack) { s.capacity = capacity }
}

// Stack is a last-in-first-out collection. Iteration runs bottom-to-top in
// insertion order; positional access is deliberately absent — a stack is
// manipulated through its top only.
//
// A stack has no literal of its own; it parses and formats as a list
// carrying the parameter ($type: /bali/collections/Stack).
type Stack struct {
	parameters *component.Parameters
	items      []component.Component
	capacity   int
}

// Compile-time capability check.
var _ component.Collection = (*Stack)(nil)

// NewStack constructs an empty stack with the given options.
func NewStack(opts ...StackOption) *Stack {
	s := &Stack{}
	for _, opt := range opts {
		opt(s)
	}

	return s
}

// NewStackWithParameters constructs an empty stack carrying a parameter
// set.
func NewStackWithParameters(parameters *component.Parameters, opts ...StackOption) *Stack {
	s := NewStack(opts...)
	s.parameters = parameters

	return s
}

// GetType returns component.TypeStack.
func (s *Stack) GetType() component.Type { return component.TypeStack }

// GetParameters returns the parameter set attached at construction, or nil.
func (s *Stack) GetParameters() *component.Parameters { return s.parameters }

// GetSize returns the number of items.
func (s *Stack) GetSize() int { return len(s.items) }

// GetIterator returns a fresh cursor over a snapshot of the items,
// bottom-to-top.
func (s *Stack) GetIterator() component.Iterator {
	return component.NewIterator(append([]component.Component(nil), s.items...))
}

// IsSignificant reports whether the stack holds any items.
func (s *Stack) IsSignificant() bool { return len(s.items) > 0 }

// AsString renders the items bottom-to-top as an inline list literal.
func (s *Stack) AsString() string {
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

// AddItem pushes an item onto the top of the stack. Pushing beyond a
// bounded capacity is a programming error and panics with ErrStackOverflow.
func (s *Stack) AddItem(item component.Component) {
	if item == nil {
		panic("collections: cannot push a nil item onto a stack")
	}
	if s.capacity > 0 && len(s.items) == s.capacity {
		panic(ErrStackOverflow)
	}
	s.items = append(s.items, item)
}

// AddItems pushes every item of the sequence in iteration order, so the
// sequence's last item ends up on top.
func (s *Stack) AddItems(items component.Sequential) {
	for it := items.GetIterator(); it.HasNext(); {
		s.AddItem(it.GetNext())
	}
}

// RemoveAll removes every item, leaving an empty stack.
func (s *Stack) RemoveAll() { s.items = nil }

// EmptyCopy returns a fresh empty stack with the same parameters and
// capacity.
func (s *Stack) EmptyCopy() component.Collection {
	return &Stack{parameters: s.parameters, capacity: s.capacity}
}

// GetTop returns the top item without removing it.
// Returns ErrEmptyStack on an empty stack.
func (s *Stack) GetTop() (component.Component, error) {
	if len(s.items) == 0 {
		return nil, ErrEmptyStack
	}

	return s.items[len(s.items)-1], nil
}

// RemoveTop removes and returns the top item.
// Returns ErrEmptyStack on an empty stack.
func (s *Stack) RemoveTop() (component.Component, error) {
	if len(s.items) == 0 {
		return nil, ErrEmptyStack
	}
	top := s.items[len(s.items)-1]
	s.items = s.items[:len(s.items)-1]

	return top, nil
}
