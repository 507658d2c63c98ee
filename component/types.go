// Package component: the closed Type enumeration, the Component root
// interface, capability interfaces, and the Iterator cursor contract.
//
// This file declares Type, Component, Sequential, Scalable, Numerical,
// Chainable, Continuous, Textual, Collection, Ordinal and Iterator.
// Concrete implementations live in the elements, structures and collections
// packages; nothing here carries state.
package component

// Type identifies the concrete variant of a Component. The enumeration is
// closed: the notation grammar can produce exactly these variants and no
// others.
type Type uint8

const (
	// TypeInvalid is the zero value; no constructed Component carries it.
	TypeInvalid Type = iota

	// Element variants.
	TypeAngle
	TypeNumber
	TypePercent
	TypeProbability
	TypeDuration
	TypeMoment
	TypeName
	TypeTag
	TypeSymbol
	TypeText
	TypeBinary
	TypeVersion
	TypeReference

	// Structure variants.
	TypeAssociation
	TypeException

	// Collection variants.
	TypeList
	TypeCatalog
	TypeSet
	TypeRange
	TypeStack
	TypeTree
)

// String returns the variant name.
func (t Type) String() string {
	switch t {
	case TypeAngle:
		return "Angle"
	case TypeNumber:
		return "Number"
	case TypePercent:
		return "Percent"
	case TypeProbability:
		return "Probability"
	case TypeDuration:
		return "Duration"
	case TypeMoment:
		return "Moment"
	case TypeName:
		return "Name"
	case TypeTag:
		return "Tag"
	case TypeSymbol:
		return "Symbol"
	case TypeText:
		return "Text"
	case TypeBinary:
		return "Binary"
	case TypeVersion:
		return "Version"
	case TypeReference:
		return "Reference"
	case TypeAssociation:
		return "Association"
	case TypeException:
		return "Exception"
	case TypeList:
		return "List"
	case TypeCatalog:
		return "Catalog"
	case TypeSet:
		return "Set"
	case TypeRange:
		return "Range"
	case TypeStack:
		return "Stack"
	case TypeTree:
		return "Tree"
	default:
		return "Invalid"
	}
}

// IsElement reports whether t is a scalar element variant.
func (t Type) IsElement() bool {
	return t >= TypeAngle && t <= TypeReference
}

// IsStructure reports whether t is a fixed-shape structure variant.
func (t Type) IsStructure() bool {
	return t == TypeAssociation || t == TypeException
}

// IsCollection reports whether t is a variable-size aggregate variant.
func (t Type) IsCollection() bool {
	return t >= TypeList && t <= TypeTree
}

// Component is the root value type of the notation; everything parseable
// implements it.
//
// GetType and GetParameters are fixed at construction. AsString renders the
// canonical inline literal form of the value, without any parameter suffix;
// the notation package owns pretty (multi-line) rendering and parameter
// suffixes. IsSignificant implements the boolean coercion convention: a
// value is significant unless it is the canonical empty/zero/false value of
// its type.
type Component interface {
	GetType() Type
	GetParameters() *Parameters
	AsString() string
	IsSignificant() bool
}

// Iterator is a bidirectional cursor over a sequence of components. A fresh
// Iterator is positioned in the slot before the first item (slot 0); slot n
// sits between item n and item n+1.
//
// Iterators are restartable — GetIterator() on the same sequence yields an
// independent cursor — but a single Iterator must not be advanced from
// multiple goroutines.
type Iterator interface {
	// ToStart moves the cursor to the slot before the first item.
	ToStart()

	// ToEnd moves the cursor to the slot after the last item.
	ToEnd()

	// ToSlot moves the cursor to slot n in [0..size]; negative n counts
	// back from the end (-1 is the slot before the last item).
	ToSlot(slot int)

	// HasNext reports whether an item exists after the cursor.
	HasNext() bool

	// HasPrevious reports whether an item exists before the cursor.
	HasPrevious() bool

	// GetNext returns the item after the cursor and advances past it.
	// It panics if HasNext is false.
	GetNext() Component

	// GetPrevious returns the item before the cursor and retreats past it.
	// It panics if HasPrevious is false.
	GetPrevious() Component
}

// Sequential is the capability of owning an ordered sequence of components.
// All collections are Sequential; so are a few composite structures.
type Sequential interface {
	Component

	// GetSize returns the number of items in the sequence.
	GetSize() int

	// GetIterator returns a fresh cursor positioned before the first item.
	GetIterator() Iterator
}

// Scalable is the capability of forming an additive group.
//
// Laws: Sum(x, Inverse(x)) is the type's zero value; Scaled(x, 1) == x;
// Difference(x, y) == Sum(x, Inverse(y)). Passing a component of a different
// concrete type to a binary operation is a programming error and panics.
type Scalable interface {
	Component

	Inverse() Component
	Sum(other Component) Component
	Difference(other Component) Component
	Scaled(factor float64) Component
}

// Numerical is the capability of full field arithmetic; it extends Scalable.
type Numerical interface {
	Scalable

	Reciprocal() Component
	Conjugate() Component
	Factorial() Component
	Product(other Component) Component
	Quotient(other Component) Component
	Remainder(other Component) Component
	Exponential(other Component) Component
	Logarithm() Component
}

// Chainable is the capability of concatenation: the result is a new value of
// the same type holding the receiver's content followed by other's content.
type Chainable interface {
	Component

	Concatenation(other Component) Component
}

// Continuous is the capability of projecting onto the real line. The
// comparator uses AsReal as the comparison key for numeric-compatible
// components.
type Continuous interface {
	Component

	AsReal() float64
}

// Textual marks components whose canonical string form (AsString) is their
// comparison key.
type Textual interface {
	Component

	IsTextual()
}

// Collection is a mutable variable-size aggregate of components.
type Collection interface {
	Sequential

	// AddItem appends (or inserts, for ordered collections) one item.
	AddItem(item Component)

	// AddItems adds every item of the given sequence in iteration order.
	AddItems(items Sequential)

	// RemoveAll removes every item, leaving an empty collection.
	RemoveAll()

	// EmptyCopy returns a fresh empty collection of the same concrete type
	// carrying the same parameters.
	EmptyCopy() Collection
}

// Ordinal is a collection with 1-based positional access. Negative indices
// count back from the end: -1 is the last item, -size the first. Index 0 is
// always out of range.
type Ordinal interface {
	Collection

	// GetItem returns the item at the (normalized) index.
	GetItem(index int) Component

	// SetItem replaces the item at the index and returns the old item.
	SetItem(index int, item Component) Component

	// InsertItem inserts the item before the (normalized) index; an index
	// one past the end appends.
	InsertItem(index int, item Component)

	// RemoveItem removes and returns the item at the index.
	RemoveItem(index int) Component
}
