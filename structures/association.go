package structures

import (
	"errors"

	"github.com/balidoc/bali/component"
)

// Sentinel errors for structure construction.
var (
	// ErrNilKey indicates an association constructed without a key.
	ErrNilKey = errors.New("structures: association key is nil")

	// ErrNilValue indicates an association constructed without a value.
	ErrNilValue = errors.New("structures: association value is nil")
)

// Association is an immutable key-value pair, rendered as key: value. It is
// Sequential over its two components so that the generic comparator orders
// associations by key first, then value.
type Association struct {
	key        component.Component
	value      component.Component
	parameters *component.Parameters
}

// Compile-time capability check.
var _ component.Sequential = (*Association)(nil)

// NewAssociation binds key to value. Returns ErrNilKey or ErrNilValue when
// either is missing — a keyless or valueless association never comes into
// existence.
func NewAssociation(key, value component.Component) (*Association, error) {
	if key == nil {
		return nil, ErrNilKey
	}
	if value == nil {
		return nil, ErrNilValue
	}

	return &Association{key: key, value: value}, nil
}

// WithValue returns a new association binding the same key to a different
// value. It panics on a nil value.
func (a *Association) WithValue(value component.Component) *Association {
	if value == nil {
		panic("structures: association value is nil")
	}

	return &Association{key: a.key, value: value, parameters: a.parameters}
}

// GetType returns component.TypeAssociation.
func (a *Association) GetType() component.Type { return component.TypeAssociation }

// GetParameters returns the parameter set attached at construction, or nil.
func (a *Association) GetParameters() *component.Parameters { return a.parameters }

// GetKey returns the key component.
func (a *Association) GetKey() component.Component { return a.key }

// GetValue returns the value component.
func (a *Association) GetValue() component.Component { return a.value }

// GetSize returns 2: the key and the value.
func (a *Association) GetSize() int { return 2 }

// GetIterator returns a fresh cursor over the (key, value) pair.
func (a *Association) GetIterator() component.Iterator {
	return component.NewIterator([]component.Component{a.key, a.value})
}

// IsSignificant always reports true; an association cannot be empty.
func (a *Association) IsSignificant() bool { return true }

// AsString renders the canonical inline literal key: value.
func (a *Association) AsString() string {
	return a.key.AsString() + ": " + a.value.AsString()
}
