package collections

import (
	"fmt"
	"strings"

	"github.com/balidoc/bali/comparator"
	"github.com/balidoc/bali/component"
	"github.com/balidoc/bali/structures"
)

// Catalog is an ordered key→value aggregate of associations. Iteration
// preserves insertion order; key lookup uses comparator equality, never
// identity. Rebinding an existing key replaces its association in place
// (last-key-wins). Catalog is Chainable.
//
// Literal forms: [:] for the empty catalog, [key: value, ...] inline, or
// one association per line in pretty form.
type Catalog struct {
	parameters   *component.Parameters
	associations []*structures.Association
}

// Compile-time capability checks.
var (
	_ component.Collection = (*Catalog)(nil)
	_ component.Chainable  = (*Catalog)(nil)
)

// NewCatalog constructs an empty catalog.
func NewCatalog() *Catalog {
	return &Catalog{}
}

// NewCatalogWithParameters constructs an empty catalog carrying a parameter
// set.
func NewCatalogWithParameters(parameters *component.Parameters) *Catalog {
	return &Catalog{parameters: parameters}
}

// CatalogFromSequence constructs a catalog from a sequence of associations,
// applying last-key-wins for duplicate keys.
func CatalogFromSequence(sequence component.Sequential) *Catalog {
	catalog := NewCatalog()
	catalog.AddItems(sequence)

	return catalog
}

// GetType returns component.TypeCatalog.
func (c *Catalog) GetType() component.Type { return component.TypeCatalog }

// GetParameters returns the parameter set attached at construction, or nil.
func (c *Catalog) GetParameters() *component.Parameters { return c.parameters }

// GetSize returns the number of associations.
func (c *Catalog) GetSize() int { return len(c.associations) }

// GetIterator returns a fresh cursor over a snapshot of the associations in
// insertion order.
func (c *Catalog) GetIterator() component.Iterator {
	items := make([]component.Component, len(c.associations))
	for i, a := range c.associations {
		items[i] = a
	}

	return component.NewIterator(items)
}

// IsSignificant reports whether the catalog holds any associations.
func (c *Catalog) IsSignificant() bool { return len(c.associations) > 0 }

// AsString renders the canonical inline literal, e.g. [$a: 1, $b: 2] or
// [:].
func (c *Catalog) AsString() string {
	if len(c.associations) == 0 {
		return "[:]"
	}
	var sb strings.Builder
	sb.WriteByte('[')
	for i, a := range c.associations {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(a.AsString())
	}
	sb.WriteByte(']')

	return sb.String()
}

// AddItem adds an association, rebinding the key if it is already present
// (last-key-wins).
// It panics if item is not an Association.
func (c *Catalog) AddItem(item component.Component) {
	a, ok := item.(*structures.Association)
	if !ok {
		panic(fmt.Sprintf("collections: a catalog holds associations, got %s", item.GetType()))
	}
	if i := c.indexOfKey(a.GetKey()); i >= 0 {
		c.associations[i] = a

		return
	}
	c.associations = append(c.associations, a)
}

// AddItems adds every association of the sequence in iteration order.
func (c *Catalog) AddItems(items component.Sequential) {
	for it := items.GetIterator(); it.HasNext(); {
		c.AddItem(it.GetNext())
	}
}

// RemoveAll removes every association, leaving an empty catalog.
func (c *Catalog) RemoveAll() { c.associations = nil }

// EmptyCopy returns a fresh empty catalog carrying the same parameters.
func (c *Catalog) EmptyCopy() component.Collection {
	return &Catalog{parameters: c.parameters}
}

// SetValue binds key to value, replacing any existing binding
// (last-key-wins). It returns the previous value, or nil when the key was
// unbound.
func (c *Catalog) SetValue(key, value component.Component) component.Component {
	a, err := structures.NewAssociation(key, value)
	if err != nil {
		panic("collections: " + err.Error())
	}
	if i := c.indexOfKey(key); i >= 0 {
		previous := c.associations[i].GetValue()
		c.associations[i] = c.associations[i].WithValue(value)

		return previous
	}
	c.associations = append(c.associations, a)

	return nil
}

// GetValue returns the value bound to key, or nil when the key is unbound.
func (c *Catalog) GetValue(key component.Component) component.Component {
	if i := c.indexOfKey(key); i >= 0 {
		return c.associations[i].GetValue()
	}

	return nil
}

// RemoveValue removes the binding for key and returns its value, or nil
// when the key was unbound.
func (c *Catalog) RemoveValue(key component.Component) component.Component {
	if i := c.indexOfKey(key); i >= 0 {
		value := c.associations[i].GetValue()
		c.associations = append(c.associations[:i], c.associations[i+1:]...)

		return value
	}

	return nil
}

// GetKeys returns the keys in insertion order.
func (c *Catalog) GetKeys() []component.Component {
	keys := make([]component.Component, len(c.associations))
	for i, a := range c.associations {
		keys[i] = a.GetKey()
	}

	return keys
}

// GetValues returns the values in insertion order.
func (c *Catalog) GetValues() []component.Component {
	values := make([]component.Component, len(c.associations))
	for i, a := range c.associations {
		values[i] = a.GetValue()
	}

	return values
}

// Concatenation returns a new catalog holding this catalog's associations
// followed by the other catalog's, with last-key-wins for shared keys.
// It panics if other is not a Catalog.
func (c *Catalog) Concatenation(other component.Component) component.Component {
	o, ok := other.(*Catalog)
	if !ok {
		panic(fmt.Sprintf("collections: Catalog.Concatenation requires a Catalog, got %s", other.GetType()))
	}
	joined := &Catalog{parameters: c.parameters}
	joined.AddItems(c)
	joined.AddItems(o)

	return joined
}

func (c *Catalog) indexOfKey(key component.Component) int {
	for i, a := range c.associations {
		if comparator.Equal(a.GetKey(), key) {
			return i
		}
	}

	return -1
}
