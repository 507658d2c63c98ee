// Package component: the Parameters refinement catalog.
//
// Parameters refine a component's type at construction time — for example an
// angle carrying ($units: $degrees), or a list carrying a $type refinement
// that selects a more specific collection. They are attached after the
// component's value has been normalized, so parameterized and default
// construction share the same validation path.
package component

import (
	"errors"
	"strings"
)

// ErrEmptyParameterName indicates that a parameter was declared with an
// empty symbol name.
var ErrEmptyParameterName = errors.New("component: parameter name is empty")

// Parameter is one named refinement value. The name is the symbol without
// its leading $.
type Parameter struct {
	Name  string
	Value Component
}

// Parameters is an immutable, ordered set of named refinement values.
// A nil *Parameters means "no parameters" and is valid everywhere.
type Parameters struct {
	entries []Parameter
}

// NewParameters builds an immutable parameter set from the given entries,
// preserving order. Later duplicates of the same name replace earlier ones
// (last-key-wins). It returns ErrEmptyParameterName if any name is empty.
func NewParameters(entries ...Parameter) (*Parameters, error) {
	p := &Parameters{entries: make([]Parameter, 0, len(entries))}
	for _, e := range entries {
		if e.Name == "" {
			return nil, ErrEmptyParameterName
		}
		if i := p.index(e.Name); i >= 0 {
			p.entries[i] = e
			continue
		}
		p.entries = append(p.entries, e)
	}

	return p, nil
}

// GetSize returns the number of parameters; safe on a nil receiver.
func (p *Parameters) GetSize() int {
	if p == nil {
		return 0
	}

	return len(p.entries)
}

// GetValue returns the value bound to name, or nil when absent; safe on a
// nil receiver.
func (p *Parameters) GetValue(name string) Component {
	if p == nil {
		return nil
	}
	if i := p.index(name); i >= 0 {
		return p.entries[i].Value
	}

	return nil
}

// GetNames returns the parameter names in insertion order.
func (p *Parameters) GetNames() []string {
	if p == nil {
		return nil
	}
	names := make([]string, len(p.entries))
	for i, e := range p.entries {
		names[i] = e.Name
	}

	return names
}

// AsString renders the canonical inline parameter suffix, for example
// ($units: $degrees). An empty or nil set renders as the empty string.
func (p *Parameters) AsString() string {
	if p.GetSize() == 0 {
		return ""
	}
	var sb strings.Builder
	sb.WriteByte('(')
	for i, e := range p.entries {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteByte('$')
		sb.WriteString(e.Name)
		sb.WriteString(": ")
		sb.WriteString(e.Value.AsString())
	}
	sb.WriteByte(')')

	return sb.String()
}

func (p *Parameters) index(name string) int {
	for i, e := range p.entries {
		if e.Name == name {
			return i
		}
	}

	return -1
}
