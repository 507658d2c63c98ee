package structures

import (
	"strings"

	"github.com/balidoc/bali/component"
	"github.com/balidoc/bali/elements"
)

// Exception is an error represented as a first-class document value: an
// ordered aggregate of named attributes. It implements both Component and
// error, so a failure can be formatted, parsed, compared and sorted exactly
// like any other component, or wrapped and matched like any other Go error.
//
// The conventional attributes are $module, $procedure, $parameter, $value
// and $text, but the attribute set is open.
type Exception struct {
	attributes []component.Parameter
	cause      error
}

// Compile-time checks: an Exception is both a sequential component and an
// error.
var (
	_ component.Sequential = (*Exception)(nil)
	_ error                = (*Exception)(nil)
)

// NewException builds an exception from named attributes, preserving order.
// Attributes with an empty name or nil value are skipped rather than
// erroring — an exception raised while reporting another failure must not
// itself fail.
func NewException(attributes ...component.Parameter) *Exception {
	e := &Exception{attributes: make([]component.Parameter, 0, len(attributes))}
	for _, a := range attributes {
		if a.Name == "" || a.Value == nil {
			continue
		}
		e.attributes = append(e.attributes, a)
	}

	return e
}

// Report builds the conventional construction-failure exception: the
// offending module and procedure, the parameter that violated its
// invariant, its value, and human-readable text.
func Report(module, procedure, parameter string, value component.Component, text string) *Exception {
	return NewException(
		component.Parameter{Name: "module", Value: elements.TextFromString(module)},
		component.Parameter{Name: "procedure", Value: elements.TextFromString(procedure)},
		component.Parameter{Name: "parameter", Value: elements.TextFromString(parameter)},
		component.Parameter{Name: "value", Value: value},
		component.Parameter{Name: "text", Value: elements.TextFromString(text)},
	)
}

// Wrap attaches an underlying Go error as the exception's cause, returning
// the exception for chaining.
func (e *Exception) Wrap(cause error) *Exception {
	e.cause = cause

	return e
}

// Unwrap returns the underlying cause, if any, for errors.Is and errors.As.
func (e *Exception) Unwrap() error { return e.cause }

// Error renders the exception as a single-line Go error message.
func (e *Exception) Error() string {
	var sb strings.Builder
	sb.WriteString("exception")
	for _, a := range e.attributes {
		sb.WriteString(" $")
		sb.WriteString(a.Name)
		sb.WriteString(": ")
		sb.WriteString(a.Value.AsString())
	}
	if e.cause != nil {
		sb.WriteString(": ")
		sb.WriteString(e.cause.Error())
	}

	return sb.String()
}

// GetType returns component.TypeException.
func (e *Exception) GetType() component.Type { return component.TypeException }

// GetParameters always returns nil; an exception's attributes are its
// content, not a type refinement.
func (e *Exception) GetParameters() *component.Parameters { return nil }

// GetAttribute returns the value bound to the named attribute, or nil.
func (e *Exception) GetAttribute(name string) component.Component {
	for _, a := range e.attributes {
		if a.Name == name {
			return a.Value
		}
	}

	return nil
}

// GetNames returns the attribute names in order.
func (e *Exception) GetNames() []string {
	names := make([]string, len(e.attributes))
	for i, a := range e.attributes {
		names[i] = a.Name
	}

	return names
}

// GetSize returns the number of attributes.
func (e *Exception) GetSize() int { return len(e.attributes) }

// GetIterator returns a fresh cursor over the attribute values in order.
func (e *Exception) GetIterator() component.Iterator {
	values := make([]component.Component, len(e.attributes))
	for i, a := range e.attributes {
		values[i] = a.Value
	}

	return component.NewIterator(values)
}

// IsSignificant reports whether the exception carries any attributes.
func (e *Exception) IsSignificant() bool { return len(e.attributes) > 0 }

// AsString renders the exception as a catalog literal of symbol-keyed
// attributes, e.g. [$module: "elements", $text: "..."].
func (e *Exception) AsString() string {
	if len(e.attributes) == 0 {
		return "[:]"
	}
	var sb strings.Builder
	sb.WriteByte('[')
	for i, a := range e.attributes {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteByte('$')
		sb.WriteString(a.Name)
		sb.WriteString(": ")
		sb.WriteString(a.Value.AsString())
	}
	sb.WriteByte(']')

	return sb.String()
}
