package elements

import (
	"fmt"
	"strings"

	"github.com/balidoc/bali/component"
)

// Name is an immutable hierarchical name made of one or more identifier
// parts, e.g. /bali/collections/Set. A name can never be empty, so it is
// always significant. Name is Chainable and Textual.
type Name struct {
	element
	parts []string
}

// Compile-time capability checks.
var (
	_ component.Chainable = Name{}
	_ component.Textual   = Name{}
)

// NameFromParts constructs a Name from its parts. At least one part is
// required and every part must be an identifier; otherwise ErrEmptyName is
// returned.
func NameFromParts(parts []string) (Name, error) {
	if len(parts) == 0 {
		return Name{}, ErrEmptyName
	}
	for _, part := range parts {
		if !isIdentifier(part) && !isVersionPart(part) {
			return Name{}, fmt.Errorf("%w: part %q", ErrEmptyName, part)
		}
	}

	return Name{parts: append([]string(nil), parts...)}, nil
}

// isVersionPart accepts the version suffix parts names may carry, e.g. the
// v1 in /bali/collections/Set/v1.
func isVersionPart(part string) bool {
	if len(part) < 2 || part[0] != 'v' {
		return false
	}
	for _, r := range part[1:] {
		if (r < '0' || r > '9') && r != '.' {
			return false
		}
	}

	return true
}

// WithParameters returns a copy of the name carrying the given parameters.
func (n Name) WithParameters(parameters *component.Parameters) Name {
	n.parameters = parameters

	return n
}

// GetType returns component.TypeName.
func (n Name) GetType() component.Type { return component.TypeName }

// GetParts returns a copy of the name's parts.
func (n Name) GetParts() []string { return append([]string(nil), n.parts...) }

// IsTextual marks the canonical string form as the comparison key.
func (n Name) IsTextual() {}

// IsSignificant always reports true; a name cannot be empty.
func (n Name) IsSignificant() bool { return true }

// AsString renders the canonical literal, e.g. /bali/collections/Set.
func (n Name) AsString() string { return "/" + strings.Join(n.parts, "/") }

// Concatenation returns a new Name holding this name's parts followed by
// the other name's parts.
// It panics if other is not a Name.
func (n Name) Concatenation(other component.Component) component.Component {
	o, ok := other.(Name)
	if !ok {
		panic(fmt.Sprintf("elements: Name.Concatenation requires a Name, got %s", other.GetType()))
	}
	parts := make([]string, 0, len(n.parts)+len(o.parts))
	parts = append(parts, n.parts...)
	parts = append(parts, o.parts...)

	return Name{parts: parts}
}
