package elements

import (
	"fmt"

	"github.com/balidoc/bali/component"
)

// Symbol is an immutable identifier element, e.g. $units. Symbol is Textual.
type Symbol struct {
	element
	value string
}

// Compile-time capability check.
var _ component.Textual = Symbol{}

// SymbolFromString constructs a Symbol from its identifier (without the
// leading $). Returns ErrInvalidSymbol when the text is not an identifier.
func SymbolFromString(identifier string) (Symbol, error) {
	if !isIdentifier(identifier) {
		return Symbol{}, fmt.Errorf("%w: %q", ErrInvalidSymbol, identifier)
	}

	return Symbol{value: identifier}, nil
}

// WithParameters returns a copy of the symbol carrying the given parameters.
func (s Symbol) WithParameters(parameters *component.Parameters) Symbol {
	s.parameters = parameters

	return s
}

// GetType returns component.TypeSymbol.
func (s Symbol) GetType() component.Type { return component.TypeSymbol }

// GetIdentifier returns the identifier without the leading $.
func (s Symbol) GetIdentifier() string { return s.value }

// IsTextual marks the canonical string form as the comparison key.
func (s Symbol) IsTextual() {}

// IsSignificant always reports true; a symbol cannot be empty.
func (s Symbol) IsSignificant() bool { return true }

// AsString renders the canonical literal, e.g. $units.
func (s Symbol) AsString() string { return "$" + s.value }
