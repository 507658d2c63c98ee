package elements

import (
	"fmt"
	"net/url"

	"github.com/balidoc/bali/component"
)

// Reference is an immutable absolute URI element, rendered in angle
// brackets, e.g. <https://example.com/documents/42>. Reference is Textual.
type Reference struct {
	element
	uri *url.URL
}

// Compile-time capability check.
var _ component.Textual = Reference{}

// ReferenceFromString constructs a Reference from URI text (without the
// angle brackets). The URI must be absolute; otherwise ErrInvalidReference
// is returned.
func ReferenceFromString(text string) (Reference, error) {
	uri, err := url.Parse(text)
	if err != nil || !uri.IsAbs() {
		return Reference{}, fmt.Errorf("%w: %q", ErrInvalidReference, text)
	}

	return Reference{uri: uri}, nil
}

// WithParameters returns a copy of the reference carrying the given
// parameters.
func (r Reference) WithParameters(parameters *component.Parameters) Reference {
	r.parameters = parameters

	return r
}

// GetType returns component.TypeReference.
func (r Reference) GetType() component.Type { return component.TypeReference }

// GetURI returns the URI text.
func (r Reference) GetURI() string { return r.uri.String() }

// GetScheme returns the URI scheme, e.g. https.
func (r Reference) GetScheme() string { return r.uri.Scheme }

// IsTextual marks the canonical string form as the comparison key.
func (r Reference) IsTextual() {}

// IsSignificant always reports true; a reference cannot be empty.
func (r Reference) IsSignificant() bool { return true }

// AsString renders the canonical literal, e.g. <https://example.com/a>.
func (r Reference) AsString() string { return "<" + r.uri.String() + ">" }
