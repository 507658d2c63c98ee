package elements

import (
	"fmt"

	"github.com/balidoc/bali/component"
)

// Binary is an immutable byte-string element, rendered in single quotes as
// base-32 text, e.g. '5KW1M0RRT8'. Binary is Chainable and Textual (the
// base-32 form is the comparison key).
type Binary struct {
	element
	bytes []byte
}

// Compile-time capability checks.
var (
	_ component.Chainable = Binary{}
	_ component.Textual   = Binary{}
)

// BinaryFromBytes constructs a Binary from an existing byte string; the
// empty byte string is legal (and insignificant).
func BinaryFromBytes(payload []byte) Binary {
	return Binary{bytes: append([]byte(nil), payload...)}
}

// BinaryOfSize constructs a Binary holding n random bytes.
// Returns ErrInvalidSize when n is not positive.
func BinaryOfSize(n int) (Binary, error) {
	if n <= 0 {
		return Binary{}, fmt.Errorf("%w: binary of %d bytes", ErrInvalidSize, n)
	}

	return Binary{bytes: RandomBytes(n)}, nil
}

// BinaryFromString constructs a Binary from its base-32 payload text
// (without the quotes). Returns ErrInvalidBinary when the text is not
// base-32.
func BinaryFromString(encoded string) (Binary, error) {
	payload, err := base32Encoding.DecodeString(encoded)
	if err != nil {
		return Binary{}, fmt.Errorf("%w: %q", ErrInvalidBinary, encoded)
	}

	return Binary{bytes: payload}, nil
}

// WithParameters returns a copy of the binary carrying the given parameters.
func (b Binary) WithParameters(parameters *component.Parameters) Binary {
	b.parameters = parameters

	return b
}

// GetType returns component.TypeBinary.
func (b Binary) GetType() component.Type { return component.TypeBinary }

// GetBytes returns a copy of the byte string.
func (b Binary) GetBytes() []byte { return append([]byte(nil), b.bytes...) }

// GetSize returns the number of bytes.
func (b Binary) GetSize() int { return len(b.bytes) }

// IsTextual marks the canonical string form as the comparison key.
func (b Binary) IsTextual() {}

// IsSignificant reports whether the byte string is non-empty.
func (b Binary) IsSignificant() bool { return len(b.bytes) != 0 }

// AsString renders the canonical single-quoted base-32 literal.
func (b Binary) AsString() string {
	return "'" + base32Encoding.EncodeToString(b.bytes) + "'"
}

// Concatenation returns a new Binary holding this byte string followed by
// the other byte string.
// It panics if other is not a Binary.
func (b Binary) Concatenation(other component.Component) component.Component {
	o, ok := other.(Binary)
	if !ok {
		panic(fmt.Sprintf("elements: Binary.Concatenation requires a Binary, got %s", other.GetType()))
	}
	joined := make([]byte, 0, len(b.bytes)+len(o.bytes))
	joined = append(joined, b.bytes...)
	joined = append(joined, o.bytes...)

	return Binary{bytes: joined}
}
