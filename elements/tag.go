package elements

import (
	"encoding/base32"
	"fmt"

	"github.com/balidoc/bali/component"
)

// base32Encoding is the 32-character alphabet shared by tags and binaries.
// The vowels E, I, O and U are excluded so no English word can appear in an
// encoded payload.
var base32Encoding = base32.NewEncoding("0123456789ABCDFGHJKLMNPQRSTVWXYZ").
	WithPadding(base32.NoPadding)

// Tag is an immutable, unique identifier element backed by a random byte
// payload, rendered in base-32, e.g. #A7D4KPQ2ZYXW. Tag is Textual.
type Tag struct {
	element
	bytes []byte
}

// Compile-time capability check.
var _ component.Textual = Tag{}

// TagOfSize constructs a fresh random Tag with a payload of n bytes.
// Returns ErrInvalidSize when n is not positive.
func TagOfSize(n int) (Tag, error) {
	if n <= 0 {
		return Tag{}, fmt.Errorf("%w: tag of %d bytes", ErrInvalidSize, n)
	}

	return Tag{bytes: RandomBytes(n)}, nil
}

// TagFromBytes constructs a Tag from an existing payload.
// Returns ErrInvalidSize for an empty payload.
func TagFromBytes(payload []byte) (Tag, error) {
	if len(payload) == 0 {
		return Tag{}, fmt.Errorf("%w: empty tag", ErrInvalidSize)
	}

	return Tag{bytes: append([]byte(nil), payload...)}, nil
}

// TagFromString constructs a Tag from its base-32 payload text (without the
// leading #). Returns ErrInvalidTag when the text is not base-32.
func TagFromString(encoded string) (Tag, error) {
	payload, err := base32Encoding.DecodeString(encoded)
	if err != nil || len(payload) == 0 {
		return Tag{}, fmt.Errorf("%w: %q", ErrInvalidTag, encoded)
	}

	return Tag{bytes: payload}, nil
}

// WithParameters returns a copy of the tag carrying the given parameters.
func (t Tag) WithParameters(parameters *component.Parameters) Tag {
	t.parameters = parameters

	return t
}

// GetType returns component.TypeTag.
func (t Tag) GetType() component.Type { return component.TypeTag }

// GetBytes returns a copy of the payload.
func (t Tag) GetBytes() []byte { return append([]byte(nil), t.bytes...) }

// IsTextual marks the canonical string form as the comparison key.
func (t Tag) IsTextual() {}

// IsSignificant always reports true; a tag cannot be empty.
func (t Tag) IsSignificant() bool { return true }

// AsString renders the canonical literal, e.g. #A7D4KPQ2ZYXW.
func (t Tag) AsString() string { return "#" + base32Encoding.EncodeToString(t.bytes) }
