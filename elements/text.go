package elements

import (
	"fmt"
	"strings"

	"github.com/balidoc/bali/component"
)

// Text is an immutable string element, rendered double-quoted. Text is
// Chainable and Textual.
type Text struct {
	element
	value string
}

// Compile-time capability checks.
var (
	_ component.Chainable = Text{}
	_ component.Textual   = Text{}
)

// TextFromString constructs a Text from any string, including the empty
// string (which is insignificant under boolean coercion).
func TextFromString(value string) Text {
	return Text{value: value}
}

// WithParameters returns a copy of the text carrying the given parameters.
func (t Text) WithParameters(parameters *component.Parameters) Text {
	t.parameters = parameters

	return t
}

// GetType returns component.TypeText.
func (t Text) GetType() component.Type { return component.TypeText }

// GetValue returns the raw string value.
func (t Text) GetValue() string { return t.value }

// GetSize returns the length of the text in bytes.
func (t Text) GetSize() int { return len(t.value) }

// IsTextual marks the canonical string form as the comparison key.
func (t Text) IsTextual() {}

// IsSignificant reports whether the text is non-empty.
func (t Text) IsSignificant() bool { return t.value != "" }

// AsString renders the canonical double-quoted literal with the usual
// backslash escapes.
func (t Text) AsString() string {
	var sb strings.Builder
	sb.WriteByte('"')
	for _, r := range t.value {
		switch r {
		case '"':
			sb.WriteString(`\"`)
		case '\\':
			sb.WriteString(`\\`)
		case '\n':
			sb.WriteString(`\n`)
		case '\r':
			sb.WriteString(`\r`)
		case '\t':
			sb.WriteString(`\t`)
		default:
			sb.WriteRune(r)
		}
	}
	sb.WriteByte('"')

	return sb.String()
}

// Concatenation returns a new Text holding this text followed by the other
// text.
// It panics if other is not a Text.
func (t Text) Concatenation(other component.Component) component.Component {
	o, ok := other.(Text)
	if !ok {
		panic(fmt.Sprintf("elements: Text.Concatenation requires a Text, got %s", other.GetType()))
	}

	return Text{value: t.value + o.value}
}
