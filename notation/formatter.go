package notation

import (
	"strconv"
	"strings"

	"github.com/balidoc/bali/collections"
	"github.com/balidoc/bali/component"
	"github.com/balidoc/bali/elements"
	"github.com/balidoc/bali/structures"
)

// Option configures the formatter. Use with Format(component, opts...).
type Option func(*Options)

// Options holds the configurable parameters of a formatting pass.
type Options struct {
	// Pretty renders collection items one per line with indentation.
	// The default is a single canonical line.
	Pretty bool

	// Indent is the per-level indentation used under Pretty.
	Indent string
}

// DefaultOptions returns compact single-line formatting.
func DefaultOptions() Options {
	return Options{Indent: "    "}
}

// WithPretty returns an Option that renders collections one item per line.
func WithPretty() Option {
	return func(o *Options) { o.Pretty = true }
}

// WithIndent returns an Option that sets the per-level indentation used
// under Pretty. An empty indent has no effect.
func WithIndent(indent string) Option {
	return func(o *Options) {
		if indent != "" {
			o.Indent = indent
		}
	}
}

// Format renders a component tree back to document notation. The output is
// canonical: Parse(Format(x)) yields a component equal to x under the
// generic comparator. Refined collections with no literal of their own
// (sets, stacks, exceptions) are rendered with the $type parameter that
// selects them on the way back in.
func Format(c component.Component, opts ...Option) string {
	options := DefaultOptions()
	for _, opt := range opts {
		opt(&options)
	}
	f := &formatter{options: options}
	f.formatComponent(c)

	return f.sb.String()
}

// formatter walks a component tree, appending notation to its builder.
type formatter struct {
	sb      strings.Builder
	options Options
	depth   int
}

func (f *formatter) formatComponent(c component.Component) {
	switch value := c.(type) {
	case elements.Angle:
		f.formatAngle(value)
	case *structures.Association:
		f.formatComponent(value.GetKey())
		f.sb.WriteString(": ")
		f.formatComponent(value.GetValue())
	case *structures.Exception:
		f.formatException(value)
	case *collections.Catalog:
		f.formatCatalog(value)
	case *collections.Set:
		f.formatItems(value, setTypeName)
	case *collections.Stack:
		f.formatItems(value, stackTypeName)
	case *collections.List:
		f.formatItems(value, "")
	case *collections.Tree:
		f.formatTree(value)
	default:
		// Elements and ranges carry their own canonical literal.
		f.sb.WriteString(c.AsString())
		f.formatParameters(c.GetParameters(), "")
	}
}

// formatAngle renders an angle, honoring the ($units: $degrees) refinement
// so a degree-denominated document keeps its unit on the way out.
func (f *formatter) formatAngle(angle elements.Angle) {
	parameters := angle.GetParameters()
	if isDegrees(parameters) {
		f.sb.WriteByte('~')
		f.sb.WriteString(strconv.FormatFloat(angle.InDegrees(), 'G', -1, 64))
	} else {
		f.sb.WriteString(angle.AsString())
	}
	f.formatParameters(parameters, "")
}

// formatItems renders an item-sequence collection, appending a $type
// parameter for refined collections that lack one.
func (f *formatter) formatItems(c component.Collection, typeName string) {
	if c.GetSize() == 0 {
		f.sb.WriteString("[ ]")
	} else {
		f.openBracket()
		for it, first := c.GetIterator(), true; it.HasNext(); first = false {
			f.writeSeparator(first)
			f.formatComponent(it.GetNext())
		}
		f.closeBracket()
	}
	f.formatParameters(c.GetParameters(), typeName)
}

// formatCatalog renders the association entries in insertion order.
func (f *formatter) formatCatalog(catalog *collections.Catalog) {
	if catalog.GetSize() == 0 {
		f.sb.WriteString("[:]")
	} else {
		f.openBracket()
		for it, first := catalog.GetIterator(), true; it.HasNext(); first = false {
			f.writeSeparator(first)
			f.formatComponent(it.GetNext())
		}
		f.closeBracket()
	}
	f.formatParameters(catalog.GetParameters(), "")
}

// formatException renders an exception as a catalog literal of symbol-keyed
// attributes carrying the $type refinement that restores it on parsing.
func (f *formatter) formatException(exception *structures.Exception) {
	names := exception.GetNames()
	if len(names) == 0 {
		f.sb.WriteString("[:]")
	} else {
		f.openBracket()
		for i, name := range names {
			f.writeSeparator(i == 0)
			f.sb.WriteByte('$')
			f.sb.WriteString(name)
			f.sb.WriteString(": ")
			f.formatComponent(exception.GetAttribute(name))
		}
		f.closeBracket()
	}
	f.formatParameters(nil, exceptionTypeName)
}

// formatTree renders a tree node as a nested list literal: the node value
// first, then each child in order.
func (f *formatter) formatTree(tree *collections.Tree) {
	f.openBracket()
	first := true
	if value := tree.GetValue(); value != nil {
		f.writeSeparator(first)
		f.formatComponent(value)
		first = false
	}
	for _, child := range tree.GetChildren() {
		f.writeSeparator(first)
		f.formatTree(child)
		first = false
	}
	if first {
		f.sb.WriteString(" ")
	}
	f.closeBracket()
	f.formatParameters(tree.GetParameters(), "")
}

// formatParameters renders the trailing parameter list inline, injecting
// the given $type refinement when the set does not already carry one.
// Parameters stay on one line even under Pretty.
func (f *formatter) formatParameters(parameters *component.Parameters, typeName string) {
	needType := typeName != "" && parameters.GetValue("type") == nil
	if parameters.GetSize() == 0 && !needType {
		return
	}
	f.sb.WriteByte('(')
	first := true
	for _, name := range parameters.GetNames() {
		if !first {
			f.sb.WriteString(", ")
		}
		f.sb.WriteByte('$')
		f.sb.WriteString(name)
		f.sb.WriteString(": ")
		f.formatComponent(parameters.GetValue(name))
		first = false
	}
	if needType {
		if !first {
			f.sb.WriteString(", ")
		}
		f.sb.WriteString("$type: ")
		f.sb.WriteString(typeName)
	}
	f.sb.WriteByte(')')
}

// openBracket starts a non-empty collection literal, entering a pretty
// block when configured.
func (f *formatter) openBracket() {
	f.sb.WriteByte('[')
	f.depth++
}

// writeSeparator writes the separator before an item: an indented newline
// under Pretty, ", " otherwise.
func (f *formatter) writeSeparator(first bool) {
	if f.options.Pretty {
		f.sb.WriteByte('\n')
		f.sb.WriteString(strings.Repeat(f.options.Indent, f.depth))

		return
	}
	if !first {
		f.sb.WriteString(", ")
	}
}

// closeBracket ends a collection literal, closing the pretty block.
func (f *formatter) closeBracket() {
	f.depth--
	if f.options.Pretty {
		f.sb.WriteByte('\n')
		f.sb.WriteString(strings.Repeat(f.options.Indent, f.depth))
	}
	f.sb.WriteByte(']')
}
