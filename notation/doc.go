// Package notation converts between Bali Document Notation source text and
// component trees: a hand-written lexer and recursive-descent recognizer on
// the way in, and a canonical formatter on the way out.
//
// The recognizer maps each grammar alternative onto exactly one component
// constructor call, preserving document order for collection items and
// applying last-key-wins when a catalog literal repeats a key. Trailing
// parenthesized parameter lists are parsed as a Parameters catalog and
// attached after the component's value has been constructed and normalized,
// so parameterized and default construction share one validation path. The
// one exception is an angle's $units parameter, which selects the degree
// constructor before the value is built.
//
// Collections with no literal of their own select their concrete type
// through a $type parameter: [1, 2]($type: /bali/collections/Set) parses as
// a Set, /bali/collections/Stack as a Stack, and a catalog literal carrying
// ($type: /bali/structures/Exception) parses as an Exception.
//
// A malformed document surfaces as a *SyntaxError carrying the offending
// line and column and the set of tokens that would have been accepted;
// the recognizer never swallows or rewrites it.
//
// Formatting is the structural inverse: Format renders any component tree
// back to canonical text — inline by default, one item per line with
// indentation under WithPretty — and Parse(Format(x)) is equal to x under
// the generic comparator for every well-formed component.
package notation
