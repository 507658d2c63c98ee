// Package structures implements the fixed-shape aggregate components of
// Bali Document Notation: the Association key-value pair and the Exception
// error structure.
//
// An Association binds a key (never nil) to a value; it is immutable — a
// catalog that needs to rebind a key replaces the association rather than
// mutating it. Associations are Sequential over their (key, value) pair, so
// the generic comparator orders them by key first and value second with no
// association-specific code.
//
// An Exception is an error represented as a document value: an ordered set
// of named attributes ($module, $procedure, $parameter, $value, $text, and
// anything else the raiser finds useful). It implements both Component and
// error, so a failure can be serialized, compared and pattern-matched like
// any other document value, or handled through errors.Is/As like any other
// Go error.
//
// Errors:
//
//	ErrNilKey   - an association requires a non-nil key.
//	ErrNilValue - an association requires a non-nil value.
package structures
