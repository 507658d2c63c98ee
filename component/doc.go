// Package component defines the root abstractions of Bali Document Notation:
// the closed Type enumeration, the Component interface that every value in
// the system implements, the capability interfaces a concrete type may opt
// into, the Iterator cursor contract, and the Parameters refinement catalog.
//
// The type model is deliberately closed: every parseable value is exactly one
// of the Type variants, and its capability set is fixed by its concrete Go
// type. Capabilities are ordinary Go interfaces, so "does this value support
// concatenation?" is a compile-time question where the concrete type is
// known, and a type assertion where it is not.
//
// Capabilities:
//
//   - Sequential — the value owns an ordered sequence of sub-components and
//     can produce fresh, independent Iterator cursors over it.
//   - Scalable   — the value forms an additive group: Inverse, Sum,
//     Difference, Scaled.
//   - Numerical  — superset of Scalable with full field arithmetic:
//     Reciprocal, Conjugate, Factorial, Product, Quotient, Remainder,
//     Exponential, Logarithm.
//   - Chainable  — two values concatenate into a new value of the same type.
//   - Continuous — the value projects onto the real line (comparison key).
//   - Textual    — the value's canonical string form is its comparison key.
//
// Mutability: elements, associations and parameters are immutable after
// construction and safe to alias freely. Collections are mutable and assume
// a single writer; mutating a collection while one of its iterators is live
// is unsupported.
package component
