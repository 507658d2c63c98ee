// Package elements implements the scalar element types of Bali Document
// Notation: Angle, Number, Percent, Probability, Duration, Moment, Name,
// Tag, Symbol, Text, Binary, Version and Reference.
//
// Every element is an immutable value type: its value (and optional
// parameter set) is fixed by its constructor, which validates and normalizes
// the input before the value comes into existence. Two elements of the same
// type holding equal values are indistinguishable — comparison is always by
// value, never by identity — so elements may be aliased freely across any
// number of containers.
//
// Numeric elements share a precision protocol (precision.go):
//
//   - Pole-locking: magnitudes within one ULP-scale epsilon of zero collapse
//     to exact zero, and magnitudes beyond the symmetric large threshold
//     collapse to infinity, so trigonometric round-trips reproduce the exact
//     mathematically significant values.
//   - Angle range normalization into (-π, π].
//   - Three-state arithmetic on numbers: Undefined, Infinite and Zero are
//     detected before any real computation and propagate by IEEE-754-like
//     absorption rules.
//
// Errors:
//
//	ErrNotFinite          - a finite real value was required.
//	ErrProbabilityRange   - probability outside the closed interval [0, 1].
//	ErrEmptyName          - a name needs at least one non-empty part.
//	ErrInvalidSymbol      - symbol is empty or not an identifier.
//	ErrInvalidTag         - tag payload is not base-32 text.
//	ErrInvalidBinary      - binary payload is not base-32 text.
//	ErrInvalidVersion     - version string is not semantic-version text.
//	ErrInvalidReference   - reference is not an absolute URI.
//	ErrInvalidSize        - a positive size was required.
package elements
