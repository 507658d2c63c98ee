// Package collections implements the variable-size aggregate components of
// Bali Document Notation: List, Catalog, Set, Range, Stack and Tree.
//
// All collections are built on the same abstractions from the component
// package: Sequential (size + fresh iterators), Collection (mutation via
// AddItem/AddItems/RemoveAll plus EmptyCopy), and Ordinal (1-based
// positional access with negative wraparound) where positional access makes
// sense. Membership and key lookup go through the comparator package —
// never through identity — so structurally equal components are
// interchangeable everywhere.
//
// Sub-kinds:
//
//   - List    — ordinal, insertion-order preserving, chainable.
//   - Catalog — ordered key→value associations, last-key-wins rebinding.
//   - Set     — comparator-ordered, deduplicated, with the logical
//     operators And, Sans, Or and Xor.
//   - Range   — a compact first..last span of integers, iterated without
//     materializing its items.
//   - Stack   — last-in-first-out with an optional capacity.
//   - Tree    — a hierarchical aggregate with depth-first iteration.
//
// Collections are mutable and assume a single writer; iterators walk a
// snapshot where mutation during iteration would otherwise corrupt the
// cursor, and ordinal misuse (index 0, out-of-range positions) panics —
// positional misuse is a programming error, not recoverable input.
//
// Errors:
//
//	ErrEmptyStack       - RemoveTop/GetTop on an empty stack.
//	ErrStackOverflow    - AddItem beyond the stack's capacity.
//	ErrInvalidRange     - range endpoints out of order.
package collections
