// Package comparator implements the single generic comparison algorithm
// used for equality testing, ordering, sorting and collection membership
// across the entire component model. No component type defines its own
// incompatible notion of equality; this package is the one authority.
//
// Compare(first, second) returns -1, 0 or 1 and never fails — the final
// fallback compares canonical string renderings, which every component can
// produce. Within each comparison domain (numeric, lexical, structural) the
// result is a total order: antisymmetric and transitive. Across domains the
// string fallback decides, and mixing undefined numbers with textual
// components can order non-transitively; collections that rely on ordering
// hold components of one domain.
//
// Dispatch priority (first match wins):
//
//  1. Absence — a nil component sorts before any present component; two
//     nil components are equal.
//  2. Numeric — both components project onto the real line (Continuous).
//     NaN and infinities compare by their canonical string forms first, so
//     two undefined numbers are equal and infinity equals infinity; raw
//     IEEE subtraction between NaNs is not a valid ordering.
//  3. Lexical — both components are Textual: collation of their canonical
//     string forms under the undetermined locale.
//  4. Structural — both components are Sequential: pairwise comparison in
//     iteration order; the first non-zero pairwise result wins, and when
//     one sequence is a genuine prefix of the other the shorter sorts
//     first. This recursion is what lets arbitrarily nested catalogs,
//     lists and sets compare with no type-specific code.
//  5. Fallback — collation of the canonical string renderings.
package comparator
