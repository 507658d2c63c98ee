// Package sorter implements the generic sort/shuffle engine that operates
// on any collection through the component abstractions alone: GetSize,
// GetIterator, RemoveAll and AddItems. No collection carries sorting code
// of its own.
//
// Key operations:
//
//   - SortItems(collection, opts...): merge sort driven by the generic
//     comparator (or one supplied via WithComparator). The merge is stable —
//     items comparing equal keep their original relative order — and costs
//     O(n log n) comparisons.
//   - ShuffleItems(collection): Fisher–Yates shuffle producing a uniform
//     permutation given the uniform random source in the elements package.
//     Ordinal collections are shuffled in place; any other collection is
//     drained, shuffled and reloaded.
//   - RemoveItems(collection, first, last): removes the 1-based index range
//     (negative indices wrap from the end) and returns the removed items in
//     a fresh empty collection of the same concrete type and parameters.
//
// The engine mutates the collection it is handed; callers needing the
// original order must copy first.
package sorter
