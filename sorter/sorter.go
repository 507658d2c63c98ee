package sorter

import (
	"github.com/balidoc/bali/comparator"
	"github.com/balidoc/bali/component"
	"github.com/balidoc/bali/elements"
)

// CompareFunc orders two components; it must induce a total order.
type CompareFunc func(first, second component.Component) int

// Option configures the sort engine. Use with SortItems(collection, opts...).
type Option func(*Options)

// Options holds the configurable parameters of a sort.
type Options struct {
	// Compare orders the items; it defaults to the generic comparator.
	Compare CompareFunc
}

// DefaultOptions returns the generic comparator as the ordering.
func DefaultOptions() Options {
	return Options{Compare: comparator.Compare}
}

// WithComparator returns an Option that installs a custom ordering.
// Passing nil has no effect (the generic comparator is retained).
func WithComparator(compare CompareFunc) Option {
	return func(o *Options) {
		if compare != nil {
			o.Compare = compare
		}
	}
}

// SortItems sorts the collection in place using a stable merge sort: the
// collection is drained into a linear sequence, recursively split at the
// midpoint, merged with the comparator, and reloaded via RemoveAll and
// AddItem. Items comparing equal keep their original relative order.
func SortItems(collection component.Collection, opts ...Option) {
	// 1. Apply options.
	options := DefaultOptions()
	for _, opt := range opts {
		opt(&options)
	}

	// 2. Trivial sizes are already sorted.
	if collection.GetSize() < 2 {
		return
	}

	// 3. Drain, sort, reload.
	items := drain(collection)
	items = mergeSort(items, options.Compare)
	reload(collection, items)
}

// ShuffleItems permutes the collection uniformly at random using the
// Fisher–Yates shuffle. Ordinal collections are shuffled in place through
// SetItem; any other collection is drained, shuffled and reloaded.
func ShuffleItems(collection component.Collection) {
	size := collection.GetSize()
	if size < 2 {
		return
	}

	if ordinal, ok := collection.(component.Ordinal); ok {
		// In-place: walk down from the last position, swapping each item
		// with one at a uniformly random position at or below it.
		for index := size; index >= 2; index-- {
			random := elements.RandomIndex(index)
			if random == index {
				continue
			}
			item := ordinal.SetItem(random, ordinal.GetItem(index))
			ordinal.SetItem(index, item)
		}

		return
	}

	items := drain(collection)
	for index := size; index >= 2; index-- {
		random := elements.RandomIndex(index)
		items[index-1], items[random-1] = items[random-1], items[index-1]
	}
	reload(collection, items)
}

// RemoveItems removes the items in the 1-based index range [first..last]
// from the collection, returning them in a fresh empty collection of the
// same concrete type and parameters. Negative indices count back from the
// end. An empty range (after normalization, first beyond last) removes
// nothing.
func RemoveItems(collection component.Ordinal, first, last int) component.Collection {
	removed := collection.EmptyCopy()
	size := collection.GetSize()
	if size == 0 {
		return removed
	}

	// Normalize both endpoints onto 1-based offsets.
	first = component.NormalizeIndex(first, size) + 1
	last = component.NormalizeIndex(last, size) + 1

	// Remove from the first index repeatedly; the range closes up as items
	// leave the collection.
	for index := first; index <= last; index++ {
		removed.AddItem(collection.RemoveItem(first))
	}

	return removed
}

// drain empties the collection into a linear sequence in iteration order.
func drain(collection component.Collection) []component.Component {
	items := make([]component.Component, 0, collection.GetSize())
	for it := collection.GetIterator(); it.HasNext(); {
		items = append(items, it.GetNext())
	}
	collection.RemoveAll()

	return items
}

// reload feeds the sequence back into the emptied collection.
func reload(collection component.Collection, items []component.Component) {
	for _, item := range items {
		collection.AddItem(item)
	}
}

// mergeSort recursively splits at the midpoint and merges the sorted
// halves.
func mergeSort(items []component.Component, compare CompareFunc) []component.Component {
	if len(items) < 2 {
		return items
	}
	middle := len(items) / 2
	left := mergeSort(items[:middle], compare)
	right := mergeSort(items[middle:], compare)

	return merge(left, right, compare)
}

// merge combines two sorted runs, taking from the left run on ties so the
// sort is stable.
func merge(left, right []component.Component, compare CompareFunc) []component.Component {
	merged := make([]component.Component, 0, len(left)+len(right))
	l, r := 0, 0
	for l < len(left) && r < len(right) {
		if compare(left[l], right[r]) <= 0 {
			merged = append(merged, left[l])
			l++
		} else {
			merged = append(merged, right[r])
			r++
		}
	}
	merged = append(merged, left[l:]...)
	merged = append(merged, right[r:]...)

	return merged
}
