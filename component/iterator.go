// Package component: the concrete snapshot iterator shared by every
// Sequential implementation.
package component

// NewIterator returns an Iterator over the given items, positioned in the
// slot before the first item. The iterator walks the slice it is given;
// callers that mutate their backing storage during iteration must pass a
// snapshot copy instead.
func NewIterator(items []Component) Iterator {
	return &sliceIterator{items: items}
}

// sliceIterator is a bidirectional cursor over a slice of components.
// The slot ranges over [0..len(items)]; slot n sits between item n and
// item n+1.
type sliceIterator struct {
	items []Component
	slot  int
}

func (it *sliceIterator) ToStart() { it.slot = 0 }

func (it *sliceIterator) ToEnd() { it.slot = len(it.items) }

func (it *sliceIterator) ToSlot(slot int) {
	size := len(it.items)
	if slot < 0 {
		slot = size + slot
	}
	if slot < 0 || slot > size {
		panic("component: iterator slot out of range")
	}
	it.slot = slot
}

func (it *sliceIterator) HasNext() bool { return it.slot < len(it.items) }

func (it *sliceIterator) HasPrevious() bool { return it.slot > 0 }

func (it *sliceIterator) GetNext() Component {
	if !it.HasNext() {
		panic("component: iterator has no next item")
	}
	item := it.items[it.slot]
	it.slot++

	return item
}

func (it *sliceIterator) GetPrevious() Component {
	if !it.HasPrevious() {
		panic("component: iterator has no previous item")
	}
	it.slot--

	return it.items[it.slot]
}
