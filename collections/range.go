package collections

import (
	"errors"
	"strconv"

	"github.com/balidoc/bali/component"
	"github.com/balidoc/bali/elements"
)

// ErrInvalidRange indicates range endpoints out of order.
var ErrInvalidRange = errors.New("collections: range endpoints out of order")

// Range is a compact representation of the contiguous integer span
// first..last. It iterates and indexes without materializing its items,
// producing Number components on demand. The extent is immutable.
//
// Literal form: [first..last], e.g. [1..5].
type Range struct {
	parameters *component.Parameters
	first      int64
	last       int64
}

// Compile-time capability check: a range is sequential but deliberately not
// a mutable Collection.
var _ component.Sequential = (*Range)(nil)

// RangeFromEndpoints constructs the inclusive span first..last.
// Returns ErrInvalidRange when first exceeds last.
func RangeFromEndpoints(first, last int64) (*Range, error) {
	if first > last {
		return nil, ErrInvalidRange
	}

	return &Range{first: first, last: last}, nil
}

// RangeWithParameters constructs the span carrying a parameter set.
func RangeWithParameters(first, last int64, parameters *component.Parameters) (*Range, error) {
	r, err := RangeFromEndpoints(first, last)
	if err != nil {
		return nil, err
	}
	r.parameters = parameters

	return r, nil
}

// GetType returns component.TypeRange.
func (r *Range) GetType() component.Type { return component.TypeRange }

// GetParameters returns the parameter set attached at construction, or nil.
func (r *Range) GetParameters() *component.Parameters { return r.parameters }

// GetFirst returns the first value of the span.
func (r *Range) GetFirst() int64 { return r.first }

// GetLast returns the last value of the span.
func (r *Range) GetLast() int64 { return r.last }

// GetSize returns the number of values in the span.
func (r *Range) GetSize() int { return int(r.last - r.first + 1) }

// GetItem returns the value at the 1-based index as a Number; negative
// indices count back from the end.
func (r *Range) GetItem(index int) component.Component {
	offset := component.NormalizeIndex(index, r.GetSize())

	return elements.NumberFromReal(float64(r.first + int64(offset)))
}

// GetIterator returns a fresh cursor that computes each value on demand.
func (r *Range) GetIterator() component.Iterator {
	return &rangeIterator{spanned: r}
}

// IsSignificant always reports true; a range spans at least one value.
func (r *Range) IsSignificant() bool { return true }

// AsString renders the canonical literal, e.g. [1..5].
func (r *Range) AsString() string {
	return "[" + strconv.FormatInt(r.first, 10) + ".." + strconv.FormatInt(r.last, 10) + "]"
}

// rangeIterator is a lazy cursor over a span; slot n sits before the
// (n+1)th value.
type rangeIterator struct {
	spanned *Range
	slot    int
}

func (it *rangeIterator) ToStart() { it.slot = 0 }

func (it *rangeIterator) ToEnd() { it.slot = it.spanned.GetSize() }

func (it *rangeIterator) ToSlot(slot int) {
	size := it.spanned.GetSize()
	if slot < 0 {
		slot = size + slot
	}
	if slot < 0 || slot > size {
		panic("collections: iterator slot out of range")
	}
	it.slot = slot
}

func (it *rangeIterator) HasNext() bool { return it.slot < it.spanned.GetSize() }

func (it *rangeIterator) HasPrevious() bool { return it.slot > 0 }

func (it *rangeIterator) GetNext() component.Component {
	if !it.HasNext() {
		panic("collections: iterator has no next item")
	}
	value := it.spanned.first + int64(it.slot)
	it.slot++

	return elements.NumberFromReal(float64(value))
}

func (it *rangeIterator) GetPrevious() component.Component {
	if !it.HasPrevious() {
		panic("collections: iterator has no previous item")
	}
	it.slot--

	return elements.NumberFromReal(float64(it.spanned.first + int64(it.slot)))
}
