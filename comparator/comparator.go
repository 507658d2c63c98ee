package comparator

import (
	"math"
	"strconv"
	"sync"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/balidoc/bali/component"
)

// collation performs locale-aware lexicographic comparison under the
// undetermined locale. A collator carries internal buffers, so access is
// serialized; comparison is a bounded in-memory computation and the rest of
// the system is single-threaded by design.
var (
	collation   = collate.New(language.Und)
	collationMu sync.Mutex
)

func collateStrings(first, second string) int {
	collationMu.Lock()
	defer collationMu.Unlock()

	return collation.CompareString(first, second)
}

// Compare returns -1, 0 or 1 ordering first relative to second. It induces
// a total order over all well-formed components and never fails; see the
// package documentation for the dispatch priority.
func Compare(first, second component.Component) int {
	// 1. Absence: nil sorts before any present component.
	if first == nil || second == nil {
		switch {
		case first == nil && second == nil:
			return 0
		case first == nil:
			return -1
		default:
			return 1
		}
	}

	// 2. Numeric: both components project onto the real line.
	if f, ok := first.(component.Continuous); ok {
		if s, ok := second.(component.Continuous); ok {
			return compareReals(f.AsReal(), s.AsReal())
		}
	}

	// 3. Lexical: both canonical string forms are comparison keys.
	if _, ok := first.(component.Textual); ok {
		if _, ok := second.(component.Textual); ok {
			return collateStrings(first.AsString(), second.AsString())
		}
	}

	// 4. Structural: recursive pairwise comparison of sequences.
	if f, ok := first.(component.Sequential); ok {
		if s, ok := second.(component.Sequential); ok {
			return compareSequences(f, s)
		}
	}

	// 5. Fallback: canonical string renderings.
	return collateStrings(first.AsString(), second.AsString())
}

// Equal reports whether the two components compare as equal.
func Equal(first, second component.Component) bool {
	return Compare(first, second) == 0
}

// compareReals orders two real projections. Non-finite values compare by
// their stringified forms first so that undefined equals undefined and
// infinity equals infinity.
func compareReals(first, second float64) int {
	if math.IsNaN(first) || math.IsNaN(second) ||
		math.IsInf(first, 0) || math.IsInf(second, 0) {
		f := strconv.FormatFloat(first, 'G', -1, 64)
		s := strconv.FormatFloat(second, 'G', -1, 64)
		if f == s {
			return 0
		}
		if math.IsNaN(first) != math.IsNaN(second) {
			// Undefined sorts before every defined value.
			if math.IsNaN(first) {
				return -1
			}

			return 1
		}
		// One or both infinite with differing signs/values.
		switch {
		case first < second:
			return -1
		case first > second:
			return 1
		default:
			return collateStrings(f, s)
		}
	}

	switch {
	case first < second:
		return -1
	case first > second:
		return 1
	default:
		return 0
	}
}

// compareSequences walks both sequences in iteration order; the first
// non-zero pairwise result wins, and a genuine prefix sorts before its
// extension.
func compareSequences(first, second component.Sequential) int {
	f := first.GetIterator()
	s := second.GetIterator()
	for f.HasNext() && s.HasNext() {
		if result := Compare(f.GetNext(), s.GetNext()); result != 0 {
			return result
		}
	}
	switch {
	case s.HasNext():
		return -1 // first is a prefix of second
	case f.HasNext():
		return 1 // second is a prefix of first
	default:
		return 0
	}
}
