package component

import "fmt"

// NormalizeIndex maps a 1-based ordinal index onto a 0-based slice offset.
// Negative indices count back from the end: -1 is the last item, -size the
// first. Index 0 and any index beyond ±size panic — positional misuse is a
// programming error, not recoverable input.
func NormalizeIndex(index, size int) int {
	switch {
	case index > 0 && index <= size:
		return index - 1
	case index < 0 && -index <= size:
		return size + index
	default:
		panic(fmt.Sprintf("component: index %d out of range for size %d", index, size))
	}
}
