// Package elements: the numeric precision protocol shared by every numeric
// element — pole-locking, angle range reduction, and uniform random sources.
package elements

import (
	"crypto/rand"
	"encoding/binary"
	"math"
)

const (
	// zeroEpsilon is the absolute magnitude below which a value locks to
	// exact zero. It is sin(pi) as computed in float64 — the residue a
	// trigonometric round-trip leaves at a rotation pole.
	zeroEpsilon = 6.123233995736766e-16

	// infinityThreshold is the symmetric large magnitude beyond which a
	// value locks to infinity (1 / zeroEpsilon).
	infinityThreshold = 1.633123935319537e16
)

// lockMagnitude snaps values near the rotation poles to their exact
// mathematical values: magnitudes below zeroEpsilon collapse to 0 and
// magnitudes at or beyond infinityThreshold collapse to ±Inf. NaN passes
// through.
func lockMagnitude(v float64) float64 {
	switch {
	case math.Abs(v) < zeroEpsilon:
		return 0
	case v >= infinityThreshold:
		return math.Inf(1)
	case v <= -infinityThreshold:
		return math.Inf(-1)
	default:
		return v
	}
}

// normalizeRadians reduces v into the half-open interval (-pi, pi]. Values
// landing exactly on -pi are rewritten to pi, and -0 normalizes to +0.
func normalizeRadians(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return v
	}
	v = math.Mod(v, 2*math.Pi)
	switch {
	case v > math.Pi:
		v -= 2 * math.Pi
	case v <= -math.Pi:
		v += 2 * math.Pi
	}
	// Mod can leave the boundary residue; lock it to the exact pole.
	if locked := lockMagnitude(v); locked == 0 {
		v = 0 // also rewrites -0 to +0
	}

	return v
}

// randomUint64 draws 8 bytes from the system entropy source.
// crypto/rand.Read never fails on supported platforms; a failure here means
// the environment is unusable, so it panics.
func randomUint64() uint64 {
	var buf [8]byte
	if _, err := rand.Read(buf[:]); err != nil {
		panic("elements: entropy source unavailable: " + err.Error())
	}

	return binary.BigEndian.Uint64(buf[:])
}

// RandomIndex returns a uniformly distributed ordinal index in [1..size].
// It panics if size is not positive — the shuffle contract depends on
// uniformity over a non-empty range.
func RandomIndex(size int) int {
	if size <= 0 {
		panic("elements: random index requires a positive size")
	}
	// Rejection sampling removes modulo bias.
	limit := math.MaxUint64 - math.MaxUint64%uint64(size)
	n := randomUint64()
	for n >= limit {
		n = randomUint64()
	}

	return int(n%uint64(size)) + 1
}

// RandomProbability returns a uniformly distributed Probability in [0, 1).
func RandomProbability() Probability {
	v := float64(randomUint64()>>11) / (1 << 53)
	p, _ := ProbabilityFromReal(v)

	return p
}

// CoinToss performs a weighted coin toss: it returns true with the given
// probability.
func CoinToss(probability Probability) bool {
	return RandomProbability().AsReal() < probability.AsReal()
}

// RandomBytes fills and returns a fresh buffer of n random bytes.
func RandomBytes(n int) []byte {
	buf := make([]byte, n)
	if _, err := rand.Read(buf); err != nil {
		panic("elements: entropy source unavailable: " + err.Error())
	}

	return buf
}
