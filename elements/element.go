// Package elements: shared element plumbing — sentinel errors, the embedded
// parameter carrier, and canonical real-number formatting.
package elements

import (
	"errors"
	"math"
	"strconv"
	"strings"

	"github.com/balidoc/bali/component"
)

// Sentinel errors for element construction.
var (
	// ErrNotFinite indicates a NaN where a finite real value was required.
	ErrNotFinite = errors.New("elements: value is not finite")

	// ErrProbabilityRange indicates a probability outside [0, 1].
	ErrProbabilityRange = errors.New("elements: probability outside [0, 1]")

	// ErrEmptyName indicates a name constructed with no parts, or with an
	// empty or malformed part.
	ErrEmptyName = errors.New("elements: name requires non-empty parts")

	// ErrInvalidSymbol indicates an empty or non-identifier symbol.
	ErrInvalidSymbol = errors.New("elements: symbol is not an identifier")

	// ErrInvalidTag indicates a tag payload that is not base-32 text.
	ErrInvalidTag = errors.New("elements: tag is not base-32 text")

	// ErrInvalidBinary indicates a binary payload that is not base-32 text.
	ErrInvalidBinary = errors.New("elements: binary is not base-32 text")

	// ErrInvalidVersion indicates malformed semantic-version text.
	ErrInvalidVersion = errors.New("elements: invalid version")

	// ErrInvalidReference indicates a malformed or relative URI.
	ErrInvalidReference = errors.New("elements: invalid reference URI")

	// ErrInvalidSize indicates a non-positive size for a random payload.
	ErrInvalidSize = errors.New("elements: size must be positive")
)

// element carries the optional construction-time parameter set shared by
// every element variant.
type element struct {
	parameters *component.Parameters
}

// GetParameters returns the parameter set attached at construction, or nil.
func (e element) GetParameters() *component.Parameters {
	return e.parameters
}

// formatReal renders a real value in its canonical literal form. The named
// constants e, pi and phi (and their negations) render by name so that a
// parsed constant round-trips textually; non-finite values render as the
// undefined and infinity keywords.
func formatReal(v float64) string {
	switch {
	case math.IsNaN(v):
		return "undefined"
	case math.IsInf(v, 1):
		return "infinity"
	case math.IsInf(v, -1):
		return "-infinity"
	case v == math.E:
		return "e"
	case v == -math.E:
		return "-e"
	case v == math.Pi:
		return "pi"
	case v == -math.Pi:
		return "-pi"
	case v == math.Phi:
		return "phi"
	case v == -math.Phi:
		return "-phi"
	default:
		return strconv.FormatFloat(v, 'G', -1, 64)
	}
}

// isIdentifier reports whether s is a letter followed by letters or digits.
func isIdentifier(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		alpha := (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
		digit := r >= '0' && r <= '9'
		if i == 0 && !alpha {
			return false
		}
		if !alpha && !digit && r != '-' {
			return false
		}
	}
	if strings.HasSuffix(s, "-") {
		return false
	}

	return true
}
