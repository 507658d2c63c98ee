package elements

import (
	"fmt"

	"github.com/Masterminds/semver/v3"

	"github.com/balidoc/bali/component"
)

// Version is an immutable semantic version element, e.g. v1.2.3. It wraps
// a parsed semantic version for validation and precedence, and supports
// deriving the next version at a chosen level. Version is Textual.
type Version struct {
	element
	version *semver.Version
}

// Version levels for NextVersion.
const (
	LevelMajor = 1
	LevelMinor = 2
	LevelPatch = 3
)

// Compile-time capability check.
var _ component.Textual = Version{}

// VersionFromString constructs a Version from semantic-version text, with
// or without the leading v. Partial versions such as v1 or v1.2 are
// completed with zeros. Returns ErrInvalidVersion on malformed text.
func VersionFromString(text string) (Version, error) {
	v, err := semver.NewVersion(text)
	if err != nil {
		return Version{}, fmt.Errorf("%w: %q: %w", ErrInvalidVersion, text, err)
	}

	return Version{version: v}, nil
}

// FirstVersion returns v1.0.0, the first version of anything.
func FirstVersion() Version {
	return Version{version: semver.New(1, 0, 0, "", "")}
}

// WithParameters returns a copy of the version carrying the given
// parameters.
func (v Version) WithParameters(parameters *component.Parameters) Version {
	v.parameters = parameters

	return v
}

// GetType returns component.TypeVersion.
func (v Version) GetType() component.Type { return component.TypeVersion }

// GetMajor returns the major version number.
func (v Version) GetMajor() uint64 { return v.version.Major() }

// GetMinor returns the minor version number.
func (v Version) GetMinor() uint64 { return v.version.Minor() }

// GetPatch returns the patch version number.
func (v Version) GetPatch() uint64 { return v.version.Patch() }

// Precedes reports whether this version precedes the other under semantic
// version ordering (so v1.10.0 follows v1.9.0 even though it sorts earlier
// lexically).
func (v Version) Precedes(other Version) bool {
	return v.version.LessThan(other.version)
}

// NextVersion derives the following version at the given level: LevelMajor
// increments the major number and zeroes the rest, LevelMinor the minor,
// LevelPatch the patch. Any other level is a programming error and panics.
func (v Version) NextVersion(level int) Version {
	var next semver.Version
	switch level {
	case LevelMajor:
		next = v.version.IncMajor()
	case LevelMinor:
		next = v.version.IncMinor()
	case LevelPatch:
		next = v.version.IncPatch()
	default:
		panic(fmt.Sprintf("elements: unknown version level %d", level))
	}

	return Version{version: &next}
}

// IsTextual marks the canonical string form as the comparison key.
func (v Version) IsTextual() {}

// IsSignificant always reports true; every version is meaningful.
func (v Version) IsSignificant() bool { return true }

// AsString renders the canonical literal, e.g. v1.2.3.
func (v Version) AsString() string { return "v" + v.version.String() }
