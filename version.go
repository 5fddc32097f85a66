package semv

import (
	"fmt"
	"strconv"
	"strings"
)

// Version is an immutable Semantic Versioning 2.0.0 value.
//
// The zero value renders as "0.0.0". Two Versions are == exactly when all
// five fields match; build metadata participates in == but never in
// precedence (see Compare).
type Version struct {
	preRelease string
	build      string
	major      uint64
	minor      uint64
	patch      uint64
}

// New builds a Version from its five fields.
//
// preRelease and build, when non-empty, must each be one or more dot-joined
// groups of ASCII alphanumerics and hyphen, with no empty group. Failures
// wrap ErrInvalidPreRelease or ErrInvalidBuild together with the offending
// value. Fields are stored as given: no normalization, no case folding.
func New(major, minor, patch uint64, preRelease, build string) (Version, error) {
	if preRelease != "" && !identRe.MatchString(preRelease) {
		return Version{}, fmt.Errorf("%w: %q", ErrInvalidPreRelease, preRelease)
	}

	if build != "" && !identRe.MatchString(build) {
		return Version{}, fmt.Errorf("%w: %q", ErrInvalidBuild, build)
	}

	return Version{
		major:      major,
		minor:      minor,
		patch:      patch,
		preRelease: preRelease,
		build:      build,
	}, nil
}

// Major returns the major field.
func (v Version) Major() uint64 { return v.major }

// Minor returns the minor field.
func (v Version) Minor() uint64 { return v.minor }

// Patch returns the patch field.
func (v Version) Patch() uint64 { return v.patch }

// PreRelease returns the pre-release field without the leading '-',
// empty for a plain release.
func (v Version) PreRelease() string { return v.preRelease }

// Build returns the build metadata without the leading '+',
// empty when absent.
func (v Version) Build() string { return v.build }

// String renders the canonical form
// MAJOR.MINOR.PATCH[-PRERELEASE][+BUILD].
// For every valid v, Parse(v.String()) reproduces v in all five fields.
func (v Version) String() string {
	var b strings.Builder
	b.Grow(16 + len(v.preRelease) + len(v.build))

	b.WriteString(strconv.FormatUint(v.major, 10))
	b.WriteByte('.')
	b.WriteString(strconv.FormatUint(v.minor, 10))
	b.WriteByte('.')
	b.WriteString(strconv.FormatUint(v.patch, 10))

	if v.preRelease != "" {
		b.WriteByte('-')
		b.WriteString(v.preRelease)
	}

	if v.build != "" {
		b.WriteByte('+')
		b.WriteString(v.build)
	}

	return b.String()
}
