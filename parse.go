package semv

import (
	"fmt"
	"strconv"
)

// Parse parses a full SemVer string: MAJOR.MINOR.PATCH[-PRERELEASE][+BUILD].
//
// The match is anchored over the whole input: no leading "v", no surrounding
// whitespace, no X / X.Y shorthand. On a grammar mismatch or when a numeric
// field exceeds uint64, the error wraps ErrInvalidVersion together with the
// input text.
func Parse(s string) (Version, error) {
	m := verRe.FindStringSubmatch(s)
	if m == nil {
		return Version{}, fmt.Errorf("%w: %q", ErrInvalidVersion, s)
	}

	major, err := strconv.ParseUint(m[1], 10, 64)
	if err != nil {
		return Version{}, fmt.Errorf("%w: %q: major: %v", ErrInvalidVersion, s, err)
	}

	minor, err := strconv.ParseUint(m[2], 10, 64)
	if err != nil {
		return Version{}, fmt.Errorf("%w: %q: minor: %v", ErrInvalidVersion, s, err)
	}

	patch, err := strconv.ParseUint(m[3], 10, 64)
	if err != nil {
		return Version{}, fmt.Errorf("%w: %q: patch: %v", ErrInvalidVersion, s, err)
	}

	// The grammar above already constrained pre-release and build, but the
	// constructor re-validates them: New is also reachable directly.
	return New(major, minor, patch, m[4], m[5])
}

// MustParse is Parse that panics on invalid input.
// Intended for constants and tests.
func MustParse(s string) Version {
	v, err := Parse(s)
	if err != nil {
		panic(err)
	}

	return v
}

// IsValid reports whether s matches the full SemVer grammar accepted by
// Parse, without building a Version.
func IsValid(s string) bool {
	return verRe.MatchString(s)
}
