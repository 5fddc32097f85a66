package semv

import "errors"

var (
	// ErrInvalidVersion reports text that does not match the full SemVer
	// grammar MAJOR.MINOR.PATCH[-PRERELEASE][+BUILD], or a numeric field
	// that exceeds uint64.
	ErrInvalidVersion = errors.New("invalid semantic version")

	// ErrInvalidPreRelease reports a pre-release string that fails the
	// dot-separated identifier grammar.
	ErrInvalidPreRelease = errors.New("invalid pre-release")

	// ErrInvalidBuild reports build metadata that fails the dot-separated
	// identifier grammar.
	ErrInvalidBuild = errors.New("invalid build metadata")
)
