package semv

import "regexp"

var (
	// Full SemVer: MAJOR.MINOR.PATCH with optional -PRERELEASE and +BUILD,
	// anchored over the whole input. Digit runs are unrestricted, so leading
	// zeros pass the surface grammar.
	verRe = regexp.MustCompile(`^(\d+)\.(\d+)\.(\d+)(?:-([0-9A-Za-z-]+(?:\.[0-9A-Za-z-]+)*))?(?:\+([0-9A-Za-z-]+(?:\.[0-9A-Za-z-]+)*))?$`)

	// Dot-separated identifier groups for pre-release and build fields:
	// one or more groups of ASCII alphanumerics and hyphen, no empty group.
	identRe = regexp.MustCompile(`^([0-9A-Za-z-]+\.)*[0-9A-Za-z-]+$`)
)
