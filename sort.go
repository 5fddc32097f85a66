package semv

import (
	"sort"
	"strings"
)

// Sort returns a new slice with in ordered ascending by SemVer precedence.
// The input is not mutated. Versions of equal precedence (build-only
// differences) keep no guaranteed relative order.
func Sort(in []Version) []Version {
	return SortBy(in, SortAsc)
}

// SortBy is Sort with an explicit direction.
// SortNone returns a copy in the original order.
func SortBy(in []Version, mode SortMode) []Version {
	out := append([]Version(nil), in...)
	if mode == SortNone || len(out) < 2 {
		return out
	}

	sort.Slice(out, func(i, j int) bool {
		cmp := out[i].Compare(out[j])
		if mode == SortAsc {
			return cmp < 0
		}
		return cmp > 0 // SortDesc
	})

	return out
}

// Max returns the highest-precedence version in in.
// ok is false for an empty input.
func Max(in []Version) (v Version, ok bool) {
	if len(in) == 0 {
		return Version{}, false
	}

	best := in[0]
	for _, x := range in[1:] {
		if x.Compare(best) > 0 {
			best = x
		}
	}

	return best, true
}

// SortMode controls output ordering.
type SortMode uint8

const (
	// SortNone preserves the existing order.
	SortNone SortMode = iota
	// SortAsc sorts ascending by precedence.
	SortAsc
	// SortDesc sorts descending by precedence.
	SortDesc
)

// String returns a stable textual representation for SortMode.
func (m SortMode) String() string {
	switch m {
	case SortAsc:
		return "ascending"
	case SortDesc:
		return "descending"
	default:
		return "none"
	}
}

// ParseSort maps strings to SortMode.
// Supported aliases (case-insensitive):
//
//	asc:  "asc","ascending","inc","increase","up"
//	desc: "desc","descending","dec","decrease","down"
//	none: "none","default","asis"
func ParseSort(s string) SortMode {
	switch strings.ToLower(strings.TrimSpace(s)) {
	// ascending (low -> high)
	case "asc", "ascending", "inc", "increase", "up":
		return SortAsc

	// descending (high -> low)
	case "desc", "descending", "dec", "decrease", "down":
		return SortDesc

	// as is
	case "none", "default", "asis":
		return SortNone

	default:
		return SortNone
	}
}
