package semv

import "strings"

// Compare returns -1, 0, or 1 ordering v against o by SemVer precedence.
//
// Major, minor, and patch compare numerically. A version with a pre-release
// sorts below its plain release. Non-empty pre-releases split on '.' and
// compare identifier by identifier: an identifier made only of decimal
// digits and not starting with "00" compares as an integer and sorts below
// any alphanumeric identifier; everything else compares byte-wise. When all
// shared identifiers are equal, the shorter list is lower. Build metadata
// never affects precedence.
func (v Version) Compare(o Version) int {
	if c := cmpUint(v.major, o.major); c != 0 {
		return c
	}

	if c := cmpUint(v.minor, o.minor); c != 0 {
		return c
	}

	if c := cmpUint(v.patch, o.patch); c != 0 {
		return c
	}

	return cmpPreRelease(v.preRelease, o.preRelease)
}

// Compare orders a against b by SemVer precedence. See Version.Compare.
func Compare(a, b Version) int {
	return a.Compare(b)
}

// Equal reports whether v and o have equal precedence.
// Versions differing only in build metadata are Equal.
func (v Version) Equal(o Version) bool { return v.Compare(o) == 0 }

// LessThan reports whether v has lower precedence than o.
func (v Version) LessThan(o Version) bool { return v.Compare(o) < 0 }

// LessThanOrEqual reports whether v has lower or equal precedence to o.
func (v Version) LessThanOrEqual(o Version) bool { return v.Compare(o) <= 0 }

// GreaterThan reports whether v has higher precedence than o.
func (v Version) GreaterThan(o Version) bool { return v.Compare(o) > 0 }

// GreaterThanOrEqual reports whether v has higher or equal precedence to o.
func (v Version) GreaterThanOrEqual(o Version) bool { return v.Compare(o) >= 0 }

// cmpPreRelease orders two pre-release strings.
// Empty means release and outranks any pre-release.
func cmpPreRelease(a, b string) int {
	switch {
	case a == b:
		return 0
	case a == "":
		return 1
	case b == "":
		return -1
	}

	as := strings.Split(a, ".")
	bs := strings.Split(b, ".")

	for i := 0; i < len(as) && i < len(bs); i++ {
		if c := cmpIdentifier(as[i], bs[i]); c != 0 {
			return c
		}
	}

	// Fewer identifiers = lower precedence.
	return cmpInt(len(as), len(bs))
}

// cmpIdentifier orders one pre-release identifier pair.
func cmpIdentifier(a, b string) int {
	aNum, bNum := isNumeric(a), isNumeric(b)

	switch {
	case aNum && bNum:
		return cmpNumeric(a, b)

	case aNum:
		return -1

	case bNum:
		return 1

	default:
		return strings.Compare(a, b)
	}
}

// isNumeric reports whether id is all decimal digits without a "00" prefix.
// Note the "00" check is literal: "01" still classifies as numeric, only a
// double-zero prefix demotes an identifier to byte-wise comparison.
func isNumeric(id string) bool {
	if strings.HasPrefix(id, "00") {
		return false
	}

	for i := 0; i < len(id); i++ {
		if id[i] < '0' || id[i] > '9' {
			return false
		}
	}

	return len(id) > 0
}

// cmpNumeric orders two all-digit identifiers as integers without converting,
// so arbitrarily long digit runs cannot overflow. Leading zeros are stripped
// first; then a longer run is the larger number and equal-length runs order
// byte-wise.
func cmpNumeric(a, b string) int {
	a = strings.TrimLeft(a, "0")
	b = strings.TrimLeft(b, "0")

	if c := cmpInt(len(a), len(b)); c != 0 {
		return c
	}

	return strings.Compare(a, b)
}

func cmpUint(a, b uint64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func cmpInt(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}
