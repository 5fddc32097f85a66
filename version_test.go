package semv

import (
	"errors"
	"testing"
)

func TestNew_Valid(t *testing.T) {
	t.Parallel()

	v, err := New(1, 2, 3, "beta.1", "build.5")
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	if v.Major() != 1 || v.Minor() != 2 || v.Patch() != 3 {
		t.Fatalf("core = %d.%d.%d; want 1.2.3", v.Major(), v.Minor(), v.Patch())
	}

	if v.PreRelease() != "beta.1" {
		t.Fatalf("PreRelease = %q; want %q", v.PreRelease(), "beta.1")
	}

	if v.Build() != "build.5" {
		t.Fatalf("Build = %q; want %q", v.Build(), "build.5")
	}
}

func TestNew_EmptyOptionalFields(t *testing.T) {
	t.Parallel()

	v, err := New(0, 0, 0, "", "")
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	if v != (Version{}) {
		t.Fatalf("New(0,0,0) = %#v; want zero value", v)
	}
}

func TestNew_InvalidPreRelease(t *testing.T) {
	t.Parallel()

	cases := []string{
		"not valid!",
		"a..b",
		".a",
		"a.",
		".",
		"alpha_1",
		"béta",
		"a b",
	}

	for _, pre := range cases {
		if _, err := New(1, 0, 0, pre, ""); !errors.Is(err, ErrInvalidPreRelease) {
			t.Fatalf("New(1,0,0,%q) err = %v; want ErrInvalidPreRelease", pre, err)
		}
	}
}

func TestNew_InvalidBuild(t *testing.T) {
	t.Parallel()

	cases := []string{
		"not valid!",
		"b..1",
		".b",
		"b.",
		"meta data",
	}

	for _, build := range cases {
		if _, err := New(1, 0, 0, "", build); !errors.Is(err, ErrInvalidBuild) {
			t.Fatalf("New(1,0,0,\"\",%q) err = %v; want ErrInvalidBuild", build, err)
		}
	}
}

func TestNew_PreReleaseAndBuildValidatedIndependently(t *testing.T) {
	t.Parallel()

	// A bad pre-release fails first even when build is also bad.
	_, err := New(1, 0, 0, "bad!", "also bad!")
	if !errors.Is(err, ErrInvalidPreRelease) {
		t.Fatalf("err = %v; want ErrInvalidPreRelease", err)
	}

	// A good pre-release with a bad build fails on the build.
	_, err = New(1, 0, 0, "rc.1", "bad!")
	if !errors.Is(err, ErrInvalidBuild) {
		t.Fatalf("err = %v; want ErrInvalidBuild", err)
	}
}

func TestString(t *testing.T) {
	t.Parallel()

	cases := []struct {
		pre   string
		build string
		want  string
		maj   uint64
		min   uint64
		pat   uint64
	}{
		{maj: 1, min: 2, pat: 3, want: "1.2.3"},
		{maj: 1, min: 2, pat: 3, pre: "alpha", want: "1.2.3-alpha"},
		{maj: 1, min: 2, pat: 3, build: "exp.sha.5114f85", want: "1.2.3+exp.sha.5114f85"},
		{maj: 1, min: 2, pat: 3, pre: "beta.1", build: "build.5", want: "1.2.3-beta.1+build.5"},
		{maj: 0, min: 0, pat: 0, want: "0.0.0"},
		{maj: 10, min: 20, pat: 30, pre: "rc-x.7", want: "10.20.30-rc-x.7"},
	}

	for _, tc := range cases {
		v, err := New(tc.maj, tc.min, tc.pat, tc.pre, tc.build)
		if err != nil {
			t.Fatalf("New(%d,%d,%d,%q,%q): %v", tc.maj, tc.min, tc.pat, tc.pre, tc.build, err)
		}

		if got := v.String(); got != tc.want {
			t.Fatalf("String() = %q; want %q", got, tc.want)
		}
	}
}

func TestString_ZeroValue(t *testing.T) {
	t.Parallel()

	var v Version
	if got := v.String(); got != "0.0.0" {
		t.Fatalf("zero Version String() = %q; want %q", got, "0.0.0")
	}
}
