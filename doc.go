/*
Package semv parses, renders, compares, and sorts Semantic Versioning 2.0.0
version identifiers.

The core type is Version, an immutable five-field value (major, minor, patch,
pre-release, build). Versions come from Parse or from the validating New
constructor; String renders the canonical form and round-trips losslessly
through Parse.

Precedence follows SemVer 2.0.0:
  - major, minor, patch compare numerically;
  - a version with a pre-release sorts below its plain release;
  - pre-release identifiers compare pairwise, numeric identifiers as integers
    and below alphanumeric ones, the rest byte-wise;
  - build metadata never affects precedence.

Usage example:

	vs := make([]semv.Version, 0, 4)
	for _, s := range []string{"1.0.0", "1.0.0-rc.1", "1.0.0-alpha", "2.0.0"} {
		v, err := semv.Parse(s)
		if err != nil {
			log.Fatal(err)
		}
		vs = append(vs, v)
	}

	for _, v := range semv.Sort(vs) {
		fmt.Println(v)
	}

	// Output:
	// 1.0.0-alpha
	// 1.0.0-rc.1
	// 1.0.0
	// 2.0.0

Every operation is a pure function over immutable values; Versions may be
copied and shared across goroutines without synchronization.
*/
package semv
