/*
Package main is the semv CLI: it validates, sorts, deduplicates, and limits
lists of Semantic Versioning 2.0.0 strings read from stdin, one per line.
*/
package main

import (
	"bufio"
	"fmt"
	"os"
	"regexp"
	"strings"

	"github.com/woozymasta/semv"

	"github.com/jessevdk/go-flags"
)

type Options struct {
	// Sorting, deduplication and limit
	OptionsSort OptionsSort `group:"Sort and limit"`
	// Input filters
	OptionsFilter OptionsFilter `group:"Input filters"`
}

type OptionsSort struct {
	SortMode    string `short:"S" long:"sort"        description:"Sort output versions" choice:"none" choice:"asc" choice:"desc" default:"asc"`
	Limit       int    `short:"n" long:"limit"       description:"Max number of output versions (<=0 = unlimited)" default:"0"`
	Deduplicate bool   `short:"d" long:"deduplicate" description:"Collapse versions of equal precedence (build metadata ignored)"`
}

type OptionsFilter struct {
	Include string `short:"i" long:"include" description:"Regexp to keep lines (applied before parsing)"`
	Exclude string `short:"e" long:"exclude" description:"Regexp to drop lines (applied before parsing)"`
	Quiet   bool   `short:"q" long:"quiet"   description:"Silently drop lines that are not valid SemVer"`
}

func main() {
	var opt Options
	parser := flags.NewParser(&opt, flags.Default|flags.AllowBoolValues)
	parser.LongDescription = `semv — SemVer list tool.
Reads version strings from stdin (one per line), validates them against the
SemVer 2.0.0 grammar, then sorts by precedence, deduplicates, and limits the
output. Output is always the canonical MAJOR.MINOR.PATCH[-PRE][+BUILD] form.`
	if _, err := parser.Parse(); err != nil {
		if flagErr, ok := err.(*flags.Error); ok && flagErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}

	// Compile regex gates (if set)
	var incRe, excRe *regexp.Regexp
	if s := strings.TrimSpace(opt.OptionsFilter.Include); s != "" {
		re, err := regexp.Compile(s)
		if err != nil {
			fmt.Fprintf(os.Stderr, "include regexp: %v\n", err)
			os.Exit(2)
		}
		incRe = re
	}
	if s := strings.TrimSpace(opt.OptionsFilter.Exclude); s != "" {
		re, err := regexp.Compile(s)
		if err != nil {
			fmt.Fprintf(os.Stderr, "exclude regexp: %v\n", err)
			os.Exit(2)
		}
		excRe = re
	}

	// Read stdin line by line, skip blanks
	vers := make([]semv.Version, 0, 1024)
	sc := bufio.NewScanner(os.Stdin)
	const maxLine = 10 * 1024 * 1024
	buf := make([]byte, 0, 64*1024)
	sc.Buffer(buf, maxLine)
	for sc.Scan() {
		s := strings.TrimSpace(sc.Text())
		if s == "" {
			continue
		}

		if incRe != nil && !incRe.MatchString(s) {
			continue
		}
		if excRe != nil && excRe.MatchString(s) {
			continue
		}

		v, err := semv.Parse(s)
		if err != nil {
			if opt.OptionsFilter.Quiet {
				continue
			}
			fmt.Fprintf(os.Stderr, "%v\n", err)
			os.Exit(1)
		}

		vers = append(vers, v)
	}
	if err := sc.Err(); err != nil {
		fmt.Fprintf(os.Stderr, "read stdin: %v\n", err)
		os.Exit(2)
	}

	if opt.OptionsSort.Deduplicate {
		vers = deduplicate(vers)
	}

	vers = semv.SortBy(vers, semv.ParseSort(opt.OptionsSort.SortMode))

	if n := opt.OptionsSort.Limit; n > 0 && n < len(vers) {
		vers = vers[:n]
	}

	for _, v := range vers {
		fmt.Println(v)
	}
}

// deduplicate keeps the first occurrence per (major, minor, patch, pre),
// ignoring build metadata, preserving input order.
func deduplicate(vs []semv.Version) []semv.Version {
	type key struct {
		pre           string
		maj, min, pat uint64
	}

	seen := make(map[key]struct{}, len(vs))
	keep := vs[:0]

	for _, v := range vs {
		k := key{v.PreRelease(), v.Major(), v.Minor(), v.Patch()}
		if _, ok := seen[k]; ok {
			continue
		}

		seen[k] = struct{}{}
		keep = append(keep, v)
	}

	return keep
}
