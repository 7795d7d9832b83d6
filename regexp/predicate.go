package regexp

import (
	stdregexp "regexp"

	grafana "github.com/grafana/regexp"
)

// IsRegexp reports whether x is a compiled regular expression whose source
// and flags can be recovered: a non-nil *Regexp from this package, from the
// standard library, or from github.com/grafana/regexp.
//
// It accepts any value and never panics.
func IsRegexp(x any) bool {
	_, _, ok := patternOf(x)
	return ok
}

// patternOf extracts the source and flags of x. Standard library and grafana
// expressions carry their modifiers inline, so their flags are empty.
func patternOf(x any) (source, flags string, ok bool) {
	switch re := x.(type) {
	case *Regexp:
		if re != nil {
			return re.source, re.flags, true
		}
	case *stdregexp.Regexp:
		if re != nil {
			return re.String(), "", true
		}
	case *grafana.Regexp:
		if re != nil {
			return re.String(), "", true
		}
	}

	return "", "", false
}
