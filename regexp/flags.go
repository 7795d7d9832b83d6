package regexp

import (
	"fmt"

	"github.com/dlclark/regexp2"
)

// flagSet is the parsed form of a flag string.
type flagSet struct {
	ignoreCase bool // i
	multiline  bool // m
	dotAll     bool // s
	extended   bool // x
	explicit   bool // n
	global     bool // g
	sticky     bool // y
	indices    bool // d
	unicode    bool // u
	astral     bool // A
}

// parseFlags validates flags and returns the modifiers it names. Each flag may
// appear at most once.
func parseFlags(flags string) (flagSet, error) {
	var fs flagSet

	for _, c := range flags {
		var seen *bool
		switch c {
		case 'i':
			seen = &fs.ignoreCase
		case 'm':
			seen = &fs.multiline
		case 's':
			seen = &fs.dotAll
		case 'x':
			seen = &fs.extended
		case 'n':
			seen = &fs.explicit
		case 'g':
			seen = &fs.global
		case 'y':
			seen = &fs.sticky
		case 'd':
			seen = &fs.indices
		case 'u':
			seen = &fs.unicode
		case 'A':
			seen = &fs.astral
		default:
			return flagSet{}, fmt.Errorf("%w: unknown flag %q", ErrInvalidFlags, c)
		}

		if *seen {
			return flagSet{}, fmt.Errorf("%w: duplicate flag %q", ErrInvalidFlags, c)
		}
		*seen = true
	}

	return fs, nil
}

// needsBacktracking reports whether the flags select modes that only regexp2
// implements.
func (fs flagSet) needsBacktracking() bool {
	return fs.extended || fs.explicit
}

// inline returns the RE2 inline flag group for the modes coregex understands,
// or "" when none is set.
func (fs flagSet) inline() string {
	var b []byte
	if fs.ignoreCase {
		b = append(b, 'i')
	}
	if fs.multiline {
		b = append(b, 'm')
	}
	if fs.dotAll {
		b = append(b, 's')
	}
	if len(b) == 0 {
		return ""
	}

	return "(?" + string(b) + ")"
}

// options maps the flags onto regexp2 compile options.
func (fs flagSet) options() regexp2.RegexOptions {
	opts := regexp2.None
	if fs.ignoreCase {
		opts |= regexp2.IgnoreCase
	}
	if fs.multiline {
		opts |= regexp2.Multiline
	}
	if fs.dotAll {
		opts |= regexp2.Singleline
	}
	if fs.extended {
		opts |= regexp2.IgnorePatternWhitespace
	}
	if fs.explicit {
		opts |= regexp2.ExplicitCapture
	}

	return opts
}
