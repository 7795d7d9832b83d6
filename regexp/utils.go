package regexp

import "strings"

// pcreOnly lists the tokens, escapes and anchors that RE2 cannot
// execute, based on pcre2syntax.
//
// Ref: https://pcre2project.github.io/pcre2/doc/pcre2syntax/
var pcreOnly = []string{
	// Lookahead/lookbehind assertions (atomic and non-atomic)
	"(?=", "(?!", "(?<=", "(?<!",
	"(*pla:", "(*positive_lookahead:",
	"(*nla:", "(*negative_lookahead:",
	"(*plb:", "(*positive_lookbehind:",
	"(*nlb:", "(*negative_lookbehind:",
	"(?*", "(*napla:", "(*non_atomic_positive_lookahead:",
	"(?<*", "(*naplb:", "(*non_atomic_positive_lookbehind:",
	"(*scan_substring:", "(*scs:",
	"(*script_run:", "(*sr:", "(*atomic_script_run:", "(*asr:",
	// Backtracking control verbs
	"(*ACCEPT)", "(*FAIL)", "(*F)", "(*MARK:", "(*:", "(*COMMIT)", "(*PRUNE)", "(*SKIP)", "(*THEN)",
	// Option setting and newline conventions
	"(*LIMIT_DEPTH=", "(*LIMIT_HEAP=", "(*LIMIT_MATCH=", "(*CASELESS_RESTRICT)", "(*NOTEMPTY)", "(*NOTEMPTY_ATSTART)",
	"(*NO_AUTO_POSSESS)", "(*NO_DOTSTAR_ANCHOR)", "(*NO_JIT)", "(*NO_START_OPT)", "(*TURKISH_CASING)", "(*UTF)", "(*UCP)",
	"(*CR)", "(*LF)", "(*CRLF)", "(*ANYCRLF)", "(*ANY)", "(*NUL)",
	"(*BSR_ANYCRLF)", "(*BSR_UNICODE)",
	// Atomic, branch reset, conditional and comment groups
	"(?>", "(*atomic:", "(?|", "(?(", "(?#",
	// Recursion, subroutine calls and extended classes
	"(?R)", "(?P>", "(?&", "(?[",
	// Escapes and character types. \a, \f, \v and \x{..} are RE2 too.
	`(?C`, `\C`, `\h`, `\H`, `\V`, `\R`, `\X`, `\N`, `\K`,
	`\e`, `\o{`,
	// Named backreferences
	`\g`, `\k<`, `\k'`, `\k{`, `(?P=`,
	// Anchors (RE2 has ^, $, \A and \z)
	`\Z`, `\G`,
}

// needsPCRE reports whether pattern uses constructs that only the
// backtracking engine executes. RE2-native forms such as \p{Greek}, \Q..\E,
// [[:alpha:]], \A and \z stay on RE2, so sources taken from the standard
// library keep their meaning.
func needsPCRE(pattern string) bool {
	for _, tok := range pcreOnly {
		if strings.Contains(pattern, tok) {
			return true
		}
	}

	return hasBackref(pattern) || hasNonPythonGroupName(pattern)
}

// hasBackref reports whether pattern holds an unescaped numeric
// backreference such as \1.
func hasBackref(pattern string) bool {
	escaped := false
	for i := 0; i < len(pattern); i++ {
		if pattern[i] != '\\' {
			escaped = false
			continue
		}

		if !escaped && i+1 < len(pattern) {
			if next := pattern[i+1]; next >= '1' && next <= '9' {
				return true
			}
		}
		escaped = !escaped
	}

	return false
}

// hasNonPythonGroupName reports whether pattern names groups with (?<name>)
// or (?'name') without also using the (?P<name>) form RE2 understands.
func hasNonPythonGroupName(pattern string) bool {
	if strings.Contains(pattern, "(?P<") {
		return false
	}

	return strings.Contains(pattern, "(?<") || strings.Contains(pattern, "(?'")
}
