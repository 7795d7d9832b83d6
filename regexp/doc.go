// Package regexp provides pattern value helpers on top of the regex engine
// best suited to a pattern.
//
// By default it compiles patterns with [grafana/regexp], a faster fork of the
// standard library's RE2 engine. When the pattern requires PCRE/Perl features
// that RE2 cannot execute, or the flags ask for free-spacing or explicit
// capture, the package falls back to [regexp2]. Both engines match on code
// points, so astral characters count as one character.
//
// A compiled [Regexp] keeps the source and flag string it was built from.
// The accepted flags are:
//
//	i  case-insensitive
//	m  ^ and $ match at line boundaries
//	s  . matches \n
//	x  free-spacing, # starts a comment (regexp2)
//	n  only named groups capture (regexp2)
//	g, y, d, u, A  carried through Flags without changing the engine
//
// On top of that the package offers three helpers:
//   - [IsRegexp] reports whether a value is a compiled expression, including
//     ones from the standard library and github.com/grafana/regexp.
//   - [Enhance] rebuilds such a value through a unicode-aware [Constructor].
//   - [Escape] quotes a string so it matches literally. [QuoteMeta] is the
//     coregex quoting it builds on.
//
// [grafana/regexp]: https://pkg.go.dev/github.com/grafana/regexp
// [regexp2]: https://pkg.go.dev/github.com/dlclark/regexp2
package regexp
