package regexp

import (
	"strings"

	"github.com/coregx/coregex"
)

// QuoteMeta escapes all regular expression metacharacters in s.
func QuoteMeta(s string) string {
	return coregex.QuoteMeta(s)
}

// punctEscaper escapes the punctuation QuoteMeta leaves alone but that is
// special in some pattern dialects, plus backspace, which \b would otherwise
// denote. '<' stays bare since regexp2 reads \<name> as a named
// backreference.
var punctEscaper = strings.NewReplacer(
	"-", `\-`,
	",", `\,`,
	":", `\:`,
	"#", `\#`,
	"!", `\!`,
	"/", `\/`,
	"\x08", `\x08`,
)

// Escape returns s with every character that has a special meaning in pattern
// syntax escaped, so that the result matches s literally on both engines.
// Whitespace is kept as-is, so the result is not literal under the x flag.
//
// Escape is not idempotent: escaping twice yields a pattern that matches the
// once-escaped text.
func Escape(s string) string {
	return punctEscaper.Replace(QuoteMeta(s))
}
