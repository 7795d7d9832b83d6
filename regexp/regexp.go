package regexp

import (
	"strconv"

	"github.com/dlclark/regexp2"
	grafana "github.com/grafana/regexp"
)

// Regexp is a compiled regular expression that delegates to either
// grafana/regexp (RE2 syntax, linear time) or regexp2 (backtracking,
// PCRE-style) depending on the pattern features and flags detected at compile
// time.
//
// Both engines match on UTF-8 code points, so astral characters are a single
// character and \p{..} classes apply to whole code points. All indices are
// byte offsets into the input.
//
// A Regexp is safe for concurrent use, except for [Regexp.Longest].
type Regexp struct {
	source string
	flags  string
	re2    *grafana.Regexp
	pcre   *regexp2.Regexp
}

// Compile parses a regular expression without flags. It is shorthand for
// CompileWithFlags(pattern, "").
func Compile(pattern string) (*Regexp, error) {
	return CompileWithFlags(pattern, "")
}

// CompileWithFlags compiles source under the modifiers in flags (see the
// package documentation for the accepted letters). Patterns or flags that
// require backtracking-only features are compiled with regexp2; everything
// else uses the RE2 engine.
//
// The returned Regexp reports source and flags verbatim through
// [Regexp.Source] and [Regexp.Flags].
func CompileWithFlags(source, flags string) (*Regexp, error) {
	fs, err := parseFlags(flags)
	if err != nil {
		return nil, err
	}

	if fs.needsBacktracking() || needsPCRE(source) {
		re, err := regexp2.Compile(source, fs.options())
		if err != nil {
			return nil, err
		}
		return &Regexp{source: source, flags: flags, pcre: re}, nil
	}

	re, err := grafana.Compile(fs.inline() + source)
	if err != nil {
		return nil, err
	}

	return &Regexp{source: source, flags: flags, re2: re}, nil
}

// MustCompile is like Compile but panics if the expression cannot be parsed.
func MustCompile(pattern string) *Regexp {
	return MustCompileWithFlags(pattern, "")
}

// MustCompileWithFlags is like CompileWithFlags but panics if the expression
// or its flags cannot be parsed.
func MustCompileWithFlags(source, flags string) *Regexp {
	re, err := CompileWithFlags(source, flags)
	if err != nil {
		panic(err)
	}
	return re
}

// Match reports whether the byte slice b matches the regular expression
// pattern. This mirrors regexp.Match.
func Match(pattern string, b []byte) (bool, error) {
	re, err := Compile(pattern)
	if err != nil {
		return false, err
	}
	return re.Match(b), nil
}

// MatchString reports whether the string s matches the regular expression
// pattern. This mirrors regexp.MatchString.
func MatchString(pattern, s string) (bool, error) {
	re, err := Compile(pattern)
	if err != nil {
		return false, err
	}
	return re.MatchString(s), nil
}

// Source returns the pattern text the Regexp was compiled from.
func (r *Regexp) Source() string {
	return r.source
}

// Flags returns the flag string the Regexp was compiled with.
func (r *Regexp) Flags() string {
	return r.flags
}

// String returns the source pattern used to compile the Regexp.
func (r *Regexp) String() string {
	return r.source
}

// Match reports whether the byte slice b contains any match of the Regexp.
func (r *Regexp) Match(b []byte) bool {
	if r.re2 != nil {
		return r.re2.Match(b)
	}

	return r.MatchString(string(b))
}

// MatchString reports whether the string s contains any match of the Regexp.
func (r *Regexp) MatchString(s string) bool {
	if r.re2 != nil {
		return r.re2.MatchString(s)
	}

	matched, err := r.pcre.MatchString(s)
	return err == nil && matched
}

// Find returns the leftmost match of the Regexp in b.
func (r *Regexp) Find(b []byte) []byte {
	if r.re2 != nil {
		return r.re2.Find(b)
	}

	spans := r.firstMatch(string(b))
	if spans == nil {
		return nil
	}
	return b[spans[0]:spans[1]:spans[1]]
}

// FindIndex returns a two-element slice with the start and end index of the
// leftmost match in b.
func (r *Regexp) FindIndex(b []byte) []int {
	if r.re2 != nil {
		return r.re2.FindIndex(b)
	}

	return r.FindStringIndex(string(b))
}

// FindString returns the leftmost match of the Regexp in s.
func (r *Regexp) FindString(s string) string {
	if r.re2 != nil {
		return r.re2.FindString(s)
	}

	spans := r.firstMatch(s)
	if spans == nil {
		return ""
	}
	return s[spans[0]:spans[1]]
}

// FindStringIndex returns a two-element slice with the start and end index of
// the leftmost match in s.
func (r *Regexp) FindStringIndex(s string) []int {
	if r.re2 != nil {
		return r.re2.FindStringIndex(s)
	}

	spans := r.firstMatch(s)
	if spans == nil {
		return nil
	}
	return spans[:2:2]
}

// FindSubmatch returns slices identifying the leftmost match of the Regexp in
// b and its submatches. Unmatched groups are nil.
func (r *Regexp) FindSubmatch(b []byte) [][]byte {
	if r.re2 != nil {
		return r.re2.FindSubmatch(b)
	}

	spans := r.firstMatch(string(b))
	if spans == nil {
		return nil
	}
	return spansToBytes(b, spans)
}

// FindSubmatchIndex returns slices holding the index pairs identifying the
// leftmost match of the Regexp in b and its submatches.
func (r *Regexp) FindSubmatchIndex(b []byte) []int {
	if r.re2 != nil {
		return r.re2.FindSubmatchIndex(b)
	}

	return r.firstMatch(string(b))
}

// FindStringSubmatch returns the leftmost match of the Regexp in s and its
// submatches as strings. Unmatched groups are "".
func (r *Regexp) FindStringSubmatch(s string) []string {
	if r.re2 != nil {
		return r.re2.FindStringSubmatch(s)
	}

	spans := r.firstMatch(s)
	if spans == nil {
		return nil
	}
	return spansToStrings(s, spans)
}

// FindStringSubmatchIndex returns the index pairs identifying the leftmost
// match of the Regexp in s and its submatches. Unmatched groups are -1.
func (r *Regexp) FindStringSubmatchIndex(s string) []int {
	if r.re2 != nil {
		return r.re2.FindStringSubmatchIndex(s)
	}

	return r.firstMatch(s)
}

// FindAll returns a slice of all successive matches of the Regexp in b. If
// n >= 0, at most n matches are returned.
func (r *Regexp) FindAll(b []byte, n int) [][]byte {
	if r.re2 != nil {
		return r.re2.FindAll(b, n)
	}

	var out [][]byte
	r.eachMatch(string(b), n, func(spans []int) {
		out = append(out, b[spans[0]:spans[1]:spans[1]])
	})
	return out
}

// FindAllIndex returns a slice of all successive match indices of the Regexp
// in b.
func (r *Regexp) FindAllIndex(b []byte, n int) [][]int {
	if r.re2 != nil {
		return r.re2.FindAllIndex(b, n)
	}

	return r.FindAllStringIndex(string(b), n)
}

// FindAllSubmatch returns a slice of all successive matches of the Regexp in b
// and their submatches.
func (r *Regexp) FindAllSubmatch(b []byte, n int) [][][]byte {
	if r.re2 != nil {
		return r.re2.FindAllSubmatch(b, n)
	}

	var out [][][]byte
	r.eachMatch(string(b), n, func(spans []int) {
		out = append(out, spansToBytes(b, spans))
	})
	return out
}

// FindAllSubmatchIndex returns a slice of all successive match index pairs of
// the Regexp in b and their submatches.
func (r *Regexp) FindAllSubmatchIndex(b []byte, n int) [][]int {
	if r.re2 != nil {
		return r.re2.FindAllSubmatchIndex(b, n)
	}

	return r.FindAllStringSubmatchIndex(string(b), n)
}

// FindAllString returns a slice of all successive matches of the Regexp in s.
// If n >= 0, at most n matches are returned.
func (r *Regexp) FindAllString(s string, n int) []string {
	if r.re2 != nil {
		return r.re2.FindAllString(s, n)
	}

	var out []string
	r.eachMatch(s, n, func(spans []int) {
		out = append(out, s[spans[0]:spans[1]])
	})
	return out
}

// FindAllStringIndex returns a slice of all successive match indices of the
// Regexp in s.
func (r *Regexp) FindAllStringIndex(s string, n int) [][]int {
	if r.re2 != nil {
		return r.re2.FindAllStringIndex(s, n)
	}

	var out [][]int
	r.eachMatch(s, n, func(spans []int) {
		out = append(out, spans[:2:2])
	})
	return out
}

// FindAllStringSubmatch returns a slice of all successive matches of the
// Regexp in s and their submatches.
func (r *Regexp) FindAllStringSubmatch(s string, n int) [][]string {
	if r.re2 != nil {
		return r.re2.FindAllStringSubmatch(s, n)
	}

	var out [][]string
	r.eachMatch(s, n, func(spans []int) {
		out = append(out, spansToStrings(s, spans))
	})
	return out
}

// FindAllStringSubmatchIndex returns a slice of all successive match index
// pairs of the Regexp in s and their submatches.
func (r *Regexp) FindAllStringSubmatchIndex(s string, n int) [][]int {
	if r.re2 != nil {
		return r.re2.FindAllStringSubmatchIndex(s, n)
	}

	var out [][]int
	r.eachMatch(s, n, func(spans []int) {
		out = append(out, spans)
	})
	return out
}

// ReplaceAll returns a copy of src, replacing matches of the Regexp with repl.
// On the regexp2 engine a failed match leaves src unchanged.
func (r *Regexp) ReplaceAll(src, repl []byte) []byte {
	if r.re2 != nil {
		return r.re2.ReplaceAll(src, repl)
	}

	replaced, err := r.pcre.Replace(string(src), string(repl), -1, -1)
	if err != nil {
		return src
	}

	return []byte(replaced)
}

// ReplaceAllString returns a copy of src, replacing matches of the Regexp with
// repl. On the regexp2 engine a failed match leaves src unchanged.
func (r *Regexp) ReplaceAllString(src, repl string) string {
	if r.re2 != nil {
		return r.re2.ReplaceAllString(src, repl)
	}

	replaced, err := r.pcre.Replace(src, repl, -1, -1)
	if err != nil {
		return src
	}

	return replaced
}

// Split slices s into substrings separated by the Regexp.
func (r *Regexp) Split(s string, n int) []string {
	if r.re2 != nil {
		return r.re2.Split(s, n)
	}

	if n == 0 {
		return nil
	}

	var parts []string
	last := 0
	r.eachMatch(s, n-1, func(spans []int) {
		parts = append(parts, s[last:spans[0]])
		last = spans[1]
	})

	return append(parts, s[last:])
}

// NumSubexp returns the number of parenthesized subexpressions in this Regexp.
func (r *Regexp) NumSubexp() int {
	if r.re2 != nil {
		return r.re2.NumSubexp()
	}

	return r.maxGroup()
}

// SubexpNames returns the names of the parenthesized subexpressions in this
// Regexp. The name for the first sub-expression is names[1]; unnamed groups
// are "".
func (r *Regexp) SubexpNames() []string {
	if r.re2 != nil {
		return r.re2.SubexpNames()
	}

	max := r.maxGroup()
	names := make([]string, max+1)
	for i := 1; i <= max; i++ {
		names[i] = r.pcre.GroupNameFromNumber(i)
		if names[i] == strconv.Itoa(i) {
			names[i] = ""
		}
	}

	return names
}

// Longest switches the underlying engine to leftmost-longest matching when
// supported. The RE2 engine provides this directly; regexp2 is PCRE-style and
// does not change behavior here.
func (r *Regexp) Longest() {
	if r.re2 != nil {
		r.re2.Longest()
	}
}

// eachMatch calls fn with the byte offset pairs of successive regexp2 matches
// in s and their groups, at most n times when n >= 0. Unmatched groups are
// reported as -1, -1.
func (r *Regexp) eachMatch(s string, n int, fn func(spans []int)) {
	c := runeCursor{s: s}
	count := 0
	m, err := r.pcre.FindStringMatch(s)
	for err == nil && m != nil {
		if n >= 0 && count >= n {
			return
		}
		fn(groupSpans(&c, m.Groups()))
		count++
		m, err = r.pcre.FindNextMatch(m)
	}
}

// firstMatch returns the spans of the leftmost regexp2 match in s, or nil.
func (r *Regexp) firstMatch(s string) []int {
	var first []int
	r.eachMatch(s, 1, func(spans []int) {
		first = spans
	})
	return first
}

func (r *Regexp) maxGroup() int {
	max := 0
	for _, v := range r.pcre.GetGroupNumbers() {
		if v > max {
			max = v
		}
	}
	return max
}

func groupSpans(c *runeCursor, groups []regexp2.Group) []int {
	out := make([]int, 0, len(groups)*2)
	for _, g := range groups {
		if len(g.Captures) == 0 {
			out = append(out, -1, -1)
			continue
		}
		start := c.byteOffset(g.Index)
		end := c.byteOffset(g.Index + g.Length)
		out = append(out, start, end)
	}
	return out
}

func spansToStrings(s string, spans []int) []string {
	out := make([]string, len(spans)/2)
	for i := range out {
		if start := spans[2*i]; start >= 0 {
			out[i] = s[start:spans[2*i+1]]
		}
	}
	return out
}

func spansToBytes(b []byte, spans []int) [][]byte {
	out := make([][]byte, len(spans)/2)
	for i := range out {
		if start, end := spans[2*i], spans[2*i+1]; start >= 0 {
			out[i] = b[start:end:end]
		}
	}
	return out
}
