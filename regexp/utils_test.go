package regexp

import "testing"

func TestNeedsPCRE(t *testing.T) {
	pcre := []string{
		"(?=a)", "a(?!b)", "(?<=a)b", "(?<!a)b",
		"(?>a+)", `(\w)\1`, `abc\Z`, `\Gabc`, `\h+`,
		"(?<name>a)", "(?'name'a)", `\k<name>`, "a(?#comment)",
	}
	for _, p := range pcre {
		if !needsPCRE(p) {
			t.Fatalf("needsPCRE(%q): expected true", p)
		}
	}

	re2 := []string{
		"a+", `^\d{2,4}$`, "(?P<name>a)", `\p{Greek}`, `\pL`,
		`\\1`, "[a-z]+", "(?i)abc", `a\.b`,
		`\Aabc`, `abc\z`, `\Q.*\E`, `[[:alpha:]]+\z`, `\x{1F642}`, `\a\f\v`,
	}
	for _, p := range re2 {
		if needsPCRE(p) {
			t.Fatalf("needsPCRE(%q): expected false", p)
		}
	}
}
