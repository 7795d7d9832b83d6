package regexp

import "unicode/utf8"

// runeCursor converts regexp2 rune indices into byte offsets of s. It keeps
// its position between calls, so offsets visited in increasing order cost
// one pass over s in total.
type runeCursor struct {
	s     string
	runes int // rune index at pos
	pos   int // byte offset
}

func (c *runeCursor) byteOffset(runeIndex int) int {
	if runeIndex < 0 {
		return -1
	}

	for c.runes < runeIndex && c.pos < len(c.s) {
		_, size := utf8.DecodeRuneInString(c.s[c.pos:])
		c.pos += size
		c.runes++
	}
	for c.runes > runeIndex && c.pos > 0 {
		_, size := utf8.DecodeLastRuneInString(c.s[:c.pos])
		c.pos -= size
		c.runes--
	}

	return c.pos
}
