package normalize

import (
	"strings"
	"unicode/utf8"
)

// Sanitize drops invalid UTF-8 bytes, ASCII and C1 controls and DEL
// Ids never carry tabs or newlines, so unlike free text nothing is kept
// Fast path returns s unchanged when nothing needs cleaning
func Sanitize(s string) string {
	i := 0
	for i < len(s) {
		c := s[i]
		if c < 0x20 || c == 0x7F {
			break
		}
		if c < 0x80 {
			i++
			continue
		}
		r, size := utf8.DecodeRuneInString(s[i:])
		if (r == utf8.RuneError && size == 1) || isC1(r) {
			break
		}
		i += size
	}
	if i == len(s) {
		return s
	}

	var b strings.Builder
	b.Grow(len(s))
	b.WriteString(s[:i])
	for i < len(s) {
		c := s[i]
		if c < 0x80 {
			if c >= 0x20 && c != 0x7F {
				b.WriteByte(c)
			}
			i++
			continue
		}
		r, size := utf8.DecodeRuneInString(s[i:])
		if (r == utf8.RuneError && size == 1) || isC1(r) {
			i += size
			continue
		}
		b.WriteString(s[i : i+size])
		i += size
	}
	return b.String()
}

func isC1(r rune) bool { return r >= 0x80 && r <= 0x9F }
