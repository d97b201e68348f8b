package output

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// SanitizeTerminal makes a string safe to print inside one table row by
// replacing every control character, newlines and tabs included, and every
// invalid UTF-8 byte with '?'.
// Examples:
//   - "hi\x1b[31mred" -> "hi?[31mred"
//   - "bad:\xff"      -> "bad:?"
//   - "a\tb\nc"       -> "a?b?c"
func SanitizeTerminal(s string) string {
	idx := 0
	// fast path: scan until we find a control rune / invalid UTF-8 byte
	for idx < len(s) {
		r, size := utf8.DecodeRuneInString(s[idx:])
		if r == utf8.RuneError && size == 1 {
			break
		}
		if unicode.IsControl(r) {
			break
		}
		idx += size
	}
	if idx == len(s) {
		return s
	}

	var b strings.Builder
	b.Grow(len(s))
	b.WriteString(s[:idx])

	for idx < len(s) {
		r, size := utf8.DecodeRuneInString(s[idx:])
		if (r == utf8.RuneError && size == 1) || unicode.IsControl(r) {
			b.WriteByte('?')
			idx += size
			continue
		}
		b.WriteString(s[idx : idx+size])
		idx += size
	}
	return b.String()
}

// truncate cuts s to at most n bytes without splitting a UTF-8 sequence.
func truncate(s string, n int) string {
	if n <= 0 {
		return ""
	}
	if len(s) <= n {
		return s
	}
	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}
	return s[:n]
}

// column sanitizes s, cuts it to at most prec bytes and pads it with spaces
// to width bytes, so multi-byte names keep the columns after them in place.
func column(s string, width, prec int) cell {
	s = truncate(SanitizeTerminal(s), prec)
	if pad := width - len(s); pad > 0 {
		s += strings.Repeat(" ", pad)
	}
	return cell(s)
}
