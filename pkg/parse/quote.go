package parse

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Quote returns a valid Weir expression that evaluates to the given string.
// If s is a valid bareword it is returned as is; otherwise it is quoted,
// preferring the use of single quotes.
func Quote(s string) string {
	if s == "" {
		return "''"
	}
	bare := true
	for _, r := range s {
		if r == unicode.ReplacementChar || !unicode.IsPrint(r) {
			// Contains an invalid UTF-8 sequence or an unprintable character;
			// force double quotes.
			return quoteDouble(s)
		}
		if !allowedInBareword(r) {
			bare = false
		}
	}
	// A bareword that looks like a number would not read back as a string.
	if bare && !looksLikeNumber(s) {
		return s
	}
	return quoteSingle(s)
}

func looksLikeNumber(s string) bool {
	if strings.HasPrefix(s, "-") {
		s = s[1:]
	}
	return s != "" && '0' <= s[0] && s[0] <= '9'
}

func quoteSingle(s string) string {
	var sb strings.Builder
	sb.WriteByte('\'')
	for _, r := range s {
		sb.WriteRune(r)
		if r == '\'' {
			sb.WriteByte('\'')
		}
	}
	sb.WriteByte('\'')
	return sb.String()
}

// Optimized for the common cases encountered when encoding strings; avoids
// fmt.Sprintf("%x").
func rtohex(r rune, w int) []byte {
	bytes := make([]byte, w)
	for i := w - 1; i >= 0; i-- {
		d := byte(r % 16)
		r /= 16
		if d <= 9 {
			bytes[i] = '0' + d
		} else {
			bytes[i] = 'a' + d - 10
		}
	}
	return bytes
}

func quoteDouble(s string) string {
	var sb strings.Builder
	sb.WriteByte('"')
	for s != "" {
		r, w := utf8.DecodeRuneInString(s)
		if r == utf8.RuneError && w == 1 {
			// An invalid UTF-8 sequence; encode the first byte as a hex
			// literal.
			sb.WriteString(`\x`)
			sb.Write(rtohex(rune(s[0]), 2))
		} else if e, ok := doubleUnescape[r]; ok {
			// This handles the escaping of " and \ too.
			sb.WriteByte('\\')
			sb.WriteRune(e)
		} else if unicode.IsPrint(r) && r != utf8.RuneError {
			// RuneError is technically printable, but don't print it directly
			// to avoid confusion.
			sb.WriteRune(r)
		} else if r <= 0x7f {
			// Unprintable characters in the ASCII range are one byte in
			// UTF-8 and can be escaped with \x.
			sb.WriteString(`\x`)
			sb.Write(rtohex(r, 2))
		} else if r <= 0xffff {
			sb.WriteString(`\u`)
			sb.Write(rtohex(r, 4))
		} else {
			sb.WriteString(`\U`)
			sb.Write(rtohex(r, 8))
		}
		s = s[w:]
	}
	sb.WriteByte('"')
	return sb.String()
}
