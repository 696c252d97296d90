package render

import "strings"

var htmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
)

// EscapeHTML escapes text for use in element content and quoted attributes.
func EscapeHTML(s string) string {
	return htmlEscaper.Replace(s)
}

const hexDigits = "0123456789ABCDEF"

// EscapeHref prepares a URL for an href or src attribute: bytes outside the
// URL-safe set are percent-encoded, & and ' are entity-escaped.
func EscapeHref(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c == '&':
			b.WriteString("&amp;")
		case c == '\'':
			b.WriteString("&#x27;")
		case isHrefSafe(c):
			b.WriteByte(c)
		default:
			b.WriteByte('%')
			b.WriteByte(hexDigits[c>>4])
			b.WriteByte(hexDigits[c&0x0f])
		}
	}
	return b.String()
}

func isHrefSafe(c byte) bool {
	switch {
	case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9':
		return true
	}
	return strings.IndexByte("!#$%()*+,-./:;=?@[]_~", c) >= 0
}
