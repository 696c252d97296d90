package pipeline

import (
	"regexp"

	"github.com/microcosm-cc/bluemonday"
)

// sanitizer extends the UGC policy with the markup the serializer and the
// transform produce: code classes, table alignment, task checkboxes and
// new-window links.
var sanitizer = newSanitizer()

func newSanitizer() *bluemonday.Policy {
	p := bluemonday.UGCPolicy()
	p.RequireNoReferrerOnLinks(true)
	p.AllowAttrs("target").Matching(regexp.MustCompile(`^_blank$`)).OnElements("a")
	p.AllowAttrs("class").Matching(regexp.MustCompile(`^[a-zA-Z0-9_\- ]+$`)).
		OnElements("code", "pre", "span", "div", "sup", "nav", "h2")
	p.AllowStyles("text-align").MatchingEnum("left", "center", "right").OnElements("th", "td")
	p.AllowAttrs("type").Matching(regexp.MustCompile(`^checkbox$`)).OnElements("input")
	p.AllowAttrs("checked", "disabled").OnElements("input")
	return p
}

// Sanitize filters an HTML fragment through the sanitizing policy.
// The policy is safe for concurrent use.
func Sanitize(fragment string) string {
	return sanitizer.Sanitize(fragment)
}
