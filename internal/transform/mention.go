package transform

import (
	"regexp"
	"strings"

	"github.com/alnah/go-md2html/internal/render"
)

var mentionPattern = regexp.MustCompile(`(?i)@[a-z]\w*`)

// linkMentions turns @name tokens into profile links. Matches are taken
// from the text as given, while replacements accumulate in a copy: a
// mention that is a prefix of a longer one also rewrites inside it.
func (r *rules) linkMentions(text string) (string, bool) {
	if !strings.Contains(text, "@") {
		return text, false
	}

	out := text
	seen := make(map[string]bool)
	for _, mention := range mentionPattern.FindAllString(text, -1) {
		if seen[mention] {
			continue
		}
		seen[mention] = true
		out = strings.ReplaceAll(out, mention, r.mentionAnchor(mention))
	}
	return out, out != text
}

func (r *rules) mentionAnchor(mention string) string {
	href := strings.ReplaceAll(r.mentionLink, "{u}", mention[1:])
	return `<a href="` + render.EscapeHref(href) + `"` + r.newWindowAttrs() + ">" + mention + "</a>"
}

func (r *rules) newWindowAttrs() string {
	if !r.openLinksInNewWindow {
		return ""
	}
	return ` rel="noopener noreferrer" target="_blank"`
}
