package transform

import (
	"regexp"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/alnah/go-md2html/internal/render"
)

var (
	// customIDPattern matches a trailing " {id}" annotation.
	customIDPattern = regexp.MustCompile(`\s+\{([^{}]*)\}\s*$`)

	// ghStripPattern is the punctuation GitHub drops from anchors.
	ghStripPattern = regexp.MustCompile("[&+$,/:;=?@\"#{}|^¨~\\[\\]`\\\\*)(%.!'<>]")

	rawIDPattern   = regexp.MustCompile(`[ '"]`)
	nonWordPattern = regexp.MustCompile(`\W`)
)

// newLowerCaser returns a Unicode lowercaser. Casers keep state, so each
// conversion gets its own.
func newLowerCaser() cases.Caser {
	return cases.Lower(language.Und)
}

// headerID splits heading text into its display text and id attribute.
// The attribute is empty when ids are disabled or the id normalizes to nothing.
func (r *rules) headerID(text string) (display, attr string) {
	display, seed := text, text
	if r.customizedHeaderID {
		if m := customIDPattern.FindStringSubmatchIndex(text); m != nil && m[3] > m[2] {
			seed = text[m[2]:m[3]]
			display = text[:m[0]]
		}
	}

	if r.noHeaderID {
		return display, ""
	}

	title := seed
	if !r.rawPrefixHeaderID {
		title = r.headerPrefix + seed
	}
	title = r.normalizeID(title)
	if r.rawPrefixHeaderID {
		title = r.headerPrefix + title
	}

	if title == "" {
		return display, ""
	}
	return display, ` id="` + render.EscapeHTML(title) + `"`
}

// normalizeID applies exactly one slug rule.
func (r *rules) normalizeID(title string) string {
	switch {
	case r.ghCompatibleHeaderID:
		title = strings.ReplaceAll(title, " ", "-")
		title = ghStripPattern.ReplaceAllString(title, "")
	case r.rawHeaderID:
		title = rawIDPattern.ReplaceAllString(title, "-")
	default:
		title = nonWordPattern.ReplaceAllString(title, "")
	}
	return r.lower.String(title)
}
