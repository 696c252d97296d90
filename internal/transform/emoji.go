package transform

import (
	"regexp"
	"strings"

	"github.com/yuin/goldmark-emoji/definition"
)

var (
	shortcodePattern = regexp.MustCompile(`:([a-zA-Z0-9_+\-]+):`)
	githubEmojis     = definition.Github()
)

// substituteEmoji replaces known :shortcode: tokens with their emoji.
// Unknown shortcodes are left as written.
func substituteEmoji(text string) string {
	if !strings.Contains(text, ":") {
		return text
	}
	return shortcodePattern.ReplaceAllStringFunc(text, func(code string) string {
		if e, ok := githubEmojis.Get(code[1 : len(code)-1]); ok {
			return string(e.Unicode)
		}
		return code
	})
}
