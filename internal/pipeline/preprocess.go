package pipeline

import (
	"context"
	"regexp"
	"strings"
)

var crlfOrCR = regexp.MustCompile(`\r\n?`)

// MarkdownPreprocessor defines the contract for markdown preprocessing.
type MarkdownPreprocessor interface {
	PreprocessMarkdown(ctx context.Context, content string) string
}

// LineEndingPreprocessor prepares Markdown for the event producer.
type LineEndingPreprocessor struct{}

// PreprocessMarkdown normalizes line endings. A cancelled context returns
// content unchanged.
func (p *LineEndingPreprocessor) PreprocessMarkdown(ctx context.Context, content string) string {
	if ctx.Err() != nil {
		return content
	}
	return NormalizeLineEndings(content)
}

// NormalizeLineEndings converts \r\n and \r to \n.
func NormalizeLineEndings(content string) string {
	if !strings.ContainsRune(content, '\r') {
		return content
	}
	return crlfOrCR.ReplaceAllString(content, "\n")
}
