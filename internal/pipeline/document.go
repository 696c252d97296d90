package pipeline

import (
	"context"
	"errors"
	"fmt"
	"html"
	"strings"

	"github.com/alnah/go-md2html/internal/render"
)

// ErrHighlightStyle indicates the code highlighting stylesheet could not be built.
var ErrHighlightStyle = errors.New("highlight stylesheet failed")

// DefaultDocumentTitle is used when no title is given and the fragment has no heading.
const DefaultDocumentTitle = "Document"

// htmlTemplate wraps a fragment in a complete HTML5 document.
const htmlTemplate = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>%s</title>
</head>
<body>
%s</body>
</html>
`

// DocumentOptions configures standalone page output.
type DocumentOptions struct {
	Title          string   // empty: first heading text, then DefaultDocumentTitle
	CSS            string   // user stylesheet, injected last
	HighlightStyle string   // chroma style of the highlighting stylesheet; empty skips it
	TOC            *TOCData // nil skips the table of contents
	RewriteLinks   bool     // point relative .md links at .html files
}

// Document wraps an HTML fragment in a standalone page.
func Document(ctx context.Context, fragment string, opts DocumentOptions) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	if opts.RewriteLinks {
		var err error
		fragment, err = RewriteMarkdownLinks(fragment)
		if err != nil {
			return "", err
		}
	}

	title := opts.Title
	if title == "" {
		title = firstHeadingText(fragment)
	}
	if title == "" {
		title = DefaultDocumentTitle
	}
	page := fmt.Sprintf(htmlTemplate, html.EscapeString(title), fragment)

	var css strings.Builder
	if opts.HighlightStyle != "" {
		highlight, err := render.HighlightCSS(opts.HighlightStyle)
		if err != nil {
			return "", fmt.Errorf("%w: %v", ErrHighlightStyle, err)
		}
		css.WriteString(highlight)
	}
	if opts.CSS != "" {
		if css.Len() > 0 {
			css.WriteString("\n")
		}
		css.WriteString(opts.CSS)
	}
	page = (&CSSInjection{}).InjectCSS(ctx, page, css.String())

	return NewTOCInjection().InjectTOC(ctx, page, opts.TOC)
}

// CSSInjector defines the contract for CSS injection into HTML.
type CSSInjector interface {
	InjectCSS(ctx context.Context, htmlContent, cssContent string) string
}

// CSSInjection injects CSS as a <style> block into HTML content.
type CSSInjection struct{}

// InjectCSS inserts a <style> block before </head>, else after <body>, else
// at the start of htmlContent.
func (s *CSSInjection) InjectCSS(ctx context.Context, htmlContent, cssContent string) string {
	if cssContent == "" || ctx.Err() != nil {
		return htmlContent
	}

	block := "<style>" + sanitizeCSS(cssContent) + "</style>\n"

	if idx := indexFold(htmlContent, "</head>"); idx != -1 {
		return htmlContent[:idx] + block + htmlContent[idx:]
	}
	if pos := afterBodyTag(htmlContent); pos != -1 {
		return htmlContent[:pos] + block + htmlContent[pos:]
	}
	return block + htmlContent
}

// sanitizeCSS keeps CSS from closing its <style> element early.
func sanitizeCSS(css string) string {
	return strings.ReplaceAll(css, "</", `<\/`)
}

// indexFold is a case-insensitive strings.Index for ASCII needles.
func indexFold(s, needle string) int {
	return strings.Index(strings.ToLower(s), needle)
}

// afterBodyTag returns the offset just past the opening <body ...> tag, or -1.
func afterBodyTag(s string) int {
	idx := indexFold(s, "<body")
	if idx == -1 {
		return -1
	}
	end := strings.IndexByte(s[idx:], '>')
	if end == -1 {
		return -1
	}
	return idx + end + 1
}
