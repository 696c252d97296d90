package pipeline

import (
	"context"
	"fmt"
	"html"
	"regexp"
	"strconv"
	"strings"
)

// TOC depth bounds.
const (
	DefaultTOCMinDepth = 2
	DefaultTOCMaxDepth = 3
)

// TOCData holds TOC configuration for injection.
type TOCData struct {
	Title    string
	MinDepth int // lowest heading level listed; 0 means DefaultTOCMinDepth
	MaxDepth int // highest heading level listed; 0 means DefaultTOCMaxDepth
}

func (d *TOCData) depths() (lo, hi int) {
	lo, hi = d.MinDepth, d.MaxDepth
	if lo <= 0 {
		lo = DefaultTOCMinDepth
	}
	if hi <= 0 {
		hi = DefaultTOCMaxDepth
	}
	return lo, hi
}

// TOCInjector defines the contract for TOC injection into HTML.
type TOCInjector interface {
	InjectTOC(ctx context.Context, htmlContent string, data *TOCData) (string, error)
}

// tocEntry is a heading the table of contents links to.
type tocEntry struct {
	level int
	id    string
	text  string
}

var (
	// anyHeadingPattern captures the level and inner HTML of h1-h6 elements.
	anyHeadingPattern = regexp.MustCompile(`(?is)<h([1-6])\b([^>]*)>(.*?)</h[1-6]>`)

	// idAttrPattern captures an id attribute value.
	idAttrPattern = regexp.MustCompile(`(?i)\bid="([^"]*)"`)

	tagPattern = regexp.MustCompile(`<[^>]*>`)
)

// plainText strips tags and decodes entities so the text can be escaped once.
func plainText(inner string) string {
	return strings.TrimSpace(html.UnescapeString(tagPattern.ReplaceAllString(inner, "")))
}

// collectHeadings returns the headings with an id whose level is in [lo, hi].
func collectHeadings(htmlContent string, lo, hi int) []tocEntry {
	var out []tocEntry
	for _, m := range anyHeadingPattern.FindAllStringSubmatch(htmlContent, -1) {
		level, _ := strconv.Atoi(m[1])
		if level < lo || level > hi {
			continue
		}
		id := idAttrPattern.FindStringSubmatch(m[2])
		if id == nil || id[1] == "" {
			continue
		}
		out = append(out, tocEntry{level: level, id: html.UnescapeString(id[1]), text: plainText(m[3])})
	}
	return out
}

// firstHeadingText returns the text of the first heading in htmlContent.
func firstHeadingText(htmlContent string) string {
	m := anyHeadingPattern.FindStringSubmatch(htmlContent)
	if m == nil {
		return ""
	}
	return plainText(m[3])
}

// tocNumbering numbers entries hierarchically ("1.", "1.1.", "2."). The
// shallowest first level becomes depth 1 and skipped levels nest one deeper
// than their parent.
type tocNumbering struct {
	counters [6]int
	base     int
	depth    int
}

func (n *tocNumbering) next(level int) (label string, depth int) {
	if n.base == 0 {
		n.base = level
	}
	depth = max(level-n.base+1, 1)
	if n.depth > 0 && depth > n.depth+1 {
		depth = n.depth + 1
	}
	n.depth = depth

	n.counters[depth-1]++
	clear(n.counters[depth:])

	var b strings.Builder
	for _, c := range n.counters[:depth] {
		b.WriteString(strconv.Itoa(c))
		b.WriteByte('.')
	}
	return b.String(), depth
}

// tocHTML renders entries as a numbered navigation block.
func tocHTML(entries []tocEntry, title string) string {
	if len(entries) == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString(`<nav class="toc">`)
	if title != "" {
		fmt.Fprintf(&b, `<h2 class="toc-title">%s</h2>`, html.EscapeString(title))
	}
	b.WriteString(`<div class="toc-list">`)

	var numbering tocNumbering
	for _, e := range entries {
		label, depth := numbering.next(e.level)
		b.WriteString(`<div class="toc-item"`)
		if depth > 1 {
			fmt.Fprintf(&b, ` style="padding-left:%.1fem"`, float64(depth-1)*1.5)
		}
		fmt.Fprintf(&b, `><a href="#%s">%s %s</a></div>`,
			html.EscapeString(e.id), label, html.EscapeString(e.text))
	}

	b.WriteString("</div></nav>\n")
	return b.String()
}

// TOCInjection implements TOCInjector.
type TOCInjection struct{}

// NewTOCInjection creates a new TOC injector.
func NewTOCInjection() *TOCInjection {
	return &TOCInjection{}
}

// InjectTOC builds a numbered table of contents from the heading ids in
// htmlContent and inserts it after <body>. A nil data, or a page without
// matching headings, returns htmlContent unchanged.
func (t *TOCInjection) InjectTOC(ctx context.Context, htmlContent string, data *TOCData) (string, error) {
	if data == nil {
		return htmlContent, nil
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}

	lo, hi := data.depths()
	toc := tocHTML(collectHeadings(htmlContent, lo, hi), data.Title)
	if toc == "" {
		return htmlContent, nil
	}

	if pos := afterBodyTag(htmlContent); pos != -1 {
		if strings.HasPrefix(htmlContent[pos:], "\n") {
			pos++
		}
		return htmlContent[:pos] + toc + htmlContent[pos:], nil
	}
	return toc + htmlContent, nil
}
