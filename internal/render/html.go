// Package render serializes a structural event stream to HTML text.
package render

import (
	"errors"
	"fmt"
	"io"
	"iter"
	"strconv"
	"strings"

	"github.com/alecthomas/chroma/v2"
	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"

	"github.com/alnah/go-md2html/internal/events"
)

// ErrWrite indicates the destination writer failed.
var ErrWrite = errors.New("writing HTML failed")

// Options configures HTML serialization.
type Options struct {
	Highlight bool   // Highlight fenced code with a known language
	Style     string // chroma style name, used for stylesheets
}

// HTML writes the HTML serialization of seq to w.
func HTML(w io.Writer, seq iter.Seq[events.Event], opts Options) error {
	hw := &htmlWriter{w: w, opts: opts, endNewline: true}
	for ev := range seq {
		hw.event(ev)
		if hw.err != nil {
			return fmt.Errorf("%w: %v", ErrWrite, hw.err)
		}
	}
	return nil
}

// String returns the HTML serialization of seq.
func String(seq iter.Seq[events.Event], opts Options) string {
	var b strings.Builder
	_ = HTML(&b, seq, opts) // strings.Builder never fails
	return b.String()
}

// HighlightCSS returns the stylesheet for the named chroma style.
// Unknown names fall back to chroma's default style.
func HighlightCSS(style string) (string, error) {
	var b strings.Builder
	formatter := chromahtml.New(chromahtml.WithClasses(true))
	if err := formatter.WriteCSS(&b, styles.Get(style)); err != nil {
		return "", fmt.Errorf("generating highlight CSS: %w", err)
	}
	return b.String(), nil
}

// codeBuffer collects a fenced block that will be highlighted at its end.
type codeBuffer struct {
	lexer chroma.Lexer
	body  strings.Builder
}

type htmlWriter struct {
	w    io.Writer
	opts Options
	err  error

	endNewline bool

	alignments []events.Alignment
	inHead     bool
	cellIndex  int

	altDepth   int
	imageTitle string

	code *codeBuffer
}

func (hw *htmlWriter) write(s string) {
	if hw.err != nil || s == "" {
		return
	}
	_, hw.err = io.WriteString(hw.w, s)
	hw.endNewline = strings.HasSuffix(s, "\n")
}

// freshLine starts a new line unless the output already ends with one.
func (hw *htmlWriter) freshLine() {
	if !hw.endNewline {
		hw.write("\n")
	}
}

func (hw *htmlWriter) event(ev events.Event) {
	if hw.altDepth > 0 {
		hw.alt(ev)
		return
	}
	if hw.code != nil && ev.Kind == events.KindText {
		hw.code.body.WriteString(ev.Text)
		return
	}

	switch ev.Kind {
	case events.KindStart:
		hw.start(ev.Tag)
	case events.KindEnd:
		hw.end(ev.Tag)
	case events.KindText:
		hw.write(EscapeHTML(ev.Text))
	case events.KindCode:
		hw.write("<code>" + EscapeHTML(ev.Text) + "</code>")
	case events.KindHTML, events.KindInlineHTML:
		hw.write(ev.Text)
	case events.KindSoftBreak:
		hw.write("\n")
	case events.KindHardBreak:
		hw.write("<br />\n")
	case events.KindRule:
		hw.freshLine()
		hw.write("<hr />\n")
	case events.KindTaskListMarker:
		if ev.Checked {
			hw.write(`<input disabled="" type="checkbox" checked=""/>` + "\n")
		} else {
			hw.write(`<input disabled="" type="checkbox"/>` + "\n")
		}
	case events.KindFootnoteReference:
		hw.write(`<sup class="footnote-reference"><a href="#` + EscapeHTML(ev.Text) + `">` +
			strconv.Itoa(ev.Index) + "</a></sup>")
	}
}

// alt renders the events nested in an image as its alt text.
func (hw *htmlWriter) alt(ev events.Event) {
	switch ev.Kind {
	case events.KindStart:
		if ev.Tag.Kind == events.TagImage {
			hw.altDepth++
		}
	case events.KindEnd:
		if ev.Tag.Kind != events.TagImage {
			return
		}
		hw.altDepth--
		if hw.altDepth > 0 {
			return
		}
		hw.write(`"`)
		if hw.imageTitle != "" {
			hw.write(` title="` + EscapeHTML(hw.imageTitle) + `"`)
		}
		hw.write(" />")
	case events.KindText, events.KindCode:
		hw.write(EscapeHTML(ev.Text))
	case events.KindSoftBreak, events.KindHardBreak:
		hw.write(" ")
	}
}

func (hw *htmlWriter) start(tag events.Tag) {
	switch tag.Kind {
	case events.TagParagraph:
		hw.freshLine()
		hw.write("<p>")
	case events.TagHeading:
		hw.freshLine()
		hw.write("<h" + strconv.Itoa(tag.Level) + ">")
	case events.TagBlockQuote:
		hw.freshLine()
		hw.write("<blockquote>\n")
	case events.TagCodeBlock:
		hw.startCodeBlock(tag)
	case events.TagList:
		hw.freshLine()
		switch {
		case !tag.Ordered:
			hw.write("<ul>\n")
		case tag.Start == 1:
			hw.write("<ol>\n")
		default:
			hw.write(`<ol start="` + strconv.Itoa(tag.Start) + `">` + "\n")
		}
	case events.TagItem:
		hw.freshLine()
		hw.write("<li>")
	case events.TagTable:
		hw.freshLine()
		hw.alignments = tag.Alignments
		hw.write("<table>")
	case events.TagTableHead:
		hw.inHead = true
		hw.cellIndex = 0
		hw.write("<thead><tr>")
	case events.TagTableRow:
		hw.cellIndex = 0
		hw.write("<tr>")
	case events.TagTableCell:
		if hw.inHead {
			hw.write("<th")
		} else {
			hw.write("<td")
		}
		hw.write(hw.cellAlignment())
		hw.write(">")
	case events.TagEmphasis:
		hw.write("<em>")
	case events.TagStrong:
		hw.write("<strong>")
	case events.TagStrikethrough:
		hw.write("<del>")
	case events.TagLink:
		dest := tag.Dest
		if tag.LinkType == events.LinkEmail && !strings.HasPrefix(strings.ToLower(dest), "mailto:") {
			dest = "mailto:" + dest
		}
		hw.write(`<a href="` + EscapeHref(dest) + `"`)
		if tag.Title != "" {
			hw.write(` title="` + EscapeHTML(tag.Title) + `"`)
		}
		hw.write(">")
	case events.TagImage:
		hw.write(`<img src="` + EscapeHref(tag.Dest) + `" alt="`)
		hw.altDepth = 1
		hw.imageTitle = tag.Title
	case events.TagFootnoteDefinition:
		hw.freshLine()
		hw.write(`<div class="footnote-definition" id="` + EscapeHTML(tag.Label) + `">` +
			`<sup class="footnote-definition-label">` + strconv.Itoa(tag.Index) + "</sup>")
	}
}

func (hw *htmlWriter) end(tag events.Tag) {
	switch tag.Kind {
	case events.TagParagraph:
		hw.write("</p>\n")
	case events.TagHeading:
		hw.write("</h" + strconv.Itoa(tag.Level) + ">\n")
	case events.TagBlockQuote:
		hw.write("</blockquote>\n")
	case events.TagCodeBlock:
		hw.endCodeBlock()
	case events.TagList:
		if tag.Ordered {
			hw.write("</ol>\n")
		} else {
			hw.write("</ul>\n")
		}
	case events.TagItem:
		hw.write("</li>\n")
	case events.TagTable:
		hw.write("</tbody></table>\n")
		hw.alignments = nil
	case events.TagTableHead:
		hw.write("</tr></thead><tbody>\n")
		hw.inHead = false
	case events.TagTableRow:
		hw.write("</tr>\n")
	case events.TagTableCell:
		if hw.inHead {
			hw.write("</th>")
		} else {
			hw.write("</td>")
		}
		hw.cellIndex++
	case events.TagEmphasis:
		hw.write("</em>")
	case events.TagStrong:
		hw.write("</strong>")
	case events.TagStrikethrough:
		hw.write("</del>")
	case events.TagLink:
		hw.write("</a>")
	case events.TagFootnoteDefinition:
		hw.write("</div>\n")
	}
}

func (hw *htmlWriter) cellAlignment() string {
	if hw.cellIndex >= len(hw.alignments) {
		return ""
	}
	switch hw.alignments[hw.cellIndex] {
	case events.AlignLeft:
		return ` style="text-align: left"`
	case events.AlignCenter:
		return ` style="text-align: center"`
	case events.AlignRight:
		return ` style="text-align: right"`
	default:
		return ""
	}
}

func (hw *htmlWriter) startCodeBlock(tag events.Tag) {
	hw.freshLine()
	lang := tag.Language()
	if !tag.Fenced || lang == "" {
		hw.write("<pre><code>")
		return
	}
	if hw.opts.Highlight {
		if lexer := lexers.Get(lang); lexer != nil {
			hw.code = &codeBuffer{lexer: chroma.Coalesce(lexer)}
			return
		}
	}
	hw.write(`<pre><code class="language-` + EscapeHTML(lang) + `">`)
}

func (hw *htmlWriter) endCodeBlock() {
	if hw.code == nil {
		hw.write("</code></pre>\n")
		return
	}
	buf := hw.code
	hw.code = nil

	highlighted, err := highlight(buf.lexer, buf.body.String(), hw.opts.Style)
	if err != nil {
		hw.write("<pre><code>" + EscapeHTML(buf.body.String()) + "</code></pre>\n")
		return
	}
	hw.write(highlighted)
	hw.freshLine()
}

func highlight(lexer chroma.Lexer, code, style string) (string, error) {
	iterator, err := lexer.Tokenise(nil, code)
	if err != nil {
		return "", err
	}
	var b strings.Builder
	formatter := chromahtml.New(chromahtml.WithClasses(true))
	if err := formatter.Format(&b, styles.Get(style), iterator); err != nil {
		return "", err
	}
	return b.String(), nil
}
