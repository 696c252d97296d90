package events

import (
	"iter"
	"strings"
	"sync"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	east "github.com/yuin/goldmark/extension/ast"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/text"
	"github.com/yuin/goldmark/util"
)

// Extensions selects optional grammar on top of CommonMark.
// Footnotes are always enabled.
type Extensions struct {
	Tables        bool
	Strikethrough bool
	TaskLists     bool
}

// parsers caches one goldmark parser per extension combination.
var parsers sync.Map // Extensions -> parser.Parser

func parserFor(ext Extensions) parser.Parser {
	if p, ok := parsers.Load(ext); ok {
		return p.(parser.Parser)
	}

	exts := []goldmark.Extender{extension.Footnote}
	if ext.Tables {
		exts = append(exts, extension.Table)
	}
	if ext.Strikethrough {
		exts = append(exts, extension.Strikethrough)
	}
	if ext.TaskLists {
		exts = append(exts, extension.TaskList)
	}
	p := goldmark.New(goldmark.WithExtensions(exts...)).Parser()

	actual, _ := parsers.LoadOrStore(ext, p)
	return actual.(parser.Parser)
}

// Parse returns the event stream of source. Parsing happens when the
// sequence is first iterated; events are then produced one at a time and
// production stops as soon as the consumer stops.
func Parse(source []byte, ext Extensions) iter.Seq[Event] {
	return func(yield func(Event) bool) {
		doc := parserFor(ext).Parse(text.NewReader(source))
		e := &emitter{
			source:    source,
			yield:     yield,
			footnotes: footnoteLabels(doc),
		}
		_ = ast.Walk(doc, e.walk)
		e.flush()
	}
}

// Collect drains seq into a slice.
func Collect(seq iter.Seq[Event]) []Event {
	var out []Event
	for ev := range seq {
		out = append(out, ev)
	}
	return out
}

// footnoteLabels maps footnote display numbers to their reference labels.
// goldmark moves every referenced definition into a trailing FootnoteList.
func footnoteLabels(doc ast.Node) map[int]string {
	labels := make(map[int]string)
	list, ok := doc.LastChild().(*east.FootnoteList)
	if !ok {
		return labels
	}
	for c := list.FirstChild(); c != nil; c = c.NextSibling() {
		if fn, ok := c.(*east.Footnote); ok {
			labels[fn.Index] = string(fn.Ref)
		}
	}
	return labels
}

// emitter converts goldmark nodes to events, merging adjacent text runs.
type emitter struct {
	source    []byte
	yield     func(Event) bool
	footnotes map[int]string

	text    strings.Builder
	stopped bool
}

func (e *emitter) emit(ev Event) bool {
	if e.stopped {
		return false
	}
	if ev.Kind == KindText {
		e.text.WriteString(ev.Text)
		return true
	}
	if !e.flush() {
		return false
	}
	if !e.yield(ev) {
		e.stopped = true
	}
	return !e.stopped
}

func (e *emitter) flush() bool {
	if e.stopped {
		return false
	}
	if e.text.Len() == 0 {
		return true
	}
	s := e.text.String()
	e.text.Reset()
	if !e.yield(Text(s)) {
		e.stopped = true
	}
	return !e.stopped
}

func (e *emitter) container(entering bool, tag Tag) bool {
	if entering {
		return e.emit(Start(tag))
	}
	return e.emit(End(tag))
}

// leaf emits a complete Start/Text/End triple for a node whose children
// are consumed here.
func (e *emitter) leaf(tag Tag, body string) bool {
	return e.emit(Start(tag)) && e.emit(Text(body)) && e.emit(End(tag))
}

func (e *emitter) walk(node ast.Node, entering bool) (ast.WalkStatus, error) {
	status, ok := e.visit(node, entering)
	if !ok {
		return ast.WalkStop, nil
	}
	return status, nil
}

func (e *emitter) visit(node ast.Node, entering bool) (ast.WalkStatus, bool) {
	switch n := node.(type) {
	case *ast.Document, *ast.TextBlock, *east.FootnoteList:
		return ast.WalkContinue, true

	case *ast.Paragraph:
		return ast.WalkContinue, e.container(entering, Simple(TagParagraph))

	case *ast.Heading:
		return ast.WalkContinue, e.container(entering, Heading(n.Level))

	case *ast.Blockquote:
		return ast.WalkContinue, e.container(entering, Simple(TagBlockQuote))

	case *ast.List:
		tag := Tag{Kind: TagList, Ordered: n.IsOrdered(), Start: n.Start}
		return ast.WalkContinue, e.container(entering, tag)

	case *ast.ListItem:
		return ast.WalkContinue, e.container(entering, Simple(TagItem))

	case *ast.ThematicBreak:
		if entering {
			return ast.WalkContinue, e.emit(Rule())
		}
		return ast.WalkContinue, true

	case *ast.CodeBlock:
		if entering {
			return ast.WalkSkipChildren, e.leaf(Simple(TagCodeBlock), e.lines(n.Lines()))
		}
		return ast.WalkContinue, true

	case *ast.FencedCodeBlock:
		if entering {
			tag := Tag{Kind: TagCodeBlock, Fenced: true}
			if n.Info != nil {
				tag.Info = decode(n.Info.Segment.Value(e.source))
			}
			return ast.WalkSkipChildren, e.leaf(tag, e.lines(n.Lines()))
		}
		return ast.WalkContinue, true

	case *ast.HTMLBlock:
		if entering {
			body := e.lines(n.Lines())
			if n.HasClosure() {
				body += string(n.ClosureLine.Value(e.source))
			}
			return ast.WalkSkipChildren, e.emit(HTML(body))
		}
		return ast.WalkContinue, true

	case *ast.Text:
		if !entering {
			return ast.WalkContinue, true
		}
		value := n.Segment.Value(e.source)
		s := string(value)
		if !n.IsRaw() {
			s = decode(value)
		}
		if !e.emit(Text(s)) {
			return ast.WalkStop, false
		}
		switch {
		case n.HardLineBreak():
			return ast.WalkContinue, e.emit(HardBreak())
		case n.SoftLineBreak():
			return ast.WalkContinue, e.emit(SoftBreak())
		}
		return ast.WalkContinue, true

	case *ast.String:
		if !entering {
			return ast.WalkContinue, true
		}
		s := string(n.Value)
		if !n.IsRaw() && !n.IsCode() {
			s = decode(n.Value)
		}
		return ast.WalkContinue, e.emit(Text(s))

	case *ast.CodeSpan:
		if entering {
			return ast.WalkSkipChildren, e.emit(Code(e.codeSpan(n)))
		}
		return ast.WalkContinue, true

	case *ast.Emphasis:
		kind := TagEmphasis
		if n.Level == 2 {
			kind = TagStrong
		}
		return ast.WalkContinue, e.container(entering, Simple(kind))

	case *ast.Link:
		return ast.WalkContinue, e.container(entering, Link(decode(n.Destination), decode(n.Title)))

	case *ast.AutoLink:
		if !entering {
			return ast.WalkContinue, true
		}
		tag := Tag{Kind: TagLink, LinkType: LinkAutolink, Dest: string(n.URL(e.source))}
		if n.AutoLinkType == ast.AutoLinkEmail {
			tag.LinkType = LinkEmail
		}
		return ast.WalkSkipChildren, e.leaf(tag, string(n.Label(e.source)))

	case *ast.Image:
		tag := Tag{Kind: TagImage, Dest: decode(n.Destination), Title: decode(n.Title)}
		return ast.WalkContinue, e.container(entering, tag)

	case *ast.RawHTML:
		if !entering {
			return ast.WalkContinue, true
		}
		var b strings.Builder
		for i := 0; i < n.Segments.Len(); i++ {
			seg := n.Segments.At(i)
			b.Write(seg.Value(e.source))
		}
		return ast.WalkSkipChildren, e.emit(InlineHTML(b.String()))

	case *east.Table:
		tag := Tag{Kind: TagTable, Alignments: make([]Alignment, len(n.Alignments))}
		for i, a := range n.Alignments {
			tag.Alignments[i] = alignment(a)
		}
		return ast.WalkContinue, e.container(entering, tag)

	case *east.TableHeader:
		return ast.WalkContinue, e.container(entering, Simple(TagTableHead))

	case *east.TableRow:
		return ast.WalkContinue, e.container(entering, Simple(TagTableRow))

	case *east.TableCell:
		return ast.WalkContinue, e.container(entering, Simple(TagTableCell))

	case *east.Strikethrough:
		return ast.WalkContinue, e.container(entering, Simple(TagStrikethrough))

	case *east.TaskCheckBox:
		if entering {
			return ast.WalkContinue, e.emit(TaskListMarker(n.IsChecked))
		}
		return ast.WalkContinue, true

	case *east.FootnoteLink:
		if entering {
			return ast.WalkSkipChildren, e.emit(FootnoteReference(e.footnoteLabel(n.Index), n.Index))
		}
		return ast.WalkContinue, true

	case *east.FootnoteBacklink:
		return ast.WalkSkipChildren, true

	case *east.Footnote:
		tag := Tag{Kind: TagFootnoteDefinition, Label: string(n.Ref), Index: n.Index}
		return ast.WalkContinue, e.container(entering, tag)

	default:
		return ast.WalkContinue, true
	}
}

func (e *emitter) footnoteLabel(index int) string {
	if label, ok := e.footnotes[index]; ok {
		return label
	}
	return ""
}

func (e *emitter) lines(lines *text.Segments) string {
	var b strings.Builder
	for i := 0; i < lines.Len(); i++ {
		seg := lines.At(i)
		b.Write(seg.Value(e.source))
	}
	return b.String()
}

// codeSpan concatenates the raw text of a code span; line endings inside
// a span render as spaces.
func (e *emitter) codeSpan(n *ast.CodeSpan) string {
	var b strings.Builder
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		switch t := c.(type) {
		case *ast.Text:
			b.Write(t.Segment.Value(e.source))
		case *ast.String:
			b.Write(t.Value)
		}
	}
	return strings.ReplaceAll(b.String(), "\n", " ")
}

func alignment(a east.Alignment) Alignment {
	switch a {
	case east.AlignLeft:
		return AlignLeft
	case east.AlignCenter:
		return AlignCenter
	case east.AlignRight:
		return AlignRight
	default:
		return AlignNone
	}
}

// decode resolves backslash escapes and character references.
func decode(b []byte) string {
	if len(b) == 0 {
		return ""
	}
	b = util.UnescapePunctuations(b)
	b = util.ResolveNumericReferences(b)
	b = util.ResolveEntityNames(b)
	return string(b)
}
