// Package events turns Markdown into a flat, ordered stream of structural
// events (Start/End of containers, text runs, breaks, raw HTML) that can be
// filtered and rewritten before serialization.
package events

import (
	"fmt"
	"strings"
)

// Kind identifies an event variant.
type Kind uint8

// Event kinds.
const (
	KindStart Kind = iota
	KindEnd
	KindText
	KindCode
	KindHTML
	KindInlineHTML
	KindSoftBreak
	KindHardBreak
	KindRule
	KindTaskListMarker
	KindFootnoteReference
)

var kindNames = [...]string{
	KindStart:             "Start",
	KindEnd:               "End",
	KindText:              "Text",
	KindCode:              "Code",
	KindHTML:              "Html",
	KindInlineHTML:        "InlineHtml",
	KindSoftBreak:         "SoftBreak",
	KindHardBreak:         "HardBreak",
	KindRule:              "Rule",
	KindTaskListMarker:    "TaskListMarker",
	KindFootnoteReference: "FootnoteReference",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", k)
}

// TagKind identifies the container opened or closed by a Start/End event.
type TagKind uint8

// Container tags.
const (
	TagParagraph TagKind = iota
	TagHeading
	TagBlockQuote
	TagCodeBlock
	TagList
	TagItem
	TagTable
	TagTableHead
	TagTableRow
	TagTableCell
	TagEmphasis
	TagStrong
	TagStrikethrough
	TagLink
	TagImage
	TagFootnoteDefinition
)

var tagNames = [...]string{
	TagParagraph:          "Paragraph",
	TagHeading:            "Heading",
	TagBlockQuote:         "BlockQuote",
	TagCodeBlock:          "CodeBlock",
	TagList:               "List",
	TagItem:               "Item",
	TagTable:              "Table",
	TagTableHead:          "TableHead",
	TagTableRow:           "TableRow",
	TagTableCell:          "TableCell",
	TagEmphasis:           "Emphasis",
	TagStrong:             "Strong",
	TagStrikethrough:      "Strikethrough",
	TagLink:               "Link",
	TagImage:              "Image",
	TagFootnoteDefinition: "FootnoteDefinition",
}

func (k TagKind) String() string {
	if int(k) < len(tagNames) {
		return tagNames[k]
	}
	return fmt.Sprintf("TagKind(%d)", k)
}

// LinkType distinguishes how a link or image was written.
type LinkType uint8

// Link types.
const (
	LinkInline LinkType = iota
	LinkAutolink
	LinkEmail
)

// Alignment is a table column alignment.
type Alignment uint8

// Column alignments.
const (
	AlignNone Alignment = iota
	AlignLeft
	AlignCenter
	AlignRight
)

// Tag describes a container. Only the fields relevant to Kind are set.
type Tag struct {
	Kind TagKind

	Level int // Heading: 1-6

	Fenced bool   // CodeBlock
	Info   string // CodeBlock: fence info string

	Ordered bool // List
	Start   int  // List: first number of an ordered list

	Alignments []Alignment // Table

	LinkType LinkType // Link, Image
	Dest     string   // Link, Image
	Title    string   // Link, Image

	Label string // FootnoteDefinition
	Index int    // FootnoteDefinition: display number
}

// Language returns the first word of a fenced code block's info string.
func (t Tag) Language() string {
	lang, _, _ := strings.Cut(strings.TrimSpace(t.Info), " ")
	return lang
}

// Event is one unit of the structural stream.
type Event struct {
	Kind Kind
	Tag  Tag    // Start, End
	Text string // Text, Code, Html, InlineHtml, FootnoteReference (label)

	Checked bool // TaskListMarker
	Index   int  // FootnoteReference: display number
}

func (e Event) String() string {
	switch e.Kind {
	case KindStart, KindEnd:
		if e.Tag.Kind == TagHeading {
			return fmt.Sprintf("%s(%s(%d))", e.Kind, e.Tag.Kind, e.Tag.Level)
		}
		return fmt.Sprintf("%s(%s)", e.Kind, e.Tag.Kind)
	case KindText, KindCode, KindHTML, KindInlineHTML, KindFootnoteReference:
		return fmt.Sprintf("%s(%q)", e.Kind, e.Text)
	case KindTaskListMarker:
		return fmt.Sprintf("%s(%t)", e.Kind, e.Checked)
	default:
		return e.Kind.String()
	}
}

// Start opens tag.
func Start(tag Tag) Event { return Event{Kind: KindStart, Tag: tag} }

// End closes tag.
func End(tag Tag) Event { return Event{Kind: KindEnd, Tag: tag} }

// Text is a run of literal text; the serializer escapes it.
func Text(s string) Event { return Event{Kind: KindText, Text: s} }

// Code is an inline code span.
func Code(s string) Event { return Event{Kind: KindCode, Text: s} }

// HTML is raw markup written verbatim by the serializer.
func HTML(s string) Event { return Event{Kind: KindHTML, Text: s} }

// InlineHTML is raw inline markup written verbatim by the serializer.
func InlineHTML(s string) Event { return Event{Kind: KindInlineHTML, Text: s} }

// SoftBreak is a line ending inside a paragraph.
func SoftBreak() Event { return Event{Kind: KindSoftBreak} }

// HardBreak is a forced line break.
func HardBreak() Event { return Event{Kind: KindHardBreak} }

// Rule is a thematic break.
func Rule() Event { return Event{Kind: KindRule} }

// TaskListMarker is a task list checkbox.
func TaskListMarker(checked bool) Event {
	return Event{Kind: KindTaskListMarker, Checked: checked}
}

// FootnoteReference points at the footnote definition labeled label.
func FootnoteReference(label string, index int) Event {
	return Event{Kind: KindFootnoteReference, Text: label, Index: index}
}

// Heading is the Tag of a heading of the given level.
func Heading(level int) Tag { return Tag{Kind: TagHeading, Level: level} }

// Link is the Tag of an inline link.
func Link(dest, title string) Tag {
	return Tag{Kind: TagLink, LinkType: LinkInline, Dest: dest, Title: title}
}

// Simple is the Tag of a container carrying no attributes.
func Simple(kind TagKind) Tag { return Tag{Kind: kind} }
