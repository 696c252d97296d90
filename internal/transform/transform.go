// Package transform rewrites a Markdown event stream according to the
// conversion options: synthesized headings with ids, new-window links,
// literal asterisks, simple line breaks, emoji and mention links.
package transform

import (
	"iter"
	"strconv"
	"strings"

	"golang.org/x/text/cases"

	"github.com/alnah/go-md2html/internal/events"
	"github.com/alnah/go-md2html/internal/options"
	"github.com/alnah/go-md2html/internal/render"
)

// rules is the option set resolved once per conversion.
type rules struct {
	levelStart    int64
	hasLevelStart bool

	noHeaderID           bool
	customizedHeaderID   bool
	ghCompatibleHeaderID bool
	rawHeaderID          bool
	rawPrefixHeaderID    bool
	headerPrefix         string

	requireSpaceBeforeHeadingText bool
	literalMidWordAsterisks       bool
	simpleLineBreaks              bool
	emoji                         bool
	ghMentions                    bool
	mentionLink                   string
	openLinksInNewWindow          bool

	lower cases.Caser
}

func newRules(opts options.Set) *rules {
	r := &rules{
		noHeaderID:                    opts.Bool(options.KeyNoHeaderID),
		customizedHeaderID:            opts.Bool(options.KeyCustomizedHeaderID),
		ghCompatibleHeaderID:          opts.Bool(options.KeyGhCompatibleHeaderID),
		rawHeaderID:                   opts.Bool(options.KeyRawHeaderID),
		rawPrefixHeaderID:             opts.Bool(options.KeyRawPrefixHeaderID),
		headerPrefix:                  headerPrefix(opts.Get(options.KeyPrefixHeaderID)),
		requireSpaceBeforeHeadingText: opts.Bool(options.KeyRequireSpaceBeforeHeadingText),
		literalMidWordAsterisks:       opts.Bool(options.KeyLiteralMidWordAsterisks),
		simpleLineBreaks:              opts.Bool(options.KeySimpleLineBreaks),
		emoji:                         opts.Bool(options.KeyEmoji),
		ghMentions:                    opts.Bool(options.KeyGhMentions),
		mentionLink:                   options.DefaultGhMentionsLink,
		openLinksInNewWindow:          opts.Bool(options.KeyOpenLinksInNewWindow),
		lower:                         newLowerCaser(),
	}
	r.levelStart, r.hasLevelStart = opts.Int(options.KeyHeaderLevelStart)
	if link, ok := opts.Str(options.KeyGhMentionsLink); ok {
		r.mentionLink = link
	}
	return r
}

// headerPrefix resolves prefixHeaderId: falsy gives no prefix, a string is
// used as written and any other truthy value gives "section-".
func headerPrefix(v options.Value) string {
	if !options.AsBool(v) {
		return ""
	}
	if s, ok := options.AsString(v); ok {
		return s
	}
	return options.DefaultHeaderIDPrefix
}

// effectiveLevel applies the headerLevelStart offset.
func (r *rules) effectiveLevel(level int) int {
	if !r.hasLevelStart {
		return level
	}
	return int(r.levelStart) + level - 1
}

type linkState uint8

const (
	linkPassed   linkState = iota // Start event emitted unchanged
	linkConsumed                  // Start suppressed, target carried to the text
	linkOpened                    // anchor written as raw HTML, closed at End
)

type pendingKind uint8

const (
	pendingNone pendingKind = iota
	pendingHeading
	pendingLink
)

// state carries context from one event to a later one within a single pass.
// At most one rewrite is pending at a time.
type state struct {
	pending pendingKind
	level   int    // pendingHeading: effective level
	dest    string // pendingLink: destination

	links     []linkState
	codeDepth int
	altDepth  int
}

// Transform returns the rewritten stream of seq under opts. Like seq, the
// result is lazy and single-pass.
func Transform(seq iter.Seq[events.Event], opts options.Set) iter.Seq[events.Event] {
	return func(yield func(events.Event) bool) {
		r := newRules(opts)
		st := &state{}
		for ev := range seq {
			if !r.step(st, ev, yield) {
				return
			}
		}
	}
}

// step rewrites one event, emitting zero or more events through emit.
// It reports false once the consumer stops.
func (r *rules) step(st *state, ev events.Event, emit func(events.Event) bool) bool {
	if st.pending == pendingLink && ev.Kind != events.KindText && !isLinkEnd(ev) {
		// Link content does not start with text: open the anchor here.
		st.links[len(st.links)-1] = linkOpened
		dest := st.dest
		st.pending = pendingNone
		st.dest = ""
		if !emit(events.InlineHTML(newWindowAnchor(dest))) {
			return false
		}
	}
	switch ev.Kind {
	case events.KindStart:
		return r.start(st, ev, emit)
	case events.KindEnd:
		return r.end(st, ev, emit)
	case events.KindText:
		return emit(r.text(st, ev.Text))
	case events.KindSoftBreak:
		if r.simpleLineBreaks {
			return emit(events.HardBreak())
		}
	}
	return emit(ev)
}

func (r *rules) start(st *state, ev events.Event, emit func(events.Event) bool) bool {
	switch ev.Tag.Kind {
	case events.TagHeading:
		if ev.Tag.Level >= 1 && ev.Tag.Level <= 6 {
			st.pending = pendingHeading
			st.level = r.effectiveLevel(ev.Tag.Level)
			return true
		}
	case events.TagLink:
		if !r.openLinksInNewWindow || st.pending != pendingNone {
			st.links = append(st.links, linkPassed)
			break
		}
		st.links = append(st.links, linkConsumed)
		st.pending = pendingLink
		st.dest = ev.Tag.Dest
		return true
	case events.TagStrong:
		if r.literalMidWordAsterisks {
			return emit(events.Text("**"))
		}
	case events.TagCodeBlock:
		st.codeDepth++
	case events.TagImage:
		st.altDepth++
	}
	return emit(ev)
}

func (r *rules) end(st *state, ev events.Event, emit func(events.Event) bool) bool {
	switch ev.Tag.Kind {
	case events.TagHeading:
		if st.pending != pendingHeading {
			break
		}
		st.pending = pendingNone
		return emit(events.SoftBreak())
	case events.TagLink:
		link := linkPassed
		if n := len(st.links); n > 0 {
			link = st.links[n-1]
			st.links = st.links[:n-1]
		}
		switch link {
		case linkConsumed:
			if st.pending == pendingLink {
				st.pending = pendingNone
				st.dest = ""
			}
			return true
		case linkOpened:
			return emit(events.InlineHTML("</a>"))
		}
	case events.TagStrong:
		if r.literalMidWordAsterisks {
			return emit(events.Text("**"))
		}
	case events.TagCodeBlock:
		st.codeDepth--
	case events.TagImage:
		st.altDepth--
	}
	return emit(ev)
}

// text applies the text rules in priority order: pending heading, pending
// link, then a leading '#' run read as a heading. Emoji substitution runs
// first and mention links last.
func (r *rules) text(st *state, s string) events.Event {
	if st.codeDepth > 0 || st.altDepth > 0 {
		return events.Text(s)
	}
	if r.emoji {
		s = substituteEmoji(s)
	}

	switch st.pending {
	case pendingHeading:
		return events.HTML(r.heading(st, st.level, s))
	case pendingLink:
		dest := st.dest
		st.pending = pendingNone
		st.dest = ""
		return events.HTML(newWindowAnchor(dest) + render.EscapeHTML(s) + "</a>")
	}

	if !r.requireSpaceBeforeHeadingText {
		if level, rest, ok := hashHeading(s); ok {
			return events.HTML(r.heading(st, r.effectiveLevel(level), rest))
		}
	}

	if r.ghMentions && !r.insideLink(st) {
		if linked, ok := r.linkMentions(render.EscapeHTML(s)); ok {
			return events.HTML(linked)
		}
	}
	return events.Text(s)
}

func (r *rules) insideLink(st *state) bool {
	return len(st.links) > 0
}

func isLinkEnd(ev events.Event) bool {
	return ev.Kind == events.KindEnd && ev.Tag.Kind == events.TagLink
}

func newWindowAnchor(dest string) string {
	return `<a href="` + render.EscapeHref(dest) + `" rel="noopener noreferrer" target="_blank">`
}

// heading synthesizes the markup of a heading from its text. Mentions are
// not linked when the heading text already sits inside a link.
func (r *rules) heading(st *state, level int, text string) string {
	display, attr := r.headerID(text)
	inner := render.EscapeHTML(display)
	if r.ghMentions && !r.insideLink(st) {
		if linked, ok := r.linkMentions(inner); ok {
			inner = linked
		}
	}
	return headingHTML(level, attr, inner)
}

func headingHTML(level int, attr, inner string) string {
	tag := "h" + strconv.Itoa(level)
	return "<" + tag + attr + ">" + inner + "</" + tag + ">"
}

// hashHeading reads a leading run of '#' as a heading level. The run is not
// capped at six: "####### x" gives level 7, like headerLevelStart offsets do.
func hashHeading(s string) (level int, rest string, ok bool) {
	n := len(s) - len(strings.TrimLeft(s, "#"))
	if n == 0 {
		return 0, "", false
	}
	return n, strings.TrimLeft(s[n:], " \t"), true
}
