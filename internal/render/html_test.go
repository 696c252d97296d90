package render

import (
	"errors"
	"slices"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alnah/go-md2html/internal/events"
)

func renderMarkdown(input string, ext events.Extensions, opts Options) string {
	return String(events.Parse([]byte(input), ext), opts)
}

func TestString_CommonMark(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"paragraph", "foo\n", "<p>foo</p>\n"},
		{"soft break", "foo\nbar\n", "<p>foo\nbar</p>\n"},
		{"hard break", "foo  \nbar\n", "<p>foo<br />\nbar</p>\n"},
		{"heading", "## foo\n", "<h2>foo</h2>\n"},
		{"thematic breaks", "***\n\n---\n\n___\n\n", "<hr />\n<hr />\n<hr />\n"},
		{"indented thematic breaks", " ***\n  ***\n   ***\n", "<hr />\n<hr />\n<hr />\n"},
		{"indented code is not a break", "    ***\n", "<pre><code>***\n</code></pre>\n"},
		{"long break", "_____________________________________\n", "<hr />\n"},
		{"tab indented code", "\tfoo\tbaz\t\tbim\n", "<pre><code>foo\tbaz\t\tbim\n</code></pre>\n"},
		{"mixed indent code", "  \tfoo\tbaz\t\tbim\n", "<pre><code>foo\tbaz\t\tbim\n</code></pre>\n"},
		{"code with unicode", "    a\ta\n    ὐ\ta\n", "<pre><code>a\ta\nὐ\ta\n</code></pre>\n"},
		{"loose list", "  - foo\n\n\tbar\n", "<ul>\n<li>\n<p>foo</p>\n<p>bar</p>\n</li>\n</ul>\n"},
		{"blockquote with code", ">\t\tfoo\n", "<blockquote>\n<pre><code>  foo\n</code></pre>\n</blockquote>\n"},
		{"tabbed rule", "*\t*\t*\t\n", "<hr />\n"},
		{"precedence", "- `one\n- two`\n", "<ul>\n<li>`one</li>\n<li>two`</li>\n</ul>\n"},
		{"fenced with language", "```go\nx := 1\n```\n", "<pre><code class=\"language-go\">x := 1\n</code></pre>\n"},
		{"escaped text", "a < b & c\n", "<p>a &lt; b &amp; c</p>\n"},
		{"inline code", "use `<b>`\n", "<p>use <code>&lt;b&gt;</code></p>\n"},
		{"emphasis", "*em* **strong**\n", "<p><em>em</em> <strong>strong</strong></p>\n"},
		{"link with title", "[a](/u \"T\")\n", "<p><a href=\"/u\" title=\"T\">a</a></p>\n"},
		{"image", "![alt *text*](/i.png)\n", "<p><img src=\"/i.png\" alt=\"alt text\" /></p>\n"},
		{"ordered list start", "2. a\n3. b\n", "<ol start=\"2\">\n<li>a</li>\n<li>b</li>\n</ol>\n"},
		{"html block", "<div>\nhi\n</div>\n", "<div>\nhi\n</div>\n"},
		{"email autolink", "<me@example.com>\n", "<p><a href=\"mailto:me@example.com\">me@example.com</a></p>\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, renderMarkdown(tt.input, events.Extensions{}, Options{}))
		})
	}
}

func TestString_Extensions(t *testing.T) {
	t.Parallel()

	all := events.Extensions{Tables: true, Strikethrough: true, TaskLists: true}

	t.Run("table", func(t *testing.T) {
		t.Parallel()
		got := renderMarkdown("| a | b |\n|:-:|---|\n| 1 | 2 |\n", all, Options{})
		want := "<table><thead><tr><th style=\"text-align: center\">a</th><th>b</th></tr></thead><tbody>\n" +
			"<tr><td style=\"text-align: center\">1</td><td>2</td></tr>\n</tbody></table>\n"
		assert.Equal(t, want, got)
	})

	t.Run("strikethrough", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "<p><del>gone</del></p>\n", renderMarkdown("~~gone~~\n", all, Options{}))
	})

	t.Run("task list", func(t *testing.T) {
		t.Parallel()
		got := renderMarkdown("- [x] done\n", all, Options{})
		assert.Contains(t, got, `<input disabled="" type="checkbox" checked=""/>`)
		assert.Contains(t, got, "done")
	})

	t.Run("footnote", func(t *testing.T) {
		t.Parallel()
		got := renderMarkdown("Text[^1]\n\n[^1]: Body\n", events.Extensions{}, Options{})
		assert.Contains(t, got, `<sup class="footnote-reference"><a href="#1">1</a></sup>`)
		assert.Contains(t, got, `<div class="footnote-definition" id="1">`)
		assert.Contains(t, got, "Body")
	})
}

func TestString_RawEvents(t *testing.T) {
	t.Parallel()

	seq := slices.Values([]events.Event{
		events.HTML(`<h1 id="foo">foo</h1>`),
		events.SoftBreak(),
		events.Start(events.Simple(events.TagParagraph)),
		events.Text("**"),
		events.Text("bold"),
		events.Text("**"),
		events.End(events.Simple(events.TagParagraph)),
	})

	assert.Equal(t, "<h1 id=\"foo\">foo</h1>\n<p>**bold**</p>\n", String(seq, Options{}))
}

func TestString_Highlight(t *testing.T) {
	t.Parallel()

	got := renderMarkdown("```go\nfunc main() {}\n```\n", events.Extensions{}, Options{Highlight: true, Style: "github"})

	assert.Contains(t, got, `class="chroma"`)
	assert.NotContains(t, got, "language-go")
	assert.True(t, strings.HasSuffix(got, "\n"))
}

func TestString_HighlightUnknownLanguage(t *testing.T) {
	t.Parallel()

	got := renderMarkdown("```nosuchlang\nx\n```\n", events.Extensions{}, Options{Highlight: true})

	assert.Equal(t, "<pre><code class=\"language-nosuchlang\">x\n</code></pre>\n", got)
}

func TestHighlightCSS(t *testing.T) {
	t.Parallel()

	css, err := HighlightCSS("github")
	require.NoError(t, err)
	assert.Contains(t, css, ".chroma")
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestHTML_WriterError(t *testing.T) {
	t.Parallel()

	err := HTML(failingWriter{}, slices.Values([]events.Event{events.Text("x")}), Options{})

	require.ErrorIs(t, err, ErrWrite)
}

func TestEscapeHref(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want string
	}{
		{"https://example.com/a?b=c&d=e", "https://example.com/a?b=c&amp;d=e"},
		{"/path with space", "/path%20with%20space"},
		{"it's", "it&#x27;s"},
		{"/ü", "/%C3%BC"},
		{`"quoted"`, "%22quoted%22"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, EscapeHref(tt.in), tt.in)
	}
}

func TestEscapeHTML(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "&lt;a href=&quot;x&quot;&gt;&amp;", EscapeHTML(`<a href="x">&`))
	assert.Equal(t, "it's", EscapeHTML("it's"))
}
