package pipeline

import (
	"context"
	"errors"
	"fmt"

	"github.com/alnah/go-md2html/internal/events"
	"github.com/alnah/go-md2html/internal/options"
	"github.com/alnah/go-md2html/internal/render"
	"github.com/alnah/go-md2html/internal/transform"
)

// ErrHTMLConversion indicates HTML conversion failed.
var ErrHTMLConversion = errors.New("HTML conversion failed")

// HTMLConverter abstracts Markdown to HTML conversion.
type HTMLConverter interface {
	ToHTML(ctx context.Context, content string) (string, error)
}

// Fragment converts Markdown into an HTML fragment. Missing keys in opts
// fall back to the built-in defaults.
func Fragment(markdown string, opts options.Set) string {
	opts = options.WithDefaults(opts)

	seq := events.Parse([]byte(markdown), ExtensionsFor(opts))
	seq = transform.Transform(seq, opts)
	out := render.String(seq, RenderOptionsFor(opts))

	if opts.Bool(options.KeySanitize) {
		out = Sanitize(out)
	}
	return out
}

// ExtensionsFor selects the parser extensions enabled in opts.
func ExtensionsFor(opts options.Set) events.Extensions {
	return events.Extensions{
		Tables:        opts.Bool(options.KeyTables),
		Strikethrough: opts.Bool(options.KeyStrikethrough),
		TaskLists:     opts.Bool(options.KeyTasklists),
	}
}

// RenderOptionsFor selects the serializer settings in opts.
func RenderOptionsFor(opts options.Set) render.Options {
	style, ok := opts.Str(options.KeyHighlightStyle)
	if !ok || style == "" {
		style = options.DefaultHighlightStyle
	}
	return render.Options{
		Highlight: opts.Bool(options.KeyHighlightCode),
		Style:     style,
	}
}

// EventConverter converts Markdown to HTML fragments with a fixed option set.
type EventConverter struct {
	preprocessor MarkdownPreprocessor
	opts         options.Set
}

// NewEventConverter creates an EventConverter. opts is copied.
func NewEventConverter(opts options.Set) *EventConverter {
	return &EventConverter{
		preprocessor: &LineEndingPreprocessor{},
		opts:         options.WithDefaults(opts),
	}
}

// Options returns a copy of the converter's option set.
func (c *EventConverter) Options() options.Set {
	return c.opts.Clone()
}

// ToHTML converts Markdown content to an HTML fragment.
// Supports context cancellation via goroutine + select since the event
// producer does not take a context.
func (c *EventConverter) ToHTML(ctx context.Context, content string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	type result struct {
		html string
		err  error
	}

	done := make(chan result, 1)

	go func() {
		defer func() {
			if r := recover(); r != nil {
				done <- result{err: fmt.Errorf("%w: %v", ErrHTMLConversion, r)}
			}
		}()
		markdown := c.preprocessor.PreprocessMarkdown(ctx, content)
		done <- result{html: Fragment(markdown, c.opts)}
	}()

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case r := <-done:
		return r.html, r.err
	}
}
