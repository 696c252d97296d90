package md2html

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"time"

	"github.com/alnah/go-md2html/internal/options"
	"github.com/alnah/go-md2html/internal/pipeline"
)

// Compile-time interface implementation checks.
var (
	_ pipeline.MarkdownPreprocessor = (*pipeline.LineEndingPreprocessor)(nil)
	_ pipeline.HTMLConverter        = (*pipeline.EventConverter)(nil)
	_ pipeline.CSSInjector          = (*pipeline.CSSInjection)(nil)
	_ pipeline.TOCInjector          = (*pipeline.TOCInjection)(nil)
)

// Converter holds an option set of its own and converts Markdown with it.
// Create with NewConverter. A Converter is safe for concurrent use; option
// changes apply to conversions started afterwards.
type Converter struct {
	mu     sync.RWMutex
	opts   Options
	logger *slog.Logger
}

// Option configures a Converter.
type Option func(*Converter)

// WithStore seeds the converter with a snapshot of store. Later changes to
// store do not reach the converter.
func WithStore(store *Store) Option {
	return func(c *Converter) {
		if store != nil {
			c.opts = c.opts.Merge(store.GetAll())
		}
	}
}

// WithOptions overlays opts on the converter's options.
func WithOptions(opts Options) Option {
	return func(c *Converter) {
		c.opts = c.opts.Merge(opts)
	}
}

// WithOption sets a single option.
func WithOption(key string, value Value) Option {
	return func(c *Converter) {
		c.opts[key] = value
	}
}

// WithLogger sets the logger for conversion diagnostics (Debug level).
// The default discards everything.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Converter) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// NewConverter creates a Converter from the built-in defaults and opts.
// Called without options it starts from a snapshot of DefaultStore, like
// ConvertWithDefaults.
func NewConverter(opts ...Option) *Converter {
	c := &Converter{
		opts:   options.Defaults(),
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	if len(opts) == 0 {
		opts = []Option{WithStore(DefaultStore)}
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// SetOption sets key on this converter only.
func (c *Converter) SetOption(key string, value Value) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.opts[key] = value
}

// GetOption returns the converter's value for key.
func (c *Converter) GetOption(key string) (Value, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	v, ok := c.opts[key]
	return v, ok
}

// GetOptions returns a snapshot of the converter's options.
func (c *Converter) GetOptions() Options {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.opts.Clone()
}

// Convert renders markdown as an HTML fragment.
// The context is checked before work starts and while the conversion runs.
// Recovers from internal panics to prevent crashes from propagating to callers.
func (c *Converter) Convert(ctx context.Context, markdown string) (html string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: internal error: %v", ErrHTMLConversion, r)
		}
	}()

	opts := c.GetOptions()
	start := time.Now()

	html, err = pipeline.NewEventConverter(opts).ToHTML(ctx, markdown)
	if err != nil {
		c.logger.Debug("conversion failed", slog.Any("error", err))
		return "", err
	}

	c.logger.Debug("converted markdown",
		slog.Int("input_bytes", len(markdown)),
		slog.Int("output_bytes", len(html)),
		slog.Duration("elapsed", time.Since(start)))
	return html, nil
}

// ConvertDocument renders markdown as a standalone HTML5 page.
func (c *Converter) ConvertDocument(ctx context.Context, markdown string, doc Document) (string, error) {
	if err := doc.Validate(); err != nil {
		return "", err
	}

	fragment, err := c.Convert(ctx, markdown)
	if err != nil {
		return "", err
	}

	style, ok := c.GetOptions().Str(options.KeyHighlightStyle)
	if !ok || style == "" {
		style = options.DefaultHighlightStyle
	}

	page, err := pipeline.Document(ctx, fragment, toDocumentOptions(doc, style))
	if err != nil {
		if ctx.Err() != nil {
			return "", err
		}
		return "", fmt.Errorf("%w: %v", ErrDocument, err)
	}
	return page, nil
}
