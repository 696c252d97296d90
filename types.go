package md2html

import (
	"fmt"

	"github.com/alnah/go-md2html/internal/pipeline"
)

// TOC depth bounds.
const (
	MinTOCDepth        = 1
	MaxTOCDepth        = 6
	DefaultTOCMinDepth = pipeline.DefaultTOCMinDepth
	DefaultTOCMaxDepth = pipeline.DefaultTOCMaxDepth
)

// TOC configures the table of contents of a standalone page.
type TOC struct {
	Title    string // heading above the list; empty omits it
	MinDepth int    // 0 means DefaultTOCMinDepth
	MaxDepth int    // 0 means DefaultTOCMaxDepth
}

// Validate checks that depths are within 1-6 and ordered.
// Returns nil if t is nil (nil means no TOC).
func (t *TOC) Validate() error {
	if t == nil {
		return nil
	}

	lo, hi := t.depths()
	if lo < MinTOCDepth || lo > MaxTOCDepth {
		return fmt.Errorf("%w: minDepth %d (must be between %d and %d)", ErrInvalidTOCDepth, lo, MinTOCDepth, MaxTOCDepth)
	}
	if hi < MinTOCDepth || hi > MaxTOCDepth {
		return fmt.Errorf("%w: maxDepth %d (must be between %d and %d)", ErrInvalidTOCDepth, hi, MinTOCDepth, MaxTOCDepth)
	}
	if lo > hi {
		return fmt.Errorf("%w: minDepth %d exceeds maxDepth %d", ErrInvalidTOCDepth, lo, hi)
	}
	return nil
}

func (t *TOC) depths() (lo, hi int) {
	lo, hi = t.MinDepth, t.MaxDepth
	if lo == 0 {
		lo = DefaultTOCMinDepth
	}
	if hi == 0 {
		hi = DefaultTOCMaxDepth
	}
	return lo, hi
}

// Document configures standalone HTML page output.
type Document struct {
	Title        string // empty: text of the first heading
	CSS          string // stylesheet injected into <head>
	Highlight    bool   // include the chroma stylesheet for the highlightStyle option
	TOC          *TOC   // nil: no table of contents
	RewriteLinks bool   // point relative .md links at .html files
}

// Validate checks the document settings.
func (d Document) Validate() error {
	return d.TOC.Validate()
}

// toDocumentOptions converts the public Document to pipeline.DocumentOptions.
func toDocumentOptions(d Document, highlightStyle string) pipeline.DocumentOptions {
	out := pipeline.DocumentOptions{
		Title:        d.Title,
		CSS:          d.CSS,
		RewriteLinks: d.RewriteLinks,
	}
	if d.Highlight {
		out.HighlightStyle = highlightStyle
	}
	if d.TOC != nil {
		lo, hi := d.TOC.depths()
		out.TOC = &pipeline.TOCData{Title: d.TOC.Title, MinDepth: lo, MaxDepth: hi}
	}
	return out
}
