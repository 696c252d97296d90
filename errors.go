package md2html

import (
	"errors"

	"github.com/alnah/go-md2html/internal/options"
	"github.com/alnah/go-md2html/internal/pipeline"
)

// Sentinel errors for library operations.
var (
	ErrHTMLConversion   = pipeline.ErrHTMLConversion
	ErrDocument         = errors.New("document assembly failed")
	ErrUnsupportedValue = options.ErrUnsupportedValue

	// TOC validation errors.
	ErrInvalidTOCDepth = errors.New("invalid TOC depth")
)
