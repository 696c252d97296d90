package main

import (
	"errors"
	"os"

	"github.com/alecthomas/chroma/v2/styles"

	"github.com/alnah/go-md2html/internal/config"
	"github.com/alnah/go-md2html/internal/hints"
	"github.com/alnah/go-md2html/internal/options"
)

// hintFor returns an actionable hint to print after err, or "".
func hintFor(err error) string {
	var optErr *config.OptionError
	switch {
	case err == nil:
		return ""
	case errors.As(err, &optErr):
		if style, ok := options.AsString(optErr.Value); ok && optErr.Key == options.KeyHighlightStyle {
			return hints.ForHighlightStyle(style, styles.Names())
		}
		return hints.ForOptionValue(optErr.Key)
	case errors.Is(err, config.ErrConfigNotFound):
		dir, _ := os.UserConfigDir()
		return hints.ForConfigNotFound(dir)
	case errors.Is(err, ErrInvalidExtension):
		return hints.ForMarkdownInput()
	case errors.Is(err, ErrWriteHTML):
		return hints.ForOutputDirectory()
	}
	return ""
}
