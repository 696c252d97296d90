// Package md2html converts Markdown to HTML through a configurable event
// transform.
//
// # Quick Start
//
// Convert a string with an explicit option set:
//
//	html := md2html.Convert("# Hello\n", md2html.Options{
//	    md2html.NoHeaderID: md2html.Bool(true),
//	})
//	// <h1>Hello</h1>
//
// Missing options fall back to the built-in defaults (see DefaultOptions).
//
// # Conversion Pipeline
//
// The conversion process follows these stages:
//
//  1. Markdown preprocessing (line ending normalization)
//  2. Parsing into a stream of structural events (goldmark)
//  3. Option-driven rewriting of the stream: heading ids and level offset,
//     new-window links, literal asterisks, simple line breaks, emoji and
//     @mention links
//  4. Serialization to HTML, with optional chroma highlighting
//  5. Optional sanitizing (bluemonday)
//
// # Options
//
// Options map names to loosely typed values. Flags accept booleans, numbers
// (nonzero is true) and strings (non-empty is true); headerLevelStart accepts
// integers and numeric strings. Malformed values never fail a conversion.
//
// # Shared Defaults
//
// DefaultStore holds a process-wide option set. GetOption, GetOptions and
// SetOption read and write it, and ConvertWithDefaults converts with a
// snapshot of it:
//
//	md2html.SetOption(md2html.GhMentions, md2html.Bool(true))
//	html := md2html.ConvertWithDefaults("@alice hi\n")
//
// # Converter
//
// For context-aware conversion, logging and standalone pages, use Converter:
//
//	conv := md2html.NewConverter(
//	    md2html.WithOptions(md2html.Options{md2html.Tables: md2html.Bool(true)}),
//	    md2html.WithLogger(slog.Default()),
//	)
//	page, err := conv.ConvertDocument(ctx, content, md2html.Document{
//	    TOC: &md2html.TOC{Title: "Contents"},
//	})
package md2html
