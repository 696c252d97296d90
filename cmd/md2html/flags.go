package main

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"unicode"

	flag "github.com/spf13/pflag"

	"github.com/alnah/go-md2html/internal/options"
)

// ErrInvalidSet is returned when a --set value is not key=value.
var ErrInvalidSet = errors.New("invalid --set value (want key=value)")

// commonFlags holds flags shared across commands.
type commonFlags struct {
	config  string
	quiet   bool
	verbose bool
}

// optionFlags holds conversion option flags. Values only apply when the
// flag was given, so config and environment values survive.
type optionFlags struct {
	set              []string
	headerLevelStart int
	prefixHeaderID   string
	ghMentionsLink   string
	highlightStyle   string
	flags            map[string]*bool // boolean option name -> flag value
}

// documentFlags holds standalone page flags.
type documentFlags struct {
	standalone   bool
	title        string
	css          string
	highlight    bool
	rewriteLinks bool
}

// tocFlags holds table of contents flags.
type tocFlags struct {
	enabled  bool
	title    string
	minDepth int
	maxDepth int
}

// convertFlags holds all flags for the convert command.
type convertFlags struct {
	common   commonFlags
	output   string
	workers  int
	watch    bool
	options  optionFlags
	document documentFlags
	toc      tocFlags

	// overrides holds the options given on the command line, set by
	// parseConvertFlags after parsing.
	overrides options.Set
}

// optionFlagName converts an option name to its flag name:
// "ghCompatibleHeaderId" becomes "gh-compatible-header-id".
func optionFlagName(key string) string {
	var b strings.Builder
	for i, r := range key {
		if unicode.IsUpper(r) {
			if i > 0 {
				b.WriteByte('-')
			}
			r = unicode.ToLower(r)
		}
		b.WriteRune(r)
	}
	return b.String()
}

// addCommonFlags adds common flags to a FlagSet.
func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show detailed timing")
}

// addOptionFlags adds one flag per conversion option to a FlagSet.
func addOptionFlags(fs *flag.FlagSet, f *optionFlags) {
	fs.StringArrayVar(&f.set, "set", nil, "set any option: key=value (repeatable)")
	fs.IntVar(&f.headerLevelStart, "header-level-start", options.DefaultHeaderLevelStart, "level of a top-level heading")
	fs.StringVar(&f.prefixHeaderID, optionFlagName(options.KeyPrefixHeaderID), "", "prefix header ids (bare flag = \"section-\")")
	fs.Lookup(optionFlagName(options.KeyPrefixHeaderID)).NoOptDefVal = "true"
	fs.StringVar(&f.ghMentionsLink, optionFlagName(options.KeyGhMentionsLink), options.DefaultGhMentionsLink, "mention link template ({u} = user)")
	fs.StringVar(&f.highlightStyle, optionFlagName(options.KeyHighlightStyle), options.DefaultHighlightStyle, "chroma style for code blocks")

	f.flags = make(map[string]*bool)
	for _, key := range options.Keys() {
		if !options.IsBoolean(key) || key == options.KeyPrefixHeaderID {
			continue
		}
		f.flags[key] = fs.Bool(optionFlagName(key), false, "enable "+key)
	}
}

// addDocumentFlags adds standalone page flags to a FlagSet.
func addDocumentFlags(fs *flag.FlagSet, f *documentFlags) {
	fs.BoolVarP(&f.standalone, "standalone", "s", false, "wrap output in a complete HTML page")
	fs.StringVar(&f.title, "title", "", "page title (\"\" = first heading)")
	fs.StringVar(&f.css, "css", "", "stylesheet file to embed")
	fs.BoolVar(&f.highlight, "highlight", false, "embed the code highlighting stylesheet")
	fs.BoolVar(&f.rewriteLinks, "rewrite-links", false, "point relative .md links at .html")
}

// addTOCFlags adds TOC flags to a FlagSet.
func addTOCFlags(fs *flag.FlagSet, f *tocFlags) {
	fs.BoolVar(&f.enabled, "toc", false, "insert a table of contents")
	fs.StringVar(&f.title, "toc-title", "", "table of contents heading")
	fs.IntVar(&f.minDepth, "toc-min-depth", 0, "min heading depth for TOC (1-6, default: 2)")
	fs.IntVar(&f.maxDepth, "toc-max-depth", 0, "max heading depth for TOC (1-6, default: 3)")
}

// buildConvertFlagSet registers every convert flag on a new FlagSet.
func buildConvertFlagSet(f *convertFlags) *flag.FlagSet {
	fs := flag.NewFlagSet("convert", flag.ContinueOnError)

	// I/O flags
	fs.StringVarP(&f.output, "output", "o", "", "output file or directory")
	fs.IntVarP(&f.workers, "workers", "w", 0, "parallel workers (0 = auto)")
	fs.BoolVar(&f.watch, "watch", false, "convert again when inputs change")

	// Flag groups
	addCommonFlags(fs, &f.common)
	addOptionFlags(fs, &f.options)
	addDocumentFlags(fs, &f.document)
	addTOCFlags(fs, &f.toc)

	return fs
}

// parseConvertFlags parses convert command flags and returns positional args.
func parseConvertFlags(args []string) (*convertFlags, []string, error) {
	f := &convertFlags{}
	fs := buildConvertFlagSet(f)
	fs.Usage = func() { printConvertUsage(os.Stderr) }

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}

	overrides, err := optionOverrides(fs, &f.options)
	if err != nil {
		return nil, nil, err
	}
	f.overrides = overrides

	return f, fs.Args(), nil
}

// optionOverrides collects the options given on the command line. Named
// flags win over --set for the same option.
func optionOverrides(fs *flag.FlagSet, f *optionFlags) (options.Set, error) {
	overrides := options.Set{}
	for _, kv := range f.set {
		key, value, ok := strings.Cut(kv, "=")
		if !ok || strings.TrimSpace(key) == "" {
			return nil, fmt.Errorf("%w: %q", ErrInvalidSet, kv)
		}
		overrides[strings.TrimSpace(key)] = options.Parse(value)
	}

	for key, v := range f.flags {
		if fs.Changed(optionFlagName(key)) {
			overrides[key] = options.Bool(*v)
		}
	}
	if fs.Changed("header-level-start") {
		overrides[options.KeyHeaderLevelStart] = options.Int(int64(f.headerLevelStart))
	}
	if fs.Changed(optionFlagName(options.KeyPrefixHeaderID)) {
		overrides[options.KeyPrefixHeaderID] = options.Parse(f.prefixHeaderID)
	}
	if fs.Changed(optionFlagName(options.KeyGhMentionsLink)) {
		overrides[options.KeyGhMentionsLink] = options.String(f.ghMentionsLink)
	}
	if fs.Changed(optionFlagName(options.KeyHighlightStyle)) {
		overrides[options.KeyHighlightStyle] = options.String(f.highlightStyle)
	}
	return overrides, nil
}
