package main

import (
	"errors"
	"testing"

	"github.com/alnah/go-md2html/internal/options"
)

// ---------------------------------------------------------------------------
// TestOptionFlagName - Option name to flag name
// ---------------------------------------------------------------------------

func TestOptionFlagName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		key  string
		want string
	}{
		{options.KeyNoHeaderID, "no-header-id"},
		{options.KeyGhCompatibleHeaderID, "gh-compatible-header-id"},
		{options.KeyRequireSpaceBeforeHeadingText, "require-space-before-heading-text"},
		{options.KeyEmoji, "emoji"},
		{options.KeyHeaderLevelStart, "header-level-start"},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			t.Parallel()

			if got := optionFlagName(tt.key); got != tt.want {
				t.Errorf("optionFlagName(%q) = %q, want %q", tt.key, got, tt.want)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestParseConvertFlags - Option overrides from the command line
// ---------------------------------------------------------------------------

func TestParseConvertFlags(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		args    []string
		want    options.Set
		wantPos []string
	}{
		{
			name:    "no flags gives no overrides",
			args:    []string{"doc.md"},
			want:    options.Set{},
			wantPos: []string{"doc.md"},
		},
		{
			name: "boolean option flags",
			args: []string{"--no-header-id", "--emoji=false", "doc.md"},
			want: options.Set{
				options.KeyNoHeaderID: options.Bool(true),
				options.KeyEmoji:      options.Bool(false),
			},
			wantPos: []string{"doc.md"},
		},
		{
			name: "typed option flags",
			args: []string{"--header-level-start", "3", "--gh-mentions-link", "https://x.test/{u}", "--highlight-style", "monokai"},
			want: options.Set{
				options.KeyHeaderLevelStart: options.Int(3),
				options.KeyGhMentionsLink:   options.String("https://x.test/{u}"),
				options.KeyHighlightStyle:   options.String("monokai"),
			},
		},
		{
			name: "bare prefix flag enables the default prefix",
			args: []string{"--prefix-header-id"},
			want: options.Set{options.KeyPrefixHeaderID: options.Bool(true)},
		},
		{
			name: "prefix flag with a value",
			args: []string{"--prefix-header-id=doc-"},
			want: options.Set{options.KeyPrefixHeaderID: options.String("doc-")},
		},
		{
			name: "set parses values",
			args: []string{"--set", "headerLevelStart=2", "--set", "tables=true", "--set", "custom=x"},
			want: options.Set{
				options.KeyHeaderLevelStart: options.Int(2),
				options.KeyTables:           options.Bool(true),
				"custom":                    options.String("x"),
			},
		},
		{
			name: "named flag wins over set",
			args: []string{"--set", "noHeaderId=false", "--no-header-id"},
			want: options.Set{options.KeyNoHeaderID: options.Bool(true)},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			flags, pos, err := parseConvertFlags(tt.args)
			if err != nil {
				t.Fatalf("parseConvertFlags() error = %v", err)
			}
			if len(flags.overrides) != len(tt.want) {
				t.Fatalf("overrides = %v, want %v", flags.overrides, tt.want)
			}
			for key, want := range tt.want {
				if got := flags.overrides[key]; got != want {
					t.Errorf("overrides[%q] = %v, want %v", key, got, want)
				}
			}
			if len(pos) != len(tt.wantPos) {
				t.Errorf("positional = %v, want %v", pos, tt.wantPos)
			}
		})
	}
}

func TestParseConvertFlags_InvalidSet(t *testing.T) {
	t.Parallel()

	for _, arg := range []string{"noHeaderId", "=true"} {
		_, _, err := parseConvertFlags([]string{"--set", arg})
		if !errors.Is(err, ErrInvalidSet) {
			t.Errorf("--set %q: error = %v, want ErrInvalidSet", arg, err)
		}
	}
}

func TestParseConvertFlags_DocumentFlags(t *testing.T) {
	t.Parallel()

	flags, _, err := parseConvertFlags([]string{
		"-s", "--title", "Guide", "--css", "a.css", "--highlight", "--rewrite-links",
		"--toc", "--toc-title", "Contents", "--toc-min-depth", "1", "--toc-max-depth", "4",
		"-o", "out", "-w", "2", "--watch", "-q",
	})
	if err != nil {
		t.Fatalf("parseConvertFlags() error = %v", err)
	}

	doc := flags.document
	if !doc.standalone || doc.title != "Guide" || doc.css != "a.css" || !doc.highlight || !doc.rewriteLinks {
		t.Errorf("document flags = %+v", doc)
	}
	if !flags.toc.enabled || flags.toc.title != "Contents" || flags.toc.minDepth != 1 || flags.toc.maxDepth != 4 {
		t.Errorf("toc flags = %+v", flags.toc)
	}
	if flags.output != "out" || flags.workers != 2 || !flags.watch || !flags.common.quiet {
		t.Errorf("flags = output %q, workers %d, watch %v, quiet %v",
			flags.output, flags.workers, flags.watch, flags.common.quiet)
	}
}

func TestParseConvertFlags_Unknown(t *testing.T) {
	t.Parallel()

	if _, _, err := parseConvertFlags([]string{"--page-size", "a4"}); err == nil {
		t.Error("parseConvertFlags() accepted an unknown flag")
	}
}
