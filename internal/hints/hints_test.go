package hints

import (
	"path/filepath"
	"strings"
	"testing"
)

func TestForConfigNotFound(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		dir        string
		wantSubstr []string
	}{
		{"without config dir", "", []string{"hint:", "--config"}},
		{"with config dir", "/home/u/.config", []string{"--config", filepath.Join("/home/u/.config", "go-md2html")}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			hint := ForConfigNotFound(tt.dir)
			for _, want := range tt.wantSubstr {
				if !strings.Contains(hint, want) {
					t.Errorf("ForConfigNotFound(%q) = %q, want it to contain %q", tt.dir, hint, want)
				}
			}
		})
	}
}

func TestForHighlightStyle(t *testing.T) {
	t.Parallel()

	t.Run("empty list gives no hint", func(t *testing.T) {
		t.Parallel()

		if hint := ForHighlightStyle("x", nil); hint != "" {
			t.Errorf("ForHighlightStyle() = %q, want empty", hint)
		}
	})

	t.Run("close names come first", func(t *testing.T) {
		t.Parallel()

		hint := ForHighlightStyle("monokai", []string{"abap", "github", "monokai", "monokailight"})
		want := "\n  hint: available: monokai, monokailight, abap, github"
		if hint != want {
			t.Errorf("ForHighlightStyle() = %q, want %q", hint, want)
		}
	})

	t.Run("long lists are truncated", func(t *testing.T) {
		t.Parallel()

		names := []string{"a1", "a2", "a3", "a4", "a5", "a6", "a7", "a8", "a9", "a10"}
		hint := ForHighlightStyle("zz", names)
		if !strings.HasSuffix(hint, "a8, ...") {
			t.Errorf("ForHighlightStyle() = %q, want it truncated after 8 names", hint)
		}
	})
}

func TestStaticHints(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		hint string
		want string
	}{
		{"output directory", ForOutputDirectory(), "writable"},
		{"markdown input", ForMarkdownInput(), ".markdown"},
		{"option value", ForOptionValue("ghMentionsLink"), "--set ghMentionsLink=value"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if !strings.HasPrefix(tt.hint, "\n  hint: ") {
				t.Errorf("hint %q missing prefix", tt.hint)
			}
			if !strings.Contains(tt.hint, tt.want) {
				t.Errorf("hint %q should contain %q", tt.hint, tt.want)
			}
		})
	}
}

func TestFormat_Empty(t *testing.T) {
	t.Parallel()

	if got := format(""); got != "" {
		t.Errorf("format(\"\") = %q, want empty", got)
	}
}
