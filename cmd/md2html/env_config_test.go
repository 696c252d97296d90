package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/alnah/go-md2html/internal/config"
	"github.com/alnah/go-md2html/internal/options"
)

// ---------------------------------------------------------------------------
// TestLoadEnvConfig - Environment variable parsing
// ---------------------------------------------------------------------------

func TestLoadEnvConfig(t *testing.T) {
	// Not parallel: uses t.Setenv.
	t.Setenv("MD2HTML_CONFIG", "work")
	t.Setenv("MD2HTML_OUTPUT_DIR", "/out")
	t.Setenv("MD2HTML_CSS", "site.css")
	t.Setenv("MD2HTML_WORKERS", "4")
	t.Setenv("MD2HTML_STANDALONE", "true")
	t.Setenv("MD2HTML_OPTIONS", "noHeaderId=true, headerLevelStart=2")

	env := loadEnvConfig()

	if env.ConfigPath != "work" || env.OutputDir != "/out" || env.CSS != "site.css" {
		t.Errorf("paths = %q, %q, %q", env.ConfigPath, env.OutputDir, env.CSS)
	}
	if env.Workers != 4 {
		t.Errorf("Workers = %d, want 4", env.Workers)
	}
	if !env.Standalone {
		t.Error("Standalone = false, want true")
	}
	if !env.Options.Bool(options.KeyNoHeaderID) {
		t.Error("noHeaderId not read from MD2HTML_OPTIONS")
	}
	if level, _ := env.Options.Int(options.KeyHeaderLevelStart); level != 2 {
		t.Errorf("headerLevelStart = %d, want 2", level)
	}
}

func TestLoadEnvConfig_Malformed(t *testing.T) {
	// Not parallel: uses t.Setenv.
	t.Setenv("MD2HTML_WORKERS", "many")
	t.Setenv("MD2HTML_STANDALONE", "perhaps")

	env := loadEnvConfig()

	if env.Workers != 0 {
		t.Errorf("Workers = %d, want 0", env.Workers)
	}
	if env.Standalone {
		t.Error("Standalone = true, want false")
	}
}

// ---------------------------------------------------------------------------
// TestParseEnvOptions - Comma-separated option lists
// ---------------------------------------------------------------------------

func TestParseEnvOptions(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want options.Set
	}{
		{"empty", "", options.Set{}},
		{"single", "emoji=true", options.Set{options.KeyEmoji: options.Bool(true)}},
		{"spaces and strings", " prefixHeaderId = doc- ,tables=false", options.Set{
			options.KeyPrefixHeaderID: options.String(" doc- "),
			options.KeyTables:         options.Bool(false),
		}},
		{"entries without equals are skipped", "emoji,=1,tables=true", options.Set{
			options.KeyTables: options.Bool(true),
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := parseEnvOptions(tt.in)
			if len(got) != len(tt.want) {
				t.Fatalf("parseEnvOptions(%q) = %v, want %v", tt.in, got, tt.want)
			}
			for key, want := range tt.want {
				if got[key] != want {
					t.Errorf("[%q] = %v, want %v", key, got[key], want)
				}
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestApplyEnvConfig - Environment vs config precedence
// ---------------------------------------------------------------------------

func TestApplyEnvConfig(t *testing.T) {
	t.Parallel()

	t.Run("fills empty config fields", func(t *testing.T) {
		t.Parallel()

		cfg := config.DefaultConfig()
		applyEnvConfig(&envConfig{OutputDir: "/env", CSS: "env.css", Workers: 3, Standalone: true}, cfg)

		if cfg.Output.DefaultDir != "/env" || cfg.Document.CSS != "env.css" || cfg.Output.Workers != 3 {
			t.Errorf("cfg = %+v", cfg)
		}
		if !cfg.Document.Standalone {
			t.Error("Standalone = false, want true")
		}
	})

	t.Run("keeps config file values", func(t *testing.T) {
		t.Parallel()

		cfg := config.DefaultConfig()
		cfg.Output.DefaultDir = "/file"
		cfg.Output.Workers = 1
		applyEnvConfig(&envConfig{OutputDir: "/env", Workers: 3}, cfg)

		if cfg.Output.DefaultDir != "/file" || cfg.Output.Workers != 1 {
			t.Errorf("Output = %+v, want config file values", cfg.Output)
		}
	})

	t.Run("options override config file options", func(t *testing.T) {
		t.Parallel()

		cfg := config.DefaultConfig()
		cfg.Options[options.KeyEmoji] = options.Bool(false)
		cfg.Options[options.KeyTables] = options.Bool(true)
		applyEnvConfig(&envConfig{Options: options.Set{options.KeyEmoji: options.Bool(true)}}, cfg)

		if !cfg.Options.Bool(options.KeyEmoji) {
			t.Error("emoji = false, want env value true")
		}
		if !cfg.Options.Bool(options.KeyTables) {
			t.Error("tables = false, want config value true")
		}
	})
}

// ---------------------------------------------------------------------------
// TestWarnUnknownEnvVars - Typo detection
// ---------------------------------------------------------------------------

func TestWarnUnknownEnvVars(t *testing.T) {
	// Not parallel: uses t.Setenv.
	t.Setenv("MD2HTML_WORKER", "2")
	t.Setenv("MD2HTML_WORKERS", "2")

	var buf bytes.Buffer
	warnUnknownEnvVars(&buf)

	out := buf.String()
	if !strings.Contains(out, "MD2HTML_WORKER ") {
		t.Errorf("output %q should warn about MD2HTML_WORKER", out)
	}
	if strings.Contains(out, "MD2HTML_WORKERS") {
		t.Errorf("output %q should not warn about MD2HTML_WORKERS", out)
	}
}
