package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/alnah/go-md2html/internal/config"
	"github.com/alnah/go-md2html/internal/options"
)

// envConfig holds configuration from environment variables.
// Provides CI/CD-friendly overrides without requiring YAML files.
type envConfig struct {
	ConfigPath string      // MD2HTML_CONFIG: config file name or path
	OutputDir  string      // MD2HTML_OUTPUT_DIR: default output directory
	CSS        string      // MD2HTML_CSS: stylesheet file
	Workers    int         // MD2HTML_WORKERS: parallel workers
	Standalone bool        // MD2HTML_STANDALONE: wrap output in a page
	Options    options.Set // MD2HTML_OPTIONS: key=value,key=value
}

// knownEnvVars lists valid MD2HTML_* environment variables.
// Used to detect typos and warn users about unknown variables.
var knownEnvVars = map[string]bool{
	"MD2HTML_CONFIG":     true,
	"MD2HTML_OUTPUT_DIR": true,
	"MD2HTML_CSS":        true,
	"MD2HTML_WORKERS":    true,
	"MD2HTML_STANDALONE": true,
	"MD2HTML_OPTIONS":    true,
}

// loadEnvConfig reads configuration from environment variables.
// Malformed numbers and booleans are ignored.
func loadEnvConfig() *envConfig {
	cfg := &envConfig{
		ConfigPath: os.Getenv("MD2HTML_CONFIG"),
		OutputDir:  os.Getenv("MD2HTML_OUTPUT_DIR"),
		CSS:        os.Getenv("MD2HTML_CSS"),
		Options:    parseEnvOptions(os.Getenv("MD2HTML_OPTIONS")),
	}

	if workers := os.Getenv("MD2HTML_WORKERS"); workers != "" {
		if w, err := strconv.Atoi(workers); err == nil && w > 0 {
			cfg.Workers = w
		}
	}
	if standalone := os.Getenv("MD2HTML_STANDALONE"); standalone != "" {
		if b, err := strconv.ParseBool(standalone); err == nil {
			cfg.Standalone = b
		}
	}

	return cfg
}

// parseEnvOptions reads a comma-separated key=value list. Entries
// without '=' are skipped.
func parseEnvOptions(s string) options.Set {
	opts := options.Set{}
	for entry := range strings.SplitSeq(s, ",") {
		key, value, ok := strings.Cut(entry, "=")
		key = strings.TrimSpace(key)
		if !ok || key == "" {
			continue
		}
		opts[key] = options.Parse(value)
	}
	return opts
}

// warnUnknownEnvVars logs warnings for unrecognized MD2HTML_* variables.
// Helps catch typos like MD2HTML_WORKER instead of MD2HTML_WORKERS.
func warnUnknownEnvVars(w io.Writer) {
	for _, env := range os.Environ() {
		if strings.HasPrefix(env, "MD2HTML_") {
			name := strings.SplitN(env, "=", 2)[0]
			if !knownEnvVars[name] {
				fmt.Fprintf(w, "warning: unknown environment variable %s (typo?)\n", name)
			}
		}
	}
}

// applyEnvConfig applies environment variable values to config.
// Scalar values only fill fields the config left empty; options override
// the config file.
// Resulting precedence: CLI flags > env vars > config file > defaults
// (CLI flags are applied later via mergeFlags)
func applyEnvConfig(env *envConfig, cfg *config.Config) {
	if env.OutputDir != "" && cfg.Output.DefaultDir == "" {
		cfg.Output.DefaultDir = env.OutputDir
	}
	if env.CSS != "" && cfg.Document.CSS == "" {
		cfg.Document.CSS = env.CSS
	}
	if env.Workers > 0 && cfg.Output.Workers == 0 {
		cfg.Output.Workers = env.Workers
	}
	if env.Standalone {
		cfg.Document.Standalone = true
	}
	if len(env.Options) > 0 {
		cfg.Options = cfg.Options.Merge(env.Options)
	}
}
