package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/alecthomas/chroma/v2/styles"

	"github.com/alnah/go-md2html/internal/fileutil"
	"github.com/alnah/go-md2html/internal/options"
	"github.com/alnah/go-md2html/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrFieldTooLong    = errors.New("field exceeds maximum length")
	ErrInvalidOption   = errors.New("invalid option value")
)

// Limits for config values.
const (
	MaxTitleLength    = 200  // Document title
	MaxTOCTitleLength = 100  // TOC title
	MaxPathLength     = 4096 // CSS and output paths
	MaxWorkers        = 32
)

// configDirName is the directory under os.UserConfigDir searched for configs.
const configDirName = "go-md2html"

// Config holds all configuration for a conversion run.
type Config struct {
	Options  options.Set    `yaml:"options"`
	Output   OutputConfig   `yaml:"output"`
	Document DocumentConfig `yaml:"document"`
}

// OutputConfig defines output destination options.
type OutputConfig struct {
	DefaultDir string `yaml:"defaultDir"` // Default output directory (empty = same as source)
	Workers    int    `yaml:"workers"`    // 0 = automatic
}

// DocumentConfig defines standalone page options.
type DocumentConfig struct {
	Standalone   bool      `yaml:"standalone"`   // wrap output in an HTML5 page
	Title        string    `yaml:"title"`        // empty = first heading
	CSS          string    `yaml:"css"`          // path to a stylesheet file
	Highlight    bool      `yaml:"highlight"`    // include the chroma stylesheet
	RewriteLinks bool      `yaml:"rewriteLinks"` // relative .md links point at .html
	TOC          TOCConfig `yaml:"toc"`
}

// TOCConfig defines table of contents options.
type TOCConfig struct {
	Enabled  bool   `yaml:"enabled"`
	Title    string `yaml:"title"`    // Empty = no title above TOC
	MinDepth int    `yaml:"minDepth"` // 1-6, default 2
	MaxDepth int    `yaml:"maxDepth"` // 1-6, default 3
}

// Validate checks option types, limits and TOC depths.
// Called automatically by LoadConfig, but available for consumers
// who construct Config manually.
func (c *Config) Validate() error {
	if err := validateOptions(c.Options); err != nil {
		return err
	}

	if c.Output.Workers < 0 || c.Output.Workers > MaxWorkers {
		return fmt.Errorf("output.workers: must be between 0 and %d, got %d", MaxWorkers, c.Output.Workers)
	}
	if err := validateFieldLength("output.defaultDir", c.Output.DefaultDir, MaxPathLength); err != nil {
		return err
	}

	if err := validateFieldLength("document.title", c.Document.Title, MaxTitleLength); err != nil {
		return err
	}
	if err := validateFieldLength("document.css", c.Document.CSS, MaxPathLength); err != nil {
		return err
	}
	if err := validateFieldLength("document.toc.title", c.Document.TOC.Title, MaxTOCTitleLength); err != nil {
		return err
	}

	toc := c.Document.TOC
	for _, d := range []struct {
		field string
		value int
	}{{"document.toc.minDepth", toc.MinDepth}, {"document.toc.maxDepth", toc.MaxDepth}} {
		if d.value != 0 && (d.value < 1 || d.value > 6) {
			return fmt.Errorf("%s: must be between 1 and 6, got %d", d.field, d.value)
		}
	}
	if toc.MinDepth != 0 && toc.MaxDepth != 0 && toc.MinDepth > toc.MaxDepth {
		return fmt.Errorf("document.toc: minDepth %d exceeds maxDepth %d", toc.MinDepth, toc.MaxDepth)
	}

	return nil
}

// OptionError reports an option value that no conversion can use.
// It matches ErrInvalidOption with errors.Is.
type OptionError struct {
	Key    string
	Value  options.Value
	Reason string
}

func (e *OptionError) Error() string {
	return fmt.Sprintf("%v: options.%s: %s", ErrInvalidOption, e.Key, e.Reason)
}

func (e *OptionError) Unwrap() error { return ErrInvalidOption }

// validateOptions rejects the values a conversion cannot use at all: string
// options holding other types, and unknown highlight styles. Flags and
// headerLevelStart are coerced later and never rejected.
func validateOptions(opts options.Set) error {
	for _, key := range []string{options.KeyGhMentionsLink, options.KeyHighlightStyle} {
		v, ok := opts[key]
		if !ok || v.IsNull() {
			continue
		}
		if _, isString := options.AsString(v); !isString {
			return &OptionError{Key: key, Value: v, Reason: "must be a string, got " + v.Kind().String()}
		}
	}

	if style, ok := opts.Str(options.KeyHighlightStyle); ok && style != "" {
		if !slices.Contains(styles.Names(), style) {
			return &OptionError{
				Key:    options.KeyHighlightStyle,
				Value:  options.String(style),
				Reason: fmt.Sprintf("unknown style %q", style),
			}
		}
	}
	return nil
}

// UnknownOptions returns the option names in c that no conversion reads,
// sorted. They are kept, so callers usually only warn about them.
func (c *Config) UnknownOptions() []string {
	var unknown []string
	for key := range c.Options {
		if !options.IsKnown(key) {
			unknown = append(unknown, key)
		}
	}
	slices.Sort(unknown)
	return unknown
}

// validateFieldLength checks if a field exceeds its maximum allowed length.
func validateFieldLength(fieldName, value string, maxLength int) error {
	if len(value) > maxLength {
		return fmt.Errorf("%w: %s (%d chars, max %d)", ErrFieldTooLong, fieldName, len(value), maxLength)
	}
	return nil
}

// DefaultConfig returns the built-in option defaults with fragment output.
func DefaultConfig() *Config {
	return &Config{
		Options:  options.Defaults(),
		Output:   OutputConfig{},
		Document: DocumentConfig{},
	}
}

// LoadConfig loads configuration from a file path or config name.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise, it's treated as a config name and searched in standard locations.
// Returns error if the file is not found (no silent fallback).
// Options missing from the file keep their defaults.
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	configPath := nameOrPath
	if !fileutil.IsFilePath(nameOrPath) {
		var err error
		configPath, err = resolveConfigPath(nameOrPath)
		if err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var cfg Config
	if err := yamlutil.UnmarshalStrict(data, &cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}
	cfg.Options = options.WithDefaults(cfg.Options)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// resolveConfigPath searches for a config file by name in standard locations.
// Tries extensions in order: .yaml, .yml
// Tries locations in order: current directory, <user config dir>/go-md2html/
func resolveConfigPath(name string) (string, error) {
	extensions := []string{".yaml", ".yml"}
	tried := make([]string, 0, len(extensions)*2)

	dirs := []string{""}
	if userConfigDir, err := os.UserConfigDir(); err == nil {
		dirs = append(dirs, filepath.Join(userConfigDir, configDirName))
	}

	for _, dir := range dirs {
		for _, ext := range extensions {
			path := filepath.Join(dir, name+ext)
			if fileutil.FileExists(path) {
				return path, nil
			}
			tried = append(tried, path)
		}
	}

	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(tried, ", "))
}
