// Package hints provides actionable error hints for common failure scenarios.
// Hints are formatted consistently as "\n  hint: <text>" for appending to error messages.
package hints

import (
	"path/filepath"
	"strings"
)

// maxListed caps how many alternatives a hint lists.
const maxListed = 8

// ForConfigNotFound returns hints for config file not found errors.
// Suggests --config and, when known, the user config directory.
func ForConfigNotFound(userConfigDir string) string {
	hint := "use --config /path/to/file.yaml"
	if userConfigDir != "" {
		hint += " or create a config in " + filepath.Join(userConfigDir, "go-md2html")
	}
	return format(hint)
}

// ForOutputDirectory returns hints for output directory creation errors.
func ForOutputDirectory() string {
	return format("check parent directory exists and is writable")
}

// ForMarkdownInput returns hints for inputs that are not markdown files.
func ForMarkdownInput() string {
	return format("pass a .md or .markdown file, a directory, or - for stdin")
}

// ForHighlightStyle returns hints for unknown highlight styles, listing
// the closest available names first.
func ForHighlightStyle(style string, available []string) string {
	if len(available) == 0 {
		return ""
	}

	var near, rest []string
	for _, name := range available {
		if style != "" && (strings.Contains(name, style) || strings.Contains(style, name)) {
			near = append(near, name)
		} else {
			rest = append(rest, name)
		}
	}
	listed := append(near, rest...)
	suffix := ""
	if len(listed) > maxListed {
		listed = listed[:maxListed]
		suffix = ", ..."
	}
	return format("available: " + strings.Join(listed, ", ") + suffix)
}

// ForOptionValue returns a hint for option values of the wrong type.
func ForOptionValue(key string) string {
	return format("quote the value of " + key + " in YAML, or use --set " + key + "=value")
}

// format creates a single hint string with consistent formatting.
func format(hint string) string {
	if hint == "" {
		return ""
	}
	return "\n  hint: " + hint
}
