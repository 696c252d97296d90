package main

import (
	"context"
	"fmt"
	"io"
	"os"

	md2html "github.com/alnah/go-md2html"
	"github.com/alnah/go-md2html/internal/config"
)

// stdinInput names standard input as the conversion source.
const stdinInput = "-"

// runConvert orchestrates the conversion process.
func runConvert(ctx context.Context, positionalArgs []string, flags *convertFlags, deps *Dependencies) error {
	// Validate worker count early
	if err := validateWorkers(flags.workers); err != nil {
		return err
	}

	cfg, err := resolveConfig(flags, deps)
	if err != nil {
		return err
	}

	params, err := buildConversionParams(cfg)
	if err != nil {
		return err
	}

	conv := md2html.NewConverter(
		md2html.WithOptions(cfg.Options),
		md2html.WithLogger(deps.Logger),
	)

	inputPath := resolveInputPath(positionalArgs)
	if inputPath == stdinInput {
		if flags.watch {
			return fmt.Errorf("%w: --watch needs a file or directory", ErrNoInput)
		}
		return convertStdin(ctx, conv, params, flags.output, deps)
	}

	outputDir := resolveOutputDir(flags.output, cfg)
	if err := convertPath(ctx, conv, inputPath, outputDir, cfg.Output.Workers, params, flags.common, deps); err != nil {
		return err
	}

	if flags.watch {
		return watchPath(ctx, conv, inputPath, outputDir, params, flags.common, deps)
	}
	return nil
}

// resolveConfig builds the effective configuration.
// Precedence: CLI flags > env vars > config file > defaults.
func resolveConfig(flags *convertFlags, deps *Dependencies) (*config.Config, error) {
	if !flags.common.quiet {
		warnUnknownEnvVars(deps.Stderr)
	}
	env := loadEnvConfig()

	cfg := config.DefaultConfig()
	configName := flags.common.config
	if configName == "" {
		configName = env.ConfigPath
	}
	if configName != "" {
		loaded, err := config.LoadConfig(configName)
		if err != nil {
			return nil, fmt.Errorf("loading config: %w", err)
		}
		cfg = loaded
	}

	applyEnvConfig(env, cfg)
	mergeFlags(flags, cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	for _, name := range cfg.UnknownOptions() {
		deps.Logger.Warn("ignoring unknown option", "name", name)
	}
	return cfg, nil
}

// mergeFlags merges CLI flags into config. CLI values override config values.
func mergeFlags(flags *convertFlags, cfg *config.Config) {
	if len(flags.overrides) > 0 {
		cfg.Options = cfg.Options.Merge(flags.overrides)
	}
	if flags.workers > 0 {
		cfg.Output.Workers = flags.workers
	}

	// Document flags
	doc := &cfg.Document
	if flags.document.standalone {
		doc.Standalone = true
	}
	if flags.document.title != "" {
		doc.Title = flags.document.title
	}
	if flags.document.css != "" {
		doc.CSS = flags.document.css
	}
	if flags.document.highlight {
		doc.Highlight = true
	}
	if flags.document.rewriteLinks {
		doc.RewriteLinks = true
	}

	// TOC flags
	if flags.toc.enabled {
		doc.TOC.Enabled = true
	}
	if flags.toc.title != "" {
		doc.TOC.Title = flags.toc.title
	}
	if flags.toc.minDepth > 0 {
		doc.TOC.MinDepth = flags.toc.minDepth
	}
	if flags.toc.maxDepth > 0 {
		doc.TOC.MaxDepth = flags.toc.maxDepth
	}
}

// buildConversionParams turns the document section of cfg into page
// options, reading the stylesheet file if one is configured.
func buildConversionParams(cfg *config.Config) (*conversionParams, error) {
	doc := cfg.Document
	params := &conversionParams{
		standalone: doc.Standalone,
		document: md2html.Document{
			Title:        doc.Title,
			Highlight:    doc.Highlight,
			RewriteLinks: doc.RewriteLinks,
		},
	}

	if doc.CSS != "" {
		css, err := os.ReadFile(doc.CSS) // #nosec G304 -- user-provided stylesheet
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrReadCSS, err)
		}
		params.document.CSS = string(css)
	}

	if doc.TOC.Enabled {
		params.document.TOC = &md2html.TOC{
			Title:    doc.TOC.Title,
			MinDepth: doc.TOC.MinDepth,
			MaxDepth: doc.TOC.MaxDepth,
		}
	}
	return params, nil
}

// resolveInputPath returns the input argument; none means standard input.
func resolveInputPath(args []string) string {
	if len(args) == 0 || args[0] == "" {
		return stdinInput
	}
	return args[0]
}

// resolveOutputDir returns the output location: flag > config.
func resolveOutputDir(flagOutput string, cfg *config.Config) string {
	if flagOutput != "" {
		return flagOutput
	}
	return cfg.Output.DefaultDir
}

// convertStdin converts standard input, writing to output or stdout.
func convertStdin(ctx context.Context, conv CLIConverter, params *conversionParams, output string, deps *Dependencies) error {
	content, err := io.ReadAll(deps.Stdin)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrReadMarkdown, err)
	}

	html, err := params.render(ctx, conv, string(content))
	if err != nil {
		return err
	}

	if output == "" {
		if _, err := io.WriteString(deps.Stdout, html); err != nil {
			return fmt.Errorf("%w: %v", ErrWriteHTML, err)
		}
		return nil
	}
	return writeHTML(output, html)
}

// convertPath converts a file or every markdown file under a directory.
func convertPath(ctx context.Context, conv CLIConverter, inputPath, outputDir string, workers int,
	params *conversionParams, common commonFlags, deps *Dependencies,
) error {
	files, err := discoverFiles(inputPath, outputDir)
	if err != nil {
		return fmt.Errorf("discovering files: %w", err)
	}
	if len(files) == 0 {
		return fmt.Errorf("%w: no markdown files found in %s", ErrNoInput, inputPath)
	}

	results := convertBatch(ctx, conv, workers, files, params)

	failedCount := printResults(results, common.quiet, common.verbose, deps.Stdout, deps.Stderr)
	if failedCount > 0 {
		return fmt.Errorf("%d conversion(s) failed", failedCount)
	}
	return nil
}
