package main

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/alnah/go-md2html/internal/fileutil"
)

// watchDebounce is how long changes settle before files are converted again.
const watchDebounce = 150 * time.Millisecond

// watchPath converts markdown files under inputPath again whenever they
// change, until ctx is canceled. A single input file is watched through its
// directory so editors that save by rename keep being followed.
func watchPath(ctx context.Context, conv CLIConverter, inputPath, outputDir string,
	params *conversionParams, common commonFlags, deps *Dependencies,
) error {
	info, err := os.Stat(inputPath)
	if err != nil {
		return err
	}
	single := !info.IsDir()

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("fsnotify: %w", err)
	}
	defer func() { _ = watcher.Close() }()

	root := inputPath
	if single {
		root = filepath.Dir(inputPath)
		if err := watcher.Add(root); err != nil {
			return fmt.Errorf("watching %s: %w", root, err)
		}
	} else if err := addDirsRecursive(watcher, root); err != nil {
		return err
	}
	deps.Logger.Info("watching for changes", "path", inputPath)

	pending := map[string]bool{}
	timer := time.NewTimer(watchDebounce)
	timer.Stop()
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if ev.Has(fsnotify.Create) && !single {
				if fi, err := os.Stat(ev.Name); err == nil && fi.IsDir() {
					_ = addDirsRecursive(watcher, ev.Name)
					continue
				}
			}
			if !watchedChange(ev, inputPath, single) {
				continue
			}
			deps.Logger.Debug("file change detected", "path", ev.Name, "op", ev.Op.String())
			pending[ev.Name] = true
			timer.Reset(watchDebounce)
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			deps.Logger.Warn("watcher error", "error", err)
		case <-timer.C:
			files := pendingFiles(pending, inputPath, outputDir, single)
			clear(pending)
			results := convertBatch(ctx, conv, 0, files, params)
			printResults(results, common.quiet, common.verbose, deps.Stdout, deps.Stderr)
		}
	}
}

// watchedChange reports whether ev writes a markdown file that belongs to
// the watched input.
func watchedChange(ev fsnotify.Event, inputPath string, single bool) bool {
	if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) {
		return false
	}
	if strings.HasPrefix(filepath.Base(ev.Name), ".") || !fileutil.IsMarkdown(ev.Name) {
		return false
	}
	return !single || filepath.Clean(ev.Name) == filepath.Clean(inputPath)
}

// pendingFiles maps changed paths to conversions in a stable order,
// skipping files removed since the event.
func pendingFiles(pending map[string]bool, inputPath, outputDir string, single bool) []FileToConvert {
	paths := make([]string, 0, len(pending))
	for path := range pending {
		if _, err := os.Stat(path); err == nil {
			paths = append(paths, path)
		}
	}
	slices.Sort(paths)

	base := inputPath
	if single {
		base = ""
	}
	files := make([]FileToConvert, 0, len(paths))
	for _, path := range paths {
		files = append(files, FileToConvert{InputPath: path, OutputPath: resolveOutputPath(path, outputDir, base)})
	}
	return files
}

// addDirsRecursive watches root and every directory below it.
func addDirsRecursive(w *fsnotify.Watcher, root string) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return fmt.Errorf("scanning %s: %w", path, err)
		}
		if d.IsDir() {
			if err := w.Add(path); err != nil {
				return fmt.Errorf("watching %s: %w", path, err)
			}
		}
		return nil
	})
}
