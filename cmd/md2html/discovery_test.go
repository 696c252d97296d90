package main

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

// ---------------------------------------------------------------------------
// TestResolveOutputPath - Output path calculation
// ---------------------------------------------------------------------------

func TestResolveOutputPath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		inputPath    string
		outputDir    string
		baseInputDir string
		want         string
	}{
		{"no output dir writes next to input", "docs/readme.md", "", "", filepath.Join("docs", "readme.html")},
		{"markdown extension", "notes.markdown", "", "", "notes.html"},
		{"explicit html file", "a.md", "out/page.html", "", "out/page.html"},
		{"output directory", "a.md", "out", "", filepath.Join("out", "a.html")},
		{"keeps relative layout", filepath.Join("src", "guide", "a.md"), "out", "src", filepath.Join("out", "guide", "a.html")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := resolveOutputPath(tt.inputPath, tt.outputDir, tt.baseInputDir); got != tt.want {
				t.Errorf("resolveOutputPath() = %q, want %q", got, tt.want)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestDiscoverFiles - Markdown discovery
// ---------------------------------------------------------------------------

func TestDiscoverFiles(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	for _, name := range []string{"a.md", "b.MARKDOWN", "skip.txt", filepath.Join("sub", "c.md")} {
		path := filepath.Join(dir, name)
		if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(path, []byte("# x"), 0o600); err != nil {
			t.Fatal(err)
		}
	}

	t.Run("directory", func(t *testing.T) {
		t.Parallel()

		out := filepath.Join(dir, "out")
		files, err := discoverFiles(dir, out)
		if err != nil {
			t.Fatalf("discoverFiles() error = %v", err)
		}
		if len(files) != 3 {
			t.Fatalf("found %d files, want 3: %v", len(files), files)
		}
		want := map[string]string{
			filepath.Join(dir, "a.md"):        filepath.Join(out, "a.html"),
			filepath.Join(dir, "b.MARKDOWN"):  filepath.Join(out, "b.html"),
			filepath.Join(dir, "sub", "c.md"): filepath.Join(out, "sub", "c.html"),
		}
		for _, f := range files {
			if want[f.InputPath] != f.OutputPath {
				t.Errorf("%s -> %s, want %s", f.InputPath, f.OutputPath, want[f.InputPath])
			}
		}
	})

	t.Run("single file", func(t *testing.T) {
		t.Parallel()

		files, err := discoverFiles(filepath.Join(dir, "a.md"), "")
		if err != nil {
			t.Fatalf("discoverFiles() error = %v", err)
		}
		if len(files) != 1 || files[0].OutputPath != filepath.Join(dir, "a.html") {
			t.Errorf("files = %v", files)
		}
	})

	t.Run("wrong extension", func(t *testing.T) {
		t.Parallel()

		_, err := discoverFiles(filepath.Join(dir, "skip.txt"), "")
		if !errors.Is(err, ErrInvalidExtension) {
			t.Errorf("error = %v, want ErrInvalidExtension", err)
		}
	})

	t.Run("missing input", func(t *testing.T) {
		t.Parallel()

		_, err := discoverFiles(filepath.Join(dir, "missing.md"), "")
		if !errors.Is(err, os.ErrNotExist) {
			t.Errorf("error = %v, want os.ErrNotExist", err)
		}
	})
}

// ---------------------------------------------------------------------------
// TestValidateWorkers - Worker count bounds
// ---------------------------------------------------------------------------

func TestValidateWorkers(t *testing.T) {
	t.Parallel()

	tests := []struct {
		n       int
		wantErr bool
	}{
		{-1, true},
		{0, false},
		{8, false},
		{33, true},
	}

	for _, tt := range tests {
		err := validateWorkers(tt.n)
		if tt.wantErr != (err != nil) {
			t.Errorf("validateWorkers(%d) error = %v, wantErr %v", tt.n, err, tt.wantErr)
		}
		if err != nil && !errors.Is(err, ErrInvalidWorkerCount) {
			t.Errorf("validateWorkers(%d) error = %v, want ErrInvalidWorkerCount", tt.n, err)
		}
	}
}
