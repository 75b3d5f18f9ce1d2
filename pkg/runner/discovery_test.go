package runner_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/yaklabco/gohilite/pkg/runner"
)

// writeTree creates files (relative to dir) with the given content.
func writeTree(t *testing.T, dir string, files map[string]string) {
	t.Helper()
	for name, content := range files {
		path := filepath.Join(dir, name)
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			t.Fatalf("setup mkdir: %v", err)
		}
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			t.Fatalf("setup write: %v", err)
		}
	}
}

func discover(t *testing.T, opts runner.Options) []string {
	t.Helper()
	files, err := runner.Discover(context.Background(), opts)
	if err != nil {
		t.Fatalf("Discover() error = %v", err)
	}
	return files
}

func TestDiscover_SingleFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeTree(t, dir, map[string]string{"main.py": "pass\n"})

	files := discover(t, runner.Options{Paths: []string{"main.py"}, WorkingDir: dir})
	if len(files) != 1 || files[0] != filepath.Join(dir, "main.py") {
		t.Fatalf("unexpected files: %v", files)
	}
}

func TestDiscover_ExplicitFileWithoutKnownExtension(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeTree(t, dir, map[string]string{"deploy": "#!/usr/bin/env python3\n"})

	files := discover(t, runner.Options{Paths: []string{"deploy"}, WorkingDir: dir})
	if len(files) != 1 {
		t.Fatalf("expected explicit file to be kept, got %v", files)
	}

	// The same file is not picked up by a directory walk.
	files = discover(t, runner.Options{Paths: []string{"."}, WorkingDir: dir})
	if len(files) != 0 {
		t.Fatalf("expected walk to skip extensionless file, got %v", files)
	}
}

func TestDiscover_Directory(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeTree(t, dir, map[string]string{
		"app.py":            "x",
		"web/index.html":    "x",
		"web/app.ts":        "x",
		"native/core.cpp":   "x",
		"notes.txt":         "x",
		"README.md":         "x",
		"native/Makefile":   "x",
		"android/Main.java": "x",
	})

	discovered := discover(t, runner.Options{Paths: []string{"."}, WorkingDir: dir})

	expected := []string{
		filepath.Join(dir, "android/Main.java"),
		filepath.Join(dir, "app.py"),
		filepath.Join(dir, "native/core.cpp"),
		filepath.Join(dir, "web/app.ts"),
		filepath.Join(dir, "web/index.html"),
	}

	if len(discovered) != len(expected) {
		t.Fatalf("expected %d files, got %d: %v", len(expected), len(discovered), discovered)
	}
	for i, exp := range expected {
		if discovered[i] != exp {
			t.Errorf("file[%d] = %s, want %s", i, discovered[i], exp)
		}
	}
}

func TestDiscover_CustomExtensions(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeTree(t, dir, map[string]string{"a.py": "", "b.pyi": "", "c.js": "", "d.txt": ""})

	discovered := discover(t, runner.Options{
		Paths:      []string{"."},
		WorkingDir: dir,
		Extensions: []string{".pyi", ".txt"},
	})

	if len(discovered) != 2 {
		t.Fatalf("expected 2 files, got %d: %v", len(discovered), discovered)
	}
	for _, f := range discovered {
		ext := filepath.Ext(f)
		if ext != ".pyi" && ext != ".txt" {
			t.Errorf("unexpected file extension: %s", f)
		}
	}
}

func TestDiscover_ExcludeGlobs(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeTree(t, dir, map[string]string{
		"main.js":               "",
		"vendor/lib/util.js":    "",
		"node_modules/pkg/x.js": "",
		"src/app.js":            "",
		"src/app.min.js":        "",
	})

	discovered := discover(t, runner.Options{
		Paths:        []string{"."},
		WorkingDir:   dir,
		ExcludeGlobs: []string{"vendor/**", "node_modules/**", "*.min.js"},
	})

	expected := []string{
		filepath.Join(dir, "main.js"),
		filepath.Join(dir, "src/app.js"),
	}
	if len(discovered) != len(expected) {
		t.Fatalf("expected %d files, got %d: %v", len(expected), len(discovered), discovered)
	}
	for i, exp := range expected {
		if discovered[i] != exp {
			t.Errorf("file[%d] = %s, want %s", i, discovered[i], exp)
		}
	}
}

func TestDiscover_ExcludeDoubleStarPrefix(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeTree(t, dir, map[string]string{
		"generated/a.py":          "",
		"pkg/generated/b.py":      "",
		"pkg/handwritten/c.py":    "",
		"pkg/deep/x/generated.py": "",
	})

	discovered := discover(t, runner.Options{
		Paths:        []string{"."},
		WorkingDir:   dir,
		ExcludeGlobs: []string{"**/generated"},
	})

	want := []string{
		filepath.Join(dir, "pkg/deep/x/generated.py"),
		filepath.Join(dir, "pkg/handwritten/c.py"),
	}
	if strings.Join(discovered, "\n") != strings.Join(want, "\n") {
		t.Errorf("discovered = %v, want %v", discovered, want)
	}
}

func TestDiscover_InvalidGlob(t *testing.T) {
	t.Parallel()

	_, err := runner.Discover(context.Background(), runner.Options{
		Paths:        []string{"."},
		WorkingDir:   t.TempDir(),
		ExcludeGlobs: []string{"[unterminated"},
	})
	if err == nil {
		t.Fatal("expected error for an invalid glob")
	}
}

func TestDiscover_ExcludeAppliesToExplicitFiles(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeTree(t, dir, map[string]string{"dist/bundle.js": ""})

	discovered := discover(t, runner.Options{
		Paths:        []string{"dist/bundle.js"},
		WorkingDir:   dir,
		ExcludeGlobs: []string{"dist/**"},
	})
	if len(discovered) != 0 {
		t.Fatalf("expected excluded file to be dropped, got %v", discovered)
	}
}

func TestDiscover_IncludeGlobs(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeTree(t, dir, map[string]string{
		"setup.py":   "",
		"src/a.py":   "",
		"src/b.py":   "",
		"tests/t.py": "",
	})

	discovered := discover(t, runner.Options{
		Paths:        []string{"."},
		WorkingDir:   dir,
		IncludeGlobs: []string{"src/**"},
	})

	if len(discovered) != 2 {
		t.Errorf("expected 2 files, got %d: %v", len(discovered), discovered)
	}
	for _, f := range discovered {
		rel, err := filepath.Rel(dir, f)
		if err != nil {
			t.Fatalf("filepath.Rel error: %v", err)
		}
		if !hasPrefix(rel, "src") {
			t.Errorf("unexpected file outside src: %s", rel)
		}
	}
}

func TestDiscover_HiddenFilesAndDirectories(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeTree(t, dir, map[string]string{
		"main.c":          "",
		".hidden.c":       "",
		".git/hooks/x.py": "",
		"src/.secret.js":  "",
	})

	discovered := discover(t, runner.Options{Paths: []string{"."}, WorkingDir: dir})
	if len(discovered) != 1 || filepath.Base(discovered[0]) != "main.c" {
		t.Fatalf("expected only main.c, got %v", discovered)
	}
}

func TestDiscover_DeterministicOrdering(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeTree(t, dir, map[string]string{"z.py": "", "a.py": "", "m.py": "", "b.py": ""})

	opts := runner.Options{Paths: []string{"."}, WorkingDir: dir}
	first := discover(t, opts)

	for range 4 {
		again := discover(t, opts)
		if strings.Join(again, "\n") != strings.Join(first, "\n") {
			t.Fatalf("ordering changed: %v vs %v", again, first)
		}
	}

	for i := 1; i < len(first); i++ {
		if first[i] < first[i-1] {
			t.Errorf("files not sorted: %s should come after %s", first[i-1], first[i])
		}
	}
}

func TestDiscover_Deduplication(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeTree(t, dir, map[string]string{"main.py": ""})

	files := discover(t, runner.Options{
		Paths:      []string{"main.py", "./main.py", ".", "main.py"},
		WorkingDir: dir,
	})
	if len(files) != 1 {
		t.Fatalf("expected 1 file (deduplicated), got %d: %v", len(files), files)
	}
}

func TestDiscover_NonExistentPath(t *testing.T) {
	t.Parallel()

	_, err := runner.Discover(context.Background(), runner.Options{
		Paths:      []string{"nonexistent"},
		WorkingDir: t.TempDir(),
	})
	if err == nil {
		t.Fatal("expected error for non-existent path")
	}
}

func TestDiscover_ContextCancellation(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeTree(t, dir, map[string]string{"a.py": ""})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := runner.Discover(ctx, runner.Options{Paths: []string{"."}, WorkingDir: dir})
	if err == nil {
		t.Fatal("expected cancellation error")
	}
}

func TestDiscover_DirectorySymlinks(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeTree(t, dir, map[string]string{"real/doc.py": ""})

	externalDir := t.TempDir()
	writeTree(t, externalDir, map[string]string{"external.py": ""})

	if err := os.Symlink(externalDir, filepath.Join(dir, "linked")); err != nil {
		t.Skipf("symlinks not supported: %v", err)
	}

	opts := runner.Options{Paths: []string{"."}, WorkingDir: dir}
	if discovered := discover(t, opts); len(discovered) != 1 {
		t.Errorf("expected 1 file without FollowSymlinks, got %v", discovered)
	}

	opts.FollowSymlinks = true
	if discovered := discover(t, opts); len(discovered) != 2 {
		t.Errorf("expected 2 files with FollowSymlinks, got %v", discovered)
	}
}

func TestDefaultExtensions(t *testing.T) {
	t.Parallel()

	exts := runner.DefaultExtensions()
	want := map[string]bool{".py": false, ".c": false, ".java": false, ".ts": false, ".html": false}

	for _, ext := range exts {
		if _, ok := want[ext]; ok {
			want[ext] = true
		}
	}
	for ext, found := range want {
		if !found {
			t.Errorf("missing default extension %s", ext)
		}
	}
}

// hasPrefix checks if path starts with prefix as a path component.
func hasPrefix(path, prefix string) bool {
	path = filepath.ToSlash(path)
	prefix = filepath.ToSlash(prefix)
	return path == prefix || len(path) > len(prefix) && path[:len(prefix)+1] == prefix+"/"
}
