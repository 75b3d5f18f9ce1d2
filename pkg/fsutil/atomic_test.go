package fsutil_test

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/yaklabco/gohilite/pkg/fsutil"
)

func TestWriteAtomic(t *testing.T) {
	t.Parallel()

	t.Run("writes new file", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "test.txt")
		content := []byte("hello world")

		if err := fsutil.WriteAtomic(context.Background(), path, content, 0644); err != nil {
			t.Fatalf("WriteAtomic() error = %v", err)
		}

		got, err := os.ReadFile(path)
		if err != nil {
			t.Fatalf("read back: %v", err)
		}
		if string(got) != string(content) {
			t.Errorf("content = %q, want %q", got, content)
		}
	})

	t.Run("overwrites existing file", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "test.txt")
		if err := os.WriteFile(path, []byte("original"), 0644); err != nil {
			t.Fatalf("setup: %v", err)
		}

		if err := fsutil.WriteAtomic(context.Background(), path, []byte("new content"), 0644); err != nil {
			t.Fatalf("WriteAtomic() error = %v", err)
		}

		got, err := os.ReadFile(path)
		if err != nil {
			t.Fatalf("read back: %v", err)
		}
		if string(got) != "new content" {
			t.Errorf("content = %q, want %q", got, "new content")
		}
	})

	t.Run("preserves specified mode", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "test.txt")
		if err := fsutil.WriteAtomic(context.Background(), path, []byte("x"), 0600); err != nil {
			t.Fatalf("WriteAtomic() error = %v", err)
		}

		stat, err := os.Stat(path)
		if err != nil {
			t.Fatalf("stat: %v", err)
		}
		if gotMode := stat.Mode().Perm(); gotMode != 0600 {
			t.Errorf("mode = %o, want %o", gotMode, 0600)
		}
	})

	t.Run("uses default mode when zero", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "test.txt")
		if err := fsutil.WriteAtomic(context.Background(), path, []byte("x"), 0); err != nil {
			t.Fatalf("WriteAtomic() error = %v", err)
		}

		stat, err := os.Stat(path)
		if err != nil {
			t.Fatalf("stat: %v", err)
		}
		if gotMode := stat.Mode().Perm(); gotMode != fsutil.DefaultFileMode {
			t.Errorf("mode = %o, want %o", gotMode, fsutil.DefaultFileMode)
		}
	})

	t.Run("respects context cancellation", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "test.txt")
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		if err := fsutil.WriteAtomic(ctx, path, []byte("content"), 0644); err == nil {
			t.Fatal("expected error for cancelled context")
		}
		if _, err := os.Stat(path); !os.IsNotExist(err) {
			t.Error("file should not have been created")
		}
	})

	t.Run("fails for missing parent directory", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		path := filepath.Join(dir, "nonexistent", "test.txt")

		if err := fsutil.WriteAtomic(context.Background(), path, []byte("content"), 0644); err == nil {
			t.Fatal("expected error for invalid path")
		}

		entries, err := os.ReadDir(dir)
		if err != nil {
			t.Fatalf("readdir: %v", err)
		}
		if len(entries) != 0 {
			t.Errorf("unexpected entries left behind: %d", len(entries))
		}
	})
}

func TestWriteAtomicFunc(t *testing.T) {
	t.Parallel()

	t.Run("streams writer output", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "frame.png")
		err := fsutil.WriteAtomicFunc(context.Background(), path, 0, func(w io.Writer) error {
			_, err := io.WriteString(w, strings.Repeat("ab", 5000))
			return err
		})
		if err != nil {
			t.Fatalf("WriteAtomicFunc() error = %v", err)
		}

		got, err := os.ReadFile(path)
		if err != nil {
			t.Fatalf("read back: %v", err)
		}
		if len(got) != 10000 {
			t.Errorf("len = %d, want 10000", len(got))
		}
	})

	t.Run("writer error leaves original untouched", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		path := filepath.Join(dir, "frame.png")
		if err := os.WriteFile(path, []byte("original"), 0644); err != nil {
			t.Fatalf("setup: %v", err)
		}

		errBoom := errors.New("boom")
		err := fsutil.WriteAtomicFunc(context.Background(), path, 0, func(w io.Writer) error {
			_, _ = io.WriteString(w, "partial")
			return errBoom
		})
		if !errors.Is(err, errBoom) {
			t.Fatalf("error = %v, want %v", err, errBoom)
		}

		got, err := os.ReadFile(path)
		if err != nil {
			t.Fatalf("read back: %v", err)
		}
		if string(got) != "original" {
			t.Errorf("content = %q, want original", got)
		}

		entries, err := os.ReadDir(dir)
		if err != nil {
			t.Fatalf("readdir: %v", err)
		}
		if len(entries) != 1 {
			t.Errorf("temp file left behind: %d entries", len(entries))
		}
	})
}

func TestWriteAtomicIfChanged(t *testing.T) {
	t.Parallel()

	t.Run("writes new file", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "test.txt")
		written, err := fsutil.WriteAtomicIfChanged(context.Background(), path, []byte("hello"), 0644)
		if err != nil {
			t.Fatalf("WriteAtomicIfChanged() error = %v", err)
		}
		if !written {
			t.Error("expected written = true for new file")
		}
	})

	t.Run("skips unchanged content", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "test.txt")
		if err := os.WriteFile(path, []byte("hello"), 0644); err != nil {
			t.Fatalf("setup: %v", err)
		}

		written, err := fsutil.WriteAtomicIfChanged(context.Background(), path, []byte("hello"), 0644)
		if err != nil {
			t.Fatalf("WriteAtomicIfChanged() error = %v", err)
		}
		if written {
			t.Error("expected written = false for unchanged content")
		}
	})

	t.Run("writes changed content", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "test.txt")
		if err := os.WriteFile(path, []byte("hello"), 0644); err != nil {
			t.Fatalf("setup: %v", err)
		}

		written, err := fsutil.WriteAtomicIfChanged(context.Background(), path, []byte("world"), 0644)
		if err != nil {
			t.Fatalf("WriteAtomicIfChanged() error = %v", err)
		}
		if !written {
			t.Error("expected written = true for changed content")
		}
	})
}
