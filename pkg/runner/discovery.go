package runner

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/gobwas/glob"
)

// Discover finds source files matching opts under the given working directory.
// Directories are walked for files with a known extension; files named
// explicitly are kept whatever their extension, since detection can still
// recognise them by content. It returns a deterministically sorted list of
// absolute file paths.
func Discover(ctx context.Context, opts Options) ([]string, error) {
	w, err := newWalker(opts)
	if err != nil {
		return nil, err
	}

	for _, input := range opts.effectivePaths() {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("discovery cancelled: %w", err)
		}

		path := input
		if !filepath.IsAbs(path) {
			path = filepath.Join(w.workDir, path)
		}
		path = filepath.Clean(path)

		info, err := os.Stat(path)
		if err != nil {
			return nil, fmt.Errorf("stat %s: %w", input, err)
		}

		if info.IsDir() {
			if err := w.walk(ctx, path); err != nil {
				return nil, err
			}
			continue
		}
		if !w.exclude.matchFile(w.rel(path)) {
			w.add(path)
		}
	}

	slices.Sort(w.files)
	return w.files, nil
}

// walker accumulates discovered files for one Discover call.
type walker struct {
	workDir        string
	extensions     map[string]bool
	include        globSet
	exclude        globSet
	followSymlinks bool

	seen  map[string]bool
	files []string
}

func newWalker(opts Options) (*walker, error) {
	workDir, err := resolveWorkDir(opts.WorkingDir)
	if err != nil {
		return nil, fmt.Errorf("resolve working directory: %w", err)
	}

	include, err := compileGlobs(opts.IncludeGlobs)
	if err != nil {
		return nil, fmt.Errorf("include patterns: %w", err)
	}
	exclude, err := compileGlobs(opts.ExcludeGlobs)
	if err != nil {
		return nil, fmt.Errorf("exclude patterns: %w", err)
	}

	exts := make(map[string]bool)
	for _, ext := range opts.effectiveExtensions() {
		exts[strings.ToLower(ext)] = true
	}

	return &walker{
		workDir:        workDir,
		extensions:     exts,
		include:        include,
		exclude:        exclude,
		followSymlinks: opts.FollowSymlinks,
		seen:           make(map[string]bool),
	}, nil
}

// resolveWorkDir resolves the working directory, defaulting to os.Getwd().
func resolveWorkDir(workDir string) (string, error) {
	if workDir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("get working directory: %w", err)
		}
		return wd, nil
	}
	abs, err := filepath.Abs(workDir)
	if err != nil {
		return "", fmt.Errorf("resolve absolute path: %w", err)
	}
	return abs, nil
}

func (w *walker) add(path string) {
	if w.seen[path] {
		return
	}
	w.seen[path] = true
	w.files = append(w.files, path)
}

// rel returns path relative to the working directory for pattern matching.
func (w *walker) rel(path string) string {
	rel, err := filepath.Rel(w.workDir, path)
	if err != nil {
		return filepath.ToSlash(path)
	}
	return filepath.ToSlash(rel)
}

func (w *walker) walk(ctx context.Context, root string) error {
	err := filepath.WalkDir(root, func(path string, entry fs.DirEntry, walkErr error) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		if walkErr != nil {
			if os.IsPermission(walkErr) {
				return nil
			}
			return walkErr
		}

		rel := w.rel(path)
		hidden := path != root && strings.HasPrefix(entry.Name(), ".")

		if entry.IsDir() {
			if hidden || w.exclude.matchDir(rel) {
				return filepath.SkipDir
			}
			return nil
		}
		if hidden {
			return nil
		}

		if entry.Type()&fs.ModeSymlink != 0 {
			target, ok := resolveSymlink(path)
			if !ok {
				return nil
			}
			if target.dir {
				if !w.followSymlinks {
					return nil
				}
				// WalkDir does not follow a symlinked root, so walk the target.
				return w.walk(ctx, target.path)
			}
		}

		if w.wants(path, rel) {
			w.add(path)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("walk directory %s: %w", root, err)
	}
	return nil
}

// wants reports whether a walked file is picked up.
func (w *walker) wants(path, rel string) bool {
	if !w.extensions[strings.ToLower(filepath.Ext(path))] {
		return false
	}
	if w.exclude.matchFile(rel) {
		return false
	}
	return w.include.empty() || w.include.matchFile(rel)
}

type symlinkTarget struct {
	path string
	dir  bool
}

// resolveSymlink follows a link. Broken or unreadable links report false.
func resolveSymlink(path string) (symlinkTarget, bool) {
	resolved, err := filepath.EvalSymlinks(path)
	if err != nil {
		return symlinkTarget{}, false
	}
	info, err := os.Stat(resolved)
	if err != nil {
		return symlinkTarget{}, false
	}
	return symlinkTarget{path: resolved, dir: info.IsDir()}, true
}

// globSet is a compiled list of slash-separated glob patterns.
// "*" stays within one path segment and "**" crosses segments.
type globSet []glob.Glob

func compileGlobs(patterns []string) (globSet, error) {
	var set globSet
	for _, pattern := range patterns {
		pattern = filepath.ToSlash(strings.TrimSpace(pattern))
		if pattern == "" {
			continue
		}
		variants := []string{pattern}
		// "**/x" also matches a top-level "x".
		if rest, ok := strings.CutPrefix(pattern, "**/"); ok {
			variants = append(variants, rest)
		}
		for _, v := range variants {
			g, err := glob.Compile(v, '/')
			if err != nil {
				return nil, fmt.Errorf("invalid glob %q: %w", pattern, err)
			}
			set = append(set, g)
		}
	}
	return set, nil
}

func (s globSet) empty() bool { return len(s) == 0 }

// matchFile matches the relative path or, for bare patterns such as
// "*.min.js", the base name.
func (s globSet) matchFile(rel string) bool {
	base := rel[strings.LastIndexByte(rel, '/')+1:]
	for _, g := range s {
		if g.Match(rel) || g.Match(base) {
			return true
		}
	}
	return false
}

// matchDir also tries rel with a trailing slash so "vendor/**" prunes the
// vendor directory itself.
func (s globSet) matchDir(rel string) bool {
	return s.matchFile(rel) || s.matchFile(rel+"/")
}
