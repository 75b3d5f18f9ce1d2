// Package runner provides multi-file highlighting orchestration.
package runner

import (
	"github.com/yaklabco/gohilite/pkg/config"
	"github.com/yaklabco/gohilite/pkg/syntax"
)

// Options controls multi-file scanning behavior.
type Options struct {
	// Paths are the user-specified paths (files or directories) to process.
	// If empty, defaults to the current working directory.
	Paths []string

	// WorkingDir is the base directory used to resolve relative Paths.
	// If empty, the current process working directory is used.
	WorkingDir string

	// Extensions is the set of file extensions (lowercase, with leading dot)
	// picked up while walking directories. Defaults to every extension
	// claimed by a language profile via DefaultExtensions().
	Extensions []string

	// IncludeGlobs are additional glob patterns to include, relative to WorkingDir.
	// Empty means "include everything that matches Extensions".
	IncludeGlobs []string

	// ExcludeGlobs are glob patterns used to skip files or directories.
	// These merge ignore rules from config and CLI (e.g. --ignore).
	ExcludeGlobs []string

	// FollowSymlinks controls whether directory symlinks are traversed.
	FollowSymlinks bool

	// Jobs controls the maximum number of concurrent workers.
	// 0 or negative means "auto" (runtime.NumCPU()).
	Jobs int

	// Language forces a profile for every file instead of detection.
	Language syntax.Language

	// Config is the resolved configuration for this run.
	Config *config.Config
}

// DefaultExtensions returns every extension claimed by a language profile.
func DefaultExtensions() []string {
	var exts []string
	for _, p := range syntax.Profiles() {
		exts = append(exts, p.Extensions...)
	}
	return exts
}

// effectiveExtensions returns the extensions to use, defaulting if empty.
func (o Options) effectiveExtensions() []string {
	if len(o.Extensions) == 0 {
		return DefaultExtensions()
	}
	return o.Extensions
}

// effectivePaths returns the paths to process, defaulting to "." if empty.
func (o Options) effectivePaths() []string {
	if len(o.Paths) == 0 {
		return []string{"."}
	}
	return o.Paths
}

// maxBytes returns the per-file read limit.
func (o Options) maxBytes() int64 {
	if o.Config == nil {
		return config.DefaultMaxBytes
	}
	return int64(o.Config.Highlight.MaxBytes)
}
