// Package langdetect selects the highlighting profile for a file.
// The extension table is fixed; go-enry is consulted only for files that
// carry no extension, through their shebang line or content.
package langdetect

import (
	"bytes"
	"path/filepath"
	"strings"

	"github.com/go-enry/go-enry/v2"

	"github.com/yaklabco/gohilite/pkg/syntax"
)

// byEnryName maps go-enry language names onto profiles.
//
//nolint:gochecknoglobals // Static lookup table.
var byEnryName = map[string]syntax.Language{
	"Python":     syntax.LanguagePython,
	"C":          syntax.LanguageCLike,
	"C++":        syntax.LanguageCLike,
	"C#":         syntax.LanguageCLike,
	"Java":       syntax.LanguageCLike,
	"JavaScript": syntax.LanguageECMAScript,
	"TypeScript": syntax.LanguageECMAScript,
	"HTML":       syntax.LanguageMarkup,
}

// ForExtension returns the profile registered for a file extension.
// The extension may be given with or without its leading dot and is
// matched case-insensitively. Unknown extensions yield LanguageNone.
func ForExtension(ext string) syntax.Language {
	ext = strings.ToLower(ext)
	if ext == "" {
		return syntax.LanguageNone
	}
	if !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}

	for _, p := range syntax.Profiles() {
		for _, candidate := range p.Extensions {
			if candidate == ext {
				return p.Language
			}
		}
	}
	return syntax.LanguageNone
}

// ForPath returns the profile for a path, by extension only.
func ForPath(path string) syntax.Language {
	return ForExtension(filepath.Ext(path))
}

// Detect returns the profile for a file. Paths with an extension use the
// extension table and nothing else. Paths without one fall back to the
// shebang line, then to content patterns.
func Detect(path string, content []byte) syntax.Language {
	if ext := filepath.Ext(path); ext != "" {
		return ForExtension(ext)
	}
	if len(content) == 0 {
		return syntax.LanguageNone
	}

	// Strategy 1: shebang (most reliable).
	if name, safe := enry.GetLanguageByShebang(content); safe {
		return byEnryName[name]
	}

	// Strategy 2: patterns that are highly indicative.
	if lang := detectByPattern(content); lang != syntax.LanguageNone {
		return lang
	}

	// Strategy 3: classifier restricted to languages we can highlight.
	candidates := []string{"Python", "C", "C++", "Java", "C#", "JavaScript", "TypeScript", "HTML"}
	if name, safe := enry.GetLanguageByClassifier(content, candidates); safe && name != "" {
		return byEnryName[name]
	}

	return syntax.LanguageNone
}

// detectByPattern checks for language-specific patterns.
func detectByPattern(content []byte) syntax.Language {
	contentStr := string(content)
	trimmed := bytes.TrimSpace(content)

	if lang := detectMarkup(trimmed); lang != syntax.LanguageNone {
		return lang
	}
	if lang := detectPython(contentStr); lang != syntax.LanguageNone {
		return lang
	}
	if lang := detectCLike(contentStr); lang != syntax.LanguageNone {
		return lang
	}
	return detectECMAScript(contentStr)
}

func detectMarkup(trimmed []byte) syntax.Language {
	lower := bytes.ToLower(trimmed)
	if bytes.HasPrefix(lower, []byte("<!doctype html")) ||
		bytes.Contains(lower, []byte("<html")) ||
		bytes.Contains(lower, []byte("<body>")) {
		return syntax.LanguageMarkup
	}
	return syntax.LanguageNone
}

func detectPython(contentStr string) syntax.Language {
	// def/class definitions with colon.
	if strings.Contains(contentStr, "def ") && strings.Contains(contentStr, "):") {
		return syntax.LanguagePython
	}
	if strings.Contains(contentStr, "__name__") || strings.Contains(contentStr, "__main__") {
		return syntax.LanguagePython
	}
	return syntax.LanguageNone
}

func detectCLike(contentStr string) syntax.Language {
	if strings.Contains(contentStr, "#include") ||
		strings.Contains(contentStr, "public static void main") ||
		strings.Contains(contentStr, "int main(") {
		return syntax.LanguageCLike
	}
	return syntax.LanguageNone
}

func detectECMAScript(contentStr string) syntax.Language {
	if strings.Contains(contentStr, "=>") ||
		strings.Contains(contentStr, "console.log") ||
		strings.Contains(contentStr, "require(") {
		return syntax.LanguageECMAScript
	}
	return syntax.LanguageNone
}
