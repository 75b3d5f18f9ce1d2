package langdetect_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yaklabco/gohilite/pkg/langdetect"
	"github.com/yaklabco/gohilite/pkg/syntax"
)

func TestForExtension(t *testing.T) {
	t.Parallel()

	tests := []struct {
		ext      string
		expected syntax.Language
	}{
		{".py", syntax.LanguagePython},
		{"py", syntax.LanguagePython},
		{".PY", syntax.LanguagePython},
		{".pyi", syntax.LanguagePython},
		{".js", syntax.LanguageECMAScript},
		{".ts", syntax.LanguageECMAScript},
		{".jsx", syntax.LanguageECMAScript},
		{".tsx", syntax.LanguageECMAScript},
		{".java", syntax.LanguageCLike},
		{".c", syntax.LanguageCLike},
		{".cpp", syntax.LanguageCLike},
		{".cs", syntax.LanguageCLike},
		{".h", syntax.LanguageCLike},
		{".html", syntax.LanguageMarkup},
		{".htm", syntax.LanguageMarkup},
		{".rs", syntax.LanguageNone},
		{".md", syntax.LanguageNone},
		{"", syntax.LanguageNone},
	}

	for _, tt := range tests {
		t.Run(tt.ext, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, langdetect.ForExtension(tt.ext))
		})
	}
}

func TestForPath(t *testing.T) {
	t.Parallel()

	assert.Equal(t, syntax.LanguagePython, langdetect.ForPath("/src/app/main.py"))
	assert.Equal(t, syntax.LanguageMarkup, langdetect.ForPath("index.HTML"))
	assert.Equal(t, syntax.LanguageNone, langdetect.ForPath("Makefile"))
}

func TestDetect(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		path     string
		content  string
		expected syntax.Language
	}{
		{
			name:     "extension wins over content",
			path:     "script.js",
			content:  "#!/usr/bin/env python3\nprint('hello')",
			expected: syntax.LanguageECMAScript,
		},
		{
			name:     "unknown extension ignores content",
			path:     "notes.txt",
			content:  "def foo():\n    pass",
			expected: syntax.LanguageNone,
		},
		{
			name:     "shebang python",
			path:     "bin/tool",
			content:  "#!/usr/bin/env python3\nprint('hello')",
			expected: syntax.LanguagePython,
		},
		{
			name:     "shebang node",
			path:     "bin/serve",
			content:  "#!/usr/bin/env node\nconsole.log(1)",
			expected: syntax.LanguageECMAScript,
		},
		{
			name:     "shebang shell has no profile",
			path:     "bin/run",
			content:  "#!/bin/bash\necho hello",
			expected: syntax.LanguageNone,
		},
		{
			name:     "python by pattern",
			path:     "tool",
			content:  "def foo():\n    pass\n\nif __name__ == '__main__':\n    foo()",
			expected: syntax.LanguagePython,
		},
		{
			name:     "html by pattern",
			path:     "page",
			content:  "<!DOCTYPE html>\n<html><body></body></html>",
			expected: syntax.LanguageMarkup,
		},
		{
			name:     "c by pattern",
			path:     "prog",
			content:  "#include <stdio.h>\nint main(void) { return 0; }",
			expected: syntax.LanguageCLike,
		},
		{
			name:     "empty content",
			path:     "empty",
			content:  "",
			expected: syntax.LanguageNone,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, langdetect.Detect(tt.path, []byte(tt.content)))
		})
	}
}
