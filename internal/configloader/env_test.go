package configloader

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/gohilite/pkg/config"
)

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("GOHILITE_HIGHLIGHT_MAX_BYTES", "1024")
	t.Setenv("GOHILITE_HIGHLIGHT_RELEASE_ON_CLOSE", "true")
	t.Setenv("GOHILITE_MINIMAP_WIDTH", "80")
	t.Setenv("GOHILITE_MINIMAP_TAB_WIDTH", "8")
	t.Setenv("GOHILITE_JOBS", "4")
	t.Setenv("GOHILITE_FORMAT", "json")
	t.Setenv("GOHILITE_LANGUAGE", "python")
	t.Setenv("GOHILITE_IGNORE", " vendor/** , ,dist/**")

	cfg := config.NewConfig()
	require.NoError(t, LoadFromEnv(cfg))

	assert.Equal(t, 1024, cfg.Highlight.MaxBytes)
	assert.True(t, cfg.Highlight.ReleaseOnClose)
	assert.Equal(t, 80, cfg.Minimap.Width)
	assert.Equal(t, 8, cfg.Minimap.TabWidth)
	assert.Equal(t, 4, cfg.Jobs)
	assert.Equal(t, config.FormatJSON, cfg.Format)
	assert.Equal(t, "python", cfg.Language)
	assert.Equal(t, []string{"vendor/**", "dist/**"}, cfg.Ignore)
}

func TestLoadFromEnv_InvalidValues(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{"bad int", "GOHILITE_JOBS", "many"},
		{"bad bool", "GOHILITE_HIGHLIGHT_RELEASE_ON_CLOSE", "maybe"},
		{"bad float", "GOHILITE_MINIMAP_VIEW_LINES", "lots"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)
			err := LoadFromEnv(config.NewConfig())
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.key)
		})
	}
}

func TestLoadFromEnv_Nil(t *testing.T) {
	t.Parallel()
	assert.NoError(t, LoadFromEnv(nil))
}

func TestEnvMappingsAreWired(t *testing.T) {
	t.Parallel()

	// Every mapping must reach a setter; an unknown field would surface
	// only when the variable is set.
	for suffix, mapping := range envMappings {
		value := "1"
		if mapping.typ == envTypeString {
			value = "x"
		}
		err := applyEnvValue(config.NewConfig(), mapping, value, envVarPrefix+suffix)
		assert.NoError(t, err, suffix)
	}
}

func TestGetEnvVarName(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "GOHILITE_MINIMAP_LINE_GAP", GetEnvVarName("minimap.line_gap"))
	assert.Empty(t, GetEnvVarName("nope"))
}

func TestListEnvVars(t *testing.T) {
	t.Parallel()

	vars := ListEnvVars()
	assert.Len(t, vars, len(envMappings))
	for name, help := range vars {
		assert.True(t, strings.HasPrefix(name, "GOHILITE_"), name)
		assert.NotEmpty(t, help, name)
	}

	sorted := SortedEnvVars()
	assert.Len(t, sorted, len(envMappings))
	assert.IsNonDecreasing(t, sorted)
}

func TestParseSliceValue(t *testing.T) {
	t.Parallel()

	assert.Nil(t, parseSliceValue(""))
	assert.Equal(t, []string{"a", "b"}, parseSliceValue("a, b,"))
}
