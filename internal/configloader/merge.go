package configloader

import "github.com/yaklabco/gohilite/pkg/config"

// merge combines two configurations, with override taking precedence over base.
// The merge follows these rules:
//   - Scalar values: override overwrites base if override is non-zero
//   - Slices: override replaces base entirely if override is non-nil
//   - Nil/unset values in override do not override values in base
func merge(base, override *config.Config) *config.Config {
	if base == nil {
		return override
	}
	if override == nil {
		return base
	}

	result := *base

	result.Highlight = mergeHighlight(base.Highlight, override.Highlight)
	result.Minimap = mergeMinimap(base.Minimap, override.Minimap)

	if override.Format != "" {
		result.Format = override.Format
	}
	if override.Language != "" {
		result.Language = override.Language
	}
	if override.Jobs != 0 {
		result.Jobs = override.Jobs
	}

	if override.Ignore != nil {
		result.Ignore = override.Ignore
	}

	return &result
}

// mergeHighlight merges highlight settings field by field.
func mergeHighlight(base, override config.HighlightConfig) config.HighlightConfig {
	result := base

	if override.Mode != "" {
		result.Mode = override.Mode
	}
	if override.MaxBytes != 0 {
		result.MaxBytes = override.MaxBytes
	}
	// Only true is detectable; a layer cannot switch the release back off.
	if override.ReleaseOnClose {
		result.ReleaseOnClose = true
	}

	return result
}

// mergeMinimap merges minimap geometry field by field.
func mergeMinimap(base, override config.MinimapConfig) config.MinimapConfig {
	result := base

	pick := func(dst *int, v int) {
		if v != 0 {
			*dst = v
		}
	}

	pick(&result.LineHeight, override.LineHeight)
	pick(&result.LineGap, override.LineGap)
	pick(&result.MaxLineLength, override.MaxLineLength)
	pick(&result.WindowBefore, override.WindowBefore)
	pick(&result.WindowAfter, override.WindowAfter)
	pick(&result.TabWidth, override.TabWidth)
	pick(&result.Width, override.Width)
	pick(&result.Height, override.Height)
	pick(&result.Scale, override.Scale)

	if override.ViewLines != 0 {
		result.ViewLines = override.ViewLines
	}

	return result
}

// MergeAll merges multiple configurations in order, with later configs taking precedence.
func MergeAll(configs ...*config.Config) *config.Config {
	if len(configs) == 0 {
		return nil
	}

	result := configs[0]
	for i := 1; i < len(configs); i++ {
		result = merge(result, configs[i])
	}
	return result
}
