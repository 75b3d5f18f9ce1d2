package config

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/yaklabco/gohilite/pkg/syntax"
)

// commentWrapWidth is the maximum width for wrapped comments in templates.
const commentWrapWidth = 70

// TemplateOptions controls configuration template generation.
type TemplateOptions struct {
	// Full includes every setting with its default value and the list of
	// language profiles. If false, generates a minimal commented template.
	Full bool

	// Format is the output format: "yaml" or "json".
	Format string
}

// GenerateTemplate creates a configuration file template.
func GenerateTemplate(opts TemplateOptions) ([]byte, error) {
	if opts.Format == "json" {
		return templateToJSON()
	}
	if opts.Full {
		return generateFullTemplate()
	}
	return generateMinimalTemplate(), nil
}

// generateMinimalTemplate creates a minimal commented template.
func generateMinimalTemplate() []byte {
	var buf bytes.Buffer

	buf.WriteString(DefaultTemplateHeader())
	buf.WriteString(`

highlight:
  # exclusive: strings and comments own their text (default)
  # layered: every rule paints independently
  mode: exclusive

  # Files larger than this many bytes are not highlighted (0 = no limit)
  # max_bytes: 8388608

  # Drop compiled rules when the last document of a language closes
  # release_on_close: false

minimap:
  # Canvas size in pixels
  width: 100
  height: 600

  # Bar height and gap per line, in pixels
  # line_height: 2
  # line_gap: 1

  # Lines visible in the primary view
  # view_lines: 40

# Number of parallel scan workers (0 = auto)
# jobs: 0

# File patterns the scan command skips (glob patterns)
# ignore:
#   - "vendor/**"
#   - "node_modules/**"
`)

	return buf.Bytes()
}

// generateFullTemplate renders the defaults with a commented list of the
// available language profiles.
func generateFullTemplate() ([]byte, error) {
	var header strings.Builder
	header.WriteString(DefaultTemplateHeader())
	header.WriteString("\n#\n# Full template: every setting at its default value.\n#\n# Language profiles:\n")
	for _, p := range syntax.Profiles() {
		line := fmt.Sprintf("%s (%s): %s", p.Language, p.Title, strings.Join(p.Extensions, " "))
		header.WriteString("#   ")
		header.WriteString(wrapComment(line, commentWrapWidth))
		header.WriteString("\n")
	}

	cfg := NewConfig()
	cfg.Ignore = []string{"vendor/**", "node_modules/**", ".git/**"}
	return cfg.ToYAMLWithHeader(header.String())
}

// wrapComment wraps a comment to fit within maxWidth characters.
func wrapComment(text string, maxWidth int) string {
	if len(text) <= maxWidth {
		return text
	}

	var lines []string
	words := strings.Fields(text)
	currentLine := ""

	for _, word := range words {
		switch {
		case currentLine == "":
			currentLine = word
		case len(currentLine)+1+len(word) <= maxWidth:
			currentLine += " " + word
		default:
			lines = append(lines, currentLine)
			currentLine = word
		}
	}
	if currentLine != "" {
		lines = append(lines, currentLine)
	}

	return strings.Join(lines, "\n#     ")
}

// templateToJSON renders the default configuration as JSON.
func templateToJSON() ([]byte, error) {
	yamlBytes, err := NewConfig().ToYAML()
	if err != nil {
		return nil, err
	}

	var generic map[string]any
	if err := yaml.Unmarshal(yamlBytes, &generic); err != nil {
		return nil, fmt.Errorf("decode defaults: %w", err)
	}

	jsonBytes, err := json.MarshalIndent(generic, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal JSON: %w", err)
	}
	return jsonBytes, nil
}

// DefaultTemplateHeader returns the default header for generated configs.
func DefaultTemplateHeader() string {
	return `# gohilite configuration
# See: https://github.com/yaklabco/gohilite`
}
