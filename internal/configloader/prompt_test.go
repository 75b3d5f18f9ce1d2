package configloader

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfirm(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		input      string
		defaultYes bool
		want       bool
		wantHint   string
	}{
		{"empty takes default no", "\n", false, false, "[y/N]"},
		{"empty takes default yes", "\n", true, true, "[Y/n]"},
		{"eof takes default", "", true, true, "[Y/n]"},
		{"yes", "yes\n", false, true, "[y/N]"},
		{"Y without newline", "Y", false, true, "[y/N]"},
		{"anything else is no", "sure\n", true, false, "[Y/n]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var out bytes.Buffer
			got, err := Confirm(strings.NewReader(tt.input), &out, "Overwrite .gohilite.yml?", tt.defaultYes)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, "Overwrite .gohilite.yml? "+tt.wantHint+" ", out.String())
		})
	}
}
