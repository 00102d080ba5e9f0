package yml_test

import (
	"testing"

	"github.com/speakeasy-api/yamlvalue/yml"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestGetConfigFromContext_Success(t *testing.T) {
	t.Parallel()

	t.Run("default when missing", func(t *testing.T) {
		t.Parallel()
		cfg := yml.GetConfigFromContext(t.Context())
		assert.Equal(t, yml.GetDefaultConfig(), cfg)
	})

	t.Run("stored config", func(t *testing.T) {
		t.Parallel()
		stored := &yml.Config{Indentation: 4, OutputFormat: yml.OutputFormatJSON}
		ctx := yml.ContextWithConfig(t.Context(), stored)
		assert.Same(t, stored, yml.GetConfigFromContext(ctx))
	})

	t.Run("nil config leaves context unchanged", func(t *testing.T) {
		t.Parallel()
		ctx := t.Context()
		assert.Equal(t, ctx, yml.ContextWithConfig(ctx, nil))
	})
}

func TestGetDefaultConfig_ReturnsCopy(t *testing.T) {
	t.Parallel()

	cfg := yml.GetDefaultConfig()
	cfg.Indentation = 8

	assert.Equal(t, 2, yml.GetDefaultConfig().Indentation)
}

func TestGetConfigFromDoc_Success(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name                string
		data                string
		expectedFormat      yml.OutputFormat
		expectedIndent      int
		expectedIndentStyle yml.IndentationStyle
		expectedKeyStyle    yaml.Style
		expectedValueStyle  yaml.Style
		expectedNewline     bool
	}{
		{
			name: "YAML document with quoted strings",
			data: `key1: "value1"
key2: 'value2'
nested:
    subkey: "subvalue"
`,
			expectedFormat:      yml.OutputFormatYAML,
			expectedIndent:      4,
			expectedIndentStyle: yml.IndentationStyleSpace,
			expectedKeyStyle:    0,
			expectedValueStyle:  yaml.DoubleQuotedStyle,
			expectedNewline:     true,
		},
		{
			name: "JSON object",
			data: `{
  "key1": "value1",
  "key2": "value2"
}`,
			expectedFormat:      yml.OutputFormatJSON,
			expectedIndent:      2,
			expectedIndentStyle: yml.IndentationStyleSpace,
			expectedNewline:     false,
		},
		{
			name:                "JSON array with tabs",
			data:                "[\n\t1,\n\t2\n]\n",
			expectedFormat:      yml.OutputFormatJSON,
			expectedIndent:      1,
			expectedIndentStyle: yml.IndentationStyleTab,
			expectedNewline:     true,
		},
		{
			name: "leading comments are skipped",
			data: `# comment
list:
  - 'a'
  - 'b'
`,
			expectedFormat:      yml.OutputFormatYAML,
			expectedIndent:      2,
			expectedIndentStyle: yml.IndentationStyleSpace,
			expectedValueStyle:  yaml.SingleQuotedStyle,
			expectedNewline:     true,
		},
		{
			name: "quoted numbers are ignored for value style",
			data: `a: "1"
b: "2"
c: plain
`,
			expectedFormat:      yml.OutputFormatYAML,
			expectedIndent:      2,
			expectedIndentStyle: yml.IndentationStyleSpace,
			expectedValueStyle:  0,
			expectedNewline:     true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var doc yaml.Node
			require.NoError(t, yaml.Unmarshal([]byte(tt.data), &doc))

			cfg := yml.GetConfigFromDoc([]byte(tt.data), &doc)
			assert.Equal(t, tt.expectedFormat, cfg.OutputFormat)
			assert.Equal(t, tt.expectedIndent, cfg.Indentation)
			assert.Equal(t, tt.expectedIndentStyle, cfg.IndentationStyle)
			assert.Equal(t, tt.expectedKeyStyle, cfg.KeyStringStyle)
			assert.Equal(t, tt.expectedValueStyle, cfg.ValueStringStyle)
			assert.Equal(t, tt.expectedNewline, cfg.TrailingNewline)
		})
	}
}

func TestIndentationStyle_ToIndent_Success(t *testing.T) {
	t.Parallel()

	assert.Equal(t, " ", yml.IndentationStyleSpace.ToIndent())
	assert.Equal(t, "\t", yml.IndentationStyleTab.ToIndent())
	assert.Empty(t, yml.IndentationStyle("other").ToIndent())
}
