package yml

import (
	"bytes"
	"context"
	"strconv"

	"gopkg.in/yaml.v3"
)

type contextKey string

func (c contextKey) String() string {
	return "yml-context-key-" + string(c)
}

const configContextKey = contextKey("config")

type OutputFormat string

const (
	OutputFormatJSON OutputFormat = "json"
	OutputFormatYAML OutputFormat = "yaml"
)

type IndentationStyle string

const (
	IndentationStyleSpace IndentationStyle = "space"
	IndentationStyleTab   IndentationStyle = "tab"
)

func (i IndentationStyle) ToIndent() string {
	switch i {
	case IndentationStyleSpace:
		return " "
	case IndentationStyleTab:
		return "\t"
	default:
		return ""
	}
}

// Config controls how documents are emitted.
type Config struct {
	KeyStringStyle   yaml.Style       // The string style applied to mapping keys
	ValueStringStyle yaml.Style       // The string style applied to string values
	Indentation      int              // The indentation width of the document
	IndentationStyle IndentationStyle // The indentation style of the document, valid for JSON only
	OutputFormat     OutputFormat     // The output format to use when marshalling
	TrailingNewline  bool             // Whether JSON output ends with a newline, YAML output always does
}

var defaultConfig = &Config{
	Indentation:      2,
	IndentationStyle: IndentationStyleSpace,
	OutputFormat:     OutputFormatYAML,
	TrailingNewline:  true,
}

// GetDefaultConfig returns a copy of the default config.
func GetDefaultConfig() *Config {
	def := *defaultConfig
	return &def
}

func ContextWithConfig(ctx context.Context, config *Config) context.Context {
	if config == nil {
		return ctx
	}

	return context.WithValue(ctx, configContextKey, config)
}

// GetConfigFromContext returns the config stored in ctx or a copy of the default config.
func GetConfigFromContext(ctx context.Context) *Config {
	cfg, ok := ctx.Value(configContextKey).(*Config)
	if !ok || cfg == nil {
		return GetDefaultConfig()
	}

	return cfg
}

// GetConfigFromDoc inspects the raw document data and its parsed node to build a config
// that reproduces the document's format, indentation and dominant string styles.
func GetConfigFromDoc(data []byte, doc *yaml.Node) *Config {
	cfg := GetDefaultConfig()

	cfg.OutputFormat, cfg.Indentation, cfg.IndentationStyle = inspectData(data)
	cfg.TrailingNewline = len(data) > 0 && data[len(data)-1] == '\n'

	// JSON input keeps the default YAML styles
	if cfg.OutputFormat == OutputFormatYAML && doc != nil {
		getGlobalStringStyle(doc, cfg)
	}

	return cfg
}

func inspectData(data []byte) (OutputFormat, int, IndentationStyle) {
	format := OutputFormatYAML
	indentation := 2
	indentationStyle := IndentationStyleSpace

	baseline := -1
	checkedFormat := false

	for i, line := range bytes.Split(bytes.TrimSpace(data), []byte("\n")) {
		trimLine := bytes.TrimSpace(line)
		if len(trimLine) == 0 || trimLine[0] == '#' {
			continue
		}

		if !checkedFormat {
			checkedFormat = true
			if trimLine[0] == '{' || trimLine[0] == '[' {
				format = OutputFormatJSON
			}
		}

		leading := 0
		for leading < len(line) && (line[leading] == ' ' || line[leading] == '\t') {
			leading++
		}

		if baseline == -1 || leading < baseline {
			baseline = leading
			continue
		}

		if leading > baseline {
			whitespace := line[baseline:leading]
			if whitespace[0] == '\t' {
				indentationStyle = IndentationStyleTab
			}

			indentation = 0
			for _, ch := range whitespace {
				if ch != whitespace[0] {
					break
				}
				indentation++
			}

			return format, indentation, indentationStyle
		}

		// stop scanning long flat documents
		if i > 10 {
			break
		}
	}

	return format, indentation, indentationStyle
}

func getGlobalStringStyle(doc *yaml.Node, cfg *Config) {
	const minSamples = 3

	keyStyles := make([]yaml.Style, 0, minSamples)
	valueStyles := make([]yaml.Style, 0, minSamples)

	var navigate func(node *yaml.Node)
	navigate = func(node *yaml.Node) {
		if node == nil || (len(keyStyles) >= minSamples && len(valueStyles) >= minSamples) {
			return
		}

		switch node.Kind {
		case yaml.DocumentNode, yaml.SequenceNode:
			for _, n := range node.Content {
				navigate(n)
			}
		case yaml.MappingNode:
			for i, n := range node.Content {
				if i%2 == 1 {
					navigate(n)
					continue
				}
				if n.Kind == yaml.ScalarNode && n.ShortTag() == TagStr && len(keyStyles) < minSamples {
					keyStyles = append(keyStyles, n.Style)
				}
			}
		case yaml.ScalarNode:
			// quoted numbers need quotes and don't represent the typical string style
			if node.ShortTag() == TagStr && len(valueStyles) < minSamples && !looksLikeNumber(node.Value) {
				valueStyles = append(valueStyles, node.Style)
			}
		}
	}

	navigate(doc)

	if len(keyStyles) > 0 {
		cfg.KeyStringStyle = mostCommonStyle(keyStyles)
	}

	if len(valueStyles) > 0 {
		cfg.ValueStringStyle = mostCommonStyle(valueStyles)
	}
}

func looksLikeNumber(s string) bool {
	if s == "" {
		return false
	}

	_, err := strconv.ParseFloat(s, 64)
	return err == nil
}

// mostCommonStyle returns the most frequent style, preferring the earliest seen on ties.
func mostCommonStyle(styles []yaml.Style) yaml.Style {
	counts := make(map[yaml.Style]int)
	for _, style := range styles {
		counts[style]++
	}

	var maxCount int
	var mostCommon yaml.Style
	for _, style := range styles {
		if counts[style] > maxCount {
			maxCount = counts[style]
			mostCommon = style
		}
	}

	return mostCommon
}
