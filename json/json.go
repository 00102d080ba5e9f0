// Package json provides utilities for working with JSON.
package json

import (
	"context"
	"io"

	"github.com/speakeasy-api/yamlvalue/value"
	"github.com/speakeasy-api/yamlvalue/yml"
	"gopkg.in/yaml.v3"
)

// YAMLToJSON will convert the provided YAML node to JSON in a stable way not reordering keys.
// The output is indented with the given number of spaces, 0 writes compact JSON.
func YAMLToJSON(node *yaml.Node, indentation int, w io.Writer) error {
	return YAMLToJSONWithConfig(node, &yml.Config{
		Indentation:      indentation,
		IndentationStyle: yml.IndentationStyleSpace,
		TrailingNewline:  true,
	}, w)
}

// YAMLToJSONWithConfig converts node to JSON using the indentation and trailing newline
// settings of cfg, or the defaults when cfg is nil. A nil node or the empty node of an empty document is written as null.
//
// Mapping keys that are not strings are written as their JSON text. Aliases are not
// supported, and NaN or infinite floats cannot be written.
func YAMLToJSONWithConfig(node *yaml.Node, cfg *yml.Config, w io.Writer) error {
	v := value.NewNull()
	if node != nil && node.Kind != 0 {
		var err error
		v, err = value.FromNode(node)
		if err != nil {
			return err
		}
	}

	if cfg == nil {
		cfg = yml.GetDefaultConfig()
	}

	jsonCfg := *cfg
	jsonCfg.OutputFormat = yml.OutputFormatJSON

	return value.Marshal(yml.ContextWithConfig(context.Background(), &jsonCfg), v, w)
}
