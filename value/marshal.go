package value

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/goccy/go-json"
	"github.com/speakeasy-api/yamlvalue/yml"
	"gopkg.in/yaml.v3"
)

// Unmarshal reads a single YAML or JSON document into a Value. The returned config describes
// the document's format, indentation and string styles so that Marshal can write it back alike.
// An empty document is null.
func Unmarshal(ctx context.Context, r io.Reader) (Value, *yml.Config, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return Value{}, nil, fmt.Errorf("failed to read document: %w", err)
	}

	if err := ctx.Err(); err != nil {
		return Value{}, nil, err
	}

	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return Value{}, nil, fmt.Errorf("failed to parse document: %w", err)
	}

	cfg := yml.GetConfigFromDoc(data, &doc)

	// yaml.v3 leaves the node untouched for input without a document
	if doc.Kind == 0 {
		return NewNull(), cfg, nil
	}

	v, err := FromNode(&doc)
	if err != nil {
		return Value{}, nil, err
	}

	return v, cfg, nil
}

// Marshal writes v to w in the format described by the config stored in ctx,
// see yml.ContextWithConfig. Without a config v is written as YAML indented by two spaces.
// JSON with an indentation of 0 is written compactly.
func Marshal(ctx context.Context, v Value, w io.Writer) error {
	cfg := yml.GetConfigFromContext(ctx)

	switch cfg.OutputFormat {
	case yml.OutputFormatJSON:
		return marshalJSON(v, cfg, w)
	default:
		return marshalYAML(ctx, v, cfg, w)
	}
}

func marshalYAML(ctx context.Context, v Value, cfg *yml.Config, w io.Writer) error {
	node := ToNode(v)
	if err := yml.ApplyStringStyles(ctx, node); err != nil {
		return err
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(cfg.Indentation)
	if err := enc.Encode(node); err != nil {
		return ErrSerialize.Wrap(err)
	}

	return enc.Close()
}

func marshalJSON(v Value, cfg *yml.Config, w io.Writer) error {
	data, err := v.MarshalJSON()
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	if cfg.Indentation > 0 {
		if err := json.Indent(&buf, data, "", strings.Repeat(cfg.IndentationStyle.ToIndent(), cfg.Indentation)); err != nil {
			return ErrSerialize.Wrap(err)
		}
	} else {
		buf.Write(data)
	}
	if cfg.TrailingNewline {
		buf.WriteByte('\n')
	}

	_, err = w.Write(buf.Bytes())
	return err
}
