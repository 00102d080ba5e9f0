package yml

import (
	"context"
	"strings"

	"github.com/speakeasy-api/yamlvalue/errors"
	"gopkg.in/yaml.v3"
)

const (
	// ErrTerminate is a sentinel error that can be returned from a Walk function to terminate the walk.
	ErrTerminate = errors.Error("terminate")
)

// VisitFunc represents a function that will be called for each node in the node structure.
// The functions receives the current node, its parent node (nil for the root), and the root node.
type VisitFunc func(ctx context.Context, node, parent *yaml.Node, root *yaml.Node) error

// Walk walks the node structure depth first, calling visit for each node before its children.
// Alias nodes are visited but not followed.
func Walk(ctx context.Context, node *yaml.Node, visit VisitFunc) error {
	err := walkNode(ctx, node, nil, node, visit)
	if err != nil {
		if errors.Is(err, ErrTerminate) {
			return nil
		}
		return err
	}

	return nil
}

func walkNode(ctx context.Context, node *yaml.Node, parent *yaml.Node, root *yaml.Node, visit VisitFunc) error {
	if node == nil {
		return nil
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	if err := visit(ctx, node, parent, root); err != nil {
		return err
	}

	for _, child := range node.Content {
		if err := walkNode(ctx, child, node, root, visit); err != nil {
			return err
		}
	}

	return nil
}

// ApplyStringStyles sets the configured key and value string styles on every plain string
// scalar below node. Zero styles in the config leave nodes untouched.
func ApplyStringStyles(ctx context.Context, node *yaml.Node) error {
	cfg := GetConfigFromContext(ctx)
	if cfg.KeyStringStyle == 0 && cfg.ValueStringStyle == 0 {
		return nil
	}

	return Walk(ctx, node, func(_ context.Context, n, parent, _ *yaml.Node) error {
		if n.Kind != yaml.ScalarNode || n.Style != 0 || n.ShortTag() != TagStr {
			return nil
		}

		style := cfg.ValueStringStyle
		if parent != nil && parent.Kind == yaml.MappingNode && isKeyOf(parent, n) {
			style = cfg.KeyStringStyle
		}

		// block styles are only meaningful for multi-line values
		if style&(yaml.LiteralStyle|yaml.FoldedStyle) != 0 && !strings.Contains(n.Value, "\n") {
			return nil
		}

		n.Style = style
		return nil
	})
}

func isKeyOf(mapNode, node *yaml.Node) bool {
	for i := 0; i < len(mapNode.Content); i += 2 {
		if mapNode.Content[i] == node {
			return true
		}
	}
	return false
}
