package yml_test

import (
	"context"
	"testing"

	"github.com/speakeasy-api/yamlvalue/errors"
	"github.com/speakeasy-api/yamlvalue/yml"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func parseDoc(t *testing.T, data string) *yaml.Node {
	t.Helper()

	var doc yaml.Node
	require.NoError(t, yaml.Unmarshal([]byte(data), &doc))
	return &doc
}

func TestWalk_VisitsDepthFirst(t *testing.T) {
	t.Parallel()

	doc := parseDoc(t, `a: [1, 2]
b: x
`)

	var visited []string
	err := yml.Walk(t.Context(), doc, func(_ context.Context, node, _, _ *yaml.Node) error {
		visited = append(visited, yml.NodeKindToString(node.Kind)+":"+node.Value)
		return nil
	})
	require.NoError(t, err)

	assert.Equal(t, []string{
		"document:",
		"mapping:",
		"scalar:a",
		"sequence:",
		"scalar:1",
		"scalar:2",
		"scalar:b",
		"scalar:x",
	}, visited)
}

func TestWalk_ParentAndRoot(t *testing.T) {
	t.Parallel()

	doc := parseDoc(t, `k: v`)

	err := yml.Walk(t.Context(), doc, func(_ context.Context, node, parent, root *yaml.Node) error {
		assert.Same(t, doc, root)
		switch node.Kind {
		case yaml.DocumentNode:
			assert.Nil(t, parent)
		case yaml.MappingNode:
			assert.Same(t, doc, parent)
		case yaml.ScalarNode:
			assert.Equal(t, yaml.MappingNode, parent.Kind)
		}
		return nil
	})
	require.NoError(t, err)
}

func TestWalk_NilNode(t *testing.T) {
	t.Parallel()

	called := false
	err := yml.Walk(t.Context(), nil, func(context.Context, *yaml.Node, *yaml.Node, *yaml.Node) error {
		called = true
		return nil
	})

	require.NoError(t, err)
	assert.False(t, called)
}

func TestWalk_Terminate(t *testing.T) {
	t.Parallel()

	doc := parseDoc(t, `[1, 2, 3]`)

	count := 0
	err := yml.Walk(t.Context(), doc, func(_ context.Context, node, _, _ *yaml.Node) error {
		count++
		if node.Value == "2" {
			return yml.ErrTerminate
		}
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, 4, count)
}

func TestWalk_VisitError(t *testing.T) {
	t.Parallel()

	errBoom := errors.New("boom")
	err := yml.Walk(t.Context(), parseDoc(t, `a: b`), func(context.Context, *yaml.Node, *yaml.Node, *yaml.Node) error {
		return errBoom
	})

	require.ErrorIs(t, err, errBoom)
}

func TestWalk_CanceledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(t.Context())
	cancel()

	err := yml.Walk(ctx, parseDoc(t, `a: b`), func(context.Context, *yaml.Node, *yaml.Node, *yaml.Node) error {
		return nil
	})

	require.ErrorIs(t, err, context.Canceled)
}

func TestApplyStringStyles_Success(t *testing.T) {
	t.Parallel()

	node := yml.CreateMapNode([]*yaml.Node{
		yml.CreateStringNode("name"),
		yml.CreateStringNode("value"),
		yml.CreateStringNode("count"),
		yml.CreateIntNode(3),
		yml.CreateStringNode("list"),
		yml.CreateSliceNode([]*yaml.Node{yml.CreateStringNode("item")}),
		yml.CreateStringNode("text"),
		yml.CreateStringNode("line one\nline two"),
	})

	ctx := yml.ContextWithConfig(t.Context(), &yml.Config{
		KeyStringStyle:   yaml.DoubleQuotedStyle,
		ValueStringStyle: yaml.SingleQuotedStyle,
	})
	require.NoError(t, yml.ApplyStringStyles(ctx, node))

	assert.Equal(t, yaml.DoubleQuotedStyle, node.Content[0].Style)
	assert.Equal(t, yaml.SingleQuotedStyle, node.Content[1].Style)
	assert.Equal(t, yaml.Style(0), node.Content[3].Style, "non string scalars are untouched")
	assert.Equal(t, yaml.SingleQuotedStyle, node.Content[5].Content[0].Style)
	assert.Equal(t, yaml.SingleQuotedStyle, node.Content[7].Style)
}

func TestApplyStringStyles_LiteralOnlyForMultiline(t *testing.T) {
	t.Parallel()

	node := yml.CreateSliceNode([]*yaml.Node{
		yml.CreateStringNode("single"),
		yml.CreateStringNode("multi\nline"),
	})

	ctx := yml.ContextWithConfig(t.Context(), &yml.Config{ValueStringStyle: yaml.LiteralStyle})
	require.NoError(t, yml.ApplyStringStyles(ctx, node))

	assert.Equal(t, yaml.Style(0), node.Content[0].Style)
	assert.Equal(t, yaml.LiteralStyle, node.Content[1].Style)
}

func TestApplyStringStyles_DefaultConfigNoop(t *testing.T) {
	t.Parallel()

	node := yml.CreateSliceNode([]*yaml.Node{yml.CreateStringNode("a")})
	require.NoError(t, yml.ApplyStringStyles(t.Context(), node))
	assert.Equal(t, yaml.Style(0), node.Content[0].Style)
}
