package testutils

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func CreateStringYamlNode(value string, line, column int) *yaml.Node {
	return createScalarYamlNode("!!str", value, line, column)
}

func CreateIntYamlNode(value int, line, column int) *yaml.Node {
	return createScalarYamlNode("!!int", strconv.Itoa(value), line, column)
}

// CreateFloatYamlNode creates a float scalar holding text verbatim so that malformed floats can be built.
func CreateFloatYamlNode(text string, line, column int) *yaml.Node {
	return createScalarYamlNode("!!float", text, line, column)
}

func CreateBoolYamlNode(value bool, line, column int) *yaml.Node {
	return createScalarYamlNode("!!bool", strconv.FormatBool(value), line, column)
}

func CreateNullYamlNode(line, column int) *yaml.Node {
	return createScalarYamlNode("!!null", "null", line, column)
}

// CreateTaggedYamlNode creates a scalar with an arbitrary tag.
func CreateTaggedYamlNode(tag, value string, line, column int) *yaml.Node {
	return createScalarYamlNode(tag, value, line, column)
}

func createScalarYamlNode(tag, value string, line, column int) *yaml.Node {
	return &yaml.Node{
		Value:  value,
		Kind:   yaml.ScalarNode,
		Tag:    tag,
		Line:   line,
		Column: column,
	}
}

func CreateMapYamlNode(contents []*yaml.Node, line, column int) *yaml.Node {
	return &yaml.Node{
		Content: contents,
		Kind:    yaml.MappingNode,
		Tag:     "!!map",
		Line:    line,
		Column:  column,
	}
}

func CreateSliceYamlNode(contents []*yaml.Node, line, column int) *yaml.Node {
	return &yaml.Node{
		Content: contents,
		Kind:    yaml.SequenceNode,
		Tag:     "!!seq",
		Line:    line,
		Column:  column,
	}
}

// CreateAliasYamlNode creates an alias of target, which is expected to carry anchor.
func CreateAliasYamlNode(anchor string, target *yaml.Node, line, column int) *yaml.Node {
	return &yaml.Node{
		Value:  anchor,
		Kind:   yaml.AliasNode,
		Alias:  target,
		Line:   line,
		Column: column,
	}
}

func CreateDocumentYamlNode(contents ...*yaml.Node) *yaml.Node {
	return &yaml.Node{
		Content: contents,
		Kind:    yaml.DocumentNode,
		Line:    1,
		Column:  1,
	}
}

// ParseYAML parses data into a document node, failing the test on error.
func ParseYAML(t *testing.T, data string) *yaml.Node {
	t.Helper()

	var doc yaml.Node
	require.NoError(t, yaml.Unmarshal([]byte(data), &doc), "failed to parse YAML")
	return &doc
}
