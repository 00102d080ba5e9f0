// Package yml provides helpers for building and inspecting gopkg.in/yaml.v3 nodes.
package yml

import (
	"math"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Short tags of the scalar kinds understood by the value model.
const (
	TagNull  = "!!null"
	TagBool  = "!!bool"
	TagInt   = "!!int"
	TagFloat = "!!float"
	TagStr   = "!!str"
	TagSeq   = "!!seq"
	TagMap   = "!!map"
)

func CreateNullNode() *yaml.Node {
	return &yaml.Node{
		Value: "null",
		Kind:  yaml.ScalarNode,
		Tag:   TagNull,
	}
}

func CreateStringNode(value string) *yaml.Node {
	return &yaml.Node{
		Value: value,
		Kind:  yaml.ScalarNode,
		Tag:   TagStr,
	}
}

func CreateIntNode(value int64) *yaml.Node {
	return &yaml.Node{
		Value: strconv.FormatInt(value, 10),
		Kind:  yaml.ScalarNode,
		Tag:   TagInt,
	}
}

// CreateFloatNode creates a float scalar whose text parses back to exactly value, see FormatFloat.
func CreateFloatNode(value float64) *yaml.Node {
	return &yaml.Node{
		Value: FormatFloat(value),
		Kind:  yaml.ScalarNode,
		Tag:   TagFloat,
	}
}

func CreateBoolNode(value bool) *yaml.Node {
	return &yaml.Node{
		Value: strconv.FormatBool(value),
		Kind:  yaml.ScalarNode,
		Tag:   TagBool,
	}
}

// CreateMapNode creates a mapping node from alternating key and value nodes.
func CreateMapNode(content []*yaml.Node) *yaml.Node {
	return &yaml.Node{
		Content: content,
		Kind:    yaml.MappingNode,
		Tag:     TagMap,
	}
}

func CreateSliceNode(elements []*yaml.Node) *yaml.Node {
	return &yaml.Node{
		Content: elements,
		Kind:    yaml.SequenceNode,
		Tag:     TagSeq,
	}
}

// FormatFloat renders f as YAML float text. Finite values use FormatFiniteFloat,
// NaN and the infinities use the YAML spellings .nan, .inf and -.inf.
func FormatFloat(f float64) string {
	switch {
	case math.IsNaN(f):
		return ".nan"
	case math.IsInf(f, 1):
		return ".inf"
	case math.IsInf(f, -1):
		return "-.inf"
	default:
		return FormatFiniteFloat(f)
	}
}

// FormatFiniteFloat renders f as the shortest decimal text that parses back to the same bits.
// The text always carries a fractional part so that it cannot be read back as an integer,
// 1 is rendered as 1.0 and 1e+21 as 1.0e+21. The sign of negative zero is kept.
func FormatFiniteFloat(f float64) string {
	s := strconv.FormatFloat(f, 'g', -1, 64)
	if strings.ContainsRune(s, '.') {
		return s
	}

	if i := strings.IndexByte(s, 'e'); i >= 0 {
		return s[:i] + ".0" + s[i:]
	}

	return s + ".0"
}

// EqualNodes compares two yaml.Node instances for equality.
// It performs a deep comparison of kind, short tag, value and content, ignoring positions and styles.
func EqualNodes(a, b *yaml.Node) bool {
	if a == nil || b == nil {
		return a == b
	}

	if a.Kind != b.Kind {
		return false
	}
	if a.ShortTag() != b.ShortTag() {
		return false
	}
	if a.Value != b.Value {
		return false
	}
	if a.Kind == yaml.AliasNode && !EqualNodes(a.Alias, b.Alias) {
		return false
	}

	if len(a.Content) != len(b.Content) {
		return false
	}
	for i, contentA := range a.Content {
		if !EqualNodes(contentA, b.Content[i]) {
			return false
		}
	}

	return true
}
