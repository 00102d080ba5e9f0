package value

import (
	"github.com/speakeasy-api/yamlvalue/errors"
	"github.com/speakeasy-api/yamlvalue/yml"
	"gopkg.in/yaml.v3"
)

var (
	_ yaml.Marshaler   = Value{}
	_ yaml.Unmarshaler = (*Value)(nil)
)

// FromNode converts a yaml node tree into a Value.
//
// Documents unwrap to their single root, an empty document is null. Scalars resolve by
// their short tag: !!null, !!bool, !!int and !!float produce the matching kind and every
// other tag (!!str, !!timestamp, !!binary and custom tags) produces a string holding the
// scalar text. An !!int above math.MaxInt64 is reinterpreted as a negative Int.
// Duplicate mapping keys keep the first position and the last value.
//
// Aliases, nil nodes and malformed scalars are reported as errors positioned at the
// offending node.
func FromNode(node *yaml.Node) (Value, error) {
	return Deserialize(NewNodeDeserializer(node))
}

// ToNode converts v into a yaml node tree that FromNode turns back into an equal Value.
// Floats are written in their shortest exact form with a fractional part, see yml.FormatFloat.
func ToNode(v Value) *yaml.Node {
	var s nodeSerializer
	// serializing to nodes cannot fail
	_ = v.Serialize(&s)
	return s.node
}

// MarshalYAML implements yaml.Marshaler.
func (v Value) MarshalYAML() (any, error) {
	var s nodeSerializer
	if err := v.Serialize(&s); err != nil {
		return nil, err
	}
	return s.node, nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (v *Value) UnmarshalYAML(node *yaml.Node) error {
	out, err := FromNode(node)
	if err != nil {
		return err
	}

	*v = out
	return nil
}

type nodeSerializer struct {
	node *yaml.Node
}

var _ Serializer = (*nodeSerializer)(nil)

func (s *nodeSerializer) SerializeNull() error {
	s.node = yml.CreateNullNode()
	return nil
}

func (s *nodeSerializer) SerializeBool(b bool) error {
	s.node = yml.CreateBoolNode(b)
	return nil
}

func (s *nodeSerializer) SerializeInt64(i int64) error {
	s.node = yml.CreateIntNode(i)
	return nil
}

func (s *nodeSerializer) SerializeFloat64(f float64) error {
	s.node = yml.CreateFloatNode(f)
	return nil
}

func (s *nodeSerializer) SerializeString(str string) error {
	s.node = yml.CreateStringNode(str)
	return nil
}

func (s *nodeSerializer) SerializeSeq(length int) (SeqSerializer, error) {
	s.node = yml.CreateSliceNode(make([]*yaml.Node, 0, length))
	return &nodeContentSerializer{node: s.node}, nil
}

func (s *nodeSerializer) SerializeMap(length int) (MapSerializer, error) {
	s.node = yml.CreateMapNode(make([]*yaml.Node, 0, 2*length))
	return &nodeContentSerializer{node: s.node}, nil
}

// nodeContentSerializer appends children to a sequence or mapping node.
type nodeContentSerializer struct {
	node *yaml.Node
}

func (s *nodeContentSerializer) SerializeElement(v Value) error {
	return s.append(v)
}

func (s *nodeContentSerializer) SerializeEntry(key, value Value) error {
	if err := s.append(key); err != nil {
		return err
	}
	return s.append(value)
}

func (s *nodeContentSerializer) End() error {
	return nil
}

func (s *nodeContentSerializer) append(v Value) error {
	var child nodeSerializer
	if err := v.Serialize(&child); err != nil {
		return err
	}
	s.node.Content = append(s.node.Content, child.node)
	return nil
}

// NewNodeDeserializer returns a Deserializer reporting the events of a yaml node tree.
//
// A document reports None when empty and Some of its root otherwise, !!null reports Unit
// and integers that only fit in a uint64 report Uint64. Alias nodes are not followed and
// fail with ErrUnsupportedAlias.
func NewNodeDeserializer(node *yaml.Node) Deserializer {
	return nodeDeserializer{node: node}
}

type nodeDeserializer struct {
	node *yaml.Node
}

func (d nodeDeserializer) Deserialize(v Visitor) (Value, error) {
	node := d.node
	if node == nil {
		return Value{}, ErrInvalidNode.Wrapf("nil node")
	}

	var out Value
	var err error

	switch node.Kind {
	case yaml.DocumentNode:
		switch len(node.Content) {
		case 0:
			out, err = v.VisitNone()
		case 1:
			out, err = v.VisitSome(nodeDeserializer{node: node.Content[0]})
		default:
			err = ErrInvalidNode.Wrapf("document has %d roots", len(node.Content))
		}
	case yaml.ScalarNode:
		out, err = visitScalar(node, v)
	case yaml.SequenceNode:
		out, err = v.VisitSeq(&nodeSeqAccess{content: node.Content})
	case yaml.MappingNode:
		if len(node.Content)%2 != 0 {
			err = ErrInvalidNode.Wrapf("mapping has %d children", len(node.Content))
			break
		}
		out, err = v.VisitMap(&nodeMapAccess{parent: node, content: node.Content})
	case yaml.AliasNode:
		err = ErrUnsupportedAlias.Wrapf("alias *%s", node.Value)
	default:
		err = ErrInvalidNode.Wrapf("%s node", yml.NodeKindToString(node.Kind))
	}

	if err != nil {
		return Value{}, errors.AtNode(err, node)
	}

	return out, nil
}

func visitScalar(node *yaml.Node, v Visitor) (Value, error) {
	switch node.ShortTag() {
	case yml.TagNull:
		return v.VisitUnit()
	case yml.TagBool:
		var b bool
		if err := node.Decode(&b); err != nil {
			return Value{}, ErrMalformedScalar.Wrap(err)
		}
		return v.VisitBool(b)
	case yml.TagInt:
		var i int64
		if err := node.Decode(&i); err == nil {
			return v.VisitInt64(i)
		}

		var u uint64
		if err := node.Decode(&u); err != nil {
			return Value{}, ErrMalformedScalar.Wrap(err)
		}
		return v.VisitUint64(u)
	case yml.TagFloat:
		var f float64
		if err := node.Decode(&f); err != nil {
			return Value{}, ErrMalformedFloat.Wrap(err)
		}
		return v.VisitFloat64(f)
	default:
		return v.VisitString(node.Value)
	}
}

type nodeSeqAccess struct {
	content []*yaml.Node
}

func (a *nodeSeqAccess) NextElement(v Visitor) (Value, bool, error) {
	if len(a.content) == 0 {
		return Value{}, false, nil
	}

	node := a.content[0]
	a.content = a.content[1:]

	out, err := nodeDeserializer{node: node}.Deserialize(v)
	if err != nil {
		return Value{}, false, err
	}
	return out, true, nil
}

func (a *nodeSeqAccess) SizeHint() int {
	return len(a.content)
}

type nodeMapAccess struct {
	parent  *yaml.Node
	content []*yaml.Node
	value   *yaml.Node
}

func (a *nodeMapAccess) NextKey(v Visitor) (Value, bool, error) {
	if len(a.content) == 0 {
		return Value{}, false, nil
	}

	key := a.content[0]
	a.value = a.content[1]
	a.content = a.content[2:]

	out, err := nodeDeserializer{node: key}.Deserialize(v)
	if err != nil {
		return Value{}, false, err
	}
	return out, true, nil
}

func (a *nodeMapAccess) NextValue(v Visitor) (Value, error) {
	if a.value == nil {
		return Value{}, errors.AtNode(ErrInvalidNode.Wrapf("mapping value requested before its key"), a.parent)
	}

	node := a.value
	a.value = nil
	return nodeDeserializer{node: node}.Deserialize(v)
}

func (a *nodeMapAccess) SizeHint() int {
	return len(a.content) / 2
}
