// Package value provides a dynamically typed model for parsed YAML documents and the
// adapters that move it in and out of yaml.v3 nodes, typed Go values and JSON.
package value

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/speakeasy-api/yamlvalue/sequencedmap"
	"github.com/speakeasy-api/yamlvalue/yml"
)

// Kind identifies the variant held by a Value.
type Kind int

const (
	KindNull Kind = iota
	KindBool
	KindInt
	KindFloat
	KindString
	KindSequence
	KindMapping
)

func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "bool"
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindString:
		return "string"
	case KindSequence:
		return "sequence"
	case KindMapping:
		return "mapping"
	default:
		return "Kind(" + strconv.Itoa(int(k)) + ")"
	}
}

// Sequence is an ordered list of values.
type Sequence = []Value

// Mapping is an insertion ordered map from values to values. Keys are unique under Value.Equal.
type Mapping = sequencedmap.Map[Value, Value]

// Value is a dynamically typed YAML value. It holds exactly one of null, bool, int, float,
// string, sequence or mapping, and the zero Value is null.
//
// Equality is total so that any Value can be used as a Mapping key: two NaN floats are equal
// when their bit patterns are identical. Containers are held by reference, copying a Value
// shares its sequence or mapping with the copy. Use Clone for an independent tree, and
// clone a container before using it as a Mapping key if it may be modified afterwards.
type Value struct {
	kind    Kind
	b       bool
	i       int64
	f       float64
	s       string
	seq     Sequence
	mapping *Mapping
}

func NewNull() Value {
	return Value{}
}

func NewBool(b bool) Value {
	return Value{kind: KindBool, b: b}
}

func NewInt(i int64) Value {
	return Value{kind: KindInt, i: i}
}

func NewFloat(f float64) Value {
	return Value{kind: KindFloat, f: f}
}

func NewString(s string) Value {
	return Value{kind: KindString, s: s}
}

// NewSequence creates a sequence holding items. The sequence takes ownership of the slice
// passed with items... syntax.
func NewSequence(items ...Value) Value {
	return Value{kind: KindSequence, seq: items}
}

// NewMapping creates a mapping backed by m. A nil m creates an empty mapping.
func NewMapping(m *Mapping) Value {
	if m == nil {
		m = sequencedmap.New[Value, Value]()
	}
	return Value{kind: KindMapping, mapping: m}
}

// MappingOf creates a mapping from alternating keys and values. Later duplicates of a key
// replace the value but keep the first position. It panics if given an odd number of values.
func MappingOf(keysAndValues ...Value) Value {
	if len(keysAndValues)%2 != 0 {
		panic(fmt.Sprintf("value.MappingOf: odd number of arguments (%d)", len(keysAndValues)))
	}

	m := sequencedmap.NewWithCapacity[Value, Value](len(keysAndValues) / 2)
	for i := 0; i < len(keysAndValues); i += 2 {
		m.Set(keysAndValues[i], keysAndValues[i+1])
	}
	return NewMapping(m)
}

func (v Value) Kind() Kind {
	return v.kind
}

func (v Value) IsNull() bool {
	return v.kind == KindNull
}

func (v Value) IsBool() bool {
	return v.kind == KindBool
}

func (v Value) AsBool() (bool, bool) {
	if v.kind != KindBool {
		return false, false
	}
	return v.b, true
}

func (v Value) IsInt() bool {
	return v.kind == KindInt
}

func (v Value) AsInt() (int64, bool) {
	if v.kind != KindInt {
		return 0, false
	}
	return v.i, true
}

func (v Value) IsFloat() bool {
	return v.kind == KindFloat
}

func (v Value) AsFloat() (float64, bool) {
	if v.kind != KindFloat {
		return 0, false
	}
	return v.f, true
}

func (v Value) IsString() bool {
	return v.kind == KindString
}

func (v Value) AsString() (string, bool) {
	if v.kind != KindString {
		return "", false
	}
	return v.s, true
}

func (v Value) IsSequence() bool {
	return v.kind == KindSequence
}

// AsSequence returns the elements of a sequence. The returned slice is shared with v.
func (v Value) AsSequence() (Sequence, bool) {
	if v.kind != KindSequence {
		return nil, false
	}
	return v.seq, true
}

// AsSequenceMut returns a pointer to the elements of a sequence so that they can be appended to in place.
func (v *Value) AsSequenceMut() (*Sequence, bool) {
	if v.kind != KindSequence {
		return nil, false
	}
	return &v.seq, true
}

func (v Value) IsMapping() bool {
	return v.kind == KindMapping
}

// AsMapping returns the entries of a mapping. The map is shared with v and may be nil
// for a zero mapping, all of its read methods accept a nil receiver.
func (v Value) AsMapping() (*Mapping, bool) {
	if v.kind != KindMapping {
		return nil, false
	}
	return v.mapping, true
}

// AsMappingMut returns the entries of a mapping for modification, allocating them if needed.
func (v *Value) AsMappingMut() (*Mapping, bool) {
	if v.kind != KindMapping {
		return nil, false
	}
	if v.mapping == nil {
		v.mapping = sequencedmap.New[Value, Value]()
	}
	return v.mapping, true
}

// Clone returns a deep copy of v that shares no containers with it.
func (v Value) Clone() Value {
	switch v.kind {
	case KindSequence:
		if v.seq == nil {
			return v
		}
		seq := make(Sequence, len(v.seq))
		for i, item := range v.seq {
			seq[i] = item.Clone()
		}
		return NewSequence(seq...)
	case KindMapping:
		m := sequencedmap.NewWithCapacity[Value, Value](v.mapping.Len())
		for key, item := range v.mapping.All() {
			m.Set(key.Clone(), item.Clone())
		}
		return NewMapping(m)
	default:
		return v
	}
}

// String renders v in a compact flow style for debugging and error messages.
func (v Value) String() string {
	var sb strings.Builder
	v.writeTo(&sb)
	return sb.String()
}

func (v Value) writeTo(sb *strings.Builder) {
	switch v.kind {
	case KindBool:
		sb.WriteString(strconv.FormatBool(v.b))
	case KindInt:
		sb.WriteString(strconv.FormatInt(v.i, 10))
	case KindFloat:
		sb.WriteString(yml.FormatFloat(v.f))
	case KindString:
		sb.WriteString(strconv.Quote(v.s))
	case KindSequence:
		sb.WriteByte('[')
		for i, item := range v.seq {
			if i > 0 {
				sb.WriteString(", ")
			}
			item.writeTo(sb)
		}
		sb.WriteByte(']')
	case KindMapping:
		sb.WriteByte('{')
		first := true
		for key, item := range v.mapping.All() {
			if !first {
				sb.WriteString(", ")
			}
			first = false
			key.writeTo(sb)
			sb.WriteString(": ")
			item.writeTo(sb)
		}
		sb.WriteByte('}')
	default:
		sb.WriteString("null")
	}
}
