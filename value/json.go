package value

import (
	"bytes"
	"io"
	"math"
	"strconv"

	"github.com/goccy/go-json"
	"github.com/speakeasy-api/yamlvalue/errors"
	"github.com/speakeasy-api/yamlvalue/yml"
)

var (
	_ json.Marshaler   = Value{}
	_ json.Unmarshaler = (*Value)(nil)
)

// MarshalJSON implements json.Marshaler, keeping mapping order.
//
// Mapping keys that are not strings are written as their JSON text, so {1: a} becomes {"1":"a"}.
// Keys that render to the same JSON name, such as 1 and "1", fail with ErrDuplicateKey.
// Floats keep a fractional part and NaN or infinite floats fail with ErrUnsupportedFloat.
func (v Value) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	if err := v.Serialize(&jsonSerializer{buf: &buf}); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// UnmarshalJSON implements json.Unmarshaler, keeping object key order.
//
// Numbers become an Int when they fit in an int64, an Int reinterpreted from a uint64 when
// they only fit in a uint64 and a Float otherwise. Empty input is null.
func (v *Value) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	out, err := Deserialize(&jsonDeserializer{dec: dec, root: true})
	if err != nil {
		return err
	}

	if tok, err := dec.Token(); !errors.Is(err, io.EOF) {
		if err != nil {
			return ErrUnexpectedToken.Wrap(err)
		}
		return ErrUnexpectedToken.Wrapf("trailing %v", tok)
	}

	*v = out
	return nil
}

type jsonSerializer struct {
	buf *bytes.Buffer
}

var _ Serializer = (*jsonSerializer)(nil)

func (s *jsonSerializer) SerializeNull() error {
	s.buf.WriteString("null")
	return nil
}

func (s *jsonSerializer) SerializeBool(b bool) error {
	s.buf.WriteString(strconv.FormatBool(b))
	return nil
}

func (s *jsonSerializer) SerializeInt64(i int64) error {
	s.buf.WriteString(strconv.FormatInt(i, 10))
	return nil
}

func (s *jsonSerializer) SerializeFloat64(f float64) error {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return ErrUnsupportedFloat.Wrapf("%s", yml.FormatFloat(f))
	}
	s.buf.WriteString(yml.FormatFiniteFloat(f))
	return nil
}

func (s *jsonSerializer) SerializeString(str string) error {
	data, err := json.Marshal(str)
	if err != nil {
		return ErrSerialize.Wrap(err)
	}
	s.buf.Write(data)
	return nil
}

func (s *jsonSerializer) SerializeSeq(_ int) (SeqSerializer, error) {
	s.buf.WriteByte('[')
	return &jsonContainerSerializer{s: s, end: ']'}, nil
}

func (s *jsonSerializer) SerializeMap(_ int) (MapSerializer, error) {
	s.buf.WriteByte('{')
	return &jsonContainerSerializer{s: s, end: '}'}, nil
}

type jsonContainerSerializer struct {
	s       *jsonSerializer
	end     byte
	written bool
	keys    map[string]struct{}
}

func (c *jsonContainerSerializer) separate() {
	if c.written {
		c.s.buf.WriteByte(',')
	}
	c.written = true
}

func (c *jsonContainerSerializer) SerializeElement(v Value) error {
	c.separate()
	return v.Serialize(c.s)
}

func (c *jsonContainerSerializer) SerializeEntry(key, value Value) error {
	c.separate()

	name, ok := key.AsString()
	if !ok {
		var keyBuf bytes.Buffer
		if err := key.Serialize(&jsonSerializer{buf: &keyBuf}); err != nil {
			return err
		}
		name = keyBuf.String()
	}

	// distinct keys such as 1 and "1" can render to the same name
	if _, seen := c.keys[name]; seen {
		return ErrDuplicateKey.Wrapf("%q from key %s", name, key)
	}
	if c.keys == nil {
		c.keys = make(map[string]struct{})
	}
	c.keys[name] = struct{}{}

	if err := c.s.SerializeString(name); err != nil {
		return err
	}

	c.s.buf.WriteByte(':')
	return value.Serialize(c.s)
}

func (c *jsonContainerSerializer) End() error {
	c.s.buf.WriteByte(c.end)
	return nil
}

// jsonDeserializer reports the events of the next JSON value in a token stream.
// Only the root value may be missing, which is reported as None.
type jsonDeserializer struct {
	dec  *json.Decoder
	root bool
}

func (d *jsonDeserializer) Deserialize(vis Visitor) (Value, error) {
	tok, err := d.dec.Token()
	if err != nil {
		if d.root && errors.Is(err, io.EOF) {
			return vis.VisitNone()
		}
		return Value{}, ErrUnexpectedToken.Wrap(err)
	}

	switch t := tok.(type) {
	case json.Delim:
		switch t {
		case '[':
			return vis.VisitSeq(&jsonSeqAccess{dec: d.dec})
		case '{':
			return vis.VisitMap(&jsonMapAccess{dec: d.dec})
		default:
			return Value{}, ErrUnexpectedToken.Wrapf("%s", t)
		}
	case bool:
		return vis.VisitBool(t)
	case json.Number:
		return visitNumber(string(t), vis)
	case float64:
		return vis.VisitFloat64(t)
	case string:
		return vis.VisitString(t)
	case nil:
		return vis.VisitUnit()
	default:
		return Value{}, ErrUnexpectedToken.Wrapf("%v", tok)
	}
}

func visitNumber(text string, vis Visitor) (Value, error) {
	if i, err := strconv.ParseInt(text, 10, 64); err == nil {
		return vis.VisitInt64(i)
	}
	if u, err := strconv.ParseUint(text, 10, 64); err == nil {
		return vis.VisitUint64(u)
	}

	f, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return Value{}, ErrMalformedFloat.Wrap(err)
	}
	return vis.VisitFloat64(f)
}

// closeContainer consumes the closing delimiter once More reports the container is done.
func closeContainer(dec *json.Decoder, end json.Delim) error {
	tok, err := dec.Token()
	if err != nil {
		return ErrUnexpectedToken.Wrap(err)
	}
	if tok != end {
		return ErrUnexpectedToken.Wrapf("expected %s, got %v", end, tok)
	}
	return nil
}

type jsonSeqAccess struct {
	dec *json.Decoder
}

func (a *jsonSeqAccess) NextElement(vis Visitor) (Value, bool, error) {
	if !a.dec.More() {
		return Value{}, false, closeContainer(a.dec, ']')
	}

	out, err := (&jsonDeserializer{dec: a.dec}).Deserialize(vis)
	if err != nil {
		return Value{}, false, err
	}
	return out, true, nil
}

func (a *jsonSeqAccess) SizeHint() int {
	return -1
}

type jsonMapAccess struct {
	dec *json.Decoder
}

func (a *jsonMapAccess) NextKey(vis Visitor) (Value, bool, error) {
	if !a.dec.More() {
		return Value{}, false, closeContainer(a.dec, '}')
	}

	tok, err := a.dec.Token()
	if err != nil {
		return Value{}, false, ErrUnexpectedToken.Wrap(err)
	}

	key, ok := tok.(string)
	if !ok {
		return Value{}, false, ErrUnexpectedToken.Wrapf("object key %v", tok)
	}

	out, err := vis.VisitString(key)
	if err != nil {
		return Value{}, false, err
	}
	return out, true, nil
}

func (a *jsonMapAccess) NextValue(vis Visitor) (Value, error) {
	return (&jsonDeserializer{dec: a.dec}).Deserialize(vis)
}

func (a *jsonMapAccess) SizeHint() int {
	return -1
}
