package value_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/speakeasy-api/yamlvalue/errors"
	"github.com/speakeasy-api/yamlvalue/value"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// traceSerializer writes a flat trace of the calls it receives.
type traceSerializer struct {
	sb     *strings.Builder
	failOn string
}

func (s traceSerializer) write(format string, args ...any) error {
	call := fmt.Sprintf(format, args...)
	if s.failOn != "" && strings.HasPrefix(call, s.failOn) {
		return errors.New("refused " + call)
	}
	s.sb.WriteString(call)
	s.sb.WriteByte(' ')
	return nil
}

func (s traceSerializer) SerializeNull() error             { return s.write("null") }
func (s traceSerializer) SerializeBool(b bool) error       { return s.write("bool(%t)", b) }
func (s traceSerializer) SerializeInt64(i int64) error     { return s.write("int(%d)", i) }
func (s traceSerializer) SerializeFloat64(f float64) error { return s.write("float(%g)", f) }
func (s traceSerializer) SerializeString(v string) error   { return s.write("str(%s)", v) }

func (s traceSerializer) SerializeSeq(length int) (value.SeqSerializer, error) {
	return s, s.write("seq(%d)", length)
}

func (s traceSerializer) SerializeMap(length int) (value.MapSerializer, error) {
	return s, s.write("map(%d)", length)
}

func (s traceSerializer) SerializeElement(v value.Value) error {
	return v.Serialize(s)
}

func (s traceSerializer) SerializeEntry(key, v value.Value) error {
	if err := key.Serialize(s); err != nil {
		return err
	}
	return v.Serialize(s)
}

func (s traceSerializer) End() error {
	return s.write("end")
}

func TestValue_Serialize_Calls(t *testing.T) {
	t.Parallel()

	v := value.MappingOf(
		str("list"), value.NewSequence(integer(1), value.NewFloat(0.5), value.NewBool(false)),
		value.NewNull(), value.MappingOf(),
	)

	var sb strings.Builder
	require.NoError(t, v.Serialize(traceSerializer{sb: &sb}))

	assert.Equal(t, "map(2) str(list) seq(3) int(1) float(0.5) bool(false) end null map(0) end end ", sb.String())
}

func TestValue_Serialize_StopsAtFirstError(t *testing.T) {
	t.Parallel()

	v := value.NewSequence(integer(1), str("bad"), integer(3))

	var sb strings.Builder
	err := v.Serialize(traceSerializer{sb: &sb, failOn: "str"})
	require.Error(t, err)

	assert.Equal(t, "seq(3) int(1) ", sb.String())
}
