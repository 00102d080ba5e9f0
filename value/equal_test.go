package value_test

import (
	"math"
	"testing"

	"github.com/speakeasy-api/yamlvalue/value"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var otherNaN = math.Float64frombits(0x7ff8000000000002)

func TestValue_Equal(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		a        value.Value
		b        value.Value
		expected bool
	}{
		{name: "nulls", a: value.NewNull(), b: value.NewNull(), expected: true},
		{name: "null is not false", a: value.NewNull(), b: value.NewBool(false), expected: false},
		{name: "int is not float", a: value.NewInt(1), b: value.NewFloat(1), expected: false},
		{name: "string is not int", a: value.NewString("1"), b: value.NewInt(1), expected: false},
		{name: "same nan", a: value.NewFloat(math.NaN()), b: value.NewFloat(math.NaN()), expected: true},
		{name: "different nan bits", a: value.NewFloat(math.NaN()), b: value.NewFloat(otherNaN), expected: false},
		{name: "signed zeros", a: value.NewFloat(0), b: value.NewFloat(math.Copysign(0, -1)), expected: true},
		{name: "infinities", a: value.NewFloat(math.Inf(1)), b: value.NewFloat(math.Inf(1)), expected: true},
		{name: "different ints", a: value.NewInt(1), b: value.NewInt(2), expected: false},
		{
			name:     "nested sequences",
			a:        value.NewSequence(value.NewSequence(value.NewFloat(math.NaN()))),
			b:        value.NewSequence(value.NewSequence(value.NewFloat(math.NaN()))),
			expected: true,
		},
		{
			name:     "sequence length",
			a:        value.NewSequence(value.NewInt(1)),
			b:        value.NewSequence(value.NewInt(1), value.NewInt(1)),
			expected: false,
		},
		{
			name:     "empty sequences",
			a:        value.NewSequence(),
			b:        value.NewSequence([]value.Value{}...),
			expected: true,
		},
		{
			name:     "mapping order matters",
			a:        value.MappingOf(value.NewString("a"), value.NewInt(1), value.NewString("b"), value.NewInt(2)),
			b:        value.MappingOf(value.NewString("b"), value.NewInt(2), value.NewString("a"), value.NewInt(1)),
			expected: false,
		},
		{
			name:     "empty mappings",
			a:        value.NewMapping(nil),
			b:        value.MappingOf(),
			expected: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.expected, tt.a.Equal(tt.b))
			assert.Equal(t, tt.expected, tt.b.Equal(tt.a), "equality is symmetric")
			if tt.expected {
				assert.Equal(t, tt.a.Hash(), tt.b.Hash(), "equal values hash equally")
			}
		})
	}
}

func TestValue_Hash_DistinguishesKinds(t *testing.T) {
	t.Parallel()

	hashes := map[uint64]string{}
	for _, v := range []value.Value{
		value.NewNull(),
		value.NewBool(false),
		value.NewInt(0),
		value.NewFloat(0),
		value.NewString(""),
		value.NewSequence(),
		value.NewMapping(nil),
	} {
		h := v.Hash()
		assert.NotContains(t, hashes, h, "hash of %s collides with %s", v.Kind(), hashes[h])
		hashes[h] = v.Kind().String()
	}
}

func TestValue_Hash_AllFloatsShareBucket(t *testing.T) {
	t.Parallel()

	assert.Equal(t, value.NewFloat(1.5).Hash(), value.NewFloat(math.NaN()).Hash())
	assert.Equal(t, value.NewFloat(0).Hash(), value.NewFloat(math.Copysign(0, -1)).Hash())
}

func TestMapping_KeysCollapse(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		keys []value.Value
	}{
		{name: "nan keys", keys: []value.Value{value.NewFloat(math.NaN()), value.NewFloat(math.NaN())}},
		{name: "int keys", keys: []value.Value{value.NewInt(1), value.NewInt(1)}},
		{name: "signed zero keys", keys: []value.Value{value.NewFloat(0), value.NewFloat(math.Copysign(0, -1))}},
		{
			name: "container keys",
			keys: []value.Value{
				value.NewSequence(value.NewString("a")),
				value.NewSequence(value.NewString("a")),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			v := value.MappingOf(tt.keys[0], value.NewString("first"), tt.keys[1], value.NewString("second"))
			m, _ := v.AsMapping()
			require.Equal(t, 1, m.Len())

			got, ok := m.Get(tt.keys[1])
			require.True(t, ok)
			assert.True(t, got.Equal(value.NewString("second")))
		})
	}
}

func TestMapping_DistinctFloatKeysStaySeparate(t *testing.T) {
	t.Parallel()

	v := value.MappingOf(
		value.NewFloat(1), value.NewString("one"),
		value.NewFloat(math.NaN()), value.NewString("nan"),
		value.NewFloat(otherNaN), value.NewString("other nan"),
		value.NewInt(1), value.NewString("int one"),
	)

	m, _ := v.AsMapping()
	assert.Equal(t, 4, m.Len())
	assert.True(t, m.GetOrZero(value.NewFloat(1)).Equal(value.NewString("one")))
	assert.True(t, m.GetOrZero(value.NewInt(1)).Equal(value.NewString("int one")))
}

func TestCompare(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		a          value.Value
		b          value.Value
		expected   int
		comparable bool
	}{
		{name: "nulls", a: value.NewNull(), b: value.NewNull(), expected: 0, comparable: true},
		{name: "false before true", a: value.NewBool(false), b: value.NewBool(true), expected: -1, comparable: true},
		{name: "ints", a: value.NewInt(3), b: value.NewInt(-3), expected: 1, comparable: true},
		{name: "floats", a: value.NewFloat(1.5), b: value.NewFloat(2.5), expected: -1, comparable: true},
		{name: "signed zeros", a: value.NewFloat(math.Copysign(0, -1)), b: value.NewFloat(0), expected: 0, comparable: true},
		{name: "strings", a: value.NewString("b"), b: value.NewString("a"), expected: 1, comparable: true},
		{name: "across kinds", a: value.NewInt(1), b: value.NewFloat(1), comparable: false},
		{name: "null and bool", a: value.NewNull(), b: value.NewBool(false), comparable: false},
		{name: "nan and number", a: value.NewFloat(math.NaN()), b: value.NewFloat(1), comparable: false},
		{name: "identical nans", a: value.NewFloat(math.NaN()), b: value.NewFloat(math.NaN()), expected: 0, comparable: true},
		{name: "different nans", a: value.NewFloat(math.NaN()), b: value.NewFloat(otherNaN), comparable: false},
		{
			name:       "sequence prefix",
			a:          value.NewSequence(value.NewInt(1)),
			b:          value.NewSequence(value.NewInt(1), value.NewInt(0)),
			expected:   -1,
			comparable: true,
		},
		{
			name:       "sequence element",
			a:          value.NewSequence(value.NewInt(2)),
			b:          value.NewSequence(value.NewInt(1), value.NewInt(5)),
			expected:   1,
			comparable: true,
		},
		{
			name:       "sequence mixed elements",
			a:          value.NewSequence(value.NewInt(1)),
			b:          value.NewSequence(value.NewString("1")),
			comparable: false,
		},
		{
			name:       "mapping entries",
			a:          value.MappingOf(value.NewString("a"), value.NewInt(1)),
			b:          value.MappingOf(value.NewString("a"), value.NewInt(2)),
			expected:   -1,
			comparable: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			c, ok := value.Compare(tt.a, tt.b)
			assert.Equal(t, tt.comparable, ok)
			if tt.comparable {
				assert.Equal(t, tt.expected, c)
			}
		})
	}
}
