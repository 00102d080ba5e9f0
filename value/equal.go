package value

import (
	"cmp"
	"math"
	"slices"
	"strings"

	"github.com/speakeasy-api/yamlvalue/hashing"
)

// Equal reports whether v and other hold the same variant with equal payloads.
//
// Values of different kinds are never equal, so Null != Bool(false) and Int(1) != Float(1.0).
// Floats compare numerically (0.0 == -0.0) except for NaN, which equals another NaN only
// when both have the same bit pattern. Mappings compare entries in insertion order.
func (v Value) Equal(other Value) bool {
	if v.kind != other.kind {
		return false
	}

	switch v.kind {
	case KindNull:
		return true
	case KindBool:
		return v.b == other.b
	case KindInt:
		return v.i == other.i
	case KindFloat:
		return floatEqual(v.f, other.f)
	case KindString:
		return v.s == other.s
	case KindSequence:
		return slices.EqualFunc(v.seq, other.seq, Value.Equal)
	case KindMapping:
		return v.mapping.IsEqual(other.mapping, Value.Equal)
	default:
		return false
	}
}

func floatEqual(a, b float64) bool {
	if math.IsNaN(a) && math.IsNaN(b) {
		return math.Float64bits(a) == math.Float64bits(b)
	}
	return a == b
}

// Hash returns a hash consistent with Equal.
// All floats share a single hash so that 0.0 and -0.0 land together.
func (v Value) Hash() uint64 {
	h := hashing.New()
	v.hash(h)
	return h.Sum64()
}

func (v Value) hash(h *hashing.Hasher) {
	h.WriteTag(byte(v.kind))

	switch v.kind {
	case KindBool:
		h.WriteBool(v.b)
	case KindInt:
		h.WriteInt64(v.i)
	case KindString:
		h.WriteString(v.s)
	case KindSequence:
		h.WriteLen(len(v.seq))
		for _, item := range v.seq {
			item.hash(h)
		}
	case KindMapping:
		h.WriteLen(v.mapping.Len())
		for key, item := range v.mapping.All() {
			key.hash(h)
			item.hash(h)
		}
	}
}

// Compare orders two values of the same kind and reports whether they are comparable at all.
// Values of different kinds are not comparable, nor is NaN with anything other than a NaN
// with the same bits. Sequences and mappings compare lexicographically by element or entry.
func Compare(a, b Value) (int, bool) {
	if a.kind != b.kind {
		return 0, false
	}

	switch a.kind {
	case KindNull:
		return 0, true
	case KindBool:
		return compareBool(a.b, b.b), true
	case KindInt:
		return cmp.Compare(a.i, b.i), true
	case KindFloat:
		if math.IsNaN(a.f) || math.IsNaN(b.f) {
			if floatEqual(a.f, b.f) {
				return 0, true
			}
			return 0, false
		}
		return cmp.Compare(a.f, b.f), true
	case KindString:
		return strings.Compare(a.s, b.s), true
	case KindSequence:
		for i := range min(len(a.seq), len(b.seq)) {
			if c, ok := Compare(a.seq[i], b.seq[i]); !ok || c != 0 {
				return c, ok
			}
		}
		return cmp.Compare(len(a.seq), len(b.seq)), true
	case KindMapping:
		for i := range min(a.mapping.Len(), b.mapping.Len()) {
			ea, _ := a.mapping.At(i)
			eb, _ := b.mapping.At(i)
			if c, ok := Compare(ea.Key, eb.Key); !ok || c != 0 {
				return c, ok
			}
			if c, ok := Compare(ea.Value, eb.Value); !ok || c != 0 {
				return c, ok
			}
		}
		return cmp.Compare(a.mapping.Len(), b.mapping.Len()), true
	default:
		return 0, false
	}
}

func compareBool(a, b bool) int {
	switch {
	case a == b:
		return 0
	case !a:
		return -1
	default:
		return 1
	}
}

// compareTotal is a total order over all values: kinds rank in declaration order,
// then Compare within a kind. NaNs sort before every other float and among
// themselves by bit pattern.
func compareTotal(a, b Value) int {
	if a.kind != b.kind {
		return cmp.Compare(a.kind, b.kind)
	}

	switch a.kind {
	case KindFloat:
		if c, ok := Compare(a, b); ok {
			return c
		}
		aNaN, bNaN := math.IsNaN(a.f), math.IsNaN(b.f)
		switch {
		case aNaN && bNaN:
			return cmp.Compare(math.Float64bits(a.f), math.Float64bits(b.f))
		case aNaN:
			return -1
		default:
			return 1
		}
	case KindSequence:
		for i := range min(len(a.seq), len(b.seq)) {
			if c := compareTotal(a.seq[i], b.seq[i]); c != 0 {
				return c
			}
		}
		return cmp.Compare(len(a.seq), len(b.seq))
	case KindMapping:
		for i := range min(a.mapping.Len(), b.mapping.Len()) {
			ea, _ := a.mapping.At(i)
			eb, _ := b.mapping.At(i)
			if c := compareTotal(ea.Key, eb.Key); c != 0 {
				return c
			}
			if c := compareTotal(ea.Value, eb.Value); c != 0 {
				return c
			}
		}
		return cmp.Compare(a.mapping.Len(), b.mapping.Len())
	default:
		c, _ := Compare(a, b)
		return c
	}
}
