package value

import (
	"github.com/speakeasy-api/yamlvalue/sequencedmap"
)

// maxPreallocate bounds the capacity taken from size hints supplied by event sources.
const maxPreallocate = 4096

// Visitor receives the single event a Deserializer reports for one value and returns the
// Value it builds from it.
type Visitor interface {
	VisitBool(b bool) (Value, error)
	VisitInt64(i int64) (Value, error)
	VisitUint64(u uint64) (Value, error)
	VisitFloat64(f float64) (Value, error)
	// VisitBytes receives string data that is only valid for the duration of the call.
	VisitBytes(b []byte) (Value, error)
	VisitString(s string) (Value, error)
	// VisitNone reports an absent optional value.
	VisitNone() (Value, error)
	// VisitSome reports a present optional value, d reports the value itself.
	VisitSome(d Deserializer) (Value, error)
	// VisitUnit reports an explicit null.
	VisitUnit() (Value, error)
	VisitSeq(seq SeqAccess) (Value, error)
	VisitMap(m MapAccess) (Value, error)
}

// Deserializer is a source of events for exactly one value.
type Deserializer interface {
	// Deserialize reports the value to v and returns what v built.
	Deserialize(v Visitor) (Value, error)
}

// SeqAccess yields the elements of a sequence event one at a time.
type SeqAccess interface {
	// NextElement deserializes the next element with v. ok is false once the sequence is exhausted.
	NextElement(v Visitor) (elem Value, ok bool, err error)
	// SizeHint returns the number of remaining elements, or -1 when unknown.
	SizeHint() int
}

// MapAccess yields the entries of a mapping event one at a time.
type MapAccess interface {
	// NextKey deserializes the next key with v. ok is false once the mapping is exhausted.
	NextKey(v Visitor) (key Value, ok bool, err error)
	// NextValue deserializes the value of the key returned by the preceding NextKey.
	NextValue(v Visitor) (Value, error)
	// SizeHint returns the number of remaining entries, or -1 when unknown.
	SizeHint() int
}

// Deserialize builds a Value from the events reported by d.
func Deserialize(d Deserializer) (Value, error) {
	return d.Deserialize(Builder{})
}

// Builder is the Visitor that builds a Value from any event. It holds no state.
type Builder struct{}

var _ Visitor = Builder{}

func (Builder) VisitBool(b bool) (Value, error) {
	return NewBool(b), nil
}

func (Builder) VisitInt64(i int64) (Value, error) {
	return NewInt(i), nil
}

// VisitUint64 narrows u to an Int by reinterpreting its bits, so values above
// math.MaxInt64 become negative.
func (Builder) VisitUint64(u uint64) (Value, error) {
	return NewInt(int64(u)), nil //nolint:gosec
}

func (Builder) VisitFloat64(f float64) (Value, error) {
	return NewFloat(f), nil
}

func (Builder) VisitBytes(b []byte) (Value, error) {
	return NewString(string(b)), nil
}

func (Builder) VisitString(s string) (Value, error) {
	return NewString(s), nil
}

func (Builder) VisitNone() (Value, error) {
	return NewNull(), nil
}

func (b Builder) VisitSome(d Deserializer) (Value, error) {
	return d.Deserialize(b)
}

func (Builder) VisitUnit() (Value, error) {
	return NewNull(), nil
}

func (b Builder) VisitSeq(seq SeqAccess) (Value, error) {
	items := make(Sequence, 0, capacityHint(seq.SizeHint()))
	for {
		item, ok, err := seq.NextElement(b)
		if err != nil {
			return Value{}, err
		}
		if !ok {
			break
		}
		items = append(items, item)
	}

	return NewSequence(items...), nil
}

func (b Builder) VisitMap(m MapAccess) (Value, error) {
	out := sequencedmap.NewWithCapacity[Value, Value](capacityHint(m.SizeHint()))
	for {
		key, ok, err := m.NextKey(b)
		if err != nil {
			return Value{}, err
		}
		if !ok {
			break
		}

		item, err := m.NextValue(b)
		if err != nil {
			return Value{}, err
		}

		out.Set(key, item)
	}

	return NewMapping(out), nil
}

func capacityHint(hint int) int {
	return max(0, min(hint, maxPreallocate))
}
