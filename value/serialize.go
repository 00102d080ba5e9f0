package value

// Serializer receives a value from Value.Serialize. Exactly one method is called per value,
// containers continue through the returned SeqSerializer or MapSerializer.
type Serializer interface {
	SerializeNull() error
	SerializeBool(b bool) error
	SerializeInt64(i int64) error
	SerializeFloat64(f float64) error
	SerializeString(s string) error
	// SerializeSeq starts a sequence of length elements.
	SerializeSeq(length int) (SeqSerializer, error)
	// SerializeMap starts a mapping of length entries.
	SerializeMap(length int) (MapSerializer, error)
}

type SeqSerializer interface {
	SerializeElement(v Value) error
	End() error
}

type MapSerializer interface {
	SerializeEntry(key, value Value) error
	End() error
}

// Serialize writes v to s, dispatching on its kind. Sequences and mappings announce their
// length and hand every child back to the container serializer.
func (v Value) Serialize(s Serializer) error {
	switch v.kind {
	case KindBool:
		return s.SerializeBool(v.b)
	case KindInt:
		return s.SerializeInt64(v.i)
	case KindFloat:
		return s.SerializeFloat64(v.f)
	case KindString:
		return s.SerializeString(v.s)
	case KindSequence:
		seq, err := s.SerializeSeq(len(v.seq))
		if err != nil {
			return err
		}
		for _, item := range v.seq {
			if err := seq.SerializeElement(item); err != nil {
				return err
			}
		}
		return seq.End()
	case KindMapping:
		m, err := s.SerializeMap(v.mapping.Len())
		if err != nil {
			return err
		}
		for key, item := range v.mapping.All() {
			if err := m.SerializeEntry(key, item); err != nil {
				return err
			}
		}
		return m.End()
	default:
		return s.SerializeNull()
	}
}
