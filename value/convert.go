package value

// ToValue converts a Go value into a Value. Go kinds are kept, so ToValue(2.0) is a Float,
// and structs, maps and yaml.Marshaler implementations follow yaml.v3's encoding rules,
// see Of. Failures of a MarshalYAML method are wrapped in ErrSerialize.
func ToValue(in any) (Value, error) {
	return Of(in)
}

// FromValue decodes v into a new T using yaml.v3's decoding rules.
func FromValue[T any](v Value) (T, error) {
	var out T
	if err := ToNode(v).Decode(&out); err != nil {
		var zero T
		return zero, ErrTypeMismatch.Wrap(err)
	}

	return out, nil
}
