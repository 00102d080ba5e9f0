package value

import (
	"encoding"
	"reflect"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"
)

var (
	valueType         = reflect.TypeFor[Value]()
	valuePtrType      = reflect.TypeFor[*Value]()
	nodeType          = reflect.TypeFor[yaml.Node]()
	nodePtrType       = reflect.TypeFor[*yaml.Node]()
	yamlMarshalerType = reflect.TypeFor[yaml.Marshaler]()
	textMarshalerType = reflect.TypeFor[encoding.TextMarshaler]()
	emptyStructType   = reflect.TypeFor[struct{}]()
)

// Of converts a Go value into a Value by walking it with reflection, keeping Go's kinds
// so that Of(2.0) is a Float and Of(2) an Int.
//
// Nil pointers, nil interfaces and nil are null. Unsigned integers above math.MaxInt64 are
// reinterpreted as negative Ints. Byte slices become strings. Map entries are ordered by
// their keys so the result is deterministic. Struct fields follow the yaml tag rules:
// "-" skips a field, omitempty drops zero values, inline flattens a nested struct and the
// default key is the lower-cased field name. yaml.Node trees are converted as by FromNode,
// values implementing yaml.Marshaler are converted from the result of MarshalYAML and
// encoding.TextMarshaler values become strings.
func Of(in any) (Value, error) {
	return Deserialize(goDeserializer{v: reflect.ValueOf(in)})
}

type goDeserializer struct {
	v reflect.Value
}

func (d goDeserializer) Deserialize(vis Visitor) (Value, error) {
	rv := d.v
	if !rv.IsValid() {
		return vis.VisitNone()
	}

	if rv.Type() == valueType {
		return rv.Interface().(Value).Deserialize(vis) //nolint:forcetypeassert
	}

	switch rv.Kind() {
	case reflect.Interface:
		if rv.IsNil() {
			return vis.VisitNone()
		}
		return goDeserializer{v: rv.Elem()}.Deserialize(vis)
	case reflect.Pointer:
		if rv.IsNil() {
			return vis.VisitNone()
		}
	}

	switch rv.Type() {
	case nodePtrType:
		return nodeDeserializer{node: rv.Interface().(*yaml.Node)}.Deserialize(vis) //nolint:forcetypeassert
	case nodeType:
		node := rv.Interface().(yaml.Node) //nolint:forcetypeassert
		return nodeDeserializer{node: &node}.Deserialize(vis)
	}

	if rv.Type() != valuePtrType && rv.Type().Implements(yamlMarshalerType) {
		out, err := rv.Interface().(yaml.Marshaler).MarshalYAML() //nolint:forcetypeassert
		if err != nil {
			return Value{}, ErrSerialize.Wrap(err)
		}
		return goDeserializer{v: reflect.ValueOf(out)}.Deserialize(vis)
	}

	if rv.Type().Implements(textMarshalerType) {
		text, err := rv.Interface().(encoding.TextMarshaler).MarshalText() //nolint:forcetypeassert
		if err != nil {
			return Value{}, ErrSerialize.Wrap(err)
		}
		return vis.VisitBytes(text)
	}

	switch rv.Kind() {
	case reflect.Pointer:
		return vis.VisitSome(goDeserializer{v: rv.Elem()})
	case reflect.Bool:
		return vis.VisitBool(rv.Bool())
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return vis.VisitInt64(rv.Int())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return vis.VisitUint64(rv.Uint())
	case reflect.Float32, reflect.Float64:
		return vis.VisitFloat64(rv.Float())
	case reflect.String:
		return vis.VisitString(rv.String())
	case reflect.Slice:
		if rv.Type().Elem().Kind() == reflect.Uint8 {
			return vis.VisitBytes(rv.Bytes())
		}
		return vis.VisitSeq(&goSeqAccess{v: rv})
	case reflect.Array:
		return vis.VisitSeq(&goSeqAccess{v: rv})
	case reflect.Map:
		entries, err := mapEntries(rv)
		if err != nil {
			return Value{}, err
		}
		return vis.VisitMap(&goMapAccess{entries: entries})
	case reflect.Struct:
		if rv.Type() == emptyStructType {
			return vis.VisitUnit()
		}
		return vis.VisitMap(&goMapAccess{entries: structEntries(rv, nil)})
	default:
		return Value{}, ErrUnsupportedType.Wrapf("%s", rv.Type())
	}
}

type goSeqAccess struct {
	v reflect.Value
	i int
}

func (a *goSeqAccess) NextElement(vis Visitor) (Value, bool, error) {
	if a.i >= a.v.Len() {
		return Value{}, false, nil
	}

	elem := a.v.Index(a.i)
	a.i++

	out, err := goDeserializer{v: elem}.Deserialize(vis)
	if err != nil {
		return Value{}, false, err
	}
	return out, true, nil
}

func (a *goSeqAccess) SizeHint() int {
	return a.v.Len() - a.i
}

type goEntry struct {
	key   Value
	value reflect.Value
}

type goMapAccess struct {
	entries []goEntry
	next    int
	pending *goEntry
}

func (a *goMapAccess) NextKey(vis Visitor) (Value, bool, error) {
	if a.next >= len(a.entries) {
		return Value{}, false, nil
	}

	a.pending = &a.entries[a.next]
	a.next++

	out, err := a.pending.key.Deserialize(vis)
	if err != nil {
		return Value{}, false, err
	}
	return out, true, nil
}

func (a *goMapAccess) NextValue(vis Visitor) (Value, error) {
	if a.pending == nil {
		return Value{}, ErrUnexpectedToken.Wrapf("map value requested before its key")
	}

	entry := a.pending
	a.pending = nil
	return goDeserializer{v: entry.value}.Deserialize(vis)
}

func (a *goMapAccess) SizeHint() int {
	return len(a.entries) - a.next
}

func mapEntries(rv reflect.Value) ([]goEntry, error) {
	entries := make([]goEntry, 0, rv.Len())

	iter := rv.MapRange()
	for iter.Next() {
		key, err := Of(iter.Key().Interface())
		if err != nil {
			return nil, err
		}
		entries = append(entries, goEntry{key: key, value: iter.Value()})
	}

	slices.SortStableFunc(entries, func(a, b goEntry) int {
		return compareTotal(a.key, b.key)
	})

	return entries, nil
}

func structEntries(rv reflect.Value, entries []goEntry) []goEntry {
	t := rv.Type()

	for i := range t.NumField() {
		field := t.Field(i)
		if !field.IsExported() {
			continue
		}

		name, opts, _ := strings.Cut(field.Tag.Get("yaml"), ",")
		if name == "-" {
			continue
		}

		fv := rv.Field(i)

		if hasOption(opts, "inline") {
			if fv.Kind() == reflect.Pointer {
				if fv.IsNil() {
					continue
				}
				fv = fv.Elem()
			}
			if fv.Kind() == reflect.Struct {
				entries = structEntries(fv, entries)
				continue
			}
		}

		if hasOption(opts, "omitempty") && fv.IsZero() {
			continue
		}

		if name == "" {
			name = strings.ToLower(field.Name)
		}

		entries = append(entries, goEntry{key: NewString(name), value: fv})
	}

	return entries
}

func hasOption(opts, option string) bool {
	for opts != "" {
		var opt string
		opt, opts, _ = strings.Cut(opts, ",")
		if opt == option {
			return true
		}
	}
	return false
}
