package value

import "github.com/speakeasy-api/yamlvalue/sequencedmap"

var _ Deserializer = Value{}

// Deserialize reports v to vis, so that a Value can act as a Deserializer of itself.
// Null is reported as Unit and containers report their length as the size hint.
func (v Value) Deserialize(vis Visitor) (Value, error) {
	switch v.kind {
	case KindBool:
		return vis.VisitBool(v.b)
	case KindInt:
		return vis.VisitInt64(v.i)
	case KindFloat:
		return vis.VisitFloat64(v.f)
	case KindString:
		return vis.VisitString(v.s)
	case KindSequence:
		return vis.VisitSeq(&valueSeqAccess{items: v.seq})
	case KindMapping:
		return vis.VisitMap(&valueMapAccess{m: v.mapping})
	default:
		return vis.VisitUnit()
	}
}

type valueSeqAccess struct {
	items Sequence
}

func (a *valueSeqAccess) NextElement(vis Visitor) (Value, bool, error) {
	if len(a.items) == 0 {
		return Value{}, false, nil
	}

	item := a.items[0]
	a.items = a.items[1:]

	out, err := item.Deserialize(vis)
	if err != nil {
		return Value{}, false, err
	}
	return out, true, nil
}

func (a *valueSeqAccess) SizeHint() int {
	return len(a.items)
}

type valueMapAccess struct {
	m       *Mapping
	next    int
	pending *sequencedmap.Element[Value, Value]
}

func (a *valueMapAccess) NextKey(vis Visitor) (Value, bool, error) {
	element, ok := a.m.At(a.next)
	if !ok {
		return Value{}, false, nil
	}

	a.pending = element
	a.next++

	out, err := element.Key.Deserialize(vis)
	if err != nil {
		return Value{}, false, err
	}
	return out, true, nil
}

func (a *valueMapAccess) NextValue(vis Visitor) (Value, error) {
	if a.pending == nil {
		return Value{}, ErrUnexpectedToken.Wrapf("map value requested before its key")
	}

	element := a.pending
	a.pending = nil
	return element.Value.Deserialize(vis)
}

func (a *valueMapAccess) SizeHint() int {
	return a.m.Len() - a.next
}
