// Package sequencedmap provides a map implementation that maintains the order of keys as they are added.
//
// Keys are not required to be comparable with ==. Instead they supply their own hash and
// equality through the Key constraint, which allows recursive or float bearing keys.
package sequencedmap

import (
	"iter"
	"slices"
)

// Key is the constraint on map keys. Keys that are Equal must have the same Hash.
// A key must not be modified after it has been added to a map, including through any other
// reference to data it shares. Keys that share containers with mutable values should be
// deep copied before they are added.
type Key[K any] interface {
	Hash() uint64
	Equal(other K) bool
}

// Element is a key-value pair that is stored in a sequenced map.
type Element[K Key[K], V any] struct {
	Key   K
	Value V
}

// NewElem creates a new element with the specified key and value.
func NewElem[K Key[K], V any](key K, value V) *Element[K, V] {
	return &Element[K, V]{
		Key:   key,
		Value: value,
	}
}

// Map is a map implementation that maintains the order of keys as they are added.
type Map[K Key[K], V any] struct {
	m map[uint64][]*Element[K, V]
	l []*Element[K, V]
}

// New creates a new map with the specified elements.
// Elements with equal keys collapse into the position of the first one.
func New[K Key[K], V any](elements ...*Element[K, V]) *Map[K, V] {
	return newMap(-1, elements...)
}

// NewWithCapacity creates a new map with the specified capacity and elements.
func NewWithCapacity[K Key[K], V any](capacity int, elements ...*Element[K, V]) *Map[K, V] {
	return newMap(capacity, elements...)
}

func newMap[K Key[K], V any](capacity int, elements ...*Element[K, V]) *Map[K, V] {
	if len(elements) > capacity && capacity > 0 {
		capacity = len(elements)
	}

	m := &Map[K, V]{}
	if capacity > 0 {
		m.m = make(map[uint64][]*Element[K, V], capacity)
		m.l = make([]*Element[K, V], 0, capacity)
	} else {
		m.m = make(map[uint64][]*Element[K, V])
		m.l = make([]*Element[K, V], 0)
	}

	for _, element := range elements {
		m.Set(element.Key, element.Value)
	}

	return m
}

// Init initializes the underlying resources of the map.
func (m *Map[K, V]) Init() {
	if m.m == nil && m.l == nil {
		m.m = make(map[uint64][]*Element[K, V])
		m.l = make([]*Element[K, V], 0)
	}
}

// IsInitialized returns true if the map's underlying resources have been allocated. nil safe.
func (m *Map[K, V]) IsInitialized() bool {
	return m != nil && m.m != nil
}

// Len returns the number of elements in the map. nil safe.
func (m *Map[K, V]) Len() int {
	if m == nil {
		return 0
	}
	return len(m.l)
}

func (m *Map[K, V]) find(key K) *Element[K, V] {
	if m == nil {
		return nil
	}

	for _, element := range m.m[key.Hash()] {
		if element.Key.Equal(key) {
			return element
		}
	}

	return nil
}

// Set sets the value for the specified key.
// If an equal key is already present its value is replaced and it keeps its original position.
func (m *Map[K, V]) Set(key K, value V) {
	m.Init()

	if element := m.find(key); element != nil {
		element.Value = value
		return
	}

	element := &Element[K, V]{
		Key:   key,
		Value: value,
	}

	h := key.Hash()
	m.m[h] = append(m.m[h], element)
	m.l = append(m.l, element)
}

// Get returns the value for the specified key and a boolean indicating whether the key was found.
func (m *Map[K, V]) Get(key K) (V, bool) {
	element := m.find(key)
	if element == nil {
		var zero V
		return zero, false
	}

	return element.Value, true
}

// GetOrZero returns the value for the specified key or the zero value if the key is not found.
func (m *Map[K, V]) GetOrZero(key K) V {
	v, _ := m.Get(key)
	return v
}

// Has returns a boolean indicating whether the map contains the specified key.
func (m *Map[K, V]) Has(key K) bool {
	return m.find(key) != nil
}

// At returns the element at position i in insertion order.
func (m *Map[K, V]) At(i int) (*Element[K, V], bool) {
	if m == nil || i < 0 || i >= len(m.l) {
		return nil, false
	}

	return m.l[i], true
}

// Delete removes the element with the specified key from the map.
func (m *Map[K, V]) Delete(key K) {
	element := m.find(key)
	if element == nil {
		return
	}

	h := key.Hash()
	bucket := slices.DeleteFunc(m.m[h], func(e *Element[K, V]) bool {
		return e == element
	})
	if len(bucket) == 0 {
		delete(m.m, h)
	} else {
		m.m[h] = bucket
	}

	if i := slices.Index(m.l, element); i >= 0 {
		m.l = slices.Delete(m.l, i, i+1)
	}
}

// All returns an iterator that iterates over all elements in the map, in the order they were added.
func (m *Map[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		if m == nil {
			return
		}

		for _, element := range m.l {
			if !yield(element.Key, element.Value) {
				return
			}
		}
	}
}

// Keys returns an iterator that iterates over all keys in the map, in the order they were added.
func (m *Map[K, V]) Keys() iter.Seq[K] {
	return func(yield func(K) bool) {
		if m == nil {
			return
		}

		for _, element := range m.l {
			if !yield(element.Key) {
				return
			}
		}
	}
}

// Values returns an iterator that iterates over all values in the map, in the order they were added.
func (m *Map[K, V]) Values() iter.Seq[V] {
	return func(yield func(V) bool) {
		if m == nil {
			return
		}

		for _, element := range m.l {
			if !yield(element.Value) {
				return
			}
		}
	}
}

// IsEqual compares two maps entry by entry in insertion order using equal for the values.
// A nil map is equal to an empty map.
func (m *Map[K, V]) IsEqual(other *Map[K, V], equal func(a, b V) bool) bool {
	if m.Len() != other.Len() {
		return false
	}

	for i := 0; i < m.Len(); i++ {
		a, b := m.l[i], other.l[i]
		if !a.Key.Equal(b.Key) || !equal(a.Value, b.Value) {
			return false
		}
	}

	return true
}
