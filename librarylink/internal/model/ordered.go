package model

import (
	"slices"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Ordered is a string keyed mapping that remembers insertion order and
// round-trips through a JSON object in that order. The zero value is ready
// to use.
type Ordered[V any] struct {
	keys   []string
	values map[string]V
}

func (o *Ordered[V]) Get(key string) (V, bool) {
	v, ok := o.values[key]
	return v, ok
}

// Set replaces the value for key, appending key when it is new.
func (o *Ordered[V]) Set(key string, v V) {
	if o.values == nil {
		o.values = make(map[string]V)
	}
	if _, ok := o.values[key]; !ok {
		o.keys = append(o.keys, key)
	}
	o.values[key] = v
}

func (o *Ordered[V]) Delete(key string) {
	if _, ok := o.values[key]; !ok {
		return
	}
	delete(o.values, key)
	for i, k := range o.keys {
		if k == key {
			o.keys = append(o.keys[:i:i], o.keys[i+1:]...)
			break
		}
	}
}

func (o *Ordered[V]) Len() int {
	return len(o.keys)
}

// Keys returns the keys in insertion order.
func (o *Ordered[V]) Keys() []string {
	return slices.Clone(o.keys)
}

// Range calls fn for each pair in insertion order until fn returns false.
func (o *Ordered[V]) Range(fn func(key string, v V) bool) {
	for _, k := range o.keys {
		if !fn(k, o.values[k]) {
			return
		}
	}
}

// Clone copies the mapping, passing every value through cloneValue.
func (o *Ordered[V]) Clone(cloneValue func(V) V) Ordered[V] {
	if o.values == nil {
		return Ordered[V]{}
	}
	next := Ordered[V]{
		keys:   slices.Clone(o.keys),
		values: make(map[string]V, len(o.values)),
	}
	for k, v := range o.values {
		next.values[k] = cloneValue(v)
	}
	return next
}

func (o Ordered[V]) MarshalJSON() ([]byte, error) {
	stream := json.BorrowStream(nil)
	defer json.ReturnStream(stream)

	stream.WriteObjectStart()
	for i, k := range o.keys {
		if i > 0 {
			stream.WriteMore()
		}
		stream.WriteObjectField(k)
		stream.WriteVal(o.values[k])
	}
	stream.WriteObjectEnd()
	if stream.Error != nil {
		return nil, stream.Error
	}
	return append([]byte(nil), stream.Buffer()...), nil
}

func (o *Ordered[V]) UnmarshalJSON(data []byte) error {
	iter := json.BorrowIterator(data)
	defer json.ReturnIterator(iter)

	var next Ordered[V]
	iter.ReadMapCB(func(it *jsoniter.Iterator, key string) bool {
		var v V
		it.ReadVal(&v)
		next.Set(key, v)
		return it.Error == nil
	})
	if iter.Error != nil {
		return iter.Error
	}
	*o = next
	return nil
}
