package restdoc

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"

	"github.com/tidwall/gjson"
)

// OrderedMap is a string-keyed map that preserves JSON object key order
// through unmarshal and marshal. RestDoc's "methods", "schemas", and
// "statusCodes" objects are all declaration-order-significant for
// deterministic diagnostics even though the spec doesn't require a
// specific order — the teacher's ObjMap[T]/Map[T] (obj_map.go, map.go)
// establish the same guarantee for OpenAPI's Paths/Responses/Headers
// objects the same way: an Items slice populated via
// gjson.ParseBytes(data).ForEach rather than a plain map.
type OrderedMap[T any] struct {
	keys   []string
	values map[string]T
}

// NewOrderedMap returns an empty OrderedMap ready for Set.
func NewOrderedMap[T any]() *OrderedMap[T] {
	return &OrderedMap[T]{values: map[string]T{}}
}

// Set inserts or overwrites key. The first Set of a given key fixes its
// position in Keys(); a later Set of the same key updates the value in
// place without changing that position.
func (m *OrderedMap[T]) Set(key string, val T) {
	if m.values == nil {
		m.values = map[string]T{}
	}
	if _, ok := m.values[key]; !ok {
		m.keys = append(m.keys, key)
	}
	m.values[key] = val
}

// Get returns the value stored under key, and whether it was present.
func (m *OrderedMap[T]) Get(key string) (T, bool) {
	if m == nil {
		var zero T
		return zero, false
	}
	v, ok := m.values[key]
	return v, ok
}

// Keys returns m's keys in declaration (insertion) order.
func (m *OrderedMap[T]) Keys() []string {
	if m == nil {
		return nil
	}
	return m.keys
}

// SortedKeys returns m's keys in lexicographic order, for callers that
// need deterministic iteration regardless of authoring order.
func (m *OrderedMap[T]) SortedKeys() []string {
	keys := append([]string{}, m.Keys()...)
	sort.Strings(keys)
	return keys
}

// Len reports the number of entries in m. A nil *OrderedMap has length 0.
func (m *OrderedMap[T]) Len() int {
	if m == nil {
		return 0
	}
	return len(m.keys)
}

func (m *OrderedMap[T]) UnmarshalJSON(data []byte) error {
	result := gjson.ParseBytes(data)
	if !result.IsObject() {
		return fmt.Errorf("restdoc: expected a JSON object, got %s", result.Type)
	}
	m.keys = nil
	m.values = map[string]T{}
	var outerErr error
	result.ForEach(func(key, value gjson.Result) bool {
		var v T
		if err := json.Unmarshal([]byte(value.Raw), &v); err != nil {
			outerErr = err
			return false
		}
		m.Set(key.String(), v)
		return true
	})
	return outerErr
}

func (m *OrderedMap[T]) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, k := range m.Keys() {
		if i > 0 {
			buf.WriteByte(',')
		}
		kb, err := json.Marshal(k)
		if err != nil {
			return nil, err
		}
		buf.Write(kb)
		buf.WriteByte(':')
		vb, err := json.Marshal(m.values[k])
		if err != nil {
			return nil, err
		}
		buf.Write(vb)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
