package uritemplate

import (
	"encoding/json"
	"sort"
	"strconv"

	"github.com/chanced/dynamic"
)

// Value is the tagged union of shapes a template variable may bind to:
// undefined, scalar, ordered list, or associative pairs (sorted map or
// insertion-ordered sequence). It is a closed set by design — see
// DESIGN.md's value.go entry — so callers build Values
// with the constructors below rather than relying on runtime type
// sniffing.
type Value interface {
	isValue()
	// Defined reports whether the value should contribute to expansion.
	// An undefined value (including a nil Value) suppresses its varspec.
	Defined() bool
}

// Undefined is the absence of a binding. The nil Value is also treated as
// Undefined throughout this package.
type Undefined struct{}

func (Undefined) isValue()      {}
func (Undefined) Defined() bool { return false }

// Scalar is a single string-like value. Non-string scalars passed to
// ScalarOf are stringified once, at construction, using the same rule the
// rest of this module uses for stable, locale-independent rendering.
type Scalar struct {
	s string
}

func (Scalar) isValue()      {}
func (Scalar) Defined() bool { return true }

// String returns the literal scalar value.
func (v Scalar) String() string { return v.s }

// ScalarString builds a Scalar from a Go string.
func ScalarString(s string) Scalar { return Scalar{s: s} }

// ScalarOf stringifies an arbitrary JSON-marshalable value into a Scalar.
// dynamic.JSON.IsString, the same probe schema_type.go's Types.UnmarshalJSON
// uses to decide between a single SchemaType and a slice, lets a
// JSON-string input pass through unquoted rather than falling into the
// generic number/bool/null switch below. Booleans render as
// "True"/"False"; numbers render without locale-dependent formatting.
func ScalarOf(v interface{}) (Scalar, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return Scalar{}, err
	}
	raw := dynamic.JSON(b)
	if raw.IsString() {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return Scalar{}, err
		}
		return Scalar{s: s}, nil
	}
	return Scalar{s: stringifyJSON(b)}, nil
}

func stringifyJSON(b []byte) string {
	var i interface{}
	if err := json.Unmarshal(b, &i); err != nil {
		return string(b)
	}
	switch t := i.(type) {
	case bool:
		if t {
			return "True"
		}
		return "False"
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case nil:
		return ""
	default:
		return string(b)
	}
}

// List is an ordered, possibly sparse, list of values. Undefined elements
// are dropped at expansion time, not at construction.
type List struct {
	Items []Value
}

func (List) isValue()      {}
func (List) Defined() bool { return true }

// NewList builds a List from string elements.
func NewList(items ...string) List {
	vs := make([]Value, len(items))
	for i, s := range items {
		vs[i] = ScalarString(s)
	}
	return List{Items: vs}
}

// KV is a single key/value pair, used by Pairs to preserve declaration
// order (as opposed to Map, which is sorted on expansion).
type KV struct {
	Key   string
	Value Value
}

// Pairs is an ordered sequence of key/value tuples. Order is preserved
// through expansion, matching RFC 6570's "array of tuples" associative
// form.
type Pairs struct {
	Items []KV
}

func (Pairs) isValue()      {}
func (Pairs) Defined() bool { return true }

// NewPairs builds a Pairs from kvs, keeping their order.
func NewPairs(kvs ...KV) Pairs {
	return Pairs{Items: kvs}
}

// Map is an unordered associative value whose keys are sorted
// lexicographically at expansion time.
type Map struct {
	Items map[string]Value
}

func (Map) isValue()      {}
func (Map) Defined() bool { return true }

// NewMap builds a Map from string values.
func NewMap(m map[string]string) Map {
	items := make(map[string]Value, len(m))
	for k, v := range m {
		items[k] = ScalarString(v)
	}
	return Map{Items: items}
}

// sortedKeys returns the keys of m in lexicographic order.
func (m Map) sortedKeys() []string {
	keys := make([]string, 0, len(m.Items))
	for k := range m.Items {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Context is the variable binding an expansion or regex match is evaluated
// against: a mapping from variable name to Value.
type Context map[string]Value

// Lookup returns the Value bound to name, or Undefined{} (Defined() ==
// false) if name is absent or explicitly nil.
func (c Context) Lookup(name string) Value {
	v, ok := c[name]
	if !ok || v == nil {
		return Undefined{}
	}
	return v
}
