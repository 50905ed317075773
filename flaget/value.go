package flaget

import (
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"

	"github.com/goccy/go-json"
)

// Kind identifies which variant a Value holds.
type Kind uint8

const (
	// KindInvalid is the zero Kind, used for absent values.
	KindInvalid Kind = iota
	// KindBool indicates a boolean value.
	KindBool
	// KindNumber indicates a float64 value.
	KindNumber
	// KindString indicates a string value.
	KindString
	// KindList indicates an ordered sequence of values.
	KindList
)

// String returns the string representation of the kind
func (k Kind) String() string {
	switch k {
	case KindBool:
		return "bool"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindList:
		return "list"
	default:
		return "invalid"
	}
}

// Value is a parsed flag value: a boolean, a number, a string or a list of
// values. The zero Value is invalid and stands for "absent".
type Value struct {
	kind Kind
	b    bool
	n    float64
	s    string
	list []Value
}

// Bool returns a boolean Value.
func Bool(b bool) Value { return Value{kind: KindBool, b: b} }

// Number returns a numeric Value.
func Number(n float64) Value { return Value{kind: KindNumber, n: n} }

// String returns a string Value.
func String(s string) Value { return Value{kind: KindString, s: s} }

// List returns a list Value holding a copy of vs. An empty list is still a
// valid list.
func List(vs ...Value) Value {
	items := make([]Value, len(vs))
	copy(items, vs)
	return Value{kind: KindList, list: items}
}

// Strings returns a list Value of string elements.
func Strings(ss ...string) Value {
	items := make([]Value, len(ss))
	for i, s := range ss {
		items[i] = String(s)
	}
	return Value{kind: KindList, list: items}
}

// ValueOf converts a Go value into a Value. Unsupported types are rendered
// with fmt.Sprint and stored as strings.
//
//nolint:gocyclo // one case per supported Go kind
func ValueOf(x any) Value {
	switch v := x.(type) {
	case Value:
		return v
	case nil:
		return Value{}
	case bool:
		return Bool(v)
	case string:
		return String(v)
	case float64:
		return Number(v)
	case float32:
		return Number(float64(v))
	case int:
		return Number(float64(v))
	case int8:
		return Number(float64(v))
	case int16:
		return Number(float64(v))
	case int32:
		return Number(float64(v))
	case int64:
		return Number(float64(v))
	case uint:
		return Number(float64(v))
	case uint8:
		return Number(float64(v))
	case uint16:
		return Number(float64(v))
	case uint32:
		return Number(float64(v))
	case uint64:
		return Number(float64(v))
	case []string:
		return Strings(v...)
	case []Value:
		return List(v...)
	case []any:
		items := make([]Value, len(v))
		for i, item := range v {
			items[i] = ValueOf(item)
		}
		return Value{kind: KindList, list: items}
	}

	// Remaining slices of supported element types, e.g. []int
	rv := reflect.ValueOf(x)
	if rv.Kind() == reflect.Slice {
		items := make([]Value, rv.Len())
		for i := range items {
			items[i] = ValueOf(rv.Index(i).Interface())
		}
		return Value{kind: KindList, list: items}
	}
	return String(fmt.Sprint(x))
}

// Kind returns the variant held by v.
func (v Value) Kind() Kind { return v.kind }

// IsValid reports whether v holds a value.
func (v Value) IsValid() bool { return v.kind != KindInvalid }

// AsBool returns the boolean held by v.
func (v Value) AsBool() (bool, bool) { return v.b, v.kind == KindBool }

// AsNumber returns the number held by v.
func (v Value) AsNumber() (float64, bool) { return v.n, v.kind == KindNumber }

// AsString returns the string held by v.
func (v Value) AsString() (string, bool) { return v.s, v.kind == KindString }

// AsList returns the elements held by v. The returned slice must not be
// modified.
func (v Value) AsList() ([]Value, bool) { return v.list, v.kind == KindList }

// Len returns the number of list elements, or 0 for scalars.
func (v Value) Len() int { return len(v.list) }

// Interface returns v as a plain Go value: bool, float64, string or []any.
// An invalid Value yields nil.
func (v Value) Interface() any {
	switch v.kind {
	case KindBool:
		return v.b
	case KindNumber:
		return v.n
	case KindString:
		return v.s
	case KindList:
		out := make([]any, len(v.list))
		for i, item := range v.list {
			out[i] = item.Interface()
		}
		return out
	default:
		return nil
	}
}

// String formats v the way it would be written on a command line; lists
// are joined with commas.
func (v Value) String() string {
	switch v.kind {
	case KindBool:
		return strconv.FormatBool(v.b)
	case KindNumber:
		return strconv.FormatFloat(v.n, 'f', -1, 64)
	case KindString:
		return v.s
	case KindList:
		parts := make([]string, len(v.list))
		for i, item := range v.list {
			parts[i] = item.String()
		}
		return strings.Join(parts, ",")
	default:
		return ""
	}
}

// Equal reports whether v and o hold the same kind and value.
func (v Value) Equal(o Value) bool {
	if v.kind != o.kind {
		return false
	}
	switch v.kind {
	case KindBool:
		return v.b == o.b
	case KindNumber:
		return v.n == o.n
	case KindString:
		return v.s == o.s
	case KindList:
		if len(v.list) != len(o.list) {
			return false
		}
		for i := range v.list {
			if !v.list[i].Equal(o.list[i]) {
				return false
			}
		}
		return true
	default:
		return true
	}
}

// GoString renders v for %#v, which keeps test failure output readable.
func (v Value) GoString() string {
	switch v.kind {
	case KindString:
		return strconv.Quote(v.s)
	case KindList:
		parts := make([]string, len(v.list))
		for i, item := range v.list {
			parts[i] = item.GoString()
		}
		return "[" + strings.Join(parts, " ") + "]"
	case KindInvalid:
		return "<invalid>"
	default:
		return v.String()
	}
}

// MarshalJSON implements json.Marshaler. JSON has no infinities, so a
// non-finite number (an out-of-range literal coerces to ±Inf) encodes as
// null, in lists too.
func (v Value) MarshalJSON() ([]byte, error) {
	switch v.kind {
	case KindNumber:
		if math.IsInf(v.n, 0) || math.IsNaN(v.n) {
			return []byte("null"), nil
		}
	case KindList:
		if len(v.list) == 0 {
			return []byte("[]"), nil
		}
		return json.Marshal(v.list)
	}
	return json.Marshal(v.Interface())
}

// MarshalYAML implements the yaml.v3 Marshaler interface.
func (v Value) MarshalYAML() (any, error) {
	return v.Interface(), nil
}
