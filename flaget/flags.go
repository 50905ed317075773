package flaget

import (
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Flags maps flag keys to values and remembers the order in which keys were
// first written. Rewriting an existing key keeps its position.
type Flags struct {
	m *orderedmap.OrderedMap[string, Value]
}

// NewFlags returns an empty mapping.
func NewFlags() *Flags {
	return &Flags{m: orderedmap.New[string, Value]()}
}

// Get returns the value stored under key.
func (f *Flags) Get(key string) (Value, bool) {
	if f == nil {
		return Value{}, false
	}
	return f.m.Get(key)
}

// Has reports whether key is present.
func (f *Flags) Has(key string) bool {
	_, ok := f.Get(key)
	return ok
}

// Set stores v under key.
func (f *Flags) Set(key string, v Value) {
	f.m.Set(key, v)
}

// Len returns the number of keys.
func (f *Flags) Len() int {
	if f == nil {
		return 0
	}
	return f.m.Len()
}

// Keys returns the keys in first-write order.
func (f *Flags) Keys() []string {
	keys := make([]string, 0, f.Len())
	f.Range(func(key string, _ Value) bool {
		keys = append(keys, key)
		return true
	})
	return keys
}

// Range calls fn for every entry in first-write order until fn returns false.
func (f *Flags) Range(fn func(key string, v Value) bool) {
	if f == nil {
		return
	}
	for pair := f.m.Oldest(); pair != nil; pair = pair.Next() {
		if !fn(pair.Key, pair.Value) {
			return
		}
	}
}

// Map returns a copy of the entries as a plain map.
func (f *Flags) Map() map[string]Value {
	out := make(map[string]Value, f.Len())
	f.Range(func(key string, v Value) bool {
		out[key] = v
		return true
	})
	return out
}

// Native returns the entries converted with Value.Interface.
func (f *Flags) Native() map[string]any {
	out := make(map[string]any, f.Len())
	f.Range(func(key string, v Value) bool {
		out[key] = v.Interface()
		return true
	})
	return out
}

// MarshalJSON encodes the entries as a JSON object in first-write order.
func (f *Flags) MarshalJSON() ([]byte, error) {
	if f == nil {
		return []byte("{}"), nil
	}
	return f.m.MarshalJSON()
}

// MarshalYAML encodes the entries as a YAML mapping in first-write order.
func (f *Flags) MarshalYAML() (any, error) {
	if f == nil {
		return map[string]any{}, nil
	}
	return f.m.MarshalYAML()
}
