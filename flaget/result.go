package flaget

import "math"

// Result is the outcome of one parse.
type Result struct {
	// Flags holds every flag seen on the command line plus applied defaults.
	Flags *Flags
	// Positionals holds the non-flag tokens before "--", in order.
	Positionals []string
	// Tail holds the raw tokens after the first "--". Empty when absent.
	Tail []string
	// Args holds the named positionals. Empty unless names were configured.
	Args map[string]Arg
}

// Get returns the value stored under key
func (r *Result) Get(key string) (Value, bool) {
	return r.Flags.Get(key)
}

// GetBool returns a boolean flag value
func (r *Result) GetBool(key string) (bool, bool) {
	v, ok := r.Flags.Get(key)
	if !ok {
		return false, false
	}
	return v.AsBool()
}

// GetString returns a string flag value
func (r *Result) GetString(key string) (string, bool) {
	v, ok := r.Flags.Get(key)
	if !ok {
		return "", false
	}
	return v.AsString()
}

// GetNumber returns a numeric flag value
func (r *Result) GetNumber(key string) (float64, bool) {
	v, ok := r.Flags.Get(key)
	if !ok {
		return 0, false
	}
	return v.AsNumber()
}

// GetInt returns a numeric flag value that has no fractional part
func (r *Result) GetInt(key string) (int, bool) {
	n, ok := r.GetNumber(key)
	if !ok || n != math.Trunc(n) || n >= math.MaxInt || n < math.MinInt {
		return 0, false
	}
	return int(n), true
}

// GetList returns a list flag value
func (r *Result) GetList(key string) ([]Value, bool) {
	v, ok := r.Flags.Get(key)
	if !ok {
		return nil, false
	}
	return v.AsList()
}

// GetStrings returns a flag value rendered as strings: one element per list
// entry, or a single element for a scalar.
func (r *Result) GetStrings(key string) ([]string, bool) {
	v, ok := r.Flags.Get(key)
	if !ok || !v.IsValid() {
		return nil, false
	}
	items, isList := v.AsList()
	if !isList {
		return []string{v.String()}, true
	}
	out := make([]string, len(items))
	for i, item := range items {
		out[i] = item.String()
	}
	return out, true
}

// MustGetBool returns the boolean stored under key, or def
func (r *Result) MustGetBool(key string, def bool) bool {
	if b, ok := r.GetBool(key); ok {
		return b
	}
	return def
}

// MustGetString returns the string stored under key, or def
func (r *Result) MustGetString(key, def string) string {
	if s, ok := r.GetString(key); ok {
		return s
	}
	return def
}

// MustGetNumber returns the number stored under key, or def
func (r *Result) MustGetNumber(key string, def float64) float64 {
	if n, ok := r.GetNumber(key); ok {
		return n
	}
	return def
}

// Arg returns a named positional
func (r *Result) Arg(name string) (Arg, bool) {
	a, ok := r.Args[name]
	return a, ok
}

// ArgString returns the value bound to a single named positional
func (r *Result) ArgString(name string) (string, bool) {
	a, ok := r.Args[name]
	if !ok {
		return "", false
	}
	return a.String()
}

// ArgStrings returns the values bound to a named positional
func (r *Result) ArgStrings(name string) []string {
	return r.Args[name].Strings()
}
