package flaget

import "strings"

// VariadicPrefix marks the named positional that captures all remaining
// positionals, e.g. "...files".
const VariadicPrefix = "..."

// Arg is a named positional argument bound after parsing.
type Arg struct {
	Name     string
	Variadic bool
	// Present reports whether a single slot received a value.
	Present bool
	// Value holds the positional bound to a single slot.
	Value string
	// Values holds the positionals captured by a variadic slot. It is never
	// nil for a variadic slot.
	Values []string
}

// String returns the value of a single slot.
func (a Arg) String() (string, bool) {
	return a.Value, a.Present
}

// Strings returns the captured values of a variadic slot, or the single
// value as a one-element slice when present.
func (a Arg) Strings() []string {
	if a.Variadic {
		return a.Values
	}
	if a.Present {
		return []string{a.Value}
	}
	return nil
}

// Interface returns the slot as a plain Go value: a string, a []string for
// variadic slots, or nil when a single slot is empty.
func (a Arg) Interface() any {
	if a.Variadic {
		return a.Values
	}
	if a.Present {
		return a.Value
	}
	return nil
}

// bindArgs maps positionals onto names. A variadic name captures the rest
// and ends binding, so names declared after it are ignored.
func bindArgs(names []string, positionals []string) map[string]Arg {
	args := make(map[string]Arg, len(names))
	for i, name := range names {
		if strings.HasPrefix(name, VariadicPrefix) {
			name = strings.TrimPrefix(name, VariadicPrefix)
			rest := []string{}
			if i < len(positionals) {
				rest = append(rest, positionals[i:]...)
			}
			args[name] = Arg{Name: name, Variadic: true, Values: rest}
			break
		}
		arg := Arg{Name: name}
		if i < len(positionals) {
			arg.Value = positionals[i]
			arg.Present = true
		}
		args[name] = arg
	}
	return args
}
