// Package intern provides the per-parse key table used by flaget.
// A Table lives for a single Parse call; nothing is shared between calls.
package intern

// Table deduplicates key strings and memoizes their camelCase form for the
// duration of one parse. It is not safe for concurrent use.
type Table struct {
	strings map[string]string
	camel   map[string]string
}

// NewTable creates a table with an optional pre-allocated capacity
func NewTable(capacity int) *Table {
	if capacity <= 0 {
		capacity = 16
	}
	return &Table{
		strings: make(map[string]string, capacity),
		camel:   make(map[string]string, capacity),
	}
}

// Intern returns the canonical copy of s
func (t *Table) Intern(s string) string {
	if interned, ok := t.strings[s]; ok {
		return interned
	}
	t.strings[s] = s
	return s
}

// Rune returns r as a string. ASCII letters and digits come from a static
// table and never allocate.
func (t *Table) Rune(r rune) string {
	switch {
	case r >= 'a' && r <= 'z':
		return singleCharStrings[r-'a']
	case r >= 'A' && r <= 'Z':
		return singleCharStrings[26+r-'A']
	case r >= '0' && r <= '9':
		return singleCharStrings[52+r-'0']
	}
	return t.Intern(string(r))
}

// Camel returns the camelCase form of key, computing it with fn on first use.
func (t *Table) Camel(key string, fn func(string) string) string {
	if c, ok := t.camel[key]; ok {
		return c
	}
	c := fn(key)
	t.camel[key] = c
	return c
}

// Len returns the number of interned strings
func (t *Table) Len() int { return len(t.strings) }

// Immutable single character strings: a-z (0-25), A-Z (26-51), 0-9 (52-61)
var singleCharStrings = [62]string{
	"a", "b", "c", "d", "e", "f", "g", "h", "i", "j", "k", "l", "m",
	"n", "o", "p", "q", "r", "s", "t", "u", "v", "w", "x", "y", "z",
	"A", "B", "C", "D", "E", "F", "G", "H", "I", "J", "K", "L", "M",
	"N", "O", "P", "Q", "R", "S", "T", "U", "V", "W", "X", "Y", "Z",
	"0", "1", "2", "3", "4", "5", "6", "7", "8", "9",
}
