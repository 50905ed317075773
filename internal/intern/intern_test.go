package intern

import (
	"strings"
	"testing"
)

func TestTable_Intern(t *testing.T) {
	table := NewTable(0)

	s1 := table.Intern("files")
	s2 := table.Intern(strings.Clone("files"))

	if s1 != s2 {
		t.Errorf("Expected same string, got %q and %q", s1, s2)
	}
	if table.Len() != 1 {
		t.Errorf("Expected 1 interned string, got %d", table.Len())
	}

	table.Intern("mode")
	if table.Len() != 2 {
		t.Errorf("Expected 2 interned strings, got %d", table.Len())
	}
}

func TestTable_Rune(t *testing.T) {
	table := NewTable(0)

	tests := []struct {
		input    rune
		expected string
	}{
		{'a', "a"},
		{'Z', "Z"},
		{'5', "5"},
		{'@', "@"},
		{'é', "é"},
	}

	for _, test := range tests {
		if result := table.Rune(test.input); result != test.expected {
			t.Errorf("Rune(%q) = %q, want %q", test.input, result, test.expected)
		}
	}

	// Only the non-alphanumeric runes go through the map
	if table.Len() != 2 {
		t.Errorf("Expected 2 interned strings, got %d", table.Len())
	}
}

func TestTable_CamelMemoized(t *testing.T) {
	table := NewTable(0)

	calls := 0
	upper := func(s string) string {
		calls++
		return strings.ToUpper(s)
	}

	if got := table.Camel("dash-flag", upper); got != "DASH-FLAG" {
		t.Errorf("Expected DASH-FLAG, got %q", got)
	}
	if got := table.Camel("dash-flag", upper); got != "DASH-FLAG" {
		t.Errorf("Expected DASH-FLAG, got %q", got)
	}
	if calls != 1 {
		t.Errorf("Expected camel function to run once, ran %d times", calls)
	}
}

func TestTable_Independent(t *testing.T) {
	a := NewTable(4)
	b := NewTable(4)

	a.Intern("only-in-a")
	if b.Len() != 0 {
		t.Errorf("Expected tables not to share state, got %d strings in b", b.Len())
	}
}
