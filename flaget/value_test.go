package flaget

import (
	"math"
	"strings"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/google/go-cmp/cmp"
	"gopkg.in/yaml.v3"
)

func TestValueOf(t *testing.T) {
	tests := []struct {
		name  string
		input any
		want  Value
	}{
		{"value", String("x"), String("x")},
		{"bool", true, Bool(true)},
		{"string", "prod", String("prod")},
		{"int", 10, Number(10)},
		{"int64", int64(-3), Number(-3)},
		{"uint8", uint8(7), Number(7)},
		{"float32", float32(0.5), Number(0.5)},
		{"float64", 2.25, Number(2.25)},
		{"strings", []string{"a", "b"}, Strings("a", "b")},
		{"mixed", []any{"a", 1, false}, List(String("a"), Number(1), Bool(false))},
		{"ints", []int{1, 2}, List(Number(1), Number(2))},
		{"values", []Value{Bool(true)}, List(Bool(true))},
		{"stringer", 5 * time.Second, String("5s")},
		{"nil", nil, Value{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ValueOf(tt.input); !got.Equal(tt.want) {
				t.Errorf("ValueOf(%v) = %#v, want %#v", tt.input, got, tt.want)
			}
		})
	}
}

func TestValueAccessors(t *testing.T) {
	if b, ok := Bool(true).AsBool(); !ok || !b {
		t.Errorf("Expected AsBool to return true")
	}
	if _, ok := String("x").AsBool(); ok {
		t.Errorf("Expected AsBool to fail on a string")
	}
	if n, ok := Number(1.5).AsNumber(); !ok || n != 1.5 {
		t.Errorf("Expected 1.5, got %v", n)
	}
	if s, ok := String("x").AsString(); !ok || s != "x" {
		t.Errorf("Expected x, got %q", s)
	}
	if items, ok := Strings("a", "b").AsList(); !ok || len(items) != 2 {
		t.Errorf("Expected 2 items, got %v", items)
	}
	if (Value{}).IsValid() {
		t.Errorf("Expected zero Value to be invalid")
	}
	if Strings("a").Kind() != KindList || Number(1).Kind().String() != "number" {
		t.Errorf("Unexpected kinds")
	}
}

func TestValueString(t *testing.T) {
	tests := []struct {
		v    Value
		want string
	}{
		{Bool(false), "false"},
		{Number(8080), "8080"},
		{Number(-0.25), "-0.25"},
		{String("a b"), "a b"},
		{List(String("a"), Number(2), Bool(true)), "a,2,true"},
		{Value{}, ""},
	}
	for _, tt := range tests {
		if got := tt.v.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}

func TestValueEqual(t *testing.T) {
	if Number(1).Equal(String("1")) {
		t.Error("Expected different kinds to differ")
	}
	if !List().Equal(List()) {
		t.Error("Expected empty lists to be equal")
	}
	if Strings("a", "b").Equal(Strings("b", "a")) {
		t.Error("Expected order to matter")
	}
	if !(Value{}).Equal(Value{}) {
		t.Error("Expected invalid values to be equal")
	}
}

func TestValueListIsCopied(t *testing.T) {
	items := []Value{String("a")}
	v := List(items...)
	items[0] = String("changed")

	if got, _ := v.AsList(); got[0].String() != "a" {
		t.Errorf("Expected List to copy its input, got %v", got)
	}
}

func TestValueInterface(t *testing.T) {
	got := List(String("a"), Number(2), Bool(true)).Interface()
	want := []any{"a", 2.0, true}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Interface mismatch (-want +got):\n%s", diff)
	}
	if (Value{}).Interface() != nil {
		t.Error("Expected nil for invalid value")
	}
}

func TestValueMarshal(t *testing.T) {
	data, err := json.Marshal(map[string]Value{"files": Strings("a.js"), "port": Number(8080), "v": Bool(true)})
	if err != nil {
		t.Fatalf("json.Marshal failed: %v", err)
	}
	if string(data) != `{"files":["a.js"],"port":8080,"v":true}` {
		t.Errorf("Unexpected JSON: %s", data)
	}

	out, err := yaml.Marshal(map[string]Value{"mode": String("production")})
	if err != nil {
		t.Fatalf("yaml.Marshal failed: %v", err)
	}
	if string(out) != "mode: production\n" {
		t.Errorf("Unexpected YAML: %q", out)
	}
}

func TestValueMarshalNonFinite(t *testing.T) {
	tests := []struct {
		name string
		v    Value
		want string
	}{
		{"positive infinity", Number(math.Inf(1)), "null"},
		{"negative infinity", Number(math.Inf(-1)), "null"},
		{"nan", Number(math.NaN()), "null"},
		{"list", List(Number(1), Number(math.Inf(1)), String("x")), `[1,null,"x"]`},
		{"empty list", List(), "[]"},
		{"coerced literal", Coerce(strings.Repeat("9", 400)), "null"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := json.Marshal(tt.v)
			if err != nil {
				t.Fatalf("json.Marshal failed: %v", err)
			}
			if string(data) != tt.want {
				t.Errorf("Expected %s, got %s", tt.want, data)
			}
		})
	}

	res := New().Parse([]string{"--n", strings.Repeat("9", 400)})
	data, err := json.Marshal(res.Flags)
	if err != nil {
		t.Fatalf("json.Marshal(Flags) failed: %v", err)
	}
	if string(data) != `{"n":null}` {
		t.Errorf("Expected {\"n\":null}, got %s", data)
	}
}
