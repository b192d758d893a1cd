package domain

import (
	"encoding/json"
	"testing"
)

func TestValueEquality(t *testing.T) {
	tests := []struct {
		name string
		a, b Value
		want bool
	}{
		{"same number", NumberValue(218), NumberValue(218), true},
		{"different number", NumberValue(218), NumberValue(347), false},
		{"number vs string of same digits", NumberValue(218), StringValue("218"), false},
		{"same string", StringValue("SFO"), StringValue("SFO"), true},
		{"case matters", StringValue("SFO"), StringValue("sfo"), false},
		{"same bool", BoolValue(true), BoolValue(true), true},
		{"bool vs number", BoolValue(true), NumberValue(1), false},
		{"zero values match", Value{}, Value{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a == tt.b; got != tt.want {
				t.Errorf("(%v == %v) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestValueString(t *testing.T) {
	tests := []struct {
		name string
		v    Value
		want string
	}{
		{"integer-valued number has no decimals", NumberValue(218), "218"},
		{"fractional number keeps precision", NumberValue(0.492), "0.492"},
		{"string passes through", StringValue("API#2"), "API#2"},
		{"bool renders lowercase", BoolValue(false), "false"},
		{"zero value renders empty", Value{}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.v.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestValueUnmarshalSniffsKind(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want Value
	}{
		{"number", `347`, NumberValue(347)},
		{"fraction", `0.75`, NumberValue(0.75)},
		{"string", `"direct"`, StringValue("direct")},
		{"numeric string stays a string", `"347"`, StringValue("347")},
		{"bool true", `true`, BoolValue(true)},
		{"bool false", `false`, BoolValue(false)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var v Value
			if err := json.Unmarshal([]byte(tt.in), &v); err != nil {
				t.Fatalf("unmarshal %s: %v", tt.in, err)
			}
			if v != tt.want {
				t.Errorf("unmarshal %s = %v (kind %v), want %v (kind %v)", tt.in, v, v.Kind(), tt.want, tt.want.Kind())
			}
		})
	}
}

func TestValueUnmarshalRejectsNonScalars(t *testing.T) {
	for _, in := range []string{`null`, `[1,2]`, `{"v":1}`} {
		var v Value
		if err := json.Unmarshal([]byte(in), &v); err == nil {
			t.Errorf("unmarshal %s succeeded, want error", in)
		}
	}
}

func TestValueMarshalBareScalar(t *testing.T) {
	b, err := json.Marshal(NumberValue(218))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(b) != "218" {
		t.Errorf("marshal number = %s, want 218", b)
	}

	if _, err := json.Marshal(Value{}); err == nil {
		t.Error("marshal zero value succeeded, want error")
	}
}

func TestValueAsMapKey(t *testing.T) {
	seen := map[Value]int{}
	for _, v := range []Value{NumberValue(218), NumberValue(347), NumberValue(218), StringValue("218")} {
		seen[v]++
	}
	if len(seen) != 3 {
		t.Errorf("distinct values = %d, want 3", len(seen))
	}
	if seen[NumberValue(218)] != 2 {
		t.Errorf("NumberValue(218) counted %d times, want 2", seen[NumberValue(218)])
	}
}
