package domain

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// ValueKind discriminates the payload of a Value.
type ValueKind string

const (
	KindNumber ValueKind = "number"
	KindString ValueKind = "string"
	KindBool   ValueKind = "bool"
)

// Value is the object of a belief assertion: exactly one of a number, a
// string, or a bool. Values are comparable with ==, and equality is exact
// on both kind and payload, so the number 218 and the string "218" are
// different values. The zero Value has no kind and is rejected on input.
type Value struct {
	kind ValueKind
	num  float64
	str  string
	b    bool
}

func NumberValue(f float64) Value { return Value{kind: KindNumber, num: f} }
func StringValue(s string) Value  { return Value{kind: KindString, str: s} }
func BoolValue(v bool) Value      { return Value{kind: KindBool, b: v} }

func (v Value) Kind() ValueKind { return v.kind }

func (v Value) IsZero() bool { return v.kind == "" }

// String renders the payload as a plain scalar: numbers without trailing
// zeros, bools as true/false.
func (v Value) String() string {
	switch v.kind {
	case KindNumber:
		return strconv.FormatFloat(v.num, 'f', -1, 64)
	case KindString:
		return v.str
	case KindBool:
		return strconv.FormatBool(v.b)
	}
	return ""
}

// MarshalJSON encodes the bare scalar, not a {kind, value} wrapper.
func (v Value) MarshalJSON() ([]byte, error) {
	switch v.kind {
	case KindNumber:
		return json.Marshal(v.num)
	case KindString:
		return json.Marshal(v.str)
	case KindBool:
		return json.Marshal(v.b)
	}
	return nil, fmt.Errorf("marshal value: no kind set")
}

// UnmarshalJSON sniffs the scalar type. Bools are tried before numbers so
// true/false never coerce; null matches none of the kinds and errors.
func (v *Value) UnmarshalJSON(data []byte) error {
	var b bool
	if err := json.Unmarshal(data, &b); err == nil {
		*v = BoolValue(b)
		return nil
	}
	var f float64
	if err := json.Unmarshal(data, &f); err == nil {
		*v = NumberValue(f)
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*v = StringValue(s)
		return nil
	}
	return fmt.Errorf("value must be a number, string, or bool, got %s", data)
}
