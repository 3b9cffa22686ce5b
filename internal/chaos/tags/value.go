package tags

import (
	"fmt"
	"strconv"
)

// Kind identifies the scalar type held by a Value
type Kind uint8

const (
	KindBool Kind = iota + 1
	KindInt
	KindFloat
	KindString
)

func (k Kind) String() string {
	switch k {
	case KindBool:
		return "bool"
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindString:
		return "string"
	default:
		return "invalid"
	}
}

// Value is a typed scalar stored under a tag key.
// The zero Value is invalid and is never stored.
type Value struct {
	kind Kind
	b    bool
	i    int64
	f    float64
	s    string
}

// Bool wraps a boolean tag value
func Bool(v bool) Value { return Value{kind: KindBool, b: v} }

// Int wraps an integer tag value
func Int(v int) Value { return Value{kind: KindInt, i: int64(v)} }

// Float wraps a floating-point tag value
func Float(v float64) Value { return Value{kind: KindFloat, f: v} }

// String wraps a string tag value
func String(v string) Value { return Value{kind: KindString, s: v} }

// Kind returns the scalar type of the value
func (v Value) Kind() Kind { return v.kind }

// Valid reports whether the value was built by one of the constructors
func (v Value) Valid() bool { return v.kind != 0 }

// Bool returns the value as a boolean. Numbers are true when non-zero.
func (v Value) Bool() bool {
	switch v.kind {
	case KindBool:
		return v.b
	case KindInt:
		return v.i != 0
	case KindFloat:
		return v.f != 0
	case KindString:
		b, _ := strconv.ParseBool(v.s)
		return b
	}
	return false
}

// Int returns the value as an int, truncating floats
func (v Value) Int() int {
	switch v.kind {
	case KindInt:
		return int(v.i)
	case KindFloat:
		return int(v.f)
	case KindBool:
		if v.b {
			return 1
		}
	case KindString:
		n, _ := strconv.Atoi(v.s)
		return n
	}
	return 0
}

// Float returns the value as a float64
func (v Value) Float() float64 {
	switch v.kind {
	case KindFloat:
		return v.f
	case KindInt:
		return float64(v.i)
	case KindBool:
		if v.b {
			return 1
		}
	case KindString:
		f, _ := strconv.ParseFloat(v.s, 64)
		return f
	}
	return 0
}

// String returns the value formatted as text
func (v Value) String() string {
	switch v.kind {
	case KindString:
		return v.s
	case KindBool:
		return strconv.FormatBool(v.b)
	case KindInt:
		return strconv.FormatInt(v.i, 10)
	case KindFloat:
		return strconv.FormatFloat(v.f, 'g', -1, 64)
	}
	return fmt.Sprintf("<invalid %d>", v.kind)
}
