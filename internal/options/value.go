// Package options resolves the loosely-typed option bag that drives a
// conversion. Values may arrive as booleans, numbers or strings; the
// coercion helpers turn them into the flag, integer or string a rule needs.
package options

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ErrUnsupportedValue indicates a value with no coercion path (maps, lists, ...).
var ErrUnsupportedValue = errors.New("unsupported option value")

// Kind identifies the variant held by a Value.
type Kind uint8

// Value kinds.
const (
	KindNull Kind = iota
	KindBool
	KindInt
	KindFloat
	KindString
)

func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "bool"
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindString:
		return "string"
	default:
		return fmt.Sprintf("Kind(%d)", k)
	}
}

// Value is a tagged union over the types an option may hold.
// The zero Value is null.
type Value struct {
	kind Kind
	b    bool
	i    int64
	f    float64
	s    string
}

// Null returns the null value.
func Null() Value { return Value{} }

// Bool wraps a boolean.
func Bool(b bool) Value { return Value{kind: KindBool, b: b} }

// Int wraps an integer.
func Int(i int64) Value { return Value{kind: KindInt, i: i} }

// Float wraps a floating point number.
func Float(f float64) Value { return Value{kind: KindFloat, f: f} }

// String wraps a string.
func String(s string) Value { return Value{kind: KindString, s: s} }

// Kind reports the variant held by v.
func (v Value) Kind() Kind { return v.kind }

// IsNull reports whether v holds no value.
func (v Value) IsNull() bool { return v.kind == KindNull }

// String formats v the way it would be written in a config file.
func (v Value) String() string {
	switch v.kind {
	case KindBool:
		return strconv.FormatBool(v.b)
	case KindInt:
		return strconv.FormatInt(v.i, 10)
	case KindFloat:
		return strconv.FormatFloat(v.f, 'g', -1, 64)
	case KindString:
		return v.s
	default:
		return "null"
	}
}

// Interface returns v as a plain Go value (nil, bool, int64, float64 or string).
func (v Value) Interface() any {
	switch v.kind {
	case KindBool:
		return v.b
	case KindInt:
		return v.i
	case KindFloat:
		return v.f
	case KindString:
		return v.s
	default:
		return nil
	}
}

// AsBool coerces v to a flag: null is false, numbers are true when nonzero,
// strings are true when non-empty. It never fails.
func AsBool(v Value) bool {
	switch v.kind {
	case KindBool:
		return v.b
	case KindInt:
		return v.i != 0
	case KindFloat:
		return v.f != 0 && !math.IsNaN(v.f)
	case KindString:
		return v.s != ""
	default:
		return false
	}
}

// AsInt coerces v to an integer. The second result is false when v carries
// no integer, which callers must keep distinct from an explicit 0.
func AsInt(v Value) (int64, bool) {
	switch v.kind {
	case KindInt:
		return v.i, true
	case KindFloat:
		if math.IsNaN(v.f) || math.IsInf(v.f, 0) {
			return 0, false
		}
		return int64(v.f), true
	case KindString:
		i, err := strconv.ParseInt(strings.TrimSpace(v.s), 10, 64)
		if err != nil {
			return 0, false
		}
		return i, true
	default:
		return 0, false
	}
}

// AsString returns the string held by v. Non-string values are absent.
func AsString(v Value) (string, bool) {
	if v.kind != KindString {
		return "", false
	}
	return v.s, true
}

// FromAny converts a decoded YAML or JSON scalar into a Value.
func FromAny(raw any) (Value, error) {
	switch x := raw.(type) {
	case nil:
		return Null(), nil
	case Value:
		return x, nil
	case bool:
		return Bool(x), nil
	case int:
		return Int(int64(x)), nil
	case int8:
		return Int(int64(x)), nil
	case int16:
		return Int(int64(x)), nil
	case int32:
		return Int(int64(x)), nil
	case int64:
		return Int(x), nil
	case uint:
		return fromUint(uint64(x))
	case uint8:
		return Int(int64(x)), nil
	case uint16:
		return Int(int64(x)), nil
	case uint32:
		return Int(int64(x)), nil
	case uint64:
		return fromUint(x)
	case float32:
		return Float(float64(x)), nil
	case float64:
		return Float(x), nil
	case string:
		return String(x), nil
	default:
		return Null(), fmt.Errorf("%w: %T", ErrUnsupportedValue, raw)
	}
}

func fromUint(u uint64) (Value, error) {
	if u > math.MaxInt64 {
		return Float(float64(u)), nil
	}
	return Int(int64(u)), nil
}

// Parse interprets a command-line or environment string: "true"/"false"
// become booleans, "null" becomes null, numerals become numbers and
// everything else stays a string.
func Parse(s string) Value {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "true":
		return Bool(true)
	case "false":
		return Bool(false)
	case "null", "~":
		return Null()
	}
	if i, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64); err == nil {
		return Int(i)
	}
	if f, err := strconv.ParseFloat(strings.TrimSpace(s), 64); err == nil {
		return Float(f)
	}
	return String(s)
}

// UnmarshalYAML decodes any YAML scalar into v.
func (v *Value) UnmarshalYAML(unmarshal func(any) error) error {
	var raw any
	if err := unmarshal(&raw); err != nil {
		return err
	}
	decoded, err := FromAny(raw)
	if err != nil {
		return err
	}
	*v = decoded
	return nil
}

// MarshalYAML encodes v as its plain scalar.
func (v Value) MarshalYAML() (any, error) {
	return v.Interface(), nil
}
