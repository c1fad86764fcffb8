package main

import (
	"errors"
	"fmt"
	"math"
	"math/big"
	"strconv"
	"strings"
)

// types:
//   int    signed integer of any size
//   float  64-bit IEEE float
//   str    string
//   bool   boolean
//
// that's all of them. a value never changes type once it is stored.

type Type uint8

const (
	_ Type = iota

	IntT
	FloatT
	StrT
	BoolT
)

var typeNames = map[string]Type{
	"int":   IntT,
	"float": FloatT,
	"str":   StrT,
	"bool":  BoolT,
}

func (t Type) String() string {
	switch t {
	case IntT:
		return "int"
	case FloatT:
		return "float"
	case StrT:
		return "str"
	case BoolT:
		return "bool"
	default:
		return fmt.Sprintf("Type(%d)", uint8(t))
	}
}

// lookupType returns the type with the given source name.
func lookupType(name string) (Type, bool) {
	t, ok := typeNames[name]
	return t, ok
}

// A Value is a typed runtime value.
// Only the field matching Type is meaningful.
type Value struct {
	Type Type
	i    *big.Int
	f    float64
	s    string
	b    bool
}

func IntVal(n int64) Value     { return Value{Type: IntT, i: big.NewInt(n)} }
func BigVal(n *big.Int) Value  { return Value{Type: IntT, i: n} }
func FloatVal(f float64) Value { return Value{Type: FloatT, f: f} }
func StrVal(s string) Value    { return Value{Type: StrT, s: s} }
func BoolVal(b bool) Value     { return Value{Type: BoolT, b: b} }

// Equal reports whether v and w have the same type and value.
// Floats compare with ==, so NaN is never equal to anything.
func (v Value) Equal(w Value) bool {
	if v.Type != w.Type {
		return false
	}
	switch v.Type {
	case IntT:
		return v.i.Cmp(w.i) == 0
	case FloatT:
		return v.f == w.f
	case StrT:
		return v.s == w.s
	case BoolT:
		return v.b == w.b
	default:
		panic(fmt.Sprintf("unhandled case: %v", v.Type))
	}
}

// String returns the textual form of the underlying primitive.
// This is what print shows and what prompt keys are made of.
func (v Value) String() string {
	switch v.Type {
	case IntT:
		return v.i.String()
	case FloatT:
		return formatFloat(v.f)
	case StrT:
		return v.s
	case BoolT:
		if v.b {
			return "True"
		}
		return "False"
	default:
		panic(fmt.Sprintf("unhandled case: %v", v.Type))
	}
}

// GoString makes values readable in pretty dumps and test failures.
func (v Value) GoString() string {
	if v.Type == StrT {
		return fmt.Sprintf("%s(%q)", v.Type, v.s)
	}
	return fmt.Sprintf("%s(%s)", v.Type, v)
}

// formatFloat renders f the way the language always has:
// the shortest digits that round-trip, in positional notation
// when the exponent is in [-4, 16) and scientific notation otherwise.
// Integral values keep a trailing ".0".
func formatFloat(f float64) string {
	switch {
	case math.IsInf(f, 1):
		return "inf"
	case math.IsInf(f, -1):
		return "-inf"
	case math.IsNaN(f):
		return "nan"
	}
	sci := strconv.FormatFloat(f, 'e', -1, 64)
	exp, err := strconv.Atoi(sci[strings.IndexByte(sci, 'e')+1:])
	if err != nil {
		fatalf("couldn't parse float exponent in %q: %v", sci, err)
	}
	if exp < -4 || exp >= 16 {
		return sci
	}
	s := strconv.FormatFloat(f, 'f', -1, 64)
	if !strings.ContainsAny(s, ".") {
		s += ".0"
	}
	return s
}

// parseFloat accepts decimal floats the way strconv does, including
// out-of-range values, which become ±inf. Hex floats are not allowed.
func parseFloat(s string) (float64, bool) {
	digits := s
	if digits != "" && (digits[0] == '+' || digits[0] == '-') {
		digits = digits[1:]
	}
	if len(digits) >= 2 && digits[0] == '0' && (digits[1] == 'x' || digits[1] == 'X') {
		return 0, false
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return 0, false
	}
	return f, true
}

// coerce maps each type to the function that converts raw input text to it.
var coerce = map[Type]func(string) (Value, error){
	IntT: func(s string) (Value, error) {
		n, ok := new(big.Int).SetString(strings.TrimSpace(s), 10)
		if !ok {
			return Value{}, fmt.Errorf("invalid int %q", s)
		}
		return BigVal(n), nil
	},
	FloatT: func(s string) (Value, error) {
		f, ok := parseFloat(strings.TrimSpace(s))
		if !ok {
			return Value{}, fmt.Errorf("invalid float %q", s)
		}
		return FloatVal(f), nil
	},
	StrT: func(s string) (Value, error) {
		return StrVal(s), nil
	},
	BoolT: func(s string) (Value, error) {
		return BoolVal(strings.EqualFold(s, "true")), nil
	},
}

// convert applies the coercion table, turning any failure into a TypeError.
func convert(t Type, raw string, line int) (Value, error) {
	fn, ok := coerce[t]
	if !ok {
		fatalf("no conversion for %v", t)
	}
	v, err := fn(raw)
	if err != nil {
		return Value{}, errorf(TypeError, line, "invalid input %q for type %s", raw, t)
	}
	return v, nil
}
