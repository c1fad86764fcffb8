package main

import (
	"math"
	"math/big"
	"regexp"
	"testing"
)

var valueStringTests = []struct {
	v    Value
	want string
}{
	{IntVal(0), "0"},
	{IntVal(-12), "-12"},
	{BigVal(new(big.Int).Lsh(big.NewInt(1), 70)), "1180591620717411303424"},
	{StrVal(""), ""},
	{StrVal("a b"), "a b"},
	{BoolVal(true), "True"},
	{BoolVal(false), "False"},
	{FloatVal(3), "3.0"},
	{FloatVal(0.5), "0.5"},
	{FloatVal(-2.25), "-2.25"},
	{FloatVal(0.1 + 0.2), "0.30000000000000004"},
	{FloatVal(1e15), "1000000000000000.0"},
	{FloatVal(1e16), "1e+16"},
	{FloatVal(1.5e20), "1.5e+20"},
	{FloatVal(0.0001), "0.0001"},
	{FloatVal(0.00001), "1e-05"},
	{FloatVal(math.Inf(1)), "inf"},
	{FloatVal(math.Inf(-1)), "-inf"},
	{FloatVal(math.NaN()), "nan"},
}

func bigInt(s string) Value {
	n, ok := new(big.Int).SetString(s, 10)
	if !ok {
		panic("bad test int " + s)
	}
	return BigVal(n)
}

func TestValueString(t *testing.T) {
	for _, tt := range valueStringTests {
		if got := tt.v.String(); got != tt.want {
			t.Errorf("%#v.String() = %q, want %q", tt.v, got, tt.want)
		}
	}
}

var convertTests = []struct {
	typ  Type
	raw  string
	want Value
}{
	{IntT, "42", IntVal(42)},
	{IntT, " -7 ", IntVal(-7)},
	{IntT, "+3", IntVal(3)},
	{IntT, "99999999999999999999", bigInt("99999999999999999999")},
	{IntT, " -99999999999999999999\n", bigInt("-99999999999999999999")},
	{FloatT, "-2", FloatVal(-2)},
	{FloatT, "2.5", FloatVal(2.5)},
	{FloatT, "3", FloatVal(3)},
	{FloatT, " 1e3", FloatVal(1000)},
	{StrT, " as is ", StrVal(" as is ")},
	{StrT, "", StrVal("")},
	{BoolT, "true", BoolVal(true)},
	{BoolT, "TRUE", BoolVal(true)},
	{BoolT, "tRuE", BoolVal(true)},
	{BoolT, "false", BoolVal(false)},
	{BoolT, "1", BoolVal(false)},
	{BoolT, "yes", BoolVal(false)},
}

var convertErrorTests = []struct {
	typ Type
	raw string
}{
	{IntT, ""},
	{IntT, "abc"},
	{IntT, "1.0"},
	{IntT, "0x10"},
	{IntT, "1_000"},
	{FloatT, ""},
	{FloatT, "one"},
	{FloatT, "0x1p4"},
	{FloatT, " -0X1.8p1 "},
}

func TestConvert(t *testing.T) {
	for _, tt := range convertTests {
		got, err := convert(tt.typ, tt.raw, 1)
		if err != nil {
			t.Errorf("convert(%v, %q): unexpected error: %v", tt.typ, tt.raw, err)
			continue
		}
		if !got.Equal(tt.want) {
			t.Errorf("convert(%v, %q) = %#v, want %#v", tt.typ, tt.raw, got, tt.want)
		}
	}
	for _, tt := range convertErrorTests {
		_, err := convert(tt.typ, tt.raw, 3)
		if err == nil {
			t.Errorf("convert(%v, %q): expected an error but found none", tt.typ, tt.raw)
			continue
		}
		if !isKind(err, TypeError) {
			t.Errorf("convert(%v, %q): got %v, want a TypeError", tt.typ, tt.raw, err)
		}
		if matched, _ := regexp.MatchString(`^TypeError: line 3: `, err.Error()); !matched {
			t.Errorf("convert(%v, %q): error %q has no line", tt.typ, tt.raw, err)
		}
	}
}

func TestLookupType(t *testing.T) {
	for _, typ := range []Type{IntT, FloatT, StrT, BoolT} {
		got, ok := lookupType(typ.String())
		if !ok || got != typ {
			t.Errorf("lookupType(%q) = %v, %v; want %v, true", typ.String(), got, ok, typ)
		}
		if _, ok := coerce[typ]; !ok {
			t.Errorf("no conversion for %v", typ)
		}
	}
	if _, ok := lookupType("string"); ok {
		t.Errorf("lookupType(\"string\") succeeded, want failure")
	}
}

func TestValueEqual(t *testing.T) {
	same := [][2]Value{
		{IntVal(7), bigInt("7")},
		{bigInt("99999999999999999999"), bigInt("99999999999999999999")},
		{FloatVal(0.5), FloatVal(0.5)},
		{StrVal("a"), StrVal("a")},
		{BoolVal(true), BoolVal(true)},
	}
	for _, p := range same {
		if !p[0].Equal(p[1]) {
			t.Errorf("%#v.Equal(%#v) = false, want true", p[0], p[1])
		}
	}
	different := [][2]Value{
		{IntVal(7), IntVal(8)},
		{IntVal(1), FloatVal(1)},
		{StrVal("True"), BoolVal(true)},
		{FloatVal(math.NaN()), FloatVal(math.NaN())},
	}
	for _, p := range different {
		if p[0].Equal(p[1]) {
			t.Errorf("%#v.Equal(%#v) = true, want false", p[0], p[1])
		}
	}
}
