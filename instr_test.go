package main

import (
	"reflect"
	"testing"
)

func TestOpcodeString(t *testing.T) {
	tests := []struct {
		op   Opcode
		want string
	}{
		{Opcode(0), "Opcode(0)"},
		{Odeclare, "DECLARE"},
		{Oprint, "PRINT"},
		{Oinput, "INPUT"},
		{Oinput + 1, "Opcode(4)"},
	}
	for _, tt := range tests {
		if got := tt.op.String(); got != tt.want {
			t.Errorf("Opcode(%d).String() = %q, want %q", int(tt.op), got, tt.want)
		}
	}
}

func TestListing(t *testing.T) {
	if got := listing(nil); got != nil {
		t.Errorf("listing(nil) = %q, want nil", got)
	}
	code := []Instr{
		{Op: Odeclare, Type: IntT, Name: "big", Value: bigInt("12345678901234567890")},
		{Op: Oinput, Type: StrT, Name: inputSentinel, Value: StrVal("a b")},
		{Op: Oprint, Text: "a b"},
	}
	want := []string{
		"DECLARE int big, value = 12345678901234567890",
		"INPUT str input_var => a b",
		"PRINT a b",
	}
	if got := listing(code); !reflect.DeepEqual(got, want) {
		t.Errorf("listing = %q, want %q", got, want)
	}

	defer func() {
		if recover() == nil {
			t.Errorf("Instr{}.String() didn't panic")
		}
	}()
	_ = Instr{}.String()
}
