package main

import "fmt"

// The trace is a list of symbolic instructions, one for each
// declare, print, or input statement that ran.

type Opcode int

const (
	_ Opcode = iota

	Odeclare // DECLARE type name, value = v
	Oprint   // PRINT text
	Oinput   // INPUT type key => v
)

func (op Opcode) String() string {
	switch op {
	case Odeclare:
		return "DECLARE"
	case Oprint:
		return "PRINT"
	case Oinput:
		return "INPUT"
	default:
		return fmt.Sprintf("Opcode(%d)", int(op))
	}
}

// An Instr is one executed instruction.
// Name is the variable for DECLARE and the prompt key for INPUT;
// Text is the rendered line for PRINT.
type Instr struct {
	Op    Opcode
	Type  Type
	Name  string
	Text  string
	Value Value
	Line  int
}

func (in Instr) String() string {
	switch in.Op {
	case Odeclare:
		return fmt.Sprintf("DECLARE %s %s, value = %s", in.Type, in.Name, in.Value)
	case Oprint:
		return "PRINT " + in.Text
	case Oinput:
		return fmt.Sprintf("INPUT %s %s => %s", in.Type, in.Name, in.Value)
	default:
		panic(fmt.Sprintf("unhandled case: %v", in.Op))
	}
}

// listing renders a trace the way it is shown to users.
func listing(code []Instr) []string {
	if code == nil {
		return nil
	}
	lines := make([]string, len(code))
	for i, in := range code {
		lines[i] = in.String()
	}
	return lines
}
