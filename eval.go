package main

import (
	"fmt"
	"log"
	"strings"
)

// inputSentinel is the name an input value is stored under
// when its prompt renders to nothing.
const inputSentinel = "input_var"

type env map[string]Value

// An evaluator runs one program, once.
// Nothing in it outlives the run.
type evaluator struct {
	vars   env
	inputs []string // consumed from the front

	output []string // printed lines
	code   []Instr  // one instruction per declare/print/input

	log *log.Logger // optional
}

func newEvaluator(inputs []string) *evaluator {
	return &evaluator{
		vars:   make(env),
		inputs: append([]string(nil), inputs...),
	}
}

// run executes prog in order and stops at the first error.
// Whatever was logged before the error is left in place.
func (ev *evaluator) run(prog []Stmt) error {
	for _, s := range prog {
		if err := ev.exec(s); err != nil {
			return err
		}
	}
	return nil
}

func (ev *evaluator) exec(stmt Stmt) error {
	switch s := stmt.(type) {
	case *DeclareStmt:
		v, err := ev.eval(s.Value)
		if err != nil {
			return err
		}
		if v.Type != s.Type {
			return errorf(TypeError, s.Line, "expected type %s, got %s", s.Type, v.Type)
		}
		ev.vars[s.Name] = v
		ev.emit(Instr{Op: Odeclare, Type: s.Type, Name: s.Name, Value: v, Line: s.Line})
	case *PrintStmt:
		text, err := ev.render(s.Args)
		if err != nil {
			return err
		}
		ev.output = append(ev.output, text)
		ev.emit(Instr{Op: Oprint, Text: text, Line: s.Line})
	case *InputStmt:
		key, err := ev.render(s.Prompt)
		if err != nil {
			return err
		}
		if key == "" {
			key = inputSentinel
		}
		if len(ev.inputs) == 0 {
			return errorf(InputExhausted, s.Line, "input required but no inputs remain")
		}
		raw := ev.inputs[0]
		ev.inputs = ev.inputs[1:]
		v, err := convert(s.Type, raw, s.Line)
		if err != nil {
			return err
		}
		ev.vars[key] = v
		ev.emit(Instr{Op: Oinput, Type: s.Type, Name: key, Value: v, Line: s.Line})
	case *ExprStmt:
		_, err := ev.eval(s.X)
		return err
	default:
		panic(fmt.Sprintf("unhandled case: %T", s))
	}
	return nil
}

// render evaluates each expression and joins the results with spaces.
// Expressions have no side effects, so print uses the one rendering
// for both its output line and its trace line.
func (ev *evaluator) render(args []Expr) (string, error) {
	parts := make([]string, len(args))
	for i, a := range args {
		v, err := ev.eval(a)
		if err != nil {
			return "", err
		}
		parts[i] = v.String()
	}
	return strings.Join(parts, " "), nil
}

func (ev *evaluator) eval(expr Expr) (Value, error) {
	switch e := expr.(type) {
	case *IntExpr:
		return BigVal(e.Value), nil
	case *FloatExpr:
		return FloatVal(e.Value), nil
	case *StrExpr:
		return StrVal(e.Value), nil
	case *BoolExpr:
		return BoolVal(e.Value), nil
	case *VarExpr:
		v, ok := ev.vars[e.Name]
		if !ok {
			return Value{}, errorf(NameError, e.Line, "variable %q not defined", e.Name)
		}
		return v, nil
	default:
		panic(fmt.Sprintf("unhandled case: %T", e))
	}
}

func (ev *evaluator) emit(in Instr) {
	ev.code = append(ev.code, in)
	if ev.log != nil {
		ev.log.Printf("line %d: %v", in.Line, in)
	}
}
