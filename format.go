package main

import (
	"bytes"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// format.go converts an AST back to source code

type formatter struct {
	buf bytes.Buffer
}

// formatProg returns prog as canonical source:
// one statement per line, each ending in a semicolon.
func formatProg(prog []Stmt) string {
	var f formatter
	for _, s := range prog {
		f.visitStmt(s)
		f.write(";\n")
	}
	return f.buf.String()
}

func (f *formatter) visitStmt(stmt Stmt) {
	switch s := stmt.(type) {
	case *DeclareStmt:
		f.write(s.Type.String() + " " + s.Name + " := ")
		f.visitExpr(s.Value)
	case *PrintStmt:
		f.write("print")
		if len(s.Args) > 0 {
			f.write(" ")
			f.visitList(s.Args)
		}
	case *InputStmt:
		f.write("input " + s.Type.String())
		if len(s.Prompt) > 0 {
			f.write(", ")
			f.visitList(s.Prompt)
		}
	case *ExprStmt:
		f.visitExpr(s.X)
	default:
		panic(fmt.Sprintf("unhandled case in formatter.visitStmt: %T", s))
	}
}

func (f *formatter) visitList(list []Expr) {
	for i, e := range list {
		if i != 0 {
			f.write(", ")
		}
		f.visitExpr(e)
	}
}

func (f *formatter) visitExpr(expr Expr) {
	switch e := expr.(type) {
	case *VarExpr:
		f.write(e.Name)
	case *IntExpr:
		f.write(e.Value.String())
	case *FloatExpr:
		f.write(floatLiteral(e.Value))
	case *StrExpr:
		f.write(quote(e.Value))
	case *BoolExpr:
		f.write(strconv.FormatBool(e.Value))
	default:
		panic(fmt.Sprintf("unhandled case in formatter.visitExpr: %T", e))
	}
}

// floatLiteral spells f so that it lexes back as the same float.
// Signs are symbols to the lexer, so exponents are avoided
// and a decimal point is always present.
func floatLiteral(f float64) string {
	switch {
	case math.IsInf(f, 0):
		return "inf"
	case math.IsNaN(f):
		return "nan"
	}
	s := strconv.FormatFloat(f, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}

// quote wraps s in whichever quote character it doesn't contain.
// The lexer has no escapes, so a string can never hold both.
func quote(s string) string {
	if strings.ContainsRune(s, '"') {
		return "'" + s + "'"
	}
	return `"` + s + `"`
}

func (f *formatter) write(s string) {
	f.buf.WriteString(s)
}
