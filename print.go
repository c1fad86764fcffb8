package main

import (
	"fmt"
	"io"

	"github.com/kr/pretty"
)

// this file prints tokens and programs for debugging

func printTokens(w io.Writer, toks []Token) {
	for i, t := range toks {
		fmt.Fprintf(w, "%4d %3d: %s\n", i, t.Line, t.debugstr())
	}
}

func (t Token) debugstr() string {
	switch t.Kind {
	case KindInt:
		return fmt.Sprintf("%-7s %s", t.Kind, t.Int)
	case KindFloat:
		return fmt.Sprintf("%-7s %s", t.Kind, formatFloat(t.Float))
	case KindBool:
		return fmt.Sprintf("%-7s %t", t.Kind, t.Bool)
	default:
		return fmt.Sprintf("%-7s %q", t.Kind, t.Text)
	}
}

// printProg lists each statement with the line it started on.
func printProg(w io.Writer, prog []Stmt) {
	var f formatter
	for i, s := range prog {
		fmt.Fprintf(w, "%3d: [line %d] %s\n", i, stmtLine(s), f.debugstr(s))
	}
}

func (f *formatter) debugstr(s Stmt) string {
	f.buf.Reset()
	f.visitStmt(s)
	return f.buf.String()
}

// dumpProg prints the whole tree, structs and all.
func dumpProg(w io.Writer, prog []Stmt) {
	for _, s := range prog {
		pretty.Fprintf(w, "%# v\n", s)
	}
}

func stmtLine(stmt Stmt) int {
	switch s := stmt.(type) {
	case *DeclareStmt:
		return s.Line
	case *PrintStmt:
		return s.Line
	case *InputStmt:
		return s.Line
	case *ExprStmt:
		return exprLine(s.X)
	default:
		panic(fmt.Sprintf("unhandled case: %T", s))
	}
}
