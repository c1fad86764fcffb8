package main

import (
	"fmt"
	"math/big"
)

// A program is a flat list of statements; there are no blocks.
//
// Stmt and Expr are closed: only the types in this file implement them.
// Switches over them end in a panic so that a new case is caught the
// first time it reaches a pass that doesn't know about it.

type Stmt interface {
	stmtNode()
}

type Expr interface {
	exprNode()
}

// DeclareStmt is `TYPE name := expr`.
type DeclareStmt struct {
	Type  Type
	Name  string
	Value Expr
	Line  int
}

// PrintStmt is `print a, b, ...`.
type PrintStmt struct {
	Args []Expr
	Line int
}

// InputStmt is `input TYPE, prompt...`.
// The rendered prompt is also the name the value is stored under.
type InputStmt struct {
	Type   Type
	Prompt []Expr
	Line   int
}

// ExprStmt is a bare expression. It is evaluated and thrown away.
type ExprStmt struct {
	X Expr
}

func (*DeclareStmt) stmtNode() {}
func (*PrintStmt) stmtNode()   {}
func (*InputStmt) stmtNode()   {}
func (*ExprStmt) stmtNode()    {}

type IntExpr struct {
	Value *big.Int
	Line  int
}

type FloatExpr struct {
	Value float64
	Line  int
}

type StrExpr struct {
	Value string
	Line  int
}

type BoolExpr struct {
	Value bool
	Line  int
}

type VarExpr struct {
	Name string
	Line int
}

func (*IntExpr) exprNode()   {}
func (*FloatExpr) exprNode() {}
func (*StrExpr) exprNode()   {}
func (*BoolExpr) exprNode()  {}
func (*VarExpr) exprNode()   {}

// exprLine reports the source line an expression came from.
func exprLine(expr Expr) int {
	switch e := expr.(type) {
	case *IntExpr:
		return e.Line
	case *FloatExpr:
		return e.Line
	case *StrExpr:
		return e.Line
	case *BoolExpr:
		return e.Line
	case *VarExpr:
		return e.Line
	default:
		panic(fmt.Sprintf("unhandled case: %T", e))
	}
}
