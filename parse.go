package main

import (
	"io"
)

// The grammar, such as it is:
//
//	program     = { stmt { ";" } }
//	stmt        = declaration | print | input | expr
//	declaration = TYPE ID ":=" expr
//	print       = "print" { expr [","] }          (up to ";" or the end)
//	input       = "input" [TYPE] ["," { expr [","] }]
//	expr        = INT | FLOAT | STRING | BOOL | ID
//
// There are no operators and no control flow. Operator symbols and the
// reserved words if/else/while/do/then are lexed but are a syntax error
// anywhere the parser looks at them.

type parser struct {
	toks []Token
	pos  int
}

// parse reads a whole program from r.
func parse(r io.Reader) ([]Stmt, error) {
	src, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return parseTokens(tokenize(string(src)))
}

func parseTokens(toks []Token) ([]Stmt, error) {
	p := &parser{toks: toks}
	return p.program()
}

func (p *parser) program() ([]Stmt, error) {
	var prog []Stmt
	for !p.atEnd() {
		s, err := p.stmt()
		if err != nil {
			return nil, err
		}
		prog = append(prog, s)
		for p.match(KindSymbol, ";") {
		}
	}
	return prog, nil
}

func (p *parser) stmt() (Stmt, error) {
	switch {
	case p.check(KindType, ""):
		return p.declaration()
	case p.check(KindKeyword, "print"):
		return p.print()
	case p.check(KindKeyword, "input"):
		return p.input()
	}
	x, err := p.expr()
	if err != nil {
		return nil, err
	}
	return &ExprStmt{X: x}, nil
}

func (p *parser) declaration() (Stmt, error) {
	tok := p.advance()
	name, err := p.expect(KindIdent, "")
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(KindSymbol, ":="); err != nil {
		return nil, err
	}
	val, err := p.expr()
	if err != nil {
		return nil, err
	}
	typ, _ := lookupType(tok.Text)
	return &DeclareStmt{Type: typ, Name: name.Text, Value: val, Line: tok.Line}, nil
}

func (p *parser) print() (Stmt, error) {
	tok := p.advance()
	args, err := p.exprList()
	if err != nil {
		return nil, err
	}
	return &PrintStmt{Args: args, Line: tok.Line}, nil
}

func (p *parser) input() (Stmt, error) {
	tok := p.advance()
	s := &InputStmt{Type: StrT, Line: tok.Line}
	if p.check(KindType, "") {
		s.Type, _ = lookupType(p.advance().Text)
	}
	if p.match(KindSymbol, ",") {
		args, err := p.exprList()
		if err != nil {
			return nil, err
		}
		s.Prompt = args
	}
	return s, nil
}

// exprList parses expressions up to the next ";" or the end of input.
// Commas between them are optional.
func (p *parser) exprList() ([]Expr, error) {
	var list []Expr
	for !p.atEnd() && !p.check(KindSymbol, ";") {
		x, err := p.expr()
		if err != nil {
			return nil, err
		}
		list = append(list, x)
		p.match(KindSymbol, ",")
	}
	return list, nil
}

// expr parses a single-token expression.
func (p *parser) expr() (Expr, error) {
	if p.atEnd() {
		return nil, p.errorf("unexpected end of input in expression")
	}
	tok := p.advance()
	switch tok.Kind {
	case KindInt:
		return &IntExpr{Value: tok.Int, Line: tok.Line}, nil
	case KindFloat:
		return &FloatExpr{Value: tok.Float, Line: tok.Line}, nil
	case KindString:
		return &StrExpr{Value: tok.Text, Line: tok.Line}, nil
	case KindBool:
		return &BoolExpr{Value: tok.Bool, Line: tok.Line}, nil
	case KindIdent:
		return &VarExpr{Name: tok.Text, Line: tok.Line}, nil
	default:
		return nil, errorf(SyntaxError, tok.Line, "unexpected token in expression: %v", tok)
	}
}

func (p *parser) atEnd() bool {
	return p.pos >= len(p.toks)
}

func (p *parser) advance() Token {
	p.pos++
	return p.toks[p.pos-1]
}

// check reports whether the next token has the given kind,
// and the given text if text is not empty.
func (p *parser) check(kind Kind, text string) bool {
	if p.atEnd() {
		return false
	}
	tok := p.toks[p.pos]
	return tok.Kind == kind && (text == "" || tok.Text == text)
}

func (p *parser) match(kind Kind, text string) bool {
	if p.check(kind, text) {
		p.pos++
		return true
	}
	return false
}

func (p *parser) expect(kind Kind, text string) (Token, error) {
	if p.check(kind, text) {
		return p.advance(), nil
	}
	want := kind.String()
	if text != "" {
		want += " " + text
	}
	if p.atEnd() {
		return Token{}, p.errorf("expected %s but found end of input", want)
	}
	tok := p.toks[p.pos]
	return Token{}, errorf(SyntaxError, tok.Line, "expected %s but found %v", want, tok)
}

// errorf reports a syntax error at the end of input,
// positioned on the last line that had a token.
func (p *parser) errorf(format string, args ...interface{}) *Error {
	line := 1
	if n := len(p.toks); n > 0 {
		line = p.toks[n-1].Line
	}
	return errorf(SyntaxError, line, format, args...)
}
