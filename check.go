package main

import "fmt"

// typecheck looks for errors in a program without running it.
// Unlike the evaluator it doesn't stop at the first problem;
// everything it finds is returned together.
//
// If inputs is non-nil it is taken to be the input list the program
// will run with, and input statements are checked against it too.
func typecheck(prog []Stmt, inputs []string) error {
	c := &checker{scope: newscope(), inputs: inputs}
	for _, s := range prog {
		c.checkStmt(s)
	}
	return multiError(c.errors...)
}

// A scope records what is statically known about each binding.
// A nil *Type means the binding exists but its type isn't known.
type scope struct {
	vars map[string]*Type

	// set once an input statement has stored a value under a key
	// that can't be worked out statically; after that any name
	// might be bound.
	open bool
}

func newscope() *scope {
	return &scope{vars: make(map[string]*Type)}
}

func (s *scope) has(name string) bool {
	_, ok := s.vars[name]
	return ok || s.open
}

func (s *scope) lookup(name string) *Type {
	return s.vars[name]
}

func (s *scope) define(name string, t *Type) {
	s.vars[name] = t
}

// forget is called when a binding with an unknown name is made.
// It could have replaced any variable, so no type is certain any more.
func (s *scope) forget() {
	for name := range s.vars {
		s.vars[name] = nil
	}
	s.open = true
}

type checker struct {
	scope  *scope
	inputs []string
	used   int
	errors []error
}

func (c *checker) checkStmt(stmt Stmt) {
	switch s := stmt.(type) {
	case *DeclareStmt:
		// the name is bound at its declared type even when the value
		// is wrong, so later uses aren't reported as undefined too
		t, ok := c.checkExpr(s.Value)
		if ok && t != nil && *t != s.Type {
			c.errorf(TypeError, s.Line, "expected type %s, got %s", s.Type, *t)
		}
		typ := s.Type
		c.scope.define(s.Name, &typ)
	case *PrintStmt:
		for _, a := range s.Args {
			c.checkExpr(a)
		}
	case *InputStmt:
		key, known := c.promptKey(s.Prompt)
		c.checkInput(s)
		typ := s.Type
		if known {
			c.scope.define(key, &typ)
		} else {
			c.scope.forget()
		}
	case *ExprStmt:
		c.checkExpr(s.X)
	default:
		panic(fmt.Sprintf("unhandled case: %T", s))
	}
}

// checkInput simulates consuming one input, if the inputs are known.
func (c *checker) checkInput(s *InputStmt) {
	if c.inputs == nil {
		return
	}
	if c.used >= len(c.inputs) {
		if c.used == len(c.inputs) {
			c.errorf(InputExhausted, s.Line, "input required but no inputs remain")
		}
		c.used++
		return
	}
	raw := c.inputs[c.used]
	c.used++
	if _, err := convert(s.Type, raw, s.Line); err != nil {
		c.errors = append(c.errors, err)
	}
}

// promptKey works out the name an input statement binds.
// It is only known when every prompt expression is a literal
// or a variable holding a literal the checker has seen.
// Since the checker tracks types, not values, variables make the key unknown.
func (c *checker) promptKey(prompt []Expr) (string, bool) {
	ev := newEvaluator(nil)
	known := true
	for _, p := range prompt {
		if _, ok := c.checkExpr(p); !ok {
			known = false
		}
		if _, isVar := p.(*VarExpr); isVar {
			known = false
		}
	}
	if !known {
		return "", false
	}
	key, err := ev.render(prompt)
	if err != nil {
		fatalf("rendering literal prompt: %v", err)
	}
	if key == "" {
		key = inputSentinel
	}
	return key, true
}

// checkExpr returns the static type of expr.
// ok is false if an error was reported.
func (c *checker) checkExpr(expr Expr) (t *Type, ok bool) {
	lit := func(t Type) (*Type, bool) { return &t, true }
	switch e := expr.(type) {
	case *IntExpr:
		return lit(IntT)
	case *FloatExpr:
		return lit(FloatT)
	case *StrExpr:
		return lit(StrT)
	case *BoolExpr:
		return lit(BoolT)
	case *VarExpr:
		if !c.scope.has(e.Name) {
			c.errorf(NameError, e.Line, "variable %q not defined", e.Name)
			return nil, false
		}
		return c.scope.lookup(e.Name), true
	default:
		panic(fmt.Sprintf("unhandled case: %T", e))
	}
}

func (c *checker) errorf(kind ErrorKind, line int, format string, args ...interface{}) {
	c.errors = append(c.errors, errorf(kind, line, format, args...))
}
