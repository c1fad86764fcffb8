package main

import (
	"errors"
	"fmt"
	"strings"
)

// ErrorKind says which of the language's error classes an Error belongs to.
type ErrorKind uint8

const (
	_ ErrorKind = iota

	SyntaxError    // the parser expected something that wasn't there
	NameError      // a variable was used before it was bound
	TypeError      // a value had the wrong type, or input didn't convert
	InputExhausted // an input statement ran with no inputs left
)

func (k ErrorKind) String() string {
	switch k {
	case SyntaxError:
		return "SyntaxError"
	case NameError:
		return "NameError"
	case TypeError:
		return "TypeError"
	case InputExhausted:
		return "InputExhausted"
	default:
		return fmt.Sprintf("ErrorKind(%d)", uint8(k))
	}
}

// An Error is a failure reported by the parser, checker or evaluator.
// Line is 0 when no source position is known.
type Error struct {
	Kind ErrorKind
	Line int
	Msg  string
}

func (e *Error) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("%s: line %d: %s", e.Kind, e.Line, e.Msg)
	}
	return e.Kind.String() + ": " + e.Msg
}

func errorf(kind ErrorKind, line int, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Line: line, Msg: fmt.Sprintf(format, args...)}
}

// isKind reports whether err is (or wraps) an *Error of the given kind.
// An ErrorList matches if any of its members does.
func isKind(err error, kind ErrorKind) bool {
	var list ErrorList
	if errors.As(err, &list) {
		for _, e := range list {
			if isKind(e, kind) {
				return true
			}
		}
		return false
	}
	var e *Error
	return errors.As(err, &e) && e.Kind == kind
}

// An ErrorList is a list of errors reported together.
type ErrorList []error

func (l ErrorList) Error() string {
	var b strings.Builder
	for i, err := range l {
		if i != 0 {
			b.WriteString("\n")
		}
		b.WriteString(err.Error())
	}
	return b.String()
}

// aggregates multiple errors.
// strips out nils (may modify the input list).
func multiError(errors ...error) error {
	j := 0
	for i := range errors {
		if errors[i] != nil {
			if i != j {
				errors[j] = errors[i]
			}
			j++
		}
	}
	switch j {
	case 0:
		return nil
	case 1:
		return errors[0]
	default:
		return ErrorList(errors[:j])
	}
}

func fatalf(s string, args ...interface{}) {
	msg := fmt.Sprintf(s, args...)
	panic("fatal interpreter error: " + msg)
}
