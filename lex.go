package main

import (
	"fmt"
	"math/big"
	"strconv"
	"strings"
	"unicode"
)

// Kind is the lexical class of a token.
type Kind uint8

const (
	_ Kind = iota

	KindInt
	KindFloat
	KindString
	KindBool
	KindIdent
	KindType
	KindKeyword
	KindSymbol
)

var kindNames = [...]string{
	KindInt:     "INT",
	KindFloat:   "FLOAT",
	KindString:  "STRING",
	KindBool:    "BOOL",
	KindIdent:   "ID",
	KindType:    "TYPE",
	KindKeyword: "KEYWORD",
	KindSymbol:  "SYMBOL",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) && kindNames[k] != "" {
		return kindNames[k]
	}
	return "Kind(" + strconv.Itoa(int(k)) + ")"
}

// A Token is a classified lexeme.
// Text always holds the lexeme (the contents, for strings);
// the typed payload lives in the field matching Kind.
type Token struct {
	Kind  Kind
	Text  string
	Int   *big.Int
	Float float64
	Bool  bool
	Line  int
}

func (t Token) String() string {
	return fmt.Sprintf("%s %q", t.Kind, t.Text)
}

const symbolChars = "(){}[],;:=+-*/%!&|<>^"

var keywords = map[string]bool{
	"print": true,
	"input": true,
	"if":    true,
	"else":  true,
	"while": true,
	"do":    true,
	"then":  true,
}

// tokenize splits src into tokens. It never fails: any word that is
// not something else is an identifier.
//
// The word buffer is shared with string mode, so a quote that directly
// follows word characters starts a string that begins with them, and an
// unterminated string is flushed at the end as an ordinary word.
func tokenize(src string) []Token {
	var (
		toks  []Token
		word  strings.Builder
		quote rune
		line  = 1
	)
	flush := func() {
		if word.Len() > 0 {
			toks = append(toks, classify(word.String(), line))
			word.Reset()
		}
	}

	rs := []rune(src)
	for i := 0; i < len(rs); i++ {
		c := rs[i]
		if quote != 0 {
			if c == quote {
				toks = append(toks, Token{Kind: KindString, Text: word.String(), Line: line})
				word.Reset()
				quote = 0
			} else {
				word.WriteRune(c)
			}
			continue
		}
		switch {
		case c == '"' || c == '\'':
			quote = c
		case strings.ContainsRune(symbolChars, c):
			flush()
			if c == ':' && i+1 < len(rs) && rs[i+1] == '=' {
				toks = append(toks, Token{Kind: KindSymbol, Text: ":=", Line: line})
				i++
				continue
			}
			toks = append(toks, Token{Kind: KindSymbol, Text: string(c), Line: line})
		case unicode.IsSpace(c):
			flush()
			if c == '\n' {
				line++
			}
		default:
			word.WriteRune(c)
		}
	}
	flush()
	return toks
}

// classify decides what kind of token a bare word is.
// The order matters: keywords and type names shadow identifiers,
// and all-digit words are ints before they are floats.
func classify(word string, line int) Token {
	t := Token{Text: word, Line: line}
	if keywords[word] {
		t.Kind = KindKeyword
		return t
	}
	if word == "true" || word == "false" {
		t.Kind = KindBool
		t.Bool = word == "true"
		return t
	}
	if _, ok := lookupType(word); ok {
		t.Kind = KindType
		return t
	}
	if isDigits(word) {
		n, ok := new(big.Int).SetString(word, 10)
		if !ok {
			fatalf("couldn't parse digits %q", word)
		}
		t.Kind = KindInt
		t.Int = n
		return t
	}
	if f, ok := parseFloat(word); ok {
		t.Kind = KindFloat
		t.Float = f
		return t
	}
	t.Kind = KindIdent
	return t
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
