package types

import (
	"fmt"
)

type Position struct {
	Line     int
	Column   int
	Filename string
}

type Span struct {
	From Position
	To   Position
}

type TokenKind int

const (
	EOF TokenKind = iota
	ILLEGAL

	IDENT
	INT

	ASSIGN
	PLUS
	MINUS
	BANG
	ASTERISK
	SLASH
	LT
	GT
	EQ
	NOT_EQ

	COMMA
	SEMICOLON
	LPAREN
	RPAREN
	LBRACE
	RBRACE

	FUNCTION
	LET
	TRUE
	FALSE
	IF
	ELSE
	RETURN
)

var kindNames = map[TokenKind]string{
	EOF:       "EOF",
	ILLEGAL:   "ILLEGAL",
	IDENT:     "IDENT",
	INT:       "INT",
	ASSIGN:    "ASSIGN",
	PLUS:      "PLUS",
	MINUS:     "MINUS",
	BANG:      "BANG",
	ASTERISK:  "ASTERISK",
	SLASH:     "SLASH",
	LT:        "LT",
	GT:        "GT",
	EQ:        "EQ",
	NOT_EQ:    "NOT_EQ",
	COMMA:     "COMMA",
	SEMICOLON: "SEMICOLON",
	LPAREN:    "LPAREN",
	RPAREN:    "RPAREN",
	LBRACE:    "LBRACE",
	RBRACE:    "RBRACE",
	FUNCTION:  "FUNCTION",
	LET:       "LET",
	TRUE:      "TRUE",
	FALSE:     "FALSE",
	IF:        "IF",
	ELSE:      "ELSE",
	RETURN:    "RETURN",
}

func (t TokenKind) String() string {
	if name, ok := kindNames[t]; ok {
		return name
	}
	return fmt.Sprintf("TokenKind(%d)", int(t))
}

var keywords = map[string]TokenKind{
	"fn":     FUNCTION,
	"let":    LET,
	"true":   TRUE,
	"false":  FALSE,
	"if":     IF,
	"else":   ELSE,
	"return": RETURN,
}

// LookupIdent reclassifies a scanned word as a keyword, or IDENT if it is none.
func LookupIdent(word string) TokenKind {
	if kind, ok := keywords[word]; ok {
		return kind
	}
	return IDENT
}

func (p Position) String() string {
	if p.Filename == "" {
		p.Filename = "<unknown>"
	}
	return fmt.Sprintf("%s:%d:%d", p.Filename, p.Line, p.Column)
}

func (s Span) String() string {
	return fmt.Sprintf("%s-%d:%d", s.From, s.To.Line, s.To.Column)
}

func SingleCharSpan(p Position) Span {
	return Span{p, p}
}

// Token is immutable once produced; Literal is the exact source text.
type Token struct {
	Kind     TokenKind
	Literal  string
	Location Span
}

func (t Token) String() string {
	return fmt.Sprintf("%s %q %s", t.Kind, t.Literal, t.Location)
}
