package lexer

import (
	"bufio"
	"io"
	"iter"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/pontaoski/monkey/types"
)

// Lexer turns source text into tokens on demand. It never fails: characters it
// cannot classify come back as ILLEGAL tokens, and once input is exhausted every
// call yields EOF.
type Lexer struct {
	pos    types.Position
	last   types.Position
	reader *bufio.Reader
	peeked *types.Token
	err    error

	// invalid is set when the last rune read was a byte that is not UTF-8;
	// raw holds that byte.
	invalid bool
	raw     string
}

func NewLexer(reader io.Reader, filename string) *Lexer {
	return &Lexer{
		pos:    types.Position{Line: 1, Column: 0, Filename: filename},
		reader: bufio.NewReader(reader),
	}
}

// New lexes an in-memory source string.
func New(src string) *Lexer {
	return NewLexer(strings.NewReader(src), "")
}

// Err reports a read failure from the underlying reader, if any. The lexer
// treats such a failure as end of input.
func (l *Lexer) Err() error {
	return l.err
}

func (l *Lexer) newline() {
	l.pos.Line++
	l.pos.Column = 0
}

func (l *Lexer) read() (rune, bool) {
	if l.err != nil {
		return 0, false
	}
	b, _ := l.reader.Peek(1)
	r, size, err := l.reader.ReadRune()
	if err != nil {
		if err != io.EOF {
			l.err = err
		}
		return 0, false
	}

	l.invalid = r == utf8.RuneError && size == 1
	if l.invalid {
		l.raw = string(b)
	}

	l.last = l.pos
	if r == '\n' {
		l.newline()
	} else {
		l.pos.Column++
	}
	return r, true
}

// backup may only be called once after a successful read.
func (l *Lexer) backup() {
	if err := l.reader.UnreadRune(); err != nil {
		panic(err)
	}

	l.pos = l.last
	l.invalid = false
}

func (l *Lexer) kinded(t types.TokenKind, lit string) types.Token {
	return types.Token{
		Kind:     t,
		Literal:  lit,
		Location: types.SingleCharSpan(l.pos),
	}
}

func isDigit(r rune) bool {
	return '0' <= r && r <= '9'
}

func isASCIIPunct(r rune) bool {
	return (0x21 <= r && r <= 0x2F) ||
		(0x3A <= r && r <= 0x40) ||
		(0x5B <= r && r <= 0x60) ||
		(0x7B <= r && r <= 0x7E)
}

// identChar admits non-ASCII scripts and symbols; only ASCII digits, ASCII
// punctuation, whitespace and control characters end an identifier.
func identChar(r rune) bool {
	return !isDigit(r) && !isASCIIPunct(r) && !unicode.IsSpace(r) && !unicode.IsControl(r)
}

func (l *Lexer) lexRun(accept func(rune) bool) (types.Span, string) {
	var lit strings.Builder

	r, _ := l.read()
	span := types.SingleCharSpan(l.pos)
	lit.WriteRune(r)

	for {
		r, ok := l.read()
		if !ok {
			return span, lit.String()
		}
		if !accept(r) || l.invalid {
			l.backup()
			return span, lit.String()
		}
		lit.WriteRune(r)
		span.To = l.pos
	}
}

// twoChar emits combined when the rune after first is second, and single otherwise.
func (l *Lexer) twoChar(first rune, single types.TokenKind, second rune, combined types.TokenKind) types.Token {
	from := l.pos

	r, ok := l.read()
	if ok && r == second {
		return types.Token{
			Kind:     combined,
			Literal:  string(first) + string(second),
			Location: types.Span{From: from, To: l.pos},
		}
	}
	if ok {
		l.backup()
	}
	return types.Token{Kind: single, Literal: string(first), Location: types.SingleCharSpan(from)}
}

var singles = map[rune]types.TokenKind{
	'+': types.PLUS,
	'-': types.MINUS,
	'*': types.ASTERISK,
	'/': types.SLASH,
	'<': types.LT,
	'>': types.GT,
	',': types.COMMA,
	';': types.SEMICOLON,
	'(': types.LPAREN,
	')': types.RPAREN,
	'{': types.LBRACE,
	'}': types.RBRACE,
}

func (l *Lexer) Peek() types.Token {
	if l.peeked != nil {
		return *l.peeked
	}

	tok := l.Lex()
	l.peeked = &tok

	return tok
}

func (l *Lexer) PeekIs(k ...types.TokenKind) bool {
	token := l.Peek()
	for _, kind := range k {
		if token.Kind == kind {
			return true
		}
	}

	return false
}

func (l *Lexer) Lex() types.Token {
	if l.peeked != nil {
		defer func() { l.peeked = nil }()
		return *l.peeked
	}

	for {
		r, ok := l.read()
		if !ok {
			return l.kinded(types.EOF, "")
		}
		if l.invalid {
			return l.kinded(types.ILLEGAL, l.raw)
		}

		switch r {
		case '=':
			return l.twoChar(r, types.ASSIGN, '=', types.EQ)
		case '!':
			return l.twoChar(r, types.BANG, '=', types.NOT_EQ)
		}

		if kind, ok := singles[r]; ok {
			return l.kinded(kind, string(r))
		}

		switch {
		case unicode.IsSpace(r):
			continue
		case isDigit(r):
			l.backup()
			span, lit := l.lexRun(isDigit)

			return types.Token{Kind: types.INT, Literal: lit, Location: span}
		case identChar(r):
			l.backup()
			span, lit := l.lexRun(identChar)

			return types.Token{Kind: types.LookupIdent(lit), Literal: lit, Location: span}
		}

		return l.kinded(types.ILLEGAL, string(r))
	}
}

// All yields tokens up to and including the first EOF.
func (l *Lexer) All() iter.Seq[types.Token] {
	return func(yield func(types.Token) bool) {
		for {
			tok := l.Lex()
			if !yield(tok) || tok.Kind == types.EOF {
				return
			}
		}
	}
}
