package parser

import (
	"io"
	"strconv"

	"github.com/pontaoski/monkey/ast"
	"github.com/pontaoski/monkey/errors"
	"github.com/pontaoski/monkey/lexer"
	"github.com/pontaoski/monkey/types"
	"github.com/ztrue/tracerr"
)

type Precedence int

const (
	LOWEST Precedence = iota
	EQUALS
	LESSGREATER
	SUM
	PRODUCT
	PREFIX
	CALL
)

var precedences = map[types.TokenKind]Precedence{
	types.EQ:       EQUALS,
	types.NOT_EQ:   EQUALS,
	types.LT:       LESSGREATER,
	types.GT:       LESSGREATER,
	types.PLUS:     SUM,
	types.MINUS:    SUM,
	types.SLASH:    PRODUCT,
	types.ASTERISK: PRODUCT,
	types.LPAREN:   CALL,
}

func precedenceOf(k types.TokenKind) Precedence {
	if p, ok := precedences[k]; ok {
		return p
	}
	return LOWEST
}

// DefaultMaxDepth bounds how deeply expressions and blocks may nest.
const DefaultMaxDepth = 10000

// Parser holds the current token; the lexer's own peek slot is the one-token
// lookahead.
type Parser struct {
	l     *lexer.Lexer
	cur   types.Token
	depth int

	// MaxDepth is the deepest nesting of expressions and blocks accepted.
	MaxDepth int
}

func NewParser(l *lexer.Lexer) *Parser {
	p := &Parser{l: l, MaxDepth: DefaultMaxDepth}
	p.next()
	return p
}

// Parse parses a complete source string.
func Parse(src string) (ast.Program, error) {
	return NewParser(lexer.New(src)).ParseProgram()
}

// ParseReader parses source read from r; filename only labels positions.
func ParseReader(r io.Reader, filename string) (ast.Program, error) {
	return NewParser(lexer.NewLexer(r, filename)).ParseProgram()
}

func (p *Parser) next() {
	p.cur = p.l.Lex()
}

func (p *Parser) peekIs(k types.TokenKind) bool {
	return p.l.PeekIs(k)
}

func (p *Parser) enter() {
	p.depth++
	if p.depth > p.MaxDepth {
		panic(errors.NestingTooDeep{Limit: p.MaxDepth, Location: p.cur.Location})
	}
}

func (p *Parser) leave() {
	p.depth--
}

// expectPeek advances onto the next token if it has kind k and aborts the parse
// otherwise.
func (p *Parser) expectPeek(k types.TokenKind) {
	if !p.peekIs(k) {
		tok := p.l.Peek()
		panic(errors.ExpectedKindGotKind{
			Expected: k,
			Got:      tok.Kind,
			Location: tok.Location,
		})
	}
	p.next()
}

func (p *Parser) ParseProgram() (program ast.Program, err error) {
	defer func() {
		if r := recover(); r != nil {
			rerr, ok := r.(error)
			if ok {
				program = ast.Program{}
				err = tracerr.Wrap(rerr)
			} else {
				panic(r)
			}
		}
	}()

	for p.cur.Kind != types.EOF {
		stmt := p.parseStatement()
		if _, empty := stmt.(ast.Empty); !empty {
			program.Statements = append(program.Statements, stmt)
		}
		p.next()
	}

	if err := p.l.Err(); err != nil {
		return ast.Program{}, tracerr.Wrap(err)
	}
	return program, nil
}

func (p *Parser) parseStatement() ast.Statement {
	switch p.cur.Kind {
	case types.LET:
		return p.parseLet()
	case types.RETURN:
		return p.parseReturn()
	case types.LBRACE:
		return p.parseBlock()
	case types.SEMICOLON:
		return ast.Empty{}
	}
	return p.parseExpressionStatement()
}

func (p *Parser) parseLet() ast.Statement {
	p.expectPeek(types.IDENT)
	name := p.identifier()

	p.expectPeek(types.ASSIGN)
	p.next()

	value := p.parseExpression(LOWEST)
	p.expectPeek(types.SEMICOLON)

	return ast.Let{Name: name, Value: value}
}

func (p *Parser) parseReturn() ast.Statement {
	p.next()

	value := p.parseExpression(LOWEST)
	p.expectPeek(types.SEMICOLON)

	return ast.Return{Value: value}
}

// parseBlock should be called with the parser on the opening brace; it leaves
// the parser on the closing one.
func (p *Parser) parseBlock() ast.Block {
	p.enter()
	defer p.leave()

	block := ast.Block{}
	p.next()

	for p.cur.Kind != types.RBRACE {
		if p.cur.Kind == types.EOF {
			panic(errors.ExpectedKindGotKind{
				Expected: types.RBRACE,
				Got:      types.EOF,
				Location: p.cur.Location,
			})
		}
		stmt := p.parseStatement()
		if _, empty := stmt.(ast.Empty); !empty {
			block = append(block, stmt)
		}
		p.next()
	}

	return block
}

func (p *Parser) parseExpressionStatement() ast.Statement {
	expr := p.parseExpression(LOWEST)
	if p.peekIs(types.SEMICOLON) {
		p.next()
	}
	return ast.ExpressionStatement{Expr: expr}
}

func (p *Parser) parseExpression(precedence Precedence) ast.Expression {
	p.enter()
	defer p.leave()

	left := p.parsePrefix()

	for !p.peekIs(types.SEMICOLON) && precedence < precedenceOf(p.l.Peek().Kind) {
		p.next()
		left = p.parseInfix(left)
	}

	return left
}

func (p *Parser) parsePrefix() ast.Expression {
	switch p.cur.Kind {
	case types.IDENT:
		return p.identifier()
	case types.INT:
		return p.parseInteger()
	case types.TRUE, types.FALSE:
		return ast.Boolean(p.cur.Kind == types.TRUE)
	case types.BANG, types.MINUS:
		operator := p.cur.Literal
		p.next()
		return ast.Prefix{Operator: operator, Right: p.parseExpression(PREFIX)}
	case types.LPAREN:
		p.next()
		expr := p.parseExpression(LOWEST)
		p.expectPeek(types.RPAREN)
		return expr
	case types.IF:
		return p.parseIf()
	case types.FUNCTION:
		return p.parseFunc()
	}

	panic(errors.NoPrefixParse{
		Got:      p.cur.Kind,
		Literal:  p.cur.Literal,
		Location: p.cur.Location,
	})
}

// parseInfix is only reached for kinds with a precedence above LOWEST.
func (p *Parser) parseInfix(left ast.Expression) ast.Expression {
	if p.cur.Kind == types.LPAREN {
		return ast.Call{Function: left, Arguments: p.parseCallArguments()}
	}

	operator := p.cur.Literal
	precedence := precedenceOf(p.cur.Kind)
	p.next()

	return ast.Infix{Left: left, Operator: operator, Right: p.parseExpression(precedence)}
}

func (p *Parser) identifier() ast.Identifier {
	return ast.Identifier{Name: p.cur.Literal, Pos: p.cur.Location}
}

func (p *Parser) parseInteger() ast.Expression {
	v, err := strconv.ParseInt(p.cur.Literal, 10, 64)
	if err != nil {
		panic(errors.InvalidInteger{Literal: p.cur.Literal, Location: p.cur.Location})
	}
	return ast.Integer(v)
}

func (p *Parser) parseIf() ast.Expression {
	p.expectPeek(types.LPAREN)
	p.next()
	cond := p.parseExpression(LOWEST)
	p.expectPeek(types.RPAREN)

	p.expectPeek(types.LBRACE)
	expr := ast.If{Condition: cond, Consequence: p.parseBlock()}

	if p.peekIs(types.ELSE) {
		p.next()
		p.expectPeek(types.LBRACE)
		alt := p.parseBlock()
		expr.Alternative = &alt
	}

	return expr
}

func (p *Parser) parseFunc() ast.Expression {
	p.expectPeek(types.LPAREN)

	var params []ast.Identifier
	if p.peekIs(types.RPAREN) {
		p.next()
	} else {
		for {
			p.expectPeek(types.IDENT)
			params = append(params, p.identifier())
			if !p.peekIs(types.COMMA) {
				break
			}
			p.next()
		}
		p.expectPeek(types.RPAREN)
	}

	p.expectPeek(types.LBRACE)
	return ast.Func{Parameters: params, Body: p.parseBlock()}
}

// parseCallArguments should be called with the parser on the opening paren.
func (p *Parser) parseCallArguments() []ast.Expression {
	var args []ast.Expression

	if p.peekIs(types.RPAREN) {
		p.next()
		return args
	}

	p.next()
	args = append(args, p.parseExpression(LOWEST))
	for p.peekIs(types.COMMA) {
		p.next()
		p.next()
		args = append(args, p.parseExpression(LOWEST))
	}
	p.expectPeek(types.RPAREN)

	return args
}
