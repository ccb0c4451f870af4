package errors

import (
	"fmt"

	"github.com/pontaoski/monkey/types"
)

// Syntactic errors. The parser stops at the first one.

type ExpectedKindGotKind struct {
	Expected types.TokenKind
	Got      types.TokenKind
	Location types.Span
}

func (e ExpectedKindGotKind) Error() string {
	return fmt.Sprintf("expected next token to be %s, got %s instead. %s", e.Expected, e.Got, e.Location)
}

type NoPrefixParse struct {
	Got      types.TokenKind
	Literal  string
	Location types.Span
}

func (e NoPrefixParse) Error() string {
	return fmt.Sprintf("no prefix parse function for %s (%q) found. %s", e.Got, e.Literal, e.Location)
}

type InvalidInteger struct {
	Literal  string
	Location types.Span
}

func (e InvalidInteger) Error() string {
	return fmt.Sprintf("could not parse %q as a 64-bit integer. %s", e.Literal, e.Location)
}

type NestingTooDeep struct {
	Limit    int
	Location types.Span
}

func (e NestingTooDeep) Error() string {
	return fmt.Sprintf("expression nesting exceeds depth %d. %s", e.Limit, e.Location)
}

// Runtime errors. Operands are rendered by the evaluator before the error is built
// so this package stays independent of the value model.

type UnknownIdentifier struct {
	Name     string
	Location types.Span
}

func (e UnknownIdentifier) Error() string {
	return fmt.Sprintf("identifier not found: %s. %s", e.Name, e.Location)
}

type TypeMismatch struct {
	Left     string
	Operator string
	Right    string
}

func (e TypeMismatch) Error() string {
	return fmt.Sprintf("type mismatch: %s %s %s", e.Left, e.Operator, e.Right)
}

type UnknownOperator struct {
	Left     string
	Operator string
	Right    string
}

func (e UnknownOperator) Error() string {
	if e.Left == "" {
		return fmt.Sprintf("unknown operator: %s%s", e.Operator, e.Right)
	}
	return fmt.Sprintf("unknown operator: %s %s %s", e.Left, e.Operator, e.Right)
}

type InvalidOperand struct {
	Operator string
	Operand  string
}

func (e InvalidOperand) Error() string {
	return fmt.Sprintf("cannot use '%s' operator on %s", e.Operator, e.Operand)
}

type InvalidCast struct {
	Value string
	To    string
}

func (e InvalidCast) Error() string {
	return fmt.Sprintf("cannot cast %s to %s", e.Value, e.To)
}

type DivisionByZero struct {
	Dividend int64
}

func (e DivisionByZero) Error() string {
	return fmt.Sprintf("division by zero: %d / 0", e.Dividend)
}

type NotAFunction struct {
	Value string
}

func (e NotAFunction) Error() string {
	return fmt.Sprintf("not a function: %s", e.Value)
}

type ArgumentCount struct {
	Want int
	Got  int
}

func (e ArgumentCount) Error() string {
	return fmt.Sprintf("wrong number of arguments: want=%d, got=%d", e.Want, e.Got)
}

type StackOverflow struct {
	Depth int
}

func (e StackOverflow) Error() string {
	return fmt.Sprintf("stack overflow: evaluation exceeded depth %d", e.Depth)
}
