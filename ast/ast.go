package ast

import "github.com/pontaoski/monkey/types"

// Every composite node owns its children outright; nodes are never shared
// between two parents.

type Node interface {
	String() string
}

type Statement interface {
	Node
	is_Statement()
}

type Expression interface {
	Node
	is_Expression()
}

type Program struct {
	Statements []Statement
}

// Empty is produced for a stray `;` and never stored in a Program or Block.
type Empty struct{}

func (v Empty) is_Statement() {}

type Let struct {
	Name  Identifier
	Value Expression
}

func (v Let) is_Statement() {}

type Return struct {
	Value Expression
}

func (v Return) is_Statement() {}

type ExpressionStatement struct {
	Expr Expression
}

func (v ExpressionStatement) is_Statement() {}

type Block []Statement

func (v Block) is_Statement() {}

type Identifier struct {
	Name string
	Pos  types.Span
}

func (v Identifier) is_Expression() {}

type Integer int64

func (v Integer) is_Expression() {}

type Boolean bool

func (v Boolean) is_Expression() {}

type Prefix struct {
	Operator string
	Right    Expression
}

func (v Prefix) is_Expression() {}

type Infix struct {
	Left     Expression
	Operator string
	Right    Expression
}

func (v Infix) is_Expression() {}

type If struct {
	Condition   Expression
	Consequence Block
	Alternative *Block
}

func (v If) is_Expression() {}

type Func struct {
	Parameters []Identifier
	Body       Block
}

func (v Func) is_Expression() {}

type Call struct {
	Function  Expression
	Arguments []Expression
}

func (v Call) is_Expression() {}
