package ast

import (
	"strconv"
	"strings"
)

// The printed form re-parses to a tree that prints identically.

func (p Program) String() string {
	lines := make([]string, 0, len(p.Statements))
	for _, stmt := range p.Statements {
		lines = append(lines, stmt.String())
	}
	return strings.Join(lines, "\n")
}

func (v Empty) String() string {
	return ";"
}

func (v Let) String() string {
	return "let " + v.Name.String() + " = " + v.Value.String() + ";"
}

func (v Return) String() string {
	return "return " + v.Value.String() + ";"
}

func (v ExpressionStatement) String() string {
	return v.Expr.String() + ";"
}

func (v Block) String() string {
	var b strings.Builder
	b.WriteString("{ ")
	for _, stmt := range v {
		b.WriteString(stmt.String())
		b.WriteString(" ")
	}
	b.WriteString("}")
	return b.String()
}

func (v Identifier) String() string {
	return v.Name
}

func (v Integer) String() string {
	return strconv.FormatInt(int64(v), 10)
}

func (v Boolean) String() string {
	return strconv.FormatBool(bool(v))
}

func (v Prefix) String() string {
	return "(" + v.Operator + v.Right.String() + ")"
}

func (v Infix) String() string {
	return "(" + v.Left.String() + " " + v.Operator + " " + v.Right.String() + ")"
}

func (v If) String() string {
	s := "if (" + v.Condition.String() + ") " + v.Consequence.String()
	if v.Alternative != nil {
		s += " else " + v.Alternative.String()
	}
	return s
}

func (v Func) String() string {
	params := make([]string, 0, len(v.Parameters))
	for _, param := range v.Parameters {
		params = append(params, param.String())
	}
	return "fn(" + strings.Join(params, ", ") + ") " + v.Body.String()
}

func (v Call) String() string {
	args := make([]string, 0, len(v.Arguments))
	for _, arg := range v.Arguments {
		args = append(args, arg.String())
	}
	return v.Function.String() + "(" + strings.Join(args, ", ") + ")"
}
