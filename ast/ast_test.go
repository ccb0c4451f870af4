package ast

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestString(t *testing.T) {
	alt := Block{Return{Value: Integer(0)}}
	program := Program{
		Statements: []Statement{
			Let{Name: Identifier{Name: "myVar"}, Value: Identifier{Name: "anotherVar"}},
			ExpressionStatement{Expr: If{
				Condition:   Prefix{Operator: "!", Right: Boolean(false)},
				Consequence: Block{ExpressionStatement{Expr: Call{
					Function:  Func{Parameters: []Identifier{{Name: "a"}, {Name: "b"}}, Body: Block{}},
					Arguments: []Expression{Integer(1), Infix{Left: Integer(2), Operator: "*", Right: Integer(3)}},
				}}},
				Alternative: &alt,
			}},
			Block{},
		},
	}

	require.Equal(t, "let myVar = anotherVar;\n"+
		"if ((!false)) { fn(a, b) { }(1, (2 * 3)); } else { return 0; };\n"+
		"{ }", program.String())
}
