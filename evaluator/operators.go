package evaluator

import (
	"github.com/pontaoski/monkey/errors"
	"github.com/pontaoski/monkey/object"
)

func evalPrefix(operator string, right object.Value) (object.Value, error) {
	switch operator {
	case "!":
		truthy, err := object.Truthy(right)
		if err != nil {
			return nil, err
		}
		return object.NativeBool(!truthy), nil
	case "-":
		i, ok := right.(object.Integer)
		if !ok {
			return nil, errors.InvalidOperand{Operator: operator, Operand: right.Inspect()}
		}
		return object.Integer{Val: -i.Val}, nil
	}
	return nil, errors.UnknownOperator{Operator: operator, Right: right.Kind().String()}
}

// evalInfix requires both operands to be of the same kind.
func evalInfix(operator string, left, right object.Value) (object.Value, error) {
	if left.Kind() != right.Kind() {
		return nil, errors.TypeMismatch{
			Left:     left.Kind().String(),
			Operator: operator,
			Right:    right.Kind().String(),
		}
	}

	switch left := left.(type) {
	case object.Integer:
		return evalIntegerInfix(operator, left.Val, right.(object.Integer).Val)
	case object.Boolean:
		switch operator {
		case "==":
			return object.NativeBool(left == right), nil
		case "!=":
			return object.NativeBool(left != right), nil
		}
	case object.Null:
		switch operator {
		case "==":
			return object.True, nil
		case "!=":
			return object.False, nil
		}
	}

	return nil, errors.UnknownOperator{
		Left:     left.Kind().String(),
		Operator: operator,
		Right:    right.Kind().String(),
	}
}

// Arithmetic wraps on overflow. Division truncates toward zero.
func evalIntegerInfix(operator string, left, right int64) (object.Value, error) {
	switch operator {
	case "+":
		return object.Integer{Val: left + right}, nil
	case "-":
		return object.Integer{Val: left - right}, nil
	case "*":
		return object.Integer{Val: left * right}, nil
	case "/":
		if right == 0 {
			return nil, errors.DivisionByZero{Dividend: left}
		}
		return object.Integer{Val: left / right}, nil
	case "<":
		return object.NativeBool(left < right), nil
	case ">":
		return object.NativeBool(left > right), nil
	case "==":
		return object.NativeBool(left == right), nil
	case "!=":
		return object.NativeBool(left != right), nil
	}

	return nil, errors.UnknownOperator{
		Left:     object.KindInteger.String(),
		Operator: operator,
		Right:    object.KindInteger.String(),
	}
}
