package object

import (
	"fmt"
	"strconv"

	"github.com/pontaoski/monkey/ast"
	"github.com/pontaoski/monkey/errors"
)

// Kind identifies the runtime value category.
type Kind int

const (
	KindInteger Kind = iota
	KindBoolean
	KindNull
	KindReturn
	KindFunction
)

func (k Kind) String() string {
	switch k {
	case KindInteger:
		return "integer"
	case KindBoolean:
		return "boolean"
	case KindNull:
		return "null"
	case KindReturn:
		return "return"
	case KindFunction:
		return "function"
	default:
		return fmt.Sprintf("unknown_kind_%d", int(k))
	}
}

// Value is the shared behaviour for all runtime values.
type Value interface {
	Kind() Kind
	Inspect() string
}

type Integer struct {
	Val int64
}

func (v Integer) Kind() Kind      { return KindInteger }
func (v Integer) Inspect() string { return strconv.FormatInt(v.Val, 10) }

type Boolean struct {
	Val bool
}

func (v Boolean) Kind() Kind      { return KindBoolean }
func (v Boolean) Inspect() string { return strconv.FormatBool(v.Val) }

type Null struct{}

func (Null) Kind() Kind      { return KindNull }
func (Null) Inspect() string { return "null" }

// Return marks a value that is being returned out of enclosing blocks. It never
// escapes a function call or the program.
type Return struct {
	Value Value
}

func (v Return) Kind() Kind      { return KindReturn }
func (v Return) Inspect() string { return v.Value.Inspect() }

// Function is a closure: Env is the environment the literal was evaluated in.
type Function struct {
	Parameters []ast.Identifier
	Body       ast.Block
	Env        *Environment
}

func (v Function) Kind() Kind { return KindFunction }

func (v Function) Inspect() string {
	return ast.Func{Parameters: v.Parameters, Body: v.Body}.String()
}

var (
	True  = Boolean{Val: true}
	False = Boolean{Val: false}
)

func NativeBool(b bool) Boolean {
	if b {
		return True
	}
	return False
}

// Truthy coerces v to a boolean: zero and null are false, other integers true.
func Truthy(v Value) (bool, error) {
	switch v := v.(type) {
	case Integer:
		return v.Val != 0, nil
	case Boolean:
		return v.Val, nil
	case Null:
		return false, nil
	case Return:
		return Truthy(v.Value)
	}
	return false, errors.InvalidCast{Value: v.Inspect(), To: KindBoolean.String()}
}
