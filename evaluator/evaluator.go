package evaluator

import (
	"github.com/pontaoski/monkey/ast"
	"github.com/pontaoski/monkey/config"
	"github.com/pontaoski/monkey/errors"
	"github.com/pontaoski/monkey/lexer"
	"github.com/pontaoski/monkey/object"
	"github.com/pontaoski/monkey/parser"
	"github.com/ztrue/tracerr"
)

// Evaluator interprets a parsed program directly. It is not safe for
// concurrent use.
type Evaluator struct {
	settings config.Settings
	depth    int
}

func New(settings config.Settings) *Evaluator {
	return &Evaluator{settings: settings}
}

// Eval evaluates program with the default settings.
func Eval(program ast.Program, env *object.Environment) (object.Value, error) {
	return New(config.Default()).Eval(program, env)
}

// Evaluate parses and evaluates src in a fresh top-level environment.
func Evaluate(src string) (object.Value, error) {
	return New(config.Default()).Evaluate(src)
}

func (e *Evaluator) Evaluate(src string) (object.Value, error) {
	program, err := e.Parse(src)
	if err != nil {
		return nil, err
	}
	return e.Eval(program, object.NewEnvironment(nil))
}

// Parse parses src with the same nesting bound the evaluator enforces.
func (e *Evaluator) Parse(src string) (ast.Program, error) {
	p := parser.NewParser(lexer.New(src))
	p.MaxDepth = e.settings.MaxDepth
	return p.ParseProgram()
}

// Eval runs the statements of program in env, which keeps any top-level
// bindings afterwards. The value of the last statement, or of the first
// top-level return, is the result.
func (e *Evaluator) Eval(program ast.Program, env *object.Environment) (object.Value, error) {
	e.depth = 0
	result, err := e.evalStatements(program.Statements, env)
	if err != nil {
		return nil, tracerr.Wrap(err)
	}
	return unwrapReturn(result), nil
}

func unwrapReturn(v object.Value) object.Value {
	if ret, ok := v.(object.Return); ok {
		return ret.Value
	}
	return v
}

func isReturn(v object.Value) bool {
	return v.Kind() == object.KindReturn
}

func (e *Evaluator) enter() error {
	e.depth++
	if e.depth > e.settings.MaxDepth {
		e.depth--
		return errors.StackOverflow{Depth: e.settings.MaxDepth}
	}
	return nil
}

func (e *Evaluator) leave() {
	e.depth--
}

// evalStatements stops at the first return and hands the wrapped value back
// unchanged so enclosing blocks stop too.
func (e *Evaluator) evalStatements(stmts []ast.Statement, env *object.Environment) (object.Value, error) {
	var result object.Value = object.Null{}

	for _, stmt := range stmts {
		v, err := e.evalStatement(stmt, env)
		if err != nil {
			return nil, err
		}
		if isReturn(v) {
			return v, nil
		}
		result = v
	}

	return result, nil
}

func (e *Evaluator) evalStatement(stmt ast.Statement, env *object.Environment) (object.Value, error) {
	switch stmt := stmt.(type) {
	case ast.ExpressionStatement:
		return e.evalExpression(stmt.Expr, env)
	case ast.Let:
		v, err := e.evalExpression(stmt.Value, env)
		if err != nil || isReturn(v) {
			return v, err
		}
		env.Define(stmt.Name.Name, v)
		return object.Null{}, nil
	case ast.Return:
		v, err := e.evalExpression(stmt.Value, env)
		if err != nil || isReturn(v) {
			return v, err
		}
		return object.Return{Value: v}, nil
	case ast.Block:
		if err := e.enter(); err != nil {
			return nil, err
		}
		defer e.leave()
		return e.evalStatements(stmt, env)
	case ast.Empty:
		return object.Null{}, nil
	}

	panic("unhandled statement")
}

func (e *Evaluator) evalExpression(expr ast.Expression, env *object.Environment) (object.Value, error) {
	if err := e.enter(); err != nil {
		return nil, err
	}
	defer e.leave()

	switch expr := expr.(type) {
	case ast.Integer:
		return object.Integer{Val: int64(expr)}, nil
	case ast.Boolean:
		return object.NativeBool(bool(expr)), nil
	case ast.Identifier:
		v, ok := env.Get(expr.Name)
		if !ok {
			return nil, errors.UnknownIdentifier{Name: expr.Name, Location: expr.Pos}
		}
		return v, nil
	case ast.Prefix:
		right, err := e.evalExpression(expr.Right, env)
		if err != nil || isReturn(right) {
			return right, err
		}
		return evalPrefix(expr.Operator, right)
	case ast.Infix:
		left, err := e.evalExpression(expr.Left, env)
		if err != nil || isReturn(left) {
			return left, err
		}
		right, err := e.evalExpression(expr.Right, env)
		if err != nil || isReturn(right) {
			return right, err
		}
		return evalInfix(expr.Operator, left, right)
	case ast.If:
		return e.evalIf(expr, env)
	case ast.Func:
		return object.Function{Parameters: expr.Parameters, Body: expr.Body, Env: env}, nil
	case ast.Call:
		return e.evalCall(expr, env)
	}

	panic("unhandled expression")
}

func (e *Evaluator) evalIf(expr ast.If, env *object.Environment) (object.Value, error) {
	cond, err := e.evalExpression(expr.Condition, env)
	if err != nil || isReturn(cond) {
		return cond, err
	}

	truthy, err := object.Truthy(cond)
	if err != nil {
		return nil, err
	}

	switch {
	case truthy:
		return e.evalStatements(expr.Consequence, env)
	case expr.Alternative != nil:
		return e.evalStatements(*expr.Alternative, env)
	}
	return object.Null{}, nil
}

// evalCall evaluates the callee and then the arguments left to right in the
// caller's environment. The body runs in a fresh child of the closure's
// environment, never the caller's.
func (e *Evaluator) evalCall(expr ast.Call, env *object.Environment) (object.Value, error) {
	callee, err := e.evalExpression(expr.Function, env)
	if err != nil || isReturn(callee) {
		return callee, err
	}

	args := make([]object.Value, 0, len(expr.Arguments))
	for _, arg := range expr.Arguments {
		v, err := e.evalExpression(arg, env)
		if err != nil || isReturn(v) {
			return v, err
		}
		args = append(args, v)
	}

	fn, ok := callee.(object.Function)
	if !ok {
		return nil, errors.NotAFunction{Value: callee.Inspect()}
	}
	if len(args) != len(fn.Parameters) {
		return nil, errors.ArgumentCount{Want: len(fn.Parameters), Got: len(args)}
	}

	scope := fn.Env.Extend()
	for i, param := range fn.Parameters {
		scope.Define(param.Name, args[i])
	}

	result, err := e.evalStatements(fn.Body, scope)
	if err != nil {
		return nil, err
	}
	return unwrapReturn(result), nil
}
