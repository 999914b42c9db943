/*
File    : lox/eval/eval_expressions.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package eval

import (
	"github.com/akashmaji946/lox/ast"
	"github.com/akashmaji946/lox/function"
	"github.com/akashmaji946/lox/lexer"
	"github.com/akashmaji946/lox/loxerr"
	"github.com/akashmaji946/lox/objects"
	"github.com/akashmaji946/lox/std"
)

func (e *Evaluator) VisitLiteralExpr(expr *ast.Literal) (interface{}, error) {
	switch v := expr.Value.(type) {
	case nil:
		return objects.NilValue, nil
	case bool:
		return objects.BoolOf(v), nil
	case float64:
		return &objects.Number{Value: v}, nil
	case string:
		return &objects.String{Value: v}, nil
	default:
		return objects.NilValue, nil
	}
}

func (e *Evaluator) VisitGroupingExpr(expr *ast.Grouping) (interface{}, error) {
	return e.evaluate(expr.Expression)
}

func (e *Evaluator) VisitUnaryExpr(expr *ast.Unary) (interface{}, error) {
	right, err := e.evaluate(expr.Right)
	if err != nil {
		return nil, err
	}

	switch expr.Operator.Type {
	case lexer.MINUS:
		num, ok := right.(*objects.Number)
		if !ok {
			return nil, loxerr.NewRuntimeError(expr.Operator, "Operand must be a number.")
		}
		return &objects.Number{Value: -num.Value}, nil
	case lexer.BANG:
		return objects.BoolOf(!isTruthy(right)), nil
	}
	return nil, loxerr.NewRuntimeError(expr.Operator, "Unknown unary operator.")
}

func (e *Evaluator) VisitBinaryExpr(expr *ast.Binary) (interface{}, error) {
	left, err := e.evaluate(expr.Left)
	if err != nil {
		return nil, err
	}
	right, err := e.evaluate(expr.Right)
	if err != nil {
		return nil, err
	}

	switch expr.Operator.Type {
	case lexer.PLUS:
		if ln, ok := left.(*objects.Number); ok {
			if rn, ok := right.(*objects.Number); ok {
				return &objects.Number{Value: ln.Value + rn.Value}, nil
			}
		}
		if ls, ok := left.(*objects.String); ok {
			if rs, ok := right.(*objects.String); ok {
				return &objects.String{Value: ls.Value + rs.Value}, nil
			}
		}
		// The binary expression's own operator token is the error site —
		// not some interpreter-level "current operator" field.
		return nil, loxerr.NewRuntimeError(expr.Operator, "Operands must be two numbers or two strings.")
	case lexer.MINUS:
		ln, rn, err := numberOperands(expr.Operator, left, right)
		if err != nil {
			return nil, err
		}
		return &objects.Number{Value: ln - rn}, nil
	case lexer.STAR:
		ln, rn, err := numberOperands(expr.Operator, left, right)
		if err != nil {
			return nil, err
		}
		return &objects.Number{Value: ln * rn}, nil
	case lexer.SLASH:
		ln, rn, err := numberOperands(expr.Operator, left, right)
		if err != nil {
			return nil, err
		}
		return &objects.Number{Value: ln / rn}, nil
	case lexer.GREATER:
		ln, rn, err := numberOperands(expr.Operator, left, right)
		if err != nil {
			return nil, err
		}
		return objects.BoolOf(ln > rn), nil
	case lexer.GREATER_EQUAL:
		ln, rn, err := numberOperands(expr.Operator, left, right)
		if err != nil {
			return nil, err
		}
		return objects.BoolOf(ln >= rn), nil
	case lexer.LESS:
		ln, rn, err := numberOperands(expr.Operator, left, right)
		if err != nil {
			return nil, err
		}
		return objects.BoolOf(ln < rn), nil
	case lexer.LESS_EQUAL:
		ln, rn, err := numberOperands(expr.Operator, left, right)
		if err != nil {
			return nil, err
		}
		return objects.BoolOf(ln <= rn), nil
	case lexer.BANG_EQUAL:
		return objects.BoolOf(!isEqual(left, right)), nil
	case lexer.EQUAL_EQUAL:
		return objects.BoolOf(isEqual(left, right)), nil
	}
	return nil, loxerr.NewRuntimeError(expr.Operator, "Unknown binary operator.")
}

func numberOperands(operator lexer.Token, left, right objects.LoxObject) (float64, float64, error) {
	ln, lok := left.(*objects.Number)
	rn, rok := right.(*objects.Number)
	if !lok || !rok {
		return 0, 0, loxerr.NewRuntimeError(operator, "Operands must be numbers.")
	}
	return ln.Value, rn.Value, nil
}

func (e *Evaluator) VisitLogicalExpr(expr *ast.Logical) (interface{}, error) {
	left, err := e.evaluate(expr.Left)
	if err != nil {
		return nil, err
	}

	if expr.Operator.Type == lexer.OR_KEY {
		if isTruthy(left) {
			return left, nil
		}
	} else {
		if !isTruthy(left) {
			return left, nil
		}
	}
	return e.evaluate(expr.Right)
}

func (e *Evaluator) VisitVariableExpr(expr *ast.Variable) (interface{}, error) {
	return e.lookUpVariable(expr.Name, expr)
}

func (e *Evaluator) lookUpVariable(name lexer.Token, expr ast.Expr) (objects.LoxObject, error) {
	if distance, ok := e.Locals[expr]; ok {
		return e.Env.GetAt(distance, name.Lexeme), nil
	}
	value, err := e.Globals.Get(name.Lexeme)
	if err != nil {
		return nil, loxerr.NewRuntimeError(name, "%s", err.Error())
	}
	return value, nil
}

func (e *Evaluator) VisitAssignExpr(expr *ast.Assign) (interface{}, error) {
	value, err := e.evaluate(expr.Value)
	if err != nil {
		return nil, err
	}

	if distance, ok := e.Locals[expr]; ok {
		e.Env.AssignAt(distance, expr.Name.Lexeme, value)
	} else if err := e.Globals.Assign(expr.Name.Lexeme, value); err != nil {
		return nil, loxerr.NewRuntimeError(expr.Name, "%s", err.Error())
	}
	// Unlike a naive transliteration that evaluates an assignment purely
	// for effect, this returns the assigned value so `print a = 2;` and
	// `var b = (a = 2);` both observe 2, matching an expression-statement's
	// own evaluated value.
	return value, nil
}

func (e *Evaluator) VisitCallExpr(expr *ast.Call) (interface{}, error) {
	callee, err := e.evaluate(expr.Callee)
	if err != nil {
		return nil, err
	}

	args := make([]objects.LoxObject, 0, len(expr.Arguments))
	for _, argExpr := range expr.Arguments {
		arg, err := e.evaluate(argExpr)
		if err != nil {
			return nil, err
		}
		args = append(args, arg)
	}

	callable, ok := callee.(objects.Callable)
	if !ok {
		return nil, loxerr.NewRuntimeError(expr.Paren, "Can only call functions and classes.")
	}
	if len(args) != callable.Arity() {
		return nil, loxerr.NewRuntimeError(expr.Paren, "Expected %d arguments but got %d.", callable.Arity(), len(args))
	}

	switch fn := callee.(type) {
	case *std.NativeFunction:
		return fn.Call(args)
	case *function.Function:
		return e.callFunction(fn, args)
	case *objects.Class:
		return e.instantiate(fn, args)
	default:
		return nil, loxerr.NewRuntimeError(expr.Paren, "Can only call functions and classes.")
	}
}

func (e *Evaluator) VisitGetExpr(expr *ast.Get) (interface{}, error) {
	object, err := e.evaluate(expr.Object)
	if err != nil {
		return nil, err
	}

	instance, ok := object.(*objects.Instance)
	if !ok {
		return nil, loxerr.NewRuntimeError(expr.Name, "Only instances have properties.")
	}
	value, ok := instance.Get(expr.Name.Lexeme)
	if !ok {
		return nil, loxerr.NewRuntimeError(expr.Name, "Undefined property '%s'.", expr.Name.Lexeme)
	}
	return value, nil
}

func (e *Evaluator) VisitSetExpr(expr *ast.Set) (interface{}, error) {
	object, err := e.evaluate(expr.Object)
	if err != nil {
		return nil, err
	}

	instance, ok := object.(*objects.Instance)
	if !ok {
		return nil, loxerr.NewRuntimeError(expr.Name, "Only instances have fields.")
	}

	value, err := e.evaluate(expr.Value)
	if err != nil {
		return nil, err
	}
	instance.Set(expr.Name.Lexeme, value)
	return value, nil
}

func (e *Evaluator) VisitThisExpr(expr *ast.This) (interface{}, error) {
	return e.lookUpVariable(expr.Keyword, expr)
}
