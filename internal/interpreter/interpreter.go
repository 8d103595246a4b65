package interpreter

import (
	"fmt"
	"io"

	"github.com/tinylang/tinylang/internal/ast"
	"github.com/tinylang/tinylang/internal/lexer"
)

type NameError struct {
	Name string
}

func (e *NameError) Error() string {
	return fmt.Sprintf("variable '%s' is not defined", e.Name)
}

type DivisionByZeroError struct{}

func (e *DivisionByZeroError) Error() string {
	return "division by zero"
}

// Interpreter walks one program with one private variable environment.
// Running several programs concurrently takes one Interpreter each.
type Interpreter struct {
	variables map[string]Value

	out io.Writer
}

func New(out io.Writer) *Interpreter {
	return &Interpreter{
		variables: make(map[string]Value),

		out: out,
	}
}

// Interpret evaluates statements strictly in order. The first failing
// statement aborts the rest; assignments and output that already happened
// stay in place.
func (i *Interpreter) Interpret(program ast.Program) error {
	for _, stmt := range program.Stmts {
		if err := i.evalStmt(stmt); err != nil {
			return err
		}
	}

	return nil
}

func (i *Interpreter) evalStmt(stmt ast.Stmt) error {
	switch s := stmt.(type) {
	case *ast.ExprStmt:
		_, err := i.evalExpr(s.Expr)
		return err
	}

	panic(fmt.Sprintf("evalStmt: received unknown statement type: %T", stmt))
}

func (i *Interpreter) evalExpr(expr ast.Expr) (Value, error) {
	switch e := expr.(type) {
	case *ast.NumberExpr:
		return IntValue(e.Value), nil

	case *ast.IdentExpr:
		value, ok := i.variables[e.Value]
		if !ok {
			return Value{}, &NameError{
				Name: e.Value,
			}
		}
		return value, nil

	case *ast.AssignExpr:
		return i.evalAssignExpr(e)

	case *ast.BinaryExpr:
		return i.evalBinaryExpr(e)

	case *ast.PrintExpr:
		value, err := i.evalExpr(e.Expr)
		if err != nil {
			return Value{}, err
		}

		fmt.Fprintln(i.out, value.String())
		return value, nil
	}

	panic(fmt.Sprintf("evalExpr: received unknown expression type: %T", expr))
}

func (i *Interpreter) evalAssignExpr(expr *ast.AssignExpr) (Value, error) {
	name := assignTargetName(expr.Left)

	value, err := i.evalExpr(expr.Right)
	if err != nil {
		return Value{}, err
	}

	i.variables[name] = value
	return value, nil
}

// assignTargetName reads a name off the left side of an assignment. The
// grammar accepts any factor there; only nodes carrying their own literal
// text yield a name, anything else is a defect rather than a user error.
func assignTargetName(target ast.Expr) string {
	switch t := target.(type) {
	case *ast.IdentExpr:
		return t.Value
	case *ast.NumberExpr:
		return t.StartToken.Value
	}

	panic(fmt.Sprintf("assignTargetName: cannot read a name from %T", target))
}

func (i *Interpreter) evalBinaryExpr(expr *ast.BinaryExpr) (Value, error) {
	left, err := i.evalExpr(expr.Left)
	if err != nil {
		return Value{}, err
	}

	right, err := i.evalExpr(expr.Right)
	if err != nil {
		return Value{}, err
	}

	switch expr.Op.Kind {
	case lexer.PLUS:
		return left.Add(right), nil
	case lexer.MINUS:
		return left.Sub(right), nil
	case lexer.ASTERISK:
		return left.Mul(right), nil
	case lexer.SLASH:
		if right.IsZero() {
			return Value{}, &DivisionByZeroError{}
		}
		return left.Div(right), nil
	}

	panic(fmt.Sprintf("evalBinaryExpr: received unknown operator: %s", expr.Op.Kind))
}
