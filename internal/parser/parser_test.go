package parser

import (
	"errors"
	"testing"

	"github.com/sanity-io/litter"
	"github.com/tinylang/tinylang/internal/ast"
	"github.com/tinylang/tinylang/internal/lexer"
)

func parseProgram(t *testing.T, src string) ast.Program {
	t.Helper()

	tokens, err := lexer.NewLexer([]byte(src)).Tokenize()
	if err != nil {
		t.Fatalf("Tokenize(%q) error: %v", src, err)
	}

	program, err := NewParser(lexer.NewTokenScanner(tokens)).Parse()
	if err != nil {
		t.Fatalf("Parse(%q) error: %v", src, err)
	}
	return program
}

func parseError(t *testing.T, src string) error {
	t.Helper()

	tokens, err := lexer.NewLexer([]byte(src)).Tokenize()
	if err != nil {
		t.Fatalf("Tokenize(%q) error: %v", src, err)
	}

	program, err := NewParser(lexer.NewTokenScanner(tokens)).Parse()
	if err == nil {
		t.Fatalf("Parse(%q): want error, got program %s", src, litter.Sdump(program))
	}
	return err
}

func singleExpr(t *testing.T, src string) ast.Expr {
	t.Helper()

	program := parseProgram(t, src)
	if len(program.Stmts) != 1 {
		t.Fatalf("Parse(%q): want 1 statement, got %d", src, len(program.Stmts))
	}
	return program.Stmts[0].(*ast.ExprStmt).Expr
}

// sameTree compares two sources by their dumped syntax trees.
func sameTree(t *testing.T, a, b string) bool {
	t.Helper()
	return litter.Sdump(parseProgram(t, a)) == litter.Sdump(parseProgram(t, b))
}

func TestParseAssignment(t *testing.T) {
	expr := singleExpr(t, "x = 1")

	assign, ok := expr.(*ast.AssignExpr)
	if !ok {
		t.Fatalf("want *ast.AssignExpr, got %T", expr)
	}

	target, ok := assign.Left.(*ast.IdentExpr)
	if !ok || target.Value != "x" {
		t.Fatalf("want target IdentExpr(x), got %#v", assign.Left)
	}

	number, ok := assign.Right.(*ast.NumberExpr)
	if !ok || number.Value != 1 {
		t.Fatalf("want value NumberExpr(1), got %#v", assign.Right)
	}
}

func TestParseBareFactorStatement(t *testing.T) {
	// A bare statement is a single factor, so a parenthesized expression
	// stands alone while an unparenthesized sum does not (see TestParseErrors).
	expr := singleExpr(t, "(1 + 2)")
	if _, ok := expr.(*ast.BinaryExpr); !ok {
		t.Fatalf("want *ast.BinaryExpr, got %T", expr)
	}

	ident := singleExpr(t, "x")
	if _, ok := ident.(*ast.IdentExpr); !ok {
		t.Fatalf("want *ast.IdentExpr, got %T", ident)
	}
}

func TestParsePrecedence(t *testing.T) {
	if !sameTree(t, "z = 2 + 3 * 4", "z = 2 + (3 * 4)") {
		t.Error("2 + 3 * 4 should bind as 2 + (3 * 4)")
	}
	if sameTree(t, "z = 2 + 3 * 4", "z = (2 + 3) * 4") {
		t.Error("2 + 3 * 4 should not bind as (2 + 3) * 4")
	}

	expr := singleExpr(t, "(2 + 3 * 4)")
	binary := expr.(*ast.BinaryExpr)
	if binary.Op.Kind != lexer.PLUS {
		t.Fatalf("root operator: want PLUS, got %s", binary.Op.Kind)
	}
	right := binary.Right.(*ast.BinaryExpr)
	if right.Op.Kind != lexer.ASTERISK {
		t.Fatalf("right operator: want ASTERISK, got %s", right.Op.Kind)
	}
}

func TestParseLeftAssociativity(t *testing.T) {
	if !sameTree(t, "z = 1 - 2 - 3", "z = (1 - 2) - 3") {
		t.Error("1 - 2 - 3 should bind as (1 - 2) - 3")
	}
	if !sameTree(t, "z = 8 / 4 / 2", "z = (8 / 4) / 2") {
		t.Error("8 / 4 / 2 should bind as (8 / 4) / 2")
	}
}

func TestParseAssignmentNestsAsFactor(t *testing.T) {
	expr := singleExpr(t, "x = (y = 5) + 1")

	outer := expr.(*ast.AssignExpr)
	sum, ok := outer.Right.(*ast.BinaryExpr)
	if !ok {
		t.Fatalf("want BinaryExpr on the right of x, got %T", outer.Right)
	}
	if _, ok := sum.Left.(*ast.AssignExpr); !ok {
		t.Fatalf("want nested AssignExpr for (y = 5), got %T", sum.Left)
	}
}

func TestParseNonIdentifierAssignTargets(t *testing.T) {
	// The grammar accepts any factor in front of '='; the parser must not
	// reject these, evaluation deals with them.
	number := singleExpr(t, "2 = 5").(*ast.AssignExpr)
	if _, ok := number.Left.(*ast.NumberExpr); !ok {
		t.Errorf("2 = 5: want NumberExpr target, got %T", number.Left)
	}

	// Parentheses vanish during parsing, so (x) = 5 targets x itself.
	paren := singleExpr(t, "(x) = 5").(*ast.AssignExpr)
	if target, ok := paren.Left.(*ast.IdentExpr); !ok || target.Value != "x" {
		t.Errorf("(x) = 5: want IdentExpr(x) target, got %#v", paren.Left)
	}

	printTarget := singleExpr(t, "print 1 = 2").(*ast.AssignExpr)
	if _, ok := printTarget.Left.(*ast.PrintExpr); !ok {
		t.Errorf("print 1 = 2: want PrintExpr target, got %T", printTarget.Left)
	}
}

func TestParseParenthesizedAssignment(t *testing.T) {
	// An assignment is valid inside parentheses: standalone, doubly nested,
	// and as an operand with arithmetic continuing after the closing paren.
	standalone := singleExpr(t, "(y = 5)")
	if _, ok := standalone.(*ast.AssignExpr); !ok {
		t.Fatalf("(y = 5): want *ast.AssignExpr, got %T", standalone)
	}

	nested := singleExpr(t, "((y = 5))")
	if _, ok := nested.(*ast.AssignExpr); !ok {
		t.Fatalf("((y = 5)): want *ast.AssignExpr, got %T", nested)
	}

	product := singleExpr(t, "x = (y = 5) * 2").(*ast.AssignExpr)
	binary, ok := product.Right.(*ast.BinaryExpr)
	if !ok {
		t.Fatalf("x = (y = 5) * 2: want BinaryExpr on the right of x, got %T", product.Right)
	}
	if binary.Op.Kind != lexer.ASTERISK {
		t.Fatalf("want ASTERISK, got %s", binary.Op.Kind)
	}
	if _, ok := binary.Left.(*ast.AssignExpr); !ok {
		t.Fatalf("want AssignExpr as left operand, got %T", binary.Left)
	}
}

func TestParseNumberOverflow(t *testing.T) {
	err := parseError(t, "x = 99999999999999999999")

	var invalid *InvalidNumberError
	if !errors.As(err, &invalid) {
		t.Fatalf("want *InvalidNumberError, got %T", err)
	}
	if err.Error() != "invalid number literal: '99999999999999999999'" {
		t.Fatalf("unexpected message: %q", err.Error())
	}
}

func TestParsePrintIsAFactor(t *testing.T) {
	assign := singleExpr(t, "x = 1 + print(2)").(*ast.AssignExpr)

	binary := assign.Right.(*ast.BinaryExpr)
	if _, ok := binary.Right.(*ast.PrintExpr); !ok {
		t.Fatalf("want PrintExpr on the right of +, got %T", binary.Right)
	}
}

func TestParsePrintConsumesOneExpression(t *testing.T) {
	expr := singleExpr(t, "print 2 * 3")

	// print's argument is a full expr, so it swallows 2 * 3 whole.
	print, ok := expr.(*ast.PrintExpr)
	if !ok {
		t.Fatalf("want *ast.PrintExpr, got %T", expr)
	}
	if _, ok := print.Expr.(*ast.BinaryExpr); !ok {
		t.Fatalf("want BinaryExpr argument, got %T", print.Expr)
	}
}

func TestParseEmptyProgram(t *testing.T) {
	program := parseProgram(t, "")
	if len(program.Stmts) != 0 {
		t.Fatalf("want 0 statements, got %d", len(program.Stmts))
	}
}

func TestParseMultipleStatements(t *testing.T) {
	program := parseProgram(t, "a = 1\nb = 2\nprint(a + b)")
	if len(program.Stmts) != 3 {
		t.Fatalf("want 3 statements, got %d", len(program.Stmts))
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		src  string
		want string
	}{
		{"z = x + y *", "unexpected end of input"},
		{"print", "unexpected end of input"},
		{"x = 1 +", "unexpected end of input"},
		{"(1 + 2", "unexpected end of input, expected: 'RPAREN'"},
		{"= 5", "unexpected token: 'ASSIGN'"},
		{"x = 1 + = 2", "unexpected token: 'ASSIGN'"},
		{")", "unexpected token: 'RPAREN'"},
		// A bare statement is a factor: an unparenthesized sum splits at the
		// operator and the operator is never a valid statement start.
		{"1 + 2", "unexpected token: 'PLUS'"},
	}

	for _, tt := range tests {
		err := parseError(t, tt.src)
		if err.Error() != tt.want {
			t.Errorf("Parse(%q) error: want %q, got %q", tt.src, tt.want, err.Error())
		}
	}
}

func TestParseErrorValues(t *testing.T) {
	var unexpected *UnexpectedError
	if err := parseError(t, "x * *"); !errors.As(err, &unexpected) {
		t.Fatalf("want *UnexpectedError, got %T", err)
	} else if unexpected.Unexpected != lexer.ASTERISK {
		t.Fatalf("want unexpected ASTERISK, got %s", unexpected.Unexpected)
	}

	var unexpectedExpected *UnexpectedExpectedError
	if err := parseError(t, "(1 2"); !errors.As(err, &unexpectedExpected) {
		t.Fatalf("want *UnexpectedExpectedError, got %T", err)
	} else if unexpectedExpected.Expected != lexer.RPAREN {
		t.Fatalf("want expected RPAREN, got %s", unexpectedExpected.Expected)
	}
}

func TestParseIdempotence(t *testing.T) {
	sources := []string{
		"a = 10\nb = 20\nc = a + b\nprint(c)",
		"x = 5\ny = 3\nz = (x + y) * 2\nprint(z)",
		"x = (y = 5) + 1",
		"x = 1 + print(2)",
	}

	for _, src := range sources {
		if !sameTree(t, src, src) {
			t.Errorf("parsing %q twice yields different trees", src)
		}
	}
}
