package parser

import (
	"fmt"
	"strconv"

	"slices"

	"github.com/tinylang/tinylang/internal/ast"
	"github.com/tinylang/tinylang/internal/lexer"
)

type UnexpectedExpectedError struct {
	Unexpected lexer.TokenKind
	Expected   lexer.TokenKind
}

func (e *UnexpectedExpectedError) Error() string {
	if e.Unexpected == lexer.EOF {
		return fmt.Sprintf("unexpected end of input, expected: '%s'", e.Expected.String())
	}

	return fmt.Sprintf("unexpected token: '%s', expected: '%s'", e.Unexpected.String(), e.Expected.String())
}

type UnexpectedError struct {
	Unexpected lexer.TokenKind
}

func (e *UnexpectedError) Error() string {
	if e.Unexpected == lexer.EOF {
		return "unexpected end of input"
	}

	return fmt.Sprintf("unexpected token: '%s'", e.Unexpected.String())
}

type InvalidNumberError struct {
	Value string
}

func (e *InvalidNumberError) Error() string {
	return fmt.Sprintf("invalid number literal: '%s'", e.Value)
}

type Parser struct {
	scanner lexer.TokenScanner

	curr *lexer.Token
}

func NewParser(scanner lexer.TokenScanner) *Parser {
	return &Parser{
		scanner: scanner,
		curr:    scanner.Read(),
	}
}

// Parse builds the whole program before anything runs. The first malformed
// token aborts parsing with no partial program returned.
func (p *Parser) Parse() (ast.Program, error) {
	stmts := make([]ast.Stmt, 0)
	for p.curr.Kind != lexer.EOF {
		stmt, err := p.parseStmt()
		if err != nil {
			return ast.Program{}, err
		}

		stmts = append(stmts, stmt)
	}

	return ast.Program{
		Stmts: stmts,
	}, nil
}

func (p *Parser) parseStmt() (ast.Stmt, error) {
	expr, err := p.parseAssignExpr()
	if err != nil {
		return nil, err
	}

	return &ast.ExprStmt{
		Expr: expr,
	}, nil
}

// parseAssignExpr parses a single factor and, when an '=' follows, the value
// expression. The factor in front of '=' is not required to be an identifier
// here; evaluation reads the target name off the node.
func (p *Parser) parseAssignExpr() (ast.Expr, error) {
	left, err := p.parseFactor()
	if err != nil {
		return nil, err
	}

	if p.curr.Kind != lexer.ASSIGN {
		return left, nil
	}
	p.read()

	value, err := p.parseExpr()
	if err != nil {
		return nil, err
	}

	return &ast.AssignExpr{
		StartToken: left.FirstToken(),

		Left:  left,
		Right: value,
	}, nil
}

// parseAssignOrExpr parses either a nested assignment or a plain expression.
// Assignments nest as expressions wherever a parenthesized factor is valid:
// the leading factor becomes the assignment target when '=' follows, and
// otherwise continues as the leftmost operand of the surrounding expression.
func (p *Parser) parseAssignOrExpr() (ast.Expr, error) {
	left, err := p.parseFactor()
	if err != nil {
		return nil, err
	}

	if p.curr.Kind != lexer.ASSIGN {
		return p.parseExprFrom(left)
	}
	p.read()

	value, err := p.parseExpr()
	if err != nil {
		return nil, err
	}

	return &ast.AssignExpr{
		StartToken: left.FirstToken(),

		Left:  left,
		Right: value,
	}, nil
}

func (p *Parser) parseExpr() (ast.Expr, error) {
	left, err := p.parseFactor()
	if err != nil {
		return nil, err
	}

	return p.parseExprFrom(left)
}

func (p *Parser) parseExprFrom(left ast.Expr) (ast.Expr, error) {
	left, err := p.parseTermFrom(left)
	if err != nil {
		return nil, err
	}

	for p.isCurrAny(lexer.PLUS, lexer.MINUS) {
		op := p.curr
		p.read()

		right, err := p.parseTerm()
		if err != nil {
			return nil, err
		}

		left = &ast.BinaryExpr{
			StartToken: left.FirstToken(),

			Left:  left,
			Op:    op,
			Right: right,
		}
	}

	return left, nil
}

func (p *Parser) parseTerm() (ast.Expr, error) {
	left, err := p.parseFactor()
	if err != nil {
		return nil, err
	}

	return p.parseTermFrom(left)
}

func (p *Parser) parseTermFrom(left ast.Expr) (ast.Expr, error) {
	for p.isCurrAny(lexer.ASTERISK, lexer.SLASH) {
		op := p.curr
		p.read()

		right, err := p.parseFactor()
		if err != nil {
			return nil, err
		}

		left = &ast.BinaryExpr{
			StartToken: left.FirstToken(),

			Left:  left,
			Op:    op,
			Right: right,
		}
	}

	return left, nil
}

func (p *Parser) parseFactor() (ast.Expr, error) {
	switch p.curr.Kind {
	case lexer.NUMBER:
		return p.parseNumberExpr()
	case lexer.IDENT:
		return p.parseIdentExpr(), nil
	case lexer.LPAREN:
		return p.parseParenExpr()
	case lexer.PRINT:
		return p.parsePrintExpr()
	}

	return nil, &UnexpectedError{
		Unexpected: p.curr.Kind,
	}
}

func (p *Parser) parseNumberExpr() (*ast.NumberExpr, error) {
	startToken := p.curr

	// The lexer only emits digit runs here, so the sole failure mode is an
	// int64 overflow.
	number, err := strconv.ParseInt(p.curr.Value, 10, 64)
	if err != nil {
		return nil, &InvalidNumberError{
			Value: p.curr.Value,
		}
	}

	p.read()

	return &ast.NumberExpr{
		StartToken: startToken,

		Value: number,
	}, nil
}

func (p *Parser) parseIdentExpr() *ast.IdentExpr {
	startToken := p.curr
	ident := p.curr.Value
	p.read()

	return &ast.IdentExpr{
		StartToken: startToken,

		Value: ident,
	}
}

func (p *Parser) parseParenExpr() (ast.Expr, error) {
	p.read()

	expr, err := p.parseAssignOrExpr()
	if err != nil {
		return nil, err
	}

	if err := p.expect(lexer.RPAREN); err != nil {
		return nil, err
	}
	p.read()

	return expr, nil
}

// parsePrintExpr parses print as a factor consuming exactly one expression,
// so print is usable anywhere a factor is, nested arithmetic included.
func (p *Parser) parsePrintExpr() (ast.Expr, error) {
	startToken := p.curr
	p.read()

	expr, err := p.parseExpr()
	if err != nil {
		return nil, err
	}

	return &ast.PrintExpr{
		StartToken: startToken,

		Expr: expr,
	}, nil
}

func (p *Parser) read() *lexer.Token {
	p.curr = p.scanner.Read()
	return p.curr
}

func (p *Parser) expect(kind lexer.TokenKind) error {
	if p.curr.Kind != kind {
		return &UnexpectedExpectedError{
			Unexpected: p.curr.Kind,
			Expected:   kind,
		}
	}

	return nil
}

func (p *Parser) isCurrAny(kinds ...lexer.TokenKind) bool {
	return slices.Contains(kinds, p.curr.Kind)
}
