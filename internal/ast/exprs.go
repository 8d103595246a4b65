package ast

import "github.com/tinylang/tinylang/internal/lexer"

type NumberExpr struct {
	StartToken *lexer.Token

	Value int64
}

type IdentExpr struct {
	StartToken *lexer.Token

	Value string
}

// AssignExpr keeps its left side as a bare expression: the grammar allows any
// factor in front of '=', and only evaluation decides whether a name can be
// read off the node.
type AssignExpr struct {
	StartToken *lexer.Token

	Left  Expr
	Right Expr
}

type BinaryExpr struct {
	StartToken *lexer.Token

	Left  Expr
	Op    *lexer.Token
	Right Expr
}

type PrintExpr struct {
	StartToken *lexer.Token

	Expr Expr
}

func (NumberExpr) AstNode() {}
func (IdentExpr) AstNode()  {}
func (AssignExpr) AstNode() {}
func (BinaryExpr) AstNode() {}
func (PrintExpr) AstNode()  {}

func (e *NumberExpr) FirstToken() *lexer.Token { return e.StartToken }
func (e *IdentExpr) FirstToken() *lexer.Token  { return e.StartToken }
func (e *AssignExpr) FirstToken() *lexer.Token { return e.StartToken }
func (e *BinaryExpr) FirstToken() *lexer.Token { return e.StartToken }
func (e *PrintExpr) FirstToken() *lexer.Token  { return e.StartToken }

func (NumberExpr) ExprNode() {}
func (IdentExpr) ExprNode()  {}
func (AssignExpr) ExprNode() {}
func (BinaryExpr) ExprNode() {}
func (PrintExpr) ExprNode()  {}
