package ast

import "github.com/tinylang/tinylang/internal/lexer"

// ExprStmt is the only statement form: a top-level expression whose value is
// discarded unless it prints or assigns along the way.
type ExprStmt struct {
	Expr Expr
}

func (e *ExprStmt) AstNode()                 {}
func (e *ExprStmt) FirstToken() *lexer.Token { return e.Expr.FirstToken() }
func (e *ExprStmt) StmtNode()                {}
