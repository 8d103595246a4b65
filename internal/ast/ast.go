package ast

import "github.com/tinylang/tinylang/internal/lexer"

type AstNode interface {
	AstNode()
	FirstToken() *lexer.Token
}

// A Program is an ordered sequence of top-level statements. Statements run
// strictly in source order.
type Program struct {
	Stmts []Stmt
}

type Stmt interface {
	AstNode
	StmtNode()
}

type Expr interface {
	AstNode
	ExprNode()
}
