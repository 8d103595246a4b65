package main

import (
	"fmt"
	"os"

	"github.com/sanity-io/litter"
	"github.com/tinylang/tinylang/internal/diag"
	"github.com/tinylang/tinylang/internal/interpreter"
	l "github.com/tinylang/tinylang/internal/lexer"
	"github.com/tinylang/tinylang/internal/parser"
)

func main() {
	fileName := os.Args[1]
	fileData, err := os.ReadFile(fileName)
	if err != nil {
		fmt.Println(err)
		return
	}

	eh := diag.NewErrorHandler(os.Stderr)

	lexer := l.NewLexer(fileData)
	tokens, err := lexer.Tokenize()
	if err != nil {
		eh.AddError(err)
		eh.FailNow()
	}
	scanner := l.NewTokenScanner(tokens)

	parser := parser.NewParser(scanner)
	program, err := parser.Parse()
	if err != nil {
		eh.AddError(err)
		eh.FailNow()
	}

	if os.Getenv("TINYLANG_DUMP_AST") != "" {
		litter.Dump(program)
	}

	interp := interpreter.New(os.Stdout)
	if err := interp.Interpret(program); err != nil {
		eh.AddError(err)
		eh.FailNow()
	}
}
