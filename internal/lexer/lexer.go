package lexer

import (
	"fmt"
)

type LexerError struct {
	Message string
}

func newUnexpectedError(unexpected byte) *LexerError {
	return &LexerError{
		Message: fmt.Sprintf("unexpected character: '%s'", string(unexpected)),
	}
}

func (e *LexerError) Error() string {
	return e.Message
}

type Lexer struct {
	buf []byte
	pos int
}

func NewLexer(buf []byte) *Lexer {
	return &Lexer{
		buf: buf,
		pos: 0,
	}
}

// Tokenize scans the whole buffer in one pass. The first byte that does not
// start a number, an identifier, whitespace or punctuation aborts the scan
// with no tokens returned.
func (l *Lexer) Tokenize() ([]Token, error) {
	tokens := make([]Token, 0)

	for l.hasChars() {
		switch {
		case l.isCurrSkippable():
			break

		case l.isCurrDigit():
			tokens = append(tokens, l.processNumber())
			break

		case l.isCurrIdentifier():
			tokens = append(tokens, l.processIdentifier())
			break

		case l.isCurrPunctuation():
			tokens = append(tokens, l.processPunctuation())
			break

		default:
			return nil, newUnexpectedError(l.read())
		}

		l.advance()
	}

	tokens = append(tokens, Token{
		Kind:  EOF,
		Value: EOF.String(),
	})

	return tokens, nil
}

func (l *Lexer) isCurrIdentifier() bool {
	return (l.read() >= 'a' && l.read() <= 'z') || (l.read() >= 'A' && l.read() <= 'Z')
}

func (l *Lexer) isCurrDigit() bool {
	return l.read() >= '0' && l.read() <= '9'
}

func (l *Lexer) isCurrPunctuation() bool {
	switch l.read() {
	case '+', '-', '*', '/', '=', '(', ')':
		return true
	}
	return false
}

func (l *Lexer) isCurrSkippable() bool {
	switch l.read() {
	case ' ', '\t', '\n', '\r':
		return true
	}

	return false
}

func (l *Lexer) processIdentifier() Token {
	identifierBuf := make([]byte, 0)
	identifierBuf = append(identifierBuf, l.read())
	l.advance()

	for l.hasChars() {
		if !l.isCurrIdentifier() && !l.isCurrDigit() {
			l.unread()
			break
		}

		identifierBuf = append(identifierBuf, l.read())
		l.advance()
	}
	identifier := string(identifierBuf)

	switch identifier {
	case "print":
		return Token{
			Kind:  PRINT,
			Value: identifier,
		}
	}

	return Token{
		Kind:  IDENT,
		Value: identifier,
	}
}

func (l *Lexer) processNumber() Token {
	numberBuf := make([]byte, 0)
	numberBuf = append(numberBuf, l.read())
	l.advance()

	for l.hasChars() {
		if !l.isCurrDigit() {
			l.unread()
			break
		}

		numberBuf = append(numberBuf, l.read())
		l.advance()
	}

	return Token{
		Kind:  NUMBER,
		Value: string(numberBuf),
	}
}

func (l *Lexer) processPunctuation() Token {
	switch l.read() {
	case '+':
		return Token{
			Kind:  PLUS,
			Value: "+",
		}
	case '-':
		return Token{
			Kind:  MINUS,
			Value: "-",
		}
	case '*':
		return Token{
			Kind:  ASTERISK,
			Value: "*",
		}
	case '/':
		return Token{
			Kind:  SLASH,
			Value: "/",
		}
	case '=':
		return Token{
			Kind:  ASSIGN,
			Value: "=",
		}
	case '(':
		return Token{
			Kind:  LPAREN,
			Value: "(",
		}
	case ')':
		return Token{
			Kind:  RPAREN,
			Value: ")",
		}
	}

	panic("unreachable")
}

func (l *Lexer) hasChars() bool {
	return l.pos < len(l.buf)
}

func (l *Lexer) advance()   { l.pos++ }
func (l *Lexer) read() byte { return l.buf[l.pos] }
func (l *Lexer) unread()    { l.pos-- }
