/*
File    : lox/parser/parser.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package parser implements Lox's recursive-descent parser: tokens ->
// []ast.Stmt, with one token of lookahead. Grounded on the teacher's
// parser package shape (a Parser struct driving per-concern parse
// methods split across files) generalized from the teacher's Pratt
// dispatch table to the exact precedence-climbing grammar Lox specifies.
package parser

import (
	"github.com/akashmaji946/lox/ast"
	"github.com/akashmaji946/lox/lexer"
	"github.com/akashmaji946/lox/loxerr"
)

// Parser consumes a token slice produced by the lexer and builds the
// statement list that is the program's AST.
type Parser struct {
	Tokens   []lexer.Token
	Current  int
	Reporter *loxerr.Reporter
}

// NewParser creates a Parser over tokens, reporting errors through r.
func NewParser(tokens []lexer.Token, r *loxerr.Reporter) *Parser {
	return &Parser{Tokens: tokens, Reporter: r}
}

// Parse runs the parser to completion, returning every top-level
// declaration it could recover to. A parse error in one declaration does
// not prevent later declarations in the file from being parsed and
// reported too; callers should check p.Reporter.HadError before
// interpreting the result.
func (p *Parser) Parse() []ast.Stmt {
	var statements []ast.Stmt
	for !p.isAtEnd() {
		stmt, err := p.declaration()
		if err != nil {
			continue
		}
		statements = append(statements, stmt)
	}
	return statements
}

// --- token cursor helpers ---

func (p *Parser) peek() lexer.Token {
	return p.Tokens[p.Current]
}

func (p *Parser) previous() lexer.Token {
	return p.Tokens[p.Current-1]
}

func (p *Parser) isAtEnd() bool {
	return p.peek().Type == lexer.EOF_TYPE
}

func (p *Parser) advance() lexer.Token {
	if !p.isAtEnd() {
		p.Current++
	}
	return p.previous()
}

func (p *Parser) check(t lexer.TokenType) bool {
	if p.isAtEnd() {
		return false
	}
	return p.peek().Type == t
}

// match advances and returns true if the current token has one of the
// given types.
func (p *Parser) match(types ...lexer.TokenType) bool {
	for _, t := range types {
		if p.check(t) {
			p.advance()
			return true
		}
	}
	return false
}

// consume advances past an expected token type, or reports message at the
// current token and raises a ParseError.
func (p *Parser) consume(t lexer.TokenType, message string) (lexer.Token, error) {
	if p.check(t) {
		return p.advance(), nil
	}
	return lexer.Token{}, p.errorAt(p.peek(), message)
}

// errorAt reports message through the diagnostic sink and returns a
// ParseError for the caller to propagate up to the nearest declaration
// boundary.
func (p *Parser) errorAt(token lexer.Token, message string) error {
	p.Reporter.TokenError(token, message)
	return &loxerr.ParseError{}
}

// synchronize discards tokens after a parse error until it reaches a
// likely statement boundary: past a consumed ';', or just before a token
// that begins a new top-level construct.
func (p *Parser) synchronize() {
	p.advance()
	for !p.isAtEnd() {
		if p.previous().Type == lexer.SEMICOLON {
			return
		}
		switch p.peek().Type {
		case lexer.CLASS_KEY, lexer.FUN_KEY, lexer.VAR_KEY, lexer.FOR_KEY,
			lexer.IF_KEY, lexer.WHILE_KEY, lexer.PRINT_KEY, lexer.RETURN_KEY:
			return
		}
		p.advance()
	}
}
