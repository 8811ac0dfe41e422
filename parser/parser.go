/*
File    : parl/parser/parser.go
Package : parser

Package parser implements a hand-written recursive-descent parser for
PArL (§4.2). It is LL with one token of lookahead, and two for the
"identifier '=' " versus general-expression disambiguation statement
dispatch requires. Binary expressions are parsed by precedence
climbing over the ladder in §4.2 rather than go-mix's Pratt-style
UnaryFuncs/BinaryFuncs maps, since PArL's precedence levels are fixed
and small enough that one function per level reads more directly as
the grammar in §4.2 is written.

The parser halts at the first ParseError (§4.2 Non-requirements): no
error recovery is attempted, and Parse returns as soon as one is
produced.
*/
package parser

import (
	"github.com/padlang/parl/ast"
	"github.com/padlang/parl/lexer"
)

// Trace, when non-nil, is invoked on entry to each grammar production
// the parser recognizes, naming the production and the token it is
// looking at. This is the external substitute for original_source's
// inline "[DEBUG] Parsing ..." prints (see SPEC_FULL.md); nil by
// default and therefore free unless a caller such as cmd/parlc --trace
// sets it.
type Trace func(rule string, tok lexer.Token)

// Parser consumes a token sequence produced by lexer.Tokenize and
// builds a single ast.Program, or fails with a *ParseError. It borrows
// the token slice (read-only) and owns every AST node it builds.
type Parser struct {
	tokens []lexer.Token
	pos    int

	Trace Trace
}

// New creates a Parser over tokens. tokens must end with an Eof token,
// as lexer.Tokenize guarantees.
func New(tokens []lexer.Token) *Parser {
	return &Parser{tokens: tokens}
}

// Parse parses tokens as a PArL program (§6: parse(tokens) → Program |
// ParseError).
func Parse(tokens []lexer.Token) (*ast.Program, *ParseError) {
	return New(tokens).Parse()
}

func (p *Parser) trace(rule string) {
	if p.Trace != nil {
		p.Trace(rule, p.cur())
	}
}

func (p *Parser) cur() lexer.Token {
	if p.pos < len(p.tokens) {
		return p.tokens[p.pos]
	}
	return p.tokens[len(p.tokens)-1] // Eof
}

func (p *Parser) peekAt(offset int) lexer.Token {
	i := p.pos + offset
	if i >= len(p.tokens) {
		return p.tokens[len(p.tokens)-1]
	}
	return p.tokens[i]
}

func (p *Parser) advance() lexer.Token {
	tok := p.cur()
	if p.pos < len(p.tokens)-1 {
		p.pos++
	}
	return tok
}

// expectLexeme consumes the current token if its lexeme matches want,
// else returns a *ParseError naming want as the expected construct.
func (p *Parser) expectLexeme(want string) (lexer.Token, *ParseError) {
	tok := p.cur()
	if tok.Lexeme == want {
		return p.advance(), nil
	}
	return lexer.Token{}, &ParseError{Expected: want, Got: tok.Lexeme, Line: tok.Line}
}

// expectKind consumes the current token if its Kind matches want, else
// returns a *ParseError naming description as the expected construct.
func (p *Parser) expectKind(want lexer.Kind, description string) (lexer.Token, *ParseError) {
	tok := p.cur()
	if tok.Kind == want {
		return p.advance(), nil
	}
	return lexer.Token{}, &ParseError{Expected: description, Got: tok.Lexeme, Line: tok.Line}
}

// parseType consumes one of the four type keywords (§4.2 type).
func (p *Parser) parseType() (ast.TypeTag, *ParseError) {
	tok := p.cur()
	switch tok.Lexeme {
	case "int", "float", "bool", "colour":
		p.advance()
		return ast.TypeTag(tok.Lexeme), nil
	default:
		return "", &ParseError{Expected: "a type (int, float, bool, colour)", Got: tok.Lexeme, Line: tok.Line}
	}
}
