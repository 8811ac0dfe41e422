/*
File    : parl/parser/expressions.go
Package : parser

Expression grammar, precedence lowest to highest (§4.2):

	1. as cast                - left-associative
	2. or                     - left-associative
	3. and                    - left-associative
	4. ==, !=                 - left-associative
	5. <, <=, >, >=           - left-associative
	6. +, -                   - left-associative
	7. *, /                   - left-associative
	8. unary -, not           - right-associative prefix
	9. primary

Each level above 8 is one function that parses the level below it, then
loops consuming same-precedence operators left-associatively - the
precedence-climbing shape the design notes explicitly allow in place of
a Pratt table (go-mix's parser uses a Pratt table; PArL's ladder is
short and fixed, so one function per level reads as directly as §4.2's
grammar listing).
*/
package parser

import (
	"github.com/padlang/parl/ast"
	"github.com/padlang/parl/lexer"
)

func (p *Parser) parseExpression() (ast.Expr, *ParseError) {
	return p.parseCast()
}

func (p *Parser) parseCast() (ast.Expr, *ParseError) {
	left, err := p.parseOr()
	if err != nil {
		return nil, err
	}
	for p.cur().Lexeme == "as" {
		kw := p.advance()
		typ, err := p.parseType()
		if err != nil {
			return nil, err
		}
		left = &ast.Cast{Position: ast.Pos(kw.Line, kw.Column), Expression: left, TargetType: typ}
	}
	return left, nil
}

func (p *Parser) parseOr() (ast.Expr, *ParseError) {
	left, err := p.parseAnd()
	if err != nil {
		return nil, err
	}
	for p.cur().Lexeme == "or" {
		op := p.advance()
		right, err := p.parseAnd()
		if err != nil {
			return nil, err
		}
		left = &ast.BinaryOp{Position: ast.Pos(op.Line, op.Column), Op: op.Lexeme, Left: left, Right: right}
	}
	return left, nil
}

func (p *Parser) parseAnd() (ast.Expr, *ParseError) {
	left, err := p.parseEquality()
	if err != nil {
		return nil, err
	}
	for p.cur().Lexeme == "and" {
		op := p.advance()
		right, err := p.parseEquality()
		if err != nil {
			return nil, err
		}
		left = &ast.BinaryOp{Position: ast.Pos(op.Line, op.Column), Op: op.Lexeme, Left: left, Right: right}
	}
	return left, nil
}

func (p *Parser) parseEquality() (ast.Expr, *ParseError) {
	left, err := p.parseComparison()
	if err != nil {
		return nil, err
	}
	for p.cur().Is("==", "!=") {
		op := p.advance()
		right, err := p.parseComparison()
		if err != nil {
			return nil, err
		}
		left = &ast.BinaryOp{Position: ast.Pos(op.Line, op.Column), Op: op.Lexeme, Left: left, Right: right}
	}
	return left, nil
}

func (p *Parser) parseComparison() (ast.Expr, *ParseError) {
	left, err := p.parseAdditive()
	if err != nil {
		return nil, err
	}
	for p.cur().Is("<", "<=", ">", ">=") {
		op := p.advance()
		right, err := p.parseAdditive()
		if err != nil {
			return nil, err
		}
		left = &ast.BinaryOp{Position: ast.Pos(op.Line, op.Column), Op: op.Lexeme, Left: left, Right: right}
	}
	return left, nil
}

func (p *Parser) parseAdditive() (ast.Expr, *ParseError) {
	left, err := p.parseMultiplicative()
	if err != nil {
		return nil, err
	}
	for p.cur().Is("+", "-") {
		op := p.advance()
		right, err := p.parseMultiplicative()
		if err != nil {
			return nil, err
		}
		left = &ast.BinaryOp{Position: ast.Pos(op.Line, op.Column), Op: op.Lexeme, Left: left, Right: right}
	}
	return left, nil
}

func (p *Parser) parseMultiplicative() (ast.Expr, *ParseError) {
	left, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	for p.cur().Is("*", "/") {
		op := p.advance()
		right, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		left = &ast.BinaryOp{Position: ast.Pos(op.Line, op.Column), Op: op.Lexeme, Left: left, Right: right}
	}
	return left, nil
}

// parseUnary is right-associative: "- - x" parses as -(-(x)).
func (p *Parser) parseUnary() (ast.Expr, *ParseError) {
	if p.cur().Is("-", "not") {
		op := p.advance()
		operand, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return &ast.UnaryOp{Position: ast.Pos(op.Line, op.Column), Op: op.Lexeme, Operand: operand}, nil
	}
	return p.parsePrimary()
}

// parsePrimary handles parenthesized expressions, array literals,
// identifier/builtin references (optionally followed by a call), and
// literals (§4.2 primary).
func (p *Parser) parsePrimary() (ast.Expr, *ParseError) {
	tok := p.cur()

	switch {
	case tok.Lexeme == "(":
		p.advance()
		expr, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		if _, err := p.expectLexeme(")"); err != nil {
			return nil, err
		}
		return expr, nil

	case tok.Lexeme == "[":
		p.advance()
		elements, err := p.parseArgList()
		if err != nil {
			return nil, err
		}
		if _, err := p.expectLexeme("]"); err != nil {
			return nil, err
		}
		return &ast.ArrayLiteral{Position: ast.Pos(tok.Line, tok.Column), Elements: elements}, nil

	case tok.Kind == lexer.Identifier:
		p.advance()
		if p.cur().Lexeme == "(" {
			return p.parseCallArgs(tok)
		}
		return &ast.Literal{Position: ast.Pos(tok.Line, tok.Column), Kind: ast.LitIdentifier, Text: tok.Lexeme}, nil

	case tok.Kind == lexer.Builtin:
		p.advance()
		if p.cur().Lexeme == "(" {
			return p.parseCallArgs(tok)
		}
		return &ast.Literal{Position: ast.Pos(tok.Line, tok.Column), Kind: ast.LitIdentifier, Text: tok.Lexeme}, nil

	case tok.Kind == lexer.IntLiteral:
		p.advance()
		return &ast.Literal{Position: ast.Pos(tok.Line, tok.Column), Kind: ast.LitInt, Text: tok.Lexeme}, nil

	case tok.Kind == lexer.FloatLiteral:
		p.advance()
		return &ast.Literal{Position: ast.Pos(tok.Line, tok.Column), Kind: ast.LitFloat, Text: tok.Lexeme}, nil

	case tok.Kind == lexer.ColourLiteral:
		p.advance()
		return &ast.Literal{Position: ast.Pos(tok.Line, tok.Column), Kind: ast.LitColour, Text: tok.Lexeme}, nil

	case tok.Lexeme == "true" || tok.Lexeme == "false":
		p.advance()
		return &ast.Literal{Position: ast.Pos(tok.Line, tok.Column), Kind: ast.LitBool, Text: tok.Lexeme}, nil

	default:
		return nil, &ParseError{Expected: "an expression", Got: tok.Lexeme, Line: tok.Line}
	}
}

// parseCallArgs parses the "'(' argument-list ')'" suffix of a call,
// given the already-consumed callee token.
func (p *Parser) parseCallArgs(callee lexer.Token) (ast.Expr, *ParseError) {
	p.advance() // '('
	args, err := p.parseArgList()
	if err != nil {
		return nil, err
	}
	if _, err := p.expectLexeme(")"); err != nil {
		return nil, err
	}
	return &ast.FunctionCall{Position: ast.Pos(callee.Line, callee.Column), Name: callee.Lexeme, Args: args}, nil
}
