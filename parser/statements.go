/*
File    : parl/parser/statements.go
Package : parser

Top-level and statement grammar productions (§4.2):

	program     := { function | var_decl } Eof
	function    := 'fun' IDENT '(' [ params ] ')' '->' type block
	params      := param { ',' param }
	param       := IDENT ':' type
	block       := '{' { statement } '}'
	statement   := var_decl | return | if | while | for
	             | builtin_call ';' | assignment ';' | expr_stmt
	var_decl    := 'let' IDENT ':' type '=' expression ';'
	return      := 'return' expression ';'
	if          := 'if' '(' expression ')' block [ 'else' block ]
	while       := 'while' '(' expression ')' block
	for         := 'for' '(' var_decl expression ';' assignment ')' block
	assignment  := IDENT '=' expression
	expr_stmt   := expression ';'
*/
package parser

import (
	"github.com/padlang/parl/ast"
	"github.com/padlang/parl/lexer"
)

// Parse is the entry point: parse a whole program and expect Eof.
func (p *Parser) Parse() (*ast.Program, *ParseError) {
	p.trace("program")
	startTok := p.cur()
	var items []ast.Item

	for p.cur().Kind != lexer.Eof {
		tok := p.cur()
		switch tok.Lexeme {
		case "fun":
			fn, err := p.parseFunctionDecl()
			if err != nil {
				return nil, err
			}
			items = append(items, fn)
		case "let":
			decl, err := p.parseVariableDecl()
			if err != nil {
				return nil, err
			}
			items = append(items, decl)
		default:
			return nil, &ParseError{Expected: "'fun' or 'let'", Got: tok.Lexeme, Line: tok.Line}
		}
	}

	return &ast.Program{Position: ast.Pos(startTok.Line, startTok.Column), Items: items}, nil
}

func (p *Parser) parseFunctionDecl() (*ast.FunctionDecl, *ParseError) {
	p.trace("function")
	kw, err := p.expectLexeme("fun")
	if err != nil {
		return nil, err
	}
	name, err := p.expectKind(lexer.Identifier, "a function name")
	if err != nil {
		return nil, err
	}
	if _, err := p.expectLexeme("("); err != nil {
		return nil, err
	}
	params, err := p.parseParams()
	if err != nil {
		return nil, err
	}
	if _, err := p.expectLexeme(")"); err != nil {
		return nil, err
	}
	if _, err := p.expectLexeme("->"); err != nil {
		return nil, err
	}
	retType, err := p.parseType()
	if err != nil {
		return nil, err
	}
	body, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	return &ast.FunctionDecl{
		Position:   ast.Pos(kw.Line, kw.Column),
		Name:       name.Lexeme,
		Params:     params,
		ReturnType: retType,
		Body:       body,
	}, nil
}

func (p *Parser) parseParams() ([]*ast.Parameter, *ParseError) {
	var params []*ast.Parameter
	if p.cur().Lexeme == ")" {
		return params, nil
	}
	for {
		p.trace("param")
		name, err := p.expectKind(lexer.Identifier, "a parameter name")
		if err != nil {
			return nil, err
		}
		if _, err := p.expectLexeme(":"); err != nil {
			return nil, err
		}
		typ, err := p.parseType()
		if err != nil {
			return nil, err
		}
		params = append(params, &ast.Parameter{
			Position: ast.Pos(name.Line, name.Column),
			Name:     name.Lexeme,
			Type:     typ,
		})
		if p.cur().Lexeme != "," {
			break
		}
		p.advance()
	}
	return params, nil
}

func (p *Parser) parseBlock() (*ast.Block, *ParseError) {
	p.trace("block")
	open, err := p.expectLexeme("{")
	if err != nil {
		return nil, err
	}
	var statements []ast.Stmt
	for p.cur().Lexeme != "}" {
		if p.cur().Kind == lexer.Eof {
			return nil, &ParseError{Expected: "'}'", Got: p.cur().Lexeme, Line: p.cur().Line}
		}
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		statements = append(statements, stmt)
	}
	if _, err := p.expectLexeme("}"); err != nil {
		return nil, err
	}
	return &ast.Block{Position: ast.Pos(open.Line, open.Column), Statements: statements}, nil
}

// parseStatement dispatches on the current token (§4.2 Disambiguation).
// When the current token is an identifier, it peeks one further token:
// '=' means an assignment statement, anything else starts an
// expression statement.
func (p *Parser) parseStatement() (ast.Stmt, *ParseError) {
	p.trace("statement")
	tok := p.cur()

	if tok.Kind == lexer.Keyword {
		switch tok.Lexeme {
		case "let":
			return p.parseVariableDecl()
		case "return":
			return p.parseReturn()
		case "if":
			return p.parseIf()
		case "while":
			return p.parseWhile()
		case "for":
			return p.parseFor()
		}
	}

	if tok.Kind == lexer.Builtin {
		return p.parseBuiltinCallStatement()
	}

	if tok.Kind == lexer.Identifier && p.peekAt(1).Lexeme == "=" {
		return p.parseAssignmentStatement()
	}

	return p.parseExpressionStatement()
}

func (p *Parser) parseVariableDecl() (*ast.VariableDecl, *ParseError) {
	p.trace("var_decl")
	kw, err := p.expectLexeme("let")
	if err != nil {
		return nil, err
	}
	name, err := p.expectKind(lexer.Identifier, "a variable name")
	if err != nil {
		return nil, err
	}
	if _, err := p.expectLexeme(":"); err != nil {
		return nil, err
	}
	typ, err := p.parseType()
	if err != nil {
		return nil, err
	}
	if _, err := p.expectLexeme("="); err != nil {
		return nil, err
	}
	value, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if _, err := p.expectLexeme(";"); err != nil {
		return nil, err
	}
	return &ast.VariableDecl{
		Position: ast.Pos(kw.Line, kw.Column),
		Name:     name.Lexeme,
		Type:     typ,
		Value:    value,
	}, nil
}

func (p *Parser) parseReturn() (*ast.Return, *ParseError) {
	p.trace("return")
	kw, err := p.expectLexeme("return")
	if err != nil {
		return nil, err
	}
	expr, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if _, err := p.expectLexeme(";"); err != nil {
		return nil, err
	}
	return &ast.Return{Position: ast.Pos(kw.Line, kw.Column), Expression: expr}, nil
}

func (p *Parser) parseIf() (*ast.If, *ParseError) {
	p.trace("if")
	kw, err := p.expectLexeme("if")
	if err != nil {
		return nil, err
	}
	if _, err := p.expectLexeme("("); err != nil {
		return nil, err
	}
	cond, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if _, err := p.expectLexeme(")"); err != nil {
		return nil, err
	}
	thenBlock, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	var elseBlock *ast.Block
	if p.cur().Lexeme == "else" {
		p.advance()
		elseBlock, err = p.parseBlock()
		if err != nil {
			return nil, err
		}
	}
	return &ast.If{
		Position:  ast.Pos(kw.Line, kw.Column),
		Condition: cond,
		Then:      thenBlock,
		Else:      elseBlock,
	}, nil
}

func (p *Parser) parseWhile() (*ast.While, *ParseError) {
	p.trace("while")
	kw, err := p.expectLexeme("while")
	if err != nil {
		return nil, err
	}
	if _, err := p.expectLexeme("("); err != nil {
		return nil, err
	}
	cond, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if _, err := p.expectLexeme(")"); err != nil {
		return nil, err
	}
	body, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	return &ast.While{Position: ast.Pos(kw.Line, kw.Column), Condition: cond, Body: body}, nil
}

func (p *Parser) parseFor() (*ast.For, *ParseError) {
	p.trace("for")
	kw, err := p.expectLexeme("for")
	if err != nil {
		return nil, err
	}
	if _, err := p.expectLexeme("("); err != nil {
		return nil, err
	}
	init, err := p.parseVariableDecl()
	if err != nil {
		return nil, err
	}
	cond, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if _, err := p.expectLexeme(";"); err != nil {
		return nil, err
	}
	update, err := p.parseAssignment()
	if err != nil {
		return nil, err
	}
	if _, err := p.expectLexeme(")"); err != nil {
		return nil, err
	}
	body, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	return &ast.For{
		Position:  ast.Pos(kw.Line, kw.Column),
		Init:      init,
		Condition: cond,
		Update:    update,
		Body:      body,
	}, nil
}

// parseAssignment parses "IDENT '=' expression" without the trailing
// semicolon, for use in a for-loop's update clause.
func (p *Parser) parseAssignment() (*ast.Assignment, *ParseError) {
	name, err := p.expectKind(lexer.Identifier, "an identifier")
	if err != nil {
		return nil, err
	}
	if _, err := p.expectLexeme("="); err != nil {
		return nil, err
	}
	value, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	return &ast.Assignment{Position: ast.Pos(name.Line, name.Column), TargetName: name.Lexeme, Value: value}, nil
}

func (p *Parser) parseAssignmentStatement() (*ast.Assignment, *ParseError) {
	p.trace("assignment")
	assign, err := p.parseAssignment()
	if err != nil {
		return nil, err
	}
	if _, err := p.expectLexeme(";"); err != nil {
		return nil, err
	}
	return assign, nil
}

func (p *Parser) parseBuiltinCallStatement() (*ast.BuiltinCall, *ParseError) {
	p.trace("builtin_call")
	name, err := p.expectKind(lexer.Builtin, "a builtin name")
	if err != nil {
		return nil, err
	}
	if _, err := p.expectLexeme("("); err != nil {
		return nil, err
	}
	args, err := p.parseArgList()
	if err != nil {
		return nil, err
	}
	if _, err := p.expectLexeme(")"); err != nil {
		return nil, err
	}
	if _, err := p.expectLexeme(";"); err != nil {
		return nil, err
	}
	return &ast.BuiltinCall{Position: ast.Pos(name.Line, name.Column), Name: name.Lexeme, Args: args}, nil
}

func (p *Parser) parseExpressionStatement() (*ast.ExpressionStatement, *ParseError) {
	p.trace("expr_stmt")
	tok := p.cur()
	expr, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if _, err := p.expectLexeme(";"); err != nil {
		return nil, err
	}
	return &ast.ExpressionStatement{Position: ast.Pos(tok.Line, tok.Column), Expression: expr}, nil
}

// parseArgList parses a comma-separated expression list up to (but not
// consuming) the closing ')' or ']'. Used by call sites and array literals.
func (p *Parser) parseArgList() ([]ast.Expr, *ParseError) {
	var args []ast.Expr
	if p.cur().Lexeme == ")" || p.cur().Lexeme == "]" {
		return args, nil
	}
	for {
		expr, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		args = append(args, expr)
		if p.cur().Lexeme != "," {
			break
		}
		p.advance()
	}
	return args, nil
}
