/*
File    : parl/parser/parser_test.go
Package : parser
*/
package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/padlang/parl/ast"
	"github.com/padlang/parl/lexer"
)

func mustParse(t *testing.T, src string) *ast.Program {
	t.Helper()
	prog, err := Parse(lexer.Tokenize(src))
	assert.Nil(t, err)
	assert.NotNil(t, prog)
	return prog
}

func TestParse_OperatorPrecedenceAndCast(t *testing.T) {
	// S3
	prog := mustParse(t, `fun f(x:int)->float { return (x + 1) / 2 as float; }`)
	assert.Len(t, prog.Items, 1)

	fn, ok := prog.Items[0].(*ast.FunctionDecl)
	assert.True(t, ok)
	assert.Equal(t, "f", fn.Name)
	assert.Equal(t, ast.Float, fn.ReturnType)
	assert.Len(t, fn.Params, 1)
	assert.Equal(t, "x", fn.Params[0].Name)
	assert.Equal(t, ast.Int, fn.Params[0].Type)

	assert.Len(t, fn.Body.Statements, 1)
	ret, ok := fn.Body.Statements[0].(*ast.Return)
	assert.True(t, ok)

	cast, ok := ret.Expression.(*ast.Cast)
	assert.True(t, ok)
	assert.Equal(t, ast.Float, cast.TargetType)

	div, ok := cast.Expression.(*ast.BinaryOp)
	assert.True(t, ok)
	assert.Equal(t, "/", div.Op)

	add, ok := div.Left.(*ast.BinaryOp)
	assert.True(t, ok)
	assert.Equal(t, "+", add.Op)

	id, ok := add.Left.(*ast.Literal)
	assert.True(t, ok)
	assert.Equal(t, ast.LitIdentifier, id.Kind)
	assert.Equal(t, "x", id.Text)

	one, ok := add.Right.(*ast.Literal)
	assert.True(t, ok)
	assert.Equal(t, ast.LitInt, one.Kind)
	assert.Equal(t, "1", one.Text)

	two, ok := div.Right.(*ast.Literal)
	assert.True(t, ok)
	assert.Equal(t, ast.LitInt, two.Kind)
	assert.Equal(t, "2", two.Text)
}

func TestParse_ForLoopShape(t *testing.T) {
	// S7
	prog := mustParse(t, `fun main()->int { for (let i:int = 0; i < 5; i = i + 1) { __print(i); } return 0; }`)
	fn := prog.Items[0].(*ast.FunctionDecl)
	forStmt, ok := fn.Body.Statements[0].(*ast.For)
	assert.True(t, ok)

	assert.Equal(t, "i", forStmt.Init.Name)
	assert.Equal(t, ast.Int, forStmt.Init.Type)
	lit0 := forStmt.Init.Value.(*ast.Literal)
	assert.Equal(t, "0", lit0.Text)

	cond, ok := forStmt.Condition.(*ast.BinaryOp)
	assert.True(t, ok)
	assert.Equal(t, "<", cond.Op)

	assert.Equal(t, "i", forStmt.Update.TargetName)
	upd, ok := forStmt.Update.Value.(*ast.BinaryOp)
	assert.True(t, ok)
	assert.Equal(t, "+", upd.Op)

	assert.Len(t, forStmt.Body.Statements, 1)
	call, ok := forStmt.Body.Statements[0].(*ast.BuiltinCall)
	assert.True(t, ok)
	assert.Equal(t, "__print", call.Name)
	assert.Len(t, call.Args, 1)
}

func TestParse_LeftAssociativity(t *testing.T) {
	prog := mustParse(t, `fun f()->int { return 1 - 2 - 3; } `)
	fn := prog.Items[0].(*ast.FunctionDecl)
	ret := fn.Body.Statements[0].(*ast.Return)

	outer, ok := ret.Expression.(*ast.BinaryOp)
	assert.True(t, ok)
	assert.Equal(t, "-", outer.Op)

	inner, ok := outer.Left.(*ast.BinaryOp)
	assert.True(t, ok)
	assert.Equal(t, "-", inner.Op)

	rightLit := outer.Right.(*ast.Literal)
	assert.Equal(t, "3", rightLit.Text)
}

func TestParse_AssignmentVsExpressionStatementDisambiguation(t *testing.T) {
	prog := mustParse(t, `fun f()->int { let x:int = 0; x = x + 1; x == 1; __print(x); return x; }`)
	fn := prog.Items[0].(*ast.FunctionDecl)
	assert.Len(t, fn.Body.Statements, 5)

	_, isDecl := fn.Body.Statements[0].(*ast.VariableDecl)
	assert.True(t, isDecl)

	_, isAssign := fn.Body.Statements[1].(*ast.Assignment)
	assert.True(t, isAssign)

	_, isExprStmt := fn.Body.Statements[2].(*ast.ExpressionStatement)
	assert.True(t, isExprStmt)

	_, isBuiltin := fn.Body.Statements[3].(*ast.BuiltinCall)
	assert.True(t, isBuiltin)
}

func TestParse_IfElse(t *testing.T) {
	prog := mustParse(t, `fun f(x:int)->int { if (x > 0) { return 1; } else { return 0; } }`)
	fn := prog.Items[0].(*ast.FunctionDecl)
	ifStmt, ok := fn.Body.Statements[0].(*ast.If)
	assert.True(t, ok)
	assert.NotNil(t, ifStmt.Then)
	assert.NotNil(t, ifStmt.Else)
}

func TestParse_ArrayLiteral(t *testing.T) {
	prog := mustParse(t, `fun f()->int { let xs:int = [1, 2, 3]; return 0; }`)
	fn := prog.Items[0].(*ast.FunctionDecl)
	decl := fn.Body.Statements[0].(*ast.VariableDecl)
	arr, ok := decl.Value.(*ast.ArrayLiteral)
	assert.True(t, ok)
	assert.Len(t, arr.Elements, 3)
}

func TestParse_TopLevelVariableDecl(t *testing.T) {
	prog := mustParse(t, `let x:int = 42;`)
	assert.Len(t, prog.Items, 1)
	_, ok := prog.Items[0].(*ast.VariableDecl)
	assert.True(t, ok)
}

func TestParse_ErrorNamesExpectedAndLine(t *testing.T) {
	_, err := Parse(lexer.Tokenize("fun f(x:int) { return x; }"))
	assert.NotNil(t, err)
	assert.Equal(t, "->", err.Expected)
	assert.Equal(t, 1, err.Line)
}

func TestParse_UnexpectedTopLevelToken(t *testing.T) {
	_, err := Parse(lexer.Tokenize("return 1;"))
	assert.NotNil(t, err)
	assert.Contains(t, err.Error(), "'fun' or 'let'")
}

func TestParse_UnclosedBlockFailsAtEof(t *testing.T) {
	_, err := Parse(lexer.Tokenize("fun f()->int { return 1;"))
	assert.NotNil(t, err)
}

func TestParse_WriteWithoutParensIsRejected(t *testing.T) {
	// An Open Question in spec.md: a test-only deviation using
	// parenthesis-free builtin calls. This grammar has no such
	// production and must reject it.
	_, err := Parse(lexer.Tokenize(`fun f()->int { __write 1, 2, 3; return 0; }`))
	assert.NotNil(t, err)
}
