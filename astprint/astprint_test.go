package astprint

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/padlang/parl/lexer"
	"github.com/padlang/parl/parser"
)

func TestPrint_IncludesEveryNodeKindOnce(t *testing.T) {
	prog, err := parser.Parse(lexer.Tokenize(`
		fun f(x:int)->float {
			let y:int = x + 1;
			return y / 2 as float;
		}
	`))
	assert.Nil(t, err)

	out := Print(prog)
	assert.Equal(t, 1, strings.Count(out, "FunctionDecl f -> float"))
	assert.Equal(t, 1, strings.Count(out, "Parameter x:int"))
	assert.Equal(t, 1, strings.Count(out, "VariableDecl y:int"))
	assert.Equal(t, 1, strings.Count(out, "Return"))
	assert.Equal(t, 1, strings.Count(out, "Cast -> float"))
	assert.Equal(t, 1, strings.Count(out, "BinaryOp /"))
	assert.Equal(t, 1, strings.Count(out, "BinaryOp +"))
	assert.Equal(t, 1, strings.Count(out, "Literal Identifier(x)"))
	assert.Equal(t, 1, strings.Count(out, "Literal Int(1)"))
}

func TestPrint_ForLoopShape(t *testing.T) {
	prog, err := parser.Parse(lexer.Tokenize(
		`fun main()->int { for (let i:int = 0; i < 5; i = i + 1) { __print(i); } return 0; } `))
	assert.Nil(t, err)

	out := Print(prog)
	assert.Contains(t, out, "For")
	assert.Contains(t, out, "Update i")
	assert.Contains(t, out, "BuiltinCall __print")
}
