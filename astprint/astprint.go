/*
File    : parl/astprint/astprint.go
Package : astprint

Package astprint is a thin, external consumer of parl/ast: it owns no
part of the core (§1: pretty-printing the parse tree is not one of the
lexer/parser/analyzer responsibilities) and only ever reads nodes it is
handed.

Grounded on go-mix's root-level PrintingVisitor (print_visitor.go):
same indent-accumulate-then-restore shape, with a shorter
"<Kind> <details>" line per node, adapted from go-mix's fixed Visitor interface
(one Visit* method per node type, dispatched via each node's Accept
method) to a type switch over parl/ast's closed Stmt/Expr/Item family,
since ast.go deliberately does not define an Accept method or visitor
interface (see ast.go's package doc: "enumerated in the switch
documented on each visitor in astprint and sema").
*/
package astprint

import (
	"bytes"
	"fmt"

	"github.com/padlang/parl/ast"
)

const indentSize = 2

// Printer renders a Program as an indented tree of "<Kind> <details>"
// lines (e.g. "FunctionDecl f -> int", "Literal Int(1)"), one per node,
// in pre-order (§8 law 4: a full pre-order
// traversal visits exactly the tokens that were consumed).
type Printer struct {
	indent int
	buf    bytes.Buffer
}

// Print renders prog and returns the accumulated text.
func Print(prog *ast.Program) string {
	p := &Printer{}
	p.printProgram(prog)
	return p.buf.String()
}

func (p *Printer) line(format string, args ...any) {
	for i := 0; i < p.indent; i++ {
		p.buf.WriteString(" ")
	}
	p.buf.WriteString(fmt.Sprintf(format, args...))
	p.buf.WriteString("\n")
}

func (p *Printer) nested(fn func()) {
	p.indent += indentSize
	fn()
	p.indent -= indentSize
}

func (p *Printer) printProgram(prog *ast.Program) {
	p.line("Program")
	p.nested(func() {
		for _, item := range prog.Items {
			p.printItem(item)
		}
	})
}

func (p *Printer) printItem(item ast.Item) {
	switch v := item.(type) {
	case *ast.FunctionDecl:
		p.printFunctionDecl(v)
	case *ast.VariableDecl:
		p.printVariableDecl(v)
	default:
		p.line("UnknownItem (%T)", item)
	}
}

func (p *Printer) printFunctionDecl(fn *ast.FunctionDecl) {
	p.line("FunctionDecl %s -> %s", fn.Name, fn.ReturnType)
	p.nested(func() {
		for _, param := range fn.Params {
			p.line("Parameter %s:%s", param.Name, param.Type)
		}
		p.printBlock(fn.Body)
	})
}

func (p *Printer) printBlock(block *ast.Block) {
	p.line("Block")
	p.nested(func() {
		for _, stmt := range block.Statements {
			p.printStmt(stmt)
		}
	})
}

func (p *Printer) printStmt(stmt ast.Stmt) {
	switch v := stmt.(type) {
	case *ast.VariableDecl:
		p.printVariableDecl(v)

	case *ast.Assignment:
		p.line("Assignment %s", v.TargetName)
		p.nested(func() { p.printExpr(v.Value) })

	case *ast.Return:
		p.line("Return")
		p.nested(func() { p.printExpr(v.Expression) })

	case *ast.If:
		p.line("If")
		p.nested(func() {
			p.printExpr(v.Condition)
			p.printBlock(v.Then)
			if v.Else != nil {
				p.printBlock(v.Else)
			}
		})

	case *ast.While:
		p.line("While")
		p.nested(func() {
			p.printExpr(v.Condition)
			p.printBlock(v.Body)
		})

	case *ast.For:
		p.line("For")
		p.nested(func() {
			p.printVariableDecl(v.Init)
			p.printExpr(v.Condition)
			p.line("Update %s", v.Update.TargetName)
			p.nested(func() { p.printExpr(v.Update.Value) })
			p.printBlock(v.Body)
		})

	case *ast.ExpressionStatement:
		p.line("ExpressionStatement")
		p.nested(func() { p.printExpr(v.Expression) })

	case *ast.BuiltinCall:
		p.line("BuiltinCall %s", v.Name)
		p.nested(func() {
			for _, arg := range v.Args {
				p.printExpr(arg)
			}
		})

	default:
		p.line("UnknownStatement (%T)", stmt)
	}
}

func (p *Printer) printVariableDecl(decl *ast.VariableDecl) {
	p.line("VariableDecl %s:%s", decl.Name, decl.Type)
	p.nested(func() { p.printExpr(decl.Value) })
}

func (p *Printer) printExpr(expr ast.Expr) {
	switch v := expr.(type) {
	case *ast.Literal:
		p.line("Literal %s(%s)", v.Kind, v.Text)

	case *ast.FunctionCall:
		p.line("FunctionCall %s", v.Name)
		p.nested(func() {
			for _, arg := range v.Args {
				p.printExpr(arg)
			}
		})

	case *ast.BinaryOp:
		p.line("BinaryOp %s", v.Op)
		p.nested(func() {
			p.printExpr(v.Left)
			p.printExpr(v.Right)
		})

	case *ast.UnaryOp:
		p.line("UnaryOp %s", v.Op)
		p.nested(func() { p.printExpr(v.Operand) })

	case *ast.Cast:
		p.line("Cast -> %s", v.TargetType)
		p.nested(func() { p.printExpr(v.Expression) })

	case *ast.ArrayLiteral:
		p.line("ArrayLiteral")
		p.nested(func() {
			for _, elem := range v.Elements {
				p.printExpr(elem)
			}
		})

	default:
		p.line("UnknownExpression (%T)", expr)
	}
}
