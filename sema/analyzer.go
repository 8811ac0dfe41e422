/*
File    : parl/sema/analyzer.go
Package : sema

Package sema implements the semantic analyzer (§4.3): a single
pre-order walk over the Program built by the parser, threading a Scope
chain and failing on the first SemanticError it finds.

original_source/semantic_analysis.py keeps one flat SymbolTable with a
"functions" map and a "variables" map and no concept of nested scope -
a duplicate check there is really a program-wide uniqueness check, and
a block's own let-declarations leak into sibling blocks and even into
unrelated functions analyzed afterward. §9's "Open questions" calls
this out explicitly and mandates proper lexical scoping instead; this
file is the proper-scoping analyzer, grounded on the Python file's walk
order (analyze_program -> analyze_function -> analyze_block ->
analyze_statement -> analyze_expression) but backed by the Scope chain
in scope.go rather than two flat maps.
*/
package sema

import (
	"github.com/padlang/parl/ast"
	"github.com/padlang/parl/lexer"
)

// Trace, when non-nil, is invoked on entry to each node the analyzer
// visits, mirroring lexer.Trace and parser.Trace. Nil by default.
type Trace func(rule string, node ast.Node)

// Analyzer walks a Program and builds its SymbolTable, or stops at the
// first SemanticError.
type Analyzer struct {
	Trace Trace
}

// New creates an Analyzer.
func New() *Analyzer {
	return &Analyzer{}
}

// Analyze type-checks-by-declaration a whole Program (§6: analyze(program)
// -> SymbolTable | SemanticError).
func Analyze(prog *ast.Program) (*SymbolTable, *SemanticError) {
	return New().Analyze(prog)
}

func (a *Analyzer) trace(rule string, node ast.Node) {
	if a.Trace != nil {
		a.Trace(rule, node)
	}
}

func (a *Analyzer) Analyze(prog *ast.Program) (*SymbolTable, *SemanticError) {
	a.trace("program", prog)
	global := NewScope(nil)
	for _, item := range prog.Items {
		if err := a.analyzeItem(item, global); err != nil {
			return nil, err
		}
	}
	return &SymbolTable{Global: global}, nil
}

func (a *Analyzer) analyzeItem(item ast.Item, scope *Scope) *SemanticError {
	switch v := item.(type) {
	case *ast.FunctionDecl:
		return a.analyzeFunctionDecl(v, scope)
	case *ast.VariableDecl:
		return a.analyzeVariableDecl(v, scope)
	}
	return nil
}

func (a *Analyzer) analyzeFunctionDecl(fn *ast.FunctionDecl, enclosing *Scope) *SemanticError {
	a.trace("function", fn)
	line, _ := fn.Pos()

	paramTypes := make([]ast.TypeTag, len(fn.Params))
	for i, p := range fn.Params {
		paramTypes[i] = p.Type
	}
	sym := Symbol{Kind: FunctionSymbol, Params: paramTypes, ReturnType: fn.ReturnType}
	if enclosing.Declare(fn.Name, sym) {
		return errDuplicate(fn.Name, line)
	}

	fnScope := NewScope(enclosing)
	for _, p := range fn.Params {
		pline, _ := p.Pos()
		if fnScope.Declare(p.Name, Symbol{Kind: VariableSymbol, Type: p.Type}) {
			return errDuplicate(p.Name, pline)
		}
	}
	return a.analyzeStatements(fn.Body.Statements, fnScope)
}

func (a *Analyzer) analyzeVariableDecl(decl *ast.VariableDecl, scope *Scope) *SemanticError {
	a.trace("var_decl", decl)
	if err := a.analyzeExpr(decl.Value, scope); err != nil {
		return err
	}
	line, _ := decl.Pos()
	if scope.Declare(decl.Name, Symbol{Kind: VariableSymbol, Type: decl.Type}) {
		return errDuplicate(decl.Name, line)
	}
	return nil
}

func (a *Analyzer) analyzeStatements(stmts []ast.Stmt, scope *Scope) *SemanticError {
	for _, stmt := range stmts {
		if err := a.analyzeStmt(stmt, scope); err != nil {
			return err
		}
	}
	return nil
}

// analyzeBlockNested pushes a fresh scope for a block that is not a
// function's own body (an if/while/for body), per §4.3's "each block
// statement creates a nested scope".
func (a *Analyzer) analyzeBlockNested(block *ast.Block, parent *Scope) *SemanticError {
	return a.analyzeStatements(block.Statements, NewScope(parent))
}

func (a *Analyzer) analyzeStmt(stmt ast.Stmt, scope *Scope) *SemanticError {
	a.trace("statement", stmt)
	switch v := stmt.(type) {
	case *ast.VariableDecl:
		return a.analyzeVariableDecl(v, scope)

	case *ast.Assignment:
		return a.analyzeAssignment(v, scope)

	case *ast.Return:
		return a.analyzeExpr(v.Expression, scope)

	case *ast.If:
		if err := a.analyzeExpr(v.Condition, scope); err != nil {
			return err
		}
		if err := a.analyzeBlockNested(v.Then, scope); err != nil {
			return err
		}
		if v.Else != nil {
			return a.analyzeBlockNested(v.Else, scope)
		}
		return nil

	case *ast.While:
		if err := a.analyzeExpr(v.Condition, scope); err != nil {
			return err
		}
		return a.analyzeBlockNested(v.Body, scope)

	case *ast.For:
		// The loop header (init/condition/update) shares one scope so
		// the induction variable is visible to all three; the body is
		// a further nested scope of that, per §4.3's generic block
		// rule.
		headerScope := NewScope(scope)
		if err := a.analyzeVariableDecl(v.Init, headerScope); err != nil {
			return err
		}
		if err := a.analyzeExpr(v.Condition, headerScope); err != nil {
			return err
		}
		if err := a.analyzeAssignment(v.Update, headerScope); err != nil {
			return err
		}
		return a.analyzeBlockNested(v.Body, headerScope)

	case *ast.ExpressionStatement:
		return a.analyzeExpr(v.Expression, scope)

	case *ast.BuiltinCall:
		for _, arg := range v.Args {
			if err := a.analyzeExpr(arg, scope); err != nil {
				return err
			}
		}
		return nil
	}
	return nil
}

func (a *Analyzer) analyzeAssignment(asg *ast.Assignment, scope *Scope) *SemanticError {
	a.trace("assignment", asg)
	line, _ := asg.Pos()
	if _, ok := scope.Lookup(asg.TargetName); !ok {
		return errUndeclared(asg.TargetName, line)
	}
	return a.analyzeExpr(asg.Value, scope)
}

// isBuiltinName reports whether name is one of the closed pad-builtin
// names (§4.1), not merely "__"-prefixed. Builtins used inside an
// expression parse as a FunctionCall (see ast.FunctionCall's doc
// comment) but are implicitly declared (§4.3), so they bypass the
// symbol table the same way a statement-level BuiltinCall does; any
// other "__"-shaped name is an ordinary undeclared-function error.
func isBuiltinName(name string) bool {
	return lexer.IsBuiltin(name)
}

func (a *Analyzer) analyzeExpr(expr ast.Expr, scope *Scope) *SemanticError {
	a.trace("expression", expr)
	switch v := expr.(type) {
	case *ast.Literal:
		if v.Kind != ast.LitIdentifier {
			return nil
		}
		line, _ := v.Pos()
		if _, ok := scope.Lookup(v.Text); !ok {
			return errUndeclared(v.Text, line)
		}
		return nil

	case *ast.FunctionCall:
		line, _ := v.Pos()
		if !isBuiltinName(v.Name) {
			sym, ok := scope.Lookup(v.Name)
			if !ok {
				return errUndeclared(v.Name, line)
			}
			if sym.Kind != FunctionSymbol {
				return errNotAFunction(v.Name, line)
			}
		}
		for _, arg := range v.Args {
			if err := a.analyzeExpr(arg, scope); err != nil {
				return err
			}
		}
		return nil

	case *ast.BinaryOp:
		if err := a.analyzeExpr(v.Left, scope); err != nil {
			return err
		}
		return a.analyzeExpr(v.Right, scope)

	case *ast.UnaryOp:
		return a.analyzeExpr(v.Operand, scope)

	case *ast.Cast:
		return a.analyzeExpr(v.Expression, scope)

	case *ast.ArrayLiteral:
		for _, elem := range v.Elements {
			if err := a.analyzeExpr(elem, scope); err != nil {
				return err
			}
		}
		return nil
	}
	return nil
}
