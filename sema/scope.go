/*
File    : parl/sema/scope.go
Package : sema

Scope is a hash-map-per-level chain, grounded on go-mix's scope.Scope
(Bind/LookUp/Parent): lookups walk from the current scope outward to
the global scope, and a declaration only ever touches the current
scope's own map. PArL's symbol table does not need go-mix's
Consts/LetVars/LetTypes side maps or its Copy method (there are no
closures or constants here), so those are dropped - the binding is
retargeted from objects.GoMixObject to a Symbol naming a TypeTag plus
a SymbolKind (§4.3, §9 "Symbol table").
*/
package sema

import "github.com/padlang/parl/ast"

// SymbolKind distinguishes a function binding from a variable binding.
type SymbolKind string

const (
	FunctionSymbol SymbolKind = "Function"
	VariableSymbol SymbolKind = "Variable"
)

// Symbol is one name's binding: what kind of thing it names, and, for
// a variable, its declared type. Function symbols leave Type empty;
// callers needing a function's signature consult Params/ReturnType.
type Symbol struct {
	Kind       SymbolKind
	Type       ast.TypeTag
	Params     []ast.TypeTag
	ReturnType ast.TypeTag
}

// Scope is one lexical level of the symbol table: the global scope, a
// function's body scope, or a nested block scope (§4.3 Scope
// discipline).
type Scope struct {
	symbols map[string]Symbol
	parent  *Scope
}

// NewScope creates a scope nested under parent. parent == nil creates
// the global scope.
func NewScope(parent *Scope) *Scope {
	return &Scope{symbols: make(map[string]Symbol), parent: parent}
}

// Declare binds name in this scope only. It reports whether name was
// already bound in this scope (a duplicate declaration); it does not
// consult parent scopes, since shadowing an outer name is legal.
func (s *Scope) Declare(name string, sym Symbol) (redeclared bool) {
	_, exists := s.symbols[name]
	s.symbols[name] = sym
	return exists
}

// Lookup searches this scope and, failing that, every enclosing scope
// outward to the global scope.
func (s *Scope) Lookup(name string) (Symbol, bool) {
	if sym, ok := s.symbols[name]; ok {
		return sym, true
	}
	if s.parent != nil {
		return s.parent.Lookup(name)
	}
	return Symbol{}, false
}

// SymbolTable is the analyzer's externally visible result: the global
// scope built while analyzing a Program (§6: analyze(program) →
// SymbolTable | SemanticError).
type SymbolTable struct {
	Global *Scope
}
