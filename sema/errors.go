/*
File    : parl/sema/errors.go
Package : sema
*/
package sema

import "fmt"

// SemanticError names the symbol the analyzer was looking at and the
// rule it violated (duplicate declaration, undeclared name, or a
// non-function used as a callable), plus the source line (§4.3, §7).
type SemanticError struct {
	Symbol string
	Rule   string
	Line   int
}

func (e *SemanticError) Error() string {
	return fmt.Sprintf("%s: %q at line %d", e.Rule, e.Symbol, e.Line)
}

func errUndeclared(name string, line int) *SemanticError {
	return &SemanticError{Symbol: name, Rule: "undeclared name", Line: line}
}

func errDuplicate(name string, line int) *SemanticError {
	return &SemanticError{Symbol: name, Rule: "duplicate declaration in scope", Line: line}
}

func errNotAFunction(name string, line int) *SemanticError {
	return &SemanticError{Symbol: name, Rule: "not a function", Line: line}
}
