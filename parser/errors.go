/*
File    : parl/parser/errors.go
Package : parser
*/
package parser

import "fmt"

// ParseError names the construct the parser expected, the lexeme it
// found instead, and the line the mismatch occurred on (§4.2, §7). The
// parser returns the first ParseError it encounters and stops - unlike
// go-mix's Parser, which collects errors into a slice and keeps going,
// PArL's grammar has no recovery points (§4.2 Non-requirements), so
// collecting further errors after the first would only report noise
// from a parser that no longer knows where it is in the grammar.
type ParseError struct {
	Expected string
	Got      string
	Line     int
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("expected %s, got %q at line %d", e.Expected, e.Got, e.Line)
}
