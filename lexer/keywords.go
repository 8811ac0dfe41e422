/*
File    : parl/lexer/keywords.go
Package : lexer
*/
package lexer

// keywords is the closed keyword set from §4.1. Membership reclassifies
// an Identifier-kind token into Keyword.
var keywords = map[string]bool{
	"fun": true, "let": true, "return": true, "if": true, "else": true,
	"while": true, "for": true, "true": true, "false": true, "as": true,
	"int": true, "float": true, "bool": true, "colour": true,
	"and": true, "or": true, "not": true,
}

// logicalKeywordOperators are the keywords that are additionally
// operators for parser purposes, per §4.1: "and", "or", "not" may be
// matched on lexeme by the parser regardless of whether the lexer
// reports Keyword or Operator for them. This lexer reports them as
// Keyword, consistent with their membership in keywords above; the
// parser matches them by lexeme (Token.Is) so either classification
// would work.
var logicalKeywordOperators = map[string]bool{
	"and": true, "or": true, "not": true,
}

// builtins is the closed pad-builtin set from §4.1.
var builtins = map[string]bool{
	"__width": true, "__height": true, "__read": true, "__random_int": true,
	"__delay": true, "__write": true, "__write_box": true, "__print": true,
}

// multiCharOperators lists the two-character operator spellings that
// must be recognized before the DFA runs, per §4.1: "==", "!=", "<=",
// ">=", "->". Single-character operator runs would otherwise produce
// two one-character Operator tokens.
var multiCharOperators = map[string]bool{
	"==": true, "!=": true, "<=": true, ">=": true, "->": true,
}

// IsBuiltin reports whether name is one of the closed pad-builtin
// names, per §4.1. Exported so other packages (sema's FunctionCall
// check) can test against the same closed set instead of guessing at
// a "__"-prefix heuristic.
func IsBuiltin(name string) bool {
	return builtins[name]
}

// classifyIdentifier reclassifies an Identifier-kind lexeme into
// Keyword or Builtin as a pure function of its spelling (§4.1,
// testable property 3). Returns the lexeme's kind unchanged
// (Identifier) when it matches neither set.
func classifyIdentifier(lexeme string) Kind {
	if keywords[lexeme] {
		return Keyword
	}
	if builtins[lexeme] {
		return Builtin
	}
	return Identifier
}
