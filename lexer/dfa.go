/*
File    : parl/lexer/dfa.go
Package : lexer

The transition table and accepting-kind map below are immutable data,
encoded as static maps indexed by (state, charClass) - the shape the
design notes call for, and the one cow-lang-go's tooling/automata
package (DfaState.Transitions, Dfa.NextState) uses for a compiled
lexical DFA. PArL's grammar is small enough that a hand-built table
beats generating one from regex fragments the way cow-lang-go does;
the table shape is kept, the NFA/regex compiler is not.
*/
package lexer

// state is one DFA state, per §4.1's state table.
type state int

const (
	stStart          state = iota // 0: start
	stIdentifier                  // 1: identifier body
	stIntDigits                   // 2: integer digits
	stColourBody                  // 3: colour literal body (after #)
	stOperatorChar                // 4: single operator char
	stSeparatorChar               // 5: separator
	stDotAfterDigits              // 6: dot after digits
	stFloatDigits                 // 7: float fractional digits
)

// acceptingKind maps an accepting state to the Kind it produces.
// States with no entry (stStart, stDotAfterDigits) are non-accepting:
// halting there without having passed through an accepting state is a
// lex error.
var acceptingKind = map[state]Kind{
	stIdentifier:    Identifier,
	stIntDigits:     IntLiteral,
	stColourBody:    ColourLiteral,
	stOperatorChar:  Operator,
	stSeparatorChar: Separator,
	stFloatDigits:   FloatLiteral,
}

// transitions is the DFA's transition table: transitions[s][c] is the
// next state when in state s and the next input character has class c.
// A missing entry means "halt" - maximal munch stops advancing and
// rewinds to the last accepting position. stColourBody's six-character
// cap is enforced by a side counter in Lexer.scanDFA, not by the
// table, per the design notes.
var transitions = map[state]map[charClass]state{
	stStart: {
		clsLetter:        stIdentifier,
		clsUnderscore:    stIdentifier,
		clsDigit:         stIntDigits,
		clsHash:          stColourBody,
		clsOperatorChar:  stOperatorChar,
		clsSeparatorChar: stSeparatorChar,
		// No entry for clsDot: a float literal's integer part is
		// mandatory (§4.1 "[0-9]+\.[0-9]+"), so a leading '.' with no
		// preceding digits is never the start of a valid token; it
		// falls out of scanDFA as a single-character Error token.
	},
	stIdentifier: {
		clsLetter:     stIdentifier,
		clsDigit:      stIdentifier,
		clsUnderscore: stIdentifier,
	},
	stIntDigits: {
		clsDigit: stIntDigits,
		clsDot:   stDotAfterDigits,
	},
	stColourBody: {
		clsDigit:  stColourBody,
		clsLetter: stColourBody,
	},
	stDotAfterDigits: {
		clsDigit: stFloatDigits,
	},
	stFloatDigits: {
		clsDigit: stFloatDigits,
	},
}

// next returns the state reached from s on charClass c, and whether a
// transition is defined at all.
func next(s state, c charClass) (state, bool) {
	row, ok := transitions[s]
	if !ok {
		return stStart, false
	}
	to, ok := row[c]
	return to, ok
}
