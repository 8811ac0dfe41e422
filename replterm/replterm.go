/*
File    : parl/replterm/replterm.go
Package : replterm

Package replterm is an interactive front-end driver: read a line,
tokenize, parse, and analyze it, report diagnostics, and keep going.
There is no evaluator here (§1, §5: the front-end never executes
anything) - each accepted line is folded into a running Program so
declarations persist across the session; the symbol table is rebuilt
from that accumulated Program on every line.

Grounded on go-mix's repl/repl.go: same Repl{Banner, Version, Author,
Line, License, Prompt} struct and PrintBannerInfo/Start/executeWith...
shape, same readline.New + fatih/color palette (blueColor for rules,
greenColor for the banner, yellowColor for results, redColor for
errors, cyanColor for informational lines), same panic-recovery-per-
line wrapper - retargeted from "parse then eval.Evaluator.Eval" to
"tokenize, parse, analyze, append to the running program".
*/
package replterm

import (
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/fatih/color"

	"github.com/padlang/parl/ast"
	"github.com/padlang/parl/astprint"
	"github.com/padlang/parl/lexer"
	"github.com/padlang/parl/parser"
	"github.com/padlang/parl/sema"
)

var (
	blueColor   = color.New(color.FgBlue)
	yellowColor = color.New(color.FgYellow)
	redColor    = color.New(color.FgRed)
	greenColor  = color.New(color.FgGreen)
	cyanColor   = color.New(color.FgCyan)
)

// Repl holds the cosmetic configuration of an interactive session; the
// parse/analyze state lives in the session struct created by Start.
type Repl struct {
	Banner  string
	Version string
	Author  string
	Line    string
	License string
	Prompt  string

	// ShowAST, when true, prints the accepted statement's AST after
	// each successful line (the REPL's ".ast" toggle).
	ShowAST bool
}

// New creates a Repl with the given cosmetic configuration.
func New(banner, version, author, line, license, prompt string) *Repl {
	return &Repl{Banner: banner, Version: version, Author: author, Line: line, License: license, Prompt: prompt}
}

// PrintBannerInfo writes the startup banner and usage hints to writer.
func (r *Repl) PrintBannerInfo(writer io.Writer) {
	blueColor.Fprintf(writer, "%s\n", r.Line)
	greenColor.Fprintf(writer, "%s\n", r.Banner)
	blueColor.Fprintf(writer, "%s\n", r.Line)
	yellowColor.Fprintln(writer, "Version: "+r.Version+" | Author: "+r.Author+" | License: "+r.License)
	blueColor.Fprintf(writer, "%s\n", r.Line)
	cyanColor.Fprintf(writer, "%s\n", "Type a PArL declaration (fun or let) and press enter.")
	cyanColor.Fprintf(writer, "%s\n", "Commands: .ast (toggle AST echo), .scope (show declared names), .exit")
	blueColor.Fprintf(writer, "%s\n", r.Line)
}

// session accumulates parsed items across lines so later lines can
// reference names declared earlier, mirroring a source file built up
// incrementally.
type session struct {
	items []ast.Item
}

// Start runs the REPL loop against reader/writer until the user exits
// or reader returns EOF. reader is accepted for interface symmetry
// with a file-mode driver but readline reads from the controlling
// terminal directly, as in go-mix's repl.Start.
func (r *Repl) Start(reader io.Reader, writer io.Writer) {
	r.PrintBannerInfo(writer)

	rl, err := readline.New(r.Prompt)
	if err != nil {
		panic(err)
	}
	defer rl.Close()

	sess := &session{}

	for {
		line, err := rl.Readline()
		if err != nil {
			writer.Write([]byte("Good bye!\n"))
			break
		}

		line = strings.Trim(line, " \n\t\r")
		if line == "" {
			continue
		}
		if line == ".exit" {
			writer.Write([]byte("Good bye!\n"))
			break
		}
		if line == ".ast" {
			r.ShowAST = !r.ShowAST
			cyanColor.Fprintf(writer, "AST echo: %v\n", r.ShowAST)
			continue
		}
		if line == ".scope" {
			r.printScope(writer, sess)
			continue
		}

		rl.SaveHistory(line)
		r.evalLine(writer, line, sess)
	}
}

func (r *Repl) evalLine(writer io.Writer, line string, sess *session) {
	defer func() {
		if recovered := recover(); recovered != nil {
			redColor.Fprintf(writer, "[RUNTIME ERROR] %v\n", recovered)
		}
	}()

	tokens := lexer.Tokenize(line)
	if lexErrs := lexer.Errors(tokens); len(lexErrs) > 0 {
		for _, tok := range lexErrs {
			redColor.Fprintf(writer, "[LEX ERROR] unrecognized character %q at line %d\n", tok.Lexeme, tok.Line)
		}
		return
	}

	prog, perr := parser.Parse(tokens)
	if perr != nil {
		redColor.Fprintf(writer, "[PARSE ERROR] %s\n", perr.Error())
		return
	}

	candidate := &ast.Program{Items: append(append([]ast.Item{}, sess.items...), prog.Items...)}
	if _, serr := sema.Analyze(candidate); serr != nil {
		redColor.Fprintf(writer, "[SEMANTIC ERROR] %s\n", serr.Error())
		return
	}

	sess.items = candidate.Items
	yellowColor.Fprintf(writer, "ok (%d item(s) in session)\n", len(sess.items))

	if r.ShowAST {
		cyanColor.Fprint(writer, astprint.Print(prog))
	}
}

func (r *Repl) printScope(writer io.Writer, sess *session) {
	if len(sess.items) == 0 {
		cyanColor.Fprintln(writer, "(empty)")
		return
	}
	for _, item := range sess.items {
		switch v := item.(type) {
		case *ast.FunctionDecl:
			cyanColor.Fprintf(writer, "fun %s -> %s\n", v.Name, v.ReturnType)
		case *ast.VariableDecl:
			cyanColor.Fprintf(writer, "let %s : %s\n", v.Name, v.Type)
		}
	}
}
