/*
File    : parl/cmd/parlc/main.go
Package : main

Package main is parlc, the command-line driver over the PArL front-end
(§6's public operations, wired up for a terminal user). It provides:

  - parlc <file>           tokenize, parse, analyze; report diagnostics
  - parlc --ast <file>     parse and print the AST, skipping analysis
  - parlc --trace <file>   same as plain file mode, with phase tracing on
  - parlc                  start the interactive REPL
  - parlc server <port>    start a REPL server, one session per connection
  - parlc --help / --version

Grounded on go-mix's main/main.go: the same os.Args dispatch shape
(flag checks, then server/file/REPL fallthrough), the same
fatih/color palette for diagnostics (redColor errors, yellowColor
results, cyanColor info), and the same startServer/handleClient
net.Listener loop - retargeted from "parse + eval.Evaluator" to
"tokenize + parse + sema.Analyze", since this front-end never
evaluates anything (§1 Non-goals).
*/
package main

import (
	"fmt"
	"net"
	"os"

	"github.com/fatih/color"

	"github.com/padlang/parl/ast"
	"github.com/padlang/parl/astprint"
	"github.com/padlang/parl/internal/config"
	"github.com/padlang/parl/lexer"
	"github.com/padlang/parl/parser"
	"github.com/padlang/parl/replterm"
	"github.com/padlang/parl/sema"
)

var (
	version = "v0.1.0"
	author  = "the padlang project"
	license = "MIT"
	line    = "--------------------------------------------------------------"
	banner  = `
  ____   _          _
 |  _ \ / \   _ __ | |
 | |_) / _ \ | '__|| |
 |  __/ ___ \| |   | |___
 |_| /_/   \_\_|   |_____|
`
	prompt = "parl>> "
)

var (
	redColor    = color.New(color.FgRed)
	yellowColor = color.New(color.FgYellow)
	cyanColor   = color.New(color.FgCyan)
)

func main() {
	cfg, err := config.Load(".")
	if err != nil {
		redColor.Fprintf(os.Stderr, "[CONFIG ERROR] %v\n", err)
		os.Exit(1)
	}
	if !cfg.Colour {
		color.NoColor = true
	}
	if cfg.Prompt != "" {
		prompt = cfg.Prompt
	}

	args := os.Args[1:]
	if len(args) == 0 {
		startRepl(os.Stdin, os.Stdout)
		return
	}

	switch args[0] {
	case "--help", "-h":
		showHelp()
	case "--version", "-v":
		showVersion()
	case "server":
		if len(args) < 2 {
			redColor.Fprintf(os.Stderr, "[USAGE ERROR] missing port. usage: parlc server <port>\n")
			os.Exit(1)
		}
		startServer(args[1])
	case "--ast":
		if len(args) < 2 {
			redColor.Fprintf(os.Stderr, "[USAGE ERROR] missing file. usage: parlc --ast <file>\n")
			os.Exit(1)
		}
		runAST(args[1])
	case "--trace":
		if len(args) < 2 {
			redColor.Fprintf(os.Stderr, "[USAGE ERROR] missing file. usage: parlc --trace <file>\n")
			os.Exit(1)
		}
		runFile(args[1], true)
	default:
		runFile(args[0], cfg.Trace)
	}
}

func showHelp() {
	cyanColor.Println("parlc - the PArL front-end driver")
	cyanColor.Println("")
	cyanColor.Println("USAGE:")
	yellowColor.Println("  parlc                 start the interactive REPL")
	yellowColor.Println("  parlc <file>          tokenize, parse, and analyze a .parl file")
	yellowColor.Println("  parlc --ast <file>    parse a file and print its AST, skipping analysis")
	yellowColor.Println("  parlc --trace <file>  run file mode with phase tracing on")
	yellowColor.Println("  parlc server <port>   start a REPL server on the given TCP port")
	yellowColor.Println("  parlc --help          show this message")
	yellowColor.Println("  parlc --version       show version information")
}

func showVersion() {
	cyanColor.Printf("parlc %s (%s license, %s)\n", version, license, author)
}

func runFile(fileName string, trace bool) {
	source, err := os.ReadFile(fileName)
	if err != nil {
		redColor.Fprintf(os.Stderr, "[FILE ERROR] could not read %q: %v\n", fileName, err)
		os.Exit(1)
	}
	if diagnose(string(source), os.Stdout, trace) {
		os.Exit(1)
	}
}

func runAST(fileName string) {
	source, err := os.ReadFile(fileName)
	if err != nil {
		redColor.Fprintf(os.Stderr, "[FILE ERROR] could not read %q: %v\n", fileName, err)
		os.Exit(1)
	}

	tokens := lexer.Tokenize(string(source))
	prog, perr := parser.Parse(tokens)
	if perr != nil {
		redColor.Fprintf(os.Stderr, "[PARSE ERROR] %s\n", perr.Error())
		os.Exit(1)
	}
	fmt.Print(astprint.Print(prog))
}

// diagnose runs the whole tokenize/parse/analyze pipeline over source
// and reports the first failure, if any, to out. It returns true if
// the pipeline failed.
func diagnose(source string, out *os.File, trace bool) bool {
	tokens := lexer.Tokenize(source)
	if lexErrs := lexer.Errors(tokens); len(lexErrs) > 0 {
		for _, tok := range lexErrs {
			redColor.Fprintf(out, "[LEX ERROR] unrecognized character %q at line %d\n", tok.Lexeme, tok.Line)
		}
		return true
	}

	p := parser.New(tokens)
	if trace {
		p.Trace = func(rule string, tok lexer.Token) {
			cyanColor.Fprintf(out, "[TRACE parse] %s at %q (line %d)\n", rule, tok.Lexeme, tok.Line)
		}
	}
	prog, perr := p.Parse()
	if perr != nil {
		redColor.Fprintf(out, "[PARSE ERROR] %s\n", perr.Error())
		return true
	}

	a := sema.New()
	if trace {
		a.Trace = func(rule string, node ast.Node) {
			nodeLine, nodeCol := node.Pos()
			cyanColor.Fprintf(out, "[TRACE analyze] %s at line %d, column %d\n", rule, nodeLine, nodeCol)
		}
	}
	if _, serr := a.Analyze(prog); serr != nil {
		redColor.Fprintf(out, "[SEMANTIC ERROR] %s\n", serr.Error())
		return true
	}

	yellowColor.Fprintln(out, "ok")
	return false
}

func startRepl(stdin *os.File, stdout *os.File) {
	repl := replterm.New(banner, version, author, line, license, prompt)
	repl.Start(stdin, stdout)
}

func startServer(port string) {
	listener, err := net.Listen("tcp", ":"+port)
	if err != nil {
		redColor.Fprintf(os.Stderr, "[SERVER ERROR] could not listen on port %s: %v\n", port, err)
		os.Exit(1)
	}
	cyanColor.Printf("parlc REPL server listening on :%s\n", port)
	defer listener.Close()

	for {
		conn, err := listener.Accept()
		if err != nil {
			redColor.Fprintf(os.Stderr, "[SERVER ERROR] accept failed: %v\n", err)
			continue
		}
		go handleClient(conn)
	}
}

func handleClient(conn net.Conn) {
	defer conn.Close()
	cyanColor.Printf("client connected from %s\n", conn.RemoteAddr())
	repl := replterm.New(banner, version, author, line, license, prompt)
	repl.Start(conn, conn)
	cyanColor.Printf("client disconnected from %s\n", conn.RemoteAddr())
}
