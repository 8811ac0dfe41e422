package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

// diagnose writes to an *os.File; route its output through a pipe so
// tests can capture it without touching the real stdout.
func captureDiagnose(t *testing.T, source string, trace bool) (string, bool) {
	t.Helper()
	r, w, err := os.Pipe()
	assert.Nil(t, err)

	failed := diagnose(source, w, trace)
	w.Close()

	var buf bytes.Buffer
	_, err = buf.ReadFrom(r)
	assert.Nil(t, err)
	return buf.String(), failed
}

func TestDiagnose_ValidProgramSucceeds(t *testing.T) {
	out, failed := captureDiagnose(t, `fun main()->int { return 0; }`, false)
	assert.False(t, failed)
	assert.Contains(t, out, "ok")
}

func TestDiagnose_LexErrorIsReported(t *testing.T) {
	out, failed := captureDiagnose(t, `fun main()->int { let x:int = @; return x; }`, false)
	assert.True(t, failed)
	assert.Contains(t, out, "LEX ERROR")
}

func TestDiagnose_ParseErrorIsReported(t *testing.T) {
	out, failed := captureDiagnose(t, `fun main() { return 0; }`, false)
	assert.True(t, failed)
	assert.Contains(t, out, "PARSE ERROR")
}

func TestDiagnose_SemanticErrorIsReported(t *testing.T) {
	out, failed := captureDiagnose(t, `fun main()->int { return missing; }`, false)
	assert.True(t, failed)
	assert.Contains(t, out, "SEMANTIC ERROR")
}

func TestDiagnose_TraceEmitsParseAndAnalyzeLines(t *testing.T) {
	out, failed := captureDiagnose(t, `fun main()->int { return 0; }`, true)
	assert.False(t, failed)
	assert.Contains(t, out, "[TRACE parse]")
	assert.Contains(t, out, "[TRACE analyze]")
}

func TestRunAST_PrintsTreeForValidFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "prog.parl")
	err := os.WriteFile(path, []byte(`fun f(x:int)->int { return x; }`), 0o644)
	assert.Nil(t, err)

	r, w, err := os.Pipe()
	assert.Nil(t, err)
	oldStdout := os.Stdout
	os.Stdout = w
	defer func() { os.Stdout = oldStdout }()

	runAST(path)
	w.Close()

	var buf bytes.Buffer
	_, err = buf.ReadFrom(r)
	assert.Nil(t, err)
	assert.Contains(t, buf.String(), "FunctionDecl f -> int")
}
