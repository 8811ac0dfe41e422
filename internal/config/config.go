/*
File    : parl/internal/config/config.go
Package : config

Package config loads an optional .parlc.yaml from the working
directory. go-mix's go.mod already carries gopkg.in/yaml.v3 as an
indirect dependency (pulled in transitively, never imported by any
go-mix package); this is that dependency promoted to direct use for an
ambient concern go-mix itself has no equivalent of - go-mix has no
config file, so the flat-struct-with-defaults shape here follows the
general style of its other small value types (e.g. lexer.Token) rather
than a specific teacher file.
*/
package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

const defaultFileName = ".parlc.yaml"

// Config holds optional, host-level settings for cmd/parlc and
// replterm. None of it affects tokenize/parse/analyze semantics (§6:
// "CLI, configuration ... none in the core") - it only changes how
// diagnostics are rendered and what the REPL greets the user with.
type Config struct {
	// Colour turns ANSI-coloured diagnostics on or off.
	Colour bool `yaml:"colour"`

	// Trace turns on the parser and analyzer Trace hooks in file mode,
	// printing one line per grammar production and visited node.
	Trace bool `yaml:"trace"`

	// Prompt overrides the REPL's prompt string.
	Prompt string `yaml:"prompt"`
}

// Default returns the configuration used when no .parlc.yaml is
// present, or a field is left unset within one.
func Default() Config {
	return Config{Colour: true, Trace: false, Prompt: "parl>> "}
}

// Load reads dir/.parlc.yaml if it exists and overlays it onto
// Default(). A missing file is not an error; a malformed one is.
func Load(dir string) (Config, error) {
	cfg := Default()

	path := dir + string(os.PathSeparator) + defaultFileName
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return cfg, err
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}
