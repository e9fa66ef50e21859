// Command plc is the front-end driver: it reads one source file, runs it
// through the lexer, parser, and semantic checks, and prints either the
// resulting object tree or the first diagnostic encountered.
package main

import (
	"os"

	"github.com/erikha1501/CompilerLab/cmd/plc/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
