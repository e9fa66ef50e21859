package cmd

import (
	"fmt"
	"os"

	"github.com/erikha1501/CompilerLab/internal/parser"
	"github.com/erikha1501/CompilerLab/internal/printer"
	"github.com/spf13/cobra"
)

var (
	// Version is set by build flags; left as a plain dev default otherwise.
	Version = "0.1.0-dev"

	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "plc [file]",
	Short: "A front end for the CompilerLab teaching language",
	Long: `plc lexes, parses, and statically checks a single CompilerLab source
file, printing the resulting declaration tree on success or the first
diagnostic encountered on failure.`,
	Version:       Version,
	Args:          cobra.MaximumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runCompile,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "print pipeline progress to stderr")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// runCompile implements the CLI contract: exactly one positional
// argument, the input file path. No argument prints "parser: no input
// file."; an unreadable file prints "Can't read input file!"; either way
// the process exits non-zero. A lexical, syntactic, or semantic fault
// prints its diagnostic and exits non-zero. Otherwise the program's
// object tree is printed and the process exits zero.
func runCompile(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		fmt.Println("parser: no input file.")
		return errSilent
	}

	filename := args[0]
	if verbose {
		fmt.Fprintf(os.Stderr, "reading %s\n", filename)
	}

	src, err := os.ReadFile(filename)
	if err != nil {
		fmt.Println("Can't read input file!")
		return errSilent
	}

	if verbose {
		fmt.Fprintln(os.Stderr, "parsing")
	}
	program, err := parser.Parse(src)
	if err != nil {
		fmt.Println(err.Error())
		return errSilent
	}

	if verbose {
		fmt.Fprintln(os.Stderr, "printing object tree")
	}
	return printer.PrintProgram(os.Stdout, program)
}

// errSilent signals a handled, already-printed failure: main() only
// needs its non-nilness to pick a non-zero exit status, never its text
// (cobra's own error-printing is disabled via SilenceErrors).
var errSilent = fmt.Errorf("")
