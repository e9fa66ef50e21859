package cmd

import (
	"fmt"
	"os"

	"github.com/erikha1501/CompilerLab/internal/parser"
	"github.com/erikha1501/CompilerLab/internal/printer"
	"github.com/spf13/cobra"
)

var parseCmd = &cobra.Command{
	Use:   "parse [file]",
	Short: "Parse and statically check a source file, printing its object tree",
	Long: `parse runs the full lexer/parser/semantic-check pipeline, identical to
the root command, and exists as an explicit alias for scripting contexts
that want a sub-command rather than the bare binary.`,
	Args:          cobra.ExactArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		src, err := os.ReadFile(args[0])
		if err != nil {
			fmt.Println("Can't read input file!")
			return errSilent
		}
		program, err := parser.Parse(src)
		if err != nil {
			fmt.Println(err.Error())
			return errSilent
		}
		return printer.PrintProgram(os.Stdout, program)
	},
}

func init() {
	rootCmd.AddCommand(parseCmd)
}
