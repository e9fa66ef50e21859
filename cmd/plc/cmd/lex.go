package cmd

import (
	"fmt"
	"os"

	"github.com/erikha1501/CompilerLab/internal/lexer"
	"github.com/erikha1501/CompilerLab/internal/token"
	"github.com/spf13/cobra"
)

var lexCmd = &cobra.Command{
	Use:   "lex [file]",
	Short: "Print the token stream for a source file",
	Long: `lex runs only the scanner over the given file, printing one token per
line until end of file or the first lexical fault.`,
	Args:          cobra.ExactArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runLex,
}

func init() {
	rootCmd.AddCommand(lexCmd)
}

func runLex(cmd *cobra.Command, args []string) error {
	src, err := os.ReadFile(args[0])
	if err != nil {
		fmt.Println("Can't read input file!")
		return errSilent
	}

	l := lexer.New(src)
	for {
		tok, err := l.NextToken()
		if err != nil {
			fmt.Println(err.Error())
			return errSilent
		}
		fmt.Println(tok.String())
		if tok.Kind == token.EOF {
			return nil
		}
	}
}
