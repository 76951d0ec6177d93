package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/joaomoura/pvmc/internal/lexer"
	"github.com/joaomoura/pvmc/internal/token"
)

var showKind bool

var lexCmd = &cobra.Command{
	Use:   "lex [file]",
	Short: "Tokenize a source file and print the resulting tokens",
	Args:  cobra.ExactArgs(1),
	RunE:  runLex,
}

func init() {
	rootCmd.AddCommand(lexCmd)
	lexCmd.Flags().BoolVar(&showKind, "show-kind", false, "print the token kind name alongside each lexeme")
}

func runLex(_ *cobra.Command, args []string) error {
	content, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("failed to read file %s: %w", args[0], err)
	}

	l := lexer.New(string(content))
	for {
		tok := l.NextToken()
		if showKind {
			fmt.Printf("%-4d %-14s %q\n", tok.Pos.Line, tok.Kind, tok.Literal)
		} else {
			fmt.Printf("%-4d %q\n", tok.Pos.Line, tok.Literal)
		}
		if tok.Kind == token.EOF {
			break
		}
	}

	if errs := l.Errors(); len(errs) > 0 {
		for _, e := range errs {
			fmt.Fprintln(os.Stderr, e.Error())
		}
		return fmt.Errorf("lexing produced %d error(s)", len(errs))
	}
	return nil
}
