package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/joaomoura/pvmc/internal/cerr"
	"github.com/joaomoura/pvmc/internal/codegen"
	"github.com/joaomoura/pvmc/internal/lexer"
	"github.com/joaomoura/pvmc/internal/parser"
)

var parseCmd = &cobra.Command{
	Use:   "parse [file]",
	Short: "Parse a source file and print the resulting AST",
	Args:  cobra.ExactArgs(1),
	RunE:  runParse,
}

func init() {
	rootCmd.AddCommand(parseCmd)
}

func runParse(_ *cobra.Command, args []string) error {
	filename := args[0]
	content, err := os.ReadFile(filename)
	if err != nil {
		return fmt.Errorf("failed to read file %s: %w", filename, err)
	}
	src := string(content)

	l := lexer.New(src)
	gen := codegen.New()
	p := parser.New(l, gen)
	prog, parseErr := p.ParseProgram()

	if parseErr != nil {
		ce := cerr.New(p.Err().Pos, p.Err().Message, src, filename)
		fmt.Fprintln(os.Stderr, ce.Format(!noColor))
		return fmt.Errorf("parsing failed")
	}

	fmt.Println(prog.String())
	return nil
}
