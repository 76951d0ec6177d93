package cmd

import (
	"fmt"
	"strings"

	"github.com/chzyer/readline"
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/joaomoura/pvmc/internal/lexer"
	"github.com/joaomoura/pvmc/internal/token"
)

var (
	cyanColor = color.New(color.FgCyan)
	redColor  = color.New(color.FgRed)
)

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Tokenize lines of source interactively",
	Long: `repl reads one line at a time and prints the tokens the lexer
produces for it. There is no evaluator: the compiler's scope stops at
assembly generation, so the REPL is a lexer inspection tool, not a
runner.`,
	RunE: runRepl,
}

func init() {
	rootCmd.AddCommand(replCmd)
}

func runRepl(_ *cobra.Command, _ []string) error {
	rl, err := readline.New("pvmc> ")
	if err != nil {
		return err
	}
	defer rl.Close()

	cyanColor.Println("pvmc REPL -- tokenizes each line you enter. Type .exit to quit.")

	for {
		line, err := rl.Readline()
		if err != nil {
			break
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if line == ".exit" {
			break
		}
		rl.SaveHistory(line)
		echoTokens(line)
	}
	return nil
}

func echoTokens(line string) {
	l := lexer.New(line)
	for {
		tok := l.NextToken()
		if tok.Kind == token.EOF {
			break
		}
		fmt.Printf("  %-14s %q\n", tok.Kind, tok.Literal)
	}
	for _, e := range l.Errors() {
		redColor.Printf("  %s\n", e.Error())
	}
}
