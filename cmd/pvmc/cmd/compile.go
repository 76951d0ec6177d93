package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/joaomoura/pvmc/internal/cerr"
	"github.com/joaomoura/pvmc/internal/codegen"
	"github.com/joaomoura/pvmc/internal/config"
	"github.com/joaomoura/pvmc/internal/lexer"
	"github.com/joaomoura/pvmc/internal/parser"
)

var (
	outputFile string
	configFile string
)

var compileCmd = &cobra.Command{
	Use:   "compile [file]",
	Short: "Compile a source file to stack-VM assembly",
	Long: `Compile lexes, parses and lowers a source file into textual assembly
for the stack-based VM, writing the result to cod_vm.txt (override with -o).

Examples:
  pvmc compile program.pas
  pvmc compile program.pas -o out.asm`,
	Args: cobra.ExactArgs(1),
	RunE: runCompile,
}

func init() {
	rootCmd.AddCommand(compileCmd)
	compileCmd.Flags().StringVarP(&outputFile, "output", "o", "", "output file (default: cod_vm.txt, or pvmc.toml's output.filename)")
	compileCmd.Flags().StringVar(&configFile, "config", "pvmc.toml", "path to an optional pvmc.toml config file")
}

func runCompile(_ *cobra.Command, args []string) error {
	filename := args[0]

	content, err := os.ReadFile(filename)
	if err != nil {
		return fmt.Errorf("failed to read file %s: %w", filename, err)
	}
	src := string(content)

	cfg, err := config.Load(configFile)
	if err != nil {
		return err
	}
	useColor := cfg.Output.Color && !noColor

	out := outputFile
	if out == "" {
		out = cfg.Output.Filename
	}

	l := lexer.New(src)
	gen := codegen.New()
	p := parser.New(l, gen)

	prog, parseErr := p.ParseProgram()

	if lexErrs := l.Errors(); len(lexErrs) > 0 {
		for _, le := range lexErrs {
			ce := cerr.New(le.Pos, le.Message, src, filename)
			fmt.Fprintln(os.Stderr, ce.Format(useColor))
			if cfg.Diagnostics.StopOnFirstError {
				break
			}
		}
		return fmt.Errorf("lexing failed with %d error(s)", len(lexErrs))
	}

	if parseErr != nil {
		ce := cerr.New(p.Err().Pos, p.Err().Message, src, filename)
		fmt.Fprintln(os.Stderr, ce.Format(useColor))
		return fmt.Errorf("parsing failed")
	}

	if err := gen.Generate(prog); err != nil {
		ce := cerr.New(errPos(err), err.Error(), src, filename)
		fmt.Fprintln(os.Stderr, ce.Format(useColor))
		return fmt.Errorf("code generation failed")
	}

	f, err := os.Create(out)
	if err != nil {
		return fmt.Errorf("failed to create output file %s: %w", out, err)
	}
	defer f.Close()

	if _, err := gen.Buf.WriteTo(f); err != nil {
		return fmt.Errorf("failed to write output file %s: %w", out, err)
	}

	return nil
}
