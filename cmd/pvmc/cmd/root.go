package cmd

import (
	"github.com/spf13/cobra"
)

var (
	Version = "0.1.0-dev"

	noColor bool
)

var rootCmd = &cobra.Command{
	Use:   "pvmc",
	Short: "Pascal-subset compiler targeting a stack-based VM",
	Long: `pvmc compiles a small Pascal-subset language (program/var/begin/end,
typed scalars, one-dimensional arrays, control flow, parameterless
procedures) into textual assembly for a stack-based virtual machine.`,
	Version: Version,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colorized diagnostics")
}
