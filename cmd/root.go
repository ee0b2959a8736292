package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "gotracs",
	Short: "Two-pass assembler for the TRACS instruction set",
	Long: `gotracs assembles TRACS source files into byte-level machine-code
listings. Pass one resolves the origin directive and every label;
pass two validates each operand and encodes two bytes per
instruction.`,
}

// Execute runs the command tree and exits nonzero when it fails.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
