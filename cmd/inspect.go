package cmd

import (
	"fmt"
	"os"

	"github.com/k0kubun/pp/v3"
	"github.com/spf13/cobra"

	"gotracs/pkg/asm"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect sourceFile",
	Short: "Dump every assembly stage for a TRACS source file",
	Long: `Inspect runs the pipeline one stage at a time and pretty-prints what
each stage produced: the normalized source lines, the resolved symbol
table, and the encoded listing. Failing stages report to stderr but
later stages still run on whatever resolved, so the partial state of a
broken program stays visible.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if err := runInspect(args[0]); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(inspectCmd)
}

func runInspect(srcPath string) error {
	data, err := os.ReadFile(srcPath)
	if err != nil {
		return fmt.Errorf("%w: %v", asm.ErrSourceUnreadable, err)
	}

	lines := asm.Parse(string(data))
	fmt.Printf("Lines (%d)\n", len(lines))
	pp.Println(lines)

	table, err := asm.Resolve(lines)
	fmt.Printf("\nSymbols (origin 0x%02x)\n", table.Origin)
	pp.Println(table.Labels())
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
	}

	if err := asm.Validate(lines, table); err != nil {
		fmt.Fprintln(os.Stderr, err)
	}

	listing, diags := asm.Encode(lines, table)
	fmt.Printf("\nListing (%d)\n", len(listing))
	for _, ins := range listing {
		fmt.Println(" ", ins)
	}
	for _, d := range diags {
		fmt.Fprintln(os.Stderr, d)
	}

	return nil
}
