package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"gotracs/pkg/asm"
)

var outputPath string

var assembleCmd = &cobra.Command{
	Use:   "assemble sourceFile",
	Short: "Assemble a TRACS source file into a machine-code listing",
	Long: `Assemble runs both passes over one TRACS source file and writes the
encoded listing as text, one instruction per line. The listing path
defaults to the source path with its extension replaced by .txt.
Nothing is written when any line fails to resolve, validate, or
encode; every offending line is reported in one run.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if err := runAssemble(args[0], outputPath); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	},
}

func init() {
	assembleCmd.Flags().StringVarP(&outputPath, "output", "o", "", "listing path (default: source path with a .txt extension)")
	rootCmd.AddCommand(assembleCmd)
}

func runAssemble(srcPath, outPath string) error {
	data, err := os.ReadFile(srcPath)
	if err != nil {
		return fmt.Errorf("%w: %v", asm.ErrSourceUnreadable, err)
	}

	listing, err := asm.Assemble(string(data))
	if err != nil {
		return err
	}

	if outPath == "" {
		outPath = defaultOutputPath(srcPath)
	}
	if err := writeListing(outPath, listing); err != nil {
		return err
	}

	fmt.Printf("assembled %d instructions -> %s\n", len(listing), outPath)
	return nil
}

func defaultOutputPath(inPath string) string {
	ext := filepath.Ext(inPath)
	if ext == "" {
		return inPath + ".txt"
	}
	return strings.TrimSuffix(inPath, ext) + ".txt"
}

// writeListing renders the whole listing before touching the
// destination, and removes the file again if the write comes up short,
// so a failed run never leaves a partial listing behind.
func writeListing(path string, listing asm.Listing) error {
	var sb strings.Builder
	if _, err := listing.WriteTo(&sb); err != nil {
		return err
	}
	if err := os.WriteFile(path, []byte(sb.String()), 0o644); err != nil {
		os.Remove(path)
		return fmt.Errorf("%w: %v", asm.ErrOutputUnwritable, err)
	}
	return nil
}
