// nest runs the irregular nesting engine and its optional surfaces
// (PDF/label export, DXF/XLSX import, XLSX statistics reports) from a
// single cobra-driven binary.
//
// Usage:
//
//	nest run JOBFILE [--defaults PATH] [--pdf PATH] [--xlsx-report PATH]
//	nest import-dxf FILE
//	nest import-xlsx FILE
//	nest report RESULTFILE OUTFILE
package main

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "nest",
	Short: "nest irregular parts onto stock sheets",
	Long: `nest runs the irregular-part placement engine against a job
document and writes the result document to stdout as a single line of
JSON, plus optional import/export subcommands around the same engine.`,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
