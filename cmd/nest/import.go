package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/piwi3910/nestkit/internal/importer"
	"github.com/piwi3910/nestkit/internal/model"
)

var importDXFCmd = &cobra.Command{
	Use:   "import-dxf FILE",
	Short: "read closed shapes from a DXF drawing into profile2d parts",
	Long: `import-dxf reads a DXF drawing's closed LWPOLYLINE/CIRCLE entities
and chains of connected LINE/ARC entities into profile2d outlines
(2D wire reading only, no 3D projection) and writes a JSON array of
part definitions to stdout, ready to merge into a job document's
"parts" field.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runImport(importer.ImportDXF(args[0]))
	},
}

var importXLSXCmd = &cobra.Command{
	Use:   "import-xlsx FILE",
	Short: "read a rectangular cut list from a spreadsheet into profile2d parts",
	Long: `import-xlsx reads a cut-list table (label, width, height, quantity,
and an optional thickness column) from an XLSX workbook's first sheet
and writes a JSON array of part definitions to stdout.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runImport(importer.ImportExcel(args[0]))
	},
}

func init() {
	rootCmd.AddCommand(importDXFCmd)
	rootCmd.AddCommand(importXLSXCmd)
}

func runImport(result importer.ImportResult) error {
	for _, w := range result.Warnings {
		fmt.Fprintf(os.Stderr, "warn: %s\n", w)
	}
	for _, e := range result.Errors {
		fmt.Fprintf(os.Stderr, "error: %s\n", e)
	}
	if len(result.Errors) > 0 && len(result.Parts) == 0 {
		return fmt.Errorf("import produced no usable parts")
	}

	data, err := json.Marshal(partsOrEmpty(result.Parts))
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(os.Stdout, string(data))
	return err
}

func partsOrEmpty(parts []model.Part) []model.Part {
	if parts == nil {
		return []model.Part{}
	}
	return parts
}
